package offers

import "errors"

var (
	ErrNotImage      = errors.New("offer image must be an image file")
	ErrImageTooLarge = errors.New("offer image must be smaller than 5 MiB")
)

// ValidationError reports a missing or malformed form field. Always
// recoverable: the dashboard re-prompts the same form.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

// UploadError wraps an object-store failure during image upload.
// PolicyDenied marks a bucket-policy rejection so the admin sees an
// actionable message instead of a generic storage error.
type UploadError struct {
	PolicyDenied bool
	Err          error
}

func (e *UploadError) Error() string {
	if e.PolicyDenied {
		return "image upload rejected: storage policies are misconfigured"
	}
	return "image upload failed: " + e.Err.Error()
}

func (e *UploadError) Unwrap() error { return e.Err }

// PersistenceError wraps a table-store failure. No retry, no rollback:
// the failure surfaces to the caller as-is.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return "offers: " + e.Op + ": " + e.Err.Error()
}

func (e *PersistenceError) Unwrap() error { return e.Err }
