package storage

import "strings"

// KeyFromURL extracts the object key from a public URL produced by
// PublicURL. Returns "" when the URL does not point into the bucket,
// which callers treat as "nothing to delete".
func KeyFromURL(rawURL, bucket string) string {
	parts := strings.Split(rawURL, "/")
	for i, part := range parts {
		if part == bucket && i < len(parts)-1 {
			return strings.Join(parts[i+1:], "/")
		}
	}
	return ""
}
