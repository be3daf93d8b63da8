package offers

import "time"

// Countdown is the remaining time before an offer expires, decomposed
// for display. Every unit is floored, never rounded up.
type Countdown struct {
	Days    int `json:"days"`
	Hours   int `json:"hours"`
	Minutes int `json:"minutes"`
}

// An offer counts as "expiring soon" strictly inside this window.
const expiringSoonWindow = 3 * 24 * time.Hour

// Active filters out expired offers. An offer is active when it has no
// expiry or the expiry is still in the future. Input order is
// preserved: the repository returns rows newest-first and the public
// listing relies on that.
func Active(all []*Offer, now time.Time) []*Offer {
	active := make([]*Offer, 0, len(all))
	for _, o := range all {
		if o.ExpiryDate == nil || o.ExpiryDate.After(now) {
			active = append(active, o)
		}
	}
	return active
}

// TimeRemaining reports the countdown to expiry. ok is false when the
// offer never expires or has already expired.
func TimeRemaining(expiry *time.Time, now time.Time) (Countdown, bool) {
	if expiry == nil {
		return Countdown{}, false
	}

	diff := expiry.Sub(now)
	if diff <= 0 {
		return Countdown{}, false
	}

	return Countdown{
		Days:    int(diff / (24 * time.Hour)),
		Hours:   int(diff % (24 * time.Hour) / time.Hour),
		Minutes: int(diff % time.Hour / time.Minute),
	}, true
}

// ExpiringSoon is true when the offer expires within the next three
// days. Exactly three days out is not yet "soon"; expired offers and
// offers without an expiry are never "soon".
func ExpiringSoon(expiry *time.Time, now time.Time) bool {
	if expiry == nil {
		return false
	}
	diff := expiry.Sub(now)
	return diff > 0 && diff < expiringSoonWindow
}
