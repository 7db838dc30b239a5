package dues

import "time"

// Eligible reports whether a member may redeem campaigns as of asOf: every
// record strictly before the in-progress calendar month must be paid. The
// current month's record never blocks (grace period through month end), and
// records for months that have not started are ignored.
//
// A member with no records at all is vacuously eligible. That keeps freshly
// created members usable before their first rollover; revisit if abused.
func Eligible(records []*Record, asOf time.Time) bool {
	for _, r := range records {
		if r.IsPastDueAt(asOf) && !r.IsPaid() {
			return false
		}
	}
	return true
}
