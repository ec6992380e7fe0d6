package profile

import "time"

// UserProfile holds a team member's display name and home viewing zone.
// HomeTimeZoneID is an IANA id from the timezone catalog; it only seeds the
// default viewing zone and never participates in instant arithmetic.
type UserProfile struct {
	Principal      string
	Name           string
	HomeTimeZoneID string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
