package entity

import "time"

// IdentityClaim is the identity carried inside a bearer token.
// It is immutable once issued and is never stored server-side.
type IdentityClaim struct {
	UserID    int64
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// ExpiredAt reports whether the claim is no longer valid at the given instant.
// A claim is expired from ExpiresAt onwards.
func (c IdentityClaim) ExpiredAt(now time.Time) bool {
	return !now.Before(c.ExpiresAt)
}
