package service

import (
	"time"

	"notekeeper/internal/domain/entity"
)

// AccessTokenTTL is the fixed lifetime of every issued token. There is no renewal:
// a request after expiry must sign in again.
const AccessTokenTTL = time.Hour

// TokenService encodes identity claims into signed, time-bounded bearer tokens
// and decodes them back. Tokens are not stored server-side.
type TokenService interface {
	// NewClaim builds a claim for the user, stamped with the current time and
	// expiring AccessTokenTTL later.
	NewClaim(userID int64) entity.IdentityClaim

	// Issue signs the claim and returns the token string.
	Issue(claim entity.IdentityClaim) (string, error)

	// Decode verifies the token and returns its claim. It fails with
	// errors.ErrTokenMalformed, errors.ErrTokenExpired or errors.ErrTokenInvalidSignature.
	Decode(token string) (*entity.IdentityClaim, error)
}
