// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"strconv"

	"notekeeper/config"
	"notekeeper/internal/domain/entity"
	domainerrors "notekeeper/internal/domain/errors"
	"notekeeper/internal/domain/service"
	"notekeeper/internal/errors"

	"github.com/golang-jwt/jwt/v5"
)

// tokenClaims is the JWT payload. uid duplicates sub as a number so decoding
// does not depend on string parsing.
type tokenClaims struct {
	UserID int64 `json:"uid"`
	jwt.RegisteredClaims
}

// jwtService is a concrete implementation of the TokenService interface using HS256 JWTs.
type jwtService struct {
	secret []byte        // Process-wide signing secret, read once at startup.
	clock  service.Clock // Source of "now" for issuing and expiry checks.
	parser *jwt.Parser
}

// NewJWTService is the constructor for jwtService.
// A missing secret is a startup failure, never a per-request error.
func NewJWTService(cfg *config.Config, clock service.Clock) (service.TokenService, error) {
	if cfg.SecretKey.Access == "" {
		return nil, errors.New("jwt secret must be provided")
	}

	return &jwtService{
		secret: []byte(cfg.SecretKey.Access),
		clock:  clock,
		parser: jwt.NewParser(
			jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
			// Expiry is checked by Decode against the injected clock.
			jwt.WithoutClaimsValidation(),
		),
	}, nil
}

// NewClaim stamps a claim for the user. Times are truncated to the JWT
// precision so a decoded claim equals the issued one.
func (s *jwtService) NewClaim(userID int64) entity.IdentityClaim {
	now := s.clock.Now().Truncate(jwt.TimePrecision)

	return entity.IdentityClaim{
		UserID:    userID,
		IssuedAt:  now,
		ExpiresAt: now.Add(service.AccessTokenTTL),
	}
}

// Issue signs the claim with the process secret.
func (s *jwtService) Issue(claim entity.IdentityClaim) (string, error) {
	claims := tokenClaims{
		UserID: claim.UserID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatInt(claim.UserID, 10),
			IssuedAt:  jwt.NewNumericDate(claim.IssuedAt),
			ExpiresAt: jwt.NewNumericDate(claim.ExpiresAt),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", domainerrors.ErrTokenIssueFailed.WrapMessage("sign token")
	}

	return signed, nil
}

// Decode returns the claim of a valid token.
//
// Expiry is evaluated before the signature, so a token past its expiry fails
// with ErrTokenExpired whether or not its signature would verify.
func (s *jwtService) Decode(tokenString string) (*entity.IdentityClaim, error) {
	claims := &tokenClaims{}
	if _, _, err := s.parser.ParseUnverified(tokenString, claims); err != nil {
		return nil, domainerrors.ErrTokenMalformed.WrapMessage("parse token")
	}

	if claims.UserID <= 0 || claims.ExpiresAt == nil {
		return nil, domainerrors.ErrTokenMalformed.WrapMessage("token is missing required claims")
	}

	identity := claims.identity()
	if identity.ExpiredAt(s.clock.Now()) {
		return nil, domainerrors.ErrTokenExpired.WrapMessage("decode token")
	}

	if _, err := s.parser.ParseWithClaims(tokenString, &tokenClaims{}, s.keyFunc); err != nil {
		if errors.Is(err, jwt.ErrTokenMalformed) {
			return nil, domainerrors.ErrTokenMalformed.WrapMessage("verify token")
		}

		return nil, domainerrors.ErrTokenInvalidSignature.WrapMessage("verify token")
	}

	return &identity, nil
}

func (s *jwtService) keyFunc(token *jwt.Token) (any, error) {
	// Ensure the signing method is what we expect.
	if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
		return nil, jwt.ErrSignatureInvalid
	}

	return s.secret, nil
}

func (c *tokenClaims) identity() entity.IdentityClaim {
	identity := entity.IdentityClaim{
		UserID:    c.UserID,
		ExpiresAt: c.ExpiresAt.Time,
	}
	if c.IssuedAt != nil {
		identity.IssuedAt = c.IssuedAt.Time
	}

	return identity
}
