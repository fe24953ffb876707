// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"notekeeper/internal/domain/entity"
)

// --- Input DTOs ---

// SignupInput defines the data required to create an account. All fields are required.
type SignupInput struct {
	Name     string
	Email    string
	Password string
}

// SigninInput defines the data required for a user to sign in.
type SigninInput struct {
	Email    string
	Password string
}

// --- Output DTOs ---

// SignupOutput returns the created user with its password hash scrubbed, plus a token.
type SignupOutput struct {
	User  *entity.User
	Token string
}

// SigninOutput returns the bearer token of a successful signin.
type SigninOutput struct {
	Token string
}

// AccountUsecase is the only producer of tokens.
type AccountUsecase interface {
	Signup(ctx context.Context, input SignupInput) (*SignupOutput, error)
	Signin(ctx context.Context, input SigninInput) (*SigninOutput, error)
}
