package auth

import "context"

// AuthService defines business logic for account registration and login.
type AuthService interface {
	// Register creates a new back-office account and returns a signed-in session
	Register(ctx context.Context, req RegisterRequest) (AuthResponse, string, int64, error)

	// Login verifies credentials and returns a signed-in session.
	// The extra return values are the refresh token and its expiry.
	Login(ctx context.Context, req LoginRequest) (AuthResponse, string, int64, error)

	// Me returns the profile of the authenticated account
	Me(ctx context.Context) (MeResponse, error)

	// Refresh exchanges a valid refresh token for a new access token
	Refresh(ctx context.Context, refreshToken string) (AuthResponse, error)

	// Logout revokes the given tokens
	Logout(ctx context.Context, accessToken string, refreshToken string) error
}
