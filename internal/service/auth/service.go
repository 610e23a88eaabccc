package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-chi/jwtauth/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/shoproster/shopstaff-backend-go/internal/domain/auth"
	"github.com/shoproster/shopstaff-backend-go/internal/domain/user"
	"github.com/shoproster/shopstaff-backend-go/internal/pkg/jwt"
	"github.com/shoproster/shopstaff-backend-go/internal/pkg/validator"
)

type AuthServiceImpl struct {
	userRepo   user.UserRepository
	jwtService jwt.Service
}

func NewAuthService(userRepo user.UserRepository, jwtService jwt.Service) auth.AuthService {
	return &AuthServiceImpl{
		userRepo:   userRepo,
		jwtService: jwtService,
	}
}

func (a *AuthServiceImpl) hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// Register implements auth.AuthService.
func (a *AuthServiceImpl) Register(ctx context.Context, req auth.RegisterRequest) (auth.AuthResponse, string, int64, error) {
	if err := req.Validate(); err != nil {
		return auth.AuthResponse{}, "", 0, err
	}

	exists, err := a.userRepo.ExistsByEmail(ctx, req.Email)
	if err != nil {
		return auth.AuthResponse{}, "", 0, fmt.Errorf("failed to check email: %w", err)
	}
	if exists {
		return auth.AuthResponse{}, "", 0, user.ErrEmailExists
	}

	hashed, err := a.hashPassword(req.Password)
	if err != nil {
		return auth.AuthResponse{}, "", 0, fmt.Errorf("failed to hash password: %w", err)
	}

	role := user.RoleShopAdmin
	if req.Role != "" {
		if !validator.IsInSlice(req.Role, user.RoleValues) {
			return auth.AuthResponse{}, "", 0, user.ErrInvalidRole
		}
		role = user.Role(req.Role)
	}

	created, err := a.userRepo.Create(ctx, user.User{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: hashed,
		Role:         role,
	})
	if err != nil {
		return auth.AuthResponse{}, "", 0, fmt.Errorf("failed to create user: %w", err)
	}

	return a.issueSession(created)
}

// Login implements auth.AuthService.
func (a *AuthServiceImpl) Login(ctx context.Context, req auth.LoginRequest) (auth.AuthResponse, string, int64, error) {
	if err := req.Validate(); err != nil {
		return auth.AuthResponse{}, "", 0, err
	}

	userData, err := a.userRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return auth.AuthResponse{}, "", 0, auth.ErrInvalidCredentials
		}
		return auth.AuthResponse{}, "", 0, fmt.Errorf("failed to get user by email: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(userData.PasswordHash), []byte(req.Password)); err != nil {
		return auth.AuthResponse{}, "", 0, auth.ErrInvalidCredentials
	}

	return a.issueSession(userData)
}

func (a *AuthServiceImpl) issueSession(userData user.User) (auth.AuthResponse, string, int64, error) {
	accessToken, accessExpiresAt, err := a.jwtService.GenerateAccessToken(userData.ID, userData.Email, userData.Name, userData.Role)
	if err != nil {
		return auth.AuthResponse{}, "", 0, fmt.Errorf("failed to create access token: %w", err)
	}

	refreshToken, refreshExpiresAt, err := a.jwtService.GenerateRefreshToken(userData.ID)
	if err != nil {
		return auth.AuthResponse{}, "", 0, fmt.Errorf("failed to create refresh token: %w", err)
	}

	resp := auth.AuthResponse{
		UserID:      userData.ID,
		Name:        userData.Name,
		Email:       userData.Email,
		Role:        string(userData.Role),
		AccessToken: accessToken,
		ExpiresAt:   accessExpiresAt,
	}

	return resp, refreshToken, refreshExpiresAt, nil
}

// Me implements auth.AuthService.
func (a *AuthServiceImpl) Me(ctx context.Context) (auth.MeResponse, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return auth.MeResponse{}, auth.ErrInvalidToken
	}

	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return auth.MeResponse{}, auth.ErrInvalidToken
	}

	userData, err := a.userRepo.GetByID(ctx, userID)
	if err != nil {
		return auth.MeResponse{}, err
	}

	return auth.MeResponse{
		UserID: userData.ID,
		Name:   userData.Name,
		Email:  userData.Email,
		Role:   string(userData.Role),
	}, nil
}

// Refresh implements auth.AuthService.
func (a *AuthServiceImpl) Refresh(ctx context.Context, refreshToken string) (auth.AuthResponse, error) {
	if a.jwtService.IsTokenRevoked(refreshToken) {
		return auth.AuthResponse{}, auth.ErrTokenRevoked
	}

	token, err := jwtauth.VerifyToken(a.jwtService.JWTAuth(), refreshToken)
	if err != nil {
		if errors.Is(err, jwtauth.ErrExpired) {
			return auth.AuthResponse{}, auth.ErrTokenExpired
		}
		return auth.AuthResponse{}, auth.ErrInvalidToken
	}

	claims, err := token.AsMap(ctx)
	if err != nil {
		return auth.AuthResponse{}, auth.ErrInvalidToken
	}
	if tokenType, _ := claims["type"].(string); tokenType != "refresh" {
		return auth.AuthResponse{}, auth.ErrInvalidToken
	}

	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return auth.AuthResponse{}, auth.ErrInvalidToken
	}

	userData, err := a.userRepo.GetByID(ctx, userID)
	if err != nil {
		return auth.AuthResponse{}, err
	}

	accessToken, expiresAt, err := a.jwtService.GenerateAccessToken(userData.ID, userData.Email, userData.Name, userData.Role)
	if err != nil {
		return auth.AuthResponse{}, fmt.Errorf("failed to create access token: %w", err)
	}

	return auth.AuthResponse{
		UserID:      userData.ID,
		Name:        userData.Name,
		Email:       userData.Email,
		Role:        string(userData.Role),
		AccessToken: accessToken,
		ExpiresAt:   expiresAt,
	}, nil
}

// Logout implements auth.AuthService.
func (a *AuthServiceImpl) Logout(ctx context.Context, accessToken string, refreshToken string) error {
	if accessToken != "" {
		a.jwtService.RevokeToken(accessToken)
	}
	if refreshToken != "" {
		a.jwtService.RevokeToken(refreshToken)
	}
	return nil
}
