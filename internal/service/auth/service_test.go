package auth

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/shoproster/shopstaff-backend-go/internal/domain/auth"
	"github.com/shoproster/shopstaff-backend-go/internal/domain/user"
	"github.com/shoproster/shopstaff-backend-go/internal/pkg/jwt"
)

const (
	testSecret     = "test-secret-key-for-jwt"
	testAccessExp  = "1h"
	testRefreshExp = "24h"
)

type fakeUserRepo struct {
	users map[string]user.User // keyed by id
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]user.User)}
}

func (f *fakeUserRepo) Create(_ context.Context, newUser user.User) (user.User, error) {
	if newUser.ID == "" {
		newUser.ID = uuid.New().String()
	}
	f.users[newUser.ID] = newUser
	return newUser, nil
}

func (f *fakeUserRepo) GetByID(_ context.Context, id string) (user.User, error) {
	u, ok := f.users[id]
	if !ok {
		return user.User{}, user.ErrUserNotFound
	}
	return u, nil
}

func (f *fakeUserRepo) GetByEmail(_ context.Context, email string) (user.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return user.User{}, user.ErrUserNotFound
}

func (f *fakeUserRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	_, err := f.GetByEmail(ctx, email)
	return err == nil, nil
}

func (f *fakeUserRepo) List(_ context.Context) ([]user.User, error) {
	result := make([]user.User, 0, len(f.users))
	for _, u := range f.users {
		result = append(result, u)
	}
	return result, nil
}

func (f *fakeUserRepo) Update(_ context.Context, updated user.User) (user.User, error) {
	if _, ok := f.users[updated.ID]; !ok {
		return user.User{}, user.ErrUserNotFound
	}
	f.users[updated.ID] = updated
	return updated, nil
}

func (f *fakeUserRepo) Delete(_ context.Context, id string) error {
	if _, ok := f.users[id]; !ok {
		return user.ErrUserNotFound
	}
	delete(f.users, id)
	return nil
}

func newTestService() (auth.AuthService, *fakeUserRepo, jwt.Service) {
	repo := newFakeUserRepo()
	jwtService := jwt.NewJWTService(testSecret, testAccessExp, testRefreshExp)
	return NewAuthService(repo, jwtService), repo, jwtService
}

func seedUser(repo *fakeUserRepo, email, password string, role user.Role) user.User {
	hashed, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	u := user.User{
		ID:           uuid.New().String(),
		Name:         "Priya Shah",
		Email:        email,
		PasswordHash: string(hashed),
		Role:         role,
	}
	repo.users[u.ID] = u
	return u
}

func TestRegister_Success(t *testing.T) {
	service, repo, _ := newTestService()

	resp, refreshToken, refreshExpiresAt, err := service.Register(context.Background(), auth.RegisterRequest{
		Name:     "Priya Shah",
		Email:    "priya@example.com",
		Password: "password123",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, resp.UserID)
	assert.Equal(t, "priya@example.com", resp.Email)
	assert.Equal(t, string(user.RoleShopAdmin), resp.Role)
	assert.NotEmpty(t, resp.AccessToken)
	assert.NotEmpty(t, refreshToken)
	assert.Greater(t, refreshExpiresAt, int64(0))

	stored, err := repo.GetByEmail(context.Background(), "priya@example.com")
	require.NoError(t, err)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("password123")))
}

func TestRegister_DuplicateEmail(t *testing.T) {
	service, repo, _ := newTestService()
	seedUser(repo, "priya@example.com", "password123", user.RoleShopAdmin)

	_, _, _, err := service.Register(context.Background(), auth.RegisterRequest{
		Name:     "Priya Shah",
		Email:    "priya@example.com",
		Password: "password123",
	})
	assert.ErrorIs(t, err, user.ErrEmailExists)
}

func TestRegister_ValidationFailure(t *testing.T) {
	service, _, _ := newTestService()

	_, _, _, err := service.Register(context.Background(), auth.RegisterRequest{
		Name:     "",
		Email:    "not-an-email",
		Password: "short",
	})
	assert.Error(t, err)
}

func TestRegister_InvalidRole(t *testing.T) {
	service, _, _ := newTestService()

	_, _, _, err := service.Register(context.Background(), auth.RegisterRequest{
		Name:     "Priya Shah",
		Email:    "priya@example.com",
		Password: "password123",
		Role:     "SuperUser",
	})
	assert.ErrorIs(t, err, user.ErrInvalidRole)
}

func TestLogin_Success(t *testing.T) {
	service, repo, _ := newTestService()
	seeded := seedUser(repo, "priya@example.com", "password123", user.RoleAdmin)

	resp, refreshToken, _, err := service.Login(context.Background(), auth.LoginRequest{
		Email:    "priya@example.com",
		Password: "password123",
	})
	require.NoError(t, err)

	assert.Equal(t, seeded.ID, resp.UserID)
	assert.Equal(t, string(user.RoleAdmin), resp.Role)
	assert.NotEmpty(t, resp.AccessToken)
	assert.NotEmpty(t, refreshToken)
}

func TestLogin_WrongPassword(t *testing.T) {
	service, repo, _ := newTestService()
	seedUser(repo, "priya@example.com", "password123", user.RoleShopAdmin)

	_, _, _, err := service.Login(context.Background(), auth.LoginRequest{
		Email:    "priya@example.com",
		Password: "wrong-password",
	})
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestLogin_UnknownEmail(t *testing.T) {
	service, _, _ := newTestService()

	_, _, _, err := service.Login(context.Background(), auth.LoginRequest{
		Email:    "nobody@example.com",
		Password: "password123",
	})
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestRefresh_Success(t *testing.T) {
	service, repo, _ := newTestService()
	seedUser(repo, "priya@example.com", "password123", user.RoleShopAdmin)

	_, refreshToken, _, err := service.Login(context.Background(), auth.LoginRequest{
		Email:    "priya@example.com",
		Password: "password123",
	})
	require.NoError(t, err)

	resp, err := service.Refresh(context.Background(), refreshToken)
	require.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)
	assert.Equal(t, "priya@example.com", resp.Email)
}

func TestRefresh_AccessTokenRejected(t *testing.T) {
	service, repo, _ := newTestService()
	seedUser(repo, "priya@example.com", "password123", user.RoleShopAdmin)

	resp, _, _, err := service.Login(context.Background(), auth.LoginRequest{
		Email:    "priya@example.com",
		Password: "password123",
	})
	require.NoError(t, err)

	// An access token is not exchangeable for a new session
	_, err = service.Refresh(context.Background(), resp.AccessToken)
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestRefresh_ExpiredToken(t *testing.T) {
	repo := newFakeUserRepo()
	seedUser(repo, "priya@example.com", "password123", user.RoleShopAdmin)

	// Refresh tokens from this service are already past their exp claim.
	jwtService := jwt.NewJWTService(testSecret, testAccessExp, "-1h")
	service := NewAuthService(repo, jwtService)

	_, refreshToken, _, err := service.Login(context.Background(), auth.LoginRequest{
		Email:    "priya@example.com",
		Password: "password123",
	})
	require.NoError(t, err)

	_, err = service.Refresh(context.Background(), refreshToken)
	assert.ErrorIs(t, err, auth.ErrTokenExpired)
}

func TestRefresh_RevokedToken(t *testing.T) {
	service, repo, jwtService := newTestService()
	seedUser(repo, "priya@example.com", "password123", user.RoleShopAdmin)

	_, refreshToken, _, err := service.Login(context.Background(), auth.LoginRequest{
		Email:    "priya@example.com",
		Password: "password123",
	})
	require.NoError(t, err)

	jwtService.RevokeToken(refreshToken)

	_, err = service.Refresh(context.Background(), refreshToken)
	assert.ErrorIs(t, err, auth.ErrTokenRevoked)
}

func TestLogout_RevokesTokens(t *testing.T) {
	service, repo, jwtService := newTestService()
	seedUser(repo, "priya@example.com", "password123", user.RoleShopAdmin)

	resp, refreshToken, _, err := service.Login(context.Background(), auth.LoginRequest{
		Email:    "priya@example.com",
		Password: "password123",
	})
	require.NoError(t, err)

	require.NoError(t, service.Logout(context.Background(), resp.AccessToken, refreshToken))

	assert.True(t, jwtService.IsTokenRevoked(resp.AccessToken))
	assert.True(t, jwtService.IsTokenRevoked(refreshToken))
}
