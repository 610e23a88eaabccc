package user

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/shoproster/shopstaff-backend-go/internal/domain/shop"
	"github.com/shoproster/shopstaff-backend-go/internal/domain/user"
)

type fakeUserRepo struct {
	users []user.User
}

func (f *fakeUserRepo) Create(_ context.Context, newUser user.User) (user.User, error) {
	if newUser.ID == "" {
		newUser.ID = uuid.New().String()
	}
	f.users = append(f.users, newUser)
	return newUser, nil
}

func (f *fakeUserRepo) GetByID(_ context.Context, id string) (user.User, error) {
	for _, u := range f.users {
		if u.ID == id {
			return u, nil
		}
	}
	return user.User{}, user.ErrUserNotFound
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
	return f.users, nil
}

func (f *fakeUserRepo) Update(_ context.Context, updated user.User) (user.User, error) {
	for i, u := range f.users {
		if u.ID == updated.ID {
			f.users[i] = updated
			return updated, nil
		}
	}
	return user.User{}, user.ErrUserNotFound
}

func (f *fakeUserRepo) Delete(_ context.Context, id string) error {
	for i, u := range f.users {
		if u.ID == id {
			f.users = append(f.users[:i], f.users[i+1:]...)
			return nil
		}
	}
	return user.ErrUserNotFound
}

type fakeShopRepo struct {
	shops []shop.Shop
}

func (f *fakeShopRepo) Create(_ context.Context, s shop.Shop) (shop.Shop, error) {
	f.shops = append(f.shops, s)
	return s, nil
}

func (f *fakeShopRepo) GetByID(_ context.Context, id string) (shop.Shop, error) {
	for _, s := range f.shops {
		if s.ID == id {
			return s, nil
		}
	}
	return shop.Shop{}, shop.ErrShopNotFound
}

func (f *fakeShopRepo) List(_ context.Context) ([]shop.Shop, error) {
	return f.shops, nil
}

func (f *fakeShopRepo) ListByAdminID(_ context.Context, adminID string) ([]shop.Shop, error) {
	var result []shop.Shop
	for _, s := range f.shops {
		if s.AdminID == adminID {
			result = append(result, s)
		}
	}
	return result, nil
}

func (f *fakeShopRepo) Update(_ context.Context, _ shop.Shop) error { return nil }
func (f *fakeShopRepo) Delete(_ context.Context, _ string) error    { return nil }

// fakeStatsRepo records the windows each count was asked for.
type fakeStatsRepo struct {
	shops      int
	shopAdmins int
	employees  int
	rotas      int
	punches    int
	payouts    int

	rotaFrom, rotaTo     time.Time
	punchFrom, punchTo   time.Time
	payoutFrom, payoutTo time.Time
}

func (f *fakeStatsRepo) CountShops(_ context.Context) (int, error) { return f.shops, nil }

func (f *fakeStatsRepo) CountUsersByRole(_ context.Context, _ user.Role) (int, error) {
	return f.shopAdmins, nil
}

func (f *fakeStatsRepo) CountEmployees(_ context.Context) (int, error) { return f.employees, nil }

func (f *fakeStatsRepo) CountRotasBetween(_ context.Context, from, to time.Time) (int, error) {
	f.rotaFrom, f.rotaTo = from, to
	return f.rotas, nil
}

func (f *fakeStatsRepo) CountPunchesBetween(_ context.Context, from, to time.Time) (int, error) {
	f.punchFrom, f.punchTo = from, to
	return f.punches, nil
}

func (f *fakeStatsRepo) CountPayoutsBetween(_ context.Context, from, to time.Time) (int, error) {
	f.payoutFrom, f.payoutTo = from, to
	return f.payouts, nil
}

type fixture struct {
	users   *fakeUserRepo
	shops   *fakeShopRepo
	stats   *fakeStatsRepo
	clock   *clockwork.FakeClock
	service user.UserService
}

func newFixture(now time.Time) *fixture {
	f := &fixture{
		users: &fakeUserRepo{},
		shops: &fakeShopRepo{},
		stats: &fakeStatsRepo{},
		clock: clockwork.NewFakeClockAt(now),
	}
	f.service = NewUserService(f.users, f.shops, f.stats, f.clock)
	return f
}

func strPtr(s string) *string { return &s }

func seedAccount(f *fixture, id, name, email string, role user.Role) user.User {
	hashed, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	u := user.User{
		ID:           id,
		Name:         name,
		Email:        email,
		PasswordHash: string(hashed),
		Role:         role,
	}
	f.users.users = append(f.users.users, u)
	return u
}

func TestCreateShopAdmin_ForcesShopAdminRole(t *testing.T) {
	f := newFixture(time.Date(2026, 2, 18, 15, 0, 0, 0, time.UTC))

	resp, err := f.service.CreateShopAdmin(context.Background(), user.CreateShopAdminRequest{
		Name:     "Dev Patel",
		Email:    "dev@example.com",
		Password: "password123",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, resp.ID)
	assert.Equal(t, string(user.RoleShopAdmin), resp.Role)

	stored, err := f.users.GetByID(context.Background(), resp.ID)
	require.NoError(t, err)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("password123")))
}

func TestCreateShopAdmin_DuplicateEmail(t *testing.T) {
	f := newFixture(time.Date(2026, 2, 18, 15, 0, 0, 0, time.UTC))
	seedAccount(f, "sa-1", "Dev Patel", "dev@example.com", user.RoleShopAdmin)

	_, err := f.service.CreateShopAdmin(context.Background(), user.CreateShopAdminRequest{
		Name:     "Another Dev",
		Email:    "dev@example.com",
		Password: "password123",
	})
	assert.ErrorIs(t, err, user.ErrEmailExists)
}

func TestUpdateShopAdmin_PatchesOnlyProvidedFields(t *testing.T) {
	f := newFixture(time.Date(2026, 2, 18, 15, 0, 0, 0, time.UTC))
	seeded := seedAccount(f, "sa-1", "Dev Patel", "dev@example.com", user.RoleShopAdmin)

	resp, err := f.service.UpdateShopAdmin(context.Background(), user.UpdateShopAdminRequest{
		ID:   "sa-1",
		Name: strPtr("Devika Patel"),
	})
	require.NoError(t, err)

	assert.Equal(t, "Devika Patel", resp.Name)
	assert.Equal(t, "dev@example.com", resp.Email)

	stored, err := f.users.GetByID(context.Background(), "sa-1")
	require.NoError(t, err)
	assert.Equal(t, seeded.PasswordHash, stored.PasswordHash)
}

func TestUpdateShopAdmin_RehashesNewPassword(t *testing.T) {
	f := newFixture(time.Date(2026, 2, 18, 15, 0, 0, 0, time.UTC))
	seeded := seedAccount(f, "sa-1", "Dev Patel", "dev@example.com", user.RoleShopAdmin)

	_, err := f.service.UpdateShopAdmin(context.Background(), user.UpdateShopAdminRequest{
		ID:       "sa-1",
		Password: strPtr("newpassword1"),
	})
	require.NoError(t, err)

	stored, err := f.users.GetByID(context.Background(), "sa-1")
	require.NoError(t, err)
	assert.NotEqual(t, seeded.PasswordHash, stored.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("newpassword1")))
}

func TestUpdateShopAdmin_RejectsAdminAccount(t *testing.T) {
	f := newFixture(time.Date(2026, 2, 18, 15, 0, 0, 0, time.UTC))
	seedAccount(f, "admin-1", "Root Admin", "root@example.com", user.RoleAdmin)

	_, err := f.service.UpdateShopAdmin(context.Background(), user.UpdateShopAdminRequest{
		ID:   "admin-1",
		Name: strPtr("Still Root"),
	})
	assert.ErrorIs(t, err, user.ErrNotShopAdmin)
}

func TestUpdateShopAdmin_DuplicateEmail(t *testing.T) {
	f := newFixture(time.Date(2026, 2, 18, 15, 0, 0, 0, time.UTC))
	seedAccount(f, "sa-1", "Dev Patel", "dev@example.com", user.RoleShopAdmin)
	seedAccount(f, "sa-2", "Mira Khan", "mira@example.com", user.RoleShopAdmin)

	_, err := f.service.UpdateShopAdmin(context.Background(), user.UpdateShopAdminRequest{
		ID:    "sa-2",
		Email: strPtr("dev@example.com"),
	})
	assert.ErrorIs(t, err, user.ErrEmailExists)
}

func TestDeleteShopAdmin_RemovesAccount(t *testing.T) {
	f := newFixture(time.Date(2026, 2, 18, 15, 0, 0, 0, time.UTC))
	seedAccount(f, "sa-1", "Dev Patel", "dev@example.com", user.RoleShopAdmin)

	require.NoError(t, f.service.DeleteShopAdmin(context.Background(), "sa-1"))

	_, err := f.users.GetByID(context.Background(), "sa-1")
	assert.ErrorIs(t, err, user.ErrUserNotFound)
}

func TestDeleteShopAdmin_RejectsAdminAccount(t *testing.T) {
	f := newFixture(time.Date(2026, 2, 18, 15, 0, 0, 0, time.UTC))
	seedAccount(f, "admin-1", "Root Admin", "root@example.com", user.RoleAdmin)

	err := f.service.DeleteShopAdmin(context.Background(), "admin-1")
	assert.ErrorIs(t, err, user.ErrNotShopAdmin)
}

func TestDeleteShopAdmin_UnknownAccount(t *testing.T) {
	f := newFixture(time.Date(2026, 2, 18, 15, 0, 0, 0, time.UTC))

	err := f.service.DeleteShopAdmin(context.Background(), "missing")
	assert.ErrorIs(t, err, user.ErrUserNotFound)
}

func TestListUnassignedShopAdmins_FiltersAssignedAndAdmins(t *testing.T) {
	f := newFixture(time.Date(2026, 2, 18, 15, 0, 0, 0, time.UTC))
	seedAccount(f, "admin-1", "Root Admin", "root@example.com", user.RoleAdmin)
	seedAccount(f, "sa-1", "Dev Patel", "dev@example.com", user.RoleShopAdmin)
	seedAccount(f, "sa-2", "Mira Khan", "mira@example.com", user.RoleShopAdmin)
	f.shops.shops = append(f.shops.shops, shop.Shop{ID: "shop-1", Name: "Corner News", AdminID: "sa-1"})

	unassigned, err := f.service.ListUnassignedShopAdmins(context.Background())
	require.NoError(t, err)

	require.Len(t, unassigned, 1)
	assert.Equal(t, "sa-2", unassigned[0].ID)
}

func TestListAdminsWithShops_AttachesShopOrNil(t *testing.T) {
	f := newFixture(time.Date(2026, 2, 18, 15, 0, 0, 0, time.UTC))
	seedAccount(f, "sa-1", "Dev Patel", "dev@example.com", user.RoleShopAdmin)
	seedAccount(f, "sa-2", "Mira Khan", "mira@example.com", user.RoleShopAdmin)
	f.shops.shops = append(f.shops.shops, shop.Shop{
		ID:      "shop-1",
		Name:    "Corner News",
		Address: strPtr("1 High Street"),
		AdminID: "sa-1",
	})

	admins, err := f.service.ListAdminsWithShops(context.Background())
	require.NoError(t, err)
	require.Len(t, admins, 2)

	byID := make(map[string]user.UserWithShopResponse, len(admins))
	for _, a := range admins {
		byID[a.ID] = a
	}

	require.NotNil(t, byID["sa-1"].Shop)
	assert.Equal(t, "shop-1", byID["sa-1"].Shop.ShopID)
	assert.Equal(t, "Corner News", byID["sa-1"].Shop.ShopName)
	assert.Nil(t, byID["sa-2"].Shop)
}

func TestGetSystemStats_CountsAndWindows(t *testing.T) {
	// Wednesday afternoon. The week window runs from the previous Sunday.
	f := newFixture(time.Date(2026, 2, 18, 15, 0, 0, 0, time.UTC))
	f.stats.shops = 3
	f.stats.shopAdmins = 4
	f.stats.employees = 25
	f.stats.rotas = 12
	f.stats.punches = 7
	f.stats.payouts = 5

	stats, err := f.service.GetSystemStats(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 3, stats.TotalShops)
	assert.Equal(t, 4, stats.TotalShopAdmins)
	assert.Equal(t, 25, stats.TotalEmployees)
	assert.Equal(t, 12, stats.RotasThisWeek)
	assert.Equal(t, 7, stats.PunchesToday)
	assert.Equal(t, 5, stats.PayoutsThisMonth)

	assert.Equal(t, time.Date(2026, 2, 15, 0, 0, 0, 0, time.UTC), f.stats.rotaFrom)
	assert.Equal(t, time.Date(2026, 2, 22, 0, 0, 0, 0, time.UTC), f.stats.rotaTo)

	assert.Equal(t, time.Date(2026, 2, 18, 0, 0, 0, 0, time.UTC), f.stats.punchFrom)
	assert.Equal(t, 18, f.stats.punchTo.Day())
	assert.Equal(t, 23, f.stats.punchTo.Hour())

	assert.Equal(t, time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC), f.stats.payoutFrom)
	assert.Equal(t, time.February, f.stats.payoutTo.Month())
	assert.Equal(t, 28, f.stats.payoutTo.Day())
}
