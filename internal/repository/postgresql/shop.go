package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/shoproster/shopstaff-backend-go/internal/domain/shop"
	"github.com/shoproster/shopstaff-backend-go/internal/pkg/database"
)

type shopRepositoryImpl struct {
	db *database.DB
}

func NewShopRepository(db *database.DB) shop.ShopRepository {
	return &shopRepositoryImpl{db: db}
}

const shopColumns = `
	s.id, s.name, s.logo_url, s.address, s.site, s.phone_number, s.admin_id,
	s.rent, s.bills, s.open_time, s.close_time, s.created_at, s.updated_at,
	u.name AS admin_name, u.email AS admin_email
`

func scanShop(row pgx.Row) (shop.Shop, error) {
	var s shop.Shop
	err := row.Scan(
		&s.ID, &s.Name, &s.LogoURL, &s.Address, &s.Site, &s.PhoneNumber, &s.AdminID,
		&s.Rent, &s.Bills, &s.OpenTime, &s.CloseTime, &s.CreatedAt, &s.UpdatedAt,
		&s.AdminName, &s.AdminEmail,
	)
	return s, err
}

// Create implements shop.ShopRepository.
func (r *shopRepositoryImpl) Create(ctx context.Context, newShop shop.Shop) (shop.Shop, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO shops (id, name, logo_url, address, site, phone_number, admin_id, rent, bills, open_time, close_time)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id, name, logo_url, address, site, phone_number, admin_id, rent, bills, open_time, close_time, created_at, updated_at
	`

	if newShop.ID == "" {
		newShop.ID = uuid.New().String()
	}

	var created shop.Shop
	err := q.QueryRow(ctx, query,
		newShop.ID, newShop.Name, newShop.LogoURL, newShop.Address, newShop.Site,
		newShop.PhoneNumber, newShop.AdminID, newShop.Rent, newShop.Bills,
		newShop.OpenTime, newShop.CloseTime,
	).Scan(
		&created.ID, &created.Name, &created.LogoURL, &created.Address, &created.Site,
		&created.PhoneNumber, &created.AdminID, &created.Rent, &created.Bills,
		&created.OpenTime, &created.CloseTime, &created.CreatedAt, &created.UpdatedAt,
	)
	if err != nil {
		return shop.Shop{}, fmt.Errorf("failed to create shop: %w", err)
	}

	return created, nil
}

// GetByID implements shop.ShopRepository.
func (r *shopRepositoryImpl) GetByID(ctx context.Context, id string) (shop.Shop, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + shopColumns + `
		FROM shops s
		JOIN users u ON u.id = s.admin_id
		WHERE s.id = $1
	`

	found, err := scanShop(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return shop.Shop{}, shop.ErrShopNotFound
		}
		return shop.Shop{}, fmt.Errorf("failed to get shop by id: %w", err)
	}

	return found, nil
}

// List implements shop.ShopRepository.
func (r *shopRepositoryImpl) List(ctx context.Context) ([]shop.Shop, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + shopColumns + `
		FROM shops s
		JOIN users u ON u.id = s.admin_id
		ORDER BY s.created_at DESC
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list shops: %w", err)
	}
	defer rows.Close()

	return collectShops(rows)
}

// ListByAdminID implements shop.ShopRepository.
func (r *shopRepositoryImpl) ListByAdminID(ctx context.Context, adminID string) ([]shop.Shop, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + shopColumns + `
		FROM shops s
		JOIN users u ON u.id = s.admin_id
		WHERE s.admin_id = $1
		ORDER BY s.created_at DESC
	`

	rows, err := q.Query(ctx, query, adminID)
	if err != nil {
		return nil, fmt.Errorf("failed to list shops by admin: %w", err)
	}
	defer rows.Close()

	return collectShops(rows)
}

func collectShops(rows pgx.Rows) ([]shop.Shop, error) {
	var shops []shop.Shop
	for rows.Next() {
		s, err := scanShop(rows)
		if err != nil {
			return nil, err
		}
		shops = append(shops, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return shops, nil
}

// Update implements shop.ShopRepository.
func (r *shopRepositoryImpl) Update(ctx context.Context, updated shop.Shop) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE shops
		SET name = $1, logo_url = $2, address = $3, site = $4, phone_number = $5,
			admin_id = $6, rent = $7, bills = $8, open_time = $9, close_time = $10,
			updated_at = NOW()
		WHERE id = $11
		RETURNING id
	`

	var id string
	err := q.QueryRow(ctx, query,
		updated.Name, updated.LogoURL, updated.Address, updated.Site, updated.PhoneNumber,
		updated.AdminID, updated.Rent, updated.Bills, updated.OpenTime, updated.CloseTime,
		updated.ID,
	).Scan(&id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return shop.ErrShopNotFound
		}
		return fmt.Errorf("failed to update shop: %w", err)
	}

	return nil
}

// Delete implements shop.ShopRepository.
func (r *shopRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM shops WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete shop: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return shop.ErrShopNotFound
	}

	return nil
}
