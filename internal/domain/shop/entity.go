package shop

import (
	"time"

	"github.com/shopspring/decimal"
)

// Shop is a retail location run by exactly one ShopAdmin account.
// Open/close times are stored as "HH:MM" wall-clock strings.
type Shop struct {
	ID          string
	Name        string
	LogoURL     *string
	Address     *string
	Site        *string
	PhoneNumber *string
	AdminID     string
	Rent        decimal.Decimal
	Bills       decimal.Decimal
	OpenTime    *string
	CloseTime   *string
	CreatedAt   time.Time
	UpdatedAt   time.Time

	// Joined fields
	AdminName  *string
	AdminEmail *string
}
