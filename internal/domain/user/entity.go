package user

import "time"

// User is a back-office account. Shop staff themselves do not log in;
// every account is either the global Admin or a ShopAdmin running one or
// more shops.
type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string
	Role         Role
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type Role string

const (
	RoleAdmin     Role = "Admin"
	RoleShopAdmin Role = "ShopAdmin"
)

var RoleValues = []string{
	string(RoleAdmin),
	string(RoleShopAdmin),
}
