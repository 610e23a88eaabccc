package user

import "errors"

var (
	ErrUserNotFound        = errors.New("user not found")
	ErrEmailExists         = errors.New("user with this email already exists")
	ErrInvalidRole         = errors.New("role must be Admin or ShopAdmin")
	ErrNotShopAdmin        = errors.New("only ShopAdmin accounts can be managed")
	ErrAdminAccessRequired = errors.New("admin access required")
	ErrShopAdminOnly       = errors.New("shop admin only route")
	ErrForbiddenShopAccess = errors.New("you do not manage this shop")
)
