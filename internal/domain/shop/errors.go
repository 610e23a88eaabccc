package shop

import "errors"

var (
	ErrShopNotFound     = errors.New("shop not found")
	ErrInvalidShopAdmin = errors.New("admin id does not refer to a ShopAdmin account")
	ErrNoShopForAdmin   = errors.New("no shop found for this shop admin")
)
