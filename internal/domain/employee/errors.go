package employee

import "errors"

var (
	ErrEmployeeNotFound  = errors.New("employee not found")
	ErrEmployeeShopMatch = errors.New("employee not found in this shop")
	ErrInvalidPayType    = errors.New("pay type must be Hourly or Fixed Daily")
	ErrUnauthorized      = errors.New("unauthorized to access this employee")
)
