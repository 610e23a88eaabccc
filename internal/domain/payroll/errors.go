package payroll

import "errors"

var (
	ErrInvalidDateRange = errors.New("invalid date range: from and to are required")
)
