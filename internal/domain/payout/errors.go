package payout

import "errors"

var (
	ErrPayoutNotFound = errors.New("payout not found")
)
