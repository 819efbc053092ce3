package errors

import "errors"

var (
	ErrCartNotExist = errors.New("cart not found")
	ErrCartExists   = errors.New("cart already exists")
)
