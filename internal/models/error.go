package models

import "errors"

var (
	ErrValidation             = errors.New("validation failed")
	ErrConflictData           = errors.New("data conflicts with existing data")
	ErrDataNotFound           = errors.New("data not found")
	ErrCustomerNotFound       = errors.New("customer not found")
	ErrInvalidCredentials     = errors.New("invalid login or password")
	ErrPricingMismatch        = errors.New("pricing mismatch")
	ErrUnknownStatus          = errors.New("unknown order status")
	ErrInvalidTransition      = errors.New("invalid status transition")
	ErrInvalidOrderState      = errors.New("order state does not permit operation")
	ErrCustomerCreationFailed = errors.New("customer creation failed")
	ErrInternalError          = errors.New("internal error")
)
