package domain

import "errors"

// Сентинельные ошибки ядра. Адаптеры переводят ошибки хранилища в них,
// REST-слой маппит их в HTTP-статусы.
var (
	ErrNotFound         = errors.New("entity not found")
	ErrValidation       = errors.New("validation failed")
	ErrAlreadyExists    = errors.New("entity already exists")
	ErrForbidden        = errors.New("operation is not allowed for this user")
	ErrInvalidStatus    = errors.New("invalid status transition")
	ErrInvalidSignature = errors.New("payment signature mismatch")
	ErrDuplicateListing = errors.New("a very similar listing already exists at this location")
)
