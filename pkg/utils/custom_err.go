package utils

import "errors"

var (
	ErrDatabaseError       = errors.New("database error")
	ErrRecordNotFound      = errors.New("record not found")
	ErrAttractionNotFound  = errors.New("attraction not found")
	ErrRestaurantNotFound  = errors.New("restaurant not found")
	ErrPlanNotFound        = errors.New("travel plan not found")
	ErrSessionNotFound     = errors.New("conversation not found")
	ErrAccountNotFound     = errors.New("account not found")
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrEmailAlreadyExists  = errors.New("email already exists")
	ErrForbidden           = errors.New("forbidden")
	ErrInvalidPage         = errors.New("invalid page parameter")
	ErrInvalidPageSize     = errors.New("invalid page size parameter")
	ErrUnsupportedProvider = errors.New("unsupported generation provider")
	ErrEmptyGeneration     = errors.New("generation returned no content")
)
