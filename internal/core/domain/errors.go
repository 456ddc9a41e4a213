package domain

import "errors"

// Common domain errors
var (
	ErrUnauthorized = errors.New("unauthorized")
)

// Zone errors
var (
	ErrZoneNotFound = errors.New("disaster zone not found")
)

// SOS errors
var (
	ErrSosNotFound   = errors.New("sos request not found")
	ErrSosNotFetched = errors.New("sos requests not fetched yet")
)
