package domain

import "errors"

var (
	// ErrInvalidRequest is returned when request parameters are invalid
	ErrInvalidRequest = errors.New("invalid request parameters")

	// ErrInputTooLarge is returned when ingredient text exceeds the configured limit
	ErrInputTooLarge = errors.New("ingredient text exceeds maximum length")

	// ErrNoConversion is returned when two units cannot be converted into each other
	ErrNoConversion = errors.New("no conversion possible")

	// ErrRateLimited is returned when rate limit is exceeded
	ErrRateLimited = errors.New("rate limit exceeded")

	// ErrCacheMiss is returned when data is not found in cache
	ErrCacheMiss = errors.New("cache miss")

	// ErrCacheUnavailable is returned when cache service is unavailable
	ErrCacheUnavailable = errors.New("cache service unavailable")
)
