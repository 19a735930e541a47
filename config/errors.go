package config

import "errors"

// Validation errors
var (
	ErrInvalidSeverity  = errors.New("invalid min_severity")
	ErrInvalidSinkKind  = errors.New("invalid sink kind")
	ErrInvalidColorMode = errors.New("invalid sink color mode")
	ErrInvalidEncoding  = errors.New("invalid sink encoding")
	ErrInvalidStream    = errors.New("invalid sink stream")
)

// Loading errors
var (
	ErrUnsupportedFormat = errors.New("unsupported config file format")
	ErrConfigParse       = errors.New("configuration parse error")
)
