package i18n

import "errors"

// Package errors use descriptive messages for debugging while avoiding implementation details.
// Context cancellation errors are separated to allow proper error handling in timeouts.
var (
	ErrNilAdapter = errors.New("translation adapter is nil")
	ErrEmptyLang  = errors.New("empty language code found")

	// JSON operations
	ErrJSONParsingCancelled = errors.New("json parsing cancelled")
	ErrFailedToParseJSON    = errors.New("failed to parse JSON content")

	// YAML operations
	ErrYAMLParsingCancelled = errors.New("yaml parsing cancelled")
	ErrFailedToParseYAML    = errors.New("failed to parse YAML content")

	// Structure of parsed documents
	ErrInvalidStructure  = errors.New("invalid resource structure")
	ErrUnsupportedFormat = errors.New("unsupported resource file format")

	// File operations
	ErrLoadingFileCancelled = errors.New("loading resource file cancelled")
	ErrFailedToReadFile     = errors.New("failed to read resource file")
	ErrFailedToParseFile    = errors.New("failed to parse resource file")

	// Directory operations
	ErrFailedToReadDirectory            = errors.New("failed to read resource directory")
	ErrContextCancelledDuringProcessing = errors.New("context canceled while processing directory")
	ErrNoResourceFiles                  = errors.New("no resource files found")
)
