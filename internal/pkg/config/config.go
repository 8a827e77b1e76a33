package config

import "io"

// Config defines the configuration lookups used by the application.
// Implementations handle retrieval and type conversion, returning the zero
// value when a key does not exist.
type Config interface {
	io.Closer

	// GetBool retrieves the value associated with key as a bool.
	GetBool(key string) bool

	// GetInt retrieves the value associated with key as an int.
	GetInt(key string) int

	// GetString retrieves the value associated with key as a string.
	GetString(key string) string

	// GetArray retrieves the value associated with key as a slice of strings.
	// Values may be stored as a list or with the format <element1>,<element2>,...
	GetArray(key string) []string
}
