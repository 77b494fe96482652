package config

import "errors"

var (
	// ErrNotFound indicates a key or value name does not exist.
	ErrNotFound = errors.New("config: not found")
	// ErrInvalidPath indicates an empty path segment or malformed path.
	ErrInvalidPath = errors.New("config: invalid path")
	// ErrNoSpace indicates the underlying hive is exhausted.
	ErrNoSpace = errors.New("config: hive exhausted")
	// ErrTypeMismatch indicates a value's stored type tag doesn't match the
	// type the caller asked to coerce it to.
	ErrTypeMismatch = errors.New("config: value type mismatch")
	// ErrCorrupt indicates the key tree is not in the shape this package
	// expects (wrong signature where a nk/vk/lf cell should be).
	ErrCorrupt = errors.New("config: corrupt key tree")
)
