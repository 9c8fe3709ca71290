// Copyright 2020 Erin Shepherd
// SPDX-License-Identifier: ISC

package errors

import (
	"fmt"
	"reflect"
	"strings"
)

type xerror string

func (e xerror) Error() string {
	return string(e)
}

const (
	// Buffer has fewer bytes remaining than the operation requires
	//
	// On encode, the destination cannot hold the value being written; on
	// decode, the source ran out before the target type's shape was fully
	// consumed. Detected before any out-of-bounds access, and always
	// preventable by providing MaxSize bytes.
	ErrBufferTooSmall = xerror("fixwire: Buffer too small")

	// Input bytes do not denote a valid value of the target type
	// (boolean byte other than 0 or 1, undefined union ordinal, ...)
	ErrInvalidValue = xerror("fixwire: Invalid value for type")

	// Deserialize expected pointer parameter
	ErrNotPointer = xerror("fixwire: Expected pointer parameter")

	// Union declares more variants than a single ordinal byte can name
	ErrTooManyVariants = xerror("fixwire: Too many union variants (format supports 256)")
)

// UnsupportedTypeError reports a type with no fixed-bound encoding
// (strings, slices, maps, platform-width integers, ...)
type UnsupportedTypeError struct {
	T reflect.Type
}

func (e UnsupportedTypeError) Error() string {
	return fmt.Sprintf("fixwire: Type '%v' unsupported", e.T)
}

// RecursiveTypeError reports a type which contains itself, directly or via
// intermediate fields. Such a type has no finite size bound, so it is
// rejected when its codec is built, never at encode/decode time.
type RecursiveTypeError struct {
	T reflect.Type
}

func (e RecursiveTypeError) Error() string {
	return fmt.Sprintf("fixwire: Type '%s' is self-referential; its encoded size has no bound", e.T)
}

// UnexportedFieldError reports a struct with an unexported field. Silently
// skipping such fields would change the wire contract invisibly, so they
// must be excluded explicitly with the `fixwire:"-"` tag.
type UnexportedFieldError struct {
	T     reflect.Type
	Field string
}

func (e UnexportedFieldError) Error() string {
	return fmt.Sprintf("fixwire: Field '%s' of '%s' is unexported; tag it `fixwire:\"-\"` to exclude it", e.Field, e.T)
}

// UnionOrdinalError reports a discriminant with no corresponding variant:
// on decode, a wire ordinal at or beyond the variant count; on encode, a
// switch field holding such a value.
type UnionOrdinalError struct {
	Type     string
	Ordinal  uint8
	Variants int
}

func (err UnionOrdinalError) Is(target error) bool {
	return target == ErrInvalidValue
}

func (err UnionOrdinalError) Error() string {
	return fmt.Sprintf("fixwire: Ordinal 0x%02x undefined for union '%s' (%d variants)",
		err.Ordinal, err.Type, err.Variants)
}

type FieldError struct {
	Underlying error
	Path       string
}

func (err FieldError) Unwrap() error {
	return err.Underlying
}

func (err FieldError) Error() string {
	uerr := strings.TrimPrefix(err.Underlying.Error(), "fixwire: ")
	return fmt.Sprintf("fixwire: %s (at %s)", uerr, err.Path)
}

func WithFieldError(err error, parts ...string) error {
	if err == nil {
		return nil
	}

	var combined string
	if parts[0] == "" {
		parts[0] = "<anonymous>"
	}

	switch len(parts) {
	case 1:
		combined = parts[0]
	case 3:
		combined = fmt.Sprintf("%s.%s(%s)", parts[0], parts[1], parts[2])
	default:
		combined = strings.Join(parts, ".")
	}

	switch err := err.(type) {
	case FieldError:
		err.Path = fmt.Sprintf("%s %s", combined, err.Path)
		return err
	default:
		return FieldError{err, combined}
	}
}
