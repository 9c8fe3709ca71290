// Copyright 2020 Erin Shepherd
// SPDX-License-Identifier: ISC

package fixwire

import "go.e43.eu/fixwire/internal/errors"

// The two wire-level errors. Both denote a hard failure of the single
// message being processed, not of the channel it arrived on; neither is
// ever accompanied by a partial result. Match them with errors.Is: the
// library may return them wrapped with the path of the field being
// processed.
var (
	// ErrBufferTooSmall reports a buffer with fewer bytes remaining than
	// the operation requires: on serialization, a destination which cannot
	// hold the value; on deserialization, a source which ran out before the
	// target type's shape was fully consumed. It is detected before any out
	// of bounds access, and a buffer of the type's MaxSize always avoids it
	ErrBufferTooSmall error = errors.ErrBufferTooSmall

	// ErrInvalidValue reports input bytes which, while of sufficient
	// length, do not denote a value of the target type: a boolean byte
	// other than 0 or 1, or a union discriminant with no corresponding
	// variant. It also reports an attempt to serialize a union whose
	// discriminant field holds an undefined ordinal
	ErrInvalidValue error = errors.ErrInvalidValue
)

// Usage errors.
var (
	// ErrNotPointer reports a Deserialize/Unmarshal target which is not a
	// non-nil pointer
	ErrNotPointer error = errors.ErrNotPointer

	// ErrTooManyVariants reports a union declaring more variants than the
	// single discriminant byte can name (256)
	ErrTooManyVariants error = errors.ErrTooManyVariants
)
