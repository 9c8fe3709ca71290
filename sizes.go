// Copyright 2020 Erin Shepherd
// SPDX-License-Identifier: ISC

package fixwire

// Encoded widths of the scalar types, in bytes. Hand-written and generated
// MaxEncodedSize implementations should be expressed in terms of these
// rather than bare numbers
const (
	BoolSize = 1

	Int8Size   = 1
	Int16Size  = 2
	Int32Size  = 4
	Int64Size  = 8
	Int128Size = 16

	Uint8Size   = 1
	Uint16Size  = 2
	Uint32Size  = 4
	Uint64Size  = 8
	Uint128Size = 16

	Float32Size = 4
	Float64Size = 8

	Complex64Size  = 8
	Complex128Size = 16

	// OrdinalSize is the width of a tagged union's discriminant byte
	OrdinalSize = 1

	// PresenceSize is the width of an optional's presence byte
	PresenceSize = 1
)
