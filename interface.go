// Copyright 2020 Erin Shepherd
// SPDX-License-Identifier: ISC

// Package fixwire implements a predictable binary encoding for fixed-shape
// values: for every encodable type, the maximum number of bytes its encoding
// can occupy is known statically, before any value of it exists.
//
// That bound - available as MaxSize - lets a caller allocate one fixed
// buffer per message type and never worry about growth or re-encoding,
// which suits exchanging structured messages with resource-constrained
// embedded peers. Encoding and decoding perform no allocation, and there
// are no variable-length integer representations: a value's cost on the
// wire is decided entirely by its type (and, for optionals and unions, by
// which alternative it holds - never by magnitudes or lengths).
//
// Serialize returns the exact number of bytes written, which may be below
// the bound; Deserialize returns the unconsumed tail of its input buffer.
// Together these compose fixed-size messages with variable-length data: a
// caller appends raw trailing bytes after the bytes written, and the
// decoding side finds them in the returned remainder. Because encodings
// carry no framing of their own, several serialized values may also simply
// be concatenated and decoded in sequence, each decode picking up at the
// previous one's remainder.
//
// The mapping from Go types to the wire format is:
//
//	               Go | Encoding                          | Max size
//	------------------+-----------------------------------+--------------------
//	             bool | single byte, 0 or 1               | 1
//	     int8...int64 | two's complement, little-endian   | width (1/2/4/8)
//	   uint8...uint64 | little-endian                     | width (1/2/4/8)
//	  Int128, Uint128 | two's complement, little-endian   | 16
//	 float32, float64 | IEEE 754 bits, little-endian      | width (4/8)
//	    complex64/128 | real part, then imaginary part    | 8/16
//	             [N]T | N encodings of T, in index order  | N * max(T)
//	               *T | presence byte; T iff present      | 1 + max(T)
//	     struct{ ...} | fields in declaration order       | sum of field maxes
//	    union structs | ordinal byte, then the active arm | 1 + largest arm max
//
// All multi-byte scalars are little-endian on every platform. There is no
// padding, no alignment, and no per-field tagging: a record's encoding is
// the plain concatenation of its fields' encodings.
//
// Types whose encoded size has no fixed bound are rejected rather than
// encoded: strings, slices and maps (unbounded length), int, uint and
// uintptr (platform-dependent width), and any type which contains itself
// directly or through intermediate fields. Use explicit-width integers,
// fixed arrays, and pointer-optionals instead; carry unbounded payloads as
// raw trailing bytes after the fixed-size portion.
//
// A pointer field encodes as an optional: one presence byte (0 absent,
// 1 present) followed by the pointee's encoding only when present. An
// absent optional therefore occupies exactly one byte.
//
// Go has no native tagged unions, so they are declared as structs using the
// `fixwire:"..."` tag: the first field is the discriminant, of kind uint8,
// tagged `union:switch`; every following field is a variant arm tagged with
// its ordinal:
//
//	type Command struct {
//		Op    uint8    `fixwire:"union:switch"`
//		Halt  struct{} `fixwire:"union:0"`
//		Speed uint32   `fixwire:"union:1"`
//	}
//
// Arm ordinals must be exactly 0..n-1, each defined once, with at most 256
// arms. Encoding writes the discriminant byte and then only the active
// arm's payload - never padding out to the largest arm - so the bytes
// written vary by variant while remaining within the union's bound. An
// empty payload is a struct{} arm, occupying zero bytes. A discriminant
// with no corresponding arm fails with an invalid-value error, on encode
// before anything is written and on decode before any payload byte is
// consumed.
//
// The remaining tag directive is `fixwire:"-"`, which excludes a field from
// the encoding and from the size bound. Unexported fields must be excluded
// this way explicitly; skipping them silently would change the wire
// contract invisibly.
//
// You can specify custom behaviour for your own type by implementing the
// Marshaler interface, which replaces the default composition rules with
// your MarshalFixwire/UnmarshalFixwire methods and your MaxEncodedSize
// bound. Code generators deriving encodings for message types plug in
// through the same three methods. Behaviour for third party types can be
// overridden by registering a Codec; see that type's documentation and the
// Coder with which codecs are registered.
//
// To avoid confusion and conflicts between different packages, it is not
// possible to register new codecs with the default (global) Coder.
package fixwire

import fixwireinterfaces "go.e43.eu/fixwire/interfaces"

// interface Coder is the top-level interface to the fixwire library
//
// A coder (which may be safely used from multiple threads) provides the
// ability to marshal objects to and from their fixwire encoding, and to
// query the size bounds of their types. It also contains a repository of
// Codecs which know how to marshal various types
type Coder = fixwireinterfaces.Coder

// interface Encoder is the interface to the fixwire encoder
type Encoder = fixwireinterfaces.Encoder

// interface Decoder is the interface to the fixwire decoder
type Decoder = fixwireinterfaces.Decoder

// interface Marshaler is implemented by types which encode themselves
type Marshaler = fixwireinterfaces.Marshaler

// interface Codec describes the marshalling of a single type, for
// registration with a Coder
type Codec = fixwireinterfaces.Codec
