// Copyright 2020 Erin Shepherd
// SPDX-License-Identifier: ISC

// Package fixwireinterfaces defines the primary interfaces of the fixwire codec
//
// (This package is primarily separated out in order to permit the implementation to
// be broken down into multiple packages)
package fixwireinterfaces

import (
	"reflect"
)

// interface Marshaler is the interface implemented by a type which knows how to encode
// and decode itself to/from fixwire form
//
// MaxEncodedSize must return a constant for the life of the type; it is sampled once,
// when the type's codec is built, and becomes part of the size bound of every
// enclosing type
type Marshaler interface {
	MaxEncodedSize() int
	MarshalFixwire(e Encoder) error
	UnmarshalFixwire(d Decoder) error
}

// interface Codec is the interface by which the marshalling of types which are
// not natively supported may be defined.
//
// Codecs may be registered with a Coder in order to specify how to handle a
// specific type.
//
// It is recommended to use a custom Marshaler (or `fixwire` struct tags) implementation
// when defining your own types instead of defining a Codec. However, this may be useful
// when dealing with third party types.
type Codec interface {
	// Encodes v into the encoder e.
	Encode(e Encoder, v reflect.Value) error

	// Decodes v from the decoder d.
	Decode(d Decoder, v reflect.Value) error

	// MaxSize returns the number of bytes which always suffices to encode
	// any value of the codec's type. It must be constant for the life of
	// the codec.
	MaxSize() int
}

// interface Coder is the top-level interface to the fixwire library
//
// A coder (which may be safely used from multiple threads) provides the ability
// to marshal objects to and from their fixwire encoding. It also contains a
// repository of Codecs which know how to marshal various types
type Coder interface {
	// Serialize encodes o into the front of buf, returning the number of
	// bytes written
	Serialize(buf []byte, o interface{}) (int, error)

	// Deserialize decodes the front of buf into the object pointed to by op,
	// returning the unconsumed remainder of buf
	Deserialize(buf []byte, op interface{}) ([]byte, error)

	// Marshal encodes o into a newly allocated buffer
	Marshal(o interface{}) ([]byte, error)

	// Unmarshal decodes buf into the object pointed to by op, ignoring any
	// unconsumed remainder
	Unmarshal(buf []byte, op interface{}) error

	// MaxSize returns the size bound for values of o's type
	MaxSize(o interface{}) (int, error)

	// MaxSizeOf returns the size bound for values of type t
	MaxSizeOf(t reflect.Type) (int, error)

	// Constructs a new encoder which writes to the front of buf
	NewEncoder(buf []byte) Encoder

	// Constructs a new decoder which consumes the front of buf
	NewDecoder(buf []byte) Decoder

	// Registers the codec. Panics if a codec is already registered for
	// the type, or an attempt is made to register a codec for a type
	// for which it is not permitted to register codecs.
	RegisterCodec(template interface{}, c Codec)
	RegisterCodecReflect(type_ reflect.Type, c Codec)
}

// interface Encoder is the interface to the fixwire encoder
//
// All integers are encoded little-endian. Every method either writes the
// value whole or writes nothing and returns an error
type Encoder interface {
	// EncodeBool writes a bool as a single byte (0 or 1)
	EncodeBool(b bool) error

	// EncodeUint8 writes a single byte
	EncodeUint8(i uint8) error

	// EncodeUint16 writes a 16-bit unsigned integer
	EncodeUint16(i uint16) error

	// EncodeUint32 writes a 32-bit unsigned integer
	EncodeUint32(i uint32) error

	// EncodeUint64 writes a 64-bit unsigned integer
	EncodeUint64(i uint64) error

	// EncodeInt8 writes an 8-bit signed integer (two's complement)
	EncodeInt8(i int8) error

	// EncodeInt16 writes a 16-bit signed integer
	EncodeInt16(i int16) error

	// EncodeInt32 writes a 32-bit signed integer
	EncodeInt32(i int32) error

	// EncodeInt64 writes a 64-bit signed integer
	EncodeInt64(i int64) error

	// EncodeFloat32 writes a single precision floating point number (IEEE 754 bits)
	EncodeFloat32(f float32) error

	// EncodeFloat64 writes a double precision floating point number
	EncodeFloat64(d float64) error

	// EncodeComplex64 writes a complex number as real then imaginary float32 parts
	EncodeComplex64(c complex64) error

	// EncodeComplex128 writes a complex number as real then imaginary float64 parts
	EncodeComplex128(c complex128) error

	// EncodeBytes writes b densely, with no length prefix
	EncodeBytes(b []byte) error

	// Encode writes an object to the encoder
	Encode(o interface{}) error

	// EncodeValue encodes an object to the encoder (via reflection)
	EncodeValue(v reflect.Value) error

	// BytesWritten returns the number of bytes written so far
	BytesWritten() int
}

// interface Decoder is the interface to the fixwire decoder
//
// Every method either consumes the value whole or consumes nothing and
// returns an error
type Decoder interface {
	DecodeBool() (bool, error)
	DecodeUint8() (uint8, error)
	DecodeUint16() (uint16, error)
	DecodeUint32() (uint32, error)
	DecodeUint64() (uint64, error)
	DecodeInt8() (int8, error)
	DecodeInt16() (int16, error)
	DecodeInt32() (int32, error)
	DecodeInt64() (int64, error)

	// DecodeFloat32 reads a single precision floating point number
	DecodeFloat32() (float32, error)

	// DecodeFloat64 reads a double precision floating point number
	DecodeFloat64() (float64, error)

	// DecodeComplex64 reads a complex number (real then imaginary float32 parts)
	DecodeComplex64() (complex64, error)

	// DecodeComplex128 reads a complex number (real then imaginary float64 parts)
	DecodeComplex128() (complex128, error)

	// DecodeBytes fills buf densely from the decoder
	DecodeBytes(buf []byte) error

	// Decode reads an object from the decoder into *op.
	Decode(op interface{}) error

	// DecodeValue reads an object from the decoder
	// v must be a settable value (v.CanSet() is true)
	DecodeValue(v reflect.Value) error

	// Remainder returns the unconsumed tail of the decoder's buffer
	Remainder() []byte
}
