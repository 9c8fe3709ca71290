// Copyright 2020 Erin Shepherd
// SPDX-License-Identifier: ISC

package fixwire

import (
	"reflect"

	fixwireinterfaces "go.e43.eu/fixwire/interfaces"
	"go.e43.eu/fixwire/internal/coder"
)

type defaultCoder struct {
	coder.Coder
}

func (d *defaultCoder) RegisterCodec(template interface{}, c fixwireinterfaces.Codec) {
	panic("Cannot register type on default coder")
}

func (d *defaultCoder) RegisterCodecReflect(type_ reflect.Type, c fixwireinterfaces.Codec) {
	panic("Cannot register type on default coder")
}

// The default coder (used by the package global functions)
//
// This behaves identically to a coder created using NewCoder, except
// that it is not permitted to register any codecs upon it.
var DefaultCoder defaultCoder

// Serialize encodes o into the front of buf, returning the number of bytes
// written. A buf of MaxSize(o) bytes always suffices; a shorter one may,
// depending on the value, and if it does not the error is ErrBufferTooSmall
// with nothing usable left in buf
func Serialize(buf []byte, o interface{}) (int, error) {
	return DefaultCoder.Serialize(buf, o)
}

// Deserialize decodes the front of buf into the object pointed to by op,
// returning the unconsumed tail of buf. The tail aliases buf; use it to
// pick up trailing data, or to decode the next of several concatenated
// values
func Deserialize(buf []byte, op interface{}) ([]byte, error) {
	return DefaultCoder.Deserialize(buf, op)
}

// Marshal encodes o into a newly allocated buffer of its type's bound,
// returning the written prefix
func Marshal(o interface{}) ([]byte, error) {
	return DefaultCoder.Marshal(o)
}

// Unmarshal decodes buf into the object pointed to by op, ignoring any
// unconsumed remainder
func Unmarshal(buf []byte, op interface{}) error {
	return DefaultCoder.Unmarshal(buf, op)
}

// MaxSize returns the size bound of o's type: the byte count which always
// suffices to encode any value of that type. It is a property of the type
// alone; o's contents are never inspected
func MaxSize(o interface{}) (int, error) {
	return DefaultCoder.MaxSize(o)
}

// MaxSizeOf returns the size bound of type t
func MaxSizeOf(t reflect.Type) (int, error) {
	return DefaultCoder.MaxSizeOf(t)
}

// Constructs a new encoder which writes to the front of buf
func NewEncoder(buf []byte) Encoder {
	return DefaultCoder.NewEncoder(buf)
}

// Constructs a new decoder which consumes the front of buf
func NewDecoder(buf []byte) Decoder {
	return DefaultCoder.NewDecoder(buf)
}

// Construct a new Coder
func NewCoder() Coder {
	return coder.NewCoder()
}
