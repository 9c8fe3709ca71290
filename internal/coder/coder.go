// Copyright 2020 Erin Shepherd
// SPDX-License-Identifier: ISC

package coder

import (
	"fmt"
	"reflect"
	"sync"

	fixwireinterfaces "go.e43.eu/fixwire/interfaces"
	"go.e43.eu/fixwire/internal/errors"
)

const (
	// maxUint is the maximum value a uint can hold
	maxUint = ^uint(0)
	// maxInt is the maximum value an int can hold
	maxInt = int(maxUint >> 1)
)

// type xCodec is the internal codec representation we use
type xCodec = fixwireinterfaces.Codec

var (
	marshalerType = reflect.TypeOf((*fixwireinterfaces.Marshaler)(nil)).Elem()
)

type Coder struct {
	knownCodecs sync.Map // map[reflect.Type]xCodec
}

func NewCoder() *Coder {
	return new(Coder)
}

func (cr *Coder) getCodec(t reflect.Type) xCodec {
	// Common case: already known; just lookup type
	c, ok := cr.knownCodecs.Load(t)
	if ok {
		return c.(xCodec)
	}

	// Less common case: need to construct a codec
	return cr.buildAndPublish(t, map[reflect.Type]bool{t: true})
}

// getFieldCodec returns the codec for a type reached while constructing the
// codec of an enclosing type. building holds every type on the path from the
// root of the construction; meeting one of them again means the type contains
// itself and so has no finite size bound, which we must reject here - the
// bound computation would otherwise never terminate
func (cr *Coder) getFieldCodec(t reflect.Type, building map[reflect.Type]bool) xCodec {
	c, ok := cr.knownCodecs.Load(t)
	if ok {
		return c.(xCodec)
	}

	if building[t] {
		return &errorCodec{errors.RecursiveTypeError{T: t}}
	}

	building[t] = true
	cc := cr.buildAndPublish(t, building)
	delete(building, t)
	return cc
}

func (cr *Coder) buildAndPublish(t reflect.Type, building map[reflect.Type]bool) xCodec {
	// Codecs (including error codecs, which memoise construction failures)
	// are built whole and then published. Two goroutines may race to build
	// the codec for a type; the first to publish wins and the loser adopts
	// the winner's. Published codecs are immutable, so either outcome is
	// indistinguishable to callers
	c := cr.buildCodec(t, building)
	actual, _ := cr.knownCodecs.LoadOrStore(t, c)
	return actual.(xCodec)
}

func (cr *Coder) buildCodec(t reflect.Type, building map[reflect.Type]bool) fixwireinterfaces.Codec {
	k := t.Kind()

	switch k {
	case reflect.Ptr:
		return makeOptionalCodec(cr, t, building)

	case reflect.Array:
		return makeArrayCodec(cr, t, building)
	}

	switch {
	case t.Implements(marshalerType), reflect.PtrTo(t).Implements(marshalerType):
		return makeMarshalerCodec(t)
	}

	switch k {
	case reflect.Bool:
		return boolCodecI
	case reflect.Int8:
		return int8CodecI
	case reflect.Int16:
		return int16CodecI
	case reflect.Int32:
		return int32CodecI
	case reflect.Int64:
		return int64CodecI
	case reflect.Uint8:
		return uint8CodecI
	case reflect.Uint16:
		return uint16CodecI
	case reflect.Uint32:
		return uint32CodecI
	case reflect.Uint64:
		return uint64CodecI
	case reflect.Float32:
		return float32CodecI
	case reflect.Float64:
		return float64CodecI
	case reflect.Complex64:
		return complex64CodecI
	case reflect.Complex128:
		return complex128CodecI
	case reflect.Struct:
		return makeStructCodec(cr, t, building)
	default:
		// Everything else either has no fixed-bound encoding (strings,
		// slices, maps), or a width which varies between platforms (int,
		// uint, uintptr), or is not data at all
		return &errorCodec{errors.UnsupportedTypeError{T: t}}
	}
}

// Types of object you are prevented from registering codecs for
var prohibitedCustomCodecKinds = map[reflect.Kind]struct{}{
	reflect.Invalid: struct{}{},

	// Prohibited because these would interact poorly with the built in
	// composition rules for the same kinds.
	// These problems are not unsolvable, but we are protecting against them for now
	reflect.Array: struct{}{},

	// Would make behaviour of pointers in general inconsistent
	// (a pointer is always an optional of its pointee)
	reflect.Ptr: struct{}{},

	// These have no fixed-bound encoding for a codec to promise
	reflect.Slice:  struct{}{},
	reflect.String: struct{}{},
	reflect.Map:    struct{}{},

	// These make little sense to support
	reflect.Chan: struct{}{},
	reflect.Func: struct{}{},

	reflect.UnsafePointer: struct{}{},
}

// These are blocked because implementing different behaviour for
// the primitive types would be incredibly confusing
var prohibitedPrimitives = map[reflect.Type]struct{}{
	reflect.TypeOf(false):         struct{}{},
	reflect.TypeOf(int8(0)):       struct{}{},
	reflect.TypeOf(int16(0)):      struct{}{},
	reflect.TypeOf(int32(0)):      struct{}{},
	reflect.TypeOf(int64(0)):      struct{}{},
	reflect.TypeOf(int(0)):        struct{}{},
	reflect.TypeOf(uint8(0)):      struct{}{},
	reflect.TypeOf(uint16(0)):     struct{}{},
	reflect.TypeOf(uint32(0)):     struct{}{},
	reflect.TypeOf(uint64(0)):     struct{}{},
	reflect.TypeOf(uint(0)):       struct{}{},
	reflect.TypeOf(uintptr(0)):    struct{}{},
	reflect.TypeOf(float32(0)):    struct{}{},
	reflect.TypeOf(float64(0)):    struct{}{},
	reflect.TypeOf(complex64(0)):  struct{}{},
	reflect.TypeOf(complex128(0)): struct{}{},
}

func (cr *Coder) RegisterCodec(template interface{}, c fixwireinterfaces.Codec) {
	cr.RegisterCodecReflect(reflect.TypeOf(template), c)
}

func (cr *Coder) RegisterCodecReflect(t reflect.Type, c fixwireinterfaces.Codec) {
	if _, badKind := prohibitedCustomCodecKinds[t.Kind()]; badKind {
		panic(fmt.Sprintf("Attempt to register codec for type %s which is of a prohibited kind", t))
	}

	if _, isPrimitive := prohibitedPrimitives[t]; isPrimitive {
		panic(fmt.Sprintf("Attempt to register codec for primitive %s is prohibited", t))
	}

	if size := c.MaxSize(); size < 0 {
		panic(fmt.Sprintf("Attempt to register codec for type %s with negative size bound %d", t, size))
	}

	existing, found := cr.knownCodecs.LoadOrStore(t, c)
	if found && existing.(xCodec) != c {
		panic(fmt.Sprintf("Attempt to register codec '%s' for type '%s' but '%s' is already registered", c, t, existing))
	}
}

func (cr *Coder) NewEncoder(buf []byte) fixwireinterfaces.Encoder {
	return cr.newEncoder(buf)
}

func (cr *Coder) newEncoder(buf []byte) *encoder {
	e := encoderPool.Get().(*encoder)
	e.reset(cr, buf)
	return e
}

func (cr *Coder) NewDecoder(buf []byte) fixwireinterfaces.Decoder {
	return cr.newDecoder(buf)
}

func (cr *Coder) newDecoder(buf []byte) *decoder {
	d := decoderPool.Get().(*decoder)
	d.reset(cr, buf)
	return d
}

// Serialize encodes o into the front of buf, returning the number of bytes
// written. buf of MaxSize(o) bytes always suffices; a smaller buf may,
// depending on the value
func (cr *Coder) Serialize(buf []byte, o interface{}) (int, error) {
	e := cr.newEncoder(buf)
	err := e.Encode(o)
	n := e.BytesWritten()
	e.release()

	if err != nil {
		return 0, err
	}
	return n, nil
}

// Deserialize decodes the front of buf into *op, returning the unconsumed
// tail of buf. The tail aliases buf, permitting trailing data to be located
// or a second value decoded from the same buffer
func (cr *Coder) Deserialize(buf []byte, op interface{}) ([]byte, error) {
	d := cr.newDecoder(buf)
	err := d.Decode(op)
	rem := d.Remainder()
	d.release()

	if err != nil {
		return nil, err
	}
	return rem, nil
}

// Marshal encodes o into a new buffer sized to o's type's bound, returning
// the written prefix
func (cr *Coder) Marshal(o interface{}) ([]byte, error) {
	size, err := cr.MaxSize(o)
	if err != nil {
		return nil, err
	}

	buf := make([]byte, size)
	n, err := cr.Serialize(buf, o)
	if err != nil {
		return nil, err
	}
	return buf[:n], nil
}

// Unmarshal decodes buf into *op, ignoring any unconsumed remainder
func (cr *Coder) Unmarshal(buf []byte, op interface{}) error {
	_, err := cr.Deserialize(buf, op)
	return err
}

// MaxSize returns the size bound of o's type: the number of bytes which
// always suffices to encode any value of that type. It depends only on the
// type, never on o's contents
func (cr *Coder) MaxSize(o interface{}) (int, error) {
	return cr.MaxSizeOf(reflect.TypeOf(o))
}

// MaxSizeOf returns the size bound of type t
func (cr *Coder) MaxSizeOf(t reflect.Type) (int, error) {
	if t == nil {
		return 0, errors.UnsupportedTypeError{T: nil}
	}

	c := cr.getCodec(t)
	if err := codecError(c); err != nil {
		return 0, err
	}
	return c.MaxSize(), nil
}
