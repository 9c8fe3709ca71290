// Copyright 2020 Erin Shepherd
// SPDX-License-Identifier: ISC

package coder

import (
	"fmt"
	"reflect"

	fixwireinterfaces "go.e43.eu/fixwire/interfaces"
)

// codec embedding a fixed, memoised error (generally
// indicating that a type can't be marshalled)
type errorCodec struct {
	err error
}

func (c *errorCodec) Encode(e fixwireinterfaces.Encoder, v reflect.Value) error {
	return c.err
}

func (c *errorCodec) Decode(d fixwireinterfaces.Decoder, v reflect.Value) error {
	return c.err
}

func (c *errorCodec) MaxSize() int { return 0 }

// codecError returns the memoised construction error of c, or nil if c is
// usable
func codecError(c xCodec) error {
	if ec, ok := c.(*errorCodec); ok {
		return ec.err
	}
	return nil
}

// marshalerCodec handles types which know how to self marshal
//
// The size bound is sampled from MaxEncodedSize once, here; the Marshaler
// contract requires it be constant thereafter
type marshalerCodec struct {
	t    reflect.Type
	size int
}

var _ xCodec = &marshalerCodec{}

func makeMarshalerCodec(t reflect.Type) fixwireinterfaces.Codec {
	size := reflect.New(t).Interface().(fixwireinterfaces.Marshaler).MaxEncodedSize()
	if size < 0 {
		return &errorCodec{fmt.Errorf("fixwire: MaxEncodedSize of '%s' is negative (%d)", t, size)}
	}

	return &marshalerCodec{t: t, size: size}
}

func (mc *marshalerCodec) Encode(e fixwireinterfaces.Encoder, v reflect.Value) error {
	// The Marshaler methods may be declared on the pointer receiver, so we
	// need v to be addressable. If the user passed in an on-the-stack value,
	// e.g. e.Encode(myMarshaler{}), then v.CanAddr() may be false; copy it
	// somewhere addressable first
	if !v.CanAddr() {
		p := reflect.New(mc.t)
		p.Elem().Set(v)
		v = p.Elem()
	}

	return v.Addr().Interface().(fixwireinterfaces.Marshaler).MarshalFixwire(e)
}

func (mc *marshalerCodec) Decode(d fixwireinterfaces.Decoder, v reflect.Value) error {
	// Decode targets are always reached through a pointer, so v is addressable
	return v.Addr().Interface().(fixwireinterfaces.Marshaler).UnmarshalFixwire(d)
}

func (mc *marshalerCodec) MaxSize() int { return mc.size }
