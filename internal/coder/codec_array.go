// Copyright 2020 Erin Shepherd
// SPDX-License-Identifier: ISC

package coder

import (
	"fmt"
	"reflect"
	"sync"

	fixwireinterfaces "go.e43.eu/fixwire/interfaces"
)

func newForT(t reflect.Type) func() interface{} {
	return func() interface{} {
		return reflect.New(t)
	}
}

// byteArrayCodec handles [N]byte, which encodes as its bytes verbatim
type byteArrayCodec struct {
	bufs sync.Pool
	len  int
}

var _ xCodec = &byteArrayCodec{}

// arrayCodec handles [N]T as N back-to-back encodings of T
type arrayCodec struct {
	elem xCodec
	len  int
	size int
}

var _ xCodec = &arrayCodec{}

func makeArrayCodec(cr *Coder, t reflect.Type, building map[reflect.Type]bool) fixwireinterfaces.Codec {
	elem := cr.getFieldCodec(t.Elem(), building)
	if err := codecError(elem); err != nil {
		return &errorCodec{err}
	}

	n := t.Len()

	// Dense fast path for byte arrays whose elements use the stock codec
	if elem == uint8CodecI {
		c := new(byteArrayCodec)
		c.bufs.New = newForT(t)
		c.len = n
		return c
	}

	es := elem.MaxSize()
	if es != 0 && n > maxInt/es {
		return &errorCodec{fmt.Errorf("fixwire: Size bound of '%s' overflows", t)}
	}

	return &arrayCodec{
		elem: elem,
		len:  n,
		size: n * es,
	}
}

func (c *byteArrayCodec) Encode(e fixwireinterfaces.Encoder, v reflect.Value) error {
	// If the user passed in an on-the-stack value, e.g.
	// e.Encode(struct{ V [4]byte }{}), then v.CanAddr() may be false
	// which means we cannot slice it.
	//
	// In that scenario, we can either
	//   (1) Copy byte-by-byte, using v.Index(i) each time, or
	//   (2) Copy the data into a temporary buffer on the heap
	// We choose to do (2):
	//   * In cases where the buffer is small, the memory overhead is
	//     likely to be low
	//   * In cases where the buffer is large, the overhead of going
	//     byte-by-byte through the value is likely to be considerable
	//
	// We amortise any allocation overhead if we hit this frequently by
	// storing these temporary buffers in a sync.Pool.
	//
	// We can't hit this case on decode because Decode must always be
	// passed a pointer
	if !v.CanAddr() {
		p := c.bufs.Get().(reflect.Value)
		defer c.bufs.Put(p)

		e := p.Elem()
		e.Set(v)
		v = e
	}

	s := v.Slice(0, v.Len()).Bytes()
	return e.EncodeBytes(s)
}

func (c *byteArrayCodec) Decode(d fixwireinterfaces.Decoder, v reflect.Value) error {
	s := v.Slice(0, v.Len()).Bytes()
	return d.DecodeBytes(s)
}

func (c *byteArrayCodec) MaxSize() int {
	return c.len
}

func (c *arrayCodec) Encode(e fixwireinterfaces.Encoder, v reflect.Value) error {
	for i, l := 0, v.Len(); i < l; i++ {
		if err := c.elem.Encode(e, v.Index(i)); err != nil {
			return err
		}
	}
	return nil
}

func (c *arrayCodec) Decode(d fixwireinterfaces.Decoder, v reflect.Value) error {
	for i, l := 0, v.Len(); i < l; i++ {
		if err := c.elem.Decode(d, v.Index(i)); err != nil {
			return err
		}
	}
	return nil
}

func (c *arrayCodec) MaxSize() int {
	return c.size
}
