// Copyright 2020 Erin Shepherd
// SPDX-License-Identifier: ISC

package coder

import (
	"fmt"
	"reflect"

	fixwireinterfaces "go.e43.eu/fixwire/interfaces"
)

// optionalCodec handles pointers, which encode as optional values: one
// presence byte (0 absent, 1 present), then the pointee when present
type optionalCodec struct {
	elem  xCodec
	elemt reflect.Type
	nilp  reflect.Value
	size  int
}

var _ xCodec = &optionalCodec{}

func makeOptionalCodec(cr *Coder, t reflect.Type, building map[reflect.Type]bool) fixwireinterfaces.Codec {
	elemt := t.Elem()
	elem := cr.getFieldCodec(elemt, building)
	if err := codecError(elem); err != nil {
		return &errorCodec{err}
	}

	es := elem.MaxSize()
	if es >= maxInt {
		return &errorCodec{fmt.Errorf("fixwire: Size bound of '%s' overflows", t)}
	}

	return &optionalCodec{
		elem:  elem,
		elemt: elemt,
		nilp:  reflect.Zero(t),
		size:  1 + es,
	}
}

func (c *optionalCodec) Encode(e fixwireinterfaces.Encoder, v reflect.Value) error {
	isNil := v.IsNil()
	err := e.EncodeBool(!isNil)
	if err != nil {
		return err
	}

	if isNil {
		return nil
	}

	return c.elem.Encode(e, v.Elem())
}

func (c *optionalCodec) Decode(d fixwireinterfaces.Decoder, v reflect.Value) error {
	present, err := d.DecodeBool()
	if err != nil {
		return err
	}

	if !present {
		v.Set(c.nilp)
		return nil
	}

	v.Set(reflect.New(c.elemt))
	return c.elem.Decode(d, v.Elem())
}

func (c *optionalCodec) MaxSize() int {
	return c.size
}
