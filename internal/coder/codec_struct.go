// Copyright 2020 Erin Shepherd
// SPDX-License-Identifier: ISC

package coder

import (
	"fmt"
	"reflect"

	fixwireinterfaces "go.e43.eu/fixwire/interfaces"
	"go.e43.eu/fixwire/internal/errors"
	"go.e43.eu/fixwire/internal/tags"
)

type field struct {
	index int
	codec xCodec
	name  string
}

func makeField(cr *Coder, f reflect.StructField, building map[reflect.Type]bool) field {
	if len(f.Index) != 1 {
		panic("Attempt to make field with index of depth >1")
	}

	return field{
		index: f.Index[0],
		codec: cr.getFieldCodec(f.Type, building),
		name:  f.Name,
	}
}

func (f *field) encode(e fixwireinterfaces.Encoder, p reflect.Value) error {
	return f.codec.Encode(e, p.Field(f.index))
}

func (f *field) decode(d fixwireinterfaces.Decoder, p reflect.Value) error {
	return f.codec.Decode(d, p.Field(f.index))
}

// structCodec handles records: the concatenation of the encodings of each
// unskipped field, in declaration order, with no padding or field tags
type structCodec struct {
	name   string
	fields []field
	size   int
}

var _ xCodec = &structCodec{}

// unionCodec handles tagged unions: a single discriminant byte naming the
// active arm, followed by that arm's payload alone. arms is indexed by
// ordinal; the ordinals of a union are required to be exactly 0..len(arms)-1
type unionCodec struct {
	name    string
	swIndex int
	swName  string
	arms    []field
	size    int
}

var _ xCodec = &unionCodec{}

func makeStructCodec(cr *Coder, t reflect.Type, building map[reflect.Type]bool) fixwireinterfaces.Codec {
	var (
		f   reflect.StructField
		tag tags.FieldTag
		err error
	)

	// Iterate until we figure out if we're a union or not
	isUnion := tags.MaybeInUnion
	i, fieldCount := 0, t.NumField()
	for ; i < fieldCount && isUnion == tags.MaybeInUnion; i++ {
		f = t.Field(i)
		tag, err = tags.ParseStructTag(f.Type, f.Tag, &isUnion)
		if err != nil {
			return &errorCodec{fmt.Errorf("fixwire: Parsing tag of field '%s' of '%s': %v",
				f.Name, t, err)}
		}

		switch {
		case tag.Kind == tags.Skip:
			continue
		case f.PkgPath != "":
			return &errorCodec{errors.UnexportedFieldError{T: t, Field: f.Name}}
		case isUnion == tags.MaybeInUnion:
			// Should be unreachable
			panic("We found an unskipped field but somehow don't know if we're a union or not")
		}
	}

	switch isUnion {
	case tags.MaybeInUnion:
		// We never figured it out but also we didn't find any (unskipped)
		// fields. This is a degenerate empty case - such as struct{}, the
		// idiomatic empty union arm - which encodes as zero bytes
		return &structCodec{name: t.Name()}

	case tags.NotInUnion:
		// We're actually a record
		c := &structCodec{
			name:   t.Name(),
			fields: make([]field, 0, fieldCount),
		}

		appendField := func(f reflect.StructField) *errorCodec {
			fc := makeField(cr, f, building)
			if err := codecError(fc.codec); err != nil {
				return &errorCodec{errors.WithFieldError(err, t.Name(), f.Name)}
			}

			fs := fc.codec.MaxSize()
			if fs > maxInt-c.size {
				return &errorCodec{fmt.Errorf("fixwire: Size bound of '%s' overflows", t)}
			}

			c.fields = append(c.fields, fc)
			c.size += fs
			return nil
		}

		if ec := appendField(f); ec != nil {
			return ec
		}
		for ; i < fieldCount; i++ {
			f = t.Field(i)
			tag, err = tags.ParseStructTag(f.Type, f.Tag, &isUnion)
			if err != nil {
				return &errorCodec{fmt.Errorf("fixwire: Parsing tag of field '%s' of '%s': %v",
					f.Name, t, err)}
			}

			if tag.Kind == tags.Skip {
				continue
			}

			if f.PkgPath != "" {
				return &errorCodec{errors.UnexportedFieldError{T: t, Field: f.Name}}
			}

			if ec := appendField(f); ec != nil {
				return ec
			}
		}

		return c

	case tags.InUnion:
		// We're actually a union, and f is our switch (the tag parser has
		// already required it to have kind uint8 and to be the first
		// unskipped field). Every following field is an arm carrying its
		// ordinal in a union:N tag
		if tag.Kind != tags.UnionSwitch {
			// Shouldn't happen
			panic("First element of union not switch")
		}

		c := &unionCodec{
			name:    t.Name(),
			swIndex: f.Index[0],
			swName:  f.Name,
		}

		type armDef struct {
			ordinal int
			f       field
		}
		var (
			defs   []armDef
			maxOrd = -1
			seen   = make(map[int]bool, fieldCount-1)
		)

		for ; i < fieldCount; i++ {
			f = t.Field(i)
			tag, err = tags.ParseStructTag(f.Type, f.Tag, &isUnion)
			if err != nil {
				return &errorCodec{fmt.Errorf("fixwire: Parsing tag of field '%s' of '%s': %v",
					f.Name, t, err)}
			}

			if tag.Kind == tags.Skip {
				continue
			}

			if f.PkgPath != "" {
				return &errorCodec{errors.UnexportedFieldError{T: t, Field: f.Name}}
			}

			// A single discriminant byte can only name 256 arms
			if tag.Ordinal > 0xFF {
				return &errorCodec{errors.WithFieldError(errors.ErrTooManyVariants, t.Name(), f.Name)}
			}

			if seen[tag.Ordinal] {
				return &errorCodec{fmt.Errorf("fixwire: Ordinal %d of union '%s' duplicated", tag.Ordinal, t)}
			}
			seen[tag.Ordinal] = true

			fc := makeField(cr, f, building)
			if err := codecError(fc.codec); err != nil {
				return &errorCodec{errors.WithFieldError(err, t.Name(), f.Name)}
			}

			if tag.Ordinal > maxOrd {
				maxOrd = tag.Ordinal
			}
			defs = append(defs, armDef{tag.Ordinal, fc})
		}

		if len(defs) == 0 {
			return &errorCodec{fmt.Errorf("fixwire: Union '%s' has no variants", t)}
		}

		// Ordinals must be the contiguous set 0..n-1: anything else would
		// leave wire discriminants with no meaning, or arms which can never
		// be selected
		if maxOrd != len(defs)-1 {
			missing := 0
			for seen[missing] {
				missing++
			}
			return &errorCodec{fmt.Errorf("fixwire: Union '%s' missing variant for ordinal %d", t, missing)}
		}

		c.arms = make([]field, len(defs))
		maxArm := 0
		for _, def := range defs {
			c.arms[def.ordinal] = def.f
			if as := def.f.codec.MaxSize(); as > maxArm {
				maxArm = as
			}
		}

		if maxArm >= maxInt {
			return &errorCodec{fmt.Errorf("fixwire: Size bound of '%s' overflows", t)}
		}
		c.size = 1 + maxArm

		return c

	default:
		panic("unreachable")
	}
}

func (c *structCodec) Encode(e fixwireinterfaces.Encoder, v reflect.Value) error {
	for _, f := range c.fields {
		if err := f.encode(e, v); err != nil {
			return errors.WithFieldError(err, c.name, f.name)
		}
	}
	return nil
}

func (c *structCodec) Decode(d fixwireinterfaces.Decoder, v reflect.Value) error {
	for _, f := range c.fields {
		if err := f.decode(d, v); err != nil {
			return errors.WithFieldError(err, c.name, f.name)
		}
	}
	return nil
}

func (c *structCodec) MaxSize() int {
	return c.size
}

func (c *unionCodec) Encode(e fixwireinterfaces.Encoder, v reflect.Value) error {
	ord := uint8(v.Field(c.swIndex).Uint())

	// Validate before the discriminant byte is written, so that nothing is
	// emitted for an unencodable value
	if int(ord) >= len(c.arms) {
		err := errors.UnionOrdinalError{Type: c.name, Ordinal: ord, Variants: len(c.arms)}
		return errors.WithFieldError(err, c.name, c.swName, "union:switch")
	}

	if err := e.EncodeUint8(ord); err != nil {
		return errors.WithFieldError(err, c.name, c.swName, "union:switch")
	}

	f := c.arms[ord]
	if err := f.encode(e, v); err != nil {
		return errors.WithFieldError(err, c.name, f.name, fmt.Sprintf("union:%d", ord))
	}
	return nil
}

func (c *unionCodec) Decode(d fixwireinterfaces.Decoder, v reflect.Value) error {
	ord, err := d.DecodeUint8()
	if err != nil {
		return errors.WithFieldError(err, c.name, c.swName, "union:switch")
	}

	// An undefined discriminant fails here, before any payload byte is
	// consumed
	if int(ord) >= len(c.arms) {
		err := errors.UnionOrdinalError{Type: c.name, Ordinal: ord, Variants: len(c.arms)}
		return errors.WithFieldError(err, c.name, c.swName, "union:switch")
	}

	v.Field(c.swIndex).SetUint(uint64(ord))

	// Zero the inactive arms: what a value decodes to must not depend on
	// what the target held beforehand
	for i := range c.arms {
		if i != int(ord) {
			v.Field(c.arms[i].index).SetZero()
		}
	}

	f := c.arms[ord]
	if err := f.decode(d, v); err != nil {
		return errors.WithFieldError(err, c.name, f.name, fmt.Sprintf("union:%d", ord))
	}
	return nil
}

func (c *unionCodec) MaxSize() int {
	return c.size
}
