// Copyright 2020 Erin Shepherd
// SPDX-License-Identifier: ISC

package coder

import (
	"reflect"

	fixwireinterfaces "go.e43.eu/fixwire/interfaces"
)

// boolCodec handles booleans
type boolCodec struct{}

var boolCodecI xCodec = boolCodec{}

func (_ boolCodec) Encode(e fixwireinterfaces.Encoder, v reflect.Value) error {
	return e.EncodeBool(v.Bool())
}

func (_ boolCodec) Decode(d fixwireinterfaces.Decoder, v reflect.Value) error {
	b, e := d.DecodeBool()
	v.SetBool(b)
	return e
}

func (_ boolCodec) MaxSize() int { return 1 }

// [u]intNCodec handle the fixed width integers; every width is a distinct
// wire shape
type int8Codec struct{}
type int16Codec struct{}
type int32Codec struct{}
type int64Codec struct{}
type uint8Codec struct{}
type uint16Codec struct{}
type uint32Codec struct{}
type uint64Codec struct{}

var (
	int8CodecI   xCodec = int8Codec{}
	int16CodecI  xCodec = int16Codec{}
	int32CodecI  xCodec = int32Codec{}
	int64CodecI  xCodec = int64Codec{}
	uint8CodecI  xCodec = uint8Codec{}
	uint16CodecI xCodec = uint16Codec{}
	uint32CodecI xCodec = uint32Codec{}
	uint64CodecI xCodec = uint64Codec{}
)

func (_ int8Codec) Encode(e fixwireinterfaces.Encoder, v reflect.Value) error {
	return e.EncodeInt8(int8(v.Int()))
}

func (_ int8Codec) Decode(d fixwireinterfaces.Decoder, v reflect.Value) error {
	i, e := d.DecodeInt8()
	v.SetInt(int64(i))
	return e
}

func (_ int8Codec) MaxSize() int { return 1 }

func (_ int16Codec) Encode(e fixwireinterfaces.Encoder, v reflect.Value) error {
	return e.EncodeInt16(int16(v.Int()))
}

func (_ int16Codec) Decode(d fixwireinterfaces.Decoder, v reflect.Value) error {
	i, e := d.DecodeInt16()
	v.SetInt(int64(i))
	return e
}

func (_ int16Codec) MaxSize() int { return 2 }

func (_ int32Codec) Encode(e fixwireinterfaces.Encoder, v reflect.Value) error {
	return e.EncodeInt32(int32(v.Int()))
}

func (_ int32Codec) Decode(d fixwireinterfaces.Decoder, v reflect.Value) error {
	i, e := d.DecodeInt32()
	v.SetInt(int64(i))
	return e
}

func (_ int32Codec) MaxSize() int { return 4 }

func (_ int64Codec) Encode(e fixwireinterfaces.Encoder, v reflect.Value) error {
	return e.EncodeInt64(v.Int())
}

func (_ int64Codec) Decode(d fixwireinterfaces.Decoder, v reflect.Value) error {
	i, e := d.DecodeInt64()
	v.SetInt(i)
	return e
}

func (_ int64Codec) MaxSize() int { return 8 }

func (_ uint8Codec) Encode(e fixwireinterfaces.Encoder, v reflect.Value) error {
	return e.EncodeUint8(uint8(v.Uint()))
}

func (_ uint8Codec) Decode(d fixwireinterfaces.Decoder, v reflect.Value) error {
	i, e := d.DecodeUint8()
	v.SetUint(uint64(i))
	return e
}

func (_ uint8Codec) MaxSize() int { return 1 }

func (_ uint16Codec) Encode(e fixwireinterfaces.Encoder, v reflect.Value) error {
	return e.EncodeUint16(uint16(v.Uint()))
}

func (_ uint16Codec) Decode(d fixwireinterfaces.Decoder, v reflect.Value) error {
	i, e := d.DecodeUint16()
	v.SetUint(uint64(i))
	return e
}

func (_ uint16Codec) MaxSize() int { return 2 }

func (_ uint32Codec) Encode(e fixwireinterfaces.Encoder, v reflect.Value) error {
	return e.EncodeUint32(uint32(v.Uint()))
}

func (_ uint32Codec) Decode(d fixwireinterfaces.Decoder, v reflect.Value) error {
	i, e := d.DecodeUint32()
	v.SetUint(uint64(i))
	return e
}

func (_ uint32Codec) MaxSize() int { return 4 }

func (_ uint64Codec) Encode(e fixwireinterfaces.Encoder, v reflect.Value) error {
	return e.EncodeUint64(v.Uint())
}

func (_ uint64Codec) Decode(d fixwireinterfaces.Decoder, v reflect.Value) error {
	i, e := d.DecodeUint64()
	v.SetUint(i)
	return e
}

func (_ uint64Codec) MaxSize() int { return 8 }

// float32Codec handles single precision floats
type float32Codec struct{}

var float32CodecI xCodec = float32Codec{}

func (_ float32Codec) Encode(e fixwireinterfaces.Encoder, v reflect.Value) error {
	return e.EncodeFloat32(float32(v.Float()))
}

func (_ float32Codec) Decode(d fixwireinterfaces.Decoder, v reflect.Value) error {
	f, e := d.DecodeFloat32()
	v.SetFloat(float64(f))
	return e
}

func (_ float32Codec) MaxSize() int { return 4 }

// float64Codec handles double precision floats
type float64Codec struct{}

var float64CodecI xCodec = float64Codec{}

func (_ float64Codec) Encode(e fixwireinterfaces.Encoder, v reflect.Value) error {
	return e.EncodeFloat64(v.Float())
}

func (_ float64Codec) Decode(d fixwireinterfaces.Decoder, v reflect.Value) error {
	f, e := d.DecodeFloat64()
	v.SetFloat(f)
	return e
}

func (_ float64Codec) MaxSize() int { return 8 }

// complex64Codec handles complex64s
type complex64Codec struct{}

var complex64CodecI xCodec = complex64Codec{}

func (_ complex64Codec) Encode(e fixwireinterfaces.Encoder, v reflect.Value) error {
	return e.EncodeComplex64(complex64(v.Complex()))
}

func (_ complex64Codec) Decode(d fixwireinterfaces.Decoder, v reflect.Value) error {
	c, err := d.DecodeComplex64()
	v.SetComplex(complex128(c))
	return err
}

func (_ complex64Codec) MaxSize() int { return 8 }

// complex128Codec handles complex128s
type complex128Codec struct{}

var complex128CodecI xCodec = complex128Codec{}

func (_ complex128Codec) Encode(e fixwireinterfaces.Encoder, v reflect.Value) error {
	return e.EncodeComplex128(v.Complex())
}

func (_ complex128Codec) Decode(d fixwireinterfaces.Decoder, v reflect.Value) error {
	c, err := d.DecodeComplex128()
	v.SetComplex(c)
	return err
}

func (_ complex128Codec) MaxSize() int { return 16 }
