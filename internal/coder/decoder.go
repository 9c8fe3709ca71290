// Copyright 2020 Erin Shepherd
// SPDX-License-Identifier: ISC

package coder

import (
	"encoding/binary"
	"math"
	"reflect"
	"sync"

	fixwireinterfaces "go.e43.eu/fixwire/interfaces"
	"go.e43.eu/fixwire/internal/errors"
)

var decoderPool = sync.Pool{
	New: func() interface{} {
		return new(decoder)
	},
}

type decoder struct {
	// Unconsumed input
	data []byte
	cr   *Coder
}

var _ fixwireinterfaces.Decoder = &decoder{}

func (d *decoder) reset(cr *Coder, data []byte) {
	d.data = data
	d.cr = cr
}

// take consumes the next n bytes of input. On ErrBufferTooSmall nothing is
// consumed.
func (d *decoder) take(n int) ([]byte, error) {
	if len(d.data) < n {
		return nil, errors.ErrBufferTooSmall
	}
	b := d.data[:n]
	d.data = d.data[n:]
	return b, nil
}

func (d *decoder) DecodeBool() (bool, error) {
	b, err := d.take(1)
	if err != nil {
		return false, err
	}

	switch b[0] {
	case 0:
		return false, nil
	case 1:
		return true, nil
	default:
		return false, errors.ErrInvalidValue
	}
}

func (d *decoder) DecodeUint8() (uint8, error) {
	b, err := d.take(1)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

func (d *decoder) DecodeUint16() (uint16, error) {
	b, err := d.take(2)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint16(b), nil
}

func (d *decoder) DecodeUint32() (uint32, error) {
	b, err := d.take(4)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(b), nil
}

func (d *decoder) DecodeUint64() (uint64, error) {
	b, err := d.take(8)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint64(b), nil
}

func (d *decoder) DecodeInt8() (int8, error) {
	u, err := d.DecodeUint8()
	return int8(u), err
}

func (d *decoder) DecodeInt16() (int16, error) {
	u, err := d.DecodeUint16()
	return int16(u), err
}

func (d *decoder) DecodeInt32() (int32, error) {
	u, err := d.DecodeUint32()
	return int32(u), err
}

func (d *decoder) DecodeInt64() (int64, error) {
	u, err := d.DecodeUint64()
	return int64(u), err
}

func (d *decoder) DecodeFloat32() (float32, error) {
	u, err := d.DecodeUint32()
	return math.Float32frombits(u), err
}

func (d *decoder) DecodeFloat64() (float64, error) {
	u, err := d.DecodeUint64()
	return math.Float64frombits(u), err
}

func (d *decoder) DecodeComplex64() (complex64, error) {
	b, err := d.take(8)
	if err != nil {
		return 0, err
	}
	re := math.Float32frombits(binary.LittleEndian.Uint32(b[0:4]))
	im := math.Float32frombits(binary.LittleEndian.Uint32(b[4:8]))
	return complex(re, im), nil
}

func (d *decoder) DecodeComplex128() (complex128, error) {
	b, err := d.take(16)
	if err != nil {
		return 0, err
	}
	re := math.Float64frombits(binary.LittleEndian.Uint64(b[0:8]))
	im := math.Float64frombits(binary.LittleEndian.Uint64(b[8:16]))
	return complex(re, im), nil
}

func (d *decoder) DecodeBytes(buf []byte) error {
	b, err := d.take(len(buf))
	if err != nil {
		return err
	}
	copy(buf, b)
	return nil
}

func (d *decoder) Remainder() []byte {
	return d.data
}

func (d *decoder) Decode(op interface{}) (err error) {
	v := reflect.ValueOf(op)
	if v.Kind() != reflect.Ptr || v.IsNil() {
		return errors.ErrNotPointer
	}

	return d.decodeValue(v.Elem())
}

func (d *decoder) DecodeValue(v reflect.Value) (err error) {
	if !v.CanSet() {
		return errors.ErrNotPointer
	}
	return d.decodeValue(v)
}

func (d *decoder) decodeValue(v reflect.Value) (err error) {
	return d.cr.getCodec(v.Type()).Decode(d, v)
}

func (d *decoder) release() {
	d.data = nil
	d.cr = nil
	decoderPool.Put(d)
}
