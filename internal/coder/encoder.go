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

var encoderPool = sync.Pool{
	New: func() interface{} {
		return &encoder{
			codecCacheSlot: 3,
		}
	},
}

type encoder struct {
	// Destination buffer and write position
	buf []byte
	pos int

	// Our coder
	cr *Coder

	// Small cache of most recently encoded types. Typically a small number of types
	// are repeatedly written to an encoder
	codecCache [4]struct {
		type_ reflect.Type
		codec xCodec
	}
	// Next slot for replacement
	codecCacheSlot int
}

var _ fixwireinterfaces.Encoder = &encoder{}

func (e *encoder) reset(cr *Coder, buf []byte) {
	e.buf = buf
	e.pos = 0

	if e.cr != cr {
		for i := range e.codecCache {
			e.codecCache[i].type_ = nil
			e.codecCache[i].codec = nil
		}
	}

	e.cr = cr
}

// grab reserves the next n bytes of the destination and advances the write
// position. On ErrBufferTooSmall the position is unchanged.
func (w *encoder) grab(n int) ([]byte, error) {
	if len(w.buf)-w.pos < n {
		return nil, errors.ErrBufferTooSmall
	}
	b := w.buf[w.pos : w.pos+n]
	w.pos += n
	return b, nil
}

func (w *encoder) EncodeBool(b bool) error {
	buf, err := w.grab(1)
	if err != nil {
		return err
	}
	if b {
		buf[0] = 1
	} else {
		buf[0] = 0
	}
	return nil
}

func (w *encoder) EncodeUint8(i uint8) error {
	buf, err := w.grab(1)
	if err != nil {
		return err
	}
	buf[0] = i
	return nil
}

func (w *encoder) EncodeUint16(i uint16) error {
	buf, err := w.grab(2)
	if err != nil {
		return err
	}
	binary.LittleEndian.PutUint16(buf, i)
	return nil
}

func (w *encoder) EncodeUint32(i uint32) error {
	buf, err := w.grab(4)
	if err != nil {
		return err
	}
	binary.LittleEndian.PutUint32(buf, i)
	return nil
}

func (w *encoder) EncodeUint64(i uint64) error {
	buf, err := w.grab(8)
	if err != nil {
		return err
	}
	binary.LittleEndian.PutUint64(buf, i)
	return nil
}

func (w *encoder) EncodeInt8(i int8) error {
	return w.EncodeUint8(uint8(i))
}

func (w *encoder) EncodeInt16(i int16) error {
	return w.EncodeUint16(uint16(i))
}

func (w *encoder) EncodeInt32(i int32) error {
	return w.EncodeUint32(uint32(i))
}

func (w *encoder) EncodeInt64(i int64) error {
	return w.EncodeUint64(uint64(i))
}

func (w *encoder) EncodeFloat32(f float32) error {
	return w.EncodeUint32(math.Float32bits(f))
}

func (w *encoder) EncodeFloat64(f float64) error {
	return w.EncodeUint64(math.Float64bits(f))
}

func (w *encoder) EncodeComplex64(c complex64) error {
	buf, err := w.grab(8)
	if err != nil {
		return err
	}
	binary.LittleEndian.PutUint32(buf[0:4], math.Float32bits(real(c)))
	binary.LittleEndian.PutUint32(buf[4:8], math.Float32bits(imag(c)))
	return nil
}

func (w *encoder) EncodeComplex128(c complex128) error {
	buf, err := w.grab(16)
	if err != nil {
		return err
	}
	binary.LittleEndian.PutUint64(buf[0:8], math.Float64bits(real(c)))
	binary.LittleEndian.PutUint64(buf[8:16], math.Float64bits(imag(c)))
	return nil
}

func (w *encoder) EncodeBytes(b []byte) error {
	buf, err := w.grab(len(b))
	if err != nil {
		return err
	}
	copy(buf, b)
	return nil
}

func (w *encoder) Encode(o interface{}) error {
	return w.EncodeValue(reflect.ValueOf(o))
}

func (w *encoder) EncodeValue(v reflect.Value) error {
	if !v.IsValid() {
		// Encode(nil) lands here
		return errors.UnsupportedTypeError{T: nil}
	}

	t := v.Type()

	for _, e := range w.codecCache {
		if e.type_ == t {
			return e.codec.Encode(w, v)
		}
	}

	c := w.cr.getCodec(t)
	w.codecCacheSlot = (w.codecCacheSlot + 1) & (len(w.codecCache) - 1)
	w.codecCache[w.codecCacheSlot].type_ = t
	w.codecCache[w.codecCacheSlot].codec = c

	return c.Encode(w, v)
}

func (w *encoder) BytesWritten() int {
	return w.pos
}

func (w *encoder) release() {
	w.buf = nil
	w.cr = nil
	encoderPool.Put(w)
}
