// Copyright 2020 Erin Shepherd
// SPDX-License-Identifier: ISC

package fixwire

// Uint128 is a 128-bit unsigned integer, encoded as 16 little-endian bytes
// (the low quadword first). Go has no native 128-bit integers, so it is
// carried as two halves: Lo holds bits 0-63 and Hi bits 64-127.
type Uint128 struct {
	Lo uint64
	Hi uint64
}

func (u Uint128) MaxEncodedSize() int { return Uint128Size }

func (u Uint128) MarshalFixwire(e Encoder) error {
	if err := e.EncodeUint64(u.Lo); err != nil {
		return err
	}
	return e.EncodeUint64(u.Hi)
}

func (u *Uint128) UnmarshalFixwire(d Decoder) error {
	lo, err := d.DecodeUint64()
	if err != nil {
		return err
	}
	hi, err := d.DecodeUint64()
	if err != nil {
		return err
	}
	u.Lo, u.Hi = lo, hi
	return nil
}

// Int128 is a 128-bit two's complement signed integer, encoded exactly like
// Uint128 under the same bit pattern. Hi carries the sign.
type Int128 struct {
	Lo uint64
	Hi int64
}

func (i Int128) MaxEncodedSize() int { return Int128Size }

func (i Int128) MarshalFixwire(e Encoder) error {
	if err := e.EncodeUint64(i.Lo); err != nil {
		return err
	}
	return e.EncodeInt64(i.Hi)
}

func (i *Int128) UnmarshalFixwire(d Decoder) error {
	lo, err := d.DecodeUint64()
	if err != nil {
		return err
	}
	hi, err := d.DecodeInt64()
	if err != nil {
		return err
	}
	i.Lo, i.Hi = lo, hi
	return nil
}
