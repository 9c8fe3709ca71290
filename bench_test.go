// Copyright 2020 Erin Shepherd
// SPDX-License-Identifier: ISC

package fixwire

import (
	"encoding/gob"
	"encoding/json"
	"io"
	"testing"
)

func EncodeBenchmarkCommon(b *testing.B, ob interface{}) {
	size, err := MaxSize(ob)
	if err != nil {
		b.Fatalf("MaxSize: %s", err)
	}

	b.Run("FixwireMarshal", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			_, err := Marshal(ob)
			if err != nil {
				b.Fatalf("Marshal: %s", err)
			}
		}
	})

	b.Run("FixwireSerialize", func(b *testing.B) {
		// The steady state: one bound-sized buffer allocated up front, reused
		// for every message
		buf := make([]byte, size)
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			_, err := Serialize(buf, ob)
			if err != nil {
				b.Fatalf("Serialize: %s", err)
			}
		}
	})

	b.Run("JSONMarshal", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			_, err := json.Marshal(ob)
			if err != nil {
				b.Fatalf("json.Marshal: %s", err)
			}
		}
	})

	b.Run("GobEncoderDiscard", func(b *testing.B) {
		w := gob.NewEncoder(io.Discard)
		for i := 0; i < b.N; i++ {
			err := w.Encode(ob)
			if err != nil {
				b.Fatalf("Encode: %s", err)
			}
		}
	})

	b.Run("JSONEncoderDiscard", func(b *testing.B) {
		w := json.NewEncoder(io.Discard)
		for i := 0; i < b.N; i++ {
			err := w.Encode(ob)
			if err != nil {
				b.Fatalf("Encode: %s", err)
			}
		}
	})
}

func DecodeBenchmarkCommon(b *testing.B, ob interface{}, tgt interface{}) {
	enc, err := Marshal(ob)
	if err != nil {
		b.Fatalf("Marshal: %s", err)
	}

	b.Run("FixwireUnmarshal", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			if err := Unmarshal(enc, tgt); err != nil {
				b.Fatalf("Unmarshal: %s", err)
			}
		}
	})

	jenc, err := json.Marshal(ob)
	if err != nil {
		b.Fatalf("json.Marshal: %s", err)
	}

	b.Run("JSONUnmarshal", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			if err := json.Unmarshal(jenc, tgt); err != nil {
				b.Fatalf("json.Unmarshal: %s", err)
			}
		}
	})
}

func BenchmarkUint32Encode(b *testing.B) {
	EncodeBenchmarkCommon(b, uint32(123))
}

func BenchmarkUint64Encode(b *testing.B) {
	EncodeBenchmarkCommon(b, uint64(768))
}

func BenchmarkSimpleStructEncode(b *testing.B) {
	type S struct {
		X   int32
		Y   int64
		M   [16]byte
		IP1 *int32 `json:",omitempty"`
		IP2 *int32 `json:",omitempty"`
	}

	s := &S{
		X:   123456,
		Y:   12345678,
		M:   [16]byte{'B', 'y', 't', 'e', ' ', 'A', 'r', 'r', 'a', 'y'},
		IP1: new(int32),
		IP2: nil,
	}

	EncodeBenchmarkCommon(b, s)
}

func BenchmarkUnionStructsEncode(b *testing.B) {
	type S1 struct {
		Frob int32
		Glob int32
	}

	type S2 struct {
		Foo int32
		Bar [8]uint16
	}

	type S3 struct {
		Foo *S1 `json:"foo,omitempty"`
		Baz int32
	}

	type U struct {
		Switch uint8 `fixwire:"union:switch"`
		S1     *S1   `fixwire:"union:0" json:"s1,omitempty"`
		S2     *S2   `fixwire:"union:1" json:"s2,omitempty"`
		S3     *S3   `fixwire:"union:2" json:"s3,omitempty"`
	}

	vals := [4]U{
		{Switch: 0, S1: &S1{123, 456}},
		{Switch: 1, S2: &S2{789, [8]uint16{1, 2, 3}}},
		{Switch: 2, S3: &S3{&S1{65535, 1024}, 512}},
		{Switch: 2, S3: &S3{nil, 256}},
	}
	EncodeBenchmarkCommon(b, vals)
}

func BenchmarkSimpleStructDecode(b *testing.B) {
	type S struct {
		X int32
		Y int64
		M [16]byte
	}

	DecodeBenchmarkCommon(b, S{X: 123456, Y: 12345678, M: [16]byte{1, 2, 3}}, new(S))
}

func BenchmarkUnionDecode(b *testing.B) {
	type U struct {
		Switch uint8   `fixwire:"union:switch"`
		A      uint32  `fixwire:"union:0"`
		B      [8]byte `fixwire:"union:1"`
	}

	DecodeBenchmarkCommon(b, U{Switch: 1, B: [8]byte{1, 2, 3}}, new(U))
}
