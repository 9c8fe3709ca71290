// Copyright 2020 Erin Shepherd
// SPDX-License-Identifier: ISC

package fixwire

import (
	"math"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMaxSize(t *testing.T) {
	t.Parallel()

	type header struct {
		Flag  bool
		Count uint16
	}

	type ignored struct {
		A    uint64
		Skip [16]uint64 `fixwire:"-"`
	}

	type message struct {
		Kind uint8    `fixwire:"union:switch"`
		Ping struct{} `fixwire:"union:0"`
		Data [8]byte  `fixwire:"union:1"`
		Ack  uint32   `fixwire:"union:2"`
	}

	type status struct {
		K    uint8    `fixwire:"union:switch"`
		Idle struct{} `fixwire:"union:0"`
		Busy uint32   `fixwire:"union:1"`
	}

	testcases := []struct {
		name   string
		object interface{}
		want   int
	}{
		{"bool", false, BoolSize},
		{"uint8", uint8(0), Uint8Size},
		{"int16", int16(0), Int16Size},
		{"uint32", uint32(0), Uint32Size},
		{"int64", int64(0), Int64Size},
		{"float32", float32(0), Float32Size},
		{"float64", float64(0), Float64Size},
		{"complex64", complex64(0), Complex64Size},
		{"complex128", complex128(0), Complex128Size},
		{"Uint128", Uint128{}, Uint128Size},
		{"Int128", Int128{}, Int128Size},
		{"[4]uint16", [4]uint16{}, 4 * Uint16Size},
		{"[0]uint32", [0]uint32{}, 0},
		{"[3][3]uint8", [3][3]uint8{}, 9},
		{"struct{}", struct{}{}, 0},
		{"record", header{}, BoolSize + Uint16Size},
		{"skipped fields cost nothing", ignored{}, Uint64Size},
		{"*uint64", (*uint64)(nil), PresenceSize + Uint64Size},
		{"**uint8", (**uint8)(nil), 2*PresenceSize + Uint8Size},
		{"union is 1 + widest arm", message{}, OrdinalSize + 8},
		{"payloadless arm counts as 0", status{}, OrdinalSize + Uint32Size},
		{"array of unions", [3]message{}, 3 * (OrdinalSize + 8)},
		{"optional union", (*message)(nil), PresenceSize + OrdinalSize + 8},
	}

	for _, tc := range testcases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got, err := MaxSize(tc.object)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)

			// MaxSizeOf is the same oracle keyed by type
			got, err = MaxSizeOf(reflect.TypeOf(tc.object))
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

// The bound must be attained by some value of the type, not merely never
// exceeded
func TestMaxSizeAchievable(t *testing.T) {
	t.Parallel()

	type sensor struct {
		Kind uint8    `fixwire:"union:switch"`
		Off  struct{} `fixwire:"union:0"`
		Raw  [6]byte  `fixwire:"union:1"`
	}

	type frame struct {
		Src  *Uint128
		Body sensor
	}

	ms, err := MaxSize(frame{})
	require.NoError(t, err)
	assert.Equal(t, (PresenceSize+Uint128Size)+(OrdinalSize+6), ms)

	// Widest shape: pointer present, largest variant selected
	big := frame{
		Src:  &Uint128{Lo: math.MaxUint64, Hi: math.MaxUint64},
		Body: sensor{Kind: 1, Raw: [6]byte{1, 2, 3, 4, 5, 6}},
	}
	out, err := Marshal(big)
	require.NoError(t, err)
	assert.Len(t, out, ms)

	// Narrowest shape: nil pointer, empty variant
	out, err = Marshal(frame{})
	require.NoError(t, err)
	assert.Len(t, out, PresenceSize+OrdinalSize)
}

func TestMaxSizeNil(t *testing.T) {
	t.Parallel()

	_, err := MaxSize(nil)
	assert.Error(t, err)

	_, err = MaxSizeOf(nil)
	assert.Error(t, err)
}
