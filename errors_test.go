// Copyright 2020 Erin Shepherd
// SPDX-License-Identifier: ISC

package fixwire

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.e43.eu/fixwire/internal/errors"
)

// Errors are decorated with the path of the field being processed, outermost
// first, without disturbing their errors.Is identity
func TestErrorFieldPaths(t *testing.T) {
	t.Parallel()

	type engine struct {
		RPM uint32
	}

	type vehicle struct {
		ID  uint8
		Eng engine
	}

	// Source runs out two bytes into Eng.RPM
	_, err := Deserialize([]byte{0x01, 0x02, 0x03}, &vehicle{})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrBufferTooSmall)
	assert.EqualError(t, err, "fixwire: Buffer too small (at vehicle.Eng engine.RPM)")

	// The encode side decorates the same way
	_, err = Serialize(make([]byte, 3), vehicle{ID: 1, Eng: engine{RPM: 2}})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrBufferTooSmall)
	assert.EqualError(t, err, "fixwire: Buffer too small (at vehicle.Eng engine.RPM)")
}

func TestErrorUnionPaths(t *testing.T) {
	t.Parallel()

	type gear struct {
		K uint8    `fixwire:"union:switch"`
		N struct{} `fixwire:"union:0"`
		R uint8    `fixwire:"union:1"`
	}

	// An undefined wire ordinal identifies the union and its switch field
	_, err := Deserialize([]byte{0x07}, &gear{})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidValue)
	var oerr errors.UnionOrdinalError
	require.ErrorAs(t, err, &oerr)
	assert.Equal(t, errors.UnionOrdinalError{Type: "gear", Ordinal: 7, Variants: 2}, oerr)
	assert.EqualError(t, err, "fixwire: Ordinal 0x07 undefined for union 'gear' (2 variants) (at gear.K(union:switch))")

	// A failure inside an arm names the arm and its ordinal
	_, err = Deserialize([]byte{0x01}, &gear{})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrBufferTooSmall)
	assert.EqualError(t, err, "fixwire: Buffer too small (at gear.R(union:1))")
}

func TestErrorAnonymousTypePath(t *testing.T) {
	t.Parallel()

	_, err := Marshal(struct{ S []byte }{})
	require.Error(t, err)
	assert.ErrorIs(t, err, errors.UnsupportedTypeError{T: reflect.TypeOf([]byte(nil))})
	assert.EqualError(t, err, "fixwire: Type '[]uint8' unsupported (at <anonymous>.S)")
}
