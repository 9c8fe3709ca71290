// Copyright 2020 Erin Shepherd
// SPDX-License-Identifier: ISC

package fixwire

import (
	"errors"
	"reflect"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testDirection int

const (
	bothTest testDirection = iota
	encodeTest
	decodeTest
)

// trailer is appended after the encoding by the derived trailing-data cases;
// deserializing must hand exactly these bytes back as the remainder
var trailer = []byte{0xA5, 0x5A, 0xC3, 0x3C, 0x7E}

type testcase struct {
	// Name of this test case
	Name string

	// Which directions to run this test in (defaults to both)
	Direction testDirection

	// The object to serialize, or to use for comparison on deserializing
	Object interface{}

	// The encoded representation of the object
	Bytes []byte

	// Error expected on en/decode
	EncErrorIs error
	DecErrorIs error

	// Comparator to use (instead of the default) after successful decoding
	DecodeComparator func(t *testing.T, expt, actual interface{})
}

// newTarget constructs a new(T) for the case's object type T
func (tc *testcase) newTarget() interface{} {
	return reflect.New(reflect.TypeOf(tc.Object)).Interface()
}

// deref turns the *T target back into a T for comparison
func (tc *testcase) deref(tgtp interface{}) interface{} {
	return reflect.ValueOf(tgtp).Elem().Interface()
}

func defaultDecodeComparator(t *testing.T, expt, actual interface{}) {
	t.Helper()
	if diff := cmp.Diff(expt, actual, cmpopts.EquateNaNs()); diff != "" {
		t.Errorf("Deserialized object mismatch (-want +got):\n%s", diff)
	}
}

// RunTestcases drives each case through the public API. Beyond the declared
// expectations it derives further checks per case: the size bound must cover
// the actual encoding, an exact-size buffer must suffice, serialization into
// every shorter buffer must fail cleanly with ErrBufferTooSmall, every
// truncation of the input must fail cleanly likewise, and trailing bytes
// must come back untouched as the remainder.
func RunTestcases(t *testing.T, tcs []testcase) {
	t.Parallel()

	for i := range tcs {
		tc := &tcs[i]
		if tc.DecodeComparator == nil {
			tc.DecodeComparator = defaultDecodeComparator
		}
	}

	for _, tc := range tcs {
		tc := tc
		t.Run(tc.Name, func(t *testing.T) {
			t.Parallel()

			if tc.Direction != decodeTest {
				runEncodeCases(t, tc)
			}
			if tc.Direction != encodeTest {
				runDecodeCases(t, tc)
			}
		})
	}
}

func runEncodeCases(t *testing.T, tc testcase) {
	t.Run("Serialize", func(t *testing.T) {
		t.Parallel()

		if tc.EncErrorIs != nil {
			buf := make([]byte, len(tc.Bytes)+64)
			_, err := Serialize(buf, tc.Object)
			require.Error(t, err, "Serializing should have returned an error")
			require.Truef(t, errors.Is(err, tc.EncErrorIs), "Error expected to be %s, but was %s", tc.EncErrorIs, err)
			return
		}

		ms, err := MaxSize(tc.Object)
		require.NoError(t, err, "MaxSize should succeed for an encodable type")
		require.GreaterOrEqualf(t, ms, len(tc.Bytes), "Size bound %d below actual encoded size %d", ms, len(tc.Bytes))

		// A buffer of exactly the encoded size must suffice
		buf := make([]byte, len(tc.Bytes))
		n, err := Serialize(buf, tc.Object)
		require.NoError(t, err, "Serialize should succeed")
		assert.Equal(t, len(tc.Bytes), n, "Serialize should return the encoded size")
		assert.Equal(t, tc.Bytes, buf[:n], "Encoded bytes should match")
	})

	t.Run("Marshal", func(t *testing.T) {
		t.Parallel()

		out, err := Marshal(tc.Object)
		if tc.EncErrorIs != nil {
			require.Error(t, err, "Marshal should have returned an error")
			require.Truef(t, errors.Is(err, tc.EncErrorIs), "Error expected to be %s, but was %s", tc.EncErrorIs, err)
			return
		}
		require.NoError(t, err, "Marshal should succeed")
		assert.Equal(t, tc.Bytes, out, "Marshalled bytes should match")
	})

	if tc.EncErrorIs == nil && len(tc.Bytes) > 0 {
		t.Run("SerializeShort", func(t *testing.T) {
			t.Parallel()

			for cut := 0; cut < len(tc.Bytes); cut++ {
				_, err := Serialize(make([]byte, cut), tc.Object)
				require.Errorf(t, err, "Serializing into a %d byte buffer should fail", cut)
				require.Truef(t, errors.Is(err, ErrBufferTooSmall), "Error for %d byte buffer expected to be %s, but was %s",
					cut, ErrBufferTooSmall, err)
			}
		})
	}
}

func runDecodeCases(t *testing.T, tc testcase) {
	t.Run("Deserialize", func(t *testing.T) {
		t.Parallel()

		tgtp := tc.newTarget()
		rem, err := Deserialize(tc.Bytes, tgtp)
		if tc.DecErrorIs != nil {
			if assert.Error(t, err, "Deserializing should have returned an error") {
				assert.Truef(t, errors.Is(err, tc.DecErrorIs), "Error expected to be %s, but was %s", tc.DecErrorIs, err)
				assert.Nil(t, rem, "No remainder should accompany an error")
			} else {
				t.Logf("Returned %+v", tgtp)
			}
			return
		}

		require.NoError(t, err, "Deserialize should succeed")
		assert.Len(t, rem, 0, "An exact encoding should leave no remainder")
		tc.DecodeComparator(t, tc.Object, tc.deref(tgtp))
	})

	if tc.DecErrorIs == nil {
		t.Run("DeserializeTrailing", func(t *testing.T) {
			t.Parallel()

			padded := append(append([]byte(nil), tc.Bytes...), trailer...)
			tgtp := tc.newTarget()
			rem, err := Deserialize(padded, tgtp)
			require.NoError(t, err, "Deserialize should succeed")
			require.Equal(t, trailer, rem, "Trailing bytes should come back as the remainder")
			assert.Same(t, &padded[len(tc.Bytes)], &rem[0], "Remainder should alias the input buffer")
			tc.DecodeComparator(t, tc.Object, tc.deref(tgtp))
		})

		if len(tc.Bytes) > 0 {
			t.Run("DeserializeShort", func(t *testing.T) {
				t.Parallel()

				for cut := 0; cut < len(tc.Bytes); cut++ {
					_, err := Deserialize(tc.Bytes[:cut], tc.newTarget())
					require.Errorf(t, err, "Deserializing %d of %d bytes should fail", cut, len(tc.Bytes))
					require.Truef(t, errors.Is(err, ErrBufferTooSmall), "Error for %d byte input expected to be %s, but was %s",
						cut, ErrBufferTooSmall, err)
				}
			})
		}
	}
}
