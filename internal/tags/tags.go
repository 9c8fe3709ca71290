// Copyright 2020 Erin Shepherd
// SPDX-License-Identifier: ISC

package tags

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"
)

// FieldTag represents a decoded fixwire struct tag.
//
// The tag language is flat; a field carries at most one directive:
//
//	Name T `fixwire:"-"`            exclude this field from the encoding
//	Name T `fixwire:"union:switch"` this field is the union discriminant
//	Name T `fixwire:"union:N"`      this field is the variant with ordinal N
//
// Union tags relate to the definition of the enclosing structure rather than
// to the field's own type.
type FieldTag struct {
	Kind    Kind
	Ordinal int
}

type Kind byte

const (
	// No directive; the field is encoded by its type alone
	None Kind = iota
	// Skip encoding this field (must be the only content of the tag)
	Skip
	// This field (which must have kind uint8, and be the first encoded member
	// of the enclosing type) is a union discriminant, and the enclosing
	// struct represents a tagged union
	UnionSwitch
	// This field is a union variant, selected when the discriminant holds
	// the tag's ordinal
	UnionArm
)

// Empty returns if this tag carries no directive
func (t FieldTag) Empty() bool {
	return t.Kind == None
}

// Vaguely pretty prints this tag (for diagnostics)
func (t FieldTag) String() string {
	switch t.Kind {
	case None:
		return "<none>"
	case Skip:
		return "-"
	case UnionSwitch:
		return "union:switch"
	case UnionArm:
		return fmt.Sprintf("union:%d", t.Ordinal)
	default:
		return fmt.Sprintf("<bad kind %d>", t.Kind)
	}
}

var (
	emptyTag = FieldTag{}
	skipTag  = FieldTag{Kind: Skip}
)

func validForUnionSwitch(t reflect.Type) bool {
	// The discriminant occupies exactly one wire byte
	return t.Kind() == reflect.Uint8
}

// Specifies whether or not we're parsing this type in the direct context of a union
// If this is initially set to MaybeInUnion, then it will be bound to either of the two
// possible values as soon as we find the first indicative tag. If it's one of the two
// definitive values, then we'll never modify it
type IsInUnion int

const (
	// We're possibly in a union (see if we parse a union switch - then we'll know we are)
	MaybeInUnion IsInUnion = iota
	// We're definitely not in a union
	NotInUnion
	// We're definitely in a union
	InUnion
)

// Parse a struct tag to be applied to the specified type
func ParseStructTag(
	t reflect.Type,
	rtag reflect.StructTag,
	isUnion *IsInUnion,
) (FieldTag, error) {
	return ParseTag(t, rtag.Get("fixwire"), isUnion)
}

func parseOrdinal(s string) (int, error) {
	u64, err := strconv.ParseUint(s, 0, 32)
	return int(u64), err
}

// Parses the body of a fixwire tag
func ParseTag(
	t reflect.Type,
	stag string,
	isUnion *IsInUnion,
) (
	ft FieldTag,
	err error,
) {
	stag = strings.TrimSpace(stag)

	switch stag {
	case "-":
		return skipTag, nil
	}

	switch {
	case stag == "union:switch":
		if *isUnion != MaybeInUnion {
			return ft, errors.New("Found field annotated with `union:switch` tag which is not legal in a struct which is not a union or already has a switch")
		}

		if !validForUnionSwitch(t) {
			return ft, fmt.Errorf("Type %s not legal for union switch; must have kind uint8", t)
		}

		*isUnion = InUnion
		return FieldTag{Kind: UnionSwitch}, nil

	case strings.HasPrefix(stag, "union:"):
		if *isUnion != InUnion {
			return ft, fmt.Errorf("'%s' union tag not valid as we are not inside a union", stag)
		}

		ordinal, err := parseOrdinal(strings.TrimPrefix(stag, "union:"))
		if err != nil {
			return ft, fmt.Errorf("Parsing `union:` ordinal: %v", err)
		}

		return FieldTag{Kind: UnionArm, Ordinal: ordinal}, nil

	case stag == "":
		if *isUnion == InUnion {
			return ft, errors.New("Every field inside a union struct must have a `union:` leading tag")
		}

		*isUnion = NotInUnion
		return emptyTag, nil

	default:
		return ft, fmt.Errorf("Unknown fixwire tag '%s'", stag)
	}
}
