/**
 * Copyright (c) 2019, The Artemis Authors.
 *
 * Permission to use, copy, modify, and/or distribute this software for any
 * purpose with or without fee is hereby granted, provided that the above
 * copyright notice and this permission notice appear in all copies.
 *
 * THE SOFTWARE IS PROVIDED "AS IS" AND THE AUTHOR DISCLAIMS ALL WARRANTIES
 * WITH REGARD TO THIS SOFTWARE INCLUDING ALL IMPLIED WARRANTIES OF
 * MERCHANTABILITY AND FITNESS. IN NO EVENT SHALL THE AUTHOR BE LIABLE FOR
 * ANY SPECIAL, DIRECT, INDIRECT, OR CONSEQUENTIAL DAMAGES OR ANY DAMAGES
 * WHATSOEVER RESULTING FROM LOSS OF USE, DATA OR PROFITS, WHETHER IN AN
 * ACTION OF CONTRACT, NEGLIGENCE OR OTHER TORTIOUS ACTION, ARISING OUT OF
 * OR IN CONNECTION WITH THE USE OR PERFORMANCE OF THIS SOFTWARE.
 */

package typeref

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/botobag/gqlreflect/gqlerr"

	"github.com/graphql-go/graphql"
)

// SelfKeyword names the declaring type in a type expression.
const SelfKeyword = "self"

// Parse reads a type expression such as "User", "[Int!]", "[self]!" or "(Cat | Dog)!". Named types
// in the expression are looked up in the registry when the reference is resolved; the keyword
// "self" refers to declaring. Nested lists and lists of unions are not supported.
func Parse(expr string, declaring reflect.Type) (Ref, error) {
	const op = gqlerr.Op("typeref.Parse")

	invalid := func(format string, args ...interface{}) error {
		return gqlerr.NewError(fmt.Sprintf(format, args...), op, gqlerr.ErrKindInvalidMetadata)
	}

	s := strings.TrimSpace(expr)
	if strings.Contains(s, "|") {
		return parseUnion(s, expr, declaring, invalid)
	}

	var mode Mode

	if strings.HasSuffix(s, "!") {
		mode |= IsRequired
		s = strings.TrimSpace(strings.TrimSuffix(s, "!"))
	}

	if strings.HasPrefix(s, "[") {
		if !strings.HasSuffix(s, "]") {
			return nil, invalid(`unbalanced brackets in type expression "%s"`, expr)
		}
		mode |= IsList
		s = strings.TrimSpace(s[1 : len(s)-1])
		if strings.HasSuffix(s, "!") {
			mode |= ItemIsRequired
			s = strings.TrimSpace(strings.TrimSuffix(s, "!"))
		}
	}

	switch {
	case len(s) == 0:
		return nil, invalid(`missing type name in type expression "%s"`, expr)
	case strings.ContainsAny(s, "[]!()"):
		return nil, invalid(`unsupported type expression "%s"`, expr)
	}

	base, err := parseName(s, declaring, invalid)
	if err != nil {
		return nil, err
	}
	return Wrap(base, mode), nil
}

func parseName(s string, declaring reflect.Type, invalid func(string, ...interface{}) error) (Ref, error) {
	if s != SelfKeyword {
		return Named(s), nil
	}
	if declaring == nil {
		return nil, invalid(`"%s" used outside of a type declaration`, SelfKeyword)
	}
	return Self(declaring), nil
}

// parseUnion reads "A | B" and "(A | B)!".
func parseUnion(s string, expr string, declaring reflect.Type, invalid func(string, ...interface{}) error) (Ref, error) {
	nullable := true
	if strings.HasSuffix(s, "!") {
		nullable = false
		s = strings.TrimSpace(strings.TrimSuffix(s, "!"))
		if !strings.HasPrefix(s, "(") || !strings.HasSuffix(s, ")") {
			return nil, invalid(`non-null union must be parenthesized in type expression "%s"`, expr)
		}
	}
	if strings.HasPrefix(s, "(") && strings.HasSuffix(s, ")") {
		s = s[1 : len(s)-1]
	}

	var members []Ref
	for _, name := range strings.Split(s, "|") {
		name = strings.TrimSpace(name)
		if len(name) == 0 || strings.ContainsAny(name, "[]!()") {
			return nil, invalid(`unsupported union member "%s" in type expression "%s"`, name, expr)
		}
		member, err := parseName(name, declaring, invalid)
		if err != nil {
			return nil, err
		}
		members = append(members, member)
	}
	return Union(nullable, members...), nil
}

// Of converts a type reference written in a definition into a Ref: a Ref is returned as is, a
// graphql.Type becomes Direct, a string is parsed as a type expression and a reflect.Type becomes
// Reflected.
func Of(v interface{}, declaring reflect.Type) (Ref, error) {
	switch v := v.(type) {
	case Ref:
		return v, nil
	case graphql.Type:
		return Direct(v), nil
	case string:
		return Parse(v, declaring)
	case reflect.Type:
		return Reflected(v), nil
	case nil:
		return nil, cantResolve("missing type")
	}
	return nil, cantResolve("unsupported type reference %T", v)
}

// MustParse is like Parse but panics if the expression cannot be parsed. It simplifies
// initialization of global declarations.
func MustParse(expr string, declaring reflect.Type) Ref {
	ref, err := Parse(expr, declaring)
	if err != nil {
		panic(err)
	}
	return ref
}
