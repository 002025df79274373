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
	"sort"
	"strings"

	"github.com/graphql-go/graphql"
)

// UnionTypeSuffix is appended to the concatenated member names of a synthesized union.
const UnionTypeSuffix = "UnionType"

type union struct {
	members  []Ref
	nullable bool
}

// Union returns a reference to the union of the member types, which must resolve to object types.
//
// The union is synthesized on first resolution and registered under the sorted member names
// followed by "UnionType", so the same member set resolves to the same union regardless of the
// order in which members are listed. The union maps runtime values to members with
// ObjectForValue.
func Union(nullable bool, members ...Ref) Ref {
	return union{members, nullable}
}

// Resolve implements Ref.
func (ref union) Resolve(registry Registry) (graphql.Type, error) {
	if len(ref.members) == 0 {
		return nil, cantResolve("union without member")
	}

	byName := make(map[string]*graphql.Object, len(ref.members))
	names := make([]string, 0, len(ref.members))
	for _, member := range ref.members {
		t, err := member.Resolve(registry)
		if err != nil {
			return nil, err
		}

		object, ok := graphql.GetNullable(t).(*graphql.Object)
		if !ok {
			return nil, cantResolve("union member %s is not an object type", t)
		}

		if _, exists := byName[object.Name()]; !exists {
			byName[object.Name()] = object
			names = append(names, object.Name())
		}
	}
	sort.Strings(names)

	name := strings.Join(names, "") + UnionTypeSuffix

	var result graphql.Type
	if registry.Has(name) {
		t, err := registry.Get(name)
		if err != nil {
			return nil, err
		}
		result = t
	} else {
		objects := make([]*graphql.Object, len(names))
		for i, name := range names {
			objects[i] = byName[name]
		}
		t := graphql.NewUnion(graphql.UnionConfig{
			Name:        name,
			Types:       objects,
			ResolveType: ClassTypeResolver(registry),
		})
		if err := registry.Register(t); err != nil {
			return nil, err
		}
		result = t
	}

	if !ref.nullable {
		result = nonNull(result)
	}
	return result, nil
}

// String implements Ref.
func (ref union) String() string {
	names := make([]string, len(ref.members))
	for i, member := range ref.members {
		names[i] = member.String()
	}
	s := strings.Join(names, " | ")
	if !ref.nullable {
		s = "(" + s + ")!"
	}
	return s
}
