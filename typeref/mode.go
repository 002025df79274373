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
	"github.com/graphql-go/graphql"
)

// Mode is a set of flags describing the wrapping applied to a base type.
type Mode uint8

// Mode flags. ItemIsRequired shares the IsList bit: a required item is only meaningful inside a
// list, so testing ItemIsRequired checks both bits.
const (
	IsRequired     Mode = 0b0001
	IsList         Mode = 0b0010
	ItemIsRequired Mode = 0b0110
)

// Has returns true if every bit of flag is set in m.
func (m Mode) Has(flag Mode) bool {
	return m&flag == flag
}

// Apply wraps t according to the mode. The order is fixed: the item is made non-null first, then
// wrapped in a list, then the list is made non-null. A mode with every flag set turns T into
// [T!]!.
func (m Mode) Apply(t graphql.Type) graphql.Type {
	if m.Has(ItemIsRequired) {
		t = nonNull(t)
	}
	if m.Has(IsList) {
		t = graphql.NewList(t)
	}
	if m.Has(IsRequired) {
		t = nonNull(t)
	}
	return t
}

// format prints the type expression of name wrapped with the mode.
func (m Mode) format(name string) string {
	if m.Has(ItemIsRequired) {
		name += "!"
	}
	if m.Has(IsList) {
		name = "[" + name + "]"
	}
	if m.Has(IsRequired) {
		name += "!"
	}
	return name
}

// nonNull wraps t with NonNull unless it is already non-null.
func nonNull(t graphql.Type) graphql.Type {
	if _, ok := t.(*graphql.NonNull); ok {
		return t
	}
	return graphql.NewNonNull(t)
}
