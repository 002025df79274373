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

package definition

import (
	"github.com/graphql-go/graphql"
	"github.com/graphql-go/graphql/language/ast"
)

// Describer provides a description. Enum cases implement it to describe enum values.
type Describer interface {
	Description() string
}

// Deprecator provides a deprecation reason. Enum cases implement it to deprecate enum values.
type Deprecator interface {
	DeprecationReason() string
}

// EnumCases is implemented by a Go type whose values are the cases of an enum. The name of a case
// is given by fmt.Stringer if the case implements it.
type EnumCases interface {
	Cases() []interface{}
}

// TypeChecker is implemented by object types that can tell whether a value belongs to them.
type TypeChecker interface {
	IsTypeOf(value interface{}) bool
}

// FieldResolver is implemented by object types to resolve the fields that have no resolver of their
// own.
type FieldResolver interface {
	ResolveField(p graphql.ResolveParams) (interface{}, error)
}

// TypeResolver is implemented by interface and union types to name the object type of a value. An
// empty name selects the object type registered for the Go type of the value.
type TypeResolver interface {
	ResolveType(value interface{}) string
}

// ValueParser is implemented by input object types to build a Go value from the coerced input map,
// and by scalars to coerce a variable value.
type ValueParser interface {
	ParseValue(value interface{}) (interface{}, error)
}

// Serializer is implemented by scalars to coerce a result value.
type Serializer interface {
	Serialize(value interface{}) interface{}
}

// LiteralParser is implemented by scalars to coerce a literal in a query.
type LiteralParser interface {
	ParseLiteral(value ast.Value) interface{}
}
