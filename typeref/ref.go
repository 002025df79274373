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

	"github.com/botobag/gqlreflect/gqlerr"

	"github.com/graphql-go/graphql"
)

// Registry is the part of the type registry that references are resolved against.
type Registry interface {
	Has(name string) bool
	Get(name string) (graphql.Type, error)
	Register(t graphql.Type, aliases ...string) error
}

// Ref is a symbolic reference to a GraphQL type. Middlewares emit references instead of types so
// that a field may name its own enclosing type or a type registered later. References are resolved
// when the engine evaluates the field thunks while building the schema.
type Ref interface {
	// Resolve returns the type the reference denotes in the registry.
	Resolve(registry Registry) (graphql.Type, error)

	// String prints the reference as a GraphQL type expression.
	String() string
}

const resolveOp = gqlerr.Op("typeref.Resolve")

func cantResolve(format string, args ...interface{}) error {
	return gqlerr.NewError(fmt.Sprintf(format, args...), resolveOp, gqlerr.ErrKindCantResolveGraphQLType)
}

//===----------------------------------------------------------------------------------------====//
// Direct
//===----------------------------------------------------------------------------------------====//

type direct struct {
	t graphql.Type
}

// Direct returns a reference to an already built type.
func Direct(t graphql.Type) Ref {
	return direct{t}
}

// Resolve implements Ref.
func (ref direct) Resolve(Registry) (graphql.Type, error) {
	if ref.t == nil {
		return nil, cantResolve("direct reference to nil type")
	}
	return ref.t, nil
}

// String implements Ref.
func (ref direct) String() string {
	if ref.t == nil {
		return "<nil>"
	}
	return ref.t.String()
}

//===----------------------------------------------------------------------------------------====//
// Named
//===----------------------------------------------------------------------------------------====//

type named struct {
	name string
}

// Named returns a reference to the type registered under the name or alias. A registry miss
// propagates gqlerr.ErrKindNotFound.
func Named(name string) Ref {
	return named{name}
}

// Resolve implements Ref.
func (ref named) Resolve(registry Registry) (graphql.Type, error) {
	return registry.Get(ref.name)
}

// String implements Ref.
func (ref named) String() string {
	return ref.name
}

//===----------------------------------------------------------------------------------------====//
// Wrapped
//===----------------------------------------------------------------------------------------====//

type wrapped struct {
	ref  Ref
	mode Mode
}

// Wrap returns a reference to the type of ref wrapped according to mode.
func Wrap(ref Ref, mode Mode) Ref {
	if mode == 0 {
		return ref
	}
	return wrapped{ref, mode}
}

// Resolve implements Ref.
func (ref wrapped) Resolve(registry Registry) (graphql.Type, error) {
	t, err := ref.ref.Resolve(registry)
	if err != nil {
		return nil, err
	}
	return ref.mode.Apply(t), nil
}

// String implements Ref.
func (ref wrapped) String() string {
	return ref.mode.format(ref.ref.String())
}

//===----------------------------------------------------------------------------------------====//
// Class
//===----------------------------------------------------------------------------------------====//

type class struct {
	t reflect.Type
}

// Class returns a nullable reference to the type registered for the Go type t. Pointers are
// dereferenced. It fails with gqlerr.ErrKindCantResolveGraphQLType when nothing is registered for
// t.
func Class(t reflect.Type) Ref {
	return class{t}
}

// Resolve implements Ref.
func (ref class) Resolve(registry Registry) (graphql.Type, error) {
	if ref.t == nil {
		return nil, cantResolve("class reference to nil type")
	}
	return resolveClass(registry, indirect(ref.t))
}

// String implements Ref.
func (ref class) String() string {
	if ref.t == nil {
		return "<nil>"
	}
	return ClassName(ref.t)
}

// Self returns a reference to the type of the declaring class. It is what the keyword "self" means
// in type expressions.
func Self(declaring reflect.Type) Ref {
	return Class(declaring)
}
