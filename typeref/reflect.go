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
	"reflect"

	"github.com/graphql-go/graphql"
)

// ClassName returns the registry alias of a Go type: the import path and the type name joined by
// a dot, such as "github.com/acme/app/model.User". Pointers are dereferenced. Unnamed and builtin
// types are printed as Go prints them.
func ClassName(t reflect.Type) string {
	t = indirect(t)
	if len(t.PkgPath()) == 0 || len(t.Name()) == 0 {
		return t.String()
	}
	return t.PkgPath() + "." + t.Name()
}

func indirect(t reflect.Type) reflect.Type {
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t
}

type reflected struct {
	t reflect.Type
}

// Reflected returns a reference to the GraphQL type a Go type stands for.
//
//   - A pointer or an interface type is nullable; every other type is non-null.
//   - A slice or an array becomes a list of its element type.
//   - A named type registered under its class name resolves to the registered type.
//   - Any other boolean, numeric or string type resolves to the builtin scalar of its kind.
//
// Structs and interfaces that are not registered fail with
// gqlerr.ErrKindCantResolveGraphQLType, so do maps, channels and functions.
func Reflected(t reflect.Type) Ref {
	return reflected{t}
}

// Resolve implements Ref.
func (ref reflected) Resolve(registry Registry) (graphql.Type, error) {
	if ref.t == nil {
		return nil, cantResolve("reflected reference to nil type")
	}
	return resolveReflected(registry, ref.t)
}

// String implements Ref.
func (ref reflected) String() string {
	if ref.t == nil {
		return "<nil>"
	}
	return ref.t.String()
}

func resolveReflected(registry Registry, t reflect.Type) (graphql.Type, error) {
	nullable := false
	switch t.Kind() {
	case reflect.Ptr:
		nullable = true
		t = indirect(t)
	case reflect.Interface:
		nullable = true
	}

	var (
		result graphql.Type
		err    error
	)
	switch t.Kind() {
	case reflect.Slice, reflect.Array:
		var item graphql.Type
		item, err = resolveReflected(registry, t.Elem())
		if err == nil {
			result = graphql.NewList(item)
		}

	default:
		result, err = resolveClass(registry, t)
	}

	if err != nil {
		return nil, err
	}

	if !nullable {
		result = nonNull(result)
	}
	return result, nil
}

// resolveClass finds the type registered for a dereferenced Go type.
func resolveClass(registry Registry, t reflect.Type) (graphql.Type, error) {
	if len(t.Name()) > 0 {
		if name := ClassName(t); registry.Has(name) {
			return registry.Get(name)
		}
	}

	switch t.Kind() {
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64,
		reflect.String:
		return registry.Get(t.Kind().String())

	case reflect.Struct, reflect.Interface:
		return nil, cantResolve("class %s is not registered", ClassName(t))
	}

	return nil, cantResolve("unsupported Go type %s", t)
}

// ObjectForValue finds the object type registered for the runtime class of value. When the class
// itself is not registered the structs it embeds are tried in order of declaration, depth first.
// It returns nil if no object type is found.
func ObjectForValue(registry Registry, value interface{}) *graphql.Object {
	if value == nil {
		return nil
	}
	return objectForType(registry, indirect(reflect.TypeOf(value)))
}

func objectForType(registry Registry, t reflect.Type) *graphql.Object {
	if len(t.Name()) > 0 {
		if name := ClassName(t); registry.Has(name) {
			if found, err := registry.Get(name); err == nil {
				if object, ok := found.(*graphql.Object); ok {
					return object
				}
			}
		}
	}

	if t.Kind() != reflect.Struct {
		return nil
	}

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if !field.Anonymous {
			continue
		}
		embedded := indirect(field.Type)
		if embedded.Kind() != reflect.Struct {
			continue
		}
		if object := objectForType(registry, embedded); object != nil {
			return object
		}
	}

	return nil
}

// ClassTypeResolver returns a graphql.ResolveTypeFn that maps a runtime value to its object type
// with ObjectForValue.
func ClassTypeResolver(registry Registry) graphql.ResolveTypeFn {
	return func(p graphql.ResolveTypeParams) *graphql.Object {
		return ObjectForValue(registry, p.Value)
	}
}
