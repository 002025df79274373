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

package gqltype

import (
	"reflect"
	"sort"

	"github.com/botobag/gqlreflect/metadata"
	"github.com/botobag/gqlreflect/pipeline"
	"github.com/botobag/gqlreflect/reflection"

	"github.com/graphql-go/graphql"
)

// Attribute accepts a Go type that carries one of the class markers metadata.ObjectType,
// metadata.InterfaceType, metadata.UnionType, metadata.InputType or metadata.ScalarType, looked up
// in that order.
//
// Output and input fields are the methods and struct fields carrying a metadata.Field or a
// metadata.InputField marker. Capabilities implemented by the instance that the container provides
// for the Go type are wired as hooks of the created type.
type Attribute struct {
	Env *Env
}

var _ pipeline.Middleware[graphql.Type] = Attribute{}

// Process implements pipeline.Middleware.
func (m Attribute) Process(input interface{}, next pipeline.Next[graphql.Type]) (graphql.Type, error) {
	t, ok := input.(reflect.Type)
	if !ok || m.Env.Reader == nil {
		return next.Resolve(input)
	}
	class := reflection.Indirect(t)
	env := m.Env

	if marker, err := metadata.ClassMarker[metadata.ObjectType](env.Reader, class); err != nil {
		return nil, err
	} else if marker != nil {
		return env.objectFromClass(class, marker)
	}

	if marker, err := metadata.ClassMarker[metadata.InterfaceType](env.Reader, class); err != nil {
		return nil, err
	} else if marker != nil {
		return env.interfaceFromClass(class, marker)
	}

	if marker, err := metadata.ClassMarker[metadata.UnionType](env.Reader, class); err != nil {
		return nil, err
	} else if marker != nil {
		return env.unionFromClass(class, marker)
	}

	if marker, err := metadata.ClassMarker[metadata.InputType](env.Reader, class); err != nil {
		return nil, err
	} else if marker != nil {
		return env.inputFromClass(class, marker)
	}

	if marker, err := metadata.ClassMarker[metadata.ScalarType](env.Reader, class); err != nil {
		return nil, err
	} else if marker != nil {
		hooks, err := env.instance(class)
		if err != nil {
			return nil, err
		}
		return typeOrError(env.newScalar(typeSource{
			name:        nameOf(marker.Name, class),
			description: marker.Description,
			hooks:       hooks,
		}))
	}

	return next.Resolve(input)
}

func nameOf(explicit string, class reflect.Type) string {
	if len(explicit) > 0 {
		return explicit
	}
	return class.Name()
}

// markedMembers lists the struct fields and then the methods of class that carry a marker of type
// M.
func markedMembers[M any](env *Env, class reflect.Type) members {
	return func() ([]interface{}, error) {
		var result []interface{}

		for _, property := range reflection.Properties(class) {
			marker, err := metadata.PropertyMarker[M](env.Reader, property)
			if err != nil {
				return nil, err
			} else if marker != nil {
				result = append(result, property)
			}
		}

		for _, method := range reflection.Methods(class) {
			marker, err := metadata.MethodMarker[M](env.Reader, method)
			if err != nil {
				return nil, err
			} else if marker != nil {
				result = append(result, method)
			}
		}

		return result, nil
	}
}

func (env *Env) objectFromClass(class reflect.Type, marker *metadata.ObjectType) (graphql.Type, error) {
	hooks, err := env.instance(class)
	if err != nil {
		return nil, err
	}

	src := typeSource{
		name:        nameOf(marker.Name, class),
		description: marker.Description,
		hooks:       hooks,
	}

	object, err := env.newObject(src, markedMembers[metadata.Field](env, class), func() ([]*graphql.Interface, error) {
		return env.classInterfaces(src.name, class, marker.Interfaces)
	})
	if err != nil {
		return nil, err
	}

	if class.Kind() != reflect.Interface {
		env.recordObject(class, object)
	}
	return object, nil
}

// classInterfaces returns the interfaces named by the marker together with the interface types
// created from Go interfaces that class satisfies, ordered by name.
func (env *Env) classInterfaces(owner string, class reflect.Type, names []string) ([]*graphql.Interface, error) {
	refs := make([]interface{}, len(names))
	for i, name := range names {
		refs[i] = name
	}
	explicit, err := env.referencedInterfaces(owner, refs)
	if err != nil {
		return nil, err
	}

	seen := map[string]bool{}
	var result []*graphql.Interface
	for _, iface := range append(explicit, env.implementedInterfaces(class)...) {
		if !seen[iface.Name()] {
			seen[iface.Name()] = true
			result = append(result, iface)
		}
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].Name() < result[j].Name()
	})
	return result, nil
}

func (env *Env) interfaceFromClass(class reflect.Type, marker *metadata.InterfaceType) (graphql.Type, error) {
	hooks, err := env.instance(class)
	if err != nil {
		return nil, err
	}

	iface, err := env.newInterface(typeSource{
		name:        nameOf(marker.Name, class),
		description: marker.Description,
		hooks:       hooks,
	}, markedMembers[metadata.Field](env, class))
	if err != nil {
		return nil, err
	}

	if class.Kind() == reflect.Interface && class.NumMethod() > 0 {
		env.recordInterface(class, iface)
	}
	return iface, nil
}

// unionFromClass creates a union of the object types named by the marker. Without names, a union
// created from a Go interface includes every object type created from a Go type that satisfies it.
func (env *Env) unionFromClass(class reflect.Type, marker *metadata.UnionType) (graphql.Type, error) {
	hooks, err := env.instance(class)
	if err != nil {
		return nil, err
	}

	src := typeSource{
		name:        nameOf(marker.Name, class),
		description: marker.Description,
		hooks:       hooks,
	}

	return typeOrError(env.newUnion(src, func() ([]*graphql.Object, error) {
		if len(marker.Types) > 0 {
			refs := make([]interface{}, len(marker.Types))
			for i, name := range marker.Types {
				refs[i] = name
			}
			return env.referencedObjects(src.name, refs)
		}
		if class.Kind() == reflect.Interface {
			return env.implementations(class), nil
		}
		return nil, nil
	}))
}

func (env *Env) inputFromClass(class reflect.Type, marker *metadata.InputType) (graphql.Type, error) {
	if class.Kind() != reflect.Struct {
		return nil, invalidMetadata("input type %s is not a struct", class)
	}

	hooks, err := env.instance(class)
	if err != nil {
		return nil, err
	}

	return typeOrError(env.newInputObject(typeSource{
		name:        nameOf(marker.Name, class),
		description: marker.Description,
		hooks:       hooks,
	}, markedMembers[metadata.InputField](env, class), class))
}
