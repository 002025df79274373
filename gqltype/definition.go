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

	"github.com/botobag/gqlreflect/definition"
	"github.com/botobag/gqlreflect/pipeline"
	"github.com/botobag/gqlreflect/reflection"

	"github.com/graphql-go/graphql"
)

// Definition accepts a definition.TypeDefinition, or a Go type whose instance provided by the
// container is one. The definition itself carries the capabilities wired as hooks of the created
// type.
type Definition struct {
	Env *Env
}

var _ pipeline.Middleware[graphql.Type] = Definition{}

// Process implements pipeline.Middleware.
func (m Definition) Process(input interface{}, next pipeline.Next[graphql.Type]) (graphql.Type, error) {
	def, ok := input.(definition.TypeDefinition)
	if !ok {
		t, isType := input.(reflect.Type)
		if !isType {
			return next.Resolve(input)
		}

		instance, err := m.Env.instance(reflection.Indirect(t))
		if err != nil {
			return nil, err
		}
		if def, ok = instance.(definition.TypeDefinition); !ok {
			return next.Resolve(input)
		}
	}

	return m.Env.fromDefinition(def)
}

func (env *Env) fromDefinition(def definition.TypeDefinition) (graphql.Type, error) {
	switch def := def.(type) {
	case definition.ObjectType:
		data := def.TypeData()
		src := typeSource{
			name:        data.Name,
			description: data.Description,
			hooks:       def,
		}
		return typeOrError(env.newObject(src, fixed(data.Fields), func() ([]*graphql.Interface, error) {
			return env.referencedInterfaces(src.name, data.Interfaces)
		}))

	case definition.InterfaceType:
		data := def.TypeData()
		return typeOrError(env.newInterface(typeSource{
			name:        data.Name,
			description: data.Description,
			hooks:       def,
		}, fixed(data.Fields)))

	case definition.UnionType:
		data := def.TypeData()
		return typeOrError(env.newUnion(typeSource{
			name:        data.Name,
			description: data.Description,
			hooks:       def,
		}, func() ([]*graphql.Object, error) {
			return env.referencedObjects(data.Name, data.Types)
		}))

	case definition.InputObjectType:
		data := def.TypeData()
		return typeOrError(env.newInputObject(typeSource{
			name:        data.Name,
			description: data.Description,
			hooks:       def,
		}, fixed(data.Fields), nil))

	case definition.ScalarType:
		data := def.TypeData()
		return typeOrError(env.newScalar(typeSource{
			name:        data.Name,
			description: data.Description,
			hooks:       def,
		}))

	case definition.EnumType:
		data := def.TypeData()
		values := make(graphql.EnumValueConfigMap, len(data.Values))
		for _, v := range data.Values {
			value, err := enumValue(nil, v.Name, v.Value)
			if err != nil {
				return nil, err
			}
			values[v.Name] = &graphql.EnumValueConfig{
				Value:             value,
				Description:       v.Description,
				DeprecationReason: v.DeprecationReason,
			}
		}
		return typeOrError(env.newEnum(typeSource{
			name:        data.Name,
			description: data.Description,
		}, values))
	}

	return nil, cantResolve("unknown type definition %T", def)
}
