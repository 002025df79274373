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

// Package objectfield implements the ObjectField pipeline, which turns native fields, declarative
// fields, methods and struct fields into *field.Object.
package objectfield

import (
	"fmt"
	"reflect"
	"sort"

	"github.com/botobag/gqlreflect/argument"
	"github.com/botobag/gqlreflect/container"
	"github.com/botobag/gqlreflect/definition"
	"github.com/botobag/gqlreflect/field"
	"github.com/botobag/gqlreflect/gqlerr"
	"github.com/botobag/gqlreflect/internal/coerce"
	"github.com/botobag/gqlreflect/metadata"
	"github.com/botobag/gqlreflect/pipeline"
	"github.com/botobag/gqlreflect/reflection"
	"github.com/botobag/gqlreflect/registry"
	"github.com/botobag/gqlreflect/typeref"

	"github.com/graphql-go/graphql"
)

// Priorities of the default middlewares
type Priorities struct {
	Native      int
	Declarative int
	Method      int
	Property    int
}

// DefaultPriorities tries native fields first and struct fields last.
var DefaultPriorities = Priorities{
	Native:      400,
	Declarative: 300,
	Method:      200,
	Property:    100,
}

// Resolver is the ObjectField pipeline.
type Resolver = pipeline.Pipeline[*field.Object]

// NewResolver creates an empty ObjectField pipeline.
func NewResolver(opts ...pipeline.Option) *Resolver {
	return pipeline.New[*field.Object](pipeline.KindObjectField, opts...)
}

func invalid(format string, args ...interface{}) error {
	return gqlerr.NewError(fmt.Sprintf(format, args...), gqlerr.Op("objectfield.Resolve"),
		gqlerr.ErrKindCantResolveObjectField)
}

//===----------------------------------------------------------------------------------------====//
// Native
//===----------------------------------------------------------------------------------------====//

// Native accepts *field.Object and *graphql.Field. The latter must be named.
type Native struct{}

var _ pipeline.Middleware[*field.Object] = Native{}

// Process implements pipeline.Middleware.
func (Native) Process(input interface{}, next pipeline.Next[*field.Object]) (*field.Object, error) {
	switch input := input.(type) {
	case *field.Object:
		return input, nil

	case *graphql.Field:
		if len(input.Name) == 0 {
			return nil, invalid("native field without name")
		}
		if input.Type == nil {
			return nil, invalid("field %s has no type", input.Name)
		}

		result := &field.Object{
			Name:              input.Name,
			Description:       input.Description,
			DeprecationReason: input.DeprecationReason,
			Type:              typeref.Direct(input.Type),
			Resolve:           input.Resolve,
		}

		// Keep argument order stable.
		names := make([]string, 0, len(input.Args))
		for name := range input.Args {
			names = append(names, name)
		}
		sort.Strings(names)

		for _, name := range names {
			config := input.Args[name]
			if config == nil || config.Type == nil {
				return nil, invalid("argument %s of field %s has no type", name, input.Name)
			}
			result.Args = append(result.Args, &field.Argument{
				Name:         name,
				Description:  config.Description,
				Type:         typeref.Direct(config.Type),
				DefaultValue: config.DefaultValue,
			})
		}

		return result, nil
	}

	return next.Resolve(input)
}

//===----------------------------------------------------------------------------------------====//
// Declarative
//===----------------------------------------------------------------------------------------====//

// Declarative accepts *definition.Field. Its arguments go through the Argument pipeline.
type Declarative struct {
	Arguments *argument.Resolver
}

var _ pipeline.Middleware[*field.Object] = Declarative{}

// Process implements pipeline.Middleware.
func (m Declarative) Process(input interface{}, next pipeline.Next[*field.Object]) (*field.Object, error) {
	def, ok := input.(*definition.Field)
	if !ok {
		return next.Resolve(input)
	}

	if len(def.Name) == 0 {
		return nil, invalid("field definition without name")
	}

	ref, err := typeref.Of(def.Type, nil)
	if err != nil {
		return nil, gqlerr.WrapErrorf(err, "type of field %s", def.Name)
	}

	args := make([]*field.Argument, 0, len(def.Args))
	for _, input := range def.Args {
		arg, err := m.Arguments.Resolve(input)
		if err != nil {
			return nil, gqlerr.WrapErrorf(err, "argument of field %s", def.Name)
		}
		args = append(args, arg)
	}

	return &field.Object{
		Name:              def.Name,
		Description:       def.Description,
		DeprecationReason: def.DeprecationReason,
		Type:              ref,
		Args:              args,
		Resolve:           def.Resolve,
	}, nil
}

//===----------------------------------------------------------------------------------------====//
// Method
//===----------------------------------------------------------------------------------------====//

// Method accepts a reflection.Method that carries a metadata.Field marker. The field resolver calls
// the method on the source value with arguments converted from their GraphQL input. A method may take
// a context.Context first and may return an error last.
//
// When the source is not a value of the type declaring the method, as for root operation types
// whose source is the root object of the request, the receiver is obtained from Container.
type Method struct {
	Reader    metadata.Reader
	Arguments *argument.Resolver
	Naming    field.NamingStrategy
	Parsers   registry.Parsers
	Container container.Container
}

var _ pipeline.Middleware[*field.Object] = Method{}

// Process implements pipeline.Middleware.
func (m Method) Process(input interface{}, next pipeline.Next[*field.Object]) (*field.Object, error) {
	method, ok := input.(reflection.Method)
	if !ok || m.Reader == nil {
		return next.Resolve(input)
	}

	marker, err := metadata.MethodMarker[metadata.Field](m.Reader, method)
	if err != nil {
		return nil, err
	} else if marker == nil {
		return next.Resolve(input)
	}

	result := &field.Object{
		Name:              memberName(marker.Name, method.Name(), m.Naming),
		Description:       marker.Description,
		DeprecationReason: marker.DeprecationReason,
	}

	if len(marker.Type) > 0 {
		result.Type, err = typeref.Parse(marker.Type, method.Owner)
		if err != nil {
			return nil, gqlerr.WrapErrorf(err, "type of method %s", method)
		}
	} else if t := method.ResultType(); t != nil {
		result.Type = typeref.Reflected(t)
	} else {
		return nil, invalid("method %s produces no value", method)
	}

	params := method.Parameters(marker.Args...)
	for _, param := range params {
		arg, err := m.Arguments.Resolve(param)
		if err != nil {
			return nil, gqlerr.WrapErrorf(err, "parameter of method %s", method)
		}
		result.Args = append(result.Args, arg)
	}

	result.Resolve = m.resolver(method, params, result.Args)
	return result, nil
}

func (m Method) resolver(method reflection.Method, params []reflection.Parameter, args []*field.Argument) graphql.FieldResolveFn {
	return func(p graphql.ResolveParams) (interface{}, error) {
		source, err := m.receiver(method, p.Source)
		if err != nil {
			return nil, err
		}

		defs := argumentTypes(p.Info)
		in := make([]reflect.Value, len(params))
		for i, param := range params {
			name := args[i].Name
			v, err := coerce.Value(m.Parsers, defs[name], p.Args[name], param.Type)
			if err != nil {
				return nil, gqlerr.WrapErrorf(err, "argument %s of %s", name, method)
			}
			in[i] = v
		}

		return method.Call(p.Context, source, in)
	}
}

func (m Method) receiver(method reflection.Method, source interface{}) (interface{}, error) {
	if m.Container == nil || method.Owner.Kind() == reflect.Interface {
		return source, nil
	}
	if source != nil && reflection.Indirect(reflect.TypeOf(source)) == method.Owner {
		return source, nil
	}
	return m.Container.Get(method.Owner)
}

// argumentTypes returns the types of the arguments of the field being resolved.
func argumentTypes(info graphql.ResolveInfo) map[string]graphql.Type {
	object, ok := info.ParentType.(*graphql.Object)
	if !ok {
		return nil
	}
	def, ok := object.Fields()[info.FieldName]
	if !ok {
		return nil
	}
	types := make(map[string]graphql.Type, len(def.Args))
	for _, arg := range def.Args {
		types[arg.Name()] = arg.Type
	}
	return types
}

//===----------------------------------------------------------------------------------------====//
// Property
//===----------------------------------------------------------------------------------------====//

// Property accepts a reflection.Property that carries a metadata.Field marker, declared or given by
// the gql struct tag. The field resolver reads the struct field from the source value.
type Property struct {
	Reader metadata.Reader
	Naming field.NamingStrategy
}

var _ pipeline.Middleware[*field.Object] = Property{}

// Process implements pipeline.Middleware.
func (m Property) Process(input interface{}, next pipeline.Next[*field.Object]) (*field.Object, error) {
	property, ok := input.(reflection.Property)
	if !ok || m.Reader == nil {
		return next.Resolve(input)
	}

	marker, err := metadata.PropertyMarker[metadata.Field](m.Reader, property)
	if err != nil {
		return nil, err
	} else if marker == nil {
		return next.Resolve(input)
	}

	result := &field.Object{
		Name:              memberName(marker.Name, property.Name(), m.Naming),
		Description:       marker.Description,
		DeprecationReason: marker.DeprecationReason,
		Type:              typeref.Reflected(property.Field.Type),
		Resolve: func(p graphql.ResolveParams) (interface{}, error) {
			return property.Get(p.Source)
		},
	}

	if len(marker.Type) > 0 {
		result.Type, err = typeref.Parse(marker.Type, property.Owner)
		if err != nil {
			return nil, gqlerr.WrapErrorf(err, "type of property %s", property)
		}
	}

	return result, nil
}

func memberName(explicit string, goName string, naming field.NamingStrategy) string {
	if len(explicit) > 0 {
		return explicit
	}
	if naming == nil {
		naming = field.LowerCamelCase
	}
	return naming(goName)
}

// Options carries what the default middlewares need.
type Options struct {
	Reader    metadata.Reader
	Arguments *argument.Resolver
	Naming    field.NamingStrategy
	Parsers   registry.Parsers
	Container container.Container
}

// Install pipes the default middlewares into r.
func Install(r *Resolver, options Options, priorities Priorities) *Resolver {
	return r.
		Pipe(Native{}, priorities.Native).
		Pipe(Declarative{
			Arguments: options.Arguments,
		}, priorities.Declarative).
		Pipe(Method{
			Reader:    options.Reader,
			Arguments: options.Arguments,
			Naming:    options.Naming,
			Parsers:   options.Parsers,
			Container: options.Container,
		}, priorities.Method).
		Pipe(Property{
			Reader: options.Reader,
			Naming: options.Naming,
		}, priorities.Property)
}
