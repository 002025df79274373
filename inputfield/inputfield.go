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

// Package inputfield implements the InputObjectField pipeline, which turns native input fields,
// declarative input fields, setter methods and struct fields into *field.Input.
package inputfield

import (
	"context"
	"fmt"
	"reflect"

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

// DefaultPriorities mirrors objectfield.DefaultPriorities.
var DefaultPriorities = Priorities{
	Native:      400,
	Declarative: 300,
	Method:      200,
	Property:    100,
}

// Resolver is the InputObjectField pipeline.
type Resolver = pipeline.Pipeline[*field.Input]

// NewResolver creates an empty InputObjectField pipeline.
func NewResolver(opts ...pipeline.Option) *Resolver {
	return pipeline.New[*field.Input](pipeline.KindInputObjectField, opts...)
}

// Registry resolves the types of input fields when their values are assigned.
type Registry interface {
	typeref.Registry
	registry.Parsers
}

func invalid(format string, args ...interface{}) error {
	return gqlerr.NewError(fmt.Sprintf(format, args...), gqlerr.Op("inputfield.Resolve"),
		gqlerr.ErrKindCantResolveInputObjectField)
}

// Named gives a name to a native input field config, which does not carry one.
type Named struct {
	Name   string
	Config *graphql.InputObjectFieldConfig
}

// Native accepts *field.Input, *graphql.InputObjectField and Named.
type Native struct{}

var _ pipeline.Middleware[*field.Input] = Native{}

// Process implements pipeline.Middleware.
func (Native) Process(input interface{}, next pipeline.Next[*field.Input]) (*field.Input, error) {
	switch input := input.(type) {
	case *field.Input:
		return input, nil

	case *graphql.InputObjectField:
		if len(input.Name()) == 0 {
			return nil, invalid("native input field without name")
		}
		if input.Type == nil {
			return nil, invalid("input field %s has no type", input.Name())
		}
		return &field.Input{
			Name:         input.Name(),
			Description:  input.Description(),
			Type:         typeref.Direct(input.Type),
			DefaultValue: input.DefaultValue,
		}, nil

	case Named:
		if len(input.Name) == 0 {
			return nil, invalid("native input field without name")
		}
		if input.Config == nil || input.Config.Type == nil {
			return nil, invalid("input field %s has no type", input.Name)
		}
		return &field.Input{
			Name:         input.Name,
			Description:  input.Config.Description,
			Type:         typeref.Direct(input.Config.Type),
			DefaultValue: input.Config.DefaultValue,
		}, nil
	}

	return next.Resolve(input)
}

// Declarative accepts *definition.InputField.
type Declarative struct{}

var _ pipeline.Middleware[*field.Input] = Declarative{}

// Process implements pipeline.Middleware.
func (Declarative) Process(input interface{}, next pipeline.Next[*field.Input]) (*field.Input, error) {
	def, ok := input.(*definition.InputField)
	if !ok {
		return next.Resolve(input)
	}

	if len(def.Name) == 0 {
		return nil, invalid("input field definition without name")
	}

	ref, err := typeref.Of(def.Type, nil)
	if err != nil {
		return nil, gqlerr.WrapErrorf(err, "type of input field %s", def.Name)
	}

	return &field.Input{
		Name:         def.Name,
		Description:  def.Description,
		Type:         ref,
		DefaultValue: def.DefaultValue,
	}, nil
}

// Method accepts a setter: a reflection.Method with exactly one parameter that carries a
// metadata.InputField marker. The field is named after the method without its "Set" prefix.
type Method struct {
	Reader   metadata.Reader
	Naming   field.NamingStrategy
	Registry Registry
}

var _ pipeline.Middleware[*field.Input] = Method{}

// Process implements pipeline.Middleware.
func (m Method) Process(input interface{}, next pipeline.Next[*field.Input]) (*field.Input, error) {
	method, ok := input.(reflection.Method)
	if !ok || m.Reader == nil {
		return next.Resolve(input)
	}

	marker, err := metadata.MethodMarker[metadata.InputField](m.Reader, method)
	if err != nil {
		return nil, err
	} else if marker == nil {
		return next.Resolve(input)
	}

	if method.TakesContext() {
		return nil, invalid("setter %s takes a context", method)
	}
	params := method.Parameters()
	if len(params) != 1 {
		return nil, invalid("setter %s takes %d parameters instead of one", method, len(params))
	}
	param := params[0]

	result, err := build(marker, field.SetterName(method.Name()), param.Type, method.Owner, m.Naming)
	if err != nil {
		return nil, gqlerr.WrapErrorf(err, "setter %s", method)
	}

	result.Assign = assigner(m.Registry, result, param.Type, func(target reflect.Value, value reflect.Value) error {
		_, err := method.Call(context.Background(), target.Interface(), []reflect.Value{value})
		return err
	})
	return result, nil
}

// Property accepts a reflection.Property that carries a metadata.InputField marker, declared or
// given by the gqlinput struct tag.
type Property struct {
	Reader   metadata.Reader
	Naming   field.NamingStrategy
	Registry Registry
}

var _ pipeline.Middleware[*field.Input] = Property{}

// Process implements pipeline.Middleware.
func (m Property) Process(input interface{}, next pipeline.Next[*field.Input]) (*field.Input, error) {
	property, ok := input.(reflection.Property)
	if !ok || m.Reader == nil {
		return next.Resolve(input)
	}

	marker, err := metadata.PropertyMarker[metadata.InputField](m.Reader, property)
	if err != nil {
		return nil, err
	} else if marker == nil {
		return next.Resolve(input)
	}

	result, err := build(marker, property.Name(), property.Field.Type, property.Owner, m.Naming)
	if err != nil {
		return nil, gqlerr.WrapErrorf(err, "property %s", property)
	}

	result.Assign = assigner(m.Registry, result, property.Field.Type, property.Set)
	return result, nil
}

func build(marker *metadata.InputField, goName string, t reflect.Type, owner reflect.Type, naming field.NamingStrategy) (*field.Input, error) {
	result := &field.Input{
		Name:         marker.Name,
		Description:  marker.Description,
		Type:         typeref.Reflected(t),
		DefaultValue: marker.DefaultValue,
	}

	if len(result.Name) == 0 {
		if naming == nil {
			naming = field.LowerCamelCase
		}
		result.Name = naming(goName)
	}

	if len(marker.Type) > 0 {
		ref, err := typeref.Parse(marker.Type, owner)
		if err != nil {
			return nil, err
		}
		result.Type = ref
	}

	return result, nil
}

// assigner converts the input value to t and stores it with set. The GraphQL type of the field is
// resolved on every assignment, which only happens once the schema has been assembled.
func assigner(r Registry, f *field.Input, t reflect.Type, set func(target reflect.Value, value reflect.Value) error) field.Assigner {
	return func(target reflect.Value, value interface{}) error {
		var (
			gqlType graphql.Type
			parsers registry.Parsers
		)
		if r != nil {
			parsers = r
			if resolved, err := f.Type.Resolve(r); err == nil {
				gqlType = resolved
			}
		}

		v, err := coerce.Value(parsers, gqlType, value, t)
		if err != nil {
			return gqlerr.WrapErrorf(err, "input field %s", f.Name)
		}
		return set(target, v)
	}
}

// Options carries what the default middlewares need.
type Options struct {
	Reader   metadata.Reader
	Naming   field.NamingStrategy
	Registry Registry
}

// Install pipes the default middlewares into r.
func Install(r *Resolver, options Options, priorities Priorities) *Resolver {
	return r.
		Pipe(Native{}, priorities.Native).
		Pipe(Declarative{}, priorities.Declarative).
		Pipe(Method{
			Reader:   options.Reader,
			Naming:   options.Naming,
			Registry: options.Registry,
		}, priorities.Method).
		Pipe(Property{
			Reader:   options.Reader,
			Naming:   options.Naming,
			Registry: options.Registry,
		}, priorities.Property)
}
