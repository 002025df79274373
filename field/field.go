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

// Package field defines the canonical outputs of the ObjectField, InputObjectField and Argument
// pipelines. They keep symbolic type references and are realized into graphql-go configs when the
// engine evaluates the field thunks of a type.
package field

import (
	"reflect"

	"github.com/botobag/gqlreflect/gqlerr"
	"github.com/botobag/gqlreflect/typeref"

	"github.com/graphql-go/graphql"
)

// Argument is a resolved field argument.
type Argument struct {
	Name         string
	Description  string
	Type         typeref.Ref
	DefaultValue interface{}
}

// Realize resolves the argument type. An argument with a default value is nullable, so queries may
// omit it.
func (arg *Argument) Realize(registry typeref.Registry) (*graphql.ArgumentConfig, error) {
	t, err := resolve(registry, arg.Type, arg.Name)
	if err != nil {
		return nil, err
	}

	if !graphql.IsInputType(t) {
		return nil, gqlerr.NewError("argument "+arg.Name+" has output type "+t.String(),
			gqlerr.Op("field.Realize"), gqlerr.ErrKindCantResolveArgument)
	}

	return &graphql.ArgumentConfig{
		Type:         withDefault(t, arg.DefaultValue),
		DefaultValue: arg.DefaultValue,
		Description:  arg.Description,
	}, nil
}

// Object is a resolved output field.
type Object struct {
	Name              string
	Description       string
	DeprecationReason string
	Type              typeref.Ref
	Args              []*Argument

	// Resolve may be nil, in which case the default resolver of the object type applies.
	Resolve graphql.FieldResolveFn
}

// Realize resolves the field type and the argument types.
func (f *Object) Realize(registry typeref.Registry) (*graphql.Field, error) {
	t, err := resolve(registry, f.Type, f.Name)
	if err != nil {
		return nil, err
	}

	if !graphql.IsOutputType(t) {
		return nil, gqlerr.NewError("field "+f.Name+" has input type "+t.String(),
			gqlerr.Op("field.Realize"), gqlerr.ErrKindCantResolveObjectField)
	}

	var args graphql.FieldConfigArgument
	if len(f.Args) > 0 {
		args = make(graphql.FieldConfigArgument, len(f.Args))
		for _, arg := range f.Args {
			config, err := arg.Realize(registry)
			if err != nil {
				return nil, gqlerr.WrapErrorf(err, "argument of field %s", f.Name)
			}
			args[arg.Name] = config
		}
	}

	return &graphql.Field{
		Name:              f.Name,
		Type:              t,
		Args:              args,
		Resolve:           f.Resolve,
		DeprecationReason: f.DeprecationReason,
		Description:       f.Description,
	}, nil
}

// Assigner stores the input value of a field into a Go value. The target is a pointer to the Go
// value hydrated from the input object.
type Assigner func(target reflect.Value, value interface{}) error

// Input is a resolved input field.
type Input struct {
	Name         string
	Description  string
	Type         typeref.Ref
	DefaultValue interface{}

	// Assign is set for fields derived from a Go type.
	Assign Assigner
}

// Realize resolves the field type. Like arguments, a field with a default value is nullable.
func (f *Input) Realize(registry typeref.Registry) (*graphql.InputObjectFieldConfig, error) {
	t, err := resolve(registry, f.Type, f.Name)
	if err != nil {
		return nil, err
	}

	if !graphql.IsInputType(t) {
		return nil, gqlerr.NewError("input field "+f.Name+" has output type "+t.String(),
			gqlerr.Op("field.Realize"), gqlerr.ErrKindCantResolveInputObjectField)
	}

	return &graphql.InputObjectFieldConfig{
		Type:         withDefault(t, f.DefaultValue),
		DefaultValue: f.DefaultValue,
		Description:  f.Description,
	}, nil
}

// withDefault drops the outer non-null of t when a default value is given. The engine requires
// every non-null argument and input field to be provided and does not consult defaults.
func withDefault(t graphql.Type, defaultValue interface{}) graphql.Type {
	if defaultValue == nil {
		return t
	}
	if nonNull, ok := t.(*graphql.NonNull); ok {
		return nonNull.OfType
	}
	return t
}

func resolve(registry typeref.Registry, ref typeref.Ref, name string) (graphql.Type, error) {
	if ref == nil {
		return nil, gqlerr.NewError("missing type of "+name, gqlerr.Op("field.Realize"),
			gqlerr.ErrKindCantResolveGraphQLType)
	}
	t, err := ref.Resolve(registry)
	if err != nil {
		return nil, gqlerr.WrapErrorf(err, "type of %s", name)
	}
	return t, nil
}
