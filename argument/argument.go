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

// Package argument implements the Argument pipeline, which turns raw configs, declarative
// arguments and method parameters into *field.Argument.
package argument

import (
	"fmt"

	"github.com/botobag/gqlreflect/definition"
	"github.com/botobag/gqlreflect/field"
	"github.com/botobag/gqlreflect/gqlerr"
	"github.com/botobag/gqlreflect/metadata"
	"github.com/botobag/gqlreflect/pipeline"
	"github.com/botobag/gqlreflect/reflection"
	"github.com/botobag/gqlreflect/typeref"

	"github.com/graphql-go/graphql"
)

// Priorities of the default middlewares
type Priorities struct {
	Config      int
	Declarative int
	Parameter   int
}

// DefaultPriorities gives raw configs precedence over declarative arguments and declarative
// arguments precedence over reflection.
var DefaultPriorities = Priorities{
	Config:      300,
	Declarative: 200,
	Parameter:   100,
}

// Resolver is the Argument pipeline.
type Resolver = pipeline.Pipeline[*field.Argument]

// NewResolver creates an empty Argument pipeline.
func NewResolver(opts ...pipeline.Option) *Resolver {
	return pipeline.New[*field.Argument](pipeline.KindArgument, opts...)
}

// Named gives a name to a native argument config, which does not carry one.
type Named struct {
	Name   string
	Config *graphql.ArgumentConfig
}

// Config accepts arguments that are already configured: *field.Argument, Named and raw
// map[string]interface{} configs with the keys "name", "type", "description" and "defaultValue".
type Config struct{}

var _ pipeline.Middleware[*field.Argument] = Config{}

// Process implements pipeline.Middleware.
func (Config) Process(input interface{}, next pipeline.Next[*field.Argument]) (*field.Argument, error) {
	switch input := input.(type) {
	case *field.Argument:
		return input, nil

	case Named:
		if input.Config == nil || input.Config.Type == nil {
			return nil, invalid("argument %s has no type", input.Name)
		}
		return &field.Argument{
			Name:         input.Name,
			Description:  input.Config.Description,
			Type:         typeref.Direct(input.Config.Type),
			DefaultValue: input.Config.DefaultValue,
		}, nil

	case map[string]interface{}:
		return fromMap(input)
	}

	return next.Resolve(input)
}

func invalid(format string, args ...interface{}) error {
	return gqlerr.NewError(fmt.Sprintf(format, args...), gqlerr.Op("argument.Resolve"),
		gqlerr.ErrKindCantResolveArgument)
}

func fromMap(config map[string]interface{}) (*field.Argument, error) {
	name, _ := config["name"].(string)
	if len(name) == 0 {
		return nil, invalid("argument config without name")
	}

	description, _ := config["description"].(string)

	ref, err := typeref.Of(config["type"], nil)
	if err != nil {
		return nil, gqlerr.WrapErrorf(err, "type of argument %s", name)
	}

	return &field.Argument{
		Name:         name,
		Description:  description,
		Type:         ref,
		DefaultValue: config["defaultValue"],
	}, nil
}

// Declarative accepts *definition.Argument.
type Declarative struct{}

var _ pipeline.Middleware[*field.Argument] = Declarative{}

// Process implements pipeline.Middleware.
func (Declarative) Process(input interface{}, next pipeline.Next[*field.Argument]) (*field.Argument, error) {
	arg, ok := input.(*definition.Argument)
	if !ok {
		return next.Resolve(input)
	}

	if len(arg.Name) == 0 {
		return nil, invalid("argument definition without name")
	}

	ref, err := typeref.Of(arg.Type, nil)
	if err != nil {
		return nil, gqlerr.WrapErrorf(err, "type of argument %s", arg.Name)
	}

	return &field.Argument{
		Name:         arg.Name,
		Description:  arg.Description,
		Type:         ref,
		DefaultValue: arg.DefaultValue,
	}, nil
}

// Parameter accepts reflection.Parameter. The argument takes the name and the type of the
// parameter unless a metadata.Argument marker overrides them.
type Parameter struct {
	Reader metadata.Reader
}

var _ pipeline.Middleware[*field.Argument] = Parameter{}

// Process implements pipeline.Middleware.
func (m Parameter) Process(input interface{}, next pipeline.Next[*field.Argument]) (*field.Argument, error) {
	param, ok := input.(reflection.Parameter)
	if !ok {
		return next.Resolve(input)
	}

	var marker *metadata.Argument
	if m.Reader != nil {
		var err error
		marker, err = metadata.ParameterMarker[metadata.Argument](m.Reader, param)
		if err != nil {
			return nil, err
		}
	}

	arg := &field.Argument{
		Name: param.Name,
		Type: typeref.Reflected(param.Type),
	}

	if marker != nil {
		if len(marker.Name) > 0 {
			arg.Name = marker.Name
		}
		if len(marker.Type) > 0 {
			ref, err := typeref.Parse(marker.Type, param.Method.Owner)
			if err != nil {
				return nil, gqlerr.WrapErrorf(err, "type of parameter %s", param)
			}
			arg.Type = ref
		}
		arg.Description = marker.Description
		arg.DefaultValue = marker.DefaultValue
	}

	return arg, nil
}

// Install pipes the default middlewares into r.
func Install(r *Resolver, reader metadata.Reader, priorities Priorities) *Resolver {
	return r.
		Pipe(Config{}, priorities.Config).
		Pipe(Declarative{}, priorities.Declarative).
		Pipe(Parameter{Reader: reader}, priorities.Parameter)
}
