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
	"fmt"
	"reflect"

	"github.com/botobag/gqlreflect/definition"
	"github.com/botobag/gqlreflect/metadata"
	"github.com/botobag/gqlreflect/pipeline"
	"github.com/botobag/gqlreflect/reflection"

	"github.com/graphql-go/graphql"
)

// Enum accepts a Go type that implements definition.EnumCases or carries a metadata.EnumType
// marker. The enum values are the cases, named by fmt.Stringer, or the values listed by the marker.
// Values of the enum are values of the Go type.
type Enum struct {
	Env *Env
}

var _ pipeline.Middleware[graphql.Type] = Enum{}

// Process implements pipeline.Middleware.
func (m Enum) Process(input interface{}, next pipeline.Next[graphql.Type]) (graphql.Type, error) {
	t, ok := input.(reflect.Type)
	if !ok {
		return next.Resolve(input)
	}
	class := reflection.Indirect(t)

	var marker *metadata.EnumType
	if m.Env.Reader != nil {
		var err error
		marker, err = metadata.ClassMarker[metadata.EnumType](m.Env.Reader, class)
		if err != nil {
			return nil, err
		}
	}

	cases := enumCases(class)
	if marker == nil && cases == nil {
		return next.Resolve(input)
	}

	return m.Env.enumFromClass(class, marker, cases)
}

// enumCases returns the EnumCases capability of the zero value of class or of a pointer to it.
func enumCases(class reflect.Type) definition.EnumCases {
	if class.Kind() == reflect.Interface {
		return nil
	}
	if cases, ok := reflect.Zero(class).Interface().(definition.EnumCases); ok {
		return cases
	}
	if cases, ok := reflect.New(class).Interface().(definition.EnumCases); ok {
		return cases
	}
	return nil
}

func caseName(c interface{}) string {
	if s, ok := c.(fmt.Stringer); ok {
		return s.String()
	}
	return fmt.Sprint(c)
}

func (env *Env) enumFromClass(class reflect.Type, marker *metadata.EnumType, cases definition.EnumCases) (graphql.Type, error) {
	src := typeSource{
		name: class.Name(),
	}
	values := graphql.EnumValueConfigMap{}

	if cases != nil {
		for _, c := range cases.Cases() {
			name := caseName(c)
			value, err := enumValue(class, name, c)
			if err != nil {
				return nil, err
			}
			config := &graphql.EnumValueConfig{
				Value: value,
			}
			if d, ok := c.(definition.Describer); ok {
				config.Description = d.Description()
			}
			if d, ok := c.(definition.Deprecator); ok {
				config.DeprecationReason = d.DeprecationReason()
			}
			values[name] = config
		}
	}

	if marker != nil {
		if len(marker.Name) > 0 {
			src.name = marker.Name
		}
		src.description = marker.Description

		for _, v := range marker.Values {
			config, exists := values[v.Name]
			if !exists {
				if cases != nil {
					return nil, invalidMetadata("enum %s has no case %s", src.name, v.Name)
				}
				value, err := enumValue(class, v.Name, v.Value)
				if err != nil {
					return nil, err
				}
				config = &graphql.EnumValueConfig{
					Value: value,
				}
				values[v.Name] = config
			}
			if len(v.Description) > 0 {
				config.Description = v.Description
			}
			if len(v.DeprecationReason) > 0 {
				config.DeprecationReason = v.DeprecationReason
			}
		}
	}

	return typeOrError(env.newEnum(src, values))
}
