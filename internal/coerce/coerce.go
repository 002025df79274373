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

// Package coerce converts values produced by graphql-go input coercion into Go values of a given
// type.
package coerce

import (
	"fmt"
	"reflect"

	"github.com/botobag/gqlreflect/gqlerr"
	"github.com/botobag/gqlreflect/registry"

	"github.com/graphql-go/graphql"
	jsoniter "github.com/json-iterator/go"
)

// Parsers looks up the value parsers of input object types.
type Parsers = registry.Parsers

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const op = gqlerr.Op("coerce.Value")

// Value converts value, an input of GraphQL type t, into a value assignable to target.
//
// Input objects with a value parser are parsed first. Lists are converted item by item. Numbers,
// strings and booleans are converted between Go types of the same family. Anything else is
// converted through a JSON round trip.
func Value(parsers Parsers, t graphql.Type, value interface{}, target reflect.Type) (reflect.Value, error) {
	if value == nil {
		return reflect.Zero(target), nil
	}

	v := reflect.ValueOf(value)
	if v.Type().AssignableTo(target) {
		return v, nil
	}

	if target.Kind() == reflect.Ptr {
		inner, err := Value(parsers, t, value, target.Elem())
		if err != nil {
			return reflect.Value{}, err
		}
		p := reflect.New(target.Elem())
		p.Elem().Set(inner)
		return p, nil
	}

	switch t := graphql.GetNullable(t).(type) {
	case *graphql.InputObject:
		if m, ok := value.(map[string]interface{}); ok && parsers != nil {
			if parse := parsers.ValueParser(t.Name()); parse != nil {
				parsed, err := parse(m)
				if err != nil {
					return reflect.Value{}, gqlerr.NewError(fmt.Sprintf("cannot parse %s", t.Name()), op, err,
						gqlerr.TypeName(t.Name()))
				}
				return convert(parsed, target)
			}
		}

	case *graphql.List:
		if items, ok := value.([]interface{}); ok && target.Kind() == reflect.Slice {
			result := reflect.MakeSlice(target, len(items), len(items))
			for i, item := range items {
				converted, err := Value(parsers, t.OfType, item, target.Elem())
				if err != nil {
					return reflect.Value{}, err
				}
				result.Index(i).Set(converted)
			}
			return result, nil
		}
	}

	return convert(value, target)
}

func family(kind reflect.Kind) int {
	switch kind {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return 1
	case reflect.String:
		return 2
	case reflect.Bool:
		return 3
	}
	return 0
}

func convert(value interface{}, target reflect.Type) (reflect.Value, error) {
	if value == nil {
		return reflect.Zero(target), nil
	}

	v := reflect.ValueOf(value)
	switch {
	case v.Type().AssignableTo(target):
		return v, nil

	case v.Kind() == reflect.Ptr && !v.IsNil() && v.Elem().Type().AssignableTo(target):
		return v.Elem(), nil

	case family(v.Kind()) != 0 && family(v.Kind()) == family(target.Kind()):
		return v.Convert(target), nil
	}

	data, err := json.Marshal(value)
	if err != nil {
		return reflect.Value{}, gqlerr.NewError(fmt.Sprintf("cannot convert %T to %s", value, target), op, err)
	}
	p := reflect.New(target)
	if err := json.Unmarshal(data, p.Interface()); err != nil {
		return reflect.Value{}, gqlerr.NewError(fmt.Sprintf("cannot convert %T to %s", value, target), op, err)
	}
	return p.Elem(), nil
}
