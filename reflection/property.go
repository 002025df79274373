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

package reflection

import (
	"fmt"
	"reflect"

	"github.com/botobag/gqlreflect/gqlerr"
)

// Property is a handle to an exported field of a struct, including fields promoted from embedded
// structs.
type Property struct {
	// Owner is the struct type declaring or promoting the field.
	Owner reflect.Type

	// Field describes the field. Its Index leads from Owner to the field.
	Field reflect.StructField
}

// Properties returns the exported fields visible on the struct type t in declaration order. Embedded
// structs themselves are omitted; their fields are returned as promoted fields.
func Properties(t reflect.Type) []Property {
	owner := Indirect(t)
	if owner.Kind() != reflect.Struct {
		return nil
	}

	var properties []Property
	for _, field := range reflect.VisibleFields(owner) {
		if !field.IsExported() {
			continue
		}
		if field.Anonymous && Indirect(field.Type).Kind() == reflect.Struct {
			continue
		}
		properties = append(properties, Property{
			Owner: owner,
			Field: field,
		})
	}
	return properties
}

// PropertyOf returns the exported field with the given name.
func PropertyOf(t reflect.Type, name string) (Property, bool) {
	owner := Indirect(t)
	if owner.Kind() != reflect.Struct {
		return Property{}, false
	}
	field, ok := owner.FieldByName(name)
	if !ok || !field.IsExported() {
		return Property{}, false
	}
	return Property{
		Owner: owner,
		Field: field,
	}, true
}

// Name returns the field name.
func (p Property) Name() string {
	return p.Field.Name
}

// String returns the owner and the field name, for example "model.User.Name".
func (p Property) String() string {
	return fmt.Sprintf("%s.%s", p.Owner, p.Field.Name)
}

// Get reads the field from source, a value or a pointer to a value of Owner. It returns nil when
// an embedded pointer on the path to the field is nil.
func (p Property) Get(source interface{}) (interface{}, error) {
	v := reflect.Indirect(reflect.ValueOf(source))
	if !v.IsValid() {
		return nil, nil
	}
	if v.Type() != p.Owner {
		return nil, gqlerr.NewError(fmt.Sprintf("cannot read %s from value of type %T", p, source),
			gqlerr.Op("reflection.Get"), gqlerr.ErrKindInternal)
	}

	field, err := v.FieldByIndexErr(p.Field.Index)
	if err != nil {
		return nil, nil
	}
	return field.Interface(), nil
}

// Set stores value into the field of target, which must be an addressable value of Owner. Nil
// embedded pointers on the path are allocated.
func (p Property) Set(target reflect.Value, value reflect.Value) error {
	target = reflect.Indirect(target)
	if !target.CanAddr() || target.Type() != p.Owner {
		return gqlerr.NewError(fmt.Sprintf("cannot assign %s on %s", p, target.Type()),
			gqlerr.Op("reflection.Set"), gqlerr.ErrKindInternal)
	}

	v := target
	for i, x := range p.Field.Index {
		if i > 0 && v.Kind() == reflect.Ptr {
			if v.IsNil() {
				v.Set(reflect.New(v.Type().Elem()))
			}
			v = v.Elem()
		}
		v = v.Field(x)
	}
	v.Set(value)
	return nil
}
