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

package metadata

import (
	"fmt"
	"reflect"
	"sync"

	"github.com/botobag/gqlreflect/gqlerr"
	"github.com/botobag/gqlreflect/reflection"
)

type memberKey struct {
	owner reflect.Type
	name  string
}

type parameterKey struct {
	memberKey
	index int
}

// Declarations is a Reader serving markers declared in code or loaded from documents. Struct tags
// are read for struct fields that have no declared Field or InputField marker.
//
// Declarations is safe for concurrent use.
type Declarations struct {
	mutex      sync.RWMutex
	classes    map[reflect.Type][]interface{}
	methods    map[memberKey][]interface{}
	parameters map[parameterKey][]interface{}
	properties map[memberKey][]interface{}
}

var _ Reader = (*Declarations)(nil)

// NewDeclarations creates an empty set of declarations.
func NewDeclarations() *Declarations {
	return &Declarations{
		classes:    map[reflect.Type][]interface{}{},
		methods:    map[memberKey][]interface{}{},
		parameters: map[parameterKey][]interface{}{},
		properties: map[memberKey][]interface{}{},
	}
}

// normalize returns markers as pointers to fresh copies of the marker structs. Nil markers are
// dropped.
func normalize(markers []interface{}) []interface{} {
	result := make([]interface{}, 0, len(markers))
	for _, marker := range markers {
		v := reflect.ValueOf(marker)
		if !v.IsValid() {
			continue
		}
		if v.Kind() == reflect.Ptr {
			if v.IsNil() {
				continue
			}
			v = v.Elem()
		}
		p := reflect.New(v.Type())
		p.Elem().Set(v)
		result = append(result, p.Interface())
	}
	return result
}

// DeclareClass attaches markers to a Go type. Markers may be given as values or pointers.
func (d *Declarations) DeclareClass(class reflect.Type, markers ...interface{}) *Declarations {
	d.mutex.Lock()
	defer d.mutex.Unlock()
	class = reflection.Indirect(class)
	d.classes[class] = append(d.classes[class], normalize(markers)...)
	return d
}

// DeclareMethod attaches markers to the method of class with the given name.
func (d *Declarations) DeclareMethod(class reflect.Type, method string, markers ...interface{}) *Declarations {
	d.mutex.Lock()
	defer d.mutex.Unlock()
	key := memberKey{reflection.Indirect(class), method}
	d.methods[key] = append(d.methods[key], normalize(markers)...)
	return d
}

// DeclareParameter attaches markers to the index-th GraphQL parameter of a method, not counting a
// leading context.Context.
func (d *Declarations) DeclareParameter(class reflect.Type, method string, index int, markers ...interface{}) *Declarations {
	d.mutex.Lock()
	defer d.mutex.Unlock()
	key := parameterKey{memberKey{reflection.Indirect(class), method}, index}
	d.parameters[key] = append(d.parameters[key], normalize(markers)...)
	return d
}

// DeclareProperty attaches markers to the struct field of class with the given name.
func (d *Declarations) DeclareProperty(class reflect.Type, field string, markers ...interface{}) *Declarations {
	d.mutex.Lock()
	defer d.mutex.Unlock()
	key := memberKey{reflection.Indirect(class), field}
	d.properties[key] = append(d.properties[key], normalize(markers)...)
	return d
}

func first(markers []interface{}, marker reflect.Type) interface{} {
	for _, m := range markers {
		if reflect.TypeOf(m).Elem() == marker {
			return m
		}
	}
	return nil
}

// FirstClassMetadata implements Reader.
func (d *Declarations) FirstClassMetadata(class reflect.Type, marker reflect.Type) (interface{}, error) {
	d.mutex.RLock()
	defer d.mutex.RUnlock()
	return first(d.classes[reflection.Indirect(class)], marker), nil
}

// FirstMethodMetadata implements Reader.
func (d *Declarations) FirstMethodMetadata(method reflection.Method, marker reflect.Type) (interface{}, error) {
	d.mutex.RLock()
	defer d.mutex.RUnlock()
	return first(d.methods[memberKey{method.Owner, method.Name()}], marker), nil
}

// FirstParameterMetadata implements Reader.
func (d *Declarations) FirstParameterMetadata(param reflection.Parameter, marker reflect.Type) (interface{}, error) {
	d.mutex.RLock()
	defer d.mutex.RUnlock()
	key := parameterKey{memberKey{param.Method.Owner, param.Method.Name()}, param.Index}
	return first(d.parameters[key], marker), nil
}

// FirstPropertyMetadata implements Reader. Declared markers take precedence over struct tags.
func (d *Declarations) FirstPropertyMetadata(property reflection.Property, marker reflect.Type) (interface{}, error) {
	d.mutex.RLock()
	found := first(d.properties[memberKey{property.Owner, property.Name()}], marker)
	d.mutex.RUnlock()

	if found != nil {
		return found, nil
	}

	switch marker {
	case MarkerType[Field]():
		if field, err := fieldFromTag(property.Field); err != nil || field != nil {
			return nilIfEmpty(field), err
		}
	case MarkerType[InputField]():
		if field, err := inputFieldFromTag(property.Field); err != nil || field != nil {
			return nilIfEmpty(field), err
		}
	}
	return nil, nil
}

// nilIfEmpty keeps a typed nil pointer from becoming a non-nil interface.
func nilIfEmpty[M any](m *M) interface{} {
	if m == nil {
		return nil
	}
	return m
}

// Validate checks that every declared member exists on its owner.
func (d *Declarations) Validate() error {
	d.mutex.RLock()
	defer d.mutex.RUnlock()

	const op = gqlerr.Op("metadata.Validate")

	for key := range d.methods {
		if _, ok := reflection.MethodOf(key.owner, key.name); !ok {
			return gqlerr.NewError(fmt.Sprintf("%s has no exported method %s", key.owner, key.name), op,
				gqlerr.ErrKindInvalidMetadata)
		}
	}
	for key := range d.parameters {
		method, ok := reflection.MethodOf(key.owner, key.name)
		if !ok {
			return gqlerr.NewError(fmt.Sprintf("%s has no exported method %s", key.owner, key.name), op,
				gqlerr.ErrKindInvalidMetadata)
		}
		if key.index < 0 || key.index >= len(method.Parameters()) {
			return gqlerr.NewError(fmt.Sprintf("%s has no parameter %d", method, key.index), op,
				gqlerr.ErrKindInvalidMetadata)
		}
	}
	for key := range d.properties {
		if _, ok := reflection.PropertyOf(key.owner, key.name); !ok {
			return gqlerr.NewError(fmt.Sprintf("%s has no exported field %s", key.owner, key.name), op,
				gqlerr.ErrKindInvalidMetadata)
		}
	}
	return nil
}
