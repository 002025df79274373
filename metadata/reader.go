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

	"github.com/botobag/gqlreflect/gqlerr"
	"github.com/botobag/gqlreflect/reflection"
)

// Reader looks up markers. Each method returns the first marker of the given marker type attached
// to the subject as a pointer to the marker struct, or nil if there is none.
type Reader interface {
	FirstClassMetadata(class reflect.Type, marker reflect.Type) (interface{}, error)
	FirstMethodMetadata(method reflection.Method, marker reflect.Type) (interface{}, error)
	FirstParameterMetadata(param reflection.Parameter, marker reflect.Type) (interface{}, error)
	FirstPropertyMetadata(property reflection.Property, marker reflect.Type) (interface{}, error)
}

// MarkerType returns the reflect.Type that identifies markers of type M.
func MarkerType[M any]() reflect.Type {
	return reflect.TypeOf((*M)(nil)).Elem()
}

func cast[M any](v interface{}, err error) (*M, error) {
	if err != nil || v == nil {
		return nil, err
	}
	m, ok := v.(*M)
	if !ok {
		return nil, gqlerr.NewError(
			fmt.Sprintf("reader returned %T for marker %s", v, MarkerType[M]()),
			gqlerr.Op("metadata.Read"),
			gqlerr.ErrKindInvalidMetadata)
	}
	return m, nil
}

// ClassMarker returns the first marker of type M attached to class.
func ClassMarker[M any](r Reader, class reflect.Type) (*M, error) {
	return cast[M](r.FirstClassMetadata(class, MarkerType[M]()))
}

// MethodMarker returns the first marker of type M attached to method.
func MethodMarker[M any](r Reader, method reflection.Method) (*M, error) {
	return cast[M](r.FirstMethodMetadata(method, MarkerType[M]()))
}

// ParameterMarker returns the first marker of type M attached to param.
func ParameterMarker[M any](r Reader, param reflection.Parameter) (*M, error) {
	return cast[M](r.FirstParameterMetadata(param, MarkerType[M]()))
}

// PropertyMarker returns the first marker of type M attached to property.
func PropertyMarker[M any](r Reader, property reflection.Property) (*M, error) {
	return cast[M](r.FirstPropertyMetadata(property, MarkerType[M]()))
}
