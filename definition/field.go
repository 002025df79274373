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

package definition

import (
	"github.com/graphql-go/graphql"
)

// Field defines an output field. Type accepts a type expression, a reflect.Type, a graphql.Type or a
// typeref.Ref. Args are inputs of the Argument pipeline.
type Field struct {
	Name              string
	Description       string
	DeprecationReason string
	Type              interface{}
	Args              []interface{}
	Resolve           graphql.FieldResolveFn
}

// InputField defines an input field.
type InputField struct {
	Name         string
	Description  string
	Type         interface{}
	DefaultValue interface{}
}

// Argument defines a field argument.
type Argument struct {
	Name         string
	Description  string
	Type         interface{}
	DefaultValue interface{}
}
