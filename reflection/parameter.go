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
)

// Parameter is a handle to a method parameter that receives GraphQL input.
type Parameter struct {
	// Method declaring the parameter
	Method Method

	// Index of the parameter among the ones returned by Method.Parameters
	Index int

	// Name of the parameter
	Name string

	// Type of the parameter
	Type reflect.Type
}

// String returns the method and the parameter name, for example "model.Query.User(id)".
func (p Parameter) String() string {
	return fmt.Sprintf("%s(%s)", p.Method, p.Name)
}
