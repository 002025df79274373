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
	"strconv"

	"github.com/graphql-go/graphql/language/ast"
)

// LiteralValue converts a literal of a query document into the Go value a variable of the same
// content would have: int, float64, string, bool, []interface{} or map[string]interface{}. Enum
// literals become their name. Variables and malformed numbers yield nil.
func LiteralValue(literal ast.Value) interface{} {
	switch literal := literal.(type) {
	case *ast.IntValue:
		if i, err := strconv.ParseInt(literal.Value, 10, 64); err == nil {
			return int(i)
		}

	case *ast.FloatValue:
		if f, err := strconv.ParseFloat(literal.Value, 64); err == nil {
			return f
		}

	case *ast.StringValue:
		return literal.Value

	case *ast.BooleanValue:
		return literal.Value

	case *ast.EnumValue:
		return literal.Value

	case *ast.ListValue:
		values := make([]interface{}, len(literal.Values))
		for i, item := range literal.Values {
			values[i] = LiteralValue(item)
		}
		return values

	case *ast.ObjectValue:
		fields := make(map[string]interface{}, len(literal.Fields))
		for _, f := range literal.Fields {
			fields[f.Name.Value] = LiteralValue(f.Value)
		}
		return fields
	}

	return nil
}
