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

package util

import (
	"fmt"
	"io"
	"reflect"
	"runtime"
	"strings"

	jsoniter "github.com/json-iterator/go"
)

// InspectTo prints Go values v to the given out in the same format as graphql-js's inspect
// function. The implementation matches
// https://github.com/graphql/graphql-js/blob/4cdc8e2/src/jsutils/inspect.js.
//
// Note that errors returned from out.Write are ignored.
func InspectTo(out io.StringWriter, v interface{}) error {
	value := reflect.ValueOf(v)
	switch value.Kind() {
	case reflect.String:
		// graphql-js: JSON.stringify(value)
		s, err := jsoniter.ConfigCompatibleWithStandardLibrary.MarshalToString(value.String())
		if err != nil {
			return err
		}
		out.WriteString(s)

	case reflect.Func:
		out.WriteString("[function ")
		out.WriteString(runtime.FuncForPC(value.Pointer()).Name())
		out.WriteString("]")

	case reflect.Array, reflect.Slice:
		out.WriteString("[")
		for i := 0; i < value.Len(); i++ {
			if i > 0 {
				out.WriteString(", ")
			}
			if err := InspectTo(out, value.Index(i).Interface()); err != nil {
				return err
			}
		}
		out.WriteString("]")

	case reflect.Map:
		if value.Len() == 0 {
			out.WriteString("{}")
			return nil
		}

		out.WriteString("{ ")
		keys := value.MapKeys()
		for i, key := range keys {
			if err := InspectTo(out, key.Interface()); err != nil {
				return err
			}
			out.WriteString(": ")
			if err := InspectTo(out, value.MapIndex(key).Interface()); err != nil {
				return err
			}
			if i != len(keys)-1 {
				out.WriteString(", ")
			}
		}
		out.WriteString(" }")

	case reflect.Ptr:
		elem := value.Elem()
		if !elem.IsValid() {
			out.WriteString("null")
			return nil
		}
		return InspectTo(out, elem.Interface())

	case reflect.Invalid:
		out.WriteString("null")

	default:
		out.WriteString(fmt.Sprint(v))
	}

	return nil
}

// Inspect calls InspectTo but panics on error.
func Inspect(v interface{}) string {
	var buf strings.Builder
	if err := InspectTo(&buf, v); err != nil {
		panic(fmt.Sprintf("inspect %+v with error: %s", v, err))
	}
	return buf.String()
}

// Describe returns a short description of a resolution input for error messages. Unlike Inspect it
// never walks into structs, which may be large or cyclic.
func Describe(v interface{}) string {
	switch v := v.(type) {
	case nil:
		return "null"

	case reflect.Type:
		return fmt.Sprintf(`class "%s"`, v)

	case fmt.Stringer:
		return fmt.Sprintf("%T(%s)", v, v.String())

	case map[string]interface{}, []interface{}, string, bool, int, float64:
		return Inspect(v)
	}

	return fmt.Sprintf("value of type %T", v)
}
