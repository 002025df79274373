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

package field

import (
	"strings"
	"unicode"

	"github.com/botobag/gqlreflect/gqlerr"
	"github.com/botobag/gqlreflect/internal/util"
)

// NamingStrategy derives a GraphQL name from the name of a Go member.
type NamingStrategy func(goName string) string

// Naming strategies
var (
	// LowerCamelCase turns FirstName into firstName and UserID into userID. It is the default.
	LowerCamelCase NamingStrategy = util.LowerCamelCase

	// SnakeCase turns FirstName into first_name.
	SnakeCase NamingStrategy = util.SnakeCase

	// Verbatim keeps the Go name.
	Verbatim NamingStrategy = func(goName string) string { return goName }
)

// NamingStrategyByName returns the strategy called "camel", "snake" or "none".
func NamingStrategyByName(name string) (NamingStrategy, error) {
	switch strings.ToLower(name) {
	case "", "camel":
		return LowerCamelCase, nil
	case "snake":
		return SnakeCase, nil
	case "none":
		return Verbatim, nil
	}
	return nil, gqlerr.NewError(`unknown naming strategy "`+name+`"`, gqlerr.Op("field.NamingStrategyByName"),
		gqlerr.ErrKindInvalidMetadata)
}

// SetterName derives the name of an input field from a setter method name by dropping the "Set"
// prefix. Names where "Set" does not start a word, like Settle, are kept.
func SetterName(goName string) string {
	if trimmed := strings.TrimPrefix(goName, "Set"); len(trimmed) > 0 && trimmed != goName &&
		unicode.IsUpper(rune(trimmed[0])) {
		return trimmed
	}
	return goName
}
