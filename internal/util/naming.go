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
	"strings"
)

func isUpper(b byte) bool {
	return b >= 'A' && b <= 'Z'
}

func isLower(b byte) bool {
	return b >= 'a' && b <= 'z'
}

func toUpper(b byte) byte {
	if isLower(b) {
		return b - 'a' + 'A'
	}
	return b
}

func toLower(b byte) byte {
	if isUpper(b) {
		return b - 'A' + 'a'
	}
	return b
}

// CamelCase converts a string of the form "/[_A-Za-z][_0-9A-Za-z]*/" [0] into camel case. For
// example, it returns "CamelCase" for "camel_case".
//
// [0]: https://graphql.github.io/graphql-spec/June2018/#Name
func CamelCase(s string) string {
	sLen := len(s)
	if sLen == 0 {
		return s
	} else if sLen == 1 {
		return strings.ToUpper(s)
	}

	var buf strings.Builder
	buf.Grow(sLen)

	upperNext := true
	for i := 0; i < sLen; i++ {
		c := s[i]
		if c == '_' {
			upperNext = true
			continue
		}
		if upperNext {
			buf.WriteByte(toUpper(c))
			upperNext = false
		} else {
			buf.WriteByte(c)
		}
	}

	return buf.String()
}

// LowerCamelCase converts an exported Go identifier into the lower camel case form used for GraphQL
// field and argument names. A leading acronym is lowered as a whole: "ID" becomes "id", "UserID"
// becomes "userID" and "HTTPServer" becomes "httpServer".
func LowerCamelCase(s string) string {
	s = CamelCase(s)
	sLen := len(s)
	if sLen == 0 || !isUpper(s[0]) {
		return s
	}

	// Count the leading upper case letters.
	n := 0
	for n < sLen && isUpper(s[n]) {
		n++
	}

	switch {
	case n == sLen:
		// The whole identifier is an acronym.
		return strings.ToLower(s)
	case n > 1 && isLower(s[n]):
		// The last upper case letter starts the next word.
		n--
	}

	var buf strings.Builder
	buf.Grow(sLen)
	for i := 0; i < n; i++ {
		buf.WriteByte(toLower(s[i]))
	}
	buf.WriteString(s[n:])
	return buf.String()
}

// SnakeCase converts a string of the form "/[_A-Za-z][_0-9A-Za-z]*/" [0] into snake case. For
// example, it returns "snake_case" for "SnakeCase".
//
// [0]: https://graphql.github.io/graphql-spec/June2018/#Name
func SnakeCase(s string) string {
	sLen := len(s)
	if sLen == 0 {
		return s
	} else if sLen == 1 {
		return strings.ToLower(s)
	}

	var buf strings.Builder
	buf.Grow(sLen + sLen/2)

	buf.WriteByte(toLower(s[0]))
	for i := 1; i < sLen; i++ {
		cur := s[i]
		if isUpper(cur) {
			prev := s[i-1]
			// Break a word before an upper case letter that follows a lower case one, or that starts a
			// new word after an acronym (the "S" in "HTTPServer").
			nextIsLower := i+1 < sLen && isLower(s[i+1])
			if prev != '_' && (isLower(prev) || (nextIsLower && isUpper(prev))) {
				buf.WriteByte('_')
			}
		}
		buf.WriteByte(toLower(cur))
	}

	return buf.String()
}
