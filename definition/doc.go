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

// Package definition declares the hand-written alternative to reflection: values describing GraphQL
// types, fields and arguments, and the capability interfaces a Go type implements to take part in
// execution (type checks, type resolution, field resolution, scalar coercion).
//
// A definition type embeds the marker struct of its kind, ThisIsObjectType for example, and provides
// TypeData. The Config structs are ready-made definitions:
//
//	var UserDefinition = &definition.ObjectConfig{
//		Name: "User",
//		Interfaces: []interface{}{"Node"},
//		Fields: []interface{}{
//			&definition.Field{Name: "id", Type: "ID!"},
//			&definition.Field{Name: "name", Type: "String"},
//		},
//	}
//
// Type references in definitions (Field.Type, ObjectTypeData.Interfaces and the like) accept a type
// expression string, a reflect.Type, a graphql.Type or a typeref.Ref.
package definition
