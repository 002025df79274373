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

// Package metadata provides markers, the declarative metadata that turns a Go type or one of its
// members into a GraphQL schema element, and the Reader contract used to look them up.
//
// Go has no attributes. Markers are attached to types and members with Declarations, either in code
// or by loading a YAML or JSON document:
//
//	types:
//	  - class: User
//	    object: {name: User, interfaces: [Node]}
//	    methods:
//	      Posts:
//	        field: {name: posts, type: "[Post!]!", args: [first]}
//	        parameters:
//	          - {description: Number of posts to return, defaultValue: 10}
//
// Struct fields may also carry markers in struct tags. The "gql" tag declares an output field and
// the "gqlinput" tag declares an input field:
//
//	type User struct {
//		ID    string `gql:"id,type=ID!"`
//		Email string `gql:",desc=Primary email address,deprecated=Use emails"`
//		Name  string `gqlinput:"name,desc='Full name, as displayed'"`
//	}
package metadata
