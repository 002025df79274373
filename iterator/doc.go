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

// Package iterator documents the guidelines for using iterator pattern in gqlreflect. The pattern
// draws significant inspiration from the Iterator Guidelines established for Google Cloud Client
// Libraries for Go [0].
//
// An "iterable" resource provides a method returning an iterator over its elements. Using the
// element name (in plural) is preferred. For example, the type registry exposes the object types
// that implement interfaces:
//
//	// ObjectTypes returns an iterator over registered object types that implement at least one
//	// interface.
//	func (r *Registry) ObjectTypes() *ObjectTypeIterator {
//		...
//	}
//
// The result iterator has just one method Next for iterating over individual elements. Next
// returns the error iterator.Done to indicate that there's no more element:
//
//	iter := registry.ObjectTypes()
//	for {
//		object, err := iter.Next()
//		if err == iterator.Done {
//			break
//		} else if err != nil {
//			handleError(err)
//		}
//		process(object)
//	}
//
// Iterators take a snapshot of the resource when they are created. Changes made to the resource
// afterwards are not visible to them.
//
// [0]: https://github.com/googleapis/google-cloud-go/wiki/Iterator-Guidelines
package iterator
