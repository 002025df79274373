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

package registry

import (
	"github.com/botobag/gqlreflect/iterator"

	"github.com/graphql-go/graphql"
)

// ObjectTypeIterator iterates over object types that implement at least one interface.
type ObjectTypeIterator struct {
	objects []*graphql.Object
	i       int
}

// Next returns the next object type in the iteration. It returns iterator.Done when there's no
// more object type. Interfaces of each candidate are resolved on demand, so the interface thunks of
// the candidates are evaluated by Next.
func (iter *ObjectTypeIterator) Next() (*graphql.Object, error) {
	for iter.i < len(iter.objects) {
		object := iter.objects[iter.i]
		iter.i++
		if len(object.Interfaces()) > 0 {
			return object, nil
		}
	}
	return nil, iterator.Done
}
