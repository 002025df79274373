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

// Package typeref describes GraphQL types symbolically so that they can be resolved lazily against
// a type registry.
//
// A reference is either a built type (Direct), a registry name (Named), a Go type (Class and
// Reflected), a reference wrapped with list and non-null modifiers (Wrap) or a union of object
// types that is synthesized on demand (Union). Type expressions written in metadata are turned into
// references with Parse:
//
//	ref, err := typeref.Parse("[Post!]!", reflect.TypeOf(User{}))
//	...
//	t, err := ref.Resolve(registry)
package typeref
