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

package gqlerr

import (
	"fmt"
	"strings"

	"github.com/botobag/gqlreflect/internal/util"
)

// NewNotFoundError reports a registry miss for the given name. When suggestions is non-empty the
// message ends with a "Did you mean" hint listing up to five of them.
func NewNotFoundError(op Op, name string, suggestions []string) error {
	var b strings.Builder
	b.WriteString(`Unknown type "`)
	b.WriteString(name)
	b.WriteString(`".`)
	if len(suggestions) > 0 {
		b.WriteString(" Did you mean ")
		util.OrList(&b, suggestions, 5, true)
		b.WriteString("?")
	}
	return NewError(b.String(), op, ErrKindNotFound, TypeName(name))
}

// NewCantResolveError reports that no middleware in a pipeline accepted the input. The kind names
// the pipeline that was exhausted.
func NewCantResolveError(op Op, kind ErrKind, input interface{}) error {
	return NewError(fmt.Sprintf("no middleware accepts %s", util.Describe(input)), op, kind)
}

// NewNextHandlerIsEmptyError reports a continuation invoked for the second time.
func NewNextHandlerIsEmptyError(op Op) error {
	return NewError("continuation has already been consumed", op, ErrKindNextHandlerIsEmpty)
}
