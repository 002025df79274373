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

package pipeline

import (
	"github.com/botobag/gqlreflect/gqlerr"

	"go.uber.org/zap"
)

// Next is the not-yet-tried remainder of a pipeline. A continuation handed to a middleware may be
// resolved at most once; a second call fails with gqlerr.ErrKindNextHandlerIsEmpty. Middlewares
// therefore either return a result or delegate, never both and never twice.
type Next[O any] interface {
	Resolve(input interface{}) (O, error)
}

// Middleware recognizes one input shape. It either converts the input or hands it, unchanged, to
// next.
type Middleware[O any] interface {
	Process(input interface{}, next Next[O]) (O, error)
}

// Func is an adapter to allow the use of ordinary functions as Middleware.
type Func[O any] func(input interface{}, next Next[O]) (O, error)

// Process calls f(input, next).
func (f Func[O]) Process(input interface{}, next Next[O]) (O, error) {
	return f(input, next)
}

// cursor is the continuation over a pipeline snapshot. Every position gets its own cursor so each
// one is consumed independently.
type cursor[O any] struct {
	pipeline *Pipeline[O]
	entries  []entry[O]
	pos      int
	consumed bool
}

var _ Next[interface{}] = (*cursor[interface{}])(nil)

// Resolve implements Next.
func (c *cursor[O]) Resolve(input interface{}) (O, error) {
	var zero O

	if c.consumed {
		return zero, gqlerr.NewNextHandlerIsEmptyError("pipeline.Next")
	}
	c.consumed = true

	if c.pos >= len(c.entries) {
		c.pipeline.logger.Debug("no middleware accepts input", zap.Int("tried", len(c.entries)))
		return zero, gqlerr.NewCantResolveError("pipeline.Resolve", c.pipeline.kind.ErrKind(), input)
	}

	e := c.entries[c.pos]
	if ce := c.pipeline.logger.Check(zap.DebugLevel, "dispatch"); ce != nil {
		ce.Write(zap.Int("position", c.pos), zap.Int("priority", e.priority))
	}

	return e.middleware.Process(input, &cursor[O]{
		pipeline: c.pipeline,
		entries:  c.entries,
		pos:      c.pos + 1,
	})
}
