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
	"sort"
	"sync"

	"github.com/botobag/gqlreflect/gqlerr"

	"go.uber.org/zap"
)

// Kind identifies the schema element a pipeline produces. It names the pipeline in errors raised
// when no middleware accepts an input.
type Kind uint8

// Enumeration of Kind
const (
	KindArgument Kind = iota
	KindObjectField
	KindInputObjectField
	KindType
)

func (k Kind) String() string {
	switch k {
	case KindArgument:
		return "Argument"
	case KindObjectField:
		return "ObjectField"
	case KindInputObjectField:
		return "InputObjectField"
	case KindType:
		return "Type"
	}
	return "Unknown"
}

// ErrKind returns the kind of error raised when the pipeline is exhausted.
func (k Kind) ErrKind() gqlerr.ErrKind {
	switch k {
	case KindArgument:
		return gqlerr.ErrKindCantResolveArgument
	case KindObjectField:
		return gqlerr.ErrKindCantResolveObjectField
	case KindInputObjectField:
		return gqlerr.ErrKindCantResolveInputObjectField
	case KindType:
		return gqlerr.ErrKindCantResolveGraphQLType
	}
	return gqlerr.ErrKindInternal
}

// Option configures a Pipeline.
type Option func(*settings)

type settings struct {
	logger *zap.Logger
}

// WithLogger sets the logger that receives a debug entry for every middleware dispatch.
func WithLogger(logger *zap.Logger) Option {
	return func(s *settings) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// entry is a middleware registered in a pipeline.
type entry[O any] struct {
	middleware Middleware[O]
	priority   int
	seq        uint64
}

// Pipeline is an ordered chain of middlewares that converts an input of unknown shape into O.
// Middlewares run in descending priority; among equal priorities the one registered first runs
// first. When every middleware has delegated, resolution fails with the error kind of the
// pipeline's Kind.
//
// Pipe may be called while resolutions are in flight: each Resolve works on the ordering observed
// when it started. The ordered slice is never modified in place, so a snapshot is just a copy of
// the slice header.
type Pipeline[O any] struct {
	kind   Kind
	logger *zap.Logger

	mutex   sync.RWMutex
	entries []entry[O]
	nextSeq uint64
}

// New creates an empty pipeline of the given kind.
func New[O any](kind Kind, opts ...Option) *Pipeline[O] {
	s := settings{
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(&s)
	}
	return &Pipeline[O]{
		kind:   kind,
		logger: s.logger.With(zap.Stringer("pipeline", kind)),
	}
}

// Kind returns the kind of schema element the pipeline produces.
func (p *Pipeline[O]) Kind() Kind {
	return p.kind
}

// Len returns the number of registered middlewares.
func (p *Pipeline[O]) Len() int {
	p.mutex.RLock()
	defer p.mutex.RUnlock()
	return len(p.entries)
}

// Pipe registers a middleware with the given priority. It returns the pipeline to allow chaining.
func (p *Pipeline[O]) Pipe(middleware Middleware[O], priority int) *Pipeline[O] {
	p.mutex.Lock()
	defer p.mutex.Unlock()

	entries := make([]entry[O], len(p.entries), len(p.entries)+1)
	copy(entries, p.entries)
	entries = append(entries, entry[O]{
		middleware: middleware,
		priority:   priority,
		seq:        p.nextSeq,
	})
	p.nextSeq++

	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].priority != entries[j].priority {
			return entries[i].priority > entries[j].priority
		}
		return entries[i].seq < entries[j].seq
	})

	p.entries = entries
	return p
}

// Clone returns an independent pipeline with the same middlewares. Middlewares piped into the clone
// do not affect the original and vice versa.
func (p *Pipeline[O]) Clone() *Pipeline[O] {
	p.mutex.RLock()
	defer p.mutex.RUnlock()
	return &Pipeline[O]{
		kind:    p.kind,
		logger:  p.logger,
		entries: p.entries,
		nextSeq: p.nextSeq,
	}
}

func (p *Pipeline[O]) snapshot() []entry[O] {
	p.mutex.RLock()
	defer p.mutex.RUnlock()
	return p.entries
}

// Resolve runs the input through the chain and returns the first result produced by a middleware.
func (p *Pipeline[O]) Resolve(input interface{}) (O, error) {
	c := &cursor[O]{
		pipeline: p,
		entries:  p.snapshot(),
	}
	return c.Resolve(input)
}

// Pipeline implements Next so a pipeline can be handed to code that accepts a continuation.
var _ Next[interface{}] = (*Pipeline[interface{}])(nil)
