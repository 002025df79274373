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
	"sort"
	"sync"

	"github.com/botobag/gqlreflect/gqlerr"
	"github.com/botobag/gqlreflect/internal/util"

	"github.com/graphql-go/graphql"
	"go.uber.org/zap"
)

// ValueParser hydrates a Go value from the coerced value of a GraphQL input object.
type ValueParser func(value map[string]interface{}) (interface{}, error)

// Parsers looks up the value parsers of input object types.
type Parsers interface {
	ValueParser(name string) ValueParser
}

// Option configures a Registry.
type Option func(*Registry)

// WithLogger sets the logger that receives registration entries.
func WithLogger(logger *zap.Logger) Option {
	return func(r *Registry) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// builtinScalars lists the scalars seeded into every registry with the Go builtin types that map to
// them.
var builtinScalars = []struct {
	scalar  *graphql.Scalar
	aliases []string
}{
	{graphql.Int, []string{"int", "int8", "int16", "int32", "int64", "uint", "uint8", "uint16", "uint32", "uint64"}},
	{graphql.Float, []string{"float32", "float64"}},
	{graphql.String, []string{"string"}},
	{graphql.Boolean, []string{"bool"}},
	{graphql.ID, nil},
}

// Registry is the symbol table that lets types reference each other before they exist. It maps
// aliases to canonical names and canonical names to types.
//
// A Registry has two phases. During schema assembly it is written by a single writer (the schema
// builder and the type thunks the engine evaluates while building the schema). Seal ends assembly:
// afterwards every mutation fails with gqlerr.ErrKindSealed and the registry is safe for
// concurrent readers.
type Registry struct {
	logger *zap.Logger

	mutex   sync.RWMutex
	aliases map[string]string
	types   map[string]graphql.Type
	parsers map[string]ValueParser
	sealed  bool
}

// New creates a registry seeded with the builtin scalars Int, Float, String, Boolean and ID. Each
// of them is also reachable through the names of the Go builtin types mapping to it.
func New(opts ...Option) *Registry {
	r := &Registry{
		logger:  zap.NewNop(),
		aliases: map[string]string{},
		types:   map[string]graphql.Type{},
		parsers: map[string]ValueParser{},
	}
	for _, opt := range opts {
		opt(r)
	}

	for _, builtin := range builtinScalars {
		r.register(builtin.scalar, builtin.aliases)
	}

	return r
}

// Has returns true if name is a known alias or canonical type name.
func (r *Registry) Has(name string) bool {
	r.mutex.RLock()
	defer r.mutex.RUnlock()
	_, ok := r.lookup(name)
	return ok
}

// Get returns the type registered under the name or the alias. It fails with
// gqlerr.ErrKindNotFound if neither is known.
func (r *Registry) Get(name string) (graphql.Type, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	if t, ok := r.lookup(name); ok {
		return t, nil
	}

	return nil, gqlerr.NewNotFoundError("registry.Get", name, util.SuggestionList(name, r.canonicalNames()))
}

func (r *Registry) lookup(name string) (graphql.Type, bool) {
	if canonical, ok := r.aliases[name]; ok {
		name = canonical
	}
	t, ok := r.types[name]
	return t, ok
}

// Register stores t under its own name and maps every alias to that name. Registering a name or an
// alias again overwrites the previous entry.
func (r *Registry) Register(t graphql.Type, aliases ...string) error {
	const op = gqlerr.Op("registry.Register")

	switch t.(type) {
	case nil:
		return gqlerr.NewError("cannot register a nil type", op, gqlerr.ErrKindInternal)
	case *graphql.List, *graphql.NonNull:
		return gqlerr.NewError("cannot register wrapping type "+t.String(), op, gqlerr.ErrKindInternal)
	}

	if len(t.Name()) == 0 {
		return gqlerr.NewError("cannot register a type without name", op, gqlerr.ErrKindInternal)
	}

	r.mutex.Lock()
	defer r.mutex.Unlock()

	if r.sealed {
		return gqlerr.NewError("cannot register "+t.Name(), op, gqlerr.ErrKindSealed, gqlerr.TypeName(t.Name()))
	}

	r.register(t, aliases)
	return nil
}

func (r *Registry) register(t graphql.Type, aliases []string) {
	name := t.Name()
	r.types[name] = t
	for _, alias := range aliases {
		if alias != name {
			r.aliases[alias] = name
		}
	}
	r.logger.Debug("registered type", zap.String("name", name), zap.Strings("aliases", aliases))
}

// SetValueParser sets the parser that hydrates Go values from the input object of the given name.
func (r *Registry) SetValueParser(name string, parser ValueParser) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	if r.sealed {
		return gqlerr.NewError("cannot set value parser for "+name, gqlerr.Op("registry.SetValueParser"),
			gqlerr.ErrKindSealed, gqlerr.TypeName(name))
	}
	r.parsers[name] = parser
	return nil
}

// ValueParser returns the parser of the input object of the given name or nil.
func (r *Registry) ValueParser(name string) ValueParser {
	r.mutex.RLock()
	defer r.mutex.RUnlock()
	return r.parsers[name]
}

// Seal ends the assembly phase.
func (r *Registry) Seal() {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	r.sealed = true
}

// Sealed returns true after Seal was called.
func (r *Registry) Sealed() bool {
	r.mutex.RLock()
	defer r.mutex.RUnlock()
	return r.sealed
}

// canonicalNames returns the sorted names of every registered type. Caller must hold the lock.
func (r *Registry) canonicalNames() []string {
	names := make([]string, 0, len(r.types))
	for name := range r.types {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Types returns every registered type ordered by name.
func (r *Registry) Types() []graphql.Type {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	names := r.canonicalNames()
	types := make([]graphql.Type, len(names))
	for i, name := range names {
		types[i] = r.types[name]
	}
	return types
}

// ObjectTypes returns an iterator over registered object types that implement at least one
// interface. The engine cannot discover such types from the root operation types when they are
// only returned through an interface or a union, so they must be handed to the schema explicitly.
func (r *Registry) ObjectTypes() *ObjectTypeIterator {
	var objects []*graphql.Object
	for _, t := range r.Types() {
		if object, ok := t.(*graphql.Object); ok {
			objects = append(objects, object)
		}
	}
	return &ObjectTypeIterator{
		objects: objects,
	}
}
