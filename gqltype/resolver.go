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

// Package gqltype implements the Type pipeline, which turns Go types carrying markers, definition
// objects and native engine types into graphql.Type.
//
// Types are created with thunks for their fields, interfaces and union members. The thunks run when
// graphql-go builds the schema, by which time every type referenced by name or by Go type must have
// been registered. A thunk that fails panics with the error; schema.Builder recovers it.
package gqltype

import (
	"fmt"
	"reflect"
	"sort"
	"sync"

	"github.com/botobag/gqlreflect/container"
	"github.com/botobag/gqlreflect/gqlerr"
	"github.com/botobag/gqlreflect/inputfield"
	"github.com/botobag/gqlreflect/metadata"
	"github.com/botobag/gqlreflect/objectfield"
	"github.com/botobag/gqlreflect/pipeline"
	"github.com/botobag/gqlreflect/registry"
	"github.com/botobag/gqlreflect/typeref"

	"github.com/graphql-go/graphql"
	"go.uber.org/zap"
)

// Priorities of the default middlewares
type Priorities struct {
	Enum       int
	Native     int
	Attribute  int
	Definition int
}

// DefaultPriorities lets enum detection win over everything else and markers win over definition
// objects.
var DefaultPriorities = Priorities{
	Enum:       400,
	Native:     300,
	Attribute:  200,
	Definition: 100,
}

// Resolver is the Type pipeline.
type Resolver = pipeline.Pipeline[graphql.Type]

// NewResolver creates an empty Type pipeline.
func NewResolver(opts ...pipeline.Option) *Resolver {
	return pipeline.New[graphql.Type](pipeline.KindType, opts...)
}

// Env holds the collaborators shared by the middlewares of a Type pipeline. It also remembers the Go
// types of the object and interface types it created, so an object type created from a Go type
// implements the GraphQL interfaces created from the Go interfaces it satisfies.
type Env struct {
	Registry    *registry.Registry
	Reader      metadata.Reader
	Container   container.Container
	Fields      *objectfield.Resolver
	InputFields *inputfield.Resolver
	Logger      *zap.Logger

	mutex      sync.Mutex
	interfaces map[reflect.Type]*graphql.Interface
	objects    map[reflect.Type]*graphql.Object
}

func (env *Env) logger() *zap.Logger {
	if env.Logger == nil {
		return zap.NewNop()
	}
	return env.Logger
}

func (env *Env) recordInterface(class reflect.Type, iface *graphql.Interface) {
	env.mutex.Lock()
	defer env.mutex.Unlock()
	if env.interfaces == nil {
		env.interfaces = map[reflect.Type]*graphql.Interface{}
	}
	env.interfaces[class] = iface
}

func (env *Env) recordObject(class reflect.Type, object *graphql.Object) {
	env.mutex.Lock()
	defer env.mutex.Unlock()
	if env.objects == nil {
		env.objects = map[reflect.Type]*graphql.Object{}
	}
	env.objects[class] = object
}

// implementedInterfaces returns the recorded interface types whose Go interface is satisfied by
// *class.
func (env *Env) implementedInterfaces(class reflect.Type) []*graphql.Interface {
	env.mutex.Lock()
	defer env.mutex.Unlock()

	var result []*graphql.Interface
	ptr := reflect.PtrTo(class)
	for goIface, iface := range env.interfaces {
		if goIface != class && ptr.Implements(goIface) {
			result = append(result, iface)
		}
	}
	return result
}

// implementations returns the recorded object types whose Go type satisfies the Go interface,
// ordered by name.
func (env *Env) implementations(goIface reflect.Type) []*graphql.Object {
	env.mutex.Lock()
	defer env.mutex.Unlock()

	var result []*graphql.Object
	for class, object := range env.objects {
		if reflect.PtrTo(class).Implements(goIface) {
			result = append(result, object)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Name() < result[j].Name()
	})
	return result
}

// instance returns the value whose capabilities are wired into the type created for class. There
// is none for Go interfaces.
func (env *Env) instance(class reflect.Type) (interface{}, error) {
	if env.Container == nil || class.Kind() == reflect.Interface {
		return nil, nil
	}
	instance, err := env.Container.Get(class)
	if err != nil {
		return nil, gqlerr.WrapErrorf(err, "instance of %s", typeref.ClassName(class))
	}
	return instance, nil
}

func invalidMetadata(format string, args ...interface{}) error {
	return gqlerr.NewError(fmt.Sprintf(format, args...), gqlerr.Op("gqltype.Resolve"),
		gqlerr.ErrKindInvalidMetadata)
}

func cantResolve(format string, args ...interface{}) error {
	return gqlerr.NewError(fmt.Sprintf(format, args...), gqlerr.Op("gqltype.Resolve"),
		gqlerr.ErrKindCantResolveGraphQLType)
}

// must returns v or panics with err. Thunks have no way to return an error.
func must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

// Native accepts a graphql.Type and returns it unchanged.
type Native struct{}

var _ pipeline.Middleware[graphql.Type] = Native{}

// Process implements pipeline.Middleware.
func (Native) Process(input interface{}, next pipeline.Next[graphql.Type]) (graphql.Type, error) {
	if t, ok := input.(graphql.Type); ok && t != nil {
		return t, nil
	}
	return next.Resolve(input)
}

// Install pipes the default middlewares into r.
func Install(r *Resolver, env *Env, priorities Priorities) *Resolver {
	return r.
		Pipe(Enum{Env: env}, priorities.Enum).
		Pipe(Native{}, priorities.Native).
		Pipe(Attribute{Env: env}, priorities.Attribute).
		Pipe(Definition{Env: env}, priorities.Definition)
}
