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

// Package schema assembles the pipelines, the type registry and the metadata reader into a builder
// that turns Go types, definition objects and engine types into a graphql.Schema.
//
//	b, err := schema.New(schema.WithReader(declarations))
//	if err != nil {
//		return err
//	}
//	if err := b.Register(reflect.TypeOf(Cat{}), reflect.TypeOf(Query{})); err != nil {
//		return err
//	}
//	s, err := b.Build(schema.Roots{Query: "Query"})
package schema

import (
	"fmt"
	"reflect"

	"github.com/botobag/gqlreflect/argument"
	"github.com/botobag/gqlreflect/config"
	"github.com/botobag/gqlreflect/container"
	"github.com/botobag/gqlreflect/gqlerr"
	"github.com/botobag/gqlreflect/gqltype"
	"github.com/botobag/gqlreflect/inputfield"
	"github.com/botobag/gqlreflect/iterator"
	"github.com/botobag/gqlreflect/metadata"
	"github.com/botobag/gqlreflect/objectfield"
	"github.com/botobag/gqlreflect/pipeline"
	"github.com/botobag/gqlreflect/registry"
	"github.com/botobag/gqlreflect/typeref"

	"github.com/graphql-go/graphql"
	"go.uber.org/zap"
)

// Option configures a Builder.
type Option func(*Builder)

// WithConfig sets the configuration. config.Default() is used otherwise.
func WithConfig(c *config.Config) Option {
	return func(b *Builder) {
		if c != nil {
			b.config = c
		}
	}
}

// WithLogger sets the logger shared by the builder, its pipelines and its registry. It takes
// precedence over the logger configured by the log level.
func WithLogger(logger *zap.Logger) Option {
	return func(b *Builder) {
		b.logger = logger
	}
}

// WithContainer sets the container that provides definition objects and capability hooks.
func WithContainer(c container.Container) Option {
	return func(b *Builder) {
		b.container = c
	}
}

// WithReader sets the metadata reader. An empty metadata.Declarations is used otherwise, so only
// struct tags are read.
func WithReader(reader metadata.Reader) Option {
	return func(b *Builder) {
		b.reader = reader
	}
}

// WithRegistry sets the registry the types are registered into.
func WithRegistry(r *registry.Registry) Option {
	return func(b *Builder) {
		b.registry = r
	}
}

// Roots references the root operation types by name, Go type or engine type. Mutation and
// Subscription are optional.
type Roots struct {
	Query        interface{}
	Mutation     interface{}
	Subscription interface{}
}

// Builder owns the four pipelines wired with the default middlewares. Custom middlewares are added
// through the Types, Fields, InputFields and Arguments accessors before the first Register.
type Builder struct {
	config    *config.Config
	logger    *zap.Logger
	registry  *registry.Registry
	container container.Container
	reader    metadata.Reader

	types       *gqltype.Resolver
	fields      *objectfield.Resolver
	inputFields *inputfield.Resolver
	arguments   *argument.Resolver
}

// New creates a Builder.
func New(opts ...Option) (*Builder, error) {
	b := &Builder{
		config: config.Default(),
	}
	for _, opt := range opts {
		opt(b)
	}

	if b.logger == nil {
		logger, err := b.config.Logger()
		if err != nil {
			return nil, err
		}
		b.logger = logger
	}
	if b.registry == nil {
		b.registry = registry.New(registry.WithLogger(b.logger))
	}
	if b.container == nil {
		b.container = container.New()
	}
	if b.reader == nil {
		b.reader = metadata.NewDeclarations()
	}

	naming, err := b.config.NamingStrategy()
	if err != nil {
		return nil, err
	}

	priorities := b.config.Priorities
	withLogger := pipeline.WithLogger(b.logger)

	b.arguments = argument.Install(argument.NewResolver(withLogger), b.reader, priorities.Argument)

	b.fields = objectfield.Install(objectfield.NewResolver(withLogger), objectfield.Options{
		Reader:    b.reader,
		Arguments: b.arguments,
		Naming:    naming,
		Parsers:   b.registry,
		Container: b.container,
	}, priorities.ObjectField)

	b.inputFields = inputfield.Install(inputfield.NewResolver(withLogger), inputfield.Options{
		Reader:   b.reader,
		Naming:   naming,
		Registry: b.registry,
	}, priorities.InputField)

	b.types = gqltype.Install(gqltype.NewResolver(withLogger), &gqltype.Env{
		Registry:    b.registry,
		Reader:      b.reader,
		Container:   b.container,
		Fields:      b.fields,
		InputFields: b.inputFields,
		Logger:      b.logger,
	}, priorities.Type)

	return b, nil
}

// Registry returns the registry of the builder.
func (b *Builder) Registry() *registry.Registry {
	return b.registry
}

// Types returns the Type pipeline.
func (b *Builder) Types() *gqltype.Resolver {
	return b.types
}

// Fields returns the ObjectField pipeline.
func (b *Builder) Fields() *objectfield.Resolver {
	return b.fields
}

// InputFields returns the InputObjectField pipeline.
func (b *Builder) InputFields() *inputfield.Resolver {
	return b.inputFields
}

// Arguments returns the Argument pipeline.
func (b *Builder) Arguments() *argument.Resolver {
	return b.arguments
}

// Register resolves every input through the Type pipeline and registers the result under its name.
// A type created from a Go type is also registered under the class name of the Go type, so Go
// types referencing it resolve to it.
func (b *Builder) Register(inputs ...interface{}) error {
	for _, input := range inputs {
		if _, err := b.register(input); err != nil {
			return err
		}
	}
	return nil
}

func (b *Builder) register(input interface{}) (graphql.Type, error) {
	t, err := b.types.Resolve(input)
	if err != nil {
		return nil, err
	}

	var aliases []string
	if class, ok := input.(reflect.Type); ok {
		aliases = append(aliases, typeref.ClassName(class))
	}
	if err := b.registry.Register(t, aliases...); err != nil {
		return nil, err
	}
	return t, nil
}

// Build creates the schema and seals the registry. Object types that implement an interface are
// handed to the engine as extra types so it knows every implementation.
//
// The engine evaluates the thunks of the registered types while it builds the schema; failures
// raised by them are returned as errors.
func (b *Builder) Build(roots Roots) (schema graphql.Schema, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = recovered(r)
		}
	}()

	if v, ok := b.reader.(interface{ Validate() error }); ok {
		if err := v.Validate(); err != nil {
			return graphql.Schema{}, err
		}
	}

	var sc graphql.SchemaConfig
	if sc.Query, err = b.root("query", roots.Query); err != nil {
		return graphql.Schema{}, err
	}
	if sc.Query == nil {
		return graphql.Schema{}, gqlerr.NewError("missing query type", gqlerr.Op("schema.Build"),
			gqlerr.ErrKindCantResolveGraphQLType)
	}
	if sc.Mutation, err = b.root("mutation", roots.Mutation); err != nil {
		return graphql.Schema{}, err
	}
	if sc.Subscription, err = b.root("subscription", roots.Subscription); err != nil {
		return graphql.Schema{}, err
	}

	iter := b.registry.ObjectTypes()
	for {
		object, err := iter.Next()
		if err == iterator.Done {
			break
		} else if err != nil {
			return graphql.Schema{}, err
		}
		sc.Types = append(sc.Types, object)
	}

	schema, err = graphql.NewSchema(sc)
	if err != nil {
		return graphql.Schema{}, gqlerr.NewError("cannot build schema", gqlerr.Op("schema.Build"),
			gqlerr.ErrKindCantResolveGraphQLType, err)
	}

	b.registry.Seal()
	b.logger.Info("schema built",
		zap.String("query", sc.Query.Name()),
		zap.Int("types", len(schema.TypeMap())))
	return schema, nil
}

// root resolves the reference to a root operation type. A Go type or a definition that was not
// registered is registered first.
func (b *Builder) root(operation string, input interface{}) (*graphql.Object, error) {
	if input == nil {
		return nil, nil
	}

	t, err := b.resolveRoot(input)
	if err != nil {
		return nil, gqlerr.WrapErrorf(err, "%s type", operation)
	}

	object, ok := graphql.GetNullable(t).(*graphql.Object)
	if !ok {
		return nil, gqlerr.NewError(fmt.Sprintf("%s type %s is not an object type", operation, t),
			gqlerr.Op("schema.Build"), gqlerr.ErrKindCantResolveGraphQLType)
	}
	return object, nil
}

func (b *Builder) resolveRoot(input interface{}) (graphql.Type, error) {
	switch input := input.(type) {
	case string:
		ref, err := typeref.Parse(input, nil)
		if err != nil {
			return nil, err
		}
		return ref.Resolve(b.registry)

	case graphql.Type:
		return input, nil

	case reflect.Type:
		if name := typeref.ClassName(input); b.registry.Has(name) {
			return b.registry.Get(name)
		}
	}

	return b.register(input)
}

// recovered converts the value a thunk panicked with into an error.
func recovered(r interface{}) error {
	if err, ok := r.(error); ok {
		return gqlerr.NewError("cannot build schema", gqlerr.Op("schema.Build"), err)
	}
	return gqlerr.NewError(fmt.Sprint("cannot build schema: ", r), gqlerr.Op("schema.Build"),
		gqlerr.ErrKindInternal)
}
