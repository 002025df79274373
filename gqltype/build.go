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

package gqltype

import (
	"reflect"

	"github.com/botobag/gqlreflect/definition"
	"github.com/botobag/gqlreflect/field"
	"github.com/botobag/gqlreflect/gqlerr"
	"github.com/botobag/gqlreflect/internal/coerce"
	"github.com/botobag/gqlreflect/registry"
	"github.com/botobag/gqlreflect/typeref"

	"github.com/graphql-go/graphql"
	"github.com/graphql-go/graphql/language/ast"
	"go.uber.org/zap"
)

// members lists the inputs of a field pipeline.
type members func() ([]interface{}, error)

// fixed returns members that always list inputs.
func fixed(inputs []interface{}) members {
	return func() ([]interface{}, error) {
		return inputs, nil
	}
}

// typeSource is what the builders need to create a named type. Hooks is the value whose
// capabilities are wired into the type; it may be nil.
type typeSource struct {
	name        string
	description string
	hooks       interface{}
}

func (env *Env) created(t graphql.Type, kind string) {
	env.logger().Debug("created type", zap.String("name", t.Name()), zap.String("kind", kind))
}

// typeOrError drops the typed nil that builders return along with an error.
func typeOrError[T graphql.Type](t T, err error) (graphql.Type, error) {
	if err != nil {
		return nil, err
	}
	return t, nil
}

func checkType(t graphql.Type, name string) error {
	if err := t.Error(); err != nil {
		return gqlerr.NewError("cannot create type "+name, gqlerr.Op("gqltype.Resolve"),
			gqlerr.ErrKindCantResolveGraphQLType, gqlerr.TypeName(name), err)
	}
	return nil
}

//===----------------------------------------------------------------------------------------====//
// Object and Interface
//===----------------------------------------------------------------------------------------====//

func (env *Env) newObject(src typeSource, fields members, interfaces func() ([]*graphql.Interface, error)) (*graphql.Object, error) {
	config := graphql.ObjectConfig{
		Name:        src.name,
		Description: src.description,
		Interfaces: graphql.InterfacesThunk(func() []*graphql.Interface {
			return must(interfaces())
		}),
		Fields: graphql.FieldsThunk(func() graphql.Fields {
			return must(env.outputFields(src, fields))
		}),
	}

	if checker, ok := src.hooks.(definition.TypeChecker); ok {
		config.IsTypeOf = func(p graphql.IsTypeOfParams) bool {
			return checker.IsTypeOf(p.Value)
		}
	}

	object := graphql.NewObject(config)
	if err := checkType(object, src.name); err != nil {
		return nil, err
	}
	env.created(object, "object")
	return object, nil
}

func (env *Env) newInterface(src typeSource, fields members) (*graphql.Interface, error) {
	iface := graphql.NewInterface(graphql.InterfaceConfig{
		Name:        src.name,
		Description: src.description,
		Fields: graphql.FieldsThunk(func() graphql.Fields {
			return must(env.outputFields(src, fields))
		}),
		ResolveType: env.typeResolver(src),
	})
	if err := checkType(iface, src.name); err != nil {
		return nil, err
	}
	env.created(iface, "interface")
	return iface, nil
}

// outputFields resolves the members through the ObjectField pipeline. Fields without resolver get
// the FieldResolver capability of the hooks, if any.
func (env *Env) outputFields(src typeSource, list members) (graphql.Fields, error) {
	inputs, err := list()
	if err != nil {
		return nil, gqlerr.WrapErrorf(err, "fields of %s", src.name)
	}

	fieldResolver, _ := src.hooks.(definition.FieldResolver)

	fields := make(graphql.Fields, len(inputs))
	for _, input := range inputs {
		f, err := env.Fields.Resolve(input)
		if err != nil {
			return nil, gqlerr.WrapErrorf(err, "field of %s", src.name)
		}
		if _, exists := fields[f.Name]; exists {
			return nil, invalidMetadata("%s defines field %s twice", src.name, f.Name)
		}
		realized, err := f.Realize(env.Registry)
		if err != nil {
			return nil, gqlerr.WrapErrorf(err, "field %s.%s", src.name, f.Name)
		}
		if realized.Resolve == nil && fieldResolver != nil {
			realized.Resolve = fieldResolver.ResolveField
		}
		fields[f.Name] = realized
	}

	if len(fields) == 0 {
		return nil, invalidMetadata("%s defines no field", src.name)
	}
	return fields, nil
}

// typeResolver maps a runtime value to its object type with the TypeResolver capability of the
// hooks. Without it, or when it names no type, the object type registered for the Go type of the
// value is chosen.
func (env *Env) typeResolver(src typeSource) graphql.ResolveTypeFn {
	byClass := typeref.ClassTypeResolver(env.Registry)
	resolver, ok := src.hooks.(definition.TypeResolver)
	if !ok {
		return byClass
	}

	return func(p graphql.ResolveTypeParams) *graphql.Object {
		name := resolver.ResolveType(p.Value)
		if len(name) == 0 {
			return byClass(p)
		}
		t, err := env.Registry.Get(name)
		if err != nil {
			env.logger().Warn("cannot resolve concrete type", zap.String("abstract", src.name), zap.Error(err))
			return nil
		}
		object, _ := t.(*graphql.Object)
		return object
	}
}

// referencedTypes resolves references given as type names, Go types, engine types or typeref.Ref.
func (env *Env) referencedTypes(refs []interface{}) ([]graphql.Type, error) {
	result := make([]graphql.Type, 0, len(refs))
	for _, item := range refs {
		ref, err := typeref.Of(item, nil)
		if err != nil {
			return nil, err
		}
		t, err := ref.Resolve(env.Registry)
		if err != nil {
			return nil, err
		}
		result = append(result, graphql.GetNullable(t).(graphql.Type))
	}
	return result, nil
}

func (env *Env) referencedInterfaces(owner string, refs []interface{}) ([]*graphql.Interface, error) {
	types, err := env.referencedTypes(refs)
	if err != nil {
		return nil, gqlerr.WrapErrorf(err, "interfaces of %s", owner)
	}
	result := make([]*graphql.Interface, 0, len(types))
	for _, t := range types {
		iface, ok := t.(*graphql.Interface)
		if !ok {
			return nil, cantResolve("%s implements %s, which is not an interface type", owner, t)
		}
		result = append(result, iface)
	}
	return result, nil
}

func (env *Env) referencedObjects(owner string, refs []interface{}) ([]*graphql.Object, error) {
	types, err := env.referencedTypes(refs)
	if err != nil {
		return nil, gqlerr.WrapErrorf(err, "members of %s", owner)
	}
	result := make([]*graphql.Object, 0, len(types))
	for _, t := range types {
		object, ok := t.(*graphql.Object)
		if !ok {
			return nil, cantResolve("union %s includes %s, which is not an object type", owner, t)
		}
		result = append(result, object)
	}
	return result, nil
}

//===----------------------------------------------------------------------------------------====//
// Union
//===----------------------------------------------------------------------------------------====//

func (env *Env) newUnion(src typeSource, types func() ([]*graphql.Object, error)) (*graphql.Union, error) {
	union := graphql.NewUnion(graphql.UnionConfig{
		Name:        src.name,
		Description: src.description,
		Types: graphql.UnionTypesThunk(func() []*graphql.Object {
			objects := must(types())
			if len(objects) == 0 {
				panic(invalidMetadata("union %s has no member", src.name))
			}
			return objects
		}),
		ResolveType: env.typeResolver(src),
	})
	if err := checkType(union, src.name); err != nil {
		return nil, err
	}
	env.created(union, "union")
	return union, nil
}

//===----------------------------------------------------------------------------------------====//
// Input Object
//===----------------------------------------------------------------------------------------====//

// hydrator builds a Go value from the coerced input map by applying the Assign hook of every
// input field.
type hydrator struct {
	class   reflect.Type
	assigns map[string]field.Assigner
}

func (h *hydrator) parse(value map[string]interface{}) (interface{}, error) {
	target := reflect.New(h.class)
	for name, v := range value {
		if assign := h.assigns[name]; assign != nil {
			if err := assign(target, v); err != nil {
				return nil, err
			}
		}
	}
	return target.Interface(), nil
}

// newInputObject creates an input object type. The value parser registered for it is the ValueParser
// capability of the hooks; otherwise, when class is given, the Go value is hydrated from the Assign
// hooks of the fields.
func (env *Env) newInputObject(src typeSource, fields members, class reflect.Type) (*graphql.InputObject, error) {
	var h *hydrator
	if class != nil {
		h = &hydrator{class: class}
	}

	input := graphql.NewInputObject(graphql.InputObjectConfig{
		Name:        src.name,
		Description: src.description,
		Fields: graphql.InputObjectConfigFieldMapThunk(func() graphql.InputObjectConfigFieldMap {
			result, assigns := must2(env.inputFields(src, fields))
			if h != nil {
				h.assigns = assigns
			}
			return result
		}),
	})
	if err := checkType(input, src.name); err != nil {
		return nil, err
	}

	var parser registry.ValueParser
	if vp, ok := src.hooks.(definition.ValueParser); ok {
		parser = func(value map[string]interface{}) (interface{}, error) {
			return vp.ParseValue(value)
		}
	} else if h != nil {
		parser = h.parse
	}
	if parser != nil {
		if err := env.Registry.SetValueParser(src.name, parser); err != nil {
			return nil, err
		}
	}

	env.created(input, "input object")
	return input, nil
}

func must2[T, U any](t T, u U, err error) (T, U) {
	if err != nil {
		panic(err)
	}
	return t, u
}

func (env *Env) inputFields(src typeSource, list members) (graphql.InputObjectConfigFieldMap, map[string]field.Assigner, error) {
	inputs, err := list()
	if err != nil {
		return nil, nil, gqlerr.WrapErrorf(err, "fields of %s", src.name)
	}

	fields := make(graphql.InputObjectConfigFieldMap, len(inputs))
	assigns := make(map[string]field.Assigner, len(inputs))
	for _, input := range inputs {
		f, err := env.InputFields.Resolve(input)
		if err != nil {
			return nil, nil, gqlerr.WrapErrorf(err, "input field of %s", src.name)
		}
		if _, exists := fields[f.Name]; exists {
			return nil, nil, invalidMetadata("%s defines input field %s twice", src.name, f.Name)
		}
		config, err := f.Realize(env.Registry)
		if err != nil {
			return nil, nil, gqlerr.WrapErrorf(err, "input field %s.%s", src.name, f.Name)
		}
		fields[f.Name] = config
		if f.Assign != nil {
			assigns[f.Name] = f.Assign
		}
	}

	if len(fields) == 0 {
		return nil, nil, invalidMetadata("%s defines no input field", src.name)
	}
	return fields, assigns, nil
}

//===----------------------------------------------------------------------------------------====//
// Scalar
//===----------------------------------------------------------------------------------------====//

// newScalar creates a scalar from the capabilities of the hooks. Serializer is required. When only
// one of ValueParser and LiteralParser is implemented the other one is derived from it.
func (env *Env) newScalar(src typeSource) (*graphql.Scalar, error) {
	serializer, ok := src.hooks.(definition.Serializer)
	if !ok {
		return nil, invalidMetadata("scalar %s does not implement Serialize", src.name)
	}

	config := graphql.ScalarConfig{
		Name:        src.name,
		Description: src.description,
		Serialize:   serializer.Serialize,
	}

	valueParser, parsesValue := src.hooks.(definition.ValueParser)
	literalParser, parsesLiteral := src.hooks.(definition.LiteralParser)

	var parseValue graphql.ParseValueFn
	if parsesValue {
		parseValue = func(value interface{}) interface{} {
			result, err := valueParser.ParseValue(value)
			if err != nil {
				return nil
			}
			return result
		}
	}

	switch {
	case parsesValue && parsesLiteral:
		config.ParseValue = parseValue
		config.ParseLiteral = literalParser.ParseLiteral

	case parsesValue:
		config.ParseValue = parseValue
		config.ParseLiteral = func(literal ast.Value) interface{} {
			return parseValue(LiteralValue(literal))
		}

	case parsesLiteral:
		config.ParseValue = func(value interface{}) interface{} {
			return value
		}
		config.ParseLiteral = literalParser.ParseLiteral
	}

	scalar := graphql.NewScalar(config)
	if err := checkType(scalar, src.name); err != nil {
		return nil, err
	}
	env.created(scalar, "scalar")
	return scalar, nil
}

//===----------------------------------------------------------------------------------------====//
// Enum
//===----------------------------------------------------------------------------------------====//

// enumValue converts value to class. A nil value stands for the name of the enum value.
func enumValue(class reflect.Type, name string, value interface{}) (interface{}, error) {
	if value == nil {
		value = name
	}
	if class == nil {
		return value, nil
	}
	v, err := coerce.Value(nil, nil, value, class)
	if err != nil {
		return nil, gqlerr.NewError("invalid value of enum value "+name, gqlerr.Op("gqltype.Resolve"),
			gqlerr.ErrKindInvalidMetadata, err)
	}
	return v.Interface(), nil
}

func (env *Env) newEnum(src typeSource, values graphql.EnumValueConfigMap) (*graphql.Enum, error) {
	if len(values) == 0 {
		return nil, invalidMetadata("enum %s has no value", src.name)
	}

	enum := graphql.NewEnum(graphql.EnumConfig{
		Name:        src.name,
		Description: src.description,
		Values:      values,
	})
	if err := checkType(enum, src.name); err != nil {
		return nil, err
	}
	env.created(enum, "enum")
	return enum, nil
}
