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

package definition

// TypeDefinition is implemented by every type definition.
type TypeDefinition interface {
	// ThisIsGraphQLTypeDefinition puts a special mark for a TypeDefinition objects.
	ThisIsGraphQLTypeDefinition()
}

// ThisIsTypeDefinition is a marker struct intended to be embedded in every TypeDefinition
// implementation.
type ThisIsTypeDefinition struct{}

// ThisIsGraphQLTypeDefinition implements TypeDefinition.
func (ThisIsTypeDefinition) ThisIsGraphQLTypeDefinition() {}

//===----------------------------------------------------------------------------------------====//
// Object
//===----------------------------------------------------------------------------------------====//

// ObjectTypeData contains type data for an object type.
type ObjectTypeData struct {
	Name        string
	Description string

	// Interfaces are references to the implemented interface types.
	Interfaces []interface{}

	// Fields are inputs of the ObjectField pipeline.
	Fields []interface{}
}

// ThisIsObjectType is a marker struct intended to be embedded in every ObjectType implementation.
type ThisIsObjectType struct {
	ThisIsTypeDefinition
}

// ThisIsGraphQLObjectType implements ObjectType.
func (ThisIsObjectType) ThisIsGraphQLObjectType() {}

// ObjectType defines an object type.
type ObjectType interface {
	TypeDefinition
	TypeData() ObjectTypeData
	ThisIsGraphQLObjectType()
}

// ObjectConfig is an ObjectType made of its data.
type ObjectConfig struct {
	ThisIsObjectType
	Name        string
	Description string
	Interfaces  []interface{}
	Fields      []interface{}
}

var _ ObjectType = (*ObjectConfig)(nil)

// TypeData implements ObjectType.
func (config *ObjectConfig) TypeData() ObjectTypeData {
	return ObjectTypeData{
		Name:        config.Name,
		Description: config.Description,
		Interfaces:  config.Interfaces,
		Fields:      config.Fields,
	}
}

//===----------------------------------------------------------------------------------------====//
// Interface
//===----------------------------------------------------------------------------------------====//

// InterfaceTypeData contains type data for an interface type.
type InterfaceTypeData struct {
	Name        string
	Description string
	Fields      []interface{}
}

// ThisIsInterfaceType is a marker struct intended to be embedded in every InterfaceType
// implementation.
type ThisIsInterfaceType struct {
	ThisIsTypeDefinition
}

// ThisIsGraphQLInterfaceType implements InterfaceType.
func (ThisIsInterfaceType) ThisIsGraphQLInterfaceType() {}

// InterfaceType defines an interface type. Implement TypeResolver to choose the concrete type of a
// value; otherwise the object type registered for the Go type of the value is used.
type InterfaceType interface {
	TypeDefinition
	TypeData() InterfaceTypeData
	ThisIsGraphQLInterfaceType()
}

// InterfaceConfig is an InterfaceType made of its data.
type InterfaceConfig struct {
	ThisIsInterfaceType
	Name        string
	Description string
	Fields      []interface{}
}

var _ InterfaceType = (*InterfaceConfig)(nil)

// TypeData implements InterfaceType.
func (config *InterfaceConfig) TypeData() InterfaceTypeData {
	return InterfaceTypeData{
		Name:        config.Name,
		Description: config.Description,
		Fields:      config.Fields,
	}
}

//===----------------------------------------------------------------------------------------====//
// Union
//===----------------------------------------------------------------------------------------====//

// UnionTypeData contains type data for a union type.
type UnionTypeData struct {
	Name        string
	Description string

	// Types are references to the member object types.
	Types []interface{}
}

// ThisIsUnionType is a marker struct intended to be embedded in every UnionType implementation.
type ThisIsUnionType struct {
	ThisIsTypeDefinition
}

// ThisIsGraphQLUnionType implements UnionType.
func (ThisIsUnionType) ThisIsGraphQLUnionType() {}

// UnionType defines a union type. See InterfaceType for the resolution of concrete types.
type UnionType interface {
	TypeDefinition
	TypeData() UnionTypeData
	ThisIsGraphQLUnionType()
}

// UnionConfig is a UnionType made of its data.
type UnionConfig struct {
	ThisIsUnionType
	Name        string
	Description string
	Types       []interface{}
}

var _ UnionType = (*UnionConfig)(nil)

// TypeData implements UnionType.
func (config *UnionConfig) TypeData() UnionTypeData {
	return UnionTypeData{
		Name:        config.Name,
		Description: config.Description,
		Types:       config.Types,
	}
}

//===----------------------------------------------------------------------------------------====//
// Input Object
//===----------------------------------------------------------------------------------------====//

// InputObjectTypeData contains type data for an input object type.
type InputObjectTypeData struct {
	Name        string
	Description string

	// Fields are inputs of the InputObjectField pipeline.
	Fields []interface{}
}

// ThisIsInputObjectType is a marker struct intended to be embedded in every InputObjectType
// implementation.
type ThisIsInputObjectType struct {
	ThisIsTypeDefinition
}

// ThisIsGraphQLInputObjectType implements InputObjectType.
func (ThisIsInputObjectType) ThisIsGraphQLInputObjectType() {}

// InputObjectType defines an input object type. Implement ValueParser to turn the coerced input
// map into a Go value; otherwise arguments of the type receive the map itself.
type InputObjectType interface {
	TypeDefinition
	TypeData() InputObjectTypeData
	ThisIsGraphQLInputObjectType()
}

// InputObjectConfig is an InputObjectType made of its data.
type InputObjectConfig struct {
	ThisIsInputObjectType
	Name        string
	Description string
	Fields      []interface{}
}

var _ InputObjectType = (*InputObjectConfig)(nil)

// TypeData implements InputObjectType.
func (config *InputObjectConfig) TypeData() InputObjectTypeData {
	return InputObjectTypeData{
		Name:        config.Name,
		Description: config.Description,
		Fields:      config.Fields,
	}
}

//===----------------------------------------------------------------------------------------====//
// Scalar
//===----------------------------------------------------------------------------------------====//

// ScalarTypeData contains type data for a scalar type.
type ScalarTypeData struct {
	Name        string
	Description string
}

// ThisIsScalarType is a marker struct intended to be embedded in every ScalarType implementation.
type ThisIsScalarType struct {
	ThisIsTypeDefinition
}

// ThisIsGraphQLScalarType implements ScalarType.
func (ThisIsScalarType) ThisIsGraphQLScalarType() {}

// ScalarType defines a custom scalar. The definition must also implement Serializer, and
// ValueParser or LiteralParser if the scalar is used as input.
type ScalarType interface {
	TypeDefinition
	TypeData() ScalarTypeData
	ThisIsGraphQLScalarType()
}

//===----------------------------------------------------------------------------------------====//
// Enum
//===----------------------------------------------------------------------------------------====//

// EnumValue defines a value of an enum type.
type EnumValue struct {
	Name              string
	Value             interface{}
	Description       string
	DeprecationReason string
}

// EnumTypeData contains type data for an enum type.
type EnumTypeData struct {
	Name        string
	Description string
	Values      []EnumValue
}

// ThisIsEnumType is a marker struct intended to be embedded in every EnumType implementation.
type ThisIsEnumType struct {
	ThisIsTypeDefinition
}

// ThisIsGraphQLEnumType implements EnumType.
func (ThisIsEnumType) ThisIsGraphQLEnumType() {}

// EnumType defines an enum type.
type EnumType interface {
	TypeDefinition
	TypeData() EnumTypeData
	ThisIsGraphQLEnumType()
}

// EnumConfig is an EnumType made of its data.
type EnumConfig struct {
	ThisIsEnumType
	Name        string
	Description string
	Values      []EnumValue
}

var _ EnumType = (*EnumConfig)(nil)

// TypeData implements EnumType.
func (config *EnumConfig) TypeData() EnumTypeData {
	return EnumTypeData{
		Name:        config.Name,
		Description: config.Description,
		Values:      config.Values,
	}
}
