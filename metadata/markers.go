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

package metadata

// ObjectType marks a Go type as a GraphQL object type.
type ObjectType struct {
	// Name of the object type; defaults to the name of the Go type
	Name string `yaml:"name" json:"name"`

	// Description of the object type
	Description string `yaml:"description" json:"description"`

	// Interfaces lists the names of the interface types implemented in addition to the ones inferred
	// from the Go interfaces the type implements.
	Interfaces []string `yaml:"interfaces" json:"interfaces"`
}

// InterfaceType marks a Go type, usually an interface, as a GraphQL interface type.
type InterfaceType struct {
	Name        string `yaml:"name" json:"name"`
	Description string `yaml:"description" json:"description"`
}

// UnionType marks a Go type, usually an interface, as a GraphQL union type.
type UnionType struct {
	Name        string `yaml:"name" json:"name"`
	Description string `yaml:"description" json:"description"`

	// Types lists the names of the member object types.
	Types []string `yaml:"types" json:"types"`
}

// InputType marks a struct as a GraphQL input object type.
type InputType struct {
	Name        string `yaml:"name" json:"name"`
	Description string `yaml:"description" json:"description"`
}

// ScalarType marks a Go type as a custom GraphQL scalar. The type must implement
// definition.Serializer.
type ScalarType struct {
	Name        string `yaml:"name" json:"name"`
	Description string `yaml:"description" json:"description"`
}

// EnumType marks a Go type as a GraphQL enum.
type EnumType struct {
	Name        string `yaml:"name" json:"name"`
	Description string `yaml:"description" json:"description"`

	// Values defines the enum values when the type does not implement definition.EnumCases.
	// Otherwise the entries override the description and the deprecation of the case with the same
	// name.
	Values []EnumValue `yaml:"values" json:"values"`
}

// EnumValue describes a value of an EnumType.
type EnumValue struct {
	Name string `yaml:"name" json:"name"`

	// Value is converted to the Go type of the enum.
	Value interface{} `yaml:"value" json:"value"`

	Description       string `yaml:"description" json:"description"`
	DeprecationReason string `yaml:"deprecationReason" json:"deprecationReason"`
}

// Field marks a method or a struct field as an output field.
type Field struct {
	// Name of the field; defaults to the member name converted with the naming strategy
	Name string `yaml:"name" json:"name"`

	Description       string `yaml:"description" json:"description"`
	DeprecationReason string `yaml:"deprecationReason" json:"deprecationReason"`

	// Type overrides the type inferred from the Go type with a type expression such as "[ID!]!" or
	// "Cat | Dog".
	Type string `yaml:"type" json:"type"`

	// Args names the parameters of a method in order.
	Args []string `yaml:"args" json:"args"`
}

// InputField marks a setter method or a struct field as an input field.
type InputField struct {
	Name         string      `yaml:"name" json:"name"`
	Description  string      `yaml:"description" json:"description"`
	Type         string      `yaml:"type" json:"type"`
	DefaultValue interface{} `yaml:"defaultValue" json:"defaultValue"`
}

// Argument overrides what is inferred from a method parameter.
type Argument struct {
	Name         string      `yaml:"name" json:"name"`
	Description  string      `yaml:"description" json:"description"`
	Type         string      `yaml:"type" json:"type"`
	DefaultValue interface{} `yaml:"defaultValue" json:"defaultValue"`
}
