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

import (
	"fmt"
	"io"
	"reflect"

	"github.com/botobag/gqlreflect/gqlerr"
	"github.com/botobag/gqlreflect/reflection"
	"github.com/botobag/gqlreflect/typeref"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// document is the root of a declaration document.
type document struct {
	Types []classDocument `yaml:"types" json:"types"`
}

type classDocument struct {
	// Class is the name of the Go type, either the bare name or the class name with the import path.
	Class string `yaml:"class" json:"class"`

	Object    *ObjectType    `yaml:"object" json:"object"`
	Interface *InterfaceType `yaml:"interface" json:"interface"`
	Union     *UnionType     `yaml:"union" json:"union"`
	Input     *InputType     `yaml:"input" json:"input"`
	Scalar    *ScalarType    `yaml:"scalar" json:"scalar"`
	Enum      *EnumType      `yaml:"enum" json:"enum"`

	Properties map[string]memberDocument `yaml:"properties" json:"properties"`
	Methods    map[string]memberDocument `yaml:"methods" json:"methods"`
}

type memberDocument struct {
	Field      *Field      `yaml:"field" json:"field"`
	Input      *InputField `yaml:"input" json:"input"`
	Parameters []*Argument `yaml:"parameters" json:"parameters"`
}

// LoadYAML reads a YAML declaration document. Classes named in the document are looked up among
// the given Go types.
func (d *Declarations) LoadYAML(r io.Reader, classes ...reflect.Type) error {
	var doc document
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil && err != io.EOF {
		return gqlerr.NewError("cannot read declarations", gqlerr.Op("metadata.LoadYAML"),
			gqlerr.ErrKindInvalidMetadata, errors.Wrap(err, "decode YAML"))
	}
	return d.apply(gqlerr.Op("metadata.LoadYAML"), &doc, classes)
}

// LoadJSON reads a JSON declaration document. See LoadYAML.
func (d *Declarations) LoadJSON(r io.Reader, classes ...reflect.Type) error {
	var doc document
	if err := jsoniter.ConfigCompatibleWithStandardLibrary.NewDecoder(r).Decode(&doc); err != nil {
		return gqlerr.NewError("cannot read declarations", gqlerr.Op("metadata.LoadJSON"),
			gqlerr.ErrKindInvalidMetadata, errors.Wrap(err, "decode JSON"))
	}
	return d.apply(gqlerr.Op("metadata.LoadJSON"), &doc, classes)
}

func (d *Declarations) apply(op gqlerr.Op, doc *document, classes []reflect.Type) error {
	byName := make(map[string]reflect.Type, 2*len(classes))
	for _, class := range classes {
		class = reflection.Indirect(class)
		byName[typeref.ClassName(class)] = class
		byName[class.Name()] = class
	}

	invalid := func(format string, args ...interface{}) error {
		return gqlerr.NewError(fmt.Sprintf(format, args...), op, gqlerr.ErrKindInvalidMetadata)
	}

	for _, entry := range doc.Types {
		class, ok := byName[entry.Class]
		if !ok {
			return invalid(`unknown class "%s"`, entry.Class)
		}

		for _, marker := range []interface{}{
			entry.Object, entry.Interface, entry.Union, entry.Input, entry.Scalar, entry.Enum,
		} {
			if !reflect.ValueOf(marker).IsNil() {
				d.DeclareClass(class, marker)
			}
		}

		for name, member := range entry.Properties {
			if _, ok := reflection.PropertyOf(class, name); !ok {
				return invalid("%s has no exported field %s", class, name)
			}
			if len(member.Parameters) > 0 {
				return invalid("parameters declared on field %s.%s", class, name)
			}
			d.DeclareProperty(class, name, member.Field, member.Input)
		}

		for name, member := range entry.Methods {
			method, ok := reflection.MethodOf(class, name)
			if !ok {
				return invalid("%s has no exported method %s", class, name)
			}
			d.DeclareMethod(class, name, member.Field, member.Input)

			params := method.Parameters()
			if len(member.Parameters) > len(params) {
				return invalid("%s declares %d parameters but has %d", method, len(member.Parameters), len(params))
			}
			for i, argument := range member.Parameters {
				d.DeclareParameter(class, name, i, argument)
			}
		}
	}
	return nil
}
