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
	"reflect"
	"strings"

	"github.com/botobag/gqlreflect/gqlerr"

	"gopkg.in/yaml.v3"
)

// Struct tag keys
const (
	FieldTag      = "gql"
	InputFieldTag = "gqlinput"
)

// tagOptions is a parsed marker tag.
type tagOptions struct {
	name    string
	options map[string]string
}

// parseTag reads `name,key=value,key='value, with comma',key=[a, b]`. Commas inside quotes or
// inside YAML flow collections do not separate options. A tag of "-" yields nil.
func parseTag(tag string) (*tagOptions, error) {
	if tag == "-" {
		return nil, nil
	}

	var (
		parts []string
		b     strings.Builder
		quote bool
		depth int
	)
	for i := 0; i < len(tag); i++ {
		c := tag[i]
		switch {
		case c == '\'':
			quote = !quote
			continue
		case quote:
		case c == '[' || c == '{':
			depth++
		case c == ']' || c == '}':
			if depth == 0 {
				return nil, fmt.Errorf("unbalanced %q in tag %q", c, tag)
			}
			depth--
		case c == ',' && depth == 0:
			parts = append(parts, b.String())
			b.Reset()
			continue
		}
		b.WriteByte(c)
	}
	if quote {
		return nil, fmt.Errorf("unterminated quote in tag %q", tag)
	}
	if depth > 0 {
		return nil, fmt.Errorf("unterminated collection in tag %q", tag)
	}
	parts = append(parts, b.String())

	result := &tagOptions{
		name:    strings.TrimSpace(parts[0]),
		options: map[string]string{},
	}
	for _, part := range parts[1:] {
		key, value, found := strings.Cut(part, "=")
		if !found {
			return nil, fmt.Errorf("option %q in tag %q is not a key=value pair", part, tag)
		}
		result.options[strings.TrimSpace(key)] = value
	}
	return result, nil
}

// take removes key from the options.
func (t *tagOptions) take(key string) string {
	value := t.options[key]
	delete(t.options, key)
	return value
}

// done fails if options are left that nobody took.
func (t *tagOptions) done() error {
	for key := range t.options {
		return fmt.Errorf("unknown option %q", key)
	}
	return nil
}

func tagError(property reflect.StructField, err error) error {
	return gqlerr.NewError(fmt.Sprintf("invalid tag on field %s", property.Name),
		gqlerr.Op("metadata.ParseTag"), gqlerr.ErrKindInvalidMetadata, err)
}

// fieldFromTag builds a Field marker from the "gql" tag of a struct field. It returns nil if the
// field has no tag.
func fieldFromTag(property reflect.StructField) (*Field, error) {
	tag, ok := property.Tag.Lookup(FieldTag)
	if !ok {
		return nil, nil
	}

	options, err := parseTag(tag)
	if err != nil {
		return nil, tagError(property, err)
	} else if options == nil {
		return nil, nil
	}

	field := &Field{
		Name:              options.name,
		Description:       options.take("desc"),
		DeprecationReason: options.take("deprecated"),
		Type:              options.take("type"),
	}
	if err := options.done(); err != nil {
		return nil, tagError(property, err)
	}
	return field, nil
}

// inputFieldFromTag builds an InputField marker from the "gqlinput" tag of a struct field. The
// default value is read as a YAML scalar or flow collection.
func inputFieldFromTag(property reflect.StructField) (*InputField, error) {
	tag, ok := property.Tag.Lookup(InputFieldTag)
	if !ok {
		return nil, nil
	}

	options, err := parseTag(tag)
	if err != nil {
		return nil, tagError(property, err)
	} else if options == nil {
		return nil, nil
	}

	field := &InputField{
		Name:        options.name,
		Description: options.take("desc"),
		Type:        options.take("type"),
	}
	if _, ok := options.options["default"]; ok {
		if err := yaml.Unmarshal([]byte(options.take("default")), &field.DefaultValue); err != nil {
			return nil, tagError(property, err)
		}
	}
	if err := options.done(); err != nil {
		return nil, tagError(property, err)
	}
	return field, nil
}
