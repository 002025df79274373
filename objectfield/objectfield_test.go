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

package objectfield_test

import (
	"context"
	"errors"
	"reflect"
	"strings"

	"github.com/botobag/gqlreflect/argument"
	"github.com/botobag/gqlreflect/container"
	"github.com/botobag/gqlreflect/definition"
	"github.com/botobag/gqlreflect/field"
	"github.com/botobag/gqlreflect/gqlerr"
	"github.com/botobag/gqlreflect/internal/testutil"
	"github.com/botobag/gqlreflect/metadata"
	"github.com/botobag/gqlreflect/objectfield"
	"github.com/botobag/gqlreflect/reflection"
	"github.com/botobag/gqlreflect/registry"

	"github.com/graphql-go/graphql"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

type Book struct {
	Title     string   `gql:""`
	Pages     int      `gql:"pageCount,desc=Number of pages"`
	Rating    *float64 `gql:",deprecated=Use reviews"`
	Keywords  []string `gql:",type=[String!]"`
	Year      int      `gql:"publishedYear"`
	WordCount int      `gql:""`
	Secret    string
}

func (b *Book) Excerpt(ctx context.Context, length int) (string, error) {
	if length < 0 {
		return "", errors.New("negative length")
	}
	if length > len(b.Title) {
		length = len(b.Title)
	}
	return b.Title[:length], nil
}

func (b *Book) Shout() string {
	return strings.ToUpper(b.Title)
}

func (b *Book) Touch() {}

type Library struct{}

func (l *Library) Greet(name *string) string {
	if name == nil {
		return "hello"
	}
	return "hello " + *name
}

var bookType = reflect.TypeOf(Book{})

func method(t reflect.Type, name string) reflection.Method {
	m, ok := reflection.MethodOf(t, name)
	Expect(ok).Should(BeTrue())
	return m
}

func property(t reflect.Type, name string) reflection.Property {
	p, ok := reflection.PropertyOf(t, name)
	Expect(ok).Should(BeTrue())
	return p
}

var _ = Describe("ObjectField pipeline", func() {
	var (
		reader   *metadata.Declarations
		types    *registry.Registry
		resolver *objectfield.Resolver
	)

	BeforeEach(func() {
		reader = metadata.NewDeclarations()
		types = registry.New()
		arguments := argument.Install(argument.NewResolver(), reader, argument.DefaultPriorities)
		resolver = objectfield.Install(objectfield.NewResolver(), objectfield.Options{
			Reader:    reader,
			Arguments: arguments,
			Parsers:   types,
			Container: container.New(),
		}, objectfield.DefaultPriorities)
	})

	realize := func(input interface{}) *graphql.Field {
		f, err := resolver.Resolve(input)
		Expect(err).ShouldNot(HaveOccurred())
		result, err := f.Realize(types)
		Expect(err).ShouldNot(HaveOccurred())
		return result
	}

	Describe("Property", func() {
		It("derives fields from tagged struct fields", func() {
			f := realize(property(bookType, "Title"))
			Expect(f.Name).Should(Equal("title"))
			Expect(f.Type).Should(Equal(graphql.NewNonNull(graphql.String)))

			f = realize(property(bookType, "Pages"))
			Expect(f.Name).Should(Equal("pageCount"))
			Expect(f.Description).Should(Equal("Number of pages"))

			f = realize(property(bookType, "Rating"))
			Expect(f.Type).Should(Equal(graphql.Float))
			Expect(f.DeprecationReason).Should(Equal("Use reviews"))

			f = realize(property(bookType, "Keywords"))
			Expect(f.Type.String()).Should(Equal("[String!]"))
		})

		It("reads the struct field", func() {
			f := realize(property(bookType, "Pages"))
			Expect(f.Resolve(graphql.ResolveParams{Source: &Book{Pages: 42}})).Should(Equal(42))
		})

		It("rejects untagged struct fields", func() {
			_, err := resolver.Resolve(property(bookType, "Secret"))
			Expect(err).Should(testutil.MatchError(
				testutil.KindIs(gqlerr.ErrKindCantResolveObjectField),
			))
		})
	})

	Describe("Method", func() {
		It("rejects methods without marker", func() {
			_, err := resolver.Resolve(method(bookType, "Shout"))
			Expect(err).Should(testutil.MatchError(
				testutil.KindIs(gqlerr.ErrKindCantResolveObjectField),
			))
		})

		It("derives the field from the method signature", func() {
			reader.DeclareMethod(bookType, "Excerpt", metadata.Field{
				Description: "Beginning of the title",
				Args:        []string{"length"},
			})

			f := realize(method(bookType, "Excerpt"))
			Expect(f.Name).Should(Equal("excerpt"))
			Expect(f.Description).Should(Equal("Beginning of the title"))
			Expect(f.Type).Should(Equal(graphql.NewNonNull(graphql.String)))
			Expect(f.Args).Should(HaveLen(1))
			Expect(f.Args).Should(HaveKey("length"))
			Expect(f.Args["length"].Type).Should(Equal(graphql.NewNonNull(graphql.Int)))
		})

		It("honors the naming strategy and explicit names", func() {
			snake := objectfield.Install(objectfield.NewResolver(), objectfield.Options{
				Reader:    reader,
				Arguments: argument.Install(argument.NewResolver(), reader, argument.DefaultPriorities),
				Naming:    field.SnakeCase,
			}, objectfield.DefaultPriorities)

			reader.DeclareMethod(bookType, "Shout", metadata.Field{})
			f, err := snake.Resolve(method(bookType, "Shout"))
			Expect(err).ShouldNot(HaveOccurred())
			Expect(f.Name).Should(Equal("shout"))

			reader.DeclareMethod(bookType, "Excerpt", metadata.Field{})
			f, err = snake.Resolve(method(bookType, "Excerpt"))
			Expect(err).ShouldNot(HaveOccurred())
			Expect(f.Name).Should(Equal("excerpt"))

			f, err = snake.Resolve(property(bookType, "WordCount"))
			Expect(err).ShouldNot(HaveOccurred())
			Expect(f.Name).Should(Equal("word_count"))
			Expect(realize(property(bookType, "WordCount")).Name).Should(Equal("wordCount"))

			f, err = snake.Resolve(property(bookType, "Year"))
			Expect(err).ShouldNot(HaveOccurred())
			Expect(f.Name).Should(Equal("publishedYear"))

			reader.DeclareMethod(bookType, "Touch", metadata.Field{Name: "touched", Type: "Boolean"})
			f, err = snake.Resolve(method(bookType, "Touch"))
			Expect(err).ShouldNot(HaveOccurred())
			Expect(f.Name).Should(Equal("touched"))
		})

		It("rejects methods producing no value", func() {
			reader.DeclareMethod(bookType, "Touch", metadata.Field{})
			_, err := resolver.Resolve(method(bookType, "Touch"))
			Expect(err).Should(testutil.MatchError(
				testutil.KindIs(gqlerr.ErrKindCantResolveObjectField),
				testutil.MessageContainSubstring("produces no value"),
			))
		})

		It("overrides the result type", func() {
			reader.DeclareMethod(bookType, "Shout", metadata.Field{Type: "ID"})
			f := realize(method(bookType, "Shout"))
			Expect(f.Type).Should(Equal(graphql.ID))
		})
	})

	Describe("Native and Declarative", func() {
		It("passes resolved fields through", func() {
			f := &field.Object{Name: "x"}
			Expect(resolver.Resolve(f)).Should(BeIdenticalTo(f))
		})

		It("converts native fields", func() {
			f := realize(&graphql.Field{
				Name: "count",
				Type: graphql.Int,
				Args: graphql.FieldConfigArgument{
					"min": &graphql.ArgumentConfig{Type: graphql.Int, DefaultValue: 1},
					"max": &graphql.ArgumentConfig{Type: graphql.Int},
				},
			})
			Expect(f.Name).Should(Equal("count"))
			Expect(f.Args).Should(HaveLen(2))
			Expect(f.Args["min"].DefaultValue).Should(Equal(1))
		})

		It("rejects unnamed native fields", func() {
			_, err := resolver.Resolve(&graphql.Field{Type: graphql.Int})
			Expect(err).Should(testutil.MatchError(
				testutil.KindIs(gqlerr.ErrKindCantResolveObjectField),
				testutil.MessageContainSubstring("without name"),
			))
		})

		It("converts declarative fields with their arguments", func() {
			f := realize(&definition.Field{
				Name: "search",
				Type: "[String!]!",
				Args: []interface{}{
					&definition.Argument{Name: "term", Type: "String!"},
					map[string]interface{}{"name": "first", "type": "Int", "defaultValue": 10},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return []string{p.Args["term"].(string)}, nil
				},
			})
			Expect(f.Type.String()).Should(Equal("[String!]!"))
			Expect(f.Args).Should(HaveLen(2))
			Expect(f.Args["first"].DefaultValue).Should(Equal(10))
			Expect(f.Resolve).ShouldNot(BeNil())
		})

		It("reports the failing argument of declarative fields", func() {
			_, err := resolver.Resolve(&definition.Field{
				Name: "search",
				Type: "String",
				Args: []interface{}{42},
			})
			Expect(err).Should(testutil.HaveErrKind(gqlerr.ErrKindCantResolveArgument))
		})
	})

	It("executes resolvers built from methods and struct fields", func() {
		reader.DeclareMethod(bookType, "Excerpt", metadata.Field{Args: []string{"length"}})
		reader.DeclareMethod(reflect.TypeOf(Library{}), "Greet", metadata.Field{Args: []string{"name"}})

		bookFields := graphql.Fields{}
		for _, input := range []interface{}{
			property(bookType, "Title"),
			property(bookType, "Pages"),
			method(bookType, "Excerpt"),
		} {
			f := realize(input)
			bookFields[f.Name] = f
		}
		book := graphql.NewObject(graphql.ObjectConfig{Name: "Book", Fields: bookFields})

		greet := realize(method(reflect.TypeOf(Library{}), "Greet"))
		query := graphql.NewObject(graphql.ObjectConfig{
			Name: "Query",
			Fields: graphql.Fields{
				"greet": greet,
				"book": &graphql.Field{
					Type: book,
					Resolve: func(p graphql.ResolveParams) (interface{}, error) {
						return &Book{Title: "Dune", Pages: 412}, nil
					},
				},
			},
		})

		schema, err := graphql.NewSchema(graphql.SchemaConfig{Query: query})
		Expect(err).ShouldNot(HaveOccurred())

		result := graphql.Do(graphql.Params{
			Schema:        schema,
			RequestString: `{ greet anon: greet(name: "Paul") book { title pageCount excerpt(length: 2) } }`,
		})
		Expect(result.Errors).Should(BeEmpty())
		Expect(result.Data).Should(testutil.SerializeToJSONAs(map[string]interface{}{
			"greet": "hello",
			"anon":  "hello Paul",
			"book": map[string]interface{}{
				"title":     "Dune",
				"pageCount": 412,
				"excerpt":   "Du",
			},
		}))

		result = graphql.Do(graphql.Params{
			Schema:        schema,
			RequestString: `{ book { excerpt(length: -1) } }`,
		})
		Expect(result.Errors).Should(HaveLen(1))
		Expect(result.Errors[0].Message).Should(Equal("negative length"))
	})
})
