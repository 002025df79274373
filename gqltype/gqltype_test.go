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

package gqltype_test

import (
	"context"
	"errors"
	"fmt"
	"math"
	"reflect"
	"strings"

	"github.com/botobag/gqlreflect/argument"
	"github.com/botobag/gqlreflect/container"
	"github.com/botobag/gqlreflect/definition"
	"github.com/botobag/gqlreflect/gqlerr"
	"github.com/botobag/gqlreflect/gqltype"
	"github.com/botobag/gqlreflect/inputfield"
	"github.com/botobag/gqlreflect/internal/testutil"
	"github.com/botobag/gqlreflect/metadata"
	"github.com/botobag/gqlreflect/objectfield"
	"github.com/botobag/gqlreflect/pipeline"
	"github.com/botobag/gqlreflect/registry"
	"github.com/botobag/gqlreflect/typeref"

	"github.com/graphql-go/graphql"
	"github.com/graphql-go/graphql/language/ast"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

//===----------------------------------------------------------------------------------------====//
// Models
//===----------------------------------------------------------------------------------------====//

type Color int

const (
	Red Color = iota
	Green
	Blue
)

func (c Color) String() string {
	return [...]string{"RED", "GREEN", "BLUE"}[c]
}

func (Color) Cases() []interface{} {
	return []interface{}{Red, Green, Blue}
}

func (c Color) Description() string {
	if c == Red {
		return "Warm"
	}
	return ""
}

func (c Color) DeprecationReason() string {
	if c == Blue {
		return "Too cold"
	}
	return ""
}

type Size string

type Upper string

func (Upper) Serialize(value interface{}) interface{} {
	return strings.ToUpper(fmt.Sprint(value))
}

func (Upper) ParseValue(value interface{}) (interface{}, error) {
	s, ok := value.(string)
	if !ok {
		return nil, errors.New("not a string")
	}
	return Upper(s), nil
}

type Node interface {
	ID() string
}

type Pet interface {
	isPet()
}

type Cat struct {
	Name  string `gql:""`
	Lives int    `gql:""`
}

func (c *Cat) ID() string { return "cat:" + c.Name }
func (*Cat) isPet()       {}

type Dog struct {
	Name string `gql:""`
}

func (d *Dog) ID() string { return "dog:" + d.Name }
func (*Dog) isPet()       {}

type Filter struct {
	Colors []Color `gqlinput:""`
	Prefix string  `gqlinput:""`
}

type StatsDef struct {
	definition.ThisIsObjectType
}

func (*StatsDef) TypeData() definition.ObjectTypeData {
	return definition.ObjectTypeData{
		Name: "Stats",
		Fields: []interface{}{
			&definition.Field{Name: "count", Type: "Int!"},
		},
	}
}

func (*StatsDef) ResolveField(p graphql.ResolveParams) (interface{}, error) {
	return 7, nil
}

type Query struct{}

func (Query) Favorite() Color {
	return Green
}

func (Query) Pets() []Pet {
	return []Pet{&Cat{Name: "Tom", Lives: 9}, &Dog{Name: "Rex"}}
}

func (Query) Nodes() []Node {
	return []Node{&Cat{Name: "Tom"}, &Dog{Name: "Rex"}}
}

func (Query) Paint(ctx context.Context, filter Filter) string {
	names := make([]string, len(filter.Colors))
	for i, c := range filter.Colors {
		names[i] = c.String()
	}
	return filter.Prefix + ":" + strings.Join(names, ",")
}

func (Query) Echo(v Upper) Upper {
	return v
}

func (Query) Stats() bool {
	return true
}

type Hybrid struct {
	definition.ThisIsObjectType
	Name string `gql:""`
}

func (*Hybrid) TypeData() definition.ObjectTypeData {
	return definition.ObjectTypeData{
		Name: "FromDefinition",
		Fields: []interface{}{
			&definition.Field{Name: "name", Type: "String"},
		},
	}
}

type ShapeDef struct {
	definition.ThisIsInterfaceType
}

func (*ShapeDef) TypeData() definition.InterfaceTypeData {
	return definition.InterfaceTypeData{
		Name: "Shape",
		Fields: []interface{}{
			&definition.Field{Name: "area", Type: "Float!"},
		},
	}
}

func (*ShapeDef) ResolveType(value interface{}) string {
	if _, ok := value.(map[string]interface{}); ok {
		return "Square"
	}
	return ""
}

type Plain struct {
	Value int
}

type Empty struct{}

var (
	colorType  = reflect.TypeOf(Red)
	sizeType   = reflect.TypeOf(Size(""))
	upperType  = reflect.TypeOf(Upper(""))
	nodeType   = reflect.TypeOf((*Node)(nil)).Elem()
	petType    = reflect.TypeOf((*Pet)(nil)).Elem()
	catType    = reflect.TypeOf(Cat{})
	dogType    = reflect.TypeOf(Dog{})
	filterType = reflect.TypeOf(Filter{})
	queryType  = reflect.TypeOf(Query{})
	hybridType = reflect.TypeOf(Hybrid{})
)

//===----------------------------------------------------------------------------------------====//
// Helpers
//===----------------------------------------------------------------------------------------====//

type harness struct {
	reader   *metadata.Declarations
	registry *registry.Registry
	env      *gqltype.Env
	types    *gqltype.Resolver
}

func newHarness() *harness {
	reader := metadata.NewDeclarations()
	types := registry.New()
	c := container.New()

	arguments := argument.Install(argument.NewResolver(), reader, argument.DefaultPriorities)
	fields := objectfield.Install(objectfield.NewResolver(), objectfield.Options{
		Reader:    reader,
		Arguments: arguments,
		Parsers:   types,
		Container: c,
	}, objectfield.DefaultPriorities)
	inputFields := inputfield.Install(inputfield.NewResolver(), inputfield.Options{
		Reader:   reader,
		Registry: types,
	}, inputfield.DefaultPriorities)

	env := &gqltype.Env{
		Registry:    types,
		Reader:      reader,
		Container:   c,
		Fields:      fields,
		InputFields: inputFields,
	}

	return &harness{
		reader:   reader,
		registry: types,
		env:      env,
		types:    gqltype.Install(gqltype.NewResolver(), env, gqltype.DefaultPriorities),
	}
}

// register resolves input and registers the result, under the class name too when input is a Go
// type.
func (h *harness) register(input interface{}) graphql.Type {
	t, err := h.types.Resolve(input)
	Expect(err).ShouldNot(HaveOccurred())

	var aliases []string
	if class, ok := input.(reflect.Type); ok {
		aliases = append(aliases, typeref.ClassName(class))
	}
	Expect(h.registry.Register(t, aliases...)).Should(Succeed())
	return t
}

func enumValue(enum *graphql.Enum, name string) *graphql.EnumValueDefinition {
	for _, v := range enum.Values() {
		if v.Name == name {
			return v
		}
	}
	return nil
}

func recovered(f func()) (r interface{}) {
	defer func() {
		r = recover()
	}()
	f()
	return nil
}

//===----------------------------------------------------------------------------------------====//
// Specs
//===----------------------------------------------------------------------------------------====//

var _ = Describe("Type pipeline", func() {
	var h *harness

	BeforeEach(func() {
		h = newHarness()
	})

	Describe("Enum", func() {
		It("creates an enum from the cases of a Go type", func() {
			t, err := h.types.Resolve(colorType)
			Expect(err).ShouldNot(HaveOccurred())

			enum, ok := t.(*graphql.Enum)
			Expect(ok).Should(BeTrue())
			Expect(enum.Name()).Should(Equal("Color"))
			Expect(enum.Values()).Should(HaveLen(3))

			red := enumValue(enum, "RED")
			Expect(red.Value).Should(Equal(Red))
			Expect(red.Description).Should(Equal("Warm"))

			blue := enumValue(enum, "BLUE")
			Expect(blue.Value).Should(Equal(Blue))
			Expect(blue.DeprecationReason).Should(Equal("Too cold"))

			Expect(enum.Serialize(Green)).Should(Equal("GREEN"))
		})

		It("lets the marker rename the enum and override cases", func() {
			h.reader.DeclareClass(colorType, metadata.EnumType{
				Name: "Hue",
				Values: []metadata.EnumValue{
					{Name: "GREEN", Description: "Fresh"},
				},
			})

			t, err := h.types.Resolve(colorType)
			Expect(err).ShouldNot(HaveOccurred())
			enum := t.(*graphql.Enum)
			Expect(enum.Name()).Should(Equal("Hue"))
			Expect(enumValue(enum, "GREEN").Description).Should(Equal("Fresh"))
			Expect(enumValue(enum, "GREEN").Value).Should(Equal(Green))
		})

		It("rejects marker values that are not cases", func() {
			h.reader.DeclareClass(colorType, metadata.EnumType{
				Values: []metadata.EnumValue{{Name: "PURPLE"}},
			})

			_, err := h.types.Resolve(colorType)
			Expect(err).Should(testutil.MatchError(
				testutil.KindIs(gqlerr.ErrKindInvalidMetadata),
				testutil.MessageContainSubstring("has no case PURPLE"),
			))
		})

		It("creates an enum from marker values", func() {
			h.reader.DeclareClass(sizeType, metadata.EnumType{
				Description: "T-shirt size",
				Values: []metadata.EnumValue{
					{Name: "SMALL", Value: "s"},
					{Name: "LARGE"},
				},
			})

			t, err := h.types.Resolve(sizeType)
			Expect(err).ShouldNot(HaveOccurred())
			enum := t.(*graphql.Enum)
			Expect(enum.Name()).Should(Equal("Size"))
			Expect(enum.Description()).Should(Equal("T-shirt size"))
			Expect(enumValue(enum, "SMALL").Value).Should(Equal(Size("s")))
			Expect(enumValue(enum, "LARGE").Value).Should(Equal(Size("LARGE")))
		})

		It("rejects enums without values", func() {
			h.reader.DeclareClass(sizeType, metadata.EnumType{})

			_, err := h.types.Resolve(sizeType)
			Expect(err).Should(testutil.MatchError(
				testutil.KindIs(gqlerr.ErrKindInvalidMetadata),
				testutil.MessageContainSubstring("has no value"),
			))
		})
	})

	Describe("Native", func() {
		It("returns engine types unchanged", func() {
			Expect(h.types.Resolve(graphql.String)).Should(BeIdenticalTo(graphql.String))
		})
	})

	Describe("Attribute", func() {
		It("creates an object type from marked members", func() {
			h.reader.DeclareClass(catType, metadata.ObjectType{Description: "A cat"})

			t, err := h.types.Resolve(catType)
			Expect(err).ShouldNot(HaveOccurred())
			object, ok := t.(*graphql.Object)
			Expect(ok).Should(BeTrue())
			Expect(object.Name()).Should(Equal("Cat"))
			Expect(object.Description()).Should(Equal("A cat"))

			fields := object.Fields()
			Expect(object.Error()).ShouldNot(HaveOccurred())
			Expect(fields).Should(HaveKey("name"))
			Expect(fields).Should(HaveKey("lives"))
			Expect(fields).ShouldNot(HaveKey("id"))
		})

		It("panics from the fields thunk when an object type has no field", func() {
			h.reader.DeclareClass(reflect.TypeOf(Empty{}), metadata.ObjectType{})

			t, err := h.types.Resolve(reflect.TypeOf(Empty{}))
			Expect(err).ShouldNot(HaveOccurred())

			r := recovered(func() {
				t.(*graphql.Object).Fields()
			})
			Expect(r).Should(testutil.HaveErrKind(gqlerr.ErrKindInvalidMetadata))
		})

		It("rejects input types that are not structs", func() {
			h.reader.DeclareClass(sizeType, metadata.InputType{})

			_, err := h.types.Resolve(sizeType)
			Expect(err).Should(testutil.MatchError(
				testutil.KindIs(gqlerr.ErrKindInvalidMetadata),
			))
		})

		It("rejects scalars that cannot serialize", func() {
			h.reader.DeclareClass(reflect.TypeOf(Plain{}), metadata.ScalarType{})

			_, err := h.types.Resolve(reflect.TypeOf(Plain{}))
			Expect(err).Should(testutil.MatchError(
				testutil.KindIs(gqlerr.ErrKindInvalidMetadata),
				testutil.MessageContainSubstring("does not implement Serialize"),
			))
		})

		It("hydrates input objects into Go values", func() {
			h.reader.DeclareClass(filterType, metadata.InputType{})
			h.register(colorType)
			input := h.register(filterType).(*graphql.InputObject)
			Expect(input.Fields()).Should(HaveLen(2))
			Expect(input.Error()).ShouldNot(HaveOccurred())

			parser := h.registry.ValueParser("Filter")
			Expect(parser).ShouldNot(BeNil())

			value, err := parser(map[string]interface{}{
				"colors": []interface{}{Red, Blue},
				"prefix": "x",
			})
			Expect(err).ShouldNot(HaveOccurred())
			Expect(value).Should(Equal(&Filter{Colors: []Color{Red, Blue}, Prefix: "x"}))
		})

		It("builds an executable schema", func() {
			h.reader.
				DeclareClass(upperType, metadata.ScalarType{Description: "Shouting text"}).
				DeclareClass(nodeType, metadata.InterfaceType{}).
				DeclareMethod(nodeType, "ID", metadata.Field{Name: "id", Type: "ID!"}).
				DeclareClass(petType, metadata.UnionType{}).
				DeclareClass(catType, metadata.ObjectType{}).
				DeclareMethod(catType, "ID", metadata.Field{Name: "id", Type: "ID!"}).
				DeclareClass(dogType, metadata.ObjectType{}).
				DeclareMethod(dogType, "ID", metadata.Field{Name: "id", Type: "ID!"}).
				DeclareClass(filterType, metadata.InputType{}).
				DeclareClass(queryType, metadata.ObjectType{}).
				DeclareMethod(queryType, "Favorite", metadata.Field{}).
				DeclareMethod(queryType, "Pets", metadata.Field{}).
				DeclareMethod(queryType, "Nodes", metadata.Field{}).
				DeclareMethod(queryType, "Paint", metadata.Field{Args: []string{"filter"}}).
				DeclareMethod(queryType, "Echo", metadata.Field{Args: []string{"v"}}).
				DeclareMethod(queryType, "Stats", metadata.Field{Type: "Stats!"})

			h.register(colorType)
			h.register(upperType)
			h.register(nodeType)
			cat := h.register(catType)
			dog := h.register(dogType)
			h.register(petType)
			h.register(filterType)
			h.register(reflect.TypeOf(StatsDef{}))
			query := h.register(queryType)

			schema, err := graphql.NewSchema(graphql.SchemaConfig{
				Query: query.(*graphql.Object),
				Types: []graphql.Type{cat, dog},
			})
			Expect(err).ShouldNot(HaveOccurred())

			Expect(cat.(*graphql.Object).Interfaces()).Should(HaveLen(1))
			Expect(cat.(*graphql.Object).Interfaces()[0].Name()).Should(Equal("Node"))

			result := graphql.Do(graphql.Params{
				Schema: schema,
				RequestString: `{
					favorite
					pets {
						__typename
						... on Cat { name lives }
						... on Dog { name }
					}
					nodes { id }
					paint(filter: { colors: [RED, BLUE], prefix: "x" })
					echo(v: "hi")
					stats { count }
				}`,
			})
			Expect(result.Errors).Should(BeEmpty())
			Expect(result.Data).Should(testutil.SerializeToJSONAs(map[string]interface{}{
				"favorite": "GREEN",
				"pets": []interface{}{
					map[string]interface{}{"__typename": "Cat", "name": "Tom", "lives": 9},
					map[string]interface{}{"__typename": "Dog", "name": "Rex"},
				},
				"nodes": []interface{}{
					map[string]interface{}{"id": "cat:Tom"},
					map[string]interface{}{"id": "dog:Rex"},
				},
				"paint": "x:RED,BLUE",
				"echo":  "HI",
				"stats": map[string]interface{}{"count": 7},
			}))
		})

		It("builds an executable schema without the Definition middleware", func() {
			h.types = gqltype.NewResolver().
				Pipe(gqltype.Enum{Env: h.env}, gqltype.DefaultPriorities.Enum).
				Pipe(gqltype.Native{}, gqltype.DefaultPriorities.Native).
				Pipe(gqltype.Attribute{Env: h.env}, gqltype.DefaultPriorities.Attribute)
			Expect(h.types.Len()).Should(Equal(3))

			h.reader.
				DeclareClass(nodeType, metadata.InterfaceType{}).
				DeclareMethod(nodeType, "ID", metadata.Field{Name: "id", Type: "ID!"}).
				DeclareClass(petType, metadata.UnionType{}).
				DeclareClass(catType, metadata.ObjectType{}).
				DeclareMethod(catType, "ID", metadata.Field{Name: "id", Type: "ID!"}).
				DeclareClass(dogType, metadata.ObjectType{}).
				DeclareMethod(dogType, "ID", metadata.Field{Name: "id", Type: "ID!"}).
				DeclareClass(filterType, metadata.InputType{}).
				DeclareClass(queryType, metadata.ObjectType{}).
				DeclareMethod(queryType, "Favorite", metadata.Field{}).
				DeclareMethod(queryType, "Pets", metadata.Field{}).
				DeclareMethod(queryType, "Nodes", metadata.Field{}).
				DeclareMethod(queryType, "Paint", metadata.Field{Args: []string{"filter"}})

			h.register(colorType)
			h.register(nodeType)
			cat := h.register(catType)
			dog := h.register(dogType)
			h.register(petType)
			h.register(filterType)
			query := h.register(queryType)

			_, err := h.types.Resolve(&definition.ObjectConfig{Name: "Stats"})
			Expect(err).Should(testutil.HaveErrKind(gqlerr.ErrKindCantResolveGraphQLType))

			schema, err := graphql.NewSchema(graphql.SchemaConfig{
				Query: query.(*graphql.Object),
				Types: []graphql.Type{cat, dog},
			})
			Expect(err).ShouldNot(HaveOccurred())

			result := graphql.Do(graphql.Params{
				Schema: schema,
				RequestString: `{
					favorite
					pets { __typename ... on Cat { lives } }
					nodes { id }
					paint(filter: { colors: [GREEN], prefix: "y" })
				}`,
			})
			Expect(result.Errors).Should(BeEmpty())
			Expect(result.Data).Should(testutil.SerializeToJSONAs(map[string]interface{}{
				"favorite": "GREEN",
				"pets": []interface{}{
					map[string]interface{}{"__typename": "Cat", "lives": 9},
					map[string]interface{}{"__typename": "Dog"},
				},
				"nodes": []interface{}{
					map[string]interface{}{"id": "cat:Tom"},
					map[string]interface{}{"id": "dog:Rex"},
				},
				"paint": "y:GREEN",
			}))
		})
	})

	Describe("Definition", func() {
		It("creates types from definition objects", func() {
			square := h.register(&definition.ObjectConfig{
				Name:       "Square",
				Interfaces: []interface{}{"Shape"},
				Fields: []interface{}{
					&definition.Field{
						Name: "area",
						Type: "Float!",
						Resolve: func(p graphql.ResolveParams) (interface{}, error) {
							side := p.Source.(map[string]interface{})["side"].(float64)
							return math.Pow(side, 2), nil
						},
					},
				},
			})
			h.register(&ShapeDef{})
			query := h.register(&definition.ObjectConfig{
				Name: "Query",
				Fields: []interface{}{
					&definition.Field{
						Name: "shape",
						Type: "Shape",
						Resolve: func(p graphql.ResolveParams) (interface{}, error) {
							return map[string]interface{}{"side": 3.0}, nil
						},
					},
				},
			})

			schema, err := graphql.NewSchema(graphql.SchemaConfig{
				Query: query.(*graphql.Object),
				Types: []graphql.Type{square},
			})
			Expect(err).ShouldNot(HaveOccurred())

			result := graphql.Do(graphql.Params{
				Schema:        schema,
				RequestString: `{ shape { __typename area } }`,
			})
			Expect(result.Errors).Should(BeEmpty())
			Expect(result.Data).Should(testutil.SerializeToJSONAs(map[string]interface{}{
				"shape": map[string]interface{}{"__typename": "Square", "area": 9},
			}))
		})

		It("creates enums from definitions", func() {
			t, err := h.types.Resolve(&definition.EnumConfig{
				Name: "Level",
				Values: []definition.EnumValue{
					{Name: "LOW", Value: 1},
					{Name: "HIGH", DeprecationReason: "Too high"},
				},
			})
			Expect(err).ShouldNot(HaveOccurred())
			enum := t.(*graphql.Enum)
			Expect(enumValue(enum, "LOW").Value).Should(Equal(1))
			Expect(enumValue(enum, "HIGH").Value).Should(Equal("HIGH"))
			Expect(enumValue(enum, "HIGH").DeprecationReason).Should(Equal("Too high"))
		})

		It("resolves union members lazily", func() {
			union := h.register(&definition.UnionConfig{
				Name:  "Result",
				Types: []interface{}{"Square"},
			}).(*graphql.Union)

			h.register(&definition.ObjectConfig{
				Name:   "Square",
				Fields: []interface{}{&definition.Field{Name: "side", Type: "Float"}},
			})

			Expect(union.Types()).Should(HaveLen(1))
			Expect(union.Types()[0].Name()).Should(Equal("Square"))
		})

		It("panics from the types thunk when a union has no member", func() {
			union := h.register(&definition.UnionConfig{Name: "Nothing"}).(*graphql.Union)

			r := recovered(func() {
				union.Types()
			})
			Expect(r).Should(testutil.HaveErrKind(gqlerr.ErrKindInvalidMetadata))
		})

		It("takes definitions from the container", func() {
			t, err := h.types.Resolve(reflect.TypeOf(StatsDef{}))
			Expect(err).ShouldNot(HaveOccurred())
			Expect(t.Name()).Should(Equal("Stats"))
		})
	})

	Describe("Priorities", func() {
		It("lets the middleware with the highest priority decide", func() {
			h.reader.DeclareClass(hybridType, metadata.ObjectType{Name: "FromMarker"})

			t, err := h.types.Resolve(hybridType)
			Expect(err).ShouldNot(HaveOccurred())
			Expect(t.Name()).Should(Equal("FromMarker"))

			priorities := gqltype.DefaultPriorities
			priorities.Definition = priorities.Attribute + 1
			types := gqltype.Install(gqltype.NewResolver(), h.env, priorities)

			t, err = types.Resolve(hybridType)
			Expect(err).ShouldNot(HaveOccurred())
			Expect(t.Name()).Should(Equal("FromDefinition"))
		})

		It("never invokes lower priorities once an input is accepted", func() {
			var calls int
			spy := pipeline.Func[graphql.Type](func(input interface{}, next pipeline.Next[graphql.Type]) (graphql.Type, error) {
				calls++
				return next.Resolve(input)
			})

			types := gqltype.NewResolver().
				Pipe(gqltype.Enum{Env: h.env}, 400).
				Pipe(spy, 50)

			_, err := types.Resolve(colorType)
			Expect(err).ShouldNot(HaveOccurred())
			Expect(calls).Should(Equal(0))

			_, err = types.Resolve(catType)
			Expect(err).Should(HaveOccurred())
			Expect(calls).Should(Equal(1))
		})
	})

	It("fails with CantResolveGraphQLType when no middleware accepts the input", func() {
		_, err := h.types.Resolve(reflect.TypeOf(Plain{}))
		Expect(err).Should(testutil.HaveErrKind(gqlerr.ErrKindCantResolveGraphQLType))

		_, err = h.types.Resolve(42)
		Expect(err).Should(testutil.HaveErrKind(gqlerr.ErrKindCantResolveGraphQLType))
	})
})

var _ = Describe("LiteralValue", func() {
	It("converts literals into variable values", func() {
		literal := &ast.ObjectValue{
			Fields: []*ast.ObjectField{
				{Name: &ast.Name{Value: "int"}, Value: &ast.IntValue{Value: "3"}},
				{Name: &ast.Name{Value: "float"}, Value: &ast.FloatValue{Value: "1.5"}},
				{Name: &ast.Name{Value: "string"}, Value: &ast.StringValue{Value: "s"}},
				{Name: &ast.Name{Value: "bool"}, Value: &ast.BooleanValue{Value: true}},
				{Name: &ast.Name{Value: "enum"}, Value: &ast.EnumValue{Value: "RED"}},
				{Name: &ast.Name{Value: "list"}, Value: &ast.ListValue{
					Values: []ast.Value{&ast.IntValue{Value: "1"}, &ast.IntValue{Value: "2"}},
				}},
			},
		}

		Expect(gqltype.LiteralValue(literal)).Should(Equal(map[string]interface{}{
			"int":    3,
			"float":  1.5,
			"string": "s",
			"bool":   true,
			"enum":   "RED",
			"list":   []interface{}{1, 2},
		}))
	})

	It("yields nil for variables and malformed numbers", func() {
		Expect(gqltype.LiteralValue(&ast.Variable{})).Should(BeNil())
		Expect(gqltype.LiteralValue(&ast.IntValue{Value: "x"})).Should(BeNil())
	})
})
