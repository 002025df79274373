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

package schema_test

import (
	"errors"
	"fmt"
	"reflect"
	"sort"
	"strings"
	"time"

	"github.com/botobag/gqlreflect/config"
	"github.com/botobag/gqlreflect/container"
	"github.com/botobag/gqlreflect/definition"
	"github.com/botobag/gqlreflect/gqlerr"
	"github.com/botobag/gqlreflect/internal/testutil"
	"github.com/botobag/gqlreflect/metadata"
	"github.com/botobag/gqlreflect/pipeline"
	"github.com/botobag/gqlreflect/schema"

	"github.com/graphql-go/graphql"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

type Genre int

const (
	Fiction Genre = iota
	Science
)

func (g Genre) String() string {
	return [...]string{"FICTION", "SCIENCE"}[g]
}

func (Genre) Cases() []interface{} {
	return []interface{}{Fiction, Science}
}

type Node interface {
	NodeID() string
}

type SearchResult interface {
	NodeID() string
}

type Author struct {
	ID   string `gql:"id,type=ID!"`
	Name string `gql:""`
}

func (a *Author) NodeID() string { return a.ID }

type Book struct {
	ID        string    `gql:"id,type=ID!"`
	Title     string    `gql:""`
	Genre     Genre     `gql:""`
	Published time.Time `gql:""`
	author    *Author
}

func (b *Book) NodeID() string { return b.ID }

func (b *Book) Author() *Author { return b.author }

type BookInput struct {
	Title    string `gqlinput:""`
	Genre    Genre  `gqlinput:""`
	AuthorID string `gqlinput:"authorId,type=ID!"`
}

type store struct {
	authors map[string]*Author
	books   []*Book
}

func newStore() *store {
	herbert := &Author{ID: "a1", Name: "Frank Herbert"}
	return &store{
		authors: map[string]*Author{"a1": herbert},
		books: []*Book{{
			ID:        "b1",
			Title:     "Dune",
			Genre:     Fiction,
			Published: time.Date(1965, 8, 1, 0, 0, 0, 0, time.UTC),
			author:    herbert,
		}},
	}
}

type Query struct {
	store *store
}

func (q *Query) Books(first int) []*Book {
	if first > len(q.store.books) {
		first = len(q.store.books)
	}
	return q.store.books[:first]
}

func (q *Query) Node(id string) (Node, error) {
	if author, ok := q.store.authors[id]; ok {
		return author, nil
	}
	for _, book := range q.store.books {
		if book.ID == id {
			return book, nil
		}
	}
	return nil, fmt.Errorf("no node %s", id)
}

func (q *Query) Search(text string) []SearchResult {
	var result []SearchResult
	for _, author := range q.store.authors {
		if strings.Contains(author.Name, text) {
			result = append(result, author)
		}
	}
	for _, book := range q.store.books {
		if strings.Contains(book.Title, text) {
			result = append(result, book)
		}
	}
	return result
}

type Mutation struct {
	store *store
}

func (m *Mutation) AddBook(input BookInput) (*Book, error) {
	author, ok := m.store.authors[input.AuthorID]
	if !ok {
		return nil, errors.New("unknown author")
	}
	book := &Book{
		ID:     fmt.Sprintf("b%d", len(m.store.books)+1),
		Title:  input.Title,
		Genre:  input.Genre,
		author: author,
	}
	m.store.books = append(m.store.books, book)
	return book, nil
}

type Counter struct {
	PageCount int `gql:""`
}

var (
	genreType     = reflect.TypeOf(Fiction)
	nodeType      = reflect.TypeOf((*Node)(nil)).Elem()
	searchType    = reflect.TypeOf((*SearchResult)(nil)).Elem()
	authorType    = reflect.TypeOf(Author{})
	bookType      = reflect.TypeOf(Book{})
	bookInputType = reflect.TypeOf(BookInput{})
	queryType     = reflect.TypeOf(Query{})
	mutationType  = reflect.TypeOf(Mutation{})
	timeType      = reflect.TypeOf(time.Time{})
)

const declarations = `
types:
  - class: Node
    interface: {description: An object with an ID}
    methods:
      NodeID:
        field: {name: id, type: "ID!"}
  - class: SearchResult
    union: {types: [Author, Book]}
  - class: Author
    object: {}
  - class: Book
    object: {}
    methods:
      Author:
        field: {}
  - class: BookInput
    input: {}
  - class: Query
    object: {}
    methods:
      Books:
        field: {args: [first]}
        parameters:
          - {defaultValue: 10}
      Node:
        field: {args: [id]}
        parameters:
          - {type: "ID!"}
      Search:
        field: {args: [text]}
  - class: Mutation
    object: {}
    methods:
      AddBook:
        field: {args: [input]}
`

// dateTime maps time.Time to the DateTime scalar of the engine.
var dateTime = pipeline.Func[graphql.Type](func(input interface{}, next pipeline.Next[graphql.Type]) (graphql.Type, error) {
	if input == timeType {
		return graphql.DateTime, nil
	}
	return next.Resolve(input)
})

var _ = Describe("Builder", func() {
	var (
		reader *metadata.Declarations
		data   *store
		logs   *observer.ObservedLogs
		b      *schema.Builder
	)

	BeforeEach(func() {
		reader = metadata.NewDeclarations()
		Expect(reader.LoadYAML(strings.NewReader(declarations),
			nodeType, searchType, authorType, bookType, bookInputType, queryType, mutationType,
		)).Should(Succeed())

		data = newStore()
		c := container.New().
			Set(queryType, &Query{store: data}).
			Set(mutationType, &Mutation{store: data})

		var core zapcore.Core
		core, logs = observer.New(zapcore.InfoLevel)

		var err error
		b, err = schema.New(
			schema.WithReader(reader),
			schema.WithContainer(c),
			schema.WithLogger(zap.New(core)),
		)
		Expect(err).ShouldNot(HaveOccurred())
		b.Types().Pipe(dateTime, 1000)
	})

	build := func() graphql.Schema {
		Expect(b.Register(
			timeType, genreType, nodeType, authorType, bookType, searchType, bookInputType,
		)).Should(Succeed())

		s, err := b.Build(schema.Roots{
			Query:    queryType,
			Mutation: mutationType,
		})
		Expect(err).ShouldNot(HaveOccurred())
		return s
	}

	It("builds a schema from Go types", func() {
		s := build()

		Expect(s.QueryType().Name()).Should(Equal("Query"))
		Expect(s.MutationType().Name()).Should(Equal("Mutation"))

		var implementations []string
		for _, object := range s.PossibleTypes(s.Type("Node").(*graphql.Interface)) {
			implementations = append(implementations, object.Name())
		}
		sort.Strings(implementations)
		Expect(implementations).Should(Equal([]string{"Author", "Book"}))

		books := s.QueryType().Fields()["books"]
		Expect(books.Type.String()).Should(Equal("[Book]!"))
		Expect(books.Args).Should(HaveLen(1))
		Expect(books.Args[0].Type).Should(Equal(graphql.Int))
		Expect(books.Args[0].DefaultValue).Should(Equal(10))

		Expect(logs.FilterMessage("schema built").Len()).Should(Equal(1))
	})

	It("executes queries", func() {
		s := build()

		result := graphql.Do(graphql.Params{
			Schema: s,
			RequestString: `{
				books { id title genre published author { name } }
				node(id: "a1") { __typename id ... on Author { name } }
				search(text: "Dune") { __typename ... on Book { title } }
			}`,
		})
		Expect(result.Errors).Should(BeEmpty())
		Expect(result.Data).Should(testutil.SerializeToJSONAs(map[string]interface{}{
			"books": []interface{}{
				map[string]interface{}{
					"id":        "b1",
					"title":     "Dune",
					"genre":     "FICTION",
					"published": "1965-08-01T00:00:00Z",
					"author":    map[string]interface{}{"name": "Frank Herbert"},
				},
			},
			"node": map[string]interface{}{
				"__typename": "Author",
				"id":         "a1",
				"name":       "Frank Herbert",
			},
			"search": []interface{}{
				map[string]interface{}{"__typename": "Book", "title": "Dune"},
			},
		}))
	})

	It("applies argument defaults when queries omit them", func() {
		s := build()

		result := graphql.Do(graphql.Params{
			Schema:        s,
			RequestString: `{ all: books { id } none: books(first: 0) { id } }`,
		})
		Expect(result.Errors).Should(BeEmpty())
		Expect(result.Data).Should(testutil.SerializeToJSONAs(map[string]interface{}{
			"all":  []interface{}{map[string]interface{}{"id": "b1"}},
			"none": []interface{}{},
		}))
	})

	It("executes mutations with input objects", func() {
		s := build()

		result := graphql.Do(graphql.Params{
			Schema: s,
			RequestString: `mutation {
				addBook(input: { title: "Children of Dune", genre: SCIENCE, authorId: "a1" }) {
					id title genre author { name }
				}
			}`,
		})
		Expect(result.Errors).Should(BeEmpty())
		Expect(result.Data).Should(testutil.SerializeToJSONAs(map[string]interface{}{
			"addBook": map[string]interface{}{
				"id":     "b2",
				"title":  "Children of Dune",
				"genre":  "SCIENCE",
				"author": map[string]interface{}{"name": "Frank Herbert"},
			},
		}))
		Expect(data.books).Should(HaveLen(2))

		result = graphql.Do(graphql.Params{
			Schema: s,
			RequestString: `mutation ($input: BookInput!) {
				addBook(input: $input) { id }
			}`,
			VariableValues: map[string]interface{}{
				"input": map[string]interface{}{"title": "Emma", "genre": "FICTION", "authorId": "a9"},
			},
		})
		Expect(result.Errors).Should(HaveLen(1))
		Expect(result.Errors[0].Message).Should(Equal("unknown author"))
	})

	It("seals the registry", func() {
		build()

		err := b.Register(&definition.EnumConfig{
			Name:   "Late",
			Values: []definition.EnumValue{{Name: "LATE"}},
		})
		Expect(err).Should(testutil.HaveErrKind(gqlerr.ErrKindSealed))
	})

	It("resolves roots by name", func() {
		Expect(b.Register(timeType, genreType, nodeType, authorType, bookType, searchType, queryType)).Should(Succeed())

		s, err := b.Build(schema.Roots{Query: "Query"})
		Expect(err).ShouldNot(HaveOccurred())
		Expect(s.MutationType()).Should(BeNil())
	})

	It("requires a query type", func() {
		_, err := b.Build(schema.Roots{})
		Expect(err).Should(testutil.HaveErrKind(gqlerr.ErrKindCantResolveGraphQLType))

		_, err = b.Build(schema.Roots{Query: graphql.String})
		Expect(err).Should(testutil.MatchError(
			testutil.MessageContainSubstring("is not an object type"),
		))
	})

	It("returns failures raised while the engine evaluates thunks", func() {
		Expect(b.Register(
			&definition.UnionConfig{Name: "Nothing"},
			&definition.ObjectConfig{
				Name:   "Query",
				Fields: []interface{}{&definition.Field{Name: "nothing", Type: "Nothing"}},
			},
		)).Should(Succeed())

		_, err := b.Build(schema.Roots{Query: "Query"})
		Expect(err).Should(testutil.HaveErrKind(gqlerr.ErrKindInvalidMetadata))
		Expect(err.Error()).Should(ContainSubstring("union Nothing has no member"))
	})

	It("rejects declarations of missing members", func() {
		reader.DeclareMethod(queryType, "Missing", metadata.Field{})

		_, err := b.Build(schema.Roots{Query: queryType})
		Expect(err).Should(testutil.MatchError(
			testutil.KindIs(gqlerr.ErrKindInvalidMetadata),
			testutil.MessageContainSubstring("has no exported method Missing"),
		))
	})
})

var _ = Describe("Builder configuration", func() {
	It("names reflected members with the configured strategy", func() {
		c := config.Default()
		c.Naming = "snake"

		reader := metadata.NewDeclarations()
		reader.DeclareClass(reflect.TypeOf(Counter{}), metadata.ObjectType{Name: "Query"})
		b, err := schema.New(schema.WithConfig(c), schema.WithReader(reader))
		Expect(err).ShouldNot(HaveOccurred())

		s, err := b.Build(schema.Roots{Query: reflect.TypeOf(Counter{})})
		Expect(err).ShouldNot(HaveOccurred())
		Expect(s.QueryType().Fields()).Should(HaveKey("page_count"))
	})

	It("rejects unknown naming strategies", func() {
		c := config.Default()
		c.Naming = "kebab"

		_, err := schema.New(schema.WithConfig(c))
		Expect(err).Should(HaveOccurred())
	})
})
