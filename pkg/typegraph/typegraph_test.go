package typegraph_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hroi/fraggen/internal/pkg/unsafeparser"
	"github.com/hroi/fraggen/pkg/typegraph"
)

const blogSchema = `
	scalar DateTime

	enum Role {
		ADMIN
		READER
	}

	input PostFilter {
		author: ID
		since: DateTime
	}

	interface Node {
		id: ID!
	}

	type Author implements Node {
		id: ID!
		name: String
		role: Role
	}

	type Post implements Node {
		id: ID!
		title: String @deprecated(reason: "use headline")
		headline: String
		author: Author!
		tags: [String!]!
	}

	union SearchResult = Post | Author

	type Query {
		posts(filter: PostFilter, first: Int): [Post!]!
		search(term: String!): [SearchResult]
	}

	extend type Author {
		posts: [Post]
	}

	extend union SearchResult = Query
`

func typeNames(types []*typegraph.Type) []string {
	out := make([]string, 0, len(types))
	for _, t := range types {
		out = append(out, t.Name)
	}
	return out
}

func fieldNames(fields []typegraph.Field) []string {
	out := make([]string, 0, len(fields))
	for _, f := range fields {
		out = append(out, f.Name)
	}
	return out
}

func TestGraph_AllTypes(t *testing.T) {
	graph := unsafeparser.ParseGraphString(blogSchema)

	types := graph.AllTypes()
	assert.Equal(t, []string{"DateTime", "Role", "PostFilter", "Node", "Author", "Post", "SearchResult", "Query"}, typeNames(types))

	kinds := make([]typegraph.Kind, 0, len(types))
	for _, typ := range types {
		kinds = append(kinds, typ.Kind)
	}
	assert.Equal(t, []typegraph.Kind{
		typegraph.KindScalar,
		typegraph.KindEnum,
		typegraph.KindInputObject,
		typegraph.KindInterface,
		typegraph.KindObject,
		typegraph.KindObject,
		typegraph.KindUnion,
		typegraph.KindObject,
	}, kinds)

	t.Run("returns a copy", func(t *testing.T) {
		types[0] = nil
		assert.NotNil(t, graph.AllTypes()[0])
	})
}

func TestGraph_Lookup(t *testing.T) {
	graph := unsafeparser.ParseGraphString(blogSchema)

	t.Run("declared type", func(t *testing.T) {
		post, err := graph.Lookup("Post")
		require.NoError(t, err)
		assert.Equal(t, "Post", post.Name)
		assert.Equal(t, typegraph.KindObject, post.Kind)
		assert.False(t, post.BuiltIn)
	})

	t.Run("built-in scalar", func(t *testing.T) {
		str, err := graph.Lookup("String")
		require.NoError(t, err)
		assert.Equal(t, typegraph.KindScalar, str.Kind)
		assert.True(t, str.BuiltIn)
	})

	t.Run("unknown type", func(t *testing.T) {
		_, err := graph.Lookup("Comment")
		require.Error(t, err)
		assert.True(t, errors.Is(err, typegraph.ErrUnknownType))
		assert.Equal(t, `unknown type "Comment"`, err.Error())
	})

	t.Run("unknown referenced type", func(t *testing.T) {
		_, err := graph.LookupReferenced("Comment", "Post.comments")
		require.Error(t, err)

		var unknown *typegraph.UnknownTypeError
		require.True(t, errors.As(err, &unknown))
		assert.Equal(t, "Comment", unknown.Name)
		assert.Equal(t, "Post.comments", unknown.Referrer)
		assert.Equal(t, `unknown type "Comment" referenced by Post.comments`, err.Error())
	})
}

func TestGraph_FieldsOf(t *testing.T) {
	graph := unsafeparser.ParseGraphString(blogSchema)

	t.Run("object fields in declaration order with extensions appended", func(t *testing.T) {
		author, err := graph.Lookup("Author")
		require.NoError(t, err)
		fields, err := graph.FieldsOf(author)
		require.NoError(t, err)
		assert.Equal(t, []string{"id", "name", "role", "posts"}, fieldNames(fields))
	})

	t.Run("type references", func(t *testing.T) {
		post, err := graph.Lookup("Post")
		require.NoError(t, err)
		fields, err := graph.FieldsOf(post)
		require.NoError(t, err)
		require.Len(t, fields, 5)

		id := fields[0].Type
		assert.Equal(t, "ID", id.Named)
		assert.True(t, id.NonNull)
		assert.False(t, id.List)
		assert.Equal(t, "ID!", id.String())

		tags := fields[4].Type
		assert.Equal(t, "String", tags.Named)
		assert.True(t, tags.NonNull)
		assert.True(t, tags.List)
		assert.Equal(t, "[String!]!", tags.String())
	})

	t.Run("deprecation is recorded", func(t *testing.T) {
		post, err := graph.Lookup("Post")
		require.NoError(t, err)
		fields, err := graph.FieldsOf(post)
		require.NoError(t, err)
		assert.True(t, fields[1].Deprecated)
		assert.False(t, fields[2].Deprecated)
	})

	t.Run("arguments", func(t *testing.T) {
		query, err := graph.Lookup("Query")
		require.NoError(t, err)
		fields, err := graph.FieldsOf(query)
		require.NoError(t, err)
		assert.Equal(t, []typegraph.Argument{
			{Name: "filter", Type: typegraph.TypeRef{Named: "PostFilter"}},
			{Name: "first", Type: typegraph.TypeRef{Named: "Int"}},
		}, withoutText(fields[0].Arguments))
	})

	t.Run("interface fields", func(t *testing.T) {
		node, err := graph.Lookup("Node")
		require.NoError(t, err)
		fields, err := graph.FieldsOf(node)
		require.NoError(t, err)
		assert.Equal(t, []string{"id"}, fieldNames(fields))
	})

	t.Run("wrong kind", func(t *testing.T) {
		union, err := graph.Lookup("SearchResult")
		require.NoError(t, err)
		_, err = graph.FieldsOf(union)
		assert.True(t, errors.Is(err, typegraph.ErrWrongKind))
	})
}

func withoutText(arguments []typegraph.Argument) []typegraph.Argument {
	out := make([]typegraph.Argument, 0, len(arguments))
	for _, arg := range arguments {
		out = append(out, typegraph.Argument{
			Name: arg.Name,
			Type: typegraph.TypeRef{Named: arg.Type.Named, List: arg.Type.List, NonNull: arg.Type.NonNull},
		})
	}
	return out
}

func TestGraph_MembersOf(t *testing.T) {
	graph := unsafeparser.ParseGraphString(blogSchema)

	union, err := graph.Lookup("SearchResult")
	require.NoError(t, err)
	members, err := graph.MembersOf(union)
	require.NoError(t, err)
	assert.Equal(t, []string{"Post", "Author", "Query"}, members)

	post, err := graph.Lookup("Post")
	require.NoError(t, err)
	_, err = graph.MembersOf(post)
	assert.True(t, errors.Is(err, typegraph.ErrWrongKind))
}

func TestGraph_ImplementorsOf(t *testing.T) {
	graph := unsafeparser.ParseGraphString(blogSchema)

	node, err := graph.Lookup("Node")
	require.NoError(t, err)
	implementors, err := graph.ImplementorsOf(node)
	require.NoError(t, err)
	assert.Equal(t, []string{"Author", "Post"}, implementors)

	post, err := graph.Lookup("Post")
	require.NoError(t, err)
	interfaces, err := graph.InterfacesOf(post)
	require.NoError(t, err)
	assert.Equal(t, []string{"Node"}, interfaces)

	_, err = graph.ImplementorsOf(post)
	assert.True(t, errors.Is(err, typegraph.ErrWrongKind))
}

func TestType_InputFields(t *testing.T) {
	graph := unsafeparser.ParseGraphString(blogSchema)

	filter, err := graph.Lookup("PostFilter")
	require.NoError(t, err)
	assert.Equal(t, []string{"author", "since"}, fieldNames(filter.InputFields()))

	post, err := graph.Lookup("Post")
	require.NoError(t, err)
	assert.Nil(t, post.InputFields())
}

func TestGraph_Unvalidated(t *testing.T) {
	graph := unsafeparser.ParseGraphStringUnvalidated(`
		type Post {
			id: ID
			comments: [Comment]
		}
	`)

	post, err := graph.Lookup("Post")
	require.NoError(t, err)
	fields, err := graph.FieldsOf(post)
	require.NoError(t, err)

	_, err = graph.LookupReferenced(fields[1].Type.Named, "Post.comments")
	assert.True(t, errors.Is(err, typegraph.ErrUnknownType))
}

func TestKind(t *testing.T) {
	assert.True(t, typegraph.KindObject.IsComposite())
	assert.True(t, typegraph.KindInterface.IsComposite())
	assert.True(t, typegraph.KindUnion.IsComposite())
	assert.False(t, typegraph.KindInputObject.IsComposite())
	assert.True(t, typegraph.KindScalar.IsLeaf())
	assert.True(t, typegraph.KindEnum.IsLeaf())
	assert.False(t, typegraph.KindObject.IsLeaf())
	assert.Equal(t, "INPUT_OBJECT", typegraph.KindInputObject.String())
}
