// File: adf/document_test.go
package adf

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestDocumentSetGet tests path round-trips
func TestDocumentSetGet(t *testing.T) {
	tests := []struct {
		name  string
		path  string
		value Value
	}{
		{"TopLevel", "name", String("test")},
		{"Nested", "server.host", String("localhost")},
		{"DeepNested", "a.b.c.d", Integer(1)},
		{"ArrayValue", "tags", Array(String("x"), String("y"))},
		{"QuotedSegment", `servers."eu.west".host`, String("10.0.0.1")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := NewDocument()
			require.NoError(t, doc.Set(tt.path, tt.value))

			got, found := doc.Get(tt.path)
			require.True(t, found)
			assert.True(t, tt.value.Equal(got))
		})
	}
}

// TestDocumentGetMisses tests absent paths and non-object intermediates
func TestDocumentGetMisses(t *testing.T) {
	doc := NewDocument()
	require.NoError(t, doc.Set("a.b", Integer(1)))

	_, found := doc.Get("a.c")
	assert.False(t, found)

	_, found = doc.Get("a.b.c")
	assert.False(t, found)

	_, found = doc.Get("missing")
	assert.False(t, found)
}

// TestDocumentEmptyPath tests whole-root access and replacement
func TestDocumentEmptyPath(t *testing.T) {
	doc := NewDocument()
	require.NoError(t, doc.Set("x", Integer(1)))

	root, found := doc.Get("")
	require.True(t, found)
	obj, ok := root.AsObject()
	require.True(t, ok)
	assert.Contains(t, obj, "x")

	require.NoError(t, doc.Set("", Object(map[string]Value{"y": Integer(2)})))
	_, found = doc.Get("x")
	assert.False(t, found)
	assert.Equal(t, Integer(2), mustGet(t, doc, "y"))

	// Non-object values do not replace the root
	require.NoError(t, doc.Set("", Integer(3)))
	assert.Equal(t, Integer(2), mustGet(t, doc, "y"))
}

// TestDocumentSetConflict tests the intermediate-segment type guard
func TestDocumentSetConflict(t *testing.T) {
	doc := NewDocument()
	require.NoError(t, doc.Set("a", Integer(1)))

	err := doc.Set("a.b", Integer(2))
	require.Error(t, err)

	var valErr *ValidationError
	require.ErrorAs(t, err, &valErr)
	assert.Equal(t, "a.b", valErr.Path)
	assert.Contains(t, valErr.Message, `"a" is not an object`)

	// The failed write must not have clobbered the scalar
	assert.Equal(t, Integer(1), mustGet(t, doc, "a"))
}

// TestDeepMerge tests the object merge algorithm
func TestDeepMerge(t *testing.T) {
	t.Run("NestedObjectsRecurse", func(t *testing.T) {
		base := map[string]Value{
			"server": Object(map[string]Value{"host": String("localhost"), "port": Integer(8080)}),
			"name":   String("base"),
		}
		overlay := map[string]Value{
			"server": Object(map[string]Value{"port": Integer(9090)}),
			"extra":  Boolean(true),
		}

		merged := deepMergeObjects(base, overlay)
		server := merged["server"].objectRef()
		assert.Equal(t, String("localhost"), server["host"])
		assert.Equal(t, Integer(9090), server["port"])
		assert.Equal(t, String("base"), merged["name"])
		assert.Equal(t, Boolean(true), merged["extra"])
	})

	t.Run("ArraysReplaceWholesale", func(t *testing.T) {
		base := map[string]Value{"tags": Array(String("a"), String("b"))}
		overlay := map[string]Value{"tags": Array(String("c"))}

		merged := deepMergeObjects(base, overlay)
		assert.True(t, Array(String("c")).Equal(merged["tags"]))
	})

	t.Run("EmptyOverlayIsIdentity", func(t *testing.T) {
		base := map[string]Value{"a": Integer(1), "b": Object(map[string]Value{"c": Integer(2)})}
		merged := deepMergeObjects(base, map[string]Value{})
		assert.True(t, Object(base).Equal(Object(merged)))
	})

	t.Run("MergingTwiceEqualsMergingOnce", func(t *testing.T) {
		base := map[string]Value{"a": Integer(1)}
		overlay := map[string]Value{"a": Integer(2), "b": Array(Integer(3))}

		once := deepMergeObjects(base, overlay)
		twice := deepMergeObjects(once, overlay)
		assert.True(t, Object(once).Equal(Object(twice)))
	})
}

// TestDocumentMerge tests whole-document merge
func TestDocumentMerge(t *testing.T) {
	a, err := Parse("# config:\nname = App\n")
	require.NoError(t, err)
	b, err := Parse("# config:\nversion = 2\n\nextras:\nnote = kept out\n")
	require.NoError(t, err)

	a.Merge(b)
	assert.Equal(t, String("App"), mustGet(t, a, "config.name"))
	assert.Equal(t, Integer(2), mustGet(t, a, "config.version"))

	// Relative sections never cross documents
	assert.Empty(t, a.RelativeSections())
}

// TestDocumentMergeAtPath tests merge-or-set behavior
func TestDocumentMergeAtPath(t *testing.T) {
	t.Run("BothObjectsMerge", func(t *testing.T) {
		doc := NewDocument()
		require.NoError(t, doc.Set("cfg", Object(map[string]Value{"a": Integer(1)})))
		require.NoError(t, doc.MergeAtPath("cfg", Object(map[string]Value{"b": Integer(2)})))

		assert.Equal(t, Integer(1), mustGet(t, doc, "cfg.a"))
		assert.Equal(t, Integer(2), mustGet(t, doc, "cfg.b"))
	})

	t.Run("ScalarBehavesLikeSet", func(t *testing.T) {
		doc := NewDocument()
		require.NoError(t, doc.Set("x", Integer(1)))
		require.NoError(t, doc.MergeAtPath("x", String("replaced")))
		assert.Equal(t, String("replaced"), mustGet(t, doc, "x"))
	})

	t.Run("MissingBehavesLikeSet", func(t *testing.T) {
		doc := NewDocument()
		require.NoError(t, doc.MergeAtPath("fresh", Integer(9)))
		assert.Equal(t, Integer(9), mustGet(t, doc, "fresh"))
	})
}

// TestDocumentRelativeSections tests the side-channel operations
func TestDocumentRelativeSections(t *testing.T) {
	doc := NewDocument()
	require.NoError(t, doc.AddRelativeSection("a.b", Integer(1)))
	require.NoError(t, doc.AddRelativeSection("a.b", Integer(2)))

	outer, ok := doc.RelativeSections()["a"].AsObject()
	require.True(t, ok)
	assert.Equal(t, Integer(2), outer["b"])

	// Root tree stays untouched
	assert.Empty(t, doc.AsMap())
}

// TestDocumentIntoMap tests detaching the root
func TestDocumentIntoMap(t *testing.T) {
	doc := NewDocument()
	require.NoError(t, doc.Set("k", String("v")))

	root := doc.IntoMap()
	assert.Contains(t, root, "k")
	assert.Empty(t, doc.AsMap())
}

// TestParsePath tests quoted-segment path splitting
func TestParsePath(t *testing.T) {
	tests := []struct {
		name     string
		path     string
		expected []string
	}{
		{"Simple", "a.b.c", []string{"a", "b", "c"}},
		{"Single", "key", []string{"key"}},
		{"QuotedDot", `servers."eu.west".host`, []string{"servers", "eu.west", "host"}},
		{"QuotedOnly", `"a.b"`, []string{"a.b"}},
		{"EmptySegmentsDropped", "a..b", []string{"a", "b"}},
		{"Empty", "", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, parsePath(tt.path))
		})
	}
}

// TestDocumentTypedGetters tests the convenience accessors
func TestDocumentTypedGetters(t *testing.T) {
	doc, err := Parse("# c:\nport = 8080\nratio = 0.5\nname = app\non = true\ncount = \"12\"\n")
	require.NoError(t, err)

	port, err := doc.GetInt("c.port")
	require.NoError(t, err)
	assert.Equal(t, int64(8080), port)

	ratio, err := doc.GetFloat("c.ratio")
	require.NoError(t, err)
	assert.Equal(t, 0.5, ratio)

	name, err := doc.GetString("c.name")
	require.NoError(t, err)
	assert.Equal(t, "app", name)

	on, err := doc.GetBool("c.on")
	require.NoError(t, err)
	assert.True(t, on)

	// Cross-type conversions
	asString, err := doc.GetString("c.port")
	require.NoError(t, err)
	assert.Equal(t, "8080", asString)

	asFloat, err := doc.GetFloat("c.port")
	require.NoError(t, err)
	assert.Equal(t, 8080.0, asFloat)

	_, err = doc.GetInt("c.name")
	assert.Error(t, err)

	_, err = doc.GetInt("c.missing")
	assert.Error(t, err)
}
