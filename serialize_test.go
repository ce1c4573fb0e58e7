// File: adf/serialize_test.go
package adf

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestSerializeSections tests the rendered section forms
func TestSerializeSections(t *testing.T) {
	t.Run("PlainObject", func(t *testing.T) {
		doc, err := Parse("# person:\nname = Matthew\nage = 54\n")
		require.NoError(t, err)

		out := doc.Serialize()
		assert.Contains(t, out, "# person:")
		assert.Contains(t, out, "age = 54")
		assert.Contains(t, out, "name = Matthew")
	})

	t.Run("ScalarArray", func(t *testing.T) {
		doc, err := Parse("# hobbies:\nreading\nphysics\n")
		require.NoError(t, err)

		out := doc.Serialize()
		assert.Contains(t, out, "# hobbies:\nreading\nphysics")
	})

	t.Run("ObjectArrayBlankSeparated", func(t *testing.T) {
		doc, err := Parse("# users:\n\nname = Alice\n\nname = Bob\n")
		require.NoError(t, err)

		out := doc.Serialize()
		assert.Contains(t, out, "name = Alice\n\nname = Bob")
	})

	t.Run("NestedObjectsGetDottedHeaders", func(t *testing.T) {
		doc := NewDocument()
		require.NoError(t, doc.Set("server.tls.cert", String("a.pem")))

		out := doc.Serialize()
		assert.Contains(t, out, "# server.tls:")
		assert.Contains(t, out, "cert = a.pem")
	})

	t.Run("MultilineFencing", func(t *testing.T) {
		doc := NewDocument()
		require.NoError(t, doc.Set("article.body", String("one\ntwo")))

		out := doc.Serialize()
		assert.Contains(t, out, "body = \"\"\"\none\ntwo\n\"\"\"")
	})

	t.Run("MixedScalarsShareParentSection", func(t *testing.T) {
		doc := NewDocument()
		require.NoError(t, doc.Set("server.host", String("localhost")))
		require.NoError(t, doc.Set("server.tls.cert", String("a.pem")))

		out := doc.Serialize()
		assert.Contains(t, out, "# server:\nhost = localhost")
		assert.Contains(t, out, "# server.tls:\ncert = a.pem")

		reparsed, err := Parse(out)
		require.NoError(t, err)
		host := mustGet(t, reparsed, "server.host")
		assert.True(t, host.Equal(String("localhost")))
	})

	t.Run("TopLevelScalarsUseRootSection", func(t *testing.T) {
		doc := NewDocument()
		require.NoError(t, doc.Set("version", Integer(2)))

		out := doc.Serialize()
		assert.Contains(t, out, "#:\nversion = 2")

		reparsed, err := Parse(out)
		require.NoError(t, err)
		v := mustGet(t, reparsed, "version")
		assert.True(t, v.Equal(Integer(2)))
	})

	t.Run("DottedKeyQuotedInHeader", func(t *testing.T) {
		doc, err := Parse("# servers.\"eu.west\":\nhost = h1\n")
		require.NoError(t, err)

		out := doc.Serialize()
		assert.Contains(t, out, `# servers."eu.west":`)

		reparsed, err := Parse(out)
		require.NoError(t, err)
		assert.Equal(t, String("h1"), mustGet(t, reparsed, `servers."eu.west".host`))
	})

	t.Run("SingleElementObjectArrayReparsesAsObject", func(t *testing.T) {
		// One object leaves no interior blank line to mark the array, so
		// the round trip flattens it
		doc := NewDocument()
		require.NoError(t, doc.Set("users", Array(
			Object(map[string]Value{"name": String("Alice")}),
		)))

		reparsed, err := Parse(doc.Serialize())
		require.NoError(t, err)
		assert.True(t, mustGet(t, reparsed, "users").IsObject())
		assert.Equal(t, String("Alice"), mustGet(t, reparsed, "users.name"))
	})

	t.Run("RelativeSectionsFollowWithoutHash", func(t *testing.T) {
		doc, err := Parse("# a:\nx = 1\n\nrel:\ny = 2\n")
		require.NoError(t, err)

		out := doc.Serialize()
		assert.Contains(t, out, "# a:")
		assert.Contains(t, out, "\nrel:\n")
		assert.Less(t, strings.Index(out, "# a:"), strings.Index(out, "rel:"))
	})
}

// TestNeedsQuoting tests the string quoting predicate
func TestNeedsQuoting(t *testing.T) {
	tests := []struct {
		s      string
		quoted bool
	}{
		{"plain", false},
		{"two words", false},
		{"", true},
		{"true", true},
		{"FALSE", true},
		{"42", true},
		{"3.14", true},
		{"1e3", true},
		{"key=value", true},
		{"has (parens)", true},
		{"a:b", true},
		{"#tag", true},
	}

	for _, tt := range tests {
		t.Run(tt.s, func(t *testing.T) {
			assert.Equal(t, tt.quoted, needsQuoting(tt.s))
		})
	}
}

// TestSerializeRoundTrip tests that serialized output re-parses to an
// equivalent document
func TestSerializeRoundTrip(t *testing.T) {
	text := "# app:\nname = demo\nworkers = 4\nratio = 0.25\ndebug = true\n\n" +
		"# hobbies:\nreading\nphysics\ncoding\n\n" +
		"# users:\n\nname = Alice\nage = 22\n\nname = Bob\nage = 30\n\n" +
		"# article:\nbody = \"\"\"\nline one\nline two\n\"\"\"\n"

	doc, err := Parse(text)
	require.NoError(t, err)

	reparsed, err := Parse(doc.Serialize())
	require.NoError(t, err)

	assert.True(t, Object(doc.AsMap()).Equal(Object(reparsed.AsMap())),
		"reparsed document differs:\n%s", doc.Serialize())
}
