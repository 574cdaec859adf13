package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDescribe_QuestionInput(t *testing.T) {
	s := Describe(QuestionInput{})

	assert.Equal(t, "QuestionInput", s.Name)
	require.Len(t, s.Fields, 2)
	assert.Equal(t, "id", s.Fields[0].Name)
	assert.Equal(t, "questionText", s.Fields[1].Name)

	id, ok := s.Field("id")
	require.True(t, ok)
	assert.Equal(t, "integer", id.Type)
	assert.Equal(t, "int64", id.Format)
	assert.True(t, id.Nullable)
	assert.False(t, id.Required)
	assert.Empty(t, id.Constraints)

	text, ok := s.Field("questionText")
	require.True(t, ok)
	assert.Equal(t, "string", text.Type)
	assert.True(t, text.Required)
	assert.Equal(t, []string{"required", "notblank"}, text.Constraints)
	assert.Equal(t, "What is this?", text.Example)
	assert.NotEmpty(t, text.Description)
}

func TestDescribe_OutputShapes(t *testing.T) {
	s := Describe(&ContentAccessRecord{})
	assert.Equal(t, "ContentAccessRecord", s.Name)

	names := make([]string, 0, len(s.Fields))
	for _, f := range s.Fields {
		names = append(names, f.Name)
		assert.NotEmpty(t, f.Description, f.Name)
		assert.NotEmpty(t, f.Example, f.Name)
		assert.False(t, f.Required, f.Name)
	}
	assert.Equal(t, []string{"noteId", "noteTitle", "accessedAt"}, names)

	at, _ := s.Field("accessedAt")
	assert.Equal(t, "string", at.Type)
	assert.Equal(t, "date-time", at.Format)

	img, ok := Describe(ImageUploadResult{}).Field("imageUrl")
	require.True(t, ok)
	assert.Equal(t, "uri", img.Format)

	_, ok = Describe(ArchivedSummary{}).Field("missing")
	assert.False(t, ok)
}

func TestDescribe_NonStruct(t *testing.T) {
	assert.Equal(t, Schema{}, Describe(3))
	assert.Equal(t, Schema{}, Describe(nil))
}

func TestSchemas(t *testing.T) {
	all := Schemas()

	names := make([]string, 0, len(all))
	for _, s := range all {
		names = append(names, s.Name)
	}
	assert.Equal(t, []string{"ArchivedSummary", "ContentAccessRecord", "ImageUploadResult", "QuestionInput"}, names)
}

func TestLookup(t *testing.T) {
	s, ok := Lookup("ArchivedSummary")
	require.True(t, ok)
	assert.Len(t, s.Fields, 5)

	// Mutating a returned copy leaves the registry untouched.
	q, _ := Lookup("QuestionInput")
	q.Fields[1].Constraints[0] = "changed"
	q.Fields[0].Name = "changed"
	again, _ := Lookup("QuestionInput")
	assert.Equal(t, "id", again.Fields[0].Name)
	assert.Equal(t, "required", again.Fields[1].Constraints[0])

	_, ok = Lookup("Nope")
	assert.False(t, ok)
}
