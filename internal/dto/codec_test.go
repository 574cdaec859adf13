package dto

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeQuestionInput(t *testing.T) {
	id := int64(7)

	tests := []struct {
		name       string
		body       string
		want       QuestionInput
		wantFields []string
		wantMsg    string
	}{
		{
			name: "null id",
			body: `{"id": null, "questionText": "What is this?"}`,
			want: QuestionInput{ID: nil, QuestionText: "What is this?"},
		},
		{
			name: "missing id",
			body: `{"questionText": "What is this?"}`,
			want: QuestionInput{QuestionText: "What is this?"},
		},
		{
			name: "present id",
			body: `{"id": 7, "questionText": "Why?"}`,
			want: QuestionInput{ID: &id, QuestionText: "Why?"},
		},
		{
			name: "text is kept untrimmed",
			body: `{"questionText": "  padded  "}`,
			want: QuestionInput{QuestionText: "  padded  "},
		},
		{
			name: "unknown fields are ignored",
			body: `{"questionText": "ok", "extra": true}`,
			want: QuestionInput{QuestionText: "ok"},
		},
		{
			name:       "whitespace text",
			body:       `{"questionText": "   "}`,
			wantFields: []string{"questionText"},
			wantMsg:    "must not be blank",
		},
		{
			name:       "tabs and newlines",
			body:       `{"questionText": "\t\n "}`,
			wantFields: []string{"questionText"},
			wantMsg:    "must not be blank",
		},
		{
			name:       "empty text",
			body:       `{"questionText": ""}`,
			wantFields: []string{"questionText"},
			wantMsg:    "is required",
		},
		{
			name:       "absent text",
			body:       `{"id": 1}`,
			wantFields: []string{"questionText"},
			wantMsg:    "is required",
		},
		{
			name:       "json null body",
			body:       `null`,
			wantFields: []string{"questionText"},
		},
		{
			name:       "malformed json",
			body:       `{"questionText": `,
			wantFields: []string{"body"},
			wantMsg:    "must be a valid JSON object",
		},
		{
			name:       "empty body",
			body:       ``,
			wantFields: []string{"body"},
		},
		{
			name:       "array body",
			body:       `[]`,
			wantFields: []string{"body"},
			wantMsg:    "must be an object",
		},
		{
			name:       "string id",
			body:       `{"id": "abc", "questionText": "x"}`,
			wantFields: []string{"id"},
			wantMsg:    "must be an integer",
		},
		{
			name:       "numeric text",
			body:       `{"questionText": 12}`,
			wantFields: []string{"questionText"},
			wantMsg:    "must be a string",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DecodeQuestionInput([]byte(tt.body))

			if tt.wantFields == nil {
				require.NoError(t, err)
				assert.True(t, tt.want.Equal(got), "got %+v", got)
				assert.Equal(t, tt.want, got)
				return
			}

			require.Error(t, err)
			verrs, ok := AsValidationErrors(err)
			require.True(t, ok, "expected validation errors, got %T", err)
			for _, f := range tt.wantFields {
				assert.True(t, verrs.Has(f), "missing field %q in %v", f, verrs)
			}
			if tt.wantMsg != "" {
				assert.Equal(t, tt.wantMsg, verrs[0].Message)
			}
			assert.Equal(t, QuestionInput{}, got)
		})
	}
}

func TestEncode_ArchivedSummary(t *testing.T) {
	s := ArchivedSummary{
		ID:           1,
		TagText:      "design",
		Title:        "My First Project",
		MainImageURL: "https://cdn/img.jpg",
		Teaser:       "A short note...",
	}

	b, err := Encode(s)
	require.NoError(t, err)
	assert.Equal(t,
		`{"id":1,"tagText":"design","title":"My First Project","mainImageUrl":"https://cdn/img.jpg","teaser":"A short note..."}`,
		string(b))
}

func TestEncode_ImageUploadResult(t *testing.T) {
	b, err := Encode(ImageUploadResult{ImageURL: "https://bucket.s3.region.amazonaws.com/uuid.jpg"})
	require.NoError(t, err)
	assert.Equal(t, `{"imageUrl":"https://bucket.s3.region.amazonaws.com/uuid.jpg"}`, string(b))
}

func TestEncode_ContentAccessRecord(t *testing.T) {
	at := time.Date(2024, 5, 1, 9, 30, 0, 0, time.UTC)
	b, err := Encode(NewContentAccessRecord(42, "My First Project", at))
	require.NoError(t, err)
	assert.Equal(t, `{"noteId":42,"noteTitle":"My First Project","accessedAt":"2024-05-01T09:30:00Z"}`, string(b))
}

func TestEncode_QuestionInputNullID(t *testing.T) {
	b, err := Encode(QuestionInput{QuestionText: "What is this?"})
	require.NoError(t, err)
	assert.Equal(t, `{"id":null,"questionText":"What is this?"}`, string(b))
}

func TestEncode_Deterministic(t *testing.T) {
	values := []any{
		QuestionInput{QuestionText: "q"},
		ArchivedSummary{ID: 3, TagText: "t", Title: "x", MainImageURL: "https://a/b", Teaser: "y"},
		ImageUploadResult{ImageURL: "https://a/b.png"},
		NewContentAccessRecord(1, "n", time.Now()),
		NewPage([]ArchivedSummary{{ID: 1}}, 1),
	}
	for _, v := range values {
		first, err := Encode(v)
		require.NoError(t, err)
		second, err := Encode(v)
		require.NoError(t, err)
		assert.Equal(t, first, second)
	}
}

func TestEncode_SerializationError(t *testing.T) {
	rec := ContentAccessRecord{NoteID: 1, AccessedAt: time.Date(10000, 1, 1, 0, 0, 0, 0, time.UTC)}

	b, err := Encode(rec)

	assert.Nil(t, b)
	var serr *SerializationError
	require.True(t, errors.As(err, &serr))
	assert.Equal(t, "dto.ContentAccessRecord", serr.Type)
	assert.NotNil(t, errors.Unwrap(err))

	_, err = Encode(make(chan int))
	assert.True(t, errors.As(err, &serr))
}

func TestRoundTrip(t *testing.T) {
	local := time.FixedZone("WIB", 7*3600)

	t.Run("archived summary", func(t *testing.T) {
		for _, in := range []ArchivedSummary{
			{},
			{ID: 1, TagText: "design", Title: "My First Project", MainImageURL: "https://cdn/img.jpg", Teaser: "A short note..."},
			{ID: -5, TagText: "ünïcödé", Title: `quotes " and \ slashes`, Teaser: "<b>html</b> & more"},
		} {
			b, err := Encode(in)
			require.NoError(t, err)
			out, err := Decode[ArchivedSummary](b)
			require.NoError(t, err)
			assert.True(t, in == out, "%+v != %+v", in, out)
		}
	})

	t.Run("image upload result", func(t *testing.T) {
		in := ImageUploadResult{ImageURL: "https://bucket.s3.region.amazonaws.com/uuid.jpg?x=1&y=2"}
		b, err := Encode(in)
		require.NoError(t, err)
		out, err := Decode[ImageUploadResult](b)
		require.NoError(t, err)
		assert.True(t, in == out)
	})

	t.Run("content access record", func(t *testing.T) {
		for _, at := range []time.Time{
			time.Now(),
			time.Date(2024, 2, 29, 23, 59, 59, 123456789, local),
			time.Unix(0, 0),
		} {
			in := NewContentAccessRecord(9, "Title", at)
			b, err := Encode(in)
			require.NoError(t, err)
			out, err := Decode[ContentAccessRecord](b)
			require.NoError(t, err)
			assert.True(t, in == out, "%+v != %+v", in, out)
			assert.True(t, in.Equal(out))
		}
	})

	t.Run("question input", func(t *testing.T) {
		id := int64(12)
		in := QuestionInput{ID: &id, QuestionText: "Round trip?"}
		b, err := Encode(in)
		require.NoError(t, err)
		out, err := DecodeQuestionInput(b)
		require.NoError(t, err)
		assert.True(t, in.Equal(out))
	})
}

func TestQuestionInput_Equal(t *testing.T) {
	a, b := int64(1), int64(1)
	c := int64(2)

	assert.True(t, QuestionInput{ID: &a, QuestionText: "x"}.Equal(QuestionInput{ID: &b, QuestionText: "x"}))
	assert.True(t, QuestionInput{QuestionText: "x"}.Equal(QuestionInput{QuestionText: "x"}))
	assert.False(t, QuestionInput{ID: &a, QuestionText: "x"}.Equal(QuestionInput{ID: &c, QuestionText: "x"}))
	assert.False(t, QuestionInput{ID: &a, QuestionText: "x"}.Equal(QuestionInput{QuestionText: "x"}))
	assert.False(t, QuestionInput{QuestionText: "x"}.Equal(QuestionInput{QuestionText: "y"}))
}

func TestNewContentAccessRecord_Normalises(t *testing.T) {
	at := time.Date(2024, 1, 1, 17, 0, 0, 0, time.FixedZone("WIB", 7*3600))

	rec := NewContentAccessRecord(1, "n", at)

	assert.Equal(t, time.UTC, rec.AccessedAt.Location())
	assert.True(t, rec.AccessedAt.Equal(at))
	assert.Equal(t, 10, rec.AccessedAt.Hour())
}

func TestContentAccessRecord_Equality(t *testing.T) {
	literal := ContentAccessRecord{NoteID: 3, NoteTitle: "Kyoto", AccessedAt: time.Now()}

	b, err := Encode(literal)
	require.NoError(t, err)
	decoded, err := Decode[ContentAccessRecord](b)
	require.NoError(t, err)

	// The literal keeps its monotonic reading and local zone; Equal ignores both.
	assert.True(t, literal.Equal(decoded))
	assert.True(t, decoded == NewContentAccessRecord(literal.NoteID, literal.NoteTitle, literal.AccessedAt))
}

func TestDecode_ContentAccessRecordOffsetIsNormalised(t *testing.T) {
	rec, err := Decode[ContentAccessRecord]([]byte(`{"noteId":3,"noteTitle":"Kyoto","accessedAt":"2024-05-01T15:30:00+07:00"}`))
	require.NoError(t, err)

	assert.Equal(t, time.UTC, rec.AccessedAt.Location())
	assert.True(t, rec == NewContentAccessRecord(3, "Kyoto", time.Date(2024, 5, 1, 8, 30, 0, 0, time.UTC)))
}

func TestDecode_ContentAccessRecordTypeError(t *testing.T) {
	_, err := Decode[ContentAccessRecord]([]byte(`{"noteId":"three"}`))

	errs, ok := AsValidationErrors(err)
	require.True(t, ok)
	assert.True(t, errs.Has("noteId"))
}

func TestNewPage(t *testing.T) {
	b, err := Encode(NewPage[ArchivedSummary](nil, 0))
	require.NoError(t, err)
	assert.Equal(t, `{"data":[],"total":0}`, string(b))
}
