package docs

import (
	"encoding/json"
	"fmt"
	"testing"

	"noteapi/internal/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type definition struct {
	Required   []string                  `json:"required"`
	Properties map[string]map[string]any `json:"properties"`
}

func TestDefinitionsMatchWireSchemas(t *testing.T) {
	var doc struct {
		Info        map[string]any        `json:"info"`
		Paths       map[string]any        `json:"paths"`
		Definitions map[string]definition `json:"definitions"`
	}
	require.NoError(t, json.Unmarshal([]byte(SwaggerInfo.ReadDoc()), &doc))
	assert.Equal(t, "Note API", doc.Info["title"])

	for _, s := range dto.Schemas() {
		t.Run(s.Name, func(t *testing.T) {
			def, ok := doc.Definitions["dto."+s.Name]
			require.True(t, ok, "missing definition")
			assert.Len(t, def.Properties, len(s.Fields))

			for _, f := range s.Fields {
				prop, ok := def.Properties[f.Name]
				require.True(t, ok, f.Name)

				assert.Equal(t, f.Type, prop["type"], f.Name)
				assert.Equal(t, f.Description, prop["description"], f.Name)
				assert.Equal(t, f.Example, fmt.Sprint(prop["example"]), f.Name)
				if f.Format != "" {
					assert.Equal(t, f.Format, prop["format"], f.Name)
				}
				assert.Equal(t, f.Required, contains(def.Required, f.Name), f.Name)
				assert.Equal(t, f.Nullable, prop["x-nullable"] == true, f.Name)
			}
		})
	}
}

func TestPathsCoverRoutes(t *testing.T) {
	var doc struct {
		Paths map[string]map[string]any `json:"paths"`
	}
	require.NoError(t, json.Unmarshal([]byte(SwaggerInfo.ReadDoc()), &doc))

	want := map[string]string{
		"/health":               "get",
		"/healthz":              "get",
		"/questions":            "post",
		"/notes/archived":       "get",
		"/notes/access-records": "get",
		"/notes/{id}/access":    "post",
		"/images":               "post",
		"/schemas":              "get",
		"/schemas/{name}":       "get",
	}
	for path, method := range want {
		ops, ok := doc.Paths[path]
		if assert.True(t, ok, path) {
			assert.Contains(t, ops, method, path)
		}
	}
}

func contains(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}
