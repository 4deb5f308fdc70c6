package docs

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/swaggo/swag"
)

func TestSwaggerDocIsValidJSON(t *testing.T) {
	doc, err := swag.ReadDoc()
	require.NoError(t, err)

	var parsed map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(doc), &parsed))

	paths, ok := parsed["paths"].(map[string]interface{})
	require.True(t, ok)
	assert.Contains(t, paths, "/api/cafes")
	assert.Contains(t, paths, "/api/v1/health")
	assert.Equal(t, "Cafe Finder API", parsed["info"].(map[string]interface{})["title"])
}

func TestSwaggerDocDefinitions(t *testing.T) {
	doc, err := swag.ReadDoc()
	require.NoError(t, err)

	var parsed struct {
		Definitions map[string]interface{} `json:"definitions"`
	}
	require.NoError(t, json.Unmarshal([]byte(doc), &parsed))

	assert.Contains(t, parsed.Definitions, "dto.HealthResponse")
	assert.Contains(t, parsed.Definitions, "utils.SuccessResponse")
	assert.NotContains(t, parsed.Definitions, "utils.Meta")
}
