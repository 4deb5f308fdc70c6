package overpass

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cafe-finder/internal/domain"
)

func TestParseCafes(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		limit    int
		expected []domain.Cafe
	}{
		{
			name:     "named node",
			body:     `{"elements":[{"tags":{"name":"Joe's"},"lat":40.7,"lon":-73.9}]}`,
			limit:    50,
			expected: []domain.Cafe{{Name: "Joe's", Lat: 40.7, Lon: -73.9}},
		},
		{
			name:     "missing tags defaults name",
			body:     `{"elements":[{"type":"node","id":1,"lat":1.5,"lon":2.5}]}`,
			limit:    50,
			expected: []domain.Cafe{{Name: "Cafe", Lat: 1.5, Lon: 2.5}},
		},
		{
			name:     "tags without name defaults name",
			body:     `{"elements":[{"tags":{"amenity":"cafe"},"lat":1,"lon":2}]}`,
			limit:    50,
			expected: []domain.Cafe{{Name: "Cafe", Lat: 1, Lon: 2}},
		},
		{
			name:     "null name defaults name",
			body:     `{"elements":[{"tags":{"name":null},"lat":1,"lon":2}]}`,
			limit:    50,
			expected: []domain.Cafe{{Name: "Cafe", Lat: 1, Lon: 2}},
		},
		{
			name:     "numeric name kept as text",
			body:     `{"elements":[{"tags":{"name":42},"lat":1,"lon":2}]}`,
			limit:    50,
			expected: []domain.Cafe{{Name: "42", Lat: 1, Lon: 2}},
		},
		{
			name:     "way with center",
			body:     `{"elements":[{"type":"way","id":7,"center":{"lat":1.0,"lon":2.0},"tags":{"name":"Corner"}}]}`,
			limit:    50,
			expected: []domain.Cafe{{Name: "Corner", Lat: 1.0, Lon: 2.0}},
		},
		{
			name:     "direct coordinates win over center",
			body:     `{"elements":[{"lat":3,"lon":4,"center":{"lat":1,"lon":2}}]}`,
			limit:    50,
			expected: []domain.Cafe{{Name: "Cafe", Lat: 3, Lon: 4}},
		},
		{
			name:     "partial direct coordinates fall back to center",
			body:     `{"elements":[{"lat":3,"center":{"lat":1,"lon":2}}]}`,
			limit:    50,
			expected: []domain.Cafe{{Name: "Cafe", Lat: 1, Lon: 2}},
		},
		{
			name:     "wrongly typed coordinates fall back to center",
			body:     `{"elements":[{"lat":"x","lon":"y","center":{"lat":1,"lon":2}}]}`,
			limit:    50,
			expected: []domain.Cafe{{Name: "Cafe", Lat: 1, Lon: 2}},
		},
		{
			name: "elements without coordinates are skipped and not counted",
			body: `{"elements":[
				{"tags":{"name":"Nowhere"}},
				{"tags":{"name":"Half"},"center":{"lat":1}},
				{"tags":{"name":"A"},"lat":1,"lon":1},
				{"tags":{"name":"B"},"lat":2,"lon":2}
			]}`,
			limit: 2,
			expected: []domain.Cafe{
				{Name: "A", Lat: 1, Lon: 1},
				{Name: "B", Lat: 2, Lon: 2},
			},
		},
		{
			name: "truncated at limit",
			body: `{"elements":[
				{"tags":{"name":"A"},"lat":1,"lon":1},
				{"tags":{"name":"B"},"lat":2,"lon":2},
				{"tags":{"name":"C"},"lat":3,"lon":3}
			]}`,
			limit: 2,
			expected: []domain.Cafe{
				{Name: "A", Lat: 1, Lon: 1},
				{Name: "B", Lat: 2, Lon: 2},
			},
		},
		{
			name:     "non-object elements are skipped",
			body:     `{"elements":[5,"x",null,{"lat":1,"lon":2}]}`,
			limit:    50,
			expected: []domain.Cafe{{Name: "Cafe", Lat: 1, Lon: 2}},
		},
		{
			name:     "tags not an object",
			body:     `{"elements":[{"tags":"cafe","lat":1,"lon":2}]}`,
			limit:    50,
			expected: []domain.Cafe{{Name: "Cafe", Lat: 1, Lon: 2}},
		},
		{
			name:     "empty elements",
			body:     `{"elements":[]}`,
			limit:    50,
			expected: []domain.Cafe{},
		},
		{
			name:     "missing elements",
			body:     `{"version":0.6}`,
			limit:    50,
			expected: []domain.Cafe{},
		},
		{
			name:     "non-array elements",
			body:     `{"elements":{"lat":1,"lon":2}}`,
			limit:    50,
			expected: []domain.Cafe{},
		},
		{
			name:     "root is not an object",
			body:     `[{"lat":1,"lon":2}]`,
			limit:    50,
			expected: []domain.Cafe{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cafes, err := parseCafes([]byte(tt.body), tt.limit)
			require.NoError(t, err)
			require.NotNil(t, cafes)
			assert.Equal(t, tt.expected, cafes)
		})
	}
}

func TestParseCafes_InvalidJSON(t *testing.T) {
	for _, body := range []string{``, `{`, `<html>rate limited</html>`, `{"elements":[}`} {
		cafes, err := parseCafes([]byte(body), 50)
		assert.Error(t, err, "body %q", body)
		assert.Nil(t, cafes)
	}
}
