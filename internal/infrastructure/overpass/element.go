package overpass

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"math"

	"github.com/cafe-finder/internal/domain"
)

// response is the top level of an Overpass JSON answer. Elements is kept raw
// so a missing or non-array value can be told apart from a broken body.
type response struct {
	Elements json.RawMessage `json:"elements"`
}

// element is an Overpass node, way or relation. Which fields are present
// depends on the element kind.
type element struct {
	Type   string                     `json:"type"`
	ID     int64                      `json:"id"`
	Lat    *float64                   `json:"lat"`
	Lon    *float64                   `json:"lon"`
	Center *center                    `json:"center"`
	Tags   map[string]json.RawMessage `json:"tags"`
}

type center struct {
	Lat *float64 `json:"lat"`
	Lon *float64 `json:"lon"`
}

type elementShape int

const (
	shapeUnresolved elementShape = iota
	// shapePoint: node with lat/lon on the element itself
	shapePoint
	// shapeCenter: way or relation with a computed center
	shapeCenter
)

// shape resolves coordinates pair-wise. A half-present direct pair is
// ignored as a whole; it is never mixed with center fields.
func (e *element) shape() elementShape {
	switch {
	case e.Lat != nil && e.Lon != nil && finite(*e.Lat, *e.Lon):
		return shapePoint
	case e.Center != nil && e.Center.Lat != nil && e.Center.Lon != nil && finite(*e.Center.Lat, *e.Center.Lon):
		return shapeCenter
	default:
		return shapeUnresolved
	}
}

// coordinates returns the element position, preferring direct lat/lon.
func (e *element) coordinates() (lat, lon float64, ok bool) {
	switch e.shape() {
	case shapePoint:
		return *e.Lat, *e.Lon, true
	case shapeCenter:
		return *e.Center.Lat, *e.Center.Lon, true
	default:
		return 0, 0, false
	}
}

// name returns tags.name, or DefaultCafeName when it is absent or null.
// Non-string values are used as their JSON text.
func (e *element) name() string {
	raw, ok := e.Tags["name"]
	if !ok || bytes.Equal(bytes.TrimSpace(raw), []byte("null")) {
		return domain.DefaultCafeName
	}

	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	return string(bytes.TrimSpace(raw))
}

func finite(values ...float64) bool {
	for _, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// parseCafes converts an Overpass JSON body into at most limit cafes, in
// element order. Only a body that is not valid JSON is an error; a missing
// or non-array "elements" yields an empty list. Elements after the limit is
// reached are not decoded.
func parseCafes(body []byte, limit int) ([]domain.Cafe, error) {
	if !json.Valid(body) {
		return nil, fmt.Errorf("invalid JSON body")
	}

	cafes := make([]domain.Cafe, 0)

	var resp response
	if err := json.Unmarshal(body, &resp); err != nil {
		// valid JSON whose root is not an object
		return cafes, nil
	}

	raw := bytes.TrimSpace(resp.Elements)
	if len(raw) == 0 || raw[0] != '[' {
		return cafes, nil
	}

	var elements []json.RawMessage
	if err := json.Unmarshal(raw, &elements); err != nil {
		return nil, fmt.Errorf("decode elements: %w", err)
	}

	for _, rawElement := range elements {
		if len(cafes) >= limit {
			break
		}

		// Wrongly typed fields are left unset and the rest is still decoded.
		var el element
		if err := json.Unmarshal(rawElement, &el); err != nil {
			var typeErr *json.UnmarshalTypeError
			if !errors.As(err, &typeErr) {
				continue
			}
		}

		lat, lon, ok := el.coordinates()
		if !ok {
			continue
		}

		cafes = append(cafes, domain.Cafe{
			Name: el.name(),
			Lat:  lat,
			Lon:  lon,
		})
	}

	return cafes, nil
}
