package overpass

import (
	"fmt"
	"time"

	"github.com/cafe-finder/internal/domain"
)

// cafeQueryTemplate selects amenity=cafe nodes, ways and relations inside a
// bbox given as (south,west,north,east). "out tags center" makes Overpass
// report a computed center for ways and relations.
const cafeQueryTemplate = `[out:json][timeout:%d];
(
  node["amenity"="cafe"](%[2]f,%[3]f,%[4]f,%[5]f);
  way["amenity"="cafe"](%[2]f,%[3]f,%[4]f,%[5]f);
  relation["amenity"="cafe"](%[2]f,%[3]f,%[4]f,%[5]f);
);
out tags center;
`

// buildCafeQuery формирует Overpass QL запрос для поиска кафе в bbox
func buildCafeQuery(bbox domain.BoundingBox, timeout time.Duration) string {
	return fmt.Sprintf(cafeQueryTemplate,
		int(timeout.Seconds()),
		bbox.SwLat, bbox.SwLng, bbox.NeLat, bbox.NeLng,
	)
}
