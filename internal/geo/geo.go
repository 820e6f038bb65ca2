// Package geo provides the pure geospatial helpers used by the tracking
// engine and the nearby announcement search. Points follow the orb
// convention of {lng, lat}.
package geo

import (
	"math"
	"sort"

	"github.com/paulmach/orb"
)

// DefaultNearbyRadiusKm is the search radius applied when the caller
// does not specify one.
const DefaultNearbyRadiusKm = 10.0

// NewPoint builds an orb point from the latitude/longitude order used
// in requests and stored records.
func NewPoint(lat, lng float64) orb.Point {
	return orb.Point{lng, lat}
}

// IsValidCoordinate checks that a position lies within geographic bounds.
func IsValidCoordinate(lat, lng float64) bool {
	if math.IsNaN(lat) || math.IsNaN(lng) || math.IsInf(lat, 0) || math.IsInf(lng, 0) {
		return false
	}
	return lat >= -90 && lat <= 90 && lng >= -180 && lng <= 180
}

// DistanceKm calculates the great circle distance between two points
// in kilometers.
func DistanceKm(p1, p2 orb.Point) float64 {
	const earthRadiusKm = 6371.0

	lat1Rad := p1.Lat() * math.Pi / 180
	lng1Rad := p1.Lon() * math.Pi / 180
	lat2Rad := p2.Lat() * math.Pi / 180
	lng2Rad := p2.Lon() * math.Pi / 180

	deltaLat := lat2Rad - lat1Rad
	deltaLng := lng2Rad - lng1Rad

	a := math.Sin(deltaLat/2)*math.Sin(deltaLat/2) +
		math.Cos(lat1Rad)*math.Cos(lat2Rad)*
			math.Sin(deltaLng/2)*math.Sin(deltaLng/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusKm * c
}

// TotalRouteKm sums the pairwise distances along an ordered sequence of
// points. Fewer than two points yields zero.
func TotalRouteKm(points []orb.Point) float64 {
	var total float64
	for i := 1; i < len(points); i++ {
		total += DistanceKm(points[i-1], points[i])
	}
	return total
}

// SecondarySort selects the tiebreaker applied after ascending distance.
type SecondarySort string

const (
	SecondaryNone   SecondarySort = ""
	SecondaryPrice  SecondarySort = "price"  // ascending
	SecondaryRating SecondarySort = "rating" // descending
)

// Candidate is one searchable entity with its associated location points.
// Ref carries the caller's handle back out of the search.
type Candidate struct {
	Ref    any
	Points []orb.Point
	Price  float64
	Rating float64

	// DistanceKm is set by Nearby to the closest associated point.
	DistanceKm float64
}

// Nearby filters candidates having any associated point within radiusKm of
// origin and returns them sorted by ascending distance, with the selected
// secondary key breaking ties. A non-positive radius falls back to the
// default.
func Nearby(origin orb.Point, radiusKm float64, candidates []Candidate, secondary SecondarySort) []Candidate {
	if radiusKm <= 0 {
		radiusKm = DefaultNearbyRadiusKm
	}

	matched := make([]Candidate, 0, len(candidates))
	for _, c := range candidates {
		closest := math.Inf(1)
		for _, p := range c.Points {
			if d := DistanceKm(origin, p); d < closest {
				closest = d
			}
		}
		if closest <= radiusKm {
			c.DistanceKm = closest
			matched = append(matched, c)
		}
	}

	sort.SliceStable(matched, func(i, j int) bool {
		if matched[i].DistanceKm != matched[j].DistanceKm {
			return matched[i].DistanceKm < matched[j].DistanceKm
		}
		switch secondary {
		case SecondaryPrice:
			return matched[i].Price < matched[j].Price
		case SecondaryRating:
			return matched[i].Rating > matched[j].Rating
		default:
			return false
		}
	})

	return matched
}
