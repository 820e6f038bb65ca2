package geo

import (
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
)

var (
	paris = NewPoint(48.8566, 2.3522)
	lyon  = NewPoint(45.7640, 4.8357)
)

func TestDistanceKm_ParisLyon(t *testing.T) {
	d := DistanceKm(paris, lyon)
	assert.InDelta(t, 392.0, d, 5.0)

	// Symmetric.
	assert.InDelta(t, d, DistanceKm(lyon, paris), 1e-9)
}

func TestDistanceKm_SamePoint(t *testing.T) {
	assert.Zero(t, DistanceKm(paris, paris))
	assert.Zero(t, DistanceKm(orb.Point{0, 0}, orb.Point{0, 0}))
}

func TestTotalRouteKm(t *testing.T) {
	assert.Zero(t, TotalRouteKm(nil))
	assert.Zero(t, TotalRouteKm([]orb.Point{paris}))

	direct := DistanceKm(paris, lyon)
	via := TotalRouteKm([]orb.Point{paris, NewPoint(47.0, 3.5), lyon})
	assert.Greater(t, via, direct, "a detour is never shorter than the direct leg")
}

func TestIsValidCoordinate(t *testing.T) {
	assert.True(t, IsValidCoordinate(48.8566, 2.3522))
	assert.True(t, IsValidCoordinate(-90, 180))
	assert.False(t, IsValidCoordinate(90.1, 0))
	assert.False(t, IsValidCoordinate(0, -180.5))
}

func TestNearby_FilterAndSortByDistance(t *testing.T) {
	near := Candidate{Ref: "near", Points: []orb.Point{NewPoint(48.86, 2.36)}}
	nearer := Candidate{Ref: "nearer", Points: []orb.Point{NewPoint(48.8566, 2.3530)}}
	far := Candidate{Ref: "far", Points: []orb.Point{lyon}}

	got := Nearby(paris, 10, []Candidate{near, far, nearer}, SecondaryNone)

	assert.Len(t, got, 2)
	assert.Equal(t, "nearer", got[0].Ref)
	assert.Equal(t, "near", got[1].Ref)
	assert.Less(t, got[0].DistanceKm, got[1].DistanceKm)
}

func TestNearby_AnyAssociatedPointMatches(t *testing.T) {
	// Pickup is far but dropoff is within range; the candidate matches and
	// its distance is that of the closest point.
	c := Candidate{Ref: "mixed", Points: []orb.Point{lyon, NewPoint(48.87, 2.35)}}

	got := Nearby(paris, 10, []Candidate{c}, SecondaryNone)

	assert.Len(t, got, 1)
	assert.Less(t, got[0].DistanceKm, 5.0)
}

func TestNearby_DefaultRadius(t *testing.T) {
	inside := Candidate{Ref: "in", Points: []orb.Point{NewPoint(48.90, 2.40)}}
	outside := Candidate{Ref: "out", Points: []orb.Point{NewPoint(49.50, 2.35)}}

	got := Nearby(paris, 0, []Candidate{inside, outside}, SecondaryNone)

	assert.Len(t, got, 1)
	assert.Equal(t, "in", got[0].Ref)
}

func TestNearby_SecondaryKeys(t *testing.T) {
	p := []orb.Point{paris}
	cheapLowRated := Candidate{Ref: "cheap", Points: p, Price: 10, Rating: 2}
	pricyTopRated := Candidate{Ref: "pricy", Points: p, Price: 30, Rating: 5}

	byPrice := Nearby(paris, 10, []Candidate{pricyTopRated, cheapLowRated}, SecondaryPrice)
	assert.Equal(t, "cheap", byPrice[0].Ref)

	byRating := Nearby(paris, 10, []Candidate{cheapLowRated, pricyTopRated}, SecondaryRating)
	assert.Equal(t, "pricy", byRating[0].Ref)
}

func TestNearby_EmptyPointsNeverMatch(t *testing.T) {
	got := Nearby(paris, 100, []Candidate{{Ref: "pointless"}}, SecondaryNone)
	assert.Empty(t, got)
}
