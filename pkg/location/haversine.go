package location

import "math"

// EarthRadiusKm is the Earth radius in kilometers for Haversine.
const EarthRadiusKm = 6371.0

// HaversineKm returns distance in km between two points (lat/lng in degrees).
func HaversineKm(lat1, lng1, lat2, lng2 float64) float64 {
	rad := func(d float64) float64 { return d * math.Pi / 180 }
	φ1, φ2 := rad(lat1), rad(lat2)
	Δφ := rad(lat2 - lat1)
	Δλ := rad(lng2 - lng1)
	a := math.Sin(Δφ/2)*math.Sin(Δφ/2) +
		math.Cos(φ1)*math.Cos(φ2)*math.Sin(Δλ/2)*math.Sin(Δλ/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	return EarthRadiusKm * c
}

// BoundingBox is a lat/lng rectangle that fully contains a circle.
// When WrapsLng is set the box crosses the antimeridian and covers
// lng >= MinLng or lng <= MaxLng.
type BoundingBox struct {
	MinLat, MaxLat float64
	MinLng, MaxLng float64
	WrapsLng       bool
}

// FullLng reports whether the box spans every longitude.
func (b BoundingBox) FullLng() bool {
	return !b.WrapsLng && b.MinLng <= -180 && b.MaxLng >= 180
}

// Contains reports whether (lat, lng) falls inside the box.
func (b BoundingBox) Contains(lat, lng float64) bool {
	if lat < b.MinLat || lat > b.MaxLat {
		return false
	}
	if b.WrapsLng {
		return lng >= b.MinLng || lng <= b.MaxLng
	}
	return lng >= b.MinLng && lng <= b.MaxLng
}

// BoxAround returns a box containing every point within radiusKm of (lat, lng).
// It is only a pre-filter: callers still compute the exact Haversine distance.
func BoxAround(lat, lng, radiusKm float64) BoundingBox {
	const deg = 180 / math.Pi
	r := radiusKm / EarthRadiusKm
	φ := lat / deg
	dLat := radiusKm / EarthRadiusKm * 180 / math.Pi
	minLat, maxLat := lat-dLat, lat+dLat

	// The circle reaches a pole: every meridian crosses it.
	if φ+r >= math.Pi/2 || φ-r <= -math.Pi/2 {
		return BoundingBox{MinLat: math.Max(minLat, -90), MaxLat: math.Min(maxLat, 90), MinLng: -180, MaxLng: 180}
	}

	dLng := math.Asin(math.Min(1, math.Sin(r)/math.Cos(φ))) * deg
	box := BoundingBox{MinLat: minLat, MaxLat: maxLat, MinLng: lng - dLng, MaxLng: lng + dLng}
	if box.MinLng < -180 {
		box.MinLng += 360
		box.WrapsLng = true
	}
	if box.MaxLng > 180 {
		box.MaxLng -= 360
		box.WrapsLng = true
	}
	return box
}
