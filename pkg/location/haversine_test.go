package location

import (
	"math"
	"testing"
)

func TestHaversineKm(t *testing.T) {
	cases := []struct {
		name                   string
		lat1, lng1, lat2, lng2 float64
		want                   float64
		tolerance              float64
	}{
		{name: "same point", lat1: -23.55, lng1: -46.63, lat2: -23.55, lng2: -46.63, want: 0, tolerance: 1e-9},
		{name: "sao paulo to rio", lat1: -23.5505, lng1: -46.6333, lat2: -22.9068, lng2: -43.1729, want: 360.7, tolerance: 2},
		{name: "one degree of latitude", lat1: 0, lng1: 0, lat2: 1, lng2: 0, want: 111.19, tolerance: 0.05},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := HaversineKm(tc.lat1, tc.lng1, tc.lat2, tc.lng2)
			if math.Abs(got-tc.want) > tc.tolerance {
				t.Fatalf("expected %.2f km, got %.2f km", tc.want, got)
			}
		})
	}
}

func TestBoxAround_ContainsCircle(t *testing.T) {
	lat, lng, radius := -23.55, -46.63, 10.0
	box := BoxAround(lat, lng, radius)

	// Points exactly radius km away along each axis must be inside the box.
	north := lat + radius/EarthRadiusKm*180/math.Pi
	if north > box.MaxLat {
		t.Fatalf("north point %.5f outside box max %.5f", north, box.MaxLat)
	}
	east := lng + radius/(EarthRadiusKm*math.Cos(lat*math.Pi/180))*180/math.Pi
	if east > box.MaxLng {
		t.Fatalf("east point %.5f outside box max %.5f", east, box.MaxLng)
	}
	if box.MinLat >= lat || box.MinLng >= lng {
		t.Fatalf("box not centred: %+v", box)
	}
}

func TestBoxAround_EdgeOfCircle(t *testing.T) {
	cases := []struct {
		name                    string
		lat, lng, radius        float64
		pointLat, pointLng      float64
		wantWraps, wantFullLngs bool
	}{
		{name: "high latitude east", lat: 60, lng: 0, radius: 1000, pointLat: 61.27, pointLng: 18.15},
		{name: "antimeridian from the east side", lat: 0, lng: 179.99, radius: 10, pointLat: 0, pointLng: -179.99, wantWraps: true},
		{name: "antimeridian from the west side", lat: -17.7, lng: -179.95, radius: 25, pointLat: -17.7, pointLng: 179.9, wantWraps: true},
		{name: "circle covering the pole", lat: 89.5, lng: 10, radius: 100, pointLat: 89.8, pointLng: -170, wantFullLngs: true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if d := HaversineKm(tc.lat, tc.lng, tc.pointLat, tc.pointLng); d > tc.radius {
				t.Fatalf("point is %.2f km away, outside the %.0f km radius", d, tc.radius)
			}
			box := BoxAround(tc.lat, tc.lng, tc.radius)
			if !box.Contains(tc.pointLat, tc.pointLng) {
				t.Fatalf("point (%.2f, %.2f) outside box %+v", tc.pointLat, tc.pointLng, box)
			}
			if box.WrapsLng != tc.wantWraps || box.FullLng() != tc.wantFullLngs {
				t.Fatalf("unexpected box shape %+v", box)
			}
			if box.MinLat < -90 || box.MaxLat > 90 || box.MinLng < -180 || box.MaxLng > 180 {
				t.Fatalf("box out of range %+v", box)
			}
		})
	}
}

func TestBoundingBox_ContainsWrapped(t *testing.T) {
	box := BoxAround(0, 179.99, 10)
	if box.Contains(0, 0) || box.Contains(0, 179.5) || box.Contains(0, -179.5) {
		t.Fatalf("wrapped box too wide %+v", box)
	}
	if !box.Contains(0, 180) || !box.Contains(0, -180) {
		t.Fatalf("wrapped box must include the antimeridian %+v", box)
	}
}
