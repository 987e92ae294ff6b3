package entities

import "bokaboka_api/pkg/location"

const (
	DefaultSearchLimit = 20
	MaxSearchLimit     = 100
)

// SearchQuery is the public search surface. Pointers mark optional inputs.
type SearchQuery struct {
	Query         string
	Category      string
	City          string
	Limit         int
	Offset        int
	UserLat       *float64
	UserLon       *float64
	MaxDistanceKm *float64
}

// HasUserLocation is true only when both coordinates were supplied.
func (q SearchQuery) HasUserLocation() bool {
	return q.UserLat != nil && q.UserLon != nil
}

// SearchCriteria is what the storage layer filters on. Text is already normalized.
// Results are returned in plan tier then stars order.
type SearchCriteria struct {
	Text     string
	Category string
	City     string
	Limit    int
	Offset   int
	// Box restricts to professionals with coordinates inside it.
	Box *location.BoundingBox
}

// ProfessionalView is a professional annotated for one request. DistanceKm is
// nil when no user location was given or the professional has no coordinates.
type ProfessionalView struct {
	Professional     Professional
	IsInActivePeriod bool
	DistanceKm       *float64
}
