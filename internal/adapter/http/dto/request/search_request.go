package request

import (
	"errors"
	"math"

	"bokaboka_api/internal/domain/entities"
)

var ErrNonFiniteLocation = errors.New("location filters must be finite numbers")

// SearchRequest is bound from the query string. Location filters only apply
// when both lat and lon are present.
type SearchRequest struct {
	Query         string   `form:"query"`
	Category      string   `form:"category"`
	City          string   `form:"city"`
	Limit         int      `form:"limit"`
	Offset        int      `form:"offset"`
	UserLat       *float64 `form:"lat" binding:"omitempty,min=-90,max=90"`
	UserLon       *float64 `form:"lon" binding:"omitempty,min=-180,max=180"`
	MaxDistanceKm *float64 `form:"max_distance_km" binding:"omitempty,min=0"`
}

// Validate rejects NaN and infinities, which strconv accepts.
func (r SearchRequest) Validate() error {
	for _, v := range []*float64{r.UserLat, r.UserLon, r.MaxDistanceKm} {
		if v != nil && (math.IsNaN(*v) || math.IsInf(*v, 0)) {
			return ErrNonFiniteLocation
		}
	}
	return nil
}

func (r SearchRequest) ToQuery() entities.SearchQuery {
	return entities.SearchQuery{
		Query:         r.Query,
		Category:      r.Category,
		City:          r.City,
		Limit:         r.Limit,
		Offset:        r.Offset,
		UserLat:       r.UserLat,
		UserLon:       r.UserLon,
		MaxDistanceKm: r.MaxDistanceKm,
	}
}
