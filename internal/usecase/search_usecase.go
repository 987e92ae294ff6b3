package usecase

import (
	"cmp"
	"context"
	"log"
	"slices"
	"strings"
	"time"

	"bokaboka_api/internal/domain/entities"
	"bokaboka_api/internal/domain/textnorm"
	"bokaboka_api/internal/usecase/interfaces"
	"bokaboka_api/pkg/location"
)

// DefaultSearchCandidateCap bounds how many ranked rows a location search
// pulls before filtering and re-sorting by distance.
const DefaultSearchCandidateCap = 500

// maxCandidateBatches bounds how many cap-sized batches a radius search reads.
const maxCandidateBatches = 20

// ISearchUseCase is the read path of the directory. It never fails: storage
// errors degrade to an empty result.
type ISearchUseCase interface {
	Search(ctx context.Context, q entities.SearchQuery) []entities.ProfessionalView
}

type SearchUseCase struct {
	repo         interfaces.IProfessionalRepository
	normalizer   textnorm.QueryNormalizer
	candidateCap int
	now          func() time.Time
}

var _ ISearchUseCase = (*SearchUseCase)(nil)

func NewSearchUseCase(repo interfaces.IProfessionalRepository, normalizer textnorm.QueryNormalizer, candidateCap int) *SearchUseCase {
	if normalizer == nil {
		normalizer = textnorm.Identity{}
	}
	if candidateCap <= 0 {
		candidateCap = DefaultSearchCandidateCap
	}
	return &SearchUseCase{repo: repo, normalizer: normalizer, candidateCap: candidateCap, now: utcNow}
}

func (u *SearchUseCase) Search(ctx context.Context, q entities.SearchQuery) []entities.ProfessionalView {
	limit, offset := normalizePage(q.Limit, q.Offset)
	criteria := entities.SearchCriteria{
		Text:     u.normalizer.Normalize(q.Query),
		Category: strings.TrimSpace(q.Category),
		City:     strings.TrimSpace(q.City),
	}
	// One instant for the whole page so every row agrees on activity.
	now := u.now()

	if !q.HasUserLocation() {
		criteria.Limit, criteria.Offset = limit, offset
		rows, err := u.repo.Search(ctx, criteria)
		if err != nil {
			log.Printf("[search][usecase] repository failed text=%q err=%v", criteria.Text, err)
			return []entities.ProfessionalView{}
		}
		out := make([]entities.ProfessionalView, 0, len(rows))
		for _, p := range rows {
			out = append(out, entities.ProfessionalView{Professional: p, IsInActivePeriod: p.IsInActivePeriod(now)})
		}
		return out
	}

	userLat, userLon := *q.UserLat, *q.UserLon
	if q.MaxDistanceKm != nil {
		box := location.BoxAround(userLat, userLon, *q.MaxDistanceKm)
		criteria.Box = &box
	}
	rows, err := u.candidates(ctx, criteria)
	if err != nil {
		log.Printf("[search][usecase] repository failed text=%q lat=%f lon=%f err=%v", criteria.Text, userLat, userLon, err)
		return []entities.ProfessionalView{}
	}

	views := make([]entities.ProfessionalView, 0, len(rows))
	for _, p := range rows {
		v := entities.ProfessionalView{Professional: p, IsInActivePeriod: p.IsInActivePeriod(now)}
		if p.HasCoordinates() {
			d := location.HaversineKm(userLat, userLon, *p.Latitude, *p.Longitude)
			v.DistanceKm = &d
		}
		if q.MaxDistanceKm != nil && (v.DistanceKm == nil || *v.DistanceKm > *q.MaxDistanceKm) {
			continue
		}
		views = append(views, v)
	}

	// Proximity replaces plan tier as the primary order once a location is given.
	// Stable, so equal distances keep their tier/stars order.
	slices.SortStableFunc(views, compareDistance)

	return paginate(views, limit, offset)
}

// candidates loads the ranked rows a location search re-sorts. Without a
// radius only the first candidateCap rows are read. A radius box bounds the
// set, so it is read in cap-sized batches until exhausted.
func (u *SearchUseCase) candidates(ctx context.Context, criteria entities.SearchCriteria) ([]entities.Professional, error) {
	criteria.Limit = u.candidateCap
	if criteria.Box == nil {
		rows, err := u.repo.Search(ctx, criteria)
		if err == nil && len(rows) >= u.candidateCap {
			log.Printf("[search][usecase] candidate cap reached cap=%d text=%q", u.candidateCap, criteria.Text)
		}
		return rows, err
	}

	var all []entities.Professional
	for batch := 0; batch < maxCandidateBatches; batch++ {
		criteria.Offset = batch * u.candidateCap
		rows, err := u.repo.Search(ctx, criteria)
		if err != nil {
			return nil, err
		}
		all = append(all, rows...)
		if len(rows) < u.candidateCap {
			return all, nil
		}
	}
	log.Printf("[search][usecase] radius candidates truncated rows=%d text=%q", len(all), criteria.Text)
	return all, nil
}

func compareDistance(a, b entities.ProfessionalView) int {
	switch {
	case a.DistanceKm == nil && b.DistanceKm == nil:
		return 0
	case a.DistanceKm == nil:
		return 1
	case b.DistanceKm == nil:
		return -1
	}
	return cmp.Compare(*a.DistanceKm, *b.DistanceKm)
}

func normalizePage(limit, offset int) (int, int) {
	if limit <= 0 {
		limit = entities.DefaultSearchLimit
	}
	if limit > entities.MaxSearchLimit {
		limit = entities.MaxSearchLimit
	}
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}

func paginate(views []entities.ProfessionalView, limit, offset int) []entities.ProfessionalView {
	if offset >= len(views) {
		return []entities.ProfessionalView{}
	}
	end := min(offset+limit, len(views))
	return views[offset:end]
}
