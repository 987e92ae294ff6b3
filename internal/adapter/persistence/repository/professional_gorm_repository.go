package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"bokaboka_api/internal/domain/entities"
	"bokaboka_api/internal/usecase/interfaces"

	"gorm.io/gorm"
)

// searchTierOrder puts destaque before base.
const searchTierOrder = "CASE WHEN plan_type = 'destaque' THEN 1 ELSE 0 END DESC"

// ProfessionalGormRepository persists professionals in the relational store.
type ProfessionalGormRepository struct {
	db *gorm.DB
}

var _ interfaces.IProfessionalRepository = (*ProfessionalGormRepository)(nil)

func NewProfessionalGormRepository(db *gorm.DB) *ProfessionalGormRepository {
	return &ProfessionalGormRepository{db: db}
}

func (r *ProfessionalGormRepository) Create(ctx context.Context, p entities.Professional) (entities.Professional, error) {
	m := toProfessionalModel(p)
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return entities.Professional{}, translateError(err)
	}
	return fromProfessionalModel(m), nil
}

func (r *ProfessionalGormRepository) GetByID(ctx context.Context, id uint) (entities.Professional, error) {
	return r.first(ctx, "id = ?", id)
}

func (r *ProfessionalGormRepository) GetByUID(ctx context.Context, uid string) (entities.Professional, error) {
	return r.first(ctx, "uid = ?", uid)
}

func (r *ProfessionalGormRepository) first(ctx context.Context, query string, args ...any) (entities.Professional, error) {
	var rows []professionalModel
	if err := r.db.WithContext(ctx).Where(query, args...).Limit(1).Find(&rows).Error; err != nil {
		return entities.Professional{}, err
	}
	if len(rows) == 0 {
		return entities.Professional{}, nil
	}
	return fromProfessionalModel(rows[0]), nil
}

func (r *ProfessionalGormRepository) UpdateVerification(ctx context.Context, id uint, status entities.VerificationStatus, badge *entities.Badge) (entities.Professional, error) {
	updates := map[string]any{
		"verification_status": string(status),
		"updated_at":          time.Now().UTC(),
	}
	if badge != nil {
		updates["badge"] = string(*badge)
	}
	res := r.db.WithContext(ctx).Model(&professionalModel{}).Where("id = ?", id).Updates(updates)
	if res.Error != nil {
		return entities.Professional{}, res.Error
	}
	if res.RowsAffected == 0 {
		return entities.Professional{}, fmt.Errorf("professional %d: %w", id, interfaces.ErrNotFound)
	}
	return r.GetByID(ctx, id)
}

// UpdateRating overwrites the stored aggregate; it never increments in place.
func (r *ProfessionalGormRepository) UpdateRating(ctx context.Context, id uint, agg entities.RatingAggregate) error {
	res := r.db.WithContext(ctx).Model(&professionalModel{}).Where("id = ?", id).Updates(map[string]any{
		"stars":        agg.Stars,
		"review_count": agg.ReviewCount,
		"updated_at":   time.Now().UTC(),
	})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("professional %d: %w", id, interfaces.ErrNotFound)
	}
	return nil
}

func (r *ProfessionalGormRepository) Search(ctx context.Context, c entities.SearchCriteria) ([]entities.Professional, error) {
	q := r.db.WithContext(ctx).Model(&professionalModel{}).
		Where("is_active = ? AND verification_status = ?", true, string(entities.VerificationStatusApproved))

	if text := strings.TrimSpace(c.Text); text != "" {
		like := "%" + escapeLike(strings.ToLower(text)) + "%"
		q = q.Where("(LOWER(display_name) LIKE ? ESCAPE '!' OR LOWER(category) LIKE ? ESCAPE '!' OR LOWER(bio) LIKE ? ESCAPE '!')", like, like, like)
	}
	if c.Category != "" {
		q = q.Where("category = ?", c.Category)
	}
	if c.City != "" {
		q = q.Where("city = ?", c.City)
	}
	if b := c.Box; b != nil {
		q = q.Where("latitude IS NOT NULL AND longitude IS NOT NULL").
			Where("latitude BETWEEN ? AND ?", b.MinLat, b.MaxLat)
		switch {
		case b.WrapsLng:
			q = q.Where("(longitude >= ? OR longitude <= ?)", b.MinLng, b.MaxLng)
		case !b.FullLng():
			q = q.Where("longitude BETWEEN ? AND ?", b.MinLng, b.MaxLng)
		}
	}

	q = q.Order(searchTierOrder).Order("stars DESC").Order("id ASC")
	if c.Limit > 0 {
		q = q.Limit(c.Limit)
	}
	if c.Offset > 0 {
		q = q.Offset(c.Offset)
	}

	var rows []professionalModel
	if err := q.Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]entities.Professional, 0, len(rows))
	for _, m := range rows {
		out = append(out, fromProfessionalModel(m))
	}
	return out, nil
}

var likeEscaper = strings.NewReplacer("!", "!!", "%", "!%", "_", "!_")

// escapeLike makes user text match literally inside a LIKE ... ESCAPE '!' pattern.
func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
