package repository

import (
	"context"

	"bokaboka_api/internal/domain/entities"
	"bokaboka_api/internal/usecase/interfaces"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// PaymentGormRepository persists gateway payments.
//
// transaction_id is unique; RecordApproved relies on it for webhook idempotency.
type PaymentGormRepository struct {
	db *gorm.DB
}

var _ interfaces.IPaymentRepository = (*PaymentGormRepository)(nil)

func NewPaymentGormRepository(db *gorm.DB) *PaymentGormRepository {
	return &PaymentGormRepository{db: db}
}

func (r *PaymentGormRepository) RecordApproved(ctx context.Context, p entities.Payment, grant entities.SubscriptionGrant) (bool, error) {
	var created bool
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		m := toPaymentModel(p)
		res := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "transaction_id"}},
			DoNothing: true,
		}).Create(&m)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return nil
		}
		if err := applyGrant(tx, grant, p.CreatedAt); err != nil {
			return err
		}
		created = true
		return nil
	})
	if err != nil {
		return false, translateError(err)
	}
	return created, nil
}

func (r *PaymentGormRepository) GetByTransactionID(ctx context.Context, transactionID string) (entities.Payment, error) {
	var rows []paymentModel
	if err := r.db.WithContext(ctx).Where("transaction_id = ?", transactionID).Limit(1).Find(&rows).Error; err != nil {
		return entities.Payment{}, err
	}
	if len(rows) == 0 {
		return entities.Payment{}, nil
	}
	return fromPaymentModel(rows[0]), nil
}

// ListByProfessionalID returns the professional's latest payments first.
func (r *PaymentGormRepository) ListByProfessionalID(ctx context.Context, professionalID uint, limit int) ([]entities.Payment, error) {
	q := r.db.WithContext(ctx).Where("professional_id = ?", professionalID).
		Order("created_at DESC").Order("id DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	return r.find(q)
}

func (r *PaymentGormRepository) List(ctx context.Context, limit, offset int) ([]entities.Payment, error) {
	q := r.db.WithContext(ctx).Order("created_at DESC").Order("id DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	if offset > 0 {
		q = q.Offset(offset)
	}
	return r.find(q)
}

func (r *PaymentGormRepository) find(q *gorm.DB) ([]entities.Payment, error) {
	var rows []paymentModel
	if err := q.Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]entities.Payment, 0, len(rows))
	for _, m := range rows {
		out = append(out, fromPaymentModel(m))
	}
	return out, nil
}
