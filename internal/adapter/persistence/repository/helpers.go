package repository

import (
	"errors"
	"fmt"
	"os"
	"time"

	"bokaboka_api/internal/domain/entities"
	"bokaboka_api/internal/usecase/interfaces"

	"gorm.io/gorm"
)

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// translateError maps driver-level unique violations to interfaces.ErrAlreadyExists.
// The gorm.DB must be opened with TranslateError enabled.
func translateError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return fmt.Errorf("%w: %v", interfaces.ErrAlreadyExists, err)
	}
	return err
}

// applyGrant writes a subscription grant onto the professional row inside tx.
func applyGrant(tx *gorm.DB, grant entities.SubscriptionGrant, now time.Time) error {
	updates := map[string]any{
		"plan_type":            string(grant.PlanType),
		"is_active":            true,
		"subscription_ends_at": grant.SubscriptionEndsAt,
		"updated_at":           now,
	}
	if grant.Approve {
		updates["verification_status"] = string(entities.VerificationStatusApproved)
	}
	res := tx.Model(&professionalModel{}).Where("id = ?", grant.ProfessionalID).Updates(updates)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("professional %d: %w", grant.ProfessionalID, interfaces.ErrNotFound)
	}
	return nil
}
