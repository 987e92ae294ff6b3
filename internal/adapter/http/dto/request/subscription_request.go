package request

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"bokaboka_api/internal/domain/entities"
	"bokaboka_api/internal/usecase"
)

var ErrInvalidNotificationID = errors.New("invalid notification data id")

type ActivatePromoCodeRequest struct {
	Code string `json:"code" binding:"required"`
}

type CreatePromoCodeRequest struct {
	Code      string     `json:"code" binding:"required"`
	PlanType  string     `json:"plan_type" binding:"required"`
	MaxUses   int        `json:"max_uses"`
	ExpiresAt *time.Time `json:"expires_at"`
}

func (r CreatePromoCodeRequest) ToInput() usecase.CreatePromoCodeInput {
	return usecase.CreatePromoCodeInput{Code: r.Code, PlanType: r.PlanType, MaxUses: r.MaxUses, ExpiresAt: r.ExpiresAt}
}

type CheckoutRequest struct {
	PlanType     string `json:"plan_type" binding:"required"`
	ReferralCode string `json:"referral_code"`
	PayerEmail   string `json:"payer_email"`
}

func (r CheckoutRequest) ToInput(professionalID uint) usecase.CheckoutInput {
	return usecase.CheckoutInput{
		ProfessionalID: professionalID,
		PlanType:       r.PlanType,
		ReferralCode:   r.ReferralCode,
		PayerEmail:     r.PayerEmail,
	}
}

// WebhookNotificationRequest is the Mercado Pago notification body. The gateway
// sends data.id as a string but older topics use a number.
type WebhookNotificationRequest struct {
	Type   string `json:"type"`
	Action string `json:"action"`
	Data   struct {
		ID NotificationID `json:"id"`
	} `json:"data"`
}

func (r WebhookNotificationRequest) ToNotification() entities.WebhookNotification {
	return entities.WebhookNotification{Type: strings.TrimSpace(r.Type), DataID: string(r.Data.ID)}
}

// NotificationID accepts a JSON string or number.
type NotificationID string

func (n *NotificationID) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		*n = ""
		return nil
	}
	if b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*n = NotificationID(strings.TrimSpace(s))
		return nil
	}
	var num json.Number
	if err := json.Unmarshal(b, &num); err != nil {
		return ErrInvalidNotificationID
	}
	*n = NotificationID(num.String())
	return nil
}
