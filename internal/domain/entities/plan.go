package entities

import (
	"strings"
	"time"
)

type PlanType string

const (
	PlanTypeBase     PlanType = "base"
	PlanTypeDestaque PlanType = "destaque"
)

const (
	// SubscriptionPeriod is the window granted by one approved gateway payment.
	SubscriptionPeriod = 30 * 24 * time.Hour
	// PromoGrantYears is the window granted by a promo code activation.
	PromoGrantYears = 10
)

// Plan is a monthly visibility plan. Prices are in cents (BRL).
type Plan struct {
	ID          PlanType `json:"id"`
	Name        string   `json:"name"`
	PriceCents  int64    `json:"price_cents"`
	Description string   `json:"description"`
	Features    []string `json:"features"`
}

var plans = []Plan{
	{
		ID:          PlanTypeBase,
		Name:        "Plano Base",
		PriceCents:  2990,
		Description: "Perfil básico com informações essenciais",
		Features: []string{
			"Perfil com foto e informações",
			"Contato via WhatsApp",
			"Avaliações de clientes",
			"Aparece nas buscas",
		},
	},
	{
		ID:          PlanTypeDestaque,
		Name:        "Plano Destaque",
		PriceCents:  4990,
		Description: "Perfil destacado com máxima visibilidade",
		Features: []string{
			"Tudo do Plano Base",
			"Selo de Destaque",
			"Prioridade nas buscas",
			"Galeria de fotos",
			"Vídeo de apresentação",
			"Áudio de apresentação",
		},
	},
}

// Plans returns a copy of the plan catalog.
func Plans() []Plan {
	out := make([]Plan, len(plans))
	copy(out, plans)
	return out
}

func PlanByType(t PlanType) (Plan, bool) {
	for _, p := range plans {
		if p.ID == t {
			return p, true
		}
	}
	return Plan{}, false
}

// ParsePlanType accepts any case and surrounding spaces.
func ParsePlanType(raw string) (PlanType, bool) {
	t := PlanType(strings.ToLower(strings.TrimSpace(raw)))
	if _, ok := PlanByType(t); !ok {
		return "", false
	}
	return t, true
}

// Rank orders plan tiers for search: higher ranks first.
func (t PlanType) Rank() int {
	if t == PlanTypeDestaque {
		return 1
	}
	return 0
}
