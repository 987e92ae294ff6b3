package payments

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"

	"bokaboka_api/internal/domain/entities"
	"bokaboka_api/internal/infrastructure/config"
	"bokaboka_api/internal/usecase/interfaces"

	mpconfig "github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/payment"
	"github.com/mercadopago/sdk-go/pkg/preference"
)

const (
	statementDescriptor = "BOKABOKA"
	currencyBRL         = "BRL"
	gatewayAttempts     = 2
	defaultRetryDelay   = 300 * time.Millisecond
)

var (
	ErrMissingMercadoPagoAccessToken   = errors.New("missing MERCADOPAGO_ACCESS_TOKEN")
	ErrMercadoPagoGatewayNotConfigured = errors.New("mercado pago gateway not configured")
	ErrInvalidGatewayPaymentID         = errors.New("invalid gateway payment id")
)

type preferenceCreator interface {
	Create(ctx context.Context, request preference.Request) (*preference.Response, error)
}

type paymentFetcher interface {
	Get(ctx context.Context, id int) (*payment.Response, error)
}

// MercadoPagoGateway creates hosted checkouts and fetches authoritative
// payment state. Every SDK call gets one retry.
type MercadoPagoGateway struct {
	preferences preferenceCreator
	payments    paymentFetcher
	appURL      string
	retryDelay  time.Duration

	mockMode bool
	mockMu   sync.Mutex
	mockRefs map[string]entities.PreferenceRequest
}

var _ interfaces.IPaymentGateway = (*MercadoPagoGateway)(nil)

func NewMercadoPagoGateway(cfg config.MercadoPagoConfig) (*MercadoPagoGateway, error) {
	appURL := strings.TrimRight(cfg.AppURL, "/")
	if isPaymentGatewayMockEnabled() {
		log.Printf("[payment][gateway] mock mode enabled")
		return &MercadoPagoGateway{appURL: appURL, mockMode: true, mockRefs: map[string]entities.PreferenceRequest{}}, nil
	}

	if cfg.AccessToken == "" {
		log.Printf("[payment][gateway] missing MERCADOPAGO_ACCESS_TOKEN")
		return nil, ErrMissingMercadoPagoAccessToken
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	sdkCfg, err := mpconfig.New(cfg.AccessToken, mpconfig.WithHTTPClient(&http.Client{Timeout: timeout}))
	if err != nil {
		log.Printf("[payment][gateway] failed creating sdk config err=%v", err)
		return nil, err
	}
	log.Printf("[payment][gateway] Mercado Pago client initialized timeout=%s", timeout)

	return &MercadoPagoGateway{
		preferences: preference.NewClient(sdkCfg),
		payments:    payment.NewClient(sdkCfg),
		appURL:      appURL,
		retryDelay:  defaultRetryDelay,
	}, nil
}

func (g *MercadoPagoGateway) CreatePreference(ctx context.Context, req entities.PreferenceRequest) (entities.CheckoutPreference, error) {
	if g != nil && g.mockMode {
		return g.mockCreatePreference(req), nil
	}
	if g == nil || g.preferences == nil {
		log.Printf("[payment][gateway] gateway not configured")
		return entities.CheckoutPreference{}, ErrMercadoPagoGatewayNotConfigured
	}
	log.Printf("[payment][gateway] preference create start professional_id=%d plan=%s unit_price=%d", req.ProfessionalID, req.Plan.ID, req.UnitPriceCents())

	var resp *preference.Response
	err := g.withRetry(ctx, "preference create", func(ctx context.Context) error {
		var err error
		resp, err = g.preferences.Create(ctx, buildPreferenceRequest(req, g.appURL))
		return err
	})
	if err != nil {
		return entities.CheckoutPreference{}, err
	}
	log.Printf("[payment][gateway] preference create success preference_id=%s", resp.ID)

	return entities.CheckoutPreference{
		ID:               resp.ID,
		InitPoint:        resp.InitPoint,
		SandboxInitPoint: resp.SandboxInitPoint,
	}, nil
}

func (g *MercadoPagoGateway) GetPayment(ctx context.Context, paymentID string) (entities.GatewayPayment, error) {
	if g != nil && g.mockMode {
		return g.mockGetPayment(paymentID)
	}
	if g == nil || g.payments == nil {
		log.Printf("[payment][gateway] gateway not configured")
		return entities.GatewayPayment{}, ErrMercadoPagoGatewayNotConfigured
	}
	id, err := strconv.Atoi(strings.TrimSpace(paymentID))
	if err != nil || id <= 0 {
		return entities.GatewayPayment{}, fmt.Errorf("%w: %q", ErrInvalidGatewayPaymentID, paymentID)
	}

	var resp *payment.Response
	err = g.withRetry(ctx, "payment get", func(ctx context.Context) error {
		var err error
		resp, err = g.payments.Get(ctx, id)
		return err
	})
	if err != nil {
		return entities.GatewayPayment{}, err
	}

	raw, err := json.Marshal(resp)
	if err != nil {
		log.Printf("[payment][gateway] response marshal failed err=%v", err)
		return entities.GatewayPayment{}, err
	}
	gp, err := decodeGatewayPayment(raw)
	if err != nil {
		return entities.GatewayPayment{}, err
	}
	log.Printf("[payment][gateway] payment get success payment_id=%s status=%s", gp.ID, gp.Status)
	return gp, nil
}

func (g *MercadoPagoGateway) withRetry(ctx context.Context, op string, fn func(ctx context.Context) error) error {
	var err error
	for attempt := 1; attempt <= gatewayAttempts; attempt++ {
		if err = fn(ctx); err == nil {
			return nil
		}
		log.Printf("[payment][gateway] %s failed attempt=%d err=%v", op, attempt, err)
		if attempt == gatewayAttempts {
			break
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(g.retryDelay):
		}
	}
	return err
}

func buildPreferenceRequest(req entities.PreferenceRequest, appURL string) preference.Request {
	professionalID := strconv.FormatUint(uint64(req.ProfessionalID), 10)
	return preference.Request{
		Items: []preference.ItemRequest{{
			ID:          string(req.Plan.ID),
			Title:       "BokaBoka - " + req.Plan.Name,
			Description: req.Plan.Description,
			Quantity:    1,
			UnitPrice:   float64(req.UnitPriceCents()) / 100,
			CurrencyID:  currencyBRL,
		}},
		Payer: &preference.PayerRequest{
			Name:  req.PayerName,
			Email: req.PayerEmail,
		},
		BackURLs: &preference.BackURLsRequest{
			Success: appURL + "/payment/success",
			Failure: appURL + "/payment/failure",
			Pending: appURL + "/payment/pending",
		},
		AutoReturn:          entities.GatewayStatusApproved,
		NotificationURL:     appURL + "/api/webhooks/mercadopago",
		ExternalReference:   professionalID,
		StatementDescriptor: statementDescriptor,
		Metadata: map[string]any{
			"professional_id": professionalID,
			"plan_type":       string(req.Plan.ID),
		},
	}
}

// gatewayPaymentDoc is the subset of the payment document we read.
type gatewayPaymentDoc struct {
	ID                any            `json:"id"`
	Status            string         `json:"status"`
	StatusDetail      string         `json:"status_detail"`
	PaymentMethodID   string         `json:"payment_method_id"`
	TransactionAmount float64        `json:"transaction_amount"`
	DateApproved      *time.Time     `json:"date_approved"`
	ExternalReference string         `json:"external_reference"`
	Metadata          map[string]any `json:"metadata"`
}

func decodeGatewayPayment(raw []byte) (entities.GatewayPayment, error) {
	var doc gatewayPaymentDoc
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	if err := dec.Decode(&doc); err != nil {
		return entities.GatewayPayment{}, err
	}
	gp := entities.GatewayPayment{
		ID:                gatewayID(doc.ID),
		Status:            doc.Status,
		StatusDetail:      doc.StatusDetail,
		PaymentMethodID:   doc.PaymentMethodID,
		TransactionAmount: doc.TransactionAmount,
		ExternalReference: doc.ExternalReference,
		Metadata:          doc.Metadata,
		Raw:               raw,
	}
	if doc.DateApproved != nil && !doc.DateApproved.IsZero() {
		t := doc.DateApproved.UTC()
		gp.DateApproved = &t
	}
	return gp, nil
}

// gatewayID accepts numeric and string ids; 0 means absent.
func gatewayID(v any) string {
	switch id := v.(type) {
	case json.Number:
		if id.String() == "0" {
			return ""
		}
		return id.String()
	case string:
		return id
	}
	return ""
}

// Mock mode: the payment id of a mock checkout is its preference id, and it is
// always approved.
func (g *MercadoPagoGateway) mockCreatePreference(req entities.PreferenceRequest) entities.CheckoutPreference {
	id := "mock-" + strconv.FormatInt(time.Now().UTC().UnixNano(), 10)
	g.mockMu.Lock()
	g.mockRefs[id] = req
	g.mockMu.Unlock()
	log.Printf("[payment][gateway] mock preference created preference_id=%s professional_id=%d", id, req.ProfessionalID)
	initPoint := g.appURL + "/payment/success?preference_id=" + id
	return entities.CheckoutPreference{ID: id, InitPoint: initPoint, SandboxInitPoint: initPoint}
}

func (g *MercadoPagoGateway) mockGetPayment(paymentID string) (entities.GatewayPayment, error) {
	g.mockMu.Lock()
	req, ok := g.mockRefs[paymentID]
	g.mockMu.Unlock()

	doc := map[string]any{
		"id":            paymentID,
		"status":        entities.GatewayStatusApproved,
		"status_detail": "accredited",
	}
	if ok {
		pref := buildPreferenceRequest(req, g.appURL)
		doc["external_reference"] = pref.ExternalReference
		doc["metadata"] = pref.Metadata
		doc["transaction_amount"] = float64(req.UnitPriceCents()) / 100
		doc["payment_method_id"] = "mock"
	}
	raw, err := json.Marshal(doc)
	if err != nil {
		return entities.GatewayPayment{}, err
	}
	gp, err := decodeGatewayPayment(raw)
	if err != nil {
		return entities.GatewayPayment{}, err
	}
	log.Printf("[payment][gateway] mock payment fetched payment_id=%s linked=%t", paymentID, ok)
	return gp, nil
}

func isPaymentGatewayMockEnabled() bool {
	for _, key := range []string{"PAYMENT_GATEWAY_MOCK", "MERCADOPAGO_MOCK"} {
		v := strings.ToLower(strings.TrimSpace(os.Getenv(key)))
		switch v {
		case "1", "true", "yes", "on", "mock":
			return true
		}
	}
	return false
}
