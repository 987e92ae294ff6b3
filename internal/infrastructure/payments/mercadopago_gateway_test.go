package payments

import (
	"context"
	"errors"
	"testing"
	"time"

	"bokaboka_api/internal/domain/entities"
	"bokaboka_api/internal/infrastructure/config"

	"github.com/mercadopago/sdk-go/pkg/payment"
	"github.com/mercadopago/sdk-go/pkg/preference"
)

type fakePreferences struct {
	calls int
	errs  []error
	last  preference.Request
}

func (f *fakePreferences) Create(_ context.Context, req preference.Request) (*preference.Response, error) {
	f.calls++
	f.last = req
	if len(f.errs) > 0 {
		err := f.errs[0]
		f.errs = f.errs[1:]
		if err != nil {
			return nil, err
		}
	}
	return &preference.Response{ID: "pref-1", InitPoint: "https://mp/init", SandboxInitPoint: "https://mp/sandbox"}, nil
}

type fakePayments struct {
	calls int
	err   error
	resp  *payment.Response
}

func (f *fakePayments) Get(_ context.Context, _ int) (*payment.Response, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.resp, nil
}

func destaqueRequest(discount int64) entities.PreferenceRequest {
	plan, _ := entities.PlanByType(entities.PlanTypeDestaque)
	return entities.PreferenceRequest{ProfessionalID: 4, PayerName: "Ana", PayerEmail: "ana@example.com", Plan: plan, DiscountCents: discount}
}

func TestBuildPreferenceRequest(t *testing.T) {
	req := buildPreferenceRequest(destaqueRequest(1000), "https://bokaboka.com")

	if len(req.Items) != 1 || req.Items[0].UnitPrice != 39.90 || req.Items[0].CurrencyID != "BRL" || req.Items[0].Quantity != 1 {
		t.Fatalf("unexpected items: %+v", req.Items)
	}
	if req.Items[0].Title != "BokaBoka - Plano Destaque" {
		t.Fatalf("unexpected title %q", req.Items[0].Title)
	}
	if req.ExternalReference != "4" || req.Metadata["professional_id"] != "4" || req.Metadata["plan_type"] != "destaque" {
		t.Fatalf("unexpected references: %q %+v", req.ExternalReference, req.Metadata)
	}
	if req.NotificationURL != "https://bokaboka.com/api/webhooks/mercadopago" || req.BackURLs.Success != "https://bokaboka.com/payment/success" {
		t.Fatalf("unexpected urls: %q %+v", req.NotificationURL, req.BackURLs)
	}
	if req.AutoReturn != "approved" || req.StatementDescriptor != "BOKABOKA" {
		t.Fatalf("unexpected options: %+v", req)
	}

	if free := buildPreferenceRequest(destaqueRequest(10000), ""); free.Items[0].UnitPrice != 0 {
		t.Fatalf("unit price must floor at zero, got %v", free.Items[0].UnitPrice)
	}
}

func TestMercadoPagoGateway_CreatePreferenceRetriesOnce(t *testing.T) {
	t.Run("second attempt succeeds", func(t *testing.T) {
		prefs := &fakePreferences{errs: []error{errors.New("timeout")}}
		g := &MercadoPagoGateway{preferences: prefs, appURL: "https://bokaboka.com"}

		got, err := g.CreatePreference(context.Background(), destaqueRequest(0))
		if err != nil || got.ID != "pref-1" || got.SandboxInitPoint != "https://mp/sandbox" {
			t.Fatalf("unexpected result: %+v err=%v", got, err)
		}
		if prefs.calls != 2 {
			t.Fatalf("expected 2 calls, got %d", prefs.calls)
		}
	})

	t.Run("gives up after the retry", func(t *testing.T) {
		prefs := &fakePreferences{errs: []error{errors.New("a"), errors.New("b"), nil}}
		g := &MercadoPagoGateway{preferences: prefs}

		if _, err := g.CreatePreference(context.Background(), destaqueRequest(0)); err == nil || err.Error() != "b" {
			t.Fatalf("expected last error, got %v", err)
		}
		if prefs.calls != 2 {
			t.Fatalf("expected 2 calls, got %d", prefs.calls)
		}
	})

	t.Run("cancelled context stops retrying", func(t *testing.T) {
		prefs := &fakePreferences{errs: []error{errors.New("a")}}
		g := &MercadoPagoGateway{preferences: prefs, retryDelay: time.Minute}
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		if _, err := g.CreatePreference(ctx, destaqueRequest(0)); !errors.Is(err, context.Canceled) {
			t.Fatalf("expected context.Canceled, got %v", err)
		}
	})
}

func TestMercadoPagoGateway_GetPayment(t *testing.T) {
	t.Run("decodes the authoritative document", func(t *testing.T) {
		pays := &fakePayments{resp: &payment.Response{
			ID:                555,
			Status:            "approved",
			ExternalReference: "4",
			Metadata:          map[string]any{"plan_type": "destaque"},
		}}
		g := &MercadoPagoGateway{payments: pays}

		gp, err := g.GetPayment(context.Background(), "555")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if gp.ID != "555" || gp.Status != "approved" || gp.ExternalReference != "4" || gp.Metadata["plan_type"] != "destaque" {
			t.Fatalf("unexpected payment: %+v", gp)
		}
		if len(gp.Raw) == 0 {
			t.Fatalf("raw document must be kept")
		}
	})

	t.Run("non numeric id", func(t *testing.T) {
		g := &MercadoPagoGateway{payments: &fakePayments{}}
		if _, err := g.GetPayment(context.Background(), "abc"); !errors.Is(err, ErrInvalidGatewayPaymentID) {
			t.Fatalf("expected ErrInvalidGatewayPaymentID, got %v", err)
		}
	})

	t.Run("lookup failure after retry", func(t *testing.T) {
		pays := &fakePayments{err: errors.New("503")}
		g := &MercadoPagoGateway{payments: pays}
		if _, err := g.GetPayment(context.Background(), "1"); err == nil {
			t.Fatalf("expected error")
		}
		if pays.calls != 2 {
			t.Fatalf("expected 2 calls, got %d", pays.calls)
		}
	})

	t.Run("not configured", func(t *testing.T) {
		var g *MercadoPagoGateway
		if _, err := g.GetPayment(context.Background(), "1"); !errors.Is(err, ErrMercadoPagoGatewayNotConfigured) {
			t.Fatalf("expected ErrMercadoPagoGatewayNotConfigured, got %v", err)
		}
	})
}

func TestNewMercadoPagoGateway(t *testing.T) {
	t.Run("missing token", func(t *testing.T) {
		t.Setenv("PAYMENT_GATEWAY_MOCK", "")
		t.Setenv("MERCADOPAGO_MOCK", "")
		if _, err := NewMercadoPagoGateway(config.MercadoPagoConfig{}); !errors.Is(err, ErrMissingMercadoPagoAccessToken) {
			t.Fatalf("expected ErrMissingMercadoPagoAccessToken, got %v", err)
		}
	})

	t.Run("mock checkout is approved and linked", func(t *testing.T) {
		t.Setenv("PAYMENT_GATEWAY_MOCK", "true")
		g, err := NewMercadoPagoGateway(config.MercadoPagoConfig{AppURL: "http://localhost:8080/"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		pref, err := g.CreatePreference(context.Background(), destaqueRequest(0))
		if err != nil || pref.ID == "" {
			t.Fatalf("unexpected preference: %+v err=%v", pref, err)
		}
		gp, err := g.GetPayment(context.Background(), pref.ID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if gp.ID != pref.ID || gp.Status != "approved" || gp.ExternalReference != "4" || gp.Metadata["plan_type"] != "destaque" {
			t.Fatalf("unexpected mock payment: %+v", gp)
		}

		unknown, err := g.GetPayment(context.Background(), "other")
		if err != nil || unknown.ExternalReference != "" {
			t.Fatalf("unexpected unknown payment: %+v err=%v", unknown, err)
		}
	})
}
