package usecase

import (
	"context"
	"errors"
	"testing"

	"bokaboka_api/internal/domain/entities"
	mock_interfaces "bokaboka_api/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

type checkoutFixture struct {
	profs     *mock_interfaces.MockIProfessionalRepository
	payments  *mock_interfaces.MockIPaymentRepository
	referrals *mock_interfaces.MockIReferralRepository
	gateway   *mock_interfaces.MockIPaymentGateway
	uc        *CheckoutUseCase
}

func newCheckoutFixture(t *testing.T) checkoutFixture {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	f := checkoutFixture{
		profs:     mock_interfaces.NewMockIProfessionalRepository(ctrl),
		payments:  mock_interfaces.NewMockIPaymentRepository(ctrl),
		referrals: mock_interfaces.NewMockIReferralRepository(ctrl),
		gateway:   mock_interfaces.NewMockIPaymentGateway(ctrl),
	}
	f.uc = NewCheckoutUseCase(f.profs, f.payments, NewReferralUseCase(f.referrals), f.gateway)
	return f
}

func TestCheckoutUseCase_CreateCheckout(t *testing.T) {
	ana := entities.Professional{ID: 4, DisplayName: "Ana", Email: "ana@example.com"}
	pref := entities.CheckoutPreference{ID: "pref-1", InitPoint: "https://mp/checkout"}

	t.Run("invalid plan", func(t *testing.T) {
		f := newCheckoutFixture(t)
		if _, err := f.uc.CreateCheckout(context.Background(), CheckoutInput{ProfessionalID: 4, PlanType: "gold"}); !errors.Is(err, ErrInvalidPlanType) {
			t.Fatalf("expected ErrInvalidPlanType, got %v", err)
		}
	})

	t.Run("gateway not configured", func(t *testing.T) {
		uc := NewCheckoutUseCase(nil, nil, nil, nil)
		if _, err := uc.CreateCheckout(context.Background(), CheckoutInput{ProfessionalID: 4, PlanType: "base"}); !errors.Is(err, ErrPaymentGatewayNotConfigured) {
			t.Fatalf("expected ErrPaymentGatewayNotConfigured, got %v", err)
		}
	})

	t.Run("unknown professional", func(t *testing.T) {
		f := newCheckoutFixture(t)
		f.profs.EXPECT().GetByID(gomock.Any(), uint(4)).Return(entities.Professional{}, nil)

		if _, err := f.uc.CreateCheckout(context.Background(), CheckoutInput{ProfessionalID: 4, PlanType: "base"}); !errors.Is(err, ErrProfessionalNotFound) {
			t.Fatalf("expected ErrProfessionalNotFound, got %v", err)
		}
	})

	t.Run("full price without referral", func(t *testing.T) {
		f := newCheckoutFixture(t)
		f.profs.EXPECT().GetByID(gomock.Any(), uint(4)).Return(ana, nil)
		base, _ := entities.PlanByType(entities.PlanTypeBase)
		f.gateway.EXPECT().CreatePreference(gomock.Any(), entities.PreferenceRequest{
			ProfessionalID: 4,
			PayerName:      "Ana",
			PayerEmail:     "ana@example.com",
			Plan:           base,
		}).Return(pref, nil)

		got, err := f.uc.CreateCheckout(context.Background(), CheckoutInput{ProfessionalID: 4, PlanType: " BASE "})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Preference.ID != "pref-1" || got.UnitPriceCents != 2990 || got.DiscountCents != 0 || got.ReferralApplied {
			t.Fatalf("unexpected result: %+v", got)
		}
	})

	t.Run("referral discount is applied", func(t *testing.T) {
		f := newCheckoutFixture(t)
		f.profs.EXPECT().GetByID(gomock.Any(), uint(4)).Return(ana, nil)
		f.referrals.EXPECT().GetCodeByCode(gomock.Any(), "ABCD2345").Return(entities.ReferralCode{ID: 1, OwnerID: 9, Code: "ABCD2345"}, nil)
		f.referrals.EXPECT().HasRedemption(gomock.Any(), uint(4)).Return(false, nil)
		f.referrals.EXPECT().CreateRedemption(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, r entities.ReferralRedemption) (entities.ReferralRedemption, error) {
			r.ID = 1
			return r, nil
		})
		f.gateway.EXPECT().CreatePreference(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, req entities.PreferenceRequest) (entities.CheckoutPreference, error) {
			if req.DiscountCents != 1000 || req.UnitPriceCents() != 1990 {
				t.Fatalf("unexpected request: %+v", req)
			}
			return pref, nil
		})

		got, err := f.uc.CreateCheckout(context.Background(), CheckoutInput{ProfessionalID: 4, PlanType: "base", ReferralCode: "abcd2345"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !got.ReferralApplied || got.UnitPriceCents != 1990 || got.ReferralMessage != "" {
			t.Fatalf("unexpected result: %+v", got)
		}
	})

	t.Run("rejected referral continues at full price", func(t *testing.T) {
		f := newCheckoutFixture(t)
		f.profs.EXPECT().GetByID(gomock.Any(), uint(4)).Return(ana, nil)
		f.referrals.EXPECT().GetCodeByCode(gomock.Any(), "ABCD2345").Return(entities.ReferralCode{ID: 1, OwnerID: 4, Code: "ABCD2345"}, nil)
		f.gateway.EXPECT().CreatePreference(gomock.Any(), gomock.Any()).Return(pref, nil)

		got, err := f.uc.CreateCheckout(context.Background(), CheckoutInput{ProfessionalID: 4, PlanType: "destaque", ReferralCode: "ABCD2345"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.ReferralApplied || got.UnitPriceCents != 4990 || got.ReferralMessage != MsgReferralSelf {
			t.Fatalf("unexpected result: %+v", got)
		}
	})

	t.Run("referral storage failure aborts", func(t *testing.T) {
		f := newCheckoutFixture(t)
		f.profs.EXPECT().GetByID(gomock.Any(), uint(4)).Return(ana, nil)
		f.referrals.EXPECT().GetCodeByCode(gomock.Any(), "ABCD2345").Return(entities.ReferralCode{}, errors.New("db"))

		if _, err := f.uc.CreateCheckout(context.Background(), CheckoutInput{ProfessionalID: 4, PlanType: "base", ReferralCode: "ABCD2345"}); err == nil {
			t.Fatalf("expected error")
		}
	})

	t.Run("payer email falls back to default", func(t *testing.T) {
		f := newCheckoutFixture(t)
		f.profs.EXPECT().GetByID(gomock.Any(), uint(4)).Return(entities.Professional{ID: 4, DisplayName: "Ana"}, nil)
		f.gateway.EXPECT().CreatePreference(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, req entities.PreferenceRequest) (entities.CheckoutPreference, error) {
			if req.PayerEmail != defaultPayerEmail {
				t.Fatalf("unexpected payer email %q", req.PayerEmail)
			}
			return pref, nil
		})

		if _, err := f.uc.CreateCheckout(context.Background(), CheckoutInput{ProfessionalID: 4, PlanType: "base"}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("gateway failure", func(t *testing.T) {
		f := newCheckoutFixture(t)
		f.profs.EXPECT().GetByID(gomock.Any(), uint(4)).Return(ana, nil)
		f.gateway.EXPECT().CreatePreference(gomock.Any(), gomock.Any()).Return(entities.CheckoutPreference{}, errors.New("timeout"))

		if _, err := f.uc.CreateCheckout(context.Background(), CheckoutInput{ProfessionalID: 4, PlanType: "base"}); err == nil {
			t.Fatalf("expected error")
		}
	})

	t.Run("gateway failure gives the referral back", func(t *testing.T) {
		f := newCheckoutFixture(t)
		code := entities.ReferralCode{ID: 1, OwnerID: 9, Code: "ABCD2345"}
		f.profs.EXPECT().GetByID(gomock.Any(), uint(4)).Return(ana, nil).Times(2)
		f.referrals.EXPECT().GetCodeByCode(gomock.Any(), "ABCD2345").Return(code, nil).Times(2)
		f.referrals.EXPECT().HasRedemption(gomock.Any(), uint(4)).Return(false, nil).Times(2)
		nextID := uint(0)
		f.referrals.EXPECT().CreateRedemption(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, r entities.ReferralRedemption) (entities.ReferralRedemption, error) {
			nextID++
			r.ID = nextID
			return r, nil
		}).Times(2)
		first := f.gateway.EXPECT().CreatePreference(gomock.Any(), gomock.Any()).Return(entities.CheckoutPreference{}, errors.New("timeout"))
		f.referrals.EXPECT().DeleteRedemption(gomock.Any(), uint(1)).Return(nil).After(first)
		f.gateway.EXPECT().CreatePreference(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, req entities.PreferenceRequest) (entities.CheckoutPreference, error) {
			if req.DiscountCents != 1000 {
				t.Fatalf("retry lost the discount: %+v", req)
			}
			return pref, nil
		}).After(first)

		in := CheckoutInput{ProfessionalID: 4, PlanType: "base", ReferralCode: "ABCD2345"}
		if _, err := f.uc.CreateCheckout(context.Background(), in); err == nil {
			t.Fatalf("expected error")
		}
		got, err := f.uc.CreateCheckout(context.Background(), in)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !got.ReferralApplied || got.DiscountCents != 1000 || got.ReferralMessage != "" {
			t.Fatalf("unexpected result: %+v", got)
		}
	})

	t.Run("revoke failure keeps the gateway error", func(t *testing.T) {
		f := newCheckoutFixture(t)
		f.profs.EXPECT().GetByID(gomock.Any(), uint(4)).Return(ana, nil)
		f.referrals.EXPECT().GetCodeByCode(gomock.Any(), "ABCD2345").Return(entities.ReferralCode{ID: 1, OwnerID: 9, Code: "ABCD2345"}, nil)
		f.referrals.EXPECT().HasRedemption(gomock.Any(), uint(4)).Return(false, nil)
		f.referrals.EXPECT().CreateRedemption(gomock.Any(), gomock.Any()).Return(entities.ReferralRedemption{ID: 3, ReferrerID: 9, ReferredID: 4, DiscountAmount: 1000}, nil)
		gatewayErr := errors.New("timeout")
		f.gateway.EXPECT().CreatePreference(gomock.Any(), gomock.Any()).Return(entities.CheckoutPreference{}, gatewayErr)
		f.referrals.EXPECT().DeleteRedemption(gomock.Any(), uint(3)).Return(errors.New("db"))

		_, err := f.uc.CreateCheckout(context.Background(), CheckoutInput{ProfessionalID: 4, PlanType: "base", ReferralCode: "ABCD2345"})
		if !errors.Is(err, gatewayErr) {
			t.Fatalf("expected gateway error, got %v", err)
		}
	})
}

func TestCheckoutUseCase_PaymentStatus(t *testing.T) {
	t.Run("blank id", func(t *testing.T) {
		f := newCheckoutFixture(t)
		if _, err := f.uc.PaymentStatus(context.Background(), "  "); !errors.Is(err, ErrInvalidPaymentID) {
			t.Fatalf("expected ErrInvalidPaymentID, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		f := newCheckoutFixture(t)
		f.gateway.EXPECT().GetPayment(gomock.Any(), "123").Return(entities.GatewayPayment{}, nil)

		if _, err := f.uc.PaymentStatus(context.Background(), "123"); !errors.Is(err, ErrGatewayPaymentNotFound) {
			t.Fatalf("expected ErrGatewayPaymentNotFound, got %v", err)
		}
	})

	t.Run("found", func(t *testing.T) {
		f := newCheckoutFixture(t)
		f.gateway.EXPECT().GetPayment(gomock.Any(), "123").Return(entities.GatewayPayment{ID: "123", Status: "approved"}, nil)

		gp, err := f.uc.PaymentStatus(context.Background(), " 123 ")
		if err != nil || gp.Status != "approved" {
			t.Fatalf("unexpected result: %+v err=%v", gp, err)
		}
	})
}

func TestCheckoutUseCase_Lists(t *testing.T) {
	t.Run("my payments are capped at fifty", func(t *testing.T) {
		f := newCheckoutFixture(t)
		f.payments.EXPECT().ListByProfessionalID(gomock.Any(), uint(4), 50).Return([]entities.Payment{{ID: 1}}, nil)

		got, err := f.uc.ListByProfessional(context.Background(), 4)
		if err != nil || len(got) != 1 {
			t.Fatalf("unexpected result: %+v err=%v", got, err)
		}
	})

	t.Run("admin list normalizes paging", func(t *testing.T) {
		f := newCheckoutFixture(t)
		f.payments.EXPECT().List(gomock.Any(), 50, 0).Return(nil, nil)
		f.payments.EXPECT().List(gomock.Any(), 200, 10).Return(nil, nil)

		if _, err := f.uc.ListAll(context.Background(), 0, -1); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, err := f.uc.ListAll(context.Background(), 1000, 10); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}
