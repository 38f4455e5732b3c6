package service

import (
	"errors"
	"strings"
	"testing"

	"github.com/wabi-shop/internal/config"
	"github.com/wabi-shop/internal/models"

	"github.com/shopspring/decimal"
)

func TestSendOrderPlacedEmailGuards(t *testing.T) {
	input := OrderPlacedEmailInput{OrderNo: "ORD-20260829-ABCDEF"}

	disabled := NewEmailService(&config.EmailConfig{Enabled: false})
	if err := disabled.SendOrderPlacedEmail("shop@example.com", input); !errors.Is(err, ErrEmailServiceDisabled) {
		t.Fatalf("disabled service want ErrEmailServiceDisabled got %v", err)
	}

	unconfigured := NewEmailService(&config.EmailConfig{Enabled: true})
	if err := unconfigured.SendOrderPlacedEmail("shop@example.com", input); !errors.Is(err, ErrEmailServiceNotConfigured) {
		t.Fatalf("missing host want ErrEmailServiceNotConfigured got %v", err)
	}

	badReceiver := NewEmailService(&config.EmailConfig{
		Enabled: true,
		Host:    "smtp.example.com",
		Port:    587,
		From:    "noreply@example.com",
	})
	if err := badReceiver.SendOrderPlacedEmail("not-an-address", input); !errors.Is(err, ErrInvalidEmail) {
		t.Fatalf("bad receiver want ErrInvalidEmail got %v", err)
	}
}

func TestBuildFromAddress(t *testing.T) {
	if got := buildFromAddress("noreply@example.com", ""); got != "noreply@example.com" {
		t.Fatalf("empty name should return bare address, got %s", got)
	}
	got := buildFromAddress("noreply@example.com", "Wabi Shop")
	if !strings.Contains(got, "noreply@example.com") {
		t.Fatalf("named address missing email: %s", got)
	}
	if !strings.Contains(got, "Wabi Shop") {
		t.Fatalf("named address missing display name: %s", got)
	}
}

func TestBuildEmailMessageHeaders(t *testing.T) {
	msg := buildEmailMessage("noreply@example.com", "shop@example.com", "New COD order", "body text")
	for _, header := range []string{
		"From: noreply@example.com\r\n",
		"To: shop@example.com\r\n",
		"Content-Type: text/plain; charset=UTF-8\r\n",
	} {
		if !strings.Contains(msg, header) {
			t.Fatalf("message missing header %q:\n%s", header, msg)
		}
	}
	if !strings.HasSuffix(msg, "\r\n\r\nbody text") {
		t.Fatalf("body should follow blank line, got:\n%s", msg)
	}
}

func TestNormalizeEmailSendError(t *testing.T) {
	if err := normalizeEmailSendError(nil); err != nil {
		t.Fatalf("nil error should stay nil, got %v", err)
	}

	plain := errors.New("connection refused")
	if err := normalizeEmailSendError(plain); !errors.Is(err, plain) {
		t.Fatalf("unrelated errors should pass through, got %v", err)
	}

	rejected := []string{
		"550 5.1.1 recipient address rejected",
		"no such user here",
		"unknown mailbox",
	}
	for _, message := range rejected {
		if err := normalizeEmailSendError(errors.New(message)); !errors.Is(err, ErrEmailRecipientRejected) {
			t.Fatalf("%q should map to ErrEmailRecipientRejected, got %v", message, err)
		}
	}
}

func TestOrderPlacedEmailInputTotalFormat(t *testing.T) {
	input := OrderPlacedEmailInput{
		OrderNo:    "ORD-20260829-ABCDEF",
		GrandTotal: models.NewMoneyFromDecimal(decimal.NewFromInt(1099)),
		Currency:   "INR",
	}
	if input.GrandTotal.String() != "1099" {
		t.Fatalf("grand total format want 1099 got %s", input.GrandTotal.String())
	}
}
