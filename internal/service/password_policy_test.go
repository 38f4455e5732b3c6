package service

import (
	"errors"
	"testing"

	"github.com/wabi-shop/internal/config"
)

func TestValidatePassword(t *testing.T) {
	policy := config.PasswordPolicyConfig{
		MinLength:     8,
		RequireUpper:  true,
		RequireLower:  true,
		RequireNumber: true,
	}

	cases := []struct {
		name     string
		password string
		wantKey  string
	}{
		{name: "valid", password: "Sunset99", wantKey: ""},
		{name: "too short", password: "Ab1", wantKey: "error.password_min_length"},
		{name: "missing upper", password: "sunset99", wantKey: "error.password_require_upper"},
		{name: "missing lower", password: "SUNSET99", wantKey: "error.password_require_lower"},
		{name: "missing number", password: "SunsetNow", wantKey: "error.password_require_number"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := validatePassword(policy, tc.password)
			if tc.wantKey == "" {
				if err != nil {
					t.Fatalf("want ok got %v", err)
				}
				return
			}
			if !errors.Is(err, ErrWeakPassword) {
				t.Fatalf("policy error should match ErrWeakPassword, got %v", err)
			}
			var policyErr passwordPolicyError
			if !errors.As(err, &policyErr) {
				t.Fatalf("want passwordPolicyError got %T", err)
			}
			if policyErr.Key() != tc.wantKey {
				t.Fatalf("key want %s got %s", tc.wantKey, policyErr.Key())
			}
		})
	}
}

func TestValidatePasswordMinLengthCountsRunes(t *testing.T) {
	policy := config.PasswordPolicyConfig{MinLength: 6}
	// 多字节字符按字符数而不是字节数计
	if err := validatePassword(policy, "密码密码密码"); err != nil {
		t.Fatalf("six runes should satisfy min length 6, got %v", err)
	}
	if err := validatePassword(policy, "密码"); !errors.Is(err, ErrWeakPassword) {
		t.Fatalf("two runes should fail min length 6, got %v", err)
	}
}

func TestValidatePasswordEmptyPolicyAllowsAnything(t *testing.T) {
	if err := validatePassword(config.PasswordPolicyConfig{}, "x"); err != nil {
		t.Fatalf("empty policy should accept any password, got %v", err)
	}
}

func TestPasswordPolicyErrorCarriesArgs(t *testing.T) {
	err := validatePassword(config.PasswordPolicyConfig{MinLength: 10}, "short")
	var policyErr passwordPolicyError
	if !errors.As(err, &policyErr) {
		t.Fatalf("want passwordPolicyError got %T", err)
	}
	args := policyErr.Args()
	if len(args) != 1 || args[0] != 10 {
		t.Fatalf("args should carry the minimum length, got %v", args)
	}
}
