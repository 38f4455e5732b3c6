package service

import (
	"errors"
	"testing"
	"time"

	"github.com/wabi-shop/internal/config"
	"github.com/wabi-shop/internal/models"
	"github.com/wabi-shop/internal/repository"

	"gorm.io/gorm"
)

func setupUserAuthServiceTest(t *testing.T) (*UserAuthService, *gorm.DB) {
	t.Helper()
	db := openTestDB(t)
	cfg := &config.Config{}
	cfg.UserJWT.SecretKey = "test-user-jwt-secret"
	cfg.UserJWT.ExpireHours = 24
	cfg.Security.PasswordPolicy = config.PasswordPolicyConfig{
		MinLength:     8,
		RequireUpper:  true,
		RequireLower:  true,
		RequireNumber: true,
	}
	return NewUserAuthService(
		cfg,
		repository.NewUserRepository(db),
		repository.NewCustomerRepository(db),
	), db
}

func validRegisterInput(email string) RegisterInput {
	return RegisterInput{
		FirstName:       "Asha",
		LastName:        "Rao",
		Email:           email,
		Password:        "Sunset99",
		ConfirmPassword: "Sunset99",
	}
}

func TestRegisterReturnsLoginState(t *testing.T) {
	svc, _ := setupUserAuthServiceTest(t)

	user, token, expiresAt, err := svc.Register(validRegisterInput("  Asha@Example.COM "))
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}
	if user.Email != "asha@example.com" {
		t.Fatalf("email should be normalized, got %s", user.Email)
	}
	if token == "" {
		t.Fatalf("register should return a token")
	}
	if !expiresAt.After(time.Now()) {
		t.Fatalf("token expiry should be in the future, got %v", expiresAt)
	}
	if user.PasswordHash == "Sunset99" {
		t.Fatalf("password must not be stored in plaintext")
	}

	claims, err := svc.ParseUserJWT(token)
	if err != nil {
		t.Fatalf("parse token failed: %v", err)
	}
	if claims.UserID != user.ID || claims.Email != user.Email {
		t.Fatalf("claims mismatch: %+v", claims)
	}
}

func TestRegisterValidation(t *testing.T) {
	svc, _ := setupUserAuthServiceTest(t)

	cases := []struct {
		name    string
		mutate  func(*RegisterInput)
		wantErr error
	}{
		{
			name:    "invalid email",
			mutate:  func(in *RegisterInput) { in.Email = "not-an-email" },
			wantErr: ErrInvalidEmail,
		},
		{
			name:    "empty email",
			mutate:  func(in *RegisterInput) { in.Email = "   " },
			wantErr: ErrInvalidEmail,
		},
		{
			name: "password mismatch",
			mutate: func(in *RegisterInput) {
				in.ConfirmPassword = "Sunrise99"
			},
			wantErr: ErrPasswordMismatch,
		},
		{
			name: "weak password",
			mutate: func(in *RegisterInput) {
				in.Password = "short"
				in.ConfirmPassword = "short"
			},
			wantErr: ErrWeakPassword,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			input := validRegisterInput("valid@example.com")
			tc.mutate(&input)
			if _, _, _, err := svc.Register(input); !errors.Is(err, tc.wantErr) {
				t.Fatalf("want %v got %v", tc.wantErr, err)
			}
		})
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc, _ := setupUserAuthServiceTest(t)

	if _, _, _, err := svc.Register(validRegisterInput("dup@example.com")); err != nil {
		t.Fatalf("first register failed: %v", err)
	}
	// 大小写不同也算重复
	if _, _, _, err := svc.Register(validRegisterInput("DUP@example.com")); !errors.Is(err, ErrEmailExists) {
		t.Fatalf("want ErrEmailExists got %v", err)
	}
}

func TestLoginChecksPassword(t *testing.T) {
	svc, db := setupUserAuthServiceTest(t)

	registered, _, _, err := svc.Register(validRegisterInput("login@example.com"))
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}

	if _, _, _, err := svc.Login("login@example.com", "WrongPass1"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("wrong password want ErrInvalidCredentials got %v", err)
	}
	if _, _, _, err := svc.Login("nobody@example.com", "Sunset99"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("unknown email want ErrInvalidCredentials got %v", err)
	}

	user, token, _, err := svc.Login(" LOGIN@example.com ", "Sunset99")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if user.ID != registered.ID {
		t.Fatalf("login returned wrong user: %d", user.ID)
	}
	if token == "" {
		t.Fatalf("login should return a token")
	}

	var reloaded models.User
	if err := db.First(&reloaded, registered.ID).Error; err != nil {
		t.Fatalf("reload user failed: %v", err)
	}
	if reloaded.LastLoginAt == nil {
		t.Fatalf("last login should be recorded")
	}
}

func TestEnsureCustomerLazyCreate(t *testing.T) {
	svc, db := setupUserAuthServiceTest(t)

	user, _, _, err := svc.Register(validRegisterInput("lazy@example.com"))
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}

	customer, err := svc.EnsureCustomer(user.ID)
	if err != nil {
		t.Fatalf("ensure customer failed: %v", err)
	}
	if customer.UserID != user.ID {
		t.Fatalf("customer should belong to user %d, got %d", user.ID, customer.UserID)
	}
	if customer.Name != "Asha Rao" {
		t.Fatalf("customer name should come from user names, got %q", customer.Name)
	}
	if customer.Email != "lazy@example.com" {
		t.Fatalf("customer email should come from user, got %s", customer.Email)
	}

	again, err := svc.EnsureCustomer(user.ID)
	if err != nil {
		t.Fatalf("second ensure failed: %v", err)
	}
	if again.ID != customer.ID {
		t.Fatalf("ensure should be idempotent, got %d and %d", customer.ID, again.ID)
	}

	var count int64
	if err := db.Model(&models.Customer{}).Where("user_id = ?", user.ID).Count(&count).Error; err != nil {
		t.Fatalf("count customers failed: %v", err)
	}
	if count != 1 {
		t.Fatalf("user should have exactly one customer profile, got %d", count)
	}

	if _, err := svc.EnsureCustomer(9999); !errors.Is(err, ErrNotFound) {
		t.Fatalf("unknown user want ErrNotFound got %v", err)
	}
}

func TestUpdateProfilePartialFields(t *testing.T) {
	svc, _ := setupUserAuthServiceTest(t)

	user, _, _, err := svc.Register(validRegisterInput("profile@example.com"))
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}

	phone := " 9876543210 "
	customer, err := svc.UpdateProfile(user.ID, UpdateProfileInput{Phone: &phone})
	if err != nil {
		t.Fatalf("update phone failed: %v", err)
	}
	if customer.Phone != "9876543210" {
		t.Fatalf("phone should be trimmed, got %q", customer.Phone)
	}
	if customer.Name != "Asha Rao" {
		t.Fatalf("untouched fields must keep their value, got %q", customer.Name)
	}

	name := "A. Rao"
	email := "New@Example.com"
	customer, err = svc.UpdateProfile(user.ID, UpdateProfileInput{Name: &name, Email: &email})
	if err != nil {
		t.Fatalf("update name/email failed: %v", err)
	}
	if customer.Name != "A. Rao" || customer.Email != "new@example.com" {
		t.Fatalf("update result wrong: name=%q email=%q", customer.Name, customer.Email)
	}
	if customer.Phone != "9876543210" {
		t.Fatalf("phone should survive later updates, got %q", customer.Phone)
	}

	bad := "broken email"
	if _, err := svc.UpdateProfile(user.ID, UpdateProfileInput{Email: &bad}); !errors.Is(err, ErrInvalidEmail) {
		t.Fatalf("invalid email want ErrInvalidEmail got %v", err)
	}
}
