package services

import (
	"context"
	"errors"
	"testing"

	"services-marketplace-server/config"
	"services-marketplace-server/database"
	"services-marketplace-server/models"
	"services-marketplace-server/testutil"
)

func registerInput(mail string, phone int64, main string) RegisterInput {
	return RegisterInput{
		User: models.UserInput{
			FirstName:   "Luis",
			Mail:        mail,
			PhoneNumber: testutil.Ptr(phone),
			RutDigit:    "7",
			RutNumber:   testutil.Ptr(9876543),
			Age:         testutil.Ptr(41),
			Rating:      testutil.Ptr(float32(3.5)),
		},
		Main:     main,
		Password: "correct horse",
	}
}

func newAuthService(t *testing.T) (*AuthService, *JWTService) {
	t.Helper()
	st := testutil.OpenStore(t)
	js := NewJWTService(config.JWTConfig{Secret: "test", ExpiryHours: 1})
	return NewAuthService(st, js), js
}

func TestRegisterThenLogin(t *testing.T) {
	as, js := newAuthService(t)
	ctx := context.Background()

	user, login, err := as.Register(ctx, registerInput("l@x.com", 5550001, "luis"))
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if login.UserID == nil || *login.UserID != user.ID {
		t.Fatalf("login not linked to user: %+v", login)
	}
	if login.PassHash == "correct horse" {
		t.Fatalf("password stored in clear")
	}

	tok, err := as.Login(ctx, "luis", "correct horse")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	claims, err := js.ParseToken(tok.AccessToken)
	if err != nil {
		t.Fatalf("parse token: %v", err)
	}
	if claims.UserID != user.ID || claims.LoginID != login.ID {
		t.Fatalf("unexpected claims %+v", claims)
	}

	if _, err := as.Login(ctx, "luis", "wrong"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected invalid credentials for wrong password, got %v", err)
	}
	if _, err := as.Login(ctx, "nobody", "correct horse"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected invalid credentials for unknown login, got %v", err)
	}
}

func TestRegisterIsAtomic(t *testing.T) {
	as, _ := newAuthService(t)
	ctx := context.Background()

	if _, _, err := as.Register(ctx, registerInput("first@x.com", 1, "taken")); err != nil {
		t.Fatalf("register: %v", err)
	}
	_, _, err := as.Register(ctx, registerInput("second@x.com", 2, "taken"))
	if !errors.Is(err, database.ErrUniqueViolation) {
		t.Fatalf("expected unique violation on main, got %v", err)
	}
	if _, err := as.store.Users.FirstBy(ctx, "mail", "second@x.com"); !errors.Is(err, database.ErrNotFound) {
		t.Fatalf("user row must be rolled back with its login, got %v", err)
	}
}

func TestAddAndReplaceLogin(t *testing.T) {
	as, _ := newAuthService(t)
	ctx := context.Background()

	user, _, err := as.Register(ctx, registerInput("m@x.com", 3, "main-one"))
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	extra, err := as.AddLogin(ctx, models.LoginInput{UserID: &user.ID, Main: "main-two", Password: "another pw"})
	if err != nil {
		t.Fatalf("add login: %v", err)
	}
	if _, err := as.ReplaceLogin(ctx, extra.ID, models.LoginInput{UserID: &user.ID, Main: "main-three", Password: "rotated pw"}); err != nil {
		t.Fatalf("replace login: %v", err)
	}
	if _, err := as.Login(ctx, "main-two", "another pw"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("old main should no longer log in, got %v", err)
	}
	if _, err := as.Login(ctx, "main-three", "rotated pw"); err != nil {
		t.Fatalf("replaced login should work: %v", err)
	}

	missing := uint(999)
	_, err = as.AddLogin(ctx, models.LoginInput{UserID: &missing, Main: "ghost", Password: "ghost pw"})
	if !errors.Is(err, database.ErrForeignKeyViolation) {
		t.Fatalf("expected foreign key violation for a missing user, got %v", err)
	}
}
