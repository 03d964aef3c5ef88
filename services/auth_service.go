package services

import (
	"context"
	"errors"
	"log"

	"services-marketplace-server/database"
	"services-marketplace-server/models"
	"services-marketplace-server/store"
	"services-marketplace-server/utils"
)

// ErrInvalidCredentials covers both an unknown login and a wrong password.
var ErrInvalidCredentials = errors.New("invalid credentials")

// RegisterInput creates a user together with its first login.
type RegisterInput struct {
	User     models.UserInput `json:"user"`
	Main     string           `json:"main" binding:"required,max=30"`
	Password string           `json:"password" binding:"required,min=6,max=72"`
}

// AuthService manages user_login rows and issues tokens for them.
type AuthService struct {
	store *store.Store
	jwt   *JWTService
}

func NewAuthService(st *store.Store, jwtService *JWTService) *AuthService {
	return &AuthService{store: st, jwt: jwtService}
}

// Register inserts the user and its login in one transaction, so a rejected
// login leaves no user behind.
func (as *AuthService) Register(ctx context.Context, in RegisterInput) (*models.User, *models.UserLogin, error) {
	hash, err := utils.HashPassword(in.Password)
	if err != nil {
		return nil, nil, err
	}

	user := in.User.ToModel()
	login := models.UserLogin{Main: in.Main, PassHash: hash}
	err = as.store.Transaction(ctx, func(tx *store.Store) error {
		if err := tx.Users.Create(ctx, &user); err != nil {
			return err
		}
		login.UserID = &user.ID
		return tx.Logins.Create(ctx, &login)
	})
	if err != nil {
		return nil, nil, err
	}

	log.Printf("👤 Registered user %d with login %d", user.ID, login.ID)
	return &user, &login, nil
}

// AddLogin attaches another login to an existing user.
func (as *AuthService) AddLogin(ctx context.Context, in models.LoginInput) (*models.UserLogin, error) {
	hash, err := utils.HashPassword(in.Password)
	if err != nil {
		return nil, err
	}
	login := models.UserLogin{Main: in.Main, PassHash: hash, UserID: in.UserID}
	if err := as.store.Logins.Create(ctx, &login); err != nil {
		return nil, err
	}
	return &login, nil
}

// ReplaceLogin rewrites a login row, re-hashing the new password.
func (as *AuthService) ReplaceLogin(ctx context.Context, id uint, in models.LoginInput) (*models.UserLogin, error) {
	hash, err := utils.HashPassword(in.Password)
	if err != nil {
		return nil, err
	}
	login := models.UserLogin{ID: id, Main: in.Main, PassHash: hash, UserID: in.UserID}
	if err := as.store.Logins.Update(ctx, id, &login); err != nil {
		return nil, err
	}
	return &login, nil
}

// Login checks a main/password pair and returns an access token.
func (as *AuthService) Login(ctx context.Context, main, password string) (*Token, error) {
	login, err := as.store.LoginByMain(ctx, main)
	if errors.Is(err, database.ErrNotFound) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}
	if login.UserID == nil || !utils.CheckPasswordHash(password, login.PassHash) {
		return nil, ErrInvalidCredentials
	}
	return as.jwt.GenerateToken(*login.UserID, login.ID)
}
