package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"services-marketplace-server/config"
	"services-marketplace-server/types"
)

const tokenIssuer = "services-marketplace-server"

// JWTService handles JWT token operations
type JWTService struct {
	secret []byte
	expiry time.Duration
	now    func() time.Time
}

// NewJWTService creates a new JWT service
func NewJWTService(cfg config.JWTConfig) *JWTService {
	return &JWTService{
		secret: []byte(cfg.Secret),
		expiry: time.Duration(cfg.ExpiryHours) * time.Hour,
		now:    time.Now,
	}
}

// Token is the access token handed out on login.
type Token struct {
	AccessToken string `json:"access_token"`
	ExpiresIn   int64  `json:"expires_in"`
	TokenType   string `json:"token_type"`
}

// GenerateToken signs an HS256 access token for one login of a user.
func (js *JWTService) GenerateToken(userID, loginID uint) (*Token, error) {
	now := js.now()
	claims := &types.Claims{
		UserID:  userID,
		LoginID: loginID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(js.expiry)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    tokenIssuer,
			Subject:   fmt.Sprint(userID),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(js.secret)
	if err != nil {
		return nil, err
	}

	return &Token{
		AccessToken: signed,
		ExpiresIn:   int64(js.expiry.Seconds()),
		TokenType:   "Bearer",
	}, nil
}

// ParseToken verifies signature, algorithm, issuer and expiry.
func (js *JWTService) ParseToken(tokenString string) (*types.Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &types.Claims{}, func(token *jwt.Token) (interface{}, error) {
		return js.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithIssuer(tokenIssuer))
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*types.Claims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token claims")
	}
	return claims, nil
}
