// Package service
package service

import (
	"github.com/golang-jwt/jwt/v5"
	c "github.com/half-nothing/flylog/internal/interfaces/config"
	. "github.com/half-nothing/flylog/internal/interfaces/service"
	"github.com/thanhpk/randstr"
	"time"
)

var _ TokenServiceInterface = (*TokenService)(nil)

type TokenService struct {
	config *c.JWTConfig
}

func NewTokenService(config *c.JWTConfig) *TokenService {
	return &TokenService{config: config}
}

func (tokenService *TokenService) IssueToken(uid string) (string, error) {
	now := time.Now()
	claims := &Claims{
		Uid: uid,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        randstr.Hex(16),
			Issuer:    tokenService.config.Issuer,
			Subject:   uid,
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(tokenService.config.ExpiresDuration)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS512, claims)
	return token.SignedString([]byte(tokenService.config.Secret))
}

func (tokenService *TokenService) VerifyToken(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(_ *jwt.Token) (interface{}, error) {
		return []byte(tokenService.config.Secret), nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS512.Alg()}),
		jwt.WithIssuer(tokenService.config.Issuer),
		jwt.WithExpirationRequired(),
	)
	if err != nil || !token.Valid || claims.Uid == "" {
		return nil, ErrTokenInvalid
	}
	return claims, nil
}
