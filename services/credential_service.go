package services

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// StaticTokenProvider hands out a fixed API token (e.g. from the
// environment).
type StaticTokenProvider string

func (p StaticTokenProvider) Token(_ context.Context) (string, error) {
	if p == "" {
		return "", errors.New("upstream token is empty")
	}
	return string(p), nil
}

// ServiceTokenClaims are the claims on a self-issued service token.
type ServiceTokenClaims struct {
	Service string `json:"service"`
	jwt.RegisteredClaims
}

// ServiceTokenProvider signs short-lived HS256 tokens for upstream calls and
// caches them until shortly before expiry.
type ServiceTokenProvider struct {
	secret  []byte
	service string
	ttl     time.Duration

	mu      sync.Mutex
	token   string
	expires time.Time
}

// NewServiceTokenProvider builds a provider. Tokens live 15 minutes.
func NewServiceTokenProvider(secret, service string) (*ServiceTokenProvider, error) {
	if secret == "" {
		return nil, errors.New("service token secret cannot be empty")
	}
	return &ServiceTokenProvider{
		secret:  []byte(secret),
		service: service,
		ttl:     15 * time.Minute,
	}, nil
}

func (p *ServiceTokenProvider) Token(_ context.Context) (string, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	// Reuse until one minute before expiry.
	if p.token != "" && time.Until(p.expires) > time.Minute {
		return p.token, nil
	}

	now := time.Now()
	expiresAt := now.Add(p.ttl)
	claims := ServiceTokenClaims{
		Service: p.service,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    p.service,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(p.secret)
	if err != nil {
		return "", err
	}
	p.token = signed
	p.expires = expiresAt
	return signed, nil
}
