package services

import (
	"context"

	"disasterwatch/internal/adapters/api"
	"disasterwatch/internal/core/domain"
)

// AuthAPI is the remote authentication surface the auth service needs
type AuthAPI interface {
	Register(ctx context.Context, input api.RegisterInput) (*domain.TokenPair, error)
	Authenticate(ctx context.Context, input api.LoginInput) (*domain.TokenPair, error)
}

// SosAPI is the remote SOS listing surface the sos service needs
type SosAPI interface {
	ListAllSos(ctx context.Context, accessToken string) ([]domain.SosRecord, error)
}
