package ports

import "github.com/testbuddy/marketplace_service/internal/core/domain"

type TokenService interface {
	VerifyToken(token string) (*domain.TokenPayload, error)
}
