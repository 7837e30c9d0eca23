package ports

import (
	"context"

	"github.com/testbuddy/marketplace_service/internal/core/domain"
)

// VehicleRegistry returns domain.ErrLookupNotFound for unknown registrations;
// transport failures are KindNetwork errors.
type VehicleRegistry interface {
	Lookup(ctx context.Context, registration string) (*domain.VehicleRecord, error)
}

type CertificateRenderer interface {
	RenderCertificate(cert domain.Certificate) ([]byte, error)
}
