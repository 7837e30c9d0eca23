package pdf

import (
	"bytes"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/testbuddy/marketplace_service/internal/core/domain"
)

func TestRenderCertificate(t *testing.T) {
	r := NewCertificateRenderer("")

	doc, err := r.RenderCertificate(domain.Certificate{
		Serial:          "01JBZ3V7Y2Q8M4K6T9N0P5R1SX",
		HolderName:      "Seán Ó Briain",
		Age:             24,
		ExperienceLevel: domain.Beginner,
		Quote:           domain.Quote{ProviderName: "DiveSafe Co.", Amount: decimal.RequireFromString("1287.4")},
		IssuedAt:        time.Date(2025, 11, 3, 10, 0, 0, 0, time.UTC),
	})
	if err != nil {
		t.Fatalf("RenderCertificate: %v", err)
	}
	if !bytes.HasPrefix(doc, []byte("%PDF-")) {
		t.Errorf("output is not a PDF: %q", doc[:min(len(doc), 16)])
	}
	if len(doc) < 500 {
		t.Errorf("suspiciously small document: %d bytes", len(doc))
	}
}
