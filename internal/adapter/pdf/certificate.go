package pdf

import (
	"bytes"
	"fmt"

	"github.com/go-pdf/fpdf"
	"github.com/testbuddy/marketplace_service/internal/core/domain"
)

type CertificateRenderer struct {
	issuer string
}

func NewCertificateRenderer(issuer string) *CertificateRenderer {
	if issuer == "" {
		issuer = "TestBuddy"
	}
	return &CertificateRenderer{issuer: issuer}
}

// RenderCertificate lays out a single landscape A4 page.
func (r *CertificateRenderer) RenderCertificate(cert domain.Certificate) ([]byte, error) {
	doc := fpdf.New("L", "mm", "A4", "")
	doc.SetTitle("Insurance Quote Certificate", true)
	doc.SetAuthor(r.issuer, true)
	doc.SetCreationDate(cert.IssuedAt)
	tr := doc.UnicodeTranslatorFromDescriptor("")

	doc.AddPage()
	pageW, _ := doc.GetPageSize()
	left, _, right, _ := doc.GetMargins()
	width := pageW - left - right

	doc.SetLineWidth(1.2)
	doc.SetDrawColor(20, 60, 120)
	doc.Rect(8, 8, pageW-16, 194, "D")

	doc.SetFont("Helvetica", "B", 30)
	doc.SetTextColor(20, 60, 120)
	doc.Ln(18)
	doc.CellFormat(width, 14, "Insurance Quote Certificate", "", 1, "C", false, 0, "")

	doc.SetFont("Helvetica", "", 13)
	doc.SetTextColor(90, 90, 90)
	doc.CellFormat(width, 8, tr("Issued by "+r.issuer), "", 1, "C", false, 0, "")
	doc.Ln(10)

	doc.SetFont("Helvetica", "B", 22)
	doc.SetTextColor(0, 0, 0)
	doc.CellFormat(width, 12, tr(cert.HolderName), "", 1, "C", false, 0, "")
	doc.Ln(6)

	rows := [][2]string{
		{"Age", fmt.Sprintf("%d", cert.Age)},
		{"Experience level", string(cert.ExperienceLevel)},
		{"Grade", cert.Grade()},
		{"Provider", cert.Quote.ProviderName},
		{"Annual premium", "€" + cert.Quote.Amount.StringFixed(2)},
		{"Issue date", cert.IssuedAt.Format("2 January 2006")},
	}
	labelW := width / 2
	for _, row := range rows {
		doc.SetFont("Helvetica", "", 14)
		doc.CellFormat(labelW, 9, tr(row[0]+":"), "", 0, "R", false, 0, "")
		doc.SetFont("Helvetica", "B", 14)
		doc.CellFormat(labelW, 9, tr("  "+row[1]), "", 1, "L", false, 0, "")
	}

	doc.SetY(-28)
	doc.SetFont("Courier", "", 10)
	doc.SetTextColor(110, 110, 110)
	doc.CellFormat(width, 6, "Serial "+cert.Serial, "", 1, "C", false, 0, "")

	if err := doc.Error(); err != nil {
		return nil, fmt.Errorf("render certificate: %w", err)
	}

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, fmt.Errorf("render certificate: %w", err)
	}
	return buf.Bytes(), nil
}
