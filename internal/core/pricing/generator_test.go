package pricing

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/testbuddy/marketplace_service/internal/core/domain"
)

func sampleProfile() domain.RiskProfile {
	return domain.RiskProfile{
		Age:               32,
		YearsOfExperience: 5,
		AnnualMileage:     10000,
		NoClaimsYears:     3,
		Vehicle: domain.Vehicle{
			Type:           domain.Standard,
			EstimatedValue: decimal.NewFromInt(24000),
		},
	}
}

func TestGenerateQuotes_OnePerProviderInOrder(t *testing.T) {
	quotes := GenerateQuotes(sampleProfile())

	if len(quotes) != len(Providers) {
		t.Fatalf("expected %d quotes, got %d", len(Providers), len(quotes))
	}
	for i, q := range quotes {
		if q.ProviderName != Providers[i] {
			t.Errorf("quote %d: expected provider %q, got %q", i, Providers[i], q.ProviderName)
		}
		if !q.Amount.IsPositive() {
			t.Errorf("quote %d: expected positive amount, got %s", i, q.Amount)
		}
	}
}

func TestGenerateQuotes_ConcreteScenario(t *testing.T) {
	// 500 * 1.0 age * 1.0 exp * 1.0 type * 2.0 value * 1.0 mileage * 0.85 ncd = 850
	want := []string{"850", "875.5", "901", "926.5", "952"}

	quotes := GenerateQuotes(sampleProfile())
	for i, q := range quotes {
		expected := decimal.RequireFromString(want[i])
		if !q.Amount.Equal(expected) {
			t.Errorf("%s: expected %s, got %s", q.ProviderName, expected, q.Amount)
		}
		if i > 0 && !q.Amount.GreaterThan(quotes[i-1].Amount) {
			t.Errorf("%s: expected amount above previous provider", q.ProviderName)
		}
	}
}

func TestGenerateQuotes_CompanyModifierStep(t *testing.T) {
	profile := sampleProfile()
	profile.Age = 22
	profile.Vehicle.Type = domain.SUV
	base := Factors(profile).Product()
	modifiers := []string{"1", "1.03", "1.06", "1.09", "1.12"}

	for i, q := range GenerateQuotes(profile) {
		expected := base.Mul(decimal.RequireFromString(modifiers[i])).Round(2)
		if !q.Amount.Equal(expected) {
			t.Errorf("index %d: expected %s, got %s", i, expected, q.Amount)
		}
	}
}

func TestGenerateQuotes_MonotonicInVehicleValue(t *testing.T) {
	profile := sampleProfile()
	var previous []domain.Quote
	for value := int64(5000); value <= 80000; value += 5000 {
		profile.Vehicle.EstimatedValue = decimal.NewFromInt(value)
		current := GenerateQuotes(profile)
		if previous != nil {
			for i := range current {
				if !current[i].Amount.GreaterThan(previous[i].Amount) {
					t.Fatalf("value %d, provider %s: %s not above %s",
						value, current[i].ProviderName, current[i].Amount, previous[i].Amount)
				}
			}
		}
		previous = current
	}
}

func TestGenerateQuotes_Idempotent(t *testing.T) {
	profile := sampleProfile()
	profile.Vehicle.EstimatedValue = decimal.RequireFromString("17333.33")
	profile.Vehicle.Type = domain.Sports

	first := GenerateQuotes(profile)
	second := GenerateQuotes(profile)
	for i := range first {
		if first[i].Amount.String() != second[i].Amount.String() {
			t.Errorf("index %d: representation differs %s vs %s", i, first[i].Amount, second[i].Amount)
		}
	}
}

func TestGenerateQuotes_MissingValueDefaultsToBase(t *testing.T) {
	withDefault := sampleProfile()
	withDefault.Vehicle.EstimatedValue = decimal.Zero
	withBase := sampleProfile()
	withBase.Vehicle.EstimatedValue = BaseCarValue

	a, b := GenerateQuotes(withDefault), GenerateQuotes(withBase)
	for i := range a {
		if !a[i].Amount.Equal(b[i].Amount) {
			t.Errorf("index %d: expected %s, got %s", i, b[i].Amount, a[i].Amount)
		}
	}
}

func TestGenerateQuotes_UnknownTypePricedAsStandard(t *testing.T) {
	unknown := sampleProfile()
	unknown.Vehicle.Type = "Hovercraft"

	a, b := GenerateQuotes(unknown), GenerateQuotes(sampleProfile())
	for i := range a {
		if !a[i].Amount.Equal(b[i].Amount) {
			t.Errorf("index %d: expected %s, got %s", i, b[i].Amount, a[i].Amount)
		}
	}
}

func TestExperienceFactor_Bands(t *testing.T) {
	tests := []struct {
		years int
		want  string
	}{
		{0, "1.5"},
		{1, "1.5"},
		{2, "1.3"},
		{4, "1.3"},
		{5, "1.0"},
		{9, "1.0"},
		{10, "0.8"},
		{99, "0.8"},
		{150, "0.8"},
	}
	for _, tt := range tests {
		got := ExperienceFactor(tt.years)
		if !got.Equal(decimal.RequireFromString(tt.want)) {
			t.Errorf("ExperienceFactor(%d) = %s, want %s", tt.years, got, tt.want)
		}
	}
}

func TestNCDFactor_Floor(t *testing.T) {
	tests := []struct {
		years int
		want  string
	}{
		{0, "1"},
		{3, "0.85"},
		{6, "0.7"},
		{7, "0.7"},
		{100, "0.7"},
	}
	for _, tt := range tests {
		got := NCDFactor(tt.years)
		if !got.Equal(decimal.RequireFromString(tt.want)) {
			t.Errorf("NCDFactor(%d) = %s, want %s", tt.years, got, tt.want)
		}
	}
}

func TestAgeAndMileageFactors(t *testing.T) {
	ages := map[int]string{18: "1.3", 24: "1.3", 25: "1", 40: "1", 41: "1.1"}
	for age, want := range ages {
		if got := AgeFactor(age); !got.Equal(decimal.RequireFromString(want)) {
			t.Errorf("AgeFactor(%d) = %s, want %s", age, got, want)
		}
	}

	mileages := map[int]string{4999: "0.9", 5000: "1", 15000: "1", 15001: "1.15"}
	for km, want := range mileages {
		if got := MileageFactor(km); !got.Equal(decimal.RequireFromString(want)) {
			t.Errorf("MileageFactor(%d) = %s, want %s", km, got, want)
		}
	}
}

func TestTypeFactor(t *testing.T) {
	tests := map[domain.VehicleType]string{
		domain.Sports:   "1.6",
		domain.SUV:      "1.3",
		domain.Electric: "0.9",
		domain.Standard: "1.0",
		"Tractor":       "1.0",
	}
	for vt, want := range tests {
		if got := TypeFactor(vt); !got.Equal(decimal.RequireFromString(want)) {
			t.Errorf("TypeFactor(%s) = %s, want %s", vt, got, want)
		}
	}
}

func TestNormalize_Lenient(t *testing.T) {
	profile := domain.RiskProfile{
		Age:               -3,
		YearsOfExperience: 140,
		AnnualMileage:     -1,
		NoClaimsYears:     -2,
		Vehicle:           domain.Vehicle{Type: "Hovercraft"},
	}

	got, err := Normalize(profile, domain.PolicyLenient)
	if err != nil {
		t.Fatalf("lenient policy should not fail, got %v", err)
	}
	if got.Age != 0 || got.AnnualMileage != 0 || got.NoClaimsYears != 0 {
		t.Errorf("expected negatives coerced to 0, got %+v", got)
	}
	if got.YearsOfExperience != MaxExperienceYears {
		t.Errorf("expected experience clamped to %d, got %d", MaxExperienceYears, got.YearsOfExperience)
	}
	if got.Vehicle.Type != domain.Standard {
		t.Errorf("expected Standard, got %s", got.Vehicle.Type)
	}
	if !got.Vehicle.EstimatedValue.Equal(BaseCarValue) {
		t.Errorf("expected base value, got %s", got.Vehicle.EstimatedValue)
	}
}

func TestNormalize_Strict(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(p *domain.RiskProfile)
		wantErr bool
	}{
		{"valid", func(p *domain.RiskProfile) {}, false},
		{"empty type defaults", func(p *domain.RiskProfile) { p.Vehicle.Type = "" }, false},
		{"missing value defaults", func(p *domain.RiskProfile) { p.Vehicle.EstimatedValue = decimal.Zero }, false},
		{"unknown type", func(p *domain.RiskProfile) { p.Vehicle.Type = "Hovercraft" }, true},
		{"experience over table", func(p *domain.RiskProfile) { p.YearsOfExperience = 100 }, true},
		{"negative mileage", func(p *domain.RiskProfile) { p.AnnualMileage = -10 }, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			profile := sampleProfile()
			tt.mutate(&profile)

			_, err := Normalize(profile, domain.PolicyStrict)
			if tt.wantErr {
				if !domain.IsKind(err, domain.KindValidation) {
					t.Fatalf("expected validation error, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}
