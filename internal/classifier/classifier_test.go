package classifier

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/citizen-connect/grievance-service/internal/domain"
)

func TestClassifyCategories(t *testing.T) {
	cases := []struct {
		name       string
		text       string
		category   domain.GrievanceCategory
		priority   domain.GrievancePriority
		confidence float64
	}{
		{"water", "No water in our house since yesterday morning", domain.CategoryWaterSupply, domain.PriorityHigh, 0.85},
		{"roads", "Huge pothole causing traffic jams every day", domain.CategoryRoads, domain.PriorityMedium, 0.82},
		{"electricity", "Power cuts every evening, transformer is humming", domain.CategoryElectricity, domain.PriorityHigh, 0.88},
		{"sanitation", "Garbage is piling up and nobody collects the waste", domain.CategorySanitation, domain.PriorityMedium, 0.80},
		{"safety", "Repeated theft cases, police does not patrol here", domain.CategoryPublicSafety, domain.PriorityHigh, 0.90},
		{"healthcare", "The clinic has no doctor and no medicine stock", domain.CategoryHealthcare, domain.PriorityHigh, 0.87},
		{"education", "Our school has had no teacher for two months", domain.CategoryEducation, domain.PriorityMedium, 0.83},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			result := Classify(tc.text)
			assert.Equal(t, tc.category, result.Category)
			assert.Equal(t, tc.priority, result.Priority)
			assert.InDelta(t, tc.confidence, result.Confidence, 1e-9)
		})
	}
}

func TestClassifyFirstMatchWins(t *testing.T) {
	// Both water and road keywords present; water is checked first.
	result := Classify("water flooding the road near the bus stop")
	assert.Equal(t, domain.CategoryWaterSupply, result.Category)
	assert.Equal(t, domain.PriorityHigh, result.Priority)
}

func TestClassifyCaseInsensitive(t *testing.T) {
	result := Classify("WATER SUPPLY STOPPED COMPLETELY")
	assert.Equal(t, domain.CategoryWaterSupply, result.Category)
}

func TestClassifyDefaults(t *testing.T) {
	for _, text := range []string{"", "something vague with no known subject"} {
		result := Classify(text)
		assert.Equal(t, domain.CategoryGeneral, result.Category)
		assert.Equal(t, domain.PriorityMedium, result.Priority)
		assert.Equal(t, domain.UnknownLocation, result.Location)
		assert.InDelta(t, 0.7, result.Confidence, 1e-9)
	}
}

func TestClassifyUrgencyUpgrade(t *testing.T) {
	// Water base confidence 0.85; urgent adds 0.1 capped at 0.95.
	result := Classify("urgent: water pipe burst flooding the basement")
	assert.Equal(t, domain.CategoryWaterSupply, result.Category)
	assert.Equal(t, domain.PriorityHigh, result.Priority)
	assert.InDelta(t, 0.95, result.Confidence, 1e-9)

	// Public safety base 0.90 also caps at 0.95.
	result = Classify("emergency, a crime happened and lives are in danger")
	assert.Equal(t, domain.CategoryPublicSafety, result.Category)
	assert.InDelta(t, 0.95, result.Confidence, 1e-9)
}

func TestClassifyUrgencyUpgradesUnmatchedCategory(t *testing.T) {
	// No category keyword, urgency still raises priority over the default.
	result := Classify("this is extremely urgent, please respond immediately")
	assert.Equal(t, domain.CategoryGeneral, result.Category)
	assert.Equal(t, domain.PriorityHigh, result.Priority)
	assert.InDelta(t, 0.8, result.Confidence, 1e-9)
}

func TestClassifyLocationExtraction(t *testing.T) {
	result := Classify("water leakage near Sector 15 Market")
	assert.Equal(t, "Sector 15 Market", result.Location)

	// Preposition-free fallback pattern.
	result = Classify("streetlights broken, Gandhi Nagar is dark after sunset")
	assert.NotEqual(t, domain.UnknownLocation, result.Location)

	// Original capitalization is preserved.
	result = Classify("garbage dumped at Shastri Colony every night")
	assert.Equal(t, "Shastri Colony", result.Location)
}

func TestNewTicketNumberFormat(t *testing.T) {
	pattern := regexp.MustCompile(`^GR\d{8}$`)
	seen := map[string]bool{}
	for i := 0; i < 50; i++ {
		ticket := NewTicketNumber()
		require.True(t, pattern.MatchString(ticket), "unexpected ticket format %q", ticket)
		seen[ticket] = true
	}
	// Random suffix should produce some spread over 50 draws.
	assert.Greater(t, len(seen), 1)
}
