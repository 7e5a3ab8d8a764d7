package classifier

import (
	"regexp"
	"strings"

	"github.com/citizen-connect/grievance-service/internal/domain"
)

// Result is the outcome of classifying a complaint text.
type Result struct {
	Category   domain.GrievanceCategory
	Priority   domain.GrievancePriority
	Location   string
	Confidence float64
}

// rule maps a keyword set to a category. Rules are evaluated in order and
// the first match wins, so earlier categories take precedence.
type rule struct {
	keywords   []string
	category   domain.GrievanceCategory
	priority   domain.GrievancePriority
	confidence float64
}

var rules = []rule{
	{
		keywords:   []string{"water", "pipe", "tap", "supply", "leak", "drainage"},
		category:   domain.CategoryWaterSupply,
		priority:   domain.PriorityHigh,
		confidence: 0.85,
	},
	{
		keywords:   []string{"road", "pothole", "street", "traffic", "footpath", "bridge"},
		category:   domain.CategoryRoads,
		priority:   domain.PriorityMedium,
		confidence: 0.82,
	},
	{
		keywords:   []string{"electric", "power", "light", "transformer", "wire", "voltage"},
		category:   domain.CategoryElectricity,
		priority:   domain.PriorityHigh,
		confidence: 0.88,
	},
	{
		keywords:   []string{"garbage", "waste", "sewer", "toilet", "clean", "dump"},
		category:   domain.CategorySanitation,
		priority:   domain.PriorityMedium,
		confidence: 0.80,
	},
	{
		keywords:   []string{"crime", "theft", "police", "danger", "security", "accident"},
		category:   domain.CategoryPublicSafety,
		priority:   domain.PriorityHigh,
		confidence: 0.90,
	},
	{
		keywords:   []string{"hospital", "doctor", "health", "medicine", "clinic", "ambulance"},
		category:   domain.CategoryHealthcare,
		priority:   domain.PriorityHigh,
		confidence: 0.87,
	},
	{
		keywords:   []string{"school", "college", "education", "teacher", "student", "exam"},
		category:   domain.CategoryEducation,
		priority:   domain.PriorityMedium,
		confidence: 0.83,
	},
}

// urgencyKeywords upgrade priority regardless of which category matched.
var urgencyKeywords = []string{"urgent", "emergency", "immediate", "critical", "danger", "life"}

const maxConfidence = 0.95

// Location patterns run against the original-case text so the extracted
// phrase keeps the citizen's capitalization. The first pattern anchors on a
// preposition; the second drops that requirement.
var locationPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(?:near|at|in|from)\s+([A-Za-z0-9\s]+(?:road|street|colony|nagar|market|area|sector|block|ward))`),
	regexp.MustCompile(`(?i)([A-Za-z0-9\s]+(?:road|street|colony|nagar|market|area|sector|block|ward))`),
}

// Classify derives category, priority, location and confidence from free
// complaint text. It is deterministic and never fails: unrecognized text
// degrades to General/Medium/Unknown with a 0.7 confidence.
func Classify(text string) Result {
	lower := strings.ToLower(text)

	result := Result{
		Category:   domain.CategoryGeneral,
		Priority:   domain.PriorityMedium,
		Location:   domain.UnknownLocation,
		Confidence: 0.7,
	}

	for _, r := range rules {
		if containsAny(lower, r.keywords) {
			result.Category = r.category
			result.Priority = r.priority
			result.Confidence = r.confidence
			break
		}
	}

	if containsAny(lower, urgencyKeywords) {
		result.Priority = domain.PriorityHigh
		result.Confidence = result.Confidence + 0.1
		if result.Confidence > maxConfidence {
			result.Confidence = maxConfidence
		}
	}

	for _, pattern := range locationPatterns {
		if match := pattern.FindStringSubmatch(text); match != nil {
			result.Location = strings.TrimSpace(match[1])
			break
		}
	}

	return result
}

func containsAny(text string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}
