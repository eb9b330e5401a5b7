package domain

import "fmt"

// PatternKind selects one of the mutually exclusive pattern-recognition
// sub-views. Each kind maps to its own backend endpoint.
type PatternKind string

const (
	PatternAll          PatternKind = "all"
	PatternSpending     PatternKind = "spending"
	PatternTemporal     PatternKind = "temporal"
	PatternBehavioral   PatternKind = "behavioral"
	PatternAnomalies    PatternKind = "anomalies"
	PatternCorrelations PatternKind = "correlations"
)

func PatternKinds() []PatternKind {
	return []PatternKind{
		PatternAll,
		PatternSpending,
		PatternTemporal,
		PatternBehavioral,
		PatternAnomalies,
		PatternCorrelations,
	}
}

func ParsePatternKind(s string) (PatternKind, error) {
	for _, kind := range PatternKinds() {
		if s == string(kind) {
			return kind, nil
		}
	}
	return "", fmt.Errorf("unsupported pattern kind %q", s)
}

// RecommendationCategories are the per-category recommendation tabs.
var RecommendationCategories = []string{
	"dining",
	"shopping",
	"entertainment",
	"utilities",
	"transportation",
}
