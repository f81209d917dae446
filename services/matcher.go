package services

import (
	"log/slog"
	"strings"

	fuzzy "github.com/paul-mannino/go-fuzzywuzzy"

	"cake-shop/models"
)

// SimilarityThreshold is the score a fuzzy match must strictly exceed to
// count as a hit.
const SimilarityThreshold = 60

// Matcher finds the catalog product best matching a customer message.
// A miss is not an error: ok is false and the caller moves on to the AI
// fallback.
type Matcher interface {
	FindBest(query string, products []models.Product) (models.Product, int, bool)
}

var matcher Matcher

// InitMatcher installs the matching strategy selected at startup. Unknown
// strategy names fall back to containment.
func InitMatcher(strategy string) {
	switch strategy {
	case "similarity":
		matcher = SimilarityMatcher{}
	case "contains", "":
		matcher = ContainsMatcher{}
	default:
		slog.Warn("Unknown match strategy, using contains", "strategy", strategy)
		matcher = ContainsMatcher{}
	}
	slog.Info("Matcher initialized", "strategy", strategy)
}

// ProductMatcher returns the active matching strategy.
func ProductMatcher() Matcher {
	return matcher
}

// ContainsMatcher hits when a product name appears inside the query,
// case-insensitively. First match wins.
type ContainsMatcher struct{}

func (ContainsMatcher) FindBest(query string, products []models.Product) (models.Product, int, bool) {
	queryLower := strings.ToLower(query)
	for _, p := range products {
		if strings.Contains(queryLower, strings.ToLower(p.Name)) {
			return p, 100, true
		}
	}
	return models.Product{}, 0, false
}

// SimilarityMatcher scores every product name against the query with a
// 0-100 fuzzy ratio and keeps the highest. Ties keep the first maximum.
type SimilarityMatcher struct{}

func (SimilarityMatcher) FindBest(query string, products []models.Product) (models.Product, int, bool) {
	queryLower := strings.ToLower(query)

	var best models.Product
	bestScore := 0
	for _, p := range products {
		score := fuzzy.Ratio(queryLower, strings.ToLower(p.Name))
		if score > bestScore {
			best = p
			bestScore = score
		}
	}

	if bestScore > SimilarityThreshold {
		return best, bestScore, true
	}
	return models.Product{}, bestScore, false
}
