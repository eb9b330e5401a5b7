package application

import (
	"context"
	"encoding/json"
	"fmt"
	"slices"

	"github.com/fincoach/fincoach-cli/internal/domain"
	"github.com/fincoach/fincoach-cli/internal/ports"
)

// RecommendationsService backs the recommendations view: the personalized
// list fetched per activation, plus per-category drill-downs memoized the
// same way pattern tabs are.
type RecommendationsService struct {
	recommendations ports.RecommendationsAPI
	categories      *TabController
}

func NewRecommendationsService(recommendations ports.RecommendationsAPI) *RecommendationsService {
	fetch := func(ctx context.Context, category string) (any, error) {
		return recommendations.CategoryRecommendations(ctx, category)
	}

	return &RecommendationsService{
		recommendations: recommendations,
		categories:      NewTabController(fetch),
	}
}

func (s *RecommendationsService) Personalized(ctx context.Context) (json.RawMessage, error) {
	return s.recommendations.PersonalizedRecommendations(ctx)
}

func (s *RecommendationsService) Category(ctx context.Context, category string) (json.RawMessage, error) {
	if !slices.Contains(domain.RecommendationCategories, category) {
		return nil, fmt.Errorf("unsupported recommendation category %q", category)
	}

	value, err := s.categories.Select(ctx, category)
	if err != nil {
		return nil, err
	}
	raw, _ := value.(json.RawMessage)
	return raw, nil
}
