package application

import (
	"context"
	"encoding/json"

	"github.com/fincoach/fincoach-cli/internal/domain"
	"github.com/fincoach/fincoach-cli/internal/ports"
)

// PatternsService backs the pattern-recognition view: one endpoint per tab,
// fetched on first selection and memoized for the service's lifetime.
type PatternsService struct {
	tabs *TabController
}

func NewPatternsService(patterns ports.PatternsAPI) *PatternsService {
	fetch := func(ctx context.Context, tab string) (any, error) {
		kind, err := domain.ParsePatternKind(tab)
		if err != nil {
			return nil, err
		}
		return patterns.Patterns(ctx, kind)
	}

	return &PatternsService{tabs: NewTabController(fetch)}
}

func (s *PatternsService) Select(ctx context.Context, kind domain.PatternKind) (json.RawMessage, error) {
	value, err := s.tabs.Select(ctx, string(kind))
	if err != nil {
		return nil, err
	}
	raw, _ := value.(json.RawMessage)
	return raw, nil
}

// Cached reports a tab's memoized result without fetching.
func (s *PatternsService) Cached(kind domain.PatternKind) (json.RawMessage, bool) {
	value, ok := s.tabs.Peek(string(kind))
	if !ok {
		return nil, false
	}
	raw, _ := value.(json.RawMessage)
	return raw, true
}
