package application

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/fincoach/fincoach-cli/internal/domain"
	"github.com/fincoach/fincoach-cli/internal/ports"
)

// AgentService backs the multi-agent view: the status/history aggregate
// plus task dispatch. Task executions are serialized; a second ExecuteTask
// while one is in flight is rejected with domain.ErrTaskInProgress.
type AgentService struct {
	agents       ports.AgentAPI
	historyLimit int
	clock        ports.Clock
	state        *ViewState

	mu           sync.Mutex
	executing    bool
	lastResult   json.RawMessage
	lastError    string
	lastFinished time.Time
	refreshDone  chan struct{}
}

// NewAgentService builds the service. A nil clock falls back to wall time.
func NewAgentService(agents ports.AgentAPI, historyLimit int, clock ports.Clock) *AgentService {
	if clock == nil {
		clock = ports.SystemClock{}
	}

	closed := make(chan struct{})
	close(closed)

	return &AgentService{
		agents:       agents,
		historyLimit: historyLimit,
		clock:        clock,
		state:        NewViewState(),
		refreshDone:  closed,
	}
}

// Refresh activates the status view: system status and execution history,
// fetched concurrently.
func (s *AgentService) Refresh(ctx context.Context) Aggregate {
	plan := []Step{
		{
			Name: FieldSystemStatus,
			Run: func(ctx context.Context, _ StepResults) (any, error) {
				return s.agents.SystemStatus(ctx)
			},
		},
		{
			Name: FieldAgentHistory,
			Run: func(ctx context.Context, _ StepResults) (any, error) {
				return s.agents.AgentHistory(ctx, s.historyLimit)
			},
		},
	}

	return s.state.Activate(ctx, plan)
}

func (s *AgentService) Snapshot() (Aggregate, bool) {
	return s.state.Snapshot()
}

// ExecuteTask routes the task to its endpoint, submits the profile, and on
// success kicks off a background refresh of status and history. The refresh
// outcome never affects the reported task outcome; RefreshDone exposes its
// completion for callers that render history afterwards.
func (s *AgentService) ExecuteTask(ctx context.Context, taskType domain.TaskType, user domain.UserProfile) (json.RawMessage, error) {
	s.mu.Lock()
	if s.executing {
		s.mu.Unlock()
		return nil, domain.ErrTaskInProgress
	}
	s.executing = true
	s.lastResult = nil
	s.lastError = ""
	s.mu.Unlock()

	result, err := s.dispatch(ctx, taskType, user)

	s.mu.Lock()
	s.executing = false
	if err != nil {
		s.lastError = err.Error()
		s.mu.Unlock()
		return nil, err
	}
	s.lastResult = result
	s.lastFinished = s.clock.Now()
	done := make(chan struct{})
	s.refreshDone = done
	s.mu.Unlock()

	go func() {
		defer close(done)
		s.Refresh(context.WithoutCancel(ctx))
	}()

	return result, nil
}

func (s *AgentService) dispatch(ctx context.Context, taskType domain.TaskType, user domain.UserProfile) (json.RawMessage, error) {
	switch taskType {
	case domain.TaskFinancialPlanning:
		return s.agents.FinancialPlanning(ctx, user)
	case domain.TaskPortfolioOptimization:
		return s.agents.PortfolioOptimization(ctx, user)
	case domain.TaskUserCoaching:
		return s.agents.UserCoaching(ctx, user)
	default:
		return s.agents.ExecuteTask(ctx, taskType, user)
	}
}

// RefreshDone is closed when the most recent background refresh settles.
func (s *AgentService) RefreshDone() <-chan struct{} {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.refreshDone
}

func (s *AgentService) Executing() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.executing
}

// LastOutcome returns the previous execution's payload and error message.
func (s *AgentService) LastOutcome() (json.RawMessage, string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastResult, s.lastError
}

// LastFinished is the completion time of the last successful execution,
// zero before one succeeds.
func (s *AgentService) LastFinished() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastFinished
}
