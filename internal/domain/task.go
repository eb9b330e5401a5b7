package domain

import (
	"encoding/json"
	"time"
)

type TaskType string

// Task types with a dedicated backend endpoint. Anything else goes through
// the generic execute-task endpoint.
const (
	TaskFinancialPlanning     TaskType = "financial_planning"
	TaskPortfolioOptimization TaskType = "portfolio_optimization"
	TaskUserCoaching          TaskType = "user_coaching"
)

type TaskStatus string

const (
	TaskPending   TaskStatus = "pending"
	TaskCompleted TaskStatus = "completed"
	TaskFailed    TaskStatus = "failed"
)

// TaskRecord is one entry of the server-held execution history. The result
// payload stays raw; the client only renders it.
type TaskRecord struct {
	TaskType  TaskType        `json:"task_type"`
	Status    TaskStatus      `json:"status"`
	Result    json.RawMessage `json:"result"`
	Timestamp time.Time       `json:"timestamp"`
}

type SystemStatus struct {
	Status             string   `json:"status"`
	RegisteredAgents   []string `json:"registered_agents"`
	TotalAgents        int      `json:"total_agents"`
	CollaborationRules []string `json:"collaboration_rules"`
}

type AgentHistory struct {
	Limit           int          `json:"limit"`
	TotalExecutions int          `json:"total_executions"`
	History         []TaskRecord `json:"history"`
}
