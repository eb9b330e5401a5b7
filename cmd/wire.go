package cmd

import (
	"context"
	"fmt"

	apiclient "github.com/fincoach/fincoach-cli/internal/adapters/api"
	"github.com/fincoach/fincoach-cli/internal/adapters/config"
	filetoken "github.com/fincoach/fincoach-cli/internal/adapters/tokenstore/file"
	"github.com/fincoach/fincoach-cli/internal/application"
	"github.com/fincoach/fincoach-cli/internal/ports"
	"github.com/spf13/viper"
)

type app struct {
	cfg             config.Config
	session         *application.SessionService
	transactions    *application.TransactionsService
	overview        *application.OverviewService
	analytics       *application.AnalyticsService
	predictions     *application.PredictionsService
	patterns        *application.PatternsService
	recommendations *application.RecommendationsService
	agents          *application.AgentService
}

func wireApp() (*app, error) {
	cfg, err := config.Load(viper.New())
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	tokens := filetoken.NewStore(cfg.TokenPath)

	// The client's token source reads through the session service; the
	// session service authenticates through the client. Break the cycle by
	// capturing the session variable before it is assigned.
	var session *application.SessionService
	client := apiclient.NewClient(cfg.APIBaseURL, nil, func() string {
		if session == nil {
			return ""
		}
		return session.Token()
	})

	session = application.NewSessionService(client, tokens)
	if err := session.Rehydrate(context.Background()); err != nil {
		return nil, fmt.Errorf("rehydrate session: %w", err)
	}

	return &app{
		cfg:             cfg,
		session:         session,
		transactions:    application.NewTransactionsService(client),
		overview:        application.NewOverviewService(client),
		analytics:       application.NewAnalyticsService(client, client),
		predictions:     application.NewPredictionsService(client, client),
		patterns:        application.NewPatternsService(client),
		recommendations: application.NewRecommendationsService(client),
		agents:          application.NewAgentService(client, cfg.HistoryLimit, ports.SystemClock{}),
	}, nil
}
