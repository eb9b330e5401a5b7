package application

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/fincoach/fincoach-cli/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testProfile = domain.UserProfile{
	ID:            1,
	FullName:      "A",
	MonthlyIncome: 80000,
	MonthlyBudget: 50000,
	Savings:       200000,
	EmergencyFund: 100000,
}

func testTransactions() []domain.Transaction {
	return []domain.Transaction{
		{ID: 1, Description: "Salary", Type: domain.TransactionIncome, Amount: decimal.NewFromInt(80000)},
		{ID: 2, Description: "Groceries", Category: "dining", Type: domain.TransactionExpense, Amount: decimal.NewFromInt(4200)},
	}
}

func TestOverviewServiceActivateFetchesSummaryAndTransactions(t *testing.T) {
	t.Parallel()

	transactions := &fakeTransactionsAPI{
		txs:     testTransactions(),
		summary: domain.TransactionSummary{TotalIncome: decimal.NewFromInt(80000)},
	}
	svc := NewOverviewService(transactions)

	aggregate := svc.Activate(context.Background())
	require.NoError(t, aggregate.Err)

	summary, ok := aggregate.Fields[FieldSummary].(domain.TransactionSummary)
	require.True(t, ok)
	assert.True(t, summary.TotalIncome.Equal(decimal.NewFromInt(80000)))

	txs, ok := aggregate.Fields[FieldTransactions].([]domain.Transaction)
	require.True(t, ok)
	assert.Len(t, txs, 2)
}

func TestOverviewServicePartialFailureKeepsOtherField(t *testing.T) {
	t.Parallel()

	boom := errors.New("summary unavailable")
	transactions := &fakeTransactionsAPI{txs: testTransactions(), summaryErr: boom}
	svc := NewOverviewService(transactions)

	aggregate := svc.Activate(context.Background())
	require.ErrorIs(t, aggregate.Err, boom)
	assert.NotContains(t, aggregate.Fields, FieldSummary)
	assert.Contains(t, aggregate.Fields, FieldTransactions)
}

func TestAnalyticsServiceDerivedCallsReceiveFetchedTransactions(t *testing.T) {
	t.Parallel()

	transactions := &fakeTransactionsAPI{txs: testTransactions()}
	analytics := &fakeAnalyticsAPI{}
	svc := NewAnalyticsService(transactions, analytics)

	aggregate := svc.Activate(context.Background(), testProfile)
	require.NoError(t, aggregate.Err)

	for _, field := range []string{FieldSpendingPatterns, FieldIncomeTrends, FieldCashFlow, FieldSavingsRate} {
		assert.Contains(t, aggregate.Fields, field)
	}

	analytics.mu.Lock()
	defer analytics.mu.Unlock()
	assert.Len(t, analytics.patternsTxs, 2)
	assert.Len(t, analytics.trendsTxs, 2)
	assert.Len(t, analytics.cashFlowTxs, 2)
	assert.Equal(t, 90, analytics.periodDays)
	assert.Equal(t, 30, analytics.savingsPeriodDays)
	assert.Equal(t, testProfile.MonthlyIncome, analytics.savingsIncome)
}

func TestAnalyticsServiceTransactionFailureSkipsDerivedButKeepsSavingsRate(t *testing.T) {
	t.Parallel()

	boom := errors.New("transactions unavailable")
	transactions := &fakeTransactionsAPI{txsErr: boom}
	analytics := &fakeAnalyticsAPI{}
	svc := NewAnalyticsService(transactions, analytics)

	aggregate := svc.Activate(context.Background(), testProfile)
	require.ErrorIs(t, aggregate.Err, boom)

	// Savings rate needs only profile figures and still resolves.
	assert.Contains(t, aggregate.Fields, FieldSavingsRate)
	assert.NotContains(t, aggregate.Fields, FieldSpendingPatterns)
	assert.NotContains(t, aggregate.Fields, FieldIncomeTrends)
	assert.NotContains(t, aggregate.Fields, FieldCashFlow)

	analytics.mu.Lock()
	defer analytics.mu.Unlock()
	assert.Zero(t, analytics.derivedCalls)
}

func TestAnalyticsServiceReportFetchesVarianceAndReport(t *testing.T) {
	t.Parallel()

	transactions := &fakeTransactionsAPI{txs: testTransactions()}
	analytics := &fakeAnalyticsAPI{}
	svc := NewAnalyticsService(transactions, analytics)

	aggregate := svc.Report(context.Background(), testProfile)
	require.NoError(t, aggregate.Err)
	assert.Contains(t, aggregate.Fields, FieldBudgetVariance)
	assert.Contains(t, aggregate.Fields, FieldReport)

	analytics.mu.Lock()
	defer analytics.mu.Unlock()
	assert.Equal(t, testProfile.MonthlyBudget, analytics.varianceBudget)
	assert.Len(t, analytics.varianceTxs, 2)
}

func TestPredictionsServiceActivate(t *testing.T) {
	t.Parallel()

	transactions := &fakeTransactionsAPI{txs: testTransactions()}
	predictions := &fakePredictionsAPI{}
	svc := NewPredictionsService(transactions, predictions)

	aggregate := svc.Activate(context.Background(), testProfile)
	require.NoError(t, aggregate.Err)

	for _, field := range []string{
		FieldSpendingForecast,
		FieldIncomeForecast,
		FieldAnomalies,
		FieldSavingsProjection,
		FieldFinancialHealth,
	} {
		assert.Contains(t, aggregate.Fields, field)
	}

	predictions.mu.Lock()
	defer predictions.mu.Unlock()
	assert.Equal(t, 30, predictions.forecastDays)
	assert.Equal(t, 6, predictions.forecastMonths)
	assert.Equal(t, 0.95, predictions.confidence)
	assert.Equal(t, 0.8, predictions.sensitivity)
	assert.Equal(t, 12, predictions.projectionMonths)
	assert.Equal(t, 0.05, predictions.annualReturn)
	assert.Equal(t, testProfile.Savings, predictions.currentSavings)
	assert.Equal(t, testProfile.MonthlyBudget*0.20, predictions.monthlyRate)
	assert.Equal(t, testProfile.EmergencyFund, predictions.emergencyFund)
}

func TestPredictionsServiceTransactionFailureKeepsIndependentSteps(t *testing.T) {
	t.Parallel()

	boom := errors.New("transactions unavailable")
	transactions := &fakeTransactionsAPI{txsErr: boom}
	predictions := &fakePredictionsAPI{}
	svc := NewPredictionsService(transactions, predictions)

	aggregate := svc.Activate(context.Background(), testProfile)
	require.ErrorIs(t, aggregate.Err, boom)
	assert.Contains(t, aggregate.Fields, FieldSavingsProjection)
	assert.Contains(t, aggregate.Fields, FieldFinancialHealth)
	assert.NotContains(t, aggregate.Fields, FieldSpendingForecast)
	assert.NotContains(t, aggregate.Fields, FieldIncomeForecast)
	assert.NotContains(t, aggregate.Fields, FieldAnomalies)
}

func TestPredictionsServiceHistory(t *testing.T) {
	t.Parallel()

	predictions := &fakePredictionsAPI{history: json.RawMessage(`{"predictions":[]}`)}
	svc := NewPredictionsService(&fakeTransactionsAPI{}, predictions)

	history, err := svc.History(context.Background())
	require.NoError(t, err)
	assert.JSONEq(t, `{"predictions":[]}`, string(history))
}

func TestPatternsServiceMemoizesPerKind(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	svc := NewPatternsService(patternsFunc(func(_ context.Context, kind domain.PatternKind) (json.RawMessage, error) {
		calls.Add(1)
		return json.RawMessage(`{"kind":"` + string(kind) + `"}`), nil
	}))

	// A, then B, then A again: one fetch per kind.
	first, err := svc.Select(context.Background(), domain.PatternSpending)
	require.NoError(t, err)
	_, err = svc.Select(context.Background(), domain.PatternTemporal)
	require.NoError(t, err)
	again, err := svc.Select(context.Background(), domain.PatternSpending)
	require.NoError(t, err)

	assert.Equal(t, int32(2), calls.Load())
	assert.JSONEq(t, string(first), string(again))

	cached, ok := svc.Cached(domain.PatternSpending)
	require.True(t, ok)
	assert.JSONEq(t, `{"kind":"spending"}`, string(cached))

	_, ok = svc.Cached(domain.PatternAnomalies)
	assert.False(t, ok)
}

func TestRecommendationsServiceCategoryValidation(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	svc := NewRecommendationsService(&fakeRecommendationsAPI{calls: &calls})

	raw, err := svc.Category(context.Background(), "dining")
	require.NoError(t, err)
	assert.JSONEq(t, `{"category":"dining"}`, string(raw))

	_, err = svc.Category(context.Background(), "crypto")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "crypto")

	// Re-selecting a category serves the memoized payload.
	_, err = svc.Category(context.Background(), "dining")
	require.NoError(t, err)
	assert.Equal(t, int32(1), calls.Load())
}

func TestRecommendationsServicePersonalizedIsNotMemoized(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	svc := NewRecommendationsService(&fakeRecommendationsAPI{calls: &calls})

	_, err := svc.Personalized(context.Background())
	require.NoError(t, err)
	_, err = svc.Personalized(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int32(2), calls.Load())
}

type fakeTransactionsAPI struct {
	txs        []domain.Transaction
	txsErr     error
	summary    domain.TransactionSummary
	summaryErr error
}

func (f *fakeTransactionsAPI) ListTransactions(context.Context) ([]domain.Transaction, error) {
	if f.txsErr != nil {
		return nil, f.txsErr
	}
	return f.txs, nil
}

func (f *fakeTransactionsAPI) TransactionSummary(context.Context) (domain.TransactionSummary, error) {
	if f.summaryErr != nil {
		return domain.TransactionSummary{}, f.summaryErr
	}
	return f.summary, nil
}

type fakeAnalyticsAPI struct {
	mu sync.Mutex

	derivedCalls      int
	patternsTxs       []domain.Transaction
	trendsTxs         []domain.Transaction
	cashFlowTxs       []domain.Transaction
	varianceTxs       []domain.Transaction
	periodDays        int
	savingsPeriodDays int
	savingsIncome     float64
	varianceBudget    float64
}

func (f *fakeAnalyticsAPI) SpendingPatterns(_ context.Context, txs []domain.Transaction, periodDays int) (json.RawMessage, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.derivedCalls++
	f.patternsTxs = txs
	f.periodDays = periodDays
	return json.RawMessage(`{}`), nil
}

func (f *fakeAnalyticsAPI) IncomeTrends(_ context.Context, txs []domain.Transaction, periodDays int) (json.RawMessage, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.derivedCalls++
	f.trendsTxs = txs
	f.periodDays = periodDays
	return json.RawMessage(`{}`), nil
}

func (f *fakeAnalyticsAPI) SavingsRate(_ context.Context, income, _, _ float64, periodDays int) (json.RawMessage, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.savingsIncome = income
	f.savingsPeriodDays = periodDays
	return json.RawMessage(`{}`), nil
}

func (f *fakeAnalyticsAPI) BudgetVariance(_ context.Context, txs []domain.Transaction, monthlyBudget float64) (json.RawMessage, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.derivedCalls++
	f.varianceTxs = txs
	f.varianceBudget = monthlyBudget
	return json.RawMessage(`{}`), nil
}

func (f *fakeAnalyticsAPI) CashFlow(_ context.Context, txs []domain.Transaction, periodDays int) (json.RawMessage, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.derivedCalls++
	f.cashFlowTxs = txs
	f.periodDays = periodDays
	return json.RawMessage(`{}`), nil
}

func (f *fakeAnalyticsAPI) ComprehensiveReport(context.Context) (json.RawMessage, error) {
	return json.RawMessage(`{}`), nil
}

type fakePredictionsAPI struct {
	mu sync.Mutex

	forecastDays     int
	forecastMonths   int
	confidence       float64
	sensitivity      float64
	projectionMonths int
	annualReturn     float64
	currentSavings   float64
	monthlyRate      float64
	emergencyFund    float64
	history          json.RawMessage
}

func (f *fakePredictionsAPI) SpendingForecast(_ context.Context, _ []domain.Transaction, forecastDays int, confidence float64) (json.RawMessage, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.forecastDays = forecastDays
	f.confidence = confidence
	return json.RawMessage(`{}`), nil
}

func (f *fakePredictionsAPI) IncomeForecast(_ context.Context, _ []domain.Transaction, forecastMonths int, confidence float64) (json.RawMessage, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.forecastMonths = forecastMonths
	f.confidence = confidence
	return json.RawMessage(`{}`), nil
}

func (f *fakePredictionsAPI) SavingsProjection(_ context.Context, currentSavings, monthlyRate, annualReturn float64, months int) (json.RawMessage, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.currentSavings = currentSavings
	f.monthlyRate = monthlyRate
	f.annualReturn = annualReturn
	f.projectionMonths = months
	return json.RawMessage(`{}`), nil
}

func (f *fakePredictionsAPI) FinancialHealth(_ context.Context, _, _, _, _, emergencyFund float64) (json.RawMessage, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.emergencyFund = emergencyFund
	return json.RawMessage(`{}`), nil
}

func (f *fakePredictionsAPI) AnomalyDetection(_ context.Context, _ []domain.Transaction, sensitivity float64) (json.RawMessage, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sensitivity = sensitivity
	return json.RawMessage(`{}`), nil
}

func (f *fakePredictionsAPI) PredictionHistory(context.Context) (json.RawMessage, error) {
	return f.history, nil
}

type patternsFunc func(ctx context.Context, kind domain.PatternKind) (json.RawMessage, error)

func (f patternsFunc) Patterns(ctx context.Context, kind domain.PatternKind) (json.RawMessage, error) {
	return f(ctx, kind)
}

type fakeRecommendationsAPI struct {
	calls *atomic.Int32
}

func (f *fakeRecommendationsAPI) PersonalizedRecommendations(context.Context) (json.RawMessage, error) {
	f.calls.Add(1)
	return json.RawMessage(`{"total_recommendations":0,"recommendations":[]}`), nil
}

func (f *fakeRecommendationsAPI) CategoryRecommendations(_ context.Context, category string) (json.RawMessage, error) {
	f.calls.Add(1)
	return json.RawMessage(`{"category":"` + category + `"}`), nil
}
