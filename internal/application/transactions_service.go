package application

import (
	"context"

	"github.com/fincoach/fincoach-cli/internal/domain"
	"github.com/fincoach/fincoach-cli/internal/ports"
)

// TransactionsService exposes the raw transaction history. Mutations stay
// server-side; the client only reads.
type TransactionsService struct {
	transactions ports.TransactionsAPI
}

func NewTransactionsService(transactions ports.TransactionsAPI) *TransactionsService {
	return &TransactionsService{transactions: transactions}
}

func (s *TransactionsService) List(ctx context.Context) ([]domain.Transaction, error) {
	return s.transactions.ListTransactions(ctx)
}
