// Package overview renders the financial overview dashboard. Every field of
// the aggregate is optional; a missing field renders as a placeholder
// rather than failing the whole view.
package overview

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/fincoach/fincoach-cli/internal/adapters/render/currency"
	"github.com/fincoach/fincoach-cli/internal/domain"
	"github.com/shopspring/decimal"
)

// recentCount limits the rendered transaction list, like the dashboard's
// recent-transactions card.
const recentCount = 5

type View struct {
	User         domain.UserProfile
	Summary      *domain.TransactionSummary
	Transactions []domain.Transaction
	Err          string
}

func Render(view View) string {
	s := newStyles()

	lines := []string{
		s.title.Render(fmt.Sprintf("Welcome, %s!", view.User.FullName)),
		s.greeting.Render("Here's your financial overview"),
	}

	if view.Err != "" {
		lines = append(lines, s.section.Render(s.errBanner.Render("Error: "+view.Err)))
	}

	lines = append(lines, s.section.Render(renderCards(view, s)))

	if view.Summary != nil && len(view.Summary.CategoryBreakdown) > 0 {
		lines = append(lines, s.section.Render(renderBreakdown(view.Summary.CategoryBreakdown, s)))
	}

	lines = append(lines, s.section.Render(renderTransactions(view.Transactions, s)))

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func renderCards(view View, s styles) string {
	expenses := decimal.Zero
	haveExpenses := view.Summary != nil
	if haveExpenses {
		expenses = view.Summary.TotalExpenses
	}

	remaining := "n/a"
	expensesLabel := "n/a"
	if haveExpenses {
		expensesLabel = currency.INR(expenses)
		budget := decimal.NewFromFloat(view.User.MonthlyBudget)
		remaining = currency.INR(budget.Sub(expenses))
	}

	cards := []string{
		renderCard("Monthly Income", currency.INRFloat(view.User.MonthlyIncome), s),
		renderCard("Monthly Budget", currency.INRFloat(view.User.MonthlyBudget), s),
		renderCard("Total Expenses", expensesLabel, s),
		renderCard("Remaining", remaining, s),
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, cards...)
}

func renderCard(title, value string, s styles) string {
	content := lipgloss.JoinVertical(lipgloss.Left,
		s.cardTitle.Render(title),
		s.cardValue.Render(value),
	)
	return s.card.Render(content)
}

func renderBreakdown(breakdown []domain.CategoryAmount, s styles) string {
	lines := []string{s.title.Render("Expense Breakdown")}
	for _, entry := range breakdown {
		lines = append(lines, s.detail.Render(fmt.Sprintf("  %-16s %s", entry.Category, currency.INR(entry.Amount))))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

// List renders the full transaction history, newest first as the backend
// returns it.
func List(txs []domain.Transaction) string {
	s := newStyles()
	lines := []string{s.title.Render("Transactions")}

	if len(txs) == 0 {
		lines = append(lines, s.empty.Render("  No transactions available."))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	for _, tx := range txs {
		amount := currency.INR(tx.Amount)
		style := s.expense
		sign := "-"
		if tx.Type == domain.TransactionIncome {
			style = s.income
			sign = "+"
		}
		lines = append(lines, fmt.Sprintf("  %s %s %s",
			s.detail.Render(tx.Date.Format("2006-01-02")),
			style.Render(sign+amount),
			s.detail.Render(fmt.Sprintf("%s (%s)", tx.Description, tx.Category)),
		))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func renderTransactions(txs []domain.Transaction, s styles) string {
	lines := []string{s.title.Render("Recent Transactions")}

	if len(txs) == 0 {
		lines = append(lines, s.empty.Render("  No transactions available."))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	if len(txs) > recentCount {
		txs = txs[:recentCount]
	}
	for _, tx := range txs {
		amount := currency.INR(tx.Amount)
		style := s.expense
		sign := "-"
		if tx.Type == domain.TransactionIncome {
			style = s.income
			sign = "+"
		}
		lines = append(lines, fmt.Sprintf("  %s %s",
			style.Render(sign+amount),
			s.detail.Render(fmt.Sprintf("%s (%s)", tx.Description, tx.Category)),
		))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}
