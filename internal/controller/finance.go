package controller

import (
	"context"
	"sync"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"

	"nexuscrm/internal/fixture"
	"nexuscrm/internal/model"
	"nexuscrm/internal/remote"
)

// Finance drives the finance dashboard: the transaction ledger, the expense
// list, and the pure income/expense/balance reductions over them.
type Finance struct {
	mu           sync.RWMutex
	transactions []model.Transaction
	expenses     []model.Expense
	loading      bool

	store remote.Store
}

func NewFinance(store remote.Store) *Finance {
	return &Finance{store: store}
}

// Load fetches transactions and expenses concurrently. A failed read leaves
// its collection empty; the aggregation then substitutes the fixed
// illustrative figures so the dashboard is never vacuous.
func (c *Finance) Load(ctx context.Context) error {
	c.setLoading(true)
	defer c.setLoading(false)

	var (
		wg           sync.WaitGroup
		transactions []model.Transaction
		expenses     []model.Expense
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		rows, err := c.store.Select(ctx, "transactions", remote.Query{
			Select:  "*, property:properties(title)",
			OrderBy: "signature_date", Descending: true,
		})
		if err == nil {
			transactions, err = remote.DecodeRows[model.Transaction](rows)
		}
		if err != nil {
			log.Warn().Err(err).Msg("transactions fetch failed")
		}
	}()
	go func() {
		defer wg.Done()
		rows, err := c.store.Select(ctx, "expenses", remote.Query{
			OrderBy: "created_at", Descending: true,
		})
		if err == nil {
			expenses, err = remote.DecodeRows[model.Expense](rows)
		}
		if err != nil {
			log.Warn().Err(err).Msg("expenses fetch failed")
		}
	}()
	wg.Wait()

	if ctx.Err() != nil {
		return ctx.Err()
	}

	c.mu.Lock()
	c.transactions = transactions
	c.expenses = expenses
	c.mu.Unlock()
	return nil
}

func (c *Finance) Loading() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.loading
}

func (c *Finance) setLoading(v bool) {
	c.mu.Lock()
	c.loading = v
	c.mu.Unlock()
}

// Summary holds the KPI figures for the dashboard header.
type Summary struct {
	Income   decimal.Decimal `json:"income"`
	Expenses decimal.Decimal `json:"expenses"`
	Balance  decimal.Decimal `json:"balance"`
}

// Summarize recomputes the reductions from current in-memory state. An empty
// collection (the fixture/fallback path) yields the fixed illustrative
// constant rather than zero.
func (c *Finance) Summarize() Summary {
	c.mu.RLock()
	defer c.mu.RUnlock()

	income := decimal.Zero
	for _, t := range c.transactions {
		income = income.Add(t.CommissionAmount)
	}
	if len(c.transactions) == 0 {
		income = fixture.FallbackIncome
	}

	expenses := decimal.Zero
	for _, e := range c.expenses {
		expenses = expenses.Add(e.Amount)
	}
	if len(c.expenses) == 0 {
		expenses = fixture.FallbackExpenses
	}

	return Summary{
		Income:   income,
		Expenses: expenses,
		Balance:  income.Sub(expenses),
	}
}

// Recent returns up to n transactions, most recent signature first.
func (c *Finance) Recent(n int) []model.Transaction {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if n > len(c.transactions) {
		n = len(c.transactions)
	}
	out := make([]model.Transaction, n)
	copy(out, c.transactions[:n])
	return out
}

// MonthlySeries returns the revenue chart data handed to the opaque renderer.
func (c *Finance) MonthlySeries() []fixture.MonthlyPoint {
	return fixture.MonthlySeries()
}

// ExpenseBreakdown returns the expense distribution chart data.
func (c *Finance) ExpenseBreakdown() []fixture.CategorySlice {
	return fixture.ExpenseBreakdown()
}
