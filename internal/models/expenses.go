package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/ltabis/thunes/internal/types"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// The expense report is a three-level rollup: budget, partition, grouped
// allocation. Every level carries a theoretical target (allocations total,
// scaled to the reporting window) next to the actual spend (transactions
// total). All report types are derived per request and never persisted.

// ExpensesAllocation is the report leaf: one allocation group with the
// transactions counted against it.
type ExpensesAllocation struct {
	Category          Category        `json:"category"`
	AllocationsTotal  decimal.Decimal `json:"allocationsTotal" example:"350"`  // Target for the window, already scaled by the period factor
	TransactionsTotal decimal.Decimal `json:"transactionsTotal" example:"225"` // Sum of the matching transaction amounts
	Transactions      []Transaction   `json:"transactions"`
}

// ExpensesPartition is one partition of the budget with its allocation
// groups and their summed totals.
type ExpensesPartition struct {
	Partition
	AllocationsTotal  decimal.Decimal      `json:"allocationsTotal" example:"1000"`
	TransactionsTotal decimal.Decimal      `json:"transactionsTotal" example:"650.50"`
	Allocations       []ExpensesAllocation `json:"allocations"`
}

// ExpensesBudget is the root of the rollup.
type ExpensesBudget struct {
	Budget
	IncomeTotal       decimal.Decimal     `json:"incomeTotal" example:"2000"` // Monthly income scaled by the period factor
	AllocationsTotal  decimal.Decimal     `json:"allocationsTotal" example:"1800"`
	TransactionsTotal decimal.Decimal     `json:"transactionsTotal" example:"1333.37"`
	Partitions        []ExpensesPartition `json:"partitions"`
}

// ExpensesReport is the full report for one budget and one window.
type ExpensesReport struct {
	PeriodStart string         `json:"periodStart" example:"2024-03-01T00:00:00Z"`
	PeriodEnd   string         `json:"periodEnd" example:"2024-04-01T00:00:00Z"`
	Budget      ExpensesBudget `json:"budget"`
}

// Expenses computes the expense report of the budget for the window the
// period resolves to around the anchor date.
//
// The budget must have been fetched with its Accounts association loaded.
// All reads run in a single database transaction so the report is built
// over one consistent snapshot; a concurrent write cannot land between two
// of the fetches. Any error discards the whole report, partial rollups are
// never returned.
func (b Budget) Expenses(db *gorm.DB, period types.Period, anchor time.Time) (ExpensesReport, error) {
	start, end, err := period.Window(anchor)
	if err != nil {
		return ExpensesReport{}, err
	}

	factor := period.Factor()

	var partitions []Partition
	var groups []AllocationGroup
	var transactions []Transaction

	err = db.Transaction(func(tx *gorm.DB) error {
		err := tx.
			Where(&Partition{BudgetID: b.ID}).
			Order("datetime(partitions.created_at) ASC, partitions.id ASC").
			Find(&partitions).Error
		if err != nil {
			return err
		}

		partitionIDs := make([]uuid.UUID, 0, len(partitions))
		for _, partition := range partitions {
			partitionIDs = append(partitionIDs, partition.ID)
		}

		groups, err = AllocationGroups(tx, partitionIDs)
		if err != nil {
			return err
		}

		transactions, err = transactionsInWindow(tx, b.AccountIDs(), start, end)
		return err
	})
	if err != nil {
		return ExpensesReport{}, err
	}

	report := ExpensesReport{
		PeriodStart: start.Format(time.RFC3339),
		PeriodEnd:   end.Format(time.RFC3339),
		Budget: ExpensesBudget{
			Budget:      b,
			IncomeTotal: b.Income.Mul(factor),
			Partitions:  make([]ExpensesPartition, 0, len(partitions)),
		},
	}

	for _, partition := range partitions {
		expensesPartition := ExpensesPartition{
			Partition:   partition,
			Allocations: make([]ExpensesAllocation, 0),
		}

		for _, group := range groups {
			if group.PartitionID != partition.ID {
				continue
			}

			allocation := ExpensesAllocation{
				Category: group.Category,
				// The factor is applied per allocation group, not once on
				// the rollup totals: consumers break the report down to
				// single groups and must see already-scaled targets.
				AllocationsTotal: group.Total.Mul(factor),
				Transactions:     make([]Transaction, 0),
			}

			// Transactions are matched by category alone. The grouping is
			// unique per (partition, category), so a transaction can never
			// be counted by two groups.
			for _, transaction := range transactions {
				if transaction.CategoryID != group.CategoryID {
					continue
				}

				allocation.Transactions = append(allocation.Transactions, transaction)
				allocation.TransactionsTotal = allocation.TransactionsTotal.Add(transaction.Amount)
			}

			expensesPartition.Allocations = append(expensesPartition.Allocations, allocation)
			expensesPartition.AllocationsTotal = expensesPartition.AllocationsTotal.Add(allocation.AllocationsTotal)
			expensesPartition.TransactionsTotal = expensesPartition.TransactionsTotal.Add(allocation.TransactionsTotal)
		}

		report.Budget.Partitions = append(report.Budget.Partitions, expensesPartition)
		report.Budget.AllocationsTotal = report.Budget.AllocationsTotal.Add(expensesPartition.AllocationsTotal)
		report.Budget.TransactionsTotal = report.Budget.TransactionsTotal.Add(expensesPartition.TransactionsTotal)
	}

	return report, nil
}

// CategoryExpenses is the drill-down behind one aggregated figure: the
// transactions of a single category within the window, without the rollup.
type CategoryExpenses struct {
	PeriodStart  string        `json:"periodStart" example:"2024-03-01T00:00:00Z"`
	PeriodEnd    string        `json:"periodEnd" example:"2024-04-01T00:00:00Z"`
	Category     Category      `json:"category"`
	Transactions []Transaction `json:"transactions"`
}

// CategoryExpenses lists the transactions of one category on the budget's
// accounts within the window the period resolves to.
func (b Budget) CategoryExpenses(db *gorm.DB, period types.Period, anchor time.Time, categoryID uuid.UUID) (CategoryExpenses, error) {
	start, end, err := period.Window(anchor)
	if err != nil {
		return CategoryExpenses{}, err
	}

	var category Category
	var transactions []Transaction

	err = db.Transaction(func(tx *gorm.DB) error {
		err := tx.First(&category, categoryID).Error
		if err != nil {
			return err
		}

		transactions, err = transactionsInWindow(
			tx.Where("transactions.category_id = ?", categoryID),
			b.AccountIDs(), start, end,
		)
		return err
	})
	if err != nil {
		return CategoryExpenses{}, err
	}

	return CategoryExpenses{
		PeriodStart:  start.Format(time.RFC3339),
		PeriodEnd:    end.Format(time.RFC3339),
		Category:     category,
		Transactions: transactions,
	}, nil
}

// transactionsInWindow fetches the transactions of the given accounts whose
// date lies in [start, end]. Both bounds are inclusive, see types.Period.
func transactionsInWindow(db *gorm.DB, accountIDs []uuid.UUID, start, end time.Time) ([]Transaction, error) {
	var transactions []Transaction

	err := db.
		Preload("Tags").
		Where("transactions.account_id IN ?", accountIDs).
		Where("datetime(transactions.date) >= datetime(?)", start).
		Where("datetime(transactions.date) <= datetime(?)", end).
		Order("datetime(transactions.date) DESC, transactions.id ASC").
		Find(&transactions).Error
	if err != nil {
		return nil, err
	}

	return transactions, nil
}
