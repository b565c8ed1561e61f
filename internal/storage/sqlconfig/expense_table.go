package sqlconfig

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/dm"
	"github.com/stephenafamo/bob/dialect/psql/im"
	"github.com/stephenafamo/bob/dialect/psql/sm"
	"github.com/stephenafamo/bob/dialect/psql/um"
	"github.com/stephenafamo/scan"
)

var _ IExpenseTable = (*ExpensesTable)(nil)

var expenseColumns = []any{
	"id", "owner_id", "description", "amount", "expense_date",
	"payment_method", "category", "is_recurring", "create_date", "update_date",
}

// ExpensesTable provides access to the expenses table.
type ExpensesTable struct {
	exec bob.Executor
}

// NewExpensesTable creates an ExpensesTable for the given database.
func NewExpensesTable(db *sql.DB) ExpensesTable {
	return ExpensesTable{exec: bob.NewDB(db)}
}

// FindAllByOwner returns every expense belonging to the owner,
// newest expense date first.
func (t *ExpensesTable) FindAllByOwner(ctx context.Context, owner uuid.UUID) ([]*Expense, error) {
	q := psql.Select(
		sm.Columns(expenseColumns...),
		sm.From("expenses"),
		sm.Where(psql.Quote("owner_id").EQ(psql.Arg(owner))),
		sm.OrderBy("expense_date").Desc(),
		sm.OrderBy("id").Desc(),
	)
	return bob.All(ctx, t.exec, q, scan.StructMapper[*Expense]())
}

// FindByIDAndOwner retrieves a single expense by primary key, scoped to
// the owner. Returns (nil, nil) when no such owned row exists.
func (t *ExpensesTable) FindByIDAndOwner(ctx context.Context, id, owner uuid.UUID) (*Expense, error) {
	q := psql.Select(
		sm.Columns(expenseColumns...),
		sm.From("expenses"),
		sm.Where(psql.Quote("id").EQ(psql.Arg(id))),
		sm.Where(psql.Quote("owner_id").EQ(psql.Arg(owner))),
	)
	row, err := bob.One(ctx, t.exec, q, scan.StructMapper[*Expense]())
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return row, nil
}

// FindByDateRangeAndOwner returns the owner's expenses with
// expense_date in the half-open window [start, end).
func (t *ExpensesTable) FindByDateRangeAndOwner(ctx context.Context, owner uuid.UUID, start, end time.Time) ([]*Expense, error) {
	q := psql.Select(
		sm.Columns(expenseColumns...),
		sm.From("expenses"),
		sm.Where(psql.Quote("owner_id").EQ(psql.Arg(owner))),
		sm.Where(psql.Quote("expense_date").GTE(psql.Arg(start))),
		sm.Where(psql.Quote("expense_date").LT(psql.Arg(end))),
		sm.OrderBy("expense_date").Desc(),
		sm.OrderBy("id").Desc(),
	)
	return bob.All(ctx, t.exec, q, scan.StructMapper[*Expense]())
}

// Insert creates a new expense and returns the persisted row including
// the generated ID.
func (t *ExpensesTable) Insert(ctx context.Context, create *ExpenseCreate) (*Expense, error) {
	q := psql.Insert(
		im.Into("expenses",
			"owner_id", "description", "amount", "expense_date",
			"payment_method", "category", "is_recurring", "create_date", "update_date",
		),
		im.Values(psql.Arg(
			create.OwnerID, create.Description, create.Amount, create.ExpenseDate,
			create.PaymentMethod, create.Category, create.IsRecurring,
			create.CreateDate, create.UpdateDate,
		)),
		im.Returning(expenseColumns...),
	)
	return bob.One(ctx, t.exec, q, scan.StructMapper[*Expense]())
}

// Update saves the mutable columns of an existing row by primary key.
// Ownership must already be established by the caller.
func (t *ExpensesTable) Update(ctx context.Context, row *Expense) error {
	q := psql.Update(
		um.Table("expenses"),
		um.SetCol("description").ToArg(row.Description),
		um.SetCol("amount").ToArg(row.Amount),
		um.SetCol("expense_date").ToArg(row.ExpenseDate),
		um.SetCol("payment_method").ToArg(row.PaymentMethod),
		um.SetCol("category").ToArg(row.Category),
		um.SetCol("is_recurring").ToArg(row.IsRecurring),
		um.SetCol("update_date").ToArg(row.UpdateDate),
		um.Where(psql.Quote("id").EQ(psql.Arg(row.ID))),
	)
	_, err := bob.Exec(ctx, t.exec, q)
	return err
}

// Delete removes the expense iff it exists and belongs to the owner.
// Reports whether a row was deleted.
func (t *ExpensesTable) Delete(ctx context.Context, id, owner uuid.UUID) (bool, error) {
	q := psql.Delete(
		dm.From("expenses"),
		dm.Where(psql.Quote("id").EQ(psql.Arg(id))),
		dm.Where(psql.Quote("owner_id").EQ(psql.Arg(owner))),
	)
	res, err := bob.Exec(ctx, t.exec, q)
	if err != nil {
		return false, err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}
