package postgres

import (
	"context"
	"database/sql"

	interfaces "github.com/sheikh-saqib/lender-tracker/internal/interfaces" // interface LenderStore
	"github.com/sheikh-saqib/lender-tracker/internal/models"
)

const schema = `CREATE TABLE IF NOT EXISTS lenders (
	position    INTEGER PRIMARY KEY,
	name        TEXT NOT NULL,
	amount_owed NUMERIC NOT NULL
)`

// PostgresLenderStore keeps the ledger in a single table. The position
// column carries insertion order.
type PostgresLenderStore struct {
	db *sql.DB
}

func NewPostgresLenderStore(db *sql.DB) *PostgresLenderStore {
	return &PostgresLenderStore{
		db: db,
	}
}

func (p *PostgresLenderStore) EnsureSchema(ctx context.Context) error {
	_, err := p.db.ExecContext(ctx, schema)
	return err
}

func (p *PostgresLenderStore) Load(ctx context.Context) (interfaces.LoadResult, error) {
	const query = `SELECT name, amount_owed FROM lenders ORDER BY position`

	rows, err := p.db.QueryContext(ctx, query)
	if err != nil {
		return interfaces.LoadResult{}, err
	}

	defer rows.Close()

	lenders := []models.Lender{}
	for rows.Next() {
		var lender models.Lender
		if err := rows.Scan(&lender.Name, &lender.AmountOwed); err != nil {
			return interfaces.LoadResult{}, err
		}
		lenders = append(lenders, lender)
	}

	if err := rows.Err(); err != nil {
		return interfaces.LoadResult{}, err
	}
	return interfaces.LoadResult{Lenders: lenders}, nil
}

// Save overwrites the table with lenders in one transaction.
func (p *PostgresLenderStore) Save(ctx context.Context, lenders []models.Lender) (err error) {
	const insert = `INSERT INTO lenders (position, name, amount_owed) VALUES ($1, $2, $3)`

	dbTx, err := p.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	defer func() {
		if err != nil {
			dbTx.Rollback()
		}
	}()

	if _, err = dbTx.ExecContext(ctx, `DELETE FROM lenders`); err != nil {
		return err
	}

	stmt, err := dbTx.PrepareContext(ctx, insert)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for i, lender := range lenders {
		if _, err = stmt.ExecContext(ctx, i, lender.Name, lender.AmountOwed); err != nil {
			return err
		}
	}
	return dbTx.Commit()
}

var _ interfaces.LenderStore = (*PostgresLenderStore)(nil)
