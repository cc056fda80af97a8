package interfaces

import (
	"context"

	"github.com/sheikh-saqib/lender-tracker/internal/models"
)

// LoadResult is what a store hands back on load. Skipped counts the
// persisted records that were ignored because they could not be split
// into a name and an amount.
type LoadResult struct {
	Lenders []models.Lender
	Skipped int
}

type LenderStore interface {
	Load(ctx context.Context) (LoadResult, error)
	Save(ctx context.Context, lenders []models.Lender) error
}
