package events

import (
	"time"

	"github.com/shopspring/decimal"
)

// LedgerSaved is emitted once the whole ledger has been persisted.
type LedgerSaved struct {
	EventID    string          `json:"event_id"`
	Count      int             `json:"count"`
	Total      decimal.Decimal `json:"total"`
	OccurredAt time.Time       `json:"occurred_at"`
}

func (e LedgerSaved) Key() string { return e.EventID }
