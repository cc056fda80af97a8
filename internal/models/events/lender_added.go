package events

import (
	"time"

	"github.com/shopspring/decimal"
)

type LenderAdded struct {
	EventID    string          `json:"event_id"`
	Name       string          `json:"name"`
	AmountOwed decimal.Decimal `json:"amount_owed"`
	Position   int             `json:"position"`
	OccurredAt time.Time       `json:"occurred_at"`
}

func (e LenderAdded) Key() string { return e.EventID }
