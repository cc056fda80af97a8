package ledger

import (
	"context"
	"fmt"
	"io"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	interfaces "github.com/sheikh-saqib/lender-tracker/internal/interfaces"
	"github.com/sheikh-saqib/lender-tracker/internal/models"
	"github.com/sheikh-saqib/lender-tracker/internal/models/events"
)

// Ledger is the in-memory, insertion-ordered list of lenders for one run.
// It is loaded from and saved to a LenderStore and is not safe for
// concurrent use.
type Ledger struct {
	store     interfaces.LenderStore
	publisher interfaces.EventPublisher
	topic     string
	lenders   []models.Lender
	now       func() time.Time
}

// NewLedger creates an empty ledger backed by store. Events go to topic on
// publisher.
func NewLedger(store interfaces.LenderStore, publisher interfaces.EventPublisher, topic string) *Ledger {
	return &Ledger{
		store:     store,
		publisher: publisher,
		topic:     topic,
		lenders:   []models.Lender{},
		now:       time.Now,
	}
}

// Load replaces the in-memory lenders with the store content and returns the
// number of persisted records that were skipped.
func (l *Ledger) Load(ctx context.Context) (int, error) {
	res, err := l.store.Load(ctx)
	if err != nil {
		return 0, err
	}
	l.lenders = res.Lenders
	if l.lenders == nil {
		l.lenders = []models.Lender{}
	}
	return res.Skipped, nil
}

// Add appends a lender. The name is kept verbatim and duplicates are
// allowed. If amount is not a decimal number the ledger is left untouched.
func (l *Ledger) Add(ctx context.Context, name, amount string) (models.Lender, error) {
	lender, err := models.NewLender(name, amount)
	if err != nil {
		return models.Lender{}, err
	}
	l.lenders = append(l.lenders, lender)

	l.publish(events.LenderAdded{
		EventID:    uuid.New().String(),
		Name:       lender.Name,
		AmountOwed: lender.AmountOwed,
		Position:   len(l.lenders) - 1,
		OccurredAt: l.now(),
	})
	return lender, nil
}

// Lenders returns a copy of the lenders in insertion order.
func (l *Ledger) Lenders() []models.Lender {
	copied := make([]models.Lender, len(l.lenders))
	copy(copied, l.lenders)
	return copied
}

func (l *Ledger) Len() int { return len(l.lenders) }

// Total is the sum of all amounts owed.
func (l *Ledger) Total() decimal.Decimal {
	total := decimal.Zero
	for _, lender := range l.lenders {
		total = total.Add(lender.AmountOwed)
	}
	return total
}

// List writes one line per lender, in insertion order.
func (l *Ledger) List(w io.Writer) error {
	for _, lender := range l.lenders {
		if _, err := fmt.Fprintln(w, lender); err != nil {
			return err
		}
	}
	return nil
}

// Save persists the whole ledger, overwriting what the store held before.
func (l *Ledger) Save(ctx context.Context) error {
	if err := l.store.Save(ctx, l.Lenders()); err != nil {
		return fmt.Errorf("save ledger: %w", err)
	}

	l.publish(events.LedgerSaved{
		EventID:    uuid.New().String(),
		Count:      len(l.lenders),
		Total:      l.Total(),
		OccurredAt: l.now(),
	})
	return nil
}

func (l *Ledger) publish(event any) {
	if l.publisher == nil {
		return
	}
	if err := l.publisher.Publish(l.topic, event); err != nil {
		log.Printf("publish %T: %v", event, err)
	}
}
