package memory

import (
	"context" // standard Go package for request-scoped context (timeouts, cancellation)
	"sync"    // standard Go package for concurrency primitives like Mutex

	interfaces "github.com/sheikh-saqib/lender-tracker/internal/interfaces" // interface LenderStore
	"github.com/sheikh-saqib/lender-tracker/internal/models"                // domain models: Lender
)

// MemoryLenderStore is an in-memory implementation of interfaces.LenderStore.
// It keeps the last saved ledger in a slice and counts how often it was saved.
type MemoryLenderStore struct {
	mu      sync.Mutex      // protects lenders and saves
	lenders []models.Lender // last saved ledger, in insertion order
	skipped int             // reported back by Load, lets tests simulate lenient parsing
	saves   int
}

// NewMemoryLenderStore creates a store pre-populated with the given lenders
func NewMemoryLenderStore(lenders ...models.Lender) *MemoryLenderStore {
	m := &MemoryLenderStore{
		lenders: make([]models.Lender, 0, len(lenders)),
	}
	m.lenders = append(m.lenders, lenders...)
	return m
}

// SetSkipped sets the skip count the next Load reports.
func (m *MemoryLenderStore) SetSkipped(n int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.skipped = n
}

// Load returns a copy of the stored lenders.
// Implements the LenderStore interface.
func (m *MemoryLenderStore) Load(ctx context.Context) (interfaces.LoadResult, error) {

	m.mu.Lock()         // lock to prevent concurrent modification while reading
	defer m.mu.Unlock() // unlock automatically at the end

	// return a copy so external code can't modify internal state
	copied := make([]models.Lender, len(m.lenders))
	copy(copied, m.lenders)
	return interfaces.LoadResult{Lenders: copied, Skipped: m.skipped}, nil
}

// Save replaces the stored lenders with a copy of the given ones.
func (m *MemoryLenderStore) Save(ctx context.Context, lenders []models.Lender) error {

	m.mu.Lock()         // lock the mutex to prevent concurrent writes
	defer m.mu.Unlock() // unlock automatically when function exits (even if error occurs)

	m.lenders = make([]models.Lender, len(lenders))
	copy(m.lenders, lenders)
	m.saves++
	return nil // always succeeds in memory, so returns nil
}

// Saves reports how many times Save was called.
func (m *MemoryLenderStore) Saves() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.saves
}

// Compile-time check: ensure MemoryLenderStore implements LenderStore interface
var _ interfaces.LenderStore = (*MemoryLenderStore)(nil)
