package memory

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/sheikh-saqib/lender-tracker/internal/models"
)

func TestStoreReturnsCopies(t *testing.T) {
	ctx := context.Background()
	m := NewMemoryLenderStore(models.Lender{Name: "Carol", AmountOwed: decimal.NewFromInt(75)})

	res, err := m.Load(ctx)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	res.Lenders[0].Name = "changed"

	again, _ := m.Load(ctx)
	if again.Lenders[0].Name != "Carol" {
		t.Errorf("Load() exposed internal state, got name %q", again.Lenders[0].Name)
	}

	saved := []models.Lender{{Name: "Dan", AmountOwed: decimal.NewFromInt(10)}}
	if err := m.Save(ctx, saved); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}
	saved[0].Name = "changed"

	again, _ = m.Load(ctx)
	if len(again.Lenders) != 1 || again.Lenders[0].Name != "Dan" {
		t.Errorf("Load() after Save() = %+v, want only Dan", again.Lenders)
	}
	if m.Saves() != 1 {
		t.Errorf("Saves() = %d, want 1", m.Saves())
	}
}

func TestStoreSkipped(t *testing.T) {
	m := NewMemoryLenderStore()
	m.SetSkipped(3)
	res, err := m.Load(context.Background())
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if res.Skipped != 3 || len(res.Lenders) != 0 {
		t.Errorf("Load() = %+v, want no lenders and 3 skipped", res)
	}
}
