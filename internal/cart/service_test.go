package cart

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/NoriFarm_Go/internal/clock"
	"github.com/osse101/NoriFarm_Go/internal/concurrency"
	"github.com/osse101/NoriFarm_Go/internal/domain"
)

type fakeCatalog map[string]domain.Product

func (f fakeCatalog) GetProduct(_ context.Context, id string) (*domain.Product, error) {
	p, ok := f[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrProductNotFound, id)
	}
	return &p, nil
}

func newTestService() Service {
	catalog := fakeCatalog{
		"seeds": {ID: "seeds", Name: "Seed Kit", Price: 18900},
		"basil": {ID: "basil", Name: "Basil", Price: 2490},
		"odd":   {ID: "odd", Name: "Odd", Price: 0.1},
	}
	clk := clock.NewSimulatedClock(time.Date(2025, 5, 1, 12, 0, 0, 0, time.UTC))
	return NewService(catalog, concurrency.NewLockManager(), clk)
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestAddItem_MergesByProduct(t *testing.T) {
	ctx := context.Background()
	svc := newTestService()

	_, err := svc.AddItem(ctx, "u1", "seeds", 1)
	require.NoError(t, err)
	_, err = svc.AddItem(ctx, "u1", "basil", 2)
	require.NoError(t, err)
	sum, err := svc.AddItem(ctx, "u1", "seeds", 2)
	require.NoError(t, err)

	require.Len(t, sum.Items, 2)
	assert.Equal(t, "seeds", sum.Items[0].Product.ID)
	assert.Equal(t, 3, sum.Items[0].Quantity)
	assert.Equal(t, 5, sum.TotalItems)

	// 3*18900 + 2*2490 = 61680; tax 8% = 4934.40
	assert.True(t, sum.Subtotal.Equal(dec("61680")), sum.Subtotal.String())
	assert.True(t, sum.Tax.Equal(dec("4934.4")), sum.Tax.String())
	assert.True(t, sum.Total.Equal(dec("66614.4")), sum.Total.String())
}

func TestAddItem_Validation(t *testing.T) {
	ctx := context.Background()
	svc := newTestService()

	_, err := svc.AddItem(ctx, "", "", 0)
	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Len(t, verr.Fields, 3)

	_, err = svc.AddItem(ctx, "u1", "missing", 1)
	assert.ErrorIs(t, err, domain.ErrProductNotFound)
}

func TestUpdateQuantity(t *testing.T) {
	ctx := context.Background()
	svc := newTestService()
	_, err := svc.AddItem(ctx, "u1", "basil", 1)
	require.NoError(t, err)

	sum, err := svc.UpdateQuantity(ctx, "u1", "basil", 4)
	require.NoError(t, err)
	assert.Equal(t, 4, sum.TotalItems)

	sum, err = svc.UpdateQuantity(ctx, "u1", "basil", 0)
	require.NoError(t, err)
	assert.Empty(t, sum.Items)
	assert.True(t, sum.Total.IsZero())

	_, err = svc.UpdateQuantity(ctx, "u1", "basil", 2)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestRemoveAndClear(t *testing.T) {
	ctx := context.Background()
	svc := newTestService()
	_, _ = svc.AddItem(ctx, "u1", "basil", 1)
	_, _ = svc.AddItem(ctx, "u1", "seeds", 1)

	sum, err := svc.RemoveItem(ctx, "u1", "basil")
	require.NoError(t, err)
	require.Len(t, sum.Items, 1)
	assert.Equal(t, "seeds", sum.Items[0].Product.ID)

	_, err = svc.RemoveItem(ctx, "u1", "basil")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	sum, err = svc.Clear(ctx, "u1")
	require.NoError(t, err)
	assert.Empty(t, sum.Items)
	assert.Equal(t, 0, sum.TotalItems)
}

func TestCartsAreIsolatedPerUser(t *testing.T) {
	ctx := context.Background()
	svc := newTestService()
	_, _ = svc.AddItem(ctx, "u1", "basil", 1)

	sum, err := svc.Get(ctx, "u2")
	require.NoError(t, err)
	assert.Empty(t, sum.Items)
	assert.Equal(t, "u2", sum.UserID)

	_, err = svc.Get(ctx, "")
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestCartsOnlyHeldWhileNonEmpty(t *testing.T) {
	ctx := context.Background()
	svc := newTestService()
	held := func() int {
		impl := svc.(*service)
		impl.mu.RLock()
		defer impl.mu.RUnlock()
		return len(impl.carts)
	}

	for i := 0; i < 5; i++ {
		sum, err := svc.Get(ctx, fmt.Sprintf("visitor-%d", i))
		require.NoError(t, err)
		assert.Empty(t, sum.Items)
	}
	assert.Equal(t, 0, held(), "viewing an empty cart stores nothing")

	_, err := svc.UpdateQuantity(ctx, "visitor-0", "basil", 2)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Equal(t, 0, held())

	_, _ = svc.AddItem(ctx, "u1", "basil", 1)
	_, _ = svc.AddItem(ctx, "u2", "seeds", 1)
	_, _ = svc.AddItem(ctx, "u3", "seeds", 1)
	assert.Equal(t, 3, held())

	_, err = svc.RemoveItem(ctx, "u1", "basil")
	require.NoError(t, err)
	_, err = svc.UpdateQuantity(ctx, "u2", "seeds", 0)
	require.NoError(t, err)
	_, err = svc.Clear(ctx, "u3")
	require.NoError(t, err)
	assert.Equal(t, 0, held())

	sum, err := svc.AddItem(ctx, "u1", "seeds", 2)
	require.NoError(t, err)
	assert.Equal(t, 2, sum.TotalItems)
}

func TestSummaryIsACopy(t *testing.T) {
	ctx := context.Background()
	svc := newTestService()
	sum, _ := svc.AddItem(ctx, "u1", "basil", 1)
	sum.Items[0].Quantity = 99

	fresh, err := svc.Get(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, 1, fresh.Items[0].Quantity)
}

func TestDecimalAvoidsFloatDrift(t *testing.T) {
	ctx := context.Background()
	svc := newTestService()
	sum, err := svc.AddItem(ctx, "u1", "odd", 3)
	require.NoError(t, err)
	assert.True(t, sum.Subtotal.Equal(dec("0.3")), sum.Subtotal.String())
}

func TestConcurrentAdds(t *testing.T) {
	ctx := context.Background()
	svc := newTestService()

	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.AddItem(ctx, "u1", "basil", 1)
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	sum, err := svc.Get(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, sum.Items, 1)
	assert.Equal(t, 100, sum.Items[0].Quantity)
}
