package ledger_test

import (
	"math"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/loomworks/textile_factory_app/internal/core/domain"
	"github.com/loomworks/textile_factory_app/internal/core/ledger"
)

var testNow = time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC)

func testItem(quantity float64) domain.InventoryItem {
	return domain.InventoryItem{
		ItemID:   "item-1",
		ItemType: "cotton",
		Color:    "white",
		Quantity: quantity,
		Unit:     "meter",
		Price:    decimal.NewFromInt(12),
	}
}

func TestApplyMovement_Outbound(t *testing.T) {
	item := testItem(100)

	updated, movement, err := ledger.ApplyMovement(item, domain.MovementOut, 30, ledger.MovementContext{
		User: "manager",
		Now:  testNow,
	})

	require.NoError(t, err)
	assert.Equal(t, 70.0, updated.Quantity)
	assert.Equal(t, 100.0, movement.PreviousQuantity)
	assert.Equal(t, 70.0, movement.NewQuantity)
	assert.Equal(t, domain.MovementOut, movement.Operation)
	assert.Equal(t, 30.0, movement.Quantity)
	assert.Equal(t, "manager", movement.User)
	assert.NotEmpty(t, movement.MovementID)
	assert.Equal(t, "item-1", movement.ItemID)
}

func TestApplyMovement_Inbound(t *testing.T) {
	item := testItem(12.5)

	updated, movement, err := ledger.ApplyMovement(item, domain.MovementIn, 7.25, ledger.MovementContext{Now: testNow})

	require.NoError(t, err)
	assert.Equal(t, 19.75, updated.Quantity)
	assert.Equal(t, 12.5, movement.PreviousQuantity)
	assert.Equal(t, 19.75, movement.NewQuantity)
}

func TestApplyMovement_InsufficientStock(t *testing.T) {
	item := testItem(50)

	_, _, err := ledger.ApplyMovement(item, domain.MovementOut, 80, ledger.MovementContext{Now: testNow})

	require.ErrorIs(t, err, ledger.ErrInsufficientStock)
	// The guard is user-facing: both requested and available must be reported.
	assert.Contains(t, err.Error(), "80")
	assert.Contains(t, err.Error(), "50")
	// Input item is untouched.
	assert.Equal(t, 50.0, item.Quantity)
}

func TestApplyMovement_InvalidQuantity(t *testing.T) {
	tests := []struct {
		name     string
		quantity float64
	}{
		{"zero", 0},
		{"negative", -5},
		{"nan", math.NaN()},
		{"positive infinity", math.Inf(1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := ledger.ApplyMovement(testItem(10), domain.MovementIn, tt.quantity, ledger.MovementContext{Now: testNow})
			assert.ErrorIs(t, err, ledger.ErrInvalidQuantity)
		})
	}
}

func TestApplyMovement_UnknownOperation(t *testing.T) {
	_, _, err := ledger.ApplyMovement(testItem(10), domain.MovementType("transfer"), 5, ledger.MovementContext{Now: testNow})
	assert.ErrorIs(t, err, ledger.ErrInvalidQuantity)
}

func TestApplyMovement_RoundTrip(t *testing.T) {
	item := testItem(40)

	afterIn, first, err := ledger.ApplyMovement(item, domain.MovementIn, 15, ledger.MovementContext{Now: testNow})
	require.NoError(t, err)

	afterOut, second, err := ledger.ApplyMovement(afterIn, domain.MovementOut, 15, ledger.MovementContext{Now: testNow})
	require.NoError(t, err)

	assert.Equal(t, item.Quantity, afterOut.Quantity)
	// The two movement records chain: the second starts where the first ended.
	assert.Equal(t, first.NewQuantity, second.PreviousQuantity)
}

func TestApplyMovement_OnlyQuantityChanges(t *testing.T) {
	item := testItem(100)
	item.Location = "warehouse A"
	item.MinimumThreshold = 20

	updated, _, err := ledger.ApplyMovement(item, domain.MovementOut, 10, ledger.MovementContext{Now: testNow})

	require.NoError(t, err)
	expected := item
	expected.Quantity = 90
	assert.Equal(t, expected, updated)
}

func TestApplyMovement_DateDefaultsToNow(t *testing.T) {
	_, movement, err := ledger.ApplyMovement(testItem(10), domain.MovementIn, 1, ledger.MovementContext{Now: testNow})
	require.NoError(t, err)
	assert.Equal(t, testNow, movement.Date)
	assert.Equal(t, testNow, movement.CreatedAt)

	explicit := testNow.AddDate(0, 0, -2)
	_, movement, err = ledger.ApplyMovement(testItem(10), domain.MovementIn, 1, ledger.MovementContext{Date: explicit, Now: testNow})
	require.NoError(t, err)
	assert.Equal(t, explicit, movement.Date)
}

func TestApplyMovement_NeverNegative(t *testing.T) {
	item := testItem(3)
	for _, q := range []float64{3.0001, 4, 100, 1e9} {
		_, _, err := ledger.ApplyMovement(item, domain.MovementOut, q, ledger.MovementContext{Now: testNow})
		assert.ErrorIs(t, err, ledger.ErrInsufficientStock, "quantity %v", q)
	}

	updated, _, err := ledger.ApplyMovement(item, domain.MovementOut, 3, ledger.MovementContext{Now: testNow})
	require.NoError(t, err)
	assert.Equal(t, 0.0, updated.Quantity)
}
