package commands_test

import (
	"testing"
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/menu"
	"storefront/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2025, 6, 12, 18, 30, 0, 0, time.UTC)

// friesItem builds a catalog entry with a required Size group and an
// optional multi-select Sauce group.
func friesItem(t *testing.T, id kernel.UUID) *menu.Item {
	t.Helper()

	size, err := menu.NewVariant("small", "Small", decimal.NewFromFloat(-1.00))
	require.NoError(t, err)
	large, err := menu.NewVariant("large", "Large", decimal.NewFromFloat(1.50))
	require.NoError(t, err)
	sizeGroup, err := menu.NewOptionGroup("size", "Size", menu.Single, true, []menu.Variant{size, large})
	require.NoError(t, err)

	ranch, err := menu.NewVariant("ranch", "Ranch", decimal.NewFromFloat(0.50))
	require.NoError(t, err)
	sauceGroup, err := menu.NewOptionGroup("sauce", "Sauce", menu.Multiple, false, []menu.Variant{ranch})
	require.NoError(t, err)

	item, err := menu.NewItem(id, "Classic Fries", "Crispy golden fries",
		decimal.NewFromFloat(5.90), menu.Sides, true, []menu.OptionGroup{sizeGroup, sauceGroup})
	require.NoError(t, err)
	return item
}

func plainDrink(t *testing.T, id kernel.UUID, available bool) *menu.Item {
	t.Helper()
	item, err := menu.NewItem(id, "Soft Drink", "", decimal.NewFromFloat(4.50), menu.Drinks, available, nil)
	require.NoError(t, err)
	return item
}

// placedOrder builds an order fresh from checkout in Received status.
func placedOrder(t *testing.T, deliveryType order.DeliveryType) *order.Order {
	t.Helper()

	line, err := order.NewItem(kernel.NewUUID(), "Soft Drink",
		decimal.NewFromFloat(4.50), decimal.NewFromFloat(4.50), 1, nil, "")
	require.NoError(t, err)

	address := ""
	if deliveryType == order.Delivery {
		address = "12 Harbour St"
	}

	aggregate, err := order.NewOrder(kernel.NewUUID(), "burger-palace", "Alex Wong", "+61 400 000 111",
		"", address, deliveryType, []order.Item{line}, order.DeliveryFeeFor(deliveryType), order.Cash, "", testNow)
	require.NoError(t, err)
	return aggregate
}

// orderInStatus walks a placed order forward to the wanted status.
func orderInStatus(t *testing.T, deliveryType order.DeliveryType, status order.Status) *order.Order {
	t.Helper()

	aggregate := placedOrder(t, deliveryType)
	for aggregate.Status() != status {
		require.True(t, aggregate.Advance(testNow), "status %s is not reachable", status)
	}
	return aggregate
}
