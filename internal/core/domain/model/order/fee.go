package order

import "github.com/shopspring/decimal"

// flatDeliveryFee is the storefront's flat delivery charge.
var flatDeliveryFee = decimal.RequireFromString("7.90")

// DeliveryFeeFor returns the delivery fee applied at checkout for a
// delivery type: a flat fee for delivery, zero for pickup.
func DeliveryFeeFor(deliveryType DeliveryType) decimal.Decimal {
	if deliveryType == Delivery {
		return flatDeliveryFee
	}
	return decimal.Zero
}
