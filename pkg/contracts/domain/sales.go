package domain

import (
	"time"
)

// OrderStatusDelivered is the canonical delivered status value. The filter
// is a case-sensitive exact match against this constant.
const OrderStatusDelivered = "delivered"

// SalesRecord is one order-item row joined with its order metadata and, when
// the lookups match, product category and customer state. Rows only exist
// for (order, item) pairs whose order id was found in the orders table.
type SalesRecord struct {
	OrderID               string     `json:"order_id"`
	ItemID                int        `json:"order_item_id"`
	ProductID             string     `json:"product_id"`
	Price                 float64    `json:"price"`
	Status                string     `json:"order_status"`
	Category              string     `json:"product_category_name,omitempty"`
	CustomerState         string     `json:"customer_state,omitempty"`
	PurchaseTimestamp     *time.Time `json:"order_purchase_timestamp"`
	DeliveredCustomerDate *time.Time `json:"order_delivered_customer_date"`
	EstimatedDeliveryDate *time.Time `json:"order_estimated_delivery_date"`

	// Year and Month are derived from PurchaseTimestamp by FilterDelivered
	// and are only populated on delivered rows.
	Year  int `json:"year,omitempty"`
	Month int `json:"month,omitempty"`

	// DeliveryDays is the whole-day span from purchase to customer delivery,
	// set by AddDeliverySpeed. Nil when the delivery timestamp is missing;
	// such rows never enter delivery averages or buckets.
	DeliveryDays *int `json:"delivery_days,omitempty"`
}

// Delivered reports whether the record carries the canonical delivered status.
func (r SalesRecord) Delivered() bool {
	return r.Status == OrderStatusDelivered
}
