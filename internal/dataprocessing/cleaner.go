package dataprocessing

import (
	"time"

	"ecompulse/pkg/contracts/domain"
)

// timestampLayouts are tried in order when parsing raw timestamp cells.
// The dataset writes full timestamps; date-only cells appear in older dumps.
var timestampLayouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// parseTimestamp converts a raw cell to a time, or nil when the cell is
// blank or malformed. Bad cells degrade to nil instead of failing the table;
// downstream consumers must handle nil timestamps.
func parseTimestamp(raw string) *time.Time {
	if raw == "" {
		return nil
	}
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			t = t.UTC()
			return &t
		}
	}
	return nil
}

// ParseOrderDates converts the raw timestamp columns of the orders table to
// typed timestamps. Returns a new slice; the input is left untouched.
func ParseOrderDates(orders []domain.Order) []domain.Order {
	parsed := make([]domain.Order, len(orders))
	for i, o := range orders {
		o.PurchaseTimestamp = parseTimestamp(o.PurchaseRaw)
		o.ApprovedAt = parseTimestamp(o.ApprovedRaw)
		o.DeliveredCarrierDate = parseTimestamp(o.DeliveredCarrierRaw)
		o.DeliveredCustomerDate = parseTimestamp(o.DeliveredCustomerRaw)
		o.EstimatedDeliveryDate = parseTimestamp(o.EstimatedDeliveryRaw)
		parsed[i] = o
	}
	return parsed
}

// BuildSalesData inner-joins order items to orders on order id, attaching
// order status and timestamps to every item row, plus product category and
// customer state where the lookups match. Items without a matching order are
// dropped; orders without items contribute no rows.
func BuildSalesData(items []domain.OrderItem, orders []domain.Order, products []domain.Product, customers []domain.Customer) []domain.SalesRecord {
	ordersByID := make(map[string]domain.Order, len(orders))
	for _, o := range orders {
		ordersByID[o.OrderID] = o
	}
	categoryByProduct := make(map[string]string, len(products))
	for _, p := range products {
		categoryByProduct[p.ProductID] = p.CategoryName
	}
	stateByCustomer := make(map[string]string, len(customers))
	for _, c := range customers {
		stateByCustomer[c.CustomerID] = c.State
	}

	sales := make([]domain.SalesRecord, 0, len(items))
	for _, item := range items {
		order, ok := ordersByID[item.OrderID]
		if !ok {
			continue
		}
		sales = append(sales, domain.SalesRecord{
			OrderID:               item.OrderID,
			ItemID:                item.ItemID,
			ProductID:             item.ProductID,
			Price:                 item.Price,
			Status:                order.Status,
			Category:              categoryByProduct[item.ProductID],
			CustomerState:         stateByCustomer[order.CustomerID],
			PurchaseTimestamp:     order.PurchaseTimestamp,
			DeliveredCustomerDate: order.DeliveredCustomerDate,
			EstimatedDeliveryDate: order.EstimatedDeliveryDate,
		})
	}
	return sales
}

// FilterDelivered retains rows whose status is exactly the canonical
// delivered value and derives year/month from the purchase timestamp.
// Rows with a nil purchase timestamp are excluded since year and month
// cannot be derived for them.
func FilterDelivered(sales []domain.SalesRecord) []domain.SalesRecord {
	delivered := make([]domain.SalesRecord, 0, len(sales))
	for _, rec := range sales {
		if !rec.Delivered() || rec.PurchaseTimestamp == nil {
			continue
		}
		rec.Year = rec.PurchaseTimestamp.Year()
		rec.Month = int(rec.PurchaseTimestamp.Month())
		delivered = append(delivered, rec)
	}
	return delivered
}
