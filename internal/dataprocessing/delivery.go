package dataprocessing

import (
	"ecompulse/pkg/contracts/domain"
)

// AddDeliverySpeed derives DeliveryDays as the whole-day difference between
// customer delivery and purchase for each row. Rows whose delivery timestamp
// is missing (delivered status but no recorded date) keep a nil DeliveryDays
// and must stay out of every delivery average and bucket downstream.
func AddDeliverySpeed(delivered []domain.SalesRecord) []domain.SalesRecord {
	out := make([]domain.SalesRecord, len(delivered))
	for i, rec := range delivered {
		if rec.PurchaseTimestamp != nil && rec.DeliveredCustomerDate != nil {
			days := int(rec.DeliveredCustomerDate.Sub(*rec.PurchaseTimestamp).Hours() / 24)
			rec.DeliveryDays = &days
		}
		out[i] = rec
	}
	return out
}
