package dataprocessing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ecompulse/pkg/contracts/domain"
)

func deliveredRecord(orderID string, purchase time.Time) domain.SalesRecord {
	return domain.SalesRecord{
		OrderID:           orderID,
		Status:            domain.OrderStatusDelivered,
		PurchaseTimestamp: &purchase,
		Year:              purchase.Year(),
		Month:             int(purchase.Month()),
	}
}

func TestFilterByYear(t *testing.T) {
	records := []domain.SalesRecord{
		deliveredRecord("a", time.Date(2022, 11, 3, 0, 0, 0, 0, time.UTC)),
		deliveredRecord("b", time.Date(2023, 2, 14, 0, 0, 0, 0, time.UTC)),
		deliveredRecord("c", time.Date(2023, 9, 1, 0, 0, 0, 0, time.UTC)),
	}

	got := FilterByYear(records, 2023)
	require.Len(t, got, 2)
	assert.Equal(t, "b", got[0].OrderID)
	assert.Equal(t, "c", got[1].OrderID)

	assert.Empty(t, FilterByYear(records, 2020))
}

func TestFilterByDateRange(t *testing.T) {
	records := []domain.SalesRecord{
		deliveredRecord("before", time.Date(2023, 2, 28, 23, 0, 0, 0, time.UTC)),
		deliveredRecord("first", time.Date(2023, 3, 1, 0, 0, 0, 0, time.UTC)),
		deliveredRecord("mid", time.Date(2023, 3, 15, 12, 30, 0, 0, time.UTC)),
		deliveredRecord("last", time.Date(2023, 3, 31, 23, 59, 0, 0, time.UTC)),
		deliveredRecord("after", time.Date(2023, 4, 1, 0, 0, 0, 0, time.UTC)),
	}

	period, err := domain.NewPeriod(
		time.Date(2023, 3, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2023, 3, 31, 0, 0, 0, 0, time.UTC),
	)
	require.NoError(t, err)

	got := FilterByDateRange(records, period)
	require.Len(t, got, 3)
	assert.Equal(t, "first", got[0].OrderID)
	assert.Equal(t, "last", got[2].OrderID)
}

func TestFilterByDateRange_Idempotent(t *testing.T) {
	records := []domain.SalesRecord{
		deliveredRecord("a", time.Date(2023, 3, 5, 0, 0, 0, 0, time.UTC)),
		deliveredRecord("b", time.Date(2023, 3, 20, 0, 0, 0, 0, time.UTC)),
		deliveredRecord("out", time.Date(2023, 5, 1, 0, 0, 0, 0, time.UTC)),
	}
	period, err := domain.NewPeriod(
		time.Date(2023, 3, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2023, 3, 31, 0, 0, 0, 0, time.UTC),
	)
	require.NoError(t, err)

	once := FilterByDateRange(records, period)
	twice := FilterByDateRange(once, period)
	assert.Equal(t, once, twice)
}

func TestFilterByDateRange_EmptyResultIsNotAnError(t *testing.T) {
	records := []domain.SalesRecord{
		deliveredRecord("a", time.Date(2023, 3, 5, 0, 0, 0, 0, time.UTC)),
	}
	period, err := domain.NewPeriod(
		time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2020, 1, 31, 0, 0, 0, 0, time.UTC),
	)
	require.NoError(t, err)

	got := FilterByDateRange(records, period)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}
