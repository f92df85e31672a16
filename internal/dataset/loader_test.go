package dataset

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "ecompulse/internal/errors"
)

// writeDataset creates a minimal but complete six-file dataset in dir.
func writeDataset(t *testing.T, dir string) {
	t.Helper()

	files := map[string]string{
		OrdersFile: "order_id,customer_id,order_status,order_purchase_timestamp,order_approved_at,order_delivered_carrier_date,order_delivered_customer_date,order_estimated_delivery_date\n" +
			"o1,c1,delivered,2023-01-05 10:00:00,2023-01-05 11:00:00,2023-01-06 08:00:00,2023-01-12 14:00:00,2023-01-20 00:00:00\n" +
			"o2,c2,shipped,2023-02-10 09:30:00,2023-02-10 10:00:00,2023-02-11 08:00:00,,2023-02-25 00:00:00\n",
		OrderItemsFile: "order_id,order_item_id,product_id,seller_id,shipping_limit_date,price,freight_value\n" +
			"o1,1,p1,s1,2023-01-07 00:00:00,50.00,8.50\n" +
			"o1,2,p2,s1,2023-01-07 00:00:00,30.00,5.00\n" +
			"o2,1,p1,s2,2023-02-12 00:00:00,150.00,12.00\n",
		ProductsFile: "product_id,product_category_name\n" +
			"p1,toys\n" +
			"p2,books\n",
		CustomersFile: "customer_id,customer_unique_id,customer_zip_code_prefix,customer_city,customer_state\n" +
			"c1,u1,01000,sao paulo,SP\n" +
			"c2,u2,20000,rio de janeiro,RJ\n",
		ReviewsFile: "review_id,order_id,review_score\n" +
			"r1,o1,5\n" +
			"r2,o2,3\n",
		PaymentsFile: "order_id,payment_sequential,payment_type,payment_installments,payment_value\n" +
			"o1,1,credit_card,2,88.50\n" +
			"o2,1,boleto,1,162.00\n",
	}
	for name, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0644))
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	writeDataset(t, dir)

	tables, err := Load(context.Background(), dir)
	require.NoError(t, err)

	assert.Len(t, tables.Orders, 2)
	assert.Len(t, tables.OrderItems, 3)
	assert.Len(t, tables.Products, 2)
	assert.Len(t, tables.Customers, 2)
	assert.Len(t, tables.Reviews, 2)
	assert.Len(t, tables.Payments, 2)

	// Timestamps stay raw strings at load time.
	assert.Equal(t, "2023-01-05 10:00:00", tables.Orders[0].PurchaseRaw)
	assert.Nil(t, tables.Orders[0].PurchaseTimestamp)

	assert.Equal(t, 50.0, tables.OrderItems[0].Price)
	assert.Equal(t, 5, tables.Reviews[0].Score)
	assert.Equal(t, "credit_card", tables.Payments[0].Type)
}

func TestLoad_MissingFile(t *testing.T) {
	dir := t.TempDir()
	writeDataset(t, dir)
	require.NoError(t, os.Remove(filepath.Join(dir, ReviewsFile)))

	_, err := Load(context.Background(), dir)
	require.Error(t, err)

	var appErr *apperrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, apperrors.ErrTypeMissingFile, appErr.Type)
	assert.Equal(t, ReviewsFile, appErr.Context["file"])
}

func TestLoad_MalformedCSV(t *testing.T) {
	dir := t.TempDir()
	writeDataset(t, dir)
	// A row with a stray quote cannot be parsed into tabular form.
	require.NoError(t, os.WriteFile(filepath.Join(dir, ProductsFile),
		[]byte("product_id,product_category_name\np1,\"broken\n"), 0644))

	_, err := Load(context.Background(), dir)
	require.Error(t, err)

	var appErr *apperrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, apperrors.ErrTypeParsing, appErr.Type)
}

func TestLoad_MissingRequiredColumn(t *testing.T) {
	dir := t.TempDir()
	writeDataset(t, dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, OrdersFile),
		[]byte("order_id,customer_id\no1,c1\n"), 0644))

	_, err := Load(context.Background(), dir)
	require.Error(t, err)

	var appErr *apperrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, apperrors.ErrTypeParsing, appErr.Type)
}

func TestLoad_NonNumericValue(t *testing.T) {
	dir := t.TempDir()
	writeDataset(t, dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, ReviewsFile),
		[]byte("review_id,order_id,review_score\nr1,o1,great\n"), 0644))

	_, err := Load(context.Background(), dir)
	require.Error(t, err)

	var appErr *apperrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, apperrors.ErrTypeParsing, appErr.Type)
}
