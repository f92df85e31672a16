package dataset

import (
	"context"
	"encoding/csv"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"

	"golang.org/x/sync/errgroup"

	apperrors "ecompulse/internal/errors"
	"ecompulse/pkg/contracts/domain"
)

// File names of the six raw tables. The names, like the column sets below,
// are a contract with the upstream exporter; a rename upstream is a breaking
// change and fails the load rather than being silently tolerated.
const (
	OrdersFile     = "orders_dataset.csv"
	OrderItemsFile = "order_items_dataset.csv"
	ProductsFile   = "products_dataset.csv"
	CustomersFile  = "customers_dataset.csv"
	ReviewsFile    = "order_reviews_dataset.csv"
	PaymentsFile   = "order_payments_dataset.csv"
)

// Files lists every file a dataset directory must contain.
var Files = []string{
	OrdersFile,
	OrderItemsFile,
	ProductsFile,
	CustomersFile,
	ReviewsFile,
	PaymentsFile,
}

// Load reads the six raw tables from dir into typed in-memory tables.
// All expected files must be present; the tables are loaded concurrently.
// Timestamp columns stay raw strings here, typed parsing happens in the
// dataprocessing step.
func Load(ctx context.Context, dir string) (*domain.Tables, error) {
	logger := slog.Default().With(slog.String("component", "dataset_loader"))

	for _, name := range Files {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err != nil {
			return nil, apperrors.NewMissingFileError(
				fmt.Sprintf("dataset file %s not found", name), err).
				WithContext("file", name).
				WithContext("dir", dir)
		}
	}

	tables := &domain.Tables{}
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		tables.Orders, err = loadOrders(ctx, filepath.Join(dir, OrdersFile))
		return err
	})
	g.Go(func() error {
		var err error
		tables.OrderItems, err = loadOrderItems(ctx, filepath.Join(dir, OrderItemsFile))
		return err
	})
	g.Go(func() error {
		var err error
		tables.Products, err = loadProducts(ctx, filepath.Join(dir, ProductsFile))
		return err
	})
	g.Go(func() error {
		var err error
		tables.Customers, err = loadCustomers(ctx, filepath.Join(dir, CustomersFile))
		return err
	})
	g.Go(func() error {
		var err error
		tables.Reviews, err = loadReviews(ctx, filepath.Join(dir, ReviewsFile))
		return err
	})
	g.Go(func() error {
		var err error
		tables.Payments, err = loadPayments(ctx, filepath.Join(dir, PaymentsFile))
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	logger.InfoContext(ctx, "dataset loaded",
		slog.String("dir", dir),
		slog.Int("orders", len(tables.Orders)),
		slog.Int("order_items", len(tables.OrderItems)),
		slog.Int("products", len(tables.Products)),
		slog.Int("customers", len(tables.Customers)),
		slog.Int("reviews", len(tables.Reviews)),
		slog.Int("payments", len(tables.Payments)))

	return tables, nil
}

// table holds a parsed CSV file with a column-name index.
type table struct {
	file    string
	columns map[string]int
	rows    [][]string
}

// get returns the named cell of a row, or "" when the row is short.
func (t *table) get(row []string, column string) string {
	idx, ok := t.columns[column]
	if !ok || idx >= len(row) {
		return ""
	}
	return row[idx]
}

func (t *table) getFloat(row []string, column string, rowNum int) (float64, error) {
	raw := t.get(row, column)
	if raw == "" {
		return 0, nil
	}
	val, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, apperrors.NewParsingError(
			fmt.Sprintf("%s: row %d: column %s is not numeric", t.file, rowNum, column), err)
	}
	return val, nil
}

func (t *table) getInt(row []string, column string, rowNum int) (int, error) {
	raw := t.get(row, column)
	if raw == "" {
		return 0, nil
	}
	val, err := strconv.Atoi(raw)
	if err != nil {
		return 0, apperrors.NewParsingError(
			fmt.Sprintf("%s: row %d: column %s is not an integer", t.file, rowNum, column), err)
	}
	return val, nil
}

// readTable parses a CSV file and verifies that every required column is
// present in the header.
func readTable(ctx context.Context, path string, required []string) (*table, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	file := filepath.Base(path)

	f, err := os.Open(path)
	if err != nil {
		return nil, apperrors.NewMissingFileError(
			fmt.Sprintf("failed to open %s", file), err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	records, err := reader.ReadAll()
	if err != nil {
		return nil, apperrors.NewParsingError(
			fmt.Sprintf("%s: malformed CSV", file), err)
	}
	if len(records) == 0 {
		return nil, apperrors.NewParsingError(
			fmt.Sprintf("%s: file has no header row", file), nil)
	}

	columns := make(map[string]int, len(records[0]))
	for i, name := range records[0] {
		columns[name] = i
	}
	for _, name := range required {
		if _, ok := columns[name]; !ok {
			return nil, apperrors.NewParsingError(
				fmt.Sprintf("%s: required column %s missing", file, name), nil).
				WithContext("column", name)
		}
	}

	return &table{file: file, columns: columns, rows: records[1:]}, nil
}

func loadOrders(ctx context.Context, path string) ([]domain.Order, error) {
	t, err := readTable(ctx, path, []string{
		"order_id", "customer_id", "order_status", "order_purchase_timestamp",
	})
	if err != nil {
		return nil, err
	}

	orders := make([]domain.Order, 0, len(t.rows))
	for _, row := range t.rows {
		orders = append(orders, domain.Order{
			OrderID:              t.get(row, "order_id"),
			CustomerID:           t.get(row, "customer_id"),
			Status:               t.get(row, "order_status"),
			PurchaseRaw:          t.get(row, "order_purchase_timestamp"),
			ApprovedRaw:          t.get(row, "order_approved_at"),
			DeliveredCarrierRaw:  t.get(row, "order_delivered_carrier_date"),
			DeliveredCustomerRaw: t.get(row, "order_delivered_customer_date"),
			EstimatedDeliveryRaw: t.get(row, "order_estimated_delivery_date"),
		})
	}
	return orders, nil
}

func loadOrderItems(ctx context.Context, path string) ([]domain.OrderItem, error) {
	t, err := readTable(ctx, path, []string{
		"order_id", "order_item_id", "product_id", "price",
	})
	if err != nil {
		return nil, err
	}

	items := make([]domain.OrderItem, 0, len(t.rows))
	for i, row := range t.rows {
		rowNum := i + 2
		itemID, err := t.getInt(row, "order_item_id", rowNum)
		if err != nil {
			return nil, err
		}
		price, err := t.getFloat(row, "price", rowNum)
		if err != nil {
			return nil, err
		}
		freight, err := t.getFloat(row, "freight_value", rowNum)
		if err != nil {
			return nil, err
		}
		items = append(items, domain.OrderItem{
			OrderID:   t.get(row, "order_id"),
			ItemID:    itemID,
			ProductID: t.get(row, "product_id"),
			SellerID:  t.get(row, "seller_id"),
			Price:     price,
			Freight:   freight,
		})
	}
	return items, nil
}

func loadProducts(ctx context.Context, path string) ([]domain.Product, error) {
	t, err := readTable(ctx, path, []string{"product_id", "product_category_name"})
	if err != nil {
		return nil, err
	}

	products := make([]domain.Product, 0, len(t.rows))
	for _, row := range t.rows {
		products = append(products, domain.Product{
			ProductID:    t.get(row, "product_id"),
			CategoryName: t.get(row, "product_category_name"),
		})
	}
	return products, nil
}

func loadCustomers(ctx context.Context, path string) ([]domain.Customer, error) {
	t, err := readTable(ctx, path, []string{"customer_id", "customer_state"})
	if err != nil {
		return nil, err
	}

	customers := make([]domain.Customer, 0, len(t.rows))
	for _, row := range t.rows {
		customers = append(customers, domain.Customer{
			CustomerID: t.get(row, "customer_id"),
			City:       t.get(row, "customer_city"),
			State:      t.get(row, "customer_state"),
		})
	}
	return customers, nil
}

func loadReviews(ctx context.Context, path string) ([]domain.Review, error) {
	t, err := readTable(ctx, path, []string{"review_id", "order_id", "review_score"})
	if err != nil {
		return nil, err
	}

	reviews := make([]domain.Review, 0, len(t.rows))
	for i, row := range t.rows {
		score, err := t.getInt(row, "review_score", i+2)
		if err != nil {
			return nil, err
		}
		reviews = append(reviews, domain.Review{
			ReviewID: t.get(row, "review_id"),
			OrderID:  t.get(row, "order_id"),
			Score:    score,
		})
	}
	return reviews, nil
}

func loadPayments(ctx context.Context, path string) ([]domain.Payment, error) {
	t, err := readTable(ctx, path, []string{"order_id", "payment_type", "payment_value"})
	if err != nil {
		return nil, err
	}

	payments := make([]domain.Payment, 0, len(t.rows))
	for i, row := range t.rows {
		rowNum := i + 2
		sequential, err := t.getInt(row, "payment_sequential", rowNum)
		if err != nil {
			return nil, err
		}
		installments, err := t.getInt(row, "payment_installments", rowNum)
		if err != nil {
			return nil, err
		}
		value, err := t.getFloat(row, "payment_value", rowNum)
		if err != nil {
			return nil, err
		}
		payments = append(payments, domain.Payment{
			OrderID:      t.get(row, "order_id"),
			Sequential:   sequential,
			Type:         t.get(row, "payment_type"),
			Installments: installments,
			Value:        value,
		})
	}
	return payments, nil
}
