package domain

import (
	"time"
)

// Order represents a single row of the orders table. Timestamp fields are
// pointers because the raw files contain blank and malformed cells; a nil
// timestamp means the value could not be parsed and downstream consumers
// must handle it.
type Order struct {
	OrderID               string     `json:"order_id" csv:"order_id"`
	CustomerID            string     `json:"customer_id" csv:"customer_id"`
	Status                string     `json:"order_status" csv:"order_status"`
	PurchaseTimestamp     *time.Time `json:"order_purchase_timestamp"`
	ApprovedAt            *time.Time `json:"order_approved_at"`
	DeliveredCarrierDate  *time.Time `json:"order_delivered_carrier_date"`
	DeliveredCustomerDate *time.Time `json:"order_delivered_customer_date"`
	EstimatedDeliveryDate *time.Time `json:"order_estimated_delivery_date"`

	// Raw text values as read from file, kept until ParseOrderDates runs.
	PurchaseRaw          string `json:"-"`
	ApprovedRaw          string `json:"-"`
	DeliveredCarrierRaw  string `json:"-"`
	DeliveredCustomerRaw string `json:"-"`
	EstimatedDeliveryRaw string `json:"-"`
}

// OrderItem represents a single row of the order items table.
type OrderItem struct {
	OrderID   string  `json:"order_id" csv:"order_id"`
	ItemID    int     `json:"order_item_id" csv:"order_item_id"`
	ProductID string  `json:"product_id" csv:"product_id"`
	SellerID  string  `json:"seller_id" csv:"seller_id"`
	Price     float64 `json:"price" csv:"price"`
	Freight   float64 `json:"freight_value" csv:"freight_value"`
}

// Product represents a single row of the products table.
type Product struct {
	ProductID    string `json:"product_id" csv:"product_id"`
	CategoryName string `json:"product_category_name" csv:"product_category_name"`
}

// Customer represents a single row of the customers table.
type Customer struct {
	CustomerID string `json:"customer_id" csv:"customer_id"`
	City       string `json:"customer_city" csv:"customer_city"`
	State      string `json:"customer_state" csv:"customer_state"`
}

// Review represents a single row of the order reviews table.
type Review struct {
	ReviewID string `json:"review_id" csv:"review_id"`
	OrderID  string `json:"order_id" csv:"order_id"`
	Score    int    `json:"review_score" csv:"review_score"`
}

// Payment represents a single row of the order payments table.
type Payment struct {
	OrderID      string  `json:"order_id" csv:"order_id"`
	Sequential   int     `json:"payment_sequential" csv:"payment_sequential"`
	Type         string  `json:"payment_type" csv:"payment_type"`
	Installments int     `json:"payment_installments" csv:"payment_installments"`
	Value        float64 `json:"payment_value" csv:"payment_value"`
}

// Tables holds the six raw tables of one dataset load. Instances are
// read-only after construction; every cleaning step returns new slices
// instead of mutating these.
type Tables struct {
	Orders     []Order
	OrderItems []OrderItem
	Products   []Product
	Customers  []Customer
	Reviews    []Review
	Payments   []Payment
}
