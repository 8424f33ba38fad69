package billing

// Invoice is the payload the frontend renders for bills and PDF export.
// Shapes match the order-detail endpoints so every role surface shows the
// same numbers. All amounts are two-decimal strings.
type Invoice struct {
	RestaurantName    string        `json:"restaurant_name"`
	RestaurantAddress string        `json:"restaurant_address"`
	RestaurantPhone   string        `json:"restaurant_phone"`
	RestaurantEmail   string        `json:"restaurant_email"`
	RestaurantLogo    string        `json:"restaurant_logo,omitempty"`
	InvoiceNumber     string        `json:"invoice_number"`
	Date              string        `json:"date"`
	CustomerName      string        `json:"customer_name,omitempty"`
	TableNumber       string        `json:"table_number"`
	TableName         string        `json:"table_name,omitempty"`
	WaiterName        string        `json:"waiter_name,omitempty"`
	PaymentMethod     string        `json:"payment_method"`
	PaymentStatus     string        `json:"payment_status"`
	Items             []InvoiceItem `json:"items"`
	Subtotal          string        `json:"subtotal"`
	Tax               string        `json:"tax"`
	Discount          string        `json:"discount"`
	ServiceCharge     string        `json:"service_charge"`
	GrandTotal        string        `json:"grand_total"`
}

// InvoiceItem is one bill line with its serial number.
type InvoiceItem struct {
	ID       uint   `json:"id"`
	SN       int    `json:"sn"`
	ItemName string `json:"item_name"`
	Price    string `json:"price"`
	Quantity string `json:"quantity"`
	Total    string `json:"total"`
}
