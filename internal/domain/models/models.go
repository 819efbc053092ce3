package models

// Book is the canonical catalog shape. The backend speaks a different
// field-naming convention (ISBN_number, selling_price, quantity_stock,
// book_image, publication_year); the backend client reconciles it once,
// so nothing past that boundary sees both spellings.
type Book struct {
	ISBN            string   `json:"isbn" validate:"required"`
	Title           string   `json:"title" validate:"required,min=1"`
	Category        string   `json:"category" validate:"required,oneof=Science Art Religion History Geography"`
	Price           float64  `json:"price" validate:"gte=0"`
	Quantity        int      `json:"quantity" validate:"gte=0"`
	Threshold       int      `json:"threshold" validate:"gte=0"`
	PublicationYear int      `json:"publicationYear"`
	Publisher       string   `json:"publisher,omitempty"`
	PublisherID     int      `json:"publisher_id,omitempty"`
	Image           string   `json:"image,omitempty"`
	Authors         []string `json:"authors,omitempty"`
}

// CartItem keys on the book's ISBN; Quantity is never below 1.
type CartItem struct {
	Book     Book `json:"book"`
	Quantity int  `json:"quantity"`
}

// OrderItem is an order-history line as the backend reads it back. The
// order-creation request uses a different quantity key.
type OrderItem struct {
	ISBN      string  `json:"ISBN_number"`
	Title     string  `json:"title,omitempty"`
	Quantity  int     `json:"item_quantity"`
	UnitPrice float64 `json:"unit_price,omitempty"`
}

// Order is an immutable snapshot of a cart at submission time. The client
// only ever reads it back for history.
type Order struct {
	OrderID   int         `json:"order_id"`
	Username  string      `json:"username,omitempty"`
	FirstName string      `json:"first_name,omitempty"`
	LastName  string      `json:"last_name,omitempty"`
	OrderDate string      `json:"order_date"`
	TotalCost float64     `json:"total_cost"`
	Books     []OrderItem `json:"books"`
}

const (
	PublisherOrderPending   = "Pending"
	PublisherOrderConfirmed = "Confirmed"
)

// PublisherOrder is a restock request to a publisher, confirmed manually
// by an admin. Confirming twice is rejected by the backend; the client
// hides the action once the status is Confirmed.
type PublisherOrder struct {
	OrderID   int     `json:"order_id"`
	ISBN      string  `json:"ISBN_number"`
	BookTitle string  `json:"book_title"`
	Quantity  int     `json:"quantity"`
	Cost      float64 `json:"cost"`
	OrderDate string  `json:"order_date"`
	Status    string  `json:"status"`
}

func (po PublisherOrder) Confirmable() bool {
	return po.Status == PublisherOrderPending
}

type Publisher struct {
	PublisherID int    `json:"publisher_id"`
	Name        string `json:"name"`
}

type SalesTotal struct {
	TotalSales float64 `json:"total_sales"`
}

type TopCustomer struct {
	FirstName           string  `json:"first_name"`
	LastName            string  `json:"last_name"`
	TotalPurchaseAmount float64 `json:"total_purchase_amount"`
}

type TopBook struct {
	Title      string `json:"title"`
	CopiesSold int    `json:"total_number_of_copies_sold"`
}

type ReplenishmentCount struct {
	Count int `json:"number_of_replenishments"`
}

const (
	RoleCustomer = "Customer"
	RoleAdmin    = "Admin"
)

type User struct {
	Username  string `json:"username"`
	FirstName string `json:"first_name,omitempty"`
	LastName  string `json:"last_name,omitempty"`
	Email     string `json:"email,omitempty"`
	Phone     string `json:"phone_number,omitempty"`
	Address   string `json:"shipping_address,omitempty"`
	Role      string `json:"role"`
}

// ShippingDetails and PaymentDetails are validated client-side before a
// checkout submission; only the card number travels in the order request,
// the address lives on the user profile.
type ShippingDetails struct {
	Address string `json:"details" validate:"required,min=5"`
	City    string `json:"city" validate:"required"`
	Phone   string `json:"phone" validate:"required,min=7"`
}

type PaymentDetails struct {
	CardNumber string `json:"credit_card_number" validate:"required,len=16,numeric"`
	Expiration string `json:"expiration_date,omitempty"`
}
