package backend

import (
	"cmp"
	"context"
	"net/url"

	"github.com/annberg/bookmart/internal/domain/models"
)

// backendBook carries both field-naming conventions the backend has used
// across revisions. It exists only inside this package; decode reconciles
// the duality once so consumers never see two spellings of the same field.
type backendBook struct {
	ISBN            string   `json:"ISBN_number"`
	ISBNAlt         string   `json:"isbn"`
	Title           string   `json:"title"`
	Category        string   `json:"category"`
	SellingPrice    float64  `json:"selling_price"`
	Price           float64  `json:"price"`
	QuantityStock   int      `json:"quantity_stock"`
	Quantity        int      `json:"quantity"`
	Threshold       int      `json:"threshold"`
	PublicationYear int      `json:"publication_year"`
	PubYearAlt      int      `json:"publicationYear"`
	PublisherName   string   `json:"publisher_name"`
	Publisher       string   `json:"publisher"`
	PublisherID     int      `json:"publisher_id"`
	BookImage       string   `json:"book_image"`
	Image           string   `json:"image"`
	Authors         []string `json:"authors"`
}

func (b backendBook) decode() models.Book {
	return models.Book{
		ISBN:            cmp.Or(b.ISBN, b.ISBNAlt),
		Title:           b.Title,
		Category:        b.Category,
		Price:           cmp.Or(b.Price, b.SellingPrice),
		Quantity:        cmp.Or(b.Quantity, b.QuantityStock),
		Threshold:       b.Threshold,
		PublicationYear: cmp.Or(b.PublicationYear, b.PubYearAlt),
		Publisher:       cmp.Or(b.PublisherName, b.Publisher),
		PublisherID:     b.PublisherID,
		Image:           cmp.Or(b.Image, b.BookImage),
		Authors:         b.Authors,
	}
}

func decodeBooks(raw []backendBook) []models.Book {
	books := make([]models.Book, 0, len(raw))
	for _, b := range raw {
		books = append(books, b.decode())
	}
	return books
}

// encodeBook translates a canonical book into the backend's admin CRUD
// payload naming.
func encodeBook(book models.Book) map[string]any {
	return map[string]any{
		"ISBN_number":      book.ISBN,
		"title":            book.Title,
		"category":         book.Category,
		"selling_price":    book.Price,
		"quantity_stock":   book.Quantity,
		"threshold":        book.Threshold,
		"publication_year": book.PublicationYear,
		"publisher_id":     book.PublisherID,
		"book_image":       book.Image,
		"authors":          book.Authors,
	}
}

func (c *Client) Books(ctx context.Context) ([]models.Book, error) {
	var raw []backendBook
	if err := c.get(ctx, "/api/books/", "", nil, &raw); err != nil {
		return nil, err
	}
	return decodeBooks(raw), nil
}

func (c *Client) Book(ctx context.Context, isbn string) (models.Book, error) {
	var raw backendBook
	if err := c.get(ctx, "/api/books/"+isbn, "", nil, &raw); err != nil {
		return models.Book{}, err
	}
	return raw.decode(), nil
}

// SearchQuery mirrors the backend search filters; empty fields are left
// out of the request.
type SearchQuery struct {
	ISBN      string
	Title     string
	Category  string
	Publisher string
	Author    string
}

func (c *Client) SearchBooks(ctx context.Context, q SearchQuery) ([]models.Book, error) {
	query := url.Values{}
	if q.ISBN != "" {
		query.Set("isbn", q.ISBN)
	}
	if q.Title != "" {
		query.Set("title", q.Title)
	}
	if q.Category != "" {
		query.Set("category", q.Category)
	}
	if q.Publisher != "" {
		query.Set("publisher", q.Publisher)
	}
	if q.Author != "" {
		query.Set("author", q.Author)
	}
	var raw []backendBook
	if err := c.get(ctx, "/api/books/search", "", query, &raw); err != nil {
		return nil, err
	}
	return decodeBooks(raw), nil
}
