package cart

import (
	"errors"

	"github.com/annberg/bookmart/internal/domain/consts"
	"github.com/annberg/bookmart/internal/domain/models"
	"github.com/annberg/bookmart/internal/logger"
	storerrors "github.com/annberg/bookmart/internal/storage/errors"
)

//go:generate mockgen -source=store.go -destination=./mocks/storage_mock.go -package=mocks

// Storage is the durable record a session cart lives in. Every mutation
// reads the list, changes it and writes the whole list back in one call.
type Storage interface {
	GetCart(sid string) ([]models.CartItem, error)
	SaveCart(sid string, items []models.CartItem) error
	DeleteCart(sid string) error
}

type Store struct {
	storage Storage
}

func NewStore(stor Storage) *Store {
	return &Store{storage: stor}
}

// Get returns the session cart, empty when none was ever written.
func (s *Store) Get(sid string) ([]models.CartItem, error) {
	return s.storage.GetCart(sid)
}

// Add increments the quantity of an existing line with the same ISBN or
// appends a new one, then writes the updated list back.
func (s *Store) Add(sid string, book models.Book, quantity int) error {
	if quantity < consts.MinQuantity {
		quantity = consts.MinQuantity
	}
	items, err := s.storage.GetCart(sid)
	if err != nil {
		return err
	}
	found := false
	for i := range items {
		if items[i].Book.ISBN == book.ISBN {
			items[i].Quantity += quantity
			found = true
			break
		}
	}
	if !found {
		items = append(items, models.CartItem{Book: book, Quantity: quantity})
	}
	return s.storage.SaveCart(sid, items)
}

// Remove filters the ISBN out. Removing an absent line is not an error.
func (s *Store) Remove(sid, isbn string) error {
	items, err := s.storage.GetCart(sid)
	if err != nil {
		return err
	}
	filtered := items[:0]
	for _, item := range items {
		if item.Book.ISBN != isbn {
			filtered = append(filtered, item)
		}
	}
	return s.storage.SaveCart(sid, filtered)
}

// UpdateQuantity sets the quantity of a line, clamped to a minimum of 1.
// A missing line is a no-op, never a zero-quantity entry.
func (s *Store) UpdateQuantity(sid, isbn string, quantity int) error {
	items, err := s.storage.GetCart(sid)
	if err != nil {
		return err
	}
	for i := range items {
		if items[i].Book.ISBN == isbn {
			items[i].Quantity = max(consts.MinQuantity, quantity)
			return s.storage.SaveCart(sid, items)
		}
	}
	return nil
}

// Clear drops the stored record. Clearing an already empty cart succeeds.
func (s *Store) Clear(sid string) error {
	log := logger.Get()
	if err := s.storage.DeleteCart(sid); err != nil {
		if errors.Is(err, storerrors.ErrCartNotExist) {
			log.Debug().Str("sid", sid).Msg("cart already empty")
			return nil
		}
		return err
	}
	return nil
}

// Count is the sum of quantities across lines.
func (s *Store) Count(sid string) (int, error) {
	items, err := s.storage.GetCart(sid)
	if err != nil {
		return 0, err
	}
	return CountItems(items), nil
}

// Total is the sum of unit price times quantity across lines.
func (s *Store) Total(sid string) (float64, error) {
	items, err := s.storage.GetCart(sid)
	if err != nil {
		return 0, err
	}
	return TotalPrice(items), nil
}

func CountItems(items []models.CartItem) int {
	sum := 0
	for _, item := range items {
		sum += item.Quantity
	}
	return sum
}

func TotalPrice(items []models.CartItem) float64 {
	var sum float64
	for _, item := range items {
		sum += item.Book.Price * float64(item.Quantity)
	}
	return sum
}
