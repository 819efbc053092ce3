package storage

import (
	"sync"

	"github.com/annberg/bookmart/internal/domain/models"
	storerrors "github.com/annberg/bookmart/internal/storage/errors"
)

// MemStorage keeps session carts in memory. It backs the server when no
// database is reachable and the package tests.
type MemStorage struct {
	mu    sync.Mutex
	carts map[string][]models.CartItem
}

func New() *MemStorage {
	return &MemStorage{
		carts: make(map[string][]models.CartItem),
	}
}

func (ms *MemStorage) GetCart(sid string) ([]models.CartItem, error) {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	items, ok := ms.carts[sid]
	if !ok {
		return nil, nil
	}
	out := make([]models.CartItem, len(items))
	copy(out, items)
	return out, nil
}

func (ms *MemStorage) SaveCart(sid string, items []models.CartItem) error {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	stored := make([]models.CartItem, len(items))
	copy(stored, items)
	ms.carts[sid] = stored
	return nil
}

func (ms *MemStorage) DeleteCart(sid string) error {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	if _, ok := ms.carts[sid]; !ok {
		return storerrors.ErrCartNotExist
	}
	delete(ms.carts, sid)
	return nil
}
