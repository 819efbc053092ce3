package cart_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/annberg/bookmart/internal/cart"
	"github.com/annberg/bookmart/internal/domain/models"
	"github.com/annberg/bookmart/internal/storage"
)

const sid = "guest:test-session"

func newStore() *cart.Store {
	return cart.NewStore(storage.New())
}

func book(isbn string, price float64) models.Book {
	return models.Book{ISBN: isbn, Title: "Book " + isbn, Category: "Science", Price: price}
}

func TestAdd_SameISBNAccumulates(t *testing.T) {
	s := newStore()

	require.NoError(t, s.Add(sid, book("111", 10), 1))
	require.NoError(t, s.Add(sid, book("111", 10), 2))
	require.NoError(t, s.Add(sid, book("111", 10), 3))

	items, err := s.Get(sid)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "111", items[0].Book.ISBN)
	assert.Equal(t, 6, items[0].Quantity)
}

func TestAdd_DistinctISBNsAppend(t *testing.T) {
	s := newStore()

	require.NoError(t, s.Add(sid, book("111", 10), 1))
	require.NoError(t, s.Add(sid, book("222", 25), 1))

	items, err := s.Get(sid)
	require.NoError(t, err)
	assert.Len(t, items, 2)
}

func TestUpdateQuantity_ClampsAtOne(t *testing.T) {
	s := newStore()
	require.NoError(t, s.Add(sid, book("111", 10), 3))

	for _, quantity := range []int{0, -1, -100} {
		require.NoError(t, s.UpdateQuantity(sid, "111", quantity))
		items, err := s.Get(sid)
		require.NoError(t, err)
		require.Len(t, items, 1)
		assert.Equal(t, 1, items[0].Quantity, "quantity %d must clamp to 1", quantity)
	}
}

func TestUpdateQuantity_MissingItemIsNoop(t *testing.T) {
	s := newStore()
	require.NoError(t, s.Add(sid, book("111", 10), 2))

	require.NoError(t, s.UpdateQuantity(sid, "999", 5))

	items, err := s.Get(sid)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "111", items[0].Book.ISBN)
	assert.Equal(t, 2, items[0].Quantity)
}

func TestRemove_Idempotent(t *testing.T) {
	s := newStore()
	require.NoError(t, s.Add(sid, book("111", 10), 2))
	require.NoError(t, s.Add(sid, book("222", 25), 1))

	require.NoError(t, s.Remove(sid, "111"))
	first, err := s.Get(sid)
	require.NoError(t, err)

	require.NoError(t, s.Remove(sid, "111"))
	second, err := s.Get(sid)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	for _, item := range second {
		assert.NotEqual(t, "111", item.Book.ISBN)
	}
}

func TestTotals_Scenario(t *testing.T) {
	s := newStore()
	require.NoError(t, s.Add(sid, book("111", 10), 2))
	require.NoError(t, s.Add(sid, book("222", 25), 1))

	total, err := s.Total(sid)
	require.NoError(t, err)
	assert.InDelta(t, 45.0, total, 1e-9)

	count, err := s.Count(sid)
	require.NoError(t, err)
	assert.Equal(t, 3, count)

	require.NoError(t, s.Clear(sid))
	items, err := s.Get(sid)
	require.NoError(t, err)
	assert.Empty(t, items)

	count, err = s.Count(sid)
	require.NoError(t, err)
	assert.Equal(t, 0, count)
}

func TestClear_EmptyCartSucceeds(t *testing.T) {
	s := newStore()
	require.NoError(t, s.Clear(sid))
	require.NoError(t, s.Clear(sid))
}

// Reloading a serialized cart must preserve the total, the way a page
// reload re-reads the stored record.
func TestTotal_SurvivesReload(t *testing.T) {
	s := newStore()
	require.NoError(t, s.Add(sid, book("111", 9.99), 3))
	require.NoError(t, s.Add(sid, book("222", 14.50), 2))

	items, err := s.Get(sid)
	require.NoError(t, err)
	before := cart.TotalPrice(items)

	raw, err := json.Marshal(items)
	require.NoError(t, err)
	var reloaded []models.CartItem
	require.NoError(t, json.Unmarshal(raw, &reloaded))

	stor := storage.New()
	require.NoError(t, stor.SaveCart(sid, reloaded))
	after, err := cart.NewStore(stor).Total(sid)
	require.NoError(t, err)
	assert.InDelta(t, before, after, 1e-9)
}
