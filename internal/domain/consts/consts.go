package consts

import "time"

const (
	DBCtxTimeout = 3 * time.Second

	// CartStorageKey is the fixed key every session cart is stored under,
	// carried over from the browser client's localStorage record.
	CartStorageKey = "book_cart"

	// DebounceDelay is how long a quantity change waits for a follow-up
	// before it is committed.
	DebounceDelay = 500 * time.Millisecond

	MinQuantity = 1
)
