package checkout

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator"
	"github.com/hashicorp/go-multierror"

	"github.com/annberg/bookmart/internal/backend"
	"github.com/annberg/bookmart/internal/cart"
	"github.com/annberg/bookmart/internal/domain/models"
	"github.com/annberg/bookmart/internal/logger"
)

//go:generate mockgen -source=checkout.go -destination=./mocks/checkout_mock.go -package=mocks

type State string

const (
	StateLoading    State = "loading"
	StateEmpty      State = "empty"
	StatePopulated  State = "populated"
	StateSubmitting State = "submitting"
	StateSuccess    State = "success"
	StateFailure    State = "failure"
)

var (
	// ErrLoginRequired means the caller must redirect to login; no order
	// request was issued.
	ErrLoginRequired = errors.New("login required to checkout")
	// ErrEmptyCart rejects a submission before any network call.
	ErrEmptyCart = errors.New("cart is empty")
)

// CartSource is the session cart the flow reads and, on success, clears.
type CartSource interface {
	Get(sid string) ([]models.CartItem, error)
	Clear(sid string) error
}

// Gateway is the slice of the backend client the flow needs.
type Gateway interface {
	Cart(ctx context.Context, token string) ([]models.CartItem, int, error)
	ClearCart(ctx context.Context, token string) error
	CreateOrder(ctx context.Context, token string, req backend.OrderRequest) (backend.OrderCreated, error)
}

// Form is what the checkout page collects. It is validated before any
// request leaves the process; only the card number travels in the order.
type Form struct {
	Shipping models.ShippingDetails
	Payment  models.PaymentDetails
}

// Flow drives a single checkout: loading -> empty|populated ->
// submitting -> success|failure. A failed submission leaves the cart
// intact and the flow re-submittable.
type Flow struct {
	state   State
	valid   *validator.Validate
	carts   CartSource
	gateway Gateway
	tracker *cart.Tracker
}

func New(carts CartSource, gateway Gateway, tracker *cart.Tracker) *Flow {
	return &Flow{
		state:   StateLoading,
		valid:   validator.New(),
		carts:   carts,
		gateway: gateway,
		tracker: tracker,
	}
}

func (f *Flow) State() State {
	return f.state
}

// Load reads the cart: the remote cart for an authenticated session, the
// guest store otherwise. Without either credential or session there is
// nothing to fetch and the flow lands on empty without a network call.
func (f *Flow) Load(ctx context.Context, sid, token string) ([]models.CartItem, error) {
	items, err := f.load(ctx, sid, token)
	if err != nil {
		f.state = StateFailure
		return nil, err
	}
	if len(items) == 0 {
		f.state = StateEmpty
	} else {
		f.state = StatePopulated
	}
	return items, nil
}

func (f *Flow) load(ctx context.Context, sid, token string) ([]models.CartItem, error) {
	if token != "" {
		items, _, err := f.gateway.Cart(ctx, token)
		return items, err
	}
	if sid == "" {
		return nil, nil
	}
	return f.carts.Get(sid)
}

// ValidateForm checks every field and reports all failures at once, so
// the form can render them inline in a single pass.
func (f *Flow) ValidateForm(form Form) error {
	var result *multierror.Error
	for _, section := range []any{form.Shipping, form.Payment} {
		if err := f.valid.Struct(section); err != nil {
			var fieldErrs validator.ValidationErrors
			if errors.As(err, &fieldErrs) {
				for _, fe := range fieldErrs {
					result = multierror.Append(result,
						fmt.Errorf("%s: failed %q check", strings.ToLower(fe.Field()), fe.Tag()))
				}
				continue
			}
			result = multierror.Append(result, err)
		}
	}
	return result.ErrorOrNil()
}

// Submit packages the cart snapshot into an order-creation request. On
// success the cart is cleared and the tracker zeroed; on any failure the
// cart is left exactly as it was.
func (f *Flow) Submit(ctx context.Context, sid, token string, form Form) (backend.OrderCreated, error) {
	log := logger.Get()

	if token == "" {
		f.state = StateFailure
		return backend.OrderCreated{}, ErrLoginRequired
	}
	if err := f.ValidateForm(form); err != nil {
		f.state = StateFailure
		return backend.OrderCreated{}, err
	}

	items, err := f.load(ctx, sid, token)
	if err != nil {
		f.state = StateFailure
		return backend.OrderCreated{}, err
	}
	if len(items) == 0 {
		f.state = StateFailure
		return backend.OrderCreated{}, ErrEmptyCart
	}

	f.state = StateSubmitting
	req := backend.OrderRequest{
		Books:            snapshot(items),
		CreditCardNumber: form.Payment.CardNumber,
	}
	created, err := f.gateway.CreateOrder(ctx, token, req)
	if err != nil {
		log.Error().Err(err).Msg("order creation failed")
		f.state = StateFailure
		return backend.OrderCreated{}, err
	}

	if err := f.clear(ctx, sid, token); err != nil {
		// The order exists; a stale cart is an annoyance, not a rollback.
		log.Error().Err(err).Msg("failed to clear cart after order")
	}
	if f.tracker != nil {
		f.tracker.Set(sid, 0)
	}
	f.state = StateSuccess
	return created, nil
}

func (f *Flow) clear(ctx context.Context, sid, token string) error {
	if token != "" {
		return f.gateway.ClearCart(ctx, token)
	}
	return f.carts.Clear(sid)
}

func snapshot(items []models.CartItem) []backend.OrderBook {
	out := make([]backend.OrderBook, 0, len(items))
	for _, item := range items {
		out = append(out, backend.OrderBook{
			ISBN:     item.Book.ISBN,
			Quantity: item.Quantity,
		})
	}
	return out
}
