package server

import (
	"context"
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/hashicorp/go-multierror"

	"github.com/annberg/bookmart/internal/backend"
	"github.com/annberg/bookmart/internal/cart"
	"github.com/annberg/bookmart/internal/checkout"
	"github.com/annberg/bookmart/internal/domain/consts"
	"github.com/annberg/bookmart/internal/domain/models"
	"github.com/annberg/bookmart/internal/logger"
)

const guestCookie = "guest_id"

// session resolves who the cart belongs to: the JWT identity when a valid
// bearer token is present, a durable guest cookie otherwise.
func (s *Server) session(ctx *gin.Context) (sid, token string) {
	token = bearerToken(ctx)
	if token != "" {
		username, _, err := s.validToken(token)
		if err == nil {
			return "user:" + username, token
		}
		token = ""
	}
	id, err := ctx.Cookie(guestCookie)
	if err != nil || id == "" {
		id = uuid.New().String()
		ctx.SetCookie(guestCookie, id, 3600*24*30, "/", "", false, true)
	}
	return "guest:" + id, ""
}

// renderError maps a failure onto the response: backend application
// failures keep their status and message, everything else collapses into
// a generic notice. Nothing here is fatal.
func renderError(ctx *gin.Context, err error) {
	log := logger.Get()
	var apiErr *backend.APIError
	switch {
	case errors.Is(err, backend.ErrNoToken):
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "login required"})
	case errors.As(err, &apiErr):
		ctx.JSON(apiErr.Status, gin.H{"error": apiErr.Message})
	default:
		log.Error().Err(err).Msg("request failed")
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "action failed"})
	}
}

func (s *Server) Register(ctx *gin.Context) {
	log := logger.Get()
	var req backend.RegisterRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Error().Err(err).Msg("unmarshal body failed")
		ctx.String(http.StatusBadRequest, "incorrectly entered data")
		return
	}
	if err := s.valid.Struct(req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := s.Gateway.Register(ctx.Request.Context(), req); err != nil {
		renderError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, gin.H{"message": "success"})
}

func (s *Server) Login(ctx *gin.Context) {
	log := logger.Get()
	var req struct {
		Username string `json:"username" validate:"required"`
		Password string `json:"password" validate:"required"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Error().Err(err).Msg("unmarshal body failed")
		ctx.String(http.StatusBadRequest, "incorrectly entered data")
		return
	}
	if err := s.valid.Struct(req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	result, err := s.Gateway.Login(ctx.Request.Context(), req.Username, req.Password)
	if err != nil {
		renderError(ctx, err)
		return
	}
	ctx.Header("Authorization", result.Token)
	ctx.JSON(http.StatusOK, gin.H{"access_token": result.Token, "role": result.Role})
}

func (s *Server) Profile(ctx *gin.Context) {
	token := ctx.GetString("token")
	user, err := s.Gateway.Me(ctx.Request.Context(), token)
	if err != nil {
		renderError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, user)
}

func (s *Server) AllBooks(ctx *gin.Context) {
	books, err := s.Gateway.Books(ctx.Request.Context())
	if err != nil {
		renderError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, books)
}

func (s *Server) SearchBooks(ctx *gin.Context) {
	q := backend.SearchQuery{
		ISBN:      ctx.Query("isbn"),
		Title:     ctx.Query("title"),
		Category:  ctx.Query("category"),
		Publisher: ctx.Query("publisher"),
		Author:    ctx.Query("author"),
	}
	books, err := s.Gateway.SearchBooks(ctx.Request.Context(), q)
	if err != nil {
		renderError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, books)
}

func (s *Server) BookInfo(ctx *gin.Context) {
	book, err := s.Gateway.Book(ctx.Request.Context(), ctx.Param("isbn"))
	if err != nil {
		renderError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, book)
}

// cartItems reads the session cart from whichever side owns it: the
// backend for authenticated sessions, the guest store otherwise.
func (s *Server) cartItems(ctx context.Context, sid, token string) ([]models.CartItem, error) {
	if token != "" {
		items, _, err := s.Gateway.Cart(ctx, token)
		return items, err
	}
	return s.Carts.Get(sid)
}

func (s *Server) refreshTracker(ctx context.Context, sid, token string) {
	if token == "" {
		s.Tracker.Refresh(s.Carts, sid)
		return
	}
	items, _, err := s.Gateway.Cart(ctx, token)
	if err != nil {
		return
	}
	s.Tracker.Set(sid, cart.CountItems(items))
}

func (s *Server) GetCart(ctx *gin.Context) {
	sid, token := s.session(ctx)
	items, err := s.cartItems(ctx.Request.Context(), sid, token)
	if err != nil {
		renderError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{
		"items":          items,
		"numOfCartItems": cart.CountItems(items),
		"totalPrice":     cart.TotalPrice(items),
	})
}

func (s *Server) CartCount(ctx *gin.Context) {
	sid, _ := s.session(ctx)
	ctx.JSON(http.StatusOK, gin.H{"numOfCartItems": s.Tracker.Count(sid)})
}

// CartEvents streams count changes for the session as server-sent
// events, the live feed behind the navigation badge. The stream ends
// when the client disconnects or the tracker shuts down.
func (s *Server) CartEvents(ctx *gin.Context) {
	sid, _ := s.session(ctx)
	updates := s.Tracker.Subscribe()
	defer s.Tracker.Unsubscribe(updates)

	ctx.SSEvent("count", s.Tracker.Count(sid))
	ctx.Stream(func(_ io.Writer) bool {
		select {
		case update, ok := <-updates:
			if !ok {
				return false
			}
			if update.SID != sid {
				return true
			}
			ctx.SSEvent("count", update.Count)
			return true
		case <-ctx.Request.Context().Done():
			return false
		}
	})
}

func (s *Server) AddToCart(ctx *gin.Context) {
	log := logger.Get()
	var req struct {
		ISBN     string `json:"isbn" validate:"required"`
		Quantity int    `json:"quantity"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.String(http.StatusBadRequest, "incorrectly entered data")
		return
	}
	if err := s.valid.Struct(req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Quantity < consts.MinQuantity {
		req.Quantity = consts.MinQuantity
	}

	sid, token := s.session(ctx)
	if token != "" {
		items, _, err := s.Gateway.Cart(ctx.Request.Context(), token)
		if err != nil {
			renderError(ctx, err)
			return
		}
		current := 0
		for _, item := range items {
			if item.Book.ISBN == req.ISBN {
				current = item.Quantity
				break
			}
		}
		if err := s.Gateway.PutCartItem(ctx.Request.Context(), token, req.ISBN, current+req.Quantity); err != nil {
			renderError(ctx, err)
			return
		}
	} else {
		book, err := s.Gateway.Book(ctx.Request.Context(), req.ISBN)
		if err != nil {
			renderError(ctx, err)
			return
		}
		if err := s.Carts.Add(sid, book, req.Quantity); err != nil {
			log.Error().Err(err).Msg("failed to add book to cart")
			renderError(ctx, err)
			return
		}
	}
	s.refreshTracker(ctx.Request.Context(), sid, token)
	ctx.JSON(http.StatusOK, gin.H{"message": "Book added to cart"})
}

// UpdateCartItem is the debounced quantity path: the tracker reflects the
// new count immediately, while the durable write waits out the debounce
// window and only the last value in a burst is committed.
func (s *Server) UpdateCartItem(ctx *gin.Context) {
	log := logger.Get()
	isbn := ctx.Param("isbn")
	var req struct {
		Quantity int `json:"quantity"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.String(http.StatusBadRequest, "incorrectly entered data")
		return
	}
	if req.Quantity < consts.MinQuantity {
		req.Quantity = consts.MinQuantity
	}

	sid, token := s.session(ctx)
	items, err := s.cartItems(ctx.Request.Context(), sid, token)
	if err != nil {
		renderError(ctx, err)
		return
	}
	current, found := 0, false
	for _, item := range items {
		if item.Book.ISBN == isbn {
			current, found = item.Quantity, true
			break
		}
	}
	if !found {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "book not found in cart"})
		return
	}

	optimistic := cart.CountItems(items) - current + req.Quantity
	s.Tracker.Set(sid, optimistic)

	key := sid + "|" + isbn
	s.Debounce.Seen(key, current)
	s.Debounce.Schedule(key, req.Quantity, func(quantity int) {
		var err error
		if token != "" {
			err = s.Gateway.PutCartItem(context.Background(), token, isbn, quantity)
		} else {
			err = s.Carts.UpdateQuantity(sid, isbn, quantity)
		}
		if err != nil {
			log.Error().Err(err).Str("isbn", isbn).Msg("failed to commit quantity update")
		}
	})

	ctx.JSON(http.StatusOK, gin.H{"numOfCartItems": optimistic})
}

func (s *Server) RemoveCartItem(ctx *gin.Context) {
	log := logger.Get()
	isbn := ctx.Param("isbn")
	if isbn == "" {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "isbn is required"})
		return
	}

	sid, token := s.session(ctx)
	s.Debounce.Cancel(sid + "|" + isbn)
	if token != "" {
		if err := s.Gateway.DeleteCartItem(ctx.Request.Context(), token, isbn); err != nil {
			renderError(ctx, err)
			return
		}
	} else {
		if err := s.Carts.Remove(sid, isbn); err != nil {
			log.Error().Err(err).Msg("failed to remove book from cart")
			renderError(ctx, err)
			return
		}
	}
	s.refreshTracker(ctx.Request.Context(), sid, token)
	ctx.JSON(http.StatusOK, gin.H{"message": "book removed from cart"})
}

func (s *Server) ClearCart(ctx *gin.Context) {
	log := logger.Get()
	sid, token := s.session(ctx)

	items, err := s.cartItems(ctx.Request.Context(), sid, token)
	if err != nil {
		renderError(ctx, err)
		return
	}
	for _, item := range items {
		s.Debounce.Cancel(sid + "|" + item.Book.ISBN)
	}

	if token != "" {
		err = s.Gateway.ClearCart(ctx.Request.Context(), token)
	} else {
		err = s.Carts.Clear(sid)
	}
	if err != nil {
		log.Error().Err(err).Msg("failed to clear cart")
		renderError(ctx, err)
		return
	}
	s.Tracker.Set(sid, 0)
	ctx.JSON(http.StatusOK, gin.H{"message": "cart cleared"})
}

func (s *Server) Checkout(ctx *gin.Context) {
	var req struct {
		Details          string `json:"details"`
		City             string `json:"city"`
		Phone            string `json:"phone"`
		CreditCardNumber string `json:"credit_card_number"`
		ExpirationDate   string `json:"expiration_date"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.String(http.StatusBadRequest, "incorrectly entered data")
		return
	}

	sid, token := s.session(ctx)
	flow := checkout.New(s.Carts, s.Gateway, s.Tracker)
	created, err := flow.Submit(ctx.Request.Context(), sid, token, checkout.Form{
		Shipping: models.ShippingDetails{
			Address: req.Details,
			City:    req.City,
			Phone:   req.Phone,
		},
		Payment: models.PaymentDetails{
			CardNumber: req.CreditCardNumber,
			Expiration: req.ExpirationDate,
		},
	})
	if err != nil {
		var merr *multierror.Error
		switch {
		case errors.Is(err, checkout.ErrLoginRequired):
			ctx.JSON(http.StatusUnauthorized, gin.H{"error": err.Error(), "redirect": "/login"})
		case errors.Is(err, checkout.ErrEmptyCart):
			ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.As(err, &merr):
			fields := make([]string, 0, len(merr.Errors))
			for _, ferr := range merr.Errors {
				fields = append(fields, ferr.Error())
			}
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid checkout form", "fields": fields})
		default:
			renderError(ctx, err)
		}
		return
	}
	ctx.JSON(http.StatusCreated, gin.H{"message": "Order placed successfully", "order_id": created.OrderID})
}

func (s *Server) OrderHistory(ctx *gin.Context) {
	token := ctx.GetString("token")
	orders, err := s.Gateway.Orders(ctx.Request.Context(), token)
	if err != nil {
		renderError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, orders)
}
