package server

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/annberg/bookmart/internal/domain/models"
	"github.com/annberg/bookmart/internal/logger"
)

func (s *Server) AdminBooks(ctx *gin.Context) {
	books, err := s.Gateway.AdminBooks(ctx.Request.Context(), ctx.GetString("token"))
	if err != nil {
		renderError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, books)
}

func (s *Server) AdminBook(ctx *gin.Context) {
	book, err := s.Gateway.AdminBook(ctx.Request.Context(), ctx.GetString("token"), ctx.Param("isbn"))
	if err != nil {
		renderError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, book)
}

func (s *Server) AdminCreateBook(ctx *gin.Context) {
	log := logger.Get()
	var book models.Book
	if err := ctx.ShouldBindJSON(&book); err != nil {
		log.Error().Err(err).Msg("unmarshal body failed")
		ctx.String(http.StatusBadRequest, "incorrectly entered data")
		return
	}
	if err := s.valid.Struct(book); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := s.Gateway.CreateBook(ctx.Request.Context(), ctx.GetString("token"), book); err != nil {
		renderError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, gin.H{"message": "Book created successfully"})
}

func (s *Server) AdminUpdateBook(ctx *gin.Context) {
	var book models.Book
	if err := ctx.ShouldBindJSON(&book); err != nil {
		ctx.String(http.StatusBadRequest, "incorrectly entered data")
		return
	}
	book.ISBN = ctx.Param("isbn")
	if err := s.valid.Struct(book); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := s.Gateway.UpdateBook(ctx.Request.Context(), ctx.GetString("token"), book); err != nil {
		renderError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"message": "Book updated successfully"})
}

func (s *Server) AdminDeleteBook(ctx *gin.Context) {
	isbn := ctx.Param("isbn")
	if isbn == "" {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "missing book ISBN"})
		return
	}
	if err := s.Gateway.DeleteBook(ctx.Request.Context(), ctx.GetString("token"), isbn); err != nil {
		renderError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"message": "book deleted"})
}

func (s *Server) AdminPublishers(ctx *gin.Context) {
	publishers, err := s.Gateway.Publishers(ctx.Request.Context(), ctx.GetString("token"))
	if err != nil {
		renderError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, publishers)
}

// publisherOrderView decorates a row with whether the confirm action may
// be offered; already-Confirmed rows render without the control.
type publisherOrderView struct {
	models.PublisherOrder
	CanConfirm bool `json:"can_confirm"`
}

func (s *Server) AdminPublisherOrders(ctx *gin.Context) {
	orders, err := s.Gateway.PublisherOrders(ctx.Request.Context(), ctx.GetString("token"))
	if err != nil {
		renderError(ctx, err)
		return
	}
	views := make([]publisherOrderView, 0, len(orders))
	for _, order := range orders {
		views = append(views, publisherOrderView{
			PublisherOrder: order,
			CanConfirm:     order.Confirmable(),
		})
	}
	ctx.JSON(http.StatusOK, views)
}

func (s *Server) AdminConfirmPublisherOrder(ctx *gin.Context) {
	log := logger.Get()
	orderID, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid order id"})
		return
	}
	token := ctx.GetString("token")

	// The backend rejects a double confirm; refuse locally as well so an
	// already-confirmed row never even issues the request.
	orders, err := s.Gateway.PublisherOrders(ctx.Request.Context(), token)
	if err != nil {
		renderError(ctx, err)
		return
	}
	for _, order := range orders {
		if order.OrderID == orderID && !order.Confirmable() {
			ctx.JSON(http.StatusConflict, gin.H{"error": "order already confirmed"})
			return
		}
	}

	if err := s.Gateway.ConfirmPublisherOrder(ctx.Request.Context(), token, orderID); err != nil {
		log.Error().Err(err).Int("order_id", orderID).Msg("failed to confirm publisher order")
		renderError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"message": "Publisher order confirmed successfully"})
}

func (s *Server) AdminCustomerOrders(ctx *gin.Context) {
	orders, err := s.Gateway.CustomerOrders(ctx.Request.Context(), ctx.GetString("token"))
	if err != nil {
		renderError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, orders)
}

func (s *Server) AdminSalesPreviousMonth(ctx *gin.Context) {
	total, err := s.Gateway.SalesPreviousMonth(ctx.Request.Context(), ctx.GetString("token"))
	if err != nil {
		renderError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, total)
}

func (s *Server) AdminSalesByDate(ctx *gin.Context) {
	date := ctx.Query("date")
	if date == "" {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "missing date parameter"})
		return
	}
	total, err := s.Gateway.SalesByDate(ctx.Request.Context(), ctx.GetString("token"), date)
	if err != nil {
		renderError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, total)
}

func (s *Server) AdminTopCustomers(ctx *gin.Context) {
	customers, err := s.Gateway.TopCustomers(ctx.Request.Context(), ctx.GetString("token"))
	if err != nil {
		renderError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, customers)
}

func (s *Server) AdminTopBooks(ctx *gin.Context) {
	books, err := s.Gateway.TopBooks(ctx.Request.Context(), ctx.GetString("token"))
	if err != nil {
		renderError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, books)
}

func (s *Server) AdminReplenishmentHistory(ctx *gin.Context) {
	count, err := s.Gateway.ReplenishmentHistory(ctx.Request.Context(), ctx.GetString("token"), ctx.Param("isbn"))
	if err != nil {
		renderError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, count)
}
