package tests

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/annberg/bookmart/internal/backend"
	"github.com/annberg/bookmart/internal/domain/models"
	"github.com/annberg/bookmart/internal/server/mocks"
)

const adminToken = "admin-tok"

// adminCtx mimics what the role middleware leaves behind for a handler.
func adminCtx(method, target string) (*gin.Context, *httptest.ResponseRecorder) {
	w := httptest.NewRecorder()
	ctx, _ := gin.CreateTestContext(w)
	ctx.Request = httptest.NewRequest(method, target, nil)
	ctx.Set("username", "admin")
	ctx.Set("role", models.RoleAdmin)
	ctx.Set("token", adminToken)
	return ctx, w
}

func TestServer_adminPublisherOrders(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockGW := mocks.NewMockGateway(ctrl)
	s := newTestServer(mockGW)
	defer s.Debounce.Stop()

	orders := []models.PublisherOrder{
		{OrderID: 1, ISBN: "111", BookTitle: "Dune", Quantity: 5, Status: models.PublisherOrderPending},
		{OrderID: 2, ISBN: "222", BookTitle: "Emma", Quantity: 3, Status: models.PublisherOrderConfirmed},
	}
	mockGW.EXPECT().PublisherOrders(gomock.Any(), adminToken).Return(orders, nil)

	ctx, w := adminCtx(http.MethodGet, "/admin/publisher-orders")
	s.AdminPublisherOrders(ctx)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"order_id":1`)
	assert.Contains(t, w.Body.String(), `"can_confirm":true`)
	assert.Contains(t, w.Body.String(), `"can_confirm":false`)
}

func TestServer_adminConfirmPublisherOrder(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	pending := []models.PublisherOrder{
		{OrderID: 1, Status: models.PublisherOrderPending},
		{OrderID: 2, Status: models.PublisherOrderConfirmed},
	}

	t.Run("success", func(t *testing.T) {
		mockGW := mocks.NewMockGateway(ctrl)
		s := newTestServer(mockGW)
		defer s.Debounce.Stop()

		mockGW.EXPECT().PublisherOrders(gomock.Any(), adminToken).Return(pending, nil)
		mockGW.EXPECT().ConfirmPublisherOrder(gomock.Any(), adminToken, 1).Return(nil)

		ctx, w := adminCtx(http.MethodPut, "/admin/publisher-orders/1/confirm")
		ctx.Params = gin.Params{{Key: "id", Value: "1"}}
		s.AdminConfirmPublisherOrder(ctx)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Publisher order confirmed successfully")
	})

	t.Run("already confirmed never reaches the backend", func(t *testing.T) {
		mockGW := mocks.NewMockGateway(ctrl)
		s := newTestServer(mockGW)
		defer s.Debounce.Stop()

		mockGW.EXPECT().PublisherOrders(gomock.Any(), adminToken).Return(pending, nil)
		mockGW.EXPECT().ConfirmPublisherOrder(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

		ctx, w := adminCtx(http.MethodPut, "/admin/publisher-orders/2/confirm")
		ctx.Params = gin.Params{{Key: "id", Value: "2"}}
		s.AdminConfirmPublisherOrder(ctx)

		assert.Equal(t, http.StatusConflict, w.Code)
		assert.Contains(t, w.Body.String(), "order already confirmed")
	})

	t.Run("invalid id", func(t *testing.T) {
		mockGW := mocks.NewMockGateway(ctrl)
		s := newTestServer(mockGW)
		defer s.Debounce.Stop()

		ctx, w := adminCtx(http.MethodPut, "/admin/publisher-orders/abc/confirm")
		ctx.Params = gin.Params{{Key: "id", Value: "abc"}}
		s.AdminConfirmPublisherOrder(ctx)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "invalid order id")
	})

	t.Run("backend rejects the confirm", func(t *testing.T) {
		mockGW := mocks.NewMockGateway(ctrl)
		s := newTestServer(mockGW)
		defer s.Debounce.Stop()

		mockGW.EXPECT().PublisherOrders(gomock.Any(), adminToken).Return(pending, nil)
		mockGW.EXPECT().ConfirmPublisherOrder(gomock.Any(), adminToken, 1).
			Return(&backend.APIError{Status: http.StatusConflict, Message: "already confirmed"})

		ctx, w := adminCtx(http.MethodPut, "/admin/publisher-orders/1/confirm")
		ctx.Params = gin.Params{{Key: "id", Value: "1"}}
		s.AdminConfirmPublisherOrder(ctx)

		assert.Equal(t, http.StatusConflict, w.Code)
		assert.Contains(t, w.Body.String(), "already confirmed")
	})
}

func TestServer_adminCreateBook(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	book := map[string]any{
		"isbn":            "9780132350884",
		"title":           "Clean Code",
		"category":        "Science",
		"price":           31.5,
		"quantity":        12,
		"threshold":       3,
		"publicationYear": 2008,
		"publisher_id":    4,
	}

	t.Run("success", func(t *testing.T) {
		mockGW := mocks.NewMockGateway(ctrl)
		s := newTestServer(mockGW)
		defer s.Debounce.Stop()

		mockGW.EXPECT().CreateBook(gomock.Any(), adminToken, gomock.Any()).Return(nil)

		ctx, w := adminCtx(http.MethodPost, "/admin/books")
		ctx.Request = jsonRequest(t, http.MethodPost, "/admin/books", book)
		s.AdminCreateBook(ctx)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Contains(t, w.Body.String(), "Book created successfully")
	})

	t.Run("invalid category", func(t *testing.T) {
		mockGW := mocks.NewMockGateway(ctrl)
		s := newTestServer(mockGW)
		defer s.Debounce.Stop()

		bad := map[string]any{"isbn": "1", "title": "x", "category": "Cooking"}
		ctx, w := adminCtx(http.MethodPost, "/admin/books")
		ctx.Request = jsonRequest(t, http.MethodPost, "/admin/books", bad)
		s.AdminCreateBook(ctx)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "Category")
	})
}

func TestServer_adminDeleteBook(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockGW := mocks.NewMockGateway(ctrl)
	s := newTestServer(mockGW)
	defer s.Debounce.Stop()

	t.Run("success", func(t *testing.T) {
		mockGW.EXPECT().DeleteBook(gomock.Any(), adminToken, "111").Return(nil)

		ctx, w := adminCtx(http.MethodDelete, "/admin/books/111")
		ctx.Params = gin.Params{{Key: "isbn", Value: "111"}}
		s.AdminDeleteBook(ctx)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "book deleted")
	})

	t.Run("missing isbn", func(t *testing.T) {
		ctx, w := adminCtx(http.MethodDelete, "/admin/books/")
		ctx.Params = gin.Params{}
		s.AdminDeleteBook(ctx)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "missing book ISBN")
	})
}

func TestServer_adminReports(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("previous month sales", func(t *testing.T) {
		mockGW := mocks.NewMockGateway(ctrl)
		s := newTestServer(mockGW)
		defer s.Debounce.Stop()

		mockGW.EXPECT().SalesPreviousMonth(gomock.Any(), adminToken).
			Return(models.SalesTotal{TotalSales: 1234.5}, nil)

		ctx, w := adminCtx(http.MethodGet, "/admin/reports/sales/previous-month")
		s.AdminSalesPreviousMonth(ctx)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"total_sales":1234.5`)
	})

	t.Run("sales by date requires a date", func(t *testing.T) {
		mockGW := mocks.NewMockGateway(ctrl)
		s := newTestServer(mockGW)
		defer s.Debounce.Stop()

		ctx, w := adminCtx(http.MethodGet, "/admin/reports/sales/by-date")
		s.AdminSalesByDate(ctx)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "missing date parameter")
	})

	t.Run("sales by date", func(t *testing.T) {
		mockGW := mocks.NewMockGateway(ctrl)
		s := newTestServer(mockGW)
		defer s.Debounce.Stop()

		mockGW.EXPECT().SalesByDate(gomock.Any(), adminToken, "2025-11-02").
			Return(models.SalesTotal{TotalSales: 99}, nil)

		ctx, w := adminCtx(http.MethodGet, "/admin/reports/sales/by-date?date=2025-11-02")
		s.AdminSalesByDate(ctx)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"total_sales":99`)
	})

	t.Run("top customers", func(t *testing.T) {
		mockGW := mocks.NewMockGateway(ctrl)
		s := newTestServer(mockGW)
		defer s.Debounce.Stop()

		mockGW.EXPECT().TopCustomers(gomock.Any(), adminToken).Return([]models.TopCustomer{
			{FirstName: "Ada", LastName: "Lovelace", TotalPurchaseAmount: 500},
		}, nil)

		ctx, w := adminCtx(http.MethodGet, "/admin/reports/top-customers")
		s.AdminTopCustomers(ctx)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"total_purchase_amount":500`)
	})

	t.Run("top books", func(t *testing.T) {
		mockGW := mocks.NewMockGateway(ctrl)
		s := newTestServer(mockGW)
		defer s.Debounce.Stop()

		mockGW.EXPECT().TopBooks(gomock.Any(), adminToken).Return([]models.TopBook{
			{Title: "Dune", CopiesSold: 42},
		}, nil)

		ctx, w := adminCtx(http.MethodGet, "/admin/reports/top-books")
		s.AdminTopBooks(ctx)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"total_number_of_copies_sold":42`)
	})

	t.Run("replenishment history", func(t *testing.T) {
		mockGW := mocks.NewMockGateway(ctrl)
		s := newTestServer(mockGW)
		defer s.Debounce.Stop()

		mockGW.EXPECT().ReplenishmentHistory(gomock.Any(), adminToken, "111").
			Return(models.ReplenishmentCount{Count: 4}, nil)

		ctx, w := adminCtx(http.MethodGet, "/admin/reports/replenishment-history/111")
		ctx.Params = gin.Params{{Key: "isbn", Value: "111"}}
		s.AdminReplenishmentHistory(ctx)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"number_of_replenishments":4`)
	})

	t.Run("backend outage collapses to a notice", func(t *testing.T) {
		mockGW := mocks.NewMockGateway(ctrl)
		s := newTestServer(mockGW)
		defer s.Debounce.Stop()

		mockGW.EXPECT().CustomerOrders(gomock.Any(), adminToken).Return(nil, errors.New("connection refused"))

		ctx, w := adminCtx(http.MethodGet, "/admin/customer-orders")
		s.AdminCustomerOrders(ctx)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Contains(t, w.Body.String(), "action failed")
	})
}
