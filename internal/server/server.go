package server

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator"
	"github.com/golang-jwt/jwt/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/annberg/bookmart/internal/backend"
	"github.com/annberg/bookmart/internal/cart"
	"github.com/annberg/bookmart/internal/config"
	"github.com/annberg/bookmart/internal/debounce"
	"github.com/annberg/bookmart/internal/domain/consts"
	"github.com/annberg/bookmart/internal/domain/models"
	"github.com/annberg/bookmart/internal/logger"
)

//go:generate mockgen -source=server.go -destination=./mocks/service_mock.go -package=mocks

var ErrInvalidToken = errors.New("invalid token")

type Claims struct {
	jwt.RegisteredClaims
	Username string
	Role     string
}

// Gateway is everything the handlers need from the bookstore backend.
type Gateway interface {
	Register(ctx context.Context, req backend.RegisterRequest) error
	Login(ctx context.Context, username, password string) (backend.LoginResult, error)
	Me(ctx context.Context, token string) (models.User, error)

	Books(ctx context.Context) ([]models.Book, error)
	Book(ctx context.Context, isbn string) (models.Book, error)
	SearchBooks(ctx context.Context, q backend.SearchQuery) ([]models.Book, error)

	Cart(ctx context.Context, token string) ([]models.CartItem, int, error)
	PutCartItem(ctx context.Context, token, isbn string, quantity int) error
	DeleteCartItem(ctx context.Context, token, isbn string) error
	ClearCart(ctx context.Context, token string) error

	CreateOrder(ctx context.Context, token string, req backend.OrderRequest) (backend.OrderCreated, error)
	Orders(ctx context.Context, token string) ([]models.Order, error)

	AdminBooks(ctx context.Context, token string) ([]models.Book, error)
	AdminBook(ctx context.Context, token, isbn string) (models.Book, error)
	CreateBook(ctx context.Context, token string, book models.Book) error
	UpdateBook(ctx context.Context, token string, book models.Book) error
	DeleteBook(ctx context.Context, token, isbn string) error
	PublisherOrders(ctx context.Context, token string) ([]models.PublisherOrder, error)
	ConfirmPublisherOrder(ctx context.Context, token string, orderID int) error
	Publishers(ctx context.Context, token string) ([]models.Publisher, error)
	CustomerOrders(ctx context.Context, token string) ([]models.Order, error)
	SalesPreviousMonth(ctx context.Context, token string) (models.SalesTotal, error)
	SalesByDate(ctx context.Context, token, date string) (models.SalesTotal, error)
	TopCustomers(ctx context.Context, token string) ([]models.TopCustomer, error)
	TopBooks(ctx context.Context, token string) ([]models.TopBook, error)
	ReplenishmentHistory(ctx context.Context, token, isbn string) (models.ReplenishmentCount, error)
}

type Server struct {
	serv     *http.Server
	valid    *validator.Validate
	secret   string
	Gateway  Gateway
	Carts    *cart.Store
	Tracker  *cart.Tracker
	Debounce *debounce.Debouncer
	ErrChan  chan error
}

func New(cfg config.Config, gw Gateway, carts *cart.Store) *Server {
	server := http.Server{ //nolint:gosec // not today
		Addr: cfg.Addr,
	}
	valid := validator.New()
	return &Server{
		serv:     &server,
		valid:    valid,
		secret:   cfg.JWTSecret,
		Gateway:  gw,
		Carts:    carts,
		Tracker:  cart.NewTracker(),
		Debounce: debounce.New(consts.DebounceDelay),
		ErrChan:  make(chan error),
	}
}

// ShutdownServer tears down the HTTP listener, pending debounce timers
// and the tracker, so no stale cart write fires after shutdown.
func (s *Server) ShutdownServer() error {
	s.Debounce.Stop()
	s.Tracker.Close()
	return s.serv.Shutdown(context.Background())
}

func (s *Server) Run(ctx context.Context) error {
	log := logger.Get()
	router := gin.Default()
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * 3600,
	}))
	router.GET("/", func(ctx *gin.Context) { ctx.String(http.StatusOK, "Hello") })
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	router.POST("/register", s.Register)
	router.POST("/login", s.Login)
	router.GET("/me", s.JWTAuthMiddleware(), s.Profile)

	books := router.Group("/books")
	{
		books.GET("/", s.AllBooks)
		books.GET("/search", s.SearchBooks)
		books.GET("/:isbn", s.BookInfo)
	}

	cartGroup := router.Group("/cart")
	{
		cartGroup.GET("", s.GetCart)
		cartGroup.GET("/count", s.CartCount)
		cartGroup.GET("/events", s.CartEvents)
		cartGroup.POST("", s.AddToCart)
		cartGroup.PUT("/:isbn", s.UpdateCartItem)
		cartGroup.DELETE("/:isbn", s.RemoveCartItem)
		cartGroup.DELETE("", s.ClearCart)
	}

	router.POST("/checkout", s.Checkout)
	router.GET("/orders", s.JWTAuthMiddleware(), s.OrderHistory)

	admin := router.Group("/admin", s.JWTAuthRoleMiddleware(models.RoleAdmin))
	{
		admin.GET("/books", s.AdminBooks)
		admin.GET("/books/:isbn", s.AdminBook)
		admin.POST("/books", s.AdminCreateBook)
		admin.PUT("/books/:isbn", s.AdminUpdateBook)
		admin.DELETE("/books/:isbn", s.AdminDeleteBook)
		admin.GET("/publishers", s.AdminPublishers)
		admin.GET("/publisher-orders", s.AdminPublisherOrders)
		admin.PUT("/publisher-orders/:id/confirm", s.AdminConfirmPublisherOrder)
		admin.GET("/customer-orders", s.AdminCustomerOrders)
		admin.GET("/reports/sales/previous-month", s.AdminSalesPreviousMonth)
		admin.GET("/reports/sales/by-date", s.AdminSalesByDate)
		admin.GET("/reports/top-customers", s.AdminTopCustomers)
		admin.GET("/reports/top-books", s.AdminTopBooks)
		admin.GET("/reports/replenishment-history/:isbn", s.AdminReplenishmentHistory)
	}

	s.serv.Handler = router
	log.Info().Str("host", s.serv.Addr).Msg("server started")
	if err := s.serv.ListenAndServe(); err != nil {
		return err
	}
	return nil
}

// bearerToken pulls the raw token out of the Authorization header, empty
// when the header is missing or malformed.
func bearerToken(ctx *gin.Context) string {
	tokenHeader := ctx.GetHeader("Authorization")
	if tokenHeader == "" {
		return ""
	}
	tokenParts := strings.Split(tokenHeader, " ")
	if len(tokenParts) != 2 || tokenParts[0] != "Bearer" {
		return ""
	}
	return tokenParts[1]
}

func (s *Server) JWTAuthMiddleware() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		log := logger.Get()

		token := bearerToken(ctx)
		if token == "" {
			ctx.String(http.StatusUnauthorized, "Authorization header is required")
			ctx.Abort()
			return
		}

		username, role, err := s.validToken(token)
		if err != nil {
			log.Error().Err(err).Msg("validate jwt failed")
			ctx.String(http.StatusUnauthorized, "Invalid token")
			ctx.Abort()
			return
		}

		ctx.Set("username", username)
		ctx.Set("role", role)
		ctx.Set("token", token)
		ctx.Next()
	}
}

// JWTAuthRoleMiddleware gates a route group to the given roles; non-admin
// callers of the admin surface get 403, not a silent redirect loop.
func (s *Server) JWTAuthRoleMiddleware(roles ...string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		token := bearerToken(ctx)
		if token == "" {
			ctx.String(http.StatusUnauthorized, "Authorization header is required")
			ctx.Abort()
			return
		}

		username, role, err := s.validToken(token)
		if err != nil {
			ctx.String(http.StatusUnauthorized, "Invalid token")
			ctx.Abort()
			return
		}

		if len(roles) > 0 {
			isAllowed := false
			for _, allowedRole := range roles {
				if role == allowedRole {
					isAllowed = true
					break
				}
			}
			if !isAllowed {
				ctx.String(http.StatusForbidden, "Access denied")
				ctx.Abort()
				return
			}
		}
		ctx.Set("username", username)
		ctx.Set("role", role)
		ctx.Set("token", token)
		ctx.Next()
	}
}

func (s *Server) validToken(tokenStr string) (string, string, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
		return []byte(s.secret), nil
	})
	if err != nil || !token.Valid {
		return "", "", ErrInvalidToken
	}
	return claims.Username, claims.Role, nil
}
