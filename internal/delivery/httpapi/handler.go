package httpapi

import (
	"errors"
	"net/http"
	"time"

	"github.com/AiBusiness-KZ/PizzaMat/internal/domain"
	"github.com/AiBusiness-KZ/PizzaMat/internal/infrastructure/redisstore"
	orderusecase "github.com/AiBusiness-KZ/PizzaMat/internal/usecase/order"

	"github.com/AiBusiness-KZ/PizzaMat/internal/usecase"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Handler struct {
	orders    orderusecase.OrderUsecase
	catalog   usecase.CatalogUsecase
	users     usecase.UserUsecase
	analytics usecase.AnalyticsUsecase
	settings  usecase.SettingsUsecase

	images domain.ReceiptStore

	issuer        *TokenIssuer
	limiter       *redisstore.RateLimiter
	webhookSecret string
	adminUsername string
	adminPassHash string
	uploadsDir    string
}

type HandlerOptions struct {
	Orders    orderusecase.OrderUsecase
	Catalog   usecase.CatalogUsecase
	Users     usecase.UserUsecase
	Analytics usecase.AnalyticsUsecase
	Settings  usecase.SettingsUsecase

	Images domain.ReceiptStore

	Issuer        *TokenIssuer
	Limiter       *redisstore.RateLimiter
	WebhookSecret string
	AdminUsername string
	AdminPassHash string
	UploadsDir    string
}

func NewHandler(opts HandlerOptions) *Handler {
	return &Handler{
		orders:        opts.Orders,
		catalog:       opts.Catalog,
		users:         opts.Users,
		analytics:     opts.Analytics,
		settings:      opts.Settings,
		images:        opts.Images,
		issuer:        opts.Issuer,
		limiter:       opts.Limiter,
		webhookSecret: opts.WebhookSecret,
		adminUsername: opts.AdminUsername,
		adminPassHash: opts.AdminPassHash,
		uploadsDir:    opts.UploadsDir,
	}
}

func (h *Handler) RegisterRoutes(r *gin.Engine) {
	r.Use(RequestLogger())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	r.Static("/uploads", h.uploadsDir)

	api := r.Group("/api")
	{
		api.POST("/auth/login",
			RateLimit(h.limiter, "login", 10, time.Minute), h.Login)

		api.GET("/cities", h.ListCities)
		api.GET("/cities/:id/locations", h.ListLocations)
		api.GET("/categories", h.ListCategories)
		api.GET("/menu", h.ListMenu)
		api.GET("/products/:id", h.GetProduct)

		api.POST("/users/register", h.RegisterUser)
		api.GET("/users/:telegram_id", h.GetUser)
		api.PUT("/users/:telegram_id", h.UpdateUser)
		api.GET("/users/:telegram_id/orders", h.ListUserOrders)

		api.POST("/orders",
			RateLimit(h.limiter, "orders", 20, time.Minute), h.CreateOrder)
		api.GET("/orders/:id", h.GetOrder)
		api.POST("/orders/:id/receipt",
			RateLimit(h.limiter, "receipts", 10, time.Minute), h.SubmitReceipt)
		api.POST("/orders/:id/status", h.UpdateOrderStatus)

		api.POST("/analytics/sessions", h.StartSession)
		api.POST("/analytics/sessions/:id/end", h.EndSession)
		api.POST("/analytics/interactions", h.LogInteraction)
		api.POST("/support/messages", h.LogSupportMessage)
		api.GET("/support/threads/:ticket_id", h.GetSupportThread)
	}

	webhook := r.Group("/webhook", RequireWebhookSecret(h.webhookSecret))
	{
		webhook.POST("/receipt-verdict", h.ApplyVerdict)
	}

	admin := r.Group("/api/admin", RequireAdmin(h.issuer))
	{
		admin.GET("/orders", h.AdminListOrders)
		admin.POST("/orders/:id/status-override", h.OverrideOrderStatus)

		admin.POST("/categories", h.CreateCategory)
		admin.PUT("/categories/:id", h.UpdateCategory)
		admin.DELETE("/categories/:id", h.DeleteCategory)

		admin.GET("/products", h.AdminListProducts)
		admin.POST("/products", h.CreateProduct)
		admin.PUT("/products/:id", h.UpdateProduct)
		admin.POST("/products/:id/image", h.UploadProductImage)
		admin.DELETE("/products/:id", h.DeleteProduct)

		admin.POST("/cities", h.CreateCity)
		admin.POST("/locations", h.CreateLocation)
		admin.PUT("/locations/:id", h.UpdateLocation)
		admin.DELETE("/locations/:id", h.DeleteLocation)
		admin.PUT("/locations/:id/products", h.SetLocationProduct)

		admin.GET("/dashboard", h.Dashboard)

		admin.GET("/settings", h.GetSettings)
		admin.PUT("/settings", h.SaveSettings)
	}
}

// writeError maps domain errors to HTTP statuses. Unknown errors stay 500
// and keep their detail out of the response body.
func writeError(c *gin.Context, err error) {
	var validationErr *domain.ValidationError
	var duplicateErr *domain.DuplicateReceiptError

	switch {
	case errors.As(err, &validationErr):
		c.JSON(http.StatusBadRequest, gin.H{"error": validationErr.Error()})
	case errors.Is(err, domain.ErrInvalidStatus):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, domain.ErrOrderNotFound),
		errors.Is(err, domain.ErrUserNotFound),
		errors.Is(err, domain.ErrLocationNotFound),
		errors.Is(err, domain.ErrProductNotFound),
		errors.Is(err, domain.ErrCategoryNotFound),
		errors.Is(err, domain.ErrCityNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.As(err, &duplicateErr):
		c.JSON(http.StatusConflict, gin.H{
			"error":           "duplicate receipt",
			"owning_order_id": duplicateErr.OrderID,
		})
	case errors.Is(err, domain.ErrStatusConflict),
		errors.Is(err, domain.ErrUserExists):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, domain.ErrCodeSpaceExhausted):
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}
