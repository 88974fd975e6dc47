package httpapi

import (
	"time"

	"github.com/AiBusiness-KZ/PizzaMat/internal/domain"
)

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type LoginResponse struct {
	Token string `json:"token"`
}

type RegisterUserRequest struct {
	TelegramID int64  `json:"telegram_id" binding:"required"`
	Phone      string `json:"phone" binding:"required"`
	FullName   string `json:"full_name"`
	CityID     *int64 `json:"city_id"`
	Language   string `json:"language"`
}

type UpdateProfileRequest struct {
	FullName string `json:"full_name"`
	Phone    string `json:"phone"`
	CityID   *int64 `json:"city_id"`
	Language string `json:"language"`
}

type UserResponse struct {
	ID         int64  `json:"id"`
	TelegramID int64  `json:"telegram_id"`
	Phone      string `json:"phone"`
	FullName   string `json:"full_name"`
	CityID     *int64 `json:"city_id,omitempty"`
	Language   string `json:"language"`
	IsAdmin    bool   `json:"is_admin"`
}

func toUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		ID:         u.ID,
		TelegramID: u.TelegramID,
		Phone:      u.Phone,
		FullName:   u.FullName,
		CityID:     u.CityID,
		Language:   u.Language,
		IsAdmin:    u.IsAdmin,
	}
}

type CreateOrderItemRequest struct {
	ProductID       int64             `json:"product_id" binding:"required"`
	Quantity        int               `json:"quantity" binding:"required,min=1"`
	UnitPrice       float64           `json:"unit_price" binding:"min=0"`
	SelectedOptions map[string]string `json:"selected_options"`
	OptionsPrice    float64           `json:"options_price" binding:"min=0"`
}

type CreateOrderRequest struct {
	TelegramID  int64                    `json:"telegram_id" binding:"required"`
	LocationID  int64                    `json:"location_id" binding:"required"`
	Items       []CreateOrderItemRequest `json:"items" binding:"required,dive"`
	TotalAmount float64                  `json:"total_amount" binding:"required,min=0"`
	Currency    string                   `json:"currency"`
}

type OrderItemResponse struct {
	ProductID       int64             `json:"product_id"`
	Quantity        int               `json:"quantity"`
	UnitPrice       float64           `json:"unit_price"`
	SelectedOptions map[string]string `json:"selected_options,omitempty"`
	OptionsPrice    float64           `json:"options_price"`
	TotalPrice      float64           `json:"total_price"`
}

type OrderResponse struct {
	ID                 int64               `json:"id"`
	OrderCode          string              `json:"order_code"`
	Status             string              `json:"status"`
	TotalAmount        float64             `json:"total_amount"`
	Currency           string              `json:"currency"`
	UserTelegramID     int64               `json:"user_telegram_id,omitempty"`
	LocationID         int64               `json:"location_id"`
	LocationName       string              `json:"location_name,omitempty"`
	LocationAddress    string              `json:"location_address,omitempty"`
	ReceiptImageURL    string              `json:"receipt_image_url,omitempty"`
	ReceiptValidatedAt *time.Time          `json:"receipt_validated_at,omitempty"`
	CancellationReason string              `json:"cancellation_reason,omitempty"`
	Items              []OrderItemResponse `json:"items,omitempty"`
	CreatedAt          time.Time           `json:"created_at"`
}

func toOrderResponse(o *domain.Order) OrderResponse {
	resp := OrderResponse{
		ID:                 o.ID,
		OrderCode:          o.OrderCode,
		Status:             string(o.Status),
		TotalAmount:        o.TotalAmount,
		Currency:           o.Currency,
		LocationID:         o.LocationID,
		ReceiptImageURL:    o.ReceiptImageURL,
		ReceiptValidatedAt: o.ReceiptValidatedAt,
		CancellationReason: o.CancellationReason,
		CreatedAt:          o.CreatedAt,
	}
	if o.User != nil {
		resp.UserTelegramID = o.User.TelegramID
	}
	if o.Location != nil {
		resp.LocationName = o.Location.Name
		resp.LocationAddress = o.Location.Address
	}
	for _, item := range o.Items {
		resp.Items = append(resp.Items, OrderItemResponse{
			ProductID:       item.ProductID,
			Quantity:        item.Quantity,
			UnitPrice:       item.UnitPrice,
			SelectedOptions: item.SelectedOptions,
			OptionsPrice:    item.OptionsPrice,
			TotalPrice:      item.TotalPrice,
		})
	}
	return resp
}

type OrderListResponse struct {
	Orders []OrderResponse `json:"orders"`
	Total  int64           `json:"total"`
}

type UpdateStatusRequest struct {
	Status             string `json:"status" binding:"required"`
	CancellationReason string `json:"cancellation_reason"`
	ActorTelegramID    *int64 `json:"actor_telegram_id"`
}

type ReceiptResponse struct {
	OrderID         int64   `json:"order_id"`
	OrderCode       string  `json:"order_code"`
	ReceiptImageURL string  `json:"receipt_image_url"`
	TotalAmount     float64 `json:"total_amount"`
}

// VerdictRequest is the callback payload posted by the validation workflow.
type VerdictRequest struct {
	OrderID int64  `json:"order_id" binding:"required"`
	Valid   *bool  `json:"valid" binding:"required"`
	Reason  string `json:"reason"`
}

type CategoryRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	SortOrder   int    `json:"sort_order"`
	IsActive    *bool  `json:"is_active"`
}

type ProductRequest struct {
	CategoryID  int64   `json:"category_id" binding:"required"`
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description"`
	BasePrice   float64 `json:"base_price" binding:"min=0"`
	ImageURL    string  `json:"image_url"`
	SortOrder   int     `json:"sort_order"`
	IsActive    *bool   `json:"is_active"`
}

type CityRequest struct {
	Name string `json:"name" binding:"required"`
}

type LocationRequest struct {
	CityID       int64  `json:"city_id" binding:"required"`
	Name         string `json:"name" binding:"required"`
	Address      string `json:"address"`
	WorkingHours string `json:"working_hours"`
	IsActive     *bool  `json:"is_active"`
}

type LocationProductRequest struct {
	ProductID     int64    `json:"product_id" binding:"required"`
	PriceOverride *float64 `json:"price_override"`
	IsAvailable   *bool    `json:"is_available"`
	StockQuantity *int     `json:"stock_quantity"`
	SortOrder     int      `json:"sort_order"`
}

type StartSessionRequest struct {
	TelegramID int64  `json:"telegram_id" binding:"required"`
	UserID     int64  `json:"user_id"`
	Language   string `json:"language"`
	Username   string `json:"username"`
	FirstName  string `json:"first_name"`
	LastName   string `json:"last_name"`
	Platform   string `json:"platform"`
}

type InteractionRequest struct {
	SessionID       *int64 `json:"session_id"`
	UserID          *int64 `json:"user_id"`
	TelegramID      int64  `json:"telegram_id" binding:"required"`
	InteractionType string `json:"interaction_type" binding:"required"`
	Command         string `json:"command"`
	MessageText     string `json:"message_text"`
	CallbackData    string `json:"callback_data"`
	ChatID          int64  `json:"chat_id"`
	MessageID       *int64 `json:"message_id"`
	BotResponse     string `json:"bot_response"`
	BotResponseType string `json:"bot_response_type"`
	FSMState        string `json:"fsm_state"`
	Metadata        string `json:"metadata"`
	IsSuccessful    *bool  `json:"is_successful"`
	ErrorMessage    string `json:"error_message"`
}

type SupportMessageRequest struct {
	UserID      int64  `json:"user_id"`
	TelegramID  int64  `json:"telegram_id" binding:"required"`
	TicketID    string `json:"ticket_id" binding:"required"`
	MessageText string `json:"message_text"`
	SenderType  string `json:"sender_type" binding:"required"`
	MessageType string `json:"message_type"`
	FileURL     string `json:"file_url"`
	OrderID     *int64 `json:"order_id"`
	ThreadID    string `json:"thread_id"`
}

type SettingsRequest struct {
	SiteName         string `json:"site_name"`
	SiteLogo         string `json:"site_logo"`
	SiteDescription  string `json:"site_description"`
	Phone            string `json:"phone"`
	Email            string `json:"email"`
	Address          string `json:"address"`
	BotToken         string `json:"bot_token"`
	ManagerChannelID string `json:"manager_channel_id"`
	AdminTelegramIDs string `json:"admin_telegram_ids"`
	N8NURL           string `json:"n8n_url"`
	N8NWebhookSecret string `json:"n8n_webhook_secret"`
	ExtraSettings    string `json:"extra_settings"`
	IsActive         *bool  `json:"is_active"`
}
