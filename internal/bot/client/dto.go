package client

import "time"

type User struct {
	ID         int64  `json:"id"`
	TelegramID int64  `json:"telegram_id"`
	Phone      string `json:"phone"`
	FullName   string `json:"full_name"`
	CityID     *int64 `json:"city_id,omitempty"`
	Language   string `json:"language"`
	IsAdmin    bool   `json:"is_admin"`
}

type RegisterUserRequest struct {
	TelegramID int64  `json:"telegram_id"`
	Phone      string `json:"phone"`
	FullName   string `json:"full_name"`
	CityID     *int64 `json:"city_id,omitempty"`
	Language   string `json:"language,omitempty"`
}

type City struct {
	ID   int64  `json:"ID"`
	Name string `json:"Name"`
}

type Location struct {
	ID           int64  `json:"ID"`
	CityID       int64  `json:"CityID"`
	Name         string `json:"Name"`
	Address      string `json:"Address"`
	WorkingHours string `json:"WorkingHours"`
}

type Category struct {
	ID   int64  `json:"ID"`
	Name string `json:"Name"`
}

type MenuProduct struct {
	ID            int64   `json:"ID"`
	CategoryID    int64   `json:"CategoryID"`
	Name          string  `json:"Name"`
	Description   string  `json:"Description"`
	Price         float64 `json:"Price"`
	StockQuantity *int    `json:"StockQuantity,omitempty"`
}

type OrderItemRequest struct {
	ProductID       int64             `json:"product_id"`
	Quantity        int               `json:"quantity"`
	UnitPrice       float64           `json:"unit_price"`
	SelectedOptions map[string]string `json:"selected_options,omitempty"`
	OptionsPrice    float64           `json:"options_price"`
}

type CreateOrderRequest struct {
	TelegramID  int64              `json:"telegram_id"`
	LocationID  int64              `json:"location_id"`
	Items       []OrderItemRequest `json:"items"`
	TotalAmount float64            `json:"total_amount"`
	Currency    string             `json:"currency,omitempty"`
}

type Order struct {
	ID                 int64     `json:"id"`
	OrderCode          string    `json:"order_code"`
	Status             string    `json:"status"`
	TotalAmount        float64   `json:"total_amount"`
	Currency           string    `json:"currency"`
	UserTelegramID     int64     `json:"user_telegram_id,omitempty"`
	LocationName       string    `json:"location_name,omitempty"`
	LocationAddress    string    `json:"location_address,omitempty"`
	CancellationReason string    `json:"cancellation_reason,omitempty"`
	CreatedAt          time.Time `json:"created_at"`
}

type Receipt struct {
	OrderID         int64   `json:"order_id"`
	OrderCode       string  `json:"order_code"`
	ReceiptImageURL string  `json:"receipt_image_url"`
	TotalAmount     float64 `json:"total_amount"`
}

type UpdateStatusRequest struct {
	Status             string `json:"status"`
	CancellationReason string `json:"cancellation_reason,omitempty"`
	ActorTelegramID    *int64 `json:"actor_telegram_id,omitempty"`
}

type StartSessionRequest struct {
	TelegramID int64  `json:"telegram_id"`
	UserID     int64  `json:"user_id,omitempty"`
	Language   string `json:"language,omitempty"`
	Username   string `json:"username,omitempty"`
	FirstName  string `json:"first_name,omitempty"`
	LastName   string `json:"last_name,omitempty"`
	Platform   string `json:"platform,omitempty"`
}

type InteractionRequest struct {
	SessionID       *int64 `json:"session_id,omitempty"`
	TelegramID      int64  `json:"telegram_id"`
	InteractionType string `json:"interaction_type"`
	Command         string `json:"command,omitempty"`
	MessageText     string `json:"message_text,omitempty"`
	CallbackData    string `json:"callback_data,omitempty"`
	ChatID          int64  `json:"chat_id,omitempty"`
	FSMState        string `json:"fsm_state,omitempty"`
	IsSuccessful    *bool  `json:"is_successful,omitempty"`
	ErrorMessage    string `json:"error_message,omitempty"`
}

type SupportMessageRequest struct {
	TelegramID  int64  `json:"telegram_id"`
	TicketID    string `json:"ticket_id"`
	MessageText string `json:"message_text"`
	SenderType  string `json:"sender_type"`
	MessageType string `json:"message_type,omitempty"`
	OrderID     *int64 `json:"order_id,omitempty"`
}
