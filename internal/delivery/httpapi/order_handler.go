package httpapi

import (
	"encoding/json"
	"io"
	"net/http"
	"strconv"

	"github.com/AiBusiness-KZ/PizzaMat/internal/domain"
	orderdto "github.com/AiBusiness-KZ/PizzaMat/internal/usecase/dto/order"
	"github.com/gin-gonic/gin"
)

func (h *Handler) CreateOrder(c *gin.Context) {
	var req CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	input := &orderdto.CreateOrderInput{
		TelegramID:  req.TelegramID,
		LocationID:  req.LocationID,
		TotalAmount: req.TotalAmount,
		Currency:    req.Currency,
	}
	for _, item := range req.Items {
		input.Items = append(input.Items, orderdto.CreateOrderItemInput{
			ProductID:       item.ProductID,
			Quantity:        item.Quantity,
			UnitPrice:       item.UnitPrice,
			SelectedOptions: item.SelectedOptions,
			OptionsPrice:    item.OptionsPrice,
		})
	}

	out, err := h.orders.CreateOrder(c.Request.Context(), input)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"id":           out.ID,
		"order_code":   out.OrderCode,
		"status":       string(out.Status),
		"total_amount": out.TotalAmount,
		"currency":     out.Currency,
		"created_at":   out.CreatedAt,
	})
}

func (h *Handler) GetOrder(c *gin.Context) {
	orderID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid order id"})
		return
	}

	order, err := h.orders.GetOrderByID(c.Request.Context(), orderID)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, toOrderResponse(order))
}

func (h *Handler) ListUserOrders(c *gin.Context) {
	telegramID, err := strconv.ParseInt(c.Param("telegram_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid telegram id"})
		return
	}
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	orders, err := h.orders.ListUserOrders(c.Request.Context(), telegramID, limit)
	if err != nil {
		writeError(c, err)
		return
	}

	resp := make([]OrderResponse, 0, len(orders))
	for _, order := range orders {
		resp = append(resp, toOrderResponse(order))
	}
	c.JSON(http.StatusOK, gin.H{"orders": resp})
}

// SubmitReceipt accepts a multipart upload: the "receipt" file plus an
// optional "declared_amount" field.
func (h *Handler) SubmitReceipt(c *gin.Context) {
	orderID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid order id"})
		return
	}

	fileHeader, err := c.FormFile("receipt")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "receipt file required"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unreadable upload"})
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unreadable upload"})
		return
	}

	declaredAmount, _ := strconv.ParseFloat(c.PostForm("declared_amount"), 64)

	out, err := h.orders.SubmitReceipt(c.Request.Context(), &orderdto.SubmitReceiptInput{
		OrderID:        orderID,
		Image:          data,
		DeclaredAmount: declaredAmount,
	})
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, ReceiptResponse{
		OrderID:         out.OrderID,
		OrderCode:       out.OrderCode,
		ReceiptImageURL: out.ReceiptImageURL,
		TotalAmount:     out.TotalAmount,
	})
}

func (h *Handler) UpdateOrderStatus(c *gin.Context) {
	orderID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid order id"})
		return
	}

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	input := &orderdto.UpdateStatusInput{
		OrderID:            orderID,
		NewStatus:          domain.OrderStatus(req.Status),
		CancellationReason: req.CancellationReason,
	}
	if req.ActorTelegramID != nil {
		actor, err := h.users.GetUserByTelegramID(c.Request.Context(), *req.ActorTelegramID)
		if err == nil {
			input.ActorUserID = &actor.ID
		}
	}

	if err := h.orders.UpdateStatus(c.Request.Context(), input); err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"id": orderID, "status": req.Status})
}

// ApplyVerdict is the inbound callback from the receipt-validation workflow.
// Redelivery is expected and must succeed, so the usecase treats an already
// settled order as done.
func (h *Handler) ApplyVerdict(c *gin.Context) {
	raw, err := c.GetRawData()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unreadable body"})
		return
	}

	var req VerdictRequest
	if err := json.Unmarshal(raw, &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.OrderID == 0 || req.Valid == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "order_id and valid are required"})
		return
	}

	verdict := domain.ValidationVerdict{
		OrderID: req.OrderID,
		Valid:   *req.Valid,
		Reason:  req.Reason,
		Raw:     string(raw),
	}
	if err := h.orders.ApplyVerdict(c.Request.Context(), verdict); err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true})
}

func (h *Handler) AdminListOrders(c *gin.Context) {
	filters := domain.OrderFilters{
		Status: domain.OrderStatus(c.Query("status")),
	}
	if uid := c.Query("user_id"); uid != "" {
		filters.UserID, _ = strconv.ParseInt(uid, 10, 64)
	}
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	orders, total, err := h.orders.ListOrders(c.Request.Context(), filters, limit, offset)
	if err != nil {
		writeError(c, err)
		return
	}

	resp := OrderListResponse{Total: total, Orders: make([]OrderResponse, 0, len(orders))}
	for _, order := range orders {
		resp.Orders = append(resp.Orders, toOrderResponse(order))
	}
	c.JSON(http.StatusOK, resp)
}

func (h *Handler) OverrideOrderStatus(c *gin.Context) {
	orderID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid order id"})
		return
	}

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	input := &orderdto.UpdateStatusInput{
		OrderID:            orderID,
		NewStatus:          domain.OrderStatus(req.Status),
		CancellationReason: req.CancellationReason,
	}
	if err := h.orders.OverrideStatus(c.Request.Context(), input); err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"id": orderID, "status": req.Status})
}
