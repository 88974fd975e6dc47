package httpapi

import (
	"net/http"
	"strconv"

	"github.com/AiBusiness-KZ/PizzaMat/internal/domain"
	"github.com/gin-gonic/gin"
)

func (h *Handler) StartSession(c *gin.Context) {
	var req StartSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	session := &domain.UserSession{
		UserID:     req.UserID,
		TelegramID: req.TelegramID,
		Language:   req.Language,
		Username:   req.Username,
		FirstName:  req.FirstName,
		LastName:   req.LastName,
		Platform:   req.Platform,
	}
	sessionID, err := h.analytics.StartSession(c.Request.Context(), session)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"session_id": sessionID})
}

func (h *Handler) EndSession(c *gin.Context) {
	sessionID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid session id"})
		return
	}

	if err := h.analytics.EndSession(c.Request.Context(), sessionID); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

func (h *Handler) LogInteraction(c *gin.Context) {
	var req InteractionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	interaction := &domain.BotInteraction{
		SessionID:       req.SessionID,
		UserID:          req.UserID,
		TelegramID:      req.TelegramID,
		InteractionType: req.InteractionType,
		Command:         req.Command,
		MessageText:     req.MessageText,
		CallbackData:    req.CallbackData,
		ChatID:          req.ChatID,
		MessageID:       req.MessageID,
		BotResponse:     req.BotResponse,
		BotResponseType: req.BotResponseType,
		FSMState:        req.FSMState,
		Metadata:        req.Metadata,
		IsSuccessful:    boolOrDefault(req.IsSuccessful, true),
		ErrorMessage:    req.ErrorMessage,
	}
	if err := h.analytics.LogInteraction(c.Request.Context(), interaction); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": interaction.ID})
}

func (h *Handler) LogSupportMessage(c *gin.Context) {
	var req SupportMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	message := &domain.SupportMessage{
		UserID:      req.UserID,
		TelegramID:  req.TelegramID,
		TicketID:    req.TicketID,
		MessageText: req.MessageText,
		SenderType:  req.SenderType,
		MessageType: req.MessageType,
		FileURL:     req.FileURL,
		OrderID:     req.OrderID,
		ThreadID:    req.ThreadID,
	}
	if err := h.analytics.LogSupportMessage(c.Request.Context(), message); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": message.ID})
}

func (h *Handler) GetSupportThread(c *gin.Context) {
	messages, err := h.analytics.GetSupportThread(c.Request.Context(), c.Param("ticket_id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"messages": messages})
}

func (h *Handler) Dashboard(c *gin.Context) {
	days, _ := strconv.Atoi(c.DefaultQuery("days", "7"))

	stats, err := h.analytics.GetDashboard(c.Request.Context(), days)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

func (h *Handler) GetSettings(c *gin.Context) {
	settings, err := h.settings.GetSettings(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, settings)
}

func (h *Handler) SaveSettings(c *gin.Context) {
	var req SettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	settings := &domain.SiteSettings{
		SiteName:         req.SiteName,
		SiteLogo:         req.SiteLogo,
		SiteDescription:  req.SiteDescription,
		Phone:            req.Phone,
		Email:            req.Email,
		Address:          req.Address,
		BotToken:         req.BotToken,
		ManagerChannelID: req.ManagerChannelID,
		AdminTelegramIDs: req.AdminTelegramIDs,
		N8NURL:           req.N8NURL,
		N8NWebhookSecret: req.N8NWebhookSecret,
		ExtraSettings:    req.ExtraSettings,
		IsActive:         boolOrDefault(req.IsActive, true),
	}
	saved, err := h.settings.SaveSettings(c.Request.Context(), settings)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, saved)
}
