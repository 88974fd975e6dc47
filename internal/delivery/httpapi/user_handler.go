package httpapi

import (
	"net/http"
	"strconv"

	"github.com/AiBusiness-KZ/PizzaMat/internal/logger"
	"github.com/AiBusiness-KZ/PizzaMat/internal/usecase"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if req.Username != h.adminUsername || !CheckPasswordHash(req.Password, h.adminPassHash) {
		logger.L().Warn("admin login rejected",
			zap.String("username", req.Username),
			zap.String("client_ip", c.ClientIP()))
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
		return
	}

	token, err := h.issuer.Generate(req.Username)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}

	c.JSON(http.StatusOK, LoginResponse{Token: token})
}

func (h *Handler) RegisterUser(c *gin.Context) {
	var req RegisterUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.users.RegisterUser(c.Request.Context(), &usecase.RegisterUserInput{
		TelegramID: req.TelegramID,
		Phone:      req.Phone,
		FullName:   req.FullName,
		CityID:     req.CityID,
		Language:   req.Language,
	})
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, toUserResponse(user))
}

func (h *Handler) GetUser(c *gin.Context) {
	telegramID, err := strconv.ParseInt(c.Param("telegram_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid telegram id"})
		return
	}

	user, err := h.users.GetUserByTelegramID(c.Request.Context(), telegramID)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, toUserResponse(user))
}

// UpdateUser edits the profile fields; empty fields keep their current value.
func (h *Handler) UpdateUser(c *gin.Context) {
	telegramID, err := strconv.ParseInt(c.Param("telegram_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid telegram id"})
		return
	}

	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.users.GetUserByTelegramID(c.Request.Context(), telegramID)
	if err != nil {
		writeError(c, err)
		return
	}

	if req.FullName != "" {
		user.FullName = req.FullName
	}
	if req.Phone != "" {
		user.Phone = req.Phone
	}
	if req.CityID != nil {
		user.CityID = req.CityID
	}
	if req.Language != "" {
		user.Language = req.Language
	}

	if err := h.users.UpdateProfile(c.Request.Context(), user); err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, toUserResponse(user))
}
