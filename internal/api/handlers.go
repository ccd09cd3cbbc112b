package api

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"barberchat/internal/catalog"
	"barberchat/internal/extract"
	"barberchat/internal/models"
	"barberchat/internal/service/ai"
	"barberchat/internal/service/assistant"
)

const (
	apiVersion = "1.0.0"

	insufficientInfo = "Insufficient information to create appointment"
)

// Handler wires HTTP routes to the per-conversation assistant sessions.
// It holds no state of its own; everything lives in the session manager.
type Handler struct {
	sessions *assistant.Manager
}

// NewHandler constructs a Handler instance.
func NewHandler(sessions *assistant.Manager) *Handler {
	return &Handler{sessions: sessions}
}

// RegisterRoutes attaches all HTTP routes to the router.
func (h *Handler) RegisterRoutes(router *gin.Engine) {
	router.GET("/", h.root)
	router.GET("/health", h.health)
	router.GET("/services", h.listServices)

	chat := router.Group("/chat")
	chat.POST("/message", h.postMessage)
	chat.POST("/extract-appointment", h.extractAppointment)
	chat.POST("/validate-appointment", h.validateAppointment)
	chat.GET("/history/:conversation_id", h.getHistory)
	chat.DELETE("/history/:conversation_id", h.deleteHistory)
	chat.POST("/reset", h.resetAll)
}

func (h *Handler) root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"name":        "Barbershop AI Assistant API",
		"version":     apiVersion,
		"description": "AI-powered API for barbershop appointment scheduling",
		"endpoints": gin.H{
			"health":   "/health",
			"services": "/services",
			"chat":     "/chat/message",
			"extract":  "/chat/extract-appointment",
			"validate": "/chat/validate-appointment",
			"history":  "/chat/history/{conversation_id}",
		},
	})
}

func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"message": "Barbershop AI Assistant is running",
		"version": apiVersion,
	})
}

func (h *Handler) listServices(c *gin.Context) {
	c.JSON(http.StatusOK, catalog.Services())
}

type chatRequest struct {
	ConversationID int64  `json:"conversation_id"`
	Message        string `json:"message"`
}

func (h *Handler) postMessage(c *gin.Context) {
	var req chatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if req.ConversationID <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "conversation_id is required"})
		return
	}
	if strings.TrimSpace(req.Message) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "message is required"})
		return
	}

	session := h.sessions.Get(req.ConversationID)
	result, err := session.Submit(c.Request.Context(), req.Message)
	if err != nil {
		h.serverError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"response":         result.Response,
		"appointment_data": result.Appointment,
		"confidence":       result.Confidence,
	})
}

type extractRequest struct {
	ConversationID int64 `json:"conversation_id"`
}

func (h *Handler) extractAppointment(c *gin.Context) {
	var req extractRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	var appointment *models.Appointment
	if session := h.sessions.Lookup(req.ConversationID); session != nil {
		var err error
		appointment, err = session.ExtractFromConversation(c.Request.Context())
		if err != nil {
			h.serverError(c, err)
			return
		}
	}
	if appointment == nil {
		c.JSON(http.StatusOK, gin.H{
			"appointment_data":  nil,
			"is_complete":       false,
			"validation_errors": []string{insufficientInfo},
		})
		return
	}

	isComplete, validationErrors := extract.Validate(appointment, catalog.IDs())
	c.JSON(http.StatusOK, gin.H{
		"appointment_data":  appointment,
		"is_complete":       isComplete,
		"validation_errors": validationErrors,
	})
}

type validateRequest struct {
	AppointmentData *models.Appointment `json:"appointment_data"`
}

func (h *Handler) validateAppointment(c *gin.Context) {
	var req validateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if req.AppointmentData == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "appointment_data is required"})
		return
	}

	isValid, validationErrors := extract.Validate(req.AppointmentData, catalog.IDs())
	c.JSON(http.StatusOK, gin.H{
		"is_valid": isValid,
		"errors":   validationErrors,
	})
}

func (h *Handler) getHistory(c *gin.Context) {
	conversationID, ok := h.conversationIDParam(c)
	if !ok {
		return
	}
	turns := make([]*models.Turn, 0)
	if session := h.sessions.Lookup(conversationID); session != nil {
		turns = session.History()
	}
	c.JSON(http.StatusOK, gin.H{
		"conversation_id": conversationID,
		"messages":        turns,
	})
}

func (h *Handler) deleteHistory(c *gin.Context) {
	conversationID, ok := h.conversationIDParam(c)
	if !ok {
		return
	}
	// Deleting an unknown conversation is a successful no-op.
	h.sessions.Delete(conversationID)
	c.JSON(http.StatusOK, gin.H{
		"message":         "Conversation history cleared",
		"conversation_id": conversationID,
	})
}

func (h *Handler) resetAll(c *gin.Context) {
	h.sessions.Reset()
	c.JSON(http.StatusOK, gin.H{"message": "All conversations reset"})
}

func (h *Handler) conversationIDParam(c *gin.Context) (int64, bool) {
	conversationID, err := strconv.ParseInt(c.Param("conversation_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid conversation id"})
		return 0, false
	}
	return conversationID, true
}

// serverError maps upstream completion failures to 502 and everything else
// to 500, always with a descriptive message.
func (h *Handler) serverError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	if errors.Is(err, ai.ErrGateway) {
		status = http.StatusBadGateway
	}
	c.JSON(status, gin.H{"error": err.Error()})
}
