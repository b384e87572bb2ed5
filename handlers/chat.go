package handlers

import (
	"net/http"

	"wayfare/models"
	"wayfare/services/dialogue"
	"wayfare/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ChatHandler exposes the dialogue engine over HTTP.
type ChatHandler struct {
	Dialogue dialogue.Service
}

func NewChatHandler(svc dialogue.Service) *ChatHandler {
	return &ChatHandler{Dialogue: svc}
}

// ProcessTurn handles one conversational turn. A missing session ID starts a
// new conversation; the generated ID is echoed back so the client can keep
// the thread going.
func (h *ChatHandler) ProcessTurn(c *gin.Context) {
	var req models.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	if req.SessionID == "" {
		req.SessionID = uuid.New().String()
	}

	reply, err := h.Dialogue.ProcessTurn(c.Request.Context(), req.SessionID, req.Text)
	if err != nil {
		utils.GetLogger().Error("chat turn failed",
			zap.String("sessionID", req.SessionID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to process message"})
		return
	}

	c.JSON(http.StatusOK, models.ChatResponse{
		SessionID: req.SessionID,
		Response:  reply,
	})
}
