package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/Prabhat-16/Careerion-Backend/internal/dtos"
	"github.com/Prabhat-16/Careerion-Backend/internal/middleware"
	"github.com/Prabhat-16/Careerion-Backend/internal/services"
	"github.com/gin-gonic/gin"
)

type ChatHandler struct {
	chat *services.ChatService
}

func NewChatHandler(chat *services.ChatService) *ChatHandler {
	return &ChatHandler{chat: chat}
}

// Chat is POST /api/chat. Open endpoint; a valid bearer token personalizes
// the prompt with the caller's stored profile.
func (h *ChatHandler) Chat(c *gin.Context) {
	var req dtos.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Message is required"})
		return
	}

	var userID uint
	if claims, ok := middleware.ClaimsFrom(c); ok {
		userID = claims.UserID
	}

	result, err := h.chat.Respond(c.Request.Context(), services.ChatRequest{
		Message:      req.Message,
		History:      req.History,
		SystemPrompt: req.SystemPrompt,
		ExpectJSON:   req.ExpectJSON,
		UserID:       userID,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": services.UpstreamMessage(err)})
		return
	}

	c.JSON(http.StatusOK, chatEnvelope(result, req.ExpectJSON))
}

// Recommendations is POST /api/career-recommendations (bearer required).
func (h *ChatHandler) Recommendations(c *gin.Context) {
	claims, ok := middleware.ClaimsFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization token missing"})
		return
	}

	var req dtos.RecommendationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Query is required"})
		return
	}

	result, err := h.chat.Recommend(c.Request.Context(), claims.UserID, req.Query, req.Category)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": services.UpstreamMessage(err)})
		return
	}

	c.JSON(http.StatusOK, chatEnvelope(result, true))
}

// chatEnvelope keeps the response shape stable: raw text always under
// "response", extracted JSON (possibly null) under "json" when requested.
func chatEnvelope(result *services.ChatResult, expectJSON bool) gin.H {
	body := gin.H{"response": result.Response}
	if expectJSON {
		if result.JSON != nil {
			body["json"] = json.RawMessage(result.JSON)
		} else {
			body["json"] = nil
		}
	}
	return body
}
