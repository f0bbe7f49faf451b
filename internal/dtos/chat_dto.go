package dtos

import "github.com/Prabhat-16/Careerion-Backend/internal/services"

type ChatRequest struct {
	Message      string                  `json:"message" binding:"required"`
	History      []services.HistoryEntry `json:"history"`
	SystemPrompt string                  `json:"systemPrompt"`
	ExpectJSON   bool                    `json:"expectJson"`
}

type RecommendationRequest struct {
	Query    string `json:"query" binding:"required"`
	Category string `json:"category"`
}
