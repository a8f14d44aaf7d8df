package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/astrumlab/tzbrief/internal/service"
)

type SendHandler struct {
	send *service.SendService
}

func NewSendHandler(send *service.SendService) *SendHandler {
	return &SendHandler{send: send}
}

type sendRequest struct {
	Username      string `json:"username"`
	DocumentID    string `json:"documentId"`
	DocumentTitle string `json:"documentTitle"`
}

func (h *SendHandler) Send(c *gin.Context) {
	var req sendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorJSON(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Username == "" || req.DocumentID == "" {
		errorJSON(c, http.StatusBadRequest, "username and documentId are required")
		return
	}
	result := h.send.Send(c.Request.Context(), getUserID(c), req.Username, req.DocumentID, req.DocumentTitle)
	c.JSON(http.StatusOK, result)
}
