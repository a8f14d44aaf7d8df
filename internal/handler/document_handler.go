package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/astrumlab/tzbrief/internal/model"
	"github.com/astrumlab/tzbrief/internal/pkg/doclink"
	"github.com/astrumlab/tzbrief/internal/service"
)

type DocumentHandler struct {
	documents *service.DocumentService
}

func NewDocumentHandler(documents *service.DocumentService) *DocumentHandler {
	return &DocumentHandler{documents: documents}
}

func (h *DocumentHandler) List(c *gin.Context) {
	filter := model.ListFilter{}
	if value := c.Query("status"); value != "" {
		status := model.DocumentStatus(value)
		filter.Status = &status
	}
	if value := c.Query("type"); value != "" {
		docType := model.DocumentType(value)
		filter.Type = &docType
	}
	if value := c.Query("template"); value != "" {
		template := value == "true"
		filter.Template = &template
	}
	docs, err := h.documents.List(c.Request.Context(), getUserID(c), filter)
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, docs)
}

func (h *DocumentHandler) Get(c *gin.Context) {
	doc, err := h.documents.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, doc)
}

// Resolve opens a document by its share link. The link shape is validated
// before any store lookup happens.
func (h *DocumentHandler) Resolve(c *gin.Context) {
	docID, err := doclink.Parse(c.Query("link"))
	if err != nil {
		errorJSON(c, http.StatusBadRequest, "invalid link format")
		return
	}
	doc, err := h.documents.Get(c.Request.Context(), docID)
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, doc)
}

type createDocumentRequest struct {
	Title      string              `json:"title"`
	Type       model.DocumentType  `json:"type"`
	Design     *model.DesignConfig `json:"design_config"`
	Content    *model.Content      `json:"content"`
	IsTemplate bool                `json:"is_template"`
}

func (h *DocumentHandler) Create(c *gin.Context) {
	var req createDocumentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorJSON(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	doc, err := h.documents.Create(c.Request.Context(), getUserID(c), service.CreateInput{
		Title:      req.Title,
		Type:       req.Type,
		Design:     req.Design,
		Content:    req.Content,
		IsTemplate: req.IsTemplate,
	})
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, doc)
}

type updateDocumentRequest struct {
	Title   string               `json:"title"`
	Design  *model.DesignConfig  `json:"design_config"`
	Content *model.Content       `json:"content"`
	Status  model.DocumentStatus `json:"status"`
}

func (h *DocumentHandler) Update(c *gin.Context) {
	var req updateDocumentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorJSON(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	doc, err := h.documents.Update(c.Request.Context(), getUserID(c), c.Param("id"), service.UpdateInput{
		Title:   req.Title,
		Design:  req.Design,
		Content: req.Content,
		Status:  req.Status,
	})
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, doc)
}

func (h *DocumentHandler) Delete(c *gin.Context) {
	if err := h.documents.Delete(c.Request.Context(), getUserID(c), c.Param("id")); err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
