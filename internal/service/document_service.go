package service

import (
	"context"
	"strings"

	"github.com/xxxsen/common/logutil"
	"go.uber.org/zap"

	"github.com/astrumlab/tzbrief/internal/gateway"
	"github.com/astrumlab/tzbrief/internal/model"
	appErr "github.com/astrumlab/tzbrief/internal/pkg/errors"
	"github.com/astrumlab/tzbrief/internal/pkg/timeutil"
)

// DocumentGateway is the persistence surface the service drives; satisfied by
// *gateway.Gateway.
type DocumentGateway interface {
	List(ctx context.Context, userID int64, filter model.ListFilter) ([]model.Document, error)
	Get(ctx context.Context, docID string) (*model.Document, error)
	Create(ctx context.Context, doc *model.Document) (*model.Document, error)
	Update(ctx context.Context, userID int64, docID string, fields gateway.UpdateFields) (*model.Document, error)
	Delete(ctx context.Context, userID int64, docID string) error
}

type DocumentService struct {
	gw DocumentGateway
}

func NewDocumentService(gw DocumentGateway) *DocumentService {
	return &DocumentService{gw: gw}
}

type CreateInput struct {
	Title      string
	Type       model.DocumentType
	Design     *model.DesignConfig
	Content    *model.Content
	IsTemplate bool
}

type UpdateInput struct {
	Title   string
	Design  *model.DesignConfig
	Content *model.Content
	Status  model.DocumentStatus
}

// Create assembles a new document: type-derived placeholder title when blank,
// status draft, defaulted design and the type's empty content shape.
func (s *DocumentService) Create(ctx context.Context, ownerID int64, input CreateInput) (*model.Document, error) {
	if !input.Type.Valid() {
		return nil, appErr.ErrInvalid
	}
	title := strings.TrimSpace(input.Title)
	if title == "" {
		title = input.Type.DefaultTitle()
	}
	design := model.DefaultDesign()
	if input.Design != nil {
		design = input.Design.Normalized()
	}
	content := model.NewContent(input.Type)
	if input.Content != nil {
		content = *input.Content
	}
	now := timeutil.Now()
	doc := &model.Document{
		ID:         gateway.NewDocumentID(),
		OwnerID:    ownerID,
		Title:      title,
		Type:       input.Type,
		Status:     model.StatusDraft,
		Design:     design,
		Content:    content,
		IsTemplate: input.IsTemplate,
		SharedWith: []string{},
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	return s.gw.Create(ctx, doc)
}

func (s *DocumentService) List(ctx context.Context, ownerID int64, filter model.ListFilter) ([]model.Document, error) {
	return s.gw.List(ctx, ownerID, filter)
}

func (s *DocumentService) Get(ctx context.Context, docID string) (*model.Document, error) {
	return s.gw.Get(ctx, docID)
}

// Update replaces title/design/content/status wholesale. A blank status is
// written as draft; beyond that transitions are the caller's convention, not
// a guarded state machine.
func (s *DocumentService) Update(ctx context.Context, ownerID int64, docID string, input UpdateInput) (*model.Document, error) {
	status := input.Status
	if status == "" {
		status = model.StatusDraft
	}
	design := model.DefaultDesign()
	if input.Design != nil {
		design = input.Design.Normalized()
	}
	content := model.Content{}
	if input.Content != nil {
		content = *input.Content
	}
	return s.gw.Update(ctx, ownerID, docID, gateway.UpdateFields{
		Title:   input.Title,
		Design:  design,
		Content: content,
		Status:  status,
	})
}

// SaveDraft is the explicit "save draft" action: same wholesale update with
// the status pinned to draft.
func (s *DocumentService) SaveDraft(ctx context.Context, ownerID int64, docID string, input UpdateInput) (*model.Document, error) {
	input.Status = model.StatusDraft
	return s.Update(ctx, ownerID, docID, input)
}

func (s *DocumentService) Delete(ctx context.Context, ownerID int64, docID string) error {
	return s.gw.Delete(ctx, ownerID, docID)
}

// Activate marks a document active as part of the send flow, re-writing its
// current fields wholesale. Failures are logged and reported; the caller
// decides whether the share flow proceeds anyway.
func (s *DocumentService) Activate(ctx context.Context, ownerID int64, docID string) (*model.Document, error) {
	doc, err := s.gw.Get(ctx, docID)
	if err != nil {
		return nil, err
	}
	if doc.OwnerID != ownerID {
		return nil, appErr.ErrNotFound
	}
	updated, err := s.gw.Update(ctx, ownerID, docID, gateway.UpdateFields{
		Title:   doc.Title,
		Design:  doc.Design,
		Content: doc.Content,
		Status:  model.StatusActive,
	})
	if err != nil {
		logutil.GetLogger(ctx).Warn("failed to activate document on send",
			zap.String("doc_id", docID), zap.Error(err))
		return nil, err
	}
	return updated, nil
}
