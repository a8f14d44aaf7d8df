// Package gateway mediates all document reads and writes. A Gateway wraps an
// optional store-backed repository and an immutable seed dataset: with no
// store configured every operation is served from the seed, and when a
// configured store fails, reads degrade to the seed while writes either echo
// a synthesized record (create) or surface the failure (update/delete) — a
// live store is never left partially written behind a swallowed error.
package gateway

import (
	"context"
	"sort"

	"github.com/google/uuid"
	"github.com/xxxsen/common/logutil"
	"go.uber.org/zap"

	"github.com/astrumlab/tzbrief/internal/model"
	appErr "github.com/astrumlab/tzbrief/internal/pkg/errors"
	"github.com/astrumlab/tzbrief/internal/pkg/timeutil"
	"github.com/astrumlab/tzbrief/internal/repo"
)

// UpdateFields is the wholesale replacement payload of an update: no
// field-level patch semantics exist.
type UpdateFields struct {
	Title   string
	Design  model.DesignConfig
	Content model.Content
	Status  model.DocumentStatus
}

type Gateway struct {
	docs *repo.DocumentRepo // nil when no backing store is configured
	seed []model.Document
}

// New builds a Gateway over an optional repository and an explicitly
// constructed seed. Pass repo as nil to run entirely from the seed.
func New(docs *repo.DocumentRepo, seed []model.Document) *Gateway {
	return &Gateway{docs: docs, seed: seed}
}

func (g *Gateway) List(ctx context.Context, userID int64, filter model.ListFilter) ([]model.Document, error) {
	if g.docs == nil {
		return g.seedList(filter), nil
	}
	docs, err := g.docs.List(ctx, userID, filter)
	if err != nil {
		logutil.GetLogger(ctx).Warn("document list failed, serving seed data", zap.Error(err))
		return g.seedList(filter), nil
	}
	return docs, nil
}

func (g *Gateway) Get(ctx context.Context, docID string) (*model.Document, error) {
	if g.docs == nil {
		return g.seedGet(docID)
	}
	doc, err := g.docs.GetByID(ctx, docID)
	if err == nil {
		return doc, nil
	}
	if appErr.IsNotFound(err) {
		return nil, err
	}
	logutil.GetLogger(ctx).Warn("document get failed, serving seed data",
		zap.String("doc_id", docID), zap.Error(err))
	return g.seedGet(docID)
}

// Create persists the prepared record. It never fails: with no store the
// record is echoed back as-is, and a store error is logged and likewise
// echoed — the caller receives success-shaped output with no durable effect.
func (g *Gateway) Create(ctx context.Context, doc *model.Document) (*model.Document, error) {
	if g.docs == nil {
		return doc, nil
	}
	if err := g.docs.Create(ctx, doc); err != nil {
		logutil.GetLogger(ctx).Warn("document create failed, echoing synthesized record",
			zap.String("doc_id", doc.ID), zap.Error(err))
		return doc, nil
	}
	return doc, nil
}

// Update replaces title/design/content/status wholesale. Ownership mismatch
// and absence are both reported as ErrNotFound. A store error surfaces as
// ErrUpstream rather than degrading: mutations never pretend to succeed
// against a configured store.
func (g *Gateway) Update(ctx context.Context, userID int64, docID string, fields UpdateFields) (*model.Document, error) {
	if g.docs == nil {
		return synthesizeUpdate(userID, docID, fields), nil
	}
	now := timeutil.Now()
	doc := &model.Document{
		ID:        docID,
		OwnerID:   userID,
		Title:     fields.Title,
		Design:    fields.Design,
		Content:   fields.Content,
		Status:    fields.Status,
		UpdatedAt: now,
	}
	if err := g.docs.Update(ctx, doc); err != nil {
		if appErr.IsNotFound(err) {
			return nil, err
		}
		logutil.GetLogger(ctx).Error("document update failed",
			zap.String("doc_id", docID), zap.Error(err))
		return nil, appErr.ErrUpstream
	}
	return g.docs.GetByID(ctx, docID)
}

func (g *Gateway) Delete(ctx context.Context, userID int64, docID string) error {
	if g.docs == nil {
		return nil
	}
	err := g.docs.Delete(ctx, userID, docID)
	if err == nil || appErr.IsNotFound(err) {
		return err
	}
	logutil.GetLogger(ctx).Error("document delete failed",
		zap.String("doc_id", docID), zap.Error(err))
	return appErr.ErrUpstream
}

func (g *Gateway) seedList(filter model.ListFilter) []model.Document {
	filtered := make([]model.Document, 0, len(g.seed))
	for _, doc := range g.seed {
		if filter.Match(doc) {
			filtered = append(filtered, doc)
		}
	}
	sort.SliceStable(filtered, func(i, j int) bool {
		return filtered[i].UpdatedAt.After(filtered[j].UpdatedAt)
	})
	return filtered
}

func (g *Gateway) seedGet(docID string) (*model.Document, error) {
	for _, doc := range g.seed {
		if doc.ID == docID {
			found := doc
			return &found, nil
		}
	}
	return nil, appErr.ErrNotFound
}

// synthesizeUpdate echoes the requested write when no store is configured,
// mirroring the shape a durable update would return.
func synthesizeUpdate(userID int64, docID string, fields UpdateFields) *model.Document {
	now := timeutil.Now()
	title := fields.Title
	if title == "" {
		title = "Обновленный документ"
	}
	return &model.Document{
		ID:         docID,
		OwnerID:    userID,
		Title:      title,
		Type:       model.TypeTZ,
		Status:     fields.Status,
		Design:     fields.Design,
		Content:    fields.Content,
		SharedWith: []string{},
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

// NewDocumentID assigns the opaque identifier documents carry from creation.
func NewDocumentID() string {
	return uuid.NewString()
}
