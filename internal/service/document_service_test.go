package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/astrumlab/tzbrief/internal/gateway"
	"github.com/astrumlab/tzbrief/internal/model"
	appErr "github.com/astrumlab/tzbrief/internal/pkg/errors"
)

// fakeGateway records calls and serves documents from an in-memory map.
type fakeGateway struct {
	docs       map[string]*model.Document
	created    []*model.Document
	lastUpdate *gateway.UpdateFields
	updateErr  error
}

func newFakeGateway(docs ...*model.Document) *fakeGateway {
	g := &fakeGateway{docs: map[string]*model.Document{}}
	for _, d := range docs {
		g.docs[d.ID] = d
	}
	return g
}

func (g *fakeGateway) List(ctx context.Context, userID int64, filter model.ListFilter) ([]model.Document, error) {
	out := make([]model.Document, 0, len(g.docs))
	for _, d := range g.docs {
		if d.OwnerID == userID && filter.Match(*d) {
			out = append(out, *d)
		}
	}
	return out, nil
}

func (g *fakeGateway) Get(ctx context.Context, docID string) (*model.Document, error) {
	doc, ok := g.docs[docID]
	if !ok {
		return nil, appErr.ErrNotFound
	}
	return doc, nil
}

func (g *fakeGateway) Create(ctx context.Context, doc *model.Document) (*model.Document, error) {
	g.created = append(g.created, doc)
	g.docs[doc.ID] = doc
	return doc, nil
}

func (g *fakeGateway) Update(ctx context.Context, userID int64, docID string, fields gateway.UpdateFields) (*model.Document, error) {
	if g.updateErr != nil {
		return nil, g.updateErr
	}
	g.lastUpdate = &fields
	doc, ok := g.docs[docID]
	if !ok || doc.OwnerID != userID {
		return nil, appErr.ErrNotFound
	}
	doc.Title = fields.Title
	doc.Design = fields.Design
	doc.Content = fields.Content
	doc.Status = fields.Status
	return doc, nil
}

func (g *fakeGateway) Delete(ctx context.Context, userID int64, docID string) error {
	doc, ok := g.docs[docID]
	if !ok || doc.OwnerID != userID {
		return appErr.ErrNotFound
	}
	delete(g.docs, docID)
	return nil
}

const testOwner int64 = 42

func TestCreateBlankTitleUsesTypeDefault(t *testing.T) {
	tests := []struct {
		docType   model.DocumentType
		wantTitle string
	}{
		{model.TypeTZ, "ТЗ без названия"},
		{model.TypeBrief, "Бриф без названия"},
	}
	for _, tt := range tests {
		t.Run(string(tt.docType), func(t *testing.T) {
			svc := NewDocumentService(newFakeGateway())
			doc, err := svc.Create(context.Background(), testOwner, CreateInput{Title: "  ", Type: tt.docType})
			require.NoError(t, err)
			require.Equal(t, tt.wantTitle, doc.Title)
			require.Equal(t, model.StatusDraft, doc.Status)
			require.Equal(t, model.FontRegular, doc.Design.Font)
			require.Equal(t, model.NewContent(tt.docType), doc.Content)
			require.Equal(t, []string{}, doc.SharedWith)
			require.NotEmpty(t, doc.ID)
			require.False(t, doc.CreatedAt.IsZero())
		})
	}
}

func TestCreateRejectsUnknownType(t *testing.T) {
	svc := NewDocumentService(newFakeGateway())
	_, err := svc.Create(context.Background(), testOwner, CreateInput{Type: "presentation"})
	require.ErrorIs(t, err, appErr.ErrInvalid)
}

func TestCreateNormalizesDesign(t *testing.T) {
	svc := NewDocumentService(newFakeGateway())
	doc, err := svc.Create(context.Background(), testOwner, CreateInput{
		Title: "Лендинг",
		Type:  model.TypeTZ,
		Design: &model.DesignConfig{
			BgColor: "#FFFFFF",
			BgImage: "https://cdn/bg.png",
		},
	})
	require.NoError(t, err)
	require.Empty(t, doc.Design.BgColor)
	require.Equal(t, "https://cdn/bg.png", doc.Design.BgImage)
	require.Equal(t, model.FontRegular, doc.Design.Font)
}

func TestUpdateBlankStatusBecomesDraft(t *testing.T) {
	gw := newFakeGateway(&model.Document{ID: "d1", OwnerID: testOwner, Type: model.TypeTZ})
	svc := NewDocumentService(gw)

	_, err := svc.Update(context.Background(), testOwner, "d1", UpdateInput{Title: "Обновлено"})
	require.NoError(t, err)
	require.Equal(t, model.StatusDraft, gw.lastUpdate.Status)
}

func TestSaveDraftPinsStatus(t *testing.T) {
	gw := newFakeGateway(&model.Document{ID: "d1", OwnerID: testOwner, Type: model.TypeTZ})
	svc := NewDocumentService(gw)

	_, err := svc.SaveDraft(context.Background(), testOwner, "d1", UpdateInput{
		Title:  "Черновик",
		Status: model.StatusActive, // must be overridden
	})
	require.NoError(t, err)
	require.Equal(t, model.StatusDraft, gw.lastUpdate.Status)
}

func TestActivateSetsActiveStatus(t *testing.T) {
	gw := newFakeGateway(&model.Document{
		ID:      "d1",
		OwnerID: testOwner,
		Title:   "Лендинг",
		Type:    model.TypeTZ,
		Status:  model.StatusDraft,
	})
	svc := NewDocumentService(gw)

	doc, err := svc.Activate(context.Background(), testOwner, "d1")
	require.NoError(t, err)
	require.Equal(t, model.StatusActive, doc.Status)
	require.Equal(t, "Лендинг", doc.Title)
}

func TestActivateRejectsForeignDocument(t *testing.T) {
	gw := newFakeGateway(&model.Document{ID: "d1", OwnerID: 777, Type: model.TypeTZ})
	svc := NewDocumentService(gw)

	_, err := svc.Activate(context.Background(), testOwner, "d1")
	require.ErrorIs(t, err, appErr.ErrNotFound)
}

func TestActivateSurfacesUpdateFailure(t *testing.T) {
	gw := newFakeGateway(&model.Document{ID: "d1", OwnerID: testOwner, Type: model.TypeTZ})
	gw.updateErr = errors.New("connection refused")
	svc := NewDocumentService(gw)

	_, err := svc.Activate(context.Background(), testOwner, "d1")
	require.Error(t, err)
}
