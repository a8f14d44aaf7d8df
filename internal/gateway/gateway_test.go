package gateway

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/astrumlab/tzbrief/internal/model"
	appErr "github.com/astrumlab/tzbrief/internal/pkg/errors"
)

func seedIDs(docs []model.Document) []string {
	ids := make([]string, 0, len(docs))
	for _, d := range docs {
		ids = append(ids, d.ID)
	}
	return ids
}

func TestSeedListSortedByUpdatedAtDesc(t *testing.T) {
	g := New(nil, Seed())
	docs, err := g.List(context.Background(), SeedOwnerID, model.ListFilter{})
	require.NoError(t, err)
	require.Equal(t, []string{
		"550e8400-e29b-41d4-a716-446655440001",
		"550e8400-e29b-41d4-a716-446655440002",
		"550e8400-e29b-41d4-a716-446655440003",
		"550e8400-e29b-41d4-a716-446655440004",
		"550e8400-e29b-41d4-a716-446655440005",
		"550e8400-e29b-41d4-a716-446655440006",
	}, seedIDs(docs))
}

func TestSeedListTemplateFilterIgnoresStatus(t *testing.T) {
	g := New(nil, Seed())
	template := true
	status := model.StatusActive // both templates are drafts

	docs, err := g.List(context.Background(), SeedOwnerID, model.ListFilter{
		Template: &template,
		Status:   &status,
	})
	require.NoError(t, err)
	require.Equal(t, []string{
		"550e8400-e29b-41d4-a716-446655440004",
		"550e8400-e29b-41d4-a716-446655440005",
	}, seedIDs(docs))
}

func TestSeedListStatusAppliesToNonTemplates(t *testing.T) {
	g := New(nil, Seed())
	template := false
	status := model.StatusDraft

	docs, err := g.List(context.Background(), SeedOwnerID, model.ListFilter{
		Template: &template,
		Status:   &status,
	})
	require.NoError(t, err)
	require.Equal(t, []string{"550e8400-e29b-41d4-a716-446655440002"}, seedIDs(docs))
}

func TestSeedListTypeFilter(t *testing.T) {
	g := New(nil, Seed())
	docType := model.TypeBrief

	docs, err := g.List(context.Background(), SeedOwnerID, model.ListFilter{Type: &docType})
	require.NoError(t, err)
	require.Equal(t, []string{
		"550e8400-e29b-41d4-a716-446655440002",
		"550e8400-e29b-41d4-a716-446655440004",
		"550e8400-e29b-41d4-a716-446655440006",
	}, seedIDs(docs))
}

func TestSeedGet(t *testing.T) {
	g := New(nil, Seed())

	doc, err := g.Get(context.Background(), "550e8400-e29b-41d4-a716-446655440001")
	require.NoError(t, err)
	require.Equal(t, "Лендинг для стартапа", doc.Title)
	require.Equal(t, model.TypeTZ, doc.Type)
	require.Equal(t, SeedOwnerID, doc.OwnerID)

	_, err = g.Get(context.Background(), "550e8400-e29b-41d4-a716-446655440099")
	require.ErrorIs(t, err, appErr.ErrNotFound)
}

func TestCreateEchoesWithoutStore(t *testing.T) {
	g := New(nil, Seed())
	doc := &model.Document{
		ID:      NewDocumentID(),
		OwnerID: SeedOwnerID,
		Title:   "Новый бриф",
		Type:    model.TypeBrief,
		Status:  model.StatusDraft,
	}
	got, err := g.Create(context.Background(), doc)
	require.NoError(t, err)
	require.Same(t, doc, got)
}

func TestUpdateSynthesizesWithoutStore(t *testing.T) {
	g := New(nil, Seed())
	got, err := g.Update(context.Background(), SeedOwnerID, "abc-123", UpdateFields{
		Status:  model.StatusActive,
		Content: model.NewContent(model.TypeTZ),
	})
	require.NoError(t, err)
	require.Equal(t, "abc-123", got.ID)
	require.Equal(t, "Обновленный документ", got.Title, "blank title falls back to the stub")
	require.Equal(t, model.StatusActive, got.Status)
	require.Equal(t, SeedOwnerID, got.OwnerID)
	require.False(t, got.UpdatedAt.IsZero())
}

func TestUpdateKeepsProvidedTitleWithoutStore(t *testing.T) {
	g := New(nil, Seed())
	got, err := g.Update(context.Background(), SeedOwnerID, "abc-123", UpdateFields{
		Title:  "Мой документ",
		Status: model.StatusDraft,
	})
	require.NoError(t, err)
	require.Equal(t, "Мой документ", got.Title)
}

func TestDeleteWithoutStore(t *testing.T) {
	g := New(nil, Seed())
	require.NoError(t, g.Delete(context.Background(), SeedOwnerID, "550e8400-e29b-41d4-a716-446655440001"))
}

func TestSeedIsFreshPerInvocation(t *testing.T) {
	a := Seed()
	b := Seed()
	a[0].Title = "mutated"
	require.NotEqual(t, a[0].Title, b[0].Title)
}
