package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/astrumlab/tzbrief/internal/model"
	"github.com/astrumlab/tzbrief/internal/notify"
)

type failingNotifier struct{}

func (failingNotifier) Notify(ctx context.Context, username, documentID, documentTitle string) (string, error) {
	return "", errors.New("telegram api unreachable")
}

func TestSendActivatesAndNotifies(t *testing.T) {
	gw := newFakeGateway(&model.Document{
		ID:      "d1",
		OwnerID: testOwner,
		Title:   "Лендинг для стартапа",
		Type:    model.TypeTZ,
		Status:  model.StatusDraft,
	})
	svc := NewSendService(NewDocumentService(gw), notify.Mock{})

	result := svc.Send(context.Background(), testOwner, "@designer", "d1", "ignored title")
	require.True(t, result.Success)
	require.Equal(t, `Notification would be sent to @designer about "Лендинг для стартапа"`, result.Message)
	require.Equal(t, model.StatusActive, gw.docs["d1"].Status)
}

func TestSendFallsBackToCallerTitle(t *testing.T) {
	// No such document: activation fails, the caller-provided title is used.
	svc := NewSendService(NewDocumentService(newFakeGateway()), notify.Mock{})

	result := svc.Send(context.Background(), testOwner, "designer", "missing", "Бриф для логотипа")
	require.True(t, result.Success)
	require.Equal(t, `Notification would be sent to @designer about "Бриф для логотипа"`, result.Message)
}

func TestSendSimulatesSuccessOnDeliveryFailure(t *testing.T) {
	gw := newFakeGateway(&model.Document{ID: "d1", OwnerID: testOwner, Title: "ТЗ", Type: model.TypeTZ})
	svc := NewSendService(NewDocumentService(gw), failingNotifier{})

	result := svc.Send(context.Background(), testOwner, "designer", "d1", "")
	require.True(t, result.Success)
	require.Equal(t, "Notification simulated for @designer", result.Message)
}
