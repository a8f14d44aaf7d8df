package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/xxxsen/common/logutil"
	"go.uber.org/zap"

	"github.com/astrumlab/tzbrief/internal/notify"
)

// SendService runs the share flow: mark the document active, then notify the
// recipient. Delivery failure is absorbed into a simulated-success message so
// the demo experience stays uninterrupted.
type SendService struct {
	documents *DocumentService
	notifier  notify.Notifier
}

func NewSendService(documents *DocumentService, notifier notify.Notifier) *SendService {
	return &SendService{documents: documents, notifier: notifier}
}

type SendResult struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// Send notifies username about the document. The title from the store wins
// over the caller-provided one when the document resolves; activation is
// best-effort and never blocks delivery.
func (s *SendService) Send(ctx context.Context, ownerID int64, username, documentID, documentTitle string) SendResult {
	username = strings.TrimPrefix(strings.TrimSpace(username), "@")
	title := documentTitle
	if doc, err := s.documents.Activate(ctx, ownerID, documentID); err == nil {
		title = doc.Title
	} else {
		logutil.GetLogger(ctx).Warn("send proceeding without activation",
			zap.String("doc_id", documentID), zap.Error(err))
	}
	message, err := s.notifier.Notify(ctx, username, documentID, title)
	if err != nil {
		logutil.GetLogger(ctx).Warn("notification delivery failed, reporting simulated success",
			zap.String("username", username), zap.Error(err))
		message = fmt.Sprintf("Notification simulated for @%s", username)
	}
	return SendResult{Success: true, Message: message}
}
