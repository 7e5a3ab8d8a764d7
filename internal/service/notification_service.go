package service

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/citizen-connect/grievance-service/internal/config"
	"github.com/citizen-connect/grievance-service/internal/events"
)

// NotificationService handles emitting notifications for grievance events.
type NotificationService struct {
	dispatcher events.Dispatcher
	logger     *zap.Logger
	cfg        config.NotificationConfig
}

// NewNotificationService creates the service.
func NewNotificationService(dispatcher events.Dispatcher, logger *zap.Logger, cfg config.NotificationConfig) *NotificationService {
	return &NotificationService{
		dispatcher: dispatcher,
		logger:     logger,
		cfg:        cfg,
	}
}

// RegisterHandlers subscribes to grievance events.
func (n *NotificationService) RegisterHandlers() {
	if n.dispatcher == nil {
		return
	}
	n.dispatcher.Subscribe(events.EventGrievanceCreated, n.handleGrievanceCreated)
	n.dispatcher.Subscribe(events.EventGrievanceStatusChanged, n.handleStatusChanged)
	n.dispatcher.Subscribe(events.EventGrievanceDeleted, n.handleGrievanceDeleted)
}

func (n *NotificationService) handleGrievanceCreated(ctx context.Context, event events.Event) error {
	n.logger.Info("GrievanceCreated", zap.String("grievance_id", event.GrievanceID), zap.Any("payload", event.Payload))
	n.sendEmailNotificationStub(ctx, event)
	n.sendWebhookNotificationStub(ctx, event)
	return nil
}

func (n *NotificationService) handleStatusChanged(ctx context.Context, event events.Event) error {
	n.logger.Info("GrievanceStatusChanged", zap.String("grievance_id", event.GrievanceID), zap.Any("payload", event.Payload))
	n.sendWebhookNotificationStub(ctx, event)
	return nil
}

func (n *NotificationService) handleGrievanceDeleted(ctx context.Context, event events.Event) error {
	n.logger.Info("GrievanceDeleted", zap.String("grievance_id", event.GrievanceID))
	n.sendWebhookNotificationStub(ctx, event)
	return nil
}

func (n *NotificationService) sendEmailNotificationStub(_ context.Context, event events.Event) {
	if strings.TrimSpace(n.cfg.EmailFrom) == "" {
		return
	}
	n.logger.Debug("sendEmailNotificationStub",
		zap.String("from", n.cfg.EmailFrom),
		zap.String("grievance_id", event.GrievanceID),
		zap.String("event_type", string(event.Type)))
}

func (n *NotificationService) sendWebhookNotificationStub(_ context.Context, event events.Event) {
	if strings.TrimSpace(n.cfg.WebhookURL) == "" {
		return
	}
	n.logger.Debug("sendWebhookNotificationStub",
		zap.String("url", n.cfg.WebhookURL),
		zap.String("grievance_id", event.GrievanceID),
		zap.String("event_type", string(event.Type)))
}
