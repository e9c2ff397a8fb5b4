package service

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/teleassist/ticketing-service/internal/config"
	"github.com/teleassist/ticketing-service/internal/domain"
	"github.com/teleassist/ticketing-service/internal/events"
	"github.com/teleassist/ticketing-service/internal/repository"
	"github.com/teleassist/ticketing-service/pkg/util"
)

// NotificationService serves per-role notification feeds and emits
// outbound notifications for domain events.
type NotificationService struct {
	activities repository.ActivityRepository
	dispatcher events.Dispatcher
	logger     *zap.Logger
	cfg        config.NotificationConfig
}

// NewNotificationService creates the service.
func NewNotificationService(activities repository.ActivityRepository, dispatcher events.Dispatcher, logger *zap.Logger, cfg config.NotificationConfig) *NotificationService {
	return &NotificationService{
		activities: activities,
		dispatcher: dispatcher,
		logger:     logger,
		cfg:        cfg,
	}
}

// ForCustomer feeds a customer the public activity on their own tickets.
func (n *NotificationService) ForCustomer(ctx context.Context, ownerID int64) ([]domain.TicketActivity, error) {
	logs, err := n.activities.ListPublicForOwner(ctx, ownerID)
	if err != nil {
		return nil, util.ToDomainError(err)
	}
	return logs, nil
}

// ForAgent feeds an agent the public activity on tickets they filed.
func (n *NotificationService) ForAgent(ctx context.Context, creatorID int64) ([]domain.TicketActivity, error) {
	logs, err := n.activities.ListPublicForCreator(ctx, creatorID)
	if err != nil {
		return nil, util.ToDomainError(err)
	}
	return logs, nil
}

// RegisterHandlers subscribes to events.
func (n *NotificationService) RegisterHandlers() {
	if n.dispatcher == nil {
		return
	}
	n.dispatcher.Subscribe(events.EventTicketCreated, n.handleTicketCreated)
	n.dispatcher.Subscribe(events.EventTicketTriaged, n.handleTicketTriaged)
	n.dispatcher.Subscribe(events.EventTicketStatusChanged, n.handleTicketStatusChanged)
	n.dispatcher.Subscribe(events.EventTicketReassigned, n.handleTicketReassigned)
	n.dispatcher.Subscribe(events.EventFeedbackReceived, n.handleFeedbackReceived)
}

func (n *NotificationService) handleTicketCreated(ctx context.Context, event events.Event) error {
	n.logger.Info("TicketCreated", zap.String("ticket_uid", event.TicketUID), zap.Any("payload", event.Payload))
	n.sendEmailNotificationStub(ctx, event)
	n.sendWebhookNotificationStub(ctx, event)
	return nil
}

func (n *NotificationService) handleTicketTriaged(ctx context.Context, event events.Event) error {
	n.logger.Info("TicketTriaged", zap.String("ticket_uid", event.TicketUID), zap.Any("payload", event.Payload))
	n.sendWebhookNotificationStub(ctx, event)
	return nil
}

func (n *NotificationService) handleTicketStatusChanged(ctx context.Context, event events.Event) error {
	n.logger.Info("TicketStatusChanged", zap.String("ticket_uid", event.TicketUID), zap.Any("payload", event.Payload))
	n.sendWebhookNotificationStub(ctx, event)
	return nil
}

func (n *NotificationService) handleTicketReassigned(ctx context.Context, event events.Event) error {
	n.logger.Info("TicketReassigned", zap.String("ticket_uid", event.TicketUID), zap.Any("payload", event.Payload))
	n.sendWebhookNotificationStub(ctx, event)
	return nil
}

func (n *NotificationService) handleFeedbackReceived(ctx context.Context, event events.Event) error {
	n.logger.Info("FeedbackReceived", zap.String("ticket_uid", event.TicketUID), zap.Any("payload", event.Payload))
	n.sendEmailNotificationStub(ctx, event)
	return nil
}

func (n *NotificationService) sendEmailNotificationStub(ctx context.Context, event events.Event) {
	if strings.TrimSpace(n.cfg.EmailFrom) == "" {
		return
	}
	n.logger.Debug("sendEmailNotificationStub",
		zap.String("from", n.cfg.EmailFrom),
		zap.String("ticket_uid", event.TicketUID),
		zap.String("event_type", string(event.Type)))
}

func (n *NotificationService) sendWebhookNotificationStub(ctx context.Context, event events.Event) {
	if strings.TrimSpace(n.cfg.WebhookURL) == "" {
		return
	}
	n.logger.Debug("sendWebhookNotificationStub",
		zap.String("url", n.cfg.WebhookURL),
		zap.String("ticket_uid", event.TicketUID),
		zap.String("event_type", string(event.Type)))
}
