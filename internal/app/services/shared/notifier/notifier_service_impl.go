package notifier

import (
	"context"
	"reservation-center/internal/app/contracts"
	"reservation-center/internal/app/models"
	"reservation-center/internal/pkg/constvars"
	"reservation-center/internal/pkg/exceptions"
	"reservation-center/internal/pkg/utils"
	"sync"

	"github.com/goccy/go-json"
	"github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

// Publisher is the part of *amqp091.Channel used here.
type Publisher interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp091.Publishing) error
}

type notifierService struct {
	mu        sync.Mutex
	Publisher Publisher
	Queue     string
	Log       *zap.Logger
}

// NewNotifierService opens a channel on conn and declares a durable queue. A nil
// conn yields a notifier that only logs.
func NewNotifierService(conn *amqp091.Connection, queue string, logger *zap.Logger) (contracts.NotifierService, error) {
	if conn == nil {
		return NewNotifierServiceWithPublisher(nil, queue, logger), nil
	}

	channel, err := conn.Channel()
	if err != nil {
		return nil, err
	}

	_, err = channel.QueueDeclare(queue, true, false, false, false, nil)
	if err != nil {
		channel.Close()
		return nil, err
	}

	return NewNotifierServiceWithPublisher(channel, queue, logger), nil
}

func NewNotifierServiceWithPublisher(publisher Publisher, queue string, logger *zap.Logger) contracts.NotifierService {
	return &notifierService{
		Publisher: publisher,
		Queue:     queue,
		Log:       logger,
	}
}

func (s *notifierService) Publish(ctx context.Context, notification *models.Notification) error {
	requestID := utils.GetRequestID(ctx)
	s.Log.Info("notifierService.Publish called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSessionIDKey, notification.SessionID),
		zap.String(constvars.LoggingNotificationKey, string(notification.Level)),
		zap.String(constvars.LoggingReservationIDKey, notification.ReservationID),
	)

	if s.Publisher == nil {
		return nil
	}

	body, err := json.Marshal(notification)
	if err != nil {
		s.Log.Error("notifierService.Publish error marshaling notification",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return exceptions.ErrCannotMarshalJSON(err)
	}

	message := amqp091.Publishing{
		ContentType:  constvars.MIMEApplicationJSON,
		Body:         body,
		DeliveryMode: amqp091.Persistent,
		MessageId:    notification.ID,
		Timestamp:    notification.CreatedAt,
		Headers: amqp091.Table{
			"message_type":     "JSON",
			"requeue_strategy": "DROP",
		},
	}

	s.mu.Lock()
	err = s.Publisher.PublishWithContext(ctx, "", s.Queue, false, false, message)
	s.mu.Unlock()
	if err != nil {
		s.Log.Error("notifierService.Publish error publishing message",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingQueueKey, s.Queue),
			zap.Error(err),
		)
		return exceptions.ErrRabbitMQPublishMessage(err, s.Queue)
	}

	s.Log.Info("notifierService.Publish succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingQueueKey, s.Queue),
	)
	return nil
}
