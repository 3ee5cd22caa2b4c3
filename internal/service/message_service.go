package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/microcosm-cc/bluemonday"
	"github.com/rs/zerolog"

	"github.com/skillmarket/skillmarket-api/internal/dto"
	"github.com/skillmarket/skillmarket-api/internal/models"
	"github.com/skillmarket/skillmarket-api/internal/store"
)

// MessageService delivers direct messages to user inboxes.
type MessageService struct {
	records   store.Store
	validator *validator.Validate
	sanitizer *bluemonday.Policy
	logger    zerolog.Logger
	now       func() time.Time
}

// NewMessageService builds the message service.
func NewMessageService(records store.Store, validate *validator.Validate, logger zerolog.Logger) *MessageService {
	return &MessageService{
		records:   records,
		validator: validate,
		sanitizer: bluemonday.UGCPolicy(),
		logger:    logger.With().Str("component", "message_service").Logger(),
		now:       time.Now,
	}
}

// Send stores an unread message and appends it to the recipient's inbox
// index. The sender keeps no "sent" copy.
func (s *MessageService) Send(ctx context.Context, sender models.PublicUser, req dto.MessageSendRequest) (models.Message, error) {
	if err := s.validator.Struct(req); err != nil {
		return models.Message{}, err
	}

	now := s.now()
	message := models.Message{
		ID:          models.NewMessageID(now),
		SenderID:    sender.ID,
		SenderName:  sender.Name,
		RecipientID: req.RecipientID,
		CourseID:    req.CourseID,
		Content:     s.sanitizer.Sanitize(req.Content),
		Read:        false,
		CreatedAt:   now,
	}

	if err := store.SetJSON(ctx, s.records, message.ID, message); err != nil {
		return models.Message{}, err
	}

	if err := store.AppendToList(ctx, s.records, models.UserMessagesKey(req.RecipientID), message.ID); err != nil {
		return models.Message{}, err
	}

	return message, nil
}

// ListMine resolves the user's inbox index via multi-get, dropping entries
// whose message record is absent.
func (s *MessageService) ListMine(ctx context.Context, userID string) ([]models.Message, error) {
	ids, err := store.GetList(ctx, s.records, models.UserMessagesKey(userID))
	if err != nil {
		return nil, err
	}

	values, err := s.records.MGet(ctx, ids)
	if err != nil {
		return nil, err
	}

	messages := make([]models.Message, 0, len(values))
	for _, raw := range values {
		if raw == nil {
			continue
		}
		var message models.Message
		if err := json.Unmarshal(raw, &message); err != nil {
			continue
		}
		messages = append(messages, message)
	}

	return messages, nil
}
