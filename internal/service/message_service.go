package service

import (
	"context"
	"errors"
	"time"

	"personalfit/trainer-app/internal/domain"
	"personalfit/trainer-app/internal/storage"
	"personalfit/trainer-app/internal/store"
)

var (
	ErrMessageNotFound = errors.New("message not found")
	ErrEmptyMessage    = errors.New("message content is required")
)

// MessageService handles the trainer/student chat. Media messages carry
// an object key; the attachment itself moves through presigned URLs.
type MessageService interface {
	Conversation(userID, otherID string) []domain.Message
	Send(message domain.Message) (domain.Message, error)
	MarkRead(id string) error
	AttachmentUploadURL(ctx context.Context, messageID, contentType string) (string, error)
	AttachmentViewURL(ctx context.Context, messageID string) (string, error)
}

type messageService struct {
	store *store.Store
	media storage.MediaStorage
}

// NewMessageService creates a new instance of messageService.
func NewMessageService(st *store.Store, media storage.MediaStorage) MessageService {
	return &messageService{store: st, media: media}
}

// Conversation returns the messages exchanged between two users, in the
// order they were sent.
func (s *messageService) Conversation(userID, otherID string) []domain.Message {
	var out []domain.Message
	for _, m := range s.store.Messages() {
		if (m.SenderID == userID && m.ReceiverID == otherID) ||
			(m.SenderID == otherID && m.ReceiverID == userID) {
			out = append(out, m)
		}
	}
	return out
}

func (s *messageService) Send(message domain.Message) (domain.Message, error) {
	if message.Content == "" && message.Type == domain.MessageText {
		return domain.Message{}, ErrEmptyMessage
	}
	if message.Type == "" {
		message.Type = domain.MessageText
	}
	return s.store.AddMessage(message), nil
}

func (s *messageService) MarkRead(id string) error {
	if !s.store.MarkMessageRead(id) {
		return ErrMessageNotFound
	}
	return nil
}

func (s *messageService) AttachmentUploadURL(ctx context.Context, messageID, contentType string) (string, error) {
	if s.media == nil {
		return "", ErrMediaDisabled
	}
	return s.media.PresignUpload(ctx, storage.MessageAttachmentKey(messageID), contentType, 15*time.Minute)
}

func (s *messageService) AttachmentViewURL(ctx context.Context, messageID string) (string, error) {
	if s.media == nil {
		return "", ErrMediaDisabled
	}
	return s.media.PresignView(ctx, storage.MessageAttachmentKey(messageID), 15*time.Minute)
}
