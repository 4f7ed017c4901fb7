package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/janus-care/janus/internal/domain"
	"github.com/janus-care/janus/internal/store"
	"github.com/janus-care/janus/pkg/idx"
)

const defaultConversationLimit = 100

// MessageService persists the two-party chat between a patient and their
// assigned therapist.
type MessageService struct {
	Store store.Store
}

// Send stores one message after checking the pair is clinically linked.
func (s *MessageService) Send(ctx context.Context, senderID, recipientID, body string) (domain.Message, error) {
	if body == "" || recipientID == "" {
		return domain.Message{}, ErrValidation
	}
	if senderID == recipientID {
		return domain.Message{}, ErrValidation
	}

	if err := s.requireLinked(ctx, senderID, recipientID); err != nil {
		return domain.Message{}, err
	}

	msg := domain.Message{
		ID:          idx.New().String(),
		SenderID:    senderID,
		RecipientID: recipientID,
		Body:        body,
		CreatedAt:   time.Now().UTC(),
	}
	if err := s.Store.Messages().CreateMessage(ctx, msg); err != nil {
		return domain.Message{}, fmt.Errorf("create message: %w", err)
	}
	return msg, nil
}

// Conversation returns up to limit messages between the caller and the
// other user, oldest first.
func (s *MessageService) Conversation(ctx context.Context, userID, otherID string, limit int) ([]domain.Message, error) {
	if limit <= 0 || limit > defaultConversationLimit {
		limit = defaultConversationLimit
	}

	if err := s.requireLinked(ctx, userID, otherID); err != nil {
		return nil, err
	}

	msgs, err := s.Store.Messages().ListConversation(ctx, userID, otherID, limit)
	if err != nil {
		return nil, fmt.Errorf("list conversation: %w", err)
	}
	return msgs, nil
}

// requireLinked allows a conversation only between a patient and their
// assigned therapist (in either direction).
func (s *MessageService) requireLinked(ctx context.Context, userID, otherID string) error {
	user, err := s.Store.Users().GetUserByID(ctx, userID)
	if err != nil {
		return mapUserLookup(err)
	}
	other, err := s.Store.Users().GetUserByID(ctx, otherID)
	if err != nil {
		return mapUserLookup(err)
	}

	if user.TherapistID == other.ID || other.TherapistID == user.ID {
		return nil
	}
	return ErrForbidden
}

func mapUserLookup(err error) error {
	if errors.Is(err, store.ErrNotFound) {
		return ErrUserNotFound
	}
	return fmt.Errorf("lookup user: %w", err)
}
