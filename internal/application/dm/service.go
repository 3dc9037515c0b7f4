package dm

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-chat-nosql/internal/domain"
	"github.com/go-chat-nosql/internal/store"
)

type Service interface {
	GetMessages(ctx context.Context, identity domain.Identity, otherID string) ([]domain.Message, error)
	SendMessage(ctx context.Context, identity domain.Identity, otherID, content string) (string, error)
}

// tableStore is the subset of store.Store this service needs.
type tableStore interface {
	Put(ctx context.Context, rec *store.Record) error
	QueryPartition(ctx context.Context, pk string) ([]store.Record, error)
}

type service struct {
	store tableStore
}

func NewService(st tableStore) Service {
	return &service{store: st}
}

func (s *service) GetMessages(ctx context.Context, identity domain.Identity, otherID string) ([]domain.Message, error) {
	// Identity is checked before any store call.
	if err := domain.RequireAuthenticated(identity); err != nil {
		return nil, err
	}
	selfID, _ := identity.UserID()
	if otherID == "" {
		return nil, fmt.Errorf("receiver id is required: %w", domain.ErrBadRequest)
	}
	recs, err := s.store.QueryPartition(ctx, store.DMPartition(selfID, otherID))
	if err != nil {
		return nil, err
	}
	return store.FormatMessages(recs), nil
}

func (s *service) SendMessage(ctx context.Context, identity domain.Identity, otherID, content string) (string, error) {
	if err := domain.RequireAuthenticated(identity); err != nil {
		return "", err
	}
	selfID, _ := identity.UserID()
	if otherID == "" {
		return "", fmt.Errorf("receiver id is required: %w", domain.ErrBadRequest)
	}
	content = strings.TrimSpace(content)
	if content == "" {
		return "", fmt.Errorf("message content is required: %w", domain.ErrBadRequest)
	}

	sk := store.NewMessageSortKey(time.Now().UTC())
	rec := &store.Record{
		PK:       store.DMPartition(selfID, otherID),
		SK:       sk,
		Content:  content,
		SenderID: selfID,
		UserID:   selfID,
	}
	if err := s.store.Put(ctx, rec); err != nil {
		return "", err
	}
	return sk, nil
}
