package channel

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-chat-nosql/internal/domain"
	"github.com/go-chat-nosql/internal/store"
)

type Service interface {
	ListChannels(ctx context.Context) ([]domain.Channel, error)
	GetMessages(ctx context.Context, channelName string, identity domain.Identity) ([]domain.Message, error)
	SendMessage(ctx context.Context, channelName string, identity domain.Identity, content string) (string, error)
	CreateChannel(ctx context.Context, req domain.CreateChannelRequest, identity domain.Identity) (*domain.Channel, error)
}

// tableStore is the subset of store.Store this service needs.
type tableStore interface {
	Get(ctx context.Context, pk, sk string) (*store.Record, error)
	Put(ctx context.Context, rec *store.Record) error
	QueryPartition(ctx context.Context, pk string) ([]store.Record, error)
	QueryType(ctx context.Context, gsiType string) ([]store.Record, error)
}

type service struct {
	store tableStore
}

func NewService(st tableStore) Service {
	return &service{store: st}
}

func (s *service) ListChannels(ctx context.Context) ([]domain.Channel, error) {
	recs, err := s.store.QueryType(ctx, store.TypeChannel)
	if err != nil {
		return nil, err
	}
	channels := make([]domain.Channel, 0, len(recs))
	for i := range recs {
		// The type index may shadow rows besides META in legacy data.
		if recs[i].SK != store.MetaSortKey {
			continue
		}
		channels = append(channels, recordToChannel(&recs[i]))
	}
	return channels, nil
}

func (s *service) GetMessages(ctx context.Context, channelName string, identity domain.Identity) ([]domain.Message, error) {
	ch, err := s.getMeta(ctx, channelName)
	if err != nil {
		return nil, err
	}
	if err := domain.CanReadChannel(ch, identity); err != nil {
		return nil, err
	}
	recs, err := s.store.QueryPartition(ctx, store.ChannelPartition(channelName))
	if err != nil {
		return nil, err
	}
	return store.FormatMessages(recs), nil
}

func (s *service) SendMessage(ctx context.Context, channelName string, identity domain.Identity, content string) (string, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return "", fmt.Errorf("message content is required: %w", domain.ErrBadRequest)
	}

	// The lock state is re-checked against a freshly fetched META row at send
	// time; a cached value would let a guest slip through a just-locked channel.
	ch, err := s.getMeta(ctx, channelName)
	if err != nil {
		return "", err
	}
	if err := domain.CanWriteChannel(ch, identity); err != nil {
		return "", err
	}

	senderID := identity.SenderID()
	sk := store.NewMessageSortKey(time.Now().UTC())
	rec := &store.Record{
		PK:       store.ChannelPartition(channelName),
		SK:       sk,
		Content:  content,
		SenderID: senderID,
		UserID:   senderID,
	}
	if err := s.store.Put(ctx, rec); err != nil {
		return "", err
	}
	return sk, nil
}

func (s *service) CreateChannel(ctx context.Context, req domain.CreateChannelRequest, identity domain.Identity) (*domain.Channel, error) {
	if err := domain.RequireAuthenticated(identity); err != nil {
		return nil, err
	}
	name := strings.TrimSpace(req.Name)
	if name == "" || strings.ContainsRune(name, '#') {
		return nil, fmt.Errorf("channel name must be non-empty and must not contain '#': %w", domain.ErrBadRequest)
	}

	pk, sk := store.ChannelMetaKey(name)
	if _, err := s.store.Get(ctx, pk, sk); err == nil {
		return nil, fmt.Errorf("channel %q already exists: %w", name, domain.ErrConflict)
	} else if !isNotFound(err) {
		return nil, err
	}

	creatorID, _ := identity.UserID()
	rec := &store.Record{
		PK:        pk,
		SK:        sk,
		GSIType:   store.TypeChannel,
		Name:      name,
		IsLocked:  req.IsLocked,
		CreatorID: creatorID,
	}
	if err := s.store.Put(ctx, rec); err != nil {
		return nil, err
	}
	ch := recordToChannel(rec)
	return &ch, nil
}

func (s *service) getMeta(ctx context.Context, channelName string) (*domain.Channel, error) {
	pk, sk := store.ChannelMetaKey(channelName)
	rec, err := s.store.Get(ctx, pk, sk)
	if err != nil {
		return nil, err
	}
	ch := recordToChannel(rec)
	return &ch, nil
}

func isNotFound(err error) bool { return errors.Is(err, domain.ErrNotFound) }

func recordToChannel(rec *store.Record) domain.Channel {
	return domain.Channel{
		ID:        store.ChannelNameFromPartition(rec.PK),
		Name:      rec.Name,
		IsLocked:  rec.IsLocked,
		CreatorID: rec.CreatorID,
	}
}
