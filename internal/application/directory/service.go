// Package directory lists registered users for the DM contact picker.
package directory

import (
	"context"

	"github.com/go-chat-nosql/internal/domain"
	"github.com/go-chat-nosql/internal/store"
)

type Service interface {
	ListUsers(ctx context.Context) ([]domain.UserSummary, error)
}

type tableStore interface {
	QueryType(ctx context.Context, gsiType string) ([]store.Record, error)
}

type service struct {
	store tableStore
}

func NewService(st tableStore) Service {
	return &service{store: st}
}

// ListUsers returns every registered user. The caller's own entry is not
// filtered out; hiding it is a presentation concern.
func (s *service) ListUsers(ctx context.Context) ([]domain.UserSummary, error) {
	recs, err := s.store.QueryType(ctx, store.TypeUser)
	if err != nil {
		return nil, err
	}
	users := make([]domain.UserSummary, 0, len(recs))
	for i := range recs {
		if recs[i].SK != store.ProfileSortKey {
			continue
		}
		users = append(users, domain.UserSummary{UserID: recs[i].UserID, Name: recs[i].Name})
	}
	return users, nil
}
