// Package auth implements the Authenticator collaborator: registration and
// login backed by the same single table (PROFILE rows), bcrypt password
// hashing and JWT issuance. The chat services never see credentials; they
// receive a resolved domain.Identity.
package auth

import (
	"context"
	"fmt"

	"github.com/go-chat-nosql/internal/domain"
	"github.com/go-chat-nosql/internal/pkg/id"
	"github.com/go-chat-nosql/internal/pkg/validate"
	"github.com/go-chat-nosql/internal/store"
	"golang.org/x/crypto/bcrypt"
)

type Service interface {
	Register(ctx context.Context, req domain.RegisterRequest) (*domain.User, string, error)
	Login(ctx context.Context, req domain.LoginRequest) (*domain.User, string, error)
}

// tableStore is the subset of store.Store this service needs.
type tableStore interface {
	Put(ctx context.Context, rec *store.Record) error
	QueryType(ctx context.Context, gsiType string) ([]store.Record, error)
}

type jwtSigner interface {
	Sign(userID string) (string, error)
}

type service struct {
	store tableStore
	jwt   jwtSigner
}

func NewService(st tableStore, signer jwtSigner) Service {
	return &service{store: st, jwt: signer}
}

func (s *service) Register(ctx context.Context, req domain.RegisterRequest) (*domain.User, string, error) {
	if err := validate.Struct(req); err != nil {
		return nil, "", fmt.Errorf("%v: %w", err, domain.ErrBadRequest)
	}
	existing, err := s.findByName(ctx, req.Name)
	if err != nil {
		return nil, "", err
	}
	if existing != nil {
		return nil, "", fmt.Errorf("user %q already exists: %w", req.Name, domain.ErrConflict)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", err
	}

	u := &domain.User{
		UserID:       id.New(),
		Name:         req.Name,
		PasswordHash: string(hash),
	}
	pk, sk := store.UserProfileKey(u.UserID)
	rec := &store.Record{
		PK:           pk,
		SK:           sk,
		GSIType:      store.TypeUser,
		Name:         u.Name,
		UserID:       u.UserID,
		PasswordHash: u.PasswordHash,
	}
	if err := s.store.Put(ctx, rec); err != nil {
		return nil, "", err
	}

	token, err := s.jwt.Sign(u.UserID)
	if err != nil {
		return nil, "", err
	}
	return u, token, nil
}

func (s *service) Login(ctx context.Context, req domain.LoginRequest) (*domain.User, string, error) {
	if err := validate.Struct(req); err != nil {
		return nil, "", fmt.Errorf("%v: %w", err, domain.ErrBadRequest)
	}
	u, err := s.findByName(ctx, req.Name)
	if err != nil {
		return nil, "", err
	}
	if u == nil {
		return nil, "", fmt.Errorf("invalid credentials: %w", domain.ErrUnauthorized)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.Password)); err != nil {
		return nil, "", fmt.Errorf("invalid credentials: %w", domain.ErrUnauthorized)
	}

	token, err := s.jwt.Sign(u.UserID)
	if err != nil {
		return nil, "", err
	}
	return u, token, nil
}

// findByName scans the USER type index for a profile with the given name.
// Returns (nil, nil) when no such user exists.
func (s *service) findByName(ctx context.Context, name string) (*domain.User, error) {
	recs, err := s.store.QueryType(ctx, store.TypeUser)
	if err != nil {
		return nil, err
	}
	for i := range recs {
		if recs[i].SK != store.ProfileSortKey || recs[i].Name != name {
			continue
		}
		return &domain.User{
			UserID:       recs[i].UserID,
			Name:         recs[i].Name,
			PasswordHash: recs[i].PasswordHash,
		}, nil
	}
	return nil, nil
}
