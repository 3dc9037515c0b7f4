package auth

import (
	"context"
	"testing"

	"github.com/go-chat-nosql/internal/domain"
	"github.com/go-chat-nosql/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// --- mocks ---

type mockStore struct{ mock.Mock }

func (m *mockStore) Put(ctx context.Context, rec *store.Record) error {
	return m.Called(ctx, rec).Error(0)
}
func (m *mockStore) QueryType(ctx context.Context, gsiType string) ([]store.Record, error) {
	args := m.Called(ctx, gsiType)
	if r, _ := args.Get(0).([]store.Record); r != nil {
		return r, args.Error(1)
	}
	return nil, args.Error(1)
}

type mockSigner struct{ mock.Mock }

func (m *mockSigner) Sign(userID string) (string, error) {
	args := m.Called(userID)
	return args.String(0), args.Error(1)
}

func profileRecord(t *testing.T, userID, name, password string) store.Record {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	pk, sk := store.UserProfileKey(userID)
	return store.Record{PK: pk, SK: sk, GSIType: store.TypeUser, UserID: userID, Name: name, PasswordHash: string(hash)}
}

// --- Register ---

func TestRegister_Validation(t *testing.T) {
	st := &mockStore{}
	svc := NewService(st, &mockSigner{})

	tests := []struct {
		name string
		req  domain.RegisterRequest
	}{
		{"missing name", domain.RegisterRequest{Password: "longenough"}},
		{"missing password", domain.RegisterRequest{Name: "alice"}},
		{"short password", domain.RegisterRequest{Name: "alice", Password: "short"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := svc.Register(context.Background(), tt.req)
			assert.ErrorIs(t, err, domain.ErrBadRequest)
		})
	}
	st.AssertNotCalled(t, "Put", mock.Anything, mock.Anything)
}

func TestRegister_NameTaken(t *testing.T) {
	st := &mockStore{}
	st.On("QueryType", mock.Anything, store.TypeUser).Return([]store.Record{
		profileRecord(t, "u1", "alice", "password1"),
	}, nil)

	svc := NewService(st, &mockSigner{})
	_, _, err := svc.Register(context.Background(), domain.RegisterRequest{Name: "alice", Password: "password1"})
	assert.ErrorIs(t, err, domain.ErrConflict)
	st.AssertNotCalled(t, "Put", mock.Anything, mock.Anything)
}

func TestRegister_Success(t *testing.T) {
	st := &mockStore{}
	st.On("QueryType", mock.Anything, store.TypeUser).Return([]store.Record{}, nil)
	var put *store.Record
	st.On("Put", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		put = args.Get(1).(*store.Record)
	}).Return(nil)

	signer := &mockSigner{}
	signer.On("Sign", mock.Anything).Return("tok", nil)

	svc := NewService(st, signer)
	u, token, err := svc.Register(context.Background(), domain.RegisterRequest{Name: "alice", Password: "password1"})
	require.NoError(t, err)
	assert.Equal(t, "tok", token)
	assert.Equal(t, "alice", u.Name)
	assert.NotEmpty(t, u.UserID)

	require.NotNil(t, put)
	assert.Equal(t, store.UserPartition(u.UserID), put.PK)
	assert.Equal(t, store.ProfileSortKey, put.SK)
	assert.Equal(t, store.TypeUser, put.GSIType)
	// Only the bcrypt hash is stored, never the raw password.
	assert.NotEqual(t, "password1", put.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(put.PasswordHash), []byte("password1")))
}

// --- Login ---

func TestLogin_UnknownUser(t *testing.T) {
	st := &mockStore{}
	st.On("QueryType", mock.Anything, store.TypeUser).Return([]store.Record{}, nil)

	svc := NewService(st, &mockSigner{})
	_, _, err := svc.Login(context.Background(), domain.LoginRequest{Name: "ghost", Password: "whatever1"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestLogin_WrongPassword(t *testing.T) {
	st := &mockStore{}
	st.On("QueryType", mock.Anything, store.TypeUser).Return([]store.Record{
		profileRecord(t, "u1", "alice", "password1"),
	}, nil)

	svc := NewService(st, &mockSigner{})
	_, _, err := svc.Login(context.Background(), domain.LoginRequest{Name: "alice", Password: "wrongpass"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestLogin_Success(t *testing.T) {
	st := &mockStore{}
	st.On("QueryType", mock.Anything, store.TypeUser).Return([]store.Record{
		profileRecord(t, "u1", "alice", "password1"),
	}, nil)

	signer := &mockSigner{}
	signer.On("Sign", "u1").Return("tok", nil)

	svc := NewService(st, signer)
	u, token, err := svc.Login(context.Background(), domain.LoginRequest{Name: "alice", Password: "password1"})
	require.NoError(t, err)
	assert.Equal(t, "tok", token)
	assert.Equal(t, "u1", u.UserID)
	signer.AssertCalled(t, "Sign", "u1")
}

func TestLogin_StoreUnavailable(t *testing.T) {
	st := &mockStore{}
	st.On("QueryType", mock.Anything, store.TypeUser).Return(nil, domain.ErrStoreUnavailable)

	svc := NewService(st, &mockSigner{})
	_, _, err := svc.Login(context.Background(), domain.LoginRequest{Name: "alice", Password: "password1"})
	assert.ErrorIs(t, err, domain.ErrStoreUnavailable)
}
