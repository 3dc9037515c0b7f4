// Package store defines the single-table abstraction the chat core is built
// on: one generic key-value table addressed by (partition key, sort key) with
// a secondary index over entity type. Key construction, message formatting
// and the reference in-memory implementation live here; the DynamoDB-backed
// implementation lives in internal/infrastructure/dynamo.
package store

import "context"

// Record is one row of the single table. Which attributes are populated
// depends on the entity: PROFILE rows carry Name/UserID/PasswordHash, META
// rows carry Name/IsLocked/CreatorID, MSG# rows carry Content/SenderID.
// Message rows never set GSIType; only users and channels are type-indexed.
type Record struct {
	PK           string `dynamodbav:"pk" json:"pk"`
	SK           string `dynamodbav:"sk" json:"sk"`
	GSIType      string `dynamodbav:"GSIType,omitempty" json:"GSIType,omitempty"`
	Name         string `dynamodbav:"name,omitempty" json:"name,omitempty"`
	UserID       string `dynamodbav:"userId,omitempty" json:"userId,omitempty"`
	PasswordHash string `dynamodbav:"password,omitempty" json:"-"`
	Content      string `dynamodbav:"content,omitempty" json:"content,omitempty"`
	SenderID     string `dynamodbav:"senderId,omitempty" json:"senderId,omitempty"`
	IsLocked     bool   `dynamodbav:"isLocked,omitempty" json:"isLocked,omitempty"`
	CreatorID    string `dynamodbav:"creatorId,omitempty" json:"creatorId,omitempty"`
}

// Store is the table contract. Implementations map it onto a concrete
// database; the services above it never see database types.
//
// Error contract: a missing row surfaces as domain.ErrNotFound (wrapped);
// any underlying I/O failure surfaces as domain.ErrStoreUnavailable
// (wrapped) and is never retried here.
type Store interface {
	// Get fetches one row by its full primary key.
	Get(ctx context.Context, pk, sk string) (*Record, error)

	// Put upserts one row by (PK, SK). An existing row is overwritten
	// silently; there is no optimistic locking.
	Put(ctx context.Context, rec *Record) error

	// QueryPartition returns every row in a partition, sorted by sort key
	// ascending. Re-querying returns current state, not a snapshot.
	QueryPartition(ctx context.Context, pk string) ([]Record, error)

	// QueryType returns every row whose GSIType matches, in no particular
	// order. Backs directory listings only.
	QueryType(ctx context.Context, gsiType string) ([]Record, error)
}
