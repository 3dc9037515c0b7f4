package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-chat-nosql/internal/domain"
)

// SeedChannel describes one default channel created at startup.
type SeedChannel struct {
	Name     string
	IsLocked bool
}

// SystemCreatorID marks channels created by startup seeding rather than a user.
const SystemCreatorID = "system"

// EnsureChannels creates each channel's META row unless it already exists.
// Safe to call on every startup.
func EnsureChannels(ctx context.Context, st Store, channels []SeedChannel) error {
	for _, ch := range channels {
		pk, sk := ChannelMetaKey(ch.Name)
		_, err := st.Get(ctx, pk, sk)
		if err == nil {
			continue
		}
		if !errors.Is(err, domain.ErrNotFound) {
			return fmt.Errorf("check channel %q: %w", ch.Name, err)
		}
		rec := &Record{
			PK:       pk,
			SK:       sk,
			GSIType:  TypeChannel,
			Name:     ch.Name,
			IsLocked:  ch.IsLocked,
			CreatorID: SystemCreatorID,
		}
		if err := st.Put(ctx, rec); err != nil {
			return fmt.Errorf("seed channel %q: %w", ch.Name, err)
		}
	}
	return nil
}
