package store

import (
	"crypto/rand"
	"strings"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
)

// Single-table key prefixes and fixed sort keys.
const (
	channelPrefix = "CHANNEL#"
	userPrefix    = "USER#"
	dmPrefix      = "DM#"
	msgPrefix     = "MSG#"

	MetaSortKey    = "META"
	ProfileSortKey = "PROFILE"
)

// GSIType values for the secondary index. Message rows are never indexed.
const (
	TypeUser    = "USER"
	TypeChannel = "CHANNEL"
)

// msgTimeLayout is fixed-width so lexical comparison of sort keys equals
// chronological comparison. Millisecond precision matches the timestamps
// already present in the table.
const msgTimeLayout = "2006-01-02T15:04:05.000Z"

// ChannelPartition returns the partition key for a channel.
func ChannelPartition(name string) string { return channelPrefix + name }

// ChannelMetaKey returns the primary key of a channel's META row.
func ChannelMetaKey(name string) (pk, sk string) {
	return ChannelPartition(name), MetaSortKey
}

// ChannelMessageKey returns the primary key for a channel message sent at ts.
func ChannelMessageKey(name string, ts time.Time) (pk, sk string) {
	return ChannelPartition(name), MessageSortKey(ts)
}

// ChannelNameFromPartition recovers the external channel id from a partition key.
func ChannelNameFromPartition(pk string) string {
	return strings.TrimPrefix(pk, channelPrefix)
}

// UserPartition returns the partition key for a user profile.
func UserPartition(userID string) string { return userPrefix + userID }

// UserProfileKey returns the primary key of a user's PROFILE row.
func UserProfileKey(userID string) (pk, sk string) {
	return UserPartition(userID), ProfileSortKey
}

// DMPartition returns the partition key shared by both participants of a DM
// thread. The pair is ordered lexicographically so that
// DMPartition(a, b) == DMPartition(b, a) for every a != b; breaking this
// symmetry would split one conversation into two independent partitions.
func DMPartition(userA, userB string) string {
	if userB < userA {
		userA, userB = userB, userA
	}
	return dmPrefix + userA + "#" + userB
}

// MessageSortKey returns the sort key for a message sent at ts, without a
// uniqueness suffix. Use NewMessageSortKey for writes.
func MessageSortKey(ts time.Time) string {
	return msgPrefix + ts.UTC().Format(msgTimeLayout)
}

// entropy generates strictly increasing ULIDs within the process, so two
// writes landing in the same millisecond still produce distinct, send-ordered
// sort keys instead of one silently overwriting the other.
var (
	entropyMu sync.Mutex
	entropy   = ulid.Monotonic(rand.Reader, 0)
)

// NewMessageSortKey returns a unique sort key for a message sent at ts:
// "MSG#<iso-timestamp>#<ulid>". Lexical order is send order.
func NewMessageSortKey(ts time.Time) string {
	entropyMu.Lock()
	u := ulid.MustNew(ulid.Timestamp(ts), entropy)
	entropyMu.Unlock()
	return MessageSortKey(ts) + "#" + u.String()
}

// IsMessageSortKey reports whether sk addresses a message row.
func IsMessageSortKey(sk string) bool { return strings.HasPrefix(sk, msgPrefix) }

// MessageTimestamp extracts the ISO-8601 timestamp segment from a message
// sort key. Returns false if sk is not a message sort key.
func MessageTimestamp(sk string) (string, bool) {
	if !IsMessageSortKey(sk) {
		return "", false
	}
	ts := strings.TrimPrefix(sk, msgPrefix)
	if i := strings.IndexByte(ts, '#'); i >= 0 {
		ts = ts[:i]
	}
	return ts, true
}
