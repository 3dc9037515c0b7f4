package store

import (
	"sort"

	"github.com/go-chat-nosql/internal/domain"
)

// FormatMessages converts raw partition rows into the ordered, client-facing
// message list. It is the single formatting path shared by channel and DM
// reads: non-message rows (META and anything else without the MSG# prefix)
// are dropped, the rest are sorted by sort key ascending (lexical order is
// chronological order) and mapped to their external shape.
func FormatMessages(recs []Record) []domain.Message {
	msgs := make([]domain.Message, 0, len(recs))
	for i := range recs {
		ts, ok := MessageTimestamp(recs[i].SK)
		if !ok {
			continue
		}
		msgs = append(msgs, domain.Message{
			ID:        recs[i].SK,
			Content:   recs[i].Content,
			SenderID:  recs[i].SenderID,
			Timestamp: ts,
		})
	}
	sort.Slice(msgs, func(i, j int) bool { return msgs[i].ID < msgs[j].ID })
	return msgs
}
