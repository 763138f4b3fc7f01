// Package messaging wraps the external chat backend that hosts the two-party
// channels attached to trade sessions. Only the capabilities the trade engine
// relies on are exposed; the concrete wire protocol stays behind Client.
package messaging

import (
	"context"
	"errors"
	"strings"
)

// ErrChannelNotFound is returned when the backend has no channel for the
// given reference.
var ErrChannelNotFound = errors.New("channel not found")

// Channel is the subset of backend channel state the engine reads.
type Channel struct {
	Ref     string
	URL     string
	Members []string
}

// HasMember reports whether userID is currently a channel member.
func (c *Channel) HasMember(userID string) bool {
	for _, m := range c.Members {
		if m == userID {
			return true
		}
	}
	return false
}

// Metadata travels with a channel at creation time so backend-side records
// can be traced back to the owning trade.
type Metadata struct {
	TradeID string `json:"trade_id"`
	Kind    string `json:"kind"`
}

type Client interface {
	CreateChannel(ctx context.Context, participantIDs []string, meta Metadata) (string, error)
	GetChannel(ctx context.Context, channelRef string) (*Channel, error)
	InviteMembers(ctx context.Context, channelRef string, userIDs []string) error
	DeleteChannel(ctx context.Context, channelRef string) error
}

const placeholderPrefix = "pending-trade-"

// PlaceholderRef returns the provisional channel reference stored on a chat
// session before the backend has assigned a real channel.
func PlaceholderRef(tradeID string) string {
	return placeholderPrefix + tradeID
}

// IsPlaceholder reports whether ref is a provisional reference rather than a
// backend-assigned channel URL. The dedup pass keys on this distinction.
func IsPlaceholder(ref string) bool {
	return ref == "" || strings.HasPrefix(ref, placeholderPrefix)
}
