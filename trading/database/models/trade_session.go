package models

import (
	"time"

	"github.com/uptrace/bun"
)

type TradeSessionStatus string

const (
	TradeSessionPending   TradeSessionStatus = "pending_acceptance"
	TradeSessionActive    TradeSessionStatus = "active"
	TradeSessionCompleted TradeSessionStatus = "completed"
	TradeSessionCancelled TradeSessionStatus = "cancelled_by_initiator"
	TradeSessionRejected  TradeSessionStatus = "rejected_by_receiver"
	TradeSessionExpired   TradeSessionStatus = "expired"
)

// IsTerminal reports whether no further transitions are allowed.
func (s TradeSessionStatus) IsTerminal() bool {
	switch s {
	case TradeSessionCompleted, TradeSessionCancelled, TradeSessionRejected, TradeSessionExpired:
		return true
	}
	return false
}

// CanTransitionTo reports whether the status may move to next.
func (s TradeSessionStatus) CanTransitionTo(next TradeSessionStatus) bool {
	switch s {
	case TradeSessionPending:
		switch next {
		case TradeSessionActive, TradeSessionRejected, TradeSessionCancelled, TradeSessionExpired:
			return true
		}
	case TradeSessionActive:
		return next == TradeSessionCompleted
	}
	return false
}

// TradeSession is the persistent record of an initiated trade between exactly
// two users. ChannelRef stays empty until the messaging channel is
// provisioned; it can be relinked lazily if the first link attempt fails.
type TradeSession struct {
	bun.BaseModel `bun:"table:trade_sessions,alias:ts"`

	ID          int64              `bun:"id,pk,autoincrement"`
	TradeID     string             `bun:"trade_id,notnull,unique"`
	InitiatorID string             `bun:"initiator_id,notnull"`
	ReceiverID  string             `bun:"receiver_id,notnull"`
	Status      TradeSessionStatus `bun:"status,notnull"`
	ChannelRef  string             `bun:"channel_ref,type:text,default:''"`
	ExpiresAt   time.Time          `bun:"expires_at,notnull"`
	CreatedAt   time.Time          `bun:"created_at,notnull,default:current_timestamp"`
	UpdatedAt   time.Time          `bun:"updated_at,notnull"`

	LineItems []*TradeLineItem `bun:"rel:has-many,join:id=session_id"`
}

// HasParticipant reports whether userID is one of the two trading parties.
func (t *TradeSession) HasParticipant(userID string) bool {
	return t.InitiatorID == userID || t.ReceiverID == userID
}
