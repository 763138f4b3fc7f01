package session

import (
	"context"
	"errors"
	"testing"

	gomock "go.uber.org/mock/gomock"

	"github.com/thong1990/t3turbo-sub000/trading/database/models"
	storemock "github.com/thong1990/t3turbo-sub000/trading/session/mock"
)

func pendingTrade() *models.TradeSession {
	return &models.TradeSession{
		ID:          7,
		TradeID:     "trade-abc",
		InitiatorID: initiator,
		ReceiverID:  receiver,
		Status:      models.TradeSessionPending,
	}
}

func TestLifecycle(t *testing.T) {
	tests := []struct {
		name    string
		call    func(l *Lifecycle) error
		setup   func(trades *storemock.MockTradeStore)
		wantErr error
	}{
		{
			name: "receiver accepts pending trade",
			call: func(l *Lifecycle) error { return l.Accept(context.Background(), "trade-abc", receiver) },
			setup: func(trades *storemock.MockTradeStore) {
				trades.EXPECT().GetByTradeID(gomock.Any(), "trade-abc").Return(pendingTrade(), nil)
				trades.EXPECT().UpdateStatus(gomock.Any(), int64(7), models.TradeSessionActive).Return(nil)
			},
		},
		{
			name: "initiator cannot accept",
			call: func(l *Lifecycle) error { return l.Accept(context.Background(), "trade-abc", initiator) },
			setup: func(trades *storemock.MockTradeStore) {
				trades.EXPECT().GetByTradeID(gomock.Any(), "trade-abc").Return(pendingTrade(), nil)
			},
			wantErr: ErrNotParticipant,
		},
		{
			name: "receiver declines pending trade",
			call: func(l *Lifecycle) error { return l.Decline(context.Background(), "trade-abc", receiver) },
			setup: func(trades *storemock.MockTradeStore) {
				trades.EXPECT().GetByTradeID(gomock.Any(), "trade-abc").Return(pendingTrade(), nil)
				trades.EXPECT().UpdateStatus(gomock.Any(), int64(7), models.TradeSessionRejected).Return(nil)
			},
		},
		{
			name: "initiator cancels pending trade",
			call: func(l *Lifecycle) error { return l.Cancel(context.Background(), "trade-abc", initiator) },
			setup: func(trades *storemock.MockTradeStore) {
				trades.EXPECT().GetByTradeID(gomock.Any(), "trade-abc").Return(pendingTrade(), nil)
				trades.EXPECT().UpdateStatus(gomock.Any(), int64(7), models.TradeSessionCancelled).Return(nil)
			},
		},
		{
			name: "outsider cannot cancel",
			call: func(l *Lifecycle) error { return l.Cancel(context.Background(), "trade-abc", "user-99") },
			setup: func(trades *storemock.MockTradeStore) {
				trades.EXPECT().GetByTradeID(gomock.Any(), "trade-abc").Return(pendingTrade(), nil)
			},
			wantErr: ErrNotParticipant,
		},
		{
			name: "active trade completes",
			call: func(l *Lifecycle) error { return l.Complete(context.Background(), "trade-abc", initiator) },
			setup: func(trades *storemock.MockTradeStore) {
				trade := pendingTrade()
				trade.Status = models.TradeSessionActive
				trades.EXPECT().GetByTradeID(gomock.Any(), "trade-abc").Return(trade, nil)
				trades.EXPECT().UpdateStatus(gomock.Any(), int64(7), models.TradeSessionCompleted).Return(nil)
			},
		},
		{
			name: "pending trade cannot complete",
			call: func(l *Lifecycle) error { return l.Complete(context.Background(), "trade-abc", initiator) },
			setup: func(trades *storemock.MockTradeStore) {
				trades.EXPECT().GetByTradeID(gomock.Any(), "trade-abc").Return(pendingTrade(), nil)
			},
			wantErr: ErrInvalidTransition,
		},
		{
			name: "terminal trade rejects further transitions",
			call: func(l *Lifecycle) error { return l.Accept(context.Background(), "trade-abc", receiver) },
			setup: func(trades *storemock.MockTradeStore) {
				trade := pendingTrade()
				trade.Status = models.TradeSessionExpired
				trades.EXPECT().GetByTradeID(gomock.Any(), "trade-abc").Return(trade, nil)
			},
			wantErr: ErrInvalidTransition,
		},
		{
			name: "missing trade",
			call: func(l *Lifecycle) error { return l.Accept(context.Background(), "trade-gone", receiver) },
			setup: func(trades *storemock.MockTradeStore) {
				trades.EXPECT().GetByTradeID(gomock.Any(), "trade-gone").Return(nil, nil)
			},
			wantErr: ErrTradeNotFound,
		},
		{
			name: "store failure propagates",
			call: func(l *Lifecycle) error { return l.Accept(context.Background(), "trade-abc", receiver) },
			setup: func(trades *storemock.MockTradeStore) {
				trades.EXPECT().GetByTradeID(gomock.Any(), "trade-abc").Return(nil, errors.New("db down"))
			},
			wantErr: errors.New("db down"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			trades := storemock.NewMockTradeStore(ctrl)
			tt.setup(trades)

			err := tt.call(NewLifecycle(trades))
			if tt.wantErr == nil {
				if err != nil {
					t.Fatalf("lifecycle call error = %v", err)
				}
				return
			}
			if err == nil {
				t.Fatal("lifecycle call expected error, got nil")
			}
			for _, sentinel := range []error{ErrNotParticipant, ErrInvalidTransition, ErrTradeNotFound} {
				if errors.Is(tt.wantErr, sentinel) && !errors.Is(err, sentinel) {
					t.Fatalf("lifecycle call error = %v, want %v", err, sentinel)
				}
			}
		})
	}
}
