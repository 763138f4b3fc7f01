package mock

import (
	context "context"
	reflect "reflect"

	models "github.com/thong1990/t3turbo-sub000/trading/database/models"
	gomock "go.uber.org/mock/gomock"
)

// MockTradeStore is a mock of TradeStore interface.
type MockTradeStore struct {
	ctrl     *gomock.Controller
	recorder *MockTradeStoreMockRecorder
	isgomock struct{}
}

// MockTradeStoreMockRecorder is the mock recorder for MockTradeStore.
type MockTradeStoreMockRecorder struct {
	mock *MockTradeStore
}

// NewMockTradeStore creates a new mock instance.
func NewMockTradeStore(ctrl *gomock.Controller) *MockTradeStore {
	mock := &MockTradeStore{ctrl: ctrl}
	mock.recorder = &MockTradeStoreMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockTradeStore) EXPECT() *MockTradeStoreMockRecorder {
	return m.recorder
}

// Create mocks base method.
func (m *MockTradeStore) Create(ctx context.Context, trade *models.TradeSession) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Create", ctx, trade)
	ret0, _ := ret[0].(error)
	return ret0
}

// Create indicates an expected call of Create.
func (mr *MockTradeStoreMockRecorder) Create(ctx, trade any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Create", reflect.TypeOf((*MockTradeStore)(nil).Create), ctx, trade)
}

// AddLineItems mocks base method.
func (m *MockTradeStore) AddLineItems(ctx context.Context, items []*models.TradeLineItem) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "AddLineItems", ctx, items)
	ret0, _ := ret[0].(error)
	return ret0
}

// AddLineItems indicates an expected call of AddLineItems.
func (mr *MockTradeStoreMockRecorder) AddLineItems(ctx, items any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "AddLineItems", reflect.TypeOf((*MockTradeStore)(nil).AddLineItems), ctx, items)
}

// GetByTradeID mocks base method.
func (m *MockTradeStore) GetByTradeID(ctx context.Context, tradeID string) (*models.TradeSession, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetByTradeID", ctx, tradeID)
	ret0, _ := ret[0].(*models.TradeSession)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetByTradeID indicates an expected call of GetByTradeID.
func (mr *MockTradeStoreMockRecorder) GetByTradeID(ctx, tradeID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetByTradeID", reflect.TypeOf((*MockTradeStore)(nil).GetByTradeID), ctx, tradeID)
}

// GetByChannelRef mocks base method.
func (m *MockTradeStore) GetByChannelRef(ctx context.Context, channelRef string) (*models.TradeSession, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetByChannelRef", ctx, channelRef)
	ret0, _ := ret[0].(*models.TradeSession)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetByChannelRef indicates an expected call of GetByChannelRef.
func (mr *MockTradeStoreMockRecorder) GetByChannelRef(ctx, channelRef any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetByChannelRef", reflect.TypeOf((*MockTradeStore)(nil).GetByChannelRef), ctx, channelRef)
}

// SetChannelRef mocks base method.
func (m *MockTradeStore) SetChannelRef(ctx context.Context, id int64, channelRef string) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "SetChannelRef", ctx, id, channelRef)
	ret0, _ := ret[0].(error)
	return ret0
}

// SetChannelRef indicates an expected call of SetChannelRef.
func (mr *MockTradeStoreMockRecorder) SetChannelRef(ctx, id, channelRef any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "SetChannelRef", reflect.TypeOf((*MockTradeStore)(nil).SetChannelRef), ctx, id, channelRef)
}

// UpdateStatus mocks base method.
func (m *MockTradeStore) UpdateStatus(ctx context.Context, id int64, status models.TradeSessionStatus) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "UpdateStatus", ctx, id, status)
	ret0, _ := ret[0].(error)
	return ret0
}

// UpdateStatus indicates an expected call of UpdateStatus.
func (mr *MockTradeStoreMockRecorder) UpdateStatus(ctx, id, status any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "UpdateStatus", reflect.TypeOf((*MockTradeStore)(nil).UpdateStatus), ctx, id, status)
}

// MockChatStore is a mock of ChatStore interface.
type MockChatStore struct {
	ctrl     *gomock.Controller
	recorder *MockChatStoreMockRecorder
	isgomock struct{}
}

// MockChatStoreMockRecorder is the mock recorder for MockChatStore.
type MockChatStoreMockRecorder struct {
	mock *MockChatStore
}

// NewMockChatStore creates a new mock instance.
func NewMockChatStore(ctrl *gomock.Controller) *MockChatStore {
	mock := &MockChatStore{ctrl: ctrl}
	mock.recorder = &MockChatStoreMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockChatStore) EXPECT() *MockChatStoreMockRecorder {
	return m.recorder
}

// Create mocks base method.
func (m *MockChatStore) Create(ctx context.Context, chat *models.ChatSession) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Create", ctx, chat)
	ret0, _ := ret[0].(error)
	return ret0
}

// Create indicates an expected call of Create.
func (mr *MockChatStoreMockRecorder) Create(ctx, chat any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Create", reflect.TypeOf((*MockChatStore)(nil).Create), ctx, chat)
}

// Update mocks base method.
func (m *MockChatStore) Update(ctx context.Context, chat *models.ChatSession) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Update", ctx, chat)
	ret0, _ := ret[0].(error)
	return ret0
}

// Update indicates an expected call of Update.
func (mr *MockChatStoreMockRecorder) Update(ctx, chat any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Update", reflect.TypeOf((*MockChatStore)(nil).Update), ctx, chat)
}

// GetActiveByTradeID mocks base method.
func (m *MockChatStore) GetActiveByTradeID(ctx context.Context, tradeID int64) (*models.ChatSession, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetActiveByTradeID", ctx, tradeID)
	ret0, _ := ret[0].(*models.ChatSession)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetActiveByTradeID indicates an expected call of GetActiveByTradeID.
func (mr *MockChatStoreMockRecorder) GetActiveByTradeID(ctx, tradeID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetActiveByTradeID", reflect.TypeOf((*MockChatStore)(nil).GetActiveByTradeID), ctx, tradeID)
}

// ListByTradeID mocks base method.
func (m *MockChatStore) ListByTradeID(ctx context.Context, tradeID int64) ([]*models.ChatSession, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ListByTradeID", ctx, tradeID)
	ret0, _ := ret[0].([]*models.ChatSession)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// ListByTradeID indicates an expected call of ListByTradeID.
func (mr *MockChatStoreMockRecorder) ListByTradeID(ctx, tradeID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ListByTradeID", reflect.TypeOf((*MockChatStore)(nil).ListByTradeID), ctx, tradeID)
}

// Delete mocks base method.
func (m *MockChatStore) Delete(ctx context.Context, id int64) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Delete", ctx, id)
	ret0, _ := ret[0].(error)
	return ret0
}

// Delete indicates an expected call of Delete.
func (mr *MockChatStoreMockRecorder) Delete(ctx, id any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Delete", reflect.TypeOf((*MockChatStore)(nil).Delete), ctx, id)
}

// SetChannelRefByTradeID mocks base method.
func (m *MockChatStore) SetChannelRefByTradeID(ctx context.Context, tradeID int64, channelRef string) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "SetChannelRefByTradeID", ctx, tradeID, channelRef)
	ret0, _ := ret[0].(error)
	return ret0
}

// SetChannelRefByTradeID indicates an expected call of SetChannelRefByTradeID.
func (mr *MockChatStoreMockRecorder) SetChannelRefByTradeID(ctx, tradeID, channelRef any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "SetChannelRefByTradeID", reflect.TypeOf((*MockChatStore)(nil).SetChannelRefByTradeID), ctx, tradeID, channelRef)
}
