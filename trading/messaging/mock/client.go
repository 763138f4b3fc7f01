package mock

import (
	context "context"
	reflect "reflect"

	messaging "github.com/thong1990/t3turbo-sub000/trading/messaging"
	gomock "go.uber.org/mock/gomock"
)

// MockClient is a mock of Client interface.
type MockClient struct {
	ctrl     *gomock.Controller
	recorder *MockClientMockRecorder
	isgomock struct{}
}

// MockClientMockRecorder is the mock recorder for MockClient.
type MockClientMockRecorder struct {
	mock *MockClient
}

// NewMockClient creates a new mock instance.
func NewMockClient(ctrl *gomock.Controller) *MockClient {
	mock := &MockClient{ctrl: ctrl}
	mock.recorder = &MockClientMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockClient) EXPECT() *MockClientMockRecorder {
	return m.recorder
}

// CreateChannel mocks base method.
func (m *MockClient) CreateChannel(ctx context.Context, participantIDs []string, meta messaging.Metadata) (string, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "CreateChannel", ctx, participantIDs, meta)
	ret0, _ := ret[0].(string)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// CreateChannel indicates an expected call of CreateChannel.
func (mr *MockClientMockRecorder) CreateChannel(ctx, participantIDs, meta any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "CreateChannel", reflect.TypeOf((*MockClient)(nil).CreateChannel), ctx, participantIDs, meta)
}

// GetChannel mocks base method.
func (m *MockClient) GetChannel(ctx context.Context, channelRef string) (*messaging.Channel, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetChannel", ctx, channelRef)
	ret0, _ := ret[0].(*messaging.Channel)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetChannel indicates an expected call of GetChannel.
func (mr *MockClientMockRecorder) GetChannel(ctx, channelRef any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetChannel", reflect.TypeOf((*MockClient)(nil).GetChannel), ctx, channelRef)
}

// InviteMembers mocks base method.
func (m *MockClient) InviteMembers(ctx context.Context, channelRef string, userIDs []string) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "InviteMembers", ctx, channelRef, userIDs)
	ret0, _ := ret[0].(error)
	return ret0
}

// InviteMembers indicates an expected call of InviteMembers.
func (mr *MockClientMockRecorder) InviteMembers(ctx, channelRef, userIDs any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "InviteMembers", reflect.TypeOf((*MockClient)(nil).InviteMembers), ctx, channelRef, userIDs)
}

// DeleteChannel mocks base method.
func (m *MockClient) DeleteChannel(ctx context.Context, channelRef string) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "DeleteChannel", ctx, channelRef)
	ret0, _ := ret[0].(error)
	return ret0
}

// DeleteChannel indicates an expected call of DeleteChannel.
func (mr *MockClientMockRecorder) DeleteChannel(ctx, channelRef any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "DeleteChannel", reflect.TypeOf((*MockClient)(nil).DeleteChannel), ctx, channelRef)
}
