package mock

import (
	context "context"
	reflect "reflect"

	models "github.com/thong1990/t3turbo-sub000/trading/database/models"
	gomock "go.uber.org/mock/gomock"
)

// MockRepository is a mock of Repository interface.
type MockRepository struct {
	ctrl     *gomock.Controller
	recorder *MockRepositoryMockRecorder
	isgomock struct{}
}

// MockRepositoryMockRecorder is the mock recorder for MockRepository.
type MockRepositoryMockRecorder struct {
	mock *MockRepository
}

// NewMockRepository creates a new mock instance.
func NewMockRepository(ctrl *gomock.Controller) *MockRepository {
	mock := &MockRepository{ctrl: ctrl}
	mock.recorder = &MockRepositoryMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockRepository) EXPECT() *MockRepositoryMockRecorder {
	return m.recorder
}

// GetTradeableCards mocks base method.
func (m *MockRepository) GetTradeableCards(ctx context.Context, userID string) ([]*models.InventoryEntry, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetTradeableCards", ctx, userID)
	ret0, _ := ret[0].([]*models.InventoryEntry)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetTradeableCards indicates an expected call of GetTradeableCards.
func (mr *MockRepositoryMockRecorder) GetTradeableCards(ctx, userID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetTradeableCards", reflect.TypeOf((*MockRepository)(nil).GetTradeableCards), ctx, userID)
}

// GetWishlist mocks base method.
func (m *MockRepository) GetWishlist(ctx context.Context, userID string) ([]*models.InventoryEntry, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetWishlist", ctx, userID)
	ret0, _ := ret[0].([]*models.InventoryEntry)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetWishlist indicates an expected call of GetWishlist.
func (mr *MockRepositoryMockRecorder) GetWishlist(ctx, userID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetWishlist", reflect.TypeOf((*MockRepository)(nil).GetWishlist), ctx, userID)
}

// GetUsersWantingCards mocks base method.
func (m *MockRepository) GetUsersWantingCards(ctx context.Context, cardIDs []int64, excludeUserID string) ([]models.CardInterest, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetUsersWantingCards", ctx, cardIDs, excludeUserID)
	ret0, _ := ret[0].([]models.CardInterest)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetUsersWantingCards indicates an expected call of GetUsersWantingCards.
func (mr *MockRepositoryMockRecorder) GetUsersWantingCards(ctx, cardIDs, excludeUserID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetUsersWantingCards", reflect.TypeOf((*MockRepository)(nil).GetUsersWantingCards), ctx, cardIDs, excludeUserID)
}

// GetUsersSupplyingCards mocks base method.
func (m *MockRepository) GetUsersSupplyingCards(ctx context.Context, cardIDs []int64, excludeUserID string) ([]models.CardSupply, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetUsersSupplyingCards", ctx, cardIDs, excludeUserID)
	ret0, _ := ret[0].([]models.CardSupply)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetUsersSupplyingCards indicates an expected call of GetUsersSupplyingCards.
func (mr *MockRepositoryMockRecorder) GetUsersSupplyingCards(ctx, cardIDs, excludeUserID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetUsersSupplyingCards", reflect.TypeOf((*MockRepository)(nil).GetUsersSupplyingCards), ctx, cardIDs, excludeUserID)
}

// GetUserNames mocks base method.
func (m *MockRepository) GetUserNames(ctx context.Context, userIDs []string) (map[string]string, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetUserNames", ctx, userIDs)
	ret0, _ := ret[0].(map[string]string)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetUserNames indicates an expected call of GetUserNames.
func (mr *MockRepositoryMockRecorder) GetUserNames(ctx, userIDs any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetUserNames", reflect.TypeOf((*MockRepository)(nil).GetUserNames), ctx, userIDs)
}
