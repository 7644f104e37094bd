package booking

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"

	"photosite/internal/domain"
	"photosite/internal/store"
)

type MockRecordStore struct {
	mock.Mock
}

func (m *MockRecordStore) List(ctx context.Context, collection string, opts store.ListOptions) ([]store.Record, error) {
	args := m.Called(ctx, collection, opts)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]store.Record), args.Error(1)
}

func (m *MockRecordStore) Get(ctx context.Context, collection, id string) (store.Record, error) {
	args := m.Called(ctx, collection, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(store.Record), args.Error(1)
}

func (m *MockRecordStore) Add(ctx context.Context, collection string, rec store.Record) (string, error) {
	args := m.Called(ctx, collection, rec)
	return args.String(0), args.Error(1)
}

func (m *MockRecordStore) Update(ctx context.Context, collection, id string, patch store.Record) (store.Record, error) {
	args := m.Called(ctx, collection, id, patch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(store.Record), args.Error(1)
}

func (m *MockRecordStore) Delete(ctx context.Context, collection, id string) error {
	args := m.Called(ctx, collection, id)
	return args.Error(0)
}

type MockNotifier struct {
	mock.Mock
	sent chan *domain.Booking
}

func newMockNotifier() *MockNotifier {
	return &MockNotifier{sent: make(chan *domain.Booking, 1)}
}

func (m *MockNotifier) Send(ctx context.Context, b *domain.Booking) error {
	args := m.Called(ctx, b)
	m.sent <- b
	return args.Error(0)
}

func validRequest() CreateBookingRequest {
	return CreateBookingRequest{
		Name:      "Priya Sharma",
		Phone:     "987-654-3210",
		Email:     "priya@example.com",
		EventType: "Wedding",
		Date:      time.Now().UTC().AddDate(0, 1, 0).Format("2006-01-02"),
		Message:   "Outdoor ceremony",
	}
}

func TestService_Create_Success(t *testing.T) {
	mockStore := new(MockRecordStore)
	mockStore.On("Add", mock.Anything, store.CollectionBookings, mock.Anything).Return("bk-1", nil)

	notifs := newMockNotifier()
	notifs.On("Send", mock.Anything, mock.Anything).Return(nil)

	svc := NewService(mockStore, notifs, zap.NewNop())

	b, err := svc.Create(context.Background(), validRequest())

	assert.NoError(t, err)
	assert.Equal(t, "bk-1", b.ID)
	assert.Equal(t, domain.BookingPending, b.Status)
	mockStore.AssertExpectations(t)

	select {
	case sent := <-notifs.sent:
		assert.Equal(t, "bk-1", sent.ID)
	case <-time.After(2 * time.Second):
		t.Fatal("notification was never attempted")
	}
}

func TestService_Create_NotificationFailureDoesNotBlock(t *testing.T) {
	mockStore := new(MockRecordStore)
	mockStore.On("Add", mock.Anything, store.CollectionBookings, mock.Anything).Return("bk-2", nil)

	notifs := newMockNotifier()
	notifs.On("Send", mock.Anything, mock.Anything).Return(errors.New("smtp down"))

	svc := NewService(mockStore, notifs, zap.NewNop())

	b, err := svc.Create(context.Background(), validRequest())

	assert.NoError(t, err)
	assert.Equal(t, "bk-2", b.ID)
	<-notifs.sent
}

func TestService_Create_ShortPhoneFailsBeforeWrite(t *testing.T) {
	mockStore := new(MockRecordStore)
	svc := NewService(mockStore, nil, zap.NewNop())

	req := validRequest()
	req.Phone = "123"

	_, err := svc.Create(context.Background(), req)

	var ve *ValidationError
	assert.ErrorAs(t, err, &ve)
	assert.Equal(t, "phone", ve.Field)
	mockStore.AssertNotCalled(t, "Add", mock.Anything, mock.Anything, mock.Anything)
}

func TestService_Create_MissingFields(t *testing.T) {
	svc := NewService(new(MockRecordStore), nil, zap.NewNop())

	cases := []struct {
		field  string
		mutate func(*CreateBookingRequest)
	}{
		{"name", func(r *CreateBookingRequest) { r.Name = "  " }},
		{"phone", func(r *CreateBookingRequest) { r.Phone = "" }},
		{"email", func(r *CreateBookingRequest) { r.Email = "" }},
		{"eventType", func(r *CreateBookingRequest) { r.EventType = "" }},
		{"date", func(r *CreateBookingRequest) { r.Date = "" }},
	}

	for _, tc := range cases {
		req := validRequest()
		tc.mutate(&req)

		_, err := svc.Create(context.Background(), req)

		var ve *ValidationError
		assert.ErrorAs(t, err, &ve, "field %s", tc.field)
		assert.Equal(t, tc.field, ve.Field)
	}
}

func TestService_Create_RejectsPastDateAndBadEmail(t *testing.T) {
	svc := NewService(new(MockRecordStore), nil, zap.NewNop())

	req := validRequest()
	req.Date = "2020-01-01"
	_, err := svc.Create(context.Background(), req)
	var ve *ValidationError
	assert.ErrorAs(t, err, &ve)
	assert.Equal(t, "date", ve.Field)

	req = validRequest()
	req.Email = "not-an-email"
	_, err = svc.Create(context.Background(), req)
	assert.ErrorAs(t, err, &ve)
	assert.Equal(t, "email", ve.Field)
}

func TestService_Create_AcceptsSeparatedPhone(t *testing.T) {
	mockStore := new(MockRecordStore)
	mockStore.On("Add", mock.Anything, store.CollectionBookings, mock.Anything).Return("bk-3", nil)
	svc := NewService(mockStore, nil, zap.NewNop())

	req := validRequest()
	req.Phone = "98 76 54-32-10"

	_, err := svc.Create(context.Background(), req)
	assert.NoError(t, err)
}

func TestService_SetStatus_AnyTransitionAllowed(t *testing.T) {
	mockStore := new(MockRecordStore)
	svc := NewService(mockStore, nil, zap.NewNop())

	for _, status := range []domain.BookingStatus{domain.BookingConfirmed, domain.BookingCancelled, domain.BookingPending} {
		rec := store.Record{"id": "bk-1", "status": string(status), "createdAt": time.Now().UTC()}
		mockStore.On("Update", mock.Anything, store.CollectionBookings, "bk-1",
			mock.MatchedBy(func(p store.Record) bool { return p.String("status") == string(status) }),
		).Return(rec, nil).Once()

		b, err := svc.SetStatus(context.Background(), "bk-1", status)
		assert.NoError(t, err)
		assert.Equal(t, status, b.Status)
	}
	mockStore.AssertExpectations(t)
}

func TestService_SetStatus_RejectsUnknownStatus(t *testing.T) {
	mockStore := new(MockRecordStore)
	svc := NewService(mockStore, nil, zap.NewNop())

	_, err := svc.SetStatus(context.Background(), "bk-1", "archived")

	assert.ErrorIs(t, err, ErrInvalidStatus)
	mockStore.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestService_SetStatus_NotFound(t *testing.T) {
	mockStore := new(MockRecordStore)
	mockStore.On("Update", mock.Anything, store.CollectionBookings, "missing", mock.Anything).
		Return(nil, store.ErrNotFound)
	svc := NewService(mockStore, nil, zap.NewNop())

	_, err := svc.SetStatus(context.Background(), "missing", domain.BookingConfirmed)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestService_Delete_NotFound(t *testing.T) {
	mockStore := new(MockRecordStore)
	mockStore.On("Delete", mock.Anything, store.CollectionBookings, "missing").Return(store.ErrNotFound)
	svc := NewService(mockStore, nil, zap.NewNop())

	err := svc.Delete(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestService_List_DegradesToEmptyOnBackendFailure(t *testing.T) {
	mockStore := new(MockRecordStore)
	mockStore.On("List", mock.Anything, store.CollectionBookings, mock.Anything).
		Return(nil, errors.New("backend unreachable"))
	svc := NewService(mockStore, nil, zap.NewNop())

	got := svc.List(context.Background())

	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestService_Stats_CountsPerStatus(t *testing.T) {
	now := time.Now().UTC()
	recs := []store.Record{
		{"id": "1", "status": "pending", "createdAt": now},
		{"id": "2", "status": "pending", "createdAt": now},
		{"id": "3", "status": "confirmed", "createdAt": now},
		{"id": "4", "status": "cancelled", "createdAt": now},
	}

	mockStore := new(MockRecordStore)
	mockStore.On("List", mock.Anything, store.CollectionBookings, mock.Anything).Return(recs, nil)
	svc := NewService(mockStore, nil, zap.NewNop())

	stats := svc.Stats(context.Background())

	assert.Equal(t, domain.BookingStats{Total: 4, Pending: 2, Confirmed: 1, Cancelled: 1}, stats)
}
