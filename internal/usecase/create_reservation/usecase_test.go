package create_reservation

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/golab368/REPL-backend-tenis/internal/domain"
	reservationRepo "github.com/golab368/REPL-backend-tenis/internal/infra/storage/reservation"
	findNearestSlot "github.com/golab368/REPL-backend-tenis/internal/usecase/find_nearest_slot"
	"github.com/golab368/REPL-backend-tenis/pkg/types"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

// directTxManager выполняет fn без настоящей транзакции
type directTxManager struct{}

func (directTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fixedTime struct {
	now time.Time
}

func (f fixedTime) Now() time.Time {
	return f.now
}

type mockRepo struct {
	overlapping *domain.Reservation
	weeklyCount int
	created     *domain.Reservation
}

func (m *mockRepo) Create(_ context.Context, res *domain.Reservation) (*domain.Reservation, error) {
	out := *res
	out.ID = 42
	out.CreatedAt = time.Date(2026, 6, 15, 9, 0, 0, 0, time.UTC)
	m.created = &out
	return &out, nil
}

func (m *mockRepo) FindOverlapping(_ context.Context, _ time.Time, _, _ types.TimeString) (*domain.Reservation, error) {
	if m.overlapping == nil {
		return nil, reservationRepo.ErrReservationNotFound
	}
	return m.overlapping, nil
}

func (m *mockRepo) CountForNameInRange(_ context.Context, _ string, _, _ time.Time) (int, error) {
	return m.weeklyCount, nil
}

type mockSlotFinder struct {
	slot *domain.Slot
	err  error
}

func (m *mockSlotFinder) Execute(_ context.Context, _ *findNearestSlot.Request) (*domain.Slot, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.slot, nil
}

var (
	// 2026-06-15 понедельник
	testDate = time.Date(2026, 6, 15, 0, 0, 0, 0, time.UTC)
	testNow  = time.Date(2026, 6, 15, 9, 0, 0, 0, time.UTC)
)

func newTestUseCase(repo *mockRepo, finder *mockSlotFinder) *UseCase {
	uc := NewUseCase(repo, finder, directTxManager{}, nopLogger{})
	uc.timeProvider = fixedTime{now: testNow}
	return uc
}

func validRequest() *Request {
	return &Request{
		Name:            "Alice",
		Date:            testDate,
		StartTime:       "15:00",
		DurationMinutes: 60,
	}
}

func TestExecute_Success(t *testing.T) {
	repo := &mockRepo{}
	uc := newTestUseCase(repo, &mockSlotFinder{})

	resp, err := uc.Execute(context.Background(), validRequest())

	require.NoError(t, err)
	assert.Equal(t, int64(42), resp.ID)
	assert.Equal(t, "Alice", resp.Name)
	assert.Equal(t, types.TimeString("15:00"), resp.StartTime)
	assert.Equal(t, types.TimeString("16:00"), resp.EndTime)
	assert.Equal(t, 60, resp.DurationMinutes)
	require.NotNil(t, repo.created)
	assert.Equal(t, testDate, repo.created.Date)
}

func TestExecute_InvalidDuration(t *testing.T) {
	uc := newTestUseCase(&mockRepo{}, &mockSlotFinder{})

	for _, minutes := range []int{0, 15, 45, 120, -30} {
		req := validRequest()
		req.DurationMinutes = minutes

		_, err := uc.Execute(context.Background(), req)
		assert.ErrorIs(t, err, ErrInvalidDuration, "duration %d", minutes)
	}
}

func TestExecute_AllowedDurations(t *testing.T) {
	for _, minutes := range []int{30, 60, 90} {
		req := validRequest()
		req.DurationMinutes = minutes

		uc := newTestUseCase(&mockRepo{}, &mockSlotFinder{})
		_, err := uc.Execute(context.Background(), req)
		assert.NoError(t, err, "duration %d", minutes)
	}
}

func TestExecute_LeadTimeBoundary(t *testing.T) {
	// Сейчас 09:00; ровно через час (10:00) отклоняется, 10:01 проходит
	uc := newTestUseCase(&mockRepo{}, &mockSlotFinder{})

	req := validRequest()
	req.StartTime = "10:00"
	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrLeadTimeTooShort)

	req = validRequest()
	req.StartTime = "10:01"
	_, err = uc.Execute(context.Background(), req)
	assert.NoError(t, err)
}

func TestExecute_LeadTimePast(t *testing.T) {
	uc := newTestUseCase(&mockRepo{}, &mockSlotFinder{})

	req := validRequest()
	req.StartTime = "08:00"

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrLeadTimeTooShort)
}

func TestExecute_SlotCrossesMidnight(t *testing.T) {
	uc := newTestUseCase(&mockRepo{}, &mockSlotFinder{})

	req := validRequest()
	req.StartTime = "23:45"
	req.DurationMinutes = 30

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidTimeSlot)
}

func TestExecute_ConflictWithSuggestion(t *testing.T) {
	repo := &mockRepo{
		overlapping: &domain.Reservation{
			ID:        7,
			Name:      "Alice",
			Date:      testDate,
			StartTime: "15:00",
			EndTime:   "16:00",
		},
	}
	suggested, newSlotErr := domain.NewSlot(testDate, "16:01", 60)
	require.NoError(t, newSlotErr)
	uc := newTestUseCase(repo, &mockSlotFinder{slot: &suggested})

	req := validRequest()
	req.Name = "Bob"
	req.StartTime = "15:30"

	_, err := uc.Execute(context.Background(), req)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrSlotNotAvailable)

	var conflict *SlotConflictError
	require.ErrorAs(t, err, &conflict)
	require.NotNil(t, conflict.Suggested)
	assert.Equal(t, types.TimeString("16:01"), conflict.Suggested.StartTime)
	assert.Equal(t, types.TimeString("17:01"), conflict.Suggested.EndTime)
}

func TestExecute_ConflictWithoutAlternative(t *testing.T) {
	repo := &mockRepo{
		overlapping: &domain.Reservation{StartTime: "22:00", EndTime: "23:30"},
	}
	uc := newTestUseCase(repo, &mockSlotFinder{err: findNearestSlot.ErrNoSlotAvailable})

	req := validRequest()
	req.StartTime = "22:30"
	req.DurationMinutes = 90

	_, err := uc.Execute(context.Background(), req)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrSlotNotAvailable)

	var conflict *SlotConflictError
	require.ErrorAs(t, err, &conflict)
	assert.Nil(t, conflict.Suggested)
}

func TestExecute_WeeklyQuotaExceeded(t *testing.T) {
	uc := newTestUseCase(&mockRepo{weeklyCount: 2}, &mockSlotFinder{})

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrWeeklyQuotaExceeded)
}

func TestExecute_QuotaCheckedAfterAvailability(t *testing.T) {
	// Конфликт слота сообщается раньше квоты: даже при исчерпанной квоте
	// занятый слот дает отказ по конфликту
	repo := &mockRepo{
		weeklyCount: 2,
		overlapping: &domain.Reservation{StartTime: "15:00", EndTime: "16:00"},
	}
	uc := newTestUseCase(repo, &mockSlotFinder{})

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrSlotNotAvailable)
	assert.NotErrorIs(t, err, ErrWeeklyQuotaExceeded)
}

func TestExecute_SundayNotLimitedByQuota(t *testing.T) {
	// Воскресенье лежит за правой границей окна Пн-Сб: квота не проверяется
	sunday := time.Date(2026, 6, 21, 0, 0, 0, 0, time.UTC)

	repo := &mockRepo{weeklyCount: 2}
	uc := newTestUseCase(repo, &mockSlotFinder{})

	req := validRequest()
	req.Date = sunday

	_, err := uc.Execute(context.Background(), req)
	assert.NoError(t, err)
}

func TestExecute_EmptyName(t *testing.T) {
	uc := newTestUseCase(&mockRepo{}, &mockSlotFinder{})

	req := validRequest()
	req.Name = "   "

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestExecute_SlotFinderFailure(t *testing.T) {
	repo := &mockRepo{
		overlapping: &domain.Reservation{StartTime: "15:00", EndTime: "16:00"},
	}
	uc := newTestUseCase(repo, &mockSlotFinder{err: errors.New("db down")})

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrInternal)
}
