package find_nearest_slot

import (
	"context"
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/golab368/REPL-backend-tenis/internal/domain"
	reservationRepo "github.com/golab368/REPL-backend-tenis/internal/infra/storage/reservation"
	"github.com/golab368/REPL-backend-tenis/pkg/types"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

// fakeRepo хранит брони одного дня в памяти и повторяет контракт
// репозитория: ErrReservationNotFound вместо пустого результата
type fakeRepo struct {
	reservations []*domain.Reservation
}

func newFakeRepo(date time.Time, slots ...[2]string) *fakeRepo {
	repo := &fakeRepo{}
	for i, s := range slots {
		repo.reservations = append(repo.reservations, &domain.Reservation{
			ID:        int64(i + 1),
			Name:      "test",
			Date:      domain.DateOnly(date),
			StartTime: types.TimeString(s[0]),
			EndTime:   types.TimeString(s[1]),
		})
	}
	sort.Slice(repo.reservations, func(i, j int) bool {
		return repo.reservations[i].StartTime.IsBefore(repo.reservations[j].StartTime)
	})
	return repo
}

func (f *fakeRepo) FindOverlapping(_ context.Context, date time.Time, start, end types.TimeString) (*domain.Reservation, error) {
	for _, res := range f.reservations {
		if domain.SameDay(res.Date, date) && res.Overlaps(start, end) {
			return res, nil
		}
	}
	return nil, reservationRepo.ErrReservationNotFound
}

func (f *fakeRepo) FindFirstFrom(_ context.Context, date time.Time, from types.TimeString) (*domain.Reservation, error) {
	for _, res := range f.reservations {
		if domain.SameDay(res.Date, date) && !res.StartTime.IsBefore(from) {
			return res, nil
		}
	}
	return nil, reservationRepo.ErrReservationNotFound
}

var testDate = time.Date(2026, 6, 15, 0, 0, 0, 0, time.UTC)

func TestExecute_EmptyDay(t *testing.T) {
	uc := NewUseCase(newFakeRepo(testDate), nopLogger{})

	slot, err := uc.Execute(context.Background(), &Request{
		Date:            testDate,
		From:            "10:00",
		DurationMinutes: 60,
	})

	require.NoError(t, err)
	assert.Equal(t, types.TimeString("10:00"), slot.StartTime)
	assert.Equal(t, types.TimeString("11:00"), slot.EndTime)
}

func TestExecute_SkipsRunningReservation(t *testing.T) {
	// Запрошенное время попадает внутрь существующей брони: курсор
	// сдвигается на её конец плюс минутный буфер
	uc := NewUseCase(newFakeRepo(testDate, [2]string{"15:00", "16:00"}), nopLogger{})

	slot, err := uc.Execute(context.Background(), &Request{
		Date:            testDate,
		From:            "15:30",
		DurationMinutes: 60,
	})

	require.NoError(t, err)
	assert.Equal(t, types.TimeString("16:01"), slot.StartTime)
	assert.Equal(t, types.TimeString("17:01"), slot.EndTime)
}

func TestExecute_SkipsTooSmallGap(t *testing.T) {
	// Зазор между 11:00 (конец первой брони + буфер = 11:01) и 11:30
	// не вмещает 30 минут, слот уходит за вторую бронь
	repo := newFakeRepo(testDate,
		[2]string{"10:00", "11:00"},
		[2]string{"11:30", "12:00"},
	)
	uc := NewUseCase(repo, nopLogger{})

	slot, err := uc.Execute(context.Background(), &Request{
		Date:            testDate,
		From:            "10:30",
		DurationMinutes: 30,
	})

	require.NoError(t, err)
	assert.Equal(t, types.TimeString("12:01"), slot.StartTime)
	assert.Equal(t, types.TimeString("12:31"), slot.EndTime)
}

func TestExecute_GapFitsWithBuffer(t *testing.T) {
	// Зазор 10:31..11:02 вмещает 30 минут вместе с минутным буфером
	// перед следующей бронью
	repo := newFakeRepo(testDate,
		[2]string{"10:00", "10:30"},
		[2]string{"11:02", "12:00"},
	)
	uc := NewUseCase(repo, nopLogger{})

	slot, err := uc.Execute(context.Background(), &Request{
		Date:            testDate,
		From:            "10:31",
		DurationMinutes: 30,
	})

	require.NoError(t, err)
	assert.Equal(t, types.TimeString("10:31"), slot.StartTime)
	assert.Equal(t, types.TimeString("11:01"), slot.EndTime)
}

func TestExecute_NeverSuggestsEarlierThanRequested(t *testing.T) {
	// Утро полностью свободно, но поиск идет только вперед от from
	repo := newFakeRepo(testDate, [2]string{"14:00", "15:00"})
	uc := NewUseCase(repo, nopLogger{})

	slot, err := uc.Execute(context.Background(), &Request{
		Date:            testDate,
		From:            "14:30",
		DurationMinutes: 30,
	})

	require.NoError(t, err)
	assert.Equal(t, types.TimeString("15:01"), slot.StartTime)
}

func TestExecute_NoSlotBeforeEndOfDay(t *testing.T) {
	repo := newFakeRepo(testDate, [2]string{"21:00", "23:00"})
	uc := NewUseCase(repo, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{
		Date:            testDate,
		From:            "22:00",
		DurationMinutes: 90,
	})

	assert.ErrorIs(t, err, ErrNoSlotAvailable)
}

func TestExecute_InvalidDuration(t *testing.T) {
	uc := NewUseCase(newFakeRepo(testDate), nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{
		Date:            testDate,
		From:            "10:00",
		DurationMinutes: 45,
	})

	assert.ErrorIs(t, err, ErrInvalidInput)
}
