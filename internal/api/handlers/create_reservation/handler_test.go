package create_reservation

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/golab368/REPL-backend-tenis/internal/domain"
	createReservation "github.com/golab368/REPL-backend-tenis/internal/usecase/create_reservation"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type stubUseCase struct {
	resp *createReservation.Response
	err  error
}

func (s *stubUseCase) Execute(_ context.Context, _ *createReservation.Request) (*createReservation.Response, error) {
	return s.resp, s.err
}

func doRequest(t *testing.T, uc CreateReservationUseCase, body string) *httptest.ResponseRecorder {
	t.Helper()

	h := NewHandler(uc, nopLogger{})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/reservations", bytes.NewBufferString(body))
	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

const validBody = `{"name":"Alice","date":"2026-06-15","startTime":"15:00","durationMinutes":60}`

func TestHandle_Created(t *testing.T) {
	uc := &stubUseCase{resp: &createReservation.Response{
		ID:              42,
		Name:            "Alice",
		Date:            time.Date(2026, 6, 15, 0, 0, 0, 0, time.UTC),
		StartTime:       "15:00",
		EndTime:         "16:00",
		DurationMinutes: 60,
		CreatedAt:       time.Date(2026, 6, 15, 9, 0, 0, 0, time.UTC),
	}}

	rec := doRequest(t, uc, validBody)

	assert.Equal(t, http.StatusCreated, rec.Code)

	var resp ReservationResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, int64(42), resp.ID)
	assert.Equal(t, "2026-06-15", resp.Date)
	assert.Equal(t, "15:00", resp.StartTime)
	assert.Equal(t, "16:00", resp.EndTime)
}

func TestHandle_ConflictWithSuggestion(t *testing.T) {
	suggested, err := domain.NewSlot(time.Date(2026, 6, 15, 0, 0, 0, 0, time.UTC), "16:01", 60)
	require.NoError(t, err)

	uc := &stubUseCase{err: &createReservation.SlotConflictError{Suggested: &suggested}}

	rec := doRequest(t, uc, validBody)

	assert.Equal(t, http.StatusConflict, rec.Code)

	var resp ConflictResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotNil(t, resp.SuggestedSlot)
	assert.Equal(t, "16:01", resp.SuggestedSlot.StartTime)
	assert.Equal(t, "17:01", resp.SuggestedSlot.EndTime)
}

func TestHandle_ConflictWithoutSuggestion(t *testing.T) {
	uc := &stubUseCase{err: &createReservation.SlotConflictError{}}

	rec := doRequest(t, uc, validBody)

	assert.Equal(t, http.StatusConflict, rec.Code)

	var resp ConflictResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Nil(t, resp.SuggestedSlot)
	assert.Equal(t, msgNoSlotAvailable, resp.Error)
}

func TestHandle_QuotaExceeded(t *testing.T) {
	uc := &stubUseCase{err: createReservation.ErrWeeklyQuotaExceeded}

	rec := doRequest(t, uc, validBody)
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestHandle_BadRequests(t *testing.T) {
	tests := []struct {
		name string
		uc   CreateReservationUseCase
		body string
	}{
		{name: "malformed json", uc: &stubUseCase{}, body: `{broken`},
		{name: "unknown field", uc: &stubUseCase{}, body: `{"name":"A","surname":"B"}`},
		{name: "bad date", uc: &stubUseCase{}, body: `{"name":"A","date":"15.06.2026","startTime":"15:00","durationMinutes":60}`},
		{name: "bad time", uc: &stubUseCase{}, body: `{"name":"A","date":"2026-06-15","startTime":"25:00","durationMinutes":60}`},
		{name: "invalid duration", uc: &stubUseCase{err: createReservation.ErrInvalidDuration}, body: validBody},
		{name: "lead time", uc: &stubUseCase{err: createReservation.ErrLeadTimeTooShort}, body: validBody},
		{name: "crosses midnight", uc: &stubUseCase{err: createReservation.ErrInvalidTimeSlot}, body: validBody},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doRequest(t, tt.uc, tt.body)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestHandle_InternalError(t *testing.T) {
	uc := &stubUseCase{err: createReservation.ErrInternal}

	rec := doRequest(t, uc, validBody)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
