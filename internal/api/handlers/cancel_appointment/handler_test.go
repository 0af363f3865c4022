package cancel_appointment

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SchedulingService/internal/api/handlers"
	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	cancelBooking "github.com/m04kA/SMC-SchedulingService/internal/usecase/cancel_booking"
	"github.com/m04kA/SMC-SchedulingService/pkg/logger"
)

type stubUseCase struct {
	got  *cancelBooking.Request
	resp *cancelBooking.Response
	err  error
}

func (s *stubUseCase) Execute(_ context.Context, req *cancelBooking.Request) (*cancelBooking.Response, error) {
	s.got = req
	return s.resp, s.err
}

func serve(h *Handler, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/scheduling", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

func TestHandler_Cancelled(t *testing.T) {
	start := time.Date(2024, 6, 1, 13, 0, 0, 0, time.UTC)
	cancelledAt := start.Add(-time.Hour)

	uc := &stubUseCase{resp: &cancelBooking.Response{
		Booking: &domain.Booking{
			ID:          5,
			UnitID:      1,
			StartTime:   start,
			EndTime:     start.Add(30 * time.Minute),
			Status:      domain.StatusCancelled,
			CancelledAt: &cancelledAt,
		},
		Mode:     cancelBooking.ModeUpcoming,
		Location: time.FixedZone("", -3*3600),
	}}

	rec := serve(NewHandler(uc, logger.NewNop()), `{"action":"cancel","unit_id":1,"phone":"(11) 99999-0000"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	require.NotNil(t, uc.got)
	assert.Nil(t, uc.got.AppointmentID)
	assert.Equal(t, "(11) 99999-0000", uc.got.Phone)

	var resp CancelAppointmentResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.True(t, resp.Success)
	require.NotNil(t, resp.Appointment)
	assert.Equal(t, "cancelled", resp.Appointment.Status)
	require.NotNil(t, resp.Appointment.CancelledAt)
	assert.Equal(t, "2024-06-01T09:00:00-03:00", *resp.Appointment.CancelledAt)
}

func TestHandler_Errors(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		err        error
		wantStatus int
		wantMsg    string
	}{
		{name: "no identifiers", body: `{"unit_id":1}`, wantStatus: http.StatusBadRequest},
		{name: "bad date", body: `{"unit_id":1,"phone":"11999990000","date":"01/06/2024"}`, wantStatus: http.StatusBadRequest},
		{
			name:       "already cancelled",
			body:       `{"unit_id":1,"appointment_id":5}`,
			err:        cancelBooking.ErrAlreadyCancelled,
			wantStatus: http.StatusNotFound,
			wantMsg:    msgAlreadyCancelled,
		},
		{
			name:       "nothing on date",
			body:       `{"unit_id":1,"phone":"11999990000","date":"2024-06-01"}`,
			err:        cancelBooking.ErrNoAppointmentForDate,
			wantStatus: http.StatusNotFound,
			wantMsg:    msgNoAppointmentForDate,
		},
		{
			name:       "nothing upcoming",
			body:       `{"unit_id":1,"phone":"11999990000"}`,
			err:        cancelBooking.ErrNoFutureAppointment,
			wantStatus: http.StatusNotFound,
			wantMsg:    msgNoFutureAppointment,
		},
		{
			name:       "unknown id",
			body:       `{"unit_id":1,"appointment_id":77}`,
			err:        cancelBooking.ErrBookingNotFound,
			wantStatus: http.StatusNotFound,
			wantMsg:    msgNotFound,
		},
		{
			name:       "store failure",
			body:       `{"unit_id":1,"appointment_id":5}`,
			err:        cancelBooking.ErrInternal,
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(NewHandler(&stubUseCase{err: tt.err}, logger.NewNop()), tt.body)

			assert.Equal(t, tt.wantStatus, rec.Code)

			var resp handlers.ErrorResponse
			require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
			assert.False(t, resp.Success)
			if tt.wantMsg != "" {
				assert.Equal(t, tt.wantMsg, resp.Error)
			}
		})
	}
}
