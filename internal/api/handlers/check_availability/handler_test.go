package check_availability

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

	getAvailableSlots "github.com/m04kA/SMC-SchedulingService/internal/usecase/get_available_slots"
	"github.com/m04kA/SMC-SchedulingService/pkg/logger"
)

type stubUseCase struct {
	got  *getAvailableSlots.Request
	resp *getAvailableSlots.Response
	err  error
}

func (s *stubUseCase) Execute(_ context.Context, req *getAvailableSlots.Request) (*getAvailableSlots.Response, error) {
	s.got = req
	return s.resp, s.err
}

func serve(uc GetAvailableSlotsUseCase, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/scheduling", strings.NewReader(body))
	rec := httptest.NewRecorder()
	NewHandler(uc, logger.NewNop()).Handle(rec, req)
	return rec
}

func TestHandler_Slots(t *testing.T) {
	loc := time.FixedZone("", -3*3600)
	uc := &stubUseCase{resp: &getAvailableSlots.Response{
		Date: "2024-06-01",
		Slots: []getAvailableSlots.Slot{
			{Time: "09:30", DateTime: time.Date(2024, 6, 1, 9, 30, 0, 0, loc), StaffID: 7, StaffName: "Carlos"},
			{Time: "10:30", DateTime: time.Date(2024, 6, 1, 10, 30, 0, 0, loc), StaffID: 7, StaffName: "Carlos"},
		},
		Services: []getAvailableSlots.Service{{ID: 3, Name: "Corte", Price: 45, DurationMinutes: 30}},
	}}

	rec := serve(uc, `{"action":"check","unit_id":1,"date":"2024-06-01","professional":"carl"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "carl", uc.got.StaffFilter)

	var resp CheckAvailabilityResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.True(t, resp.Success)
	require.Len(t, resp.AvailableSlots, 2)
	assert.Equal(t, "09:30", resp.AvailableSlots[0].Time)
	assert.Equal(t, "2024-06-01T09:30:00-03:00", resp.AvailableSlots[0].DateTime)
	assert.Equal(t, "Carlos", resp.AvailableSlots[0].BarberName)
	require.Len(t, resp.Services, 1)
	assert.Empty(t, resp.Message)
}

func TestHandler_NoStaff(t *testing.T) {
	uc := &stubUseCase{resp: &getAvailableSlots.Response{Date: "2024-06-01", NoStaff: true}}

	rec := serve(uc, `{"unit_id":1,"date":"2024-06-01","professional":"joana"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp CheckAvailabilityResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Empty(t, resp.AvailableSlots)
	assert.Equal(t, msgNoStaff, resp.Message)
}

func TestHandler_Validation(t *testing.T) {
	for _, body := range []string{
		`{"date":"2024-06-01"}`,
		`{"unit_id":1}`,
		`{"unit_id":1,"date":"june 1st"}`,
	} {
		rec := serve(&stubUseCase{}, body)
		assert.Equal(t, http.StatusBadRequest, rec.Code, body)
	}
}

func TestHandler_UnitNotFound(t *testing.T) {
	rec := serve(&stubUseCase{err: getAvailableSlots.ErrUnitNotFound}, `{"unit_id":9,"date":"2024-06-01"}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
