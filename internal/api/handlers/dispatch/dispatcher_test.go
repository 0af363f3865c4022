package dispatch

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SchedulingService/internal/api/handlers"
	"github.com/m04kA/SMC-SchedulingService/pkg/logger"
)

func TestParseAction(t *testing.T) {
	tests := []struct {
		raw     string
		want    Action
		wantErr error
	}{
		{raw: "check", want: ActionCheckAvailability},
		{raw: "check_availability", want: ActionCheckAvailability},
		{raw: "create", want: ActionScheduleAppointment},
		{raw: "schedule_appointment", want: ActionScheduleAppointment},
		{raw: " Cancel ", want: ActionCancelAppointment},
		{raw: "cancel_appointment", want: ActionCancelAppointment},
		{raw: "check_client", want: ActionCheckClient},
		{raw: "register_client", want: ActionRegisterClient},
		{raw: "confirm_appointment", want: ActionConfirmAppointment},
		{raw: "", wantErr: ErrMissingAction},
		{raw: "drop_tables", wantErr: ErrUnknownAction},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := ParseAction(tt.raw)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

// echoHandler возвращает тело запроса, чтобы проверить, что диспетчер его восстановил
func echoHandler(tag string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		handlers.RespondJSON(w, http.StatusOK, map[string]string{"handler": tag, "body": string(body)})
	}
}

func newTestRouter() *mux.Router {
	d := NewDispatcher(logger.NewNop())
	d.Handle(ActionCheckAvailability, echoHandler("check"))
	d.Handle(ActionCancelAppointment, echoHandler("cancel"))

	r := mux.NewRouter()
	d.RegisterRoutes(r, "/api/v1/scheduling")
	return r
}

func TestDispatcher_RoutesByAction(t *testing.T) {
	r := newTestRouter()

	payload := `{"action":"check","unit_id":1,"date":"2024-06-01"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/scheduling", strings.NewReader(payload))
	rec := httptest.NewRecorder()

	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp map[string]string
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, "check", resp["handler"])
	assert.Equal(t, payload, resp["body"])
}

func TestDispatcher_DirectRoute(t *testing.T) {
	r := newTestRouter()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/scheduling/cancel_appointment",
		strings.NewReader(`{"unit_id":1,"phone":"11999999999"}`))
	rec := httptest.NewRecorder()

	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp map[string]string
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, "cancel", resp["handler"])
}

func TestDispatcher_Errors(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantMsg string
	}{
		{name: "invalid json", body: `{`, wantMsg: msgInvalidRequestBody},
		{name: "missing action", body: `{"unit_id":1}`, wantMsg: msgMissingAction},
		{name: "unknown action", body: `{"action":"refund"}`, wantMsg: msgUnknownAction + ": refund"},
		{name: "known action without handler", body: `{"action":"check_client"}`, wantMsg: msgUnknownAction + ": check_client"},
	}

	r := newTestRouter()

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/v1/scheduling", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()

			r.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusBadRequest, rec.Code)

			var resp handlers.ErrorResponse
			require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
			assert.False(t, resp.Success)
			assert.Equal(t, tt.wantMsg, resp.Error)
		})
	}
}

func TestDispatcher_Actions(t *testing.T) {
	d := NewDispatcher(logger.NewNop())
	d.Handle(ActionRegisterClient, echoHandler("r"))
	d.Handle(ActionCheckAvailability, echoHandler("c"))

	assert.Equal(t, []Action{ActionCheckAvailability, ActionRegisterClient}, d.Actions())
}
