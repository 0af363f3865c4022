package dispatch

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"sort"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-SchedulingService/internal/api/handlers"
	"github.com/m04kA/SMC-SchedulingService/internal/api/middleware"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingAction      = "не указано действие (action)"
	msgUnknownAction      = "неизвестное действие"
)

type envelope struct {
	Action string `json:"action"`
}

// Dispatcher маршрутизирует POST запросы по полю action
type Dispatcher struct {
	handlers map[Action]http.HandlerFunc
	logger   Logger
}

func NewDispatcher(logger Logger) *Dispatcher {
	return &Dispatcher{
		handlers: make(map[Action]http.HandlerFunc),
		logger:   logger,
	}
}

// Handle регистрирует обработчик действия
func (d *Dispatcher) Handle(action Action, h http.HandlerFunc) {
	d.handlers[action] = h
}

// Actions возвращает зарегистрированные действия в алфавитном порядке
func (d *Dispatcher) Actions() []Action {
	actions := make([]Action, 0, len(d.handlers))
	for a := range d.handlers {
		actions = append(actions, a)
	}
	sort.Slice(actions, func(i, j int) bool { return actions[i] < actions[j] })
	return actions
}

// RegisterRoutes вешает диспетчер на path и отдельный маршрут path/{action} на каждое действие
func (d *Dispatcher) RegisterRoutes(r *mux.Router, path string) {
	r.Handle(path, d).Methods(http.MethodPost)
	for _, action := range d.Actions() {
		r.HandleFunc(path+"/"+string(action), d.direct(action)).Methods(http.MethodPost)
	}
}

// ServeHTTP читает action из тела, восстанавливает тело и передаёт запрос обработчику
func (d *Dispatcher) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Body == nil {
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	body, err := io.ReadAll(io.LimitReader(r.Body, handlers.MaxBodyBytes))
	if err != nil {
		d.logger.Warn("dispatch - Failed to read body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		d.logger.Warn("dispatch - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	action, err := ParseAction(env.Action)
	if err != nil {
		d.logger.Warn("dispatch - %v", err)
		if errors.Is(err, ErrMissingAction) {
			handlers.RespondBadRequest(w, msgMissingAction)
			return
		}
		handlers.RespondBadRequest(w, msgUnknownAction+": "+env.Action)
		return
	}

	h, ok := d.handlers[action]
	if !ok {
		d.logger.Warn("dispatch - Action %s has no handler", action)
		handlers.RespondBadRequest(w, msgUnknownAction+": "+env.Action)
		return
	}

	middleware.SetRouteLabel(r.Context(), string(action))
	r.Body = io.NopCloser(bytes.NewReader(body))
	h(w, r)
}

func (d *Dispatcher) direct(action Action) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		middleware.SetRouteLabel(r.Context(), string(action))
		d.handlers[action](w, r)
	}
}
