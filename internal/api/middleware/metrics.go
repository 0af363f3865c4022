package middleware

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-SchedulingService/pkg/metrics"
)

const unknownRoute = "unknown"

type routeLabelKey struct{}

type routeLabel struct {
	value string
}

// statusRecorder запоминает код ответа
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

// SetRouteLabel подменяет метку маршрута для метрик
// Диспетчер вызывает её, чтобы метрики считались по action, а не по общему пути
func SetRouteLabel(ctx context.Context, label string) {
	if l, ok := ctx.Value(routeLabelKey{}).(*routeLabel); ok && label != "" {
		l.value = label
	}
}

// Metrics собирает количество и длительность HTTP запросов
func Metrics(m *metrics.Metrics) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			label := &routeLabel{value: routeTemplate(r)}
			ctx := context.WithValue(r.Context(), routeLabelKey{}, label)
			rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

			next.ServeHTTP(rec, r.WithContext(ctx))

			m.ObserveHTTPRequest(label.value, r.Method, strconv.Itoa(rec.status), time.Since(start).Seconds())
		})
	}
}

func routeTemplate(r *http.Request) string {
	route := mux.CurrentRoute(r)
	if route == nil {
		return unknownRoute
	}
	tpl, err := route.GetPathTemplate()
	if err != nil {
		return unknownRoute
	}
	return tpl
}
