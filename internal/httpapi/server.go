package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"priced/internal/predictor"
	"priced/pkg/types"
)

// Service defines the methods required by the HTTP API layer.
type Service interface {
	Predict(ctx context.Context, req types.PredictRequest) (types.PredictResponse, error)
	Info() types.ModelInfo
	Ready() bool
}

func NewMux(svc Service) http.Handler {
	recordModelInfo(svc.Info())

	r := chi.NewRouter()
	// Basic middlewares: request id, real ip, metrics, recoverer
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(MetricsMiddleware)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: corsAllowedOrigins,
		AllowedMethods: corsAllowedMethods,
		AllowedHeaders: corsAllowedHeaders,
		ExposedHeaders: []string{"X-Request-Id"},
		MaxAge:         300,
	}))
	r.Use(middleware.Compress(5))
	// Security headers and request id echo
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("X-Content-Type-Options", "nosniff")
			if rid := middleware.GetReqID(r.Context()); rid != "" {
				w.Header().Set("X-Request-Id", rid)
			}
			next.ServeHTTP(w, r)
		})
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeJSONError(w, http.StatusNotFound, "not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		writeJSONError(w, http.StatusMethodNotAllowed, "method not allowed")
	})

	// @Summary      Predict a price
	// @Description  Runs the loaded model on one feature vector.
	// @Accept       json
	// @Produce      json
	// @Param        request  body      types.PredictRequest  true  "Feature vector"
	// @Success      200      {object}  types.PredictResponse
	// @Failure      400      {object}  types.ErrorResponse
	// @Failure      415      {object}  types.ErrorResponse
	// @Failure      422      {object}  types.ErrorResponse
	// @Failure      500      {object}  types.ErrorResponse
	// @Router       /predict [post]
	r.Post("/predict", func(w http.ResponseWriter, r *http.Request) {
		ct := r.Header.Get("Content-Type")
		if ct == "" || !strings.HasPrefix(strings.ToLower(ct), "application/json") {
			IncrementPredictError("content_type")
			writeJSONError(w, http.StatusUnsupportedMediaType, "Content-Type must be application/json")
			return
		}
		r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
		var req types.PredictRequest
		dec := json.NewDecoder(r.Body)
		err := dec.Decode(&req)
		if err == nil && dec.Decode(&struct{}{}) != io.EOF {
			err = errTrailingData
		}
		if err != nil {
			// Oversized bodies land here too; still 400 to avoid size leak details
			IncrementPredictError("invalid_json")
			writeJSONError(w, http.StatusBadRequest, "invalid JSON body")
			return
		}

		start := time.Now()
		lvl := requestLogLevel(r)
		// Join server base context with request context so shutdown cancels work too.
		joinedCtx, cancel := joinContexts(r.Context(), serverBaseCtx)
		defer cancel()
		resp, err := svc.Predict(joinedCtx, req)
		if err != nil {
			// Client went away or the server is shutting down: nobody to answer.
			if r.Context().Err() != nil || serverBaseCtx.Err() != nil {
				return
			}
			status := http.StatusInternalServerError
			var he HTTPError
			if errors.As(err, &he) {
				status = he.StatusCode()
			}
			IncrementPredictError(errorReason(err))
			writeJSONError(w, status, err.Error())
			logPredictEnd(r, lvl, status, len(req.Features), start, err)
			return
		}
		writeJSON(w, http.StatusOK, resp)
		logPredictEnd(r, lvl, http.StatusOK, len(req.Features), start, nil)
	})

	// @Summary      Loaded model
	// @Produce      json
	// @Success      200  {object}  types.ModelInfo
	// @Router       /model [get]
	r.Get("/model", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, svc.Info())
	})

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	r.Get("/readyz", func(w http.ResponseWriter, r *http.Request) {
		if svc.Ready() {
			w.WriteHeader(http.StatusOK)
			w.Write([]byte("ready"))
			return
		}
		w.WriteHeader(http.StatusServiceUnavailable)
		w.Write([]byte("loading"))
	})

	// Prometheus metrics endpoint
	r.Get("/metrics", promhttp.Handler().ServeHTTP)

	MountSwagger(r)
	return r
}

var errTrailingData = errors.New("trailing data after JSON body")

func errorReason(err error) string {
	switch {
	case predictor.IsInvalidRequest(err):
		return "invalid_request"
	case predictor.IsArityMismatch(err):
		return "arity"
	case predictor.IsNonFinite(err):
		return "non_finite"
	default:
		return "internal"
	}
}
