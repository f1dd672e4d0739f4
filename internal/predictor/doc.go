// Package predictor owns the loaded model and turns prediction requests into
// model calls. It is structured into small files by concern:
//
//   - service.go: Service type, constructors, Predict and the read-only getters.
//   - config.go: ServiceConfig; NewWithConfig applies it.
//   - errors.go: request-level error kinds and their HTTP status codes.
//   - cache.go: optional LRU memo of results keyed by the exact feature vector.
//
// The model is immutable after construction, so a Service can be shared by
// every HTTP handler goroutine without locking.
package predictor
