package predictor

import (
	"context"
	"errors"
	"fmt"
	"math"

	"priced/internal/model"
	"priced/pkg/types"
)

// Service answers prediction requests against one immutable model.
type Service struct {
	model model.Predictor
	info  types.ModelInfo
	memo  *memo
}

// New constructs a Service without a memo. It panics if m is nil.
func New(m model.Predictor, info types.ModelInfo) *Service {
	s, err := NewWithConfig(ServiceConfig{Model: m, Info: info})
	if err != nil {
		panic(err)
	}
	return s
}

// NewWithConfig constructs a Service from ServiceConfig.
func NewWithConfig(cfg ServiceConfig) (*Service, error) {
	if cfg.Model == nil {
		return nil, fmt.Errorf("predictor: nil model")
	}
	mm, err := newMemo(cfg.CacheSize)
	if err != nil {
		return nil, fmt.Errorf("predictor: cache: %w", err)
	}
	info := cfg.Info
	info.FeatureNames = append([]string(nil), cfg.Info.FeatureNames...)
	if info.Kind == "" {
		info.Kind = string(cfg.Model.Kind())
	}
	info.NumFeatures = cfg.Model.NumFeatures()
	return &Service{model: cfg.Model, info: info, memo: mm}, nil
}

// Ready reports whether a model is loaded. A Service only exists once loading
// succeeded, so this is true for any constructed Service.
func (s *Service) Ready() bool { return s != nil && s.model != nil }

// Info returns the loaded model's metadata.
func (s *Service) Info() types.ModelInfo {
	info := s.info
	info.FeatureNames = append([]string(nil), s.info.FeatureNames...)
	return info
}

// Predict validates req at the boundary and runs the model on its features.
func (s *Service) Predict(ctx context.Context, req types.PredictRequest) (types.PredictResponse, error) {
	if err := ctx.Err(); err != nil {
		return types.PredictResponse{}, err
	}
	if req.Features == nil {
		return types.PredictResponse{}, ErrInvalidRequest("features is required")
	}
	if n := s.model.NumFeatures(); len(req.Features) != n {
		return types.PredictResponse{}, arityMismatchError{want: n, got: len(req.Features)}
	}
	key := memoKey(req.Features)
	if v, ok := s.memo.get(key); ok {
		return types.PredictResponse{PredictedPrice: v}, nil
	}
	v, err := s.model.Predict(req.Features)
	if err != nil {
		if errors.Is(err, model.ErrArity) {
			return types.PredictResponse{}, arityMismatchError{want: s.model.NumFeatures(), got: len(req.Features)}
		}
		return types.PredictResponse{}, fmt.Errorf("predict: %w", err)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return types.PredictResponse{}, nonFiniteError{}
	}
	s.memo.add(key, v)
	return types.PredictResponse{PredictedPrice: v}, nil
}
