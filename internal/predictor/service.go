// DogMatch - Dog Breed Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/dogmatch

package predictor

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"

	"github.com/tomtom215/dogmatch/internal/artifacts"
	"github.com/tomtom215/dogmatch/internal/cache"
	"github.com/tomtom215/dogmatch/internal/features"
	"github.com/tomtom215/dogmatch/internal/logging"
	"github.com/tomtom215/dogmatch/internal/metrics"
)

// DefaultTopK is used when Recommend receives a non-positive topK.
const DefaultTopK = 5

const resultCacheName = "recommendation"

// Option configures a Service.
type Option func(*Service)

// WithCache memoizes results in an LRU of the given capacity and TTL.
// A non-positive capacity disables caching.
func WithCache(capacity int, ttl time.Duration) Option {
	return func(s *Service) {
		if capacity <= 0 {
			s.cache = nil
			return
		}
		s.cache = cache.NewLRU[*Result](capacity, ttl)
	}
}

// WithLogger replaces the service logger.
//
//nolint:gocritic // zerolog.Logger is designed to be passed by value
func WithLogger(logger zerolog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

// Service runs the recommendation pipeline over one loaded artifact bundle.
// It is safe for concurrent use; per-request state lives on copies.
type Service struct {
	schema     *features.Schema
	scaler     features.Scaler
	classifier Classifier
	index      NeighborIndex
	breeds     BreedLookup

	modelType           string
	similarityModelType string
	supportsProba       bool
	loadedAt            time.Time

	cache  *cache.LRU[*Result]
	logger zerolog.Logger
}

// New builds a Service from a loaded bundle.
func New(b *artifacts.Bundle, opts ...Option) (*Service, error) {
	if b == nil || b.Schema == nil || b.Classifier == nil || b.Index == nil || b.Scaler == nil || b.Reference == nil {
		return nil, errors.New("incomplete artifact bundle")
	}
	dim := len(b.Schema.ModelColumns())
	if b.Classifier.Dim() != dim || b.Index.Dim() != dim {
		return nil, fmt.Errorf("%w: classifier %d, index %d, model columns %d",
			artifacts.ErrDimensionMismatch, b.Classifier.Dim(), b.Index.Dim(), dim)
	}

	s := &Service{
		schema:              b.Schema,
		scaler:              b.Scaler,
		classifier:          b.Classifier,
		index:               b.Index,
		breeds:              b.Reference,
		modelType:           b.ModelType,
		similarityModelType: b.SimilarityModelType,
		supportsProba:       b.SupportsProbabilities(),
		loadedAt:            b.LoadedAt,
		logger:              logging.WithComponent("predictor"),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Schema returns the feature schema the service was loaded with.
func (s *Service) Schema() *features.Schema {
	return s.schema
}

// LoadedAt returns when the underlying artifacts were loaded.
func (s *Service) LoadedAt() time.Time {
	return s.loadedAt
}

// Recommend runs the full pipeline for one preference record.
//
// Validation-class errors (features.MissingFeaturesError,
// features.InvalidNumericValueError, features.UnknownCategoricalValueError)
// indicate bad input. features.ScalingError and ClassificationError indicate
// a pipeline failure. Derived-feature and similarity failures do not fail the
// request; they are listed in Result.Warnings.
func (s *Service) Recommend(ctx context.Context, prefs features.Preferences, topK int) (*Result, error) {
	start := time.Now()
	if topK <= 0 {
		topK = DefaultTopK
	}

	logger := logging.CtxWith(ctx).Str("component", "predictor").Logger()

	if err := ctx.Err(); err != nil {
		metrics.RecordPrediction(metrics.OutcomeCanceled, "", time.Since(start))
		return nil, err
	}

	key := ""
	if s.cache != nil {
		key = s.cacheKey(prefs, topK)
		res, ok := s.cache.Get(key)
		metrics.RecordCacheLookup(resultCacheName, ok)
		if ok {
			logger.Debug().Str("breed", res.PrimaryBreed()).Msg("recommendation served from cache")
			metrics.RecordPrediction(metrics.OutcomeSuccess, res.PrimaryBreed(), time.Since(start))
			return res.Clone(), nil
		}
	}

	res, err := s.run(&logger, prefs, topK)
	if err != nil {
		outcome := outcomeFor(err)
		metrics.RecordPrediction(outcome, "", time.Since(start))
		if outcome == metrics.OutcomeValidationError {
			logger.Debug().Err(err).Msg("rejected preferences")
		} else {
			logger.Error().Err(err).Msg("recommendation pipeline failed")
		}
		return nil, err
	}

	if s.cache != nil {
		s.cache.Add(key, res.Clone())
		metrics.UpdateCacheSize(resultCacheName, s.cache.Len())
	}

	metrics.RecordPrediction(metrics.OutcomeSuccess, res.PrimaryBreed(), time.Since(start))
	logger.Debug().
		Str("breed", res.PrimaryBreed()).
		Int("similar", len(res.SimilarBreeds)).
		Int("warnings", len(res.Warnings)).
		Dur("duration", time.Since(start)).
		Msg("recommendation computed")
	return res, nil
}

// SweepCache drops expired cached results and publishes the cache counters.
// It returns the number of entries removed, or 0 when caching is disabled.
func (s *Service) SweepCache() int {
	if s.cache == nil {
		return 0
	}
	removed := s.cache.CleanupExpired()
	stats := s.cache.Stats()
	metrics.RecordCacheSweep(resultCacheName, removed, stats.Size, stats.Evictions)
	s.logger.Debug().
		Int("expired", removed).
		Int("entries", stats.Size).
		Int("capacity", stats.Capacity).
		Int64("hits", stats.Hits).
		Int64("misses", stats.Misses).
		Int64("evictions", stats.Evictions).
		Msg("result cache swept")
	return removed
}

// run is the synchronous pipeline: validate, encode, derive, normalize,
// then classify, rank and profile.
func (s *Service) run(logger *zerolog.Logger, prefs features.Preferences, topK int) (*Result, error) {
	if err := features.Validate(s.schema, prefs); err != nil {
		return nil, err
	}

	encoded, err := features.Encode(s.schema, prefs)
	if err != nil {
		return nil, err
	}

	var warnings []string

	enriched, derivedWarnings := features.Derive(s.schema, encoded)
	for _, w := range derivedWarnings {
		logger.Warn().Err(w.Err).Str("feature", w.Feature).Msg("derived feature skipped")
		metrics.RecordPipelineWarning(metrics.WarningDerivedFeature)
		warnings = append(warnings, w.Error())
	}

	normalized, err := features.Normalize(s.schema, s.scaler, enriched)
	if err != nil {
		return nil, err
	}

	vec, err := s.schema.Vector(normalized)
	if err != nil {
		return nil, &features.ScalingError{Err: err}
	}

	prediction, err := Classify(s.classifier, vec)
	if err != nil {
		return nil, err
	}

	similar, err := FindSimilar(s.index, s.breeds, vec, topK)
	if err != nil {
		logger.Warn().Err(err).Msg("similar breeds unavailable")
		metrics.RecordPipelineWarning(metrics.WarningSimilarityLookup)
		warnings = append(warnings, err.Error())
	}

	res := Assemble(prediction, similar, Profile(enriched))
	res.Warnings = warnings
	return res, nil
}

// cacheKey encodes topK and the schema features of prefs. Map keys are
// sorted by the encoder, so equal inputs produce equal keys.
func (s *Service) cacheKey(prefs features.Preferences, topK int) string {
	restricted := make(map[string]interface{}, len(prefs))
	for _, col := range s.schema.FeatureColumns() {
		if v, ok := prefs[col]; ok {
			restricted[col] = v
		}
	}
	data, err := json.Marshal(restricted)
	if err != nil {
		// NaN and Inf are not valid JSON; fmt prints maps in key order.
		data = []byte(fmt.Sprintf("%#v", restricted))
	}
	return strconv.Itoa(topK) + ":" + string(data)
}

func outcomeFor(err error) string {
	var scaling *features.ScalingError
	var classification *ClassificationError
	switch {
	case features.IsValidationError(err):
		return metrics.OutcomeValidationError
	case errors.As(err, &scaling):
		return metrics.OutcomeScalingError
	case errors.As(err, &classification):
		return metrics.OutcomeClassificationError
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return metrics.OutcomeCanceled
	default:
		return metrics.OutcomeClassificationError
	}
}

// FeatureInfo describes the input schema.
type FeatureInfo struct {
	FeatureColumns     []string            `json:"feature_columns"`
	CategoricalColumns []string            `json:"categorical_columns"`
	NumericColumns     []string            `json:"numeric_columns"`
	CategoricalValues  map[string][]string `json:"categorical_values"`
	BreedNames         []string            `json:"breed_names"`
}

// FeatureInfo returns copies of the schema's column lists and accepted values.
func (s *Service) FeatureInfo() FeatureInfo {
	return FeatureInfo{
		FeatureColumns:     s.schema.FeatureColumns(),
		CategoricalColumns: s.schema.CategoricalColumns(),
		NumericColumns:     s.schema.NumericColumns(),
		CategoricalValues:  s.schema.AcceptedValuesByField(),
		BreedNames:         s.schema.BreedNames(),
	}
}

// ModelInfo describes the loaded models.
type ModelInfo struct {
	ModelType              string `json:"model_type"`
	SimilarityModelType    string `json:"similarity_model_type"`
	FeatureCount           int    `json:"n_features"`
	BreedCount             int    `json:"n_breeds"`
	SupportsProbabilities  bool   `json:"supports_probabilities"`
	UsesFeatureEngineering bool   `json:"feature_engineering"`
	IsHybrid               bool   `json:"hybrid_system"`
}

// ModelInfo returns a summary of the classifier and similarity index.
func (s *Service) ModelInfo() ModelInfo {
	return ModelInfo{
		ModelType:              s.modelType,
		SimilarityModelType:    s.similarityModelType,
		FeatureCount:           len(s.schema.FeatureColumns()),
		BreedCount:             len(s.schema.BreedNames()),
		SupportsProbabilities:  s.supportsProba,
		UsesFeatureEngineering: true,
		IsHybrid:               true,
	}
}
