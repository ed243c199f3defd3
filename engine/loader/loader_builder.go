package loader

import (
	"log/slog"

	"github.com/Carmen-Shannon/oxy-rwx/engine/model"
	"github.com/Carmen-Shannon/oxy-rwx/engine/profiler"
	"github.com/Carmen-Shannon/oxy-rwx/engine/triangulate"
)

// LoaderBuilderOption is a functional option for configuring a Loader via NewLoader.
type LoaderBuilderOption func(*loader)

// WithModel is an option builder that pre-populates the model cache with a model.
//
// Parameters:
//   - key: the cache key for the model
//   - model: the model to cache
//
// Returns:
//   - LoaderBuilderOption: a function that applies the model option to a loader
func WithModel(key string, model model.Model) LoaderBuilderOption {
	return func(l *loader) {
		l.modelCache[key] = model
	}
}

// WithWorkers is an option builder that sets the maximum number of parallel decodes in LoadAll.
//
// Parameters:
//   - n: the worker count, ignored when not positive
//
// Returns:
//   - LoaderBuilderOption: a function that applies the workers option to a loader
func WithWorkers(n int) LoaderBuilderOption {
	return func(l *loader) {
		if n > 0 {
			l.workers = n
		}
	}
}

// WithTriangulator is an option builder that sets the 2D triangulation provider used for polygons.
//
// Parameters:
//   - t: the triangulator
//
// Returns:
//   - LoaderBuilderOption: a function that applies the triangulator option to a loader
func WithTriangulator(t triangulate.Triangulator) LoaderBuilderOption {
	return func(l *loader) {
		l.triangulator = t
	}
}

// WithTextureSignature is an option builder that makes texture and mask names part of
// material deduplication.
//
// Parameters:
//   - enabled: true to include texture and mask names in the signature
//
// Returns:
//   - LoaderBuilderOption: a function that applies the texture signature option to a loader
func WithTextureSignature(enabled bool) LoaderBuilderOption {
	return func(l *loader) {
		l.textureSignature = enabled
	}
}

// WithLogger is an option builder that sets the logger used by the loader and its decoder.
//
// Parameters:
//   - logger: the logger, ignored when nil
//
// Returns:
//   - LoaderBuilderOption: a function that applies the logger option to a loader
func WithLogger(logger *slog.Logger) LoaderBuilderOption {
	return func(l *loader) {
		if logger != nil {
			l.logger = logger
		}
	}
}

// WithProfiler is an option builder that records every LoadAll batch on a profiler.
//
// Parameters:
//   - p: the profiler, or nil to disable recording
//
// Returns:
//   - LoaderBuilderOption: a function that applies the profiler option to a loader
func WithProfiler(p *profiler.Profiler) LoaderBuilderOption {
	return func(l *loader) {
		l.profiler = p
	}
}
