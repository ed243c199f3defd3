package loader

import (
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
	"time"

	"github.com/Carmen-Shannon/automation/tools/worker"

	"github.com/Carmen-Shannon/oxy-rwx/engine/material"
	"github.com/Carmen-Shannon/oxy-rwx/engine/model"
	"github.com/Carmen-Shannon/oxy-rwx/engine/profiler"
	"github.com/Carmen-Shannon/oxy-rwx/engine/triangulate"
)

// LoaderBackendType identifies the model file format backend to use.
type LoaderBackendType int

const (
	// BackendTypeRWX selects the RWX text loader backend.
	BackendTypeRWX LoaderBackendType = iota
)

// loader is the implementation of the Loader interface.
type loader struct {
	mu sync.RWMutex

	modelCache map[string]model.Model

	backend loaderBackend

	// pool runs LoadAll decodes. Workers idle-exit after a second so an unused
	// loader holds no goroutines.
	pool    worker.DynamicWorkerPool
	workers int

	triangulator     triangulate.Triangulator
	textureSignature bool
	logger           *slog.Logger
	profiler         *profiler.Profiler
}

// Loader defines the public-facing interface for loading and caching RWX models.
// It abstracts the file format behind a generic backend and manages a cache of
// previously loaded models. All methods are safe for concurrent use.
type Loader interface {
	// Load imports a model file and caches the result.
	// If the model is already cached (by file path), the cached version is returned.
	// The backend is selected based on the file extension (.rwx → RWX backend).
	//
	// Parameters:
	//   - path: the file path to the model file
	//
	// Returns:
	//   - model.Model: the loaded and cached model
	//   - error: error if loading fails
	Load(path string) (model.Model, error)

	// LoadReader imports a model from a reader stream and caches it by the given name.
	//
	// Parameters:
	//   - name: the cache key and model name
	//   - r: the reader providing the RWX document
	//
	// Returns:
	//   - model.Model: the loaded model
	//   - error: error if loading fails
	LoadReader(name string, r io.Reader) (model.Model, error)

	// LoadAll loads several model files in parallel on the loader's worker pool.
	// Results are returned in the order of paths. When any load fails, the error of
	// the first failing path in input order is returned; successful loads are still cached.
	//
	// Parameters:
	//   - paths: the file paths to load
	//
	// Returns:
	//   - []model.Model: the loaded models, parallel to paths
	//   - error: the first error in input order, or nil
	LoadAll(paths []string) ([]model.Model, error)

	// Get retrieves a cached model by name. Returns nil if not found.
	//
	// Parameters:
	//   - name: the cache key to look up
	//
	// Returns:
	//   - model.Model: the cached model or nil
	Get(name string) model.Model

	// Models returns a copy of the model cache.
	//
	// Returns:
	//   - map[string]model.Model: all cached models keyed by name
	Models() map[string]model.Model
}

var _ Loader = &loader{}

// NewLoader creates a new Loader instance with the specified backend type and options applied.
//
// Parameters:
//   - backendType: the type of loader backend to use (e.g., BackendTypeRWX)
//   - options: a variadic list of LoaderBuilderOption functions to configure the Loader
//
// Returns:
//   - Loader: a new instance of Loader configured with the provided backend and options
func NewLoader(backendType LoaderBackendType, options ...LoaderBuilderOption) Loader {
	l := &loader{
		mu:         sync.RWMutex{},
		modelCache: make(map[string]model.Model),
		workers:    runtime.NumCPU(),
		logger:     slog.Default(),
	}

	for _, option := range options {
		option(l)
	}

	decodeOptions := []RWXOption{
		WithRWXTextureSignature(l.textureSignature),
		WithRWXLogger(l.logger),
		WithRWXTriangulator(l.triangulator),
	}
	switch backendType {
	case BackendTypeRWX:
		l.backend = newRWXLoaderBackend(decodeOptions...)
	}

	l.pool = worker.NewDynamicWorkerPool(l.workers, 256, 1*time.Second)
	return l
}

func (l *loader) Load(path string) (model.Model, error) {
	if cached := l.Get(path); cached != nil {
		l.logger.Debug("model cache hit", "path", path)
		return cached, nil
	}

	backend, err := l.resolveBackend(path)
	if err != nil {
		return nil, err
	}

	imported, err := backend.Load(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", path, err)
	}

	return l.store(path, l.importedToModel(imported)), nil
}

func (l *loader) LoadReader(name string, r io.Reader) (model.Model, error) {
	if cached := l.Get(name); cached != nil {
		l.logger.Debug("model cache hit", "name", name)
		return cached, nil
	}

	imported, err := l.backend.LoadReader(name, r)
	if err != nil {
		return nil, fmt.Errorf("failed to load from reader %q: %w", name, err)
	}

	return l.store(name, l.importedToModel(imported)), nil
}

func (l *loader) LoadAll(paths []string) ([]model.Model, error) {
	models := make([]model.Model, len(paths))
	errs := make([]error, len(paths))

	// A WaitGroup is the batch barrier; pool.Wait() would block until workers idle-exit.
	var wg sync.WaitGroup
	for i, path := range paths {
		wg.Add(1)
		l.pool.SubmitTask(worker.Task{
			ID: i,
			Do: func() (any, error) {
				defer wg.Done()
				models[i], errs[i] = l.Load(path)
				return models[i], errs[i]
			},
		})
	}
	wg.Wait()

	if l.profiler != nil {
		triangles := 0
		for _, m := range models {
			if m != nil && m.Imported() != nil {
				triangles += len(m.Imported().Triangles)
			}
		}
		l.profiler.Record(len(paths), triangles)
	}

	for _, err := range errs {
		if err != nil {
			return models, err
		}
	}
	l.logger.Debug("loaded model batch", "count", len(paths))
	return models, nil
}

func (l *loader) Get(name string) model.Model {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.modelCache[name]
}

func (l *loader) Models() map[string]model.Model {
	l.mu.RLock()
	defer l.mu.RUnlock()

	result := make(map[string]model.Model, len(l.modelCache))
	for k, v := range l.modelCache {
		result[k] = v
	}
	return result
}

// store caches m under key unless a concurrent load got there first, and returns
// whichever model ends up cached.
func (l *loader) store(key string, m model.Model) model.Model {
	l.mu.Lock()
	defer l.mu.Unlock()
	if existing, ok := l.modelCache[key]; ok {
		return existing
	}
	l.modelCache[key] = m
	return m
}

// resolveBackend selects an appropriate loader backend based on the file extension.
// Currently only RWX is supported.
func (l *loader) resolveBackend(path string) (loaderBackend, error) {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".rwx":
		return l.backend, nil
	default:
		return nil, fmt.Errorf("unsupported model format: %q", ext)
	}
}

// importedToModel converts an ImportedModel (CPU data) into a Model (engine-ready).
// It combines all mesh vertex and index data into single buffers and builds a
// render material for every imported material, keyed to the model's pipeline.
//
// Parameters:
//   - imported: the CPU-side ImportedModel containing the decoded geometry, meshes and materials
//
// Returns:
//   - model.Model: the engine-ready Model
func (l *loader) importedToModel(imported *model.ImportedModel) model.Model {
	mats := make([]material.Material, len(imported.Materials))
	for i, imp := range imported.Materials {
		mats[i] = material.NewMaterial(
			material.WithImportedMaterial(imp),
			material.WithPipelineKey(pipelineKey(imported.Name, imp.GeometrySampling.String(), imp.MaterialMode.String())),
		)
	}

	return model.NewModel(
		model.WithImported(imported),
		model.WithMaterials(mats...),
	)
}

// pipelineKey names the render pipeline variant a material needs: one per model,
// rasterization mode and sidedness.
func pipelineKey(modelName, geometry, mode string) string {
	return modelName + ":" + geometry + ":" + mode
}
