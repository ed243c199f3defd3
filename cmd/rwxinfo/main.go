// Command rwxinfo decodes RWX model files and prints a summary or a full YAML dump.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/cli"
	"gopkg.in/yaml.v3"

	"github.com/Carmen-Shannon/oxy-rwx/engine/loader"
	"github.com/Carmen-Shannon/oxy-rwx/engine/model"
	"github.com/Carmen-Shannon/oxy-rwx/engine/profiler"
)

// Config is the configuration information for the rwxinfo cli.
type Config struct {

	// Files are the RWX documents to decode.
	Files []string `posarg:"leftover" required:"-"`

	// Format selects the info output format: text or yaml.
	Format string `default:"text" flag:"f,format"`

	// Workers is the number of files decoded in parallel. Zero uses one worker per CPU.
	Workers int `flag:"w,workers"`

	// TextureSignature makes texture and mask names part of material deduplication.
	TextureSignature bool `flag:"t,texture-signature"`

	// Verbose enables debug logging of skipped directives and decode summaries.
	Verbose bool `flag:"v,verbose"`

	// Profile logs decode throughput and memory statistics after loading.
	Profile bool `flag:"p,profile"`
}

// fileInfo is the per-file summary printed by Info.
type fileInfo struct {
	Name        string     `yaml:"name"`
	Vertices    int        `yaml:"vertices"`
	UVs         int        `yaml:"uvs"`
	Triangles   int        `yaml:"triangles"`
	Materials   int        `yaml:"materials"`
	Meshes      int        `yaml:"meshes"`
	BoundingMin [3]float32 `yaml:"bounding_min,flow"`
	BoundingMax [3]float32 `yaml:"bounding_max,flow"`
}

func main() { //types:skip
	opts := cli.DefaultOptions("rwxinfo", "Decode RWX model files and summarize or dump their geometry.")
	cli.Run(opts, &Config{}, Info, Dump)
}

// Info loads every file in parallel and prints vertex, triangle, material and mesh counts.
func Info(c *Config) error { //cli:cmd -root
	if len(c.Files) == 0 {
		return fmt.Errorf("no input files")
	}
	logger := newLogger(c)
	options := []loader.LoaderBuilderOption{
		loader.WithWorkers(c.Workers),
		loader.WithTextureSignature(c.TextureSignature),
		loader.WithLogger(logger),
	}
	var prof *profiler.Profiler
	if c.Profile {
		prof = profiler.NewProfiler()
		options = append(options, loader.WithProfiler(prof))
	}

	l := loader.NewLoader(loader.BackendTypeRWX, options...)
	models, err := l.LoadAll(c.Files)
	if err != nil {
		return err
	}
	if prof != nil {
		prof.Stop().Log(logger)
	}

	infos := make([]fileInfo, len(models))
	for i, m := range models {
		infos[i] = summarize(c.Files[i], m)
	}
	return writeInfo(os.Stdout, c.Format, infos)
}

// Dump decodes every file and writes the flat vertices, uvs, triangles and materials as YAML.
func Dump(c *Config) error {
	if len(c.Files) == 0 {
		return fmt.Errorf("no input files")
	}
	options := []loader.RWXOption{
		loader.WithRWXTextureSignature(c.TextureSignature),
		loader.WithRWXLogger(newLogger(c)),
	}
	enc := yaml.NewEncoder(os.Stdout)
	defer func() { errors.Log(enc.Close()) }()
	for _, path := range c.Files {
		result, err := decodeFile(path, options)
		if err != nil {
			return err
		}
		if err := enc.Encode(map[string]*loader.RWXResult{path: result}); err != nil {
			return fmt.Errorf("failed to encode %s: %w", path, err)
		}
	}
	return nil
}

func decodeFile(path string, options []loader.RWXOption) (*loader.RWXResult, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	result, err := loader.DecodeRWX(f, options...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return result, nil
}

func summarize(path string, m model.Model) fileInfo {
	info := fileInfo{
		Name:        path,
		Materials:   len(m.ImportedMaterials()),
		Meshes:      len(m.Meshes()),
		BoundingMin: m.BoundingMin(),
		BoundingMax: m.BoundingMax(),
	}
	if imp := m.Imported(); imp != nil {
		info.Vertices = len(imp.Vertices)
		info.UVs = len(imp.UVs)
		info.Triangles = len(imp.Triangles)
	}
	return info
}

func writeInfo(w io.Writer, format string, infos []fileInfo) error {
	switch format {
	case "yaml":
		enc := yaml.NewEncoder(w)
		if err := enc.Encode(infos); err != nil {
			return err
		}
		return enc.Close()
	case "text", "":
		for _, info := range infos {
			fmt.Fprintf(w, "%s: %d vertices, %d uvs, %d triangles, %d materials, %d meshes, bounds %v..%v\n",
				info.Name, info.Vertices, info.UVs, info.Triangles, info.Materials, info.Meshes,
				info.BoundingMin, info.BoundingMax)
		}
		return nil
	default:
		return fmt.Errorf("unknown format %q (want text or yaml)", format)
	}
}

func newLogger(c *Config) *slog.Logger {
	level := slog.LevelInfo
	if c.Verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}
