package catalog

import (
	"bytes"
	"context"
	_ "embed"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"groeipaden_app/internal/models"
)

//go:embed data/routes.nl.json
var defaultDataset []byte

// Format is the encoding of a dataset file
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// FormatFromPath picks the dataset format from a file extension
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))
	}
}

// Decode reads a {"routes": [...]} document
func Decode(r io.Reader, format Format) ([]models.Route, error) {
	var doc models.RoutesData

	switch format {
	case FormatJSON:
		if err := json.NewDecoder(r).Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode json dataset: %w", err)
		}
	case FormatYAML:
		if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode yaml dataset: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}

	if len(doc.Routes) == 0 {
		return nil, ErrEmptyDataset
	}
	return doc.Routes, nil
}

// EmbeddedSource serves the dataset compiled into the binary
type EmbeddedSource struct{}

func (EmbeddedSource) Name() string { return "embedded:routes.nl.json" }

func (EmbeddedSource) Load(ctx context.Context) ([]models.Route, error) {
	return Decode(bytes.NewReader(defaultDataset), FormatJSON)
}

// FileSource reads a JSON or YAML dataset from disk
type FileSource struct {
	Path string
}

func (s FileSource) Name() string { return "file:" + s.Path }

func (s FileSource) Load(ctx context.Context) ([]models.Route, error) {
	format, err := FormatFromPath(s.Path)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(s.Path)
	if err != nil {
		return nil, fmt.Errorf("open dataset: %w", err)
	}
	defer f.Close()

	return Decode(f, format)
}
