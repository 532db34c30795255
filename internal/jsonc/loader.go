// Package jsonc loads build descriptions written in JSON. Comments and
// trailing commas are accepted.
package jsonc

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/specialistvlad/kiln/internal/config"
	"github.com/specialistvlad/kiln/internal/ctxlog"
	"github.com/tidwall/jsonc"
)

// Loader is the JSONC implementation of config.Loader.
type Loader struct{}

// NewLoader creates a new JSONC description loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load reads the JSONC file at path.
func (l *Loader) Load(ctx context.Context, path string) (*config.Model, error) {
	ctxlog.FromContext(ctx).Debug("JSONC loader started.", "path", path)

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	model, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return model, nil
}

// Parse strips comments and trailing commas from data, then decodes and
// validates the description. Unknown fields are rejected.
func Parse(data []byte) (*config.Model, error) {
	dec := json.NewDecoder(bytes.NewReader(jsonc.ToJSON(data)))
	dec.DisallowUnknownFields()

	var model config.Model
	if err := dec.Decode(&model); err != nil {
		return nil, fmt.Errorf("parsing description: %w", err)
	}
	if err := model.Validate(); err != nil {
		return nil, err
	}
	return &model, nil
}
