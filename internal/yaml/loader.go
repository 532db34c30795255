// Package yaml loads build descriptions written in YAML.
//
//	projects:
//	  - name: app
//	    type: application
//	    files: ["src/*.c"]
//	    configs:
//	      - name: debug
//	        target_dir: bin/debug
//	        obj_dir: obj/debug
package yaml

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/specialistvlad/kiln/internal/config"
	"github.com/specialistvlad/kiln/internal/ctxlog"
	"gopkg.in/yaml.v3"
)

// Loader is the YAML implementation of config.Loader.
type Loader struct{}

// NewLoader creates a new YAML description loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load reads the YAML file at path. Unknown keys are rejected.
func (l *Loader) Load(ctx context.Context, path string) (*config.Model, error) {
	ctxlog.FromContext(ctx).Debug("YAML loader started.", "path", path)

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

// Parse decodes and validates a YAML description. An empty document is an
// empty model.
func Parse(data []byte) (*config.Model, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var model config.Model
	if err := dec.Decode(&model); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parsing description: %w", err)
	}
	if err := model.Validate(); err != nil {
		return nil, err
	}
	return &model, nil
}
