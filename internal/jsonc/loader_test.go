package jsonc

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/specialistvlad/kiln/internal/config"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "kiln.jsonc")
	require.NoError(t, os.WriteFile(path, []byte(`{
  // The main program.
  "projects": [
    {
      "name": "app",
      "type": "application",
      "files": ["*.c"],
      "flags": ["-Wall",], /* trailing commas are fine */
      "configs": [
        {"name": "release", "target_dir": "bin", "obj_dir": "obj", "defines": ["NDEBUG"]},
      ],
    },
  ],
}`), 0o644))

	model, err := NewLoader().Load(context.Background(), path)
	require.NoError(t, err)

	want := &config.Model{Projects: []config.ProjectSpec{{
		Name:  "app",
		Type:  "application",
		Files: []string{"*.c"},
		Flags: []string{"-Wall"},
		Configs: []config.ConfigSpec{
			{Name: "release", TargetDir: "bin", ObjDir: "obj", Defines: []string{"NDEBUG"}},
		},
	}}}
	if diff := cmp.Diff(want, model); diff != "" {
		t.Errorf("model mismatch (-want +got):\n%s", diff)
	}
}

func TestParse_Errors(t *testing.T) {
	t.Parallel()

	_, err := Parse([]byte(`{"projects": [{"name": "a", "sources": []}]}`))
	require.ErrorContains(t, err, `unknown field "sources"`)

	_, err = Parse([]byte(`{"projects": [{"type": "app"}]}`))
	require.ErrorContains(t, err, "name is required")

	_, err = Parse([]byte(`{"projects": [`))
	require.ErrorContains(t, err, "parsing description")
}
