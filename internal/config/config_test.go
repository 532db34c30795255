package config

import (
	"context"
	"testing"

	"github.com/specialistvlad/kiln/internal/ctxlog"
	"github.com/specialistvlad/kiln/internal/registry"
	"github.com/specialistvlad/kiln/internal/testutil"
	"github.com/stretchr/testify/require"
)

func TestPopulate(t *testing.T) {
	t.Parallel()
	logger, logs := testutil.NewLogger(t)
	ctx := ctxlog.WithLogger(context.Background(), logger)
	reg := registry.New(logger)

	Populate(ctx, reg, &Model{Projects: []ProjectSpec{
		{
			Name:        "app",
			Type:        "application",
			Files:       []string{"src/*.c", "main.c"},
			IncludeDirs: []string{"include"},
			Defines:     []string{"VERSION=1"},
			Flags:       []string{"-Wall"},
			Links:       []string{"m"},
			Configs: []ConfigSpec{
				{Name: "debug", TargetDir: "bin/debug", ObjDir: "obj/debug", Flags: []string{"-g"}, Defines: []string{"DEBUG"}},
				{Name: "release", TargetDir: "bin/release", ObjDir: "obj/release"},
			},
		},
		{Name: "weird", Type: "plugin"},
		{Name: "app", Type: "static"},
	}})

	projects := reg.Projects()
	require.Len(t, projects, 2)

	app := projects[0]
	require.Equal(t, registry.Application, app.Type, "a repeated project keeps its first declaration")
	require.Len(t, app.Wildcards(), 2)
	require.Equal(t, []string{"VERSION=1"}, app.Defines())
	require.Equal(t, []string{"-Wall"}, app.Flags())
	require.Len(t, app.Links(), 1)

	configs := app.Configs()
	require.Len(t, configs, 2)
	require.Equal(t, "debug", configs[0].Name)
	require.Equal(t, []string{"-g"}, configs[0].Flags())
	require.Equal(t, []string{"DEBUG"}, configs[0].Defines())
	require.Equal(t, "release", configs[1].Name)

	require.Equal(t, registry.InvalidProjectType, projects[1].Type)
	require.Contains(t, logs.String(), "Unknown project type.")
	require.Contains(t, logs.String(), "Project already exists.")
}

func TestModelValidate(t *testing.T) {
	t.Parallel()
	require.NoError(t, (&Model{}).Validate())

	m := &Model{Projects: []ProjectSpec{
		{Type: "application"},
		{Name: "a", Configs: []ConfigSpec{{TargetDir: "bin", ObjDir: "obj"}}},
		{Name: "b", Configs: []ConfigSpec{{Name: "debug", ObjDir: "obj"}}},
		{Name: "c", Configs: []ConfigSpec{{Name: "debug", TargetDir: "bin"}}},
	}}
	err := m.Validate()
	require.Error(t, err)
	require.ErrorContains(t, err, "project #1: name is required")
	require.ErrorContains(t, err, `project "a": config #1: name is required`)
	require.ErrorContains(t, err, `config "debug": target_dir is required`)
	require.ErrorContains(t, err, `config "debug": obj_dir is required`)
}
