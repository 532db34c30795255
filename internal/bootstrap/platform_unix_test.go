//go:build !windows

package bootstrap

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/specialistvlad/kiln/internal/testutil"
	"github.com/stretchr/testify/require"
)

func TestUnixPlatform_StageAndDiscard(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	exe := filepath.Join(dir, "kiln")
	staging := StagingPath(exe)
	testutil.WriteFile(t, exe, "old", time.Now())
	testutil.WriteFile(t, staging, "leftover", time.Now())

	p := Host()
	require.NoError(t, p.Stage(exe, staging))
	require.NoFileExists(t, exe)
	b, err := os.ReadFile(staging)
	require.NoError(t, err)
	require.Equal(t, "old", string(b), "staging replaces a leftover file")

	require.NoError(t, p.Discard(staging))
	require.NoFileExists(t, staging)
	require.NoError(t, p.Discard(staging), "discarding twice is harmless")
}
