package analyzer

import (
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/ternarybob/arbor"
)

// demoRoot points at the fixture Spring project used by all extractor tests.
func demoRoot(t *testing.T) string {
	t.Helper()
	root, err := filepath.Abs(filepath.Join("testdata", "demo"))
	require.NoError(t, err)
	return root
}

func newTestAnalyzer() *Analyzer {
	return NewAnalyzer(arbor.NewLogger().WithLevelFromString("error"))
}

func TestExtractors_UnknownFocalName(t *testing.T) {
	a := newTestAnalyzer()
	root := demoRoot(t)

	t.Run("Entity", func(t *testing.T) {
		report, err := a.EntityRelationships(root, "NoSuchEntity")
		require.NoError(t, err)
		require.False(t, report.Found)
		require.Empty(t, report.CreationOrder)
	})

	t.Run("Controller", func(t *testing.T) {
		report, err := a.ControllerEndpoints(root, "NoSuchController")
		require.NoError(t, err)
		require.False(t, report.Found)
		require.Empty(t, report.Endpoints)
	})

	t.Run("Repository", func(t *testing.T) {
		report, err := a.RepositoryMethods(root, "NoSuchRepository")
		require.NoError(t, err)
		require.False(t, report.Found)
	})

	t.Run("Service", func(t *testing.T) {
		report, err := a.ServiceDependencies(root, "NoSuchService")
		require.NoError(t, err)
		require.False(t, report.Found)
	})
}

func TestExtractors_Idempotent(t *testing.T) {
	a := newTestAnalyzer()
	root := demoRoot(t)

	first, err := a.MissingTestProperties(root)
	require.NoError(t, err)
	second, err := a.MissingTestProperties(root)
	require.NoError(t, err)

	firstJSON, err := json.Marshal(first)
	require.NoError(t, err)
	secondJSON, err := json.Marshal(second)
	require.NoError(t, err)
	require.Equal(t, firstJSON, secondJSON, "Repeated runs over an unchanged corpus must be byte-identical")
}
