package analyzer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNamingStrategy(t *testing.T) {
	a := newTestAnalyzer()

	t.Run("Whole Tree", func(t *testing.T) {
		report, err := a.NamingStrategy(demoRoot(t), "")
		require.NoError(t, err)

		assert.Equal(t, 13, report.FilesScanned)
		assert.Equal(t, 3, report.SnakeCase)
		assert.Equal(t, 0, report.ExplicitStrategy)
		assert.Equal(t, 10, report.DefaultStrategy)
		assert.Equal(t, "default", report.Majority)
		assert.NotEmpty(t, report.Recommendation)
	})

	t.Run("Scoped To Package", func(t *testing.T) {
		report, err := a.NamingStrategy(demoRoot(t), "com.example.domain")
		require.NoError(t, err)

		assert.Equal(t, 3, report.FilesScanned)
		assert.Equal(t, 3, report.SnakeCase)
		assert.Equal(t, "snake_case", report.Majority)
	})

	t.Run("Empty Tree", func(t *testing.T) {
		report, err := a.NamingStrategy(t.TempDir(), "")
		require.NoError(t, err)

		assert.Equal(t, 0, report.FilesScanned)
	})
}
