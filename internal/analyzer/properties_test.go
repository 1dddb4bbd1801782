package analyzer

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeSource(t *testing.T, root, rel, content string) {
	t.Helper()
	path := filepath.Join(root, filepath.FromSlash(rel))
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestMissingTestProperties(t *testing.T) {
	a := newTestAnalyzer()

	report, err := a.MissingTestProperties(demoRoot(t))
	require.NoError(t, err)
	require.True(t, report.Found)

	assert.Equal(t, 3, report.TotalProperties)
	assert.True(t, report.TestPropertiesFileExists)
	assert.Equal(t, []string{"app.storage.bucket"}, report.MissingProperties)
	assert.NotEmpty(t, report.Action)
}

func TestMissingTestProperties_NoInjections(t *testing.T) {
	a := newTestAnalyzer()
	root := t.TempDir()
	writeSource(t, root, "src/main/java/com/example/Plain.java", "public class Plain {}\n")

	report, err := a.MissingTestProperties(root)
	require.NoError(t, err)

	assert.Equal(t, 0, report.TotalProperties)
	assert.Empty(t, report.MissingProperties)
	assert.False(t, report.TestPropertiesFileExists)
}

func TestMissingTestProperties_FileAbsent(t *testing.T) {
	a := newTestAnalyzer()
	root := t.TempDir()
	writeSource(t, root, "src/main/java/com/example/Config.java", `
public class Config {
    @Value("${db.url}")
    private String url;

    @Value("${db.pool-size:10}")
    private int poolSize;
}
`)

	report, err := a.MissingTestProperties(root)
	require.NoError(t, err)

	assert.False(t, report.TestPropertiesFileExists)
	assert.Equal(t, 2, report.TotalProperties)
	assert.Equal(t, []string{"db.url", "db.pool-size"}, report.MissingProperties)
}
