package maven

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ternarybob/arbor"
)

func newTestInvoker() *Invoker {
	return NewInvoker(arbor.NewLogger().WithLevelFromString("error"))
}

// writeWrapper plants a fake mvnw script so runs stay inside the sandbox.
func writeWrapper(t *testing.T, root, script string) {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("shell-script wrapper fake requires a POSIX shell")
	}
	require.NoError(t, os.WriteFile(filepath.Join(root, "mvnw"), []byte(script), 0o755))
}

func TestInvoker_Compile(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		root := t.TempDir()
		writeWrapper(t, root, "#!/bin/sh\necho '[INFO] Compiling'\necho 'BUILD SUCCESS'\n")

		outcome := newTestInvoker().Compile(context.Background(), root)

		assert.True(t, outcome.Success)
		assert.Empty(t, outcome.Errors)
	})

	t.Run("Compile Errors", func(t *testing.T) {
		root := t.TempDir()
		writeWrapper(t, root, "#!/bin/sh\necho '[ERROR] Foo.java:[4,2] cannot find symbol'\nexit 1\n")

		outcome := newTestInvoker().Compile(context.Background(), root)

		assert.False(t, outcome.Success)
		assert.Equal(t, []string{"Foo.java:[4,2] cannot find symbol"}, outcome.Errors)
	})

	t.Run("Start Failure", func(t *testing.T) {
		root := t.TempDir()
		writeWrapper(t, root, "#!/no/such/interpreter\n")

		outcome := newTestInvoker().Compile(context.Background(), root)

		assert.False(t, outcome.Success)
		assert.Contains(t, outcome.Message, "Failed to start")
	})
}

func TestInvoker_RunTests(t *testing.T) {
	t.Run("Passes Filter Arguments", func(t *testing.T) {
		root := t.TempDir()
		writeWrapper(t, root, "#!/bin/sh\necho \"$@\" > args.txt\necho 'Tests run: 1, Failures: 0, Errors: 0, Skipped: 0'\n")

		outcome := newTestInvoker().RunTests(context.Background(), root, "OrderServiceTest", "createsOrder")

		assert.True(t, outcome.Success)
		assert.Equal(t, 1, outcome.TestsRun)

		args, err := os.ReadFile(filepath.Join(root, "args.txt"))
		require.NoError(t, err)
		assert.Equal(t, "-B test -Dtest=OrderServiceTest#createsOrder", strings.TrimSpace(string(args)))
	})

	t.Run("Class Only Filter", func(t *testing.T) {
		root := t.TempDir()
		writeWrapper(t, root, "#!/bin/sh\necho \"$@\" > args.txt\necho 'Tests run: 3, Failures: 0, Errors: 0, Skipped: 0'\n")

		outcome := newTestInvoker().RunTests(context.Background(), root, "OrderServiceTest", "")
		assert.True(t, outcome.Success)

		args, err := os.ReadFile(filepath.Join(root, "args.txt"))
		require.NoError(t, err)
		assert.Equal(t, "-B test -Dtest=OrderServiceTest", strings.TrimSpace(string(args)))
	})

	t.Run("Failure Output Parsed", func(t *testing.T) {
		root := t.TempDir()
		writeWrapper(t, root, "#!/bin/sh\n"+
			"echo '[ERROR] createsOrder(OrderServiceTest)  <<< FAILURE!'\n"+
			"echo 'Tests run: 2, Failures: 1, Errors: 0, Skipped: 0'\nexit 1\n")

		outcome := newTestInvoker().RunTests(context.Background(), root, "", "")

		assert.False(t, outcome.Success)
		assert.Equal(t, 1, outcome.Failures)
		require.Len(t, outcome.FailureMessages, 1)
		assert.Contains(t, outcome.FailureMessages[0], "createsOrder")
	})
}

func TestInvoker_WithTimeouts(t *testing.T) {
	i := newTestInvoker().WithTimeouts(0, 30*time.Second)

	assert.Equal(t, CompileTimeout, i.compileTimeout)
	assert.Equal(t, 30*time.Second, i.testTimeout)
}

func TestInvoker_Timeout(t *testing.T) {
	root := t.TempDir()
	writeWrapper(t, root, "#!/bin/sh\nsleep 5\necho 'BUILD SUCCESS'\n")

	i := newTestInvoker()
	_, runErr := i.run(context.Background(), root, 100*time.Millisecond, "test")

	require.NotNil(t, runErr)
	assert.Contains(t, runErr.message, "did not finish")
}
