package maven

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"time"

	"github.com/ternarybob/arbor"
)

// Hard wall-clock limits per operation. On expiry the subprocess is killed
// and a failure outcome is synthesized; there is no retry.
const (
	CompileTimeout = 180 * time.Second
	TestTimeout    = 120 * time.Second
)

// Invoker runs Maven as a subprocess in a project directory and feeds the
// combined output to the parser.
type Invoker struct {
	logger         arbor.ILogger
	compileTimeout time.Duration
	testTimeout    time.Duration
}

// NewInvoker creates a new invoker instance with the default timeouts.
func NewInvoker(logger arbor.ILogger) *Invoker {
	return &Invoker{
		logger:         logger,
		compileTimeout: CompileTimeout,
		testTimeout:    TestTimeout,
	}
}

// WithTimeouts overrides the per-operation limits. A zero duration keeps the
// corresponding default.
func (i *Invoker) WithTimeouts(compile, test time.Duration) *Invoker {
	if compile > 0 {
		i.compileTimeout = compile
	}
	if test > 0 {
		i.testTimeout = test
	}
	return i
}

// Compile runs clean test-compile and classifies the result. Subprocess
// start failures and timeouts come back as failure outcomes, never as
// errors.
func (i *Invoker) Compile(ctx context.Context, root string) *BuildOutcome {
	output, runErr := i.run(ctx, root, i.compileTimeout, "clean", "test-compile")

	if runErr != nil {
		return &BuildOutcome{
			Success: false,
			Message: runErr.message,
			Errors:  []string{tail(output, outputTailLen)},
		}
	}
	return ParseCompileOutput(output)
}

// RunTests runs the test phase, optionally filtered to one class or one
// Class#method, and classifies the result.
func (i *Invoker) RunTests(ctx context.Context, root, class, method string) *TestOutcome {
	args := []string{"test"}
	if class != "" {
		filter := class
		if method != "" {
			filter = class + "#" + method
		}
		args = append(args, "-Dtest="+filter)
	}

	output, runErr := i.run(ctx, root, i.testTimeout, args...)

	if runErr != nil {
		return &TestOutcome{
			Success:        false,
			Unparseable:    true,
			RawTail:        tail(output, outputTailLen),
			Recommendation: runErr.message,
		}
	}
	return ParseTestOutput(output)
}

// runFailure marks a run that produced no parseable console result: the
// subprocess could not start or was killed at the deadline. A non-zero exit
// with output is not a runFailure; the parser classifies that.
type runFailure struct {
	message string
}

func (i *Invoker) run(ctx context.Context, root string, timeout time.Duration, args ...string) (string, *runFailure) {
	command := Command(root)

	tctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	cmd := exec.CommandContext(tctx, command, append([]string{"-B"}, args...)...)
	cmd.Dir = root

	i.logger.Debug().Str("command", command).Str("dir", root).Msg("Running Maven")

	out, err := cmd.CombinedOutput()
	output := string(out)

	if errors.Is(tctx.Err(), context.DeadlineExceeded) {
		i.logger.Warn().Str("dir", root).Msg("Maven run timed out")
		return output, &runFailure{
			message: fmt.Sprintf("Maven did not finish within %s and was terminated.", timeout),
		}
	}
	if err != nil && len(out) == 0 {
		// Never started: command missing, bad permissions, bad directory.
		return output, &runFailure{
			message: fmt.Sprintf("Failed to start %s: %v", command, err),
		}
	}

	// A non-zero exit with console output is the normal failure path; the
	// output carries the diagnosis.
	return output, nil
}
