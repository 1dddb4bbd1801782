package maven

import (
	"regexp"
	"strconv"
	"strings"
)

// Response-size bounds. These are product decisions, not parser necessities.
const (
	maxCompileErrors   = 10
	maxFailureExcerpts = 5
	failureExcerptLen  = 200
	outputTailLen      = 1000
)

const (
	buildSuccessSentinel = "BUILD SUCCESS"
	errorLineMarker      = "[ERROR] "
)

var testSummaryRe = regexp.MustCompile(`Tests run: (\d+), Failures: (\d+), Errors: (\d+), Skipped: (\d+)`)

// BuildOutcome classifies one compile run.
type BuildOutcome struct {
	Success        bool     `json:"success"`
	Message        string   `json:"message"`
	Errors         []string `json:"errors"`
	Recommendation string   `json:"recommendation,omitempty"`
}

// TestOutcome classifies one test run. When Maven's summary line is missing
// from the output, Unparseable is set and RawTail carries the evidence
// instead of structured counts.
type TestOutcome struct {
	Success         bool     `json:"success"`
	TestsRun        int      `json:"testsRun"`
	Failures        int      `json:"failures"`
	Errors          int      `json:"errors"`
	Skipped         int      `json:"skipped"`
	FailureMessages []string `json:"failureMessages,omitempty"`
	Unparseable     bool     `json:"unparseable,omitempty"`
	RawTail         string   `json:"rawTail,omitempty"`
	Recommendation  string   `json:"recommendation,omitempty"`
}

// ParseCompileOutput classifies captured Maven output for a compile run.
// Success is keyed on the BUILD SUCCESS sentinel; on failure up to
// maxCompileErrors [ERROR] lines are collected in source order, marker
// stripped.
func ParseCompileOutput(output string) *BuildOutcome {
	if strings.Contains(output, buildSuccessSentinel) {
		return &BuildOutcome{
			Success: true,
			Message: "Compilation succeeded.",
			Errors:  []string{},
		}
	}

	errors := []string{}
	for _, line := range strings.Split(output, "\n") {
		idx := strings.Index(line, errorLineMarker)
		if idx < 0 {
			continue
		}
		errors = append(errors, strings.TrimSpace(line[idx+len(errorLineMarker):]))
		if len(errors) == maxCompileErrors {
			break
		}
	}

	return &BuildOutcome{
		Success:        false,
		Message:        "Compilation failed.",
		Errors:         errors,
		Recommendation: "Fix the reported compile errors, earliest first; later ones are often cascades.",
	}
}

// ParseTestOutput classifies captured Maven output for a test run. The last
// summary line wins, since Maven prints per-class counts before the
// aggregate.
func ParseTestOutput(output string) *TestOutcome {
	matches := testSummaryRe.FindAllStringSubmatch(output, -1)
	if len(matches) == 0 {
		return &TestOutcome{
			Success:        false,
			Unparseable:    true,
			RawTail:        tail(output, outputTailLen),
			Recommendation: "No test summary line found in the Maven output; inspect rawTail for what happened.",
		}
	}

	last := matches[len(matches)-1]
	outcome := &TestOutcome{
		TestsRun: atoi(last[1]),
		Failures: atoi(last[2]),
		Errors:   atoi(last[3]),
		Skipped:  atoi(last[4]),
	}
	outcome.Success = outcome.Failures == 0 && outcome.Errors == 0

	if outcome.Success {
		outcome.Recommendation = "All tests passed."
		return outcome
	}

	for _, line := range strings.Split(output, "\n") {
		if !strings.Contains(line, "<<< FAILURE!") && !strings.Contains(line, "<<< ERROR!") {
			continue
		}
		outcome.FailureMessages = append(outcome.FailureMessages, truncate(strings.TrimSpace(line), failureExcerptLen))
		if len(outcome.FailureMessages) == maxFailureExcerpts {
			break
		}
	}
	outcome.Recommendation = "Re-run the failing tests individually with -Dtest=Class#method to isolate them."
	return outcome
}

func atoi(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max]
}

// tail returns the last n bytes of s.
func tail(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[len(s)-n:]
}
