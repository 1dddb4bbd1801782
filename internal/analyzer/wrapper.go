package analyzer

import (
	"path/filepath"
	"regexp"
	"strings"
)

const defaultWrapperField = "data"

var (
	wrapperContractRe = regexp.MustCompile(`implements\s+ResponseBodyAdvice`)
	wrapperFieldRe    = regexp.MustCompile(`private\s+(?:final\s+)?\w+(?:<[^>]*>)?\s+([a-z]\w*)\s*;`)
)

// ResponseWrapper reports whether the project wraps controller responses in a
// global envelope, and which field the payload sits under. The field name is
// a best-effort scan of the wrapper class's declarations; when nothing looks
// like a payload field the conventional name "data" is assumed.
func (a *Analyzer) ResponseWrapper(root string) (*WrapperReport, error) {
	paths, err := a.locator.FindSources(root, "*")
	if err != nil {
		return nil, err
	}

	for _, src := range readAll(paths) {
		if !wrapperContractRe.MatchString(src.Text) {
			continue
		}

		field := defaultWrapperField
		if m := wrapperFieldRe.FindStringSubmatch(src.Text); m != nil {
			field = m[1]
		}

		class := strings.TrimSuffix(filepath.Base(src.Path), ".java")
		return &WrapperReport{
			HasWrapper:     true,
			WrapperClass:   class,
			WrapperField:   field,
			JSONPathPrefix: "$." + field + ".",
			Recommendation: "Response bodies are wrapped; point JSON-path assertions at the " + field + " field.",
		}, nil
	}

	return &WrapperReport{
		HasWrapper:     false,
		Recommendation: "No response wrapper found; assert on the raw response body.",
	}, nil
}
