package analyzer

import (
	"path/filepath"
	"regexp"
	"strings"
)

var (
	columnNameRe       = regexp.MustCompile(`@(?:Column|Table|JoinColumn)\s*\([^)]*name\s*=\s*"([^"]+)"`)
	explicitStrategyRe = regexp.MustCompile(`PhysicalNamingStrategy|ImplicitNamingStrategy`)
)

// NamingStrategy tallies column/table naming markers across the production
// tree (optionally restricted to one package path) and reports the majority
// convention. A file counts as snake_case when any explicit name literal
// contains an underscore, as explicit when it references a naming-strategy
// type, and as default otherwise.
func (a *Analyzer) NamingStrategy(root, packagePath string) (*NamingReport, error) {
	paths, err := a.locator.FindSources(root, "*")
	if err != nil {
		return nil, err
	}

	if packagePath != "" {
		fragment := filepath.FromSlash(strings.ReplaceAll(packagePath, ".", "/"))
		filtered := paths[:0]
		for _, p := range paths {
			if strings.Contains(p, fragment) {
				filtered = append(filtered, p)
			}
		}
		paths = filtered
	}

	report := &NamingReport{}

	for _, src := range readAll(paths) {
		report.FilesScanned++

		snake := false
		for _, m := range columnNameRe.FindAllStringSubmatch(src.Text, -1) {
			if strings.Contains(m[1], "_") {
				snake = true
				break
			}
		}

		switch {
		case snake:
			report.SnakeCase++
		case explicitStrategyRe.MatchString(src.Text):
			report.ExplicitStrategy++
		default:
			report.DefaultStrategy++
		}
	}

	switch {
	case report.SnakeCase >= report.ExplicitStrategy && report.SnakeCase >= report.DefaultStrategy && report.SnakeCase > 0:
		report.Majority = "snake_case"
		report.Recommendation = "Explicit snake_case column names dominate; mirror them in native queries and test fixtures."
	case report.ExplicitStrategy >= report.DefaultStrategy && report.ExplicitStrategy > 0:
		report.Majority = "explicit_strategy"
		report.Recommendation = "An explicit naming strategy is configured; column names come from the strategy, not the field names."
	default:
		report.Majority = "default"
		report.Recommendation = "No naming markers found; Hibernate's default camel-to-snake mapping applies."
	}

	return report, nil
}
