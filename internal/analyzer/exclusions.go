package analyzer

import (
	"path/filepath"
	"regexp"
	"strings"
)

var (
	beanAnnotationRe = regexp.MustCompile(`@(?:Component|Service|Configuration|Repository)\b`)
	profileRe        = regexp.MustCompile(`@Profile\b`)

	// External-provider terms; a bean touching one of these usually cannot
	// run inside a plain test context and wants profile scoping.
	exclusionKeywords = []string{
		"aws", "s3", "gcs", "azure", "kafka", "rabbit", "redis",
		"sqs", "sns", "firebase", "smtp", "twilio", "elasticsearch",
	}
)

// ExclusionCandidates scans the production tree for bean-registering classes
// that lack an @Profile scope and whose file name or content mentions an
// external provider. These are the beans most likely to need exclusion from
// the test context.
func (a *Analyzer) ExclusionCandidates(root string) (*ExclusionReport, error) {
	paths, err := a.locator.FindSources(root, "*")
	if err != nil {
		return nil, err
	}

	report := &ExclusionReport{Candidates: []ExclusionCandidate{}}

	for _, src := range readAll(paths) {
		if !beanAnnotationRe.MatchString(src.Text) || profileRe.MatchString(src.Text) {
			continue
		}

		name := filepath.Base(src.Path)
		lowerName := strings.ToLower(name)
		lowerText := strings.ToLower(src.Text)

		matched := []string{}
		for _, kw := range exclusionKeywords {
			if strings.Contains(lowerName, kw) || strings.Contains(lowerText, kw) {
				matched = append(matched, kw)
			}
		}
		if len(matched) > 0 {
			report.Candidates = append(report.Candidates, ExclusionCandidate{
				File:     name,
				Keywords: matched,
			})
		}
	}

	report.Found = len(report.Candidates) > 0
	if report.Found {
		report.Recommendation = "Scope these beans with @Profile(\"!test\") or exclude them via test configuration."
	} else {
		report.Recommendation = "No unscoped provider beans found."
	}
	return report, nil
}
