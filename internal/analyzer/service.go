package analyzer

import "regexp"

var (
	repoFieldRe     = regexp.MustCompile(`private\s+(?:final\s+)?(\w+Repository)\s+\w+\s*;`)
	publicMethodRe  = regexp.MustCompile(`(?m)^\s*public\s+[\w.<>,\s\[\]?]+?\s(\w+)\s*\(`)
	throwRe         = regexp.MustCompile(`throw\s+new\s+(\w+)\s*\(`)
	transactionalRe = regexp.MustCompile(`@Transactional`)
)

// ServiceDependencies reports one service class's injected repositories,
// public method surface, explicitly thrown exception types, and whether a
// transactional boundary annotation is present.
func (a *Analyzer) ServiceDependencies(root, service string) (*ServiceReport, error) {
	paths, err := a.locator.FindSources(root, service)
	if err != nil {
		return nil, err
	}

	_, text := readFirst(paths)
	if text == "" {
		return &ServiceReport{Found: false}, nil
	}

	report := &ServiceReport{
		Found:   true,
		Service: service,
	}

	for _, m := range repoFieldRe.FindAllStringSubmatch(text, -1) {
		report.Repositories = appendUnique(report.Repositories, m[1])
	}
	for _, m := range publicMethodRe.FindAllStringSubmatch(text, -1) {
		if m[1] == service {
			// Constructor, not part of the method surface.
			continue
		}
		report.PublicMethods = append(report.PublicMethods, m[1])
	}
	for _, m := range throwRe.FindAllStringSubmatch(text, -1) {
		report.ThrownExceptions = appendUnique(report.ThrownExceptions, m[1])
	}
	report.Transactional = transactionalRe.MatchString(text)

	if len(report.ThrownExceptions) > 0 {
		report.Recommendation = "Cover the thrown exception paths alongside the happy path when testing this service."
	} else {
		report.Recommendation = "No explicit throw sites found; focus tests on the public method surface."
	}
	return report, nil
}
