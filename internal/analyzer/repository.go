package analyzer

import "regexp"

var (
	queryMethodRe = regexp.MustCompile(`(?m)^\s*(?:(@Query)(?:\([\s\S]*?\))?\s+)?[\w<>,.?\s\[\]]+?\s((?:find|count|exists|delete)\w*)\s*\(`)
	softDeleteRe  = regexp.MustCompile(`@Where\s*\([^)]*deleted[^)]*\)`)
	sqlDeleteRe   = regexp.MustCompile(`@SQLDelete\s*\([^)]*deleted[^)]*\)`)
)

// RepositoryMethods reports every declared method on one repository-like
// interface whose name starts with a query-verb prefix (find, count, exists,
// delete), tagged with whether an explicit @Query annotation backs it, and
// whether a soft-delete filter referencing a deleted column is in effect.
func (a *Analyzer) RepositoryMethods(root, repository string) (*RepositoryReport, error) {
	paths, err := a.locator.FindSources(root, repository)
	if err != nil {
		return nil, err
	}

	_, text := readFirst(paths)
	if text == "" {
		return &RepositoryReport{Found: false}, nil
	}

	report := &RepositoryReport{
		Found:      true,
		Repository: repository,
		Methods:    []QueryMethod{},
	}

	for _, m := range queryMethodRe.FindAllStringSubmatch(text, -1) {
		report.Methods = append(report.Methods, QueryMethod{
			Name:     m[2],
			HasQuery: m[1] != "",
		})
	}

	report.HasSoftDelete = softDeleteRe.MatchString(text) || sqlDeleteRe.MatchString(text)

	if report.HasSoftDelete {
		report.Recommendation = "A soft-delete filter is active; deleted rows stay in the table but are excluded from derived queries."
	} else {
		report.Recommendation = "Derived query methods follow Spring Data naming; no soft-delete filter found."
	}
	return report, nil
}
