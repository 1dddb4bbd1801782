package analyzer

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

// Conventional location of the test property overrides.
const testPropertiesPath = "src/test/resources/application-test.properties"

// @Value("${app.secret}") and @Value("${app.secret:fallback}") both inject
// the key app.secret; the default clause is not part of the key.
var valueInjectionRe = regexp.MustCompile(`@Value\(\s*"\$\{([^}:"]+)(?::[^}"]*)?\}"`)

// MissingTestProperties collects every externally-injected property key in
// the production tree and reports which of them the test properties file does
// not define. When the file itself is absent every key is missing and the
// report says so explicitly.
func (a *Analyzer) MissingTestProperties(root string) (*PropertiesReport, error) {
	paths, err := a.locator.FindSources(root, "*")
	if err != nil {
		return nil, err
	}

	keys := []string{}
	for _, src := range readAll(paths) {
		for _, m := range valueInjectionRe.FindAllStringSubmatch(src.Text, -1) {
			keys = appendUnique(keys, m[1])
		}
	}

	report := &PropertiesReport{
		Found:             true,
		TotalProperties:   len(keys),
		MissingProperties: []string{},
	}

	defined := map[string]bool{}
	data, err := os.ReadFile(filepath.Join(root, filepath.FromSlash(testPropertiesPath)))
	if err == nil {
		report.TestPropertiesFileExists = true
		for _, line := range strings.Split(string(data), "\n") {
			line = strings.TrimSpace(line)
			if line == "" || strings.HasPrefix(line, "#") || strings.HasPrefix(line, "!") {
				continue
			}
			if eq := strings.IndexAny(line, "=:"); eq > 0 {
				defined[strings.TrimSpace(line[:eq])] = true
			}
		}
	}

	for _, key := range keys {
		if !defined[key] {
			report.MissingProperties = append(report.MissingProperties, key)
		}
	}

	switch {
	case !report.TestPropertiesFileExists:
		report.Action = "Create " + testPropertiesPath + " and define every injected property."
	case len(report.MissingProperties) > 0:
		report.Action = "Add the missing keys to " + testPropertiesPath + " before running the test suite."
	default:
		report.Action = "All injected properties are covered by the test properties file."
	}

	return report, nil
}
