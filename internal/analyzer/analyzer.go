package analyzer

import (
	"os"

	"github.com/ternarybob/arbor"

	"springlens/internal/locator"
)

// Analyzer hosts the fact extractors. Each extractor is a stateless function
// of the project tree: it locates candidate files, scans their raw text with
// an ordered list of templates, and aggregates matches into a typed report.
// Nothing is parsed into a syntax tree and nothing is cached between calls.
type Analyzer struct {
	locator *locator.Locator
	logger  arbor.ILogger
}

// NewAnalyzer creates a new analyzer instance.
func NewAnalyzer(logger arbor.ILogger) *Analyzer {
	return &Analyzer{
		locator: locator.NewLocator(),
		logger:  logger,
	}
}

// readFirst reads the full text of the first located file, or ("", "") when
// the corpus is empty. Extractors treat the empty case as found:false.
func readFirst(paths []string) (path string, text string) {
	for _, p := range paths {
		data, err := os.ReadFile(p)
		if err != nil {
			continue
		}
		return p, string(data)
	}
	return "", ""
}

// readAll reads every located file, skipping unreadable ones.
func readAll(paths []string) []sourceText {
	out := make([]sourceText, 0, len(paths))
	for _, p := range paths {
		data, err := os.ReadFile(p)
		if err != nil {
			continue
		}
		out = append(out, sourceText{Path: p, Text: string(data)})
	}
	return out
}

type sourceText struct {
	Path string
	Text string
}

// appendUnique appends v unless already present, preserving first-seen order
// so repeated runs over an unchanged corpus stay byte-identical.
func appendUnique(list []string, v string) []string {
	for _, existing := range list {
		if existing == v {
			return list
		}
	}
	return append(list, v)
}
