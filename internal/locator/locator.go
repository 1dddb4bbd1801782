package locator

import (
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"
)

// Conventional Maven source subtrees.
const (
	MainTree = "src/main/java"
	TestTree = "src/test/java"
)

// Locator resolves name globs to source files under a project root.
type Locator struct {
	ignored []string
}

// NewLocator creates a new locator instance.
func NewLocator() *Locator {
	return &Locator{
		ignored: []string{".git", "target", "node_modules"},
	}
}

// FindSources returns every .java file under the production-source subtree
// whose base name (without extension) matches the given case-sensitive glob
// pattern. The order follows filesystem traversal order, which is not
// guaranteed to be stable across platforms.
func (l *Locator) FindSources(root, pattern string) ([]string, error) {
	return l.find(root, MainTree, pattern)
}

// FindTestSources is FindSources scoped to the test-source subtree.
func (l *Locator) FindTestSources(root, pattern string) ([]string, error) {
	return l.find(root, TestTree, pattern)
}

func (l *Locator) find(root, subtree, pattern string) ([]string, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("project root %s: %w", root, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("project root %s is not a directory", root)
	}

	base := filepath.Join(root, filepath.FromSlash(subtree))
	if _, err := os.Stat(base); err != nil {
		// A missing source subtree is not an error; the project may simply
		// not have one (e.g. a test-only module).
		return []string{}, nil
	}

	matches := []string{}
	err = filepath.WalkDir(base, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if d.IsDir() {
			for _, ign := range l.ignored {
				if d.Name() == ign {
					return filepath.SkipDir
				}
			}
			return nil
		}

		if !strings.HasSuffix(d.Name(), ".java") {
			return nil
		}

		stem := strings.TrimSuffix(d.Name(), ".java")
		ok, matchErr := path.Match(pattern, stem)
		if matchErr != nil {
			return fmt.Errorf("bad name pattern %q: %w", pattern, matchErr)
		}
		if ok {
			abs, absErr := filepath.Abs(p)
			if absErr != nil {
				abs = p
			}
			matches = append(matches, abs)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return matches, nil
}
