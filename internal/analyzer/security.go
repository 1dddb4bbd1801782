package analyzer

import "regexp"

// Ordered accessor templates for standard JWT claims. Each template maps one
// accessor call shape to its registered claim name.
var standardClaimTemplates = []struct {
	claim string
	re    *regexp.Regexp
}{
	{"sub", regexp.MustCompile(`\w+\.getSubject\(\)`)},
	{"exp", regexp.MustCompile(`\w+\.getExpiration\(\)`)},
	{"iat", regexp.MustCompile(`\w+\.getIssuedAt\(\)`)},
	{"iss", regexp.MustCompile(`\w+\.getIssuer\(\)`)},
	{"aud", regexp.MustCompile(`\w+\.getAudience\(\)`)},
	{"jti", regexp.MustCompile(`\w+\.getId\(\)`)},
}

// Custom claims show up as string-literal lookups against the claim bag,
// either claims.get("role") or claims.get("role", String.class).
var customClaimRe = regexp.MustCompile(`claims\.get\(\s*"([^"]+)"`)

// JwtClaims scans the project's token utility and request filter classes and
// reports which JWT claims they read. Both name families are scanned and the
// results merged, since claim access is commonly split across the two.
func (a *Analyzer) JwtClaims(root string) (*ClaimsReport, error) {
	patterns := []string{"*JwtUtil*", "*TokenProvider*", "*Jwt*Filter*"}

	var sources []sourceText
	for _, pat := range patterns {
		paths, err := a.locator.FindSources(root, pat)
		if err != nil {
			return nil, err
		}
		sources = append(sources, readAll(paths)...)
	}

	if len(sources) == 0 {
		return &ClaimsReport{Found: false}, nil
	}
	a.logger.Debug().Int("sources", len(sources)).Msg("scanning token classes for claim access")

	report := &ClaimsReport{
		Found:          true,
		StandardClaims: map[string]string{},
	}

	for _, src := range sources {
		for _, tmpl := range standardClaimTemplates {
			if m := tmpl.re.FindString(src.Text); m != "" {
				if _, seen := report.StandardClaims[tmpl.claim]; !seen {
					report.StandardClaims[tmpl.claim] = m
				}
			}
		}
		for _, m := range customClaimRe.FindAllStringSubmatch(src.Text, -1) {
			report.CustomClaims = appendUnique(report.CustomClaims, m[1])
		}
	}

	report.Recommendation = "Assert standard claims via their accessors and custom claims via claims.get(name) in token tests."
	return report, nil
}
