package analyzer

import (
	"regexp"
	"sort"
	"strings"
)

var (
	classMappingRe = regexp.MustCompile(`@RequestMapping\(\s*(?:value\s*=\s*)?"([^"]*)"`)
	verbMappingRe  = regexp.MustCompile(`@(Get|Post|Put|Delete|Patch)Mapping(?:\(\s*(?:value\s*=\s*|path\s*=\s*)?"([^"]*)"[^)]*\))?`)
	methodAttrRe   = regexp.MustCompile(`@RequestMapping\(([^)]*RequestMethod\.(\w+)[^)]*)\)`)
	mappingValueRe = regexp.MustCompile(`(?:value|path)\s*=\s*"([^"]*)"`)
	handlerNameRe  = regexp.MustCompile(`public\s+[\w.<>,\s\[\]?]+?\s(\w+)\s*\(`)
	authRe         = regexp.MustCompile(`@PreAuthorize|@Secured|@RolesAllowed`)
)

// ControllerEndpoints reports one controller's base path and every mapped
// handler method (HTTP verb, relative path, handler name), plus whether any
// access-control annotation implies authenticated requests.
func (a *Analyzer) ControllerEndpoints(root, controller string) (*EndpointsReport, error) {
	paths, err := a.locator.FindSources(root, controller)
	if err != nil {
		return nil, err
	}

	_, text := readFirst(paths)
	if text == "" {
		return &EndpointsReport{Found: false}, nil
	}

	report := &EndpointsReport{
		Found:      true,
		Controller: controller,
		Endpoints:  []Endpoint{},
	}

	// The first @RequestMapping with a bare path literal is the class-level
	// mapping; method-level ones carry a RequestMethod attribute instead.
	if m := classMappingRe.FindStringSubmatch(text); m != nil {
		report.BasePath = m[1]
	}

	type mappingHit struct {
		verb  string
		path  string
		start int
		end   int
	}
	var hits []mappingHit

	for _, idx := range verbMappingRe.FindAllStringSubmatchIndex(text, -1) {
		hit := mappingHit{
			verb:  strings.ToUpper(text[idx[2]:idx[3]]),
			start: idx[0],
			end:   idx[1],
		}
		if idx[4] >= 0 {
			hit.path = text[idx[4]:idx[5]]
		}
		hits = append(hits, hit)
	}

	for _, idx := range methodAttrRe.FindAllStringSubmatchIndex(text, -1) {
		attrs := text[idx[2]:idx[3]]
		hit := mappingHit{
			verb:  strings.ToUpper(text[idx[4]:idx[5]]),
			start: idx[0],
			end:   idx[1],
		}
		if m := mappingValueRe.FindStringSubmatch(attrs); m != nil {
			hit.path = m[1]
		}
		hits = append(hits, hit)
	}

	sort.Slice(hits, func(i, j int) bool { return hits[i].start < hits[j].start })

	for _, hit := range hits {
		handler := ""
		if m := handlerNameRe.FindStringSubmatch(text[hit.end:]); m != nil {
			handler = m[1]
		}
		report.Endpoints = append(report.Endpoints, Endpoint{
			Method:  hit.verb,
			Path:    hit.path,
			Handler: handler,
		})
	}

	report.RequiresAuth = authRe.MatchString(text)

	if report.RequiresAuth {
		report.Recommendation = "Endpoints carry access-control annotations; include an Authorization header when exercising them."
	} else {
		report.Recommendation = "No access-control annotations found on this controller."
	}
	return report, nil
}
