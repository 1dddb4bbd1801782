package analyzer

import "regexp"

var (
	toOneRe  = regexp.MustCompile(`@(ManyToOne|OneToOne)(?:\([^)]*\))?[\s\S]*?private\s+(\w+)\s+(\w+)\s*;`)
	toManyRe = regexp.MustCompile(`@(OneToMany|ManyToMany)(?:\([^)]*\))?[\s\S]*?private\s+(?:List|Set|Collection)<(\w+)>\s+(\w+)\s*;`)

	nullableTrueRe  = regexp.MustCompile(`nullable\s*=\s*true`)
	extendsRe       = regexp.MustCompile(`class\s+\w+\s+extends\s+(\w+)`)
	discriminatorRe = regexp.MustCompile(`@DiscriminatorColumn|InheritanceType\.SINGLE_TABLE`)
)

// EntityRelationships reports the JPA associations declared on one entity,
// its inheritance parent, and a suggested creation order for test fixtures
// (dependencies first, children last).
//
// The required flag is inferred from the absence of a nullable = true marker
// inside the annotation-to-declaration window. A declaration with no nullable
// marker at all is therefore reported as required. That matches how the
// column constraints are typically declared in the projects this targets,
// but it is a heuristic over raw text, not a schema read.
func (a *Analyzer) EntityRelationships(root, entity string) (*EntityReport, error) {
	paths, err := a.locator.FindSources(root, entity)
	if err != nil {
		return nil, err
	}

	_, text := readFirst(paths)
	if text == "" {
		return &EntityReport{Found: false}, nil
	}

	report := &EntityReport{
		Found:  true,
		Entity: entity,
		Relationships: RelationshipSet{
			ManyToOne: []Relationship{},
			OneToMany: []Relationship{},
		},
	}

	for _, m := range toOneRe.FindAllStringSubmatch(text, -1) {
		report.Relationships.ManyToOne = append(report.Relationships.ManyToOne, Relationship{
			Type:     m[2],
			Field:    m[3],
			Required: !nullableTrueRe.MatchString(m[0]),
		})
	}

	for _, m := range toManyRe.FindAllStringSubmatch(text, -1) {
		report.Relationships.OneToMany = append(report.Relationships.OneToMany, Relationship{
			Type:     m[2],
			Field:    m[3],
			Required: false,
		})
	}

	if m := extendsRe.FindStringSubmatch(text); m != nil {
		report.Inheritance = m[1]
	}
	report.Discriminator = discriminatorRe.MatchString(text)

	// Dependencies before the entity, children after.
	order := []string{}
	for _, rel := range report.Relationships.ManyToOne {
		if rel.Type != entity {
			order = appendUnique(order, rel.Type)
		}
	}
	order = appendUnique(order, entity)
	for _, rel := range report.Relationships.OneToMany {
		order = appendUnique(order, rel.Type)
	}
	report.CreationOrder = order

	report.Warning = "Required flags are inferred from the absence of nullable = true and may overstate constraints."
	return report, nil
}
