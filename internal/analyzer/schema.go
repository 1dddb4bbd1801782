package analyzer

// ClaimsReport summarizes the JWT claim structure of a project's token code.
type ClaimsReport struct {
	Found          bool              `json:"found"`
	StandardClaims map[string]string `json:"standardClaims,omitempty"`
	CustomClaims   []string          `json:"customClaims,omitempty"`
	Recommendation string            `json:"recommendation,omitempty"`
}

// WrapperReport describes a project-wide response-wrapping convention.
type WrapperReport struct {
	HasWrapper     bool   `json:"hasWrapper"`
	WrapperClass   string `json:"wrapperClass,omitempty"`
	WrapperField   string `json:"wrapperField,omitempty"`
	JSONPathPrefix string `json:"jsonPathPrefix,omitempty"`
	Recommendation string `json:"recommendation,omitempty"`
}

// Relationship is one declared JPA association on an entity.
type Relationship struct {
	Type     string `json:"type"`
	Field    string `json:"field"`
	Required bool   `json:"required"`
}

// RelationshipSet groups an entity's associations by cardinality.
type RelationshipSet struct {
	ManyToOne []Relationship `json:"manyToOne"`
	OneToMany []Relationship `json:"oneToMany"`
}

// EntityReport describes one JPA entity's relationship graph.
type EntityReport struct {
	Found         bool            `json:"found"`
	Entity        string          `json:"entity,omitempty"`
	Inheritance   string          `json:"inheritance,omitempty"`
	Discriminator bool            `json:"discriminator"`
	Relationships RelationshipSet `json:"relationships"`
	CreationOrder []string        `json:"creationOrder,omitempty"`
	Warning       string          `json:"warning,omitempty"`
}

// Endpoint is one handler method on a controller.
type Endpoint struct {
	Method  string `json:"method"`
	Path    string `json:"path"`
	Handler string `json:"handler"`
}

// EndpointsReport describes one controller's API surface.
type EndpointsReport struct {
	Found          bool       `json:"found"`
	Controller     string     `json:"controller,omitempty"`
	BasePath       string     `json:"basePath,omitempty"`
	Endpoints      []Endpoint `json:"endpoints,omitempty"`
	RequiresAuth   bool       `json:"requiresAuth"`
	Recommendation string     `json:"recommendation,omitempty"`
}

// QueryMethod is one declared repository method with a query-verb prefix.
type QueryMethod struct {
	Name     string `json:"name"`
	HasQuery bool   `json:"hasQuery"`
}

// RepositoryReport describes one Spring Data repository interface.
type RepositoryReport struct {
	Found          bool          `json:"found"`
	Repository     string        `json:"repository,omitempty"`
	Methods        []QueryMethod `json:"methods,omitempty"`
	HasSoftDelete  bool          `json:"hasSoftDelete"`
	Recommendation string        `json:"recommendation,omitempty"`
}

// ServiceReport describes one service class's dependencies and surface.
type ServiceReport struct {
	Found            bool     `json:"found"`
	Service          string   `json:"service,omitempty"`
	Repositories     []string `json:"repositories,omitempty"`
	PublicMethods    []string `json:"publicMethods,omitempty"`
	ThrownExceptions []string `json:"thrownExceptions,omitempty"`
	Transactional    bool     `json:"transactional"`
	Recommendation   string   `json:"recommendation,omitempty"`
}

// NamingReport tallies column/table naming-strategy markers across a tree.
type NamingReport struct {
	FilesScanned     int    `json:"filesScanned"`
	SnakeCase        int    `json:"snakeCase"`
	ExplicitStrategy int    `json:"explicitStrategy"`
	DefaultStrategy  int    `json:"defaultStrategy"`
	Majority         string `json:"majority"`
	Recommendation   string `json:"recommendation,omitempty"`
}

// PropertiesReport cross-references injected property keys against the test
// configuration file.
type PropertiesReport struct {
	Found                    bool     `json:"found"`
	TotalProperties          int      `json:"totalProperties"`
	MissingProperties        []string `json:"missingProperties"`
	TestPropertiesFileExists bool     `json:"testPropertiesFileExists"`
	Action                   string   `json:"action,omitempty"`
}

// ExclusionCandidate is one bean class that likely needs profile scoping.
type ExclusionCandidate struct {
	File     string   `json:"file"`
	Keywords []string `json:"keywords"`
}

// ExclusionReport lists unscoped beans tied to external providers.
type ExclusionReport struct {
	Found          bool                 `json:"found"`
	Candidates     []ExclusionCandidate `json:"candidates,omitempty"`
	Recommendation string               `json:"recommendation,omitempty"`
}
