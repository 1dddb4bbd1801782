package manifest

import (
	"encoding/xml"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// Report carries the version facts derived from a project's pom.xml. A
// missing or malformed manifest is reported in the Error/Message fields,
// never as a fault.
type Report struct {
	Found             bool     `json:"found"`
	Error             bool     `json:"error,omitempty"`
	Message           string   `json:"message,omitempty"`
	SpringBootVersion string   `json:"springBootVersion,omitempty"`
	JavaVersion       string   `json:"javaVersion,omitempty"`
	IsBoot3           bool     `json:"isBoot3"`
	UsesJakarta       bool     `json:"usesJakarta"`
	JUnitFamily       string   `json:"junitFamily,omitempty"`
	Recommendations   []string `json:"recommendations,omitempty"`
}

type pomXML struct {
	XMLName xml.Name `xml:"project"`
	Parent  struct {
		GroupID    string `xml:"groupId"`
		ArtifactID string `xml:"artifactId"`
		Version    string `xml:"version"`
	} `xml:"parent"`
	Properties pomProperties `xml:"properties"`
}

// Maven properties are free-form element names, so they are decoded with a
// catch-all rule and folded into a map afterwards.
type pomProperties struct {
	Entries []pomProperty `xml:",any"`
}

type pomProperty struct {
	XMLName xml.Name
	Value   string `xml:",chardata"`
}

// ParsePom reads <root>/pom.xml and derives the framework and language-level
// facts the build and extraction tools depend on.
func ParsePom(root string) *Report {
	data, err := os.ReadFile(filepath.Join(root, "pom.xml"))
	if err != nil {
		return &Report{Error: true, Message: "pom.xml not found: " + err.Error()}
	}
	return parsePomBytes(data)
}

func parsePomBytes(data []byte) *Report {
	var pom pomXML
	if err := xml.Unmarshal(data, &pom); err != nil {
		return &Report{Error: true, Message: "pom.xml is not valid XML: " + err.Error()}
	}

	props := map[string]string{}
	for _, e := range pom.Properties.Entries {
		props[e.XMLName.Local] = strings.TrimSpace(e.Value)
	}

	report := &Report{Found: true}

	if pom.Parent.ArtifactID == "spring-boot-starter-parent" {
		report.SpringBootVersion = strings.TrimSpace(pom.Parent.Version)
	} else if v, ok := props["spring-boot.version"]; ok {
		report.SpringBootVersion = v
	}

	for _, key := range []string{"java.version", "maven.compiler.release", "maven.compiler.source"} {
		if v, ok := props[key]; ok {
			report.JavaVersion = v
			break
		}
	}

	report.IsBoot3 = majorVersion(report.SpringBootVersion) >= 3
	report.UsesJakarta = report.IsBoot3

	if report.SpringBootVersion != "" {
		report.JUnitFamily = "junit5"
		if majorVersion(report.SpringBootVersion) < 2 {
			report.JUnitFamily = "junit4"
		}
	}

	if report.UsesJakarta {
		report.Recommendations = append(report.Recommendations,
			"Use jakarta.* imports (jakarta.persistence, jakarta.validation); javax.* will not compile on Boot 3.")
	} else if report.SpringBootVersion != "" {
		report.Recommendations = append(report.Recommendations,
			"Use javax.* imports; jakarta.* namespaces arrive with Spring Boot 3.")
	}
	switch report.JUnitFamily {
	case "junit5":
		report.Recommendations = append(report.Recommendations,
			"Write tests against JUnit Jupiter (org.junit.jupiter); the starter pulls it in by default.")
	case "junit4":
		report.Recommendations = append(report.Recommendations,
			"This Boot line predates the JUnit 5 default; stick to org.junit / JUnit 4 vintage APIs.")
	}

	return report
}

// majorVersion parses the leading integer of a dotted version, or 0.
func majorVersion(version string) int {
	if version == "" {
		return 0
	}
	head, _, _ := strings.Cut(version, ".")
	n, err := strconv.Atoi(head)
	if err != nil {
		return 0
	}
	return n
}
