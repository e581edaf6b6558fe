// Package pom parses Maven project descriptors (POM files) into a raw,
// literal in-memory form.
//
// Parsing is namespace-agnostic: element lookups match on local names, so
// descriptors with or without the Maven xmlns parse identically. No property
// substitution happens here; values are kept verbatim (including `${...}`
// placeholders) and substituted later during resolution, once the parent
// property table is known.
package pom

import (
	"encoding/xml"
	"os"
	"strings"

	"github.com/dkrasnow/m2scope/pkg/errors"
)

// Project is one parsed descriptor, fields still literal.
type Project struct {
	GroupID    string `xml:"groupId"`
	ArtifactID string `xml:"artifactId"`
	Version    string `xml:"version"`
	Packaging  string `xml:"packaging"`
	Name       string `xml:"name"`

	Parent       *Parent      `xml:"parent"`
	Properties   Properties   `xml:"properties"`
	Dependencies []Dependency `xml:"dependencies>dependency"`
	Management   []Dependency `xml:"dependencyManagement>dependencies>dependency"`
	Modules      []string     `xml:"modules>module"`
}

// Parent is a reference to the parent descriptor's coordinate.
type Parent struct {
	GroupID    string `xml:"groupId"`
	ArtifactID string `xml:"artifactId"`
	Version    string `xml:"version"`
}

// Dependency is one raw dependency entry.
type Dependency struct {
	GroupID    string      `xml:"groupId"`
	ArtifactID string      `xml:"artifactId"`
	Version    string      `xml:"version"`
	Scope      string      `xml:"scope"`
	Type       string      `xml:"type"`
	Optional   string      `xml:"optional"`
	Classifier string      `xml:"classifier"`
	Exclusions []Exclusion `xml:"exclusions>exclusion"`
}

// Exclusion suppresses a transitive sub-dependency by group and artifact.
type Exclusion struct {
	GroupID    string `xml:"groupId"`
	ArtifactID string `xml:"artifactId"`
}

// Properties holds the descriptor's property table as literal key/value
// pairs. Property element names are arbitrary, so decoding walks the child
// elements by hand; local names are used, stripping any namespace prefix.
type Properties map[string]string

// UnmarshalXML implements xml.Unmarshaler.
func (p *Properties) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	*p = Properties{}
	for {
		tok, err := d.Token()
		if err != nil {
			return err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			var value string
			if err := d.DecodeElement(&value, &t); err != nil {
				return err
			}
			(*p)[t.Name.Local] = strings.TrimSpace(value)
		case xml.EndElement:
			return nil
		}
	}
}

// ParseFile reads and parses the descriptor at path.
// A missing file yields ARTIFACT_NOT_FOUND; malformed markup yields
// PARSE_ERROR.
func ParseFile(path string) (*Project, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeNotFound, err, "descriptor %s", path)
		}
		return nil, errors.Wrap(errors.ErrCodeParse, err, "read %s", path)
	}
	return Parse(data, path)
}

// Parse parses descriptor bytes. The path parameter is used only for error
// messages.
func Parse(data []byte, path string) (*Project, error) {
	var proj Project
	if err := xml.Unmarshal(data, &proj); err != nil {
		return nil, errors.Wrap(errors.ErrCodeParse, err, "parse %s", path)
	}
	return &proj, nil
}

// EffectiveGroupID returns the project's group ID, falling back to the
// parent's when the element is omitted (a common Maven shorthand).
func (p *Project) EffectiveGroupID() string {
	if p.GroupID != "" {
		return p.GroupID
	}
	if p.Parent != nil {
		return p.Parent.GroupID
	}
	return ""
}

// EffectiveVersion returns the project's version, falling back to the
// parent's when the element is omitted.
func (p *Project) EffectiveVersion() string {
	if p.Version != "" {
		return p.Version
	}
	if p.Parent != nil {
		return p.Parent.Version
	}
	return ""
}
