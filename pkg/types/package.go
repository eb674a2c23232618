package types

import "time"

// Ecosystem identifies the package registry a package belongs to.
type Ecosystem string

const (
	EcosystemNpm    Ecosystem = "npm"
	EcosystemPython Ecosystem = "python"
	EcosystemGo     Ecosystem = "go"
	EcosystemRust   Ecosystem = "rust"
)

// Valid reports whether the ecosystem is one the server knows how to fetch.
func (e Ecosystem) Valid() bool {
	switch e {
	case EcosystemNpm, EcosystemPython, EcosystemGo, EcosystemRust:
		return true
	}
	return false
}

// DocSource is the raw documentation obtained from a registry or local tool,
// already converted to Markdown when the origin was HTML.
type DocSource struct {
	Ecosystem   Ecosystem
	Name        string
	Version     string
	Markdown    string // Rendered Markdown documentation (README or doc-tool output)
	Description string // Registry-supplied short description, may be empty
	Homepage    string
	License     string
	FetchedAt   time.Time
	Origin      string // Human-readable origin, e.g. "registry.npmjs.org" or "go doc"
}

// PackageDescription is the condensed view of a package's documentation
// returned by the describe_package tool.
type PackageDescription struct {
	Ecosystem     Ecosystem `json:"ecosystem"`
	Name          string    `json:"name"`
	Version       string    `json:"version"`
	Summary       string    `json:"summary"`
	Homepage      string    `json:"homepage,omitempty"`
	License       string    `json:"license,omitempty"`
	SectionTitles []string  `json:"section_titles,omitempty"`
	APIExcerpt    string    `json:"api,omitempty"`
	Examples      string    `json:"examples,omitempty"`
	Signatures    []string  `json:"signatures,omitempty"`
	Origin        string    `json:"origin"`
}
