package llm

import (
	"github.com/pkg/errors"
)

// Section names the part of a README a request generates.
type Section string

// Sections understood by the prompt builder.
const (
	SectionFull         Section = "full"
	SectionDescription  Section = "description"
	SectionFeatures     Section = "features"
	SectionInstallation Section = "installation"
	SectionUsage        Section = "usage"
	SectionAPI          Section = "api"
	SectionContributing Section = "contributing"
	SectionRefine       Section = "refine"
)

// Sections returns every section in a stable order.
func Sections() (sections []Section) {
	sections = []Section{
		SectionFull,
		SectionDescription,
		SectionFeatures,
		SectionInstallation,
		SectionUsage,
		SectionAPI,
		SectionContributing,
		SectionRefine,
	}
	return sections
}

// ParseSection validates a section name.
func ParseSection(name string) (section Section, err error) {
	for _, s := range Sections() {
		if string(s) == name {
			section = s
			return section, err
		}
	}

	err = errors.Errorf("unknown section %q", name)
	return section, err
}

// GenerateRequest is the input to one AI completion.
type GenerateRequest struct {
	ProjectName        string            `json:"projectName"`
	ProjectDescription string            `json:"projectDescription"`
	TechStack          []string          `json:"techStack"`
	Section            Section           `json:"section"`
	AdditionalContext  string            `json:"additionalContext,omitempty"`
	ExistingContent    string            `json:"existingContent,omitempty"`
	Instruction        string            `json:"instruction,omitempty"`
	FileContents       map[string]string `json:"fileContents,omitempty"`
}

// GenerateResponse carries the generated markdown.
type GenerateResponse struct {
	Content string  `json:"content"`
	Section Section `json:"section"`
}
