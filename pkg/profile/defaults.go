package profile

import (
	"slices"

	"github.com/google/uuid"
)

const (
	// FallbackUsername is rendered when no GitHub username is set.
	FallbackUsername = "octocat"
	// DefaultTheme is the stats and quote card theme.
	DefaultTheme = "tokyonight"
)

// DefaultData returns the initial profile document.
func DefaultData() (d Data) {
	d = Data{
		Header: Header{
			ShowViews: true,
		},
		About: About{
			Bio: "I'm a Full Stack Developer...",
		},
		Skills: Skills{
			Languages:  []string{},
			Frameworks: []string{},
			Tools:      []string{},
			IconStyle:  "skillicons",
		},
		Stats: Stats{
			Github:  StatCard{Show: true, Theme: DefaultTheme, ShowIcons: true, HideBorder: true},
			Streak:  StatCard{Show: true, Theme: DefaultTheme, ShowIcons: true, HideBorder: true},
			TopLang: TopLangCard{Show: true, Theme: DefaultTheme, ShowIcons: true, HideBorder: true, Layout: "compact"},
		},
		Projects: []Project{},
		Extras: Extras{
			ShowQuotes: true,
		},
	}
	return d
}

// NewProject returns an empty project with a fresh id.
func NewProject() (p Project) {
	p = Project{ID: uuid.NewString()}
	return p
}

// Normalize assigns ids to projects that lack one and removes duplicate
// skills, keeping the first occurrence.
func (d *Data) Normalize() {
	seen := make(map[string]bool, len(d.Projects))
	for i := range d.Projects {
		if d.Projects[i].ID == "" || seen[d.Projects[i].ID] {
			d.Projects[i].ID = uuid.NewString()
		}
		seen[d.Projects[i].ID] = true
	}

	d.Skills.Languages = Dedupe(d.Skills.Languages)
	d.Skills.Frameworks = Dedupe(d.Skills.Frameworks)
	d.Skills.Tools = Dedupe(d.Skills.Tools)
}

// Clone returns a copy that shares no slices with d.
func (d Data) Clone() (c Data) {
	c = d
	c.Skills.Languages = slices.Clone(d.Skills.Languages)
	c.Skills.Frameworks = slices.Clone(d.Skills.Frameworks)
	c.Skills.Tools = slices.Clone(d.Skills.Tools)
	c.Projects = slices.Clone(d.Projects)
	return c
}

// SkillList returns a pointer to the named skill group, or nil.
func (d *Data) SkillList(group SkillGroup) (list *[]string) {
	switch group {
	case SkillLanguages:
		list = &d.Skills.Languages
	case SkillFrameworks:
		list = &d.Skills.Frameworks
	case SkillTools:
		list = &d.Skills.Tools
	}
	return list
}

// Dedupe drops repeated and blank values preserving first-occurrence order.
func Dedupe(values []string) (result []string) {
	result = make([]string, 0, len(values))
	seen := make(map[string]bool, len(values))
	for _, v := range values {
		if v == "" || seen[v] {
			continue
		}
		seen[v] = true
		result = append(result, v)
	}
	return result
}
