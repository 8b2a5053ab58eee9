package repo

import (
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	// PlaceholderName is shown when the project has no name yet.
	PlaceholderName = "My Project"
	// DefaultGuidelines is the initial contributing text.
	DefaultGuidelines = "Contributions are welcome! Please feel free to submit a Pull Request."
	// DefaultFeatureEmoji decorates new and imported features.
	DefaultFeatureEmoji = "✨"
)

// LicenseName returns the human readable name of a license type. Unknown
// types are returned verbatim.
func LicenseName(t LicenseType) (name string) {
	switch t {
	case LicenseMIT:
		name = "MIT License"
	case LicenseApache2:
		name = "Apache License 2.0"
	case LicenseGPL3:
		name = "GNU General Public License v3.0"
	case LicenseBSD3Clause:
		name = "BSD 3-Clause License"
	case LicenseISC:
		name = "ISC License"
	case LicenseCustom:
		name = "Custom License"
	default:
		name = string(t)
	}
	return name
}

// DefaultData returns the initial project document. The license year is the
// current year.
func DefaultData() (d Data) {
	d = DefaultDataForYear(time.Now().Year())
	return d
}

// DefaultDataForYear returns the initial project document for a fixed year.
func DefaultDataForYear(year int) (d Data) {
	d = Data{
		ProjectInfo: ProjectInfo{
			Badges: []Badge{},
		},
		Installation: Installation{
			Enabled:        true,
			PackageManager: NPM,
			Prerequisites:  []string{},
		},
		Usage: Usage{
			Enabled:  true,
			Examples: []CodeExample{},
		},
		Features: Features{
			Enabled: true,
			Items:   []Feature{},
		},
		APIDocs: APIDocs{
			Endpoints: []APIEndpoint{},
		},
		Configuration: Configuration{
			Options:      []ConfigOption{},
			EnvVariables: []ConfigOption{},
		},
		Contributing: Contributing{
			Enabled:    true,
			Guidelines: DefaultGuidelines,
		},
		License: License{
			Enabled: true,
			Type:    LicenseMIT,
			Year:    strconv.Itoa(year),
		},
		Screenshots: Screenshots{
			Items: []Screenshot{},
		},
		Extras: Extras{
			ShowTableOfContents: true,
			FAQ:                 []FAQItem{},
			Roadmap:             []RoadmapItem{},
		},
		TechStack: []string{},
	}
	return d
}

// NewFeature returns a feature with a fresh id.
func NewFeature() (f Feature) {
	f = Feature{ID: uuid.NewString(), Emoji: DefaultFeatureEmoji}
	return f
}

// NewCodeExample returns a code example with a fresh id.
func NewCodeExample() (c CodeExample) {
	c = CodeExample{ID: uuid.NewString(), Title: "Example", Language: "javascript"}
	return c
}

// NewEndpoint returns an endpoint with a fresh id.
func NewEndpoint() (e APIEndpoint) {
	e = APIEndpoint{ID: uuid.NewString(), Method: MethodGet, Path: "/api/endpoint"}
	return e
}

// NewConfigOption returns a configuration row with a fresh id.
func NewConfigOption() (o ConfigOption) {
	o = ConfigOption{ID: uuid.NewString(), Type: "string"}
	return o
}

// NewScreenshot returns a screenshot with a fresh id.
func NewScreenshot() (s Screenshot) {
	s = Screenshot{ID: uuid.NewString(), Type: ScreenshotImage}
	return s
}

// NewRoadmapItem returns a roadmap entry with a fresh id.
func NewRoadmapItem() (r RoadmapItem) {
	r = RoadmapItem{ID: uuid.NewString()}
	return r
}

// NewFAQItem returns a question with a fresh id.
func NewFAQItem() (q FAQItem) {
	q = FAQItem{ID: uuid.NewString()}
	return q
}

// PackageSlug derives an install name from a project name.
func PackageSlug(name string) (slug string) {
	slug = strings.Join(strings.Fields(strings.ToLower(name)), "-")
	return slug
}

// Normalize assigns ids to list items that lack a unique one and removes
// duplicate set entries, keeping the first occurrence.
func (d *Data) Normalize() {
	for i := range d.ProjectInfo.Badges {
		ensureID(&d.ProjectInfo.Badges[i].ID, i, d.ProjectInfo.Badges)
	}
	for i := range d.Usage.Examples {
		ensureID(&d.Usage.Examples[i].ID, i, d.Usage.Examples)
	}
	for i := range d.Features.Items {
		ensureID(&d.Features.Items[i].ID, i, d.Features.Items)
	}
	for i := range d.APIDocs.Endpoints {
		ensureID(&d.APIDocs.Endpoints[i].ID, i, d.APIDocs.Endpoints)
	}
	for i := range d.Configuration.Options {
		ensureID(&d.Configuration.Options[i].ID, i, d.Configuration.Options)
	}
	for i := range d.Configuration.EnvVariables {
		ensureID(&d.Configuration.EnvVariables[i].ID, i, d.Configuration.EnvVariables)
	}
	for i := range d.Screenshots.Items {
		ensureID(&d.Screenshots.Items[i].ID, i, d.Screenshots.Items)
	}
	for i := range d.Extras.FAQ {
		ensureID(&d.Extras.FAQ[i].ID, i, d.Extras.FAQ)
	}
	for i := range d.Extras.Roadmap {
		ensureID(&d.Extras.Roadmap[i].ID, i, d.Extras.Roadmap)
	}

	d.TechStack = Dedupe(d.TechStack)
	d.Installation.Prerequisites = Dedupe(d.Installation.Prerequisites)
}

// ensureID replaces an empty id, or one already used earlier in the list,
// with a fresh one.
func ensureID[I interface{ ItemID() string }](id *string, index int, items []I) {
	if *id != "" {
		duplicate := false
		for _, earlier := range items[:index] {
			if earlier.ItemID() == *id {
				duplicate = true
				break
			}
		}
		if !duplicate {
			return
		}
	}
	*id = uuid.NewString()
}

// Clone returns a copy that shares no slices with d.
func (d Data) Clone() (c Data) {
	c = d
	c.ProjectInfo.Badges = slices.Clone(d.ProjectInfo.Badges)
	c.Installation.Prerequisites = slices.Clone(d.Installation.Prerequisites)
	c.Usage.Examples = slices.Clone(d.Usage.Examples)
	c.Features.Items = slices.Clone(d.Features.Items)
	c.APIDocs.Endpoints = slices.Clone(d.APIDocs.Endpoints)
	c.Configuration.Options = slices.Clone(d.Configuration.Options)
	c.Configuration.EnvVariables = slices.Clone(d.Configuration.EnvVariables)
	c.Screenshots.Items = slices.Clone(d.Screenshots.Items)
	c.Extras.FAQ = slices.Clone(d.Extras.FAQ)
	c.Extras.Roadmap = slices.Clone(d.Extras.Roadmap)
	c.TechStack = slices.Clone(d.TechStack)
	return c
}

// ConfigItems returns a pointer to the selected configuration list, or nil.
func (d *Data) ConfigItems(list ConfigList) (items *[]ConfigOption) {
	switch list {
	case ConfigOptions:
		items = &d.Configuration.Options
	case ConfigEnvVariables:
		items = &d.Configuration.EnvVariables
	}
	return items
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
