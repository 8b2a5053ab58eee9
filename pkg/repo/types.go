// Package repo models a project README and renders it.
package repo

// PackageManager is the installer used in generated install commands.
type PackageManager string

// Package managers.
const (
	NPM  PackageManager = "npm"
	Yarn PackageManager = "yarn"
	PNPM PackageManager = "pnpm"
	Bun  PackageManager = "bun"
)

// LicenseType identifies a license.
type LicenseType string

// License types.
const (
	LicenseMIT        LicenseType = "MIT"
	LicenseApache2    LicenseType = "Apache-2.0"
	LicenseGPL3       LicenseType = "GPL-3.0"
	LicenseBSD3Clause LicenseType = "BSD-3-Clause"
	LicenseISC        LicenseType = "ISC"
	LicenseCustom     LicenseType = "Custom"
)

// BadgeStyle is a shields.io style.
type BadgeStyle string

// Badge styles.
const (
	BadgeFlat        BadgeStyle = "flat"
	BadgeFlatSquare  BadgeStyle = "flat-square"
	BadgePlastic     BadgeStyle = "plastic"
	BadgeForTheBadge BadgeStyle = "for-the-badge"
	BadgeSocial      BadgeStyle = "social"
)

// ScreenshotType is the kind of media in a screenshot entry.
type ScreenshotType string

// Screenshot types.
const (
	ScreenshotImage ScreenshotType = "image"
	ScreenshotGIF   ScreenshotType = "gif"
	ScreenshotVideo ScreenshotType = "video"
)

// HTTPMethod of an API endpoint.
type HTTPMethod string

// HTTP methods.
const (
	MethodGet    HTTPMethod = "GET"
	MethodPost   HTTPMethod = "POST"
	MethodPut    HTTPMethod = "PUT"
	MethodDelete HTTPMethod = "DELETE"
	MethodPatch  HTTPMethod = "PATCH"
)

// ConfigList selects one of the two configuration tables.
type ConfigList string

// Configuration lists.
const (
	ConfigOptions      ConfigList = "options"
	ConfigEnvVariables ConfigList = "envVariables"
)

// Data is the complete project document.
type Data struct {
	ProjectInfo   ProjectInfo   `json:"projectInfo" yaml:"projectInfo"`
	Installation  Installation  `json:"installation" yaml:"installation"`
	Usage         Usage         `json:"usage" yaml:"usage"`
	Features      Features      `json:"features" yaml:"features"`
	APIDocs       APIDocs       `json:"apiDocs" yaml:"apiDocs"`
	Configuration Configuration `json:"configuration" yaml:"configuration"`
	Contributing  Contributing  `json:"contributing" yaml:"contributing"`
	License       License       `json:"license" yaml:"license"`
	Screenshots   Screenshots   `json:"screenshots" yaml:"screenshots"`
	Extras        Extras        `json:"extras" yaml:"extras"`
	TechStack     []string      `json:"techStack" yaml:"techStack"`
	Author        Author        `json:"author" yaml:"author"`
}

// ProjectInfo is the title block.
type ProjectInfo struct {
	Name        string  `json:"name" yaml:"name"`
	Tagline     string  `json:"tagline" yaml:"tagline"`
	Description string  `json:"description" yaml:"description"`
	LogoURL     string  `json:"logoUrl" yaml:"logoUrl"`
	BannerURL   string  `json:"bannerUrl" yaml:"bannerUrl"`
	Badges      []Badge `json:"badges" yaml:"badges" validate:"dive"`
	WebsiteURL  string  `json:"websiteUrl" yaml:"websiteUrl"`
	DemoURL     string  `json:"demoUrl" yaml:"demoUrl"`
}

// Badge is a shields.io badge or a custom image.
type Badge struct {
	ID        string     `json:"id" yaml:"id" validate:"required"`
	Label     string     `json:"label" yaml:"label"`
	Message   string     `json:"message" yaml:"message"`
	Color     string     `json:"color" yaml:"color" validate:"omitempty,excludes=#"`
	Style     BadgeStyle `json:"style" yaml:"style" validate:"omitempty,oneof=flat flat-square plastic for-the-badge social"`
	LogoName  string     `json:"logoName,omitempty" yaml:"logoName,omitempty"`
	LogoColor string     `json:"logoColor,omitempty" yaml:"logoColor,omitempty"`
	CustomURL string     `json:"customUrl,omitempty" yaml:"customUrl,omitempty"`
}

// Installation describes how to install the project.
type Installation struct {
	Enabled         bool           `json:"enabled" yaml:"enabled"`
	PackageManager  PackageManager `json:"packageManager" yaml:"packageManager" validate:"omitempty,oneof=npm yarn pnpm bun"`
	PackageName     string         `json:"packageName" yaml:"packageName"`
	Prerequisites   []string       `json:"prerequisites" yaml:"prerequisites"`
	InstallCommands string         `json:"installCommands" yaml:"installCommands"`
	AdditionalSteps string         `json:"additionalSteps" yaml:"additionalSteps"`
}

// Usage holds the quick start text and code examples.
type Usage struct {
	Enabled    bool          `json:"enabled" yaml:"enabled"`
	QuickStart string        `json:"quickStart" yaml:"quickStart"`
	Examples   []CodeExample `json:"examples" yaml:"examples" validate:"dive"`
}

// CodeExample is a titled code block with optional output.
type CodeExample struct {
	ID       string `json:"id" yaml:"id" validate:"required"`
	Title    string `json:"title" yaml:"title"`
	Language string `json:"language" yaml:"language"`
	Code     string `json:"code" yaml:"code"`
	Output   string `json:"output,omitempty" yaml:"output,omitempty"`
}

// Features is the feature list section.
type Features struct {
	Enabled bool      `json:"enabled" yaml:"enabled"`
	Items   []Feature `json:"items" yaml:"items" validate:"dive"`
}

// Feature is one feature bullet.
type Feature struct {
	ID          string `json:"id" yaml:"id" validate:"required"`
	Emoji       string `json:"emoji" yaml:"emoji"`
	Title       string `json:"title" yaml:"title"`
	Description string `json:"description" yaml:"description"`
}

// APIDocs is the API reference section.
type APIDocs struct {
	Enabled     bool          `json:"enabled" yaml:"enabled"`
	Description string        `json:"description" yaml:"description"`
	Endpoints   []APIEndpoint `json:"endpoints" yaml:"endpoints" validate:"dive"`
}

// APIEndpoint documents one route.
type APIEndpoint struct {
	ID              string     `json:"id" yaml:"id" validate:"required"`
	Method          HTTPMethod `json:"method" yaml:"method" validate:"omitempty,oneof=GET POST PUT DELETE PATCH"`
	Path            string     `json:"path" yaml:"path"`
	Description     string     `json:"description" yaml:"description"`
	Parameters      string     `json:"parameters,omitempty" yaml:"parameters,omitempty"`
	ResponseExample string     `json:"responseExample,omitempty" yaml:"responseExample,omitempty"`
}

// Configuration documents options and environment variables.
type Configuration struct {
	Enabled      bool           `json:"enabled" yaml:"enabled"`
	Description  string         `json:"description" yaml:"description"`
	Options      []ConfigOption `json:"options" yaml:"options" validate:"dive"`
	EnvVariables []ConfigOption `json:"envVariables" yaml:"envVariables" validate:"dive"`
}

// ConfigOption is one row of a configuration table.
type ConfigOption struct {
	ID           string `json:"id" yaml:"id" validate:"required"`
	Name         string `json:"name" yaml:"name"`
	Type         string `json:"type" yaml:"type"`
	DefaultValue string `json:"defaultValue" yaml:"defaultValue"`
	Description  string `json:"description" yaml:"description"`
	Required     bool   `json:"required" yaml:"required"`
}

// Contributing is the contribution guide section.
type Contributing struct {
	Enabled          bool   `json:"enabled" yaml:"enabled"`
	Guidelines       string `json:"guidelines" yaml:"guidelines"`
	CodeOfConductURL string `json:"codeOfConductUrl" yaml:"codeOfConductUrl"`
}

// License is the license section.
type License struct {
	Enabled    bool        `json:"enabled" yaml:"enabled"`
	Type       LicenseType `json:"type" yaml:"type" validate:"omitempty,oneof=MIT Apache-2.0 GPL-3.0 BSD-3-Clause ISC Custom"`
	Holder     string      `json:"holder" yaml:"holder"`
	Year       string      `json:"year" yaml:"year"`
	CustomText string      `json:"customText,omitempty" yaml:"customText,omitempty"`
}

// Screenshots is the media gallery section.
type Screenshots struct {
	Enabled bool         `json:"enabled" yaml:"enabled"`
	Items   []Screenshot `json:"items" yaml:"items" validate:"dive"`
}

// Screenshot is one gallery entry.
type Screenshot struct {
	ID      string         `json:"id" yaml:"id" validate:"required"`
	URL     string         `json:"url" yaml:"url"`
	Caption string         `json:"caption" yaml:"caption"`
	Type    ScreenshotType `json:"type" yaml:"type" validate:"omitempty,oneof=image gif video"`
}

// Extras holds the optional trailing sections.
type Extras struct {
	ShowTableOfContents bool          `json:"showTableOfContents" yaml:"showTableOfContents"`
	Acknowledgments     string        `json:"acknowledgments" yaml:"acknowledgments"`
	FAQ                 []FAQItem     `json:"faq" yaml:"faq" validate:"dive"`
	Roadmap             []RoadmapItem `json:"roadmap" yaml:"roadmap" validate:"dive"`
	Changelog           string        `json:"changelog" yaml:"changelog"`
}

// FAQItem is one collapsible question.
type FAQItem struct {
	ID       string `json:"id" yaml:"id" validate:"required"`
	Question string `json:"question" yaml:"question"`
	Answer   string `json:"answer" yaml:"answer"`
}

// RoadmapItem is one checklist entry.
type RoadmapItem struct {
	ID        string `json:"id" yaml:"id" validate:"required"`
	Title     string `json:"title" yaml:"title"`
	Completed bool   `json:"completed" yaml:"completed"`
}

// Author is the project author.
type Author struct {
	Name    string `json:"name" yaml:"name"`
	Github  string `json:"github" yaml:"github"`
	Twitter string `json:"twitter" yaml:"twitter"`
	Website string `json:"website" yaml:"website"`
}

// ItemID returns the badge id.
func (b Badge) ItemID() (id string) {
	id = b.ID
	return id
}

// ItemID returns the example id.
func (c CodeExample) ItemID() (id string) {
	id = c.ID
	return id
}

// ItemID returns the feature id.
func (f Feature) ItemID() (id string) {
	id = f.ID
	return id
}

// ItemID returns the endpoint id.
func (e APIEndpoint) ItemID() (id string) {
	id = e.ID
	return id
}

// ItemID returns the option id.
func (o ConfigOption) ItemID() (id string) {
	id = o.ID
	return id
}

// ItemID returns the screenshot id.
func (s Screenshot) ItemID() (id string) {
	id = s.ID
	return id
}

// ItemID returns the question id.
func (q FAQItem) ItemID() (id string) {
	id = q.ID
	return id
}

// ItemID returns the roadmap item id.
func (r RoadmapItem) ItemID() (id string) {
	id = r.ID
	return id
}
