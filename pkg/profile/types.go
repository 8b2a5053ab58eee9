// Package profile models a personal GitHub profile README and renders it.
package profile

// Data is the complete profile document.
type Data struct {
	User     User      `json:"user" yaml:"user"`
	Header   Header    `json:"header" yaml:"header"`
	About    About     `json:"about" yaml:"about"`
	Skills   Skills    `json:"skills" yaml:"skills"`
	Stats    Stats     `json:"stats" yaml:"stats"`
	Socials  Socials   `json:"socials" yaml:"socials"`
	Projects []Project `json:"projects" yaml:"projects" validate:"dive"`
	Extras   Extras    `json:"extras" yaml:"extras"`
	Support  Support   `json:"support" yaml:"support"`
}

// User identifies the profile owner.
type User struct {
	GithubUsername string `json:"githubUsername" yaml:"githubUsername"`
}

// Header is the centered introduction block.
type Header struct {
	Title     string `json:"title" yaml:"title"`
	Subtitle  string `json:"subtitle" yaml:"subtitle"`
	Banner    string `json:"banner" yaml:"banner"`
	ShowViews bool   `json:"showViews" yaml:"showViews"`
}

// About holds the free-text biography and the fixed bullet prompts.
type About struct {
	Bio           string `json:"bio" yaml:"bio"`
	WorkingOn     string `json:"workingOn" yaml:"workingOn"`
	Learning      string `json:"learning" yaml:"learning"`
	AskMeAbout    string `json:"askMeAbout" yaml:"askMeAbout"`
	Collaboration string `json:"collaboration" yaml:"collaboration"`
	FunFact       string `json:"funFact" yaml:"funFact"`
	Contact       string `json:"contact" yaml:"contact"`
	Hobbies       string `json:"hobbies" yaml:"hobbies"`
	PortfolioLink string `json:"portfoliolink" yaml:"portfoliolink"`
}

// Skills groups technology display names. Each group is an ordered set.
type Skills struct {
	Languages  []string `json:"languages" yaml:"languages"`
	Frameworks []string `json:"frameworks" yaml:"frameworks"`
	Tools      []string `json:"tools" yaml:"tools"`
	IconStyle  string   `json:"iconStyle" yaml:"iconStyle" validate:"omitempty,oneof=skillicons skillicons-light skillicons-animated shields-badge shields-flat shields-plastic simple-colored simple-white logos minimal"`
}

// SkillGroup names one of the three skill lists.
type SkillGroup string

// Skill groups.
const (
	SkillLanguages  SkillGroup = "languages"
	SkillFrameworks SkillGroup = "frameworks"
	SkillTools      SkillGroup = "tools"
)

// StatCard configures one github-readme-stats card.
type StatCard struct {
	Show       bool   `json:"show" yaml:"show"`
	Theme      string `json:"theme" yaml:"theme"`
	ShowIcons  bool   `json:"showIcons" yaml:"showIcons"`
	HideBorder bool   `json:"hideBorder" yaml:"hideBorder"`
}

// TopLangCard is the top languages card, which also has a layout.
type TopLangCard struct {
	Show       bool   `json:"show" yaml:"show"`
	Theme      string `json:"theme" yaml:"theme"`
	ShowIcons  bool   `json:"showIcons" yaml:"showIcons"`
	HideBorder bool   `json:"hideBorder" yaml:"hideBorder"`
	Layout     string `json:"layout" yaml:"layout" validate:"omitempty,oneof=compact normal"`
}

// Stats holds the three stats cards.
type Stats struct {
	Github  StatCard    `json:"github" yaml:"github"`
	Streak  StatCard    `json:"streak" yaml:"streak"`
	TopLang TopLangCard `json:"topLang" yaml:"topLang"`
}

// Socials holds handles or URL fragments per network.
type Socials struct {
	Github        string `json:"github" yaml:"github"`
	Twitter       string `json:"twitter" yaml:"twitter"`
	Linkedin      string `json:"linkedin" yaml:"linkedin"`
	Website       string `json:"website" yaml:"website"`
	Discord       string `json:"discord" yaml:"discord"`
	Dev           string `json:"dev" yaml:"dev"`
	Medium        string `json:"medium" yaml:"medium"`
	Stackoverflow string `json:"stackoverflow" yaml:"stackoverflow"`
	Youtube       string `json:"youtube" yaml:"youtube"`
	Instagram     string `json:"instagram" yaml:"instagram"`
	Telegram      string `json:"telegram" yaml:"telegram"`
}

// Project is one featured project.
type Project struct {
	ID          string `json:"id" yaml:"id" validate:"required"`
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description" yaml:"description"`
	Link        string `json:"link" yaml:"link"`
}

// ItemID returns the project id.
func (p Project) ItemID() (id string) {
	id = p.ID
	return id
}

// Extras toggles the decorative sections.
type Extras struct {
	ShowSnake    bool   `json:"showSnake" yaml:"showSnake"`
	ShowActivity bool   `json:"showActivity" yaml:"showActivity"`
	ShowQuotes   bool   `json:"showQuotes" yaml:"showQuotes"`
	QuoteTheme   string `json:"quoteTheme" yaml:"quoteTheme"`
	CustomQuote  string `json:"customQuote" yaml:"customQuote"`
	ShowTrophies bool   `json:"showTrophies" yaml:"showTrophies"`
	ProjectTheme string `json:"projectTheme" yaml:"projectTheme"`
}

// Support holds donation handles.
type Support struct {
	BuyMeACoffee string `json:"buymeacoffee" yaml:"buymeacoffee"`
	Kofi         string `json:"kofi" yaml:"kofi"`
}
