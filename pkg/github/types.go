// Package github fetches repository metadata used to seed a project README.
package github

// Analysis is everything known about a repository after a fetch.
type Analysis struct {
	Name          string `json:"name"`
	FullName      string `json:"fullName"`
	Description   string `json:"description"`
	Private       bool   `json:"private"`
	HTMLURL       string `json:"htmlUrl"`
	Homepage      string `json:"homepage"`
	DefaultBranch string `json:"defaultBranch"`

	Stars      int64 `json:"stars"`
	Forks      int64 `json:"forks"`
	Watchers   int64 `json:"watchers"`
	OpenIssues int64 `json:"openIssues"`
	Size       int64 `json:"size"`

	HasWiki        bool `json:"hasWiki"`
	HasIssues      bool `json:"hasIssues"`
	HasProjects    bool `json:"hasProjects"`
	HasDiscussions bool `json:"hasDiscussions"`

	Topics      []string `json:"topics"`
	License     string   `json:"license"`
	LicenseName string   `json:"licenseName"`

	PrimaryLanguage string     `json:"primaryLanguage"`
	Languages       []Language `json:"languages"`

	FileContents map[string]string `json:"fileContents"`
	PackageInfo  *PackageInfo      `json:"packageInfo"`
	Contributors []Contributor     `json:"contributors"`

	HasReadme      bool   `json:"hasReadme"`
	ExistingReadme string `json:"existingReadme"`

	Owner Owner `json:"owner"`

	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
	PushedAt  string `json:"pushedAt"`
}

// Language is one entry of the language breakdown.
type Language struct {
	Name       string `json:"name"`
	Percentage int    `json:"percentage"`
	Bytes      int64  `json:"bytes"`
}

// PackageInfo is the interesting part of a package.json.
type PackageInfo struct {
	Name            string   `json:"name"`
	Version         string   `json:"version"`
	Description     string   `json:"description"`
	Main            string   `json:"main"`
	Scripts         []string `json:"scripts"`
	Dependencies    []string `json:"dependencies"`
	DevDependencies []string `json:"devDependencies"`
	Keywords        []string `json:"keywords"`
	Author          string   `json:"author"`
	License         string   `json:"license"`
}

// Contributor is one of the top contributors.
type Contributor struct {
	Login         string `json:"login"`
	Avatar        string `json:"avatar"`
	Contributions int64  `json:"contributions"`
}

// Owner is the repository owner.
type Owner struct {
	Login  string `json:"login"`
	Avatar string `json:"avatar"`
	Type   string `json:"type"`
}

// RepoSummary is one row of the user's repository list.
type RepoSummary struct {
	ID          int64    `json:"id"`
	Name        string   `json:"name"`
	FullName    string   `json:"fullName"`
	Description string   `json:"description"`
	Private     bool     `json:"private"`
	Language    string   `json:"language"`
	Stars       int64    `json:"stars"`
	Forks       int64    `json:"forks"`
	UpdatedAt   string   `json:"updatedAt"`
	Topics      []string `json:"topics"`
	Homepage    string   `json:"homepage"`
	License     string   `json:"license"`
	HTMLURL     string   `json:"htmlUrl"`
}

// KeyFiles are fetched for deeper analysis when present.
func KeyFiles() (files []string) {
	files = []string{
		"requirements.txt",
		"pyproject.toml",
		"go.mod",
		"Cargo.toml",
		"pom.xml",
		"composer.json",
		"Gemfile",
		"Dockerfile",
		"docker-compose.yml",
		"Makefile",
		"tsconfig.json",
		"next.config.js",
		"next.config.ts",
		"vite.config.ts",
		"vite.config.js",
	}
	return files
}
