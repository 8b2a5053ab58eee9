package github

import (
	"context"
	"encoding/base64"
	"io"
	"math"
	"net/http"
	"net/url"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/tidwall/gjson"
	"golang.org/x/sync/errgroup"
)

const (
	// DefaultBaseURL is the public GitHub REST API.
	DefaultBaseURL = "https://api.github.com"
	// UserAgent identifies requests.
	UserAgent = "readme-forge/1.0"
	// RequestTimeout bounds each HTTP request.
	RequestTimeout = 30 * time.Second
	// MaxContributors is how many contributors an analysis keeps.
	MaxContributors = 5
	// fetchConcurrency caps in-flight requests per analysis.
	fetchConcurrency = 8
)

// ErrNotFound is returned for 404 responses.
var ErrNotFound = errors.New("not found")

// Client talks to the GitHub REST API.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
	logger     *logrus.Logger
}

// NewClient creates a client. An empty token makes anonymous requests and an
// empty baseURL selects DefaultBaseURL.
func NewClient(token, baseURL string, logger *logrus.Logger) (client *Client) {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	if logger == nil {
		logger = logrus.New()
		logger.SetLevel(logrus.WarnLevel)
	}

	client = &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		token:   token,
		httpClient: &http.Client{
			Timeout: RequestTimeout,
		},
		logger: logger,
	}
	return client
}

// ParseFullName splits "owner/repo" or a github.com URL into its parts.
func ParseFullName(input string) (owner, repo string, err error) {
	s := strings.TrimSpace(input)
	if u, urlErr := url.Parse(s); urlErr == nil && u.Host != "" {
		s = u.Path
	}

	s = strings.TrimPrefix(s, "github.com/")
	s = strings.TrimSuffix(strings.Trim(s, "/"), ".git")
	parts := strings.Split(s, "/")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		err = errors.Errorf("expected owner/repo, got %q", input)
		return owner, repo, err
	}

	owner = parts[0]
	repo = parts[1]
	return owner, repo, err
}

// Analyze fetches repository info plus languages, README, package.json,
// contributors and key files concurrently. Only the repository info is
// mandatory; every other failure is logged and leaves its field empty.
//
//nolint:funlen // one goroutine per endpoint
func (c *Client) Analyze(ctx context.Context, owner, repo string) (analysis Analysis, err error) {
	base := "/repos/" + url.PathEscape(owner) + "/" + url.PathEscape(repo)

	var (
		repoInfo     gjson.Result
		repoErr      error
		languages    gjson.Result
		readme       string
		packageJSON  string
		contributors gjson.Result
		mu           sync.Mutex
		files        = make(map[string]string)
	)

	// Settle-all: goroutines record their own outcome and never fail the group.
	var g errgroup.Group
	g.SetLimit(fetchConcurrency)

	g.Go(func() error {
		repoInfo, repoErr = c.getJSON(ctx, base)
		return nil
	})

	g.Go(func() error {
		var fetchErr error
		languages, fetchErr = c.getJSON(ctx, base+"/languages")
		c.softFail("languages", fetchErr)
		return nil
	})

	g.Go(func() error {
		var fetchErr error
		readme, fetchErr = c.getContent(ctx, base+"/readme")
		c.softFail("readme", fetchErr)
		return nil
	})

	g.Go(func() error {
		var fetchErr error
		packageJSON, fetchErr = c.getContent(ctx, base+"/contents/package.json")
		c.softFail("package.json", fetchErr)
		return nil
	})

	g.Go(func() error {
		var fetchErr error
		contributors, fetchErr = c.getJSON(ctx, base+"/contributors?per_page=5")
		c.softFail("contributors", fetchErr)
		return nil
	})

	for _, name := range KeyFiles() {
		g.Go(func() error {
			content, fetchErr := c.getContent(ctx, base+"/contents/"+name)
			if fetchErr != nil || content == "" {
				return nil
			}
			mu.Lock()
			files[name] = content
			mu.Unlock()
			return nil
		})
	}

	_ = g.Wait()

	if repoErr != nil {
		err = errors.Wrapf(repoErr, "failed to fetch repository %s/%s", owner, repo)
		return analysis, err
	}

	analysis = parseRepo(repoInfo)
	analysis.Languages = parseLanguages(languages)
	analysis.Contributors = parseContributors(contributors)
	analysis.FileContents = files

	if readme != "" {
		analysis.HasReadme = true
		analysis.ExistingReadme = readme
	}

	if packageJSON != "" {
		if gjson.Valid(packageJSON) {
			info := parsePackageJSON(gjson.Parse(packageJSON))
			analysis.PackageInfo = &info
			analysis.FileContents["package.json"] = packageJSON
		} else {
			c.logger.WithField("repo", analysis.FullName).Warn("package.json is not valid JSON")
		}
	}

	c.logger.WithFields(logrus.Fields{
		"repo":      analysis.FullName,
		"languages": len(analysis.Languages),
		"files":     len(analysis.FileContents),
	}).Debug("analyzed repository")

	return analysis, err
}

// ListRepos returns the authenticated user's repositories, most recently
// updated first.
func (c *Client) ListRepos(ctx context.Context) (repos []RepoSummary, err error) {
	var list gjson.Result
	list, err = c.getJSON(ctx, "/user/repos?per_page=100&sort=updated&type=all")
	if err != nil {
		err = errors.Wrap(err, "failed to list repositories")
		return repos, err
	}

	repos = make([]RepoSummary, 0, len(list.Array()))
	for _, r := range list.Array() {
		repos = append(repos, RepoSummary{
			ID:          r.Get("id").Int(),
			Name:        r.Get("name").String(),
			FullName:    r.Get("full_name").String(),
			Description: r.Get("description").String(),
			Private:     r.Get("private").Bool(),
			Language:    r.Get("language").String(),
			Stars:       r.Get("stargazers_count").Int(),
			Forks:       r.Get("forks_count").Int(),
			UpdatedAt:   r.Get("updated_at").String(),
			Topics:      stringArray(r.Get("topics")),
			Homepage:    r.Get("homepage").String(),
			License:     r.Get("license.spdx_id").String(),
			HTMLURL:     r.Get("html_url").String(),
		})
	}

	return repos, err
}

func (c *Client) softFail(what string, err error) {
	if err != nil {
		c.logger.WithError(err).WithField("endpoint", what).Warn("optional repository data unavailable")
	}
}

// getContent fetches a contents endpoint and decodes its base64 payload.
func (c *Client) getContent(ctx context.Context, path string) (content string, err error) {
	var doc gjson.Result
	doc, err = c.getJSON(ctx, path)
	if err != nil {
		return content, err
	}

	encoded := doc.Get("content").String()
	if encoded == "" {
		return content, err
	}

	var decoded []byte
	decoded, err = base64.StdEncoding.DecodeString(strings.ReplaceAll(encoded, "\n", ""))
	if err != nil {
		err = errors.Wrapf(err, "failed to decode %s", path)
		return content, err
	}

	content = string(decoded)
	return content, err
}

// getJSON performs an authenticated GET and validates the JSON body.
func (c *Client) getJSON(ctx context.Context, path string) (result gjson.Result, err error) {
	var req *http.Request
	req, err = http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		err = errors.Wrap(err, "failed to create HTTP request")
		return result, err
	}

	req.Header.Set("Accept", "application/vnd.github.v3+json")
	req.Header.Set("User-Agent", UserAgent)
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	var resp *http.Response
	resp, err = c.httpClient.Do(req)
	if err != nil {
		err = errors.Wrap(err, "HTTP request failed")
		return result, err
	}
	defer resp.Body.Close()

	var body []byte
	body, err = io.ReadAll(resp.Body)
	if err != nil {
		err = errors.Wrap(err, "failed to read response body")
		return result, err
	}

	if resp.StatusCode == http.StatusNotFound {
		err = errors.Wrapf(ErrNotFound, "GET %s", path)
		return result, err
	}

	if resp.StatusCode != http.StatusOK {
		err = errors.Errorf("GET %s failed with status %d: %s", path, resp.StatusCode, gjson.GetBytes(body, "message").String())
		return result, err
	}

	if !gjson.ValidBytes(body) {
		err = errors.Errorf("GET %s returned invalid JSON", path)
		return result, err
	}

	result = gjson.ParseBytes(body)
	return result, err
}

func parseRepo(r gjson.Result) (a Analysis) {
	a = Analysis{
		Name:            r.Get("name").String(),
		FullName:        r.Get("full_name").String(),
		Description:     r.Get("description").String(),
		Private:         r.Get("private").Bool(),
		HTMLURL:         r.Get("html_url").String(),
		Homepage:        r.Get("homepage").String(),
		DefaultBranch:   r.Get("default_branch").String(),
		Stars:           r.Get("stargazers_count").Int(),
		Forks:           r.Get("forks_count").Int(),
		Watchers:        r.Get("watchers_count").Int(),
		OpenIssues:      r.Get("open_issues_count").Int(),
		Size:            r.Get("size").Int(),
		HasWiki:         r.Get("has_wiki").Bool(),
		HasIssues:       r.Get("has_issues").Bool(),
		HasProjects:     r.Get("has_projects").Bool(),
		HasDiscussions:  r.Get("has_discussions").Bool(),
		Topics:          stringArray(r.Get("topics")),
		License:         r.Get("license.spdx_id").String(),
		LicenseName:     r.Get("license.name").String(),
		PrimaryLanguage: r.Get("language").String(),
		Owner: Owner{
			Login:  r.Get("owner.login").String(),
			Avatar: r.Get("owner.avatar_url").String(),
			Type:   r.Get("owner.type").String(),
		},
		CreatedAt: r.Get("created_at").String(),
		UpdatedAt: r.Get("updated_at").String(),
		PushedAt:  r.Get("pushed_at").String(),
	}
	return a
}

// parseLanguages converts the byte counts into rounded percentages, highest
// first. Equal percentages keep the API order.
func parseLanguages(r gjson.Result) (languages []Language) {
	languages = []Language{}

	var total int64
	r.ForEach(func(key, value gjson.Result) bool {
		languages = append(languages, Language{Name: key.String(), Bytes: value.Int()})
		total += value.Int()
		return true
	})

	if total > 0 {
		for i := range languages {
			languages[i].Percentage = int(math.Round(float64(languages[i].Bytes) / float64(total) * 100))
		}
	}

	slices.SortStableFunc(languages, func(a, b Language) int {
		return b.Percentage - a.Percentage
	})

	return languages
}

func parseContributors(r gjson.Result) (contributors []Contributor) {
	contributors = []Contributor{}
	for _, c := range r.Array() {
		if len(contributors) == MaxContributors {
			break
		}
		contributors = append(contributors, Contributor{
			Login:         c.Get("login").String(),
			Avatar:        c.Get("avatar_url").String(),
			Contributions: c.Get("contributions").Int(),
		})
	}
	return contributors
}

func parsePackageJSON(r gjson.Result) (info PackageInfo) {
	author := r.Get("author")
	if author.IsObject() {
		author = author.Get("name")
	}

	info = PackageInfo{
		Name:            r.Get("name").String(),
		Version:         r.Get("version").String(),
		Description:     r.Get("description").String(),
		Main:            r.Get("main").String(),
		Scripts:         objectKeys(r.Get("scripts")),
		Dependencies:    objectKeys(r.Get("dependencies")),
		DevDependencies: objectKeys(r.Get("devDependencies")),
		Keywords:        stringArray(r.Get("keywords")),
		Author:          author.String(),
		License:         r.Get("license").String(),
	}
	return info
}

func objectKeys(r gjson.Result) (keys []string) {
	keys = []string{}
	r.ForEach(func(key, _ gjson.Result) bool {
		keys = append(keys, key.String())
		return true
	})
	return keys
}

func stringArray(r gjson.Result) (values []string) {
	values = []string{}
	for _, v := range r.Array() {
		values = append(values, v.String())
	}
	return values
}
