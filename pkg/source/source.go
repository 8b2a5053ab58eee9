// Package source loads document data files from disk or a URL.
package source

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/nikogura/readme-forge/pkg/github"
	"github.com/nikogura/readme-forge/pkg/profile"
	"github.com/nikogura/readme-forge/pkg/repo"
	"github.com/pkg/errors"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

const (
	// FetchTimeout bounds a URL fetch.
	FetchTimeout = 30 * time.Second
	// UserAgent is sent with URL fetches.
	UserAgent = "readme-forge/1.0"
)

// IsURL reports whether input is an http(s) URL rather than a path.
func IsURL(input string) (isURL bool) {
	parsedURL, err := url.Parse(input)
	isURL = err == nil && (parsedURL.Scheme == "http" || parsedURL.Scheme == "https")
	return isURL
}

// Fetch retrieves raw data from a file or URL.
func Fetch(ctx context.Context, fs afero.Fs, input string) (data []byte, err error) {
	if IsURL(input) {
		data, err = fetchFromURL(ctx, input)
		if err != nil {
			err = errors.Wrapf(err, "failed to fetch data from URL: %s", input)
			return data, err
		}
		return data, err
	}

	data, err = fetchFromFile(fs, input)
	if err != nil {
		err = errors.Wrapf(err, "failed to fetch data from file: %s", input)
		return data, err
	}

	return data, err
}

// fetchFromFile reads data from a file.
func fetchFromFile(fs afero.Fs, path string) (data []byte, err error) {
	data, err = afero.ReadFile(fs, path)
	if err != nil {
		err = errors.Wrapf(err, "failed to read file: %s", path)
		return data, err
	}

	if len(bytes.TrimSpace(data)) == 0 {
		err = errors.New("file is empty")
		return data, err
	}

	return data, err
}

// fetchFromURL retrieves data from a URL.
func fetchFromURL(ctx context.Context, urlStr string) (data []byte, err error) {
	ctx, cancel := context.WithTimeout(ctx, FetchTimeout)
	defer cancel()

	var req *http.Request
	req, err = http.NewRequestWithContext(ctx, http.MethodGet, urlStr, nil)
	if err != nil {
		err = errors.Wrap(err, "failed to create HTTP request")
		return data, err
	}

	req.Header.Set("User-Agent", UserAgent)

	client := &http.Client{
		Timeout: FetchTimeout,
	}

	var resp *http.Response
	resp, err = client.Do(req)
	if err != nil {
		err = errors.Wrap(err, "HTTP request failed")
		return data, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		err = errors.Errorf("HTTP request failed with status: %d", resp.StatusCode)
		return data, err
	}

	data, err = io.ReadAll(resp.Body)
	if err != nil {
		err = errors.Wrap(err, "failed to read response body")
		return data, err
	}

	if len(bytes.TrimSpace(data)) == 0 {
		err = errors.New("fetched content is empty")
		return data, err
	}

	return data, err
}

// DecodeProfile decodes YAML or JSON onto the profile defaults, then
// normalizes and validates the result.
func DecodeProfile(data []byte) (d profile.Data, err error) {
	d = profile.DefaultData()

	err = yaml.Unmarshal(data, &d)
	if err != nil {
		err = errors.Wrap(err, "failed to parse profile data")
		return d, err
	}

	d.Normalize()

	err = validator.New().Struct(d)
	if err != nil {
		err = errors.Wrap(err, "invalid profile data")
		return d, err
	}

	return d, err
}

// DecodeRepo decodes YAML or JSON onto the project defaults, then
// normalizes and validates the result.
func DecodeRepo(data []byte) (d repo.Data, err error) {
	d = repo.DefaultData()

	err = yaml.Unmarshal(data, &d)
	if err != nil {
		err = errors.Wrap(err, "failed to parse project data")
		return d, err
	}

	d.Normalize()

	err = validator.New().Struct(d)
	if err != nil {
		err = errors.Wrap(err, "invalid project data")
		return d, err
	}

	return d, err
}

// LoadProfile fetches and decodes a profile data file.
func LoadProfile(ctx context.Context, fs afero.Fs, input string) (d profile.Data, err error) {
	var data []byte
	data, err = Fetch(ctx, fs, input)
	if err != nil {
		return d, err
	}

	d, err = DecodeProfile(data)
	if err != nil {
		err = errors.Wrapf(err, "failed to load %s", input)
		return d, err
	}

	return d, err
}

// LoadRepo fetches and decodes a project data file.
func LoadRepo(ctx context.Context, fs afero.Fs, input string) (d repo.Data, err error) {
	var data []byte
	data, err = Fetch(ctx, fs, input)
	if err != nil {
		return d, err
	}

	d, err = DecodeRepo(data)
	if err != nil {
		err = errors.Wrapf(err, "failed to load %s", input)
		return d, err
	}

	return d, err
}

// LoadAnalysis reads a saved repository analysis in JSON.
func LoadAnalysis(ctx context.Context, fs afero.Fs, input string) (a github.Analysis, err error) {
	var data []byte
	data, err = Fetch(ctx, fs, input)
	if err != nil {
		return a, err
	}

	err = json.Unmarshal(data, &a)
	if err != nil {
		err = errors.Wrapf(err, "failed to parse analysis: %s", input)
		return a, err
	}

	if a.Name == "" {
		err = errors.Errorf("analysis has no repository name: %s", input)
		return a, err
	}

	return a, err
}

// SaveYAML writes a document as YAML, the format LoadProfile and LoadRepo read.
func SaveYAML(fs afero.Fs, path string, doc any) (err error) {
	var data []byte
	data, err = yaml.Marshal(doc)
	if err != nil {
		err = errors.Wrap(err, "failed to marshal document")
		return err
	}

	err = afero.WriteFile(fs, path, data, 0600)
	if err != nil {
		err = errors.Wrapf(err, "failed to write file: %s", path)
		return err
	}

	return err
}
