package main

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/Masterminds/semver/v3"
)

const devboxRepoURL = "https://github.com/stikkireddy/databricks-devbox"

// githubAPIBase is swapped out by tests.
var githubAPIBase = "https://api.github.com"

// latestReleaseTag queries the latest published release of a GitHub
// repository and returns its tag. HTTP and decode failures propagate;
// a release without a tag_name yields an empty tag and no error.
func latestReleaseTag(repoURL string) (string, error) {
	repo := ownerRepo(repoURL)
	url := fmt.Sprintf("%s/repos/%s/releases/latest", githubAPIBase, repo)

	resp, err := http.Get(url)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("GET %s: HTTP %d", url, resp.StatusCode)
	}

	var release struct {
		TagName string `json:"tag_name"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&release); err != nil {
		return "", fmt.Errorf("decode release response: %w", err)
	}
	return release.TagName, nil
}

// latestTag lists a repository's tags and returns the highest one by
// semantic version. Tags that do not parse as semver are skipped; if
// none parse, the first-listed tag wins (GitHub orders by recency).
func latestTag(repoURL string) (string, error) {
	repo := ownerRepo(repoURL)
	url := fmt.Sprintf("%s/repos/%s/tags", githubAPIBase, repo)

	resp, err := http.Get(url)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("GET %s: HTTP %d", url, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	var tags []struct {
		Name string `json:"name"`
	}
	if err := json.Unmarshal(body, &tags); err != nil {
		return "", fmt.Errorf("decode tags response: %w", err)
	}
	if len(tags) == 0 {
		return "", nil
	}

	var best *semver.Version
	bestName := ""
	for _, tag := range tags {
		v, err := semver.NewVersion(strings.TrimPrefix(tag.Name, "v"))
		if err != nil {
			continue
		}
		if best == nil || v.GreaterThan(best) {
			best = v
			bestName = tag.Name
		}
	}
	if bestName != "" {
		return bestName, nil
	}
	return tags[0].Name, nil
}

func ownerRepo(repoURL string) string {
	trimmed := strings.TrimRight(repoURL, "/")
	parts := strings.Split(trimmed, "/")
	if len(parts) < 2 {
		return trimmed
	}
	return parts[len(parts)-2] + "/" + parts[len(parts)-1]
}
