package auth

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// GitHubConfig holds the OAuth application credentials.
type GitHubConfig struct {
	ClientID     string
	ClientSecret string
	// AuthorizeURL, TokenURL and APIBaseURL default to github.com endpoints
	// and exist so tests can point the client at a local server.
	AuthorizeURL string
	TokenURL     string
	APIBaseURL   string
}

const (
	defaultAuthorizeURL = "https://github.com/login/oauth/authorize"
	defaultTokenURL     = "https://github.com/login/oauth/access_token"
	defaultAPIBaseURL   = "https://api.github.com"
)

// GitHubUser is the subset of the GitHub account we care about. The numeric
// account ID becomes the owner tag, matching what the web client stores from
// its OAuth provider.
type GitHubUser struct {
	ID    int64  `json:"id"`
	Login string `json:"login"`
}

// GitHubClient performs the server side of the GitHub OAuth web flow:
// building the authorize redirect, exchanging the callback code for an
// access token and resolving the authenticated account.
type GitHubClient struct {
	config     GitHubConfig
	httpClient *http.Client
}

// NewGitHubClient creates a GitHubClient for the given OAuth application.
func NewGitHubClient(config GitHubConfig) *GitHubClient {
	if config.AuthorizeURL == "" {
		config.AuthorizeURL = defaultAuthorizeURL
	}
	if config.TokenURL == "" {
		config.TokenURL = defaultTokenURL
	}
	if config.APIBaseURL == "" {
		config.APIBaseURL = defaultAPIBaseURL
	}
	return &GitHubClient{
		config:     config,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// AuthorizeURL returns the GitHub authorize URL the browser is redirected to.
func (c *GitHubClient) AuthorizeURL(state string) string {
	params := url.Values{}
	params.Set("client_id", c.config.ClientID)
	params.Set("state", state)
	return c.config.AuthorizeURL + "?" + params.Encode()
}

// ExchangeCode trades an OAuth callback code for an access token.
func (c *GitHubClient) ExchangeCode(ctx context.Context, code string) (string, error) {
	form := url.Values{}
	form.Set("client_id", c.config.ClientID)
	form.Set("client_secret", c.config.ClientSecret)
	form.Set("code", code)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.config.TokenURL, strings.NewReader(form.Encode()))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("exchanging code: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("exchanging code: unexpected status %d", resp.StatusCode)
	}

	var body struct {
		AccessToken      string `json:"access_token"`
		Error            string `json:"error"`
		ErrorDescription string `json:"error_description"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return "", fmt.Errorf("decoding token response: %w", err)
	}
	if body.Error != "" {
		return "", fmt.Errorf("exchanging code: %s", body.Error)
	}
	if body.AccessToken == "" {
		return "", fmt.Errorf("exchanging code: empty access token")
	}

	return body.AccessToken, nil
}

// FetchUser resolves the account behind an access token.
func (c *GitHubClient) FetchUser(ctx context.Context, accessToken string) (*GitHubUser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.config.APIBaseURL+"/user", nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)
	req.Header.Set("Accept", "application/vnd.github+json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching user: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetching user: unexpected status %d", resp.StatusCode)
	}

	var user GitHubUser
	if err := json.NewDecoder(resp.Body).Decode(&user); err != nil {
		return nil, fmt.Errorf("decoding user response: %w", err)
	}
	if user.ID == 0 {
		return nil, fmt.Errorf("fetching user: missing account id")
	}

	return &user, nil
}

// OwnerTag returns the opaque owner tag for a GitHub account: the numeric
// account ID rendered as a string.
func (u *GitHubUser) OwnerTag() string {
	return strconv.FormatInt(u.ID, 10)
}
