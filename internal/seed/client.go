package seed

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/GoSim-25-26J-441/portfolio-backend/internal/projects/domain"
)

// APIClient seeds a running server through its public endpoints.
type APIClient struct {
	baseURL    string
	httpClient *http.Client
	log        zerolog.Logger
}

func NewAPIClient(baseURL string, log zerolog.Logger) *APIClient {
	return &APIClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 10 * time.Second},
		log:        log.With().Str("component", "seed").Str("api", baseURL).Logger(),
	}
}

// Login exchanges credentials for an access token.
func (c *APIClient) Login(ctx context.Context, username, password string) (string, error) {
	body, err := json.Marshal(map[string]string{"username": username, "password": password})
	if err != nil {
		return "", err
	}

	resp, err := c.do(ctx, http.MethodPost, "/api/login", "", body)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("login: %s: %s", resp.Status, readMessage(resp.Body))
	}

	var out struct {
		AccessToken string `json:"access_token"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("login: decode response: %w", err)
	}
	if out.AccessToken == "" {
		return "", fmt.Errorf("login: empty access token")
	}
	return out.AccessToken, nil
}

// Push POSTs every project with the bearer token. A 409 counts as skipped.
func (c *APIClient) Push(ctx context.Context, accessToken string, items []domain.Project) Result {
	var res Result
	for _, p := range items {
		log := c.log.With().Str("project_id", p.ID).Str("title", p.Title).Logger()

		created, err := c.create(ctx, accessToken, p)
		switch {
		case err != nil:
			log.Error().Err(err).Msg("failed to add project")
			res.Failed++
		case !created:
			log.Info().Msg("project already exists, skipping")
			res.Skipped++
		default:
			log.Info().Msg("project added")
			res.Inserted++
		}
	}

	res.log(c.log, "api")
	return res
}

func (c *APIClient) create(ctx context.Context, accessToken string, p domain.Project) (bool, error) {
	body, err := json.Marshal(p)
	if err != nil {
		return false, err
	}

	resp, err := c.do(ctx, http.MethodPost, "/api/projects", accessToken, body)
	if err != nil {
		return false, err
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusCreated:
		return true, nil
	case http.StatusConflict:
		return false, nil
	default:
		return false, fmt.Errorf("%s: %s", resp.Status, readMessage(resp.Body))
	}
}

func (c *APIClient) do(ctx context.Context, method, path, accessToken string, body []byte) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	if accessToken != "" {
		req.Header.Set("Authorization", "Bearer "+accessToken)
	}
	return c.httpClient.Do(req)
}

// readMessage pulls "message" or "msg" out of an error body.
func readMessage(r io.Reader) string {
	raw, _ := io.ReadAll(io.LimitReader(r, 4096))
	var body struct {
		Message string `json:"message"`
		Msg     string `json:"msg"`
	}
	if err := json.Unmarshal(raw, &body); err == nil {
		if body.Message != "" {
			return body.Message
		}
		if body.Msg != "" {
			return body.Msg
		}
	}
	return strings.TrimSpace(string(raw))
}
