package catalog

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/marquee-cli/marquee/log"
)

// Firebase resolves titles through the Realtime Database REST API,
// reading <BaseURL>/movies_by_id/<id>.json.
type Firebase struct {
	BaseURL string
	Client  *http.Client
	// Token returns the database secret or ID token, "" for public databases.
	Token func() string
}

func (f *Firebase) endpoint(id string) (string, error) {
	base := strings.TrimRight(f.BaseURL, "/")
	if base == "" {
		return "", fmt.Errorf("catalog base url is not configured: %w", ErrNotFound)
	}

	u, err := url.Parse(base + "/movies_by_id/" + url.PathEscape(id) + ".json")
	if err != nil {
		return "", fmt.Errorf("catalog url: %w", err)
	}

	if f.Token != nil {
		if token := f.Token(); token != "" {
			q := u.Query()
			q.Set("auth", token)
			u.RawQuery = q.Encode()
		}
	}

	return u.String(), nil
}

func (f *Firebase) Resolve(ctx context.Context, id string) (Record, error) {
	endpoint, err := f.endpoint(id)
	if err != nil {
		return Record{}, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return Record{}, err
	}
	req.Header.Set("Accept", "application/json")

	client := f.Client
	if client == nil {
		client = http.DefaultClient
	}

	resp, err := client.Do(req)
	if err != nil {
		return Record{}, fmt.Errorf("fetch %q: %w", id, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Record{}, fmt.Errorf("fetch %q: unexpected status %s", id, resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return Record{}, fmt.Errorf("read %q: %w", id, err)
	}

	// The database answers a missing path with a literal null.
	if trimmed := bytes.TrimSpace(body); len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return Record{}, fmt.Errorf("catalog %q: %w", id, ErrNotFound)
	}

	var raw map[string]any
	if err := json.Unmarshal(body, &raw); err != nil {
		return Record{}, fmt.Errorf("decode %q: %w", id, err)
	}

	log.Debugf("catalog: resolved %s", id)
	return Normalize(id, raw), nil
}
