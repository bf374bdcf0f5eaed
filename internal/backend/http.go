package backend

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/subitlab-buf/subboard-mng-gui/internal/domain"
	"github.com/subitlab-buf/subboard-mng-gui/internal/errors"
)

const defaultHTTPTimeout = 15 * time.Second

// Endpoints holds the two fully-built backend URLs. They are assembled
// once at startup from configuration and passed by reference into
// whatever needs to issue calls; there is no process-wide singleton.
type Endpoints struct {
	// PendingPapers lists papers awaiting a decision (GET).
	PendingPapers string
	// ProcessPaper accepts one paper (POST, ?pid=<id>; earlier protocol
	// variants sent a JSON body {"pid": id} instead).
	ProcessPaper string
}

// BuildEndpoints assembles the endpoint URLs the way the backend's
// request mappings compose: {host}{global}/{segment}.
func BuildEndpoints(hostURL, globalMapping, pendingMapping, processMapping string) Endpoints {
	return Endpoints{
		PendingPapers: fmt.Sprintf("%s%s/%s", hostURL, globalMapping, pendingMapping),
		ProcessPaper:  fmt.Sprintf("%s%s/%s", hostURL, globalMapping, processMapping),
	}
}

// HTTPClient implements Client against the real backend.
type HTTPClient struct {
	endpoints Endpoints
	client    *http.Client
}

// NewHTTPClient builds a backend client for the given endpoints.
func NewHTTPClient(endpoints Endpoints) *HTTPClient {
	return &HTTPClient{
		endpoints: endpoints,
		client:    &http.Client{Timeout: defaultHTTPTimeout},
	}
}

// PendingPapers implements Client.
func (c *HTTPClient) PendingPapers(ctx context.Context) ([]domain.Paper, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoints.PendingPapers, nil)
	if err != nil {
		return nil, errors.New(errors.CodeTransportFailed, "build pending-papers request", err)
	}
	resp, err := c.client.Do(req)
	if err != nil {
		return nil, errors.New(errors.CodeTransportFailed, "", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, errors.New(errors.CodeTransportFailed,
			fmt.Sprintf("pending papers: backend returned %s", resp.Status), nil)
	}

	var papers []domain.Paper
	if err := json.NewDecoder(resp.Body).Decode(&papers); err != nil {
		return nil, errors.New(errors.CodeDecodeFailed, "decode pending papers", err)
	}
	return papers, nil
}

// AcceptPaper implements Client. The response body is ignored; only the
// HTTP outcome signals success.
func (c *HTTPClient) AcceptPaper(ctx context.Context, id int) error {
	target, err := acceptURL(c.endpoints.ProcessPaper, id)
	if err != nil {
		return errors.New(errors.CodeAcceptFailed, "build accept request", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, target, strings.NewReader(""))
	if err != nil {
		return errors.New(errors.CodeAcceptFailed, "build accept request", err)
	}
	resp, err := c.client.Do(req)
	if err != nil {
		return errors.New(errors.CodeTransportFailed, "", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return errors.New(errors.CodeAcceptFailed,
			fmt.Sprintf("accept paper %d: backend returned %s", id, resp.Status), nil)
	}
	return nil
}

func acceptURL(base string, id int) (string, error) {
	u, err := url.Parse(base)
	if err != nil {
		return "", err
	}
	q := u.Query()
	q.Set("pid", strconv.Itoa(id))
	u.RawQuery = q.Encode()
	return u.String(), nil
}
