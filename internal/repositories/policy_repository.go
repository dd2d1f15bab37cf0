package repositories

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/insurewise/policy-portal/internal/metrics"
	"github.com/insurewise/policy-portal/internal/models"
	"github.com/insurewise/policy-portal/internal/utils"
)

/* ------------------------------------------------------------------
   Public interface
------------------------------------------------------------------ */

// PolicyRepository is the transport to the remote policy collection. Each
// method is a single HTTP request with no retry and no caching.
type PolicyRepository interface {
	ListAll(ctx context.Context) ([]models.PolicyRecord, error)
	GetByID(ctx context.Context, id int) (models.PolicyRecord, error)
	Create(ctx context.Context, rec models.PolicyRecord) (models.PolicyRecord, error)
	Update(ctx context.Context, id int, rec models.PolicyRecord) (models.PolicyRecord, error)
	Delete(ctx context.Context, id int) error
	Ping(ctx context.Context) error
}

/* ------------------------------------------------------------------
   Implementation
------------------------------------------------------------------ */

const maxErrorBody = 512

type httpPolicyRepo struct {
	baseURL    string
	httpClient *http.Client
}

// NewPolicyRepository targets the collection at baseURL
// (e.g. http://localhost:3001/insurances).
func NewPolicyRepository(baseURL string, timeout time.Duration) PolicyRepository {
	return NewPolicyRepositoryWithClient(baseURL, &http.Client{Timeout: timeout})
}

func NewPolicyRepositoryWithClient(baseURL string, client *http.Client) PolicyRepository {
	return &httpPolicyRepo{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: client,
	}
}

func (r *httpPolicyRepo) ListAll(ctx context.Context) ([]models.PolicyRecord, error) {
	var out []models.PolicyRecord
	if err := r.do(ctx, "list", http.MethodGet, r.baseURL, nil, &out); err != nil {
		return nil, err
	}
	if out == nil {
		out = []models.PolicyRecord{}
	}
	return out, nil
}

func (r *httpPolicyRepo) GetByID(ctx context.Context, id int) (models.PolicyRecord, error) {
	var out models.PolicyRecord
	err := r.do(ctx, "get", http.MethodGet, r.itemURL(id), nil, &out)
	return out, err
}

func (r *httpPolicyRepo) Create(ctx context.Context, rec models.PolicyRecord) (models.PolicyRecord, error) {
	var out models.PolicyRecord
	err := r.do(ctx, "create", http.MethodPost, r.baseURL, rec, &out)
	return out, err
}

func (r *httpPolicyRepo) Update(ctx context.Context, id int, rec models.PolicyRecord) (models.PolicyRecord, error) {
	var out models.PolicyRecord
	err := r.do(ctx, "update", http.MethodPut, r.itemURL(id), rec, &out)
	return out, err
}

func (r *httpPolicyRepo) Delete(ctx context.Context, id int) error {
	return r.do(ctx, "delete", http.MethodDelete, r.itemURL(id), nil, nil)
}

func (r *httpPolicyRepo) Ping(ctx context.Context) error {
	return r.do(ctx, "ping", http.MethodGet, r.baseURL, nil, nil)
}

func (r *httpPolicyRepo) itemURL(id int) string {
	return r.baseURL + "/" + strconv.Itoa(id)
}

// do sends one request and decodes a 2xx body into out when out is non-nil.
func (r *httpPolicyRepo) do(ctx context.Context, op, method, url string, in, out any) error {
	status := 0
	start := time.Now()
	defer func() { metrics.ObserveStoreRequest(op, status, time.Since(start)) }()

	fail := func(code int, cause error) error {
		return &utils.TransportError{Op: op, Method: method, URL: url, StatusCode: code, Err: cause}
	}

	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return fail(0, fmt.Errorf("marshal request: %w", err))
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return fail(0, fmt.Errorf("create request: %w", err))
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if id := utils.RequestIDFrom(ctx); id != "" {
		req.Header.Set("X-Request-ID", id)
	}

	resp, err := r.httpClient.Do(req)
	if err != nil {
		return fail(0, err)
	}
	defer resp.Body.Close()
	status = resp.StatusCode

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		var cause error
		if s := strings.TrimSpace(string(snippet)); s != "" && s != "{}" {
			cause = fmt.Errorf("%s", s)
		}
		return fail(resp.StatusCode, cause)
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fail(resp.StatusCode, fmt.Errorf("decode response: %w", err))
	}
	return nil
}
