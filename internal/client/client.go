// Package client implements the HTTP client for the RAGFlow-compatible
// ingestion service. It owns the wire protocol: bearer authentication,
// the response envelope, and the translation of failures into the typed
// errors commands branch on.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"ragflowctl/internal/api"
	"ragflowctl/internal/config"
	"ragflowctl/internal/credentials"
	"ragflowctl/internal/domain/valueobject"

	"github.com/google/uuid"
)

const (
	// userAgent is the User-Agent header value sent with all API requests.
	userAgent = "ragflowctl/1.0"

	// contentTypeJSON is the Content-Type header value for JSON requests.
	contentTypeJSON = "application/json"

	// sdkPrefix is the path prefix of token-authenticated endpoints.
	sdkPrefix = "/api/v1"

	// Account endpoints sit outside the SDK prefix and are cookie-scoped.
	pathRegister = "/v1/user/register"
	pathLogin    = "/v1/user/login"
	pathNewToken = "/v1/system/new_token"

	// uploadFieldName is the multipart form field documents are sent under.
	uploadFieldName = "file"

	// loginTokenPrefix is prepended to tokens minted through login before they
	// are persisted. Tokens minted at registration already carry their final
	// form.
	loginTokenPrefix = "ragflow-"
)

// Client provides methods for interacting with the ingestion service.
// It handles authentication, request serialization, and response parsing.
type Client struct {
	baseURL    string
	httpClient *http.Client
	creds      credentials.Store
	log        *slog.Logger
}

// New creates a new API client with the given configuration and credential
// store. Returns an error if the configuration is nil or invalid.
func New(cfg *config.Config, creds credentials.Store) (*Client, error) {
	return NewWithHTTPClient(cfg, creds, nil)
}

// NewWithHTTPClient creates a new API client with the given configuration,
// credential store, and HTTP client. If httpClient is nil, a default HTTP
// client with the configured timeout will be used.
func NewWithHTTPClient(cfg *config.Config, creds credentials.Store, httpClient *http.Client) (*Client, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}
	if creds == nil {
		return nil, errors.New("credential store cannot be nil")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}

	return &Client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		httpClient: httpClient,
		creds:      creds,
		log:        slog.Default(),
	}, nil
}

// Register creates a new account and, in the same cookie-scoped session,
// mints and persists an API token. The password in req must already be in
// wire form. The returned token is empty when registration succeeded but no
// token could be minted; the operator can still mint one through Login.
func (c *Client) Register(ctx context.Context, req api.RegisterRequest) (string, error) {
	session, err := c.newSession()
	if err != nil {
		return "", err
	}

	if err := c.send(ctx, session, http.MethodPost, pathRegister, "", req, nil); err != nil {
		return "", err
	}

	var tok api.TokenData
	if err := c.send(ctx, session, http.MethodPost, pathNewToken, "", struct{}{}, &tok); err != nil {
		c.log.Debug("token minting after registration failed", slog.Any("error", err))
		return "", nil
	}
	if tok.Token == "" {
		return "", nil
	}

	if err := c.creds.Save(tok.Token); err != nil {
		return "", fmt.Errorf("save credential: %w", err)
	}
	return tok.Token, nil
}

// Login authenticates an existing account and persists the returned token.
// The password in req must already be in wire form.
func (c *Client) Login(ctx context.Context, req api.LoginRequest) (string, error) {
	var tok api.TokenData
	if err := c.send(ctx, c.httpClient, http.MethodPost, pathLogin, "", req, &tok); err != nil {
		return "", err
	}
	if tok.Token == "" {
		return "", errors.New("login succeeded but the response carried no token")
	}

	cred := loginTokenPrefix + tok.Token
	if err := c.creds.Save(cred); err != nil {
		return "", fmt.Errorf("save credential: %w", err)
	}
	return cred, nil
}

// CreateDataset creates a knowledge base.
func (c *Client) CreateDataset(ctx context.Context, req api.CreateDatasetRequest) (*api.Dataset, error) {
	var result api.Dataset
	if err := c.sdk(ctx, http.MethodPost, "/datasets", req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// ListDatasets retrieves knowledge bases with optional filtering and
// pagination.
func (c *Client) ListDatasets(ctx context.Context, query api.DatasetListQuery) ([]api.Dataset, error) {
	params := url.Values{}
	if query.ID != "" {
		params.Add("id", query.ID)
	}
	if query.Page > 0 {
		params.Add("page", strconv.Itoa(query.Page))
	}
	if query.PageSize > 0 {
		params.Add("page_size", strconv.Itoa(query.PageSize))
	}

	path := "/datasets"
	if len(params) > 0 {
		path += "?" + params.Encode()
	}

	var result []api.Dataset
	if err := c.sdk(ctx, http.MethodGet, path, nil, &result); err != nil {
		return nil, err
	}
	return result, nil
}

// GetDataset retrieves a single knowledge base by ID.
func (c *Client) GetDataset(ctx context.Context, id string) (*api.Dataset, error) {
	datasets, err := c.ListDatasets(ctx, api.DatasetListQuery{ID: id, Page: 1, PageSize: 1})
	if err != nil {
		return nil, err
	}
	if len(datasets) == 0 {
		return nil, fmt.Errorf("knowledge base %s not found", id)
	}
	return &datasets[0], nil
}

// UpdateDataset mutates a knowledge base.
func (c *Client) UpdateDataset(ctx context.Context, id string, req api.UpdateDatasetRequest) error {
	return c.sdk(ctx, http.MethodPut, "/datasets/"+url.PathEscape(id), req, nil)
}

// UploadDocument uploads one file into a knowledge base.
func (c *Client) UploadDocument(ctx context.Context, datasetID, filePath string) error {
	token, err := c.token()
	if err != nil {
		return err
	}

	f, err := os.Open(filePath)
	if err != nil {
		return fmt.Errorf("open %s: %w", filePath, err)
	}
	defer f.Close()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile(uploadFieldName, filepath.Base(filePath))
	if err != nil {
		return fmt.Errorf("build upload form: %w", err)
	}
	if _, err := io.Copy(part, f); err != nil {
		return fmt.Errorf("read %s: %w", filePath, err)
	}
	if err := writer.Close(); err != nil {
		return fmt.Errorf("finish upload form: %w", err)
	}

	fullURL := c.baseURL + sdkPrefix + "/datasets/" + url.PathEscape(datasetID) + "/documents"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, fullURL, &buf)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	return c.exchange(c.httpClient, req, token, nil)
}

// ListDocuments retrieves one page of a knowledge base's documents.
func (c *Client) ListDocuments(ctx context.Context, datasetID string, page, pageSize int) (*api.DocumentPage, error) {
	params := url.Values{}
	if page > 0 {
		params.Add("page", strconv.Itoa(page))
	}
	if pageSize > 0 {
		params.Add("page_size", strconv.Itoa(pageSize))
	}

	path := "/datasets/" + url.PathEscape(datasetID) + "/documents"
	if len(params) > 0 {
		path += "?" + params.Encode()
	}

	var result api.DocumentPage
	if err := c.sdk(ctx, http.MethodGet, path, nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// ParseDocuments triggers chunking for the given documents in one batch.
func (c *Client) ParseDocuments(ctx context.Context, datasetID string, documentIDs []string) error {
	req := api.ParseDocumentsRequest{DocumentIDs: documentIDs}
	return c.sdk(ctx, http.MethodPost, "/datasets/"+url.PathEscape(datasetID)+"/chunks", req, nil)
}

// RunTask starts an enrichment pipeline on a knowledge base.
func (c *Client) RunTask(ctx context.Context, datasetID string, kind valueobject.TaskKind) error {
	path := "/datasets/" + url.PathEscape(datasetID) + "/run_" + kind.String()
	return c.sdk(ctx, http.MethodPost, path, struct{}{}, nil)
}

// TraceTask fetches one snapshot of an enrichment pipeline's progress. The
// returned task is zero when the service knows of no such task.
func (c *Client) TraceTask(ctx context.Context, datasetID string, kind valueobject.TaskKind) (*api.TraceTask, error) {
	path := "/datasets/" + url.PathEscape(datasetID) + "/trace_" + kind.String()

	var result api.TraceTask
	if err := c.sdk(ctx, http.MethodGet, path, nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// Retrieve runs a similarity search across the knowledge bases named in req.
func (c *Client) Retrieve(ctx context.Context, req api.RetrievalRequest) (*api.RetrievalResult, error) {
	var result api.RetrievalResult
	if err := c.sdk(ctx, http.MethodPost, "/retrieval", req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// newSession returns an HTTP client that shares cookies across requests.
// Registration and token minting must ride the same server session.
func (c *Client) newSession() (*http.Client, error) {
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, fmt.Errorf("create cookie jar: %w", err)
	}
	return &http.Client{
		Timeout:   c.httpClient.Timeout,
		Transport: c.httpClient.Transport,
		Jar:       jar,
	}, nil
}

// token loads the saved credential, mapping every failure to
// ErrNotAuthenticated so callers need only one branch.
func (c *Client) token() (string, error) {
	token, err := c.creds.Load()
	if err != nil {
		if !errors.Is(err, credentials.ErrNotFound) {
			c.log.Debug("credential load failed", slog.Any("error", err))
		}
		return "", ErrNotAuthenticated
	}
	return token, nil
}

// sdk performs a token-authenticated exchange against an SDK endpoint.
func (c *Client) sdk(ctx context.Context, method, path string, body, result any) error {
	token, err := c.token()
	if err != nil {
		return err
	}
	return c.send(ctx, c.httpClient, method, sdkPrefix+path, token, body, result)
}

// send builds a JSON request and runs it through exchange.
func (c *Client) send(
	ctx context.Context,
	hc *http.Client,
	method, path, token string,
	body, result any,
) error {
	var reqBody io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
		reqBody = bytes.NewReader(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", contentTypeJSON)
	}

	return c.exchange(hc, req, token, result)
}

// exchange finishes header setup, performs the request, and decodes the
// service envelope into result. Failures come back as ErrNotAuthenticated,
// *RemoteError, or *TransportError.
func (c *Client) exchange(hc *http.Client, req *http.Request, token string, result any) error {
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("X-Request-ID", uuid.NewString())
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	start := time.Now()
	resp, err := hc.Do(req)
	if err != nil {
		return &TransportError{Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return &TransportError{Status: resp.StatusCode, Err: fmt.Errorf("read response: %w", err)}
	}

	c.log.Debug("api exchange",
		slog.String("method", req.Method),
		slog.String("url", req.URL.String()),
		slog.String("request_id", req.Header.Get("X-Request-ID")),
		slog.Int("status", resp.StatusCode),
		slog.Duration("elapsed", time.Since(start)),
	)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &TransportError{Status: resp.StatusCode, Body: string(raw)}
	}

	var env api.Envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return &TransportError{Status: resp.StatusCode, Body: string(raw), Err: fmt.Errorf("decode envelope: %w", err)}
	}
	if !env.OK() {
		return &RemoteError{Code: env.Code, Message: env.Message}
	}

	if result != nil {
		if err := env.DecodeData(result); err != nil {
			return &TransportError{Status: resp.StatusCode, Body: string(raw), Err: fmt.Errorf("decode data: %w", err)}
		}
	}
	return nil
}
