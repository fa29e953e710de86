package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/dmitrijs2005/postboard/internal/client/models"
	"github.com/dmitrijs2005/postboard/internal/common"
	"github.com/dmitrijs2005/postboard/internal/logging"
	"github.com/google/uuid"
)

const jsonContentType = "application/json"

var errEmptyResponse = errors.New("empty response")

// HTTPClient implements Client over HTTP/JSON.
type HTTPClient struct {
	baseURL string
	http    *http.Client
	logger  logging.Logger
}

var _ Client = (*HTTPClient)(nil)

// NewHTTPClient returns a client for the API at baseURL. tokens is consulted
// on every request; timeout bounds each request (zero means no limit).
func NewHTTPClient(baseURL string, tokens TokenSource, timeout time.Duration, logger logging.Logger) *HTTPClient {
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http: &http.Client{
			Transport: &authTransport{base: http.DefaultTransport, tokens: tokens},
			Timeout:   timeout,
		},
		logger: logger.With("component", "api"),
	}
}

// send performs one request. contentType is set when non-empty; out, when
// non-nil, receives the decoded JSON body of a 2xx response.
func (c *HTTPClient) send(ctx context.Context, method, path string, body io.Reader, contentType string, out any) error {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	requestID := uuid.NewString()
	req.Header.Set(common.RequestIDHeader, requestID)

	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Error(ctx, "request failed", "method", method, "path", path, "request_id", requestID, "error", err)
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	c.logger.Debug(ctx, "request done", "method", method, "path", path, "status", resp.StatusCode, "request_id", requestID)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		b, _ := io.ReadAll(resp.Body)
		apiErr := newAPIError(resp.StatusCode, resp.Header.Get("Content-Type"), b)
		c.logger.Warn(ctx, "request rejected", "method", method, "path", path, "status", resp.StatusCode, "message", apiErr.Message, "request_id", requestID)
		return apiErr
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func (c *HTTPClient) sendJSON(ctx context.Context, method, path string, in any, out any) error {
	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		body = bytes.NewReader(b)
	}
	return c.send(ctx, method, path, body, jsonContentType, out)
}

func (c *HTTPClient) Login(ctx context.Context, email, password string) (string, error) {
	var resp loginResponse
	if err := c.sendJSON(ctx, http.MethodPost, "/login", loginRequest{Email: email, Password: password}, &resp); err != nil {
		return "", err
	}
	return resp.Token, nil
}

func (c *HTTPClient) ListPosts(ctx context.Context) ([]models.Post, error) {
	var resp postsResponse
	if err := c.sendJSON(ctx, http.MethodGet, "/posts", nil, &resp); err != nil {
		return nil, err
	}
	if resp.Posts == nil {
		return []models.Post{}, nil
	}
	return resp.Posts, nil
}

func (c *HTTPClient) GetPost(ctx context.Context, id int64) (*models.Post, error) {
	return c.writePost(ctx, http.MethodGet, postPath(id), nil)
}

func (c *HTTPClient) CreatePost(ctx context.Context, in models.PostInput) (*models.Post, error) {
	return c.writePost(ctx, http.MethodPost, "/posts", in)
}

func (c *HTTPClient) UpdatePost(ctx context.Context, id int64, in models.PostInput) (*models.Post, error) {
	return c.writePost(ctx, http.MethodPut, postPath(id), in)
}

func (c *HTTPClient) writePost(ctx context.Context, method, path string, in any) (*models.Post, error) {
	var resp postResponse
	if err := c.sendJSON(ctx, method, path, in, &resp); err != nil {
		return nil, err
	}
	if resp.Post == nil {
		return nil, fmt.Errorf("%s %s: %w", method, path, errEmptyResponse)
	}
	return resp.Post, nil
}

func (c *HTTPClient) DeletePost(ctx context.Context, id int64) error {
	return c.sendJSON(ctx, http.MethodDelete, postPath(id), nil, nil)
}

// UploadPostFile sends the file as multipart/form-data with the fields
// "file" and "post_id". The body is streamed from r as the request is
// written.
func (c *HTTPClient) UploadPostFile(ctx context.Context, postID int64, fileName string, r io.Reader) error {
	pr, pw := io.Pipe()
	w := multipart.NewWriter(pw)

	writeErrCh := make(chan error, 1)
	go func() {
		err := writeUpload(w, postID, fileName, r)
		pw.CloseWithError(err)
		writeErrCh <- err
	}()

	err := c.send(ctx, http.MethodPost, "/upload", pr, w.FormDataContentType(), nil)
	pr.Close()
	writeErr := <-writeErrCh

	if writeErr != nil && !errors.Is(writeErr, io.ErrClosedPipe) {
		return writeErr
	}
	return err
}

func writeUpload(w *multipart.Writer, postID int64, fileName string, r io.Reader) error {
	part, err := w.CreateFormFile("file", fileName)
	if err != nil {
		return fmt.Errorf("build upload: %w", err)
	}
	if _, err := io.Copy(part, r); err != nil {
		return fmt.Errorf("read upload: %w", err)
	}
	if err := w.WriteField("post_id", strconv.FormatInt(postID, 10)); err != nil {
		return fmt.Errorf("build upload: %w", err)
	}
	return w.Close()
}

func (c *HTTPClient) ListComments(ctx context.Context) ([]models.Comment, error) {
	var resp commentsResponse
	if err := c.sendJSON(ctx, http.MethodGet, "/comments", nil, &resp); err != nil {
		return nil, err
	}
	if resp.Comments == nil {
		return []models.Comment{}, nil
	}
	return resp.Comments, nil
}

func (c *HTTPClient) CreateComment(ctx context.Context, in models.CommentInput) (*models.Comment, error) {
	return c.writeComment(ctx, http.MethodPost, "/comments", in)
}

func (c *HTTPClient) UpdateComment(ctx context.Context, id int64, in models.CommentInput) (*models.Comment, error) {
	return c.writeComment(ctx, http.MethodPut, commentPath(id), in)
}

func (c *HTTPClient) writeComment(ctx context.Context, method, path string, in models.CommentInput) (*models.Comment, error) {
	var resp commentResponse
	if err := c.sendJSON(ctx, method, path, in, &resp); err != nil {
		return nil, err
	}
	if resp.Comment == nil {
		return nil, fmt.Errorf("%s %s: %w", method, path, errEmptyResponse)
	}
	return resp.Comment, nil
}

func (c *HTTPClient) DeleteComment(ctx context.Context, id int64) error {
	return c.sendJSON(ctx, http.MethodDelete, commentPath(id), nil, nil)
}

func (c *HTTPClient) GetUser(ctx context.Context, id int64) (*models.User, error) {
	var resp userResponse
	if err := c.sendJSON(ctx, http.MethodGet, userPath(id), nil, &resp); err != nil {
		return nil, err
	}
	if resp.User == nil {
		return nil, fmt.Errorf("GET %s: %w", userPath(id), errEmptyResponse)
	}
	return resp.User, nil
}

// CreateUser and UpdateUser return the user echoed by the API, or nil when
// the response does not include one.
func (c *HTTPClient) CreateUser(ctx context.Context, in models.UserInput) (*models.User, error) {
	var resp userResponse
	if err := c.sendJSON(ctx, http.MethodPost, "/users", in, &resp); err != nil {
		return nil, err
	}
	return resp.User, nil
}

func (c *HTTPClient) UpdateUser(ctx context.Context, id int64, in models.UserInput) (*models.User, error) {
	var resp userResponse
	if err := c.sendJSON(ctx, http.MethodPut, userPath(id), in, &resp); err != nil {
		return nil, err
	}
	return resp.User, nil
}

func (c *HTTPClient) PostsReport(ctx context.Context) ([]models.ReportRow, error) {
	var resp reportResponse
	if err := c.sendJSON(ctx, http.MethodGet, "/posts-report", nil, &resp); err != nil {
		return nil, err
	}
	if resp.Posts == nil {
		return []models.ReportRow{}, nil
	}
	return resp.Posts, nil
}

func postPath(id int64) string    { return "/posts/" + strconv.FormatInt(id, 10) }
func commentPath(id int64) string { return "/comments/" + strconv.FormatInt(id, 10) }
func userPath(id int64) string    { return "/users/" + strconv.FormatInt(id, 10) }
