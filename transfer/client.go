package transfer

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"

	"github.com/pithecene-io/peerlink/iox"
)

// fileField is the multipart form field name the backend expects.
const fileField = "file"

// Client talks to the PeerLink backend over plain HTTP.
//
// Each call is a single request-response exchange: no retries, no chunking,
// no resumption. The client deliberately sets no timeout of its own: a
// started transfer runs until the network layer reports success or failure.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient creates a client for the backend at baseURL.
// A trailing slash on baseURL is tolerated.
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{},
	}
}

// BaseURL returns the configured backend base URL.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// uploadResponse is the JSON body of a successful upload.
type uploadResponse struct {
	FileID string `json:"fileId"`
}

// Upload submits one file as a multipart POST and returns the transfer
// identifier issued by the backend.
//
// The identifier is opaque: the client validates non-emptiness only. A 2xx
// response without an identifier is a protocol error. Status >= 500 and
// other non-2xx responses are reported as server errors carrying any body
// text; transport failures are reported as ErrUnreachable.
func (c *Client) Upload(ctx context.Context, name string, r io.Reader) (string, error) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile(fileField, name)
	if err != nil {
		return "", protocolError("upload", "cannot build multipart body", err)
	}
	if _, err := io.Copy(part, r); err != nil {
		return "", protocolError("upload", "cannot read file", err)
	}
	if err := mw.Close(); err != nil {
		return "", protocolError("upload", "cannot finish multipart body", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/upload", &buf)
	if err != nil {
		return "", protocolError("upload", "cannot build request", err)
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())

	resp, err := c.http.Do(req)
	if err != nil {
		return "", transportError("upload", err)
	}
	defer iox.DiscardClose(resp.Body)

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", transportError("upload", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", statusError("upload", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var out uploadResponse
	if err := json.Unmarshal(body, &out); err != nil {
		return "", protocolError("upload", "response is not valid JSON", err)
	}
	if out.FileID == "" {
		return "", protocolError("upload", "server returned no identifier", nil)
	}
	return out.FileID, nil
}

// Payload is a downloaded file held in memory.
type Payload struct {
	// Filename is the name suggested by the backend, or DefaultFilename.
	Filename string
	// Data is the raw file content.
	Data []byte
}

// Download retrieves the file for the given identifier.
//
// The identifier is trimmed of surrounding whitespace before it is embedded
// in the request path. The suggested filename comes from the response's
// Content-Disposition header when present.
func (c *Client) Download(ctx context.Context, id string) (*Payload, error) {
	id = strings.TrimSpace(id)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		c.baseURL+"/download/"+url.PathEscape(id), nil)
	if err != nil {
		return nil, protocolError("download", "cannot build request", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, transportError("download", err)
	}
	defer iox.DiscardClose(resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(resp.Body)
		return nil, statusError("download", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, transportError("download", err)
	}

	return &Payload{
		Filename: FilenameFromDisposition(resp.Header.Get("Content-Disposition")),
		Data:     data,
	}, nil
}

// Close releases client resources.
func (c *Client) Close() error {
	c.http.CloseIdleConnections()
	return nil
}
