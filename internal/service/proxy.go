package service

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	apperrors "erp-portal-backend/internal/errors"
	"erp-portal-backend/internal/logger"
)

// ProxyService forwards caller requests to a tenant-resolved ERP base URL,
// normalizing transport and format quirks on the way back. It imposes no
// retry or breaker policy: upstream answers are relayed as they arrived.
type ProxyService struct {
	httpClient *http.Client
}

// NewProxyService creates a new proxy service
func NewProxyService(timeout time.Duration) *ProxyService {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &ProxyService{
		httpClient: &http.Client{Timeout: timeout},
	}
}

// ForwardRequest describes one outbound call through the gateway
type ForwardRequest struct {
	Endpoint    string // target host[:port], scheme optional
	Path        string // URL-bearing path on the target host
	Token       string // optional bearer token
	Method      string
	Body        io.Reader
	ContentType string
}

// ForwardResult carries the upstream status and a body that is always
// parseable JSON.
type ForwardResult struct {
	Status int
	Body   json.RawMessage
}

// OK reports whether the upstream answered 2xx
func (r *ForwardResult) OK() bool {
	return r.Status >= 200 && r.Status < 300
}

// BuildTargetURL assembles the outbound URL. A superfluous scheme prefix on
// the endpoint is stripped; when the caller names no scheme the convention
// is plain http.
func BuildTargetURL(endpoint, path string) (string, error) {
	endpoint = strings.TrimSpace(endpoint)
	if endpoint == "" {
		return "", apperrors.NewValidationError("endpoint", "is required")
	}
	if path == "" {
		return "", apperrors.NewValidationError("path", "is required")
	}

	endpoint = strings.TrimPrefix(endpoint, "http://")
	endpoint = strings.TrimPrefix(endpoint, "https://")
	endpoint = strings.TrimSuffix(endpoint, "/")

	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}

	return "http://" + endpoint + path, nil
}

// Forward issues the outbound call and returns the upstream status with a
// normalized body. A non-2xx upstream answer is not an error here: the
// status travels back verbatim so callers can tell "upstream rejected this"
// from "gateway is broken".
func (s *ProxyService) Forward(ctx context.Context, fwd *ForwardRequest) (*ForwardResult, error) {
	log := logger.WithContext(ctx).WithFields(map[string]interface{}{
		"endpoint": fwd.Endpoint,
		"method":   fwd.Method,
	})

	targetURL, err := BuildTargetURL(fwd.Endpoint, fwd.Path)
	if err != nil {
		return nil, err
	}

	method := fwd.Method
	if method == "" {
		method = http.MethodGet
	}

	req, err := http.NewRequestWithContext(ctx, method, targetURL, fwd.Body)
	if err != nil {
		return nil, fmt.Errorf("build upstream request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if fwd.ContentType != "" {
		req.Header.Set("Content-Type", fwd.ContentType)
	}
	if fwd.Token != "" {
		req.Header.Set("Authorization", "Bearer "+fwd.Token)
	}

	log.Debugf("Forwarding request to %s", targetURL)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		log.Errorf("Upstream call failed: %v", err)
		return nil, fmt.Errorf("upstream call failed: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		log.Errorf("Reading upstream body failed: %v", err)
		return nil, fmt.Errorf("read upstream body: %w", err)
	}

	log.Infof("Upstream response: status=%d", resp.StatusCode)

	return &ForwardResult{
		Status: resp.StatusCode,
		Body:   NormalizeBody(raw),
	}, nil
}

// NormalizeBody guarantees a parseable JSON body. The upstream's declared
// content type is not trusted: only bodies that actually parse pass
// through, anything else is wrapped as a message object. Callers never
// receive an unparseable body.
func NormalizeBody(raw []byte) json.RawMessage {
	trimmed := strings.TrimSpace(string(raw))
	if trimmed == "" {
		return json.RawMessage(`{}`)
	}

	if json.Valid([]byte(trimmed)) {
		return json.RawMessage(trimmed)
	}

	wrapped, _ := json.Marshal(map[string]string{"message": trimmed})
	return json.RawMessage(wrapped)
}

// CollectionKind tags the normalized shape of an ERP payload
type CollectionKind string

const (
	CollectionList   CollectionKind = "list"
	CollectionSingle CollectionKind = "single"
	CollectionEmpty  CollectionKind = "empty"
)

// Collection is the tagged form of the ERP's duck-typed response shapes:
// a bare array, an object wrapping a "data" array, or a single object.
type Collection struct {
	Kind  CollectionKind
	Items []json.RawMessage
	Item  json.RawMessage
}

// NormalizeCollection folds the upstream shape variants into a Collection so
// callers never re-implement shape sniffing.
func NormalizeCollection(body json.RawMessage) Collection {
	trimmed := strings.TrimSpace(string(body))
	if trimmed == "" || trimmed == "null" || trimmed == "{}" || trimmed == "[]" {
		return Collection{Kind: CollectionEmpty}
	}

	if strings.HasPrefix(trimmed, "[") {
		var items []json.RawMessage
		if err := json.Unmarshal([]byte(trimmed), &items); err == nil {
			if len(items) == 0 {
				return Collection{Kind: CollectionEmpty}
			}
			return Collection{Kind: CollectionList, Items: items}
		}
	}

	var wrapper struct {
		Data []json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal([]byte(trimmed), &wrapper); err == nil && wrapper.Data != nil {
		if len(wrapper.Data) == 0 {
			return Collection{Kind: CollectionEmpty}
		}
		return Collection{Kind: CollectionList, Items: wrapper.Data}
	}

	return Collection{Kind: CollectionSingle, Item: json.RawMessage(trimmed)}
}
