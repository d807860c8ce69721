package shapesapi

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"shapes/internal/domain"
)

const (
	maxBodyBytes      = 1 << 20
	maxDebugBodyBytes = 4 << 10
)

// Interpret maps the result of an HTTP round trip onto a payload or one of
// *domain.TransportError, *domain.HTTPError or *domain.ApplicationError.
func (c *Client) Interpret(resp *http.Response, err error) (domain.Payload, error) {
	if err != nil {
		return domain.Payload{}, &domain.TransportError{Message: err.Error(), Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode/100 != 2 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxDebugBodyBytes))
		c.Log.Debug("error response",
			zap.String("status", resp.Status),
			zap.ByteString("body", body),
		)
		return domain.Payload{}, &domain.HTTPError{
			Status:     resp.StatusCode,
			StatusText: statusText(resp),
		}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return domain.Payload{}, &domain.TransportError{Message: fmt.Sprintf("read body: %v", err), Err: err}
	}
	out, err := decodePayload(body)
	if err != nil {
		return domain.Payload{}, &domain.TransportError{Message: fmt.Sprintf("decode body: %v", err), Err: err}
	}
	if out.Status >= 400 {
		return out, &domain.ApplicationError{EmbeddedStatus: int(out.Status)}
	}
	return out, nil
}

// decodePayload requires a JSON object. text and shape are taken only when
// they are strings; the flows decide whether a missing field matters.
func decodePayload(body []byte) (domain.Payload, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(body, &raw); err != nil {
		return domain.Payload{}, err
	}
	out := domain.Payload{
		Text:  stringField(raw, "text"),
		Shape: stringField(raw, "shape"),
		Raw:   raw,
	}
	if v, ok := raw["status"]; ok {
		_ = json.Unmarshal(v, &out.Status)
	}
	return out, nil
}

func stringField(raw map[string]json.RawMessage, name string) string {
	var s string
	if v, ok := raw[name]; ok {
		_ = json.Unmarshal(v, &s)
	}
	return s
}

// statusText strips the code from resp.Status ("503 Service Unavailable").
func statusText(resp *http.Response) string {
	text := strings.TrimSpace(strings.TrimPrefix(resp.Status, strconv.Itoa(resp.StatusCode)))
	if text == "" {
		text = http.StatusText(resp.StatusCode)
	}
	return text
}
