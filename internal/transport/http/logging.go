package http

import (
	"bytes"
	"encoding/json"
	"fmt"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
)

const (
	requestBodyLogKey  = "http.request.body.summary"
	responseBodyLogKey = "http.response.body.summary"

	maxLoggedRunes = 160
	maxLoggedItems = 10
	maxLoggedDepth = 4
)

// Request bodies additionally hide inquiry messages; responses only passwords.
var (
	requestRedactedKeys  = []string{"password", "message"}
	responseRedactedKeys = []string{"password"}
)

func registerLogging(e *echo.Echo, logger *zap.Logger) {
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogURI:       true,
		LogStatus:    true,
		LogMethod:    true,
		LogLatency:   true,
		LogError:     true,
		LogRequestID: true,
		HandleError:  true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			visitor := "anonymous"
			if session, ok := CurrentSession(c); ok {
				visitor = session.DisplayName
			}

			fields := []zap.Field{
				zap.String("method", v.Method),
				zap.String("uri", v.URI),
				zap.Int("status", v.Status),
				zap.Duration("latency", v.Latency),
				zap.String("request_id", v.RequestID),
				zap.String("visitor", visitor),
			}
			if summary := c.Get(requestBodyLogKey); summary != nil {
				fields = append(fields, zap.Any("request_body", summary))
			}
			if summary := c.Get(responseBodyLogKey); summary != nil {
				fields = append(fields, zap.Any("response_body", summary))
			}

			switch {
			case v.Error != nil || v.Status >= 500:
				if v.Error != nil {
					fields = append(fields, zap.Error(v.Error))
				}
				logger.Error("request failed", fields...)
			case v.Status >= 400:
				logger.Warn("request rejected", fields...)
			default:
				logger.Info("request served", fields...)
			}
			return nil
		},
	}))

	// Only the JSON API is worth a body summary; pages, swagger and metrics are skipped.
	e.Use(middleware.BodyDumpWithConfig(middleware.BodyDumpConfig{
		Skipper: func(c echo.Context) bool {
			return !strings.HasPrefix(c.Request().URL.Path, "/api/")
		},
		Handler: func(c echo.Context, reqBody, resBody []byte) {
			if summary := summarizeBody(reqBody, c.Request().Header.Get(echo.HeaderContentType), requestRedactedKeys); summary != nil {
				c.Set(requestBodyLogKey, summary)
			}
			if summary := summarizeBody(resBody, c.Response().Header().Get(echo.HeaderContentType), responseRedactedKeys); summary != nil {
				c.Set(responseBodyLogKey, summary)
			}
		},
	}))
}

// summarizeBody turns an API body into a log field value. Non-JSON bodies are
// reduced to their size.
func summarizeBody(body []byte, contentType string, redact []string) any {
	if len(body) == 0 {
		return nil
	}
	if !strings.HasPrefix(strings.ToLower(strings.TrimSpace(contentType)), echo.MIMEApplicationJSON) {
		return map[string]any{"content_type": contentType, "bytes": len(body)}
	}

	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()
	var value any
	if err := dec.Decode(&value); err != nil {
		return map[string]any{"bytes": len(body), "invalid_json": true}
	}
	return summarizeValue(value, "", redact, 0)
}

func summarizeValue(value any, key string, redact []string, depth int) any {
	if slices.Contains(redact, key) {
		return "redacted"
	}
	switch v := value.(type) {
	case map[string]any:
		if depth >= maxLoggedDepth {
			return fmt.Sprintf("object(%d keys)", len(v))
		}
		out := make(map[string]any, len(v))
		for k, field := range v {
			out[k] = summarizeValue(field, strings.ToLower(k), redact, depth+1)
		}
		return out
	case []any:
		return summarizeList(v, redact, depth)
	case string:
		return clampString(v)
	default:
		return v
	}
}

// summarizeList keeps short lists. Long ones (catalog pages, review lists,
// favorites) become a count plus the destination ids they carry.
func summarizeList(items []any, redact []string, depth int) any {
	if len(items) <= maxLoggedItems && depth < maxLoggedDepth {
		out := make([]any, len(items))
		for i, item := range items {
			out[i] = summarizeValue(item, "", redact, depth+1)
		}
		return out
	}
	summary := map[string]any{"count": len(items)}
	if ids := listIDs(items); len(ids) > 0 {
		summary["ids"] = ids
	}
	return summary
}

// listIDs reads bare numbers (favorites) and the id of each object
// (destinations).
func listIDs(items []any) []json.Number {
	var ids []json.Number
	for _, item := range items {
		switch v := item.(type) {
		case json.Number:
			ids = append(ids, v)
		case map[string]any:
			if id, ok := v["id"].(json.Number); ok {
				ids = append(ids, id)
			}
		}
	}
	return ids
}

func clampString(value string) string {
	if utf8.RuneCountInString(value) <= maxLoggedRunes {
		return value
	}
	return string([]rune(value)[:maxLoggedRunes]) + "...(truncated)"
}
