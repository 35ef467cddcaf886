package mailer

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const defaultBaseURL = "https://api.resend.com"

// ErrNotConfigured indicates the Resend API key is absent. Callers treat the
// mailer as disabled rather than crashing; every send attempt fails closed.
var ErrNotConfigured = errors.New("resend api key not configured")

// Email is a single outbound transactional email.
type Email struct {
	From    string
	To      string
	Subject string
	HTML    string
	ReplyTo string
}

type httpDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Resend posts emails to the Resend HTTP API with a bearer credential.
// Each call is a single best-effort attempt; there is no retry or queueing.
type Resend struct {
	apiKey     string
	baseURL    string
	httpClient httpDoer
}

// NewResend constructs a Resend client. An empty API key yields a disabled
// client whose Send always returns ErrNotConfigured.
func NewResend(apiKey string) *Resend {
	return &Resend{
		apiKey:     strings.TrimSpace(apiKey),
		baseURL:    defaultBaseURL,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// Enabled reports whether a credential is configured.
func (m *Resend) Enabled() bool {
	return m.apiKey != ""
}

// SetHTTPClient 替换用于访问第三方服务的 HTTP 客户端，主要面向测试场景。
func (m *Resend) SetHTTPClient(client httpDoer) {
	if client == nil {
		m.httpClient = &http.Client{Timeout: 10 * time.Second}
		return
	}
	m.httpClient = client
}

// SetBaseURL 覆盖 Resend API 的基础地址，便于测试或自定义代理。
func (m *Resend) SetBaseURL(base string) {
	trimmed := strings.TrimRight(strings.TrimSpace(base), "/")
	if trimmed == "" {
		trimmed = defaultBaseURL
	}
	m.baseURL = trimmed
}

type sendRequest struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	HTML    string   `json:"html"`
	ReplyTo string   `json:"reply_to,omitempty"`
}

type sendResponse struct {
	ID string `json:"id"`
}

// Send delivers the email and returns the provider message id.
func (m *Resend) Send(email Email) (string, error) {
	if !m.Enabled() {
		return "", ErrNotConfigured
	}

	payload, err := json.Marshal(sendRequest{
		From:    email.From,
		To:      []string{email.To},
		Subject: email.Subject,
		HTML:    email.HTML,
		ReplyTo: email.ReplyTo,
	})
	if err != nil {
		return "", fmt.Errorf("encode resend request: %w", err)
	}

	req, err := http.NewRequest(http.MethodPost, m.baseURL+"/emails", bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("build resend request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+m.apiKey)

	resp, err := m.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("send email: %w", err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(io.LimitReader(resp.Body, 64*1024))
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("resend responded %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var result sendResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return "", fmt.Errorf("decode resend response: %w", err)
	}

	return result.ID, nil
}
