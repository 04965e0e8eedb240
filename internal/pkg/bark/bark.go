package bark

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"
)

// Config holds Bark push settings. An empty Key disables pushes.
type Config struct {
	Key       string
	ServerURL string
	Title     string
}

// Service sends iOS push notifications via the Bark API.
type Service struct {
	cfg        Config
	httpClient *http.Client

	mu         sync.Mutex
	lastPushAt map[string]time.Time
	throttleD  time.Duration
	now        func() time.Time
}

// New creates a new Bark service.
func New(cfg Config) *Service {
	if strings.TrimSpace(cfg.ServerURL) == "" {
		cfg.ServerURL = "https://day.app"
	}
	return &Service{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: 10 * time.Second},
		lastPushAt: make(map[string]time.Time),
		throttleD:  10 * time.Minute,
		now:        time.Now,
	}
}

// Enabled reports whether a device key is configured.
func (s *Service) Enabled() bool {
	return s != nil && strings.TrimSpace(s.cfg.Key) != ""
}

type pushPayload struct {
	DeviceKey string `json:"device_key"`
	Title     string `json:"title"`
	Body      string `json:"body"`
	Group     string `json:"group,omitempty"`
}

// Push sends a Bark notification immediately (no throttle).
func (s *Service) Push(ctx context.Context, title, body string) error {
	if !s.Enabled() {
		return fmt.Errorf("bark key not configured")
	}

	payload := pushPayload{
		DeviceKey: s.cfg.Key,
		Title:     fmt.Sprintf("[%s] %s", s.cfg.Title, title),
		Body:      body,
		Group:     s.cfg.Title,
	}
	b, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	endpoint := strings.TrimRight(s.cfg.ServerURL, "/") + "/push"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(b))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode >= http.StatusBadRequest {
		return fmt.Errorf("bark push failed: status %d", resp.StatusCode)
	}
	return nil
}

// ThrottlePush sends at most one notification per key every throttle window.
// It reports whether a push was attempted.
func (s *Service) ThrottlePush(ctx context.Context, key, title, body string) (bool, error) {
	if !s.Enabled() {
		return false, nil
	}

	s.mu.Lock()
	last, ok := s.lastPushAt[key]
	if ok && s.now().Sub(last) < s.throttleD {
		s.mu.Unlock()
		return false, nil
	}
	s.lastPushAt[key] = s.now()
	s.mu.Unlock()

	return true, s.Push(ctx, title, body)
}
