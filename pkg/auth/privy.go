package auth

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"quest_admin/pkg/logger"

	"github.com/go-resty/resty/v2"
	"github.com/goccy/go-json"
	"github.com/jellydator/ttlcache/v3"
	"go.uber.org/zap"
)

const (
	DefaultPrivyBaseURL = "https://auth.privy.io"
	privyMePath         = "/api/v1/users/me"
	privyAppIDHeader    = "privy-app-id"
)

var (
	ErrInvalidToken = errors.New("invalid access token")
	ErrUnavailable  = errors.New("identity provider unavailable")
)

type PrivyConfig struct {
	BaseURL  string        `yaml:"baseURL"`
	AppID    string        `yaml:"appID"`
	Timeout  time.Duration `yaml:"timeout"`
	CacheTTL time.Duration `yaml:"cacheTTL"`
}

// PrivyClient resolves a Privy access token to the subject it was issued for.
type PrivyClient struct {
	client *resty.Client
	cache  *ttlcache.Cache[string, string]
}

type privyUser struct {
	ID   string `json:"id"`
	User *struct {
		ID string `json:"id"`
	} `json:"user"`
}

func (u *privyUser) subject() string {
	if u.ID != "" {
		return u.ID
	}
	if u.User != nil {
		return u.User.ID
	}
	return ""
}

func NewPrivyClient(cfg PrivyConfig) *PrivyClient {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = DefaultPrivyBaseURL
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetHeader("Accept", "application/json").
		SetJSONMarshaler(json.Marshal).
		SetJSONUnmarshaler(json.Unmarshal)
	if cfg.AppID != "" {
		client.SetHeader(privyAppIDHeader, cfg.AppID)
	}

	p := &PrivyClient{client: client}
	if cfg.CacheTTL > 0 {
		p.cache = ttlcache.New[string, string](
			ttlcache.WithTTL[string, string](cfg.CacheTTL),
			ttlcache.WithDisableTouchOnHit[string, string](),
		)
		go p.cache.Start()
	}

	return p
}

// VerifyToken returns the subject identifier behind token. Any non-2xx answer
// or a payload without an identifier yields ErrInvalidToken; only a request
// that fails to complete yields ErrUnavailable.
func (p *PrivyClient) VerifyToken(ctx context.Context, token string) (string, error) {
	if token == "" {
		return "", ErrInvalidToken
	}

	key := cacheKey(token)
	if p.cache != nil {
		if item := p.cache.Get(key); item != nil {
			return item.Value(), nil
		}
	}

	var user privyUser
	resp, err := p.client.R().
		SetContext(ctx).
		SetAuthToken(token).
		SetResult(&user).
		Get(privyMePath)
	if err != nil {
		logger.Logger().Error("privy request failed", zap.Error(err))
		return "", fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	if !resp.IsSuccess() {
		logger.Logger().Info("privy rejected access token",
			zap.Int("status", resp.StatusCode()))
		return "", fmt.Errorf("%w: status %d", ErrInvalidToken, resp.StatusCode())
	}

	subject := user.subject()
	if subject == "" {
		return "", fmt.Errorf("%w: no user id in response", ErrInvalidToken)
	}

	if p.cache != nil {
		p.cache.Set(key, subject, ttlcache.DefaultTTL)
	}

	return subject, nil
}

func (p *PrivyClient) Close() {
	if p.cache != nil {
		p.cache.Stop()
	}
}

func cacheKey(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}
