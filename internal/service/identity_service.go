package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/tidwall/gjson"
	"github.com/workhive/workhive-backend/internal/config"
)

// ErrAuthenticationFailed covers every identity-token verification
// failure: malformed tokens, provider rejections and provider outages.
var ErrAuthenticationFailed = errors.New("invalid identity token")

const defaultLookupURL = "https://identitytoolkit.googleapis.com/v1/accounts:lookup"

// Identity is the verified subject returned by the provider.
type Identity struct {
	UID   string
	Email string
	Name  string
}

// IdentityService verifies bearer tokens against the external identity
// provider's REST lookup endpoint. The provider is an opaque
// collaborator; no token parsing happens locally.
type IdentityService struct {
	client    *resty.Client
	lookupURL string
	apiKey    string
}

var (
	identityService *IdentityService
	identityOnce    sync.Once
)

// InitIdentity bootstraps the provider client once per process. Call at
// startup before serving requests; repeated calls are no-ops.
func InitIdentity() *IdentityService {
	identityOnce.Do(func() {
		cfg := config.LoadFirebaseConfig()
		identityService = NewIdentityService(cfg.LookupURL, cfg.WebAPIKey)
	})
	return identityService
}

func NewIdentityService(lookupURL, apiKey string) *IdentityService {
	if lookupURL == "" {
		lookupURL = defaultLookupURL
	}
	return &IdentityService{
		client:    resty.New().SetTimeout(10 * time.Second),
		lookupURL: lookupURL,
		apiKey:    apiKey,
	}
}

// VerifyIDToken asks the provider to resolve the token into a subject.
func (s *IdentityService) VerifyIDToken(ctx context.Context, token string) (*Identity, error) {
	if token == "" {
		return nil, ErrAuthenticationFailed
	}

	resp, err := s.client.R().
		SetContext(ctx).
		SetQueryParam("key", s.apiKey).
		SetHeader("Content-Type", "application/json").
		SetBody(map[string]string{"idToken": token}).
		Post(s.lookupURL)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrAuthenticationFailed, err)
	}
	if resp.StatusCode() != 200 {
		return nil, fmt.Errorf("%w: provider returned %d", ErrAuthenticationFailed, resp.StatusCode())
	}

	body := resp.String()
	uid := gjson.Get(body, "users.0.localId").String()
	if uid == "" {
		return nil, fmt.Errorf("%w: no matching account", ErrAuthenticationFailed)
	}

	return &Identity{
		UID:   uid,
		Email: gjson.Get(body, "users.0.email").String(),
		Name:  gjson.Get(body, "users.0.displayName").String(),
	}, nil
}
