// Package fbgraph implements the fbconnect.ExternalSDK boundary on top of the
// Facebook Graph HTTP API, for server-side use where no browser SDK exists.
//
// The browser SDK's popup-driven entry points have no server-side equivalent:
// Login and Logout deliver an unknown-status payload. LoginStatus inspects a
// caller-configured user token through the Graph debug endpoint and shapes the
// answer exactly like the browser SDK's status payload. API calls are plain
// Graph requests.
package fbgraph

import (
	"time"

	fb "github.com/huandu/facebook/v2"

	fbconnect "github.com/socialbridge/fbconnect-go"
)

// SDK is a server-side ExternalSDK implementation. Callbacks are invoked
// synchronously on the calling goroutine.
type SDK struct {
	appSecret string
	userToken string
	now       func() time.Time
}

// Ensure SDK implements the boundary interface
var _ fbconnect.ExternalSDK = (*SDK)(nil)

// Option configures the SDK.
type Option func(*SDK)

// WithUserToken sets the user access token that backs LoginStatus. Without
// one, LoginStatus always reports an unknown session.
func WithUserToken(token string) Option {
	return func(s *SDK) {
		s.userToken = token
	}
}

// New creates a Graph-backed SDK. The app secret pairs with the app ID that
// arrives in the init config.
func New(appSecret string, opts ...Option) *SDK {
	s := &SDK{
		appSecret: appSecret,
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// handle is the host-specific value wrapped by fbconnect.Handle.
type handle struct {
	app     *fb.App
	version string
}

// Init builds the Graph app client from the encoded config and delivers it as
// the handle.
func (s *SDK) Init(config map[string]any, onReady func(raw any)) {
	appID, _ := config["appId"].(string)
	version, _ := config["version"].(string)
	onReady(&handle{
		app:     fb.New(appID, s.appSecret),
		version: version,
	})
}

// Login has no server-side popup flow; it delivers an unknown-status payload.
func (s *SDK) Login(opts fbconnect.Params, h fbconnect.Handle, onResult func(raw any)) {
	onResult(map[string]any{"status": "unknown"})
}

// Logout cannot end a browser session from the server; it delivers an
// unknown-status payload.
func (s *SDK) Logout(h fbconnect.Handle, onResult func(raw any)) {
	onResult(map[string]any{"status": "unknown"})
}

// LoginStatus inspects the configured user token via the Graph debug endpoint
// and delivers a status payload shaped like the browser SDK's.
func (s *SDK) LoginStatus(h fbconnect.Handle, onResult func(raw any)) {
	hdl, ok := h.Raw().(*handle)
	if !ok || s.userToken == "" {
		onResult(map[string]any{"status": "unknown"})
		return
	}

	session := hdl.app.Session(s.userToken)
	session.Version = hdl.version

	data, err := session.Inspect()
	if err != nil {
		onResult(map[string]any{"status": "unknown"})
		return
	}

	valid, _ := data["is_valid"].(bool)
	if !valid {
		onResult(map[string]any{"status": "not_authorized"})
		return
	}

	userID, _ := data["user_id"].(string)
	onResult(map[string]any{
		"status": "connected",
		"authResponse": map[string]any{
			"accessToken":   s.userToken,
			"expiresIn":     s.expiresIn(data["expires_at"]),
			"signedRequest": "",
			"userID":        userID,
		},
	})
}

// API performs a generic Graph call with the access token injected by the
// facade. Graph errors are delivered as error-shaped payloads, mirroring the
// browser SDK's behavior.
func (s *SDK) API(h fbconnect.Handle, path, method string, params fbconnect.Params, onResult func(raw any)) {
	hdl, ok := h.Raw().(*handle)
	if !ok {
		onResult(errorPayload("api call without an initialized handle"))
		return
	}

	session := hdl.app.Session(params["access_token"])
	session.Version = hdl.version

	fbParams := fb.Params{}
	for k, v := range params {
		if k == "access_token" {
			continue
		}
		fbParams[k] = v
	}

	var (
		result fb.Result
		err    error
	)
	switch method {
	case "post":
		result, err = session.Post(path, fbParams)
	case "delete":
		result, err = session.Delete(path, fbParams)
	default:
		result, err = session.Get(path, fbParams)
	}
	if err != nil {
		onResult(errorPayload(err.Error()))
		return
	}
	onResult(map[string]any(result))
}

// expiresIn converts the debug endpoint's unix expiry into the browser SDK's
// seconds-remaining form. A zero or past expiry reports zero, never negative.
func (s *SDK) expiresIn(raw any) int {
	var expiresAt int64
	switch n := raw.(type) {
	case float64:
		expiresAt = int64(n)
	case int64:
		expiresAt = n
	case int:
		expiresAt = int64(n)
	}
	if expiresAt == 0 {
		return 0
	}
	remaining := expiresAt - s.now().Unix()
	if remaining < 0 {
		return 0
	}
	return int(remaining)
}

func errorPayload(message string) map[string]any {
	return map[string]any{
		"error": map[string]any{"message": message},
	}
}
