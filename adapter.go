package fbconnect

import (
	"context"
	"fmt"

	"github.com/socialbridge/fbconnect-go/decode"
	"github.com/socialbridge/fbconnect-go/models"
)

// Adapter implements the Client interface over an injected ExternalSDK.
// It holds no session state of its own: the session lives inside the external
// SDK, and the opaque Handle is safely shared across any number of
// concurrently outstanding operations.
type Adapter struct {
	ext  ExternalSDK
	opts *options
}

// New creates an Adapter around the given external SDK binding.
// Returns an error if ext is nil.
func New(ext ExternalSDK, opts ...Option) (*Adapter, error) {
	if ext == nil {
		return nil, &ValidationError{Field: "ext", Message: "external SDK binding cannot be nil"}
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	return &Adapter{ext: ext, opts: o}, nil
}

// Init bootstraps the external SDK and returns the opaque handle required by
// every subsequent operation.
func (a *Adapter) Init(ctx context.Context, cfg models.Config) (Handle, error) {
	if err := cfg.Validate(); err != nil {
		return Handle{}, err
	}

	raw, err := a.await(ctx, "init", func(deliver func(any)) {
		a.ext.Init(encodeConfig(cfg), deliver)
	})
	if err != nil {
		return Handle{}, err
	}
	return Handle{raw: raw}, nil
}

// LoginStatus queries the current session state.
func (a *Adapter) LoginStatus(ctx context.Context, h Handle) (models.StatusInfo, error) {
	raw, err := a.await(ctx, "login status", func(deliver func(any)) {
		a.ext.LoginStatus(h, deliver)
	})
	if err != nil {
		return models.StatusInfo{}, err
	}
	return decodeStatusInfo("login status", raw)
}

// Login opens the platform's login flow with the requested scopes and returns
// the resulting session snapshot.
func (a *Adapter) Login(ctx context.Context, h Handle, opts models.LoginOptions) (models.StatusInfo, error) {
	raw, err := a.await(ctx, "login", func(deliver func(any)) {
		a.ext.Login(encodeLoginOptions(opts), h, deliver)
	})
	if err != nil {
		return models.StatusInfo{}, err
	}
	return decodeStatusInfo("login", raw)
}

// Logout ends the platform session and returns the resulting snapshot.
func (a *Adapter) Logout(ctx context.Context, h Handle) (models.StatusInfo, error) {
	raw, err := a.await(ctx, "logout", func(deliver func(any)) {
		a.ext.Logout(h, deliver)
	})
	if err != nil {
		return models.StatusInfo{}, err
	}
	return decodeStatusInfo("logout", raw)
}

// API performs a generic graph API call and decodes the response as a string
// map. The access token is injected into the outgoing params, overwriting any
// caller-supplied "access_token" value.
func (a *Adapter) API(ctx context.Context, h Handle, token models.AccessToken, method models.APIMethod, path string, params Params) (map[string]string, error) {
	label := fmt.Sprintf("api %s %s", method, path)
	raw, err := a.await(ctx, label, func(deliver func(any)) {
		a.ext.API(h, path, method.String(), encodeAPIParams(token, params), deliver)
	})
	if err != nil {
		return nil, err
	}

	result, err := decode.StringMap(raw)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", label, err)
	}
	return result, nil
}

// UserFields fetches the requested profile fields of the current user via the
// graph API's /me endpoint. Every response key is re-parsed into a typed
// field; an unknown key is a decode failure.
func (a *Adapter) UserFields(ctx context.Context, h Handle, token models.AccessToken, fields []models.Field) (map[models.Field]string, error) {
	raw, err := a.API(ctx, h, token, models.MethodGet, "/me", Params{"fields": encodeFields(fields)})
	if err != nil {
		return nil, err
	}

	result, err := decode.FieldMap(raw)
	if err != nil {
		return nil, fmt.Errorf("user fields: %w", err)
	}
	return result, nil
}

// UserProfile fetches the id, name and email fields of the current user and
// requires all three to be present.
func (a *Adapter) UserProfile(ctx context.Context, h Handle, token models.AccessToken) (models.UserInfo, error) {
	fields, err := a.UserFields(ctx, h, token, []models.Field{models.FieldID, models.FieldName, models.FieldEmail})
	if err != nil {
		return models.UserInfo{}, err
	}
	return models.UserInfoFromFields(fields)
}

// decodeStatusInfo decodes a session snapshot payload, prefixing decode
// failures with the operation label.
func decodeStatusInfo(label string, raw any) (models.StatusInfo, error) {
	info, err := decode.StatusInfo(raw)
	if err != nil {
		return models.StatusInfo{}, fmt.Errorf("%s: %w", label, err)
	}
	return info, nil
}
