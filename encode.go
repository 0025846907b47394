package fbconnect

import (
	"strings"

	"github.com/socialbridge/fbconnect-go/models"
)

// encodeLoginOptions serializes login options into the external SDK's param
// shape. The "scope" key is always present; an empty scope list encodes as an
// empty string, not an omitted key.
func encodeLoginOptions(opts models.LoginOptions) Params {
	scopes := make([]string, len(opts.Scopes))
	for i, s := range opts.Scopes {
		scopes[i] = string(s)
	}
	return Params{"scope": strings.Join(scopes, ",")}
}

// encodeFields serializes a field selection into the comma-joined lowercase
// form of the "fields" request parameter.
func encodeFields(fields []models.Field) string {
	names := make([]string, len(fields))
	for i, f := range fields {
		names[i] = f.String()
	}
	return strings.Join(names, ",")
}

// encodeAPIParams copies the caller's params and injects the access token.
// The "access_token" key is authoritative: a caller-supplied value at that key
// is silently overwritten by the token argument.
func encodeAPIParams(token models.AccessToken, params Params) Params {
	out := make(Params, len(params)+1)
	for k, v := range params {
		out[k] = v
	}
	out["access_token"] = string(token)
	return out
}

// encodeConfig serializes the init config into the untyped shape the external
// SDK's init entry point expects.
func encodeConfig(cfg models.Config) map[string]any {
	out := map[string]any{
		"appId":                cfg.AppID,
		"version":              cfg.Version,
		"status":               cfg.Status,
		"cookie":               cfg.Cookie,
		"xfbml":                cfg.XFBML,
		"autoLogAppEvents":     cfg.AutoLogAppEvents,
		"frictionlessRequests": cfg.FrictionlessRequests,
	}
	if cfg.Locale != "" {
		out["locale"] = cfg.Locale
	}
	if cfg.Debug {
		out["debug"] = true
	}
	return out
}
