// Package models contains data types for the fbconnect client.
package models

import (
	"fmt"
	"strings"
)

// Opaque credential and identity strings. They are never interpreted by this
// layer, only carried between the caller and the external SDK.
type (
	// AccessToken is a user access token issued by the platform.
	AccessToken string

	// UserID is the platform-scoped user identifier.
	UserID string

	// UserName is the user's display name.
	UserName string

	// UserEmail is the user's primary email address.
	UserEmail string

	// Scope is a single login permission string, e.g. "email" or
	// "public_profile".
	Scope string
)

// Status represents the session state reported by the external SDK.
type Status int

const (
	// StatusUnknown means the user's relation to the app could not be
	// determined (not logged in to the platform, or status unrecognized).
	StatusUnknown Status = iota

	// StatusConnected means the user is logged in and has authorized the app.
	StatusConnected

	// StatusNotAuthorized means the user is logged in to the platform but has
	// not authorized the app.
	StatusNotAuthorized
)

// String returns the wire form of the status.
func (s Status) String() string {
	switch s {
	case StatusConnected:
		return "connected"
	case StatusNotAuthorized:
		return "not_authorized"
	}
	return "unknown"
}

// ParseStatus maps a raw status string to a Status. Unrecognized strings map
// to StatusUnknown rather than failing; the platform is free to introduce new
// status values and callers must keep working.
func ParseStatus(raw string) Status {
	switch raw {
	case "connected":
		return StatusConnected
	case "not_authorized":
		return StatusNotAuthorized
	}
	return StatusUnknown
}

// AuthResponse holds a connected session's credentials.
type AuthResponse struct {
	AccessToken   AccessToken
	ExpiresIn     int // seconds until the token expires
	SignedRequest string
	UserID        UserID
}

// StatusInfo is a full session snapshot. AuthResponse is set only for a
// connected session; it stays nil for StatusNotAuthorized and StatusUnknown,
// and may be nil even when Status is StatusConnected if the external SDK
// omitted it.
type StatusInfo struct {
	Status       Status
	AuthResponse *AuthResponse
}

// Field is a requestable user profile field of the graph API.
type Field int

// Fields in their canonical order. The order is used for deterministic
// request serialization and for the profile completeness check.
const (
	FieldID Field = iota
	FieldName
	FieldEmail
	FieldGender
	FieldBirthday
)

// AllFields lists every known field in canonical order.
var AllFields = []Field{FieldID, FieldName, FieldEmail, FieldGender, FieldBirthday}

// String returns the lowercase wire name of the field.
func (f Field) String() string {
	switch f {
	case FieldID:
		return "id"
	case FieldName:
		return "name"
	case FieldEmail:
		return "email"
	case FieldGender:
		return "gender"
	case FieldBirthday:
		return "birthday"
	}
	return fmt.Sprintf("field(%d)", int(f))
}

// ParseField maps a lowercase wire name back to a Field. It is the inverse of
// String on the closed set of known fields.
func ParseField(raw string) (Field, error) {
	switch raw {
	case "id":
		return FieldID, nil
	case "name":
		return FieldName, nil
	case "email":
		return FieldEmail, nil
	case "gender":
		return FieldGender, nil
	case "birthday":
		return FieldBirthday, nil
	}
	return 0, fmt.Errorf("unknown field %q", raw)
}

// UserInfo is a minimally-validated user profile.
type UserInfo struct {
	ID    UserID
	Name  UserName
	Email UserEmail
}

// UserInfoFromFields builds a UserInfo from a decoded field map. All three of
// id, name and email must be present; the error names the first missing field
// checked in canonical order.
func UserInfoFromFields(fields map[Field]string) (UserInfo, error) {
	for _, f := range []Field{FieldID, FieldName, FieldEmail} {
		if _, ok := fields[f]; !ok {
			return UserInfo{}, fmt.Errorf("user profile is missing field %q", f)
		}
	}
	return UserInfo{
		ID:    UserID(fields[FieldID]),
		Name:  UserName(fields[FieldName]),
		Email: UserEmail(fields[FieldEmail]),
	}, nil
}

// LoginOptions are the parameters of a login call. An empty scope list is
// valid and requests no permissions.
type LoginOptions struct {
	Scopes []Scope
}

// APIMethod is the graph API verb of a generic API call.
type APIMethod int

const (
	MethodGet APIMethod = iota
	MethodPost
	MethodDelete
)

// String returns the lowercase wire form of the method.
func (m APIMethod) String() string {
	switch m {
	case MethodPost:
		return "post"
	case MethodDelete:
		return "delete"
	}
	return "get"
}

// ParseAPIMethod maps a lowercase wire form back to an APIMethod.
func ParseAPIMethod(raw string) (APIMethod, error) {
	switch raw {
	case "get":
		return MethodGet, nil
	case "post":
		return MethodPost, nil
	case "delete":
		return MethodDelete, nil
	}
	return 0, fmt.Errorf("unknown api method %q", raw)
}

// Config holds the external SDK initialization parameters.
type Config struct {
	AppID   string // application identifier, required
	Version string // graph API version tag, e.g. "v19.0", required

	Status               bool   // track login status on init
	Cookie               bool   // enable cookie-based session persistence
	XFBML                bool   // parse social plugins on the host page
	AutoLogAppEvents     bool   // automatic app event logging
	FrictionlessRequests bool   // frictionless app requests
	Locale               string // optional locale override, e.g. "en_US"
	Debug                bool   // load the debug build of the external SDK
}

// Validate checks the config invariants: a non-empty app identifier and a
// recognizable version tag of the form vN or vN.N.
func (c Config) Validate() error {
	if c.AppID == "" {
		return fmt.Errorf("config: appId: %w", ErrEmptyValue)
	}
	if !validVersionTag(c.Version) {
		return fmt.Errorf("config: version %q: %w", c.Version, ErrBadVersionTag)
	}
	return nil
}

func validVersionTag(v string) bool {
	if len(v) < 2 || v[0] != 'v' {
		return false
	}
	major, minor, dot := v[1:], "", false
	if i := strings.IndexByte(major, '.'); i >= 0 {
		major, minor, dot = major[:i], major[i+1:], true
	}
	if !allDigits(major) {
		return false
	}
	if dot && !allDigits(minor) {
		return false
	}
	return true
}

func allDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
