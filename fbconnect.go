// Package fbconnect provides a statically-typed Go facade over a
// callback-based social-login and social-graph SDK.
//
// The external SDK itself is an opaque collaborator injected through the
// ExternalSDK interface; this layer converts its untyped callback payloads
// into a small typed domain model, and typed requests back into the plain
// param shapes the SDK expects. A malformed payload is rejected with a single
// error enumerating every field-level problem found.
//
// Basic usage:
//
//	import fbconnect "github.com/socialbridge/fbconnect-go"
//
//	client, err := fbconnect.New(ext)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	handle, err := client.Init(ctx, fbconnect.Config{AppID: "1234", Version: "v19.0"})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	info, err := client.Login(ctx, handle, fbconnect.LoginOptions{
//	    Scopes: []fbconnect.Scope{"email", "public_profile"},
//	})
package fbconnect

import (
	"context"

	"github.com/socialbridge/fbconnect-go/models"
)

// Client defines the typed facade over the external SDK's five entry points
// plus the two profile convenience compositions.
type Client interface {
	// Init bootstraps the external SDK and returns the opaque handle.
	Init(ctx context.Context, cfg models.Config) (Handle, error)

	// Session state
	LoginStatus(ctx context.Context, h Handle) (models.StatusInfo, error)
	Login(ctx context.Context, h Handle, opts models.LoginOptions) (models.StatusInfo, error)
	Logout(ctx context.Context, h Handle) (models.StatusInfo, error)

	// Graph API
	API(ctx context.Context, h Handle, token models.AccessToken, method models.APIMethod, path string, params Params) (map[string]string, error)
	UserFields(ctx context.Context, h Handle, token models.AccessToken, fields []models.Field) (map[models.Field]string, error)
	UserProfile(ctx context.Context, h Handle, token models.AccessToken) (models.UserInfo, error)
}

// Ensure Adapter implements the Client interface
var _ Client = (*Adapter)(nil)

// Re-export model types for convenient access
type (
	// Config holds the external SDK initialization parameters.
	Config = models.Config
	// Status represents the session state.
	Status = models.Status
	// StatusInfo is a full session snapshot.
	StatusInfo = models.StatusInfo
	// AuthResponse holds a connected session's credentials.
	AuthResponse = models.AuthResponse
	// UserInfo is a minimally-validated user profile.
	UserInfo = models.UserInfo
	// LoginOptions are the parameters of a login call.
	LoginOptions = models.LoginOptions
	// Field is a requestable user profile field.
	Field = models.Field
	// APIMethod is the graph API verb of a generic API call.
	APIMethod = models.APIMethod
	// AccessToken is a user access token issued by the platform.
	AccessToken = models.AccessToken
	// UserID is the platform-scoped user identifier.
	UserID = models.UserID
	// UserName is the user's display name.
	UserName = models.UserName
	// UserEmail is the user's primary email address.
	UserEmail = models.UserEmail
	// Scope is a single login permission string.
	Scope = models.Scope
)

// Re-export enum values for convenient access
const (
	StatusUnknown       = models.StatusUnknown
	StatusConnected     = models.StatusConnected
	StatusNotAuthorized = models.StatusNotAuthorized

	FieldID       = models.FieldID
	FieldName     = models.FieldName
	FieldEmail    = models.FieldEmail
	FieldGender   = models.FieldGender
	FieldBirthday = models.FieldBirthday

	MethodGet    = models.MethodGet
	MethodPost   = models.MethodPost
	MethodDelete = models.MethodDelete
)
