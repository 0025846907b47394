package decode

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/socialbridge/fbconnect-go/models"
)

func TestStatusInfo_ConnectedRoundTrip(t *testing.T) {
	info, err := StatusInfo(map[string]any{
		"status": "connected",
		"authResponse": map[string]any{
			"accessToken":   "tok-abc",
			"expiresIn":     3600,
			"signedRequest": "sig.payload",
			"userID":        "100042",
		},
	})
	require.NoError(t, err)

	assert.Equal(t, models.StatusConnected, info.Status)
	require.NotNil(t, info.AuthResponse)
	assert.Equal(t, models.AccessToken("tok-abc"), info.AuthResponse.AccessToken)
	assert.Equal(t, 3600, info.AuthResponse.ExpiresIn)
	assert.Equal(t, "sig.payload", info.AuthResponse.SignedRequest)
	assert.Equal(t, models.UserID("100042"), info.AuthResponse.UserID)
}

func TestStatusInfo_JSONShapedNumbers(t *testing.T) {
	// Payloads that crossed a JSON layer carry numbers as float64.
	info, err := StatusInfo(map[string]any{
		"status": "connected",
		"authResponse": map[string]any{
			"accessToken":   "tok",
			"expiresIn":     float64(7200),
			"signedRequest": "sig",
			"userID":        "1",
		},
	})
	require.NoError(t, err)
	assert.Equal(t, 7200, info.AuthResponse.ExpiresIn)
}

func TestStatusInfo_UnrecognizedStatusMapsToUnknown(t *testing.T) {
	for _, raw := range []string{"unknown", "something_new", "", "CONNECTED"} {
		info, err := StatusInfo(map[string]any{"status": raw})
		require.NoError(t, err, "status %q must never fail", raw)
		assert.Equal(t, models.StatusUnknown, info.Status, "status %q", raw)
		assert.Nil(t, info.AuthResponse)
	}
}

func TestStatusInfo_NotAuthorized(t *testing.T) {
	info, err := StatusInfo(map[string]any{"status": "not_authorized"})
	require.NoError(t, err)
	assert.Equal(t, models.StatusNotAuthorized, info.Status)
}

func TestStatusInfo_AuthResponseIgnoredUnlessConnected(t *testing.T) {
	// Credentials are only read for a connected session; a stray malformed
	// authResponse on any other status is passed over.
	info, err := StatusInfo(map[string]any{
		"status":       "not_authorized",
		"authResponse": map[string]any{"accessToken": 42},
	})
	require.NoError(t, err)
	assert.Equal(t, models.StatusNotAuthorized, info.Status)
	assert.Nil(t, info.AuthResponse)
}

func TestStatusInfo_ConnectedWithoutAuthResponse(t *testing.T) {
	// The external SDK may omit the credentials even for a connected
	// session; that decodes to a nil AuthResponse, not an error.
	info, err := StatusInfo(map[string]any{"status": "connected"})
	require.NoError(t, err)
	assert.Equal(t, models.StatusConnected, info.Status)
	assert.Nil(t, info.AuthResponse)

	info, err = StatusInfo(map[string]any{"status": "connected", "authResponse": nil})
	require.NoError(t, err)
	assert.Nil(t, info.AuthResponse)
}

func TestStatusInfo_MissingStatusFails(t *testing.T) {
	_, err := StatusInfo(map[string]any{})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDecode)
	assert.Contains(t, err.Error(), "status")
}

func TestStatusInfo_MissingAuthFieldsEnumerated(t *testing.T) {
	tests := []struct {
		name    string
		auth    map[string]any
		missing []string
		present []string
	}{
		{
			name:    "missing accessToken",
			auth:    map[string]any{"expiresIn": 1, "signedRequest": "s", "userID": "u"},
			missing: []string{"authResponse.accessToken"},
			present: []string{"expiresIn", "signedRequest", "userID"},
		},
		{
			name:    "missing expiresIn",
			auth:    map[string]any{"accessToken": "t", "signedRequest": "s", "userID": "u"},
			missing: []string{"authResponse.expiresIn"},
			present: []string{"accessToken", "signedRequest", "userID"},
		},
		{
			name:    "missing signedRequest and userID",
			auth:    map[string]any{"accessToken": "t", "expiresIn": 1},
			missing: []string{"authResponse.signedRequest", "authResponse.userID"},
			present: []string{"accessToken", "expiresIn"},
		},
		{
			name:    "all four missing",
			auth:    map[string]any{},
			missing: []string{"authResponse.accessToken", "authResponse.expiresIn", "authResponse.signedRequest", "authResponse.userID"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := StatusInfo(map[string]any{"status": "connected", "authResponse": tt.auth})
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrDecode)

			msg := err.Error()
			for _, loc := range tt.missing {
				assert.Contains(t, msg, loc)
			}
			// No false positives for present, correctly-typed fields.
			var dErr *Error
			require.ErrorAs(t, err, &dErr)
			assert.Len(t, dErr.Fields, len(tt.missing))
		})
	}
}

func TestStatusInfo_MistypedAuthFields(t *testing.T) {
	_, err := StatusInfo(map[string]any{
		"status": "connected",
		"authResponse": map[string]any{
			"accessToken":   42,
			"expiresIn":     "soon",
			"signedRequest": "ok",
			"userID":        "u",
		},
	})
	require.Error(t, err)

	var dErr *Error
	require.ErrorAs(t, err, &dErr)
	assert.Len(t, dErr.Fields, 2)
	assert.Contains(t, err.Error(), "authResponse.accessToken")
	assert.Contains(t, err.Error(), "authResponse.expiresIn")
	assert.Contains(t, err.Error(), "; ")
}

func TestStatusInfo_NegativeExpiresIn(t *testing.T) {
	_, err := StatusInfo(map[string]any{
		"status": "connected",
		"authResponse": map[string]any{
			"accessToken":   "t",
			"expiresIn":     -5,
			"signedRequest": "s",
			"userID":        "u",
		},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "authResponse.expiresIn")
}

func TestStatusInfo_NonObjectPayload(t *testing.T) {
	for _, payload := range []any{nil, "connected", 42, []any{"x"}} {
		_, err := StatusInfo(payload)
		assert.ErrorIs(t, err, ErrDecode, "payload %v", payload)
	}
}

func TestStringMap_Success(t *testing.T) {
	got, err := StringMap(map[string]any{"id": "1", "name": "Ann"})
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"id": "1", "name": "Ann"}, got)
}

func TestStringMap_CollectsEveryNonString(t *testing.T) {
	_, err := StringMap(map[string]any{
		"id":    "1",
		"likes": 12,
		"meta":  map[string]any{"x": "y"},
	})
	require.Error(t, err)

	var dErr *Error
	require.ErrorAs(t, err, &dErr)
	assert.Len(t, dErr.Fields, 2)
	assert.Contains(t, err.Error(), "likes")
	assert.Contains(t, err.Error(), "meta")
	assert.NotContains(t, err.Error(), "id:")
}

func TestFieldMap_KnownAndUnknownKeys(t *testing.T) {
	got, err := FieldMap(map[string]string{"id": "1", "email": "a@b.c"})
	require.NoError(t, err)
	assert.Equal(t, map[models.Field]string{
		models.FieldID:    "1",
		models.FieldEmail: "a@b.c",
	}, got)

	_, err = FieldMap(map[string]string{"id": "1", "hometown": "x"})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDecode)
	assert.Contains(t, err.Error(), "hometown")
}

func TestFieldError_Rendering(t *testing.T) {
	err := &Error{Fields: []*FieldError{
		{Location: "a", Reason: "missing required string"},
		{Location: "b", Reason: "expected a string, got int"},
	}}
	assert.Equal(t, "a: missing required string; b: expected a string, got int", err.Error())
	assert.True(t, errors.Is(err, ErrDecode))
}
