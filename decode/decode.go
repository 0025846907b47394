// Package decode narrows untyped values received from the external SDK's
// callbacks into the typed domain model.
//
// Payloads cross the SDK boundary as plain `any` values (string-keyed maps of
// unknown/variant types). Every decode walks the whole payload and collects
// every field-level problem it finds, so a malformed response is reported with
// full diagnostics in a single error rather than one problem at a time.
package decode

import (
	"fmt"
	"math"
	"sort"

	"github.com/socialbridge/fbconnect-go/models"
)

// StatusInfo decodes a login-status payload.
//
// The "status" key is required and must be a string; unrecognized status
// values map to models.StatusUnknown and are never an error. The
// "authResponse" object is decoded only for a connected session, and only
// when present and non-nil; when it is decoded, all four of its credential
// fields are required.
func StatusInfo(v any) (models.StatusInfo, error) {
	obj, err := object(v)
	if err != nil {
		return models.StatusInfo{}, err
	}

	acc := newAccumulator()
	status := models.ParseStatus(requireString(acc, obj, "status"))

	var auth *models.AuthResponse
	if status == models.StatusConnected {
		if raw, ok := obj["authResponse"]; ok && raw != nil {
			auth = authResponse(acc, raw)
		}
	}

	if err := acc.err(); err != nil {
		return models.StatusInfo{}, err
	}
	return models.StatusInfo{Status: status, AuthResponse: auth}, nil
}

// authResponse decodes the credentials object of a connected session,
// accumulating one failure per missing or mistyped field.
func authResponse(acc *accumulator, v any) *models.AuthResponse {
	obj, err := object(v)
	if err != nil {
		acc.add("authResponse", "expected an object")
		return nil
	}

	sub := acc.at("authResponse")
	auth := &models.AuthResponse{
		AccessToken:   models.AccessToken(requireString(sub, obj, "accessToken")),
		ExpiresIn:     requireInt(sub, obj, "expiresIn"),
		SignedRequest: requireString(sub, obj, "signedRequest"),
		UserID:        models.UserID(requireString(sub, obj, "userID")),
	}
	if auth.ExpiresIn < 0 {
		sub.add("expiresIn", "must be non-negative")
	}
	return auth
}

// StringMap decodes a payload whose keys are unknown in advance but whose
// values must all be strings. Any non-string value is one failure; all
// failures are collected.
func StringMap(v any) (map[string]string, error) {
	obj, err := object(v)
	if err != nil {
		return nil, err
	}

	acc := newAccumulator()
	out := make(map[string]string, len(obj))
	for _, key := range sortedKeys(obj) {
		s, ok := obj[key].(string)
		if !ok {
			acc.add(key, fmt.Sprintf("expected a string, got %T", obj[key]))
			continue
		}
		out[key] = s
	}

	if err := acc.err(); err != nil {
		return nil, err
	}
	return out, nil
}

// FieldMap re-parses the keys of a decoded string map back into typed profile
// fields. A response key outside the known field set is one failure.
func FieldMap(m map[string]string) (map[models.Field]string, error) {
	acc := newAccumulator()
	out := make(map[models.Field]string, len(m))
	for _, key := range sortedStringKeys(m) {
		f, err := models.ParseField(key)
		if err != nil {
			acc.add(key, "unknown profile field")
			continue
		}
		out[f] = m[key]
	}

	if err := acc.err(); err != nil {
		return nil, err
	}
	return out, nil
}

// object narrows a payload to a string-keyed map.
func object(v any) (map[string]any, error) {
	obj, ok := v.(map[string]any)
	if !ok {
		acc := newAccumulator()
		acc.add("", fmt.Sprintf("expected an object, got %T", v))
		return nil, acc.err()
	}
	return obj, nil
}

// requireString reads a required string at key, recording a failure when the
// key is absent or holds a non-string.
func requireString(acc *accumulator, obj map[string]any, key string) string {
	raw, ok := obj[key]
	if !ok || raw == nil {
		acc.add(key, "missing required string")
		return ""
	}
	s, ok := raw.(string)
	if !ok {
		acc.add(key, fmt.Sprintf("expected a string, got %T", raw))
		return ""
	}
	return s
}

// requireInt reads a required integer at key. Payloads that passed through a
// JSON layer carry numbers as float64, so integral floats are accepted too.
func requireInt(acc *accumulator, obj map[string]any, key string) int {
	raw, ok := obj[key]
	if !ok || raw == nil {
		acc.add(key, "missing required integer")
		return 0
	}
	switch n := raw.(type) {
	case int:
		return n
	case int32:
		return int(n)
	case int64:
		return int(n)
	case float64:
		if n == math.Trunc(n) {
			return int(n)
		}
		acc.add(key, fmt.Sprintf("expected an integer, got %v", n))
		return 0
	}
	acc.add(key, fmt.Sprintf("expected an integer, got %T", raw))
	return 0
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func sortedStringKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
