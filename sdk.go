package fbconnect

// Params is the plain string-map parameter shape the external SDK's calling
// convention expects for login and graph API calls.
type Params map[string]string

// ExternalSDK is the boundary to the host-injected social-platform SDK. It is
// an opaque collaborator: this layer never inspects the entry points' return
// values, only the untyped payloads they deliver to their callbacks.
//
// Each callback is invoked exactly once per call. Implementations may invoke
// callbacks synchronously or from another goroutine.
type ExternalSDK interface {
	// Init bootstraps the SDK with the encoded config and delivers the
	// host-specific handle value to onReady.
	Init(config map[string]any, onReady func(raw any))

	// Login opens the platform's login flow with the encoded options.
	Login(opts Params, h Handle, onResult func(raw any))

	// Logout ends the platform session.
	Logout(h Handle, onResult func(raw any))

	// LoginStatus queries the current session state.
	LoginStatus(h Handle, onResult func(raw any))

	// API performs a generic graph API call.
	API(h Handle, path, method string, params Params, onResult func(raw any))
}

// Handle is the opaque capability token returned by Init and required by
// every subsequent operation. It wraps whatever host-specific value the
// external SDK delivered; this layer never looks inside, only passes it
// through.
type Handle struct {
	raw any
}

// Raw exposes the wrapped host value for ExternalSDK implementations.
func (h Handle) Raw() any {
	return h.raw
}
