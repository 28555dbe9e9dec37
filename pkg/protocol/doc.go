// Package protocol defines the wire types of the verification portal:
// the signed request envelope received from applications, the claim shape
// delivered by the external proof network, the session context that is
// round-tripped through the network's opaque context field, and the signed
// result payload forwarded to application callback endpoints.
//
// The package also defines the portal's error taxonomy. Handlers map these
// error types to HTTP status codes: ValidationError to 400,
// AuthenticationError to 401, ConfigurationError and UpstreamError to 500.
package protocol
