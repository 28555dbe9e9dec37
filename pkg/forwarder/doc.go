// Package forwarder delivers signed verification results to requesting
// applications.
//
// The outbound envelope is {data, signature}: data is the JSON-serialized
// result payload, signature an EIP-191 signature by the portal identity over
// those exact bytes. Applications verify the origin by recovering the signer
// address and comparing it to the portal's published identity. This is the
// same recoverable-signature protocol used for inbound requests, in the
// opposite direction.
//
// Delivery is fire-and-forget from the caller's perspective: the proof
// callback handler logs a failed Forward and still acknowledges the external
// network, because the network has no retry mechanism and no stake in the
// downstream outcome.
package forwarder
