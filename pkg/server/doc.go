// Package server implements the portal's HTTP surface.
//
// Two endpoints form the trust-critical path:
//
//   - POST /api/generate-verification-url authenticates a signed request
//     envelope and opens a session with the external proof network
//   - POST /api/proof-callback receives the network's claim batch, applies
//     the bundle's processor to each claim, and forwards the signed result
//     to the requesting application
//
// The remaining endpoints are developer self-service (signed-URL generation,
// callback verification, an echo sink) and catalogue lookups (bundle
// providers, university search) plus a stateless status probe.
//
// Every handler runs behind CORS, panic-recovery and request-logging
// middleware. Handlers are stateless; the only process-wide state is the
// configuration captured at construction.
package server
