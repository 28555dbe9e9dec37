// Package proofnet is the portal's client for the external proof
// verification network.
//
// The network is an opaque collaborator: the portal hands it a signed proof
// request carrying an opaque context blob, and the network eventually calls
// the portal back with a claim batch in which each claim echoes that context.
// This package covers the three interactions the portal needs:
//
//   - BuildRequest: open a verification session (mandatory on initiate,
//     failure is fatal to the request)
//   - LookupProvider: resolve a provider's display name (best-effort
//     enrichment on the callback path)
//   - SearchUniversities: provider discovery for the education bundle,
//     merging an embedded seed catalogue with the network's remote search
//
// All calls take a context and run under the configured HTTP timeout.
package proofnet
