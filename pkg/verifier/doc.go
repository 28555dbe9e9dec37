// Package verifier provides signature verification for the envelope
// protocol.
//
// Verification is recovery-based: the verifier recovers the signing address
// from the signature itself and compares it to the identity the counterparty
// claims, so no public key distribution is needed.
//
//	v := verifier.NewEthereumVerifier()
//	if !v.Verify(message, signature, req.ApplicationID) {
//	    // authentication failure, respond 401
//	}
//
// Verification failure is a normal outcome: malformed signatures return
// false rather than an error.
package verifier
