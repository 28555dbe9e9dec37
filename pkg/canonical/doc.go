// Package canonical implements the deterministic serialization of request
// envelope fields into the exact byte string that applications sign.
//
// The canonical form is the sorted-key "key:value" join:
//
//	applicationId:0xAA|bundleId:education|callbackUrl:https://x/cb|sessionId:s1
//
// Any signer or verifier of the envelope protocol must reproduce this form
// byte for byte, in any language, or signatures will not match.
package canonical
