package verifier

// Verifier checks envelope signatures against a claimed public identity.
type Verifier interface {
	// Verify reports whether signature over message recovers to
	// claimedAddress. Malformed input is a normal verification failure,
	// never an error or panic.
	Verify(message, signature, claimedAddress string) bool
}
