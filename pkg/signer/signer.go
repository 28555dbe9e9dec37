package signer

// Signer produces envelope signatures bound to a recoverable public identity.
type Signer interface {
	// SignMessage signs the UTF-8 bytes of message and returns a 0x-prefixed
	// hex signature from which the signer's address can be recovered.
	SignMessage(message string) (string, error)

	// Address returns the signer's public identity as a 0x-prefixed
	// checksummed hex address.
	Address() string
}
