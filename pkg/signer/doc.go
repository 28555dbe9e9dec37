// Package signer provides envelope message signing for the verification
// portal protocol.
//
// The scheme is Ethereum EIP-191 personal-message signing over secp256k1.
// Because the signature is recoverable, the verifier needs no public key out
// of band: the counterparty claims an address and proves ownership by
// producing a signature that recovers to it.
//
// # Signing an envelope
//
//	s, err := signer.NewEthereumSigner(applicationSecret)
//	if err != nil {
//	    return err
//	}
//
//	message := canonical.RequestMessage(s.Address(), bundleID, callbackURL, sessionID)
//	signature, err := s.SignMessage(message)
//
// The resulting signature verifies against s.Address() via the verifier
// package, and against ethers.js verifyMessage on the application side.
package signer
