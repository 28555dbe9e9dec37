// Copyright (C) 2025 Claimgate Project
//
// This file is part of claimgate-go.
//
// claimgate-go is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// claimgate-go is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with claimgate-go.  If not, see <https://www.gnu.org/licenses/>.

package verifier

import (
	"strings"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"

	"github.com/claimgate/claimgate-go/pkg/signer"
)

// EthereumVerifier implements Verifier for EIP-191 personal-message
// signatures, the counterpart of signer.EthereumSigner.
type EthereumVerifier struct{}

// NewEthereumVerifier creates a new EthereumVerifier
func NewEthereumVerifier() *EthereumVerifier {
	return &EthereumVerifier{}
}

// Verify recovers the signing address from (message, signature) and compares
// it case-insensitively to claimedAddress. All failure modes (bad hex, wrong
// length, invalid recovery id, unrecoverable point) return false.
func (v *EthereumVerifier) Verify(message, signature, claimedAddress string) bool {
	recovered, ok := RecoverAddress(message, signature)
	if !ok {
		return false
	}
	return strings.EqualFold(recovered, claimedAddress)
}

// RecoverAddress returns the address that produced signature over message,
// or ok=false if the signature is malformed or does not recover.
func RecoverAddress(message, signature string) (address string, ok bool) {
	raw, err := hexutil.Decode(signature)
	if err != nil || len(raw) != 65 {
		return "", false
	}

	// Accept both the ethers convention (27/28) and raw recovery ids (0/1)
	sig := make([]byte, 65)
	copy(sig, raw)
	if sig[64] >= 27 {
		sig[64] -= 27
	}
	if sig[64] > 1 {
		return "", false
	}

	pub, err := crypto.SigToPub(signer.TextHash([]byte(message)), sig)
	if err != nil {
		return "", false
	}

	return crypto.PubkeyToAddress(*pub).Hex(), true
}
