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

package signer

import (
	"crypto/ecdsa"
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"
)

// EthereumSigner implements Signer with EIP-191 personal-message signatures
// over secp256k1. Signatures are 65 bytes (R||S||V, V in {27,28}) hex-encoded,
// interoperable with ethers.js signMessage/verifyMessage.
type EthereumSigner struct {
	key *ecdsa.PrivateKey
}

// NewEthereumSigner creates a signer from a raw hex-encoded private key.
// A leading "0x" is accepted.
func NewEthereumSigner(secret string) (*EthereumSigner, error) {
	if secret == "" {
		return nil, fmt.Errorf("secret cannot be empty")
	}

	key, err := crypto.HexToECDSA(strings.TrimPrefix(secret, "0x"))
	if err != nil {
		return nil, fmt.Errorf("invalid private key: %w", err)
	}

	return &EthereumSigner{key: key}, nil
}

// GenerateEthereumSigner creates a signer with a freshly generated keypair.
func GenerateEthereumSigner() (*EthereumSigner, error) {
	key, err := crypto.GenerateKey()
	if err != nil {
		return nil, fmt.Errorf("failed to generate key: %w", err)
	}
	return &EthereumSigner{key: key}, nil
}

// Address returns the checksummed hex address derived from the public key.
func (s *EthereumSigner) Address() string {
	return crypto.PubkeyToAddress(s.key.PublicKey).Hex()
}

// SignMessage signs message with the EIP-191 personal-message prefix and
// returns the 0x-prefixed hex signature.
func (s *EthereumSigner) SignMessage(message string) (string, error) {
	sig, err := crypto.Sign(TextHash([]byte(message)), s.key)
	if err != nil {
		return "", fmt.Errorf("failed to sign message: %w", err)
	}

	// go-ethereum yields V in {0,1}; the wire format uses {27,28}
	sig[64] += 27

	return hexutil.Encode(sig), nil
}

// TextHash returns the keccak256 hash of data wrapped in the EIP-191
// personal-message envelope, the digest that SignMessage actually signs:
//
//	keccak256("\x19Ethereum Signed Message:\n" + len(data) + data)
func TextHash(data []byte) []byte {
	prefixed := fmt.Sprintf("\x19Ethereum Signed Message:\n%d%s", len(data), data)
	return crypto.Keccak256([]byte(prefixed))
}
