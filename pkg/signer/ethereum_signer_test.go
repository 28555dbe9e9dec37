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
	"strings"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEthereumSigner(t *testing.T) {
	// Well-known test vector: this key derives a stable address
	secret := "4c0883a69102937d6231471b5dbb6204fe5129617082792ae468d01a3f362318"

	s, err := NewEthereumSigner(secret)
	require.NoError(t, err)
	assert.True(t, common.IsHexAddress(s.Address()))

	// 0x prefix is accepted and derives the same identity
	s2, err := NewEthereumSigner("0x" + secret)
	require.NoError(t, err)
	assert.Equal(t, s.Address(), s2.Address())
}

func TestNewEthereumSigner_Invalid(t *testing.T) {
	_, err := NewEthereumSigner("")
	assert.Error(t, err)

	_, err = NewEthereumSigner("not-a-key")
	assert.Error(t, err)

	_, err = NewEthereumSigner("0x1234")
	assert.Error(t, err)
}

func TestSignMessage_Format(t *testing.T) {
	s, err := GenerateEthereumSigner()
	require.NoError(t, err)

	sig, err := s.SignMessage("hello")
	require.NoError(t, err)

	raw, err := hexutil.Decode(sig)
	require.NoError(t, err)
	require.Len(t, raw, 65)

	// V must be in ethers convention
	v := raw[64]
	assert.True(t, v == 27 || v == 28, "unexpected recovery id %d", v)
}

func TestSignMessage_Recovers(t *testing.T) {
	s, err := GenerateEthereumSigner()
	require.NoError(t, err)

	message := "applicationId:0xAA|bundleId:education|callbackUrl:https://x/cb|sessionId:s1"
	sig, err := s.SignMessage(message)
	require.NoError(t, err)

	raw, err := hexutil.Decode(sig)
	require.NoError(t, err)
	raw[64] -= 27

	pub, err := crypto.SigToPub(TextHash([]byte(message)), raw)
	require.NoError(t, err)
	assert.Equal(t, s.Address(), crypto.PubkeyToAddress(*pub).Hex())
}

func TestTextHash(t *testing.T) {
	// Prefix must cover the exact byte length of the payload
	h1 := TextHash([]byte("abc"))
	h2 := TextHash([]byte("abcd"))
	assert.Len(t, h1, 32)
	assert.NotEqual(t, h1, h2)

	want := crypto.Keccak256([]byte("\x19Ethereum Signed Message:\n3abc"))
	assert.Equal(t, want, h1)
}

func TestSignMessage_DistinctPerMessage(t *testing.T) {
	s, err := GenerateEthereumSigner()
	require.NoError(t, err)

	sig1, err := s.SignMessage("one")
	require.NoError(t, err)
	sig2, err := s.SignMessage("two")
	require.NoError(t, err)

	assert.False(t, strings.EqualFold(sig1, sig2))
}
