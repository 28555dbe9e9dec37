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

package forwarder

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/claimgate/claimgate-go/pkg/processor"
	"github.com/claimgate/claimgate-go/pkg/signer"
)

func testPayload() *CallbackPayload {
	return &CallbackPayload{
		SessionID:     "s1",
		ApplicationID: "0xAA",
		BundleID:      "education",
		Proofs: []processor.ProcessedProof{{
			Success:  true,
			Data:     map[string]any{"fullName": "Ada"},
			Metadata: processor.Metadata{Verified: true, Timestamp: 1700000000000},
		}},
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
}

func TestSign_VerifiesAgainstPortalIdentity(t *testing.T) {
	identity, err := signer.GenerateEthereumSigner()
	require.NoError(t, err)

	f := New(identity, nil)
	signed, err := f.Sign(testPayload())
	require.NoError(t, err)

	recovered, valid := VerifyCallback(signed.Data, signed.Signature, identity.Address())
	assert.True(t, valid)
	assert.Equal(t, identity.Address(), recovered)
}

func TestVerifyCallback_WrongSigner(t *testing.T) {
	identity, err := signer.GenerateEthereumSigner()
	require.NoError(t, err)
	other, err := signer.GenerateEthereumSigner()
	require.NoError(t, err)

	f := New(identity, nil)
	signed, err := f.Sign(testPayload())
	require.NoError(t, err)

	recovered, valid := VerifyCallback(signed.Data, signed.Signature, other.Address())
	assert.False(t, valid)
	assert.Equal(t, identity.Address(), recovered)
}

func TestVerifyCallback_ToleratesReindentedData(t *testing.T) {
	identity, err := signer.GenerateEthereumSigner()
	require.NoError(t, err)

	f := New(identity, nil)
	signed, err := f.Sign(testPayload())
	require.NoError(t, err)

	// Simulate an intermediary pretty-printing the data before verification.
	// json.Indent preserves key order, so only whitespace differs.
	var indented bytes.Buffer
	require.NoError(t, json.Indent(&indented, signed.Data, "", "  "))

	_, valid := VerifyCallback(indented.Bytes(), signed.Signature, identity.Address())
	assert.True(t, valid)
}

func TestVerifyCallback_MalformedInput(t *testing.T) {
	_, valid := VerifyCallback(json.RawMessage("{broken"), "0xsig", "0xAA")
	assert.False(t, valid)

	_, valid = VerifyCallback(json.RawMessage(`{"a":1}`), "not-a-signature", "0xAA")
	assert.False(t, valid)
}

func TestForward_DeliversSignedEnvelope(t *testing.T) {
	identity, err := signer.GenerateEthereumSigner()
	require.NoError(t, err)

	var received SignedCallback
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	f := New(identity, srv.Client())
	require.NoError(t, f.Forward(context.Background(), srv.URL, testPayload()))

	_, valid := VerifyCallback(received.Data, received.Signature, identity.Address())
	assert.True(t, valid)

	var payload CallbackPayload
	require.NoError(t, json.Unmarshal(received.Data, &payload))
	assert.Equal(t, "s1", payload.SessionID)
	require.Len(t, payload.Proofs, 1)
	assert.True(t, payload.Proofs[0].Success)
}

func TestForward_ErrorOnNon2xx(t *testing.T) {
	identity, err := signer.GenerateEthereumSigner()
	require.NoError(t, err)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	f := New(identity, srv.Client())
	assert.Error(t, f.Forward(context.Background(), srv.URL, testPayload()))
}

func TestForward_ErrorOnUnreachable(t *testing.T) {
	identity, err := signer.GenerateEthereumSigner()
	require.NoError(t, err)

	f := New(identity, &http.Client{Timeout: 100 * time.Millisecond})
	assert.Error(t, f.Forward(context.Background(), "http://127.0.0.1:1/cb", testPayload()))
}
