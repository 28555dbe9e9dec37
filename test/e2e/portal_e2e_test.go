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

package e2e

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/claimgate/claimgate-go/pkg/config"
	"github.com/claimgate/claimgate-go/pkg/forwarder"
	"github.com/claimgate/claimgate-go/pkg/protocol"
	"github.com/claimgate/claimgate-go/pkg/proofnet"
	"github.com/claimgate/claimgate-go/pkg/server"
	"github.com/claimgate/claimgate-go/pkg/signer"
)

const portalSecret = "4c0883a69102937d6231471b5dbb6204fe5129617082792ae468d01a3f362318"

func startPortal(t *testing.T) *httptest.Server {
	t.Helper()
	cfg := config.Config{
		AppSecret:    portalSecret,
		SharePageURL: "https://share.example",
		HTTPTimeout:  5 * time.Second,
	}
	portal := httptest.NewServer(server.NewServer(cfg).Router())
	t.Cleanup(portal.Close)
	return portal
}

func postJSON(t *testing.T, url string, body any) (*http.Response, map[string]any) {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)

	resp, err := http.Post(url, "application/json", bytes.NewReader(payload))
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })

	var decoded map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&decoded))
	return resp, decoded
}

// TestE2E_FullVerificationCycle drives the portal through the whole protocol:
// an application signs a request and initiates a session, the proof network
// posts claims back echoing the session context, and the application receives
// a result it can verify against the portal identity.
func TestE2E_FullVerificationCycle(t *testing.T) {
	portal := startPortal(t)

	// Application endpoint that receives the forwarded result
	results := make(chan forwarder.SignedCallback, 1)
	app := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var cb forwarder.SignedCallback
		require.NoError(t, json.NewDecoder(r.Body).Decode(&cb))
		results <- cb
		w.WriteHeader(http.StatusOK)
	}))
	defer app.Close()

	// Step 1: the application signs and initiates
	wallet, err := signer.GenerateEthereumSigner()
	require.NoError(t, err)

	req := protocol.VerificationRequest{
		ApplicationID: wallet.Address(),
		BundleID:      "education",
		SessionID:     "e2e-session",
		CallbackURL:   app.URL,
	}
	req.Signature, err = wallet.SignMessage(req.CanonicalMessage())
	require.NoError(t, err)

	resp, body := postJSON(t, portal.URL+"/api/generate-verification-url", req)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.NotEmpty(t, body["url"])
	assert.Equal(t, "e2e-session", body["sessionId"])

	// Step 2: the returned URL carries a template the network can decode,
	// with our session context embedded as the opaque context message
	shareURL, err := url.Parse(body["url"].(string))
	require.NoError(t, err)
	templateJSON := shareURL.Query().Get("template")
	require.NotEmpty(t, templateJSON)

	var template struct {
		SessionID string `json:"sessionId"`
		Context   struct {
			ContextAddress string `json:"contextAddress"`
			ContextMessage string `json:"contextMessage"`
		} `json:"context"`
		CallbackURL string `json:"callbackUrl"`
		Signature   string `json:"signature"`
	}
	require.NoError(t, json.Unmarshal([]byte(templateJSON), &template))
	assert.Equal(t, "e2e-session", template.SessionID)
	require.True(t, strings.HasSuffix(template.CallbackURL, "/api/proof-callback"))

	var session protocol.SessionContext
	require.NoError(t, json.Unmarshal([]byte(template.Context.ContextMessage), &session))
	assert.Equal(t, wallet.Address(), session.ApplicationID)
	assert.Equal(t, app.URL, session.CallbackURL)

	// Step 3: the network completes verification and posts a claim batch
	// back, echoing the context string plus the extracted parameters
	claimContext, err := json.Marshal(map[string]any{
		"contextMessage": template.Context.ContextMessage,
		"extractedParameters": map[string]string{
			"fullName": "Grace Hopper",
		},
	})
	require.NoError(t, err)

	claims := []protocol.Proof{{
		Identifier: "0xclaim-e2e",
		ClaimData: protocol.ClaimData{
			Provider:   "http",
			Owner:      "0xowner",
			TimestampS: time.Now().Unix(),
			Context:    string(claimContext),
		},
	}}

	resp, body = postJSON(t, template.CallbackURL, claims)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, true, body["success"])
	assert.EqualValues(t, 1, body["processed"])

	// Step 4: the application receives the signed result and verifies it
	var cb forwarder.SignedCallback
	select {
	case cb = <-results:
	case <-time.After(10 * time.Second):
		t.Fatal("result never forwarded to application")
	}

	identity, err := signer.NewEthereumSigner(portalSecret)
	require.NoError(t, err)
	recovered, valid := forwarder.VerifyCallback(cb.Data, cb.Signature, identity.Address())
	require.True(t, valid, "recovered signer %s", recovered)

	var payload forwarder.CallbackPayload
	require.NoError(t, json.Unmarshal(cb.Data, &payload))
	assert.Equal(t, "e2e-session", payload.SessionID)
	assert.Equal(t, wallet.Address(), payload.ApplicationID)
	assert.Equal(t, "education", payload.BundleID)
	require.Len(t, payload.Proofs, 1)
	assert.True(t, payload.Proofs[0].Success)
	assert.Equal(t, "Grace Hopper", payload.Proofs[0].Data["fullName"])
}

// TestE2E_RejectsForgedRequest covers the trust boundary: a request signed by
// a different key than the claimed application id must be refused with enough
// diagnostics for the integrator to fix their signing code.
func TestE2E_RejectsForgedRequest(t *testing.T) {
	portal := startPortal(t)

	victim, err := signer.GenerateEthereumSigner()
	require.NoError(t, err)
	attacker, err := signer.GenerateEthereumSigner()
	require.NoError(t, err)

	req := protocol.VerificationRequest{
		ApplicationID: victim.Address(),
		BundleID:      "education",
		SessionID:     "e2e-forged",
		CallbackURL:   "https://app.example/cb",
	}
	req.Signature, err = attacker.SignMessage(req.CanonicalMessage())
	require.NoError(t, err)

	resp, body := postJSON(t, portal.URL+"/api/generate-verification-url", req)
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "Invalid signature", body["error"])

	details, ok := body["details"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, victim.Address(), details["expectedSigner"])
}

// TestE2E_HelperSignedURLRoundTrip proves the helper endpoint emits
// signatures the initiate endpoint accepts.
func TestE2E_HelperSignedURLRoundTrip(t *testing.T) {
	portal := startPortal(t)

	resp, body := postJSON(t, portal.URL+"/api/helper/generate-signed-url", map[string]string{
		"applicationSecret": portalSecret,
		"bundleId":          "default",
		"providerId":        "email-verification",
		"callbackUrl":       "https://app.example/cb",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, true, body["success"])

	req := protocol.VerificationRequest{
		ApplicationID: body["applicationId"].(string),
		BundleID:      "default",
		SessionID:     body["sessionId"].(string),
		ProviderID:    "email-verification",
		Signature:     body["signature"].(string),
		CallbackURL:   "https://app.example/cb",
	}
	resp, initBody := postJSON(t, portal.URL+"/api/generate-verification-url", req)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var proofReq proofnet.ProofRequest
	raw, err := json.Marshal(initBody)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(raw, &proofReq))
	assert.NotEmpty(t, proofReq.URL)
	assert.NotEmpty(t, proofReq.Fallback)
}
