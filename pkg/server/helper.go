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

package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/url"

	"github.com/google/uuid"

	"github.com/claimgate/claimgate-go/pkg/canonical"
	"github.com/claimgate/claimgate-go/pkg/forwarder"
	"github.com/claimgate/claimgate-go/pkg/log"
	"github.com/claimgate/claimgate-go/pkg/protocol"
	"github.com/claimgate/claimgate-go/pkg/signer"
)

// handleGenerateSignedURL lets integrators produce a signed verification URL
// from a raw application secret without implementing the signing protocol
// themselves. Developer convenience only: production applications should
// sign requests with their own tooling and never send secrets over the wire.
func (s *Server) handleGenerateSignedURL(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var body struct {
		ApplicationSecret string `json:"applicationSecret"`
		BundleID          string `json:"bundleId"`
		CallbackURL       string `json:"callbackUrl"`
		SessionID         string `json:"sessionId"`
		ProviderID        string `json:"providerId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		s.writeError(ctx, w, r, &protocol.ValidationError{Field: "body", Message: "invalid JSON"})
		return
	}

	for _, f := range []struct{ name, value string }{
		{"applicationSecret", body.ApplicationSecret},
		{"bundleId", body.BundleID},
		{"callbackUrl", body.CallbackURL},
	} {
		if f.value == "" {
			s.writeError(ctx, w, r, &protocol.ValidationError{Field: f.name})
			return
		}
	}

	if body.SessionID == "" {
		body.SessionID = uuid.NewString()
	}

	wallet, err := signer.NewEthereumSigner(body.ApplicationSecret)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]any{
			"error": "Invalid applicationSecret. Must be a valid private key.",
		})
		return
	}

	applicationID := wallet.Address()
	message := canonical.RequestMessage(applicationID, body.BundleID, body.CallbackURL, body.SessionID)
	sig, err := wallet.SignMessage(message)
	if err != nil {
		s.writeError(ctx, w, r, err)
		return
	}

	params := url.Values{
		"applicationId": {applicationID},
		"bundleId":      {body.BundleID},
		"callbackUrl":   {body.CallbackURL},
		"sessionId":     {body.SessionID},
		"signature":     {sig},
	}
	if body.ProviderID != "" {
		params.Set("providerId", body.ProviderID)
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success":       true,
		"url":           s.baseURL(r) + "/verify?" + params.Encode(),
		"applicationId": applicationID,
		"signature":     sig,
		"sessionId":     body.SessionID,
		"message":       "Signed verification URL generated successfully",
	})
}

// handleVerifyCallback verifies a forwarded {data, signature} pair against
// the portal's own identity, so application developers can confirm a
// callback genuinely came from this portal.
func (s *Server) handleVerifyCallback(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var body struct {
		Data      json.RawMessage `json:"data"`
		Signature string          `json:"signature"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]any{
			"verified": false, "score": 0, "error": "invalid JSON body",
		})
		return
	}

	if len(body.Data) == 0 {
		writeJSON(w, http.StatusBadRequest, map[string]any{
			"verified": false, "score": 0, "error": "Missing required field: data",
		})
		return
	}
	if body.Signature == "" {
		writeJSON(w, http.StatusBadRequest, map[string]any{
			"verified": false, "score": 0, "error": "Missing required field: signature",
		})
		return
	}

	identity, err := s.cfg.Identity()
	if err != nil {
		var ce *protocol.ConfigurationError
		if errors.As(err, &ce) {
			log.L(ctx).Errorf("verify-callback unavailable: %v", ce)
			writeJSON(w, http.StatusInternalServerError, map[string]any{
				"verified": false, "score": 0,
				"error": "Server configuration error: " + ce.Setting + " not set",
			})
			return
		}
		s.writeError(ctx, w, r, err)
		return
	}

	recovered, valid := forwarder.VerifyCallback(body.Data, body.Signature, identity.Address())
	if !valid {
		writeJSON(w, http.StatusOK, map[string]any{
			"verified": false,
			"score":    0,
			"message":  "Invalid signature",
			"details": map[string]string{
				"expectedSigner":  identity.Address(),
				"recoveredSigner": recovered,
			},
		})
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"verified": true,
		"score":    100,
		"message":  "Signature verified successfully",
		"signer":   recovered,
	})
}
