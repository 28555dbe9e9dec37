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
	"net/http"
	"net/url"

	"github.com/claimgate/claimgate-go/pkg/log"
	"github.com/claimgate/claimgate-go/pkg/proofnet"
	"github.com/claimgate/claimgate-go/pkg/protocol"
)

// handleGenerateVerificationURL is the initiate endpoint of the portal: it
// authenticates a signed verification request and opens a session with the
// proof network, embedding the request metadata as the network's opaque
// context so the callback can be tied back without server-side state.
func (s *Server) handleGenerateVerificationURL(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req protocol.VerificationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(ctx, w, r, &protocol.ValidationError{Field: "body", Message: "invalid JSON"})
		return
	}

	ctx = log.WithLogField(ctx, "sessionId", req.SessionID)

	if err := req.Validate(); err != nil {
		s.writeError(ctx, w, r, err)
		return
	}

	if !s.verifier.Verify(req.CanonicalMessage(), req.Signature, req.ApplicationID) {
		s.writeError(ctx, w, r, &protocol.AuthenticationError{
			ExpectedSigner: req.ApplicationID,
			SignedData:     req.SignedFields(),
		})
		return
	}

	identity, err := s.cfg.Identity()
	if err != nil {
		s.writeError(ctx, w, r, err)
		return
	}

	packed, err := protocol.SessionContextFromRequest(&req).Pack()
	if err != nil {
		s.writeError(ctx, w, r, err)
		return
	}

	baseURL := s.baseURL(r)
	appID := s.cfg.AppID
	if appID == "" {
		appID = identity.Address()
	}

	redirect := baseURL + "/verify/status?" + url.Values{
		"sessionId":     {req.SessionID},
		"applicationId": {req.ApplicationID},
		"bundleId":      {req.BundleID},
		"callbackUrl":   {req.CallbackURL},
		"signature":     {req.Signature},
	}.Encode()

	// Mandatory upstream step: failure here is fatal to the request
	proofReq, err := s.network.BuildRequest(ctx, identity, proofnet.BuildParams{
		AppID:       appID,
		ProviderID:  req.ProviderID,
		SessionID:   req.SessionID,
		Context:     packed,
		CallbackURL: baseURL + "/api/proof-callback",
		RedirectURL: redirect,
	})
	if err != nil {
		s.writeError(ctx, w, r, err)
		return
	}

	log.L(ctx).Infof("opened verification session for %s (bundle %s)", req.ApplicationID, req.BundleID)

	writeJSON(w, http.StatusOK, proofReq)
}
