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
	"context"
	"io"
	"net/http"
	"time"

	"github.com/claimgate/claimgate-go/pkg/forwarder"
	"github.com/claimgate/claimgate-go/pkg/log"
	"github.com/claimgate/claimgate-go/pkg/processor"
	"github.com/claimgate/claimgate-go/pkg/protocol"
)

// handleProofCallback receives a claim batch from the proof network,
// recovers the session context echoed inside the first claim, processes each
// claim with its bundle's processor, and forwards the signed result to the
// application's callback URL.
//
// The inbound acknowledgment is unconditional: downstream delivery failure is
// logged and swallowed, because the network neither retries nor cares about
// the application endpoint's availability.
func (s *Server) handleProofCallback(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	body, err := io.ReadAll(r.Body)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]any{
			"success": false,
			"message": "No proofs provided",
		})
		return
	}

	proofs, err := protocol.DecodeProofBatch(body)
	if err != nil || len(proofs) == 0 {
		log.L(ctx).WithError(err).Info("rejected callback without usable proofs")
		writeJSON(w, http.StatusBadRequest, map[string]any{
			"success": false,
			"message": "No proofs provided",
		})
		return
	}

	// The first claim's context carries the session metadata; per-claim
	// extracted parameters are unpacked claim by claim below
	session, _ := protocol.UnpackClaimContext(proofs[0].ClaimData.Context)
	bundleID := session.BundleOrDefault()
	ctx = log.WithLogField(ctx, "sessionId", session.SessionID)

	// Best-effort enrichment: a failed provider lookup costs only the
	// institution name, never the callback
	institutionName := ""
	if session.ProviderID != "" {
		name, err := s.network.LookupProvider(ctx, session.ProviderID)
		if err != nil {
			log.L(ctx).WithError(err).Warnf("provider lookup failed for %s", session.ProviderID)
		} else {
			institutionName = name
		}
	}

	proc := processor.Get(bundleID)
	processed := make([]processor.ProcessedProof, len(proofs))
	for i, proof := range proofs {
		_, params := protocol.UnpackClaimContext(proof.ClaimData.Context)
		processed[i] = proc.Process(params)
	}

	if session.CallbackURL != "" {
		s.forwardResult(ctx, &session, bundleID, institutionName, processed, proofs)
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success":   true,
		"message":   "Proof received and processed",
		"processed": len(processed),
	})
}

// forwardResult signs and delivers the processed batch. Errors are logged,
// never propagated: the inbound ack must not depend on downstream delivery.
func (s *Server) forwardResult(
	ctx context.Context,
	session *protocol.SessionContext,
	bundleID, institutionName string,
	processed []processor.ProcessedProof,
	raw []protocol.Proof,
) {
	identity, err := s.cfg.Identity()
	if err != nil {
		log.L(ctx).WithError(err).Error("cannot sign callback result, skipping forward")
		return
	}

	payload := &forwarder.CallbackPayload{
		SessionID:       session.SessionID,
		ApplicationID:   session.ApplicationID,
		BundleID:        bundleID,
		Proofs:          processed,
		Timestamp:       time.Now().UTC().Format(time.RFC3339),
		InstitutionName: institutionName,
		RawProofs:       raw,
	}

	// Detached from the inbound request: the forward still runs if the
	// network's callback client disconnects early
	fwdCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.cfg.HTTPTimeout)
	defer cancel()

	f := forwarder.New(identity, s.httpClient)
	if err := f.Forward(fwdCtx, session.CallbackURL, payload); err != nil {
		log.L(ctx).WithError(err).Errorf("failed to forward result to %s", session.CallbackURL)
		return
	}

	log.L(ctx).Infof("forwarded %d processed proofs to %s", len(processed), session.CallbackURL)
}
