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
	"time"

	"github.com/claimgate/claimgate-go/pkg/forwarder"
	"github.com/claimgate/claimgate-go/pkg/log"
)

// handleEchoCallback is a development sink for forwarded results: point a
// request's callbackUrl here to see what an application endpoint would
// receive. The payload is logged and, when the portal identity is
// configured, its signature is checked in-process.
func (s *Server) handleEchoCallback(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var signed forwarder.SignedCallback
	if err := json.NewDecoder(r.Body).Decode(&signed); err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]any{
			"error": "Failed to process callback",
		})
		return
	}

	log.L(ctx).Infof("echo-callback received %d byte payload", len(signed.Data))

	note := "signature not checked (portal identity unavailable)"
	if identity, err := s.cfg.Identity(); err == nil && signed.Signature != "" {
		if _, valid := forwarder.VerifyCallback(signed.Data, signed.Signature, identity.Address()); valid {
			note = "signature verified against portal identity"
			log.L(ctx).Info("echo-callback signature verified")
		} else {
			note = "signature verification FAILED"
			log.L(ctx).Warn("echo-callback signature verification failed")
		}
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success":    true,
		"message":    "Callback received and logged",
		"receivedAt": time.Now().UTC().Format(time.RFC3339),
		"note":       note,
	})
}
