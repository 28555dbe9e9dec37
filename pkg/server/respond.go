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
	"encoding/json"
	"errors"
	"net/http"

	"github.com/claimgate/claimgate-go/pkg/log"
	"github.com/claimgate/claimgate-go/pkg/protocol"
)

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

// writeError maps the portal error taxonomy onto HTTP responses:
// ValidationError 400, AuthenticationError 401 (with the self-service
// diagnostic payload), ConfigurationError and UpstreamError 500, anything
// else a generic 500 with the error string attached.
func (s *Server) writeError(ctx context.Context, w http.ResponseWriter, r *http.Request, err error) {
	var ve *protocol.ValidationError
	if errors.As(err, &ve) {
		writeJSON(w, http.StatusBadRequest, map[string]any{"error": ve.Error()})
		return
	}

	var ae *protocol.AuthenticationError
	if errors.As(err, &ae) {
		log.L(ctx).Infof("rejected request with invalid signature for %s", ae.ExpectedSigner)
		writeJSON(w, http.StatusUnauthorized, map[string]any{
			"error":   "Invalid signature",
			"message": "The signature does not match the applicationId. The signature must be created by signing the request data with the application secret.",
			"details": map[string]any{
				"expectedSigner": ae.ExpectedSigner,
				"signedData":     ae.SignedData,
			},
			"example": signingExampleCode(s.baseURL(r), ae.SignedData),
			"docs":    docsURL,
		})
		return
	}

	var ce *protocol.ConfigurationError
	if errors.As(err, &ce) {
		log.L(ctx).Errorf("configuration error: %v", ce)
		writeJSON(w, http.StatusInternalServerError, map[string]any{"error": ce.Error()})
		return
	}

	var ue *protocol.UpstreamError
	if errors.As(err, &ue) {
		log.L(ctx).WithError(ue.Err).Errorf("upstream %s failed", ue.Op)
		writeJSON(w, http.StatusInternalServerError, map[string]any{
			"error": "Failed to generate verification URL",
		})
		return
	}

	log.L(ctx).WithError(err).Error("unexpected handler error")
	writeJSON(w, http.StatusInternalServerError, map[string]any{
		"error":   "Internal server error",
		"details": err.Error(),
	})
}
