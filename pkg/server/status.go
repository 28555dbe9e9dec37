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

import "net/http"

// handleVerificationStatus is intentionally stateless: the portal keeps no
// session table, so progress is signalled client-side by the proof network's
// redirect. The endpoint exists so polling clients get a stable answer
// instead of a 404.
func (s *Server) handleVerificationStatus(w http.ResponseWriter, r *http.Request) {
	sessionID := r.URL.Query().Get("sessionId")
	if sessionID == "" {
		writeJSON(w, http.StatusBadRequest, map[string]any{
			"error": "Session ID is required",
		})
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"status":    "waiting",
		"sessionId": sessionID,
		"message":   "Status is managed client-side via redirect from the verification network",
	})
}
