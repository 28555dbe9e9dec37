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
	"net/http"

	"github.com/claimgate/claimgate-go/pkg/bundle"
	"github.com/claimgate/claimgate-go/pkg/proofnet"
)

// handleProviders lists the static provider set of a bundle.
func (s *Server) handleProviders(w http.ResponseWriter, r *http.Request) {
	bundleID := r.URL.Query().Get("bundleId")
	if bundleID == "" {
		bundleID = "default"
	}

	cfg := bundle.Lookup(bundleID)
	writeJSON(w, http.StatusOK, map[string]any{
		"providers": cfg.Providers,
		"bundleId":  cfg.ID,
	})
}

// handleUniversitySearch searches the education provider catalogue.
func (s *Server) handleUniversitySearch(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")

	if len(query) < proofnet.MinSearchLength {
		writeJSON(w, http.StatusOK, map[string]any{
			"results":       []any{},
			"message":       "Please enter at least 3 characters to search",
			"minCharacters": proofnet.MinSearchLength,
		})
		return
	}

	result, err := s.network.SearchUniversities(r.Context(), query)
	if err != nil {
		s.writeError(r.Context(), w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, result)
}
