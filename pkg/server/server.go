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

	"github.com/gorilla/mux"

	"github.com/claimgate/claimgate-go/pkg/config"
	"github.com/claimgate/claimgate-go/pkg/proofnet"
	"github.com/claimgate/claimgate-go/pkg/verifier"
)

// Server holds the portal's request handlers and their collaborators. All
// state is process-wide configuration fixed at construction; request handling
// itself is stateless.
type Server struct {
	cfg        config.Config
	verifier   verifier.Verifier
	network    *proofnet.Client
	httpClient *http.Client
}

// NewServer creates a portal server from cfg.
func NewServer(cfg config.Config) *Server {
	return &Server{
		cfg:      cfg,
		verifier: verifier.NewEthereumVerifier(),
		network: proofnet.NewClient(proofnet.Options{
			SharePageURL:     cfg.SharePageURL,
			ProviderAPIURL:   cfg.ProviderAPIURL,
			UniversityAPIURL: cfg.UniversityAPIURL,
			Timeout:          cfg.HTTPTimeout,
		}),
		httpClient: &http.Client{Timeout: cfg.HTTPTimeout},
	}
}

// Router builds the portal's HTTP routing table.
func (s *Server) Router() *mux.Router {
	r := mux.NewRouter()
	r.Use(s.requestLogMiddleware, s.corsMiddleware, s.recoverMiddleware)

	api := r.PathPrefix("/api").Subrouter()
	api.Path("/generate-verification-url").Methods(http.MethodPost, http.MethodOptions).
		HandlerFunc(s.handleGenerateVerificationURL)
	api.Path("/proof-callback").Methods(http.MethodPost, http.MethodOptions).
		HandlerFunc(s.handleProofCallback)
	api.Path("/helper/generate-signed-url").Methods(http.MethodPost, http.MethodOptions).
		HandlerFunc(s.handleGenerateSignedURL)
	api.Path("/helper/verify-callback").Methods(http.MethodPost, http.MethodOptions).
		HandlerFunc(s.handleVerifyCallback)
	api.Path("/providers").Methods(http.MethodGet, http.MethodOptions).
		HandlerFunc(s.handleProviders)
	api.Path("/providers/universities").Methods(http.MethodGet, http.MethodOptions).
		HandlerFunc(s.handleUniversitySearch)
	api.Path("/verification-status").Methods(http.MethodGet, http.MethodOptions).
		HandlerFunc(s.handleVerificationStatus)
	api.Path("/echo-callback").Methods(http.MethodPost, http.MethodOptions).
		HandlerFunc(s.handleEchoCallback)

	return r
}

// baseURL returns the portal's public base URL, preferring configuration and
// falling back to the inbound request's host.
func (s *Server) baseURL(r *http.Request) string {
	if s.cfg.BaseURL != "" {
		return s.cfg.BaseURL
	}
	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	return scheme + "://" + r.Host
}
