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

package proofnet

import (
	"net/http"
	"time"
)

// Client talks to the external proof-verification network. The network is
// opaque to the portal: the client only builds signed proof requests, looks
// up provider details, and searches the provider catalogue.
type Client struct {
	sharePageURL     string
	providerAPIURL   string
	universityAPIURL string
	httpClient       *http.Client
}

// Options configures a Client. Zero values select the defaults below.
type Options struct {
	SharePageURL     string
	ProviderAPIURL   string
	UniversityAPIURL string
	Timeout          time.Duration
	HTTPClient       *http.Client // overrides Timeout when set
}

// NewClient creates a proof-network client.
func NewClient(opts Options) *Client {
	httpClient := opts.HTTPClient
	if httpClient == nil {
		timeout := opts.Timeout
		if timeout == 0 {
			timeout = 15 * time.Second
		}
		httpClient = &http.Client{Timeout: timeout}
	}

	return &Client{
		sharePageURL:     opts.SharePageURL,
		providerAPIURL:   opts.ProviderAPIURL,
		universityAPIURL: opts.UniversityAPIURL,
		httpClient:       httpClient,
	}
}
