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
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"time"

	"github.com/claimgate/claimgate-go/pkg/protocol"
	"github.com/claimgate/claimgate-go/pkg/signer"
)

// BuildParams holds everything needed to open a verification session with
// the network. Context is the portal's packed session context; the network
// echoes it verbatim inside every claim of the eventual callback.
type BuildParams struct {
	AppID       string
	ProviderID  string
	SessionID   string
	Context     string // packed session context (opaque to the network)
	CallbackURL string // the portal's own proof-callback endpoint
	RedirectURL string // where the network sends the user's browser afterwards
}

// ProofRequest is a ready-to-use verification session: URL opens the
// network's hosted verification page, Fallback is the raw request template
// for applications that render the flow natively.
type ProofRequest struct {
	URL       string `json:"url"`
	Fallback  string `json:"fallback"`
	SessionID string `json:"sessionId"`
}

// requestTemplate is the wire shape of a proof request handed to the network.
type requestTemplate struct {
	SessionID   string          `json:"sessionId"`
	AppID       string          `json:"applicationId"`
	ProviderID  string          `json:"providerId"`
	CallbackURL string          `json:"callbackUrl"`
	RedirectURL string          `json:"redirectUrl,omitempty"`
	Context     templateContext `json:"context"`
	TimestampS  string          `json:"timestampS"`
	Signature   string          `json:"signature"`
}

// templateContext mirrors the network's context envelope: contextAddress is
// the session handle, contextMessage the opaque blob it must echo back.
type templateContext struct {
	ContextAddress string `json:"contextAddress"`
	ContextMessage string `json:"contextMessage"`
}

// BuildRequest assembles and signs a proof request. This is the mandatory
// call of the initiate flow: any failure here is fatal to the request.
func (c *Client) BuildRequest(ctx context.Context, identity signer.Signer, params BuildParams) (*ProofRequest, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}
	if params.SessionID == "" {
		return nil, fmt.Errorf("sessionId cannot be empty")
	}

	timestamp := strconv.FormatInt(time.Now().Unix(), 10)

	// The network authenticates the portal by the same recoverable-signature
	// scheme the portal uses with applications
	signedPart, err := json.Marshal(map[string]string{
		"providerId": params.ProviderID,
		"timestamp":  timestamp,
	})
	if err != nil {
		return nil, &protocol.UpstreamError{Op: "proof request", Err: err}
	}
	sig, err := identity.SignMessage(string(signedPart))
	if err != nil {
		return nil, &protocol.UpstreamError{Op: "proof request signing", Err: err}
	}

	template := requestTemplate{
		SessionID:   params.SessionID,
		AppID:       params.AppID,
		ProviderID:  params.ProviderID,
		CallbackURL: params.CallbackURL,
		RedirectURL: params.RedirectURL,
		Context: templateContext{
			ContextAddress: params.SessionID,
			ContextMessage: params.Context,
		},
		TimestampS: timestamp,
		Signature:  sig,
	}

	templateJSON, err := json.Marshal(template)
	if err != nil {
		return nil, &protocol.UpstreamError{Op: "proof request encoding", Err: err}
	}

	return &ProofRequest{
		URL:       c.sharePageURL + "/?template=" + url.QueryEscape(string(templateJSON)),
		Fallback:  string(templateJSON),
		SessionID: params.SessionID,
	}, nil
}
