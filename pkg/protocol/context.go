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

package protocol

import (
	"encoding/json"
)

// SessionContext is the verification session metadata that survives the
// redirect through the external proof network. The portal keeps no session
// store: this context, echoed back verbatim inside each claim, is the only
// carrier of request identity between initiation and callback.
type SessionContext struct {
	ApplicationID string `json:"applicationId"`
	BundleID      string `json:"bundleId"`
	SessionID     string `json:"sessionId"`
	ProviderID    string `json:"providerId,omitempty"`
	Signature     string `json:"signature"`
	CallbackURL   string `json:"callbackUrl"`
}

// SessionContextFromRequest captures a validated request's metadata for
// propagation through the external network.
func SessionContextFromRequest(r *VerificationRequest) SessionContext {
	return SessionContext{
		ApplicationID: r.ApplicationID,
		BundleID:      r.BundleID,
		SessionID:     r.SessionID,
		ProviderID:    r.ProviderID,
		Signature:     r.Signature,
		CallbackURL:   r.CallbackURL,
	}
}

// Pack serializes the session context to the JSON string handed to the
// external network as its opaque context message.
func (c SessionContext) Pack() (string, error) {
	b, err := json.Marshal(c)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// BundleOrDefault returns the context's bundle id, falling back to the
// default bundle when the context carried none.
func (c SessionContext) BundleOrDefault() string {
	if c.BundleID == "" {
		return DefaultBundleID
	}
	return c.BundleID
}

// claimContext is the outer context layer the external network embeds in each
// claim: our packed session context comes back string-encoded in
// contextMessage, alongside the claim's extracted parameters.
type claimContext struct {
	ContextMessage      string            `json:"contextMessage"`
	ExtractedParameters map[string]string `json:"extractedParameters"`
}

// UnpackClaimContext recovers the session context and extracted parameters
// from a claim's context field. The field is double-encoded JSON (an outer
// envelope whose contextMessage is itself a JSON string), and either layer
// may be missing or malformed: each layer degrades independently to its zero
// value so callback processing can continue with whatever survived.
func UnpackClaimContext(raw string) (SessionContext, map[string]string) {
	var outer claimContext
	if err := json.Unmarshal([]byte(raw), &outer); err != nil {
		return SessionContext{}, map[string]string{}
	}

	var sc SessionContext
	if outer.ContextMessage != "" {
		// A malformed inner layer loses the metadata but keeps the parameters
		_ = json.Unmarshal([]byte(outer.ContextMessage), &sc)
	}

	params := outer.ExtractedParameters
	if params == nil {
		params = map[string]string{}
	}

	return sc, params
}
