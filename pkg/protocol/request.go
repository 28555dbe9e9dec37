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
	"github.com/claimgate/claimgate-go/pkg/canonical"
)

// DefaultBundleID is the bundle applied when a request or recovered context
// does not name one.
const DefaultBundleID = "default"

// VerificationRequest is the signed envelope a requesting application submits
// to initiate a verification session.
//
// The signature covers the canonical form of {applicationId, bundleId,
// callbackUrl, sessionId}; providerId is routing information and is not
// signed.
type VerificationRequest struct {
	ApplicationID string `json:"applicationId"`
	BundleID      string `json:"bundleId"`
	SessionID     string `json:"sessionId"`
	ProviderID    string `json:"providerId,omitempty"`
	Signature     string `json:"signature"`
	CallbackURL   string `json:"callbackUrl"`
}

// Validate checks field presence. providerId is only mandatory for the
// default bundle; for named bundles its omission means the user picks a
// provider in the portal UI.
func (r *VerificationRequest) Validate() error {
	for _, f := range []struct {
		name, value string
	}{
		{"applicationId", r.ApplicationID},
		{"bundleId", r.BundleID},
		{"sessionId", r.SessionID},
		{"signature", r.Signature},
		{"callbackUrl", r.CallbackURL},
	} {
		if f.value == "" {
			return &ValidationError{Field: f.name}
		}
	}

	if r.BundleID == DefaultBundleID && r.ProviderID == "" {
		return &ValidationError{
			Field:   "providerId",
			Message: "providerId is required for the default bundle",
		}
	}

	return nil
}

// CanonicalMessage returns the exact string the application must have signed.
func (r *VerificationRequest) CanonicalMessage() string {
	return canonical.RequestMessage(r.ApplicationID, r.BundleID, r.CallbackURL, r.SessionID)
}

// SignedFields returns the signed field record, used in authentication
// diagnostics so integrators can see precisely what bytes were covered.
func (r *VerificationRequest) SignedFields() map[string]string {
	return map[string]string{
		canonical.FieldApplicationID: r.ApplicationID,
		canonical.FieldBundleID:      r.BundleID,
		canonical.FieldCallbackURL:   r.CallbackURL,
		canonical.FieldSessionID:     r.SessionID,
	}
}
