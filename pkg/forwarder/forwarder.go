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

package forwarder

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/claimgate/claimgate-go/pkg/processor"
	"github.com/claimgate/claimgate-go/pkg/protocol"
	"github.com/claimgate/claimgate-go/pkg/signer"
	"github.com/claimgate/claimgate-go/pkg/verifier"
)

// CallbackPayload is the result the portal delivers to an application's
// callback endpoint after processing a proof batch.
type CallbackPayload struct {
	SessionID       string                     `json:"sessionId"`
	ApplicationID   string                     `json:"applicationId"`
	BundleID        string                     `json:"bundleId"`
	Proofs          []processor.ProcessedProof `json:"proofs"`
	Timestamp       string                     `json:"timestamp"`
	InstitutionName string                     `json:"institutionName,omitempty"`
	RawProofs       []protocol.Proof           `json:"rawProofs"`
}

// SignedCallback is the outbound envelope: Data holds the serialized payload
// bytes, Signature the portal's EIP-191 signature over exactly those bytes.
// Applications verify by recovering the signer from the data string as
// received.
type SignedCallback struct {
	Data      json.RawMessage `json:"data"`
	Signature string          `json:"signature"`
}

// Forwarder signs callback payloads with the portal identity and delivers
// them to application endpoints.
type Forwarder struct {
	identity   signer.Signer
	httpClient *http.Client
}

// New creates a Forwarder. If httpClient is nil, http.DefaultClient is used.
func New(identity signer.Signer, httpClient *http.Client) *Forwarder {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Forwarder{identity: identity, httpClient: httpClient}
}

// Sign serializes payload once and signs the resulting bytes. The payload is
// marshaled exactly once so the signature always covers the bytes that go on
// the wire.
func (f *Forwarder) Sign(payload *CallbackPayload) (*SignedCallback, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to serialize callback payload: %w", err)
	}

	sig, err := f.identity.SignMessage(string(data))
	if err != nil {
		return nil, fmt.Errorf("failed to sign callback payload: %w", err)
	}

	return &SignedCallback{Data: data, Signature: sig}, nil
}

// Forward signs payload and POSTs it to callbackURL. Callers on the proof
// callback path must treat errors as log-and-continue: delivery failure to an
// application endpoint never fails the inbound callback.
func (f *Forwarder) Forward(ctx context.Context, callbackURL string, payload *CallbackPayload) error {
	signed, err := f.Sign(payload)
	if err != nil {
		return err
	}

	body, err := json.Marshal(signed)
	if err != nil {
		return fmt.Errorf("failed to serialize signed callback: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, callbackURL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to create callback request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := f.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("callback delivery failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("callback endpoint returned status %d", resp.StatusCode)
	}

	return nil
}

// VerifyCallback checks a received {data, signature} pair against
// expectedSigner. The data bytes are compacted first, so whitespace
// differences introduced by intermediate JSON handling do not break
// verification, and the recovered signer is returned either way.
func VerifyCallback(data json.RawMessage, signature, expectedSigner string) (recovered string, valid bool) {
	var compact bytes.Buffer
	if err := json.Compact(&compact, data); err != nil {
		return "", false
	}

	recovered, ok := verifier.RecoverAddress(compact.String(), signature)
	if !ok {
		return "", false
	}

	return recovered, verifier.NewEthereumVerifier().Verify(compact.String(), signature, expectedSigner)
}
