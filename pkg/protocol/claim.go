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
	"bytes"
	"encoding/json"
	"fmt"
)

// Proof is one claim delivered by the external proof network in a callback
// batch. The portal treats it as opaque apart from ClaimData.Context; the
// full object is passed through to the application as rawProofs.
type Proof struct {
	Identifier string    `json:"identifier,omitempty"`
	ClaimData  ClaimData `json:"claimData"`
	Signatures []string  `json:"signatures,omitempty"`
	Witnesses  []Witness `json:"witnesses,omitempty"`
	Epoch      int       `json:"epoch,omitempty"`
}

// ClaimData carries the claim attributes attested by the network. Context is
// the echoed opaque context string described in UnpackClaimContext.
type ClaimData struct {
	Provider   string `json:"provider,omitempty"`
	Parameters string `json:"parameters,omitempty"`
	Owner      string `json:"owner,omitempty"`
	TimestampS int64  `json:"timestampS,omitempty"`
	Context    string `json:"context"`
	Identifier string `json:"identifier,omitempty"`
	Epoch      int    `json:"epoch,omitempty"`
}

// Witness identifies a network attestor that co-signed a claim.
type Witness struct {
	ID  string `json:"id"`
	URL string `json:"url,omitempty"`
}

// DecodeProofBatch parses a callback body that is either a JSON array of
// proofs or a single proof object, which is treated as a one-element batch.
func DecodeProofBatch(body []byte) ([]Proof, error) {
	trimmed := bytes.TrimLeft(body, " \t\r\n")
	if len(trimmed) == 0 {
		return nil, fmt.Errorf("empty callback body")
	}

	if trimmed[0] == '[' {
		var proofs []Proof
		if err := json.Unmarshal(body, &proofs); err != nil {
			return nil, fmt.Errorf("invalid proof batch: %w", err)
		}
		return proofs, nil
	}

	var single Proof
	if err := json.Unmarshal(body, &single); err != nil {
		return nil, fmt.Errorf("invalid proof object: %w", err)
	}
	return []Proof{single}, nil
}
