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

package processor

// DefaultProcessor passes extracted parameters through generically: it lifts
// the common identity fields to the top level and includes the full parameter
// set as verifiedData.
type DefaultProcessor struct{}

// Process implements Processor.
func (p *DefaultProcessor) Process(extractedParameters map[string]string) ProcessedProof {
	userID := extractedParameters["userId"]
	if userID == "" {
		userID = extractedParameters["id"]
	}

	return ProcessedProof{
		Success: true,
		Data: map[string]any{
			"userId":       userID,
			"email":        extractedParameters["email"],
			"name":         extractedParameters["name"],
			"verifiedData": extractedParameters,
			"verified":     true,
		},
		Metadata: Metadata{Verified: true, Timestamp: nowMillis()},
	}
}
