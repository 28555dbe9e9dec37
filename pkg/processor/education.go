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

// EducationProcessor extracts the student identity fields required by the
// education bundle. Providers differ in how they label the name field, so
// pageTitle is accepted as a fallback for fullName.
type EducationProcessor struct{}

// Process implements Processor. A claim without a usable full name is a
// processing failure for this bundle, not a crash.
func (p *EducationProcessor) Process(extractedParameters map[string]string) ProcessedProof {
	fullName := extractedParameters["fullName"]
	if fullName == "" {
		fullName = extractedParameters["pageTitle"]
	}

	if fullName == "" {
		return failure(
			"Failed to process education proof",
			"full name not found in extracted parameters",
		)
	}

	return ProcessedProof{
		Success: true,
		Data: map[string]any{
			"fullName": fullName,
			"verified": true,
		},
		Metadata: Metadata{Verified: true, Timestamp: nowMillis()},
	}
}
