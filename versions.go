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

// Package claimgate provides version information for claimgate-go.
package claimgate

const (
	// Version is the current version of claimgate-go
	Version = "1.0.0"

	// EnvelopeVersion is the signed-envelope protocol version spoken with
	// requesting applications. The canonical message layout and the EIP-191
	// signature scheme are frozen per envelope version.
	EnvelopeVersion = "1"
)

// VersionInfo contains detailed version information
type VersionInfo struct {
	PortalVersion   string
	EnvelopeVersion string
}

// GetVersionInfo returns detailed version information
func GetVersionInfo() VersionInfo {
	return VersionInfo{
		PortalVersion:   Version,
		EnvelopeVersion: EnvelopeVersion,
	}
}
