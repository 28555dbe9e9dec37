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

import "fmt"

// ValidationError reports a missing or malformed request field. Handlers map
// it to HTTP 400.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("invalid field %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("missing required field: %s", e.Field)
}

// AuthenticationError reports an envelope signature that does not recover to
// the claimed application identity. Handlers map it to HTTP 401 and attach
// the diagnostic payload so integrators can self-serve debugging.
type AuthenticationError struct {
	ExpectedSigner string
	SignedData     map[string]string
}

func (e *AuthenticationError) Error() string {
	return fmt.Sprintf("signature does not match applicationId %s", e.ExpectedSigner)
}

// ConfigurationError reports missing portal configuration discovered at use,
// not at startup; endpoints that do not need the missing setting keep
// working. Handlers map it to HTTP 500.
type ConfigurationError struct {
	Setting string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("server misconfigured: %s is not set", e.Setting)
}

// UpstreamError reports a failed call to the external proof network or an
// enrichment service. Optional enrichment failures are logged and swallowed;
// mandatory failures propagate as HTTP 500.
type UpstreamError struct {
	Op  string
	Err error
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("upstream %s failed: %v", e.Op, e.Err)
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}
