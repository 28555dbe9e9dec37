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

// Package bundle holds the static bundle and provider configuration offered
// by the portal. Bundles are policy, not data: the set is fixed at build
// time and mirrors the processors registered for each bundle.
package bundle

// Provider is one verification provider offered inside a bundle.
type Provider struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	BundleID string `json:"bundleId"`
}

// Config describes one bundle's provider offering.
type Config struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	Providers []Provider `json:"providers"`
}

var configs = map[string]Config{
	"default": {
		ID:   "default",
		Name: "Default Bundle",
		Providers: []Provider{
			{ID: "email-verification", Name: "Email Verification", BundleID: "default"},
			{ID: "phone-verification", Name: "Phone Verification", BundleID: "default"},
		},
	},
	"education": {
		ID:   "education",
		Name: "Education Bundle",
		// University providers are discovered through the search API,
		// not listed statically.
		Providers: []Provider{},
	},
}

// Lookup returns the configuration for bundleID, falling back to the default
// bundle for unknown ids.
func Lookup(bundleID string) Config {
	if c, ok := configs[bundleID]; ok {
		return c
	}
	return configs["default"]
}
