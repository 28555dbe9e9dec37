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

package server

import (
	"fmt"

	"github.com/claimgate/claimgate-go/pkg/canonical"
)

const docsURL = "https://docs.claimgate.dev/hosted-bundles"

// signingExampleCode renders runnable JavaScript an integrator can use to
// produce a valid envelope signature. It is attached to every 401 so
// integrators can self-serve signature debugging instead of opening a
// support ticket; the snippet embeds the exact field values the failed
// request carried.
func signingExampleCode(baseURL string, signedData map[string]string) string {
	bundleID := signedData[canonical.FieldBundleID]
	callbackURL := signedData[canonical.FieldCallbackURL]
	sessionID := signedData[canonical.FieldSessionID]

	return fmt.Sprintf(`// Install ethers.js first:
// npm install ethers

import { Wallet } from 'ethers';

/**
 * Generate a signed verification URL
 * @param {string} applicationSecret - Your application secret from .env
 * @param {string} bundleId - The bundle ID (e.g., 'education')
 * @param {string} callbackUrl - Your callback URL to receive verification results
 * @param {string} sessionId - Unique session identifier
 * @param {string} providerId - (Optional) The provider ID for verification
 * @returns {Promise<string>} The signed verification URL
 */
async function getSignedVerificationUrl(
  applicationSecret,
  bundleId,
  callbackUrl,
  sessionId,
  providerId
) {
  // Create wallet from your application secret
  const wallet = new Wallet(applicationSecret);
  const applicationId = wallet.address;

  // The data to sign (keys must be sorted alphabetically)
  const data = {
    applicationId,
    bundleId,
    callbackUrl,
    sessionId
  };

  // Create the message (keys sorted alphabetically)
  const sortedKeys = Object.keys(data).sort();
  const message = sortedKeys.map(key => `+"`${key}:${data[key]}`"+`).join('|');

  // Sign the message
  const signature = await wallet.signMessage(message);

  // Build the verification URL
  const params = new URLSearchParams({
    applicationId,
    bundleId,
    sessionId,
    providerId,
    callbackUrl,
    signature
  });

  return `+"`%s/verify/process?${params.toString()}`"+`;
}

// Usage example:
const verificationUrl = await getSignedVerificationUrl(
  process.env.APPLICATION_SECRET, // Your application secret from .env
  '%s',                  // Bundle ID
  '%s',               // Your callback URL
  '%s',                 // Session ID
  ''                        // Optional: Your provider ID
);

console.log('Verification URL:', verificationUrl);

// For more information, visit: %s
`, baseURL, bundleID, callbackURL, sessionID, docsURL)
}
