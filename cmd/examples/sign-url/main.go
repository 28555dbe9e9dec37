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

package main

import (
	"flag"
	"fmt"
	"log"
	"net/url"

	"github.com/google/uuid"

	"github.com/claimgate/claimgate-go/pkg/canonical"
	"github.com/claimgate/claimgate-go/pkg/signer"
)

// This example demonstrates how an application signs a verification request
// before sending it to the portal's generate-verification-url endpoint.
func main() {
	var (
		secret      = flag.String("secret", "", "application private key (hex); generated when empty")
		bundleID    = flag.String("bundle", "education", "verification bundle id")
		providerID  = flag.String("provider", "", "provider id (required for the default bundle)")
		callbackURL = flag.String("callback", "https://app.example.com/claimgate-callback", "result callback URL")
		sessionID   = flag.String("session", "", "session id; generated when empty")
		portalURL   = flag.String("portal", "http://localhost:3000", "portal base URL")
	)
	flag.Parse()

	fmt.Println("=== Signed Verification URL Example ===")
	fmt.Println()

	// Step 1: Load or generate the application identity
	var wallet *signer.EthereumSigner
	var err error
	if *secret == "" {
		fmt.Println("Step 1: No secret given, generating a throwaway identity...")
		wallet, err = signer.GenerateEthereumSigner()
	} else {
		fmt.Println("Step 1: Loading application identity from secret...")
		wallet, err = signer.NewEthereumSigner(*secret)
	}
	if err != nil {
		log.Fatalf("Failed to load identity: %v", err)
	}
	fmt.Printf("  Application ID: %s\n\n", wallet.Address())

	if *sessionID == "" {
		*sessionID = uuid.NewString()
	}

	// Step 2: Build the canonical message over the four signed fields
	fmt.Println("Step 2: Building the canonical request message...")
	message := canonical.RequestMessage(wallet.Address(), *bundleID, *callbackURL, *sessionID)
	fmt.Printf("  Message: %s\n\n", message)

	// Step 3: Sign it with the application key
	fmt.Println("Step 3: Signing the message...")
	sig, err := wallet.SignMessage(message)
	if err != nil {
		log.Fatalf("Failed to sign message: %v", err)
	}
	fmt.Printf("  Signature: %s\n\n", sig)

	// Step 4: Assemble the request body for the portal
	fmt.Println("Step 4: Request body for POST /api/generate-verification-url:")
	fmt.Printf(`  {
    "applicationId": %q,
    "bundleId": %q,
    "sessionId": %q,
    "providerId": %q,
    "signature": %q,
    "callbackUrl": %q
  }
`, wallet.Address(), *bundleID, *sessionID, *providerID, sig, *callbackURL)
	fmt.Println()

	// Step 5: The same parameters as a shareable verify URL
	params := url.Values{
		"applicationId": {wallet.Address()},
		"bundleId":      {*bundleID},
		"callbackUrl":   {*callbackURL},
		"sessionId":     {*sessionID},
		"signature":     {sig},
	}
	if *providerID != "" {
		params.Set("providerId", *providerID)
	}
	fmt.Println("Step 5: Shareable verification URL:")
	fmt.Printf("  %s/verify?%s\n\n", *portalURL, params.Encode())

	fmt.Println("=== Example completed successfully! ===")
}
