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

package proofnet

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/claimgate/claimgate-go/pkg/protocol"
)

// LookupProvider fetches the display name of a provider from the network's
// catalogue. Callers on the callback path treat a failure as a missed
// enrichment, never as a request failure.
func (c *Client) LookupProvider(ctx context.Context, providerID string) (string, error) {
	if providerID == "" {
		return "", fmt.Errorf("providerId cannot be empty")
	}

	endpoint := fmt.Sprintf("%s/%s/?tag=university", c.providerAPIURL, url.PathEscape(providerID))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return "", &protocol.UpstreamError{Op: "provider lookup", Err: err}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", &protocol.UpstreamError{Op: "provider lookup", Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", &protocol.UpstreamError{
			Op:  "provider lookup",
			Err: fmt.Errorf("unexpected status %d", resp.StatusCode),
		}
	}

	var body struct {
		IsSuccess bool `json:"isSuccess"`
		Provider  struct {
			Name string `json:"name"`
		} `json:"provider"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return "", &protocol.UpstreamError{Op: "provider lookup", Err: err}
	}

	if !body.IsSuccess || body.Provider.Name == "" {
		return "", &protocol.UpstreamError{
			Op:  "provider lookup",
			Err: fmt.Errorf("provider %s not found", providerID),
		}
	}

	return body.Provider.Name, nil
}
