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
	_ "embed"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/claimgate/claimgate-go/pkg/log"
)

//go:embed universities.json
var universitySeedJSON []byte

var universitySeed = mustLoadSeed()

func mustLoadSeed() []University {
	var seed []University
	if err := json.Unmarshal(universitySeedJSON, &seed); err != nil {
		panic(fmt.Sprintf("embedded university seed is invalid: %v", err))
	}
	return seed
}

// University is one education provider offered for the education bundle.
type University struct {
	ProviderID   string `json:"providerId"`
	ProviderName string `json:"providerName"`
	LogoURL      string `json:"logoUrl,omitempty"`
	Alias        string `json:"alias,omitempty"`
	Description  string `json:"description,omitempty"`
}

// SearchResult reports a university search with per-source counts.
type SearchResult struct {
	Results []University `json:"results"`
	Query   string       `json:"query"`
	Count   int          `json:"count"`
	Sources struct {
		Local  int `json:"local"`
		Remote int `json:"remote"`
		Total  int `json:"total"`
	} `json:"sources"`
}

// MinSearchLength is the minimum query length accepted by SearchUniversities.
const MinSearchLength = 3

// SearchUniversities matches query against the embedded seed catalogue and
// the network's remote catalogue, merged and deduplicated by provider id.
// A remote failure degrades to local-only results.
func (c *Client) SearchUniversities(ctx context.Context, query string) (*SearchResult, error) {
	if len(query) < MinSearchLength {
		return nil, fmt.Errorf("query must be at least %d characters", MinSearchLength)
	}

	result := &SearchResult{Query: query, Results: []University{}}

	lowered := strings.ToLower(query)
	for _, u := range universitySeed {
		if strings.Contains(strings.ToLower(u.ProviderName), lowered) {
			result.Results = append(result.Results, u)
		}
	}
	result.Sources.Local = len(result.Results)

	remote, err := c.searchRemote(ctx, query)
	if err != nil {
		log.L(ctx).WithError(err).Warn("remote university search failed, using local results only")
	}

	seen := make(map[string]bool, len(result.Results))
	for _, u := range result.Results {
		seen[u.ProviderID] = true
	}
	for _, u := range remote {
		if !seen[u.ProviderID] {
			result.Results = append(result.Results, u)
			seen[u.ProviderID] = true
			result.Sources.Remote++
		}
	}

	result.Count = len(result.Results)
	result.Sources.Total = result.Count
	return result, nil
}

func (c *Client) searchRemote(ctx context.Context, query string) ([]University, error) {
	endpoint := fmt.Sprintf("%s?verificationType=university&page=1&limit=20&search=%s",
		c.universityAPIURL, url.QueryEscape(query))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	var body struct {
		IsSuccess bool `json:"isSuccess"`
		Data      struct {
			Bundles []struct {
				Providers []struct {
					HTTPProviderID string `json:"httpProviderId"`
					Name           string `json:"name"`
					LogoURL        string `json:"logoUrl"`
					Alias          string `json:"alias"`
					Description    string `json:"description"`
				} `json:"providers"`
			} `json:"bundles"`
		} `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, err
	}
	if !body.IsSuccess || len(body.Data.Bundles) == 0 {
		return nil, nil
	}

	providers := body.Data.Bundles[0].Providers
	out := make([]University, 0, len(providers))
	for _, p := range providers {
		out = append(out, University{
			ProviderID:   p.HTTPProviderID,
			ProviderName: p.Name,
			LogoURL:      p.LogoURL,
			Alias:        p.Alias,
			Description:  p.Description,
		})
	}
	return out, nil
}
