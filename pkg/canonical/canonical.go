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

package canonical

import (
	"sort"
	"strings"
)

// Field names of the signed request envelope. Wire-frozen: signers on the
// application side must produce the exact same canonical bytes.
const (
	FieldApplicationID = "applicationId"
	FieldBundleID      = "bundleId"
	FieldCallbackURL   = "callbackUrl"
	FieldSessionID     = "sessionId"
)

// Encode serializes a flat field record into its canonical signable form.
//
// Keys are sorted in lexicographic byte order and joined as "key:value"
// entries with "|". The output is deterministic for a given field set
// regardless of map iteration order.
//
// Values are NOT escaped: a value containing ':' or '|' yields an ambiguous
// canonical form. Existing signers depend on these exact bytes, so escaping
// would be a wire-breaking envelope version bump.
func Encode(fields map[string]string) string {
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	for i, k := range keys {
		if i > 0 {
			b.WriteByte('|')
		}
		b.WriteString(k)
		b.WriteByte(':')
		b.WriteString(fields[k])
	}
	return b.String()
}

// RequestMessage builds the canonical message for a verification request
// envelope, covering the four signed fields of the protocol.
func RequestMessage(applicationID, bundleID, callbackURL, sessionID string) string {
	return Encode(map[string]string{
		FieldApplicationID: applicationID,
		FieldBundleID:      bundleID,
		FieldCallbackURL:   callbackURL,
		FieldSessionID:     sessionID,
	})
}
