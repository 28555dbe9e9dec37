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
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEncode_SortsKeys(t *testing.T) {
	// Insertion order must not matter
	got := Encode(map[string]string{"b": "2", "a": "1"})
	assert.Equal(t, "a:1|b:2", got)

	got = Encode(map[string]string{"a": "1", "b": "2"})
	assert.Equal(t, "a:1|b:2", got)
}

func TestEncode_Empty(t *testing.T) {
	assert.Equal(t, "", Encode(nil))
	assert.Equal(t, "", Encode(map[string]string{}))
}

func TestEncode_ByteOrderNotLocale(t *testing.T) {
	// Uppercase sorts before lowercase in byte order
	got := Encode(map[string]string{"Z": "1", "a": "2"})
	assert.Equal(t, "Z:1|a:2", got)
}

func TestEncode_EmptyValues(t *testing.T) {
	got := Encode(map[string]string{"a": "", "b": "x"})
	assert.Equal(t, "a:|b:x", got)
}

func TestRequestMessage(t *testing.T) {
	got := RequestMessage("0xAA", "education", "https://x/cb", "s1")
	assert.Equal(t, "applicationId:0xAA|bundleId:education|callbackUrl:https://x/cb|sessionId:s1", got)
}

func TestRequestMessage_Deterministic(t *testing.T) {
	a := RequestMessage("0xAA", "default", "https://example.com/cb", "abc")
	b := RequestMessage("0xAA", "default", "https://example.com/cb", "abc")
	assert.Equal(t, a, b)
}
