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

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGet_KnownBundles(t *testing.T) {
	assert.IsType(t, &DefaultProcessor{}, Get("default"))
	assert.IsType(t, &EducationProcessor{}, Get("education"))
}

func TestGet_UnknownBundleFallsBack(t *testing.T) {
	// Total function: any unknown id resolves to the default processor
	assert.Same(t, Get("default"), Get("nonexistent-bundle"))
	assert.Same(t, Get("default"), Get(""))
}

func TestDefaultProcessor(t *testing.T) {
	p := &DefaultProcessor{}

	out := p.Process(map[string]string{
		"userId": "u-1",
		"email":  "a@b.c",
		"name":   "Ada",
		"extra":  "kept",
	})

	require.True(t, out.Success)
	assert.True(t, out.Metadata.Verified)
	assert.NotZero(t, out.Metadata.Timestamp)
	assert.Equal(t, "u-1", out.Data["userId"])
	assert.Equal(t, "a@b.c", out.Data["email"])
	assert.Equal(t, "Ada", out.Data["name"])

	verified, ok := out.Data["verifiedData"].(map[string]string)
	require.True(t, ok)
	assert.Equal(t, "kept", verified["extra"])
}

func TestDefaultProcessor_IDFallback(t *testing.T) {
	p := &DefaultProcessor{}

	out := p.Process(map[string]string{"id": "fallback-id"})
	assert.Equal(t, "fallback-id", out.Data["userId"])
}

func TestDefaultProcessor_EmptyParameters(t *testing.T) {
	p := &DefaultProcessor{}

	out := p.Process(map[string]string{})
	require.True(t, out.Success)
	assert.Equal(t, "", out.Data["userId"])
}

func TestEducationProcessor(t *testing.T) {
	p := &EducationProcessor{}

	out := p.Process(map[string]string{"fullName": "Grace Hopper"})
	require.True(t, out.Success)
	assert.Equal(t, "Grace Hopper", out.Data["fullName"])
	assert.True(t, out.Metadata.Verified)
}

func TestEducationProcessor_PageTitleFallback(t *testing.T) {
	p := &EducationProcessor{}

	out := p.Process(map[string]string{"pageTitle": "Grace Hopper"})
	require.True(t, out.Success)
	assert.Equal(t, "Grace Hopper", out.Data["fullName"])
}

func TestEducationProcessor_MissingName(t *testing.T) {
	p := &EducationProcessor{}

	out := p.Process(map[string]string{"email": "x@y.z"})
	require.False(t, out.Success)
	assert.False(t, out.Metadata.Verified)
	assert.Equal(t, "Failed to process education proof", out.Data["error"])
	assert.NotEmpty(t, out.Data["details"])
}
