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

import "time"

// The processor set is closed: bundles are static configuration, so the
// registry is assembled once and never mutated after init.
var registry = map[string]Processor{
	"default":   &DefaultProcessor{},
	"education": &EducationProcessor{},
}

// Get returns the processor for bundleID. Unknown bundles resolve to the
// default processor; Get is total and never fails.
func Get(bundleID string) Processor {
	if p, ok := registry[bundleID]; ok {
		return p
	}
	return registry["default"]
}

func nowMillis() int64 {
	return time.Now().UnixMilli()
}
