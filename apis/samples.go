/*
   Copyright 2026 The DIRPX Authors.

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package apis

import (
	"time"

	"github.com/google/uuid"
)

// Samples holds the two process-lifetime cached sample values. They are
// generated once at init and regenerated only on explicit renewal, so
// repeated dumps within a documentation run stay stable by default.
type Samples struct {
	// UUID is the representative unique identifier.
	UUID uuid.UUID
	// Now is the representative timestamp. Stored without a monotonic
	// reading so the value is usable as a map key.
	Now time.Time
}

// Date returns the sample's calendar date at midnight UTC. Distinct from
// Now so the reverse map can tell date and timestamp kinds apart.
func (s Samples) Date() time.Time {
	y, m, d := s.Now.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Clock returns the sample's time of day on the zero date.
func (s Samples) Clock() time.Time {
	h, m, sec := s.Now.UTC().Clock()
	return time.Date(0, time.January, 1, h, m, sec, s.Now.UTC().Nanosecond(), time.UTC)
}

// NewSamples generates a fresh sample pair.
func NewSamples() Samples {
	return Samples{
		UUID: uuid.New(),
		// Round(0) strips the monotonic reading.
		Now: time.Now().UTC().Round(0),
	}
}
