// SPDX-License-Identifier: MIT

package profile

import (
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Default gradient factors applied by ApplyDefaults.
const (
	DefaultGFLow  = 0.3
	DefaultGFHigh = 0.85
)

// Dive is one profile of a setup.
type Dive struct {
	Name      string  `json:"name,omitempty" yaml:"name,omitempty"`
	Waypoints Profile `json:"waypoints" yaml:"waypoints"`
}

// DiveSetup is the document the presentation layer shares and stores:
// gases, dives and the gradient factors to evaluate them with.
type DiveSetup struct {
	Gases           []Gas   `json:"gases" yaml:"gases"`
	Dives           []Dive  `json:"dives" yaml:"dives"`
	GFLow           float64 `json:"gfLow" yaml:"gfLow"`
	GFHigh          float64 `json:"gfHigh" yaml:"gfHigh"`
	SurfaceInterval float64 `json:"surfaceInterval" yaml:"surfaceInterval"` // minutes after each dive
}

// ApplyDefaults fills an empty gas list with air and zero gradient factors
// with DefaultGFLow/DefaultGFHigh.
func (s *DiveSetup) ApplyDefaults() {
	if len(s.Gases) == 0 {
		s.Gases = []Gas{Air()}
	}
	if s.GFLow == 0 && s.GFHigh == 0 {
		s.GFLow, s.GFHigh = DefaultGFLow, DefaultGFHigh
	}
}

// Validate checks gases, every dive profile, gradient factors in [0,1]
// and a surface interval in [0, MaxDuration]. gfLow > gfHigh is accepted.
func (s DiveSetup) Validate() error {
	if err := ValidateGases(s.Gases); err != nil {
		return err
	}
	if len(s.Dives) == 0 {
		return profileErrorf("DiveSetup.Validate", ErrInvalidSetup, "no dives")
	}
	for i, d := range s.Dives {
		if err := d.Waypoints.Validate(); err != nil {
			return profileErrorf("DiveSetup.Validate", err, "dive %d", i)
		}
	}
	for _, gf := range []float64{s.GFLow, s.GFHigh} {
		if gf < 0 || gf > 1 || !finite(gf) {
			return profileErrorf("DiveSetup.Validate", ErrInvalidSetup, "gradient factor %v out of [0,1]", gf)
		}
	}
	if s.SurfaceInterval < 0 || s.SurfaceInterval > MaxDuration || !finite(s.SurfaceInterval) {
		return profileErrorf("DiveSetup.Validate", ErrInvalidSetup, "surface interval %v", s.SurfaceInterval)
	}

	return nil
}

// DecodeSetup reads a setup in format "yaml", "yml" or "json", applies
// defaults and validates it. Unknown fields are rejected.
func DecodeSetup(r io.Reader, format string) (*DiveSetup, error) {
	return DecodeSetupWith(r, format, DiveSetup{})
}

// DecodeSetupWith is DecodeSetup with base supplying the values of keys
// the document leaves out. Gases and Dives of base are ignored.
func DecodeSetupWith(r io.Reader, format string, base DiveSetup) (*DiveSetup, error) {
	s := DiveSetup{GFLow: base.GFLow, GFHigh: base.GFHigh, SurfaceInterval: base.SurfaceInterval}
	switch strings.ToLower(format) {
	case "yaml", "yml":
		dec := yaml.NewDecoder(r)
		dec.KnownFields(true)
		if err := dec.Decode(&s); err != nil {
			return nil, profileErrorf("DecodeSetup", err, "yaml")
		}
	case "json":
		dec := json.NewDecoder(r)
		dec.DisallowUnknownFields()
		if err := dec.Decode(&s); err != nil {
			return nil, profileErrorf("DecodeSetup", err, "json")
		}
	default:
		return nil, profileErrorf("DecodeSetup", ErrUnknownFormat, "%q", format)
	}
	s.ApplyDefaults()
	if err := s.Validate(); err != nil {
		return nil, err
	}

	return &s, nil
}

// LoadSetup opens path and decodes it by extension (.yaml, .yml, .json).
func LoadSetup(path string) (*DiveSetup, error) {
	return LoadSetupWith(path, DiveSetup{})
}

// LoadSetupWith is LoadSetup with fallback values taken from base.
func LoadSetupWith(path string, base DiveSetup) (*DiveSetup, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, profileErrorf("LoadSetup", err, "%s", path)
	}
	defer f.Close()

	return DecodeSetupWith(f, strings.TrimPrefix(filepath.Ext(path), "."), base)
}
