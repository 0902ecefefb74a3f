// Copyright (C) 2026 l3montree GmbH
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package config

import (
	"fmt"
	"math"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/go-viper/mapstructure/v2"
	"github.com/l3montree-dev/postureguard/dtos"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

type Weights struct {
	Vulnerability float64 `yaml:"vulnerability" mapstructure:"vulnerability" json:"vulnerability" validate:"gte=0,lte=100"`
	Incident      float64 `yaml:"incident" mapstructure:"incident" json:"incident" validate:"gte=0,lte=100"`
	Compliance    float64 `yaml:"compliance" mapstructure:"compliance" json:"compliance" validate:"gte=0,lte=100"`
}

func (w Weights) Sum() float64 {
	return w.Vulnerability + w.Incident + w.Compliance
}

// Thresholds are the inclusive lower bounds of the risk bands.
// Everything below High is critical.
type Thresholds struct {
	Low    float64 `yaml:"low" mapstructure:"low" json:"low" validate:"gt=0,lte=100"`
	Medium float64 `yaml:"medium" mapstructure:"medium" json:"medium" validate:"gt=0,lte=100"`
	High   float64 `yaml:"high" mapstructure:"high" json:"high" validate:"gt=0,lte=100"`
}

type SeverityTable struct {
	Critical float64 `yaml:"critical" mapstructure:"critical" json:"critical" validate:"gte=0"`
	High     float64 `yaml:"high" mapstructure:"high" json:"high" validate:"gte=0"`
	Medium   float64 `yaml:"medium" mapstructure:"medium" json:"medium" validate:"gte=0"`
	Low      float64 `yaml:"low" mapstructure:"low" json:"low" validate:"gte=0"`
}

func (t SeverityTable) For(severity dtos.Severity) float64 {
	switch severity {
	case dtos.SeverityCritical:
		return t.Critical
	case dtos.SeverityHigh:
		return t.High
	case dtos.SeverityMedium:
		return t.Medium
	case dtos.SeverityLow:
		return t.Low
	}
	return 0
}

type ScoringProfile struct {
	Weights           Weights       `yaml:"weights" mapstructure:"weights" json:"weights"`
	Thresholds        Thresholds    `yaml:"thresholds" mapstructure:"thresholds" json:"thresholds"`
	SeverityPenalties SeverityTable `yaml:"severityPenalties" mapstructure:"severityPenalties" json:"severityPenalties"`
	SLABreachPenalty  float64       `yaml:"slaBreachPenalty" mapstructure:"slaBreachPenalty" json:"slaBreachPenalty" validate:"gte=0"`

	// target resolution time per severity in minutes
	IncidentTargetMinutes  SeverityTable `yaml:"incidentTargetMinutes" mapstructure:"incidentTargetMinutes" json:"incidentTargetMinutes"`
	IncidentResidualFactor float64       `yaml:"incidentResidualFactor" mapstructure:"incidentResidualFactor" json:"incidentResidualFactor" validate:"gte=0,lte=1"`
	IncidentRatioCap       float64       `yaml:"incidentRatioCap" mapstructure:"incidentRatioCap" json:"incidentRatioCap" validate:"gt=0"`
	IncidentRecencyDays    int           `yaml:"incidentRecencyDays" mapstructure:"incidentRecencyDays" json:"incidentRecencyDays" validate:"gt=0"`

	TrendRetentionDays     int `yaml:"trendRetentionDays" mapstructure:"trendRetentionDays" json:"trendRetentionDays" validate:"gt=0"`
	DefaultTrendWindowDays int `yaml:"defaultTrendWindowDays" mapstructure:"defaultTrendWindowDays" json:"defaultTrendWindowDays" validate:"gt=0,ltefield=TrendRetentionDays"`

	CompliantFrameworkThreshold float64 `yaml:"compliantFrameworkThreshold" mapstructure:"compliantFrameworkThreshold" json:"compliantFrameworkThreshold" validate:"gte=0,lte=100"`
}

func DefaultScoringProfile() ScoringProfile {
	return ScoringProfile{
		Weights: Weights{
			Vulnerability: 40,
			Incident:      35,
			Compliance:    25,
		},
		Thresholds: Thresholds{
			Low:    80,
			Medium: 60,
			High:   40,
		},
		SeverityPenalties: SeverityTable{
			Critical: 20,
			High:     10,
			Medium:   4,
			Low:      1,
		},
		SLABreachPenalty: 5,
		IncidentTargetMinutes: SeverityTable{
			Critical: 4 * 60,
			High:     24 * 60,
			Medium:   3 * 24 * 60,
			Low:      7 * 24 * 60,
		},
		IncidentResidualFactor:      0.25,
		IncidentRatioCap:            2,
		IncidentRecencyDays:         30,
		TrendRetentionDays:          90,
		DefaultTrendWindowDays:      30,
		CompliantFrameworkThreshold: 80,
	}
}

var v = validator.New()

func (p ScoringProfile) Validate() error {
	if err := v.Struct(p); err != nil {
		return errors.Wrap(err, "invalid scoring profile")
	}

	if math.Abs(p.Weights.Sum()-100) > 1e-9 {
		return fmt.Errorf("invalid scoring profile: weights must sum to 100, got %v", p.Weights.Sum())
	}

	if !(p.Thresholds.Low > p.Thresholds.Medium && p.Thresholds.Medium > p.Thresholds.High) {
		return fmt.Errorf("invalid scoring profile: thresholds must be strictly decreasing (low > medium > high), got %v > %v > %v", p.Thresholds.Low, p.Thresholds.Medium, p.Thresholds.High)
	}

	// every target is used as a divisor
	for _, target := range []float64{p.IncidentTargetMinutes.Critical, p.IncidentTargetMinutes.High, p.IncidentTargetMinutes.Medium, p.IncidentTargetMinutes.Low} {
		if target <= 0 {
			return errors.New("invalid scoring profile: incident target minutes must be positive")
		}
	}
	return nil
}

// LoadScoringProfile reads a yaml file on top of the defaults.
// An empty path returns the defaults.
func LoadScoringProfile(path string) (ScoringProfile, error) {
	profile := DefaultScoringProfile()
	if path == "" {
		return profile, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return profile, errors.Wrap(err, "could not open scoring profile")
	}
	defer f.Close()

	decoder := yaml.NewDecoder(f)
	decoder.KnownFields(true)
	if err := decoder.Decode(&profile); err != nil {
		return profile, errors.Wrapf(err, "could not decode scoring profile %s", path)
	}

	return profile, profile.Validate()
}

// ScoringProfileFromEnv loads the profile referenced by SCORING_PROFILE.
func ScoringProfileFromEnv() (ScoringProfile, error) {
	return LoadScoringProfile(os.Getenv("SCORING_PROFILE"))
}

// DecodeScoringProfile decodes loosely typed settings (e.g. viper.AllSettings()) on top of the defaults.
func DecodeScoringProfile(settings map[string]any) (ScoringProfile, error) {
	profile := DefaultScoringProfile()
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &profile,
		ErrorUnused:      true,
		WeaklyTypedInput: true,
	})
	if err != nil {
		return profile, err
	}
	if err := decoder.Decode(settings); err != nil {
		return profile, errors.Wrap(err, "could not decode scoring profile")
	}
	return profile, profile.Validate()
}
