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
	"os"
	"path/filepath"
	"testing"

	"github.com/l3montree-dev/postureguard/dtos"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeProfile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "profile.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestDefaultScoringProfile(t *testing.T) {
	t.Run("should be valid", func(t *testing.T) {
		assert.NoError(t, DefaultScoringProfile().Validate())
	})

	t.Run("should weight vulnerabilities 40, incidents 35 and compliance 25", func(t *testing.T) {
		p := DefaultScoringProfile()
		assert.Equal(t, Weights{Vulnerability: 40, Incident: 35, Compliance: 25}, p.Weights)
		assert.Equal(t, 90, p.TrendRetentionDays)
	})

	t.Run("should return the severity penalty", func(t *testing.T) {
		p := DefaultScoringProfile()
		assert.Equal(t, 20.0, p.SeverityPenalties.For(dtos.SeverityCritical))
		assert.Equal(t, 10.0, p.SeverityPenalties.For(dtos.SeverityHigh))
		assert.Equal(t, 4.0, p.SeverityPenalties.For(dtos.SeverityMedium))
		assert.Equal(t, 1.0, p.SeverityPenalties.For(dtos.SeverityLow))
		assert.Equal(t, 0.0, p.SeverityPenalties.For(dtos.Severity("unknown")))
	})
}

func TestScoringProfileValidate(t *testing.T) {
	t.Run("should reject weights which do not sum to 100", func(t *testing.T) {
		p := DefaultScoringProfile()
		p.Weights.Compliance = 30
		assert.ErrorContains(t, p.Validate(), "weights must sum to 100")
	})

	t.Run("should reject thresholds which are not strictly decreasing", func(t *testing.T) {
		p := DefaultScoringProfile()
		p.Thresholds.Medium = 80
		assert.ErrorContains(t, p.Validate(), "strictly decreasing")
	})

	t.Run("should reject a default window larger than the retention", func(t *testing.T) {
		p := DefaultScoringProfile()
		p.DefaultTrendWindowDays = 120
		assert.Error(t, p.Validate())
	})

	t.Run("should reject a zero target resolution time", func(t *testing.T) {
		p := DefaultScoringProfile()
		p.IncidentTargetMinutes.Low = 0
		assert.ErrorContains(t, p.Validate(), "target minutes")
	})
}

func TestLoadScoringProfile(t *testing.T) {
	t.Run("should return the defaults if no path is provided", func(t *testing.T) {
		p, err := LoadScoringProfile("")
		require.NoError(t, err)
		assert.Equal(t, DefaultScoringProfile(), p)
	})

	t.Run("should override only the provided values", func(t *testing.T) {
		path := writeProfile(t, `
weights:
  vulnerability: 50
  incident: 25
  compliance: 25
trendRetentionDays: 60
`)
		p, err := LoadScoringProfile(path)
		require.NoError(t, err)
		assert.Equal(t, 50.0, p.Weights.Vulnerability)
		assert.Equal(t, 25.0, p.Weights.Incident)
		assert.Equal(t, 60, p.TrendRetentionDays)
		// untouched
		assert.Equal(t, 80.0, p.Thresholds.Low)
		assert.Equal(t, 5.0, p.SLABreachPenalty)
	})

	t.Run("should reject unknown fields", func(t *testing.T) {
		path := writeProfile(t, "weightz:\n  vulnerability: 40\n")
		_, err := LoadScoringProfile(path)
		assert.Error(t, err)
	})

	t.Run("should validate the loaded profile", func(t *testing.T) {
		path := writeProfile(t, "weights:\n  vulnerability: 90\n")
		_, err := LoadScoringProfile(path)
		assert.ErrorContains(t, err, "weights must sum to 100")
	})

	t.Run("should return an error if the file does not exist", func(t *testing.T) {
		_, err := LoadScoringProfile(filepath.Join(t.TempDir(), "missing.yaml"))
		assert.Error(t, err)
	})
}

func TestDecodeScoringProfile(t *testing.T) {
	t.Run("should decode lowercased viper settings", func(t *testing.T) {
		p, err := DecodeScoringProfile(map[string]any{
			"slabreachpenalty": "7",
			"thresholds": map[string]any{
				"low": 85,
			},
		})
		require.NoError(t, err)
		assert.Equal(t, 7.0, p.SLABreachPenalty)
		assert.Equal(t, 85.0, p.Thresholds.Low)
		assert.Equal(t, 60.0, p.Thresholds.Medium)
	})

	t.Run("should reject unknown keys", func(t *testing.T) {
		_, err := DecodeScoringProfile(map[string]any{"foo": 1})
		assert.Error(t, err)
	})
}
