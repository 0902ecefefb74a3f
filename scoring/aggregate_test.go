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

package scoring

import (
	"testing"

	"github.com/l3montree-dev/postureguard/config"
	"github.com/l3montree-dev/postureguard/dtos"
	"github.com/stretchr/testify/assert"
)

func TestRiskLevelFromScore(t *testing.T) {
	thresholds := config.DefaultScoringProfile().Thresholds

	cases := []struct {
		score    float64
		expected dtos.RiskLevel
	}{
		{100, dtos.RiskLevelLow},
		{80.0, dtos.RiskLevelLow},
		{79.9, dtos.RiskLevelMedium},
		{60.0, dtos.RiskLevelMedium},
		{59.9, dtos.RiskLevelHigh},
		{40.0, dtos.RiskLevelHigh},
		{39.9, dtos.RiskLevelCritical},
		{0, dtos.RiskLevelCritical},
	}

	for _, c := range cases {
		assert.Equal(t, c.expected, RiskLevelFromScore(c.score, thresholds), "score %v", c.score)
	}
}

func TestAggregate(t *testing.T) {
	engine := newEngine()

	t.Run("should return 100 and low for perfect sub-scores", func(t *testing.T) {
		score, level := engine.Aggregate(100, 100, 100)
		assert.Equal(t, 100.0, score)
		assert.Equal(t, dtos.RiskLevelLow, level)
	})

	t.Run("should weight 40/35/25 and round to one decimal", func(t *testing.T) {
		// (4000 + 3500 + 1562.5) / 100 = 90.625
		score, level := engine.Aggregate(100, 100, 62.5)
		assert.Equal(t, 90.6, score)
		assert.Equal(t, dtos.RiskLevelLow, level)

		// (3200 + 2450 + 1250) / 100 = 69
		score, level = engine.Aggregate(80, 70, 50)
		assert.Equal(t, 69.0, score)
		assert.Equal(t, dtos.RiskLevelMedium, level)
	})

	t.Run("should resolve exact boundaries to the safer band", func(t *testing.T) {
		score, level := engine.Aggregate(80, 80, 80)
		assert.Equal(t, 80.0, score)
		assert.Equal(t, dtos.RiskLevelLow, level)

		score, level = engine.Aggregate(40, 40, 40)
		assert.Equal(t, 40.0, score)
		assert.Equal(t, dtos.RiskLevelHigh, level)
	})

	t.Run("should return critical for a zero score", func(t *testing.T) {
		score, level := engine.Aggregate(0, 0, 0)
		assert.Equal(t, 0.0, score)
		assert.Equal(t, dtos.RiskLevelCritical, level)
	})

	t.Run("should clamp sub-scores to [0,100]", func(t *testing.T) {
		score, _ := engine.Aggregate(150, -20, 100)
		// (4000 + 0 + 2500) / 100
		assert.Equal(t, 65.0, score)
	})

	t.Run("should use the weights of the profile", func(t *testing.T) {
		profile := config.DefaultScoringProfile()
		profile.Weights = config.Weights{Vulnerability: 100}
		score, _ := NewEngine(profile).Aggregate(50, 0, 0)
		assert.Equal(t, 50.0, score)
	})
}
