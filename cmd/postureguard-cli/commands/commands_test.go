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

package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/l3montree-dev/postureguard/database/models"
	"github.com/l3montree-dev/postureguard/dtos"
	"github.com/l3montree-dev/postureguard/scoring"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrintResult(t *testing.T) {
	recordID := uuid.New()
	var buf bytes.Buffer

	printResult(&buf, scoring.Result{
		Tenant:       "acme",
		OverallScore: 92,
		RiskLevel:    dtos.RiskLevelLow,
		Vulnerabilities: scoring.VulnScore{
			Score:     80,
			Penalties: []scoring.Penalty{{RecordID: recordID, Kind: scoring.RecordKindVulnerability, Reason: "open critical vulnerability", Amount: 20}},
		},
		Compliance: scoring.ComplianceScore{
			Score:      100,
			Frameworks: []scoring.FrameworkResult{{Name: "ISO 27001", Score: 75}},
		},
	})

	out := buf.String()
	assert.Contains(t, out, "acme")
	assert.Contains(t, out, "Low")
	assert.Contains(t, out, recordID.String())
	assert.Contains(t, out, "open critical vulnerability")
	assert.Contains(t, out, "ISO 27001")
}

func TestPrintTrend(t *testing.T) {
	t.Run("should print a note for an empty series", func(t *testing.T) {
		var buf bytes.Buffer
		printTrend(&buf, nil)
		assert.Equal(t, "no trend points recorded\n", buf.String())
	})

	t.Run("should print the days", func(t *testing.T) {
		var buf bytes.Buffer
		printTrend(&buf, []models.TrendPoint{
			{Day: time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC), Value: 61.5, RiskLevel: dtos.RiskLevelMedium},
			{Day: time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC), Value: 39.9, RiskLevel: dtos.RiskLevelCritical},
		})
		assert.Contains(t, buf.String(), "2026-03-14")
		assert.Contains(t, buf.String(), "2026-03-15")
		assert.Contains(t, buf.String(), "Critical")
	})
}

func TestProfileCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "profile.yaml")
	require.NoError(t, os.WriteFile(path, []byte("weights:\n  vulnerability: 50\n  incident: 25\n  compliance: 25\n"), 0o600))

	var buf bytes.Buffer
	root := GetRootCmd()
	root.SetOut(&buf)
	root.SetArgs([]string{"profile", "--file", path})
	t.Cleanup(func() {
		root.SetOut(nil)
		root.SetArgs(nil)
	})

	require.NoError(t, root.Execute())
	assert.Contains(t, buf.String(), "vulnerability: 50")
	assert.Contains(t, buf.String(), "trendRetentionDays: 90")
}

func TestComputeCommandRequiresTenant(t *testing.T) {
	root := GetRootCmd()
	root.SetArgs([]string{"compute"})
	root.SetErr(&bytes.Buffer{})
	t.Cleanup(func() {
		root.SetArgs(nil)
		root.SetErr(nil)
	})

	assert.ErrorContains(t, root.Execute(), "--tenant is required")
}
