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
	"time"

	"github.com/google/uuid"
	"github.com/l3montree-dev/postureguard/database/models"
	"github.com/l3montree-dev/postureguard/dtos"
	"github.com/l3montree-dev/postureguard/utils"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func requireValidationError(t *testing.T, err error, kind RecordKind, id uuid.UUID, field string) {
	t.Helper()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidRecord)

	var validationErr *ValidationError
	require.True(t, errors.As(err, &validationErr))
	assert.Equal(t, kind, validationErr.Kind)
	assert.Equal(t, id, validationErr.RecordID)
	assert.Equal(t, field, validationErr.Field)
	assert.Contains(t, err.Error(), id.String())
}

func TestSnapshotValidate(t *testing.T) {
	t.Run("should accept an empty snapshot", func(t *testing.T) {
		assert.NoError(t, Snapshot{TakenAt: now}.Validate())
	})

	t.Run("should accept well formed records", func(t *testing.T) {
		v := vuln(dtos.SeverityHigh, dtos.VulnStatusResolved)
		v.CVSSScore = utils.Ptr(7.5)
		v.ResolvedAt = utils.Ptr(now)

		i := resolvedIncident(dtos.SeverityLow, time.Hour, time.Hour)
		i.ContainedAt = utils.Ptr(i.DetectedAt.Add(time.Minute))
		i.ResponseTimeMinutes = utils.Ptr(1)

		s := Snapshot{
			TakenAt:         now,
			Vulnerabilities: []models.Vulnerability{v},
			Incidents:       []models.Incident{i},
			Frameworks:      []models.ComplianceFramework{framework(dtos.ControlStatusCompliant, dtos.ControlStatusNotApplicable)},
		}
		assert.NoError(t, s.Validate())
	})

	t.Run("should reject a negative cvss score", func(t *testing.T) {
		v := vuln(dtos.SeverityHigh, dtos.VulnStatusOpen)
		v.CVSSScore = utils.Ptr(-1.0)
		err := Snapshot{Vulnerabilities: []models.Vulnerability{v}}.Validate()
		requireValidationError(t, err, RecordKindVulnerability, v.ID, "cvssScore")
	})

	t.Run("should reject a cvss score above 10", func(t *testing.T) {
		v := vuln(dtos.SeverityHigh, dtos.VulnStatusOpen)
		v.CVSSScore = utils.Ptr(10.5)
		err := Snapshot{Vulnerabilities: []models.Vulnerability{v}}.Validate()
		requireValidationError(t, err, RecordKindVulnerability, v.ID, "cvssScore")
	})

	t.Run("should reject an unknown severity", func(t *testing.T) {
		v := vuln(dtos.Severity("urgent"), dtos.VulnStatusOpen)
		err := Snapshot{Vulnerabilities: []models.Vulnerability{v}}.Validate()
		requireValidationError(t, err, RecordKindVulnerability, v.ID, "severity")
	})

	t.Run("should reject a vulnerability resolved before it was discovered", func(t *testing.T) {
		v := vuln(dtos.SeverityHigh, dtos.VulnStatusResolved)
		v.ResolvedAt = utils.Ptr(v.DiscoveredAt.Add(-time.Second))
		err := Snapshot{Vulnerabilities: []models.Vulnerability{v}}.Validate()
		requireValidationError(t, err, RecordKindVulnerability, v.ID, "resolvedAt")
	})

	t.Run("should reject a vulnerability without discovery date", func(t *testing.T) {
		v := vuln(dtos.SeverityHigh, dtos.VulnStatusOpen)
		v.DiscoveredAt = time.Time{}
		err := Snapshot{Vulnerabilities: []models.Vulnerability{v}}.Validate()
		requireValidationError(t, err, RecordKindVulnerability, v.ID, "discoveredAt")
	})

	t.Run("should reject an unparsable cvss vector", func(t *testing.T) {
		v := vuln(dtos.SeverityHigh, dtos.VulnStatusOpen)
		v.CVSSVector = utils.Ptr("CVSS:3.1/AV:X")
		err := Snapshot{Vulnerabilities: []models.Vulnerability{v}}.Validate()
		requireValidationError(t, err, RecordKindVulnerability, v.ID, "cvssVector")
	})

	t.Run("should reject an incident contained before it was detected", func(t *testing.T) {
		i := incident(dtos.SeverityHigh, dtos.IncidentStatusContained)
		i.ContainedAt = utils.Ptr(i.DetectedAt.Add(-time.Minute))
		err := Snapshot{Incidents: []models.Incident{i}}.Validate()
		requireValidationError(t, err, RecordKindIncident, i.ID, "containedAt")
	})

	t.Run("should reject an incident resolved before it was contained", func(t *testing.T) {
		i := incident(dtos.SeverityHigh, dtos.IncidentStatusResolved)
		i.ContainedAt = utils.Ptr(i.DetectedAt.Add(time.Hour))
		i.ResolvedAt = utils.Ptr(i.DetectedAt.Add(time.Minute))
		err := Snapshot{Incidents: []models.Incident{i}}.Validate()
		requireValidationError(t, err, RecordKindIncident, i.ID, "resolvedAt")
	})

	t.Run("should reject negative durations", func(t *testing.T) {
		i := incident(dtos.SeverityHigh, dtos.IncidentStatusDetected)
		i.ResolutionTimeMinutes = utils.Ptr(-5)
		err := Snapshot{Incidents: []models.Incident{i}}.Validate()
		requireValidationError(t, err, RecordKindIncident, i.ID, "resolutionTimeMinutes")
	})

	t.Run("should reject an unknown incident status", func(t *testing.T) {
		i := incident(dtos.SeverityHigh, dtos.IncidentStatus("forgotten"))
		err := Snapshot{Incidents: []models.Incident{i}}.Validate()
		requireValidationError(t, err, RecordKindIncident, i.ID, "status")
	})

	t.Run("should reject a control which belongs to another framework", func(t *testing.T) {
		f := framework(dtos.ControlStatusCompliant)
		f.Controls[0].FrameworkID = uuid.New()
		err := Snapshot{Frameworks: []models.ComplianceFramework{f}}.Validate()
		requireValidationError(t, err, RecordKindControl, f.Controls[0].ID, "frameworkId")
	})

	t.Run("should reject an unknown control status", func(t *testing.T) {
		f := framework(dtos.ControlStatus("done"))
		err := Snapshot{Frameworks: []models.ComplianceFramework{f}}.Validate()
		requireValidationError(t, err, RecordKindControl, f.Controls[0].ID, "status")
	})
}

func TestEffectiveCVSS(t *testing.T) {
	t.Run("should prefer the supplied score", func(t *testing.T) {
		v := vuln(dtos.SeverityHigh, dtos.VulnStatusOpen)
		v.CVSSScore = utils.Ptr(5.0)
		v.CVSSVector = utils.Ptr("CVSS:3.1/AV:N/AC:L/PR:N/UI:N/S:U/C:H/I:H/A:H")
		score, ok := EffectiveCVSS(v)
		assert.True(t, ok)
		assert.Equal(t, 5.0, score)
	})

	t.Run("should derive the score from the vector", func(t *testing.T) {
		v := vuln(dtos.SeverityHigh, dtos.VulnStatusOpen)
		v.CVSSVector = utils.Ptr("CVSS:3.1/AV:N/AC:L/PR:N/UI:N/S:U/C:H/I:H/A:H")
		score, ok := EffectiveCVSS(v)
		assert.True(t, ok)
		assert.Equal(t, 9.8, score)
	})

	t.Run("should report a missing score", func(t *testing.T) {
		_, ok := EffectiveCVSS(vuln(dtos.SeverityHigh, dtos.VulnStatusOpen))
		assert.False(t, ok)
	})
}

func TestBaseScoreFromVector(t *testing.T) {
	t.Run("should parse cvss 3.0 and 3.1", func(t *testing.T) {
		for _, vector := range []string{
			"CVSS:3.0/AV:N/AC:L/PR:N/UI:N/S:U/C:H/I:H/A:H",
			"CVSS:3.1/AV:N/AC:L/PR:N/UI:N/S:U/C:H/I:H/A:H",
		} {
			score, err := BaseScoreFromVector(vector)
			assert.NoError(t, err)
			assert.Equal(t, 9.8, score)
		}
	})

	t.Run("should parse cvss 4.0", func(t *testing.T) {
		score, err := BaseScoreFromVector("CVSS:4.0/AV:N/AC:L/AT:N/PR:N/UI:N/VC:H/VI:H/VA:H/SC:N/SI:N/SA:N")
		assert.NoError(t, err)
		assert.InDelta(t, 9.3, score, 0.05)
	})

	t.Run("should parse cvss 2.0", func(t *testing.T) {
		score, err := BaseScoreFromVector("AV:N/AC:L/Au:N/C:C/I:C/A:C")
		assert.NoError(t, err)
		assert.Equal(t, 10.0, score)
	})

	t.Run("should return an error for garbage", func(t *testing.T) {
		_, err := BaseScoreFromVector("not a vector")
		assert.Error(t, err)
	})
}
