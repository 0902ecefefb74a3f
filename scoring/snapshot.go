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
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/l3montree-dev/postureguard/database/models"
	"github.com/pkg/errors"
)

// ErrInvalidRecord is wrapped by every ValidationError.
var ErrInvalidRecord = errors.New("invalid record")

type RecordKind string

const (
	RecordKindVulnerability RecordKind = "vulnerability"
	RecordKindIncident      RecordKind = "incident"
	RecordKindFramework     RecordKind = "compliance_framework"
	RecordKindControl       RecordKind = "compliance_control"
)

type ValidationError struct {
	Kind     RecordKind
	RecordID uuid.UUID
	Field    string
	Reason   string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s %s: %s %s", e.Kind, e.RecordID, e.Field, e.Reason)
}

func (e *ValidationError) Unwrap() error {
	return ErrInvalidRecord
}

// Snapshot is a point in time read of all record stores of a single tenant.
// It is never mutated by the scoring functions.
type Snapshot struct {
	Tenant          string
	TakenAt         time.Time
	Vulnerabilities []models.Vulnerability
	Incidents       []models.Incident
	Frameworks      []models.ComplianceFramework
}

var v = newValidator()

func newValidator() *validator.Validate {
	validate := validator.New()
	// report json names, those are the names the record owners know
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return validate
}

func fromValidatorError(kind RecordKind, id uuid.UUID, err error) error {
	var fieldErrors validator.ValidationErrors
	if errors.As(err, &fieldErrors) && len(fieldErrors) > 0 {
		fe := fieldErrors[0]
		reason := "failed on " + fe.Tag()
		if fe.Param() != "" {
			reason = fmt.Sprintf("must satisfy %s=%s, got %v", fe.Tag(), fe.Param(), fe.Value())
		}
		return &ValidationError{Kind: kind, RecordID: id, Field: fe.Field(), Reason: reason}
	}
	return &ValidationError{Kind: kind, RecordID: id, Reason: err.Error()}
}

func notBefore(kind RecordKind, id uuid.UUID, field string, t *time.Time, otherField string, other time.Time) error {
	if t != nil && t.Before(other) {
		return &ValidationError{Kind: kind, RecordID: id, Field: field, Reason: "must not be before " + otherField}
	}
	return nil
}

func validateVulnerability(vuln models.Vulnerability) error {
	if err := v.Struct(vuln); err != nil {
		return fromValidatorError(RecordKindVulnerability, vuln.ID, err)
	}
	if vuln.DiscoveredAt.IsZero() {
		return &ValidationError{Kind: RecordKindVulnerability, RecordID: vuln.ID, Field: "discoveredAt", Reason: "is required"}
	}
	if vuln.CVSSVector != nil && *vuln.CVSSVector != "" {
		if _, err := BaseScoreFromVector(*vuln.CVSSVector); err != nil {
			return &ValidationError{Kind: RecordKindVulnerability, RecordID: vuln.ID, Field: "cvssVector", Reason: err.Error()}
		}
	}
	return notBefore(RecordKindVulnerability, vuln.ID, "resolvedAt", vuln.ResolvedAt, "discoveredAt", vuln.DiscoveredAt)
}

func validateIncident(incident models.Incident) error {
	if err := v.Struct(incident); err != nil {
		return fromValidatorError(RecordKindIncident, incident.ID, err)
	}
	if incident.DetectedAt.IsZero() {
		return &ValidationError{Kind: RecordKindIncident, RecordID: incident.ID, Field: "detectedAt", Reason: "is required"}
	}
	if err := notBefore(RecordKindIncident, incident.ID, "containedAt", incident.ContainedAt, "detectedAt", incident.DetectedAt); err != nil {
		return err
	}
	if err := notBefore(RecordKindIncident, incident.ID, "resolvedAt", incident.ResolvedAt, "detectedAt", incident.DetectedAt); err != nil {
		return err
	}
	if incident.ContainedAt != nil {
		return notBefore(RecordKindIncident, incident.ID, "resolvedAt", incident.ResolvedAt, "containedAt", *incident.ContainedAt)
	}
	return nil
}

func validateFramework(framework models.ComplianceFramework) error {
	for _, control := range framework.Controls {
		if control.FrameworkID != framework.ID {
			return &ValidationError{Kind: RecordKindControl, RecordID: control.ID, Field: "frameworkId", Reason: "does not match the owning framework " + framework.ID.String()}
		}
		if err := v.Struct(control); err != nil {
			return fromValidatorError(RecordKindControl, control.ID, err)
		}
	}
	return nil
}

// Validate returns the first malformed record as *ValidationError.
// Records are rejected, never repaired.
func (s Snapshot) Validate() error {
	for _, vuln := range s.Vulnerabilities {
		if err := validateVulnerability(vuln); err != nil {
			return err
		}
	}
	for _, incident := range s.Incidents {
		if err := validateIncident(incident); err != nil {
			return err
		}
	}
	for _, framework := range s.Frameworks {
		if err := validateFramework(framework); err != nil {
			return err
		}
	}
	return nil
}

// EffectiveCVSS returns the supplied cvss score or, if absent, the base score of the vector.
func EffectiveCVSS(vuln models.Vulnerability) (float64, bool) {
	if vuln.CVSSScore != nil {
		return *vuln.CVSSScore, true
	}
	if vuln.CVSSVector == nil || *vuln.CVSSVector == "" {
		return 0, false
	}
	score, err := BaseScoreFromVector(*vuln.CVSSVector)
	if err != nil {
		return 0, false
	}
	return score, true
}
