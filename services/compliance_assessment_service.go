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

package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/l3montree-dev/postureguard/database/models"
	"github.com/l3montree-dev/postureguard/monitoring"
	"github.com/l3montree-dev/postureguard/scoring"
	"github.com/l3montree-dev/postureguard/shared"
	"github.com/pkg/errors"
)

type ComplianceAssessmentService struct {
	frameworkRepository  shared.ComplianceFrameworkRepository
	assessmentRepository shared.ComplianceAssessmentRepository
	now                  func() time.Time
}

func NewComplianceAssessmentService(frameworkRepository shared.ComplianceFrameworkRepository, assessmentRepository shared.ComplianceAssessmentRepository) *ComplianceAssessmentService {
	return &ComplianceAssessmentService{
		frameworkRepository:  frameworkRepository,
		assessmentRepository: assessmentRepository,
		now:                  time.Now,
	}
}

// AssessFramework scores the framework from its current controls and records the result
// in the assessment history. The framework's lastAssessedAt is updated in the same transaction.
func (s *ComplianceAssessmentService) AssessFramework(ctx context.Context, tenant string, frameworkID uuid.UUID, assessorName, notes *string) (models.ComplianceAssessment, error) {
	var assessment models.ComplianceAssessment
	err := s.frameworkRepository.Transaction(ctx, func(tx shared.DB) error {
		framework, err := s.frameworkRepository.ReadWithControls(tx, tenant, frameworkID)
		if err != nil {
			if errors.Is(err, shared.ErrNotFound) {
				return err
			}
			return shared.WrapStoreError(err, "could not read compliance framework")
		}
		for _, control := range framework.Controls {
			if control.FrameworkID != framework.ID {
				return &scoring.ValidationError{
					Kind:     scoring.RecordKindControl,
					RecordID: control.ID,
					Field:    "frameworkId",
					Reason:   "does not match the framework",
				}
			}
		}

		counts := framework.ControlCounts()
		assessedAt := s.now().UTC()
		assessment = models.ComplianceAssessment{
			FrameworkID:          framework.ID,
			AssessedAt:           assessedAt,
			OverallScore:         scoring.FrameworkScore(framework),
			CompliantControls:    counts.Compliant,
			NonCompliantControls: counts.NonCompliant,
			TotalControls:        counts.Assessable(),
			AssessorName:         assessorName,
			Notes:                notes,
		}

		if err := s.assessmentRepository.Create(tx, &assessment); err != nil {
			return shared.WrapStoreError(err, "could not save compliance assessment")
		}
		if err := s.frameworkRepository.UpdateLastAssessedAt(tx, framework.ID, assessedAt); err != nil {
			return shared.WrapStoreError(err, "could not update last assessment date")
		}
		return nil
	})
	if err != nil {
		return models.ComplianceAssessment{}, err
	}

	monitoring.ComplianceAssessmentsAmount.Inc()
	slog.Info("assessed compliance framework", "tenant", tenant, "framework", frameworkID, "score", assessment.OverallScore)
	return assessment, nil
}

// ListAssessments returns the assessment history of a framework of the tenant, newest first.
func (s *ComplianceAssessmentService) ListAssessments(ctx context.Context, tenant string, frameworkID uuid.UUID) ([]models.ComplianceAssessment, error) {
	var assessments []models.ComplianceAssessment
	err := s.frameworkRepository.Transaction(ctx, func(tx shared.DB) error {
		// scopes the history to the tenant
		if _, err := s.frameworkRepository.ReadWithControls(tx, tenant, frameworkID); err != nil {
			if errors.Is(err, shared.ErrNotFound) {
				return err
			}
			return shared.WrapStoreError(err, "could not read compliance framework")
		}
		var err error
		assessments, err = s.assessmentRepository.ListByFramework(tx, frameworkID)
		return shared.WrapStoreError(err, "could not read compliance assessments")
	})
	if err != nil {
		return nil, err
	}
	return assessments, nil
}
