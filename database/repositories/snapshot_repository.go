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

package repositories

import (
	"context"
	"database/sql"
	"slices"
	"time"

	"github.com/l3montree-dev/postureguard/scoring"
	"github.com/l3montree-dev/postureguard/shared"
)

type snapshotRepository struct {
	db                            shared.DB
	vulnerabilityRepository       shared.VulnerabilityRepository
	incidentRepository            shared.IncidentRepository
	complianceFrameworkRepository shared.ComplianceFrameworkRepository
}

func NewSnapshotRepository(
	db shared.DB,
	vulnerabilityRepository shared.VulnerabilityRepository,
	incidentRepository shared.IncidentRepository,
	complianceFrameworkRepository shared.ComplianceFrameworkRepository,
) *snapshotRepository {
	return &snapshotRepository{
		db:                            db,
		vulnerabilityRepository:       vulnerabilityRepository,
		incidentRepository:            incidentRepository,
		complianceFrameworkRepository: complianceFrameworkRepository,
	}
}

// ReadSnapshot reads all three record stores within one read only repeatable read transaction,
// so every record belongs to the same logical instant.
// A failing store fails the whole snapshot.
func (r *snapshotRepository) ReadSnapshot(ctx context.Context, tenant string) (scoring.Snapshot, error) {
	snapshot := scoring.Snapshot{
		Tenant:  tenant,
		TakenAt: time.Now().UTC(),
	}

	err := r.db.WithContext(ctx).Transaction(func(tx shared.DB) error {
		var err error
		if snapshot.Vulnerabilities, err = r.vulnerabilityRepository.ListByTenant(tx, tenant); err != nil {
			return shared.WrapStoreError(err, "could not read vulnerabilities")
		}
		if snapshot.Incidents, err = r.incidentRepository.ListByTenant(tx, tenant); err != nil {
			return shared.WrapStoreError(err, "could not read incidents")
		}
		if snapshot.Frameworks, err = r.complianceFrameworkRepository.ListByTenant(tx, tenant); err != nil {
			return shared.WrapStoreError(err, "could not read compliance frameworks")
		}
		return nil
	}, &sql.TxOptions{Isolation: sql.LevelRepeatableRead, ReadOnly: true})
	if err != nil {
		return scoring.Snapshot{}, shared.WrapStoreError(err, "could not read snapshot")
	}
	return snapshot, nil
}

// Tenants returns every tenant owning at least one record.
func (r *snapshotRepository) Tenants(ctx context.Context) ([]string, error) {
	db := r.db.WithContext(ctx)
	tenants := []string{}
	for _, list := range []func(tx shared.DB) ([]string, error){
		r.vulnerabilityRepository.Tenants,
		r.incidentRepository.Tenants,
		r.complianceFrameworkRepository.Tenants,
	} {
		t, err := list(db)
		if err != nil {
			return nil, shared.WrapStoreError(err, "could not read tenants")
		}
		tenants = append(tenants, t...)
	}
	slices.Sort(tenants)
	return slices.Compact(tenants), nil
}
