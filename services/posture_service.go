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
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/l3montree-dev/postureguard/config"
	"github.com/l3montree-dev/postureguard/database/models"
	"github.com/l3montree-dev/postureguard/dtos"
	"github.com/l3montree-dev/postureguard/monitoring"
	"github.com/l3montree-dev/postureguard/scoring"
	"github.com/l3montree-dev/postureguard/shared"
	"github.com/l3montree-dev/postureguard/utils"
	"github.com/pkg/errors"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/singleflight"
	"gorm.io/datatypes"
)

const (
	lastKnownCacheSize = 1024

	// joins of a shared computation before the caller gives up on foreign context errors
	maxSharedAttempts = 3
)

type PostureService struct {
	snapshotRepository shared.SnapshotRepository
	trendService       shared.TrendService
	engine             *scoring.Engine
	// nil if postures are not shared with other instances
	broker shared.PubSubBroker

	lastKnown         *lru.Cache[string, shared.Posture]
	singleFlightGroup *singleflight.Group
}

func NewPostureService(snapshotRepository shared.SnapshotRepository, trendService shared.TrendService, profile config.ScoringProfile, broker shared.PubSubBroker) *PostureService {
	cache, err := lru.New[string, shared.Posture](lastKnownCacheSize)
	if err != nil {
		panic(err)
	}
	return &PostureService{
		snapshotRepository: snapshotRepository,
		trendService:       trendService,
		engine:             scoring.NewEngine(profile),
		broker:             broker,
		lastKnown:          cache,
		singleFlightGroup:  &singleflight.Group{},
	}
}

// trendBreakdown is stored with every trend point as provenance of its value.
type trendBreakdown struct {
	VulnerabilityPenalties []scoring.Penalty         `json:"vulnerabilityPenalties"`
	IncidentPenalties      []scoring.Penalty         `json:"incidentPenalties"`
	Frameworks             []scoring.FrameworkResult `json:"frameworks"`
}

func trendPointFromResult(result scoring.Result) (models.TrendPoint, error) {
	breakdown, err := json.Marshal(trendBreakdown{
		VulnerabilityPenalties: result.Vulnerabilities.Penalties,
		IncidentPenalties:      result.Incidents.Penalties,
		Frameworks:             result.Compliance.Frameworks,
	})
	if err != nil {
		return models.TrendPoint{}, errors.Wrap(err, "could not marshal score breakdown")
	}
	return models.TrendPoint{
		Tenant:             result.Tenant,
		Day:                result.ComputedAt,
		Value:              result.OverallScore,
		RiskLevel:          result.RiskLevel,
		VulnerabilityScore: result.Vulnerabilities.Score,
		IncidentScore:      result.Incidents.Score,
		ComplianceScore:    result.Compliance.Score,
		Breakdown:          datatypes.JSON(breakdown),
	}, nil
}

// failureReason labels a failed computation for the failures metric.
func failureReason(err error) string {
	switch {
	case errors.Is(err, scoring.ErrInvalidRecord):
		return "invalid_record"
	case errors.Is(err, shared.ErrStoreUnavailable):
		return "store_unavailable"
	case errors.Is(err, context.DeadlineExceeded):
		return "deadline_exceeded"
	case errors.Is(err, context.Canceled):
		return "canceled"
	default:
		return "unknown"
	}
}

func endSpan(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}

// score reads a consistent snapshot of the tenant and scores it.
func (s *PostureService) score(ctx context.Context, tenant string) (scoring.Result, error) {
	snapshotCtx, span := monitoring.Tracer().Start(ctx, "snapshot")
	snapshot, err := s.snapshotRepository.ReadSnapshot(snapshotCtx, tenant)
	endSpan(span, err)
	if err != nil {
		return scoring.Result{}, errors.Wrap(err, "could not read snapshot")
	}

	_, span = monitoring.Tracer().Start(ctx, "score", trace.WithAttributes(
		attribute.Int("vulnerabilities", len(snapshot.Vulnerabilities)),
		attribute.Int("incidents", len(snapshot.Incidents)),
		attribute.Int("frameworks", len(snapshot.Frameworks)),
	))
	result, err := s.engine.Score(snapshot)
	if err == nil {
		span.SetAttributes(
			attribute.Float64("overallScore", result.OverallScore),
			attribute.String("riskLevel", string(result.RiskLevel)),
		)
	}
	endSpan(span, err)
	if err != nil {
		return scoring.Result{}, err
	}
	return result, nil
}

func (s *PostureService) computePosture(ctx context.Context, tenant string) (posture shared.Posture, err error) {
	start := time.Now()
	ctx, span := monitoring.Tracer().Start(ctx, "posture.compute", trace.WithAttributes(attribute.String("tenant", tenant)))
	defer func() {
		endSpan(span, err)
		if err != nil {
			monitoring.PostureComputationFailures.WithLabelValues(failureReason(err)).Inc()
		}
	}()

	result, err := s.score(ctx, tenant)
	if err != nil {
		return shared.Posture{}, err
	}

	// a caller which gave up must not leave a trend point behind
	if err := ctx.Err(); err != nil {
		return shared.Posture{}, errors.Wrap(err, "posture computation aborted before trend write")
	}

	point, err := trendPointFromResult(result)
	if err != nil {
		return shared.Posture{}, err
	}
	appendCtx, appendSpan := monitoring.Tracer().Start(ctx, "trend.append")
	err = s.trendService.AppendSnapshot(appendCtx, point)
	endSpan(appendSpan, err)
	if err != nil {
		return shared.Posture{}, err
	}

	readCtx, readSpan := monitoring.Tracer().Start(ctx, "trend.read")
	trend, err := s.trendService.GetSeries(readCtx, tenant, 0)
	endSpan(readSpan, err)
	if err != nil {
		return shared.Posture{}, err
	}

	posture = shared.Posture{Result: result, Trend: trend}
	s.remember(posture)
	s.publish(ctx, posture)

	monitoring.PostureComputationDuration.Observe(time.Since(start).Seconds())
	monitoring.PostureOverallScore.WithLabelValues(tenant).Set(result.OverallScore)
	return posture, nil
}

// GetSecurityPosture scores the current records of the tenant, appends the score as today's trend point
// and returns it together with the default trend window.
// Concurrent calls for the same tenant share one computation. A shared computation runs with the
// context of the caller which started it; if that caller gives up, callers still waiting start over.
func (s *PostureService) GetSecurityPosture(ctx context.Context, tenant string) (shared.Posture, error) {
	for attempt := 1; ; attempt++ {
		ch := s.singleFlightGroup.DoChan("posture/"+tenant, func() (any, error) {
			return s.computePosture(ctx, tenant)
		})

		select {
		case <-ctx.Done():
			return shared.Posture{}, errors.Wrap(ctx.Err(), "stopped waiting for the posture computation")
		case res := <-ch:
			if res.Err == nil {
				return res.Val.(shared.Posture), nil
			}
			if attempt < maxSharedAttempts && ctx.Err() == nil && isContextError(res.Err) {
				slog.Debug("shared posture computation was aborted by another caller, retrying", "tenant", tenant, "attempt", attempt)
				continue
			}
			return shared.Posture{}, res.Err
		}
	}
}

func isContextError(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}

// GetDashboardStats scores the current records without touching the trend series.
func (s *PostureService) GetDashboardStats(ctx context.Context, tenant string) (scoring.Result, error) {
	ctx, span := monitoring.Tracer().Start(ctx, "posture.stats", trace.WithAttributes(attribute.String("tenant", tenant)))
	result, err := s.score(ctx, tenant)
	endSpan(span, err)
	if err != nil {
		monitoring.PostureComputationFailures.WithLabelValues(failureReason(err)).Inc()
		return scoring.Result{}, err
	}
	return result, nil
}

func (s *PostureService) GetTrend(ctx context.Context, tenant string, windowDays int) ([]models.TrendPoint, error) {
	return s.trendService.GetSeries(ctx, tenant, windowDays)
}

// GetLastKnownPosture returns the newest posture computed by this or another instance.
func (s *PostureService) GetLastKnownPosture(tenant string) (shared.Posture, bool) {
	return s.lastKnown.Get(tenant)
}

func (s *PostureService) Tenants(ctx context.Context) ([]string, error) {
	recordTenants, err := s.snapshotRepository.Tenants(ctx)
	if err != nil {
		return nil, err
	}
	trendTenants, err := s.trendService.Tenants(ctx)
	if err != nil {
		return nil, err
	}
	return mergeTenants(recordTenants, trendTenants), nil
}

func mergeTenants(lists ...[]string) []string {
	seen := make(map[string]struct{})
	tenants := []string{}
	for _, list := range lists {
		for _, tenant := range list {
			if _, ok := seen[tenant]; ok {
				continue
			}
			seen[tenant] = struct{}{}
			tenants = append(tenants, tenant)
		}
	}
	return tenants
}

// remember stores the posture unless a newer one is already known.
func (s *PostureService) remember(posture shared.Posture) {
	if known, ok := s.lastKnown.Peek(posture.Tenant); ok && known.ComputedAt.After(posture.ComputedAt) {
		return
	}
	s.lastKnown.Add(posture.Tenant, posture)
}

func (s *PostureService) publish(ctx context.Context, posture shared.Posture) {
	if s.broker == nil {
		return
	}
	payload, err := postureToPayload(posture)
	if err != nil {
		slog.Error("could not serialize posture", "tenant", posture.Tenant, "err", err)
		return
	}
	if err := s.broker.Publish(ctx, shared.NewSimplePubSubMessage(shared.PostureComputed, payload)); err != nil {
		// the posture is computed and stored, other instances just keep an older last known posture
		slog.Warn("could not publish computed posture", "tenant", posture.Tenant, "err", err)
	}
}

// SyncLastKnownPostures keeps the last known postures up to date with the computations of other instances.
// It returns when ctx is done or the subscription is closed.
func (s *PostureService) SyncLastKnownPostures(ctx context.Context) error {
	if s.broker == nil {
		return nil
	}
	messages, err := s.broker.Subscribe(shared.PostureComputed)
	if err != nil {
		return errors.Wrap(err, "could not subscribe to computed postures")
	}
	for {
		select {
		case <-ctx.Done():
			return nil
		case payload, ok := <-messages:
			if !ok {
				return nil
			}
			posture, err := postureFromPayload(payload)
			if err != nil {
				slog.Warn("received invalid posture", "err", err)
				continue
			}
			s.remember(posture)
		}
	}
}

// postureMessage is the compact posture sent to other instances.
// NOTIFY payloads are limited to 8000 bytes, so penalties and breakdowns stay local.
type postureMessage struct {
	Tenant             string               `json:"tenant"`
	ComputedAt         time.Time            `json:"computedAt"`
	OverallScore       float64              `json:"overallScore"`
	RiskLevel          dtos.RiskLevel       `json:"riskLevel"`
	VulnerabilityScore float64              `json:"vulnerabilityScore"`
	IncidentScore      float64              `json:"incidentScore"`
	ComplianceScore    float64              `json:"complianceScore"`
	ComplianceMean     float64              `json:"complianceMean"`
	Counts             scoring.Counts       `json:"counts"`
	Trend              []dtos.TrendPointDTO `json:"trend"`
}

func postureToPayload(posture shared.Posture) (map[string]any, error) {
	b, err := json.Marshal(postureMessage{
		Tenant:             posture.Tenant,
		ComputedAt:         posture.ComputedAt,
		OverallScore:       posture.OverallScore,
		RiskLevel:          posture.RiskLevel,
		VulnerabilityScore: posture.Vulnerabilities.Score,
		IncidentScore:      posture.Incidents.Score,
		ComplianceScore:    posture.Compliance.Score,
		ComplianceMean:     posture.Compliance.Mean,
		Counts:             posture.Counts,
		Trend: utils.Map(posture.Trend, func(p models.TrendPoint) dtos.TrendPointDTO {
			return dtos.TrendPointDTO{Date: p.Day.Format(time.DateOnly), Value: p.Value}
		}),
	})
	if err != nil {
		return nil, err
	}
	payload := map[string]any{}
	return payload, json.Unmarshal(b, &payload)
}

func postureFromPayload(payload map[string]any) (shared.Posture, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return shared.Posture{}, err
	}
	var msg postureMessage
	if err := json.Unmarshal(b, &msg); err != nil {
		return shared.Posture{}, err
	}
	if msg.Tenant == "" {
		return shared.Posture{}, fmt.Errorf("posture without tenant")
	}

	trend := make([]models.TrendPoint, 0, len(msg.Trend))
	for _, p := range msg.Trend {
		day, err := time.Parse(time.DateOnly, p.Date)
		if err != nil {
			return shared.Posture{}, errors.Wrapf(err, "invalid trend date %q", p.Date)
		}
		trend = append(trend, models.TrendPoint{Tenant: msg.Tenant, Day: day, Value: p.Value})
	}

	return shared.Posture{
		Result: scoring.Result{
			Tenant:          msg.Tenant,
			ComputedAt:      msg.ComputedAt,
			OverallScore:    msg.OverallScore,
			RiskLevel:       msg.RiskLevel,
			Vulnerabilities: scoring.VulnScore{Score: msg.VulnerabilityScore},
			Incidents:       scoring.IncidentScore{Score: msg.IncidentScore},
			Compliance:      scoring.ComplianceScore{Score: msg.ComplianceScore, Mean: msg.ComplianceMean},
			Counts:          msg.Counts,
		},
		Trend: trend,
	}, nil
}
