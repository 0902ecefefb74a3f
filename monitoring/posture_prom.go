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

package monitoring

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var PostureComputationDuration = promauto.NewHistogram(prometheus.HistogramOpts{
	Name:    "postureguard_posture_computation_duration_seconds",
	Help:    "Duration of a posture computation in seconds",
	Buckets: prometheus.DefBuckets,
})

var PostureComputationFailures = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "postureguard_posture_computation_failures_total",
	Help: "The total number of failed posture computations by reason",
}, []string{"reason"})

var PostureOverallScore = promauto.NewGaugeVec(prometheus.GaugeOpts{
	Name: "postureguard_posture_overall_score",
	Help: "The last computed overall score by tenant",
}, []string{"tenant"})

var TrendPointsAppended = promauto.NewCounter(prometheus.CounterOpts{
	Name: "postureguard_trend_points_appended_total",
	Help: "The total number of appended (or replaced) trend points",
})

var TrendPointsEvicted = promauto.NewCounter(prometheus.CounterOpts{
	Name: "postureguard_trend_points_evicted_total",
	Help: "The total number of trend points evicted by the retention window",
})

var ComplianceAssessmentsAmount = promauto.NewCounter(prometheus.CounterOpts{
	Name: "postureguard_compliance_assessments_total",
	Help: "The total number of compliance framework assessments",
})
