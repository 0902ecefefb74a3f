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

var PostureDaemonDuration = promauto.NewHistogram(prometheus.HistogramOpts{
	Name:    "postureguard_daemon_posture_recomputation_duration_minutes",
	Help:    "Duration of the posture recomputation of all tenants in minutes",
	Buckets: prometheus.DefBuckets,
})

var PostureDaemonTenantsAmount = promauto.NewCounter(prometheus.CounterOpts{
	Name: "postureguard_daemon_posture_tenants_amount",
	Help: "The total number of tenants processed by the posture daemon",
})

var PostureDaemonTenantsSuccess = promauto.NewCounter(prometheus.CounterOpts{
	Name: "postureguard_daemon_posture_tenants_success",
	Help: "The total number of tenants successfully processed by the posture daemon",
})
