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
	"fmt"
	"io"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/l3montree-dev/postureguard/database/models"
	"github.com/l3montree-dev/postureguard/dtos"
	"github.com/l3montree-dev/postureguard/scoring"
	"github.com/l3montree-dev/postureguard/utils"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

func riskLevelLabel(level dtos.RiskLevel) string {
	label := cases.Title(language.English).String(string(level))
	switch level {
	case dtos.RiskLevelLow:
		return text.FgGreen.Sprint(label)
	case dtos.RiskLevelMedium:
		return text.FgYellow.Sprint(label)
	case dtos.RiskLevelHigh:
		return text.FgHiRed.Sprint(label)
	default:
		return text.FgRed.Sprint(label)
	}
}

func printResult(w io.Writer, result scoring.Result) {
	tw := table.NewWriter()
	tw.SetTitle(fmt.Sprintf("Security posture of %s", result.Tenant))
	tw.AppendRows([]table.Row{
		{"Overall score", result.OverallScore},
		{"Risk level", riskLevelLabel(result.RiskLevel)},
		{"Vulnerability score", result.Vulnerabilities.Score},
		{"Incident score", result.Incidents.Score},
		{"Compliance score", result.Compliance.Mean},
		{"Critical alerts", result.Counts.CriticalAlerts},
		{"Open vulnerabilities", result.Counts.OpenVulnerabilities},
		{"Active incidents", result.Counts.ActiveIncidents},
		{"Compliant frameworks", fmt.Sprintf("%d/%d", result.Counts.CompliantFrameworks, result.Counts.Frameworks)},
		{"Computed at", result.ComputedAt.Format(time.RFC3339)},
	})
	fmt.Fprintln(w, tw.Render())

	penalties := result.Penalties()
	if len(penalties) > 0 {
		pw := table.NewWriter()
		pw.SetTitle("Penalties")
		pw.AppendHeader(table.Row{"Kind", "Record", "Reason", "Amount"})
		pw.AppendRows(utils.Map(penalties, func(p scoring.Penalty) table.Row {
			return table.Row{p.Kind, p.RecordID, p.Reason, p.Amount}
		}))
		fmt.Fprintln(w, pw.Render())
	}

	if len(result.Compliance.Frameworks) > 0 {
		fw := table.NewWriter()
		fw.SetTitle("Frameworks")
		fw.AppendHeader(table.Row{"Framework", "Score", "Compliant", "Partially", "Non compliant", "Not assessed", "Not applicable"})
		fw.AppendRows(utils.Map(result.Compliance.Frameworks, func(f scoring.FrameworkResult) table.Row {
			return table.Row{f.Name, f.Score, f.Counts.Compliant, f.Counts.PartiallyCompliant, f.Counts.NonCompliant, f.Counts.NotAssessed, f.Counts.NotApplicable}
		}))
		fmt.Fprintln(w, fw.Render())
	}
}

func printTrend(w io.Writer, points []models.TrendPoint) {
	if len(points) == 0 {
		fmt.Fprintln(w, "no trend points recorded")
		return
	}

	tw := table.NewWriter()
	tw.SetTitle("Trend")
	tw.AppendHeader(table.Row{"Date", "Score", "Risk level"})
	tw.AppendRows(utils.Map(points, func(p models.TrendPoint) table.Row {
		return table.Row{p.Day.Format(time.DateOnly), p.Value, riskLevelLabel(p.RiskLevel)}
	}))
	fmt.Fprintln(w, tw.Render())
}
