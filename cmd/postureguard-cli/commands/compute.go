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
	"context"

	"github.com/l3montree-dev/postureguard/services"
	"github.com/l3montree-dev/postureguard/shared"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

func NewComputeCommand() *cobra.Command {
	compute := &cobra.Command{
		Use:   "compute",
		Short: "Computes the security posture of a tenant",
		Long:  `Computes the security posture of a tenant and appends today's trend point. With --no-trend nothing is written.`,
		Args:  cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			tenant, _ := cmd.Flags().GetString("tenant")
			noTrend, _ := cmd.Flags().GetBool("no-trend")
			profileFile, _ := cmd.Flags().GetString("profile")
			if tenant == "" {
				return errors.New("--tenant is required")
			}
			tenant = shared.NormalizeTenant(tenant)

			profile, err := resolveProfile(profileFile)
			if err != nil {
				return err
			}

			return withPostureService(cmd.Context(), profile, func(ctx context.Context, postureService *services.PostureService) error {
				if noTrend {
					result, err := postureService.GetDashboardStats(ctx, tenant)
					if err != nil {
						return err
					}
					printResult(cmd.OutOrStdout(), result)

					points, err := postureService.GetTrend(ctx, tenant, 0)
					if err != nil {
						return err
					}
					printTrend(cmd.OutOrStdout(), points)
					return nil
				}

				posture, err := postureService.GetSecurityPosture(ctx, tenant)
				if err != nil {
					return err
				}
				printResult(cmd.OutOrStdout(), posture.Result)
				printTrend(cmd.OutOrStdout(), posture.Trend)
				return nil
			})
		},
	}

	compute.Flags().StringP("tenant", "t", "", "The tenant to compute the posture for")
	compute.Flags().Bool("no-trend", false, "Do not append a trend point")
	compute.Flags().String("profile", "", "Path to a scoring profile yaml file")
	return compute
}

func NewTrendCommand() *cobra.Command {
	trend := &cobra.Command{
		Use:   "trend",
		Short: "Prints the trend series of a tenant",
		Args:  cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			tenant, _ := cmd.Flags().GetString("tenant")
			days, _ := cmd.Flags().GetInt("days")
			if tenant == "" {
				return errors.New("--tenant is required")
			}
			if days < 0 {
				return errors.New("--days must not be negative")
			}
			tenant = shared.NormalizeTenant(tenant)

			profile, err := resolveProfile("")
			if err != nil {
				return err
			}

			return withPostureService(cmd.Context(), profile, func(ctx context.Context, postureService *services.PostureService) error {
				points, err := postureService.GetTrend(ctx, tenant, days)
				if err != nil {
					return err
				}
				printTrend(cmd.OutOrStdout(), points)
				return nil
			})
		},
	}

	trend.Flags().StringP("tenant", "t", "", "The tenant to print the trend for")
	trend.Flags().IntP("days", "d", 0, "Window in days, 0 uses the default window of the scoring profile")
	return trend
}
