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
	"log/slog"

	"github.com/l3montree-dev/postureguard/database"
	"github.com/l3montree-dev/postureguard/shared"
	"github.com/spf13/cobra"
	"go.uber.org/fx"
)

func NewMigrateCommand() *cobra.Command {
	migrate := &cobra.Command{
		Use:   "migrate",
		Short: "Runs all pending database migrations",
		Args:  cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			var db shared.DB
			return withApp(cmd.Context(), func(ctx context.Context) error {
				if err := database.RunMigrationsWithDB(db); err != nil {
					return err
				}
				version, dirty, err := database.GetMigrationVersionWithDB(db)
				if err != nil {
					return err
				}
				slog.Info("database migrated", "version", version, "dirty", dirty)
				return nil
			}, fx.Populate(&db))
		},
	}

	migrate.AddCommand(newRollbackCommand())
	return migrate
}

func newRollbackCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "rollback",
		Short: "Rolls back the last database migration",
		Args:  cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			var db shared.DB
			return withApp(cmd.Context(), func(ctx context.Context) error {
				if err := database.RollbackLastMigration(db); err != nil {
					return err
				}
				slog.Info("rolled back the last migration")
				return nil
			}, fx.Populate(&db))
		},
	}
}
