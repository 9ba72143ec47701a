package main

import (
	"github.com/spf13/cobra"

	"github.com/wyfcoding/poseidon/internal/server"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the database schema",
	RunE: func(cmd *cobra.Command, _ []string) error {
		rt, err := setup(cmd.Context(), false)
		if err != nil {
			return err
		}
		defer rt.close()
		return server.Migrate(cmd.Context(), rt.db.DB)
	},
}
