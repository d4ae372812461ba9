package app

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/interior-site/interior-site/internal/auth"
	"github.com/interior-site/interior-site/internal/db/engine"
)

func init() { //nolint: gochecknoinits
	secretRotateCmd.Flags().StringVar(&newSecret, "new", "", "The new shared secret")
	_ = secretRotateCmd.MarkFlagRequired("new")

	secretCmd.AddCommand(secretRotateCmd)
	rootCmd.AddCommand(secretCmd)
}

var (
	newSecret string

	secretCmd = &cobra.Command{
		Use:   "secret",
		Short: "Manage the shared secret guarding writes",
	}

	secretRotateCmd = &cobra.Command{
		Use:     "rotate",
		Short:   "Replace the shared secret in the database",
		PreRunE: loadConfig,
		RunE: func(cmd *cobra.Command, _ []string) (err error) {
			db, err := engine.Open(&cfg)
			if err != nil {
				return err
			}

			sqlDB, err := db.DB()
			if err != nil {
				return err
			}
			defer func() {
				err = errors.Join(err, sqlDB.Close())
			}()

			if err = engine.Migrate(db); err != nil {
				return err
			}

			guard := auth.NewGuard(db)
			guard.Params = auth.ParamsFromConfig(cfg.Admin)

			if err = guard.Rotate(newSecret); err != nil {
				return err
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), "secret rotated")

			return err
		},
	}
)
