// Command bloodchain runs the BloodChain portal.
//
// @title        BloodChain Portal API
// @version      1.0
// @description  Session, route table, inventory and tracking data of the BloodChain portal.
// @BasePath     /api/v1
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var envFile string

var rootCmd = &cobra.Command{
	Use:   "bloodchain",
	Short: "BloodChain blood donation portal",
	Long: `bloodchain serves the role-based BloodChain portal: landing page,
login and registration, and the Donor, Recipient, Hospital and Admin
dashboards backed by per-session fixture data.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := godotenv.Load(envFile); err != nil {
			if !errors.Is(err, os.ErrNotExist) || cmd.Flags().Changed("env-file") {
				return fmt.Errorf("load %s: %w", envFile, err)
			}
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", ".env", "dotenv file read before the environment")
	rootCmd.AddCommand(serveCmd, routesCmd, seedCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
