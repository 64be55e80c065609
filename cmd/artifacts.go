/*
Copyright © 2026 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/smartinvest/apiserver/config"
	"github.com/smartinvest/apiserver/internal/model"
	"github.com/smartinvest/apiserver/internal/storage"
	"github.com/spf13/cobra"
)

// artifactsCmd represents the artifacts command.
var artifactsCmd = &cobra.Command{
	Use:   "artifacts",
	Short: "Manage model artifacts",
}

var artifactsPushCmd = &cobra.Command{
	Use:   "push <dir>",
	Short: "Upload a local artifact directory to the configured object store",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.LoadConfig()

		store, err := storage.NewFromConfig(cmd.Context(), cfg)
		if err != nil {
			return fmt.Errorf("init artifact storage: %w", err)
		}
		if err := store.EnsureBucket(cmd.Context()); err != nil {
			return fmt.Errorf("ensure bucket: %w", err)
		}

		dir := args[0]
		for _, name := range model.ArtifactFiles {
			path := filepath.Join(dir, name)
			f, err := os.Open(path)
			if err != nil {
				return fmt.Errorf("open artifact %s: %w", name, err)
			}
			info, err := f.Stat()
			if err != nil {
				_ = f.Close()
				return fmt.Errorf("stat artifact %s: %w", name, err)
			}
			err = store.Put(cmd.Context(), name, f, info.Size(), "application/json")
			_ = f.Close()
			if err != nil {
				return fmt.Errorf("upload artifact %s: %w", name, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "uploaded %s to %s (%d bytes)\n", name, store.Bucket(), info.Size())
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(artifactsCmd)
	artifactsCmd.AddCommand(artifactsPushCmd)
}
