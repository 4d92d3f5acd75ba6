package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sznuper/nsbt/internal/scaffold"
)

var initCmd = &cobra.Command{
	Use:   "init <project_name>",
	Short: "Create a standard NS-3 project directory layout",
	Long: "Generates the standard directory structure for an NS-3 based simulation project: " +
		"a placeholder for the simulator source, plus simulations, results, analysis, plots and doc directories.",
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		version, _ := cmd.Flags().GetString("ns3-version")
		output, _ := cmd.Flags().GetString("output")

		root, err := scaffold.Create(scaffold.Project{
			Name:       args[0],
			NS3Version: version,
			OutputDir:  output,
		})
		if err != nil {
			return err
		}

		fmt.Printf("Project %q created at %s\n", args[0], root)
		fmt.Println("Read README.md and the about_folder.md files for details.")
		return nil
	},
}

func init() {
	initCmd.Flags().String("ns3-version", "3.43", "NS-3 version the project layout targets")
	initCmd.Flags().StringP("output", "o", ".", "directory to create the project in")
	rootCmd.AddCommand(initCmd)
}
