// formsync is a debugging harness around the form synchronization core: it
// runs raw JSON records through the transform/validate pipeline, dumps the
// enum catalog, and reports workflow step accessibility for a given data
// snapshot. The core never depends on this tool.
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/paramvora-homewiz/formsync/enums"
	"github.com/paramvora-homewiz/formsync/pipeline"
	"github.com/paramvora-homewiz/formsync/transform"
	"github.com/paramvora-homewiz/formsync/utils"
	"github.com/paramvora-homewiz/formsync/validate"
	"github.com/paramvora-homewiz/formsync/workflow"
)

func main() {
	_ = godotenv.Load()
	utils.InitLogger("formsync")

	rootCmd := &cobra.Command{
		Use:           "formsync",
		Short:         "HomeWiz form synchronization tools",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	rootCmd.AddCommand(
		checkCmd(),
		enumsCmd(),
		stepsCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

type checkOutput struct {
	Record any             `json:"record"`
	Result validate.Result `json:"result"`
}

func checkCmd() *cobra.Command {
	var file string
	cmd := &cobra.Command{
		Use:   "check <entity>",
		Short: "Run a raw JSON form record through transform and validate",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := readInput(file)
			if err != nil {
				return err
			}
			var raw transform.RawRecord
			if err := json.Unmarshal(data, &raw); err != nil {
				return errors.Wrap(err, "parse input record")
			}
			rec, res, err := pipeline.Process(args[0], raw)
			if err != nil {
				return err
			}
			out, err := json.MarshalIndent(checkOutput{Record: rec, Result: res}, "", "  ")
			if err != nil {
				return errors.Wrap(err, "encode result")
			}
			fmt.Println(string(out))
			if !res.IsValid {
				os.Exit(1)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "read the record from a file instead of stdin")
	return cmd
}

func readInput(file string) ([]byte, error) {
	if file == "" {
		data, err := io.ReadAll(os.Stdin)
		return data, errors.Wrap(err, "read stdin")
	}
	data, err := os.ReadFile(file)
	return data, errors.Wrapf(err, "read %s", file)
}

func enumsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "enums [name]",
		Short: "List the enum catalog, or the values of one enumeration",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				values, err := enums.Values(args[0])
				if err != nil {
					return err
				}
				for _, v := range values {
					fmt.Println(v)
				}
				return nil
			}
			for _, name := range enums.Names() {
				values, _ := enums.Values(name)
				fmt.Printf("%-28s %v\n", name, values)
			}
			return nil
		},
	}
}

func stepsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "steps [step-with-data ...]",
		Short: "Report workflow accessibility given the steps that have data",
		RunE: func(cmd *cobra.Command, args []string) error {
			snapshot := workflow.Snapshot{}
			for _, arg := range args {
				snapshot[workflow.Step(arg)] = []string{"cli"}
			}
			fmt.Printf("%-10s  %-10s  %-8s\n", "Step", "Progress", "Access")
			for _, step := range workflow.Steps() {
				info, _ := workflow.Progress(step)
				access := "locked"
				if workflow.IsAccessible(step, snapshot) {
					access = "open"
				}
				fmt.Printf("%-10s  %d/%d (%.0f%%)  %-8s\n",
					step, info.Position, info.Total, info.Percent, access)
			}
			return nil
		},
	}
}
