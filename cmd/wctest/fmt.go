package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/wctest-dev/wctest/pkg/serialize"
)

func fmtCmd() *cobra.Command {
	var write bool

	cmd := &cobra.Command{
		Use:   "fmt [files...]",
		Short: "Pretty-print HTML fixtures",
		Long: `Pretty-print HTML fixture files, or stdin when no files are given.

The output format is the one failing assertions use for their diffs,
so formatted fixtures line up visually with matcher output.

Examples:
  wctest fmt fixture.html
  wctest fmt --write testdata/*.html
  cat fixture.html | wctest fmt`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFmt(args, write)
		},
	}

	cmd.Flags().BoolVarP(&write, "write", "w", false, "Rewrite files in place instead of printing")

	return cmd
}

func runFmt(files []string, write bool) error {
	if len(files) == 0 {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return err
		}
		fmt.Println(serialize.Prettify(string(data)))
		return nil
	}

	for _, file := range files {
		data, err := os.ReadFile(file)
		if err != nil {
			return err
		}
		pretty := serialize.Prettify(string(data)) + "\n"
		if write {
			if err := os.WriteFile(file, []byte(pretty), 0o644); err != nil {
				return err
			}
			continue
		}
		if len(files) > 1 {
			fmt.Printf("==> %s\n", file)
		}
		fmt.Print(pretty)
	}
	return nil
}
