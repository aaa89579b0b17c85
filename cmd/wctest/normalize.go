package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	harness "github.com/wctest-dev/wctest/internal/errors"
	"github.com/wctest-dev/wctest/pkg/dom"
	"github.com/wctest-dev/wctest/pkg/serialize"
)

func normalizeCmd() *cobra.Command {
	var parse bool

	cmd := &cobra.Command{
		Use:   "normalize [files...]",
		Short: "Reduce markup to the canonical comparison form",
		Long: `Print the single-line canonical form the structural matchers compare.

With --parse the input is first run through the fragment parser and
re-serialized, which also canonicalizes attribute quoting and entity
encoding the way a live-node comparison would.

Examples:
  wctest normalize fixture.html
  cat fixture.html | wctest normalize --parse`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runNormalize(args, parse)
		},
	}

	cmd.Flags().BoolVarP(&parse, "parse", "p", false, "Parse and re-serialize before normalizing")

	return cmd
}

func runNormalize(files []string, parse bool) error {
	emit := func(markup string) error {
		if parse {
			frag, err := dom.ParseFragment(markup)
			if err != nil {
				return harness.New("P001", harness.CategorySerialize, "markup does not parse").
					Wrap(err).
					WithSuggestion("check the input for truncated or malformed tags")
			}
			markup = serialize.Serialize(frag, serialize.Compact())
		}
		fmt.Println(serialize.Normalize(markup))
		return nil
	}

	if len(files) == 0 {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return err
		}
		return emit(string(data))
	}

	for _, file := range files {
		data, err := os.ReadFile(file)
		if err != nil {
			return err
		}
		if len(files) > 1 {
			fmt.Printf("==> %s\n", file)
		}
		if err := emit(string(data)); err != nil {
			return err
		}
	}
	return nil
}
