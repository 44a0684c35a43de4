package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/joshuapare/mobikit/internal/logger"
	"github.com/joshuapare/mobikit/pkg/mobi"
)

var (
	fixASIN    string
	fixOutput  string
	fixBackup  bool
	fixInPlace bool
)

func init() {
	rootCmd.AddCommand(newFixCmd())
}

func newFixCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fix <ebook> [<output>]",
		Short: "Stamp an ASIN and the EBOK content type into an ebook",
		Long: `The fix command writes the identifier into EXTH records 113 and 504 and
the content type into EXTH 501, in both headers of combo files. Without
--asin a random identifier is generated; urn:uuid:, urn:mobi-asin:,
urn:amazon: and urn:asin: prefixes are stripped.

Example:
  mobifix fix book.azw3 book-fixed.azw3
  mobifix fix --asin B00TEST123 --in-place --backup book.mobi
  mobifix fix book.mobi -o out.mobi --json`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFix(args)
		},
	}
	cmd.Flags().StringVar(&fixASIN, "asin", "", "Identifier to write (default: generated)")
	cmd.Flags().StringVarP(&fixOutput, "output", "o", "", "Output file")
	cmd.Flags().BoolVar(&fixBackup, "backup", false, "Keep the previous output file as <output>.bak")
	cmd.Flags().BoolVar(&fixInPlace, "in-place", false, "Replace the input file")
	return cmd
}

// resolveOutput picks the destination from the positional argument, -o and
// --in-place. An empty result means the input is replaced.
func resolveOutput(args []string) (string, error) {
	out := fixOutput
	if len(args) == 2 {
		if out != "" && out != args[1] {
			return "", errors.New("output given both as argument and with --output")
		}
		out = args[1]
	}
	switch {
	case out != "" && fixInPlace:
		return "", errors.New("--in-place cannot be combined with an output file")
	case out == "" && !fixInPlace:
		return "", errors.New("no output file; pass <output>, --output or --in-place")
	}
	return out, nil
}

func runFix(args []string) error {
	input := args[0]
	output, err := resolveOutput(args)
	if err != nil {
		return err
	}

	opts := &mobi.FixOptions{
		PatchOptions: mobi.PatchOptions{
			Marker: cfg.Patch.Marker,
			Logger: logger.L,
		},
		Identifier:       fixASIN,
		IdentifierLength: cfg.Patch.IdentifierLength,
		Extensions:       cfg.Patch.Extensions,
		Backup:           fixBackup || cfg.Output.Backup,
		FullSync:         cfg.Output.FullSync,
	}

	printVerbose("Patching: %s\n", input)
	res, err := mobi.FixFile(input, output, opts)
	if err != nil {
		logger.L.Error("fix failed", "input", input, "error", err)
		return fmt.Errorf("failed to fix %s: %w", input, err)
	}
	logger.L.Info("fixed", "input", res.Input, "output", res.Output,
		"identifier", res.Identifier, "combo", res.Combo)

	if jsonOut {
		return printJSON(res)
	}

	printInfo("\nFixed %s\n", res.Output)
	printInfo("  Identifier: %s\n", res.Identifier)
	printInfo("  Content type: %s\n", opts.Marker)
	printInfo("  MOBI version: %d\n", res.Version)
	if res.Combo {
		printInfo("  Combo: yes (KF8 header at section %d)\n", res.KF8Section)
	} else {
		printInfo("  Combo: no\n")
	}
	printVerbose("  Size: %d bytes (unchanged)\n", res.Size)
	return nil
}
