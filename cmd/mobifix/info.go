package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/joshuapare/mobikit/pkg/mobi"
)

func init() {
	rootCmd.AddCommand(newInfoCmd())
}

func newInfoCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "info <ebook>",
		Short: "Show MOBI headers and EXTH records",
		Long: `The info command prints the PalmDB name, each MOBI header (primary and,
for combo files, KF8) and its EXTH records.

Example:
  mobifix info book.azw3
  mobifix info book.azw3 --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInfo(args)
		},
	}
	return cmd
}

func runInfo(args []string) error {
	path := args[0]

	printVerbose("Opening ebook: %s\n", path)
	info, err := mobi.Inspect(path)
	if err != nil {
		return fmt.Errorf("failed to inspect ebook: %w", err)
	}

	if jsonOut {
		return printJSON(info)
	}

	printInfo("\nEbook Information:\n")
	printInfo("  File: %s\n", path)
	printInfo("  Name: %s\n", info.Name)
	printInfo("  Size: %s\n", formatSize(info.Size))
	printInfo("  Sections: %d\n", info.Sections)
	if info.Combo {
		printInfo("  Combo: yes (KF8 header at section %d)\n", info.KF8Section)
	} else {
		printInfo("  Combo: no\n")
	}

	colorize := shouldColorize(os.Stdout)
	for _, h := range info.Headers {
		printInfo("\nHeader (section %d):\n", h.Section)
		printInfo("  Title: %s\n", h.Title)
		printInfo("  Version: %d\n", h.Version)
		printInfo("  Encoding: %s\n", encodingName(h.TextEncoding))
		printInfo("  ASIN: %s\n", orNone(h.ASIN))
		printInfo("  Content type: %s\n", orNone(h.CDEType))

		rows := make([][]string, 0, len(h.Records))
		for _, r := range h.Records {
			rows = append(rows, []string{
				strconv.FormatUint(uint64(r.Type), 10),
				r.Name,
				strconv.Itoa(r.Length),
				r.Value,
			})
		}
		printInfo("%s\n", renderTable(
			[]string{"Type", "Name", "Length", "Value"},
			rows,
			[]columnAlignment{alignRight, alignLeft, alignRight, alignLeft},
			colorize,
		))
	}
	return nil
}

func formatSize(size int) string {
	switch {
	case size < 1024:
		return fmt.Sprintf("%d bytes", size)
	case size < 1024*1024:
		return fmt.Sprintf("%.1f KB", float64(size)/1024)
	default:
		return fmt.Sprintf("%.1f MB", float64(size)/(1024*1024))
	}
}

func encodingName(enc uint32) string {
	switch enc {
	case 1252:
		return "Windows-1252"
	case 65001:
		return "UTF-8"
	default:
		return strconv.FormatUint(uint64(enc), 10)
	}
}

func orNone(s string) string {
	if s == "" {
		return "(none)"
	}
	return s
}
