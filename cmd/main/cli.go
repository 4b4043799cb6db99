package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/Houeta/label-flow/internal/export"
	"github.com/Houeta/label-flow/internal/models"
	"github.com/Houeta/label-flow/internal/parser"
	"github.com/Houeta/label-flow/internal/pricing"
	"github.com/Houeta/label-flow/internal/services/checker"
	"github.com/spf13/cobra"
)

var errSkippedLines = errors.New("some lines were not recognized")

func newParseCmd() *cobra.Command {
	var strict bool

	cmd := &cobra.Command{
		Use:   "parse [file]",
		Short: "Print the products found in a price list",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := readInput(cmd, args)
			if err != nil {
				return err
			}

			res := parser.ParseText(text)
			out := cmd.OutOrStdout()
			for _, p := range res.Products {
				fmt.Fprintf(out, "%s\t%s\t%s\n", p.Code, p.Name, p.Price)
			}
			reportSkipped(cmd.ErrOrStderr(), res.Skipped)

			if strict && len(res.Skipped) > 0 {
				return fmt.Errorf("%w: %d", errSkippedLines, len(res.Skipped))
			}

			return nil
		},
	}
	cmd.Flags().BoolVar(&strict, "strict", false, "fail when any non-blank line is not a product")

	return cmd
}

func newDiffCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "diff <old> <new>",
		Short: "List new products and price changes between two price lists",
		Args:  cobra.ExactArgs(2), //nolint:mnd // old and new
		RunE: func(cmd *cobra.Command, args []string) error {
			oldText, err := readFile(cmd, args[0])
			if err != nil {
				return err
			}
			newText, err := readFile(cmd, args[1])
			if err != nil {
				return err
			}

			res := checker.Compare(oldText, newText)
			out := cmd.OutOrStdout()
			for _, ch := range res.Changes {
				p := ch.Product
				if ch.Type == models.ChangePriceChange {
					fmt.Fprintf(out, "%s\t%s\t%s\t%s\t%s\n", ch.Type, p.Code, p.Name, ch.OldPrice, p.Price)
					continue
				}
				fmt.Fprintf(out, "%s\t%s\t%s\t\t%s\n", ch.Type, p.Code, p.Name, p.Price)
			}
			reportSkipped(cmd.ErrOrStderr(), res.Skipped)

			return nil
		},
	}
}

func newDiscountCmd() *cobra.Command {
	var percent int

	cmd := &cobra.Command{
		Use:   "discount [file]",
		Short: "Discount every product of a price list and print it in export format",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := readInput(cmd, args)
			if err != nil {
				return err
			}

			products := parser.ParseLines(text)
			for i, p := range products {
				if products[i], err = pricing.ApplyDiscount(p, percent); err != nil {
					return fmt.Errorf("product %s: %w", p.Code, err)
				}
			}

			_, err = io.WriteString(cmd.OutOrStdout(), export.FormatList(products))
			return err
		},
	}
	cmd.Flags().IntVarP(&percent, "percent", "p", 10, "discount percentage, 0-100") //nolint:mnd // default offer

	return cmd
}

func newExportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "export [file]",
		Short: "Rewrite a price list in the fixed-width export format",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := readInput(cmd, args)
			if err != nil {
				return err
			}

			_, err = io.WriteString(cmd.OutOrStdout(), export.FormatList(parser.ParseLines(text)))
			return err
		},
	}
}

// readInput reads the optional file argument, stdin when absent.
func readInput(cmd *cobra.Command, args []string) (string, error) {
	if len(args) == 0 {
		return readFile(cmd, "-")
	}

	return readFile(cmd, args[0])
}

func readFile(cmd *cobra.Command, name string) (string, error) {
	if name == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", fmt.Errorf("failed to read stdin: %w", err)
		}
		return string(data), nil
	}

	data, err := os.ReadFile(name)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", name, err)
	}

	return string(data), nil
}

func reportSkipped(w io.Writer, skipped []models.SkippedLine) {
	for _, line := range skipped {
		fmt.Fprintf(w, "skipped line %d: %s (%s)\n", line.Number, line.Text, line.Reason)
	}
}
