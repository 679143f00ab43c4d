// Command cyclepattern is a small CLI driver over the pattern engine:
// it queries a pattern-tree over an arc, lists known scale/chord names,
// and persists named pattern descriptions to a bank file on disk. The
// engine package itself stays pull-based and side-effect free; this
// binary is the one place in the module that touches stdout and disk.
package main

import (
	"encoding/json"
	"fmt"
	"log"
	"strconv"

	jsoniter "github.com/json-iterator/go"
	"github.com/spf13/cobra"

	"github.com/schollz/cyclepattern/internal/bank"
	"github.com/schollz/cyclepattern/internal/music"
)

var jsonAPI = jsoniter.ConfigCompatibleWithStandardLibrary

var bankFile string

func main() {
	root := &cobra.Command{
		Use:   "cyclepattern",
		Short: "Query a pattern-tree, list scale/chord tables, or manage a pattern bank",
	}
	root.PersistentFlags().StringVar(&bankFile, "bank-file", "bank.json", "bank file to load/save named pattern trees from")

	root.AddCommand(newQueryCommand())
	root.AddCommand(newScalesCommand())
	root.AddCommand(newChordsCommand())
	root.AddCommand(newBankCommand())

	if err := root.Execute(); err != nil {
		log.Fatalf("cyclepattern: %v", err)
	}
}

func newQueryCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "query <bank-entry-or-inline-json> <begin> <end>",
		Short: "Query a pattern-tree over an arc and print its events as JSON",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			begin, err := strconv.ParseFloat(args[1], 64)
			if err != nil {
				return fmt.Errorf("invalid begin %q: %w", args[1], err)
			}
			end, err := strconv.ParseFloat(args[2], 64)
			if err != nil {
				return fmt.Errorf("invalid end %q: %w", args[2], err)
			}

			raw, err := resolveTree(args[0])
			if err != nil {
				return err
			}

			p, err := parseTree(raw)
			if err != nil {
				return err
			}

			evs := p.QueryArc(begin, end)
			out := make([]eventJSON, len(evs))
			for i, e := range evs {
				out[i] = eventJSON{
					Begin: e.Part.Begin.Float64(),
					End:   e.Part.End.Float64(),
					Onset: e.HasOnset(),
					Value: e.Value,
				}
			}

			enc := jsonAPI.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(out)
		},
	}
}

type eventJSON struct {
	Begin float64 `json:"begin"`
	End   float64 `json:"end"`
	Onset bool    `json:"onset"`
	Value string  `json:"value"`
}

// resolveTree accepts either a bank entry name or an inline JSON document
// (detected by its leading '{') and returns the raw tree bytes.
func resolveTree(arg string) ([]byte, error) {
	if len(arg) > 0 && arg[0] == '{' {
		return []byte(arg), nil
	}
	b, err := bank.Load(bankFile)
	if err != nil {
		return nil, err
	}
	e, ok := b.Get(arg)
	if !ok {
		return nil, fmt.Errorf("no bank entry named %q in %s", arg, bankFile)
	}
	return e.Tree, nil
}

func newScalesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "scales",
		Short: "List known scale names",
		RunE: func(cmd *cobra.Command, args []string) error {
			names := music.GetScaleNames()
			for _, n := range names {
				fmt.Fprintln(cmd.OutOrStdout(), n)
			}
			return nil
		},
	}
}

func newChordsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "chords",
		Short: "List recognised chord token forms",
		RunE: func(cmd *cobra.Command, args []string) error {
			examples := []string{"C", "Cm", "C7", "Cm7", "C9", "Cm9", "C4", "F/A"}
			for _, e := range examples {
				fmt.Fprintln(cmd.OutOrStdout(), e)
			}
			return nil
		},
	}
}

func newBankCommand() *cobra.Command {
	bankCmd := &cobra.Command{
		Use:   "bank",
		Short: "Manage a named library of pattern-tree descriptions",
	}

	var description string
	addCmd := &cobra.Command{
		Use:   "add <name> <json-tree>",
		Short: "Add or overwrite a named pattern-tree entry",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := parseTree([]byte(args[1])); err != nil {
				return err
			}
			b, err := bank.Load(bankFile)
			if err != nil {
				return err
			}
			b.Add(bank.Entry{Name: args[0], Description: description, Tree: json.RawMessage(args[1])})
			return bank.Save(bankFile, b)
		},
	}
	addCmd.Flags().StringVar(&description, "description", "", "human-readable description of this entry")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List bank entry names",
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := bank.Load(bankFile)
			if err != nil {
				return err
			}
			for _, name := range b.List() {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
			return nil
		},
	}

	showCmd := &cobra.Command{
		Use:   "show <name>",
		Short: "Print a bank entry's stored pattern tree",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := bank.Load(bankFile)
			if err != nil {
				return err
			}
			e, ok := b.Get(args[0])
			if !ok {
				return fmt.Errorf("no bank entry named %q", args[0])
			}
			fmt.Fprintf(cmd.OutOrStdout(), "name: %s\n", e.Name)
			if e.Description != "" {
				fmt.Fprintf(cmd.OutOrStdout(), "description: %s\n", e.Description)
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(e.Tree))
			return nil
		},
	}

	bankCmd.AddCommand(addCmd, listCmd, showCmd)
	return bankCmd
}
