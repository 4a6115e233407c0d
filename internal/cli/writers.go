package cli

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/radrob2/diskwatchdog/internal/state"
	"github.com/radrob2/diskwatchdog/internal/writer"
	"github.com/radrob2/diskwatchdog/pkg/types"
)

func newWritersCmd(g *globals) *cobra.Command {
	return &cobra.Command{
		Use:   "writers",
		Short: "Print the currently tracked heavy writers",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWriters(*g)
		},
	}
}

func runWriters(g globals) error {
	l, err := g.load()
	if err != nil {
		return err
	}

	table := writer.NewTable()
	if body, ok, _ := l.stateDir.Read(state.FileKnownWriters); ok {
		table.Unmarshal(body)
	}

	entries := table.Entries()
	sort.Slice(entries, func(i, j int) bool { return entries[i].RankBytes() > entries[j].RankBytes() })

	if len(entries) == 0 {
		fmt.Println("(no writers observed)")
		return nil
	}
	for _, c := range entries {
		fmt.Printf("%-8d %-16s %s\n", c.PID, c.Comm, types.Bytes(uint64(c.RankBytes())).FormatWriter())
	}
	return nil
}
