package main

import (
	"bytes"
	"fmt"
	"io"
	"sort"
	"sync"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

func newStatsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats <dump-file>...",
		Short: "Count rows per table across one or more MediaWiki SQL dumps",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			runID := uuid.New()
			logger.Printf("stats run=%s files=%d starting", runID, len(args))
			counts, err := runStats(args)
			logger.Printf("stats run=%s done err=%v", runID, err)
			if err != nil {
				return err
			}
			names := make([]string, 0, len(counts))
			for name := range counts {
				names = append(names, name)
			}
			sort.Strings(names)
			out := cmd.OutOrStdout()
			for _, name := range names {
				fmt.Fprintf(out, "%s\t%d\n", name, counts[name])
			}
			return nil
		},
	}
	return cmd
}

// runStats parses every file in paths concurrently, detecting which
// known table each dump holds by its first INSERT INTO statement, and
// returns the total row count per table name.
func runStats(paths []string) (map[string]int, error) {
	var mu sync.Mutex
	counts := make(map[string]int)

	g := new(errgroup.Group)
	for _, path := range paths {
		path := path
		g.Go(func() error {
			table, n, err := statFile(path)
			if err != nil {
				return errors.Wrapf(err, "processing %s", path)
			}
			mu.Lock()
			counts[table] += n
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return counts, nil
}

func statFile(path string) (string, int, error) {
	r, err := openDumpFile(path)
	if err != nil {
		return "", 0, err
	}
	defer r.Close()

	buf, err := io.ReadAll(r)
	if err != nil {
		return "", 0, err
	}

	table, ok := detectTable(buf)
	if !ok {
		return "", 0, fmt.Errorf("%s: no known table name found in INSERT INTO statement", path)
	}
	dump, ok := tableDumpers[table]
	if !ok {
		return "", 0, fmt.Errorf("%s: table %q is not supported", path, table)
	}

	n := 0
	err = dump(buf, func([]byte) error {
		n++
		return nil
	})
	if err != nil {
		return "", 0, err
	}
	return table, n, nil
}

// detectTable scans buf for the first `INSERT INTO \`name\`` occurrence
// and returns name if it names a table mwsqldump supports.
func detectTable(buf []byte) (string, bool) {
	const marker = "INSERT INTO `"
	idx := bytes.Index(buf, []byte(marker))
	if idx < 0 {
		return "", false
	}
	start := idx + len(marker)
	end := bytes.IndexByte(buf[start:], '`')
	if end < 0 {
		return "", false
	}
	name := string(buf[start : start+end])
	_, ok := tableDumpers[name]
	return name, ok
}
