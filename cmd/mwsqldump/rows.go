package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

func newRowsCommand() *cobra.Command {
	var table string
	var compress string
	cmd := &cobra.Command{
		Use:   "rows <dump-file>",
		Short: "Print every row of one table from a MediaWiki SQL dump as JSON Lines",
		Long: "Print every row of one table from a MediaWiki SQL dump as JSON Lines.\n" +
			"The dump file may be plain, .gz or .bz2, and may be given as a local\n" +
			"path or an s3://bucket/key URL.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if table == "" {
				return fmt.Errorf("--table is required; known tables: %s", strings.Join(sortedTableNames(), ", "))
			}
			dumper, ok := lookupTable(table)
			if !ok {
				return fmt.Errorf("unknown table %q; known tables: %s", table, strings.Join(sortedTableNames(), ", "))
			}

			runID := uuid.New()
			logger.Printf("rows run=%s table=%s starting", runID, table)

			ctx := context.Background()
			local := args[0]
			if _, _, isS3 := parseS3URL(local); isS3 {
				client, err := newS3Client()
				if err != nil {
					return errors.Wrapf(err, "run=%s", runID)
				}
				resolved, cleanup, err := resolveSource(ctx, local, client)
				if err != nil {
					return errors.Wrapf(err, "run=%s", runID)
				}
				defer cleanup()
				local = resolved
			}

			n, err := runRows(local, dumper, cmd.OutOrStdout(), compress)
			logger.Printf("rows run=%s table=%s wrote=%d err=%v", runID, table, n, err)
			return err
		},
	}
	cmd.Flags().StringVar(&table, "table", "", "name of the MediaWiki table to extract, e.g. \"page\"")
	cmd.Flags().StringVar(&compress, "compress", "none", "output compression: none, zstd, or brotli")
	return cmd
}

// runRows parses dump file path and writes one JSON Lines record per
// row to out, optionally compressed per the compress flag ("none",
// "zstd", or "brotli"). It returns the number of rows written.
func runRows(path string, dump tableDumper, out io.Writer, compress string) (int, error) {
	r, err := openDumpFile(path)
	if err != nil {
		return 0, errors.Wrapf(err, "opening dump %s", path)
	}
	defer r.Close()

	buf, err := io.ReadAll(r)
	if err != nil {
		return 0, errors.Wrapf(err, "reading dump %s", path)
	}

	cw, err := compressingWriteCloser(out, compress)
	if err != nil {
		return 0, err
	}
	w := bufio.NewWriter(cw)
	n := 0
	emit := func(line []byte) error {
		n++
		if _, err := w.Write(line); err != nil {
			return err
		}
		return w.WriteByte('\n')
	}
	if err := dump(buf, emit); err != nil {
		return n, errors.Wrapf(err, "parsing %s", path)
	}
	if err := w.Flush(); err != nil {
		return n, err
	}
	return n, cw.Close()
}

func sortedTableNames() []string {
	names := tableNames()
	sort.Strings(names)
	return names
}
