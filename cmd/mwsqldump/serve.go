package main

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"sync/atomic"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
)

var bytesServed atomic.Int64

func newServeCommand() *cobra.Command {
	var port int
	cmd := &cobra.Command{
		Use:   "serve <dump-dir>",
		Short: "Serve table rows over HTTP, with a Prometheus /metrics endpoint",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(args[0], port)
		},
	}
	cmd.Flags().IntVar(&port, "port", 8080, "port for serving HTTP requests")
	return cmd
}

func runServe(dumpDir string, port int) error {
	if err := prometheus.Register(prometheus.NewCounterFunc(
		prometheus.CounterOpts{
			Namespace: "mwsqldump",
			Name:      "bytes_served_total",
			Help:      "Total number of JSON Lines bytes served over HTTP so far.",
		},
		func() float64 { return float64(bytesServed.Load()) },
	)); err != nil {
		return err
	}

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	mux.HandleFunc("/healthz", handleHealthz)
	mux.HandleFunc("/rows/", handleRows(dumpDir))

	logger.Printf("mwsqldump serve starting on port %d", port)
	return http.ListenAndServe(":"+strconv.Itoa(port), mux)
}

func handleHealthz(w http.ResponseWriter, r *http.Request) {
	fmt.Fprint(w, "ok")
}

// handleRows returns a handler for GET /rows/{table}?file=path, which
// streams the named table's rows from dumpDir/path as JSON Lines.
func handleRows(dumpDir string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		table := strings.TrimPrefix(r.URL.Path, "/rows/")
		dumper, ok := tableDumpers[table]
		if !ok {
			http.Error(w, fmt.Sprintf("unknown table %q", table), http.StatusNotFound)
			return
		}
		file := r.URL.Query().Get("file")
		if file == "" {
			http.Error(w, "missing ?file= query parameter", http.StatusBadRequest)
			return
		}
		if strings.Contains(file, "..") {
			http.Error(w, "invalid file parameter", http.StatusBadRequest)
			return
		}

		w.Header().Set("Content-Type", "application/x-ndjson")
		if _, err := runRows(dumpDir+"/"+file, dumper, &countingWriter{w: w}, "none"); err != nil {
			logger.Printf("serving %s from %s: %v", table, file, err)
			http.Error(w, "internal error", http.StatusInternalServerError)
		}
	}
}

type countingWriter struct {
	w http.ResponseWriter
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	bytesServed.Add(int64(n))
	return n, err
}
