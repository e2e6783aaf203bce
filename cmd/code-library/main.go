package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/dperussina/code-library/pkg/csvio"
	"github.com/dperussina/code-library/pkg/errors"
	"github.com/dperussina/code-library/pkg/jsonio"
	"github.com/dperussina/code-library/pkg/logger"
	"github.com/dperussina/code-library/pkg/parquetio"
	"github.com/dperussina/code-library/pkg/sysinfo"
	"github.com/dperussina/code-library/pkg/webclient"
)

var version = "0.1.0"

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	var logLevel string

	root := &cobra.Command{
		Use:   "code-library",
		Short: "Utility toolkit for data files, HTTP fetching, and system inspection",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return logger.Init(logger.Config{Level: logLevel, Encoding: "console"})
		},
	}
	root.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "Log level (debug, info, warn, error)")

	root.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("code-library v%s\n", version)
			fmt.Printf("Go version: %s\n", runtime.Version())
			fmt.Printf("OS/Arch: %s/%s\n", runtime.GOOS, runtime.GOARCH)
		},
	})

	root.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List supported formats and compression algorithms",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println("Convertible formats:")
			for _, format := range []string{"csv", "json", "parquet"} {
				fmt.Printf("  - %s\n", format)
			}
			fmt.Println("\nParquet compression:")
			for _, name := range []string{
				parquetio.CompressionNone,
				parquetio.CompressionSnappy,
				parquetio.CompressionZstd,
				parquetio.CompressionGzip,
			} {
				fmt.Printf("  - %s\n", name)
			}
		},
	})

	var fetchWorkers int
	var fetchTimeout time.Duration

	fetchCmd := &cobra.Command{
		Use:   "fetch URL...",
		Short: "Fetch URLs concurrently and report per-URL status",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFetch(args, fetchWorkers, fetchTimeout)
		},
	}
	fetchCmd.Flags().IntVarP(&fetchWorkers, "workers", "n", 4, "Number of concurrent fetches")
	fetchCmd.Flags().DurationVar(&fetchTimeout, "timeout", 30*time.Second, "Overall fetch timeout")
	root.AddCommand(fetchCmd)

	var compression string

	convertCmd := &cobra.Command{
		Use:   "convert SRC DST",
		Short: "Convert a data file between CSV, JSON, and Parquet",
		Long: `Convert a data file between formats. The formats are taken from the
file extensions (.csv, .json, .parquet).

Example:
  code-library convert users.csv users.parquet --compression zstd`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConvert(args[0], args[1], compression)
		},
	}
	convertCmd.Flags().StringVarP(&compression, "compression", "c", "snappy", "Parquet compression (none, snappy, zstd, gzip)")
	root.AddCommand(convertCmd)

	root.AddCommand(&cobra.Command{
		Use:   "sysinfo",
		Short: "Show process and host resource usage",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSysinfo()
		},
	})

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func runFetch(urls []string, workers int, timeout time.Duration) error {
	client, err := webclient.New(nil)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	failures := 0
	for _, res := range client.FetchAll(ctx, urls, workers) {
		if res.Err != nil {
			failures++
			fmt.Printf("FAIL  %s: %v\n", res.URL, res.Err)
			continue
		}
		fmt.Printf("OK    %s (%d, %d bytes)\n", res.URL, res.StatusCode, res.Size)
	}

	if failures > 0 {
		return errors.Newf(errors.ErrorTypeConnection, "%d of %d fetches failed", failures, len(urls))
	}
	return nil
}

func fileFormat(path string) (string, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".csv", ".json", ".parquet":
		return ext[1:], nil
	default:
		return "", errors.Newf(errors.ErrorTypeValidation, "unsupported file extension %q", ext)
	}
}

func runConvert(src, dst, compression string) error {
	srcFormat, err := fileFormat(src)
	if err != nil {
		return err
	}
	dstFormat, err := fileFormat(dst)
	if err != nil {
		return err
	}

	columns, records, err := readRecords(src, srcFormat)
	if err != nil {
		return err
	}

	if err := writeRecords(dst, dstFormat, columns, records, compression); err != nil {
		return err
	}

	fmt.Printf("Converted %d records: %s -> %s\n", len(records), src, dst)
	return nil
}

func readRecords(path, format string) ([]string, []map[string]interface{}, error) {
	switch format {
	case "csv":
		table, err := csvio.ReadAll(path)
		if err != nil {
			return nil, nil, err
		}
		records := make([]map[string]interface{}, 0, len(table.Rows))
		for _, row := range table.Rows {
			rec := make(map[string]interface{}, len(table.Header))
			for i, name := range table.Header {
				if i < len(row) {
					rec[name] = row[i]
				}
			}
			records = append(records, rec)
		}
		return table.Header, records, nil

	case "json":
		var records []map[string]interface{}
		if err := jsonio.ReadFile(path, &records); err != nil {
			return nil, nil, err
		}
		return columnsOf(records), records, nil

	case "parquet":
		records, err := parquetio.ReadRecords(path, nil)
		if err != nil {
			return nil, nil, err
		}
		return columnsOf(records), records, nil

	default:
		return nil, nil, errors.Newf(errors.ErrorTypeValidation, "unsupported source format %q", format)
	}
}

// columnsOf collects the union of record keys in sorted order.
func columnsOf(records []map[string]interface{}) []string {
	seen := make(map[string]struct{})
	for _, rec := range records {
		for name := range rec {
			seen[name] = struct{}{}
		}
	}
	columns := make([]string, 0, len(seen))
	for name := range seen {
		columns = append(columns, name)
	}
	sort.Strings(columns)
	return columns
}

func writeRecords(path, format string, columns []string, records []map[string]interface{}, compression string) error {
	switch format {
	case "csv":
		rows := make([]map[string]string, 0, len(records))
		for _, rec := range records {
			row := make(map[string]string, len(rec))
			for name, value := range rec {
				if value != nil {
					row[name] = fmt.Sprintf("%v", value)
				}
			}
			rows = append(rows, row)
		}
		return csvio.WriteRecords(path, columns, rows)

	case "json":
		return jsonio.WriteFile(path, records, "  ")

	case "parquet":
		return parquetio.WriteRecords(path, columns, records, &parquetio.WriteOptions{Compression: compression})

	default:
		return errors.Newf(errors.ErrorTypeValidation, "unsupported destination format %q", format)
	}
}

func runSysinfo() error {
	snap := sysinfo.Memory()

	cpuPercent, err := sysinfo.CPUPercent(200 * time.Millisecond)
	if err != nil {
		return err
	}

	fmt.Printf("CPUs:             %d\n", sysinfo.NumCPU())
	fmt.Printf("CPU usage:        %.1f%%\n", cpuPercent)
	fmt.Printf("Goroutines:       %d\n", snap.GoroutineCount)
	fmt.Printf("Heap alloc:       %.1f MB\n", float64(snap.HeapAllocBytes)/(1<<20))
	fmt.Printf("Process RSS:      %.1f MB\n", float64(snap.ProcessRSSBytes)/(1<<20))
	fmt.Printf("Host mem used:    %.1f%%\n", snap.HostUsedPercent)
	fmt.Printf("Host mem avail:   %.1f MB\n", float64(snap.HostAvailable)/(1<<20))
	return nil
}
