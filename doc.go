// Package codelibrary is a toolkit of small, composable helpers for
// everyday data work: file and format I/O, concurrent fetching, numeric
// and statistical routines, and process instrumentation.
//
// The module is organized as independent packages under pkg/, each
// covering one concern:
//
//   - fileio, csvio, jsonio, yamlio, parquetio: reading and writing
//     text, CSV, JSON, YAML, and Parquet files
//   - compressio: gzip, snappy, lz4, and zstd compression for byte
//     slices, streams, and files
//   - envcfg: .env loading and environment-backed configuration
//   - timeutil, regexutil, collections: timestamps, cached regular
//     expressions, and generic counting/flattening helpers
//   - retry, timing, parallel: backoff policies, execution timing, and
//     bounded worker pools
//   - webclient: an HTTP client with typed errors and concurrent fetch
//   - array, dataframe, interpolate, optimize: vector math, columnar
//     tables with grouping and missing-value handling, interpolation,
//     and function minimization
//   - mlkit: train/test splitting, feature scaling, model evaluation,
//     and model persistence
//   - sqlutil: a thin database wrapper with PostgreSQL and MySQL
//     drivers wired
//   - sysinfo, metrics, logger, errors: resource snapshots, Prometheus
//     metrics, structured logging, and typed errors
//   - chart: line, scatter, and histogram plots rendered to PNG
//
// # Quick Start
//
// Read a CSV file, convert it to Parquet, and plot a column:
//
//	table, err := csvio.ReadAll("users.csv")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	err = parquetio.WriteRecords("users.parquet", columns, records, nil)
//
// The code-library command under cmd/ exposes the conversion, fetch,
// and sysinfo operations as a CLI.
package codelibrary
