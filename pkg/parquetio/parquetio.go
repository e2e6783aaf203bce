// Package parquetio provides Parquet file reading and writing for
// record maps, with optional column projection and compression.
package parquetio

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"
	"github.com/apache/arrow-go/v18/arrow/memory"
	"github.com/apache/arrow-go/v18/parquet"
	"github.com/apache/arrow-go/v18/parquet/compress"
	"github.com/apache/arrow-go/v18/parquet/file"
	"github.com/apache/arrow-go/v18/parquet/pqarrow"

	"github.com/dperussina/code-library/pkg/errors"
)

// Compression names accepted by WriteOptions.
const (
	CompressionNone   = "none"
	CompressionSnappy = "snappy"
	CompressionZstd   = "zstd"
	CompressionGzip   = "gzip"
)

// WriteOptions configures WriteRecords.
type WriteOptions struct {
	// Compression is one of the Compression* constants; empty means snappy
	Compression string
}

func codecFor(name string) (compress.Compression, error) {
	switch name {
	case "", CompressionSnappy:
		return compress.Codecs.Snappy, nil
	case CompressionNone:
		return compress.Codecs.Uncompressed, nil
	case CompressionZstd:
		return compress.Codecs.Zstd, nil
	case CompressionGzip:
		return compress.Codecs.Gzip, nil
	default:
		return compress.Codecs.Uncompressed,
			errors.Newf(errors.ErrorTypeValidation, "unsupported compression %q", name)
	}
}

// inferSchema derives an Arrow schema from the first non-nil value seen
// per column. Columns with no values default to string.
func inferSchema(columns []string, records []map[string]interface{}) *arrow.Schema {
	fields := make([]arrow.Field, 0, len(columns))
	for _, name := range columns {
		var dt arrow.DataType = arrow.BinaryTypes.String
		for _, rec := range records {
			v, ok := rec[name]
			if !ok || v == nil {
				continue
			}
			switch v.(type) {
			case bool:
				dt = arrow.FixedWidthTypes.Boolean
			case int, int32, int64:
				dt = arrow.PrimitiveTypes.Int64
			case float32, float64:
				dt = arrow.PrimitiveTypes.Float64
			case time.Time:
				dt = arrow.FixedWidthTypes.Timestamp_ns
			}
			break
		}
		fields = append(fields, arrow.Field{Name: name, Type: dt, Nullable: true})
	}
	return arrow.NewSchema(fields, nil)
}

// WriteRecords writes record maps to a Parquet file using the given
// column order. Each column's type is inferred from the first value seen
// for it; missing keys, and values whose Go type disagrees with the
// inferred column type, are written as nulls.
func WriteRecords(path string, columns []string, records []map[string]interface{}, opts *WriteOptions) error {
	if len(columns) == 0 {
		return errors.New(errors.ErrorTypeValidation, "no columns given")
	}
	if opts == nil {
		opts = &WriteOptions{}
	}

	codec, err := codecFor(opts.Compression)
	if err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, errors.ErrorTypeFile, "failed to create %s", path)
	}
	defer f.Close()

	schema := inferSchema(columns, records)

	alloc := memory.NewGoAllocator()
	builder := array.NewRecordBuilder(alloc, schema)
	defer builder.Release()

	for _, rec := range records {
		for i, fieldDef := range schema.Fields() {
			if err := appendValue(builder.Field(i), rec[fieldDef.Name]); err != nil {
				return errors.Wrapf(err, errors.ErrorTypeData,
					"failed to append value for column %s", fieldDef.Name)
			}
		}
	}

	props := parquet.NewWriterProperties(parquet.WithCompression(codec))
	arrowProps := pqarrow.NewArrowWriterProperties(pqarrow.WithAllocator(alloc))

	fw, err := pqarrow.NewFileWriter(schema, f, props, arrowProps)
	if err != nil {
		return errors.Wrap(err, errors.ErrorTypeFile, "failed to create Parquet writer")
	}

	record := builder.NewRecord()
	defer record.Release()

	if err := fw.Write(record); err != nil {
		_ = fw.Close()
		return errors.Wrap(err, errors.ErrorTypeFile, "failed to write record batch")
	}

	if err := fw.Close(); err != nil {
		return errors.Wrap(err, errors.ErrorTypeFile, "failed to close Parquet writer")
	}

	return nil
}

func appendValue(builder array.Builder, value interface{}) error {
	if value == nil {
		builder.AppendNull()
		return nil
	}

	switch b := builder.(type) {
	case *array.BooleanBuilder:
		if v, ok := value.(bool); ok {
			b.Append(v)
		} else {
			b.AppendNull()
		}

	case *array.Int64Builder:
		switch v := value.(type) {
		case int:
			b.Append(int64(v))
		case int32:
			b.Append(int64(v))
		case int64:
			b.Append(v)
		default:
			b.AppendNull()
		}

	case *array.Float64Builder:
		switch v := value.(type) {
		case float32:
			b.Append(float64(v))
		case float64:
			b.Append(v)
		case int:
			b.Append(float64(v))
		default:
			b.AppendNull()
		}

	case *array.StringBuilder:
		if v, ok := value.(string); ok {
			b.Append(v)
		} else {
			b.Append(fmt.Sprintf("%v", value))
		}

	case *array.TimestampBuilder:
		switch v := value.(type) {
		case time.Time:
			b.Append(arrow.Timestamp(v.UnixNano()))
		case string:
			if t, err := time.Parse(time.RFC3339, v); err == nil {
				b.Append(arrow.Timestamp(t.UnixNano()))
			} else {
				b.AppendNull()
			}
		default:
			b.AppendNull()
		}

	default:
		return fmt.Errorf("unsupported builder type: %T", builder)
	}

	return nil
}

// ReadRecords reads a Parquet file into record maps. When columns is
// non-empty only those columns are materialized.
func ReadRecords(path string, columns []string) ([]map[string]interface{}, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrapf(err, errors.ErrorTypeNotFound, "file not found: %s", path)
		}
		return nil, errors.Wrapf(err, errors.ErrorTypeFile, "failed to open %s", path)
	}
	defer f.Close()

	fr, err := file.NewParquetReader(f)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrorTypeParse, "failed to read Parquet file %s", path)
	}
	defer fr.Close()

	alloc := memory.NewGoAllocator()
	arrowReader, err := pqarrow.NewFileReader(fr, pqarrow.ArrowReadProperties{}, alloc)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrorTypeParse, "failed to create Arrow reader")
	}

	schema, err := arrowReader.Schema()
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrorTypeParse, "failed to read schema")
	}

	var colIndices []int
	if len(columns) > 0 {
		for _, name := range columns {
			indices := schema.FieldIndices(name)
			if len(indices) == 0 {
				return nil, errors.Newf(errors.ErrorTypeNotFound, "no column %q in %s", name, path)
			}
			colIndices = append(colIndices, indices...)
		}
	}

	rr, err := arrowReader.GetRecordReader(context.Background(), colIndices, nil)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrorTypeParse, "failed to create record reader")
	}
	defer rr.Release()

	var records []map[string]interface{}
	for rr.Next() {
		batch := rr.Record()
		for row := 0; row < int(batch.NumRows()); row++ {
			rec := make(map[string]interface{}, int(batch.NumCols()))
			for col := 0; col < int(batch.NumCols()); col++ {
				name := batch.Schema().Field(col).Name
				rec[name] = columnValue(batch.Column(col), row)
			}
			records = append(records, rec)
		}
	}
	if err := rr.Err(); err != nil {
		return nil, errors.Wrap(err, errors.ErrorTypeParse, "failed to read record batches")
	}

	return records, nil
}

func columnValue(col arrow.Array, row int) interface{} {
	if col.IsNull(row) {
		return nil
	}

	switch c := col.(type) {
	case *array.Boolean:
		return c.Value(row)
	case *array.Int64:
		return c.Value(row)
	case *array.Float64:
		return c.Value(row)
	case *array.String:
		return c.Value(row)
	case *array.Timestamp:
		return time.Unix(0, int64(c.Value(row))).UTC()
	default:
		return c.ValueStr(row)
	}
}
