// Package compressio provides byte-slice and file compression with a
// pluggable algorithm set (gzip, snappy, lz4, zstd). Compressors are
// safe for concurrent use and pool their underlying encoders.
package compressio

import (
	"bytes"
	"compress/gzip"
	"io"
	"os"
	"sync"

	"github.com/klauspost/compress/snappy"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"

	"github.com/dperussina/code-library/pkg/errors"
)

// Algorithm names an available compression algorithm.
type Algorithm string

const (
	// None performs no compression
	None Algorithm = "none"
	// Gzip uses standard gzip framing
	Gzip Algorithm = "gzip"
	// Snappy is fast with moderate compression
	Snappy Algorithm = "snappy"
	// LZ4 is extremely fast with decent compression
	LZ4 Algorithm = "lz4"
	// Zstd offers the best ratio at good speed
	Zstd Algorithm = "zstd"
)

// Level controls the speed versus ratio trade-off.
type Level int

const (
	// Fastest prioritizes throughput over ratio
	Fastest Level = 1
	// Default balances speed and ratio
	Default Level = 5
	// Best maximizes the compression ratio
	Best Level = 9
)

// Compressor compresses and decompresses byte slices and streams.
// Implementations are safe for concurrent use.
type Compressor interface {
	Compress(data []byte) ([]byte, error)
	Decompress(data []byte) ([]byte, error)
	CompressStream(dst io.Writer, src io.Reader) error
	DecompressStream(dst io.Writer, src io.Reader) error
	Algorithm() Algorithm
}

var bufPool = sync.Pool{
	New: func() interface{} { return new(bytes.Buffer) },
}

func getBuffer() *bytes.Buffer {
	return bufPool.Get().(*bytes.Buffer)
}

func putBuffer(b *bytes.Buffer) {
	b.Reset()
	bufPool.Put(b)
}

// New creates a compressor for the given algorithm and level.
func New(algorithm Algorithm, level Level) (Compressor, error) {
	switch algorithm {
	case None:
		return noneCompressor{}, nil
	case Gzip:
		return newGzipCompressor(level), nil
	case Snappy:
		return snappyCompressor{}, nil
	case LZ4:
		return lz4Compressor{level: mapLZ4Level(level)}, nil
	case Zstd:
		return newZstdCompressor(level), nil
	default:
		return nil, errors.Newf(errors.ErrorTypeValidation,
			"unsupported compression algorithm %q", algorithm)
	}
}

// CompressFile compresses src into dst using the named algorithm.
func CompressFile(src, dst string, algorithm Algorithm, level Level) error {
	c, err := New(algorithm, level)
	if err != nil {
		return err
	}
	return copyFile(src, dst, c.CompressStream)
}

// DecompressFile decompresses src into dst using the named algorithm.
func DecompressFile(src, dst string, algorithm Algorithm) error {
	c, err := New(algorithm, Default)
	if err != nil {
		return err
	}
	return copyFile(src, dst, c.DecompressStream)
}

func copyFile(src, dst string, transform func(io.Writer, io.Reader) error) error {
	in, err := os.Open(src)
	if err != nil {
		if os.IsNotExist(err) {
			return errors.Wrapf(err, errors.ErrorTypeNotFound, "file not found: %s", src)
		}
		return errors.Wrapf(err, errors.ErrorTypeFile, "failed to open %s", src)
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return errors.Wrapf(err, errors.ErrorTypeFile, "failed to create %s", dst)
	}

	if err := transform(out, in); err != nil {
		_ = out.Close()
		_ = os.Remove(dst)
		return errors.Wrapf(err, errors.ErrorTypeData, "failed to process %s", src)
	}

	if err := out.Close(); err != nil {
		return errors.Wrapf(err, errors.ErrorTypeFile, "failed to close %s", dst)
	}
	return nil
}

type noneCompressor struct{}

func (noneCompressor) Compress(data []byte) ([]byte, error)   { return data, nil }
func (noneCompressor) Decompress(data []byte) ([]byte, error) { return data, nil }
func (noneCompressor) Algorithm() Algorithm                   { return None }

func (noneCompressor) CompressStream(dst io.Writer, src io.Reader) error {
	_, err := io.Copy(dst, src)
	return err
}

func (noneCompressor) DecompressStream(dst io.Writer, src io.Reader) error {
	_, err := io.Copy(dst, src)
	return err
}

type gzipCompressor struct {
	writerPool *sync.Pool
	readerPool *sync.Pool
}

func newGzipCompressor(level Level) *gzipCompressor {
	gzLevel := mapGzipLevel(level)
	return &gzipCompressor{
		writerPool: &sync.Pool{
			New: func() interface{} {
				w, _ := gzip.NewWriterLevel(nil, gzLevel)
				return w
			},
		},
		readerPool: &sync.Pool{
			New: func() interface{} { return new(gzip.Reader) },
		},
	}
}

func (gc *gzipCompressor) Algorithm() Algorithm { return Gzip }

func (gc *gzipCompressor) Compress(data []byte) ([]byte, error) {
	buf := getBuffer()
	defer putBuffer(buf)

	w := gc.writerPool.Get().(*gzip.Writer)
	defer gc.writerPool.Put(w)

	w.Reset(buf)
	if _, err := w.Write(data); err != nil {
		return nil, err
	}
	if err := w.Close(); err != nil {
		return nil, err
	}

	out := make([]byte, buf.Len())
	copy(out, buf.Bytes())
	return out, nil
}

func (gc *gzipCompressor) Decompress(data []byte) ([]byte, error) {
	r := gc.readerPool.Get().(*gzip.Reader)
	defer gc.readerPool.Put(r)

	if err := r.Reset(bytes.NewReader(data)); err != nil {
		return nil, err
	}

	buf := getBuffer()
	defer putBuffer(buf)

	if _, err := io.Copy(buf, r); err != nil {
		return nil, err
	}

	out := make([]byte, buf.Len())
	copy(out, buf.Bytes())
	return out, nil
}

func (gc *gzipCompressor) CompressStream(dst io.Writer, src io.Reader) error {
	w := gc.writerPool.Get().(*gzip.Writer)
	defer gc.writerPool.Put(w)

	w.Reset(dst)
	if _, err := io.Copy(w, src); err != nil {
		return err
	}
	return w.Close()
}

func (gc *gzipCompressor) DecompressStream(dst io.Writer, src io.Reader) error {
	r := gc.readerPool.Get().(*gzip.Reader)
	defer gc.readerPool.Put(r)

	if err := r.Reset(src); err != nil {
		return err
	}
	_, err := io.Copy(dst, r)
	return err
}

type snappyCompressor struct{}

func (snappyCompressor) Algorithm() Algorithm { return Snappy }

func (snappyCompressor) Compress(data []byte) ([]byte, error) {
	return snappy.Encode(nil, data), nil
}

func (snappyCompressor) Decompress(data []byte) ([]byte, error) {
	return snappy.Decode(nil, data)
}

func (snappyCompressor) CompressStream(dst io.Writer, src io.Reader) error {
	w := snappy.NewBufferedWriter(dst)
	if _, err := io.Copy(w, src); err != nil {
		return err
	}
	return w.Close()
}

func (snappyCompressor) DecompressStream(dst io.Writer, src io.Reader) error {
	_, err := io.Copy(dst, snappy.NewReader(src))
	return err
}

type lz4Compressor struct {
	level lz4.CompressionLevel
}

func (lz4Compressor) Algorithm() Algorithm { return LZ4 }

func (lc lz4Compressor) Compress(data []byte) ([]byte, error) {
	buf := getBuffer()
	defer putBuffer(buf)

	w := lz4.NewWriter(buf)
	if err := w.Apply(lz4.CompressionLevelOption(lc.level)); err != nil {
		return nil, err
	}
	if _, err := w.Write(data); err != nil {
		return nil, err
	}
	if err := w.Close(); err != nil {
		return nil, err
	}

	out := make([]byte, buf.Len())
	copy(out, buf.Bytes())
	return out, nil
}

func (lz4Compressor) Decompress(data []byte) ([]byte, error) {
	buf := getBuffer()
	defer putBuffer(buf)

	if _, err := io.Copy(buf, lz4.NewReader(bytes.NewReader(data))); err != nil {
		return nil, err
	}

	out := make([]byte, buf.Len())
	copy(out, buf.Bytes())
	return out, nil
}

func (lc lz4Compressor) CompressStream(dst io.Writer, src io.Reader) error {
	w := lz4.NewWriter(dst)
	if err := w.Apply(lz4.CompressionLevelOption(lc.level)); err != nil {
		return err
	}
	if _, err := io.Copy(w, src); err != nil {
		return err
	}
	return w.Close()
}

func (lz4Compressor) DecompressStream(dst io.Writer, src io.Reader) error {
	_, err := io.Copy(dst, lz4.NewReader(src))
	return err
}

type zstdCompressor struct {
	encoderPool *sync.Pool
	decoderPool *sync.Pool
}

func newZstdCompressor(level Level) *zstdCompressor {
	encLevel := mapZstdLevel(level)
	return &zstdCompressor{
		encoderPool: &sync.Pool{
			New: func() interface{} {
				enc, _ := zstd.NewWriter(nil, zstd.WithEncoderLevel(encLevel))
				return enc
			},
		},
		decoderPool: &sync.Pool{
			New: func() interface{} {
				dec, _ := zstd.NewReader(nil)
				return dec
			},
		},
	}
}

func (zc *zstdCompressor) Algorithm() Algorithm { return Zstd }

func (zc *zstdCompressor) Compress(data []byte) ([]byte, error) {
	enc := zc.encoderPool.Get().(*zstd.Encoder)
	defer zc.encoderPool.Put(enc)
	return enc.EncodeAll(data, nil), nil
}

func (zc *zstdCompressor) Decompress(data []byte) ([]byte, error) {
	dec := zc.decoderPool.Get().(*zstd.Decoder)
	defer zc.decoderPool.Put(dec)
	return dec.DecodeAll(data, nil)
}

func (zc *zstdCompressor) CompressStream(dst io.Writer, src io.Reader) error {
	enc := zc.encoderPool.Get().(*zstd.Encoder)
	defer zc.encoderPool.Put(enc)

	enc.Reset(dst)
	if _, err := io.Copy(enc, src); err != nil {
		return err
	}
	return enc.Close()
}

func (zc *zstdCompressor) DecompressStream(dst io.Writer, src io.Reader) error {
	dec := zc.decoderPool.Get().(*zstd.Decoder)
	defer zc.decoderPool.Put(dec)

	if err := dec.Reset(src); err != nil {
		return err
	}
	_, err := io.Copy(dst, dec)
	return err
}

func mapGzipLevel(level Level) int {
	switch {
	case level <= Fastest:
		return gzip.BestSpeed
	case level >= Best:
		return gzip.BestCompression
	default:
		return gzip.DefaultCompression
	}
}

func mapLZ4Level(level Level) lz4.CompressionLevel {
	switch {
	case level <= Fastest:
		return lz4.Fast
	case level >= Best:
		return lz4.Level9
	default:
		return lz4.Level4
	}
}

func mapZstdLevel(level Level) zstd.EncoderLevel {
	switch {
	case level <= Fastest:
		return zstd.SpeedFastest
	case level >= Best:
		return zstd.SpeedBestCompression
	default:
		return zstd.SpeedDefault
	}
}
