package httpserver

import (
	compressGzip "compress/gzip"
	"fmt"
	"io"
	"strconv"

	ginGzip "github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
)

// CompressionSettings enable gzip support for requests and responses. By default compressed
// requests are accepted and responses are compressed if the client asks for it.
type CompressionSettings struct {
	Level         string `cfg:"level"         default:"default" validate:"oneof=none default best fast 0 1 2 3 4 5 6 7 8 9"`
	Decompression bool   `cfg:"decompression" default:"true"`
	// Exclude requests by path from compression, e.g. /health
	Exclude []string `cfg:"exclude"`
}

func configureCompression(settings CompressionSettings) ([]gin.HandlerFunc, error) {
	level, err := parseLevel(settings.Level)
	if err != nil {
		return nil, err
	}

	if level == compressGzip.NoCompression && !settings.Decompression {
		return nil, nil
	}

	opts := make([]ginGzip.Option, 0, 2)

	if settings.Decompression {
		opts = append(opts, ginGzip.WithDecompressFn(decompressionFn))
	}

	if len(settings.Exclude) > 0 {
		opts = append(opts, ginGzip.WithExcludedPaths(settings.Exclude))
	}

	return []gin.HandlerFunc{ginGzip.Gzip(level, opts...)}, nil
}

func parseLevel(level string) (int, error) {
	switch level {
	case "none":
		return compressGzip.NoCompression, nil
	case "default":
		return compressGzip.DefaultCompression, nil
	case "best":
		return compressGzip.BestCompression, nil
	case "fast":
		return compressGzip.BestSpeed, nil
	}

	i, err := strconv.Atoi(level)
	if err != nil {
		return 0, fmt.Errorf("failed to parse level %s: %w", level, err)
	}

	return i, nil
}

type gzipBodyReader struct {
	body   io.ReadCloser
	reader *compressGzip.Reader
}

func (r gzipBodyReader) Read(p []byte) (int, error) {
	return r.reader.Read(p)
}

func (r gzipBodyReader) Close() error {
	if err := r.reader.Close(); err != nil {
		return err
	}

	return r.body.Close()
}

func decompressionFn(c *gin.Context) {
	reader, err := compressGzip.NewReader(c.Request.Body)
	if err != nil {
		// not a gzip body, the client most likely set the wrong content encoding
		return
	}

	c.Request.Body = gzipBodyReader{
		body:   c.Request.Body,
		reader: reader,
	}
}
