package fastq

import (
	"context"
	"io"

	"github.com/grailbio/base/errors"
	"github.com/grailbio/base/file"
	"github.com/grailbio/base/fileio"
	"github.com/klauspost/compress/gzip"
)

// Open opens the FASTQ file at path for reading, transparently
// decompressing gzipped inputs. It returns the reader along with a
// cleanup function that must be called once reading is done.
func Open(ctx context.Context, path string) (io.Reader, func() error, error) {
	in, err := file.Open(ctx, path)
	if err != nil {
		return nil, nil, err
	}
	reader := io.Reader(in.Reader(ctx))
	var gz *gzip.Reader
	switch fileio.DetermineType(path) {
	case fileio.Gzip:
		if gz, err = gzip.NewReader(reader); err != nil {
			_ = in.Close(ctx)
			return nil, nil, err
		}
		reader = gz
	}
	cleanup := func() error {
		e := errors.Once{}
		if gz != nil {
			e.Set(gz.Close())
		}
		e.Set(in.Close(ctx))
		return e.Err()
	}
	return reader, cleanup, nil
}
