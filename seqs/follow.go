package seqs

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"iter"
	"os"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/on-the-ground/recipes_go/shared/logctx"
)

// Follow yields lines appended to the file at path, like tail -f: it
// seeks to the current end, then polls, sleeping `every` between
// attempts, until ctx is canceled or the consumer breaks. The sequence
// is single-use. File errors are yielded once and end the sequence;
// cancellation ends it silently.
//
// A partial line at end of file is held back until its newline arrives,
// so a writer flushing mid-line never produces a torn read.
func Follow(ctx context.Context, path string, every time.Duration) iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		logger := logctx.From(ctx)

		f, err := os.Open(path)
		if err != nil {
			yield("", fmt.Errorf("follow: %w", err))
			return
		}
		defer f.Close()

		if _, err := f.Seek(0, io.SeekEnd); err != nil {
			yield("", fmt.Errorf("follow: seek end: %w", err))
			return
		}
		logger.Debug("following file", zap.String("path", path), zap.Duration("every", every))

		r := bufio.NewReader(f)
		var pending strings.Builder
		for {
			chunk, err := r.ReadString('\n')
			pending.WriteString(chunk)

			switch {
			case err == nil:
				line := strings.TrimSuffix(pending.String(), "\n")
				pending.Reset()
				if !yield(line, nil) {
					return
				}

			case errors.Is(err, io.EOF):
				select {
				case <-ctx.Done():
					logger.Debug("follow canceled", zap.String("path", path))
					return
				case <-time.After(every):
				}

			default:
				yield("", fmt.Errorf("follow: read: %w", err))
				return
			}
		}
	}
}
