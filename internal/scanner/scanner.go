// scanner is used to scan a directory for cycle scripts.
package scanner

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/tliron/commonlog"
	"golang.org/x/sync/errgroup"
)

var log = commonlog.GetLogger("cycle-ls.scanner")

// HasExtension returns a skip predicate keeping only files whose extension
// is one of exts.
func HasExtension(exts ...string) func(path string, d fs.DirEntry) bool {
	return func(path string, d fs.DirEntry) bool {
		ext := filepath.Ext(path)
		for _, e := range exts {
			if strings.EqualFold(ext, e) {
				return false
			}
		}
		return true
	}
}

// Scan walks the entire subtree under root. Any directory whose name begins
// with "." is skipped entirely. For each remaining file, skip() is applied,
// and if it returns false the file is read and callback(path, contents) is
// invoked on one of workers goroutines. Scan only returns once all callbacks
// have completed; the first read or walk error cancels the rest.
func Scan(
	ctx context.Context,
	root string,
	workers int,
	skip func(path string, d fs.DirEntry) bool,
	callback func(path string, document []byte),
) error {
	g, ctx := errgroup.WithContext(ctx)
	if workers > 0 {
		g.SetLimit(workers)
	}

	log.Debugf("starting WalkDir at %q", root)
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}

		if d.IsDir() {
			if path != root && strings.HasPrefix(d.Name(), ".") {
				log.Debugf("skipping %q", path)
				return fs.SkipDir
			}
			return nil
		}
		if skip(path, d) {
			return nil
		}

		g.Go(func() error {
			data, err := os.ReadFile(path)
			if err != nil {
				return fmt.Errorf("scanner: read %s: %w", path, err)
			}
			callback(path, data)
			return nil
		})
		return nil
	})

	if werr := g.Wait(); werr != nil {
		return werr
	}
	if err != nil {
		return fmt.Errorf("scanner: walk %s: %w", root, err)
	}
	return nil
}
