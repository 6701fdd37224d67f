package dynamo

import (
	"runtime"

	"golang.org/x/sync/errgroup"
)

// ForEachRow calls fn once for every row in [0, rows). Rows are handed to the
// first free worker, so expensive rows do not hold up a static partition.
// workers <= 0 means runtime.NumCPU(). The first error returned by fn is
// reported after all started rows have finished.
func ForEachRow(rows, workers int, fn func(row int) error) error {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers == 1 || rows <= 1 {
		for row := 0; row < rows; row++ {
			if err := fn(row); err != nil {
				return err
			}
		}
		return nil
	}

	var g errgroup.Group
	g.SetLimit(workers)
	for row := 0; row < rows; row++ {
		row := row
		g.Go(func() error {
			return fn(row)
		})
	}
	return g.Wait()
}
