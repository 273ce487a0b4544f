package shoot

import (
	"context"
	"fmt"
	"sync"

	"github.com/san-kum/horizon/internal/ode"
)

// Sample is one point of a residual scan. A failed evaluation is recorded in
// Err rather than aborting the scan; bracket search skips it.
type Sample struct {
	H0       float64
	Residual float64
	Err      error
}

// Scan evaluates R(h0) on n uniformly spaced trial radii in [lo, hi],
// fanning the independent evaluations out over the given number of workers.
// Each evaluation owns its private trajectory, so no synchronization beyond
// the index hand-off is needed.
func Scan(ctx context.Context, fn ResidualFunc, lo, hi float64, n, workers int) ([]Sample, error) {
	if n < 2 {
		return nil, fmt.Errorf("%w: scan needs at least 2 samples, got %d", ode.ErrInvalidInput, n)
	}
	if lo <= 0 || hi <= lo {
		return nil, fmt.Errorf("%w: scan range (%g, %g) must satisfy 0 < lo < hi", ode.ErrInvalidInput, lo, hi)
	}
	if workers < 1 {
		workers = 1
	}
	if workers > n {
		workers = n
	}

	samples := make([]Sample, n)
	step := (hi - lo) / float64(n-1)
	for i := range samples {
		samples[i].H0 = lo + float64(i)*step
	}

	idx := make(chan int)
	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for i := range idx {
				samples[i].Residual, samples[i].Err = fn(samples[i].H0)
			}
		}()
	}

	var ctxErr error
feed:
	for i := 0; i < n; i++ {
		select {
		case <-ctx.Done():
			ctxErr = ctx.Err()
			break feed
		case idx <- i:
		}
	}
	close(idx)
	wg.Wait()

	if ctxErr != nil {
		return nil, ctxErr
	}
	return samples, nil
}

// FindBracket returns the first pair of adjacent error-free samples whose
// residuals change sign, suitable as secant seeds.
func FindBracket(samples []Sample) (lo, hi float64, err error) {
	prev := -1
	for i, s := range samples {
		if s.Err != nil {
			continue
		}
		if prev >= 0 && samples[prev].Residual*s.Residual <= 0 {
			return samples[prev].H0, s.H0, nil
		}
		prev = i
	}
	return 0, 0, ErrNoBracket
}
