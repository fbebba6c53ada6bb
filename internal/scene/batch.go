package scene

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/Faultbox/midgard-geom/internal/logger"
)

// EvaluateFile loads and evaluates a single document. The report's File is set to path.
func EvaluateFile(path string, epsilon float32) (*Report, error) {
	doc, err := Load(path)
	if err != nil {
		return nil, err
	}
	report, err := Evaluate(doc, epsilon)
	if err != nil {
		return nil, fmt.Errorf("evaluating %s: %w", path, err)
	}
	report.File = path
	return report, nil
}

// EvaluateFiles evaluates documents concurrently with at most workers in
// flight. Reports are returned in the order of paths. The first error
// cancels the remaining work.
func EvaluateFiles(ctx context.Context, paths []string, epsilon float32, workers int) ([]*Report, error) {
	reports := make([]*Report, len(paths))

	g, ctx := errgroup.WithContext(ctx)
	if workers > 0 {
		g.SetLimit(workers)
	}

	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			report, err := EvaluateFile(path, epsilon)
			if err != nil {
				return err
			}
			logger.Debug("document evaluated",
				zap.String("file", path),
				zap.Int("queries", len(report.Results)),
				zap.Int("failed", report.Failed))
			reports[i] = report
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return reports, nil
}
