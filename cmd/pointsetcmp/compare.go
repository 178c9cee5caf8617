package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"math"
	"sort"

	"github.com/google/btree"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/deepfabric/pointset"
	"github.com/deepfabric/pointset/refset"
)

// distTolerance is how far apart two distances to the same query may be and
// still count as equal.
const distTolerance = 1e-9

type driver struct {
	out    io.Writer
	k      int
	tracer trace.Tracer
	logger *slog.Logger
}

// load builds both implementations from one read of the file. An unreadable
// file is logged and gives two empty sets.
func (d *driver) load(ctx context.Context, fp string) (*refset.PointSet, *pointset.KdTree) {
	_, span := d.tracer.Start(ctx, "pointsetcmp.load")
	defer span.End()

	points, err := pointset.ReadPointsFile(fp)
	if err != nil {
		d.logger.Warn("pointsetcmp: cannot read points file, using an empty set", "path", fp, "err", err)
	}
	ref := refset.New(points)
	kd := pointset.NewKdTree(points)
	span.SetAttributes(
		attribute.String("file", fp),
		attribute.Int("points.read", len(points)),
		attribute.Int("points.distinct", kd.Size()),
		attribute.Int("kdtree.max_depth", kd.MaxDepth()),
	)
	d.logger.Debug("pointsetcmp: loaded points", "path", fp, "read", len(points), "distinct", kd.Size())
	return ref, kd
}

func formatNearest(p pointset.Point, ok bool) string {
	if !ok {
		return "empty"
	}
	return p.String()
}

func (d *driver) nearest(ctx context.Context, fp string, p pointset.Point) error {
	ref, kd := d.load(ctx, fp)

	ctx, span := d.tracer.Start(ctx, "pointsetcmp.nearest")
	defer span.End()
	span.SetAttributes(attribute.String("query", p.String()))

	refNearest, refOK := ref.Nearest(p)
	fmt.Fprintf(d.out, "refset result: %s\n", formatNearest(refNearest, refOK))
	kdNearest, kdOK := kd.Nearest(p)
	fmt.Fprintf(d.out, "kdtree result: %s\n", formatNearest(kdNearest, kdOK))
	if refOK && kdOK && math.Abs(refNearest.Distance(p)-kdNearest.Distance(p)) > distTolerance {
		fmt.Fprintf(d.out, "Nearest distances differ: refset %g, kdtree %g\n",
			refNearest.Distance(p), kdNearest.Distance(p))
	}

	if d.k > 0 {
		d.compareNearestK(ctx, ref, kd, p)
	}
	return nil
}

// compareNearestK compares the sorted distance lists of both k-NN answers;
// the points themselves may legitimately differ on ties.
func (d *driver) compareNearestK(ctx context.Context, ref, kd pointset.PointSet, p pointset.Point) {
	_, span := d.tracer.Start(ctx, "pointsetcmp.nearest_k")
	defer span.End()
	span.SetAttributes(attribute.Int("k", d.k))

	refDists := distances(pointset.Collect(ref.NearestK(p, d.k)), p)
	kdDists := distances(pointset.Collect(kd.NearestK(p, d.k)), p)
	if len(refDists) != len(kdDists) {
		fmt.Fprintf(d.out, "k-nearest sizes differ: refset %d, kdtree %d\n", len(refDists), len(kdDists))
		return
	}
	for i := range refDists {
		if math.Abs(refDists[i]-kdDists[i]) > distTolerance {
			fmt.Fprintf(d.out, "Difference in %d-nearest distances found at %d: refset %g, kdtree %g\n",
				d.k, i+1, refDists[i], kdDists[i])
			return
		}
	}
	fmt.Fprintf(d.out, "%d-nearest distances agree\n", d.k)
}

func distances(points []pointset.Point, p pointset.Point) []float64 {
	dists := make([]float64, len(points))
	for i, q := range points {
		dists[i] = q.Distance(p)
	}
	sort.Float64s(dists)
	return dists
}

// canonical orders a result by x, then y, dropping equal points.
func canonical(it pointset.Iterator) []pointset.Point {
	set := btree.NewG[pointset.Point](16, func(a, b pointset.Point) bool {
		return a.Compare(b) < 0
	})
	for ; it.Valid(); it.Next() {
		set.ReplaceOrInsert(it.Point())
	}
	points := make([]pointset.Point, 0, set.Len())
	set.Ascend(func(p pointset.Point) bool {
		points = append(points, p)
		return true
	})
	return points
}

func (d *driver) compareRange(ctx context.Context, fp string, rect pointset.Rect) error {
	ref, kd := d.load(ctx, fp)

	_, span := d.tracer.Start(ctx, "pointsetcmp.range")
	defer span.End()
	span.SetAttributes(attribute.String("rect", rect.String()))

	refSet := canonical(ref.Range(rect))
	kdSet := canonical(kd.Range(rect))
	span.SetAttributes(attribute.Int("refset.count", len(refSet)), attribute.Int("kdtree.count", len(kdSet)))
	d.reportRange(refSet, kdSet)
	return nil
}

// reportRange prints the points both answers agree on, stopping at the first
// difference.
func (d *driver) reportRange(refSet, kdSet []pointset.Point) {
	fmt.Fprintln(d.out, "Comparing result from refset and kdtree:")
	for i := 0; i < len(refSet) && i < len(kdSet); i++ {
		if !refSet[i].Equals(kdSet[i]) {
			fmt.Fprintf(d.out, "Difference in results from refset and kdtree found in point %d:\n%s\n%s\n",
				i+1, refSet[i], kdSet[i])
			return
		}
		fmt.Fprintf(d.out, "%d) %s\n", i+1, refSet[i])
	}
	if len(refSet) != len(kdSet) {
		fmt.Fprintf(d.out, "Result sizes differ: refset %d, kdtree %d\n", len(refSet), len(kdSet))
	}
}
