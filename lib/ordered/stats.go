package ordered

import (
	"context"
	"fmt"
	"strings"

	"github.com/samber/lo"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const (
	ContainerStatsName = "xcoll/ordered"
)

type containerStats struct {
	attrs       metric.MeasurementOption
	insertCount metric.Int64Counter
	rejectCount metric.Int64Counter
	removeCount metric.Int64Counter
	elements    metric.Int64UpDownCounter
}

func (stats *containerStats) IncreaseInsertCount() {
	if stats == nil {
		return
	}
	stats.insertCount.Add(context.Background(), 1, stats.attrs)
	stats.elements.Add(context.Background(), 1, stats.attrs)
}

func (stats *containerStats) IncreaseRejectCount() {
	if stats == nil {
		return
	}
	stats.rejectCount.Add(context.Background(), 1, stats.attrs)
}

func (stats *containerStats) RecordRemoveCount(count int64) {
	if stats == nil || count <= 0 {
		return
	}
	stats.removeCount.Add(context.Background(), count, stats.attrs)
	stats.elements.Add(context.Background(), -count, stats.attrs)
}

// RecordElements adjusts the element gauge after a bulk swap or clear.
func (stats *containerStats) RecordElements(delta int64) {
	if stats == nil || delta == 0 {
		return
	}
	stats.elements.Add(context.Background(), delta, stats.attrs)
}

func newContainerStats(name, kind string) *containerStats {
	if len(strings.TrimSpace(name)) <= 0 {
		name = "default"
	}
	meterName := fmt.Sprintf("%s/%s", ContainerStatsName, name)
	meter := otel.Meter(meterName)
	return &containerStats{
		attrs: metric.WithAttributeSet(attribute.NewSet(
			attribute.String("ordered.container", kind),
		)),
		insertCount: lo.Must[metric.Int64Counter](meter.Int64Counter(
			"ordered.insert.count",
			metric.WithDescription("The number of elements inserted into the container."),
		)),
		rejectCount: lo.Must[metric.Int64Counter](meter.Int64Counter(
			"ordered.insert.rejected.count",
			metric.WithDescription("The number of duplicate insertions rejected by unique containers."),
		)),
		removeCount: lo.Must[metric.Int64Counter](meter.Int64Counter(
			"ordered.remove.count",
			metric.WithDescription("The number of elements removed from the container."),
		)),
		elements: lo.Must[metric.Int64UpDownCounter](meter.Int64UpDownCounter(
			"ordered.elements",
			metric.WithDescription("The number of elements held by the container."),
		)),
	}
}
