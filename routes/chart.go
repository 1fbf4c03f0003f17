/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package routes

import (
	"bytes"
	"slices"
	"time"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/humaidq/biolog/biomarkers"
	"github.com/humaidq/biolog/db"
)

type chartPoint struct {
	at    time.Time
	value float64
}

// chartPoints returns the numeric entries recorded in unit, oldest first.
func chartPoints(entries []db.Entry, unit string) []chartPoint {
	points := make([]chartPoint, 0, len(entries))

	for _, e := range entries {
		v, ok := e.Value.AsNumber()
		if !ok || e.UnitOrEmpty() != unit {
			continue
		}

		points = append(points, chartPoint{at: e.TakenAt, value: v})
	}

	slices.SortStableFunc(points, func(a, b chartPoint) int {
		return a.at.Compare(b.at)
	})

	return points
}

// chartRange returns the reference range to draw for unit, if any.
func chartRange(def biomarkers.Definition, unit string) *biomarkers.ReferenceRange {
	r := def.Range
	if r == nil || (r.Low == nil && r.High == nil) {
		return nil
	}

	if r.Unit != "" && unit != "" && r.Unit != unit {
		return nil
	}

	return r
}

// yAxisBounds pads the y-axis so both the reference range and the data are
// visible. It returns nils when the range is not closed.
func yAxisBounds(r *biomarkers.ReferenceRange, points []chartPoint) (interface{}, interface{}) {
	if r == nil || r.Low == nil || r.High == nil || len(points) == 0 {
		return nil, nil
	}

	dataMin, dataMax := points[0].value, points[0].value
	for _, p := range points[1:] {
		dataMin = min(dataMin, p.value)
		dataMax = max(dataMax, p.value)
	}

	padding := (*r.High - *r.Low) * 0.1
	minVal := *r.Low - padding
	maxVal := *r.High + padding

	if dataMin < minVal {
		minVal = dataMin - (dataMax-dataMin)*0.05
	}

	if dataMax > maxVal {
		maxVal = dataMax + (dataMax-dataMin)*0.05
	}

	return minVal, maxVal
}

// generateBiomarkerChart renders a line chart of a biomarker's numeric
// entries with its reference range. It returns "" when there is nothing to plot.
func generateBiomarkerChart(def biomarkers.Definition, entries []db.Entry, unit string, loc *time.Location) (string, error) {
	points := chartPoints(entries, unit)
	if len(points) == 0 {
		return "", nil
	}

	refRange := chartRange(def, unit)
	yAxisMin, yAxisMax := yAxisBounds(refRange, points)

	xAxis := make([]string, 0, len(points))
	yData := make([]opts.LineData, 0, len(points))

	for _, p := range points {
		xAxis = append(xAxis, p.at.In(loc).Format("Jan 2, 2006 15:04"))
		yData = append(yData, opts.LineData{Value: p.value})
	}

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title: def.Name,
		}),
		charts.WithTooltipOpts(opts.Tooltip{
			Show: opts.Bool(true),
		}),
		charts.WithLegendOpts(opts.Legend{
			Show: opts.Bool(false),
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Name: def.UnitLabel(unit),
			Min:  yAxisMin,
			Max:  yAxisMax,
		}),
	)

	seriesOpts := []charts.SeriesOpts{
		charts.WithLineChartOpts(opts.LineChart{
			Smooth:     opts.Bool(true),
			ShowSymbol: opts.Bool(true),
		}),
		charts.WithMarkPointNameTypeItemOpts(
			opts.MarkPointNameTypeItem{Name: "Max", Type: "max"},
			opts.MarkPointNameTypeItem{Name: "Min", Type: "min"},
		),
		charts.WithMarkLineNameTypeItemOpts(
			opts.MarkLineNameTypeItem{Name: "Average", Type: "average"},
		),
	}

	if refRange != nil {
		// Replaces the series mark lines, so the average is carried over.
		markLineItems := []interface{}{
			opts.MarkLineNameTypeItem{Name: "Average", Type: "average"},
		}

		if refRange.Low != nil {
			markLineItems = append(markLineItems, opts.MarkLineNameYAxisItem{
				Name:  "Ref Min",
				YAxis: *refRange.Low,
			})
		}

		if refRange.High != nil {
			markLineItems = append(markLineItems, opts.MarkLineNameYAxisItem{
				Name:  "Ref Max",
				YAxis: *refRange.High,
			})
		}

		seriesOpts = append(seriesOpts, func(s *charts.SingleSeries) {
			s.MarkLines = &opts.MarkLines{
				Data: markLineItems,
				MarkLineStyle: opts.MarkLineStyle{
					Symbol: []string{"none", "none"},
					LineStyle: &opts.LineStyle{
						Color: "rgba(128, 128, 128, 0.6)",
						Type:  "dashed",
						Width: 1.5,
					},
				},
			}
		})
	}

	line.SetXAxis(xAxis).
		AddSeries(def.Name, yData).
		SetSeriesOptions(seriesOpts...)

	var buf bytes.Buffer
	if err := line.Render(&buf); err != nil {
		return "", err
	}

	return buf.String(), nil
}
