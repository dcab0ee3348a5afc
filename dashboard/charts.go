/*
 * Copyright 2026 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package dashboard

import (
	"bytes"
	htmltemplate "html/template"
	"math"
	"strings"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/metabolx/metabolx/analysis"
)

// metabolismPalette matches the colours of the status badges.
var metabolismPalette = []string{
	"rgba(37, 99, 235, 0.8)",
	"rgba(5, 150, 105, 0.8)",
	"rgba(217, 119, 6, 0.8)",
	"rgba(220, 38, 38, 0.8)",
}

// chart option JSON is emitted into a script block without HTML escaping,
// so angle brackets are swapped for look-alike characters.
var chartLabelReplacer = strings.NewReplacer("<", "‹", ">", "›")

func chartLabel(s string) string {
	return chartLabelReplacer.Replace(s)
}

// chartValue keeps NaN out of the chart JSON, which encoding/json rejects.
func chartValue(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

func (c Context) initOpts() opts.Initialization {
	init := opts.Initialization{
		Width:  c.ChartWidth,
		Height: c.ChartHeight,
	}
	if init.Width == "" {
		init.Width = defaultChartWidth
	}
	if init.Height == "" {
		init.Height = defaultChartHeight
	}
	if c.AssetsHost != "" {
		init.AssetsHost = c.AssetsHost
	}
	return init
}

// generateMetricsChart draws the patient values against the normal values on
// a radar chart.
func generateMetricsChart(ctx Context, metrics []analysis.Metric) (htmltemplate.HTML, error) {
	if len(metrics) == 0 {
		return "", nil
	}

	indicators := make([]*opts.Indicator, 0, len(metrics))
	yours := make([]float32, 0, len(metrics))
	normal := make([]float32, 0, len(metrics))

	for _, m := range metrics {
		value := chartValue(m.Value.Float())
		ref := chartValue(m.NormalValue.Float())

		// The radial axis starts at zero; leave headroom above the larger value.
		ceiling := math.Max(value, ref) * 1.2
		if ceiling <= 0 {
			ceiling = 1
		}

		indicators = append(indicators, &opts.Indicator{
			Name: chartLabel(m.Name),
			Max:  float32(ceiling),
		})
		yours = append(yours, float32(value))
		normal = append(normal, float32(ref))
	}

	radar := charts.NewRadar()
	radar.SetGlobalOptions(
		charts.WithInitializationOpts(ctx.initOpts()),
		charts.WithRadarComponentOpts(opts.RadarComponent{
			Indicator: indicators,
			Shape:     "polygon",
		}),
		charts.WithTooltipOpts(opts.Tooltip{
			Show: opts.Bool(true),
		}),
		charts.WithLegendOpts(opts.Legend{
			Show:   opts.Bool(true),
			Bottom: "0",
		}),
		charts.WithColorsOpts(opts.Colors{"rgb(37, 99, 235)", "rgb(156, 163, 175)"}),
	)

	radar.AddSeries("Your Values", []opts.RadarData{{Name: "Your Values", Value: yours}},
		charts.WithAreaStyleOpts(opts.AreaStyle{Opacity: opts.Float(0.2)}),
	)
	radar.AddSeries("Normal Range", []opts.RadarData{{Name: "Normal Range", Value: normal}},
		charts.WithAreaStyleOpts(opts.AreaStyle{Opacity: opts.Float(0.2)}),
	)

	var buf bytes.Buffer
	if err := radar.Render(&buf); err != nil {
		return "", err
	}

	//nolint:gosec // go-echarts output with sanitized labels.
	return htmltemplate.HTML(buf.String()), nil
}

// generateMetabolismChart draws the metabolism breakdown as a doughnut.
func generateMetabolismChart(ctx Context, components []analysis.MetabolismComponent) (htmltemplate.HTML, error) {
	if len(components) == 0 {
		return "", nil
	}

	data := make([]opts.PieData, 0, len(components))
	for _, c := range components {
		data = append(data, opts.PieData{
			Name:  chartLabel(c.Type),
			Value: chartValue(c.Percentage.Float()),
		})
	}

	pie := charts.NewPie()
	pie.SetGlobalOptions(
		charts.WithInitializationOpts(ctx.initOpts()),
		charts.WithTooltipOpts(opts.Tooltip{
			Show: opts.Bool(true),
		}),
		charts.WithLegendOpts(opts.Legend{
			Show:   opts.Bool(true),
			Bottom: "0",
		}),
		charts.WithColorsOpts(opts.Colors(metabolismPalette)),
	)

	pie.AddSeries("Metabolism", data).
		SetSeriesOptions(
			charts.WithPieChartOpts(opts.PieChart{
				Radius: []string{"55%", "75%"},
			}),
			charts.WithLabelOpts(opts.Label{
				Show: opts.Bool(false),
			}),
		)

	var buf bytes.Buffer
	if err := pie.Render(&buf); err != nil {
		return "", err
	}

	//nolint:gosec // go-echarts output with sanitized labels.
	return htmltemplate.HTML(buf.String()), nil
}

// generateTrendChart draws the previous, current and projected scores.
func generateTrendChart(ctx Context, points analysis.TrendPoints) (htmltemplate.HTML, error) {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(ctx.initOpts()),
		charts.WithTooltipOpts(opts.Tooltip{
			Show: opts.Bool(true),
		}),
		charts.WithLegendOpts(opts.Legend{
			Show: opts.Bool(false),
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Min: 0,
			Max: 100,
		}),
	)

	yData := []opts.LineData{
		{Value: chartValue(points.Previous)},
		{Value: chartValue(points.Current)},
		{Value: chartValue(points.Projected)},
	}

	line.SetXAxis([]string{"Previous", "Current", "Projected"}).
		AddSeries("Health Score Trend", yData).
		SetSeriesOptions(
			charts.WithLineChartOpts(opts.LineChart{
				Smooth:     opts.Bool(true),
				ShowSymbol: opts.Bool(true),
			}),
			charts.WithAreaStyleOpts(opts.AreaStyle{
				Opacity: opts.Float(0.1),
			}),
			charts.WithLineStyleOpts(opts.LineStyle{
				Color: "rgb(37, 99, 235)",
			}),
		)

	var buf bytes.Buffer
	if err := line.Render(&buf); err != nil {
		return "", err
	}

	//nolint:gosec // go-echarts output.
	return htmltemplate.HTML(buf.String()), nil
}
