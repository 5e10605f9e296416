package service

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"math"
	"strconv"

	"leadership-assessment-backend/internal/model"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
	"go.uber.org/zap"
)

type ChartConfig struct {
	Title  string
	XLabel string
	YLabel string
	Width  int
	Height int
}

func DefaultChartConfig() ChartConfig {
	return ChartConfig{
		Title:  "Assessment Summary by Leadership Style",
		XLabel: "Leadership Style",
		YLabel: "Score",
		Width:  1000,
		Height: 600,
	}
}

var barColor = drawing.Color{R: 0, G: 0, B: 255, A: 255}

type ChartRenderer struct {
	cfg    ChartConfig
	logger *zap.Logger
}

func NewChartRenderer(cfg ChartConfig, logger *zap.Logger) *ChartRenderer {
	def := DefaultChartConfig()
	if cfg.Title == "" {
		cfg.Title = def.Title
	}
	if cfg.XLabel == "" {
		cfg.XLabel = def.XLabel
	}
	if cfg.YLabel == "" {
		cfg.YLabel = def.YLabel
	}
	if cfg.Width <= 0 {
		cfg.Width = def.Width
	}
	if cfg.Height <= 0 {
		cfg.Height = def.Height
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ChartRenderer{cfg: cfg, logger: logger.Named("chart")}
}

// Render draws one bar per style and returns the PNG as base64 text.
func (c *ChartRenderer) Render(summary model.ScoreSummary) (string, error) {
	png, err := c.RenderPNG(summary)
	if err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(png), nil
}

func (c *ChartRenderer) RenderPNG(summary model.ScoreSummary) ([]byte, error) {
	var buf bytes.Buffer
	if len(summary) == 0 {
		if err := c.renderEmpty(&buf); err != nil {
			return nil, fmt.Errorf("render empty chart: %w", err)
		}
		return buf.Bytes(), nil
	}

	bars := make([]chart.Value, 0, len(summary))
	labels := make([]string, 0, len(summary))
	for _, s := range summary {
		bars = append(bars, chart.Value{
			Label: s.Style,
			Value: s.Score,
			Style: chart.Style{FillColor: barColor, StrokeColor: barColor, StrokeWidth: 1},
		})
		labels = append(labels, s.Style)
	}

	bottom, err := c.bottomPadding(labels)
	if err != nil {
		return nil, fmt.Errorf("measure axis labels: %w", err)
	}
	bound, ticks := scoreTicks(summary)

	bc := chart.BarChart{
		Title:  c.cfg.Title,
		Width:  c.cfg.Width,
		Height: c.cfg.Height,
		Background: chart.Style{
			FillColor:   drawing.ColorWhite,
			StrokeColor: drawing.ColorWhite,
			Padding:     chart.Box{Top: 48, Left: 24, Right: 24, Bottom: bottom},
		},
		XAxis: chart.Style{
			FontSize:            chart.DefaultAxisFontSize,
			TextRotationDegrees: labelRotation,
			TextWrap:            chart.TextWrapNone,
		},
		YAxis: chart.YAxis{
			Name:  c.cfg.YLabel,
			Range: &chart.ContinuousRange{Min: -bound, Max: bound},
			Ticks: ticks,
		},
		BarWidth:     60,
		UseBaseValue: true,
		BaseValue:    0,
		Bars:         bars,
		Elements:     []chart.Renderable{c.xAxisTitle()},
	}

	if err := bc.Render(chart.PNG, &buf); err != nil {
		c.logger.Debug("bar chart render failed", zap.Int("bars", len(bars)), zap.Error(err))
		return nil, fmt.Errorf("render bar chart: %w", err)
	}
	return buf.Bytes(), nil
}

const (
	labelRotation = 45.0
	titleBand     = 28
	maxYTicks     = 10
)

// scoreTicks returns a symmetric bound of at least 1 (go-chart rejects a
// zero-height range) and integer ticks from -bound to bound.
func scoreTicks(summary model.ScoreSummary) (float64, []chart.Tick) {
	bound := 1.0
	for _, s := range summary {
		bound = math.Max(bound, math.Ceil(math.Abs(s.Score)))
	}
	step := math.Ceil(2 * bound / maxYTicks)
	bound = math.Ceil(bound/step) * step

	var ticks []chart.Tick
	for v := -bound; v <= bound; v += step {
		ticks = append(ticks, chart.Tick{Value: v, Label: strconv.Itoa(int(v))})
	}
	return bound, ticks
}

// bottomPadding reserves room for the rotated style labels plus the x axis
// title underneath them. BarChart applies the bottom padding twice when it
// lays out the x axis, so half of the needed height is enough.
func (c *ChartRenderer) bottomPadding(labels []string) (int, error) {
	r, err := chart.PNG(c.cfg.Width, c.cfg.Height)
	if err != nil {
		return 0, err
	}
	font, err := chart.GetDefaultFont()
	if err != nil {
		return 0, err
	}
	r.SetDPI(chart.DefaultDPI)
	r.SetFont(font)
	r.SetFontSize(chart.DefaultAxisFontSize)
	r.SetTextRotation(chart.DegreesToRadians(labelRotation))

	extent := 0
	for _, label := range labels {
		extent = max(extent, r.MeasureText(label).Height())
	}

	needed := chart.DefaultXAxisMargin + extent + titleBand + chart.DefaultVerticalTickHeight
	padding := (needed + 1) / 2
	return min(padding, c.cfg.Height/4), nil
}

func (c *ChartRenderer) xAxisTitle() chart.Renderable {
	return func(r chart.Renderer, _ chart.Box, defaults chart.Style) {
		chart.Draw.TextWithin(r, c.cfg.XLabel, chart.Box{
			Top: c.cfg.Height - titleBand, Left: 0, Right: c.cfg.Width, Bottom: c.cfg.Height,
		}, chart.Style{
			FontSize:            11,
			FontColor:           drawing.ColorBlack,
			TextHorizontalAlign: chart.TextHorizontalAlignCenter,
			TextVerticalAlign:   chart.TextVerticalAlignMiddle,
		}.InheritFrom(defaults))
	}
}

func (c *ChartRenderer) renderEmpty(buf *bytes.Buffer) error {
	r, err := chart.PNG(c.cfg.Width, c.cfg.Height)
	if err != nil {
		return err
	}
	font, err := chart.GetDefaultFont()
	if err != nil {
		return err
	}

	canvas := chart.Box{Top: 0, Left: 0, Right: c.cfg.Width, Bottom: c.cfg.Height}
	chart.Draw.Box(r, canvas, chart.Style{
		FillColor:   drawing.ColorWhite,
		StrokeColor: drawing.ColorWhite,
		StrokeWidth: 1,
	})
	chart.Draw.TextWithin(r, c.cfg.Title, chart.Box{Top: 0, Left: 0, Right: c.cfg.Width, Bottom: 48}, chart.Style{
		Font:                font,
		FontSize:            14,
		FontColor:           drawing.ColorBlack,
		TextHorizontalAlign: chart.TextHorizontalAlignCenter,
		TextVerticalAlign:   chart.TextVerticalAlignMiddle,
	})
	return r.Save(buf)
}
