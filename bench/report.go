package bench

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
	"golang.org/x/net/html"
)

const (
	chartWidth  = 900
	chartHeight = 400
	marginLeft  = 70
	marginRight = 20
	marginTop   = 20
	marginBot   = 50
	ticks       = 5
)

var palette = []string{"#1f77b4", "#ff7f0e", "#2ca02c", "#d62728", "#9467bd", "#8c564b", "#e377c2", "#7f7f7f"}

func element(tag string, attrs ...string) *html.Node {
	n := &html.Node{Type: html.ElementNode, Data: tag}
	for i := 0; i+1 < len(attrs); i += 2 {
		n.Attr = append(n.Attr, html.Attribute{Key: attrs[i], Val: attrs[i+1]})
	}
	return n
}

func text(s string) *html.Node {
	return &html.Node{Type: html.TextNode, Data: s}
}

func appendAll(parent *html.Node, children ...*html.Node) *html.Node {
	for _, c := range children {
		parent.AppendChild(c)
	}
	return parent
}

func num(f float64) string {
	return strconv.FormatFloat(f, 'f', 2, 64)
}

// WriteReport renders res as an HTML page: a size vs. runtime chart with one
// line per series, followed by the raw numbers.
func WriteReport(w io.Writer, title string, res *Results) error {
	doc := &html.Node{Type: html.DocumentNode}
	doc.AppendChild(&html.Node{Type: html.DoctypeNode, Data: "html"})

	head := appendAll(element("head"),
		element("meta", "charset", "utf-8"),
		appendAll(element("title"), text(title)),
	)
	body := appendAll(element("body"),
		appendAll(element("h1"), text(title)),
		chart(res),
		table(res),
	)
	doc.AppendChild(appendAll(element("html"), head, body))
	return html.Render(w, doc)
}

func chart(res *Results) *html.Node {
	var maxKB, maxSec float64
	for _, s := range res.Samples {
		maxKB = max(maxKB, float64(s.Size)/1000)
	}
	for _, series := range res.Series {
		for _, p := range series.Points {
			maxSec = max(maxSec, p.Elapsed.Seconds())
		}
	}
	if maxKB == 0 {
		maxKB = 1
	}
	if maxSec == 0 {
		maxSec = 1
	}

	plotW := float64(chartWidth - marginLeft - marginRight)
	plotH := float64(chartHeight - marginTop - marginBot)
	x := func(kb float64) float64 { return marginLeft + kb/maxKB*plotW }
	y := func(sec float64) float64 { return marginTop + plotH - sec/maxSec*plotH }

	svg := element("svg",
		"xmlns", "http://www.w3.org/2000/svg",
		"width", strconv.Itoa(chartWidth),
		"height", strconv.Itoa(chartHeight),
		"viewBox", fmt.Sprintf("0 0 %d %d", chartWidth, chartHeight),
	)

	// Axes.
	svg.AppendChild(element("line", "x1", num(x(0)), "y1", num(y(0)), "x2", num(x(maxKB)), "y2", num(y(0)), "stroke", "black"))
	svg.AppendChild(element("line", "x1", num(x(0)), "y1", num(y(0)), "x2", num(x(0)), "y2", num(y(maxSec)), "stroke", "black"))
	for i := 0; i <= ticks; i++ {
		kb := maxKB * float64(i) / ticks
		sec := maxSec * float64(i) / ticks
		svg.AppendChild(appendAll(element("text", "x", num(x(kb)), "y", num(y(0)+18), "text-anchor", "middle", "font-size", "11"),
			text(strconv.FormatFloat(kb, 'f', 0, 64))))
		svg.AppendChild(appendAll(element("text", "x", num(x(0)-6), "y", num(y(sec)+4), "text-anchor", "end", "font-size", "11"),
			text(strconv.FormatFloat(sec, 'f', 3, 64))))
	}
	svg.AppendChild(appendAll(element("text", "x", num(x(maxKB/2)), "y", strconv.Itoa(chartHeight-8), "text-anchor", "middle"),
		text("Input size [kByte]")))
	svg.AppendChild(appendAll(element("text", "x", "14", "y", num(y(maxSec/2)), "text-anchor", "middle",
		"transform", fmt.Sprintf("rotate(-90 14 %s)", num(y(maxSec/2)))),
		text("Runtime [seconds]")))

	for i, series := range res.Series {
		color := palette[i%len(palette)]
		var pts []string
		for j, p := range series.Points {
			if j >= len(res.Samples) {
				break
			}
			px, py := x(float64(res.Samples[j].Size)/1000), y(p.Elapsed.Seconds())
			pts = append(pts, num(px)+","+num(py))
			svg.AppendChild(element("circle", "cx", num(px), "cy", num(py), "r", "3", "fill", color))
		}
		svg.AppendChild(element("polyline", "points", strings.Join(pts, " "), "fill", "none", "stroke", color, "data-series", series.Label))

		ly := marginTop + 16*i
		svg.AppendChild(element("rect", "x", num(x(0)+12), "y", strconv.Itoa(ly), "width", "10", "height", "10", "fill", color))
		svg.AppendChild(appendAll(element("text", "x", num(x(0)+28), "y", strconv.Itoa(ly+9), "font-size", "12"), text(series.Label)))
	}
	return svg
}

func table(res *Results) *html.Node {
	header := appendAll(element("tr"), appendAll(element("th"), text("size")))
	for _, series := range res.Series {
		header.AppendChild(appendAll(element("th"), text(series.Label)))
	}
	t := appendAll(element("table", "border", "1"), header)

	for j, s := range res.Samples {
		row := appendAll(element("tr"), appendAll(element("td"), text(humanize.Bytes(uint64(s.Size)))))
		for _, series := range res.Series {
			cell := ""
			if j < len(series.Points) {
				cell = formatMeasurement(series.Points[j])
			}
			row.AppendChild(appendAll(element("td"), text(cell)))
		}
		t.AppendChild(row)
	}
	return t
}

func formatMeasurement(m Measurement) string {
	s := strconv.FormatFloat(m.Elapsed.Seconds(), 'f', 4, 64)
	switch {
	case m.Err != nil:
		s += " (failed)"
	case m.Capped:
		s += " (capped)"
	}
	return s
}
