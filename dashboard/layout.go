package dashboard

// ChartLayout describes the look of the price chart. Field names follow the
// Plotly layout schema so the value can be handed to the browser as is.
type ChartLayout struct {
	Template     string      `json:"template"`
	Title        string      `json:"title"`
	Font         ChartFont   `json:"font"`
	PaperBgColor string      `json:"paper_bgcolor"`
	PlotBgColor  string      `json:"plot_bgcolor"`
	XAxis        ChartAxis   `json:"xaxis"`
	YAxis        ChartAxis   `json:"yaxis"`
	Margin       ChartMargin `json:"margin"`
}

type ChartFont struct {
	Family string `json:"family"`
	Size   int    `json:"size"`
	Color  string `json:"color"`
}

type ChartAxis struct {
	ShowGrid  bool   `json:"showgrid"`
	ZeroLine  *bool  `json:"zeroline,omitempty"`
	GridColor string `json:"gridcolor,omitempty"`
}

type ChartMargin struct {
	T int `json:"t"`
	B int `json:"b"`
	L int `json:"l"`
	R int `json:"r"`
}

// TraceStyle is the style of the single price trace
type TraceStyle struct {
	Mode   string      `json:"mode"`
	Line   TraceLine   `json:"line"`
	Marker TraceMarker `json:"marker"`
}

type TraceLine struct {
	Color string `json:"color"`
	Width int    `json:"width"`
}

type TraceMarker struct {
	Size int `json:"size"`
}

// NewChartLayout returns the dark purple layout with the given title
func NewChartLayout(title string) ChartLayout {
	zeroLine := false
	return ChartLayout{
		Template: "plotly_dark",
		Title:    title,
		Font: ChartFont{
			Family: "Roboto Mono, monospace",
			Size:   14,
			Color:  "#d3b3ff",
		},
		PaperBgColor: "rgba(0,0,0,0)",
		PlotBgColor:  "rgba(0,0,0,0)",
		XAxis:        ChartAxis{ShowGrid: false, ZeroLine: &zeroLine},
		YAxis:        ChartAxis{ShowGrid: true, GridColor: "rgba(115, 90, 255, 0.2)"},
		Margin:       ChartMargin{T: 50, B: 40, L: 50, R: 50},
	}
}

// DefaultTraceStyle returns the line-with-markers style of the price trace
func DefaultTraceStyle() TraceStyle {
	return TraceStyle{
		Mode:   "lines+markers",
		Line:   TraceLine{Color: "#b266ff", Width: 3},
		Marker: TraceMarker{Size: 5},
	}
}
