package dashboard

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewChartLayout(t *testing.T) {
	layout := NewChartLayout("Bitcoin Price (Last 30 Days)")

	assert.Equal(t, "plotly_dark", layout.Template)
	assert.Equal(t, "Bitcoin Price (Last 30 Days)", layout.Title)
	assert.Equal(t, ChartFont{Family: "Roboto Mono, monospace", Size: 14, Color: "#d3b3ff"}, layout.Font)
	assert.Equal(t, "rgba(0,0,0,0)", layout.PaperBgColor)
	assert.Equal(t, "rgba(0,0,0,0)", layout.PlotBgColor)
	assert.False(t, layout.XAxis.ShowGrid)
	require.NotNil(t, layout.XAxis.ZeroLine)
	assert.False(t, *layout.XAxis.ZeroLine)
	assert.True(t, layout.YAxis.ShowGrid)
	assert.Equal(t, "rgba(115, 90, 255, 0.2)", layout.YAxis.GridColor)
	assert.Equal(t, ChartMargin{T: 50, B: 40, L: 50, R: 50}, layout.Margin)
}

func TestChartLayout_JSON(t *testing.T) {
	data, err := json.Marshal(NewChartLayout("t"))
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &decoded))

	assert.Equal(t, "rgba(0,0,0,0)", decoded["paper_bgcolor"])
	xaxis := decoded["xaxis"].(map[string]interface{})
	assert.Equal(t, false, xaxis["zeroline"])
	assert.Equal(t, false, xaxis["showgrid"])
	yaxis := decoded["yaxis"].(map[string]interface{})
	assert.NotContains(t, yaxis, "zeroline")
}

func TestDefaultTraceStyle(t *testing.T) {
	style := DefaultTraceStyle()

	assert.Equal(t, "lines+markers", style.Mode)
	assert.Equal(t, TraceLine{Color: "#b266ff", Width: 3}, style.Line)
	assert.Equal(t, 5, style.Marker.Size)
}
