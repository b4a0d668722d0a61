// SpaceX Launch Dashboard: launch-outcome charts over a static launch dataset

// Copyright (C) 2014 Christian Paro <christian.paro@gmail.com>,
//                                   <cparo@digitalocean.com>

// This program is free software: you can redistribute it and/or modify it under
// the terms of the GNU General Public License version 2 as published by the
// Free Software Foundation.

// This program is distributed in the hope that it will be useful, but WITHOUT
// ANY WARRANTY; without even the implied warranty of MERCHANTABILITY or FITNESS
// FOR A PARTICULAR PURPOSE. See the GNU General Public License for more
// details.

// You should have received a copy of the GNU General Public License along with
// this program. If not, see <http://www.gnu.org/licenses/>.

package main

import (
	"context"
	"encoding/json"
	"html/template"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	dashboard "github.com/kurbaleva/Applied-Data-Science-Capstone"
	"github.com/kurbaleva/Applied-Data-Science-Capstone/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func testServer(t *testing.T) (*server, *httptest.Server) {
	t.Helper()
	d := dashboard.New(dashboard.NewTable([]dashboard.LaunchRecord{
		{Site: "A", PayloadMass: 1000, Class: 1, BoosterCategory: "v1"},
		{Site: "B", PayloadMass: 5000, Class: 0, BoosterCategory: "v2"},
		{Site: "B", PayloadMass: 5600, Class: 1, BoosterCategory: "FT"}}))
	s, err := newServer(d, zap.NewNop(), 400, 300)
	require.NoError(t, err)
	ts := httptest.NewServer(s.routes())
	t.Cleanup(ts.Close)
	return s, ts
}

func get(t *testing.T, url string) (*http.Response, string) {
	t.Helper()
	resp, err := http.Get(url)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, string(body)
}

func TestPage(t *testing.T) {
	_, ts := testServer(t)
	resp, body := get(t, ts.URL+"/")

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Type"), "text/html")
	assert.Contains(t, body, "SpaceX Launch Records Dashboard")
	assert.Contains(t, body, `<option value="ALL" selected>All Sites</option>`)
	assert.Contains(t, body, `<option value="B">B</option>`)
	assert.Contains(t, body, `id="payload-slider-lo"`)
	assert.Contains(t, body, `step="any"`)
	assert.Contains(t, body, `style="color:#503D36;font-size:40px;text-align:center;"`)
	assert.Contains(t, body, `<option value="6000" label="6000"></option>`)
	assert.Contains(t, body, `<div id="success-pie-chart" class="graph">`)
	assert.Contains(t, body, `<div id="success-payload-scatter-chart" class="graph">`)
	assert.GreaterOrEqual(t, strings.Count(body, "<svg"), 2)
}

func TestCSS(t *testing.T) {
	css := pageFuncs["css"].(func(map[string]string) template.CSS)

	tests := []struct {
		name  string
		style map[string]string
		want  template.CSS
	}{
		{"sorted", map[string]string{"font-size": "40px", "color": "#503D36"}, "color:#503D36;font-size:40px;"},
		{"empty", nil, ""},
		{"drops breakout", map[string]string{"color": "red;background:url(x)", "margin": "0 auto"}, "margin:0 auto;"},
		{"drops bad key", map[string]string{"a:b": "1"}, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, css(tt.style))
		})
	}
}

func TestChartSVGFallsBackToEmptyChart(t *testing.T) {
	s, _ := testServer(t)
	broken := dashboard.Output{ID: dashboard.ScatterChartID, Figure: dashboard.Figure{
		Kind:  "histogram",
		Title: "Broken chart",
		Series: []dashboard.Series{{Name: "v1", Points: []dashboard.Point{
			{Payload: 1000, Class: 1, Site: "A"}}}}}}

	_, err := s.renderSVG(broken.Figure)
	require.Error(t, err)

	svg := s.chartSVG(zap.NewNop(), broken)
	assert.Contains(t, svg, "<svg")
	assert.Contains(t, svg, "Broken chart")
}

func TestLayoutAction(t *testing.T) {
	_, ts := testServer(t)
	resp, body := get(t, ts.URL+"/layout")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var got struct {
		Layout dashboard.Layout    `json:"layout"`
		Stats  dashboard.Stats     `json:"stats"`
		Value  dashboard.Selection `json:"value"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &got))
	assert.Equal(t, 6000.0, got.Stats.RoundedMaxPayload)
	assert.Equal(t, dashboard.Selection{Site: "ALL", Payload: dashboard.Range{Lo: 1000, Hi: 6000}}, got.Value)
	assert.Len(t, got.Layout.Controls.Dropdown.Options, 3)
}

func TestFigureAction(t *testing.T) {
	_, ts := testServer(t)

	tests := []struct {
		name   string
		query  string
		points int
	}{
		{"defaults", "", 3},
		{"range excludes A", "?payload-min=2000&payload-max=6000", 2},
		{"site A", "?site=A", 1},
		{"malformed range falls back", "?payload-min=heavy", 3},
		{"range is clamped", "?payload-min=-100&payload-max=99999", 3},
		{"unknown site", "?site=Boca+Chica", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, body := get(t, ts.URL+"/figure/success-payload-scatter-chart"+tt.query)
			require.Equal(t, http.StatusOK, resp.StatusCode)
			var fig dashboard.Figure
			require.NoError(t, json.Unmarshal([]byte(body), &fig))
			assert.Len(t, fig.Points(), tt.points)
		})
	}

	resp, body := get(t, ts.URL+"/figure/success-pie-chart?site=B")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var pie dashboard.Figure
	require.NoError(t, json.Unmarshal([]byte(body), &pie))
	assert.Equal(t, "Total Success Launches for site B", pie.Title)
	assert.Equal(t, []dashboard.Slice{{Label: "0", Value: 1}, {Label: "1", Value: 1}}, pie.Slices)

	resp, _ = get(t, ts.URL+"/figure/no-such-chart")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestRenderAction(t *testing.T) {
	_, ts := testServer(t)

	resp, body := get(t, ts.URL+"/render/success-pie-chart.svg")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "image/svg+xml", resp.Header.Get("Content-Type"))
	assert.Contains(t, body, "<svg")

	resp, body = get(t, ts.URL+"/render/success-payload-scatter-chart.png?site=B&width=200&height=100")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "image/png", resp.Header.Get("Content-Type"))
	assert.True(t, strings.HasPrefix(body, "\x89PNG"))

	resp, _ = get(t, ts.URL+"/render/success-pie-chart.gif")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp, _ = get(t, ts.URL+"/render/no-such-chart.svg")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestUnknownAction(t *testing.T) {
	_, ts := testServer(t)
	resp, _ := get(t, ts.URL+"/vis-histogram")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp, err := http.Post(ts.URL+"/figure/success-pie-chart", "text/plain", nil)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
}

func readUpdate(t *testing.T, conn *websocket.Conn) update {
	t.Helper()
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(10*time.Second)))
	var u update
	require.NoError(t, conn.ReadJSON(&u))
	return u
}

func TestSession(t *testing.T) {
	_, ts := testServer(t)

	conn, _, err := websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(ts.URL, "http")+"/ws", nil)
	require.NoError(t, err)
	defer conn.Close()

	// Initial state for every placeholder.
	pie := readUpdate(t, conn)
	assert.Equal(t, dashboard.PieChartID, pie.Output)
	assert.Equal(t, "Total Success Launches By Site", pie.Figure.Title)
	assert.Contains(t, pie.SVG, "<svg")
	scatter := readUpdate(t, conn)
	assert.Equal(t, dashboard.ScatterChartID, scatter.Output)
	assert.Len(t, scatter.Figure.Points(), 3)

	// The slider only drives the scatter chart.
	require.NoError(t, conn.WriteJSON(map[string]any{
		"control": dashboard.PayloadSliderID,
		"value":   []float64{2000, 5000}}))
	u := readUpdate(t, conn)
	assert.Equal(t, dashboard.ScatterChartID, u.Output)
	assert.Equal(t, []dashboard.Point{{Payload: 5000, Class: 0, Site: "B"}}, u.Figure.Points())

	// Malformed and unknown events are ignored without closing the session.
	require.NoError(t, conn.WriteMessage(websocket.TextMessage, []byte("{not json")))
	require.NoError(t, conn.WriteJSON(map[string]any{"control": "no-such-control", "value": 1}))

	// The dropdown drives both charts, and the slider position is kept.
	require.NoError(t, conn.WriteJSON(map[string]any{
		"control": dashboard.SiteDropdownID,
		"value":   "A"}))
	u = readUpdate(t, conn)
	assert.Equal(t, dashboard.PieChartID, u.Output)
	assert.Equal(t, "Total Success Launches for site A", u.Figure.Title)
	u = readUpdate(t, conn)
	assert.Equal(t, dashboard.ScatterChartID, u.Output)
	assert.Empty(t, u.Figure.Points())
	assert.Contains(t, u.SVG, "No launches match the selection")
}

func TestApply(t *testing.T) {
	s, _ := testServer(t)
	sel := s.dash.DefaultSelection()

	got, err := s.apply(sel, event{dashboard.PayloadSliderID, json.RawMessage(`[7000, 0]`)})
	require.NoError(t, err)
	assert.Equal(t, dashboard.Range{Lo: 1000, Hi: 6000}, got.Payload)

	got, err = s.apply(sel, event{dashboard.SiteDropdownID, json.RawMessage(`"B"`)})
	require.NoError(t, err)
	assert.Equal(t, "B", got.Site)

	_, err = s.apply(sel, event{dashboard.SiteDropdownID, json.RawMessage(`42`)})
	assert.Error(t, err)

	_, err = s.apply(sel, event{"no-such-control", json.RawMessage(`1`)})
	assert.Error(t, err)
}

func TestServeShutsDownOnCancel(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Listen = "127.0.0.1:0"
	cfg.ShutdownTimeout = time.Second

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- serve(ctx, http.NotFoundHandler(), cfg, zap.NewNop())
	}()
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("serve did not return after cancellation")
	}
}
