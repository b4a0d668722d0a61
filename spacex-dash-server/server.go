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
	"bytes"
	"encoding/json"
	"fmt"
	"html/template"
	"net/http"
	"path"
	"strings"

	"github.com/gorilla/websocket"
	dashboard "github.com/kurbaleva/Applied-Data-Science-Capstone"
	"github.com/kurbaleva/Applied-Data-Science-Capstone/plot"
	"go.uber.org/zap"
)

const maxChartSize = 4096 // Largest chart dimension a request may ask for.

type server struct {
	dash     *dashboard.Dashboard
	log      *zap.Logger
	width    int // Default rendered chart width, in pixels.
	height   int // Default rendered chart height, in pixels.
	page     *template.Template
	upgrader websocket.Upgrader

	// Mapping of action names to handler functions:
	actions map[string]func(http.ResponseWriter, string, *options)
}

func newServer(
	d *dashboard.Dashboard,
	logger *zap.Logger,
	width int,
	height int) (*server, error) {

	page, err := template.New("page").Funcs(pageFuncs).Parse(pageTemplate)
	if err != nil {
		return nil, fmt.Errorf("parse page template: %w", err)
	}

	s := &server{
		dash:   d,
		log:    logger,
		width:  width,
		height: height,
		page:   page,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 4096}}

	s.actions = map[string]func(http.ResponseWriter, string, *options){
		"layout": s.serveLayout,
		"figure": s.serveFigure,
		"render": s.serveRender,
	}

	return s, nil
}

func (s *server) routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", s.serveSession)
	mux.HandleFunc("/", s.responder)
	return mux
}

// responder serves the page at the root and dispatches every other path of
// the form /{action}/{argument} through the action table.
func (s *server) responder(response http.ResponseWriter, request *http.Request) {

	if request.Method != http.MethodGet && request.Method != http.MethodHead {
		http.Error(response, "Method Not Allowed", http.StatusMethodNotAllowed)
		return
	}

	p := strings.Trim(request.URL.Path, "/")
	if p == "" {
		s.servePage(response)
		return
	}

	action, argument, _ := strings.Cut(p, "/")
	handler, exists := s.actions[action]
	if !exists {
		s.log.Info(
			"unrecognized action",
			zap.String("action", action),
			zap.String("remote", request.RemoteAddr))
		http.NotFound(response, request)
		return
	}

	handler(response, argument, s.parseOptions(request.URL.Query()))
}

// pageData is what the page template is executed with.
type pageData struct {
	Layout    dashboard.Layout
	Charts    map[string]template.HTML // Initial chart SVG by placeholder id.
	SiteID    string
	SliderID  string
	SocketURL string
}

func (s *server) servePage(response http.ResponseWriter) {

	charts := make(map[string]template.HTML)
	for _, o := range s.dash.RenderAll(s.dash.DefaultSelection()) {
		// The SVG comes from the chart renderer, not from the request.
		charts[o.ID] = template.HTML(s.chartSVG(s.log, o))
	}

	var page bytes.Buffer
	err := s.page.Execute(&page, pageData{
		Layout:    s.dash.Layout(),
		Charts:    charts,
		SiteID:    dashboard.SiteDropdownID,
		SliderID:  dashboard.PayloadSliderID,
		SocketURL: "/ws"})
	if err != nil {
		s.log.Error("failed to execute page template", zap.Error(err))
		http.Error(response, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	response.Header().Set("Content-Type", "text/html; charset=utf-8")
	response.Write(page.Bytes())
}

func (s *server) serveLayout(response http.ResponseWriter, _ string, _ *options) {
	s.writeJSON(response, struct {
		Layout dashboard.Layout    `json:"layout"`
		Stats  dashboard.Stats     `json:"stats"`
		Value  dashboard.Selection `json:"value"`
	}{s.dash.Layout(), s.dash.Stats(), s.dash.DefaultSelection()})
}

func (s *server) serveFigure(response http.ResponseWriter, output string, r *options) {
	fig, ok := s.dash.Figure(output, r.selection)
	if !ok {
		http.Error(response, "Unknown Output", http.StatusNotFound)
		return
	}
	s.writeJSON(response, fig)
}

// serveRender renders an output as an image; the argument is the output id
// with the image format as its extension, e.g. success-pie-chart.svg.
func (s *server) serveRender(response http.ResponseWriter, file string, r *options) {

	ext := path.Ext(file)
	format, err := plot.ParseFormat(ext)
	if err != nil {
		http.Error(response, "Unsupported Image Format", http.StatusNotFound)
		return
	}

	output := strings.TrimSuffix(file, ext)
	fig, ok := s.dash.Figure(output, r.selection)
	if !ok {
		http.Error(response, "Unknown Output", http.StatusNotFound)
		return
	}

	var img bytes.Buffer
	if err := plot.Render(fig, format, r.w, r.h, &img); err != nil {
		s.log.Error(
			"failed to render chart",
			zap.String("output", output),
			zap.Any("selection", r.selection),
			zap.Error(err))
		http.Error(response, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	response.Header().Set("Content-Type", format.ContentType())
	response.Write(img.Bytes())
}

func (s *server) renderSVG(fig dashboard.Figure) (string, error) {
	var svg bytes.Buffer
	if err := plot.Render(fig, plot.SVG, s.width, s.height, &svg); err != nil {
		return "", err
	}
	return svg.String(), nil
}

// chartSVG renders o for the page. A chart that fails to render is replaced by
// the empty-state chart so the browser never keeps a stale one.
func (s *server) chartSVG(log *zap.Logger, o dashboard.Output) string {
	svg, err := s.renderSVG(o.Figure)
	if err == nil {
		return svg
	}
	log.Error("failed to render chart", zap.String("output", o.ID), zap.Error(err))
	svg, err = s.renderSVG(dashboard.Figure{Kind: o.Figure.Kind, Title: o.Figure.Title})
	if err != nil {
		log.Error("failed to render empty chart", zap.String("output", o.ID), zap.Error(err))
	}
	return svg
}

func (s *server) writeJSON(response http.ResponseWriter, v any) {
	body, err := json.Marshal(v)
	if err != nil {
		s.log.Error("failed to encode response", zap.Error(err))
		http.Error(response, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	response.Header().Set("Content-Type", "application/json")
	response.Write(body)
}
