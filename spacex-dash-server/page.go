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
	"html/template"
	"sort"
	"strings"
)

var pageFuncs = template.FuncMap{
	// css flattens a component style map into a style attribute value.
	"css": func(style map[string]string) template.CSS {
		keys := make([]string, 0, len(style))
		for k := range style {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		var b strings.Builder
		for _, k := range keys {
			if !plainCSS(k) || !plainCSS(style[k]) {
				continue
			}
			b.WriteString(k)
			b.WriteByte(':')
			b.WriteString(style[k])
			b.WriteByte(';')
		}
		return template.CSS(b.String())
	},
}

// plainCSS reports whether s holds only characters that cannot end a
// declaration or open a url, comment or string.
func plainCSS(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		case strings.ContainsRune("#-.%, ", r):
		default:
			return false
		}
	}
	return true
}

const pageTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>{{.Layout.Title}}</title>
<style>
  body { font-family: sans-serif; margin: 0 auto; max-width: 960px; padding: 16px; }
  select { width: 100%; padding: 6px; font-size: 15px; }
  .graph { min-height: 120px; }
  .graph svg { max-width: 100%; height: auto; }
  .slider { position: relative; }
  .slider input[type=range] { width: 100%; }
  .slider output { display: block; text-align: center; color: #555; }
</style>
</head>
<body>
{{- range .Layout.Components}}
{{- if eq .Kind "heading"}}
<h1 style="{{css .Style}}">{{.Text}}</h1>
{{- else if eq .Kind "paragraph"}}
<p>{{.Text}}</p>
{{- else if eq .Kind "break"}}
<br>
{{- else if eq .Kind "dropdown"}}
{{- with $.Layout.Controls.Dropdown}}
<select id="{{.ID}}" title="{{.Placeholder}}">
{{- $selected := .Value}}
{{- range .Options}}
  <option value="{{.Value}}"{{if eq .Value $selected}} selected{{end}}>{{.Label}}</option>
{{- end}}
</select>
{{- end}}
{{- else if eq .Kind "range-slider"}}
{{- with $.Layout.Controls.Slider}}
<div id="{{.ID}}" class="slider">
  <input type="range" id="{{.ID}}-lo" min="{{.Min}}" max="{{.Max}}" step="any" value="{{.Value.Lo}}" list="{{.ID}}-marks">
  <input type="range" id="{{.ID}}-hi" min="{{.Min}}" max="{{.Max}}" step="any" value="{{.Value.Hi}}" list="{{.ID}}-marks">
  <datalist id="{{.ID}}-marks">
  {{- range .Marks}}
    <option value="{{.Value}}" label="{{.Label}}"></option>
  {{- end}}
  </datalist>
  <output id="{{.ID}}-value">{{.Value.Lo}} - {{.Value.Hi}}</output>
</div>
{{- end}}
{{- else if eq .Kind "graph"}}
<div id="{{.ID}}" class="graph">{{index $.Charts .ID}}</div>
{{- end}}
{{- end}}
<script>
(function () {
  var siteID = {{.SiteID}}, sliderID = {{.SliderID}};
  var scheme = location.protocol === "https:" ? "wss://" : "ws://";
  var ws = new WebSocket(scheme + location.host + {{.SocketURL}});

  ws.onmessage = function (msg) {
    var u = JSON.parse(msg.data);
    var el = document.getElementById(u.output);
    if (el && u.svg) {
      el.innerHTML = u.svg;
    }
  };

  function send(control, value) {
    if (ws.readyState === WebSocket.OPEN) {
      ws.send(JSON.stringify({control: control, value: value}));
    }
  }

  var site = document.getElementById(siteID);
  site.addEventListener("change", function () {
    send(siteID, site.value);
  });

  var lo = document.getElementById(sliderID + "-lo");
  var hi = document.getElementById(sliderID + "-hi");
  var label = document.getElementById(sliderID + "-value");
  function payloadChanged() {
    var a = Number(lo.value), b = Number(hi.value);
    var r = [Math.min(a, b), Math.max(a, b)];
    label.textContent = r[0] + " - " + r[1];
    send(sliderID, r);
  }
  lo.addEventListener("change", payloadChanged);
  hi.addEventListener("change", payloadChanged);
})();
</script>
</body>
</html>
`
