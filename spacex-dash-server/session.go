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
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	dashboard "github.com/kurbaleva/Applied-Data-Science-Capstone"
	"go.uber.org/zap"
)

// event is a control change sent by the browser.
type event struct {
	Control string          `json:"control"`
	Value   json.RawMessage `json:"value"`
}

// update carries a freshly produced figure for one placeholder.
type update struct {
	Output string           `json:"output"`
	Figure dashboard.Figure `json:"figure"`
	SVG    string           `json:"svg,omitempty"`
}

// session holds the control values of one connected viewer. It is only
// touched from the goroutine serving that viewer's connection.
type session struct {
	id        string
	conn      *websocket.Conn
	selection dashboard.Selection
	log       *zap.Logger
}

// serveSession upgrades the request to a websocket, pushes the initial charts
// and then answers every control change with the figures bound to that
// control. Events are handled one at a time, so the last event wins.
func (s *server) serveSession(response http.ResponseWriter, request *http.Request) {

	conn, err := s.upgrader.Upgrade(response, request, nil)
	if err != nil {
		// The upgrader has already replied with an HTTP error.
		s.log.Debug("websocket upgrade failed", zap.Error(err))
		return
	}
	defer conn.Close()

	id := uuid.NewString()
	sess := &session{
		id:        id,
		conn:      conn,
		selection: s.dash.DefaultSelection(),
		log:       s.log.With(zap.String("session", id))}

	sess.log.Debug("session opened", zap.String("remote", request.RemoteAddr))
	defer sess.log.Debug("session closed")

	if err := s.push(sess, s.dash.RenderAll(sess.selection)); err != nil {
		sess.log.Debug("failed to push initial charts", zap.Error(err))
		return
	}

	for {
		_, msg, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(
				err,
				websocket.CloseGoingAway,
				websocket.CloseNormalClosure,
				websocket.CloseNoStatusReceived) {
				sess.log.Warn("session read failed", zap.Error(err))
			}
			return
		}

		var e event
		if err := json.Unmarshal(msg, &e); err != nil {
			sess.log.Warn("ignoring malformed event", zap.Error(err))
			continue
		}

		selection, err := s.apply(sess.selection, e)
		if err != nil {
			sess.log.Warn(
				"ignoring event",
				zap.String("control", e.Control),
				zap.Error(err))
			continue
		}
		sess.selection = selection
		sess.log.Debug(
			"control changed",
			zap.String("control", e.Control),
			zap.Any("selection", selection))

		if err := s.push(sess, s.dash.Dispatch(selection, e.Control)); err != nil {
			sess.log.Debug("failed to push charts", zap.Error(err))
			return
		}
	}
}

// apply returns sel updated with the value carried by e.
func (s *server) apply(sel dashboard.Selection, e event) (dashboard.Selection, error) {
	switch e.Control {
	case dashboard.SiteDropdownID:
		var site string
		if err := json.Unmarshal(e.Value, &site); err != nil {
			return sel, fmt.Errorf("site value: %w", err)
		}
		sel.Site = site
	case dashboard.PayloadSliderID:
		var v [2]float64
		if err := json.Unmarshal(e.Value, &v); err != nil {
			return sel, fmt.Errorf("payload range value: %w", err)
		}
		sel.Payload = dashboard.Range{Lo: v[0], Hi: v[1]}
	default:
		return sel, fmt.Errorf("unknown control %q", e.Control)
	}
	return s.dash.Clamp(sel), nil
}

func (s *server) push(sess *session, outputs []dashboard.Output) error {
	for _, o := range outputs {
		svg := s.chartSVG(sess.log, o)
		if err := sess.conn.WriteJSON(update{o.ID, o.Figure, svg}); err != nil {
			return err
		}
	}
	return nil
}
