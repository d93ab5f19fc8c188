// Package server bridges the canvas to a real browser: it serves a page
// whose script executes the encoded command stream on a <canvas> element
// and returns measurement and stored values over a websocket. This is the
// serialized form of the executor boundary, one frame per value batch.
package server

import (
	"fmt"
	"net/http"

	"github.com/gorilla/websocket"

	"gocanvas/canvas"
	"gocanvas/command"
)

const page = `<!DOCTYPE html>
<html>
<head><title>gocanvas</title></head>
<body>
<canvas id="canvas" width="800" height="600"></canvas>
<script>
const ctx = document.getElementById("canvas").getContext("2d");
const store = {};
const ws = new WebSocket("ws://" + location.host + "/ws");
ws.onmessage = (ev) => {
	const cmds = JSON.parse(ev.data);
	const values = [];
	for (const cmd of cmds) {
		if (cmd.type === "field") {
			ctx[cmd.name] = cmd.value;
			continue;
		}
		const args = cmd.args || [];
		if (cmd.name === "measureText") {
			const m = ctx.measureText(args[1]);
			values.push({label: args[0], valuetype: "TextMetrics", value: {width: m.width}});
		} else if (cmd.name === "storeValue") {
			store[args[0]] = args[1];
		} else if (cmd.name === "drawImage") {
			const img = document.getElementById(args[0]);
			if (img) ctx.drawImage(img, ...args.slice(1));
		} else if (typeof ctx[cmd.name] === "function") {
			ctx[cmd.name](...args);
		}
	}
	for (const label in store) {
		values.push({label: label, valuetype: "storeValue", value: store[label]});
	}
	ws.send(JSON.stringify(values));
};
</script>
</body>
</html>
`

type Server struct {
	build    func(frame int) []canvas.Renderable
	upgrader websocket.Upgrader
}

func NewServer(build func(frame int) []canvas.Renderable) *Server {
	return &Server{build: build}
}

func (s *Server) ListenAndServe(addr string) error {
	mux := http.NewServeMux()
	mux.HandleFunc("/", s.HandlePage)
	mux.HandleFunc("/ws", s.handleSocket)
	fmt.Println("Canvas bridge listening on", addr)
	return http.ListenAndServe(addr, mux)
}

func (s *Server) HandlePage(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write([]byte(page))
}

// handleSocket runs the frame loop for one connected executor: push the
// first frame with no values, then render a new frame for every inbound
// value batch. The browser side drives the pace.
func (s *Server) handleSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		fmt.Println("Websocket upgrade failed:", err)
		return
	}
	defer conn.Close()

	frame := 0
	var values []command.CanvasValue
	for {
		cmds := canvas.Render(s.build(frame), values)
		data, err := command.Encode(cmds)
		if err != nil {
			fmt.Println("Encoding frame failed:", err)
			return
		}
		if err := conn.WriteMessage(websocket.TextMessage, data); err != nil {
			return
		}
		_, msg, err := conn.ReadMessage()
		if err != nil {
			return
		}
		values = command.DecodeValues(msg)
		frame++
	}
}
