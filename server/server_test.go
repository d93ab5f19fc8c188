package server

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/websocket"

	"gocanvas/canvas"
	"gocanvas/command"
)

func testBuild(frame int) []canvas.Renderable {
	return []canvas.Renderable{
		canvas.NewShapes(
			[]canvas.Setting{canvas.WithFill("red")},
			canvas.Rect{Width: 10, Height: 10},
		),
	}
}

func TestHandlePageServesExecutor(t *testing.T) {
	s := NewServer(testBuild)
	rec := httptest.NewRecorder()
	s.HandlePage(rec, httptest.NewRequest("GET", "/", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/html") {
		t.Errorf("content type = %q", ct)
	}
	body := rec.Body.String()
	for _, want := range []string{`<canvas id="canvas"`, "getContext", "measureText", "storeValue", "/ws"} {
		if !strings.Contains(body, want) {
			t.Errorf("page missing %q", want)
		}
	}
}

func TestSocketFrameLoop(t *testing.T) {
	s := NewServer(testBuild)
	srv := httptest.NewServer(http.HandlerFunc(s.handleSocket))
	defer srv.Close()

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatal(err)
	}
	defer conn.Close()

	// Frame 0 arrives unprompted.
	_, msg, err := conn.ReadMessage()
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(msg), `"fillStyle"`) {
		t.Errorf("frame 0 missing fill style: %s", msg)
	}

	// Echoing a value batch drives the next frame.
	batch := []command.CanvasValue{command.NewTextMetricsValue("L", 12)}
	if err := conn.WriteJSON(batch); err != nil {
		t.Fatal(err)
	}
	if _, msg, err = conn.ReadMessage(); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(msg), `"beginPath"`) {
		t.Errorf("frame 1 missing path commands: %s", msg)
	}
}
