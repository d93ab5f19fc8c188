package trace

import (
	"os"
	"strconv"
	"sync"
	"time"
)

// MeasureTime writes Chrome trace-event JSON so frame phases (render,
// execute, blit) can be inspected in a trace viewer. A nil or failed
// writer degrades to a no-op so tracing can never take the canvas down.
type MeasureTime struct {
	file *os.File
	lock *sync.Mutex
}

func NewMeasureTime(path string) *MeasureTime {
	file, err := os.Create(path)
	if err != nil {
		return &MeasureTime{lock: &sync.Mutex{}}
	}
	file.WriteString("{\"traceEvents\": [")
	ts := time.Now().UnixMicro()
	file.WriteString(
		`{ "name": "process_name",` +
			`"ph": "M",` +
			`"ts":` + strconv.Itoa(int(ts)) + `,` +
			`"pid": 1, "cat": "__metadata",` +
			`"args": {"name": "Canvas"}}`)
	file.Sync()
	return &MeasureTime{file: file, lock: &sync.Mutex{}}
}

func (m *MeasureTime) Time(name string) {
	m.event("B", name)
}

func (m *MeasureTime) Stop(name string) {
	m.event("E", name)
}

func (m *MeasureTime) event(phase, name string) {
	if m == nil || m.file == nil {
		return
	}
	m.lock.Lock()
	ts := time.Now().UnixMicro()
	m.file.WriteString(
		`, { "ph": "` + phase + `", "cat": "_",` +
			`"name": "` + name + `",` +
			`"ts": ` + strconv.Itoa(int(ts)) + `,` +
			`"pid": 1, "tid": 1}`)
	m.lock.Unlock()
}

func (m *MeasureTime) Finish() {
	if m == nil || m.file == nil {
		return
	}
	m.lock.Lock()
	m.file.WriteString("]}")
	m.file.Close()
	m.file = nil
	m.lock.Unlock()
}
