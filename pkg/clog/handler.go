package clog

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/apex/log"
)

// Handler formats apex/log entries as single "LEVEL timestamp message k=v"
// lines with the fields sorted by name. The mutex keeps concurrent request
// handlers from interleaving lines on the shared writer.
type Handler struct {
	mu     sync.Mutex
	Writer io.Writer
}

func NewHandler(w io.Writer) *Handler {
	return &Handler{Writer: w}
}

var levelNames = [...]string{
	log.DebugLevel: "DEBUG",
	log.InfoLevel:  "INFO",
	log.WarnLevel:  "WARN",
	log.ErrorLevel: "ERROR",
	log.FatalLevel: "FATAL",
}

func (h *Handler) HandleLog(e *log.Entry) error {
	names := make([]string, 0, len(e.Fields))
	for name := range e.Fields {
		names = append(names, name)
	}
	sort.Strings(names)

	var b strings.Builder
	_, _ = fmt.Fprintf(&b, "%5s %s %-25s", levelNames[e.Level], time.Now().Format(time.DateTime), e.Message)
	for _, name := range names {
		_, _ = fmt.Fprintf(&b, " %s=%v", name, e.Fields[name])
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := fmt.Fprintln(h.Writer, b.String())

	return err
}
