package inbound

import (
	"fmt"
	"io"
	"log/slog"
)

// NotifierFunc adapts a plain function to usecase.Notifier.
type NotifierFunc func(message string)

// Notify calls f(message).
func (f NotifierFunc) Notify(message string) {
	f(message)
}

// WriterNotifier writes each message on its own line.
type WriterNotifier struct {
	w io.Writer
}

func NewWriterNotifier(w io.Writer) *WriterNotifier {
	return &WriterNotifier{w: w}
}

func (n *WriterNotifier) Notify(message string) {
	if _, err := fmt.Fprintln(n.w, message); err != nil {
		slog.Warn("failed to write notification", "error", err)
	}
}
