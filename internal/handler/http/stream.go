package http

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/cmlabs-hris/attendance-tracker-go/internal/domain/attendance"
	"github.com/cmlabs-hris/attendance-tracker-go/internal/handler/http/response"
	"github.com/cmlabs-hris/attendance-tracker-go/internal/pkg/sse"
)

const streamKeepalive = 30 * time.Second

// Subscriber hands out live event channels by topic
type Subscriber interface {
	Subscribe(topic string) (<-chan sse.Event, func())
}

type StreamHandler interface {
	AttendanceStream(w http.ResponseWriter, r *http.Request)
}

type streamHandlerImpl struct {
	subscriber Subscriber
	keepalive  time.Duration
}

func NewStreamHandler(subscriber Subscriber) StreamHandler {
	return &streamHandlerImpl{subscriber: subscriber, keepalive: streamKeepalive}
}

// AttendanceStream handles GET /attendance/stream. Browsers cannot set headers
// on EventSource, so the access token may also arrive as ?jwt=.
func (h *streamHandlerImpl) AttendanceStream(w http.ResponseWriter, r *http.Request) {
	// Check if streaming is supported
	flusher, ok := w.(http.Flusher)
	if !ok {
		response.InternalServerError(w, "Streaming not supported")
		return
	}

	// Set SSE headers
	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.Header().Set("X-Accel-Buffering", "no")

	events, cleanup := h.subscriber.Subscribe(attendance.TopicAttendance)
	defer cleanup()

	fmt.Fprint(w, "event: connected\ndata: {\"status\":\"connected\"}\n\n")
	flusher.Flush()

	keepalive := time.NewTicker(h.keepalive)
	defer keepalive.Stop()

	for {
		select {
		case event, ok := <-events:
			if !ok {
				return
			}
			data, err := json.Marshal(event.Data)
			if err != nil {
				slog.Error("Failed to encode stream event", "event", event.Name, "error", err)
				continue
			}
			fmt.Fprintf(w, "event: %s\ndata: %s\n\n", event.Name, data)
			flusher.Flush()

		case <-keepalive.C:
			fmt.Fprintf(w, "event: ping\ndata: {\"timestamp\":%d}\n\n", time.Now().Unix())
			flusher.Flush()

		case <-r.Context().Done():
			return
		}
	}
}
