package mq

// ViewEvent is emitted by the playback path every time a published
// video is served; the consumer folds them into view_count.
type ViewEvent struct {
	VideoID   int64  `json:"video_id"`
	ViewerID  int64  `json:"viewer_id,omitempty"`
	Timestamp int64  `json:"timestamp"`
	EventID   string `json:"event_id"`
}

const (
	ViewEventExchange = "view_events"
	ViewEventQueue    = "view_event_queue"
	ViewEventKey      = "video_view"
)
