package models

// NoticePushPayload is the queued payload for a notice push broadcast.
type NoticePushPayload struct {
	NoticeID string `json:"noticeId"`
	Title    string `json:"title"`
	Body     string `json:"body"`
}
