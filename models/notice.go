package models

import "time"

// Notice is an admin-broadcast announcement visible to all users. Notices are
// never edited or deleted once published.
type Notice struct {
	ID         string    `json:"id"`
	Title      string    `json:"title"`
	Message    string    `json:"message"`
	Date       string    `json:"date"`
	UploadedBy string    `json:"uploadedBy,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
}

// ReadReceipt records that a user has acknowledged a notice. The receipt is
// keyed by notice id under the user's subtree; re-marking overwrites it.
type ReadReceipt struct {
	NoticeID string    `json:"noticeId"`
	ReadAt   time.Time `json:"readAt"`
}
