package domain

import (
	"errors"
	"time"
)

// NoticeType represents the severity of a notice.
type NoticeType string

const (
	NoticeTypeSuccess NoticeType = "SUCCESS"
	NoticeTypeInfo    NoticeType = "INFO"
	NoticeTypeError   NoticeType = "ERROR"
)

// MaxQueued is how many notices a session keeps; older ones are dropped first.
const MaxQueued = 5

var (
	ErrInvalidNoticeType = errors.New("invalid notice type")
	ErrEmptyMessage      = errors.New("notice message is required")
)

// Notice is a transient toast shown after an action completes.
type Notice struct {
	Title     string     `json:"title"`
	Message   string     `json:"message"`
	Type      NoticeType `json:"type"`
	Duration  int        `json:"duration"` // Seconds the toast stays visible.
	CreatedAt time.Time  `json:"created_at"`
}

// NewNotice creates a new Notice and validates it.
func NewNotice(title, message string, noticeType NoticeType, duration time.Duration) (*Notice, error) {
	if noticeType != NoticeTypeSuccess && noticeType != NoticeTypeInfo && noticeType != NoticeTypeError {
		return nil, ErrInvalidNoticeType
	}
	if message == "" {
		return nil, ErrEmptyMessage
	}

	return &Notice{
		Title:     title,
		Message:   message,
		Type:      noticeType,
		Duration:  int(duration / time.Second),
		CreatedAt: time.Now(),
	}, nil
}
