package service

import "log/slog"

// Notifier delivers reviewer notifications.
type Notifier interface {
	NotifyReviewer(n Notification) error
}

// LogNotifier writes notifications to the structured log.
type LogNotifier struct {
	log *slog.Logger
}

// NewLogNotifier creates a notifier backed by log.
func NewLogNotifier(log *slog.Logger) *LogNotifier {
	return &LogNotifier{log: log}
}

// NotifyReviewer logs that a reviewer has a document to review.
func (n *LogNotifier) NotifyReviewer(msg Notification) error {
	n.log.Info("review requested",
		slog.String("document_id", msg.DocumentID),
		slog.String("reviewer_id", msg.ReviewerID),
		slog.Int("level", int(msg.Level)),
	)
	return nil
}
