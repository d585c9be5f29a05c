package model

import "time"

// NotificationTaskModel mirrors a document in the 'notificationOutbox' collection.
type NotificationTaskModel struct {
	Kind           string            `firestore:"kind"`
	Recipient      string            `firestore:"recipient"`
	RecipientName  string            `firestore:"recipientName,omitempty"`
	TemplateParams map[string]string `firestore:"templateParams,omitempty"`
	Status         string            `firestore:"status"`
	Attempts       int               `firestore:"attempts"`
	LastError      string            `firestore:"lastError,omitempty"`
	RequestID      string            `firestore:"requestId,omitempty"`
	CreatedAt      time.Time         `firestore:"createdAt"`
	PublishedAt    *time.Time        `firestore:"publishedAt,omitempty"`
}
