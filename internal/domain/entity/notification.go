package entity

import "time"

// NotificationKind names the email a task produces.
type NotificationKind string

const (
	NotificationBookingConfirmed NotificationKind = "booking_confirmed"
	NotificationBookingCancelled NotificationKind = "booking_cancelled"
	NotificationRoleAssigned     NotificationKind = "role_assigned"
	NotificationAgencyApproved   NotificationKind = "agency_approved"
)

// OutboxStatus tracks a task's progress from the outbox to the broker.
type OutboxStatus string

const (
	OutboxPending   OutboxStatus = "pending"
	OutboxPublished OutboxStatus = "published"
	OutboxFailed    OutboxStatus = "failed"
)

// NotificationTask is a durable request to send one templated email.
type NotificationTask struct {
	TaskID         string            `json:"taskId"`
	Kind           NotificationKind  `json:"kind"`
	Recipient      string            `json:"recipient"`
	RecipientName  string            `json:"recipientName,omitempty"`
	TemplateParams map[string]string `json:"templateParams,omitempty"`
	Status         OutboxStatus      `json:"status"`
	Attempts       int               `json:"attempts"`
	LastError      string            `json:"lastError,omitempty"`
	RequestID      string            `json:"requestId,omitempty"`
	CreatedAt      time.Time         `json:"createdAt"`
	PublishedAt    *time.Time        `json:"publishedAt,omitempty"`
}
