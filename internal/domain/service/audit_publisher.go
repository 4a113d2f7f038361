package service

import (
	"context"
	"time"
)

// AuditAction is the kind of mutation an audit event records.
type AuditAction string

const (
	// AuditInsert records a row creation.
	AuditInsert AuditAction = "INSERT"
	// AuditUpdate records a row modification.
	AuditUpdate AuditAction = "UPDATE"
	// AuditDelete records a row deletion.
	AuditDelete AuditAction = "DELETE"
)

// AuditEvent is one mutating operation, keyed by actor and record, with
// before/after snapshots. Events are write-only from the core's perspective.
type AuditEvent struct {
	ActorID   string      `json:"actor_id"`
	Action    AuditAction `json:"action"`
	Table     string      `json:"table"`
	RecordID  string      `json:"record_id"`
	Before    any         `json:"before,omitempty"`
	After     any         `json:"after,omitempty"`
	Timestamp time.Time   `json:"timestamp"`
}

// AuditPublisher defines the interface for the audit-log sink. Publishing is
// fire-and-forget: a failed publish is logged by the implementation and never
// fails the originating mutation.
type AuditPublisher interface {
	// PublishAuditEvent delivers one audit event to the configured sink.
	PublishAuditEvent(ctx context.Context, event *AuditEvent) error

	// Close releases any resources held by the publisher.
	Close() error
}
