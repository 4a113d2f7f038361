// Package constants holds shared constant values used across layers.
package constants

// Audit sink provider names.
const (
	AuditProviderNoop     = "noop"
	AuditProviderLocal    = "local"
	AuditProviderGoogle   = "google"
	AuditProviderPostgres = "postgres"
)

// Echo context keys set by the authentication middleware.
const (
	ContextKeyUserID = "userID"
	ContextKeyRole   = "role"
)
