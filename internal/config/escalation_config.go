package config

import "time"

const (
	// Escalation
	EscalationThreshold  = 72 * time.Hour
	SweepInterval        = time.Hour
	EscalationTargetRole = "ROLE_ADMIN"
	AutoEscalationReason = "Auto-escalated: Unresolved for more than 72 hours"

	// Identity used for unattended escalations
	SystemEscalatorName  = "System (Auto-escalation)"
	SystemEscalatorEmail = "system@resolveit.com"

	// Notifications
	UnreadCountCacheTTL = 5 * time.Minute
)
