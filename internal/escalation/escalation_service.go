// Package escalation implements the complaint escalation engine: the
// status transition to ESCALATED, the escalation history, the synthesized
// audit comment and the best-effort notification fan-out.
package escalation

import (
	"fmt"
	"strings"
	"time"

	"resolveit/backend/internal/apperr"
	"resolveit/backend/internal/config"
	"resolveit/backend/internal/models"
	"resolveit/backend/internal/notify"
	"resolveit/backend/internal/storage"

	"go.uber.org/zap"
)

// Service handles the business logic for escalations.
type Service struct {
	Storage storage.Storage
	Mailer  notify.Mailer
	Ops     notify.OpsNotifier // optional, may be nil
	Logger  *zap.Logger
}

// NewService creates a new escalation service.
func NewService(s storage.Storage, mailer notify.Mailer, ops notify.OpsNotifier, log *zap.Logger) *Service {
	return &Service{Storage: s, Mailer: mailer, Ops: ops, Logger: log}
}

// Escalate promotes the complaint to admin attention. A blank reason is
// rejected before any side effect; an unknown complaint id fails with
// NotFound. An already-ESCALATED complaint is not blocked here: calling
// Escalate again creates a second escalation record.
func (s *Service) Escalate(complaintID uint, reason string, actor Actor) (*models.Escalation, error) {
	if strings.TrimSpace(reason) == "" {
		return nil, fmt.Errorf("escalation reason is required: %w", apperr.ErrInvalidInput)
	}

	complaint, err := s.Storage.FindComplaintByID(complaintID)
	if err != nil {
		return nil, err
	}
	return s.escalate(complaint, reason, actor)
}

// escalate performs the transition. The escalation row and the status
// write commit in one transaction; the audit comment and the fan-out run
// after the commit so their failure can never leave the complaint
// un-escalated with notifications half-sent.
func (s *Service) escalate(complaint *models.Complaint, reason string, actor Actor) (*models.Escalation, error) {
	escalation := &models.Escalation{
		ComplaintID:     complaint.ID,
		EscalatedToRole: config.EscalationTargetRole,
		Reason:          reason,
		EscalatedAt:     time.Now(),
		Resolved:        false,
	}

	err := s.Storage.Transaction(func(tx storage.Storage) error {
		if err := tx.SaveEscalation(escalation); err != nil {
			return fmt.Errorf("failed to save escalation: %w", err)
		}
		status, err := tx.FindStatusByCode(models.StatusEscalated)
		if err != nil {
			return err
		}
		complaint.StatusID = status.ID
		complaint.Status = *status
		return tx.SaveComplaint(complaint)
	})
	if err != nil {
		return nil, err
	}

	s.addEscalationComment(complaint, escalation, actor)
	s.notifyEscalation(complaint, escalation, actor)

	return escalation, nil
}

// ResolveEscalation marks the escalation resolved. It is idempotent and
// never touches the complaint's own status: an escalation can be closed
// administratively while the complaint stays open.
func (s *Service) ResolveEscalation(escalationID uint) error {
	escalation, err := s.Storage.FindEscalationByID(escalationID)
	if err != nil {
		return err
	}
	if escalation.Resolved {
		return nil
	}
	escalation.Resolved = true
	return s.Storage.SaveEscalation(escalation)
}

// EscalationsForComplaint lists every escalation of the complaint.
func (s *Service) EscalationsForComplaint(complaintID uint) ([]models.Escalation, error) {
	return s.Storage.FindEscalationsByComplaintID(complaintID)
}

// UnresolvedEscalations lists all escalations still awaiting admin action.
func (s *Service) UnresolvedEscalations() ([]models.Escalation, error) {
	return s.Storage.FindUnresolvedEscalations()
}

// Sweep escalates every complaint created before now minus the staleness
// threshold whose status is neither RESOLVED nor already ESCALATED.
// Per-complaint failures are isolated; only a failed candidate query
// aborts the run.
func (s *Service) Sweep(now time.Time) error {
	cutoff := now.Add(-config.EscalationThreshold)

	complaints, err := s.Storage.FindStaleComplaints(cutoff, models.StatusResolved)
	if err != nil {
		return fmt.Errorf("stale complaint query failed: %w", err)
	}

	var escalated, skipped int
	var failed []uint
	for i := range complaints {
		complaint := &complaints[i]
		if complaint.Status.Code == models.StatusEscalated {
			skipped++
			continue
		}
		if _, err := s.escalate(complaint, config.AutoEscalationReason, SystemActor()); err != nil {
			failed = append(failed, complaint.ID)
			s.Logger.Error("auto-escalation failed",
				zap.Uint("complaint_id", complaint.ID),
				zap.Error(err))
			continue
		}
		escalated++
	}

	s.Logger.Info("escalation sweep complete",
		zap.Int("candidates", len(complaints)),
		zap.Int("escalated", escalated),
		zap.Int("already_escalated", skipped),
		zap.Uints("failed", failed))

	return nil
}

// addEscalationComment appends a public comment documenting the event.
// Failure is logged and swallowed; the escalation already committed.
func (s *Service) addEscalationComment(complaint *models.Complaint, escalation *models.Escalation, actor Actor) {
	message := fmt.Sprintf(
		"COMPLAINT ESCALATED\n\n"+
			"This complaint has been escalated to senior management for priority attention.\n\n"+
			"Escalated by: %s\n"+
			"Date: %s\n"+
			"Reason: %s\n\n"+
			"The complaint status has been changed to ESCALATED and relevant administrators have been notified.",
		actor.DisplayName(),
		escalation.EscalatedAt.Format("Jan 02, 2006 15:04"),
		escalation.Reason,
	)

	comment := &models.Comment{
		ComplaintID: complaint.ID,
		AuthorID:    actor.UserID(),
		Message:     message,
		IsPrivate:   false,
	}
	if err := s.Storage.SaveComment(comment); err != nil {
		s.Logger.Error("failed to add escalation comment",
			zap.Uint("complaint_id", complaint.ID),
			zap.Error(err))
	}
}

// notifyEscalation fans out to the complaint owner and every admin. Each
// of the deliveries is independently fault-isolated: a failed email never
// blocks the in-app record, and a failed recipient never blocks the next.
func (s *Service) notifyEscalation(complaint *models.Complaint, escalation *models.Escalation, actor Actor) {
	complaintID := complaint.ID

	if owner := s.complaintOwner(complaint); owner != nil {
		if err := s.Mailer.SendEscalationToOwner(
			owner.Email, owner.FullName, complaint.Title, complaintID,
			escalation.Reason, actor.DisplayName(), actor.Email(), escalation.EscalatedAt,
		); err != nil {
			s.Logger.Error("failed to email complaint owner",
				zap.Uint("complaint_id", complaintID),
				zap.String("user_id", owner.ID),
				zap.Error(err))
		}

		notification := &models.Notification{
			UserID: owner.ID,
			Title:  "Complaint Escalated",
			Message: fmt.Sprintf("Your complaint '%s' has been escalated by %s. Reason: %s",
				complaint.Title, actor.DisplayName(), escalation.Reason),
			ComplaintID: &complaintID,
		}
		if err := s.Storage.CreateNotification(notification); err != nil {
			s.Logger.Error("failed to create owner notification",
				zap.Uint("complaint_id", complaintID),
				zap.Error(err))
		}
	}

	admins, err := s.Storage.FindUsersByRole(config.EscalationTargetRole)
	if err != nil {
		s.Logger.Error("failed to look up admins for escalation fan-out",
			zap.Uint("complaint_id", complaintID),
			zap.Error(err))
		admins = nil
	}
	for i := range admins {
		admin := &admins[i]
		if err := s.Mailer.SendEscalationToAdmin(
			admin.Email, admin.FullName, complaint.Title, complaintID, escalation.Reason,
		); err != nil {
			s.Logger.Error("failed to email admin",
				zap.Uint("complaint_id", complaintID),
				zap.String("admin_id", admin.ID),
				zap.Error(err))
		}

		notification := &models.Notification{
			UserID: admin.ID,
			Title:  "New Escalated Complaint",
			Message: fmt.Sprintf("Complaint #%d escalated by %s requires your attention.",
				complaintID, actor.DisplayName()),
			ComplaintID: &complaintID,
		}
		if err := s.Storage.CreateNotification(notification); err != nil {
			s.Logger.Error("failed to create admin notification",
				zap.Uint("complaint_id", complaintID),
				zap.String("admin_id", admin.ID),
				zap.Error(err))
		}
	}

	if s.Ops != nil {
		if err := s.Ops.EscalationRaised(complaintID, complaint.Title,
			actor.DisplayName(), escalation.Reason, escalation.EscalatedAt); err != nil {
			s.Logger.Error("failed to post ops alert",
				zap.Uint("complaint_id", complaintID),
				zap.Error(err))
		}
	}
}

// complaintOwner resolves the owning user of a non-anonymous complaint,
// loading it from storage when the association was not preloaded.
func (s *Service) complaintOwner(complaint *models.Complaint) *models.User {
	if complaint.Anonymous || complaint.UserID == nil {
		return nil
	}
	if complaint.User != nil {
		return complaint.User
	}
	owner, err := s.Storage.FindUserByID(*complaint.UserID)
	if err != nil {
		s.Logger.Error("failed to load complaint owner",
			zap.Uint("complaint_id", complaint.ID),
			zap.String("user_id", *complaint.UserID),
			zap.Error(err))
		return nil
	}
	return owner
}
