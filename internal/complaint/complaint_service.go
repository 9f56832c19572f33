// Package complaint provides the core logic for the complaint lifecycle:
// submission, status updates, officer assignment and commenting.
package complaint

import (
	"fmt"
	"strings"

	"resolveit/backend/internal/apperr"
	"resolveit/backend/internal/models"
	"resolveit/backend/internal/storage"
)

// SubmitRequest carries the fields of a new complaint.
type SubmitRequest struct {
	Title       string
	Description string
	Category    string
	Priority    string
	Anonymous   bool
	UserID      *string
}

// StatusUpdateRequest carries a status change, an optional officer
// assignment and an optional public comment documenting the change.
type StatusUpdateRequest struct {
	StatusCode        string
	AssignedOfficerID *string
	Comment           string
}

// Service handles the business logic for complaints.
type Service struct {
	Storage storage.Storage
}

// NewService creates a new complaint service.
func NewService(s storage.Storage) *Service {
	return &Service{Storage: s}
}

// Submit files a new complaint with status NEW. The owner is linked only
// when the complaint is not anonymous.
func (s *Service) Submit(req SubmitRequest) (*models.Complaint, error) {
	if strings.TrimSpace(req.Title) == "" || strings.TrimSpace(req.Description) == "" {
		return nil, fmt.Errorf("title and description are required: %w", apperr.ErrInvalidInput)
	}

	priority := strings.ToUpper(req.Priority)
	switch priority {
	case "":
		priority = models.PriorityLow
	case models.PriorityLow, models.PriorityMedium, models.PriorityHigh:
	default:
		return nil, fmt.Errorf("unknown priority %q: %w", req.Priority, apperr.ErrInvalidInput)
	}

	status, err := s.Storage.FindStatusByCode(models.StatusNew)
	if err != nil {
		return nil, err
	}

	complaint := &models.Complaint{
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		Priority:    priority,
		Anonymous:   req.Anonymous,
		StatusID:    status.ID,
		Status:      *status,
	}
	if !req.Anonymous && req.UserID != nil {
		if _, err := s.Storage.FindUserByID(*req.UserID); err != nil {
			return nil, err
		}
		complaint.UserID = req.UserID
	}

	if err := s.Storage.SaveComplaint(complaint); err != nil {
		return nil, err
	}
	return complaint, nil
}

// Get loads a complaint with its status and participants.
func (s *Service) Get(id uint) (*models.Complaint, error) {
	return s.Storage.FindComplaintByID(id)
}

// UpdateStatus sets the complaint's status, optionally assigns an officer
// and optionally appends a public comment authored by the acting user.
func (s *Service) UpdateStatus(id uint, req StatusUpdateRequest, actor *models.User) error {
	complaint, err := s.Storage.FindComplaintByID(id)
	if err != nil {
		return err
	}

	status, err := s.Storage.FindStatusByCode(req.StatusCode)
	if err != nil {
		return err
	}
	complaint.StatusID = status.ID
	complaint.Status = *status

	if req.AssignedOfficerID != nil {
		officer, err := s.Storage.FindUserByID(*req.AssignedOfficerID)
		if err != nil {
			return err
		}
		if !officer.HasRole(models.RoleOfficer) && !officer.HasRole(models.RoleAdmin) {
			return fmt.Errorf("user %s is not an officer: %w", officer.ID, apperr.ErrInvalidInput)
		}
		complaint.AssignedOfficerID = req.AssignedOfficerID
	}

	if err := s.Storage.SaveComplaint(complaint); err != nil {
		return err
	}

	if strings.TrimSpace(req.Comment) != "" && actor != nil {
		comment := &models.Comment{
			ComplaintID: complaint.ID,
			AuthorID:    &actor.ID,
			Message:     req.Comment,
			IsPrivate:   false, // status updates are public
		}
		if err := s.Storage.SaveComment(comment); err != nil {
			return err
		}
	}
	return nil
}

// AddComment appends a comment by the given author.
func (s *Service) AddComment(complaintID uint, author *models.User, message string, private bool) error {
	if strings.TrimSpace(message) == "" {
		return fmt.Errorf("comment message is required: %w", apperr.ErrInvalidInput)
	}
	if _, err := s.Storage.FindComplaintByID(complaintID); err != nil {
		return err
	}

	comment := &models.Comment{
		ComplaintID: complaintID,
		AuthorID:    &author.ID,
		Message:     message,
		IsPrivate:   private,
	}
	return s.Storage.SaveComment(comment)
}

// Comments lists a complaint's comments; private ones only for staff.
func (s *Service) Comments(complaintID uint, includePrivate bool) ([]models.Comment, error) {
	if _, err := s.Storage.FindComplaintByID(complaintID); err != nil {
		return nil, err
	}
	return s.Storage.FindComments(complaintID, includePrivate)
}

// ListForUser returns the user's own complaints, newest first.
func (s *Service) ListForUser(userID string) ([]models.Complaint, error) {
	return s.Storage.FindComplaintsByUser(userID)
}

// ListForOfficer returns complaints assigned to the officer.
func (s *Service) ListForOfficer(officerID string) ([]models.Complaint, error) {
	return s.Storage.FindComplaintsByOfficer(officerID)
}

// ListUnassigned returns complaints with no assigned officer.
func (s *Service) ListUnassigned() ([]models.Complaint, error) {
	return s.Storage.FindUnassignedComplaints()
}
