package handler

import (
	"net/http"

	"resolveit/backend/internal/complaint"
	"resolveit/backend/internal/models"

	"github.com/gin-gonic/gin"
)

// SubmitComplaint files a new complaint. Anonymous complaints carry no
// owner even when the caller is authenticated.
func (h *Handler) SubmitComplaint(c *gin.Context) {
	var req struct {
		Title       string `json:"title"`
		Description string `json:"description"`
		Category    string `json:"category"`
		Priority    string `json:"priority"`
		Anonymous   bool   `json:"anonymous"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "invalid request body"})
		return
	}

	submit := complaint.SubmitRequest{
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		Priority:    req.Priority,
		Anonymous:   req.Anonymous,
	}
	if user := currentUser(c); user != nil && !req.Anonymous {
		submit.UserID = &user.ID
	}

	created, err := h.Complaints.Submit(submit)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"status":      "success",
		"message":     "Complaint submitted successfully",
		"complaintId": created.ID,
	})
}

// GetComplaint returns one complaint with status and participants.
func (h *Handler) GetComplaint(c *gin.Context) {
	id, ok := parseUintParam(c, "complaintId")
	if !ok {
		return
	}
	found, err := h.Complaints.Get(id)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success", "complaint": found})
}

// UpdateComplaintStatus sets a new status and optionally assigns an
// officer and appends a public comment. Officers and admins only.
func (h *Handler) UpdateComplaintStatus(c *gin.Context) {
	id, ok := parseUintParam(c, "complaintId")
	if !ok {
		return
	}

	var req struct {
		StatusCode        string  `json:"status_code"`
		AssignedOfficerID *string `json:"assigned_officer_id"`
		Comment           string  `json:"comment"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "invalid request body"})
		return
	}

	err := h.Complaints.UpdateStatus(id, complaint.StatusUpdateRequest{
		StatusCode:        req.StatusCode,
		AssignedOfficerID: req.AssignedOfficerID,
		Comment:           req.Comment,
	}, currentUser(c))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success", "message": "Complaint status updated successfully"})
}

// AddComment appends a comment to a complaint. Officers and admins only.
func (h *Handler) AddComment(c *gin.Context) {
	id, ok := parseUintParam(c, "complaintId")
	if !ok {
		return
	}

	var req struct {
		Message   string `json:"message"`
		IsPrivate bool   `json:"is_private"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "invalid request body"})
		return
	}

	if err := h.Complaints.AddComment(id, currentUser(c), req.Message, req.IsPrivate); err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success", "message": "Comment added successfully"})
}

// ComplaintComments lists a complaint's comments. Staff see private ones.
func (h *Handler) ComplaintComments(c *gin.Context) {
	id, ok := parseUintParam(c, "complaintId")
	if !ok {
		return
	}

	includePrivate := false
	if user := currentUser(c); user != nil {
		includePrivate = user.HasRole(models.RoleOfficer) || user.HasRole(models.RoleAdmin)
	}

	comments, err := h.Complaints.Comments(id, includePrivate)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success", "comments": comments})
}

// UserComplaints lists the acting user's own complaints.
func (h *Handler) UserComplaints(c *gin.Context) {
	user := currentUser(c)
	complaints, err := h.Complaints.ListForUser(user.ID)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success", "complaints": complaints})
}

// AssignedComplaints lists complaints assigned to the acting officer.
func (h *Handler) AssignedComplaints(c *gin.Context) {
	user := currentUser(c)
	complaints, err := h.Complaints.ListForOfficer(user.ID)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success", "complaints": complaints})
}

// UnassignedComplaints lists complaints with no assigned officer.
func (h *Handler) UnassignedComplaints(c *gin.Context) {
	complaints, err := h.Complaints.ListUnassigned()
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success", "complaints": complaints})
}
