package handler

import (
	"net/http"
	"strconv"

	"resolveit/backend/internal/escalation"

	"github.com/gin-gonic/gin"
)

// EscalateComplaint manually escalates a complaint. Officers and admins
// only; the acting user is recorded as the escalator.
func (h *Handler) EscalateComplaint(c *gin.Context) {
	complaintID, ok := parseUintParam(c, "complaintId")
	if !ok {
		return
	}

	var req struct {
		Reason string `json:"reason"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "invalid request body"})
		return
	}

	esc, err := h.Escalations.Escalate(complaintID, req.Reason, escalation.UserActor(currentUser(c)))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"status":     "success",
		"message":    "Complaint escalated successfully",
		"escalation": esc,
	})
}

// ComplaintEscalations lists every escalation of a complaint.
func (h *Handler) ComplaintEscalations(c *gin.Context) {
	complaintID, ok := parseUintParam(c, "complaintId")
	if !ok {
		return
	}

	escalations, err := h.Escalations.EscalationsForComplaint(complaintID)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success", "escalations": escalations})
}

// UnresolvedEscalations lists all escalations awaiting admin action.
func (h *Handler) UnresolvedEscalations(c *gin.Context) {
	escalations, err := h.Escalations.UnresolvedEscalations()
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"status":      "success",
		"escalations": escalations,
		"count":       len(escalations),
	})
}

// ResolveEscalation marks an escalation resolved. Idempotent.
func (h *Handler) ResolveEscalation(c *gin.Context) {
	escalationID, ok := parseUintParam(c, "escalationId")
	if !ok {
		return
	}

	if err := h.Escalations.ResolveEscalation(escalationID); err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success", "message": "Escalation resolved successfully"})
}

func parseUintParam(c *gin.Context, name string) (uint, bool) {
	v, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "invalid " + name})
		return 0, false
	}
	return uint(v), true
}
