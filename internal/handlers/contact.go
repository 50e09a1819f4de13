package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rsfinance/rsfinance-service/internal/services"
	"github.com/rsfinance/rsfinance-service/pkg/response"
	"gorm.io/gorm"
)

type ContactHandler struct {
	contactService *services.ContactService
}

func NewContactHandler(db *gorm.DB, queue services.TaskQueue) *ContactHandler {
	return &ContactHandler{
		contactService: services.NewContactService(db, queue),
	}
}

// Submit stores a visitor inquiry from the public contact page
// POST /api/public/contact
func (h *ContactHandler) Submit(c *gin.Context) {
	var req services.SubmitContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	msg, err := h.contactService.Submit(&req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, gin.H{"id": msg.ID, "message": "thank you, we will get back to you shortly"})
}

// List returns paginated inquiries for the back office
// GET /api/contact-messages
func (h *ContactHandler) List(c *gin.Context) {
	var req services.ContactListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	resp, err := h.contactService.List(&req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, resp)
}

type setReadRequest struct {
	IsRead *bool `json:"is_read" binding:"required"`
}

// SetRead marks an inquiry read or unread
// PUT /api/contact-messages/:id/read
func (h *ContactHandler) SetRead(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "invalid message id")
		return
	}

	var req setReadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	msg, err := h.contactService.SetReadStatus(uint(id), *req.IsRead)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, msg)
}

// Delete removes an inquiry
// DELETE /api/contact-messages/:id
func (h *ContactHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "invalid message id")
		return
	}

	if err := h.contactService.Delete(uint(id)); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, gin.H{"message": "contact message deleted"})
}

// UnreadCount returns the unread inbox badge count
// GET /api/contact-messages/unread-count
func (h *ContactHandler) UnreadCount(c *gin.Context) {
	count, err := h.contactService.UnreadCount()
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, gin.H{"count": count})
}
