package services

import (
	"errors"

	"github.com/rsfinance/rsfinance-service/internal/models"
	"github.com/rsfinance/rsfinance-service/pkg/response"
	"gorm.io/gorm"
)

type ContactService struct {
	db    *gorm.DB
	queue TaskQueue
}

func NewContactService(db *gorm.DB, queue TaskQueue) *ContactService {
	return &ContactService{db: db, queue: queue}
}

type SubmitContactRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Phone   string `json:"phone"`
	Subject string `json:"subject" binding:"required"`
	Message string `json:"message" binding:"required"`
}

// Submit stores a visitor inquiry as unread and queues the notification
// emails.
func (s *ContactService) Submit(req *SubmitContactRequest) (*models.ContactMessage, error) {
	msg := models.ContactMessage{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Subject: req.Subject,
		Message: req.Message,
		IsRead:  false,
	}

	if err := s.db.Create(&msg).Error; err != nil {
		return nil, err
	}

	if s.queue != nil {
		if err := s.queue.Enqueue(&NotificationTask{
			Kind:             NotifyContactReceived,
			ContactMessageID: msg.ID,
		}); err != nil {
			LogWarning("contact", "notify", "failed to queue contact notification: "+err.Error(), nil, "", "", nil)
		}
	}

	return &msg, nil
}

type ContactListRequest struct {
	Page     int   `form:"page" binding:"omitempty,min=1"`
	PageSize int   `form:"page_size" binding:"omitempty,min=1,max=100"`
	IsRead   *bool `form:"is_read"`
}

type ContactListResponse struct {
	Total    int64                   `json:"total"`
	Page     int                     `json:"page"`
	PageSize int                     `json:"page_size"`
	Items    []models.ContactMessage `json:"items"`
}

// List returns a page of inquiries, newest first, optionally filtered by
// read state.
func (s *ContactService) List(req *ContactListRequest) (*ContactListResponse, error) {
	if req.Page == 0 {
		req.Page = 1
	}
	if req.PageSize == 0 {
		req.PageSize = 10
	}

	query := s.db.Model(&models.ContactMessage{})
	if req.IsRead != nil {
		query = query.Where("is_read = ?", *req.IsRead)
	}

	var total int64
	query.Count(&total)

	var items []models.ContactMessage
	offset := (req.Page - 1) * req.PageSize
	if err := query.Offset(offset).Limit(req.PageSize).Order("created_at DESC").Find(&items).Error; err != nil {
		return nil, err
	}

	return &ContactListResponse{
		Total:    total,
		Page:     req.Page,
		PageSize: req.PageSize,
		Items:    items,
	}, nil
}

// SetReadStatus marks one inquiry read or unread.
func (s *ContactService) SetReadStatus(id uint, isRead bool) (*models.ContactMessage, error) {
	var msg models.ContactMessage
	if err := s.db.First(&msg, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFound("contact message not found")
		}
		return nil, err
	}

	if err := s.db.Model(&msg).Update("is_read", isRead).Error; err != nil {
		return nil, err
	}

	msg.IsRead = isRead
	return &msg, nil
}

// Delete removes an inquiry.
func (s *ContactService) Delete(id uint) error {
	result := s.db.Delete(&models.ContactMessage{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return response.NewNotFound("contact message not found")
	}
	return nil
}

// UnreadCount returns the number of unread inquiries.
func (s *ContactService) UnreadCount() (int64, error) {
	var count int64
	if err := s.db.Model(&models.ContactMessage{}).Where("is_read = ?", false).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
