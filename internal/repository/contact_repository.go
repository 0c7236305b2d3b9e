package repository

import (
	"context"

	"github.com/streamlinelabs/backend/internal/models"

	"gorm.io/gorm"
)

// ContactRepository defines the interface for contact-message database operations
type ContactRepository interface {
	// Create persists a new contact message and assigns its ID and CreatedAt
	Create(ctx context.Context, msg *models.ContactMessage) error
	// GetByID returns a message by ID
	GetByID(ctx context.Context, id uint) (*models.ContactMessage, error)
	// List returns one page of messages ordered by created_at descending,
	// together with the total number of messages
	List(ctx context.Context, page, perPage int) ([]models.ContactMessage, int64, error)
	// MarkRead sets is_read on a message. Marking an already-read message
	// is a no-op that still succeeds.
	MarkRead(ctx context.Context, id uint) (*models.ContactMessage, error)
}

// contactRepository implements ContactRepository on top of gorm
type contactRepository struct {
	db *gorm.DB
}

// NewContactRepository creates a new ContactRepository instance
func NewContactRepository(db *gorm.DB) ContactRepository {
	return &contactRepository{db: db}
}

func (r *contactRepository) Create(ctx context.Context, msg *models.ContactMessage) error {
	return r.db.WithContext(ctx).Create(msg).Error
}

func (r *contactRepository) GetByID(ctx context.Context, id uint) (*models.ContactMessage, error) {
	var msg models.ContactMessage
	if err := r.db.WithContext(ctx).First(&msg, id).Error; err != nil {
		return nil, err
	}
	return &msg, nil
}

func (r *contactRepository) List(ctx context.Context, page, perPage int) ([]models.ContactMessage, int64, error) {
	if page < 1 {
		page = 1
	}
	if perPage < 1 {
		perPage = 20
	}

	var total int64
	if err := r.db.WithContext(ctx).Model(&models.ContactMessage{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var messages []models.ContactMessage
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Offset((page - 1) * perPage).
		Limit(perPage).
		Find(&messages).Error
	if err != nil {
		return nil, 0, err
	}

	return messages, total, nil
}

func (r *contactRepository) MarkRead(ctx context.Context, id uint) (*models.ContactMessage, error) {
	msg, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !msg.IsRead {
		if err := r.db.WithContext(ctx).Model(msg).Update("is_read", true).Error; err != nil {
			return nil, err
		}
		msg.IsRead = true
	}

	return msg, nil
}
