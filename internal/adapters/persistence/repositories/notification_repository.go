package repositories

import (
	"context"
	"errors"

	"cabmed-api/internal/adapters/persistence/models"

	"gorm.io/gorm"
)

// notificationRepository implements NotificationRepository interface
type notificationRepository struct {
	db *gorm.DB
}

// NewNotificationRepository creates a new notification repository
func NewNotificationRepository(db *gorm.DB) NotificationRepository {
	return &notificationRepository{db: db}
}

// Create creates a new notification
func (r *notificationRepository) Create(ctx context.Context, notification *models.Notification) error {
	return r.db.WithContext(ctx).Create(notification).Error
}

// GetByID gets a notification by ID
func (r *notificationRepository) GetByID(ctx context.Context, id uint) (*models.Notification, error) {
	var notification models.Notification
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&notification).Error
	if err != nil {
		return nil, err
	}
	return &notification, nil
}

// Update updates a notification
func (r *notificationRepository) Update(ctx context.Context, notification *models.Notification) error {
	return r.db.WithContext(ctx).Save(notification).Error
}

// ListByDestinataire lists all notifications of a recipient, newest first
func (r *notificationRepository) ListByDestinataire(ctx context.Context, destinataireID uint) ([]*models.Notification, error) {
	var notifications []*models.Notification
	err := r.db.WithContext(ctx).
		Where("destinataire_id = ?", destinataireID).
		Order("date_creation DESC").
		Find(&notifications).Error
	return notifications, err
}

// ListUnreadByDestinataire lists unread notifications of a recipient, newest first
func (r *notificationRepository) ListUnreadByDestinataire(ctx context.Context, destinataireID uint) ([]*models.Notification, error) {
	var notifications []*models.Notification
	err := r.db.WithContext(ctx).
		Where("destinataire_id = ? AND lu = ?", destinataireID, false).
		Order("date_creation DESC").
		Find(&notifications).Error
	return notifications, err
}

// ReplaceWaitingSlot clears the recipient's waiting-patient slot and installs
// the given notification, inside one transaction so the delete-then-insert
// pair cannot interleave with a concurrent replace.
func (r *notificationRepository) ReplaceWaitingSlot(ctx context.Context, notification *models.Notification) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Where("destinataire_id = ? AND type = ? AND patient_id IS NOT NULL",
				notification.DestinataireID, models.NotifInfo).
			Delete(&models.Notification{}).Error; err != nil {
			return err
		}
		return tx.Create(notification).Error
	})
}

// GetLatestWaitingSlot returns the most recent waiting-patient notification
// for a recipient, or nil when no slot is occupied
func (r *notificationRepository) GetLatestWaitingSlot(ctx context.Context, destinataireID uint) (*models.Notification, error) {
	var notification models.Notification
	err := r.db.WithContext(ctx).
		Where("destinataire_id = ? AND type = ? AND patient_id IS NOT NULL", destinataireID, models.NotifInfo).
		Order("date_creation DESC").
		First(&notification).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &notification, nil
}

// ClearWaitingSlot removes the recipient's waiting-patient notification(s).
// Clearing an empty slot is a no-op.
func (r *notificationRepository) ClearWaitingSlot(ctx context.Context, destinataireID uint) error {
	return r.db.WithContext(ctx).
		Where("destinataire_id = ? AND type = ? AND patient_id IS NOT NULL", destinataireID, models.NotifInfo).
		Delete(&models.Notification{}).Error
}
