package agro

import (
	"context"

	"go.uber.org/zap"

	"agrovista.dev/agro-telemetry-service/pkg/common"
	"agrovista.dev/agro-telemetry-service/pkg/models"
)

// recordNotification inserts the row and returns the identifier the store
// generated for it, taken straight from the insert. No reselect.
func (a *Agro) recordNotification(ctx context.Context, input *models.Notification) (uint, error) {
	logger := common.GetLoggerWith(
		common.LoggerNameAgroCore,
		zap.String(common.LoggerFieldAgroCategory, common.LoggerCategoryAgroNotification),
	)

	opCtx, cancel := a.opContext(ctx)
	defer cancel()

	if err := a.Db.Conn.WithContext(opCtx).Create(input).Error; err != nil {
		return 0, err
	}

	logger.Info("Notification saved",
		zap.Uint("id", input.ID),
		zap.String("user_id", input.UserID),
		zap.String("title", input.Title))

	return input.ID, nil
}

func (a *Agro) userNotifications(ctx context.Context, userID string, limit int) ([]models.Notification, error) {
	opCtx, cancel := a.opContext(ctx)
	defer cancel()

	var notifications []models.Notification
	err := a.Db.Conn.WithContext(opCtx).
		Where("user_id = ?", userID).
		Order("created_at desc").
		Limit(limit).
		Find(&notifications).Error
	return notifications, err
}

type INotificationImpl struct {
	agro *Agro
}

func (in *INotificationImpl) RecordNotification(ctx context.Context, input *models.Notification) (uint, error) {
	return in.agro.recordNotification(ctx, input)
}

func (in *INotificationImpl) UserNotifications(ctx context.Context, userID string, limit int) ([]models.Notification, error) {
	return in.agro.userNotifications(ctx, userID, limit)
}

func (a *Agro) GetINotification() INotification {
	return &INotificationImpl{agro: a}
}
