package repository

import (
	"context"
	"time"

	"github.com/alamin516/genius-car-server-sllcommerz/internal/model"

	"gorm.io/gorm"
)

type OrderRepository interface {
	Create(ctx context.Context, order *model.Order) error
	FindAll(ctx context.Context) ([]*model.Order, error)
	FindByEmail(ctx context.Context, email string) ([]*model.Order, error)
	FindByTransactionID(ctx context.Context, transactionID string) (*model.Order, error)
	MarkPaid(ctx context.Context, transactionID string, paidAt time.Time) (int64, error)
	DeleteByTransactionID(ctx context.Context, transactionID string) (int64, error)
	DeleteByID(ctx context.Context, orderID uint) (int64, error)
}

type orderRepoImpl struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) OrderRepository {
	return &orderRepoImpl{
		db: db,
	}
}

func (r *orderRepoImpl) Create(ctx context.Context, order *model.Order) error {
	return r.db.WithContext(ctx).Create(order).Error
}

func (r *orderRepoImpl) FindAll(ctx context.Context) ([]*model.Order, error) {
	var orders []*model.Order
	err := r.db.WithContext(ctx).Find(&orders).Error
	if err != nil {
		return nil, err
	}

	return orders, nil
}

func (r *orderRepoImpl) FindByEmail(ctx context.Context, email string) ([]*model.Order, error) {
	var orders []*model.Order
	err := r.db.WithContext(ctx).
		Where("email = ?", email).
		Find(&orders).Error

	if err != nil {
		return nil, err
	}

	return orders, nil
}

func (r *orderRepoImpl) FindByTransactionID(ctx context.Context, transactionID string) (*model.Order, error) {
	var order model.Order
	err := r.db.WithContext(ctx).
		Where("transaction_id = ?", transactionID).
		First(&order).Error

	if err != nil {
		return nil, err
	}

	return &order, nil
}

// MarkPaid reports the number of rows updated so callers can tell a
// confirmed payment from a callback carrying an unknown transaction id.
func (r *orderRepoImpl) MarkPaid(ctx context.Context, transactionID string, paidAt time.Time) (int64, error) {
	result := r.db.WithContext(ctx).Model(&model.Order{}).
		Where("transaction_id = ?", transactionID).
		Updates(map[string]interface{}{
			"paid":       true,
			"paid_at":    paidAt,
			"updated_at": time.Now(),
		})

	return result.RowsAffected, result.Error
}

func (r *orderRepoImpl) DeleteByTransactionID(ctx context.Context, transactionID string) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("transaction_id = ?", transactionID).
		Delete(&model.Order{})

	return result.RowsAffected, result.Error
}

func (r *orderRepoImpl) DeleteByID(ctx context.Context, orderID uint) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("id = ?", orderID).
		Delete(&model.Order{})

	return result.RowsAffected, result.Error
}
