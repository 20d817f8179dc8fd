package repository

import (
	"context"
	"strings"

	"github.com/alamin516/genius-car-server-sllcommerz/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ServiceRepository interface {
	Seed(ctx context.Context) error
	Search(ctx context.Context, search string, ascending bool) ([]*model.Service, error)
	FindByID(ctx context.Context, serviceID uint) (*model.Service, error)
}

type serviceRepoImpl struct {
	db *gorm.DB
}

func NewServiceRepository(db *gorm.DB) ServiceRepository {
	return &serviceRepoImpl{
		db: db,
	}
}

func (r *serviceRepoImpl) Seed(ctx context.Context) error {
	services := []model.Service{
		{ID: 1, Name: "Full Car Repair", Price: 300, Category: "Repair", Description: "Complete repair service for all car brands", Img: "https://i.ibb.co/full-car-repair.jpg"},
		{ID: 2, Name: "Engine Repair", Price: 150, Category: "Engine", Description: "Engine teardown and rebuild with genuine parts", Img: "https://i.ibb.co/engine-repair.jpg"},
		{ID: 3, Name: "Engine Oil Change", Price: 20, Category: "Engine", Description: "Full synthetic oil change with filter", Img: "https://i.ibb.co/engine-oil-change.jpg"},
		{ID: 4, Name: "Full Engine Diagnostic", Price: 60, Category: "Engine", Description: "Computerized diagnostic of all engine systems", Img: "https://i.ibb.co/engine-diagnostic.jpg"},
		{ID: 5, Name: "Battery Charge", Price: 27, Category: "Electric", Description: "Battery health check and recharge", Img: "https://i.ibb.co/battery-charge.jpg"},
		{ID: 6, Name: "Tyre Replacement", Price: 100, Category: "Wheels", Description: "Tyre replacement including balancing", Img: "https://i.ibb.co/tyre-replacement.jpg"},
	}

	return r.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(&services).Error
}

// Search matches the given text against name, category and description,
// case-insensitively, the relational stand-in for a document text index.
func (r *serviceRepoImpl) Search(ctx context.Context, search string, ascending bool) ([]*model.Service, error) {
	query := r.db.WithContext(ctx).Model(&model.Service{})

	if search != "" {
		pattern := "%" + strings.ToLower(search) + "%"
		query = query.Where(
			"lower(name) LIKE ? OR lower(category) LIKE ? OR lower(description) LIKE ?",
			pattern, pattern, pattern,
		)
	}

	direction := "price desc"
	if ascending {
		direction = "price asc"
	}

	var services []*model.Service
	err := query.Order(direction).Find(&services).Error
	if err != nil {
		return nil, err
	}

	return services, nil
}

func (r *serviceRepoImpl) FindByID(ctx context.Context, serviceID uint) (*model.Service, error) {
	var service model.Service
	err := r.db.WithContext(ctx).
		Where("id = ?", serviceID).
		First(&service).Error

	if err != nil {
		return nil, err
	}

	return &service, nil
}
