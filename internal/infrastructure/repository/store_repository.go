package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/danuwijaya/tokopos-api/internal/domain/entity"
	domainRepo "github.com/danuwijaya/tokopos-api/internal/domain/repository"
	"github.com/danuwijaya/tokopos-api/pkg/pagination"
)

type storeRepository struct {
	db *gorm.DB
}

// NewStoreRepository creates a new store repository
func NewStoreRepository(db *gorm.DB) domainRepo.StoreRepository {
	return &storeRepository{db: db}
}

func (r *storeRepository) Create(ctx context.Context, store *entity.Store) error {
	return r.db.WithContext(ctx).Create(store).Error
}

func (r *storeRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Store, error) {
	var store entity.Store
	err := r.db.WithContext(ctx).First(&store, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &store, err
}

func (r *storeRepository) GetByCode(ctx context.Context, code string) (*entity.Store, error) {
	var store entity.Store
	err := r.db.WithContext(ctx).First(&store, "code = ?", code).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &store, err
}

func (r *storeRepository) Update(ctx context.Context, store *entity.Store) error {
	return r.db.WithContext(ctx).Save(store).Error
}

func (r *storeRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.Store{}, "id = ?", id).Error
}

func (r *storeRepository) List(ctx context.Context, params *pagination.PaginationParams, search string) ([]entity.Store, int64, error) {
	var stores []entity.Store
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.Store{})
	if search != "" {
		query = query.Where("name ILIKE ? OR code ILIKE ?", "%"+search+"%", "%"+search+"%")
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Validate()
	err := query.Offset(params.Offset()).Limit(params.PerPage).
		Order("name ASC").
		Find(&stores).Error

	return stores, total, err
}

type warehouseRepository struct {
	db *gorm.DB
}

// NewWarehouseRepository creates a new warehouse repository
func NewWarehouseRepository(db *gorm.DB) domainRepo.WarehouseRepository {
	return &warehouseRepository{db: db}
}

func (r *warehouseRepository) Create(ctx context.Context, warehouse *entity.Warehouse) error {
	return r.db.WithContext(ctx).Create(warehouse).Error
}

func (r *warehouseRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Warehouse, error) {
	var warehouse entity.Warehouse
	err := r.db.WithContext(ctx).First(&warehouse, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &warehouse, err
}

func (r *warehouseRepository) GetByCode(ctx context.Context, code string) (*entity.Warehouse, error) {
	var warehouse entity.Warehouse
	err := r.db.WithContext(ctx).First(&warehouse, "code = ?", code).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &warehouse, err
}

func (r *warehouseRepository) Update(ctx context.Context, warehouse *entity.Warehouse) error {
	return r.db.WithContext(ctx).Save(warehouse).Error
}

func (r *warehouseRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.Warehouse{}, "id = ?", id).Error
}

func (r *warehouseRepository) List(ctx context.Context, params *pagination.PaginationParams, search string) ([]entity.Warehouse, int64, error) {
	var warehouses []entity.Warehouse
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.Warehouse{})
	if search != "" {
		query = query.Where("name ILIKE ? OR code ILIKE ?", "%"+search+"%", "%"+search+"%")
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Validate()
	err := query.Offset(params.Offset()).Limit(params.PerPage).
		Order("name ASC").
		Find(&warehouses).Error

	return warehouses, total, err
}

type supplierRepository struct {
	db *gorm.DB
}

// NewSupplierRepository creates a new supplier repository
func NewSupplierRepository(db *gorm.DB) domainRepo.SupplierRepository {
	return &supplierRepository{db: db}
}

func (r *supplierRepository) Create(ctx context.Context, supplier *entity.Supplier) error {
	return r.db.WithContext(ctx).Create(supplier).Error
}

func (r *supplierRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Supplier, error) {
	var supplier entity.Supplier
	err := r.db.WithContext(ctx).First(&supplier, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &supplier, err
}

func (r *supplierRepository) GetByCode(ctx context.Context, code string) (*entity.Supplier, error) {
	var supplier entity.Supplier
	err := r.db.WithContext(ctx).First(&supplier, "code = ?", code).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &supplier, err
}

func (r *supplierRepository) Update(ctx context.Context, supplier *entity.Supplier) error {
	return r.db.WithContext(ctx).Save(supplier).Error
}

func (r *supplierRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.Supplier{}, "id = ?", id).Error
}

func (r *supplierRepository) List(ctx context.Context, params *pagination.PaginationParams, search string) ([]entity.Supplier, int64, error) {
	var suppliers []entity.Supplier
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.Supplier{})
	if search != "" {
		query = query.Where("name ILIKE ? OR code ILIKE ? OR contact_person ILIKE ?",
			"%"+search+"%", "%"+search+"%", "%"+search+"%")
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Validate()
	err := query.Offset(params.Offset()).Limit(params.PerPage).
		Order("name ASC").
		Find(&suppliers).Error

	return suppliers, total, err
}

type storageLocationRepository struct {
	db *gorm.DB
}

// NewStorageLocationRepository creates a new storage location repository
func NewStorageLocationRepository(db *gorm.DB) domainRepo.StorageLocationRepository {
	return &storageLocationRepository{db: db}
}

func (r *storageLocationRepository) Create(ctx context.Context, location *entity.StorageLocation) error {
	return r.db.WithContext(ctx).Create(location).Error
}

func (r *storageLocationRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.StorageLocation, error) {
	var location entity.StorageLocation
	err := r.db.WithContext(ctx).Preload("Children").First(&location, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &location, err
}

func (r *storageLocationRepository) Update(ctx context.Context, location *entity.StorageLocation) error {
	return r.db.WithContext(ctx).Save(location).Error
}

func (r *storageLocationRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.StorageLocation{}, "id = ?", id).Error
}

func (r *storageLocationRepository) ListByWarehouse(ctx context.Context, warehouseID uuid.UUID) ([]entity.StorageLocation, error) {
	var locations []entity.StorageLocation
	err := r.db.WithContext(ctx).
		Where("warehouse_id = ?", warehouseID).
		Order("code ASC").
		Find(&locations).Error
	return locations, err
}

func (r *storageLocationRepository) HasChildren(ctx context.Context, id uuid.UUID) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entity.StorageLocation{}).
		Where("parent_id = ?", id).
		Count(&count).Error
	return count > 0, err
}
