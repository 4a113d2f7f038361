package postgres

import (
	"context"
	"encoding/json"
	"time"

	"reliefmap/internal/domain/entity"
	domainerrors "reliefmap/internal/domain/errors"
	"reliefmap/internal/domain/repository"
	"reliefmap/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// reliefPointRepository implements the repository.ReliefPointRepository interface.
type reliefPointRepository struct {
	db *gorm.DB
}

// NewReliefPointRepository is the constructor for reliefPointRepository.
func NewReliefPointRepository(db *gorm.DB) repository.ReliefPointRepository {
	return &reliefPointRepository{db: db}
}

// CreatePoint persists a new relief point and fills in generated values.
func (repo *reliefPointRepository) CreatePoint(ctx context.Context, point *entity.ReliefPoint) error {
	pointM, err := fromReliefPointDomain(point)
	if err != nil {
		return err
	}

	if err := repo.db.WithContext(ctx).Create(pointM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidation.WrapMessage("missing required point information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create relief point")
	}

	// Update the entity with generated values
	point.ID = pointM.ID
	point.CreatedAt = pointM.CreatedAt
	point.UpdatedAt = pointM.UpdatedAt

	return nil
}

// FindPointByID retrieves a relief point by its unique ID.
func (repo *reliefPointRepository) FindPointByID(ctx context.Context, id uuid.UUID) (*entity.ReliefPoint, error) {
	var pointM model.ReliefPointModel
	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&pointM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPointNotFound
		}

		return nil, errors.Wrap(err, "failed to find relief point by ID")
	}

	return toReliefPointDomain(&pointM)
}

// ListVisible returns verified, non-Full points ordered by verified_at
// descending. An optional city narrows the listing to one province.
func (repo *reliefPointRepository) ListVisible(ctx context.Context, city string) ([]*entity.ReliefPoint, error) {
	query := repo.db.WithContext(ctx).
		Where("verified_at IS NOT NULL").
		Where("status <> ?", string(entity.StatusFull)).
		Order("verified_at DESC")
	if city != "" {
		query = query.Where("city = ?", city)
	}

	var pointModels []*model.ReliefPointModel
	if err := query.Find(&pointModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list visible relief points")
	}

	return toReliefPointDomains(pointModels)
}

// ListAll returns every point regardless of verification state, ordered by
// created_at descending.
func (repo *reliefPointRepository) ListAll(ctx context.Context, opts repository.ListOptions) ([]*entity.ReliefPoint, error) {
	query := repo.db.WithContext(ctx).Order("created_at DESC")
	if opts.PendingOnly {
		query = query.Where("verified_at IS NULL")
	}
	if opts.City != "" {
		query = query.Where("city = ?", opts.City)
	}

	var pointModels []*model.ReliefPointModel
	if err := query.Find(&pointModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list relief points")
	}

	return toReliefPointDomains(pointModels)
}

// UpdatePoint applies a partial update by id. Only non-nil patch fields touch
// the row; last-writer-wins applies per field.
func (repo *reliefPointRepository) UpdatePoint(ctx context.Context, id uuid.UUID, patch repository.ReliefPointPatch) error {
	updates, err := patchToUpdates(patch)
	if err != nil {
		return err
	}
	if len(updates) == 0 {
		return repo.assertExists(ctx, id)
	}

	result := repo.db.WithContext(ctx).
		Model(&model.ReliefPointModel{}).
		Where("id = ?", id).
		Updates(updates)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update relief point")
	}
	if result.RowsAffected == 0 {
		return repository.ErrPointNotFound
	}

	return nil
}

// SetVerified sets verified_at to the given value (nil clears it).
func (repo *reliefPointRepository) SetVerified(ctx context.Context, id uuid.UUID, verifiedAt *time.Time) error {
	return repo.setColumn(ctx, id, "verified_at", verifiedAt, "failed to set verified_at")
}

// SetStatus updates only the status column.
func (repo *reliefPointRepository) SetStatus(ctx context.Context, id uuid.UUID, status entity.PointStatus) error {
	return repo.setColumn(ctx, id, "status", string(status), "failed to set status")
}

// DeletePoint removes a point by its ID. Irreversible.
func (repo *reliefPointRepository) DeletePoint(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.ReliefPointModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete relief point")
	}
	if result.RowsAffected == 0 {
		return repository.ErrPointNotFound
	}

	return nil
}

func (repo *reliefPointRepository) setColumn(ctx context.Context, id uuid.UUID, column string, value any, failMsg string) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ReliefPointModel{}).
		Where("id = ?", id).
		Updates(map[string]any{column: value, "updated_at": time.Now()})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, failMsg)
	}
	if result.RowsAffected == 0 {
		return repository.ErrPointNotFound
	}

	return nil
}

func (repo *reliefPointRepository) assertExists(ctx context.Context, id uuid.UUID) error {
	var count int64
	if err := repo.db.WithContext(ctx).
		Model(&model.ReliefPointModel{}).
		Where("id = ?", id).
		Count(&count).Error; err != nil {
		return errors.Wrap(err, "failed to check relief point existence")
	}
	if count == 0 {
		return repository.ErrPointNotFound
	}

	return nil
}

func patchToUpdates(patch repository.ReliefPointPatch) (map[string]any, error) {
	updates := map[string]any{}

	if patch.LocationName != nil {
		updates["location_name"] = *patch.LocationName
	}
	if patch.Address != nil {
		updates["address"] = *patch.Address
	}
	if patch.City != nil {
		updates["city"] = *patch.City
	}
	if patch.Lat != nil {
		updates["lat"] = *patch.Lat
	}
	if patch.Lng != nil {
		updates["lng"] = *patch.Lng
	}
	if patch.Type != nil {
		updates["type"] = string(*patch.Type)
	}
	if patch.Status != nil {
		updates["status"] = string(*patch.Status)
	}
	if patch.Description != nil {
		updates["description"] = *patch.Description
	}
	if patch.SourceURL != nil {
		updates["source_url"] = *patch.SourceURL
	}
	if patch.ContentFacebook != nil {
		updates["content_facebook"] = *patch.ContentFacebook
	}
	if patch.Contact != nil {
		data, err := json.Marshal(patch.Contact)
		if err != nil {
			return nil, errors.Wrap(err, "failed to marshal contact info")
		}
		updates["contact_info"] = datatypes.JSON(data)
	}
	if patch.AlbumPreview != nil {
		data, err := json.Marshal(*patch.AlbumPreview)
		if err != nil {
			return nil, errors.Wrap(err, "failed to marshal album preview")
		}
		updates["album_preview"] = datatypes.JSON(data)
	}
	if patch.ReactionCount != nil {
		updates["reaction_count"] = *patch.ReactionCount
	}

	if len(updates) > 0 {
		updates["updated_at"] = time.Now()
	}

	return updates, nil
}

func fromReliefPointDomain(point *entity.ReliefPoint) (*model.ReliefPointModel, error) {
	pointM := &model.ReliefPointModel{
		ID:              point.ID,
		LocationName:    point.LocationName,
		Address:         point.Address,
		City:            point.City,
		Lat:             point.Lat,
		Lng:             point.Lng,
		Type:            string(point.Type),
		Status:          string(point.Status),
		Description:     point.Description,
		SourceURL:       point.SourceURL,
		ContentFacebook: point.ContentFacebook,
		ReactionCount:   point.ReactionCount,
		Timestamp:       point.Timestamp,
		VerifiedAt:      point.VerifiedAt,
		CreatedAt:       point.CreatedAt,
		UpdatedAt:       point.UpdatedAt,
	}

	if point.Contact != nil {
		data, err := json.Marshal(point.Contact)
		if err != nil {
			return nil, errors.Wrap(err, "failed to marshal contact info")
		}
		pointM.ContactInfo = datatypes.JSON(data)
	}
	if point.AlbumPreview != nil {
		data, err := json.Marshal(point.AlbumPreview)
		if err != nil {
			return nil, errors.Wrap(err, "failed to marshal album preview")
		}
		pointM.AlbumPreview = datatypes.JSON(data)
	}

	return pointM, nil
}

func toReliefPointDomain(pointM *model.ReliefPointModel) (*entity.ReliefPoint, error) {
	// Normalize historical rows that stored lowercase status values.
	status, ok := entity.ParsePointStatus(pointM.Status)
	if !ok {
		status = entity.StatusOpen
	}

	point := &entity.ReliefPoint{
		ID:              pointM.ID,
		LocationName:    pointM.LocationName,
		Address:         pointM.Address,
		City:            pointM.City,
		Lat:             pointM.Lat,
		Lng:             pointM.Lng,
		Type:            entity.PointType(pointM.Type),
		Status:          status,
		Description:     pointM.Description,
		SourceURL:       pointM.SourceURL,
		ContentFacebook: pointM.ContentFacebook,
		ReactionCount:   pointM.ReactionCount,
		Timestamp:       pointM.Timestamp,
		VerifiedAt:      pointM.VerifiedAt,
		CreatedAt:       pointM.CreatedAt,
		UpdatedAt:       pointM.UpdatedAt,
	}

	if len(pointM.ContactInfo) > 0 {
		contact := &entity.ContactInfo{}
		if err := json.Unmarshal(pointM.ContactInfo, contact); err != nil {
			return nil, errors.Wrap(err, "failed to unmarshal contact info")
		}
		point.Contact = contact
	}
	if len(pointM.AlbumPreview) > 0 {
		var album []entity.AlbumImage
		if err := json.Unmarshal(pointM.AlbumPreview, &album); err != nil {
			return nil, errors.Wrap(err, "failed to unmarshal album preview")
		}
		point.AlbumPreview = album
	}

	return point, nil
}

func toReliefPointDomains(pointModels []*model.ReliefPointModel) ([]*entity.ReliefPoint, error) {
	points := make([]*entity.ReliefPoint, 0, len(pointModels))
	for _, pointM := range pointModels {
		point, err := toReliefPointDomain(pointM)
		if err != nil {
			return nil, err
		}
		points = append(points, point)
	}

	return points, nil
}
