package usecase

import (
	"context"
	"fmt"
	"time"

	"post-manager/internal/imageres"
	"post-manager/internal/query"
	"post-manager/pkg/logger"
)

// Resource is what the generic service needs from an entity: access to
// its image field and its timestamps. Post and Movie both satisfy it.
type Resource interface {
	ImageURL() string
	SetImageURL(string)
	Touch(now time.Time)
}

// Repository is the record-store contract, one implementation per kind.
type Repository[E Resource] interface {
	List(ctx context.Context, params query.Params) ([]E, error)
	GetByID(ctx context.Context, id int64) (E, error)
	Create(ctx context.Context, res E) error
	Update(ctx context.Context, res E) error
	Delete(ctx context.Context, id int64) error
}

// API is the operation surface handlers depend on.
type API[E Resource] interface {
	List(ctx context.Context, params query.Params) ([]E, error)
	Get(ctx context.Context, id int64) (E, error)
	Create(ctx context.Context, res E, img imageres.Source) (E, error)
	Update(ctx context.Context, id int64, apply func(E), img imageres.Source) (E, error)
	Delete(ctx context.Context, id int64) error
}

// Service implements list/get/create/update/delete for one resource kind.
// The two kinds differ only in their repository, query spec, and DTOs, so
// a single parameterized service replaces the per-kind duplication.
type Service[E Resource] struct {
	repo   Repository[E]
	images *imageres.Resolver
	kind   string
	log    *logger.Logger
}

func NewService[E Resource](repo Repository[E], images *imageres.Resolver, kind string, log *logger.Logger) *Service[E] {
	return &Service[E]{
		repo:   repo,
		images: images,
		kind:   kind,
		log:    log,
	}
}

func (s *Service[E]) List(ctx context.Context, params query.Params) ([]E, error) {
	records, err := s.repo.List(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("failed to list %ss: %w", s.kind, err)
	}
	return records, nil
}

func (s *Service[E]) Get(ctx context.Context, id int64) (E, error) {
	return s.repo.GetByID(ctx, id)
}

// Create resolves the image source, stamps both timestamps with the same
// instant, and persists. Every call inserts a new record.
func (s *Service[E]) Create(ctx context.Context, res E, img imageres.Source) (E, error) {
	var zero E

	imageURL, err := s.images.Resolve(ctx, img, "")
	if err != nil {
		return zero, err
	}
	res.SetImageURL(imageURL)

	res.Touch(time.Now().UTC())

	if err := s.repo.Create(ctx, res); err != nil {
		return zero, fmt.Errorf("failed to create %s: %w", s.kind, err)
	}
	return res, nil
}

// Update is a full replace of the mutable fields: apply copies the request
// fields onto the loaded record, the image source is resolved against the
// record's current value, and updatedAt moves forward.
func (s *Service[E]) Update(ctx context.Context, id int64, apply func(E), img imageres.Source) (E, error) {
	var zero E

	res, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return zero, err
	}

	imageURL, err := s.images.Resolve(ctx, img, res.ImageURL())
	if err != nil {
		return zero, err
	}

	apply(res)
	res.SetImageURL(imageURL)
	res.Touch(time.Now().UTC())

	if err := s.repo.Update(ctx, res); err != nil {
		return zero, fmt.Errorf("failed to update %s: %w", s.kind, err)
	}
	return res, nil
}

func (s *Service[E]) Delete(ctx context.Context, id int64) error {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete %s: %w", s.kind, err)
	}
	return nil
}
