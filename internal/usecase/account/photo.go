package account

import (
	"context"
	"errors"

	"github.com/BruksfildServices01/manicure-agenda/internal/audit"
	"github.com/BruksfildServices01/manicure-agenda/internal/blob"
	domain "github.com/BruksfildServices01/manicure-agenda/internal/domain/appointment"
	"github.com/BruksfildServices01/manicure-agenda/internal/httperr"
	"github.com/BruksfildServices01/manicure-agenda/internal/models"
	"github.com/BruksfildServices01/manicure-agenda/internal/photo"
)

func photoKey(profileID string) string {
	return "profiles/" + profileID + ".webp"
}

// ======================================================
// UPDATE PHOTO
// ======================================================

type UpdatePhoto struct {
	profiles domain.ProfileRepository
	blobs    blob.Store
	audit    *audit.Dispatcher
}

func NewUpdatePhoto(
	profiles domain.ProfileRepository,
	blobs blob.Store,
	audit *audit.Dispatcher,
) *UpdatePhoto {
	return &UpdatePhoto{profiles: profiles, blobs: blobs, audit: audit}
}

func (uc *UpdatePhoto) Execute(ctx context.Context, raw []byte) (models.Profile, error) {
	p, ok, err := uc.profiles.GetCurrentProfile(ctx)
	if err != nil {
		return models.Profile{}, err
	}
	if !ok {
		return models.Profile{}, httperr.ErrBusiness("not_logged_in")
	}

	if len(raw) > photo.MaxUploadBytes {
		return models.Profile{}, httperr.ErrBusiness("photo_too_large")
	}

	thumb, err := photo.Thumbnail(raw, photo.DefaultSize)
	if errors.Is(err, photo.ErrInvalidImage) {
		return models.Profile{}, httperr.ErrBusiness("invalid_image")
	}
	if err != nil {
		return models.Profile{}, err
	}

	key := photoKey(p.ID)
	if err := uc.blobs.Put(ctx, key, thumb, photo.ContentType); err != nil {
		return models.Profile{}, err
	}

	p.PhotoKey = models.Some(key)
	if err := uc.profiles.Save(ctx, p); err != nil {
		return models.Profile{}, err
	}

	uc.audit.Dispatch(audit.Event{
		ProfileID: p.ID,
		Action:    "photo_updated",
		Entity:    "profile",
		EntityID:  p.ID,
	})
	return p, nil
}

// ======================================================
// GET PHOTO
// ======================================================

type Photo struct {
	profiles domain.ProfileRepository
	blobs    blob.Store
}

func NewPhoto(profiles domain.ProfileRepository, blobs blob.Store) *Photo {
	return &Photo{profiles: profiles, blobs: blobs}
}

func (uc *Photo) Execute(ctx context.Context) ([]byte, error) {
	p, ok, err := uc.profiles.GetCurrentProfile(ctx)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, httperr.ErrBusiness("not_logged_in")
	}

	key, ok := p.PhotoKey.Get()
	if !ok {
		return nil, httperr.ErrBusiness("photo_not_found")
	}

	b, err := uc.blobs.Get(ctx, key)
	if errors.Is(err, blob.ErrNotFound) {
		return nil, httperr.ErrBusiness("photo_not_found")
	}
	return b, err
}
