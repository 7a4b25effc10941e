// Package service orchestrates offer CRUD operations against the Webflow
// collection. It owns the pagination clamp, the create/publish sequencing and
// the classification of remote failures; it keeps no state between requests.
package service

import (
	"context"
	"errors"
	"strings"
	"unicode/utf8"

	"github.com/max9849/webflow-offres-api/internal/logger"
	"github.com/max9849/webflow-offres-api/internal/mapper"
	"github.com/max9849/webflow-offres-api/internal/models"
	"github.com/max9849/webflow-offres-api/internal/webflow"
)

const (
	DefaultLimit = 50
	MaxLimit     = 100
)

// CollectionAPI is the slice of the Webflow client the service depends on.
type CollectionAPI interface {
	ListItems(ctx context.Context, limit, offset int) (*webflow.ItemList, error)
	GetItem(ctx context.Context, itemID string) (*webflow.Item, error)
	CreateItem(ctx context.Context, fieldData map[string]any, live bool) (*webflow.Item, error)
	UpdateItem(ctx context.Context, itemID string, fieldData map[string]any) (*webflow.Item, error)
	UpdateItemLive(ctx context.Context, itemID string, fieldData map[string]any) (*webflow.Item, error)
	PublishItem(ctx context.Context, itemID string) error
	UnpublishItem(ctx context.Context, itemID string) error
	DeleteItem(ctx context.Context, itemID string) error
}

// WriteResult is the outcome of a create or update. Warning is set when the
// write succeeded but a dependent publish step did not: the offer exists,
// unpublished, and the caller must not report full success.
type WriteResult struct {
	Offer   models.JobOffer
	Warning string
}

type OfferService struct {
	api    CollectionAPI
	mapper *mapper.Mapper
}

func NewOfferService(api CollectionAPI, m *mapper.Mapper) *OfferService {
	return &OfferService{api: api, mapper: m}
}

// List returns one page of offers. limit defaults to DefaultLimit and is
// clamped to [1, MaxLimit]; offset is clamped to ≥ 0.
func (s *OfferService) List(ctx context.Context, limit, offset int) (*models.OfferList, error) {
	if limit <= 0 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}
	if offset < 0 {
		offset = 0
	}

	page, err := s.api.ListItems(ctx, limit, offset)
	if err != nil {
		return nil, classify(err, "")
	}

	items := make([]models.JobOffer, 0, len(page.Items))
	for _, item := range page.Items {
		items = append(items, s.mapper.FromItem(item))
	}
	return &models.OfferList{
		Items:  items,
		Total:  page.Pagination.Total,
		Limit:  limit,
		Offset: offset,
	}, nil
}

// Create validates the input, maps it with a fresh slug and creates the item.
// With publish set it uses the atomic create-live endpoint; if the live
// endpoint rejects the item, the submission is kept as a draft instead and the
// result carries a warning (partial success) rather than losing the record.
func (s *OfferService) Create(ctx context.Context, in models.OfferInput, publish bool) (*WriteResult, error) {
	if err := validate(in); err != nil {
		return nil, err
	}
	fieldData := s.mapper.ToFieldData(in, "")

	if !publish {
		item, err := s.api.CreateItem(ctx, fieldData, false)
		if err != nil {
			return nil, classify(err, "")
		}
		return &WriteResult{Offer: s.mapper.FromItem(*item)}, nil
	}

	item, liveErr := s.api.CreateItem(ctx, fieldData, true)
	if liveErr == nil {
		return &WriteResult{Offer: s.mapper.FromItem(*item)}, nil
	}

	var apiErr *webflow.APIError
	if !errors.As(liveErr, &apiErr) {
		// Transport failure: nothing was created, no fallback to attempt.
		return nil, classify(liveErr, "")
	}

	item, err := s.api.CreateItem(ctx, fieldData, false)
	if err != nil {
		return nil, classify(liveErr, "")
	}

	log := logger.Get().With().Str("component", "offers").Logger()
	log.Warn().Int("remote_status", apiErr.StatusCode).Str("item_id", item.ID).
		Msg("Live create rejected, offer kept as draft")
	return &WriteResult{
		Offer:   s.mapper.FromItem(*item),
		Warning: "offer created but not published: " + apiErr.Error(),
	}, nil
}

// Get fetches one offer by id.
func (s *OfferService) Get(ctx context.Context, id string) (*models.JobOffer, error) {
	item, err := s.api.GetItem(ctx, id)
	if err != nil {
		return nil, classify(err, id)
	}
	offer := s.mapper.FromItem(*item)
	return &offer, nil
}

// GetBySlug scans one page of MaxLimit items for the slug. The collection API
// has no direct slug lookup; slugs beyond that page report not-found.
func (s *OfferService) GetBySlug(ctx context.Context, slugValue string) (*models.JobOffer, error) {
	page, err := s.api.ListItems(ctx, MaxLimit, 0)
	if err != nil {
		return nil, classify(err, slugValue)
	}
	for _, item := range page.Items {
		offer := s.mapper.FromItem(item)
		if offer.Slug == slugValue {
			return &offer, nil
		}
	}
	return nil, &NotFoundError{Ref: slugValue}
}

// Update fetches the stored item first to recover its slug, then applies the
// patch with that slug forwarded untouched. publish==nil leaves the
// draft/archived state alone. true prefers the atomic live-update endpoint
// and falls back to a staged patch plus a separate publish call when the live
// endpoint rejects the item; false unpublishes before patching so the stale
// live copy does not outlive the edit. A publish or unpublish failure after a
// successful patch is a partial success, reported through the Warning field.
func (s *OfferService) Update(ctx context.Context, id string, in models.OfferInput, publish *bool) (*WriteResult, error) {
	if err := validate(in); err != nil {
		return nil, err
	}

	existing, err := s.api.GetItem(ctx, id)
	if err != nil {
		return nil, classify(err, id)
	}
	fieldData := s.mapper.ToFieldData(in, s.mapper.FromItem(*existing).Slug)

	if publish == nil {
		item, err := s.api.UpdateItem(ctx, id, fieldData)
		if err != nil {
			return nil, classify(err, id)
		}
		return &WriteResult{Offer: s.mapper.FromItem(*item)}, nil
	}

	log := logger.Get().With().Str("component", "offers").Str("item_id", id).Logger()

	if *publish {
		item, liveErr := s.api.UpdateItemLive(ctx, id, fieldData)
		if liveErr == nil {
			result := &WriteResult{Offer: s.mapper.FromItem(*item)}
			result.Offer.Published = true
			return result, nil
		}
		var apiErr *webflow.APIError
		if !errors.As(liveErr, &apiErr) {
			return nil, classify(liveErr, id)
		}
		log.Warn().Int("remote_status", apiErr.StatusCode).Msg("Live update rejected, patching staged item")

		item, err := s.api.UpdateItem(ctx, id, fieldData)
		if err != nil {
			return nil, classify(err, id)
		}
		result := &WriteResult{Offer: s.mapper.FromItem(*item)}
		if err := s.api.PublishItem(ctx, id); err != nil {
			log.Warn().Err(err).Msg("Publish after update failed")
			result.Offer.Published = false
			result.Warning = "offer updated but not published: " + err.Error()
			return result, nil
		}
		result.Offer.Published = true
		return result, nil
	}

	var warning string
	wasPublished := !existing.IsDraft && !existing.IsArchived
	if err := s.api.UnpublishItem(ctx, id); err != nil {
		if unpublishNoop(err) {
			log.Debug().Err(err).Msg("Unpublish before update was a no-op")
		} else {
			log.Warn().Err(err).Msg("Unpublish before update failed")
			warning = "offer updated but the live copy may still be published: " + err.Error()
		}
	}

	item, err := s.api.UpdateItem(ctx, id, fieldData)
	if err != nil {
		return nil, classify(err, id)
	}
	result := &WriteResult{Offer: s.mapper.FromItem(*item), Warning: warning}
	result.Offer.Published = warning != "" && wasPublished
	return result, nil
}

// Delete removes an offer. The collection requires unpublishing before
// deletion; an unpublish failure (already unpublished, never published) is
// ignored and the delete call is authoritative.
func (s *OfferService) Delete(ctx context.Context, id string) error {
	log := logger.Get().With().Str("component", "offers").Str("item_id", id).Logger()

	if err := s.api.UnpublishItem(ctx, id); err != nil {
		log.Debug().Err(err).Msg("Unpublish before delete failed, proceeding")
	}
	if err := s.api.DeleteItem(ctx, id); err != nil {
		return classify(err, id)
	}
	return nil
}

// validate applies the required-field and minimum-length rules. It runs
// before any remote call.
func validate(in models.OfferInput) error {
	title := strings.TrimSpace(in.Title)
	if title == "" {
		return &ValidationError{Msg: "title is required"}
	}
	if utf8.RuneCountInString(title) < 2 {
		return &ValidationError{Msg: "title is too short"}
	}
	if d := strings.TrimSpace(in.Description); d != "" && utf8.RuneCountInString(d) < 5 {
		return &ValidationError{Msg: "description is too short"}
	}
	return nil
}
