// Tourguide - Smart Tourism Recommendation Client
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tourguide

package remote

import (
	"context"
	"slices"
	"strings"

	"github.com/tomtom215/tourguide/internal/cache"
	"github.com/tomtom215/tourguide/internal/config"
	"github.com/tomtom215/tourguide/internal/logging"
	"github.com/tomtom215/tourguide/internal/metrics"
	"github.com/tomtom215/tourguide/internal/models"
)

const (
	keySpots         = "spots"
	keySearchPrefix  = "search:"
	keyReviewsPrefix = "reviews:"
)

// CachingClient keeps read-only listings (the catalog, search results and
// per-spot reviews) for a short TTL. Writes pass through; a successful
// review submission drops that spot's cached reviews and every cached spot
// listing, since listings carry rating aggregates. Callers always get
// copies of cached data.
type CachingClient struct {
	API

	spots   *cache.LRU[[]models.Spot]
	reviews *cache.LRU[models.ReviewsResponse]
}

var (
	_ API         = (*CachingClient)(nil)
	_ Invalidator = (*CachingClient)(nil)
)

// NewCachingClient decorates api using cfg.CacheTTL and cfg.CacheSize.
func NewCachingClient(api API, cfg *config.APIConfig) *CachingClient {
	return &CachingClient{
		API:     api,
		spots:   cache.NewLRU[[]models.Spot](cfg.CacheSize, cfg.CacheTTL),
		reviews: cache.NewLRU[models.ReviewsResponse](cfg.CacheSize, cfg.CacheTTL),
	}
}

func (c *CachingClient) ListSpots(ctx context.Context) ([]models.Spot, error) {
	return c.cachedSpots(ctx, "spots", keySpots, func() ([]models.Spot, error) {
		return c.API.ListSpots(ctx)
	})
}

func (c *CachingClient) SearchSpots(ctx context.Context, query string) ([]models.Spot, error) {
	key := keySearchPrefix + strings.ToLower(strings.TrimSpace(query))
	return c.cachedSpots(ctx, "search", key, func() ([]models.Spot, error) {
		return c.API.SearchSpots(ctx, query)
	})
}

func (c *CachingClient) cachedSpots(ctx context.Context, listing, key string, fetch func() ([]models.Spot, error)) ([]models.Spot, error) {
	if spots, ok := c.spots.Get(key); ok {
		metrics.RecordCacheLookup(listing, true)
		logging.Ctx(ctx).Debug().Str("key", key).Int("count", len(spots)).Msg("Spot listing served from cache")
		return models.CloneSpots(spots), nil
	}
	metrics.RecordCacheLookup(listing, false)

	spots, err := fetch()
	if err != nil {
		return nil, err
	}
	c.spots.Add(key, models.CloneSpots(spots))
	return spots, nil
}

// ListReviews caches only successful responses.
func (c *CachingClient) ListReviews(ctx context.Context, spotID string) (*models.ReviewsResponse, error) {
	key := keyReviewsPrefix + spotID
	if resp, ok := c.reviews.Get(key); ok {
		metrics.RecordCacheLookup("reviews", true)
		return cloneReviews(&resp), nil
	}
	metrics.RecordCacheLookup("reviews", false)

	resp, err := c.API.ListReviews(ctx, spotID)
	if err != nil {
		return nil, err
	}
	if resp.Success {
		c.reviews.Add(key, *cloneReviews(resp))
	}
	return resp, nil
}

func (c *CachingClient) SubmitReview(ctx context.Context, review models.Review) (*models.MessageResponse, error) {
	resp, err := c.API.SubmitReview(ctx, review)
	if err == nil && resp.Success {
		c.reviews.Remove(keyReviewsPrefix + review.SpotID)
		c.spots.Remove(keySpots)
		c.spots.RemovePrefix(keySearchPrefix)
	}
	return resp, err
}

// Invalidate drops every cached listing.
func (c *CachingClient) Invalidate() {
	c.spots.Clear()
	c.reviews.Clear()
}

// Sweep drops expired entries and publishes cache sizes. It returns the
// number of entries removed.
func (c *CachingClient) Sweep() int {
	removed := c.spots.CleanupExpired() + c.reviews.CleanupExpired()

	_, _, spotsSize := c.spots.Stats()
	_, _, reviewsSize := c.reviews.Stats()
	metrics.CacheEntries.WithLabelValues("spots").Set(float64(spotsSize))
	metrics.CacheEntries.WithLabelValues("reviews").Set(float64(reviewsSize))
	return removed
}

func cloneReviews(r *models.ReviewsResponse) *models.ReviewsResponse {
	out := *r
	out.Reviews = slices.Clone(r.Reviews)
	return &out
}
