package checker

import (
	"context"
	"encoding/json"
	"time"

	"github.com/PuerkitoBio/goquery"

	"stockwatch/helpers"
	"stockwatch/logger"
	apperrors "stockwatch/pkg/errors"
	"stockwatch/services/cache"
	"stockwatch/services/notifier"
	"stockwatch/services/publisher"
)

// cooldownKey is the cache key holding the last notified status text.
const cooldownKey = "stockwatch:last_notified"

// Checker runs the availability pipeline for a single product page.
type Checker struct {
	notifier  notifier.Notifier
	publisher publisher.Publisher
	cache     cache.CacheService
	cooldown  time.Duration
	log       *logger.Logger
}

// New creates a checker. The publisher and cache may be nil, in which case
// event publishing and the notification cooldown are disabled.
func New(n notifier.Notifier, pub publisher.Publisher, cooldownCache cache.CacheService, cooldown time.Duration) *Checker {
	return &Checker{
		notifier:  n,
		publisher: pub,
		cache:     cooldownCache,
		cooldown:  cooldown,
		log:       logger.ForChecker(),
	}
}

// Check runs the fetch, locate, classify, notify pipeline against the given
// product page URL.
//
// A fetch failure is returned to the caller. A page without the expected
// availability markup ends the run cleanly: the condition is logged as an
// error and no notification is sent.
func (c *Checker) Check(ctx context.Context, url string) error {
	c.log.Debug().Str("url", url).Msg("Retrieving product page")
	body, err := helpers.FetchPage(ctx, url)
	if err != nil {
		return err
	}

	doc, err := goquery.NewDocumentFromReader(body)
	if err != nil {
		return apperrors.NewParse(url, "failed to parse product page", err)
	}

	c.log.Debug().Msg("Searching for availability div")
	container, err := findAvailabilityContainer(doc)
	if err != nil {
		c.log.Error().Str("class", availabilityClassList).Msg("Could not find availability div")
		return nil
	}

	c.log.Debug().Msg("Searching for availability span")
	span, err := findAvailabilitySpan(container)
	if err != nil {
		c.log.Error().Str("class", availabilityClassList).Msg("No spans found in availability div")
		return nil
	}

	text := span.Text()
	c.log.Info().Str("text", text).Msg("Extracted availability status")

	c.publishEvent(url, text)

	if c.notifiedRecently(text) {
		c.log.Debug().Msg("Availability unchanged within cooldown window, skipping notification")
		return nil
	}

	if err := c.notifier.Notify(ctx, DecorateMessage(text)); err != nil {
		// Notification failures are logged, never escalated
		c.log.Error().Err(err).Msg("Failed to send notification")
		return nil
	}

	c.rememberNotified(text)
	return nil
}

// notifiedRecently reports whether the same status text was already
// notified within the cooldown window.
func (c *Checker) notifiedRecently(text string) bool {
	if c.cache == nil {
		return false
	}
	last, err := c.cache.Get(cooldownKey)
	if err != nil {
		return false
	}
	return string(last) == text
}

func (c *Checker) rememberNotified(text string) {
	if c.cache == nil {
		return
	}
	if err := c.cache.Set(cooldownKey, []byte(text), c.cooldown); err != nil {
		c.log.Warn().Err(err).Msg("Failed to record notified status")
	}
}

// publishEvent emits an availability event to the configured stream.
func (c *Checker) publishEvent(url, text string) {
	if c.publisher == nil {
		return
	}

	event := AvailabilityEvent{
		URL:       url,
		Text:      text,
		Available: IsAvailable(text),
		CheckedAt: time.Now().UTC(),
	}

	data, err := json.Marshal(event)
	if err != nil {
		c.log.Error().Err(err).Msg("Failed to encode availability event")
		return
	}

	if err := c.publisher.Publish(data); err != nil {
		c.log.Error().Err(err).Msg("Failed to publish availability event")
	}
}
