package checker

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
)

func parseHTML(t *testing.T, html string) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	assert.NoError(t, err)
	return doc
}

func TestFindAvailabilityContainer(t *testing.T) {
	doc := parseHTML(t, `<html><body>
		<div class="x-pdp-availability-online onlineAvailabilityContainer_Z02qk">
			<span>Available online</span>
		</div>
	</body></html>`)

	container, err := findAvailabilityContainer(doc)
	assert.NoError(t, err)
	assert.Equal(t, 1, container.Length())
}

func TestFindAvailabilityContainerMissing(t *testing.T) {
	doc := parseHTML(t, `<html><body><div class="something-else"><span>hi</span></div></body></html>`)

	_, err := findAvailabilityContainer(doc)
	assert.ErrorIs(t, err, ErrContainerNotFound)
}

func TestFindAvailabilityContainerRequiresExactClassMatch(t *testing.T) {
	// An extra class token means the attribute no longer matches
	doc := parseHTML(t, `<html><body>
		<div class="x-pdp-availability-online onlineAvailabilityContainer_Z02qk extra">
			<span>Available online</span>
		</div>
	</body></html>`)

	_, err := findAvailabilityContainer(doc)
	assert.ErrorIs(t, err, ErrContainerNotFound)
}

func TestFindAvailabilityContainerPicksFirstMatch(t *testing.T) {
	doc := parseHTML(t, `<html><body>
		<div class="x-pdp-availability-online onlineAvailabilityContainer_Z02qk"><span>first</span></div>
		<div class="x-pdp-availability-online onlineAvailabilityContainer_Z02qk"><span>second</span></div>
	</body></html>`)

	container, err := findAvailabilityContainer(doc)
	assert.NoError(t, err)

	span, err := findAvailabilitySpan(container)
	assert.NoError(t, err)
	assert.Equal(t, "first", span.Text())
}

func TestFindAvailabilitySpanPicksLastInDocumentOrder(t *testing.T) {
	doc := parseHTML(t, `<html><body>
		<div class="x-pdp-availability-online onlineAvailabilityContainer_Z02qk">
			<span>Checking availability</span>
			<p><span>nested earlier</span></p>
			<span>Available at your store</span>
		</div>
	</body></html>`)

	container, err := findAvailabilityContainer(doc)
	assert.NoError(t, err)

	span, err := findAvailabilitySpan(container)
	assert.NoError(t, err)
	assert.Equal(t, "Available at your store", span.Text())
}

func TestFindAvailabilitySpanMissing(t *testing.T) {
	doc := parseHTML(t, `<html><body>
		<div class="x-pdp-availability-online onlineAvailabilityContainer_Z02qk">
			<p>no spans here</p>
		</div>
	</body></html>`)

	container, err := findAvailabilityContainer(doc)
	assert.NoError(t, err)

	_, err = findAvailabilitySpan(container)
	assert.ErrorIs(t, err, ErrSpanNotFound)
}
