package checker

import (
	"errors"
	"fmt"

	"github.com/PuerkitoBio/goquery"
)

// availabilityClassList identifies the div holding the online availability
// status on a BestBuy product page. The class attribute must match exactly,
// hashed container class included.
const availabilityClassList = "x-pdp-availability-online onlineAvailabilityContainer_Z02qk"

var (
	// ErrContainerNotFound is returned when no div carries the
	// availability class list.
	ErrContainerNotFound = errors.New("availability container not found")

	// ErrSpanNotFound is returned when the availability container holds
	// no span elements.
	ErrSpanNotFound = errors.New("no spans found in availability container")
)

// findAvailabilityContainer finds the div that should contain the
// availability span. The first match wins if several exist.
func findAvailabilityContainer(doc *goquery.Document) (*goquery.Selection, error) {
	divs := doc.Find(fmt.Sprintf("div[class=%q]", availabilityClassList))
	if divs.Length() == 0 {
		return nil, ErrContainerNotFound
	}
	return divs.First(), nil
}

// findAvailabilitySpan selects the last span inside the container. The
// status text is assumed to be the final span emitted in that markup, which
// is an assumption about the site rather than a guarantee.
func findAvailabilitySpan(container *goquery.Selection) (*goquery.Selection, error) {
	spans := container.Find("span")
	if spans.Length() == 0 {
		return nil, ErrSpanNotFound
	}
	return spans.Last(), nil
}
