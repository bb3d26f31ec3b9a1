// Package domain defines a lead captured through a realtor's public form.
package domain

import (
	"time"

	"github.com/google/uuid"

	"github.com/allisson/leadlink/internal/errors"
	"github.com/allisson/leadlink/internal/validation"
)

// SourcePublicForm marks leads submitted through a share link.
const SourcePublicForm = "public_form"

// PropertyType is the kind of property a prospect wants valued.
type PropertyType string

const (
	PropertyTypeSingleFamily PropertyType = "single-family"
	PropertyTypeCondo        PropertyType = "condo"
	PropertyTypeTownhouse    PropertyType = "townhouse"
	PropertyTypeMultiFamily  PropertyType = "multi-family"
	PropertyTypeLand         PropertyType = "land"
	PropertyTypeCommercial   PropertyType = "commercial"
	PropertyTypeOther        PropertyType = "other"
)

// PropertyTypes lists the accepted property types in form order.
var PropertyTypes = []PropertyType{
	PropertyTypeSingleFamily,
	PropertyTypeCondo,
	PropertyTypeTownhouse,
	PropertyTypeMultiFamily,
	PropertyTypeLand,
	PropertyTypeCommercial,
	PropertyTypeOther,
}

// SellingTimeline is when the prospect plans to sell.
type SellingTimeline string

const (
	SellingTimelineImmediately   SellingTimeline = "immediately"
	SellingTimeline1To3Months    SellingTimeline = "1-3-months"
	SellingTimeline3To6Months    SellingTimeline = "3-6-months"
	SellingTimeline6To12Months   SellingTimeline = "6-12-months"
	SellingTimeline12PlusMonths  SellingTimeline = "12-plus-months"
	SellingTimelineJustExploring SellingTimeline = "just-exploring"
)

// SellingTimelines lists the accepted timelines in form order.
var SellingTimelines = []SellingTimeline{
	SellingTimelineImmediately,
	SellingTimeline1To3Months,
	SellingTimeline3To6Months,
	SellingTimeline6To12Months,
	SellingTimeline12PlusMonths,
	SellingTimelineJustExploring,
}

// Lead is a prospect's submission, bound to the realtor its token names.
type Lead struct {
	ID              uuid.UUID
	RealtorID       string
	Token           string
	FullName        string
	Email           string
	Phone           string
	PropertyAddress string
	City            string
	PropertyType    PropertyType
	SellingTimeline SellingTimeline
	EstimatedValue  string
	Notes           string
	Source          string
	// IsDuplicate is set when the realtor already has a lead with the same email.
	IsDuplicate bool
	SubmittedAt time.Time
}

// FormatPhone renders the first ten digits of raw as (555) 123-4567. Shorter input is
// formatted as far as it goes.
func FormatPhone(raw string) string {
	digits := validation.Digits(raw)

	switch {
	case len(digits) < 4:
		return digits
	case len(digits) < 7:
		return "(" + digits[:3] + ") " + digits[3:]
	case len(digits) > 10:
		digits = digits[:10]
	}
	return "(" + digits[:3] + ") " + digits[3:6] + "-" + digits[6:]
}

var (
	// ErrPreviewSubmission indicates a submission made from a preview link.
	ErrPreviewSubmission = errors.Wrap(errors.ErrInvalidInput, "preview links cannot submit leads")
)
