package builty

import (
	"regexp"
	"strings"

	"builty-service/internal/entities"
	"github.com/shopspring/decimal"
)

const (
	defaultListLimit = 20
	maxListLimit     = 100
	maxSearchLength  = 100
	maxReasonLength  = 500

	MaxPhotoSize = 10 << 20
)

var (
	bookingRefPattern     = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9_-]{0,63}$`)
	documentNumberPattern = regexp.MustCompile(`^BLT-\d{4}-\d{5,}$`)

	photoExtensions = map[string]string{
		"image/jpeg": ".jpg",
		"image/png":  ".png",
		"image/webp": ".webp",
	}
)

func normalizeCreate(c *entities.BuiltyCreate) {
	c.ConsigneeName = strings.TrimSpace(c.ConsigneeName)
	c.ConsigneePhone = strings.TrimSpace(c.ConsigneePhone)
	c.ConsigneeAddress = strings.TrimSpace(c.ConsigneeAddress)
	c.VehicleNumber = strings.ToUpper(strings.TrimSpace(c.VehicleNumber))
	c.VehicleType = strings.TrimSpace(c.VehicleType)
	c.Origin.Address = strings.TrimSpace(c.Origin.Address)
	c.Destination.Address = strings.TrimSpace(c.Destination.Address)
	c.CargoDescription = strings.TrimSpace(c.CargoDescription)
	c.PackagingType = strings.TrimSpace(c.PackagingType)
	if c.BookingRef != nil {
		ref := strings.TrimSpace(*c.BookingRef)
		c.BookingRef = &ref
	}
	if c.PaymentMode == "" {
		c.PaymentMode = entities.PaymentToPay
	}
}

func validateCreate(c entities.BuiltyCreate) error {
	if c.ConsignorID <= 0 {
		return ErrMissingConsignor
	}
	if c.BookingRef != nil && !bookingRefPattern.MatchString(*c.BookingRef) {
		return ErrInvalidBookingRef
	}
	if c.ConsigneeName == "" {
		return ErrMissingConsigneeName
	}
	if c.CarrierID <= 0 {
		return ErrInvalidCarrierID
	}
	if c.VehicleNumber == "" {
		return ErrMissingVehicleNumber
	}
	if c.Origin.Address == "" {
		return ErrMissingOrigin
	}
	if c.Destination.Address == "" {
		return ErrMissingDestination
	}
	if !isValidLocation(c.Origin) || !isValidLocation(c.Destination) {
		return ErrInvalidCoordinates
	}
	if c.CargoDescription == "" {
		return ErrMissingCargoDescription
	}
	if c.PackageCount < 1 {
		return ErrInvalidPackageCount
	}
	if (c.DeclaredWeight != nil && c.DeclaredWeight.IsNegative()) ||
		(c.DeclaredValue != nil && c.DeclaredValue.IsNegative()) {
		return ErrInvalidWeight
	}
	if c.FreightCharges.IsNegative() ||
		c.LoadingCharges.IsNegative() ||
		c.UnloadingCharges.IsNegative() ||
		c.OtherCharges.IsNegative() {
		return ErrNegativeCharge
	}
	if c.AdvancePaid.IsNegative() {
		return ErrNegativeAdvance
	}
	// суммы хранятся в NUMERIC(14,2), итог считается до записи
	for _, amount := range []decimal.Decimal{
		c.FreightCharges,
		c.LoadingCharges,
		c.UnloadingCharges,
		c.OtherCharges,
		c.AdvancePaid,
	} {
		if !amount.Equal(amount.Round(2)) {
			return ErrInvalidAmountPrecision
		}
	}
	if !c.PaymentMode.IsValid() {
		return ErrInvalidPaymentMode
	}
	return nil
}

func isValidLocation(l entities.Location) bool {
	if l.Lat != nil && (*l.Lat < -90 || *l.Lat > 90) {
		return false
	}
	if l.Lng != nil && (*l.Lng < -180 || *l.Lng > 180) {
		return false
	}
	return true
}

func isValidSignature(signature *string) bool {
	return signature == nil || strings.TrimSpace(*signature) != ""
}

func isValidDocumentNumber(documentNumber string) bool {
	return documentNumberPattern.MatchString(documentNumber)
}

// normalizeListFilter applies defaults (page 1, limit 20) and turns the filter
// into a repository query.
func normalizeListFilter(filter entities.ListFilter) (entities.BuiltyListQuery, int, int, error) {
	page, limit := filter.Page, filter.Limit
	if page == 0 {
		page = 1
	}
	if limit == 0 {
		limit = defaultListLimit
	}
	if page < 1 {
		return entities.BuiltyListQuery{}, 0, 0, ErrInvalidPage
	}
	if limit < 1 || limit > maxListLimit {
		return entities.BuiltyListQuery{}, 0, 0, ErrInvalidLimit
	}
	if filter.Status != nil && !filter.Status.IsValid() {
		return entities.BuiltyListQuery{}, 0, 0, ErrInvalidStatus
	}

	search := strings.TrimSpace(filter.Search)
	if runes := []rune(search); len(runes) > maxSearchLength {
		search = string(runes[:maxSearchLength])
	}

	return entities.BuiltyListQuery{
		Status: filter.Status,
		Search: search,
		Limit:  limit,
		Offset: (page - 1) * limit,
	}, page, limit, nil
}
