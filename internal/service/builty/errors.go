package builty

import "errors"

var (
	ErrMissingConsignor        = errors.New("consignor id is required")
	ErrMissingConsigneeName    = errors.New("consignee name is required")
	ErrInvalidCarrierID        = errors.New("carrier id is required")
	ErrMissingVehicleNumber    = errors.New("vehicle number is required")
	ErrMissingOrigin           = errors.New("origin is required")
	ErrMissingDestination      = errors.New("destination is required")
	ErrMissingCargoDescription = errors.New("cargo description is required")
	ErrInvalidPackageCount     = errors.New("package count must be at least 1")
	ErrNegativeCharge          = errors.New("charges must not be negative")
	ErrNegativeAdvance         = errors.New("advance must not be negative")
	ErrAdvanceExceedsTotal     = errors.New("advance exceeds total amount")
	ErrInvalidAmountPrecision  = errors.New("amounts must have at most 2 decimal places")
	ErrInvalidPaymentMode      = errors.New("invalid payment mode")
	ErrInvalidCoordinates      = errors.New("coordinates out of range")
	ErrInvalidWeight           = errors.New("weight must not be negative")
	ErrInvalidBookingRef       = errors.New("invalid booking reference")
	ErrEmptySignature          = errors.New("signature must not be empty")
	ErrMissingCancelReason     = errors.New("cancellation reason is required")
	ErrInvalidStatus           = errors.New("invalid status")
	ErrInvalidPage             = errors.New("page must be at least 1")
	ErrInvalidLimit            = errors.New("limit must be between 1 and 100")
	ErrUnsupportedPhotoType    = errors.New("unsupported photo content type")
	ErrPhotoTooLarge           = errors.New("photo exceeds size limit")
	ErrEmptyPhoto              = errors.New("photo is empty")
	ErrInvalidDocumentNumber   = errors.New("invalid document number")
	ErrStorageUnavailable      = errors.New("file storage is not configured")
	ErrPDFUnavailable          = errors.New("pdf rendering is not configured")
	ErrBuiltyNotFound          = errors.New("builty not found")
	ErrAccessDenied            = errors.New("access denied")
	ErrInvalidTransition       = errors.New("invalid status transition")
	ErrConflict                = errors.New("builty already exists")
)
