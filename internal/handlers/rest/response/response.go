package response

import (
	"encoding/json"
	"errors"
	"net/http"

	"builty-service/internal/dto"
	"builty-service/internal/service/builty"
	"builty-service/internal/service/configuration"
	"builty-service/internal/service/pricing"
	"builty-service/pkg/logger"
)

const (
	CodeValidation        = "VALIDATION_ERROR"
	CodeNotFound          = "NOT_FOUND"
	CodeAccessDenied      = "ACCESS_DENIED"
	CodeInvalidTransition = "INVALID_TRANSITION"
	CodeConflict          = "CONFLICT"
	CodeUnauthorized      = "UNAUTHORIZED"
	CodeUnavailable       = "UNAVAILABLE"
	CodeInternal          = "INTERNAL"
)

type errorLogger interface {
	Error(msg string, fields ...logger.Field)
}

type mapping struct {
	target error
	status int
	code   string
}

// Порядок важен: первое совпадение по errors.Is выигрывает.
var mappings = []mapping{
	{builty.ErrInvalidPackageCount, http.StatusBadRequest, "INVALID_PACKAGE_COUNT"},
	{builty.ErrAdvanceExceedsTotal, http.StatusBadRequest, "ADVANCE_EXCEEDS_TOTAL"},
	{builty.ErrInvalidPaymentMode, http.StatusBadRequest, "INVALID_PAYMENT_MODE"},
	{builty.ErrPhotoTooLarge, http.StatusRequestEntityTooLarge, "PHOTO_TOO_LARGE"},
	{builty.ErrUnsupportedPhotoType, http.StatusUnsupportedMediaType, "UNSUPPORTED_PHOTO_TYPE"},
	{builty.ErrMissingConsignor, http.StatusBadRequest, CodeValidation},
	{builty.ErrMissingConsigneeName, http.StatusBadRequest, CodeValidation},
	{builty.ErrInvalidCarrierID, http.StatusBadRequest, CodeValidation},
	{builty.ErrMissingVehicleNumber, http.StatusBadRequest, CodeValidation},
	{builty.ErrMissingOrigin, http.StatusBadRequest, CodeValidation},
	{builty.ErrMissingDestination, http.StatusBadRequest, CodeValidation},
	{builty.ErrMissingCargoDescription, http.StatusBadRequest, CodeValidation},
	{builty.ErrNegativeCharge, http.StatusBadRequest, CodeValidation},
	{builty.ErrNegativeAdvance, http.StatusBadRequest, CodeValidation},
	{builty.ErrInvalidAmountPrecision, http.StatusBadRequest, CodeValidation},
	{builty.ErrInvalidCoordinates, http.StatusBadRequest, CodeValidation},
	{builty.ErrInvalidWeight, http.StatusBadRequest, CodeValidation},
	{builty.ErrInvalidBookingRef, http.StatusBadRequest, CodeValidation},
	{builty.ErrEmptySignature, http.StatusBadRequest, CodeValidation},
	{builty.ErrMissingCancelReason, http.StatusBadRequest, CodeValidation},
	{builty.ErrInvalidStatus, http.StatusBadRequest, CodeValidation},
	{builty.ErrInvalidPage, http.StatusBadRequest, CodeValidation},
	{builty.ErrInvalidLimit, http.StatusBadRequest, CodeValidation},
	{builty.ErrEmptyPhoto, http.StatusBadRequest, CodeValidation},
	{builty.ErrInvalidDocumentNumber, http.StatusBadRequest, CodeValidation},
	{builty.ErrBuiltyNotFound, http.StatusNotFound, CodeNotFound},
	{builty.ErrAccessDenied, http.StatusForbidden, CodeAccessDenied},
	{builty.ErrInvalidTransition, http.StatusConflict, CodeInvalidTransition},
	{builty.ErrConflict, http.StatusConflict, CodeConflict},
	{builty.ErrStorageUnavailable, http.StatusServiceUnavailable, CodeUnavailable},
	{builty.ErrPDFUnavailable, http.StatusServiceUnavailable, CodeUnavailable},

	{configuration.ErrInvalidConfigKey, http.StatusBadRequest, CodeValidation},
	{configuration.ErrInvalidConfigDataType, http.StatusBadRequest, CodeValidation},
	{configuration.ErrInvalidConfigValue, http.StatusBadRequest, "INVALID_CONFIG_VALUE"},
	{configuration.ErrConfigNotFound, http.StatusNotFound, CodeNotFound},
	{configuration.ErrConfigArchived, http.StatusConflict, CodeInvalidTransition},
	{configuration.ErrConcurrentModification, http.StatusConflict, CodeConflict},

	{pricing.ErrInvalidRuleName, http.StatusBadRequest, CodeValidation},
	{pricing.ErrInvalidRuleType, http.StatusBadRequest, CodeValidation},
	{pricing.ErrInvalidMultiplier, http.StatusBadRequest, CodeValidation},
	{pricing.ErrInvalidValueRange, http.StatusBadRequest, CodeValidation},
	{pricing.ErrInvalidValidityWindow, http.StatusBadRequest, CodeValidation},
	{pricing.ErrInvalidStatus, http.StatusBadRequest, CodeValidation},
	{pricing.ErrInvalidRouteID, http.StatusBadRequest, CodeValidation},
	{pricing.ErrInvalidBasePrice, http.StatusBadRequest, CodeValidation},
	{pricing.ErrInvalidSurgeMultiplier, http.StatusBadRequest, CodeValidation},
	{pricing.ErrPricingRuleNotFound, http.StatusNotFound, CodeNotFound},
	{pricing.ErrRoutePricingNotFound, http.StatusNotFound, CodeNotFound},
	{pricing.ErrRoutePricingOverlap, http.StatusConflict, "ROUTE_PRICING_OVERLAP"},
	{pricing.ErrConcurrentModification, http.StatusConflict, CodeConflict},
}

// StatusAndCode maps a service error to the HTTP status and the stable error code.
func StatusAndCode(err error) (int, string) {
	for _, m := range mappings {
		if errors.Is(err, m.target) {
			return m.status, m.code
		}
	}
	return http.StatusInternalServerError, CodeInternal
}

func JSON(w http.ResponseWriter, log errorLogger, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	err := json.NewEncoder(w).Encode(body)
	if err != nil {
		log.Error("encode JSON response", logger.NewField("error", err))
	}
}

// Error writes the mapped error body. Internal errors are logged and never exposed.
func Error(w http.ResponseWriter, log errorLogger, err error) {
	status, code := StatusAndCode(err)
	message := err.Error()
	if status == http.StatusInternalServerError {
		log.Error("request failed", logger.NewField("error", err))
		message = "internal error"
	}
	JSON(w, log, status, dto.ErrorResponse{Code: code, Message: message})
}

func BadRequest(w http.ResponseWriter, log errorLogger, message string) {
	JSON(w, log, http.StatusBadRequest, dto.ErrorResponse{Code: CodeValidation, Message: message})
}

func Unauthorized(w http.ResponseWriter, log errorLogger, message string) {
	JSON(w, log, http.StatusUnauthorized, dto.ErrorResponse{Code: CodeUnauthorized, Message: message})
}

func Forbidden(w http.ResponseWriter, log errorLogger, message string) {
	JSON(w, log, http.StatusForbidden, dto.ErrorResponse{Code: CodeAccessDenied, Message: message})
}
