package booking_confirmed

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"builty-service/internal/entities"
	builtyservice "builty-service/internal/service/builty"
	"builty-service/pkg/logger"
	"github.com/IBM/sarama"
)

type Handler struct {
	builtyService            Service
	log                      handlerLogger
	messageProcessingTimeout time.Duration
}

func New(log handlerLogger, builtyService Service, timeout time.Duration) *Handler {
	handlerLog := log.With()

	return &Handler{
		builtyService:            builtyService,
		log:                      handlerLog,
		messageProcessingTimeout: timeout,
	}
}

func (h *Handler) Setup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *Handler) Cleanup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *Handler) ConsumeClaim(sess sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for {
		select {
		case message, ok := <-claim.Messages():
			if !ok {
				h.log.Info("booking.confirmed: claim.Messages() closed, exiting ConsumeClaim")
				return nil
			}

			shouldExit := h.messageProcessing(sess, message)
			if shouldExit {
				return nil
			}

		case <-sess.Context().Done():
			// rebalance или остановка consumer group
			h.log.Info("booking.confirmed: session context done, exiting ConsumeClaim")
			return nil
		}
	}
}

// messageProcessing выпускает builty по подтверждённому бронированию.
// Возвращает true, если нужно прервать ConsumeClaim (сообщение не помечается и будет перечитано).
func (h *Handler) messageProcessing(sess sarama.ConsumerGroupSession, message *sarama.ConsumerMessage) bool {
	ctx, cancel := context.WithTimeout(sess.Context(), h.messageProcessingTimeout)
	defer cancel()

	var event confirmedEvent
	err := json.Unmarshal(message.Value, &event)
	if err != nil || strings.TrimSpace(event.BookingRef) == "" || event.ConsignorID <= 0 {
		h.log.With(
			logger.NewField("error", err),
			logger.NewField("offset", message.Offset),
		).Error("booking.confirmed handler received bad message")
		sess.MarkMessage(message, "")
		return false
	}

	msgLog := h.log.With(
		logger.NewField("booking_ref", event.BookingRef),
		logger.NewField("consignor_id", event.ConsignorID),
		logger.NewField("offset", message.Offset),
	)

	msgLog.Info("booking.confirmed processing")

	create := event.Builty.ToEntity()
	create.BookingRef = &event.BookingRef
	create.CarrierID = event.CarrierID

	actor := entities.Actor{ID: event.ConsignorID, Role: entities.RoleShipper}

	receipt, err := h.builtyService.Create(ctx, actor, create)
	if err != nil {
		switch {
		case errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded):
			msgLog.With(
				logger.NewField("error", err),
			).Warn("booking.confirmed handler context cancelled, message will be reprocessed")
			return true

		case errors.Is(err, builtyservice.ErrConflict):
			msgLog.Info("booking.confirmed: builty already issued for booking")

		case isValidationError(err):
			msgLog.With(
				logger.NewField("error", err),
			).Warn("booking.confirmed handler rejected invalid booking")

		default:
			msgLog.With(
				logger.NewField("error", err),
			).Error("booking.confirmed handler failed to issue builty")
		}
		sess.MarkMessage(message, "")
		return false
	}

	h.log.With(
		logger.NewField("booking_ref", event.BookingRef),
		logger.NewField("builty_id", receipt.ID),
		logger.NewField("document_number", receipt.DocumentNumber),
		logger.NewField("offset", message.Offset),
	).Info("booking.confirmed: processed")

	sess.MarkMessage(message, "")
	return false
}

func isValidationError(err error) bool {
	for _, target := range []error{
		builtyservice.ErrAccessDenied,
		builtyservice.ErrMissingConsignor,
		builtyservice.ErrInvalidPackageCount,
		builtyservice.ErrAdvanceExceedsTotal,
		builtyservice.ErrInvalidPaymentMode,
		builtyservice.ErrMissingConsigneeName,
		builtyservice.ErrInvalidCarrierID,
		builtyservice.ErrMissingVehicleNumber,
		builtyservice.ErrMissingOrigin,
		builtyservice.ErrMissingDestination,
		builtyservice.ErrMissingCargoDescription,
		builtyservice.ErrNegativeCharge,
		builtyservice.ErrNegativeAdvance,
		builtyservice.ErrInvalidAmountPrecision,
		builtyservice.ErrInvalidCoordinates,
		builtyservice.ErrInvalidWeight,
		builtyservice.ErrInvalidBookingRef,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
