package builty

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"builty-service/internal/entities"
	"builty-service/internal/service/fee"
	"builty-service/pkg/logger"
	"github.com/google/uuid"
)

const publishTimeout = 5 * time.Second

type Service struct {
	repository Repository
	fees       FeeCalculator
	numbers    DocumentNumberGenerator
	signer     TokenSigner
	events     EventPublisher
	storage    FileStorage
	pdf        PDFRenderer
	txManager  TxManager
	log        serviceLogger
	now        func() time.Time
}

// New builds the lifecycle service. storage and pdf may be nil when the
// corresponding integration is disabled.
func New(
	repository Repository,
	fees FeeCalculator,
	numbers DocumentNumberGenerator,
	signer TokenSigner,
	events EventPublisher,
	storage FileStorage,
	pdf PDFRenderer,
	txManager TxManager,
	log serviceLogger,
) *Service {
	return &Service{
		repository: repository,
		fees:       fees,
		numbers:    numbers,
		signer:     signer,
		events:     events,
		storage:    storage,
		pdf:        pdf,
		txManager:  txManager,
		log:        log,
		now:        func() time.Time { return time.Now().UTC() },
	}
}

func (s *Service) Create(ctx context.Context, actor entities.Actor, create entities.BuiltyCreate) (*entities.Builty, error) {
	switch actor.Role {
	case entities.RoleShipper:
		create.ConsignorID = actor.ID
	case entities.RoleAdmin:
		// админ создаёт от имени указанного грузоотправителя
	default:
		return nil, ErrAccessDenied
	}

	normalizeCreate(&create)
	if err := validateCreate(create); err != nil {
		return nil, err
	}

	total := fee.ComputeVisibleTotal(create.FreightCharges, create.LoadingCharges, create.UnloadingCharges, create.OtherCharges)
	if create.AdvancePaid.GreaterThan(total) {
		return nil, ErrAdvanceExceedsTotal
	}

	var created *entities.AdminBuilty
	err := s.txManager.DoReadCommitted(ctx, func(ctx context.Context) error {
		number, err := s.numbers.Next(ctx)
		if err != nil {
			return fmt.Errorf("assign document number: %w", err)
		}

		platformFee, err := s.fees.ComputePlatformFee(ctx, create.FreightCharges)
		if err != nil {
			return fmt.Errorf("compute platform fee: %w", err)
		}

		issue := entities.BuiltyIssue{
			BuiltyCreate:      create,
			DocumentNumber:    number,
			PlatformFee:       platformFee,
			TotalAmount:       total,
			BalanceDue:        fee.ComputeBalanceDue(total, create.AdvancePaid),
			VerificationToken: s.signer.Sign(number, create.BookingRef, total),
			Status:            entities.BuiltyIssued,
			CreatedAt:         s.now(),
		}

		created, err = s.repository.Create(ctx, issue)
		if err != nil {
			return fmt.Errorf("insert builty: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("create builty: %w", err)
	}

	receipt := created.Receipt()
	s.log.Info("builty issued",
		logger.NewField("builty_id", receipt.ID),
		logger.NewField("document_number", receipt.DocumentNumber),
		logger.NewField("consignor_id", receipt.ConsignorID),
		logger.NewField("carrier_id", receipt.CarrierID),
	)
	s.publish(ctx, entities.EventBuiltyCreated, receipt)

	return receipt, nil
}

func (s *Service) Dispatch(ctx context.Context, id int64, actor entities.Actor, details entities.DispatchDetails) (*entities.Builty, error) {
	if !isValidSignature(details.DriverSignature) {
		return nil, ErrEmptySignature
	}

	var updated *entities.Builty
	err := s.txManager.DoReadCommitted(ctx, func(ctx context.Context) error {
		current, err := s.repository.GetByIDForUpdate(ctx, id)
		if err != nil {
			return err
		}
		if !isCarrierOrAdmin(actor, current) {
			return ErrAccessDenied
		}
		if current.Status != entities.BuiltyIssued {
			return invalidTransition(current.Status, entities.BuiltyInTransit)
		}

		updated, err = s.repository.MarkDispatched(ctx, id, entities.BuiltyDispatch{
			DispatchDetails: details,
			DispatchedAt:    s.now(),
		})
		return err
	})
	if err != nil {
		return nil, s.transitionError("dispatch builty", id, actor, err)
	}

	s.publish(ctx, entities.EventBuiltyDispatched, updated)
	return updated, nil
}

func (s *Service) Deliver(ctx context.Context, id int64, actor entities.Actor, details entities.DeliveryDetails) (*entities.Builty, error) {
	if !isValidSignature(details.ConsigneeSignature) {
		return nil, ErrEmptySignature
	}
	if details.ActualWeight != nil && details.ActualWeight.IsNegative() {
		return nil, ErrInvalidWeight
	}

	var updated *entities.Builty
	err := s.txManager.DoReadCommitted(ctx, func(ctx context.Context) error {
		current, err := s.repository.GetByIDForUpdate(ctx, id)
		if err != nil {
			return err
		}
		if !isCarrierOrAdmin(actor, current) {
			return ErrAccessDenied
		}
		if current.Status != entities.BuiltyInTransit {
			return invalidTransition(current.Status, entities.BuiltyDelivered)
		}

		updated, err = s.repository.MarkDelivered(ctx, id, entities.BuiltyDelivery{
			DeliveryDetails: details,
			DeliveredAt:     s.now(),
		})
		return err
	})
	if err != nil {
		return nil, s.transitionError("deliver builty", id, actor, err)
	}

	s.publish(ctx, entities.EventBuiltyDelivered, updated)
	return updated, nil
}

// AttachConsignorSignature is allowed to the consignor while the receipt is not terminal.
func (s *Service) AttachConsignorSignature(ctx context.Context, id int64, actor entities.Actor, signature string) (*entities.Builty, error) {
	signature = strings.TrimSpace(signature)
	if signature == "" {
		return nil, ErrEmptySignature
	}

	var updated *entities.Builty
	err := s.txManager.DoReadCommitted(ctx, func(ctx context.Context) error {
		current, err := s.repository.GetByIDForUpdate(ctx, id)
		if err != nil {
			return err
		}
		if actor.Role != entities.RoleShipper || current.ConsignorID != actor.ID {
			return ErrAccessDenied
		}
		if current.Status.IsTerminal() {
			return fmt.Errorf("%w: cannot sign %s builty", ErrInvalidTransition, current.Status)
		}

		updated, err = s.repository.SetConsignorSignature(ctx, id, current.Status, entities.Signature{
			Value:    signature,
			SignedAt: s.now(),
		})
		return err
	})
	if err != nil {
		return nil, s.transitionError("sign builty", id, actor, err)
	}

	s.publish(ctx, entities.EventBuiltyConsignorSigned, updated)
	return updated, nil
}

func (s *Service) Cancel(ctx context.Context, id int64, actor entities.Actor, reason string) (*entities.Builty, error) {
	reason = strings.TrimSpace(reason)
	if reason == "" || len([]rune(reason)) > maxReasonLength {
		return nil, ErrMissingCancelReason
	}

	var updated *entities.Builty
	err := s.txManager.DoReadCommitted(ctx, func(ctx context.Context) error {
		current, err := s.repository.GetByIDForUpdate(ctx, id)
		if err != nil {
			return err
		}
		isConsignor := actor.Role == entities.RoleShipper && current.ConsignorID == actor.ID
		if !isConsignor && !actor.IsAdmin() {
			return ErrAccessDenied
		}
		if current.Status.IsTerminal() {
			return invalidTransition(current.Status, entities.BuiltyCancelled)
		}

		updated, err = s.repository.MarkCancelled(ctx, id, current.Status, reason, s.now())
		return err
	})
	if err != nil {
		return nil, s.transitionError("cancel builty", id, actor, err)
	}

	s.publish(ctx, entities.EventBuiltyCancelled, updated)
	return updated, nil
}

// GetForRole returns *entities.AdminBuilty for admins and *entities.Builty for
// the consignor or carrier of the receipt.
func (s *Service) GetForRole(ctx context.Context, id int64, actor entities.Actor) (entities.BuiltyProjection, error) {
	if actor.IsAdmin() {
		admin, err := s.repository.GetAdminByID(ctx, id)
		if err != nil {
			return nil, fmt.Errorf("get builty: %w", err)
		}
		return admin, nil
	}

	receipt, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get builty: %w", err)
	}
	if !receipt.IsParty(actor) {
		return nil, ErrAccessDenied
	}
	return receipt, nil
}

func (s *Service) GetPrintView(ctx context.Context, documentNumber string) (*entities.Builty, error) {
	if !isValidDocumentNumber(documentNumber) {
		return nil, ErrInvalidDocumentNumber
	}

	receipt, err := s.repository.GetByDocumentNumber(ctx, documentNumber)
	if err != nil {
		return nil, fmt.Errorf("get print view: %w", err)
	}
	return receipt, nil
}

func (s *Service) RenderPrintPDF(ctx context.Context, documentNumber string) ([]byte, error) {
	if s.pdf == nil {
		return nil, ErrPDFUnavailable
	}

	receipt, err := s.GetPrintView(ctx, documentNumber)
	if err != nil {
		return nil, err
	}

	data, err := s.pdf.RenderBuilty(ctx, receipt)
	if err != nil {
		return nil, fmt.Errorf("render pdf: %w", err)
	}
	return data, nil
}

// Verify never reveals anything but {valid:false} for unknown numbers or
// tokens that don't match.
func (s *Service) Verify(ctx context.Context, documentNumber string, token *string) (*entities.Verification, error) {
	if !isValidDocumentNumber(documentNumber) {
		return &entities.Verification{Valid: false}, nil
	}

	receipt, err := s.repository.GetByDocumentNumber(ctx, documentNumber)
	if err != nil {
		if errors.Is(err, ErrBuiltyNotFound) {
			return &entities.Verification{Valid: false}, nil
		}
		return nil, fmt.Errorf("verify builty: %w", err)
	}

	expected := receipt.VerificationToken
	if token != nil {
		expected = *token
	}
	if !s.signer.Verify(receipt.DocumentNumber, receipt.BookingRef, receipt.TotalAmount, expected) {
		s.log.Warn("builty verification failed",
			logger.NewField("document_number", documentNumber),
			logger.NewField("token_supplied", token != nil),
		)
		return &entities.Verification{Valid: false}, nil
	}

	return &entities.Verification{
		Valid:          true,
		DocumentNumber: receipt.DocumentNumber,
		Status:         receipt.Status,
		Origin:         receipt.Origin.Address,
		Destination:    receipt.Destination.Address,
		TotalAmount:    receipt.TotalAmount,
		IssuedAt:       receipt.CreatedAt,
	}, nil
}

func (s *Service) ListForConsignor(ctx context.Context, actor entities.Actor, filter entities.ListFilter) (*entities.BuiltyPage, error) {
	if actor.Role != entities.RoleShipper {
		return nil, ErrAccessDenied
	}

	query, page, limit, err := normalizeListFilter(filter)
	if err != nil {
		return nil, err
	}
	query.ConsignorID = &actor.ID

	return s.list(ctx, query, page, limit)
}

func (s *Service) ListForCarrier(ctx context.Context, actor entities.Actor, filter entities.ListFilter) (*entities.BuiltyPage, error) {
	if actor.Role != entities.RoleCarrier {
		return nil, ErrAccessDenied
	}

	query, page, limit, err := normalizeListFilter(filter)
	if err != nil {
		return nil, err
	}
	query.CarrierID = &actor.ID

	return s.list(ctx, query, page, limit)
}

func (s *Service) list(ctx context.Context, query entities.BuiltyListQuery, page, limit int) (*entities.BuiltyPage, error) {
	items, total, err := s.repository.List(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list builties: %w", err)
	}

	return &entities.BuiltyPage{
		Items: items,
		Total: total,
		Page:  page,
		Limit: limit,
	}, nil
}

func (s *Service) GetStats(ctx context.Context, actor entities.Actor) (*entities.BuiltyStats, error) {
	if !actor.IsAdmin() {
		return nil, ErrAccessDenied
	}

	stats, err := s.repository.Stats(ctx)
	if err != nil {
		return nil, fmt.Errorf("builty stats: %w", err)
	}
	return stats, nil
}

func (s *Service) CountByStatus(ctx context.Context) (map[entities.BuiltyStatus]int64, error) {
	counts, err := s.repository.CountByStatus(ctx)
	if err != nil {
		return nil, fmt.Errorf("count builties by status: %w", err)
	}
	return counts, nil
}

// UploadPhoto stores a condition photo under builties/<id>/<uuid><ext> and returns its URL.
func (s *Service) UploadPhoto(ctx context.Context, id int64, actor entities.Actor, upload entities.FileUpload) (string, error) {
	if s.storage == nil {
		return "", ErrStorageUnavailable
	}

	ext, ok := photoExtensions[strings.ToLower(strings.TrimSpace(upload.ContentType))]
	if !ok {
		return "", ErrUnsupportedPhotoType
	}
	if upload.Size <= 0 || upload.Body == nil {
		return "", ErrEmptyPhoto
	}
	if upload.Size > MaxPhotoSize {
		return "", ErrPhotoTooLarge
	}

	receipt, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return "", fmt.Errorf("upload photo: %w", err)
	}
	if !actor.IsAdmin() && !receipt.IsParty(actor) {
		return "", ErrAccessDenied
	}

	key := fmt.Sprintf("builties/%d/%s%s", id, uuid.NewString(), ext)
	url, err := s.storage.Upload(ctx, key, upload.ContentType, upload.Size, upload.Body)
	if err != nil {
		return "", fmt.Errorf("upload photo: %w", err)
	}

	s.log.Info("builty photo uploaded",
		logger.NewField("builty_id", id),
		logger.NewField("key", key),
	)
	return url, nil
}

func (s *Service) publish(ctx context.Context, eventType entities.BuiltyEventType, receipt *entities.Builty) {
	if s.events == nil || receipt == nil {
		return
	}

	// транзакция уже закоммичена, отмена запроса не должна терять событие
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), publishTimeout)
	defer cancel()

	event := entities.NewBuiltyEvent(eventType, receipt, s.now())
	if err := s.events.Publish(ctx, event); err != nil {
		s.log.Error("failed to publish builty event",
			logger.NewField("event", string(eventType)),
			logger.NewField("builty_id", receipt.ID),
			logger.NewField("document_number", receipt.DocumentNumber),
			logger.NewField("error", err),
		)
	}
}

func (s *Service) transitionError(op string, id int64, actor entities.Actor, err error) error {
	if errors.Is(err, ErrInvalidTransition) {
		s.log.Warn("invalid builty transition",
			logger.NewField("operation", op),
			logger.NewField("builty_id", id),
			logger.NewField("actor_id", actor.ID),
			logger.NewField("role", actor.Role.String()),
			logger.NewField("error", err),
		)
	}
	return fmt.Errorf("%s: %w", op, err)
}

func invalidTransition(from, to entities.BuiltyStatus) error {
	return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, from, to)
}

func isCarrierOrAdmin(actor entities.Actor, receipt *entities.Builty) bool {
	if actor.IsAdmin() {
		return true
	}
	return actor.Role == entities.RoleCarrier && receipt.CarrierID == actor.ID
}
