package builty

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"builty-service/internal/entities"
	"builty-service/internal/repository"
	"builty-service/internal/service/builty"
	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, issue entities.BuiltyIssue) (*entities.AdminBuilty, error) {
	query, args, err := qb.
		Insert("builties").
		Columns(
			"document_number", "booking_ref",
			"consignor_id", "consignee_id", "consignee_name", "consignee_phone", "consignee_address",
			"carrier_id", "driver_id", "vehicle_id", "vehicle_number", "vehicle_type",
			"origin_address", "origin_lat", "origin_lng",
			"destination_address", "destination_lat", "destination_lng",
			"cargo_description", "package_count", "packaging_type", "declared_weight", "declared_value",
			"freight_charges", "loading_charges", "unloading_charges", "other_charges",
			"platform_fee", "total_amount", "payment_mode", "advance_paid", "balance_due",
			"status", "verification_token", "expected_delivery_at", "created_at", "updated_at",
		).
		Values(
			issue.DocumentNumber, issue.BookingRef,
			issue.ConsignorID, issue.ConsigneeID, issue.ConsigneeName, issue.ConsigneePhone, issue.ConsigneeAddress,
			issue.CarrierID, issue.DriverID, issue.VehicleID, issue.VehicleNumber, issue.VehicleType,
			issue.Origin.Address, issue.Origin.Lat, issue.Origin.Lng,
			issue.Destination.Address, issue.Destination.Lat, issue.Destination.Lng,
			issue.CargoDescription, issue.PackageCount, issue.PackagingType,
			toNullDecimal(issue.DeclaredWeight), toNullDecimal(issue.DeclaredValue),
			issue.FreightCharges, issue.LoadingCharges, issue.UnloadingCharges, issue.OtherCharges,
			issue.PlatformFee, issue.TotalAmount, issue.PaymentMode.String(), issue.AdvancePaid, issue.BalanceDue,
			issue.Status.String(), issue.VerificationToken, issue.ExpectedDeliveryAt, issue.CreatedAt, issue.CreatedAt,
		).
		Suffix("RETURNING " + adminBuiltyColumns).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected builty repository create error: %w", err)
	}

	var builtyDB AdminBuiltyDB
	err = r.querier.QueryRow(ctx, query, args...).Scan(builtyDB.scanTargets()...)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return nil, builty.ErrConflict
		}
		return nil, fmt.Errorf("unexpected builty repository create error: %w", err)
	}

	return AdminToDomain(&builtyDB), nil
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*entities.Builty, error) {
	return r.getOne(ctx, "getbyid", `SELECT `+builtyColumns+` FROM builties WHERE id = $1`, id)
}

// GetByIDForUpdate locks the row until the surrounding transaction ends.
func (r *Repository) GetByIDForUpdate(ctx context.Context, id int64) (*entities.Builty, error) {
	return r.getOne(ctx, "getbyidforupdate", `SELECT `+builtyColumns+` FROM builties WHERE id = $1 FOR UPDATE`, id)
}

func (r *Repository) GetByDocumentNumber(ctx context.Context, documentNumber string) (*entities.Builty, error) {
	return r.getOne(ctx, "getbydocumentnumber", `SELECT `+builtyColumns+` FROM builties WHERE document_number = $1`, documentNumber)
}

func (r *Repository) GetAdminByID(ctx context.Context, id int64) (*entities.AdminBuilty, error) {
	query := `SELECT ` + adminBuiltyColumns + `
		FROM builties
		WHERE id = $1`

	var builtyDB AdminBuiltyDB
	err := r.querier.QueryRow(ctx, query, id).Scan(builtyDB.scanTargets()...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, builty.ErrBuiltyNotFound
		}
		return nil, fmt.Errorf("unexpected builty repository getadminbyid error: %w", err)
	}

	return AdminToDomain(&builtyDB), nil
}

func (r *Repository) getOne(ctx context.Context, op string, query string, arg any) (*entities.Builty, error) {
	var builtyDB BuiltyDB
	err := r.querier.QueryRow(ctx, query, arg).Scan(builtyDB.scanTargets()...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, builty.ErrBuiltyNotFound
		}
		return nil, fmt.Errorf("unexpected builty repository %s error: %w", op, err)
	}

	return ToDomain(&builtyDB), nil
}

func (r *Repository) List(ctx context.Context, listQuery entities.BuiltyListQuery) ([]entities.Builty, int64, error) {
	where := sq.And{}
	if listQuery.ConsignorID != nil {
		where = append(where, sq.Eq{"consignor_id": *listQuery.ConsignorID})
	}
	if listQuery.CarrierID != nil {
		where = append(where, sq.Eq{"carrier_id": *listQuery.CarrierID})
	}
	if listQuery.Status != nil {
		where = append(where, sq.Eq{"status": listQuery.Status.String()})
	}
	if listQuery.Search != "" {
		pattern := "%" + likeEscaper.Replace(listQuery.Search) + "%"
		where = append(where, sq.Or{
			sq.ILike{"document_number": pattern},
			sq.ILike{"consignee_name": pattern},
			sq.ILike{"origin_address": pattern},
			sq.ILike{"destination_address": pattern},
		})
	}

	countQuery, countArgs, err := qb.Select("COUNT(*)").From("builties").Where(where).ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("unexpected builty repository list error: %w", err)
	}

	var total int64
	if err := r.querier.QueryRow(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("unexpected builty repository list count error: %w", err)
	}
	if total == 0 {
		return []entities.Builty{}, 0, nil
	}

	query, args, err := qb.
		Select(builtyColumns).
		From("builties").
		Where(where).
		OrderBy("created_at DESC", "id DESC").
		Limit(uint64(listQuery.Limit)).
		Offset(uint64(listQuery.Offset)).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("unexpected builty repository list error: %w", err)
	}

	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("unexpected builty repository list error: %w", err)
	}
	defer rows.Close()

	builtiesDB := make([]BuiltyDB, 0, listQuery.Limit)
	for rows.Next() {
		var builtyDB BuiltyDB
		if err := rows.Scan(builtyDB.scanTargets()...); err != nil {
			return nil, 0, fmt.Errorf("unexpected builty repository list error: %w", err)
		}
		builtiesDB = append(builtiesDB, builtyDB)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("unexpected builty repository list error: %w", err)
	}

	return ToDomainList(builtiesDB), total, nil
}

func (r *Repository) MarkDispatched(ctx context.Context, id int64, dispatch entities.BuiltyDispatch) (*entities.Builty, error) {
	builder := qb.
		Update("builties").
		Set("status", entities.BuiltyInTransit.String()).
		Set("dispatched_at", dispatch.DispatchedAt).
		Set("updated_at", dispatch.DispatchedAt)

	// опциональные поля
	if dispatch.DriverID != nil {
		builder = builder.Set("driver_id", *dispatch.DriverID)
	}
	if dispatch.DriverSignature != nil {
		builder = builder.
			Set("driver_signature", strings.TrimSpace(*dispatch.DriverSignature)).
			Set("driver_signed_at", dispatch.DispatchedAt)
	}
	if dispatch.PickupCondition != nil {
		builder = builder.Set("pickup_condition", *dispatch.PickupCondition)
	}
	if len(dispatch.PickupPhotos) > 0 {
		builder = builder.Set("pickup_photos", dispatch.PickupPhotos)
	}

	return r.updateFrom(ctx, "markdispatched", builder, id, entities.BuiltyIssued)
}

func (r *Repository) MarkDelivered(ctx context.Context, id int64, delivery entities.BuiltyDelivery) (*entities.Builty, error) {
	builder := qb.
		Update("builties").
		Set("status", entities.BuiltyDelivered.String()).
		Set("delivered_at", delivery.DeliveredAt).
		Set("updated_at", delivery.DeliveredAt)

	if delivery.Condition != nil {
		builder = builder.Set("delivery_condition", *delivery.Condition)
	}
	if len(delivery.Photos) > 0 {
		builder = builder.Set("delivery_photos", delivery.Photos)
	}
	if delivery.ActualWeight != nil {
		builder = builder.Set("actual_weight", *delivery.ActualWeight)
	}
	if delivery.ConsigneeSignature != nil {
		builder = builder.
			Set("consignee_signature", strings.TrimSpace(*delivery.ConsigneeSignature)).
			Set("consignee_signed_at", delivery.DeliveredAt)
	}

	return r.updateFrom(ctx, "markdelivered", builder, id, entities.BuiltyInTransit)
}

func (r *Repository) MarkCancelled(
	ctx context.Context,
	id int64,
	expected entities.BuiltyStatus,
	reason string,
	at time.Time,
) (*entities.Builty, error) {
	builder := qb.
		Update("builties").
		Set("status", entities.BuiltyCancelled.String()).
		Set("cancellation_reason", reason).
		Set("cancelled_at", at).
		Set("updated_at", at)

	return r.updateFrom(ctx, "markcancelled", builder, id, expected)
}

func (r *Repository) SetConsignorSignature(
	ctx context.Context,
	id int64,
	expected entities.BuiltyStatus,
	signature entities.Signature,
) (*entities.Builty, error) {
	builder := qb.
		Update("builties").
		Set("consignor_signature", signature.Value).
		Set("consignor_signed_at", signature.SignedAt).
		Set("updated_at", signature.SignedAt)

	return r.updateFrom(ctx, "setconsignorsignature", builder, id, expected)
}

// updateFrom applies builder only while the row is still in the expected
// status. Zero affected rows means somebody moved the receipt first.
func (r *Repository) updateFrom(
	ctx context.Context,
	op string,
	builder sq.UpdateBuilder,
	id int64,
	expected entities.BuiltyStatus,
) (*entities.Builty, error) {
	query, args, err := builder.
		Where(sq.Eq{"id": id, "status": expected.String()}).
		Suffix("RETURNING " + builtyColumns).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected builty repository %s error: %w", op, err)
	}

	var builtyDB BuiltyDB
	err = r.querier.QueryRow(ctx, query, args...).Scan(builtyDB.scanTargets()...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: builty %d is no longer %s", builty.ErrInvalidTransition, id, expected)
		}
		return nil, fmt.Errorf("unexpected builty repository %s error: %w", op, err)
	}

	return ToDomain(&builtyDB), nil
}

// Stats sums money over receipts that are not cancelled, counts cover every status.
func (r *Repository) Stats(ctx context.Context) (*entities.BuiltyStats, error) {
	query := `SELECT
			COUNT(*),
			COALESCE(SUM(freight_charges) FILTER (WHERE status <> 'cancelled'), 0),
			COALESCE(SUM(platform_fee) FILTER (WHERE status <> 'cancelled'), 0),
			COALESCE(SUM(total_amount) FILTER (WHERE status <> 'cancelled'), 0)
		FROM builties`

	var statsDB StatsDB
	err := r.querier.QueryRow(ctx, query).Scan(
		&statsDB.TotalBuilties,
		&statsDB.TotalFreight,
		&statsDB.TotalPlatformFee,
		&statsDB.TotalAmount,
	)
	if err != nil {
		return nil, fmt.Errorf("unexpected builty repository stats error: %w", err)
	}

	counts, err := r.CountByStatus(ctx)
	if err != nil {
		return nil, err
	}

	return &entities.BuiltyStats{
		TotalBuilties:    statsDB.TotalBuilties,
		TotalFreight:     statsDB.TotalFreight,
		TotalPlatformFee: statsDB.TotalPlatformFee,
		TotalAmount:      statsDB.TotalAmount,
		CountByStatus:    counts,
	}, nil
}

func (r *Repository) CountByStatus(ctx context.Context) (map[entities.BuiltyStatus]int64, error) {
	query := `SELECT status, COUNT(*) FROM builties GROUP BY status`

	rows, err := r.querier.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("unexpected builty repository countbystatus error: %w", err)
	}
	defer rows.Close()

	counts := make(map[entities.BuiltyStatus]int64, len(entities.BuiltyStatuses))
	for _, status := range entities.BuiltyStatuses {
		counts[status] = 0
	}

	for rows.Next() {
		var (
			status string
			count  int64
		)
		if err := rows.Scan(&status, &count); err != nil {
			return nil, fmt.Errorf("unexpected builty repository countbystatus error: %w", err)
		}
		counts[entities.BuiltyStatus(status)] = count
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected builty repository countbystatus error: %w", err)
	}

	return counts, nil
}
