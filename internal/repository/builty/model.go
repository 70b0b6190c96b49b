package builty

import (
	"time"

	"github.com/shopspring/decimal"
)

type BuiltyDB struct {
	ID             int64
	DocumentNumber string
	BookingRef     *string

	ConsignorID      int64
	ConsigneeID      *int64
	ConsigneeName    string
	ConsigneePhone   string
	ConsigneeAddress string

	CarrierID     int64
	DriverID      *int64
	VehicleID     *int64
	VehicleNumber string
	VehicleType   string

	OriginAddress      string
	OriginLat          *float64
	OriginLng          *float64
	DestinationAddress string
	DestinationLat     *float64
	DestinationLng     *float64

	CargoDescription string
	PackageCount     int
	PackagingType    string
	DeclaredWeight   decimal.NullDecimal
	ActualWeight     decimal.NullDecimal
	DeclaredValue    decimal.NullDecimal

	FreightCharges   decimal.Decimal
	LoadingCharges   decimal.Decimal
	UnloadingCharges decimal.Decimal
	OtherCharges     decimal.Decimal
	TotalAmount      decimal.Decimal
	PaymentMode      string
	AdvancePaid      decimal.Decimal
	BalanceDue       decimal.Decimal

	Status             string
	PickupCondition    string
	PickupPhotos       []string
	DeliveryCondition  string
	DeliveryPhotos     []string
	ConsignorSignature *string
	ConsignorSignedAt  *time.Time
	DriverSignature    *string
	DriverSignedAt     *time.Time
	ConsigneeSignature *string
	ConsigneeSignedAt  *time.Time
	VerificationToken  string
	CancellationReason *string

	CreatedAt          time.Time
	DispatchedAt       *time.Time
	ExpectedDeliveryAt *time.Time
	DeliveredAt        *time.Time
	CancelledAt        *time.Time
	UpdatedAt          time.Time
}

// AdminBuiltyDB is the only model the platform_fee column is scanned into.
type AdminBuiltyDB struct {
	BuiltyDB
	PlatformFee decimal.Decimal
}

// публичные колонки, порядок совпадает со scanTargets
const builtyColumns = `id, document_number, booking_ref,
	consignor_id, consignee_id, consignee_name, consignee_phone, consignee_address,
	carrier_id, driver_id, vehicle_id, vehicle_number, vehicle_type,
	origin_address, origin_lat, origin_lng, destination_address, destination_lat, destination_lng,
	cargo_description, package_count, packaging_type, declared_weight, actual_weight, declared_value,
	freight_charges, loading_charges, unloading_charges, other_charges, total_amount,
	payment_mode, advance_paid, balance_due,
	status, pickup_condition, pickup_photos, delivery_condition, delivery_photos,
	consignor_signature, consignor_signed_at, driver_signature, driver_signed_at,
	consignee_signature, consignee_signed_at, verification_token, cancellation_reason,
	created_at, dispatched_at, expected_delivery_at, delivered_at, cancelled_at, updated_at`

const adminBuiltyColumns = builtyColumns + `, platform_fee`

func (b *BuiltyDB) scanTargets() []any {
	return []any{
		&b.ID, &b.DocumentNumber, &b.BookingRef,
		&b.ConsignorID, &b.ConsigneeID, &b.ConsigneeName, &b.ConsigneePhone, &b.ConsigneeAddress,
		&b.CarrierID, &b.DriverID, &b.VehicleID, &b.VehicleNumber, &b.VehicleType,
		&b.OriginAddress, &b.OriginLat, &b.OriginLng, &b.DestinationAddress, &b.DestinationLat, &b.DestinationLng,
		&b.CargoDescription, &b.PackageCount, &b.PackagingType, &b.DeclaredWeight, &b.ActualWeight, &b.DeclaredValue,
		&b.FreightCharges, &b.LoadingCharges, &b.UnloadingCharges, &b.OtherCharges, &b.TotalAmount,
		&b.PaymentMode, &b.AdvancePaid, &b.BalanceDue,
		&b.Status, &b.PickupCondition, &b.PickupPhotos, &b.DeliveryCondition, &b.DeliveryPhotos,
		&b.ConsignorSignature, &b.ConsignorSignedAt, &b.DriverSignature, &b.DriverSignedAt,
		&b.ConsigneeSignature, &b.ConsigneeSignedAt, &b.VerificationToken, &b.CancellationReason,
		&b.CreatedAt, &b.DispatchedAt, &b.ExpectedDeliveryAt, &b.DeliveredAt, &b.CancelledAt, &b.UpdatedAt,
	}
}

func (b *AdminBuiltyDB) scanTargets() []any {
	return append(b.BuiltyDB.scanTargets(), &b.PlatformFee)
}

type StatsDB struct {
	TotalBuilties    int64
	TotalFreight     decimal.Decimal
	TotalPlatformFee decimal.Decimal
	TotalAmount      decimal.Decimal
}
