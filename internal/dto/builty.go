package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

type Location struct {
	Address string   `json:"address"`
	Lat     *float64 `json:"lat,omitempty"`
	Lng     *float64 `json:"lng,omitempty"`
}

type Signature struct {
	Value    string    `json:"value"`
	SignedAt time.Time `json:"signed_at"`
}

type Builty struct {
	ID             int64   `json:"id"`
	DocumentNumber string  `json:"document_number"`
	BookingRef     *string `json:"booking_ref,omitempty"`

	ConsignorID      int64  `json:"consignor_id"`
	ConsigneeID      *int64 `json:"consignee_id,omitempty"`
	ConsigneeName    string `json:"consignee_name"`
	ConsigneePhone   string `json:"consignee_phone,omitempty"`
	ConsigneeAddress string `json:"consignee_address,omitempty"`

	CarrierID     int64  `json:"carrier_id"`
	DriverID      *int64 `json:"driver_id,omitempty"`
	VehicleID     *int64 `json:"vehicle_id,omitempty"`
	VehicleNumber string `json:"vehicle_number"`
	VehicleType   string `json:"vehicle_type,omitempty"`

	Origin      Location `json:"origin"`
	Destination Location `json:"destination"`

	CargoDescription string           `json:"cargo_description"`
	PackageCount     int              `json:"package_count"`
	PackagingType    string           `json:"packaging_type,omitempty"`
	DeclaredWeight   *decimal.Decimal `json:"declared_weight,omitempty"`
	ActualWeight     *decimal.Decimal `json:"actual_weight,omitempty"`
	DeclaredValue    *decimal.Decimal `json:"declared_value,omitempty"`

	FreightCharges   decimal.Decimal `json:"freight_charges"`
	LoadingCharges   decimal.Decimal `json:"loading_charges"`
	UnloadingCharges decimal.Decimal `json:"unloading_charges"`
	OtherCharges     decimal.Decimal `json:"other_charges"`
	TotalAmount      decimal.Decimal `json:"total_amount"`
	PaymentMode      string          `json:"payment_mode"`
	AdvancePaid      decimal.Decimal `json:"advance_paid"`
	BalanceDue       decimal.Decimal `json:"balance_due"`

	Status             string     `json:"status"`
	PickupCondition    string     `json:"pickup_condition,omitempty"`
	PickupPhotos       []string   `json:"pickup_photos"`
	DeliveryCondition  string     `json:"delivery_condition,omitempty"`
	DeliveryPhotos     []string   `json:"delivery_photos"`
	ConsignorSignature *Signature `json:"consignor_signature,omitempty"`
	DriverSignature    *Signature `json:"driver_signature,omitempty"`
	ConsigneeSignature *Signature `json:"consignee_signature,omitempty"`
	VerificationToken  string     `json:"verification_token"`
	CancellationReason *string    `json:"cancellation_reason,omitempty"`

	CreatedAt          time.Time  `json:"created_at"`
	DispatchedAt       *time.Time `json:"dispatched_at,omitempty"`
	ExpectedDeliveryAt *time.Time `json:"expected_delivery_at,omitempty"`
	DeliveredAt        *time.Time `json:"delivered_at,omitempty"`
	CancelledAt        *time.Time `json:"cancelled_at,omitempty"`
	UpdatedAt          time.Time  `json:"updated_at"`
}

// AdminBuilty is only ever encoded for admin callers.
type AdminBuilty struct {
	Builty
	PlatformFee decimal.Decimal `json:"platform_fee"`
}

type BuiltyCreate struct {
	BookingRef *string `json:"booking_ref,omitempty"`

	ConsignorID      int64  `json:"consignor_id,omitempty"`
	ConsigneeID      *int64 `json:"consignee_id,omitempty"`
	ConsigneeName    string `json:"consignee_name"`
	ConsigneePhone   string `json:"consignee_phone"`
	ConsigneeAddress string `json:"consignee_address"`

	CarrierID     int64  `json:"carrier_id"`
	DriverID      *int64 `json:"driver_id,omitempty"`
	VehicleID     *int64 `json:"vehicle_id,omitempty"`
	VehicleNumber string `json:"vehicle_number"`
	VehicleType   string `json:"vehicle_type"`

	Origin      Location `json:"origin"`
	Destination Location `json:"destination"`

	CargoDescription string           `json:"cargo_description"`
	PackageCount     int              `json:"package_count"`
	PackagingType    string           `json:"packaging_type"`
	DeclaredWeight   *decimal.Decimal `json:"declared_weight,omitempty"`
	DeclaredValue    *decimal.Decimal `json:"declared_value,omitempty"`

	FreightCharges   decimal.Decimal `json:"freight_charges"`
	LoadingCharges   decimal.Decimal `json:"loading_charges"`
	UnloadingCharges decimal.Decimal `json:"unloading_charges"`
	OtherCharges     decimal.Decimal `json:"other_charges"`
	PaymentMode      string          `json:"payment_mode"`
	AdvancePaid      decimal.Decimal `json:"advance_paid"`

	ExpectedDeliveryAt *time.Time `json:"expected_delivery_at,omitempty"`
}

type BuiltyDispatch struct {
	DriverID        *int64   `json:"driver_id,omitempty"`
	DriverSignature *string  `json:"driver_signature,omitempty"`
	PickupCondition *string  `json:"pickup_condition,omitempty"`
	PickupPhotos    []string `json:"pickup_photos,omitempty"`
}

type BuiltyDeliver struct {
	DeliveryCondition  *string          `json:"delivery_condition,omitempty"`
	DeliveryPhotos     []string         `json:"delivery_photos,omitempty"`
	ActualWeight       *decimal.Decimal `json:"actual_weight,omitempty"`
	ConsigneeSignature *string          `json:"consignee_signature,omitempty"`
}

type BuiltySign struct {
	Signature string `json:"signature"`
}

type BuiltyCancel struct {
	Reason string `json:"reason"`
}

type BuiltyPage struct {
	Items []Builty `json:"items"`
	Total int64    `json:"total"`
	Page  int      `json:"page"`
	Limit int      `json:"limit"`
}

// Verification omits every field but valid for unknown receipts.
type Verification struct {
	Valid          bool             `json:"valid"`
	DocumentNumber string           `json:"document_number,omitempty"`
	Status         string           `json:"status,omitempty"`
	Origin         string           `json:"origin,omitempty"`
	Destination    string           `json:"destination,omitempty"`
	TotalAmount    *decimal.Decimal `json:"total_amount,omitempty"`
	IssuedAt       *time.Time       `json:"issued_at,omitempty"`
}

type BuiltyStats struct {
	TotalBuilties    int64            `json:"total_builties"`
	TotalFreight     decimal.Decimal  `json:"total_freight"`
	TotalPlatformFee decimal.Decimal  `json:"total_platform_fee"`
	TotalAmount      decimal.Decimal  `json:"total_amount"`
	CountByStatus    map[string]int64 `json:"count_by_status"`
}

type PhotoUpload struct {
	URL string `json:"url"`
}

type PrintView struct {
	Builty
	QRPayload     string `json:"qr_payload"`
	AmountInWords string `json:"amount_in_words"`
}
