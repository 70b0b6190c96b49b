package entities

import (
	"io"
	"time"

	"github.com/shopspring/decimal"
)

type BuiltyStatus string

const (
	BuiltyIssued    BuiltyStatus = "issued"
	BuiltyInTransit BuiltyStatus = "in_transit"
	BuiltyDelivered BuiltyStatus = "delivered"
	BuiltyCancelled BuiltyStatus = "cancelled"
)

func (s BuiltyStatus) String() string {
	return string(s)
}

func (s BuiltyStatus) IsValid() bool {
	switch s {
	case BuiltyIssued, BuiltyInTransit, BuiltyDelivered, BuiltyCancelled:
		return true
	}
	return false
}

// IsTerminal is true for states nothing can transition out of.
func (s BuiltyStatus) IsTerminal() bool {
	return s == BuiltyDelivered || s == BuiltyCancelled
}

var BuiltyStatuses = []BuiltyStatus{BuiltyIssued, BuiltyInTransit, BuiltyDelivered, BuiltyCancelled}

type PaymentMode string

const (
	PaymentToPay      PaymentMode = "to_pay"
	PaymentPaid       PaymentMode = "paid"
	PaymentToBeBilled PaymentMode = "to_be_billed"
)

func (m PaymentMode) String() string {
	return string(m)
}

func (m PaymentMode) IsValid() bool {
	switch m {
	case PaymentToPay, PaymentPaid, PaymentToBeBilled:
		return true
	}
	return false
}

type Location struct {
	Address string
	Lat     *float64
	Lng     *float64
}

type Signature struct {
	Value    string
	SignedAt time.Time
}

// Builty is the consignment receipt as seen by its parties and the public.
// It intentionally carries no platform fee, see AdminBuilty.
type Builty struct {
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

	Origin      Location
	Destination Location

	CargoDescription string
	PackageCount     int
	PackagingType    string
	DeclaredWeight   *decimal.Decimal
	ActualWeight     *decimal.Decimal
	DeclaredValue    *decimal.Decimal

	FreightCharges   decimal.Decimal
	LoadingCharges   decimal.Decimal
	UnloadingCharges decimal.Decimal
	OtherCharges     decimal.Decimal
	TotalAmount      decimal.Decimal
	PaymentMode      PaymentMode
	AdvancePaid      decimal.Decimal
	BalanceDue       decimal.Decimal

	Status             BuiltyStatus
	PickupCondition    string
	PickupPhotos       []string
	DeliveryCondition  string
	DeliveryPhotos     []string
	ConsignorSignature *Signature
	DriverSignature    *Signature
	ConsigneeSignature *Signature
	VerificationToken  string
	CancellationReason *string

	CreatedAt          time.Time
	DispatchedAt       *time.Time
	ExpectedDeliveryAt *time.Time
	DeliveredAt        *time.Time
	CancelledAt        *time.Time
	UpdatedAt          time.Time
}

// BuiltyProjection is what role-scoped reads return: *Builty or *AdminBuilty.
type BuiltyProjection interface {
	Receipt() *Builty
}

func (b *Builty) Receipt() *Builty {
	return b
}

// QRPayload is encoded into the QR code printed on the receipt.
func (b *Builty) QRPayload() string {
	return b.DocumentNumber + "|" + b.VerificationToken
}

// IsParty reports whether the actor is the consignor or the carrier of the receipt.
func (b *Builty) IsParty(actor Actor) bool {
	switch actor.Role {
	case RoleShipper:
		return b.ConsignorID == actor.ID
	case RoleCarrier:
		return b.CarrierID == actor.ID
	}
	return false
}

// AdminBuilty is the only type carrying the hidden platform fee.
type AdminBuilty struct {
	Builty
	PlatformFee decimal.Decimal
}

func (b *AdminBuilty) Receipt() *Builty {
	return &b.Builty
}

type BuiltyCreate struct {
	BookingRef *string

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

	Origin      Location
	Destination Location

	CargoDescription string
	PackageCount     int
	PackagingType    string
	DeclaredWeight   *decimal.Decimal
	DeclaredValue    *decimal.Decimal

	FreightCharges   decimal.Decimal
	LoadingCharges   decimal.Decimal
	UnloadingCharges decimal.Decimal
	OtherCharges     decimal.Decimal
	PaymentMode      PaymentMode
	AdvancePaid      decimal.Decimal

	ExpectedDeliveryAt *time.Time
}

// BuiltyIssue is a fully priced receipt ready to be inserted.
type BuiltyIssue struct {
	BuiltyCreate
	DocumentNumber    string
	PlatformFee       decimal.Decimal
	TotalAmount       decimal.Decimal
	BalanceDue        decimal.Decimal
	VerificationToken string
	Status            BuiltyStatus
	CreatedAt         time.Time
}

type DispatchDetails struct {
	DriverID        *int64
	DriverSignature *string
	PickupCondition *string
	PickupPhotos    []string
}

type DeliveryDetails struct {
	Condition          *string
	Photos             []string
	ActualWeight       *decimal.Decimal
	ConsigneeSignature *string
}

type BuiltyDispatch struct {
	DispatchDetails
	DispatchedAt time.Time
}

type BuiltyDelivery struct {
	DeliveryDetails
	DeliveredAt time.Time
}

type ListFilter struct {
	Status *BuiltyStatus
	Search string
	Page   int
	Limit  int
}

// BuiltyListQuery is a normalized ListFilter scoped to one party.
type BuiltyListQuery struct {
	ConsignorID *int64
	CarrierID   *int64
	Status      *BuiltyStatus
	Search      string
	Limit       int
	Offset      int
}

type BuiltyPage struct {
	Items []Builty
	Total int64
	Page  int
	Limit int
}

type BuiltyStats struct {
	TotalBuilties    int64
	TotalFreight     decimal.Decimal
	TotalPlatformFee decimal.Decimal
	TotalAmount      decimal.Decimal
	CountByStatus    map[BuiltyStatus]int64
}

// Verification is the public answer for a scanned receipt, never carries the fee.
type Verification struct {
	Valid          bool
	DocumentNumber string
	Status         BuiltyStatus
	Origin         string
	Destination    string
	TotalAmount    decimal.Decimal
	IssuedAt       time.Time
}

type BuiltyEventType string

const (
	EventBuiltyCreated         BuiltyEventType = "builty.created"
	EventBuiltyDispatched      BuiltyEventType = "builty.dispatched"
	EventBuiltyDelivered       BuiltyEventType = "builty.delivered"
	EventBuiltyCancelled       BuiltyEventType = "builty.cancelled"
	EventBuiltyConsignorSigned BuiltyEventType = "builty.consignor_signed"
)

type BuiltyEvent struct {
	Type           BuiltyEventType
	BuiltyID       int64
	DocumentNumber string
	ConsignorID    int64
	CarrierID      int64
	Status         BuiltyStatus
	OccurredAt     time.Time
}

func NewBuiltyEvent(eventType BuiltyEventType, b *Builty, at time.Time) BuiltyEvent {
	return BuiltyEvent{
		Type:           eventType,
		BuiltyID:       b.ID,
		DocumentNumber: b.DocumentNumber,
		ConsignorID:    b.ConsignorID,
		CarrierID:      b.CarrierID,
		Status:         b.Status,
		OccurredAt:     at,
	}
}

type FileUpload struct {
	Filename    string
	ContentType string
	Size        int64
	Body        io.Reader
}

// BookingConfirmed is the payload of the booking.confirmed topic.
type BookingConfirmed struct {
	BookingRef  string
	ConsignorID int64
	Builty      BuiltyCreate
}
