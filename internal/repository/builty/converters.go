package builty

import (
	"time"

	"builty-service/internal/entities"
	"github.com/shopspring/decimal"
)

func ToDomain(b *BuiltyDB) *entities.Builty {
	if b == nil {
		return nil
	}

	return &entities.Builty{
		ID:               b.ID,
		DocumentNumber:   b.DocumentNumber,
		BookingRef:       b.BookingRef,
		ConsignorID:      b.ConsignorID,
		ConsigneeID:      b.ConsigneeID,
		ConsigneeName:    b.ConsigneeName,
		ConsigneePhone:   b.ConsigneePhone,
		ConsigneeAddress: b.ConsigneeAddress,
		CarrierID:        b.CarrierID,
		DriverID:         b.DriverID,
		VehicleID:        b.VehicleID,
		VehicleNumber:    b.VehicleNumber,
		VehicleType:      b.VehicleType,
		Origin: entities.Location{
			Address: b.OriginAddress,
			Lat:     b.OriginLat,
			Lng:     b.OriginLng,
		},
		Destination: entities.Location{
			Address: b.DestinationAddress,
			Lat:     b.DestinationLat,
			Lng:     b.DestinationLng,
		},
		CargoDescription:   b.CargoDescription,
		PackageCount:       b.PackageCount,
		PackagingType:      b.PackagingType,
		DeclaredWeight:     fromNullDecimal(b.DeclaredWeight),
		ActualWeight:       fromNullDecimal(b.ActualWeight),
		DeclaredValue:      fromNullDecimal(b.DeclaredValue),
		FreightCharges:     b.FreightCharges,
		LoadingCharges:     b.LoadingCharges,
		UnloadingCharges:   b.UnloadingCharges,
		OtherCharges:       b.OtherCharges,
		TotalAmount:        b.TotalAmount,
		PaymentMode:        entities.PaymentMode(b.PaymentMode),
		AdvancePaid:        b.AdvancePaid,
		BalanceDue:         b.BalanceDue,
		Status:             entities.BuiltyStatus(b.Status),
		PickupCondition:    b.PickupCondition,
		PickupPhotos:       nonNil(b.PickupPhotos),
		DeliveryCondition:  b.DeliveryCondition,
		DeliveryPhotos:     nonNil(b.DeliveryPhotos),
		ConsignorSignature: toSignature(b.ConsignorSignature, b.ConsignorSignedAt),
		DriverSignature:    toSignature(b.DriverSignature, b.DriverSignedAt),
		ConsigneeSignature: toSignature(b.ConsigneeSignature, b.ConsigneeSignedAt),
		VerificationToken:  b.VerificationToken,
		CancellationReason: b.CancellationReason,
		CreatedAt:          b.CreatedAt,
		DispatchedAt:       b.DispatchedAt,
		ExpectedDeliveryAt: b.ExpectedDeliveryAt,
		DeliveredAt:        b.DeliveredAt,
		CancelledAt:        b.CancelledAt,
		UpdatedAt:          b.UpdatedAt,
	}
}

func AdminToDomain(b *AdminBuiltyDB) *entities.AdminBuilty {
	if b == nil {
		return nil
	}

	return &entities.AdminBuilty{
		Builty:      *ToDomain(&b.BuiltyDB),
		PlatformFee: b.PlatformFee,
	}
}

func ToDomainList(builtiesDB []BuiltyDB) []entities.Builty {
	if len(builtiesDB) == 0 {
		return []entities.Builty{}
	}

	result := make([]entities.Builty, len(builtiesDB))
	for i := range builtiesDB {
		result[i] = *ToDomain(&builtiesDB[i])
	}
	return result
}

func toSignature(value *string, signedAt *time.Time) *entities.Signature {
	if value == nil {
		return nil
	}

	signature := &entities.Signature{Value: *value}
	if signedAt != nil {
		signature.SignedAt = *signedAt
	}
	return signature
}

func toNullDecimal(d *decimal.Decimal) decimal.NullDecimal {
	if d == nil {
		return decimal.NullDecimal{}
	}
	return decimal.NewNullDecimal(*d)
}

func fromNullDecimal(d decimal.NullDecimal) *decimal.Decimal {
	if !d.Valid {
		return nil
	}
	v := d.Decimal
	return &v
}

// TEXT[] NOT NULL: nil слайс pgx отправит как NULL
func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
