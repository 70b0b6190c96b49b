package dto

import (
	"builty-service/internal/entities"
	"builty-service/internal/pkg/amount_words"
	"github.com/shopspring/decimal"
)

func BuiltyFromEntity(b *entities.Builty) Builty {
	return Builty{
		ID:                 b.ID,
		DocumentNumber:     b.DocumentNumber,
		BookingRef:         b.BookingRef,
		ConsignorID:        b.ConsignorID,
		ConsigneeID:        b.ConsigneeID,
		ConsigneeName:      b.ConsigneeName,
		ConsigneePhone:     b.ConsigneePhone,
		ConsigneeAddress:   b.ConsigneeAddress,
		CarrierID:          b.CarrierID,
		DriverID:           b.DriverID,
		VehicleID:          b.VehicleID,
		VehicleNumber:      b.VehicleNumber,
		VehicleType:        b.VehicleType,
		Origin:             locationFromEntity(b.Origin),
		Destination:        locationFromEntity(b.Destination),
		CargoDescription:   b.CargoDescription,
		PackageCount:       b.PackageCount,
		PackagingType:      b.PackagingType,
		DeclaredWeight:     b.DeclaredWeight,
		ActualWeight:       b.ActualWeight,
		DeclaredValue:      b.DeclaredValue,
		FreightCharges:     b.FreightCharges,
		LoadingCharges:     b.LoadingCharges,
		UnloadingCharges:   b.UnloadingCharges,
		OtherCharges:       b.OtherCharges,
		TotalAmount:        b.TotalAmount,
		PaymentMode:        b.PaymentMode.String(),
		AdvancePaid:        b.AdvancePaid,
		BalanceDue:         b.BalanceDue,
		Status:             b.Status.String(),
		PickupCondition:    b.PickupCondition,
		PickupPhotos:       nonNil(b.PickupPhotos),
		DeliveryCondition:  b.DeliveryCondition,
		DeliveryPhotos:     nonNil(b.DeliveryPhotos),
		ConsignorSignature: signatureFromEntity(b.ConsignorSignature),
		DriverSignature:    signatureFromEntity(b.DriverSignature),
		ConsigneeSignature: signatureFromEntity(b.ConsigneeSignature),
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

// ProjectionFromEntity keeps the fee only when the service returned the admin projection.
func ProjectionFromEntity(p entities.BuiltyProjection) any {
	if admin, ok := p.(*entities.AdminBuilty); ok {
		return AdminBuilty{
			Builty:      BuiltyFromEntity(&admin.Builty),
			PlatformFee: admin.PlatformFee,
		}
	}
	return BuiltyFromEntity(p.Receipt())
}

func PrintViewFromEntity(b *entities.Builty) PrintView {
	return PrintView{
		Builty:        BuiltyFromEntity(b),
		QRPayload:     b.QRPayload(),
		AmountInWords: amount_words.Rupees(b.TotalAmount),
	}
}

func BuiltyPageFromEntity(p *entities.BuiltyPage) BuiltyPage {
	items := make([]Builty, len(p.Items))
	for i := range p.Items {
		items[i] = BuiltyFromEntity(&p.Items[i])
	}
	return BuiltyPage{
		Items: items,
		Total: p.Total,
		Page:  p.Page,
		Limit: p.Limit,
	}
}

func VerificationFromEntity(v *entities.Verification) Verification {
	if !v.Valid {
		return Verification{Valid: false}
	}
	total := v.TotalAmount
	issuedAt := v.IssuedAt
	return Verification{
		Valid:          true,
		DocumentNumber: v.DocumentNumber,
		Status:         v.Status.String(),
		Origin:         v.Origin,
		Destination:    v.Destination,
		TotalAmount:    &total,
		IssuedAt:       &issuedAt,
	}
}

func StatsFromEntity(s *entities.BuiltyStats) BuiltyStats {
	counts := make(map[string]int64, len(s.CountByStatus))
	for status, n := range s.CountByStatus {
		counts[status.String()] = n
	}
	return BuiltyStats{
		TotalBuilties:    s.TotalBuilties,
		TotalFreight:     s.TotalFreight,
		TotalPlatformFee: s.TotalPlatformFee,
		TotalAmount:      s.TotalAmount,
		CountByStatus:    counts,
	}
}

func (c BuiltyCreate) ToEntity() entities.BuiltyCreate {
	return entities.BuiltyCreate{
		BookingRef:         c.BookingRef,
		ConsignorID:        c.ConsignorID,
		ConsigneeID:        c.ConsigneeID,
		ConsigneeName:      c.ConsigneeName,
		ConsigneePhone:     c.ConsigneePhone,
		ConsigneeAddress:   c.ConsigneeAddress,
		CarrierID:          c.CarrierID,
		DriverID:           c.DriverID,
		VehicleID:          c.VehicleID,
		VehicleNumber:      c.VehicleNumber,
		VehicleType:        c.VehicleType,
		Origin:             c.Origin.toEntity(),
		Destination:        c.Destination.toEntity(),
		CargoDescription:   c.CargoDescription,
		PackageCount:       c.PackageCount,
		PackagingType:      c.PackagingType,
		DeclaredWeight:     c.DeclaredWeight,
		DeclaredValue:      c.DeclaredValue,
		FreightCharges:     c.FreightCharges,
		LoadingCharges:     c.LoadingCharges,
		UnloadingCharges:   c.UnloadingCharges,
		OtherCharges:       c.OtherCharges,
		PaymentMode:        entities.PaymentMode(c.PaymentMode),
		AdvancePaid:        c.AdvancePaid,
		ExpectedDeliveryAt: c.ExpectedDeliveryAt,
	}
}

func (d BuiltyDispatch) ToEntity() entities.DispatchDetails {
	return entities.DispatchDetails{
		DriverID:        d.DriverID,
		DriverSignature: d.DriverSignature,
		PickupCondition: d.PickupCondition,
		PickupPhotos:    d.PickupPhotos,
	}
}

func (d BuiltyDeliver) ToEntity() entities.DeliveryDetails {
	return entities.DeliveryDetails{
		Condition:          d.DeliveryCondition,
		Photos:             d.DeliveryPhotos,
		ActualWeight:       d.ActualWeight,
		ConsigneeSignature: d.ConsigneeSignature,
	}
}

func ConfigEntryFromEntity(e *entities.ConfigEntry) ConfigEntry {
	return ConfigEntry{
		Key:         e.Key,
		Value:       e.Value,
		DataType:    e.DataType.String(),
		Category:    e.Category,
		Description: e.Description,
		IsPublic:    e.IsPublic,
		Status:      e.Status.String(),
		PublishedAt: e.PublishedAt,
		PublishedBy: e.PublishedBy,
		UpdatedBy:   e.UpdatedBy,
		UpdatedAt:   e.UpdatedAt,
	}
}

func ConfigCategoriesFromEntity(categories []entities.ConfigCategory) []ConfigCategory {
	res := make([]ConfigCategory, len(categories))
	for i, c := range categories {
		entries := make([]ConfigEntry, len(c.Entries))
		for j := range c.Entries {
			entries[j] = ConfigEntryFromEntity(&c.Entries[j])
		}
		res[i] = ConfigCategory{Category: c.Category, Entries: entries}
	}
	return res
}

func (c ConfigDraft) Metadata() entities.ConfigMetadata {
	return entities.ConfigMetadata{
		DataType:    entities.ConfigDataType(c.DataType),
		Category:    c.Category,
		Description: c.Description,
		IsPublic:    c.IsPublic,
	}
}

func PricingRuleFromEntity(r *entities.PricingRule) PricingRule {
	return PricingRule{
		ID:         r.ID,
		Name:       r.Name,
		RuleType:   r.RuleType.String(),
		CategoryID: r.CategoryID,
		RouteID:    r.RouteID,
		MinValue:   r.MinValue,
		MaxValue:   r.MaxValue,
		Multiplier: r.Multiplier,
		Priority:   r.Priority,
		ValidFrom:  r.Validity.From,
		ValidUntil: r.Validity.Until,
		Status:     r.Status.String(),
		CreatedAt:  r.CreatedAt,
		UpdatedAt:  r.UpdatedAt,
	}
}

func PricingRulesFromEntity(rules []entities.PricingRule) []PricingRule {
	res := make([]PricingRule, len(rules))
	for i := range rules {
		res[i] = PricingRuleFromEntity(&rules[i])
	}
	return res
}

func (m PricingRuleModify) ToEntity() entities.PricingRuleModify {
	return entities.PricingRuleModify{
		Name:       m.Name,
		RuleType:   entities.PricingRuleType(m.RuleType),
		CategoryID: m.CategoryID,
		RouteID:    m.RouteID,
		MinValue:   m.MinValue,
		MaxValue:   m.MaxValue,
		Multiplier: m.Multiplier,
		Priority:   m.Priority,
		Validity:   entities.ValidityWindow{From: m.ValidFrom, Until: m.ValidUntil},
	}
}

func RoutePricingFromEntity(p *entities.RoutePricing) RoutePricing {
	return RoutePricing{
		ID:              p.ID,
		RouteID:         p.RouteID,
		CategoryID:      p.CategoryID,
		BasePrice:       p.BasePrice,
		SurgeMultiplier: p.SurgeMultiplier,
		ValidFrom:       p.Validity.From,
		ValidUntil:      p.Validity.Until,
		Status:          p.Status.String(),
		CreatedAt:       p.CreatedAt,
		UpdatedAt:       p.UpdatedAt,
	}
}

func RoutePricingListFromEntity(list []entities.RoutePricing) []RoutePricing {
	res := make([]RoutePricing, len(list))
	for i := range list {
		res[i] = RoutePricingFromEntity(&list[i])
	}
	return res
}

// ToEntity treats an omitted surge multiplier as 1.
func (m RoutePricingModify) ToEntity() entities.RoutePricingModify {
	surge := m.SurgeMultiplier
	if surge.IsZero() {
		surge = decimal.NewFromInt(1)
	}
	return entities.RoutePricingModify{
		RouteID:         m.RouteID,
		CategoryID:      m.CategoryID,
		BasePrice:       m.BasePrice,
		SurgeMultiplier: surge,
		Validity:        entities.ValidityWindow{From: m.ValidFrom, Until: m.ValidUntil},
	}
}

func RouteQuoteFromEntity(q *entities.RouteQuote) RouteQuote {
	return RouteQuote{
		RoutePricingID:  q.RoutePricingID,
		RouteID:         q.RouteID,
		CategoryID:      q.CategoryID,
		BasePrice:       q.BasePrice,
		SurgeMultiplier: q.SurgeMultiplier,
		QuotedPrice:     q.QuotedPrice,
	}
}

func (l Location) toEntity() entities.Location {
	return entities.Location{Address: l.Address, Lat: l.Lat, Lng: l.Lng}
}

func locationFromEntity(l entities.Location) Location {
	return Location{Address: l.Address, Lat: l.Lat, Lng: l.Lng}
}

func signatureFromEntity(s *entities.Signature) *Signature {
	if s == nil {
		return nil
	}
	return &Signature{Value: s.Value, SignedAt: s.SignedAt}
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
