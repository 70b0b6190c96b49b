package booking_confirmed

import "builty-service/internal/dto"

type confirmedEvent struct {
	BookingRef  string           `json:"booking_ref"`
	ConsignorID int64            `json:"consignor_id"`
	CarrierID   int64            `json:"carrier_id"`
	Builty      dto.BuiltyCreate `json:"builty"`
}
