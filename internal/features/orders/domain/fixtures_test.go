package domain

func ptr(f float64) *float64 { return &f }

func validDraft() Draft {
	return Draft{
		CustomerID:        "c1",
		PickupAddress:     "12 Marina Rd, Lagos",
		PickupLatitude:    ptr(6.4541),
		PickupLongitude:   ptr(3.3947),
		ReceiverName:      "Ada Obi",
		ReceiverEmail:     "ada@example.com",
		ReceiverPhone:     "+2348000000000",
		DeliveryAddress:   "4 Allen Ave, Ikeja",
		DeliveryLatitude:  ptr(6.6018),
		DeliveryLongitude: ptr(3.3515),
		ServiceType:       ServiceTypeExpress,
		FulfillmentType:   FulfillmentPickup,
		ShipmentType:      ShipmentParcel,
		Weight:            2.5,
		Length:            30,
		Width:             20,
		Height:            10,
		Category:          []string{"electronics"},
		Destination:       ScopeTown,
		Quantity:          1,
	}
}
