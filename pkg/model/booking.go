package model

type BookingStatus string

const (
	BookingStatusBooked     BookingStatus = "Booked"
	BookingStatusCheckedIn  BookingStatus = "Checked In"
	BookingStatusCheckedOut BookingStatus = "Checked Out"
	BookingStatusCancelled  BookingStatus = "Cancelled"
)

type SpecialRequest struct {
	Status bool   `json:"status" bson:"status"`
	Text   string `json:"text" bson:"text" validate:"omitempty,max=500"`
}

// Booking is keyed by ID, which the server assigns on create.
type Booking struct {
	ID             string         `json:"id" bson:"id" validate:"required,uuid"`
	Name           string         `json:"name" bson:"name" validate:"required,min=2,max=100"`
	Image          string         `json:"image" bson:"image" validate:"omitempty,url"`
	OrderDate      FlexibleDate   `json:"orderDate" bson:"orderDate" validate:"required"`
	CheckIn        FlexibleDate   `json:"checkIn" bson:"checkIn" validate:"required"`
	CheckOut       FlexibleDate   `json:"checkOut" bson:"checkOut" validate:"required"`
	SpecialRequest SpecialRequest `json:"specialRequest" bson:"specialRequest"`
	RoomType       string         `json:"roomType" bson:"roomType" validate:"required,max=50"`
	RoomNumber     int            `json:"roomNumber" bson:"roomNumber" validate:"required,min=1"`
	Status         BookingStatus  `json:"status" bson:"status" validate:"required,oneof='Booked' 'Checked In' 'Checked Out' 'Cancelled'"`
	Phone          string         `json:"phone" bson:"phone" validate:"omitempty,e164"`
	Email          string         `json:"email" bson:"email" validate:"required,email"`
}

// BookingUpdate is a partial booking. The id is server-owned and cannot change.
type BookingUpdate struct {
	Name           *string         `json:"name,omitempty"`
	Image          *string         `json:"image,omitempty"`
	OrderDate      *FlexibleDate   `json:"orderDate,omitempty"`
	CheckIn        *FlexibleDate   `json:"checkIn,omitempty"`
	CheckOut       *FlexibleDate   `json:"checkOut,omitempty"`
	SpecialRequest *SpecialRequest `json:"specialRequest,omitempty"`
	RoomType       *string         `json:"roomType,omitempty"`
	RoomNumber     *int            `json:"roomNumber,omitempty"`
	Status         *BookingStatus  `json:"status,omitempty"`
	Phone          *string         `json:"phone,omitempty"`
	Email          *string         `json:"email,omitempty"`
}

func (u *BookingUpdate) Apply(b *Booking) {
	if u.Name != nil {
		b.Name = *u.Name
	}
	if u.Image != nil {
		b.Image = *u.Image
	}
	if u.OrderDate != nil {
		b.OrderDate = *u.OrderDate
	}
	if u.CheckIn != nil {
		b.CheckIn = *u.CheckIn
	}
	if u.CheckOut != nil {
		b.CheckOut = *u.CheckOut
	}
	if u.SpecialRequest != nil {
		b.SpecialRequest = *u.SpecialRequest
	}
	if u.RoomType != nil {
		b.RoomType = *u.RoomType
	}
	if u.RoomNumber != nil {
		b.RoomNumber = *u.RoomNumber
	}
	if u.Status != nil {
		b.Status = *u.Status
	}
	if u.Phone != nil {
		b.Phone = *u.Phone
	}
	if u.Email != nil {
		b.Email = *u.Email
	}
}
