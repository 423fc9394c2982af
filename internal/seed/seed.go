// Package seed fills an empty database with sample rooms, staff and bookings.
// Records go through the resource services, so they are normalized,
// validated and hashed exactly like API writes.
package seed

import (
	"context"
	"fmt"
	"math/rand/v2"
	"strings"
	"time"

	bookingservice "miranda/internal/bookings/service"
	roomservice "miranda/internal/rooms/service"
	userservice "miranda/internal/users/service"
	apperrors "miranda/pkg/errors"
	"miranda/pkg/logger"
	"miranda/pkg/model"
)

const (
	DefaultRooms    = 30
	DefaultUsers    = 20
	DefaultBookings = 50

	firstRoomNumber = 100
	emailDomain     = "hotelmiranda.com"
)

type Counts struct {
	Rooms    int
	Users    int
	Bookings int
}

// Admin is a known login created alongside the generated staff. It is
// skipped when Password is empty.
type Admin struct {
	Email    string
	Password string
}

// Result counts created records and those skipped because they already existed.
type Result struct {
	Created Counts
	Skipped Counts
}

type Seeder struct {
	rooms    roomservice.RoomService
	users    userservice.UserService
	bookings bookingservice.BookingService
	rnd      *rand.Rand
	now      func() time.Time
	log      *logger.Logger
}

// NewSeeder returns a seeder whose output is fully determined by seed.
func NewSeeder(
	rooms roomservice.RoomService,
	users userservice.UserService,
	bookings bookingservice.BookingService,
	seed uint64,
	log *logger.Logger,
) *Seeder {
	return &Seeder{
		rooms:    rooms,
		users:    users,
		bookings: bookings,
		rnd:      rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
		now:      time.Now,
		log:      log,
	}
}

func (s *Seeder) Run(ctx context.Context, counts Counts, admin Admin) (Result, error) {
	var res Result

	if admin.Password != "" {
		created, err := s.create(ctx, "admin", func() error {
			_, err := s.users.Create(ctx, s.adminUser(admin))
			return err
		})
		if err != nil {
			return res, err
		}
		tally(&res.Created.Users, &res.Skipped.Users, created)
	}

	var rooms []*model.Room
	for i := 0; i < counts.Rooms; i++ {
		room := s.room(firstRoomNumber + i)
		created, err := s.create(ctx, "room", func() error {
			_, err := s.rooms.Create(ctx, room)
			return err
		})
		if err != nil {
			return res, err
		}
		tally(&res.Created.Rooms, &res.Skipped.Rooms, created)
		rooms = append(rooms, room)
	}

	for i := 0; i < counts.Users; i++ {
		user := s.user(i)
		created, err := s.create(ctx, "user", func() error {
			_, err := s.users.Create(ctx, user)
			return err
		})
		if err != nil {
			return res, err
		}
		tally(&res.Created.Users, &res.Skipped.Users, created)
	}

	if len(rooms) == 0 && counts.Bookings > 0 {
		return res, fmt.Errorf("bookings need at least one room")
	}
	for i := 0; i < counts.Bookings; i++ {
		booking := s.booking(rooms[s.rnd.IntN(len(rooms))])
		if _, err := s.bookings.Create(ctx, booking); err != nil {
			return res, fmt.Errorf("seed booking %d: %w", i, err)
		}
		res.Created.Bookings++
	}

	s.log.Info("Database seeded",
		"rooms", res.Created.Rooms,
		"users", res.Created.Users,
		"bookings", res.Created.Bookings,
		"skipped_rooms", res.Skipped.Rooms,
		"skipped_users", res.Skipped.Users,
	)
	return res, nil
}

// create runs fn and reports whether a record was created. A conflict means
// the record is already there and is not an error.
func (s *Seeder) create(ctx context.Context, kind string, fn func() error) (bool, error) {
	err := fn()
	switch {
	case err == nil:
		return true, nil
	case apperrors.HasCode(err, apperrors.CodeConflict):
		s.log.Debug("Seed record already exists", "kind", kind, "error", err)
		return false, nil
	default:
		return false, fmt.Errorf("seed %s: %w", kind, err)
	}
}

func tally(created, skipped *int, ok bool) {
	if ok {
		*created++
	} else {
		*skipped++
	}
}

func (s *Seeder) adminUser(admin Admin) *model.User {
	return &model.User{
		FirstName:           "Admin",
		LastName:            "Miranda",
		Job:                 "Manager",
		Email:               admin.Email,
		StartDate:           model.NewDate(s.now().UTC()),
		Schedule:            model.ScheduleMorning,
		FunctionDescription: "Hotel administrator",
		Status:              true,
		Password:            admin.Password,
	}
}

func (s *Seeder) room(number int) *model.Room {
	offer := model.OfferNo
	discount := 0.0
	if s.rnd.IntN(2) == 0 {
		offer = model.OfferYes
		discount = float64(s.between(5, 25))
	}

	return &model.Room{
		RoomNumber: number,
		RoomType:   pick(s.rnd, roomTypes),
		BedType:    pick(s.rnd, bedTypes),
		RoomFloor:  fmt.Sprint(s.between(1, 5)),
		Photos: []string{
			fmt.Sprintf("https://images.%s/rooms/%d-1.jpg", emailDomain, number),
			fmt.Sprintf("https://images.%s/rooms/%d-2.jpg", emailDomain, number),
		},
		Description:  pick(s.rnd, descriptions),
		Offer:        offer,
		Price:        float64(s.between(80, 500)),
		Discount:     discount,
		Cancellation: pick(s.rnd, cancellationPolicies),
		Amenities:    sample(s.rnd, amenities, s.between(3, 6)),
	}
}

func (s *Seeder) user(i int) *model.User {
	first, last := pick(s.rnd, firstNames), pick(s.rnd, lastNames)
	return &model.User{
		Photo:               fmt.Sprintf("https://images.%s/staff/%d.jpg", emailDomain, i),
		FirstName:           first,
		LastName:            last,
		Job:                 pick(s.rnd, jobRoles),
		Email:               fmt.Sprintf("%s.%s.%d@%s", asciiLower(first), asciiLower(last), i, emailDomain),
		PhoneNumber:         s.phone(),
		StartDate:           model.NewDate(s.now().UTC().AddDate(0, 0, -s.between(30, 5*365)).Truncate(24 * time.Hour)),
		Schedule:            pick(s.rnd, []model.Schedule{model.ScheduleMorning, model.ScheduleEvening, model.ScheduleNight}),
		FunctionDescription: "Front of house and guest support",
		Status:              s.rnd.IntN(2) == 0,
		Password:            fmt.Sprintf("%016x", s.rnd.Uint64()),
	}
}

func (s *Seeder) booking(room *model.Room) *model.Booking {
	today := s.now().UTC().Truncate(24 * time.Hour)
	checkIn := today.AddDate(0, 0, s.between(-60, 120))
	checkOut := checkIn.AddDate(0, 0, s.between(1, 14))
	first, last := pick(s.rnd, firstNames), pick(s.rnd, lastNames)

	return &model.Booking{
		Name:      first + " " + last,
		Image:     fmt.Sprintf("https://images.%s/guests/%d.jpg", emailDomain, s.rnd.IntN(1000)),
		OrderDate: model.NewDate(checkIn.AddDate(0, 0, -s.between(1, 90))),
		CheckIn:   model.NewDate(checkIn),
		CheckOut:  model.NewDate(checkOut),
		SpecialRequest: model.SpecialRequest{
			Status: s.rnd.IntN(2) == 0,
			Text:   pick(s.rnd, requests),
		},
		RoomType:   room.RoomType,
		RoomNumber: room.RoomNumber,
		Status: pick(s.rnd, []model.BookingStatus{
			model.BookingStatusBooked,
			model.BookingStatusCheckedIn,
			model.BookingStatusCheckedOut,
			model.BookingStatusCancelled,
		}),
		Phone: s.phone(),
		Email: fmt.Sprintf("%s.%s@example.com", asciiLower(first), asciiLower(last)),
	}
}

// phone returns a Spanish mobile number in E.164.
func (s *Seeder) phone() string {
	return fmt.Sprintf("+346%08d", s.rnd.IntN(100000000))
}

func (s *Seeder) between(lo, hi int) int {
	return lo + s.rnd.IntN(hi-lo+1)
}

func pick[T any](rnd *rand.Rand, items []T) T {
	return items[rnd.IntN(len(items))]
}

func sample(rnd *rand.Rand, items []string, n int) []string {
	shuffled := append([]string(nil), items...)
	rnd.Shuffle(len(shuffled), func(i, j int) { shuffled[i], shuffled[j] = shuffled[j], shuffled[i] })
	return shuffled[:min(n, len(shuffled))]
}

var accents = strings.NewReplacer("á", "a", "é", "e", "í", "i", "ó", "o", "ú", "u", "Á", "a", "ñ", "n")

func asciiLower(s string) string {
	return strings.ToLower(accents.Replace(s))
}
