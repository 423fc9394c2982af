package model

import "encoding/json"

type Schedule string

const (
	ScheduleMorning Schedule = "Morning"
	ScheduleEvening Schedule = "Evening"
	ScheduleNight   Schedule = "Night"
)

// User is a staff member. Password holds the bcrypt hash once persisted; it is
// accepted on input and never written back out.
type User struct {
	ID                  string       `json:"id" bson:"id" validate:"required,max=64"`
	Photo               string       `json:"photo" bson:"photo" validate:"omitempty,url"`
	FirstName           string       `json:"first_name" bson:"first_name" validate:"required,min=1,max=50"`
	LastName            string       `json:"last_name" bson:"last_name" validate:"required,min=1,max=50"`
	Job                 string       `json:"job" bson:"job" validate:"omitempty,max=50"`
	Email               string       `json:"email" bson:"email" validate:"required,email"`
	PhoneNumber         string       `json:"phone_number" bson:"phone_number" validate:"omitempty,e164"`
	StartDate           FlexibleDate `json:"start_date" bson:"start_date"`
	Schedule            Schedule     `json:"schedule" bson:"schedule" validate:"omitempty,oneof=Morning Evening Night"`
	FunctionDescription string       `json:"function_description" bson:"function_description" validate:"omitempty,max=1000"`
	Status              bool         `json:"status" bson:"status"`
	Password            string       `json:"password,omitempty" bson:"password" validate:"required"`
}

type userJSON User

func (u User) MarshalJSON() ([]byte, error) {
	out := userJSON(u)
	out.Password = ""
	return json.Marshal(out)
}

// UserUpdate is a partial user. The id cannot change; a new password is hashed again.
type UserUpdate struct {
	Photo               *string       `json:"photo,omitempty"`
	FirstName           *string       `json:"first_name,omitempty"`
	LastName            *string       `json:"last_name,omitempty"`
	Job                 *string       `json:"job,omitempty"`
	Email               *string       `json:"email,omitempty"`
	PhoneNumber         *string       `json:"phone_number,omitempty"`
	StartDate           *FlexibleDate `json:"start_date,omitempty"`
	Schedule            *Schedule     `json:"schedule,omitempty"`
	FunctionDescription *string       `json:"function_description,omitempty"`
	Status              *bool         `json:"status,omitempty"`
	Password            *string       `json:"password,omitempty"`
}

func (u *UserUpdate) Apply(user *User) {
	if u.Photo != nil {
		user.Photo = *u.Photo
	}
	if u.FirstName != nil {
		user.FirstName = *u.FirstName
	}
	if u.LastName != nil {
		user.LastName = *u.LastName
	}
	if u.Job != nil {
		user.Job = *u.Job
	}
	if u.Email != nil {
		user.Email = *u.Email
	}
	if u.PhoneNumber != nil {
		user.PhoneNumber = *u.PhoneNumber
	}
	if u.StartDate != nil {
		user.StartDate = *u.StartDate
	}
	if u.Schedule != nil {
		user.Schedule = *u.Schedule
	}
	if u.FunctionDescription != nil {
		user.FunctionDescription = *u.FunctionDescription
	}
	if u.Status != nil {
		user.Status = *u.Status
	}
	if u.Password != nil {
		user.Password = *u.Password
	}
}
