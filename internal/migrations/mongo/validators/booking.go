package validators

import "go.mongodb.org/mongo-driver/bson"

var BookingValidator = bson.M{
	"$jsonSchema": bson.M{
		"bsonType": "object",
		"required": []string{
			"id",
			"name",
			"orderDate",
			"checkIn",
			"checkOut",
			"roomType",
			"roomNumber",
			"status",
			"email",
		},
		"additionalProperties": true,

		"properties": bson.M{
			"_id": bson.M{
				"bsonType": "objectId",
			},

			"id": bson.M{
				"bsonType":  "string",
				"minLength": 36,
				"maxLength": 36,
			},

			"name": bson.M{
				"bsonType":  "string",
				"minLength": 2,
				"maxLength": 100,
			},

			"orderDate": bson.M{
				"bsonType": "date",
			},

			"checkIn": bson.M{
				"bsonType": "date",
			},

			"checkOut": bson.M{
				"bsonType": "date",
			},

			"specialRequest": bson.M{
				"bsonType": "object",
				"properties": bson.M{
					"status": bson.M{"bsonType": "bool"},
					"text":   bson.M{"bsonType": "string", "maxLength": 500},
				},
			},

			"roomType": bson.M{
				"bsonType":  "string",
				"maxLength": 50,
			},

			"roomNumber": bson.M{
				"bsonType": []string{"int", "long"},
				"minimum":  1,
			},

			"status": bson.M{
				"bsonType": "string",
				"enum": []string{
					"Booked",
					"Checked In",
					"Checked Out",
					"Cancelled",
				},
			},

			"phone": bson.M{
				"bsonType": "string",
			},

			"email": bson.M{
				"bsonType": "string",
			},
		},
	},
}
