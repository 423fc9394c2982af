package validators

import "go.mongodb.org/mongo-driver/bson"

var UserValidator = bson.M{
	"$jsonSchema": bson.M{
		"bsonType": "object",
		"required": []string{
			"id",
			"first_name",
			"last_name",
			"email",
			"password",
		},
		"additionalProperties": true,

		"properties": bson.M{
			"id": bson.M{
				"bsonType":  "string",
				"minLength": 1,
				"maxLength": 64,
			},

			"first_name": bson.M{
				"bsonType":  "string",
				"minLength": 1,
				"maxLength": 50,
			},

			"last_name": bson.M{
				"bsonType":  "string",
				"minLength": 1,
				"maxLength": 50,
			},

			"email": bson.M{
				"bsonType": "string",
			},

			"start_date": bson.M{
				"bsonType": []string{"date", "null"},
			},

			"schedule": bson.M{
				"bsonType": "string",
				"enum":     []string{"", "Morning", "Evening", "Night"},
			},

			"status": bson.M{
				"bsonType": "bool",
			},

			// bcrypt hashes are 60 characters.
			"password": bson.M{
				"bsonType":  "string",
				"minLength": 60,
			},
		},
	},
}
