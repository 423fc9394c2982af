package validators

import "go.mongodb.org/mongo-driver/bson"

var RoomValidator = bson.M{
	"$jsonSchema": bson.M{
		"bsonType": "object",
		"required": []string{
			"roomNumber",
			"roomType",
			"offer",
			"price",
			"discount",
		},
		"additionalProperties": true,

		"properties": bson.M{
			"roomNumber": bson.M{
				"bsonType": []string{"int", "long"},
				"minimum":  1,
			},

			"roomType": bson.M{
				"bsonType":  "string",
				"minLength": 1,
			},

			"photos": bson.M{
				"bsonType": "array",
				"items":    bson.M{"bsonType": "string"},
			},

			"offer": bson.M{
				"bsonType": "string",
				"enum":     []string{"YES", "NO"},
			},

			"price": bson.M{
				"bsonType": []string{"double", "int", "long"},
				"minimum":  0,
			},

			"discount": bson.M{
				"bsonType": []string{"double", "int", "long"},
				"minimum":  0,
				"maximum":  100,
			},

			"amenities": bson.M{
				"bsonType": "array",
				"items":    bson.M{"bsonType": "string"},
			},
		},
	},
}
