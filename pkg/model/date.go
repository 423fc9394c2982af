package model

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const DateLayout = "2006-01-02"

var dateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04:05.000",
	DateLayout,
}

// FlexibleDate is a calendar instant normalized to UTC. On input it accepts an RFC3339
// or YYYY-MM-DD string, epoch milliseconds, or any of those wrapped in an
// extended-JSON object such as {"$date": "2024-07-01T00:00:00Z"} or
// {"$date": {"$numberLong": "1719792000000"}}. It is stored as a BSON date.
type FlexibleDate struct {
	time.Time
}

func NewDate(t time.Time) FlexibleDate {
	return FlexibleDate{Time: t.UTC()}
}

func (d FlexibleDate) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(d.UTC().Format(time.RFC3339))
}

func (d *FlexibleDate) UnmarshalJSON(data []byte) error {
	t, err := parseDateJSON(bytes.TrimSpace(data))
	if err != nil {
		return err
	}
	d.Time = t
	return nil
}

func (d FlexibleDate) MarshalBSONValue() (bsontype.Type, []byte, error) {
	if d.IsZero() {
		return bson.TypeNull, nil, nil
	}
	return bson.MarshalValue(primitive.NewDateTimeFromTime(d.Time))
}

func (d *FlexibleDate) UnmarshalBSONValue(t bsontype.Type, data []byte) error {
	raw := bson.RawValue{Type: t, Value: data}

	switch t {
	case bson.TypeNull, bson.TypeUndefined:
		d.Time = time.Time{}
		return nil
	case bson.TypeDateTime:
		d.Time = raw.Time().UTC()
		return nil
	case bson.TypeString:
		parsed, err := parseDateString(raw.StringValue())
		if err != nil {
			return err
		}
		d.Time = parsed
		return nil
	default:
		return fmt.Errorf("cannot decode BSON %s into a date", t)
	}
}

func parseDateJSON(data []byte) (time.Time, error) {
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return time.Time{}, nil
	}

	switch data[0] {
	case '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return time.Time{}, err
		}
		return parseDateString(s)
	case '{':
		var wrapped map[string]json.RawMessage
		if err := json.Unmarshal(data, &wrapped); err != nil {
			return time.Time{}, err
		}
		if inner, ok := wrapped["$date"]; ok {
			return parseDateJSON(bytes.TrimSpace(inner))
		}
		if inner, ok := wrapped["$numberLong"]; ok {
			var s string
			if err := json.Unmarshal(inner, &s); err != nil {
				return time.Time{}, fmt.Errorf("invalid $numberLong value: %w", err)
			}
			return parseEpochMillis(s)
		}
		return time.Time{}, fmt.Errorf("unsupported date object: expected $date")
	default:
		return parseEpochMillis(string(data))
	}
}

func parseDateString(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid date %q: expected RFC3339 or YYYY-MM-DD", s)
}

func parseEpochMillis(s string) (time.Time, error) {
	ms, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: expected epoch milliseconds", s)
	}
	return time.UnixMilli(ms).UTC(), nil
}
