package mongodb

import (
	"errors"
	"regexp"

	"go.mongodb.org/mongo-driver/mongo"

	"portfolio-backend/pkg/response"
)

// dupIndexRe extracts the field name from an E11000 duplicate key message,
// which names the violated index as "<field>_1".
var dupIndexRe = regexp.MustCompile(`index: ([A-Za-z]+)_1`)

// classify maps a driver error onto the closed error set consumed by the
// response mapper. Order matters: a duplicate-key write error is still a
// mongo.WriteException underneath, so it must be recognized before any
// generic fallthrough.
func classify(err error) error {
	if err == nil {
		return nil
	}
	if mongo.IsDuplicateKeyError(err) {
		return &response.DuplicateError{Field: duplicateField(err)}
	}
	if errors.Is(err, mongo.ErrNoDocuments) {
		return response.ErrNotFound
	}
	if mongo.IsTimeout(err) || mongo.IsNetworkError(err) {
		return response.ErrUnavailable
	}
	return err
}

func duplicateField(err error) string {
	if m := dupIndexRe.FindStringSubmatch(err.Error()); len(m) == 2 {
		return m[1]
	}
	return "key"
}
