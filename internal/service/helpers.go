package service

import (
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/printhaus/shopapi/pkg/errors"
)

// parseObjectID converts a path/body id into an ObjectID, reporting a bad hex
// string as not-found rather than a validation error: from the caller's point
// of view a malformed id names nothing.
func parseObjectID(id, resource string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, &errors.ErrNotFound{Resource: resource, ID: id}
	}
	return oid, nil
}
