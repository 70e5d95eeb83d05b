package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"github.com/printhaus/shopapi/pkg/errors"
)

// parseID converts a path or body id into an ObjectID; malformed hex names
// nothing, so it is reported as not-found.
func parseID(id, resource string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, &errors.ErrNotFound{Resource: resource, ID: id}
	}
	return oid, nil
}

// respondError maps the service error taxonomy onto HTTP statuses. Anything
// unrecognized is a 500 and gets logged; the taxonomy errors are expected
// outcomes and carry their own user-facing message.
func respondError(c *gin.Context, logger *zap.Logger, err error) {
	switch e := err.(type) {
	case *errors.ErrNotFound:
		c.JSON(http.StatusNotFound, gin.H{"error": e.Error()})
	case *errors.ErrCapacityExceeded:
		c.JSON(http.StatusConflict, gin.H{
			"error":     e.Error(),
			"available": e.Available,
		})
	case *errors.ErrValidation:
		body := gin.H{"error": e.Error()}
		if len(e.Fields) > 0 {
			body["fields"] = e.Fields
		}
		c.JSON(http.StatusBadRequest, body)
	case *errors.ErrUnauthorized:
		c.JSON(http.StatusUnauthorized, gin.H{"error": e.Error()})
	case *errors.ErrUpstream:
		logger.Error("Upstream call failed", zap.String("service", e.Service), zap.Error(e.Err))
		c.JSON(http.StatusBadGateway, gin.H{"error": e.Error()})
	default:
		logger.Error("Unhandled error", zap.Error(err),
			zap.String("path", c.Request.URL.Path))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}
