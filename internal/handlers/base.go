package handlers

import (
	"net/http"
	"strconv"

	"newsline/internal/logger"
	"newsline/internal/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// fail maps any error onto the status + {"msg"} envelope. Unclassified
// errors are logged here and surface as a bare 500.
func fail(c *gin.Context, err error) {
	reqErr := services.Normalize(err)
	if reqErr.Status == http.StatusInternalServerError {
		logger.L.Error("request failed",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Error(err))
	}
	c.JSON(reqErr.Status, gin.H{"msg": reqErr.Msg})
}

func badRequest(c *gin.Context) {
	c.JSON(http.StatusBadRequest, gin.H{"msg": "Bad request"})
}

// pathID parses a numeric path parameter. A malformed identifier is a 400,
// never a 404.
func pathID(c *gin.Context, name string) (int, bool) {
	id, err := strconv.Atoi(c.Param(name))
	if err != nil {
		badRequest(c)
		return 0, false
	}
	return id, true
}

// positiveQueryInt parses an optional query integer that must be >= 1.
func positiveQueryInt(c *gin.Context, key string, fallback int) (int, bool) {
	raw := c.Query(key)
	if raw == "" {
		return fallback, true
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		badRequest(c)
		return 0, false
	}
	return n, true
}

// voteDelta binds the {inc_votes} body. A non-object body, a missing key or
// a non-numeric value all reject; extra keys are ignored.
func voteDelta(c *gin.Context) (int, bool) {
	var body struct {
		IncVotes *int `json:"inc_votes"`
	}
	if err := c.ShouldBindJSON(&body); err != nil || body.IncVotes == nil {
		badRequest(c)
		return 0, false
	}
	return *body.IncVotes, true
}
