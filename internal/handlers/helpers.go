package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/clearboard/clearboard-backend/internal/requestdata"
)

// currentUserID reads the identity the auth middleware attached. A
// missing identity means the route was wired outside the protected
// group; respond 401 and signal the caller to bail.
func currentUserID(c *gin.Context) (uuid.UUID, bool) {
	rd := requestdata.GetRequestData(c.Request.Context())
	if rd == nil || rd.UserID == uuid.Nil {
		RespondError(c, http.StatusUnauthorized, "unauthenticated", fmt.Errorf("missing or invalid token"))
		return uuid.Nil, false
	}
	return rd.UserID, true
}

func pathUUID(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_id", fmt.Errorf("%s is not a valid id", name))
		return uuid.Nil, false
	}
	return id, true
}

// dateRange parses optional start_date/end_date query params (RFC 3339
// or YYYY-MM-DD).
func dateRange(c *gin.Context) (from, to *time.Time, err error) {
	from, err = parseDateParam(c.Query("start_date"))
	if err != nil {
		return nil, nil, err
	}
	to, err = parseDateParam(c.Query("end_date"))
	if err != nil {
		return nil, nil, err
	}
	return from, to, nil
}

func parseDateParam(raw string) (*time.Time, error) {
	if raw == "" {
		return nil, nil
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, raw); err == nil {
			t = t.UTC()
			return &t, nil
		}
	}
	return nil, fmt.Errorf("invalid date %q", raw)
}
