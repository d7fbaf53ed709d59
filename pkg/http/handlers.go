package http

import (
	"net/http"
	"sort"
	"strconv"
	"strings"
	"time"

	z "github.com/Oudwins/zog"
	"github.com/Oudwins/zog/zhttp"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"liyu1981.xyz/energy-meter-service/pkg/common"
	"liyu1981.xyz/energy-meter-service/pkg/meter"
	"liyu1981.xyz/energy-meter-service/pkg/models"
)

const defaultReadingsLimit = 50

// ReadingRequest is one posted meter sample. All fields are optional.
type ReadingRequest struct {
	Vol       *float64 `json:"vol"`
	Current   *float64 `json:"current"`
	Power     *float64 `json:"power"`
	Energy    *float64 `json:"energy"`
	Frequency *float64 `json:"frequency"`
	Pf        *float64 `json:"pf"`
	DeviceID  *string  `json:"deviceId"`
	Location  *string  `json:"location"`
}

var readingRequestSchema = z.Struct(z.Shape{
	"vol":       z.Ptr(z.Float64()),
	"current":   z.Ptr(z.Float64()),
	"power":     z.Ptr(z.Float64()),
	"energy":    z.Ptr(z.Float64()),
	"frequency": z.Ptr(z.Float64()),
	"pf":        z.Ptr(z.Float64()),
	"deviceId":  z.Ptr(z.String()),
	"location":  z.Ptr(z.String()),
})

func (req *ReadingRequest) toReading() *models.EnergyReading {
	return &models.EnergyReading{
		Voltage:     req.Vol,
		Current:     req.Current,
		Power:       req.Power,
		Energy:      req.Energy,
		Frequency:   req.Frequency,
		PowerFactor: req.Pf,
		DeviceID:    req.DeviceID,
		Location:    req.Location,
	}
}

// validationDetails flattens an issue map into one "field: messages" line
// per offending field, sorted by field name. The "$first" alias key
// repeats another entry and is skipped.
func validationDetails(errs z.ZogIssueMap) []string {
	sanitized := z.Issues.SanitizeMap(errs)
	fields := make([]string, 0, len(sanitized))
	for field := range sanitized {
		if field == "$first" {
			continue
		}
		fields = append(fields, field)
	}
	sort.Strings(fields)
	return common.Mapper(fields, func(field string) string {
		return field + ": " + strings.Join(sanitized[field], "; ")
	})
}

func (rs *RestfulServer) PostReading(c *gin.Context) {
	var req ReadingRequest
	if errs := readingRequestSchema.Parse(zhttp.Request(c.Request), &req); errs != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Validation failed",
			"details": validationDetails(errs),
		})
		return
	}

	stored, err := rs.Meter.Reading.InsertReading(c.Request.Context(), req.toReading())
	if err != nil {
		common.GetLoggerWith(common.LoggerNameRestfulServer).Error("failed to save reading", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Failed to save reading",
			"details": err.Error(),
		})
		return
	}

	resp := gin.H{
		"message":    "Reading saved successfully",
		"data":       stored,
		"insertedId": stored.ID.Hex(),
		"timestamp":  stored.Timestamp,
	}
	if stored.Power != nil && stored.PowerFactor != nil {
		// zero power factor: quotient undefined, key kept with a null value
		if ap, ok := stored.ApparentPower(); ok {
			resp["apparentPower"] = ap
		} else {
			resp["apparentPower"] = nil
		}
	}
	c.JSON(http.StatusCreated, resp)
}

func (rs *RestfulServer) GetStatus(c *gin.Context) {
	status, lastErr := rs.Status.Snapshot()

	mongodb := gin.H{
		"status":    status,
		"database":  rs.DatabaseConfigured,
		"timestamp": time.Now().Format(time.RFC3339),
	}
	if lastErr != "" {
		mongodb["error"] = lastErr
	} else {
		mongodb["error"] = nil
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Energy Meter API is running",
		"mongodb": mongodb,
	})
}

func (rs *RestfulServer) GetReadings(c *gin.Context) {
	query := meter.ReadingQuery{
		DeviceID: c.Query("deviceId"),
		Limit:    parseLimit(c.Query("limit")),
	}

	if raw := c.Query("startDate"); raw != "" {
		t, err := parseDate(raw)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{
				"error":   "Failed to fetch readings",
				"details": err.Error(),
			})
			return
		}
		query.Start = &t
	}
	if raw := c.Query("endDate"); raw != "" {
		t, err := parseDate(raw)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{
				"error":   "Failed to fetch readings",
				"details": err.Error(),
			})
			return
		}
		query.End = &t
	}

	readings, err := rs.Meter.Reading.FindReadings(c.Request.Context(), query)
	if err != nil {
		common.GetLoggerWith(common.LoggerNameRestfulServer).Error("failed to fetch readings", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Failed to fetch readings",
			"details": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Readings fetched successfully",
		"count":   len(readings),
		"data":    readings,
	})
}

// parseLimit coerces the limit query parameter; anything unparseable or
// non-positive falls back to the default cap.
func parseLimit(raw string) int64 {
	if raw == "" {
		return defaultReadingsLimit
	}
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || n <= 0 {
		return defaultReadingsLimit
	}
	return n
}

// parseDate accepts RFC 3339 timestamps or plain calendar dates.
func parseDate(raw string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", raw)
}
