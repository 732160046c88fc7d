package get_provider_missions

import (
	"net/url"
	"strconv"
	"time"

	"github.com/pawfinder/PF-SchedulingService/internal/domain"
	"github.com/pawfinder/PF-SchedulingService/internal/service/missions/models"
	"github.com/pawfinder/PF-SchedulingService/pkg/ptr"
)

// parseQuery reads the optional filters from the query string.
func parseQuery(providerID int64, query url.Values) (*models.GetProviderMissionsRequest, error) {
	req := &models.GetProviderMissionsRequest{ProviderID: providerID}

	if raw := query.Get("categoryTypeId"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return nil, err
		}
		req.CategoryTypeID = ptr.Ptr(id)
	}

	if raw := query.Get("clientId"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return nil, err
		}
		req.ClientID = ptr.Ptr(id)
	}

	if raw := query.Get("startDate"); raw != "" {
		date, err := time.Parse(domain.DateFormat, raw)
		if err != nil {
			return nil, err
		}
		req.StartDate = ptr.Ptr(date)
	}

	if raw := query.Get("endDate"); raw != "" {
		date, err := time.Parse(domain.DateFormat, raw)
		if err != nil {
			return nil, err
		}
		req.EndDate = ptr.Ptr(date)
	}

	if raw := query.Get("status"); raw != "" {
		req.Status = ptr.Ptr(raw)
	}

	if raw := query.Get("includeInactive"); raw != "" {
		include, err := strconv.ParseBool(raw)
		if err != nil {
			return nil, err
		}
		req.IncludeInactive = include
	}

	return req, nil
}
