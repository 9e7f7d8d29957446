package api

import (
	"context"
	"net/http"
	"strconv"
	"strings"

	"github.com/block/appsflyer-go/errors"
	"github.com/block/appsflyer-go/logger"
	"github.com/block/appsflyer-go/types"
)

var (
	PathInAppEvent = "inappevent/{appId}"
)

// Events implements the AppsFlyer server-to-server in-app events API,
// See: https://support.appsflyer.com/hc/en-us/articles/207034486-Server-to-server-events-API
//
// From AppsFlyer API Docs:
// The API responds with 200 even when the event is rejected (e.g. a wrong
// application id), so a 200 status does not mean the event was recorded.
type Events struct {
	applicationId string
	api           *apiClient
}

func NewEventsApi(
	applicationId string,
	developerKey string,
	httpClient *http.Client,
	logger logger.Logger,
) *Events {
	if _, err := strconv.Atoi(strings.TrimSpace(applicationId)); err == nil {
		logger.Warnf(
			"AppsFlyer: if you're sending events for an iOS app, application id should be id%s, not %s; "+
				"AppsFlyer will still respond with 200 but will drop the events",
			applicationId, applicationId,
		)
	}

	return &Events{
		applicationId: applicationId,
		api:           newApiClient(developerKey, httpClient, logger),
	}
}

// Url returns the endpoint events of this application are posted to.
func (e *Events) Url() string {
	return baseUrl + "/" + strings.Replace(PathInAppEvent, "{appId}", e.applicationId, 1)
}

// Track sends one in-app event and returns the AppsFlyer response as is,
// for any status code. Its Body can be read again by the caller.
// An error is returned only when the request could not be built or sent.
func (e *Events) Track(req types.EventTrackRequest) (*http.Response, error) {
	return e.TrackContext(context.Background(), req)
}

func (e *Events) TrackContext(ctx context.Context, req types.EventTrackRequest) (*http.Response, error) {
	payload, err := req.Payload()
	if err != nil {
		return nil, &errors.ApiError{
			Stage:     errors.STAGE_BEFORE_REQUEST,
			Type:      errors.TYPE_JSON_PARSE,
			SourceErr: err,
		}
	}

	res, apiErr := e.api.postJson(ctx, e.Url(), &payload)
	return toNilErr(res, apiErr)
}
