package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"

	"github.com/block/appsflyer-go/errors"
	"github.com/block/appsflyer-go/logger"
)

const (
	baseUrl = "https://api2.appsflyer.com"

	headerAuthentication = "authentication"
	headerContentType    = "Content-Type"
	contentTypeJson      = "application/json"
)

type apiClient struct {
	developerKey string
	httpClient   *http.Client
	logger       logger.Logger
}

func newApiClient(
	developerKey string,
	httpClient *http.Client,
	logger logger.Logger,
) *apiClient {
	return &apiClient{
		developerKey: developerKey,
		httpClient:   httpClient,
		logger:       logger,
	}
}

// postJson sends reqData as JSON and returns the response whatever its status.
// The body is read once for logging and then rewound, so callers can read it again.
func (c *apiClient) postJson(
	ctx context.Context,
	endpoint string,
	reqData any,
) (*http.Response, *errors.ApiError) {
	data, jsonErr := json.Marshal(reqData)
	if jsonErr != nil {
		return nil, &errors.ApiError{
			Stage:     errors.STAGE_BEFORE_REQUEST,
			Type:      errors.TYPE_JSON_PARSE,
			SourceErr: jsonErr,
		}
	}

	req, err := http.NewRequestWithContext(
		ctx, http.MethodPost, endpoint, bytes.NewBuffer(data),
	)
	if err != nil {
		return nil, &errors.ApiError{
			Stage:     errors.STAGE_BEFORE_REQUEST,
			Type:      errors.TYPE_REQUEST_PREP,
			SourceErr: err,
		}
	}

	req.Header.Set(headerAuthentication, c.developerKey)
	req.Header.Set(headerContentType, contentTypeJson)

	res, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &errors.ApiError{
			Stage:     errors.STAGE_REQUEST,
			Type:      errors.TYPE_IO,
			SourceErr: err,
		}
	}

	var body []byte
	if res.Body != nil {
		body, err = io.ReadAll(res.Body)
		_ = res.Body.Close()
		if err != nil {
			return res, &errors.ApiError{
				Stage:          errors.STAGE_AFTER_REQUEST,
				Type:           errors.TYPE_IO,
				SourceErr:      err,
				Body:           body,
				HttpStatusCode: res.StatusCode,
			}
		}
	}
	res.Body = io.NopCloser(bytes.NewReader(body))

	c.logger.Debugf("Got AppsFlyer response: <%d> %s", res.StatusCode, body)

	return res, nil
}

// toNilErr converts a *errors.ApiError type to be a true nil interface.
// Internally, a Go interface has a Type and Value.
// An interface value is nil only if the V and T are both unset.
// See: https://go.dev/doc/faq#nil_error
func toNilErr[T any](r T, e *errors.ApiError) (T, error) {
	if e != nil {
		return r, e
	}
	return r, nil
}
