package appsflyer_go

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"reflect"
	"testing"
	"time"

	"github.com/block/appsflyer-go/logger"
	"github.com/block/appsflyer-go/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	appId  = "id123456"
	devKey = "__DEV__KEY__"
)

func Test_newClient(t *testing.T) {
	c := NewClient(appId, devKey)
	assert.NotNil(t, c)
	assert.Equal(t, 10*time.Second, c.httpClient.Timeout)
	assert.Equal(t, http.DefaultTransport, c.httpClient.Transport)
	assert.Equal(t, "https://api2.appsflyer.com/inappevent/id123456", c.Events().Url())
}

func Test_newClient_opts(t *testing.T) {
	tt := &fakeTransport{}
	c := NewClient(
		appId,
		devKey,
		WithTimeout(1*time.Second),
		WithTransport(tt),
		WithLogger(logger.Noop{}),
	)
	assert.Equal(t, 1*time.Second, c.httpClient.Timeout)
	assert.Equal(t, tt, c.httpClient.Transport)
}

func Test_newClient_init_all_apis(t *testing.T) {
	c := NewClient(appId, devKey)
	values := reflect.ValueOf(*c)
	fieldTypes := reflect.TypeOf(*c)
	for i := range values.NumField() {
		field := values.Field(i)
		fieldName := fieldTypes.Field(i).Name
		if field.IsNil() {
			assert.Fail(t, fmt.Sprintf("%s is not initialized", fieldName))
		}
	}
}

func Test_newClient_warns_on_numeric_app_id(t *testing.T) {
	var buf bytes.Buffer
	_ = NewClient("123456", devKey, WithLogger(logger.NewWriter(&buf)))
	assert.Contains(t, buf.String(), "[WARN]")
	assert.Contains(t, buf.String(), "should be id123456, not 123456")

	buf.Reset()
	_ = NewClient("id123456", devKey, WithLogger(logger.NewWriter(&buf)))
	assert.Empty(t, buf.String())
}

func Test_client_Track(t *testing.T) {
	tt := &fakeTransport{status: 200, body: "ok"}
	var buf bytes.Buffer
	c := NewClient(appId, devKey, WithTransport(tt), WithLogger(logger.NewWriter(&buf)))

	res, err := c.Events().Track(types.EventTrackRequest{
		AppsFlyerId:   "1415211453000-6513894",
		EventName:     "af_purchase",
		DeviceIp:      "1.2.3.4",
		EventCurrency: "EUR",
		EventValue: types.EventValue{
			Revenue:     "6",
			ContentType: "wallets",
			ContentId:   "15854",
		},
	})
	require.NoError(t, err)
	assert.Equal(t, 200, res.StatusCode)

	assert.Equal(t, "https://api2.appsflyer.com/inappevent/id123456", tt.req.URL.String())
	assert.Equal(t, devKey, tt.req.Header.Get("authentication"))

	var sent map[string]string
	require.NoError(t, json.Unmarshal(tt.sent, &sent))
	assert.Equal(t, "1.2.3.4", sent["ip"])
	assert.Equal(t, "EUR", sent["eventCurrency"])
	assert.Equal(t, "true", sent["af_events_api"])
	assert.Equal(t, `{"af_content_id":"15854","af_content_type":"wallets","af_revenue":"6"}`, sent["eventValue"])

	assert.Equal(t, "[DEBUG] Got AppsFlyer response: <200> ok\n", buf.String())
}

func Test_config_WithTransport(t *testing.T) {
	c := config{}
	WithTransport(&fakeTransport{})(&c)
	assert.NotNil(t, c.transport)
}

func Test_config_WithTimeout(t *testing.T) {
	c := config{}
	WithTimeout(2 * time.Second)(&c)
	assert.Equal(t, 2*time.Second, c.timeout)
}

func Test_config_WithLogger(t *testing.T) {
	c := config{}
	WithLogger(logger.NewStdOut())(&c)
	assert.NotNil(t, c.logger)
}

type fakeTransport struct {
	status int
	body   string

	req  *http.Request
	sent []byte
}

func (f *fakeTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	f.req = req
	if req.Body != nil {
		f.sent, _ = io.ReadAll(req.Body)
	}
	return &http.Response{
		StatusCode: f.status,
		Body:       io.NopCloser(bytes.NewBufferString(f.body)),
	}, nil
}

var _ http.RoundTripper = &fakeTransport{}
