package types

import (
	"encoding/json"
	"time"
)

const (
	// EventsApiFlag marks the payload as a server-to-server event.
	EventsApiFlag = "true"

	eventTimeLayout      = "2006-01-02 15:04:05"
	eventTimeMicroLayout = "2006-01-02 15:04:05.000000"
)

// EventValueData is what can be sent as eventValue:
// EventValueText, EventValueFields or EventValue.
type EventValueData interface {
	renderEventValue() (string, error)
}

// EventValueText is sent verbatim, e.g. a JSON string prepared by the caller.
type EventValueText string

func (t EventValueText) renderEventValue() (string, error) {
	return string(t), nil
}

// EventValueFields is serialized to a compact JSON string.
// AppsFlyer expects string values.
type EventValueFields map[string]any

func (f EventValueFields) renderEventValue() (string, error) {
	if len(f) == 0 {
		return "", nil
	}
	data, err := json.Marshal(map[string]any(f))
	if err != nil {
		return "", err
	}
	return string(data), nil
}

var (
	_ EventValueData = EventValueText("")
	_ EventValueData = EventValueFields{}
	_ EventValueData = EventValue{}
)

// EventTime is the moment the event happened:
// EventTimeText, or a timestamp built with EventTimeAt / EventTimeIn.
// When unset, AppsFlyer uses the time the request was received.
type EventTime interface {
	formatEventTime() string
}

// EventTimeText is sent verbatim.
type EventTimeText string

func (t EventTimeText) formatEventTime() string {
	return string(t)
}

type eventTimeInstant struct {
	t   time.Time
	loc *time.Location
}

// EventTimeAt formats t in UTC, the timezone AppsFlyer expects.
func EventTimeAt(t time.Time) EventTime {
	return eventTimeInstant{t: t, loc: time.UTC}
}

// EventTimeIn formats t in loc.
func EventTimeIn(t time.Time, loc *time.Location) EventTime {
	if loc == nil {
		loc = time.UTC
	}
	return eventTimeInstant{t: t, loc: loc}
}

func (i eventTimeInstant) formatEventTime() string {
	if i.t.IsZero() {
		return ""
	}
	t := i.t.In(i.loc)
	if t.Nanosecond()/int(time.Microsecond) == 0 {
		return t.Format(eventTimeLayout)
	}
	return t.Format(eventTimeMicroLayout)
}

type EventTrackRequest struct {
	// AppsFlyerId attributes the event to a media source and campaign.
	AppsFlyerId string
	EventName   string

	Idfa          string
	AdvertisingId string
	// DeviceIp determines the event country. Without it the country is N/A.
	DeviceIp       string
	CustomerUserId string
	EventTime      EventTime
	EventValue     EventValueData
	EventCurrency  string
}

// EventPayload is the JSON body of POST /inappevent/{appId}.
// Optional fields are omitted, never sent as null or "".
type EventPayload struct {
	AppsFlyerId    string `json:"appsflyer_id"`
	EventName      string `json:"eventName"`
	EventValue     string `json:"eventValue"`
	EventsApi      string `json:"af_events_api"`
	AdvertisingId  string `json:"advertising_id,omitempty"`
	CustomerUserId string `json:"customer_user_id,omitempty"`
	Idfa           string `json:"idfa,omitempty"`
	Ip             string `json:"ip,omitempty"`
	EventCurrency  string `json:"eventCurrency,omitempty"`
	EventTime      string `json:"eventTime,omitempty"`
}

// Payload builds the body sent to AppsFlyer.
// The only error comes from serializing EventValue.
func (r EventTrackRequest) Payload() (EventPayload, error) {
	p := EventPayload{
		AppsFlyerId:    r.AppsFlyerId,
		EventName:      r.EventName,
		EventsApi:      EventsApiFlag,
		AdvertisingId:  r.AdvertisingId,
		CustomerUserId: r.CustomerUserId,
		Idfa:           r.Idfa,
		Ip:             r.DeviceIp,
		EventCurrency:  r.EventCurrency,
	}

	if r.EventTime != nil {
		p.EventTime = r.EventTime.formatEventTime()
	}

	if r.EventValue != nil {
		value, err := r.EventValue.renderEventValue()
		if err != nil {
			return p, err
		}
		p.EventValue = value
	}

	return p, nil
}
