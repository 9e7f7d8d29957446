package types

import (
	"encoding/json"
	"fmt"
	"reflect"
)

const (
	KeyRevenue     = "af_revenue"
	KeyContentType = "af_content_type"
	KeyContentId   = "af_content_id"
	KeyQuantity    = "af_quantity"
)

// EventValue is the rich in-app event value for purchases and similar events.
// AppsFlyer requires every value to be a JSON string, so Revenue, ContentId
// and Quantity accept anything fmt.Sprint can render.
//
// Usage Example:
//
//	req := types.EventTrackRequest{
//	    AppsFlyerId: "1415211453000-6513894",
//	    EventName:   "af_purchase",
//	    EventValue: types.EventValue{
//	        Revenue:     6,
//	        ContentType: "wallets",
//	        ContentId:   15854,
//	        Quantity:    1,
//	    },
//	}
type EventValue struct {
	Revenue     any
	ContentType string
	ContentId   any

	// Quantity is optional; nil, "" and 0 leave af_quantity out.
	Quantity any
}

// AsMap returns the af_* fields with every value converted to a string.
func (v EventValue) AsMap() map[string]string {
	result := map[string]string{
		KeyRevenue:     fmt.Sprint(v.Revenue),
		KeyContentType: v.ContentType,
		KeyContentId:   fmt.Sprint(v.ContentId),
	}
	if !isZero(v.Quantity) {
		result[KeyQuantity] = fmt.Sprint(v.Quantity)
	}
	return result
}

// Render returns AsMap as a compact JSON string.
func (v EventValue) Render() (string, error) {
	data, err := json.Marshal(v.AsMap())
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func (v EventValue) renderEventValue() (string, error) {
	return v.Render()
}

func isZero(x any) bool {
	if x == nil {
		return true
	}
	return reflect.ValueOf(x).IsZero()
}
