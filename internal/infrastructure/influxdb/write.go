package influxdb

import (
	"time"

	"github.com/influxdata/influxdb-client-go/v2/api/write"
)

// WriteLightState records a light resource's state after a successful write
// operation.
//
// The write is non-blocking; points are batched and flushed asynchronously.
//
// Parameters:
//   - uri: resource URI the state belongs to (e.g. "/light/1")
//   - switchOn: current switch state
//   - level: current power level
func (c *Client) WriteLightState(uri string, switchOn bool, level int64) {
	if !c.IsConnected() {
		return
	}

	point := write.NewPoint(
		"light_state",
		map[string]string{
			"resource": uri,
		},
		map[string]interface{}{
			"switch_on": switchOn,
			"level":     level,
		},
		time.Now(),
	)

	c.writeAPI.WritePoint(point)
}

// WriteCloudEvent records a cloud session condition transition, one point
// per decoded condition.
func (c *Client) WriteCloudEvent(condition string) {
	if !c.IsConnected() {
		return
	}

	point := write.NewPoint(
		"cloud_session",
		map[string]string{
			"condition": condition,
		},
		map[string]interface{}{
			"count": 1,
		},
		time.Now(),
	)

	c.writeAPI.WritePoint(point)
}
