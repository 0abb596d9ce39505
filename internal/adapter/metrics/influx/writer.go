package influx

import (
	"context"
	"fmt"
	"time"

	influxdb2 "github.com/influxdata/influxdb-client-go/v2"
	"github.com/influxdata/influxdb-client-go/v2/api"
	"github.com/influxdata/influxdb-client-go/v2/api/write"

	"citypulse/config"
	"citypulse/internal/domain/citizen"
)

const connectTimeout = 10 * time.Second

// Writer forwards scheduling KPIs to an InfluxDB v2 bucket. Writes are
// batched and asynchronous; a lost point is acceptable for this data.
type Writer struct {
	client   influxdb2.Client
	writeAPI api.WriteAPI
}

// Connect dials the configured InfluxDB server and verifies it responds.
func Connect(cfg config.MetricsConfig) (*Writer, error) {
	client := influxdb2.NewClient(cfg.URL, cfg.Token)

	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()
	healthy, err := client.Ping(ctx)
	if err != nil {
		client.Close()
		return nil, fmt.Errorf("influx ping: %w", err)
	}
	if !healthy {
		client.Close()
		return nil, fmt.Errorf("influx server not healthy")
	}

	return &Writer{
		client:   client,
		writeAPI: client.WriteAPI(cfg.Org, cfg.Bucket),
	}, nil
}

func (w *Writer) RecordTransition(state citizen.ResidentState) {
	w.point("transition", map[string]string{"state": state.String()})
}

func (w *Writer) RecordMoveFailure() {
	w.point("move_failure", nil)
}

func (w *Writer) RecordRedirect() {
	w.point("redirect", nil)
}

func (w *Writer) point(kind string, tags map[string]string) {
	if tags == nil {
		tags = map[string]string{}
	}
	tags["kind"] = kind
	w.writeAPI.WritePoint(write.NewPoint(
		"scheduler_events",
		tags,
		map[string]interface{}{"count": 1},
		time.Now(),
	))
}

// Close flushes pending points and shuts the client down.
func (w *Writer) Close() {
	w.writeAPI.Flush()
	w.client.Close()
}
