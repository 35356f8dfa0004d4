// Package metrics exports MPL3115A2 readings as Prometheus metrics.
package metrics

import (
	"sync"

	"github.com/cgxeiji/mpl3115a2"
	"github.com/prometheus/client_golang/prometheus"
)

// Reader takes a single measurement. *mpl3115a2.Device implements it.
type Reader interface {
	Read() (mpl3115a2.Measurement, error)
}

// Collector reads the sensor on every scrape. All access to the underlying
// Reader goes through the collector lock, so other goroutines should read
// through Collector.Read instead of the device.
type Collector struct {
	mu     sync.Mutex
	reader Reader

	temperature *prometheus.Desc
	pressure    *prometheus.Desc
	altitude    *prometheus.Desc
	readErrors  prometheus.Counter
}

// New returns a Collector for r. Metric names are prefixed with namespace if
// it is not empty.
func New(r Reader, namespace string) *Collector {
	return &Collector{
		reader: r,
		temperature: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "", "temperature_celsius"),
			"Current temperature.",
			nil, nil,
		),
		pressure: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "", "pressure_pascals"),
			"Current atmospheric pressure.",
			nil, nil,
		),
		altitude: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "", "altitude_meters"),
			"Altitude derived from the current pressure.",
			nil, nil,
		),
		readErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "read_errors_total",
			Help:      "Failed sensor reads.",
		}),
	}
}

// Read takes a measurement while holding the collector lock.
func (c *Collector) Read() (mpl3115a2.Measurement, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	m, err := c.reader.Read()
	if err != nil {
		c.readErrors.Inc()
	}
	return m, err
}

// Describe implements prometheus.Collector.
func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.temperature
	ch <- c.pressure
	ch <- c.altitude
	c.readErrors.Describe(ch)
}

// Collect implements prometheus.Collector. Gauges are only sent when the read
// succeeds.
func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	m, err := c.Read()
	if err == nil {
		ch <- prometheus.MustNewConstMetric(c.temperature, prometheus.GaugeValue, m.Temperature)
		ch <- prometheus.MustNewConstMetric(c.pressure, prometheus.GaugeValue, m.Pressure)
		ch <- prometheus.MustNewConstMetric(c.altitude, prometheus.GaugeValue, m.Altitude)
	}
	c.readErrors.Collect(ch)
}
