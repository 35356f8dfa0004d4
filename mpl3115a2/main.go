package main

import (
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	humanize "github.com/dustin/go-humanize"
	"github.com/kidoman/embd"
	_ "github.com/kidoman/embd/host/all"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/cgxeiji/mpl3115a2"
	"github.com/cgxeiji/mpl3115a2/embdbus"
	"github.com/cgxeiji/mpl3115a2/metrics"
)

var (
	busName   = flag.String("bus", "", "periph I²C bus name (\"/dev/i2c-1\", \"I2C1\", \"1\"); empty selects the first bus")
	addr      = flag.Uint("addr", mpl3115a2.Addr, "I²C address of the sensor")
	driver    = flag.String("driver", "periph", "bus driver: periph or embd")
	embdBus   = flag.Uint("embd-bus", 1, "embd I²C bus number")
	interval  = flag.Duration("interval", 500*time.Millisecond, "time between readings")
	altimeter = flag.Bool("altimeter", false, "read altitude from the device in altimeter mode")
	active    = flag.Bool("active", false, "keep the device in active mode instead of standby")
	listen    = flag.String("metrics", "", "serve Prometheus metrics on this address (e.g. \":9110\")")
)

func open() (*mpl3115a2.Device, error) {
	var opts []mpl3115a2.Option
	if *active {
		opts = append(opts, mpl3115a2.PowerMode(mpl3115a2.Active))
	}

	switch *driver {
	case "periph":
		return mpl3115a2.Open(*busName, uint16(*addr), opts...)
	case "embd":
		if err := embd.InitI2C(); err != nil {
			return nil, fmt.Errorf("could not initialize embd I2C: %w", err)
		}
		bus := embdbus.New(embd.NewI2CBus(byte(*embdBus)), byte(*addr))
		d, err := mpl3115a2.New(bus, opts...)
		if err != nil {
			bus.Close()
			return nil, err
		}
		return d, nil
	}
	return nil, fmt.Errorf("unknown driver %q", *driver)
}

func main() {
	flag.Parse()

	sensor, err := open()
	if err != nil {
		log.Fatal(err)
	}
	defer sensor.Close()

	if *altimeter {
		if err := sensor.SetMode(mpl3115a2.Altimeter); err != nil {
			log.Fatal(err)
		}
		log.Printf("MPL3115A2 detected, reading altitude every %v", *interval)
		loop(func() {
			alt, err := sensor.ReadAltitude()
			if err != nil {
				log.Print(err)
				return
			}
			fmt.Printf("\ralt = %7.1fm ", alt)
		})
		return
	}

	c := metrics.New(sensor, "mpl3115a2")
	if *listen != "" {
		prometheus.MustRegister(c)
		http.Handle("/metrics", promhttp.Handler())
		go func() {
			log.Fatal(http.ListenAndServe(*listen, nil))
		}()
		log.Printf("serving metrics on %s/metrics", *listen)
	}

	log.Printf("MPL3115A2 detected, reading every %v", *interval)
	loop(func() {
		m, err := c.Read()
		if err != nil {
			log.Print(err)
			return
		}
		fmt.Printf("\rtemp = %5.2f°C  press = %s  alt = %7.1fm ",
			m.Temperature, humanize.SIWithDigits(m.Pressure, 2, "Pa"), m.Altitude)
	})
}

// loop calls read every interval until interrupted.
func loop(read func()) {
	t := time.NewTicker(*interval)
	defer t.Stop()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)

	for {
		read()
		select {
		case <-t.C:
		case <-sig:
			fmt.Println()
			return
		}
	}
}
