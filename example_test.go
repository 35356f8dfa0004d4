package mpl3115a2_test

import (
	"fmt"
	"log"

	"github.com/cgxeiji/mpl3115a2"
	"periph.io/x/periph/conn/physic"
)

func Example() {
	// Open the first available I²C bus and check the device.
	dev, err := mpl3115a2.Open("", mpl3115a2.Addr)
	if err != nil {
		log.Fatal(err)
	}
	defer dev.Close()

	m, err := dev.Read()
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("%.2f°C %.2fPa %.1fm\n", m.Temperature, m.Pressure, m.Altitude)
}

func ExampleDevice_Sense() {
	dev, err := mpl3115a2.Open("", 0)
	if err != nil {
		log.Fatal(err)
	}
	defer dev.Close()

	var e physic.Env
	if err := dev.Sense(&e); err != nil {
		log.Fatal(err)
	}
	fmt.Printf("%8s %10s\n", e.Temperature, e.Pressure)
}

func ExampleDevice_ReadAltitude() {
	dev, err := mpl3115a2.Open("", 0, mpl3115a2.OutputMode(mpl3115a2.Altimeter))
	if err != nil {
		log.Fatal(err)
	}
	defer dev.Close()

	alt, err := dev.ReadAltitude()
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("%.1fm\n", alt)
}
