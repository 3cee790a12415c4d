package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/BeatGlow/console"
)

func main() {
	deviceFlag := flag.String("port", console.DefaultCRTCConfig.Device, "I/O port device")
	indexFlag := flag.Uint("index", uint(console.DefaultCRTCConfig.Index), "CRTC index port")
	xFlag := flag.Int("x", 0, "Cursor column")
	yFlag := flag.Int("y", 0, "Cursor row")
	flag.Parse()

	c, err := console.OpenCRTC(&console.CRTCConfig{
		Device: *deviceFlag,
		Index:  uint16(*indexFlag),
	})
	if err != nil {
		log.Fatalln("open failed: ", err)
	}
	fmt.Println("connected using", c)
	if err = c.MoveCursor(uint16(*yFlag*console.Width + *xFlag)); err != nil {
		log.Fatalln("move cursor failed: ", err)
	}
	if err = c.Close(); err != nil {
		log.Fatalln("close failed: ", err)
	}
}
