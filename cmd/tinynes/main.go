// Command tinynes loads an iNES cartridge and runs it until the screen
// window is closed.
package main

import (
	"flag"
	"io/ioutil"

	"github.com/golang/glog"

	"github.com/gones-project/tinynes/nes"
	"github.com/gones-project/tinynes/screen"
)

const (
	windowWidth  = 256
	windowHeight = 240
)

func main() {
	flag.Parse()
	defer glog.Flush()

	args := flag.Args()
	if len(args) != 1 {
		glog.Fatalf("usage: tinynes <rom.nes>")
	}

	data, err := ioutil.ReadFile(args[0])
	if err != nil {
		glog.Fatalf("tinynes: failed to read cartridge: %v", err)
	}
	cartridge, err := nes.NewCartridge(data)
	if err != nil {
		glog.Fatalf("tinynes: failed to parse cartridge: %v", err)
	}

	gl := screen.NewGLScreen(windowWidth, windowHeight)
	defer gl.Close()

	machine := nes.NewMachine(cartridge, gl)
	if err := machine.Reset(); err != nil {
		glog.Fatalf("tinynes: reset failed: %v", err)
	}
	glog.Infof("tinynes: running %s", args[0])
	machine.Run()
}
