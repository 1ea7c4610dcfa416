package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/Jon-Bright/npcmclk/clktree"
	"github.com/Jon-Bright/npcmclk/dtb"
	"github.com/Jon-Bright/npcmclk/npcm8xx"
	"github.com/Jon-Bright/npcmclk/regio"
	"github.com/platinasystems/log"
)

var dtbFile = flag.String("dtb", dtb.DefaultFile, "The flattened devicetree to find the clock controller in")
var baseAddr = flag.String("base", "", "Clock controller base address (hex), overriding devicetree discovery")
var imageFile = flag.String("image", "", "Resolve against a raw register-window dump instead of live /dev/mem")
var clockName = flag.String("clock", "", "Print only the named clock's rate, in Hz")
var exportID = flag.Int("export", -1, "Print only the clock with this export id, in Hz")

// openReader picks the register source: a snapshot if -image was
// given, otherwise a live mapping at -base or at whatever the
// devicetree says.
func openReader() (clktree.Reader, func() error, error) {
	if *imageFile != "" {
		im, err := regio.LoadImage(*imageFile)
		if err != nil {
			return nil, nil, err
		}
		return im, nil, nil
	}

	var (
		base uintptr
		size = npcm8xx.WindowSize
	)
	if *baseAddr != "" {
		b, err := strconv.ParseUint(*baseAddr, 16, 64)
		if err != nil {
			return nil, nil, fmt.Errorf("couldn't parse base address %q: %v", *baseAddr, err)
		}
		base = uintptr(b)
	} else {
		var err error
		var dtSize int
		base, dtSize, err = dtb.ClockController(*dtbFile)
		if err != nil {
			return nil, nil, fmt.Errorf("couldn't find clock controller: %v", err)
		}
		if dtSize > size {
			size = dtSize
		}
	}
	m, err := regio.MapMem(base, size)
	if err != nil {
		return nil, nil, err
	}
	return m, m.Close, nil
}

func main() {
	flag.Parse()

	tree, err := npcm8xx.Tree()
	if err != nil {
		log.Print("err", "broken clock topology: ", err)
		os.Exit(1)
	}

	reg, closer, err := openReader()
	if err != nil {
		log.Print("err", err)
		os.Exit(1)
	}
	if closer != nil {
		defer closer()
	}

	switch {
	case *clockName != "":
		rate, err := tree.Rate(*clockName, reg)
		if err != nil {
			log.Print("err", err)
			os.Exit(1)
		}
		fmt.Println(rate)
	case *exportID >= 0:
		rate, err := tree.Registry().Rate(*exportID, reg)
		if err != nil {
			log.Print("err", err)
			os.Exit(1)
		}
		fmt.Println(rate)
	default:
		dumpTree(tree, reg)
	}
}
