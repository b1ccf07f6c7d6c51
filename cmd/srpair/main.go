package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/esimov/srpair"
	"github.com/esimov/srpair/utils"
	"golang.org/x/term"
)

const helpBanner = `
┌─┐┬─┐┌─┐┌─┐┬┬─┐
└─┐├┬┘├─┘├─┤│├┬┘
└─┘┴└─┴  ┴ ┴┴┴└─

Paired image sampler for super-resolution training.
    Version: %s

`

// pipeName is the file name that indicates stdout is being used.
const pipeName = "-"

// Version indicates the current build version.
var Version string

var (
	// Flags
	source   = flag.String("in", "", "Source image path or URL")
	hrOut    = flag.String("hr", "hr.png", "High resolution destination")
	lrOut    = flag.String("lr", "lr.png", "Low resolution destination")
	scale    = flag.Int("scale", 4, "Scale factor between the high and the low resolution image")
	cropSize = flag.Int("crop", 0, "Low resolution crop size (0 disables cropping)")
	mode     = flag.String("mode", "rgb", "Channel mode: rgb or all")
	seed     = flag.Uint64("seed", uint64(time.Now().UnixNano()), "Random seed")
	train    = flag.Bool("train", false, "Use a random crop instead of a centered one")
	augment  = flag.Bool("augment", false, "Apply a random flip and rotation to the pair")
)

func main() {
	log.SetFlags(0)

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, helpBanner, Version)
		flag.PrintDefaults()
	}
	flag.Parse()

	if *source == "" {
		flag.Usage()
		log.Fatal(utils.DecorateText("\nPlease provide a source image!", utils.ErrorMessage))
	}

	m, err := srpair.ParseMode(*mode)
	if err != nil {
		log.Fatal(utils.DecorateText(err.Error(), utils.ErrorMessage))
	}

	sampler := &srpair.Sampler{
		Scale:    *scale,
		CropSize: *cropSize,
		Train:    *train,
		Augment:  *augment,
	}

	op := &srpair.Ops{
		Src:      *source,
		HR:       *hrOut,
		LR:       *lrOut,
		PipeName: pipeName,
		Mode:     m,
		Seed:     *seed,
		Stdout:   os.Stdout,
	}

	if term.IsTerminal(int(os.Stderr.Fd())) {
		spinnerText := fmt.Sprintf("%s %s",
			utils.DecorateText("⚡ SRPAIR", utils.StatusMessage),
			utils.DecorateText("⇢ generating the image pair...", utils.DefaultMessage))
		op.Spinner = utils.NewSpinner(spinnerText, time.Millisecond*80, true)
	}

	if err := sampler.Execute(op); err != nil {
		log.Fatalf("%s%s",
			utils.DecorateText("\nError generating the image pair: ", utils.ErrorMessage),
			utils.DecorateText(fmt.Sprintf("\n\tReason: %v\n", err), utils.DefaultMessage),
		)
	}
}
