package srpair

import (
	"fmt"
	"image"
	"io"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/esimov/srpair/utils"
	"github.com/pkg/errors"
	"golang.org/x/term"
)

// Ops describes a single pair generation run of the command line tool.
type Ops struct {
	Src, HR, LR, PipeName string
	Mode                  Mode
	Seed                  uint64
	Loader                *Loader
	Spinner               *utils.Spinner
	Stdout                io.Writer
}

// Execute loads the source image, builds the pair and writes both images.
// At most one of the destinations can be the pipe name.
func (s *Sampler) Execute(op *Ops) error {
	if op.Stdout == nil {
		op.Stdout = os.Stdout
	}
	if op.Mode == "" {
		op.Mode = ModeRGB
	}
	if op.HR == op.PipeName && op.LR == op.PipeName {
		return errors.New("only one of the outputs can be written to stdout")
	}
	for _, dst := range []string{op.HR, op.LR} {
		if dst == op.PipeName {
			if op.Stdout == os.Stdout && term.IsTerminal(int(os.Stdout.Fd())) {
				return errors.New("`-` should be used with a pipe for stdout")
			}
			continue
		}
		if ext := strings.ToLower(filepath.Ext(dst)); !utils.Contains(OutputExtensions, ext) {
			return errors.Wrapf(ErrUnsupportedFormat, "%v file type not supported", ext)
		}
	}
	if op.Loader == nil {
		op.Loader = NewLoader()
	}

	src := op.Src
	if utils.IsValidUrl(src) {
		f, err := utils.DownloadImage(src)
		if err != nil {
			return err
		}
		defer os.Remove(f.Name())
		if err := f.Close(); err != nil {
			log.Printf("could not close the downloaded file: %v", err)
		}
		src = f.Name()
		if err := checkDownload(src); err != nil {
			return err
		}
	}

	// Capture CTRL-C signal and restores back the cursor visibility.
	signalChan := make(chan os.Signal, 1)
	signal.Notify(signalChan, os.Interrupt, syscall.SIGTERM)
	done := make(chan struct{})
	defer func() {
		signal.Stop(signalChan)
		close(done)
	}()
	go func() {
		select {
		case <-done:
			return
		case <-signalChan:
		}
		if op.Spinner != nil {
			op.Spinner.RestoreCursor()
		}
		op.removeOutputs()
		os.Exit(1)
	}()

	if op.Spinner != nil {
		op.Spinner.Start()
	}
	now := time.Now()
	err := s.process(op, src)

	if op.Spinner != nil {
		if err != nil {
			op.Spinner.StopMsg = fmt.Sprintf("%s %s %s\n",
				utils.DecorateText("⚡ SRPAIR", utils.StatusMessage),
				utils.DecorateText("generating the pair failed...", utils.DefaultMessage),
				utils.DecorateText("✘", utils.ErrorMessage),
			)
		} else {
			op.Spinner.StopMsg = fmt.Sprintf("%s %s %s\n",
				utils.DecorateText("⚡ SRPAIR", utils.StatusMessage),
				utils.DecorateText("⇢", utils.DefaultMessage),
				utils.DecorateText("the pair has been generated successfully ✔", utils.SuccessMessage),
			)
		}
		op.Spinner.Stop()
	}
	if err != nil {
		op.removeOutputs()
		return err
	}

	op.printOpStatus(time.Since(now))
	return nil
}

// checkDownload rejects downloaded files whose content is not an image.
// TIFF has no content sniffing signature, so raster and tiff files are
// accepted by extension and left to their decoders.
func checkDownload(path string) error {
	ext := strings.ToLower(filepath.Ext(path))
	if IsRaster(path) || ext == ".tiff" {
		return nil
	}
	ctype, err := utils.DetectContentType(path)
	if err != nil {
		return errors.Wrap(err, "could not read the downloaded file")
	}
	if !utils.IsImage(ctype) {
		return errors.Wrapf(ErrUnsupportedFormat, "the downloaded file is not an image, found %s", ctype)
	}
	return nil
}

// process runs the sampler and encodes the outputs.
func (s *Sampler) process(op *Ops, src string) error {
	img, err := op.Loader.LoadImage(src, op.Mode)
	if err != nil {
		return err
	}

	var rnd Source
	if s.needsSource() {
		rnd = NewSource(op.Seed)
	}
	pair, err := s.Pair(rnd, img)
	if err != nil {
		return err
	}

	if err := op.write(op.HR, pair.HR); err != nil {
		return err
	}
	return op.write(op.LR, pair.LR)
}

// write encodes img either to the pipe or to the destination file.
func (op *Ops) write(dst string, img image.Image) error {
	if dst == op.PipeName {
		return Encode(op.Stdout, "", img)
	}
	return Save(dst, img)
}

// removeOutputs deletes the generated files.
func (op *Ops) removeOutputs() {
	for _, dst := range []string{op.HR, op.LR} {
		if dst != op.PipeName {
			os.Remove(dst)
		}
	}
}

// printOpStatus displays the relevant information about the generated pair.
func (op *Ops) printOpStatus(elapsed time.Duration) {
	for _, dst := range []string{op.HR, op.LR} {
		if dst != op.PipeName {
			fmt.Fprintf(os.Stderr, "The image has been saved as: %s\n",
				utils.DecorateText(filepath.Base(dst), utils.SuccessMessage),
			)
		}
	}
	fmt.Fprintf(os.Stderr, "Execution time: %s\n",
		utils.DecorateText(utils.FormatTime(elapsed), utils.SuccessMessage),
	)
}
