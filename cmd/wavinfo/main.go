// This tool prints the decoded chunk layout of the passed wav file. Files
// carrying an AIFF header instead are summarized through the aiff decoder.
package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	wav "github.com/cwbudde/wavparse"
	"github.com/go-audio/aiff"
)

const missingPathMessage = "You must pass the path of the file to inspect"

func main() {
	err := run(os.Args[1:], os.Stdout)
	if err == nil {
		return
	}

	if errors.Is(err, errMissingPath) {
		fmt.Println(missingPathMessage)
		os.Exit(1)
	}

	log.Fatal(err)
}

var errMissingPath = errors.New("missing path argument")

func run(args []string, out io.Writer) error {
	if len(args) < 1 {
		return errMissingPath
	}

	f, err := wav.Open(args[0])
	if err != nil {
		if errors.Is(err, wav.ErrInvalidHeader) {
			return printAIFFInfo(args[0], out)
		}

		return err
	}

	fmt.Fprintf(out, "Channels: %d\n", f.NumChannels())
	fmt.Fprintf(out, "Sample Rate: %d\n", f.SampleRate())
	fmt.Fprintf(out, "Bits Per Sample: %d\n", f.BitsPerSample())
	fmt.Fprintf(out, "Audio Format: %d\n", f.AudioFormat())

	if data := f.DataChunk(); data != nil {
		fmt.Fprintf(out, "Data: %d bytes at offset %d\n", data.Size, data.Offset)
	} else {
		fmt.Fprintln(out, "Data: none")
	}

	if fact := f.FactChunk(); fact != nil {
		fmt.Fprintf(out, "Fact: %d samples per channel\n", fact.SampleCount)
	}

	if cue := f.CueChunk(); cue != nil {
		fmt.Fprintf(out, "Cue points: %d\n", len(cue.Points))

		for i, p := range cue.Points {
			fmt.Fprintf(out, "\tcue point [%d]:\t%+v\n", i, p)
		}
	}

	return nil
}

// printAIFFInfo summarizes an AIFF/FORM file so the tool stays useful on the
// other common uncompressed container.
func printAIFFInfo(path string, out io.Writer) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	dec := aiff.NewDecoder(f)
	dec.ReadInfo()

	if err := dec.Err(); err != nil {
		return err
	}

	fmt.Fprintln(out, "AIFF file")
	fmt.Fprintf(out, "Channels: %d\n", dec.NumChans)
	fmt.Fprintf(out, "Sample Rate: %d\n", dec.SampleRate)
	fmt.Fprintf(out, "Bits Per Sample: %d\n", dec.BitDepth)

	return nil
}
