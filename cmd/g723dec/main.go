// Command g723dec decodes a raw G.723.1 bitstream file into headerless
// 16-bit PCM at 8000 Hz, mono.
package main

import (
	"encoding/binary"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/pflag"

	"github.com/speechcore/g723dec"
)

func main() {
	var (
		inPath     = pflag.StringP("input", "i", "", "Input G.723.1 bitstream file (required)")
		outPath    = pflag.StringP("output", "o", "", "Output raw PCM file (default: stdout)")
		postFilter = pflag.BoolP("postfilter", "p", true, "Enable pitch/formant post-filtering")
		verbose    = pflag.BoolP("verbose", "v", false, "Log per-frame diagnostics")
		help       = pflag.BoolP("help", "h", false, "Display help text")
	)

	pflag.Usage = func() {
		os.Stderr.WriteString("Usage: g723dec -i <input.g723> [-o output.pcm]\n\n")
		pflag.PrintDefaults()
	}
	pflag.Parse()

	if *help || *inPath == "" {
		pflag.Usage()
		if *inPath == "" && !*help {
			os.Exit(2)
		}
		return
	}

	logger := log.New(os.Stderr)
	if *verbose {
		logger.SetLevel(log.DebugLevel)
	} else {
		logger.SetLevel(log.WarnLevel)
	}

	in, err := os.Open(*inPath)
	if err != nil {
		logger.Fatal("open input", "err", err)
	}
	defer in.Close()

	var out io.Writer = os.Stdout
	if *outPath != "" {
		f, err := os.Create(*outPath)
		if err != nil {
			logger.Fatal("create output", "err", err)
		}
		defer f.Close()
		out = f
	}

	dec := g723dec.NewDecoder(g723dec.Config{PostFilter: *postFilter, Logger: logger})
	if err := run(in, out, dec, logger); err != nil {
		logger.Fatal("decode", "err", err)
	}
}

// run drives the decode loop: read one frame-sized chunk at a time
// (sized by the first byte's dec_mode), decode it, and write the
// resulting PCM samples.
func run(in io.Reader, out io.Writer, dec *g723dec.Decoder, logger *log.Logger) error {
	frameCount := 0
	for {
		header := make([]byte, 1)
		if _, err := io.ReadFull(in, header); err != nil {
			if err == io.EOF {
				return nil
			}
			return err
		}

		size := frameSizeForByte(header[0])
		buf := make([]byte, size)
		buf[0] = header[0]
		if size > 1 {
			if _, err := io.ReadFull(in, buf[1:]); err != nil {
				return err
			}
		}

		pcm, err := dec.Decode(buf)
		if err != nil {
			logger.Warn("frame decode error, continuing", "frame", frameCount, "err", err)
			frameCount++
			continue
		}

		if err := binary.Write(out, binary.LittleEndian, pcm); err != nil {
			return err
		}
		frameCount++
	}
}

func frameSizeForByte(b byte) int {
	switch b & 3 {
	case 0:
		return 24
	case 1:
		return 20
	case 2:
		return 4
	default:
		return 1
	}
}
