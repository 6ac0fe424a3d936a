// Command filtinfo designs a digital filter and prints its properties.
//
// Usage:
//
//	filtinfo [flags]
//
// It designs a windowed-sinc FIR kernel (or a Butterworth IIR transfer
// function with -order) for the requested pass band, checks the frequency
// response, and prints the bandwidth figures, any design advisories, and an
// optional response table.
//
// Examples:
//
//	filtinfo -fs 1000 -pass bandpass -lo 8 -hi 12
//	filtinfo -fs 1000 -pass lowpass -hi 30 -cycles 5
//	filtinfo -fs 500 -pass bandstop -lo 58 -hi 62 -order 4
//	filtinfo -fs 1000 -pass highpass -lo 1 -table
package main

import (
	"flag"
	"fmt"
	"math"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spectralab/ephys-dsp/dsp/filt"
)

func main() {
	fs := flag.Float64("fs", 1000, "sampling rate in Hz")
	pass := flag.String("pass", "bandpass", "filter class: bandpass, bandstop, lowpass, highpass")
	lo := flag.Float64("lo", math.NaN(), "lower cutoff in Hz (bandpass, bandstop, highpass)")
	hi := flag.Float64("hi", math.NaN(), "upper cutoff in Hz (bandpass, bandstop, lowpass)")
	cycles := flag.Float64("cycles", 3, "FIR kernel length in cycles of the cutoff frequency")
	seconds := flag.Float64("seconds", 0, "FIR kernel length in seconds (overrides -cycles)")
	order := flag.Int("order", 0, "Butterworth order; 0 designs an FIR kernel instead")
	points := flag.Int("points", 512, "frequency response resolution")
	table := flag.Bool("table", false, "print the full frequency response table")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: filtinfo [flags]\n\n")
		fmt.Fprintf(os.Stderr, "Designs a digital filter and prints its properties.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  filtinfo -fs 1000 -pass bandpass -lo 8 -hi 12\n")
		fmt.Fprintf(os.Stderr, "  filtinfo -fs 500 -pass bandstop -lo 58 -hi 62 -order 4\n")
	}
	flag.Parse()

	passType, err := parsePass(*pass)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	fc, err := buildCutoff(passType, *lo, *hi)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	report := filt.NewReport(nil)
	opts := []filt.Option{
		filt.WithCycles(*cycles),
		filt.WithResponsePoints(*points),
		filt.WithReport(report),
	}
	if *seconds > 0 {
		opts = append(opts, filt.WithDuration(*seconds))
	}

	var b, a []float64
	if *order > 0 {
		b, a, err = filt.DesignButterworth(passType, fc, *order, *fs, opts...)
	} else {
		b, err = filt.DesignFIR(passType, fc, *fs, 0, opts...)
		a = []float64{1}
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	props, err := filt.CheckProperties(b, a, *fs, passType, fc, opts...)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	printSummary(passType, fc, *fs, b, a, props, report)
	if *table {
		printResponse(props)
	}
}

func parsePass(name string) (filt.PassType, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "bandpass":
		return filt.Bandpass, nil
	case "bandstop":
		return filt.Bandstop, nil
	case "lowpass":
		return filt.Lowpass, nil
	case "highpass":
		return filt.Highpass, nil
	default:
		return 0, fmt.Errorf("unknown pass type %q", name)
	}
}

func buildCutoff(pass filt.PassType, lo, hi float64) (filt.Cutoff, error) {
	switch pass {
	case filt.Lowpass:
		if math.IsNaN(hi) {
			return filt.Cutoff{}, fmt.Errorf("lowpass requires -hi")
		}
		return filt.Single(hi), nil
	case filt.Highpass:
		if math.IsNaN(lo) {
			return filt.Cutoff{}, fmt.Errorf("highpass requires -lo")
		}
		return filt.Single(lo), nil
	default:
		if math.IsNaN(lo) || math.IsNaN(hi) {
			return filt.Cutoff{}, fmt.Errorf("%s requires -lo and -hi", pass)
		}
		return filt.Band(lo, hi), nil
	}
}

func printSummary(pass filt.PassType, fc filt.Cutoff, fs float64, b, a []float64, props filt.Properties, report *filt.Report) {
	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Pass type\t%s\n", pass)
	fmt.Fprintf(tw, "Sampling rate\t%.6g Hz\n", fs)
	if len(a) == 1 {
		fmt.Fprintf(tw, "Kernel\tFIR, %d taps\n", len(b))
	} else {
		fmt.Fprintf(tw, "Kernel\tIIR, order %d\n", len(a)-1)
	}
	fmt.Fprintf(tw, "Pass bandwidth\t%.6g Hz\n", props.PassBandwidth)
	if math.IsNaN(props.TransitionBandwidth) {
		fmt.Fprintf(tw, "Transition bandwidth\tn/a\n")
	} else {
		fmt.Fprintf(tw, "Transition bandwidth\t%.6g Hz\n", props.TransitionBandwidth)
	}
	if err := tw.Flush(); err != nil {
		fmt.Fprintf(os.Stderr, "error: failed to flush output: %v\n", err)
		return
	}

	for _, adv := range report.Advisories() {
		fmt.Printf("advisory [%s]: %s\n", adv.Kind, adv.Message)
	}
}

func printResponse(props filt.Properties) {
	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "\nFrequency [Hz]\tMagnitude [dB]\n")
	fmt.Fprintf(tw, "--------------\t--------------\n")
	for i, f := range props.Freqs {
		fmt.Fprintf(tw, "%.4f\t%.2f\n", f, props.DB[i])
	}
	if err := tw.Flush(); err != nil {
		fmt.Fprintf(os.Stderr, "error: failed to flush output: %v\n", err)
	}
}
