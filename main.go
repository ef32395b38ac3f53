package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"pianofinger/fingerprint"
	"pianofinger/goldenset"
	"pianofinger/handslice"
	"pianofinger/midiscore"
	"pianofinger/optimize"
	"pianofinger/report"
	"pianofinger/scorefile"
)

// handFlag selects which hand(s) a command acts on.
var handFlag string

// jsonFlag requests JSON output instead of the boxed text report.
var jsonFlag bool

// baselineFlag points golden at a baseline.json other than the default.
var baselineFlag string

func main() {
	args := parseArgs(os.Args[1:])

	if len(args) < 1 {
		printUsage()
		os.Exit(1)
	}

	command := args[0]

	switch command {
	case "optimize":
		if len(args) < 2 {
			fmt.Println("Error: optimize requires a score file")
			printUsage()
			os.Exit(1)
		}
		runOptimize(args[1])
	case "cost":
		if len(args) < 3 {
			fmt.Println("Error: cost requires a score file and a fingering file")
			printUsage()
			os.Exit(1)
		}
		runCost(args[1], args[2])
	case "golden":
		if len(args) < 2 {
			fmt.Println("Error: golden requires a fixture directory")
			printUsage()
			os.Exit(1)
		}
		runGolden(args[1])
	case "browse":
		if len(args) < 2 {
			fmt.Println("Error: browse requires a score file")
			printUsage()
			os.Exit(1)
		}
		runBrowse(args[1])
	default:
		printUsage()
		os.Exit(1)
	}
}

// parseArgs extracts flags and returns remaining positional args.
func parseArgs(args []string) []string {
	var remaining []string

	for i := 0; i < len(args); i++ {
		arg := args[i]

		switch {
		case arg == "--hand":
			if i+1 < len(args) {
				handFlag = args[i+1]
				i++
			} else {
				fmt.Println("Error: --hand requires right, left, or both")
				os.Exit(1)
			}
		case strings.HasPrefix(arg, "--hand="):
			handFlag = strings.TrimPrefix(arg, "--hand=")
		case arg == "--json":
			jsonFlag = true
		case arg == "--baseline":
			if i+1 < len(args) {
				baselineFlag = args[i+1]
				i++
			} else {
				fmt.Println("Error: --baseline requires a path")
				os.Exit(1)
			}
		case strings.HasPrefix(arg, "--baseline="):
			baselineFlag = strings.TrimPrefix(arg, "--baseline=")
		case arg == "--help" || arg == "-h":
			printUsage()
			os.Exit(0)
		default:
			remaining = append(remaining, arg)
		}
	}

	if handFlag == "" {
		handFlag = "both"
	}

	// Also check environment variable
	if baselineFlag == "" {
		baselineFlag = os.Getenv("PIANOFINGER_BASELINE")
	}

	return remaining
}

// loadHands reads filename via scorefile or midiscore, chosen by extension.
func loadHands(filename string) (right, left handslice.Hand, err error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".mid", ".midi":
		return midiscore.Hands(filename)
	default:
		return scorefile.Hands(filename)
	}
}

func runOptimize(filename string) {
	right, left, err := loadHands(filename)
	if err != nil {
		fmt.Printf("Error loading score: %v\n", err)
		os.Exit(1)
	}

	leftResult, rightResult, err := optimize.OptimizeBothHands(left, right)
	if err != nil {
		fmt.Printf("Error optimizing: %v\n", err)
		os.Exit(1)
	}

	if handFlag == "right" || handFlag == "both" {
		printHandResult(handslice.Right, right, rightResult)
	}
	if handFlag == "left" || handFlag == "both" {
		printHandResult(handslice.Left, left, leftResult)
	}
}

func printHandResult(side handslice.Side, hand handslice.Hand, result optimize.Result) {
	if jsonFlag {
		out, err := report.JSON(side, hand, result)
		if err != nil {
			fmt.Printf("Error rendering JSON: %v\n", err)
			os.Exit(1)
		}
		fmt.Println(out)
		return
	}
	fmt.Print(report.Text(side, hand, result))
}

func runCost(scoreFile, fingeringFile string) {
	right, left, err := loadHands(scoreFile)
	if err != nil {
		fmt.Printf("Error loading score: %v\n", err)
		os.Exit(1)
	}

	data, err := os.ReadFile(fingeringFile)
	if err != nil {
		fmt.Printf("Error reading fingering file: %v\n", err)
		os.Exit(1)
	}

	var raw struct {
		Right [][]int `yaml:"right"`
		Left  [][]int `yaml:"left"`
	}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		fmt.Printf("Error parsing fingering file: %v\n", err)
		os.Exit(1)
	}

	if handFlag == "right" || handFlag == "both" {
		c, err := optimize.CostOf(right, toHandFingering(raw.Right))
		if err != nil {
			fmt.Printf("Error scoring right hand: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("right hand cost: %.1f\n", c.Value())
	}
	if handFlag == "left" || handFlag == "both" {
		c, err := optimize.CostOf(left, toHandFingering(raw.Left))
		if err != nil {
			fmt.Printf("Error scoring left hand: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("left hand cost: %.1f\n", c.Value())
	}
}

func toHandFingering(raw [][]int) handslice.HandFingering {
	hf := make(handslice.HandFingering, len(raw))
	for i, slice := range raw {
		f := make(handslice.Fingering, len(slice))
		for j, v := range slice {
			f[j] = handslice.Finger(v)
		}
		hf[i] = f
	}
	return hf
}

func runGolden(dir string) {
	baselinePath := baselineFlag
	if baselinePath == "" {
		baselinePath = filepath.Join(dir, "baseline.json")
	}

	baseline, err := goldenset.LoadBaseline(baselinePath)
	if err != nil {
		fmt.Printf("Error loading baseline: %v\n", err)
		os.Exit(1)
	}

	mismatches, err := goldenset.Run(dir, baseline)
	if err != nil {
		fmt.Printf("Error running golden set: %v\n", err)
		os.Exit(1)
	}

	if len(mismatches) == 0 {
		fmt.Println("✓ golden set matches baseline")
		return
	}

	fmt.Printf("✗ %d mismatch(es):\n", len(mismatches))
	for _, m := range mismatches {
		fmt.Println("  " + m.String())
	}
	os.Exit(1)
}

func runBrowse(filename string) {
	right, left, err := loadHands(filename)
	if err != nil {
		fmt.Printf("Error loading score: %v\n", err)
		os.Exit(1)
	}

	side := handslice.Right
	hand := right
	if handFlag == "left" {
		side = handslice.Left
		hand = left
	}

	result, err := optimize.Optimize(hand)
	if err != nil {
		fmt.Printf("Error optimizing: %v\n", err)
		os.Exit(1)
	}

	if err := fingerprint.Run(side, hand, result); err != nil {
		fmt.Printf("Error running browser: %v\n", err)
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println("pianofinger")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  pianofinger optimize <score.yaml|score.mid>          Print optimal fingering(s)")
	fmt.Println("  pianofinger cost <score> <fingering.yaml>            Score a given fingering")
	fmt.Println("  pianofinger golden <fixture-dir>                     Check fixtures against baseline")
	fmt.Println("  pianofinger browse <score.yaml|score.mid>            Interactively browse solutions")
	fmt.Println()
	fmt.Println("Options:")
	fmt.Println("  --hand right|left|both    Which hand(s) to act on (default: both)")
	fmt.Println("  --json                    Emit JSON instead of text")
	fmt.Println("  --baseline <path>         Baseline file for golden (default: <dir>/baseline.json)")
	fmt.Println("  --help, -h                Show this help")
	fmt.Println()
	fmt.Println("Environment:")
	fmt.Println("  PIANOFINGER_BASELINE      Default --baseline path if not given on the command line")
	fmt.Println()
	fmt.Println("Examples:")
	fmt.Println("  pianofinger optimize examples/scale.yaml")
	fmt.Println("  pianofinger optimize --hand right --json examples/scale.yaml")
	fmt.Println("  pianofinger golden examples/golden")
}
