package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"math/big"
	"os"
	"path/filepath"

	"github.com/agbru/baseconv/internal/alphabet"
)

// GoldenData represents a single test case in the golden file
type GoldenData struct {
	Input          string `json:"input"`
	InputAlphabet  string `json:"input_alphabet"`
	OutputAlphabet string `json:"output_alphabet"`
	Output         string `json:"output"`
}

func main() {
	outputDir := flag.String("out", "internal/conversion/testdata", "Output directory for the golden file")
	showVersion := flag.Bool("version", false, "Print version information and exit")
	flag.Parse()

	if *showVersion {
		printVersion(os.Stdout)
		return
	}

	if err := os.MkdirAll(*outputDir, 0755); err != nil {
		fmt.Fprintf(os.Stderr, "Error creating output directory: %v\n", err)
		os.Exit(1)
	}

	filename := filepath.Join(*outputDir, "conversion_golden.json")
	file, err := os.Create(filename)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating output file: %v\n", err)
		os.Exit(1)
	}
	defer file.Close()

	// Interesting values:
	// - Zero and single digits of the largest base
	// - Limb boundaries (2^32, 2^64)
	// - Large powers and Mersenne numbers spanning many limbs
	values := []*big.Int{
		big.NewInt(0),
		big.NewInt(1),
		big.NewInt(93),
		big.NewInt(94),
		big.NewInt(255),
		pow(2, 32, -1),
		pow(2, 32, 0),
		pow(2, 64, -1),
		pow(2, 64, 0),
		pow(10, 30, 0),
		pow(2, 127, -1),
		pow(3, 200, 0),
		pow(94, 50, -1),
	}

	alphabets := []string{
		alphabet.Binary,
		alphabet.Octal,
		alphabet.Decimal,
		alphabet.HexLower,
		alphabet.Base36,
		alphabet.Base62,
		alphabet.Base94,
	}

	var data []GoldenData

	fmt.Println("Generating golden data...")

	for _, v := range values {
		for _, in := range alphabets {
			for _, out := range alphabets {
				if in == out {
					continue
				}
				data = append(data, GoldenData{
					Input:          text(v, in),
					InputAlphabet:  in,
					OutputAlphabet: out,
					Output:         text(v, out),
				})
			}
		}
		fmt.Printf("Generated %s\n", v.String())
	}

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	encoder.SetEscapeHTML(false)
	if err := encoder.Encode(data); err != nil {
		fmt.Fprintf(os.Stderr, "Error encoding JSON: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Successfully generated golden file at %s (%d cases)\n", filename, len(data))
}

// pow returns base^exp + delta.
func pow(base, exp, delta int64) *big.Int {
	z := new(big.Int).Exp(big.NewInt(base), big.NewInt(exp), nil)
	return z.Add(z, big.NewInt(delta))
}

// text renders v with an arbitrary alphabet using math/big as the oracle.
func text(v *big.Int, alph string) string {
	if v.Sign() == 0 {
		return alph[:1]
	}
	base := big.NewInt(int64(len(alph)))
	q := new(big.Int).Set(v)
	r := new(big.Int)
	var digits []byte
	for q.Sign() > 0 {
		q.QuoRem(q, base, r)
		digits = append(digits, alph[r.Int64()])
	}
	for i, j := 0, len(digits)-1; i < j; i, j = i+1, j-1 {
		digits[i], digits[j] = digits[j], digits[i]
	}
	return string(digits)
}
