/*
 * Copyright © 2020, G.Ralph Kuntz, MD.
 *
 * Licensed under the Apache License, Version 2.0(the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIC
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/pkg/browser"
	"github.com/spf13/cobra"

	"github.com/grkuntzmd/qrcodegen"
)

var (
	flagECL    string
	flagOut    string
	flagBorder int
	flagOpen   bool
)

var encodeCmd = &cobra.Command{
	Use:   "encode <text>",
	Short: "Encode text as a QR code and write it as SVG",
	Args:  cobra.ExactArgs(1),
	RunE:  runEncode,
}

func init() {
	encodeCmd.Flags().StringVar(&flagECL, "ecl", "medium", "error correction level: low, medium, quartile, high")
	encodeCmd.Flags().StringVar(&flagOut, "out", "", "output SVG path (default: stdout)")
	encodeCmd.Flags().IntVar(&flagBorder, "border", 4, "light border width, in modules")
	encodeCmd.Flags().BoolVar(&flagOpen, "open", false, "open the generated SVG in the default browser (requires --out)")
}

func runEncode(cmd *cobra.Command, args []string) error {
	ecl, err := parseECL(flagECL)
	if err != nil {
		return err
	}

	sym, err := qrcodegen.EncodeText(args[0], ecl)
	if err != nil {
		return fmt.Errorf("encoding text: %w", err)
	}

	svg, err := sym.ToSVGString(flagBorder)
	if err != nil {
		return fmt.Errorf("rendering SVG: %w", err)
	}

	if flagOut == "" {
		if flagOpen {
			return fmt.Errorf("--open requires --out")
		}
		fmt.Print(svg)
		return nil
	}

	if err := os.WriteFile(flagOut, []byte(svg), 0644); err != nil {
		return fmt.Errorf("writing %s: %w", flagOut, err)
	}
	fmt.Fprintf(os.Stderr, "wrote version %d symbol (ecl=%s, mask=%d) to %s\n",
		sym.Version(), sym.ECL(), sym.Mask(), flagOut)

	if flagOpen {
		if err := browser.OpenFile(flagOut); err != nil {
			return fmt.Errorf("opening %s: %w", flagOut, err)
		}
	}

	return nil
}

func parseECL(s string) (qrcodegen.Ecc, error) {
	switch strings.ToLower(s) {
	case "low", "l":
		return qrcodegen.Low, nil
	case "medium", "m":
		return qrcodegen.Medium, nil
	case "quartile", "q":
		return qrcodegen.Quartile, nil
	case "high", "h":
		return qrcodegen.High, nil
	default:
		return 0, fmt.Errorf("unknown error correction level %q (want low, medium, quartile, or high)", s)
	}
}
