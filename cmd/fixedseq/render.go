package main

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/NethermindEth/fixedseq/containers"
	"github.com/davecgh/go-spew/spew"
	"github.com/olekukonko/tablewriter"
	"gopkg.in/yaml.v3"
)

type Lookup struct {
	Index int `json:"index" yaml:"index"`
	Value int `json:"value" yaml:"value"`
}

type Report struct {
	Length   int      `json:"length" yaml:"length"`
	Elements []int    `json:"elements" yaml:"elements"`
	First    *int     `json:"first,omitempty" yaml:"first,omitempty"`
	Last     *int     `json:"last,omitempty" yaml:"last,omitempty"`
	Lookups  []Lookup `json:"lookups,omitempty" yaml:"lookups,omitempty"`
}

func render(w io.Writer, format string, seq *containers.FixedSequence[int], report *Report) error {
	switch format {
	case "table":
		renderTable(w, report)
		return nil
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(report)
	case "yaml":
		enc := yaml.NewEncoder(w)
		defer enc.Close()
		return enc.Encode(report)
	case "cbor":
		b, err := seq.MarshalCBOR()
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, hex.EncodeToString(b))
		return err
	case "dump":
		spew.Fdump(w, report)
		return nil
	default:
		return fmt.Errorf("unknown format %q", format)
	}
}

func renderTable(w io.Writer, report *Report) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Index", "Value"})
	for i, v := range report.Elements {
		table.Append([]string{strconv.Itoa(i), strconv.Itoa(v)})
	}
	table.SetFooter([]string{"Length", strconv.Itoa(report.Length)})
	table.Render()

	if len(report.Lookups) == 0 {
		return
	}

	lookups := tablewriter.NewWriter(w)
	lookups.SetHeader([]string{"At", "Value"})
	for _, l := range report.Lookups {
		lookups.Append([]string{strconv.Itoa(l.Index), strconv.Itoa(l.Value)})
	}
	lookups.Render()
}
