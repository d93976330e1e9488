package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/urfave/cli/v3"

	"github.com/tatarize/beamtable"
	"github.com/tatarize/beamtable/point"
)

// segmentRecord is the on-disk JSON shape for input and output geometry: a
// flat array of line segments, each a pair of endpoints and a label. Kind
// is implicit (always KindLine) since the command line tool only ever
// produces and consumes straight lines.
type segmentRecord struct {
	P0    point.Point `json:"p0"`
	P4    point.Point `json:"p4"`
	Label float64     `json:"label"`
}

func main() {
	cmd := &cli.Command{
		Name:      "beamtable",
		Usage:     "Sweeps a JSON file of labeled line segments and reconstructs a masked region",
		UsageText: "beamtable [--op evenodd|ignore|union] [--label value] [--greedy] [--save path] <path>",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "op",
				Usage:    "Mask to apply: evenodd, ignore, or union",
				Value:    "union",
				OnlyOnce: true,
			},
			&cli.StringFlag{
				Name:     "label",
				Usage:    "Label to fill, required when --op=evenodd",
				OnlyOnce: true,
			},
			&cli.BoolFlag{
				Name:     "greedy",
				Usage:    "Reorder the reconstructed region to reduce pen travel",
				OnlyOnce: true,
			},
			&cli.StringFlag{
				Name:     "save",
				Usage:    "Write the reconstructed region to this path instead of stdout",
				OnlyOnce: true,
			},
		},
		HideVersion: true,
		Action:      app,
	}
	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

func app(_ context.Context, cmd *cli.Command) error {
	path := cmd.Args().First()
	if path == "" {
		return fmt.Errorf("beamtable: a path to a segment JSON file is required")
	}

	g, err := loadGeomstr(path)
	if err != nil {
		return err
	}

	table := beamtable.NewBeamTable(g)
	if err := table.Build(); err != nil {
		return err
	}

	var mask beamtable.Mask
	switch op := cmd.String("op"); op {
	case "evenodd":
		if !cmd.IsSet("label") {
			return fmt.Errorf("beamtable: --label is required when --op=evenodd")
		}
		label, err := strconv.ParseFloat(cmd.String("label"), 64)
		if err != nil {
			return fmt.Errorf("beamtable: --label must be a number: %w", err)
		}
		mask = table.EvenOddFill(label)
	case "ignore":
		mask = table.EvenOddIgnoringOrigin()
	case "union":
		mask = table.UnionAll()
	default:
		return fmt.Errorf("beamtable: unknown --op %q (want evenodd, ignore, or union)", op)
	}

	region := table.Create(mask, cmd.Bool("greedy"))

	out, err := encodeGeomstr(region)
	if err != nil {
		return err
	}

	if save := cmd.String("save"); save != "" {
		return os.WriteFile(save, out, 0o644)
	}
	_, err = os.Stdout.Write(out)
	return err
}

func loadGeomstr(path string) (*beamtable.Geomstr, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var records []segmentRecord
	if err := json.Unmarshal(raw, &records); err != nil {
		return nil, fmt.Errorf("beamtable: decoding %s: %w", path, err)
	}
	g := beamtable.NewGeomstr()
	for _, rec := range records {
		g.Line(rec.P0, rec.P4, rec.Label)
	}
	return g, nil
}

func encodeGeomstr(g *beamtable.Geomstr) ([]byte, error) {
	records := make([]segmentRecord, len(g.Segments))
	for i, seg := range g.Segments {
		records[i] = segmentRecord{P0: seg.P0, P4: seg.P4, Label: seg.Meta.Label}
	}
	return json.MarshalIndent(records, "", "  ")
}
