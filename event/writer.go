package event

import (
	"fmt"
	"io"

	"github.com/gocarina/gocsv"

	"github.com/pthm-cable/stratos/geom"
	"github.com/pthm-cable/stratos/particle"
)

// csvRow is the flat on-disk form of an Interaction.
type csvRow struct {
	Trials   int     `csv:"trials"`
	PDGID    int     `csv:"pdgid"`
	Energy   float64 `csv:"energy"`
	Type     int     `csv:"type"`
	X        float64 `csv:"x"`
	Y        float64 `csv:"y"`
	Z        float64 `csv:"z"`
	DirX     float64 `csv:"dir_x"`
	DirY     float64 `csv:"dir_y"`
	DirZ     float64 `csv:"dir_z"`
	Weight   float64 `csv:"weight"`
	Altitude float64 `csv:"altitude"`
}

func toRow(i Interaction) csvRow {
	return csvRow{
		Trials:   i.Trials,
		PDGID:    int(i.PDGID),
		Energy:   i.Energy,
		Type:     int(i.Type),
		X:        i.Location.X,
		Y:        i.Location.Y,
		Z:        i.Location.Z,
		DirX:     i.Direction.X,
		DirY:     i.Direction.Y,
		DirZ:     i.Direction.Z,
		Weight:   i.Weight,
		Altitude: i.Altitude,
	}
}

func fromRow(r csvRow) Interaction {
	return Interaction{
		Trials:    r.Trials,
		PDGID:     particle.ID(r.PDGID),
		Energy:    r.Energy,
		Type:      particle.InteractionType(r.Type),
		Location:  geom.Vec{X: r.X, Y: r.Y, Z: r.Z},
		Direction: geom.Vec{X: r.DirX, Y: r.DirY, Z: r.DirZ},
		Weight:    r.Weight,
		Altitude:  r.Altitude,
	}
}

// WriteCSV writes every interaction in the batch as one CSV row, with a
// header.
func WriteCSV(w io.Writer, events Events) error {
	rows := make([]csvRow, 0, len(events))
	for _, i := range events.Flatten() {
		rows = append(rows, toRow(i))
	}
	if err := gocsv.Marshal(rows, w); err != nil {
		return fmt.Errorf("writing events: %w", err)
	}
	return nil
}

// ReadCSV reads interactions previously written by WriteCSV. Each row is
// returned as a single-interaction tree.
func ReadCSV(r io.Reader) (Events, error) {
	var rows []csvRow
	if err := gocsv.Unmarshal(r, &rows); err != nil {
		return nil, fmt.Errorf("reading events: %w", err)
	}
	events := make(Events, 0, len(rows))
	for _, row := range rows {
		events = append(events, Tree{fromRow(row)})
	}
	return events, nil
}
