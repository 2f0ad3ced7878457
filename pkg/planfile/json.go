// Package planfile provides the .plan file container, the JSON codec, and
// the SVG/PNG/DXF exporters for floor plans.
package planfile

import (
	"encoding/json"

	"github.com/ha1tch/plan-toolkit/pkg/geom"
	"github.com/ha1tch/plan-toolkit/pkg/plan"
)

// jsonPlan is the JSON representation of a plan.
type jsonPlan struct {
	Name    string       `json:"name,omitempty"`
	Outline [][2]float64 `json:"outline,omitempty"`
	Walls   []jsonWall   `json:"walls"`
}

type jsonWall struct {
	ID        string        `json:"id"`
	Start     [2]float64    `json:"start"`
	End       [2]float64    `json:"end"`
	Thickness float64       `json:"thickness"`
	Height    float64       `json:"height"`
	Alignment string        `json:"alignment"`
	Openings  []jsonOpening `json:"openings,omitempty"`
}

type jsonOpening struct {
	ID       string  `json:"id"`
	Kind     string  `json:"kind"`
	Position float64 `json:"position"`
	Width    float64 `json:"width"`
	Height   float64 `json:"height"`
	Sill     float64 `json:"sill,omitempty"`
}

// ParseJSON parses a plan from JSON.
func ParseJSON(data []byte) (*plan.Plan, error) {
	var j jsonPlan
	if err := json.Unmarshal(data, &j); err != nil {
		return nil, err
	}

	p := plan.New(j.Name)
	for _, pt := range j.Outline {
		p.Outline = append(p.Outline, geom.Point{X: pt[0], Y: pt[1]})
	}

	for _, jw := range j.Walls {
		w := plan.Wall{
			ID:        jw.ID,
			Start:     geom.Point{X: jw.Start[0], Y: jw.Start[1]},
			End:       geom.Point{X: jw.End[0], Y: jw.End[1]},
			Thickness: jw.Thickness,
			Height:    jw.Height,
			Alignment: geom.ParseAlignment(jw.Alignment),
		}
		for _, jo := range jw.Openings {
			w.Openings = append(w.Openings, plan.Opening{
				ID:       jo.ID,
				Kind:     plan.OpeningKind(jo.Kind),
				Position: jo.Position,
				Width:    jo.Width,
				Height:   jo.Height,
				Sill:     jo.Sill,
			})
		}
		p.Walls = append(p.Walls, w)
	}

	return p, nil
}

// ToJSON converts a plan to JSON.
func ToJSON(p *plan.Plan, pretty bool) ([]byte, error) {
	j := jsonPlan{
		Name:  p.Name,
		Walls: make([]jsonWall, 0, len(p.Walls)),
	}
	for _, pt := range p.Outline {
		j.Outline = append(j.Outline, [2]float64{pt.X, pt.Y})
	}

	for i := range p.Walls {
		w := &p.Walls[i]
		jw := jsonWall{
			ID:        w.ID,
			Start:     [2]float64{w.Start.X, w.Start.Y},
			End:       [2]float64{w.End.X, w.End.Y},
			Thickness: w.Thickness,
			Height:    w.Height,
			Alignment: w.Alignment.String(),
		}
		for _, o := range w.Openings {
			jw.Openings = append(jw.Openings, jsonOpening{
				ID:       o.ID,
				Kind:     string(o.Kind),
				Position: o.Position,
				Width:    o.Width,
				Height:   o.Height,
				Sill:     o.Sill,
			})
		}
		j.Walls = append(j.Walls, jw)
	}

	if pretty {
		return json.MarshalIndent(j, "", "  ")
	}
	return json.Marshal(j)
}
