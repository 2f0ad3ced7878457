package planfile

import (
	"archive/zip"
	"bytes"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/ha1tch/plan-toolkit/pkg/plan"
)

// Meta represents the meta.toml content of a .plan archive.
type Meta struct {
	Version   int
	Name      string
	WallCount int
	Units     string
}

// GenerateMeta creates meta.toml content.
func GenerateMeta(p *plan.Plan) string {
	var sb strings.Builder

	sb.WriteString("[plan]\n")
	sb.WriteString("version = 1\n")
	if p.Name != "" {
		sb.WriteString(fmt.Sprintf("name = %q\n", p.Name))
	}
	sb.WriteString(fmt.Sprintf("walls = %d\n", len(p.Walls)))
	sb.WriteString("units = \"m\"\n")

	return sb.String()
}

// ParseMeta parses meta.toml content.
// Simple parser that doesn't require external TOML library.
func ParseMeta(text string) (*Meta, error) {
	meta := &Meta{}

	var currentSection string

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		// Section header
		if strings.HasPrefix(line, "[") && strings.HasSuffix(line, "]") {
			currentSection = line[1 : len(line)-1]
			continue
		}

		// Key = value
		parts := strings.SplitN(line, "=", 2)
		if len(parts) != 2 {
			continue
		}

		key := strings.TrimSpace(parts[0])
		value := strings.TrimSpace(parts[1])

		// Remove quotes from value
		if len(value) >= 2 && value[0] == '"' && value[len(value)-1] == '"' {
			value = value[1 : len(value)-1]
		}

		if currentSection != "plan" {
			continue
		}

		switch key {
		case "version":
			meta.Version, _ = strconv.Atoi(value)
		case "name":
			meta.Name = value
		case "walls":
			meta.WallCount, _ = strconv.Atoi(value)
		case "units":
			meta.Units = value
		}
	}

	return meta, nil
}

// WritePlanFile writes a plan to a .plan file.
func WritePlanFile(path string, p *plan.Plan) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	return WritePlan(file, p)
}

// WritePlan writes a plan to a writer in .plan format.
func WritePlan(w io.Writer, p *plan.Plan) error {
	zw := zip.NewWriter(w)
	defer zw.Close()

	data, err := ToJSON(p, true)
	if err != nil {
		return err
	}

	jw, err := zw.Create("plan.json")
	if err != nil {
		return err
	}
	if _, err := jw.Write(data); err != nil {
		return err
	}

	mw, err := zw.Create("meta.toml")
	if err != nil {
		return err
	}
	if _, err := mw.Write([]byte(GenerateMeta(p))); err != nil {
		return err
	}

	return nil
}

// ReadPlanFile reads a plan from a .plan file.
func ReadPlanFile(path string) (*plan.Plan, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	info, err := file.Stat()
	if err != nil {
		return nil, err
	}

	return ReadPlan(file, info.Size())
}

// ReadPlan reads a plan from a reader containing .plan format.
func ReadPlan(r io.ReaderAt, size int64) (*plan.Plan, error) {
	zr, err := zip.NewReader(r, size)
	if err != nil {
		return nil, err
	}

	var jsonContent []byte

	for _, f := range zr.File {
		if f.Name != "plan.json" {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return nil, err
		}
		jsonContent, err = io.ReadAll(rc)
		rc.Close()
		if err != nil {
			return nil, err
		}
	}

	if jsonContent == nil {
		return nil, fmt.Errorf("plan.json not found in archive")
	}

	return ParseJSON(jsonContent)
}

// ReadPlanBytes reads a plan from bytes in .plan format.
func ReadPlanBytes(data []byte) (*plan.Plan, error) {
	r := bytes.NewReader(data)
	return ReadPlan(r, int64(len(data)))
}
