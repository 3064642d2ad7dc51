package quicked

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// LoadParams reads Params overrides from a colon-delimited config file in
// the style of the teacher's DBConf format: one "Field:Value" pair per line,
// '#' comments, starting from DefaultParams and overriding only the fields
// present.
func LoadParams(r io.Reader) (conf Params, err error) {
	defer func() {
		if perr := recover(); perr != nil {
			if e, ok := perr.(error); ok {
				err = e
			} else {
				err = fmt.Errorf("%v", perr)
			}
		}
	}()

	conf = DefaultParams()

	csvReader := csv.NewReader(r)
	csvReader.Comma = ':'
	csvReader.Comment = '#'
	csvReader.FieldsPerRecord = 2
	csvReader.TrimLeadingSpace = true

	lines, err := csvReader.ReadAll()
	if err != nil {
		return Params{}, err
	}

	atoui := func(s string) uint {
		v, perr := strconv.ParseUint(strings.TrimSpace(s), 10, 32)
		if perr != nil {
			panic(perr)
		}
		return uint(v)
	}
	atob := func(s string) bool {
		return strings.TrimSpace(s) == "1"
	}

	for _, line := range lines {
		switch line[0] {
		case "Algo":
			switch strings.TrimSpace(line[1]) {
			case "quicked":
				conf.Algo = AlgoQuicked
			case "windowed":
				conf.Algo = AlgoWindowed
			case "banded":
				conf.Algo = AlgoBanded
			case "hirschberg":
				conf.Algo = AlgoHirschberg
			default:
				return Params{}, fmt.Errorf("unknown algo %q", line[1])
			}
		case "Bandwidth":
			conf.Bandwidth = atoui(line[1])
		case "WindowSize":
			conf.WindowSize = atoui(line[1])
		case "OverlapSize":
			conf.OverlapSize = atoui(line[1])
		case "OnlyScore":
			conf.OnlyScore = atob(line[1])
		case "ForceScalar":
			conf.ForceScalar = atob(line[1])
		case "ExternalTimer":
			conf.ExternalTimer = atob(line[1])
		default:
			return Params{}, fmt.Errorf("invalid Params field: %s", line[0])
		}
	}

	return conf, nil
}

// Write serializes params in the same colon-delimited format LoadParams
// reads, covering every field LoadParams recognizes.
func (p Params) Write(w io.Writer) error {
	csvWriter := csv.NewWriter(w)
	csvWriter.Comma = ':'

	bs := func(b bool) string {
		if b {
			return "1"
		}
		return "0"
	}
	records := [][]string{
		{"Algo", p.Algo.String()},
		{"Bandwidth", fmt.Sprintf("%d", p.Bandwidth)},
		{"WindowSize", fmt.Sprintf("%d", p.WindowSize)},
		{"OverlapSize", fmt.Sprintf("%d", p.OverlapSize)},
		{"OnlyScore", bs(p.OnlyScore)},
		{"ForceScalar", bs(p.ForceScalar)},
		{"ExternalTimer", bs(p.ExternalTimer)},
	}
	if err := csvWriter.WriteAll(records); err != nil {
		return err
	}
	return nil
}
