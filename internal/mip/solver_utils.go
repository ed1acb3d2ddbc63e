package mip

import (
	"encoding/json"
	"os"
	"strconv"
	"strings"

	"github.com/mitchellh/mapstructure"
	"github.com/samber/lo"
)

var ConfigPath = "config.json"

// getExecutablePath resolves a backend binary through the config.json map,
// falling back to the bare binary name so installations on PATH work without
// any configuration.
func getExecutablePath(solver, fallback string) string {
	bytes, err := os.ReadFile(ConfigPath)
	if err != nil {
		return fallback
	}
	var configJson map[string]any
	if err := json.Unmarshal(bytes, &configJson); err != nil {
		return fallback
	}

	var config map[string]string
	mapstructure.Decode(configJson, &config)

	if path, ok := config[solver]; ok {
		return path
	}
	return fallback
}

// parseNamedValues extracts "x<id> <value>" pairs from a solver solution
// listing. The name may sit anywhere in the line (glpsol prepends a row
// number and a status marker) and lines that do not fit the pattern are
// skipped, since every backend surrounds the column section with its own
// headers and footers.
func parseNamedValues(solverOutput string, assignment Assignment) {
	lo.ForEach(strings.Split(solverOutput, "\n"), func(line string, _ int) {
		fields := strings.Fields(line)

		name, nameIndex, ok := lo.FindIndexOf(fields, func(field string) bool {
			return len(field) > 1 && field[0] == 'x'
		})
		if !ok {
			return
		}
		id, err := strconv.ParseUint(name[1:], 10, 64)
		if err != nil || id == 0 || id > uint64(len(assignment)) {
			return
		}

		for _, field := range fields[nameIndex+1:] {
			if value, err := strconv.ParseFloat(field, 64); err == nil {
				assignment[id-1] = value > 0.5
				return
			}
		}
	})
}
