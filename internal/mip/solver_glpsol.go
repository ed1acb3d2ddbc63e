package mip

import (
	"bytes"
	"fmt"
	"os"
	"os/exec"
	"strings"
)

type glpsolSolver struct{}

// NewGlpsolSolver binds to GLPK's standalone glpsol executable.
func NewGlpsolSolver() MIPSolver {
	return &glpsolSolver{}
}

func (solver *glpsolSolver) Solve(program MIP) (Assignment, error) {
	glpsolPath := getExecutablePath("glpsolPath", "glpsol")
	lp := program.ToLP() // Transform the program into CPLEX LP string format

	// Create a temporary file to hold the LP content
	inputTempFile, err := os.CreateTemp("", "model-*.lp")
	if err != nil {
		return nil, fmt.Errorf("failed to create temporary file: %v", err)
	}
	defer os.Remove(inputTempFile.Name()) // Ensure the file is removed after execution

	outputTempFile, err := os.CreateTemp("", "glpsol_output-*.txt")
	if err != nil {
		return nil, fmt.Errorf("failed to create temporary file: %v", err)
	}
	defer os.Remove(outputTempFile.Name()) // Ensure the file is removed after execution
	if err := outputTempFile.Close(); err != nil {
		return nil, fmt.Errorf("failed to close temporary file: %v", err)
	}

	// Write the LP content to the temporary file
	if _, err := inputTempFile.WriteString(lp); err != nil {
		return nil, fmt.Errorf("failed to write LP to temporary file: %v", err)
	}
	if err := inputTempFile.Close(); err != nil {
		return nil, fmt.Errorf("failed to close temporary file: %v", err)
	}

	cmd := exec.Command(glpsolPath, "--lp", inputTempFile.Name(), "-o", outputTempFile.Name())

	var stdOut bytes.Buffer
	cmd.Stdout = &stdOut
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("an error occurred during glpsol execution: %v : %v", err.Error(), stderr.String())
	}

	output, err := os.ReadFile(outputTempFile.Name())
	if err != nil {
		return nil, fmt.Errorf("failed to read output file: %v", err)
	}

	return solver.parseSolution(program, string(output), stdOut.String())
}

// parseSolution reads the "Status:" line of the glpsol report and, when the
// program has an integer optimum, the column activity listing.
func (solver *glpsolSolver) parseSolution(program MIP, output, stdOut string) (Assignment, error) {
	status := ""
	for _, line := range strings.Split(output, "\n") {
		if strings.HasPrefix(line, "Status:") {
			status = strings.TrimSpace(strings.TrimPrefix(line, "Status:"))
			break
		}
	}

	if strings.Contains(status, "EMPTY") ||
		strings.Contains(stdOut, "PROBLEM HAS NO PRIMAL FEASIBLE SOLUTION") ||
		strings.Contains(stdOut, "PROBLEM HAS NO INTEGER FEASIBLE SOLUTION") {
		return nil, nil
	} else if !strings.Contains(status, "OPTIMAL") {
		return nil, fmt.Errorf("unexpected glpsol status: %q", status)
	}

	assignment := make(Assignment, program.Variables)
	parseNamedValues(output, assignment)
	return assignment, nil
}
