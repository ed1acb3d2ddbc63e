package mip

import (
	"bytes"
	"fmt"
	"os"
	"os/exec"
	"strings"
)

type highsSolver struct{}

func NewHighsSolver() MIPSolver {
	return &highsSolver{}
}

func (solver *highsSolver) Solve(program MIP) (Assignment, error) {
	highsPath := getExecutablePath("highsPath", "highs")
	lp := program.ToLP() // Transform the program into CPLEX LP string format

	// Create a temporary file to hold the LP content
	inputTempFile, err := os.CreateTemp("", "model-*.lp")
	if err != nil {
		return nil, fmt.Errorf("failed to create temporary file: %v", err)
	}
	defer os.Remove(inputTempFile.Name()) // Ensure the file is removed after execution

	solutionTempFile, err := os.CreateTemp("", "highs_solution-*.sol")
	if err != nil {
		return nil, fmt.Errorf("failed to create temporary file: %v", err)
	}
	defer os.Remove(solutionTempFile.Name()) // Ensure the file is removed after execution
	if err := solutionTempFile.Close(); err != nil {
		return nil, fmt.Errorf("failed to close temporary file: %v", err)
	}

	// Write the LP content to the temporary file
	if _, err := inputTempFile.WriteString(lp); err != nil {
		return nil, fmt.Errorf("failed to write LP to temporary file: %v", err)
	}
	if err := inputTempFile.Close(); err != nil {
		return nil, fmt.Errorf("failed to close temporary file: %v", err)
	}

	cmd := exec.Command(highsPath, "--solution_file", solutionTempFile.Name(), inputTempFile.Name())

	var stdOut bytes.Buffer
	cmd.Stdout = &stdOut
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("an error occurred during highs execution: %v : %v", err.Error(), stderr.String())
	}

	solution, err := os.ReadFile(solutionTempFile.Name())
	if err != nil {
		return nil, fmt.Errorf("failed to read solution file: %v", err)
	}

	return solver.parseSolution(program, string(solution), stdOut.String())
}

// parseSolution reads the "Model status" section of the HiGHS solution file
// and, when the model is optimal, the variable listing below "# Columns".
func (solver *highsSolver) parseSolution(program MIP, solution, stdOut string) (Assignment, error) {
	status := ""
	lines := strings.Split(solution, "\n")
	for i, line := range lines {
		if strings.HasPrefix(line, "Model status") {
			// The status sits either after a colon or on the following line,
			// depending on the solution style
			status = strings.TrimSpace(strings.TrimPrefix(strings.TrimPrefix(line, "Model status"), ":"))
			if status == "" && i+1 < len(lines) {
				status = strings.TrimSpace(lines[i+1])
			}
			break
		}
	}

	if strings.Contains(status, "Infeasible") || strings.Contains(stdOut, "Infeasible") {
		return nil, nil
	} else if !strings.Contains(status, "Optimal") && !strings.Contains(stdOut, "Optimal") {
		return nil, fmt.Errorf("unexpected highs model status: %q", status)
	}

	assignment := make(Assignment, program.Variables)
	parseNamedValues(solution, assignment)
	return assignment, nil
}
