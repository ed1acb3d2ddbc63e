package mip

import (
	"bytes"
	"fmt"
	"os"
	"os/exec"
	"strings"
)

type gurobiSolver struct{}

// NewGurobiSolver binds to the gurobi_cl executable. A missing or expired
// license surfaces as an error, never as an empty board.
func NewGurobiSolver() MIPSolver {
	return &gurobiSolver{}
}

func (solver *gurobiSolver) Solve(program MIP) (Assignment, error) {
	gurobiPath := getExecutablePath("gurobiPath", "gurobi_cl")
	lp := program.ToLP() // Transform the program into CPLEX LP string format

	// Create a temporary file to hold the LP content
	inputTempFile, err := os.CreateTemp("", "model-*.lp")
	if err != nil {
		return nil, fmt.Errorf("failed to create temporary file: %v", err)
	}
	defer os.Remove(inputTempFile.Name()) // Ensure the file is removed after execution

	// gurobi_cl infers the result format from the .sol suffix
	resultTempFile, err := os.CreateTemp("", "gurobi_result-*.sol")
	if err != nil {
		return nil, fmt.Errorf("failed to create temporary file: %v", err)
	}
	defer os.Remove(resultTempFile.Name()) // Ensure the file is removed after execution
	if err := resultTempFile.Close(); err != nil {
		return nil, fmt.Errorf("failed to close temporary file: %v", err)
	}

	// Write the LP content to the temporary file
	if _, err := inputTempFile.WriteString(lp); err != nil {
		return nil, fmt.Errorf("failed to write LP to temporary file: %v", err)
	}
	if err := inputTempFile.Close(); err != nil {
		return nil, fmt.Errorf("failed to close temporary file: %v", err)
	}

	cmd := exec.Command(gurobiPath, "ResultFile="+resultTempFile.Name(), inputTempFile.Name())

	var stdOut bytes.Buffer
	cmd.Stdout = &stdOut
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("an error occurred during gurobi_cl execution: %v : %v", err.Error(), stderr.String())
	}

	if strings.Contains(stdOut.String(), "Model is infeasible") {
		return nil, nil
	} else if !strings.Contains(stdOut.String(), "Optimal solution found") {
		return nil, fmt.Errorf("gurobi_cl reported no optimal solution: %v", stdOut.String())
	}

	result, err := os.ReadFile(resultTempFile.Name())
	if err != nil {
		return nil, fmt.Errorf("failed to read result file: %v", err)
	}

	assignment := make(Assignment, program.Variables)
	parseNamedValues(string(result), assignment)
	return assignment, nil
}
