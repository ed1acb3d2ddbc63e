package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"slices"
	"strings"

	"sudomip/internal/mip"
	"sudomip/internal/model"
)

var (
	validSolvers = []string{"highs", "glpsol", "gurobi", "gophersat", "gini"}
	solvers      = map[string]func() mip.MIPSolver{
		"highs":     mip.NewHighsSolver,
		"glpsol":    mip.NewGlpsolSolver,
		"gurobi":    mip.NewGurobiSolver,
		"gophersat": mip.NewGophersatSolver,
		"gini":      mip.NewGiniSolver,
	}
)

func main() {
	// Define arguments
	rankPtr := flag.Uint64("rank", 3, "Puzzle rank: the sub-grid dimension, where classic Sudoku is 3")
	puzzlePtr := flag.String("puzzle", "", "Fixed-cell string, read left-to-right, top-to-bottom; any character outside 1-9, 0, A-Z leaves its cell unconstrained")
	filePathPtr := flag.String("file", "", "Path to a file holding the fixed-cell string; newlines are ignored so one row per line works")
	solverPtr := flag.String("solver", "gophersat", "MIP backend to use. Allowed values are: \"highs\", \"glpsol\", \"gurobi\", \"gophersat\", \"gini\", where \"gophersat\" is the default")
	outFilePathPtr := flag.String("out", "", "Path to the file where the board will be written; if empty, it'll be written into the Standard Output")
	flag.Parse()
	rank := *rankPtr
	solverStr := strings.ToLower(*solverPtr)
	outFile := *outFilePathPtr

	// Validate arguments
	if !slices.Contains(validSolvers, solverStr) {
		log.Fatalf("%v is not a valid solver", solverStr)
	} else if *puzzlePtr != "" && *filePathPtr != "" {
		log.Fatal("-puzzle and -file are mutually exclusive")
	}

	// Extract the fixed-cell string
	fixed := *puzzlePtr
	if *filePathPtr != "" {
		content, err := os.ReadFile(*filePathPtr)
		if err != nil {
			log.Fatalf("cannot read puzzle file: %v", err)
		}
		fixed = strings.NewReplacer("\r", "", "\n", "").Replace(string(content))
	}

	// Initialize engines
	solver := solvers[solverStr]()
	sudoku := model.NewSudoku(solver)

	// Solve the puzzle
	board, err := sudoku.Solve(rank, fixed)
	if errors.Is(err, model.ErrInfeasible) {
		fmt.Println("Infeasible")
		os.Exit(20)
	} else if err != nil {
		log.Fatalf("an error occurred during solving: %v", err)
	}

	// Verify board correctness
	if !sudoku.Verify(board, rank, fixed) {
		log.Fatal("Verification failed")
	}

	// Verify outfile is empty, if so then write the board to the Standard Output
	if outFile == "" {
		fmt.Println(board)
	} else if err := os.WriteFile(outFile, []byte(board+"\n"), 0666); err != nil {
		log.Fatalf("an error occurred while writing to the output file: %v", err)
	}
}
