package main

import (
	"context"
	"delivery-plan-solver/internal/adapters/casefile"
	"delivery-plan-solver/internal/config"
	"delivery-plan-solver/internal/solver"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

// solver is the one-shot command line front end: it reads a case document,
// plans the delivery and writes the solution report next to where it runs.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	if len(os.Args) != 2 {
		log.Fatalf("usage: %s <case-file>", os.Args[0])
	}
	casePath := os.Args[1]

	outPath := config.Get("SOLUTION_PATH", "solucion.txt")
	opts := solver.Options{
		FailOnInfeasible: config.GetBool("FAIL_ON_INFEASIBLE", false),
	}

	start := time.Now()

	c, err := casefile.Read(casePath)
	if err != nil {
		log.Fatal(err)
	}

	plan, err := solver.Solve(context.Background(), c, opts)
	if err != nil {
		log.Fatal(err)
	}

	elapsed := time.Since(start)

	fmt.Print(casefile.FormatSolution(plan, elapsed))

	if err := casefile.WriteSolution(outPath, plan, elapsed); err != nil {
		log.Fatal(err)
	}
	log.Printf("Solution written to %s (total_cost=%.2f, %d active hubs)", outPath, plan.TotalCost, len(plan.ActiveHubs))
}
