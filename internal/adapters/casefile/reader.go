package casefile

import (
	"bufio"
	"delivery-plan-solver/internal/domain"
	"fmt"
	"io"
	"log"
	"math"
	"os"
	"strconv"
	"strings"
)

const (
	keyNodes    = "NODES"
	keyHubs     = "HUBS"
	keyPackages = "PACKAGES"
	keyCapacity = "TRUCK_CAPACITY"
	keyDepot    = "DEPOT_ID"

	sectionEdges = "EDGES"
)

// Read loads the case file at path.
func Read(path string) (*domain.Case, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("read case: %w", err)
	}
	defer f.Close()
	return Parse(f)
}

// Parse decodes a delivery case document from r.
//
// The format is line oriented: "//" starts a comment, a header block sets
// five integer values ending with DEPOT_ID, and banner lines carrying "---"
// introduce the NODES, HUBS, PACKAGES and EDGES sections. Each section reads
// as many valid records as its header count declares (edges are unbounded).
// Malformed records are skipped with a warning and do not count, so a
// shortfall makes the scan run on past later banners until enough valid
// records turn up or the input ends.
func Parse(r io.Reader) (*domain.Case, error) {
	lines, err := readLines(r)
	if err != nil {
		return nil, err
	}

	cfg, err := parseHeader(lines)
	if err != nil {
		return nil, err
	}

	c := &domain.Case{
		Config:   cfg,
		Nodes:    make(map[int]domain.Coordinates),
		Hubs:     []domain.Hub{},
		Packages: make(map[int]domain.Package),
		Edges:    make(map[domain.EdgeKey]float64),
	}

	parseNode := func(fields []string) error {
		id, x, y, err := threeInts(fields)
		if err != nil {
			return err
		}
		c.Nodes[id] = domain.Coordinates{X: x, Y: y}
		return nil
	}

	// Duplicate hub ids update the cost in place so the hub keeps its
	// original position; hub order decides tie-breaks later.
	hubAt := make(map[int]int)
	parseHub := func(fields []string) error {
		if len(fields) < 2 {
			return errMalformed
		}
		id, err := strconv.Atoi(fields[0])
		if err != nil {
			return err
		}
		cost, err := strconv.ParseFloat(fields[1], 64)
		if err != nil {
			return err
		}
		if at, ok := hubAt[id]; ok {
			c.Hubs[at].Cost = cost
			return nil
		}
		hubAt[id] = len(c.Hubs)
		c.Hubs = append(c.Hubs, domain.Hub{HubID: id, Cost: cost})
		return nil
	}

	parsePackage := func(fields []string) error {
		id, origin, dest, err := threeInts(fields)
		if err != nil {
			return err
		}
		c.Packages[id] = domain.Package{PackageID: id, Origin: origin, Destination: dest}
		return nil
	}

	// The forward direction always takes the latest weight; the reverse is
	// only filled in when absent, so an explicit opposite edge stands.
	parseEdge := func(fields []string) error {
		if len(fields) < 3 {
			return errMalformed
		}
		from, err := strconv.Atoi(fields[0])
		if err != nil {
			return err
		}
		to, err := strconv.Atoi(fields[1])
		if err != nil {
			return err
		}
		weight, err := strconv.ParseFloat(fields[2], 64)
		if err != nil {
			return err
		}
		c.Edges[domain.EdgeKey{From: from, To: to}] = weight
		if _, ok := c.Edges[domain.EdgeKey{From: to, To: from}]; !ok {
			c.Edges[domain.EdgeKey{From: to, To: from}] = weight
		}
		return nil
	}

	if start, ok := findSection(lines, keyNodes); ok {
		readRecords(lines, start, cfg.NodeCount, "node", parseNode)
	}
	if start, ok := findSection(lines, keyHubs); ok {
		readRecords(lines, start, cfg.HubCount, "hub", parseHub)
	}
	if start, ok := findSection(lines, keyPackages); ok {
		readRecords(lines, start, cfg.PackageCount, "package", parsePackage)
	}
	if start, ok := findSection(lines, sectionEdges); ok {
		readRecords(lines, start, math.MaxInt, "edge", parseEdge)
	}

	return c, nil
}

var errMalformed = fmt.Errorf("malformed record")

func readLines(r io.Reader) ([]string, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read case: %w", err)
	}
	return lines, nil
}

// parseHeader scans for the five header keys. The scan stops at DEPOT_ID,
// the closing header key, so section data below it can never clobber the
// header values. Any key still missing afterwards is an error.
func parseHeader(lines []string) (domain.Config, error) {
	var cfg domain.Config
	seen := make(map[string]bool)

scan:
	for _, line := range lines {
		text := stripComment(line)
		if text == "" {
			continue
		}
		fields := strings.Fields(text)
		if len(fields) < 2 {
			continue
		}

		key := fields[0]
		switch key {
		case keyNodes, keyHubs, keyPackages, keyCapacity, keyDepot:
		default:
			continue
		}

		value, err := strconv.Atoi(fields[1])
		if err != nil {
			log.Printf("warning: header %s has non-integer value %q", key, fields[1])
			if key == keyDepot {
				break scan
			}
			continue
		}

		seen[key] = true
		switch key {
		case keyNodes:
			cfg.NodeCount = value
		case keyHubs:
			cfg.HubCount = value
		case keyPackages:
			cfg.PackageCount = value
		case keyCapacity:
			cfg.TruckCapacity = value
		case keyDepot:
			cfg.DepotID = value
			break scan
		}
	}

	var missing []string
	for _, key := range []string{keyNodes, keyHubs, keyPackages, keyCapacity, keyDepot} {
		if !seen[key] {
			missing = append(missing, key)
		}
	}
	if len(missing) > 0 {
		return domain.Config{}, fmt.Errorf("case header: missing %s", strings.Join(missing, ", "))
	}
	return cfg, nil
}

// findSection returns the index of the first line after the banner naming
// the section. Banners are lines carrying "---" and the section name, with
// or without a comment marker.
func findSection(lines []string, name string) (int, bool) {
	for i, line := range lines {
		if strings.Contains(line, "---") && strings.Contains(line, name) {
			return i + 1, true
		}
	}
	return 0, false
}

// readRecords parses data lines from start until quota records succeed or
// the input ends. Failed lines are skipped with a warning and do not count
// toward the quota.
func readRecords(lines []string, start, quota int, section string, parse func(fields []string) error) {
	read := 0
	for i := start; i < len(lines) && read < quota; i++ {
		text := stripComment(lines[i])
		if text == "" {
			continue
		}
		if err := parse(strings.Fields(text)); err != nil {
			log.Printf("warning: skipping malformed %s record: %q", section, text)
			continue
		}
		read++
	}
}

func threeInts(fields []string) (int, int, int, error) {
	if len(fields) < 3 {
		return 0, 0, 0, errMalformed
	}
	a, err := strconv.Atoi(fields[0])
	if err != nil {
		return 0, 0, 0, err
	}
	b, err := strconv.Atoi(fields[1])
	if err != nil {
		return 0, 0, 0, err
	}
	c, err := strconv.Atoi(fields[2])
	if err != nil {
		return 0, 0, 0, err
	}
	return a, b, c, nil
}

func stripComment(line string) string {
	if at := strings.Index(line, "//"); at >= 0 {
		line = line[:at]
	}
	return strings.TrimSpace(line)
}
