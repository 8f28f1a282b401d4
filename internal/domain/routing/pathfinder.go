package routing

import (
	"fmt"
	"math"

	"github.com/andrescamacho/galaxy-routing-go/internal/domain/galaxy"
	"github.com/andrescamacho/galaxy-routing-go/internal/domain/navigation"
	"github.com/andrescamacho/galaxy-routing-go/internal/domain/shared"
)

// SearchMode selects how the open set is ordered
type SearchMode string

const (
	// SearchModeDijkstra orders by cost from start only
	SearchModeDijkstra SearchMode = "dijkstra"
	// SearchModeAStar adds an admissible remaining-ticks estimate
	SearchModeAStar SearchMode = "astar"
)

// ParseSearchMode parses a mode name; empty means Dijkstra
func ParseSearchMode(name string) (SearchMode, error) {
	switch SearchMode(name) {
	case "", SearchModeDijkstra:
		return SearchModeDijkstra, nil
	case SearchModeAStar:
		return SearchModeAStar, nil
	default:
		return "", shared.NewInvalidInputError("search_mode", fmt.Sprintf("unknown mode %q", name))
	}
}

// SearchStats counts the work one search performed
type SearchStats struct {
	NodesExpanded   int
	NodesDiscovered int
	Relaxations     int
}

// SearchResult is the outcome of one route search. An unreachable
// destination yields an empty star list and Reachable == false.
type SearchResult struct {
	Stars      []galaxy.StarID
	TotalTicks int
	Reachable  bool
	Mode       SearchMode
	Stats      SearchStats
}

// Pathfinder finds minimum-tick routes between stars. Edges are derived on
// demand from hyperspace range and wormholes; edge costs are the simulated
// tick cost of the hop for the traveling carrier.
type Pathfinder struct {
	calculator *navigation.TravelCalculator
	mode       SearchMode
}

// NewPathfinder creates a pathfinder
func NewPathfinder(calculator *navigation.TravelCalculator, mode SearchMode) *Pathfinder {
	if mode == "" {
		mode = SearchModeDijkstra
	}
	return &Pathfinder{calculator: calculator, mode: mode}
}

// NewPathfinderForSnapshot creates a pathfinder using a snapshot's constants
// and diplomacy
func NewPathfinderForSnapshot(snapshot *galaxy.Snapshot, mode SearchMode) *Pathfinder {
	return NewPathfinder(navigation.NewTravelCalculatorForSnapshot(snapshot), mode)
}

// Mode returns the search mode
func (p *Pathfinder) Mode() SearchMode {
	return p.mode
}

// FindRoute returns the minimum-tick star sequence from sourceID to destID,
// both included, or an empty sequence when destID is unreachable
func (p *Pathfinder) FindRoute(
	stars []galaxy.Star,
	carrier *galaxy.Carrier,
	sourceID, destID galaxy.StarID,
	hyperspaceRange float64,
) ([]galaxy.StarID, error) {
	result, err := p.Search(stars, carrier, sourceID, destID, hyperspaceRange)
	if err != nil {
		return nil, err
	}
	return result.Stars, nil
}

// SearchSnapshot searches within a snapshot using the carrier's own
// hyperspace range
func (p *Pathfinder) SearchSnapshot(
	snapshot *galaxy.Snapshot,
	carrier *galaxy.Carrier,
	sourceID, destID galaxy.StarID,
) (*SearchResult, error) {
	return p.Search(snapshot.Stars(), carrier, sourceID, destID, snapshot.HyperspaceRange(carrier))
}

// Search runs the route search and reports cost and statistics
func (p *Pathfinder) Search(
	stars []galaxy.Star,
	carrier *galaxy.Carrier,
	sourceID, destID galaxy.StarID,
	hyperspaceRange float64,
) (*SearchResult, error) {
	if carrier == nil {
		return nil, shared.NewInvalidInputError("carrier", "is required")
	}
	if math.IsNaN(hyperspaceRange) || math.IsInf(hyperspaceRange, 0) || hyperspaceRange <= 0 {
		return nil, shared.NewInvalidInputError("hyperspace_range",
			fmt.Sprintf("must be positive and finite, got %v", hyperspaceRange))
	}

	index, err := indexStars(stars)
	if err != nil {
		return nil, err
	}
	source, ok := index[sourceID]
	if !ok {
		return nil, shared.NewNotFoundError("star", string(sourceID))
	}
	dest, ok := index[destID]
	if !ok {
		return nil, shared.NewNotFoundError("star", string(destID))
	}

	s := &search{
		pathfinder: p,
		stars:      stars,
		carrier:    carrier,
		dest:       dest,
		hsRange:    hyperspaceRange,
		nodes:      make([]*searchNode, len(stars)),
		closed:     make([]bool, len(stars)),
	}
	if p.mode == SearchModeAStar {
		s.heuristic = newTickHeuristic(p.calculator.SpeedModel(), stars, index, carrier, dest)
	}

	return s.run(source)
}

// search holds the scratch graph of one Search call
type search struct {
	pathfinder *Pathfinder
	stars      []galaxy.Star
	carrier    *galaxy.Carrier
	dest       int
	hsRange    float64
	heuristic  func(star int) float64

	nodes  []*searchNode
	closed []bool
	open   openSet
	seq    int
	stats  SearchStats
}

func (s *search) run(source int) (*SearchResult, error) {
	s.discover(source, 0, -1)

	for s.open.Len() > 0 {
		current := s.open.pop()
		s.closed[current.star] = true
		s.stats.NodesExpanded++

		if current.star == s.dest {
			return s.result(current), nil
		}

		if err := s.expand(current); err != nil {
			return nil, err
		}
	}

	return &SearchResult{
		Stars: []galaxy.StarID{},
		Mode:  s.pathfinder.mode,
		Stats: s.stats,
	}, nil
}

func (s *search) expand(current *searchNode) error {
	from := &s.stars[current.star]
	if !current.expanded {
		current.neighbors = navigation.NeighborIndexes(from, s.stars, s.hsRange)
		current.expanded = true
	}

	for _, n := range current.neighbors {
		if s.closed[n] {
			continue
		}

		cost, err := s.pathfinder.calculator.HopTicks(from, &s.stars[n], s.carrier, 0)
		if err != nil {
			return err
		}
		candidate := current.costFromStart + float64(cost.Ticks)

		node := s.nodes[n]
		if node == nil {
			s.discover(n, candidate, current.star)
			continue
		}
		if candidate < node.costFromStart {
			node.costFromStart = candidate
			node.totalCost = candidate + s.estimate(n)
			node.parent = current.star
			s.open.update(node)
			s.stats.Relaxations++
		}
	}

	return nil
}

func (s *search) discover(star int, cost float64, parent int) {
	node := &searchNode{
		star:          star,
		costFromStart: cost,
		totalCost:     cost + s.estimate(star),
		parent:        parent,
		seq:           s.seq,
	}
	s.seq++
	s.nodes[star] = node
	s.open.push(node)
	s.stats.NodesDiscovered++
}

func (s *search) estimate(star int) float64 {
	if s.heuristic == nil {
		return 0
	}
	return s.heuristic(star)
}

func (s *search) result(dest *searchNode) *SearchResult {
	var path []galaxy.StarID
	for node := dest; node != nil; {
		path = append(path, s.stars[node.star].ID)
		if node.parent < 0 {
			break
		}
		node = s.nodes[node.parent]
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return &SearchResult{
		Stars:      path,
		TotalTicks: int(dest.costFromStart),
		Reachable:  true,
		Mode:       s.pathfinder.mode,
		Stats:      s.stats,
	}
}

// newTickHeuristic estimates remaining ticks as the straight-line distance at
// the carrier's best possible tick distance. When any mutual wormhole exists
// the estimate is capped at one tick, the cost of a wormhole hop.
func newTickHeuristic(
	speed navigation.SpeedModel,
	stars []galaxy.Star,
	index map[galaxy.StarID]int,
	carrier *galaxy.Carrier,
	dest int,
) func(int) float64 {
	maxTickDistance := speed.MaxTickDistance(carrier.Specialist)
	wormholes := hasWormholePair(stars, index)
	target := stars[dest].Location

	return func(star int) float64 {
		if star == dest {
			return 0
		}
		estimate := math.Ceil(shared.Distance(stars[star].Location, target) / maxTickDistance)
		if wormholes && estimate > 1 {
			return 1
		}
		return estimate
	}
}

func hasWormholePair(stars []galaxy.Star, index map[galaxy.StarID]int) bool {
	for i := range stars {
		if !stars[i].HasWormhole() {
			continue
		}
		if j, ok := index[stars[i].WormholeTo]; ok && navigation.IsWormholePair(&stars[i], &stars[j]) {
			return true
		}
	}
	return false
}

func indexStars(stars []galaxy.Star) (map[galaxy.StarID]int, error) {
	index := make(map[galaxy.StarID]int, len(stars))
	for i := range stars {
		star := &stars[i]
		if err := star.Location.Validate(); err != nil {
			return nil, fmt.Errorf("star %s: %w", star.ID, err)
		}
		if _, exists := index[star.ID]; exists {
			return nil, shared.NewInvalidInputError("star.id", fmt.Sprintf("duplicate star %s", star.ID))
		}
		index[star.ID] = i
	}
	return index, nil
}
