package steps

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/cucumber/godog"

	routingAdapter "github.com/andrescamacho/galaxy-routing-go/internal/adapters/routing"
	"github.com/andrescamacho/galaxy-routing-go/internal/application/mediator"
	"github.com/andrescamacho/galaxy-routing-go/internal/application/routing/queries"
	"github.com/andrescamacho/galaxy-routing-go/internal/domain/galaxy"
	"github.com/andrescamacho/galaxy-routing-go/internal/domain/routing"
	"github.com/andrescamacho/galaxy-routing-go/internal/domain/shared"
	"github.com/andrescamacho/galaxy-routing-go/test/helpers"
)

const scenarioGameID = "game-1"

type galaxyContext struct {
	constants       galaxy.Constants
	stars           []galaxy.Star
	carriers        []galaxy.Carrier
	formalAlliances bool
	alliances       [][2]shared.PlayerID
	routeResponse   *routing.RouteResponse
	etaResponse     *routing.ETAResponse
	reachable       *routing.ReachableResponse
	err             error
}

func (gc *galaxyContext) reset() {
	gc.constants = galaxy.DefaultConstants()
	gc.stars = nil
	gc.carriers = nil
	gc.formalAlliances = false
	gc.alliances = nil
	gc.routeResponse = nil
	gc.etaResponse = nil
	gc.reachable = nil
	gc.err = nil
}

func (gc *galaxyContext) star(id string) (*galaxy.Star, error) {
	for i := range gc.stars {
		if string(gc.stars[i].ID) == id {
			return &gc.stars[i], nil
		}
	}
	return nil, fmt.Errorf("star %s not defined in scenario", id)
}

func (gc *galaxyContext) carrier(id string) (*galaxy.Carrier, error) {
	for i := range gc.carriers {
		if string(gc.carriers[i].ID) == id {
			return &gc.carriers[i], nil
		}
	}
	return nil, fmt.Errorf("carrier %s not defined in scenario", id)
}

// planner builds the snapshot from the scenario state and serves it through
// the same mediator pipeline the daemon uses
func (gc *galaxyContext) planner() (routing.RoutePlanner, error) {
	alliances := galaxy.NewAllianceTable(gc.formalAlliances)
	for _, pair := range gc.alliances {
		alliances.Ally(pair[0], pair[1])
	}

	snapshot, err := galaxy.NewSnapshot(scenarioGameID, gc.stars, gc.carriers, alliances, gc.constants)
	if err != nil {
		return nil, err
	}

	m := mediator.NewMediator()
	if err := queries.RegisterHandlers(m, helpers.NewStubSnapshotRepository(snapshot), routing.SearchModeDijkstra, shared.RealClock{}); err != nil {
		return nil, err
	}
	return routingAdapter.NewLocalRoutePlanner(m), nil
}

// Galaxy setup steps

func (gc *galaxyContext) aGalaxyWithLightYearAndCarrierSpeed(lightYear, speed int) error {
	gc.constants.LightYear = float64(lightYear)
	gc.constants.CarrierSpeed = float64(speed)
	return nil
}

func (gc *galaxyContext) theFollowingStars(table *godog.Table) error {
	for i, row := range table.Rows {
		if i == 0 {
			continue // Skip header
		}
		x, err := strconv.ParseFloat(row.Cells[1].Value, 64)
		if err != nil {
			return fmt.Errorf("row %d: invalid x: %w", i, err)
		}
		y, err := strconv.ParseFloat(row.Cells[2].Value, 64)
		if err != nil {
			return fmt.Errorf("row %d: invalid y: %w", i, err)
		}
		gc.stars = append(gc.stars, helpers.NewStar(row.Cells[0].Value, x, y))
	}
	return nil
}

func (gc *galaxyContext) aStarAt(id string, x, y float64) error {
	gc.stars = append(gc.stars, helpers.NewStar(id, x, y))
	return nil
}

func (gc *galaxyContext) starsAreLinkedByAWormhole(a, b string) error {
	if err := gc.starHasAWormholeTo(a, b); err != nil {
		return err
	}
	return gc.starHasAWormholeTo(b, a)
}

func (gc *galaxyContext) starHasAWormholeTo(from, to string) error {
	star, err := gc.star(from)
	if err != nil {
		return err
	}
	star.WormholeTo = galaxy.StarID(to)
	return nil
}

func (gc *galaxyContext) starIsOwnedByWithAWarpGate(id, owner string) error {
	star, err := gc.star(id)
	if err != nil {
		return err
	}
	playerID, err := shared.NewPlayerID(owner)
	if err != nil {
		return err
	}
	star.Owner = playerID
	star.WarpGate = true
	return nil
}

func (gc *galaxyContext) starHasAnUnownedWarpGate(id string) error {
	star, err := gc.star(id)
	if err != nil {
		return err
	}
	star.WarpGate = true
	return nil
}

func (gc *galaxyContext) starHasASpecialistThatLocksWarpGates(id string) error {
	star, err := gc.star(id)
	if err != nil {
		return err
	}
	star.Specialist = &galaxy.Specialist{ID: 1, Name: "scrambler", Effects: []galaxy.SpecialistEffect{galaxy.LockWarpGates{}}}
	return nil
}

func (gc *galaxyContext) formalAlliancesAreEnabled() error {
	gc.formalAlliances = true
	return nil
}

func (gc *galaxyContext) isAlliedWith(a, b string) error {
	first, err := shared.NewPlayerID(a)
	if err != nil {
		return err
	}
	second, err := shared.NewPlayerID(b)
	if err != nil {
		return err
	}
	gc.alliances = append(gc.alliances, [2]shared.PlayerID{first, second})
	return nil
}

// Carrier setup steps

func (gc *galaxyContext) carrierOwnedByOrbitsWithHyperspaceLevel(id, owner, starID string, level int) error {
	star, err := gc.star(starID)
	if err != nil {
		return err
	}
	playerID, err := shared.NewPlayerID(owner)
	if err != nil {
		return err
	}
	carrier := helpers.NewCarrier(id, playerID, star)
	carrier.EffectiveHyperspaceLevel = level
	gc.carriers = append(gc.carriers, carrier)
	return nil
}

func (gc *galaxyContext) carrierIsInTransitAt(id string, x, y float64) error {
	carrier, err := gc.carrier(id)
	if err != nil {
		return err
	}
	carrier.Orbiting = ""
	carrier.Location = shared.Location{X: x, Y: y}
	return nil
}

func (gc *galaxyContext) carrierHasASpecialistThatUnlocksWarpGates(id string) error {
	carrier, err := gc.carrier(id)
	if err != nil {
		return err
	}
	carrier.Specialist = &galaxy.Specialist{ID: 2, Name: "navigator", Effects: []galaxy.SpecialistEffect{galaxy.UnlockWarpGates{}}}
	return nil
}

func (gc *galaxyContext) carrierHasWaypoints(id string, table *godog.Table) error {
	carrier, err := gc.carrier(id)
	if err != nil {
		return err
	}
	for i, row := range table.Rows {
		if i == 0 {
			continue // Skip header
		}
		delay, err := strconv.Atoi(row.Cells[2].Value)
		if err != nil {
			return fmt.Errorf("row %d: invalid delay: %w", i, err)
		}
		carrier.Waypoints = append(carrier.Waypoints, galaxy.Waypoint{
			Source:      galaxy.StarID(row.Cells[0].Value),
			Destination: galaxy.StarID(row.Cells[1].Value),
			DelayTicks:  delay,
		})
	}
	return nil
}

// Action steps

func (gc *galaxyContext) iPlanARouteUsing(carrierID, from, to, mode string) error {
	planner, err := gc.planner()
	if err != nil {
		return err
	}
	gc.routeResponse, gc.err = planner.PlanRoute(context.Background(), &routing.RouteRequest{
		GameID:            scenarioGameID,
		CarrierID:         carrierID,
		SourceStarID:      from,
		DestinationStarID: to,
		Mode:              mode,
	})
	return nil
}

func (gc *galaxyContext) iPlanARouteFrom(carrierID, from, to string) error {
	return gc.iPlanARouteUsing(carrierID, from, to, "")
}

func (gc *galaxyContext) iPlanARouteTo(carrierID, to string) error {
	return gc.iPlanARouteUsing(carrierID, "", to, "")
}

func (gc *galaxyContext) iEstimateArrivalForCarrier(carrierID string) error {
	planner, err := gc.planner()
	if err != nil {
		return err
	}
	gc.etaResponse, gc.err = planner.EstimateArrival(context.Background(), &routing.ETARequest{
		GameID:    scenarioGameID,
		CarrierID: carrierID,
	})
	return nil
}

func (gc *galaxyContext) iListTheStarsReachableByCarrier(carrierID string) error {
	planner, err := gc.planner()
	if err != nil {
		return err
	}
	gc.reachable, gc.err = planner.ReachableStars(context.Background(), &routing.ReachableRequest{
		GameID:    scenarioGameID,
		CarrierID: carrierID,
	})
	return nil
}

// Assertion steps

func (gc *galaxyContext) requireRoute() error {
	if gc.err != nil {
		return fmt.Errorf("expected a route but got error: %w", gc.err)
	}
	if gc.routeResponse == nil {
		return fmt.Errorf("no route was planned")
	}
	return nil
}

func (gc *galaxyContext) theRouteShouldBe(expected string) error {
	if err := gc.requireRoute(); err != nil {
		return err
	}
	if !gc.routeResponse.Reachable {
		return fmt.Errorf("expected route %q but destination was unreachable", expected)
	}
	actual := strings.Join(gc.routeResponse.Stars, ", ")
	if actual != expected {
		return fmt.Errorf("expected route %q but got %q", expected, actual)
	}
	return nil
}

func (gc *galaxyContext) theRouteShouldTakeTicks(expected int) error {
	if err := gc.requireRoute(); err != nil {
		return err
	}
	if gc.routeResponse.TotalTicks != expected {
		return fmt.Errorf("expected %d ticks but got %d", expected, gc.routeResponse.TotalTicks)
	}
	return nil
}

func (gc *galaxyContext) everyHopShouldUseWarp() error {
	if err := gc.requireRoute(); err != nil {
		return err
	}
	for _, step := range gc.routeResponse.Steps {
		if !step.Warp {
			return fmt.Errorf("hop %s → %s did not use warp", step.From, step.To)
		}
	}
	return nil
}

func (gc *galaxyContext) noRouteShouldBeFound() error {
	if err := gc.requireRoute(); err != nil {
		return err
	}
	if gc.routeResponse.Reachable || len(gc.routeResponse.Stars) != 0 {
		return fmt.Errorf("expected no route but got %v", gc.routeResponse.Stars)
	}
	return nil
}

func (gc *galaxyContext) requireETA() error {
	if gc.err != nil {
		return fmt.Errorf("expected an ETA but got error: %w", gc.err)
	}
	if gc.etaResponse == nil {
		return fmt.Errorf("no ETA was estimated")
	}
	return nil
}

func (gc *galaxyContext) theWaypointTicksShouldBe(expected string) error {
	if err := gc.requireETA(); err != nil {
		return err
	}
	return compareInts("waypoint ticks", expected, gc.etaResponse.PerWaypoint)
}

func (gc *galaxyContext) theCumulativeTicksShouldBe(expected string) error {
	if err := gc.requireETA(); err != nil {
		return err
	}
	return compareInts("cumulative ticks", expected, gc.etaResponse.Cumulative)
}

func (gc *galaxyContext) theTotalETAShouldBeTicks(expected int) error {
	if err := gc.requireETA(); err != nil {
		return err
	}
	if gc.etaResponse.Total != expected {
		return fmt.Errorf("expected total ETA %d but got %d", expected, gc.etaResponse.Total)
	}
	return nil
}

func (gc *galaxyContext) theReachableStarsShouldBe(expected string) error {
	if gc.err != nil {
		return fmt.Errorf("expected reachable stars but got error: %w", gc.err)
	}
	if gc.reachable == nil {
		return fmt.Errorf("reachable stars were not listed")
	}
	actual := strings.Join(gc.reachable.Neighbors, ", ")
	if actual != expected {
		return fmt.Errorf("expected reachable stars %q but got %q", expected, actual)
	}
	return nil
}

func (gc *galaxyContext) theRequestShouldFailWith(message string) error {
	if gc.err == nil {
		return fmt.Errorf("expected error containing %q but request succeeded", message)
	}
	if !strings.Contains(gc.err.Error(), message) {
		return fmt.Errorf("expected error containing %q but got %q", message, gc.err.Error())
	}
	return nil
}

func compareInts(label, expected string, actual []int) error {
	parts := make([]string, len(actual))
	for i, v := range actual {
		parts[i] = strconv.Itoa(v)
	}
	if got := strings.Join(parts, ", "); got != expected {
		return fmt.Errorf("expected %s %q but got %q", label, expected, got)
	}
	return nil
}

// InitializeGalaxyScenario registers the route search, warp gate and ETA steps
func InitializeGalaxyScenario(sc *godog.ScenarioContext) {
	gc := &galaxyContext{}

	sc.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		gc.reset()
		return ctx, nil
	})

	// Setup
	sc.Step(`^a galaxy with light year (\d+) and carrier speed (\d+)$`, gc.aGalaxyWithLightYearAndCarrierSpeed)
	sc.Step(`^the following stars:$`, gc.theFollowingStars)
	sc.Step(`^a star "([^"]*)" at (-?\d+(?:\.\d+)?), (-?\d+(?:\.\d+)?)$`, gc.aStarAt)
	sc.Step(`^stars "([^"]*)" and "([^"]*)" are linked by a wormhole$`, gc.starsAreLinkedByAWormhole)
	sc.Step(`^star "([^"]*)" has a wormhole to "([^"]*)"$`, gc.starHasAWormholeTo)
	sc.Step(`^star "([^"]*)" is owned by "([^"]*)" with a warp gate$`, gc.starIsOwnedByWithAWarpGate)
	sc.Step(`^star "([^"]*)" has an unowned warp gate$`, gc.starHasAnUnownedWarpGate)
	sc.Step(`^star "([^"]*)" has a specialist that locks warp gates$`, gc.starHasASpecialistThatLocksWarpGates)
	sc.Step(`^formal alliances are enabled$`, gc.formalAlliancesAreEnabled)
	sc.Step(`^"([^"]*)" is allied with "([^"]*)"$`, gc.isAlliedWith)
	sc.Step(`^carrier "([^"]*)" owned by "([^"]*)" orbits "([^"]*)" with hyperspace level (\d+)$`, gc.carrierOwnedByOrbitsWithHyperspaceLevel)
	sc.Step(`^carrier "([^"]*)" is in transit at (-?\d+(?:\.\d+)?), (-?\d+(?:\.\d+)?)$`, gc.carrierIsInTransitAt)
	sc.Step(`^carrier "([^"]*)" has a specialist that unlocks warp gates$`, gc.carrierHasASpecialistThatUnlocksWarpGates)
	sc.Step(`^carrier "([^"]*)" has waypoints:$`, gc.carrierHasWaypoints)

	// Actions
	sc.Step(`^I plan a route for carrier "([^"]*)" from "([^"]*)" to "([^"]*)" using (dijkstra|astar)$`, gc.iPlanARouteUsing)
	sc.Step(`^I plan a route for carrier "([^"]*)" from "([^"]*)" to "([^"]*)"$`, gc.iPlanARouteFrom)
	sc.Step(`^I plan a route for carrier "([^"]*)" to "([^"]*)"$`, gc.iPlanARouteTo)
	sc.Step(`^I estimate arrival for carrier "([^"]*)"$`, gc.iEstimateArrivalForCarrier)
	sc.Step(`^I list the stars reachable by carrier "([^"]*)"$`, gc.iListTheStarsReachableByCarrier)

	// Assertions
	sc.Step(`^the route should be "([^"]*)"$`, gc.theRouteShouldBe)
	sc.Step(`^the route should take (\d+) ticks$`, gc.theRouteShouldTakeTicks)
	sc.Step(`^every hop should use warp$`, gc.everyHopShouldUseWarp)
	sc.Step(`^no route should be found$`, gc.noRouteShouldBeFound)
	sc.Step(`^the waypoint ticks should be "([^"]*)"$`, gc.theWaypointTicksShouldBe)
	sc.Step(`^the cumulative ticks should be "([^"]*)"$`, gc.theCumulativeTicksShouldBe)
	sc.Step(`^the total ETA should be (\d+) ticks$`, gc.theTotalETAShouldBeTicks)
	sc.Step(`^the reachable stars should be "([^"]*)"$`, gc.theReachableStarsShouldBe)
	sc.Step(`^the request should fail with "([^"]*)"$`, gc.theRequestShouldFailWith)
}
