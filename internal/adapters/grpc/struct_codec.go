package grpc

import (
	"fmt"
	"math"
	"time"

	"google.golang.org/protobuf/types/known/structpb"

	domainRouting "github.com/andrescamacho/galaxy-routing-go/internal/domain/routing"
)

// The routing service exchanges google.protobuf.Struct messages. The
// functions below convert them to and from the routing DTOs; both the server
// and GRPCRoutingClient use them.

// EncodeRouteRequest converts a route request to its wire form
func EncodeRouteRequest(req *domainRouting.RouteRequest) (*structpb.Struct, error) {
	return structpb.NewStruct(map[string]interface{}{
		"game_id":             req.GameID,
		"carrier_id":          req.CarrierID,
		"source_star_id":      req.SourceStarID,
		"destination_star_id": req.DestinationStarID,
		"mode":                req.Mode,
	})
}

// DecodeRouteRequest parses a route request
func DecodeRouteRequest(s *structpb.Struct) (*domainRouting.RouteRequest, error) {
	f := fields(s)
	return &domainRouting.RouteRequest{
		GameID:            f.getString("game_id"),
		CarrierID:         f.getString("carrier_id"),
		SourceStarID:      f.getString("source_star_id"),
		DestinationStarID: f.getString("destination_star_id"),
		Mode:              f.getString("mode"),
	}, f.err
}

// EncodeRouteResponse converts a route response to its wire form
func EncodeRouteResponse(resp *domainRouting.RouteResponse) (*structpb.Struct, error) {
	steps := make([]interface{}, len(resp.Steps))
	for i, step := range resp.Steps {
		steps[i] = map[string]interface{}{
			"from":     step.From,
			"to":       step.To,
			"distance": step.Distance,
			"ticks":    step.Ticks,
			"warp":     step.Warp,
			"wormhole": step.Wormhole,
		}
	}

	return structpb.NewStruct(map[string]interface{}{
		"route_id":       resp.RouteID,
		"stars":          stringsToList(resp.Stars),
		"steps":          steps,
		"total_ticks":    resp.TotalTicks,
		"total_distance": resp.TotalDistance,
		"reachable":      resp.Reachable,
		"mode":           resp.Mode,
		"nodes_expanded": resp.NodesExpanded,
	})
}

// DecodeRouteResponse parses a route response
func DecodeRouteResponse(s *structpb.Struct) (*domainRouting.RouteResponse, error) {
	f := fields(s)
	resp := &domainRouting.RouteResponse{
		RouteID:       f.getString("route_id"),
		Stars:         f.getStrings("stars"),
		TotalTicks:    f.getInt("total_ticks"),
		TotalDistance: f.getFloat("total_distance"),
		Reachable:     f.getBool("reachable"),
		Mode:          f.getString("mode"),
		NodesExpanded: f.getInt("nodes_expanded"),
		Steps:         []*domainRouting.RouteStepData{},
	}
	for _, raw := range f.getList("steps") {
		step, ok := raw.(map[string]interface{})
		if !ok {
			f.mismatch("steps", "list of objects", raw)
			continue
		}
		sf := structFields{m: step, err: f.err}
		resp.Steps = append(resp.Steps, &domainRouting.RouteStepData{
			From:     sf.getString("from"),
			To:       sf.getString("to"),
			Distance: sf.getFloat("distance"),
			Ticks:    sf.getInt("ticks"),
			Warp:     sf.getBool("warp"),
			Wormhole: sf.getBool("wormhole"),
		})
		f.err = sf.err
	}
	return resp, f.err
}

// EncodeETARequest converts an ETA request to its wire form
func EncodeETARequest(req *domainRouting.ETARequest) (*structpb.Struct, error) {
	m := map[string]interface{}{
		"game_id":    req.GameID,
		"carrier_id": req.CarrierID,
	}
	if req.UptoWaypoint != nil {
		m["upto_waypoint"] = *req.UptoWaypoint
	}
	return structpb.NewStruct(m)
}

// DecodeETARequest parses an ETA request
func DecodeETARequest(s *structpb.Struct) (*domainRouting.ETARequest, error) {
	f := fields(s)
	req := &domainRouting.ETARequest{
		GameID:    f.getString("game_id"),
		CarrierID: f.getString("carrier_id"),
	}
	if f.has("upto_waypoint") {
		upto := f.getInt("upto_waypoint")
		req.UptoWaypoint = &upto
	}
	return req, f.err
}

// EncodeETAResponse converts an ETA response to its wire form
func EncodeETAResponse(resp *domainRouting.ETAResponse) (*structpb.Struct, error) {
	m := map[string]interface{}{
		"carrier_id":   resp.CarrierID,
		"per_waypoint": intsToList(resp.PerWaypoint),
		"cumulative":   intsToList(resp.Cumulative),
		"total":        resp.Total,
	}
	if !resp.ArrivesAt.IsZero() {
		m["arrives_at"] = resp.ArrivesAt.UTC().Format(time.RFC3339Nano)
	}
	return structpb.NewStruct(m)
}

// DecodeETAResponse parses an ETA response
func DecodeETAResponse(s *structpb.Struct) (*domainRouting.ETAResponse, error) {
	f := fields(s)
	resp := &domainRouting.ETAResponse{
		CarrierID:   f.getString("carrier_id"),
		PerWaypoint: f.getInts("per_waypoint"),
		Cumulative:  f.getInts("cumulative"),
		Total:       f.getInt("total"),
	}
	if f.has("arrives_at") {
		at, err := time.Parse(time.RFC3339Nano, f.getString("arrives_at"))
		if err != nil && f.err == nil {
			f.err = fmt.Errorf("field arrives_at: %w", err)
		}
		resp.ArrivesAt = at
	}
	return resp, f.err
}

// EncodeReachableRequest converts a reachable-stars request to its wire form
func EncodeReachableRequest(req *domainRouting.ReachableRequest) (*structpb.Struct, error) {
	return structpb.NewStruct(map[string]interface{}{
		"game_id":    req.GameID,
		"carrier_id": req.CarrierID,
		"star_id":    req.StarID,
	})
}

// DecodeReachableRequest parses a reachable-stars request
func DecodeReachableRequest(s *structpb.Struct) (*domainRouting.ReachableRequest, error) {
	f := fields(s)
	return &domainRouting.ReachableRequest{
		GameID:    f.getString("game_id"),
		CarrierID: f.getString("carrier_id"),
		StarID:    f.getString("star_id"),
	}, f.err
}

// EncodeReachableResponse converts a reachable-stars response to its wire form
func EncodeReachableResponse(resp *domainRouting.ReachableResponse) (*structpb.Struct, error) {
	return structpb.NewStruct(map[string]interface{}{
		"star_id":          resp.StarID,
		"hyperspace_range": resp.HyperspaceRange,
		"neighbors":        stringsToList(resp.Neighbors),
	})
}

// DecodeReachableResponse parses a reachable-stars response
func DecodeReachableResponse(s *structpb.Struct) (*domainRouting.ReachableResponse, error) {
	f := fields(s)
	return &domainRouting.ReachableResponse{
		StarID:          f.getString("star_id"),
		HyperspaceRange: f.getFloat("hyperspace_range"),
		Neighbors:       f.getStrings("neighbors"),
	}, f.err
}

// structFields reads typed values out of a decoded Struct, keeping the first
// type mismatch in err. Missing keys read as zero values.
type structFields struct {
	m   map[string]interface{}
	err error
}

func fields(s *structpb.Struct) *structFields {
	if s == nil {
		return &structFields{m: map[string]interface{}{}}
	}
	return &structFields{m: s.AsMap()}
}

func (f *structFields) has(key string) bool {
	v, ok := f.m[key]
	return ok && v != nil
}

func (f *structFields) mismatch(key, want string, got interface{}) {
	if f.err == nil {
		f.err = fmt.Errorf("field %s: expected %s, got %T", key, want, got)
	}
}

func (f *structFields) getString(key string) string {
	if !f.has(key) {
		return ""
	}
	s, ok := f.m[key].(string)
	if !ok {
		f.mismatch(key, "string", f.m[key])
	}
	return s
}

func (f *structFields) getFloat(key string) float64 {
	if !f.has(key) {
		return 0
	}
	n, ok := f.m[key].(float64)
	if !ok {
		f.mismatch(key, "number", f.m[key])
	}
	return n
}

func (f *structFields) getInt(key string) int {
	n := f.getFloat(key)
	if n != math.Trunc(n) {
		f.mismatch(key, "integer", n)
	}
	return int(n)
}

func (f *structFields) getBool(key string) bool {
	if !f.has(key) {
		return false
	}
	b, ok := f.m[key].(bool)
	if !ok {
		f.mismatch(key, "bool", f.m[key])
	}
	return b
}

func (f *structFields) getList(key string) []interface{} {
	if !f.has(key) {
		return nil
	}
	l, ok := f.m[key].([]interface{})
	if !ok {
		f.mismatch(key, "list", f.m[key])
	}
	return l
}

func (f *structFields) getStrings(key string) []string {
	raw := f.getList(key)
	out := make([]string, 0, len(raw))
	for _, v := range raw {
		s, ok := v.(string)
		if !ok {
			f.mismatch(key, "list of strings", v)
		}
		out = append(out, s)
	}
	return out
}

func (f *structFields) getInts(key string) []int {
	raw := f.getList(key)
	out := make([]int, 0, len(raw))
	for _, v := range raw {
		n, ok := v.(float64)
		if !ok || n != math.Trunc(n) {
			f.mismatch(key, "list of integers", v)
		}
		out = append(out, int(n))
	}
	return out
}

func stringsToList(values []string) []interface{} {
	out := make([]interface{}, len(values))
	for i, v := range values {
		out[i] = v
	}
	return out
}

func intsToList(values []int) []interface{} {
	out := make([]interface{}, len(values))
	for i, v := range values {
		out[i] = v
	}
	return out
}
