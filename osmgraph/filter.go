// SPDX-License-Identifier: MIT
//
// File: filter.go
// Role: Per-network way acceptance and one-way direction rules.

package osmgraph

type tagSet map[string]bool

func newTagSet(values ...string) tagSet {
	s := make(tagSet, len(values))
	for _, v := range values {
		s[v] = true
	}

	return s
}

// drivingTypes lists the highway classes routable by car.
var drivingTypes = newTagSet(
	"motorway", "motorway_link", "trunk", "trunk_link",
	"primary", "primary_link", "secondary", "secondary_link", "tertiary", "tertiary_link",
	"residential", "living_street", "service", "track", "unclassified", "road",
)

// Highway classes never routable on foot or by bike.
var (
	walkExcluded = newTagSet(
		"abandoned", "bus_guideway", "construction", "cycleway", "motor",
		"planned", "platform", "proposed", "raceway", "motorway", "motorway_link",
	)
	bikeExcluded = newTagSet(
		"abandoned", "bus_guideway", "construction", "corridor", "elevator", "escalator",
		"footway", "motor", "planned", "platform", "proposed", "raceway", "steps",
		"motorway", "motorway_link",
	)
	allExcluded = newTagSet(
		"abandoned", "construction", "planned", "platform", "proposed", "raceway",
	)
)

var (
	restrictedAccess = newTagSet("private", "no")
	drivingService   = newTagSet("parking", "parking_aisle", "private", "emergency_access")
)

// accepts reports whether a way with the given tags belongs to network nt.
func (nt NetworkType) accepts(tags map[string]string) bool {
	highway, ok := tags["highway"]
	if !ok || highway == "" || tags["area"] == "yes" {
		return false
	}

	switch nt {
	case NetworkDrive:
		if !drivingTypes[highway] || restrictedAccess[tags["access"]] {
			return false
		}
		if restrictedAccess[tags["motor_vehicle"]] || restrictedAccess[tags["motorcar"]] {
			return false
		}

		return !drivingService[tags["service"]]
	case NetworkWalk:
		if walkExcluded[highway] || restrictedAccess[tags["access"]] {
			return false
		}

		return tags["foot"] != "no" && tags["service"] != "private"
	case NetworkBike:
		if bikeExcluded[highway] || restrictedAccess[tags["access"]] {
			return false
		}

		return tags["bicycle"] != "no" && tags["service"] != "private"
	case NetworkAll:
		return !allExcluded[highway]
	default:
		return false
	}
}

// direction describes which way(s) a way can be traversed.
type direction int

const (
	bothWays direction = iota
	forwardOnly
	backwardOnly
)

// travel returns the traversal direction of a way for network nt.
// Walking ignores one-way tagging. Motorways and roundabouts are one-way unless
// tagged oneway=no.
func (nt NetworkType) travel(tags map[string]string) direction {
	if nt == NetworkWalk {
		return bothWays
	}

	switch tags["oneway"] {
	case "yes", "true", "1":
		return forwardOnly
	case "-1", "reverse":
		return backwardOnly
	case "no", "false", "0":
		return bothWays
	}

	if tags["junction"] == "roundabout" {
		return forwardOnly
	}
	if h := tags["highway"]; h == "motorway" || h == "motorway_link" {
		return forwardOnly
	}

	return bothWays
}
