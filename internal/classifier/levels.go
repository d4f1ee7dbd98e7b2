package classifier

import "github.com/Veraticus/robot-taxonomy/internal/model"

// check is a hand-picked secondary keyword pass: any hit yields label.
type check struct {
	label    string
	keywords []string
}

// levelRule configures the single-label evaluator for one level: the
// secondary checks tried in order when no registry category matched, and
// the label used when those fail too.
type levelRule struct {
	level     model.Level
	secondary []check
	fallback  string
}

// singleLabelRules lists the levels decided by first-match over the
// registry. Domain and Species are handled separately.
var singleLabelRules = []levelRule{
	{
		level: model.LevelKingdom,
		secondary: []check{
			{"Medical", []string{"surgery", "medical", "hospital"}},
			{"Industrial", []string{"factory", "manufacturing", "industrial"}},
			{"Service", []string{"service", "assistance", "help"}},
		},
		fallback: "Research",
	},
	{
		level: model.LevelPhylum,
		secondary: []check{
			{"Humanoid", []string{"humanoid", "human-like", "bipedal"}},
			{"Manipulator", []string{"arm", "manipulator", "gripper"}},
		},
		fallback: "Mobile",
	},
	{
		level: model.LevelClass,
		secondary: []check{
			{"Wheeled", []string{"wheel", "car", "vehicle"}},
			{"Legged", []string{"leg", "walking", "bipedal"}},
		},
		fallback: "Static",
	},
	{
		level: model.LevelOrder,
		secondary: []check{
			{"Autonomous", []string{"autonomous", "automatic", "self"}},
			{"Teleoperated", []string{"remote", "controlled", "manual"}},
		},
		fallback: "Semi_Autonomous",
	},
	{
		level: model.LevelFamily,
		secondary: []check{
			{"Vision_Based", []string{"camera", "vision", "image"}},
		},
		fallback: "Minimal_Sensing",
	},
	{
		level: model.LevelGenus,
		secondary: []check{
			{"Electric", []string{"motor", "electric", "battery"}},
		},
		fallback: "Electric",
	},
}

// Domain is a fixed three-way decision that ignores the registry table.
var domainChecks = []check{
	{"Virtual", []string{"virtual", "software", "simulation", "digital"}},
	{"Hybrid", []string{"hybrid", "mixed", "augmented", "telepresence"}},
}

const domainFallback = "Physical"

// speciesByKingdom supplies the species used when no species keyword hit.
var speciesByKingdom = map[string]string{
	"Medical":    "Surgery",
	"Industrial": "Assembly",
	"Service":    "Companionship",
}

const speciesFallback = "Research"
