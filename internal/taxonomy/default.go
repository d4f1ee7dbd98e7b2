package taxonomy

import "github.com/Veraticus/robot-taxonomy/internal/model"

// definition is a display entry: a category name and its one-line description.
type definition struct {
	Name        string
	Description string
}

// keywordSet is a matching entry: a category name and the lower-case
// substrings that recognize it.
type keywordSet struct {
	Name     string
	Keywords []string
}

// defaultDefinitions is the built-in display taxonomy used when no
// definition document is available.
var defaultDefinitions = map[model.Level][]definition{
	model.LevelDomain: {
		{"Physical", "Material world operation with direct environmental interaction"},
		{"Virtual", "Digital environment operation (software agents, simulated systems)"},
		{"Hybrid", "Bridging physical and virtual domains (AR/VR robotics, telepresence)"},
	},
	model.LevelKingdom: {
		{"Industrial", "Manufacturing, production, factory automation"},
		{"Service", "Human assistance, domestic, commercial applications"},
		{"Medical", "Healthcare, surgical assistance, therapeutic applications"},
		{"Military", "Defense, security, tactical operations"},
		{"Research", "Scientific investigation and experimentation"},
		{"Entertainment", "Recreation, education, social interaction"},
		{"Agriculture", "Farming, crop management, agricultural automation"},
		{"Space", "Extraterrestrial exploration and operations"},
		{"Marine", "Underwater and surface water operations"},
	},
	model.LevelPhylum: {
		{"Manipulator", "Articulated arm systems with fixed bases"},
		{"Mobile", "Systems capable of translocation and navigation"},
		{"Humanoid", "Human-like bipedal morphology"},
		{"Modular", "Reconfigurable systems with interchangeable components"},
		{"Swarm", "Collective systems operating as coordinated groups"},
		{"Soft", "Compliant, deformable structures with flexible materials"},
		{"Hybrid_Morphology", "Combined rigid-soft or multi-modal body plans"},
	},
	model.LevelClass: {
		{"Static", "Fixed position systems"},
		{"Wheeled", "Wheel-based locomotion"},
		{"Legged", "Leg-based locomotion"},
		{"Flying", "Aerial locomotion"},
		{"Swimming", "Aquatic locomotion"},
		{"Morphing", "Shape-changing locomotion"},
	},
	model.LevelOrder: {
		{"Teleoperated", "Human-controlled operation"},
		{"Semi_Autonomous", "Partial autonomous operation with human oversight"},
		{"Autonomous", "Fully autonomous operation"},
		{"Collaborative", "Human-robot collaborative operation"},
	},
	model.LevelFamily: {
		{"Vision_Based", "Cameras and visual processing systems"},
		{"LiDAR_Based", "Laser-based distance and mapping systems"},
		{"Tactile_Based", "Touch and force sensing systems"},
		{"Multimodal", "Integration of multiple sensing technologies"},
		{"Minimal_Sensing", "Simple sensors with basic environmental awareness"},
		{"GPS_Navigation", "Satellite-based positioning systems"},
		{"Acoustic_Based", "Sound and ultrasonic sensing systems"},
		{"Chemical_Sensing", "Detection of chemical compounds and gases"},
	},
	model.LevelGenus: {
		{"Electric", "Electric motors and servo systems"},
		{"Hydraulic", "Fluid pressure-based actuation"},
		{"Pneumatic", "Compressed air actuation"},
		{"Hybrid_Actuation", "Combination of multiple actuation methods"},
		{"Smart_Materials", "Shape memory alloys, piezoelectric actuators"},
		{"Bio_Hybrid", "Integration of biological and artificial components"},
		{"Passive", "No active actuation, gravity or environmental forces"},
		{"Magnetic", "Magnetic field-based actuation"},
	},
	model.LevelSpecies: {
		{"Surgery", "Surgical procedures and medical interventions"},
		{"Inspection", "Quality control and inspection tasks"},
		{"Transport", "Material and object transportation"},
		{"Assembly", "Manufacturing and assembly operations"},
		{"Exploration", "Environmental and spatial exploration"},
		{"Surveillance", "Monitoring and security applications"},
		{"Companionship", "Social interaction and companionship"},
		{"Education", "Educational and training applications"},
		{"Mapping", "Environmental mapping and surveying"},
		{"Rescue", "Search and rescue operations"},
		{"Entertainment", "Recreational and entertainment purposes"},
		{"Agricultural_Task", "Farming and agricultural operations"},
		{"Construction", "Building and construction tasks"},
		{"Maintenance", "Equipment and infrastructure maintenance"},
		{"Environmental_Monitoring", "Environmental data collection and monitoring"},
	},
}

// defaultKeywords is the hand-authored matching table. It is maintained
// separately from defaultDefinitions and does not follow definition
// documents; slice order is the match order.
var defaultKeywords = map[model.Level][]keywordSet{
	model.LevelDomain: {
		{"Physical", []string{"physical", "real", "hardware", "mechanical", "material"}},
		{"Virtual", []string{"virtual", "software", "simulation", "digital", "computer"}},
		{"Hybrid", []string{"hybrid", "mixed", "augmented", "telepresence", "ar", "vr"}},
	},
	model.LevelKingdom: {
		{"Industrial", []string{"industrial", "manufacturing", "factory", "production", "assembly"}},
		{"Service", []string{"service", "domestic", "household", "assistance", "help"}},
		{"Medical", []string{"medical", "surgical", "healthcare", "hospital", "therapy"}},
		{"Military", []string{"military", "defense", "security", "tactical", "combat"}},
		{"Research", []string{"research", "experimental", "laboratory", "scientific"}},
		{"Entertainment", []string{"entertainment", "toy", "game", "recreation", "fun"}},
		{"Agriculture", []string{"agriculture", "farming", "crop", "harvest", "agricultural"}},
		{"Space", []string{"space", "satellite", "planetary", "extraterrestrial", "orbit"}},
		{"Marine", []string{"marine", "underwater", "submarine", "aquatic", "ocean"}},
	},
	model.LevelPhylum: {
		{"Manipulator", []string{"manipulator", "arm", "articulated", "fixed", "stationary"}},
		{"Mobile", []string{"mobile", "moving", "navigation", "locomotion"}},
		{"Humanoid", []string{"humanoid", "human-like", "bipedal", "anthropomorphic"}},
		{"Modular", []string{"modular", "reconfigurable", "interchangeable", "adaptable"}},
		{"Swarm", []string{"swarm", "collective", "multiple", "coordinated", "group"}},
		{"Soft", []string{"soft", "flexible", "deformable", "compliant", "elastic"}},
		{"Hybrid_Morphology", []string{"hybrid", "combined", "multi-modal", "mixed"}},
	},
	model.LevelClass: {
		{"Static", []string{"static", "fixed", "stationary", "immobile"}},
		{"Wheeled", []string{"wheel", "wheeled", "rolling", "car", "vehicle"}},
		{"Legged", []string{"leg", "legged", "walking", "bipedal", "quadrupedal"}},
		{"Flying", []string{"flying", "aerial", "drone", "helicopter", "aircraft"}},
		{"Swimming", []string{"swimming", "aquatic", "underwater", "submarine"}},
		{"Morphing", []string{"morphing", "shape-changing", "transformable"}},
	},
	model.LevelOrder: {
		{"Teleoperated", []string{"teleoperated", "remote", "controlled", "manual", "human-controlled"}},
		{"Semi_Autonomous", []string{"semi-autonomous", "partial", "assisted", "supervised"}},
		{"Autonomous", []string{"autonomous", "independent", "self-driving", "automatic"}},
		{"Collaborative", []string{"collaborative", "cooperative", "human-robot", "interactive"}},
	},
	model.LevelFamily: {
		{"Vision_Based", []string{"vision", "camera", "visual", "image", "optical"}},
		{"LiDAR_Based", []string{"lidar", "laser", "radar", "distance", "scanning"}},
		{"Tactile_Based", []string{"tactile", "touch", "force", "pressure", "contact"}},
		{"Multimodal", []string{"multimodal", "multiple", "sensors", "integrated"}},
		{"Minimal_Sensing", []string{"minimal", "simple", "basic", "limited"}},
		{"GPS_Navigation", []string{"gps", "navigation", "positioning", "satellite"}},
		{"Acoustic_Based", []string{"acoustic", "sound", "audio", "ultrasonic"}},
		{"Chemical_Sensing", []string{"chemical", "gas", "sensor", "detection"}},
	},
	model.LevelGenus: {
		{"Electric", []string{"electric", "motor", "servo", "battery", "electronic"}},
		{"Hydraulic", []string{"hydraulic", "fluid", "pressure", "pump"}},
		{"Pneumatic", []string{"pneumatic", "air", "compressed"}},
		{"Hybrid_Actuation", []string{"hybrid", "mixed", "combined", "actuation"}},
		{"Smart_Materials", []string{"smart", "material", "shape", "memory", "piezoelectric"}},
		{"Bio_Hybrid", []string{"bio", "biological", "organic", "living"}},
		{"Passive", []string{"passive", "gravity", "environmental", "no actuation"}},
		{"Magnetic", []string{"magnetic", "magnet", "field", "electromagnetic"}},
	},
	model.LevelSpecies: {
		{"Surgery", []string{"surgery", "surgical", "medical", "operation", "procedure"}},
		{"Inspection", []string{"inspection", "quality", "control", "check", "examine"}},
		{"Transport", []string{"transport", "carry", "move", "delivery", "logistics"}},
		{"Assembly", []string{"assembly", "manufacturing", "production", "build"}},
		{"Exploration", []string{"exploration", "explore", "discovery", "investigation"}},
		{"Surveillance", []string{"surveillance", "monitor", "security", "watch"}},
		{"Companionship", []string{"companionship", "social", "interaction", "companion"}},
		{"Education", []string{"education", "teaching", "learning", "training"}},
		{"Mapping", []string{"mapping", "survey", "map", "topography"}},
		{"Rescue", []string{"rescue", "emergency", "search", "save"}},
		{"Entertainment", []string{"entertainment", "fun", "game", "recreation"}},
		{"Agricultural_Task", []string{"agriculture", "farming", "crop", "harvest"}},
		{"Construction", []string{"construction", "building"}},
		{"Maintenance", []string{"maintenance", "repair", "service", "upkeep"}},
		{"Environmental_Monitoring", []string{"environmental", "monitoring", "climate", "pollution"}},
	},
}
