package testutil

import "github.com/Veraticus/robot-taxonomy/internal/model"

// SampleInputs returns raw entries covering several kingdoms, plus one index
// page and one entry too short to pass the filter.
func SampleInputs() []model.InputRecord {
	return []model.InputRecord{
		{
			"name":        "SurgiBot 3000",
			"description": "An autonomous surgical robot used in hospital operating rooms for minimally invasive procedures.",
			"url":         "https://example.org/surgibot",
		},
		{
			"name":        "FarmDrone",
			"description": "A flying drone used for crop monitoring and agricultural spraying.",
		},
		{
			"name":        "Scout",
			"description": "A legged machine with lidar and a hydraulic pump for search and rescue",
		},
		{
			"name":        "Category:Robots",
			"description": "Index page listing every robot article in the encyclopedia collection.",
		},
		{
			"name":        "Tiny",
			"description": "Too short.",
		},
	}
}

// SampleClassified returns the classification of the first three
// SampleInputs entries.
func SampleClassified() []model.ClassifiedRecord {
	return []model.ClassifiedRecord{
		{
			Name:        "SurgiBot 3000",
			URL:         "https://example.org/surgibot",
			Description: "An autonomous surgical robot used in hospital operating rooms for minimally invasive procedures.",
			Domain:      "Physical",
			Kingdom:     "Medical",
			Phylum:      "Mobile",
			Class:       "Static",
			Order:       "Autonomous",
			Family:      "Minimal_Sensing",
			Genus:       "Electric",
			Species:     []string{"Surgery"},
		},
		{
			Name:        "FarmDrone",
			Description: "A flying drone used for crop monitoring and agricultural spraying.",
			Domain:      "Physical",
			Kingdom:     "Agriculture",
			Phylum:      "Manipulator",
			Class:       "Flying",
			Order:       "Semi_Autonomous",
			Family:      "Minimal_Sensing",
			Genus:       "Electric",
			Species:     []string{"Surveillance", "Agricultural_Task", "Environmental_Monitoring"},
		},
		{
			Name:        "Scout",
			Description: "A legged machine with lidar and a hydraulic pump for search and rescue",
			Domain:      "Physical",
			Kingdom:     "Research",
			Phylum:      "Mobile",
			Class:       "Legged",
			Order:       "Semi_Autonomous",
			Family:      "LiDAR_Based",
			Genus:       "Hydraulic",
			Species:     []string{"Rescue"},
		},
	}
}
