package classifier

import (
	"errors"
	"testing"

	"github.com/Veraticus/robot-taxonomy/internal/model"
	"github.com/Veraticus/robot-taxonomy/internal/taxonomy"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClassifier(t *testing.T) *Classifier {
	t.Helper()
	return New(taxonomy.Default())
}

func TestClassifier_Scenarios(t *testing.T) {
	c := newTestClassifier(t)

	tests := []struct {
		record model.InputRecord
		want   model.ClassifiedRecord
		name   string
	}{
		{
			name: "surgical robot",
			record: model.InputRecord{
				"name":        "SurgiBot 3000",
				"description": "An autonomous surgical robot used in hospital operating rooms for minimally invasive procedures.",
			},
			want: model.ClassifiedRecord{
				Name:        "SurgiBot 3000",
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
		},
		{
			name: "agricultural drone",
			record: model.InputRecord{
				"name":        "FarmDrone",
				"description": "A flying drone used for crop monitoring and agricultural spraying.",
				"url":         "https://example.org/farmdrone",
			},
			want: model.ClassifiedRecord{
				Name:        "FarmDrone",
				URL:         "https://example.org/farmdrone",
				Description: "A flying drone used for crop monitoring and agricultural spraying.",
				Domain:      "Physical",
				Kingdom:     "Agriculture",
				// "farmdrone" contains "arm".
				Phylum:  "Manipulator",
				Class:   "Flying",
				Order:   "Semi_Autonomous",
				Family:  "Minimal_Sensing",
				Genus:   "Electric",
				Species: []string{"Surveillance", "Agricultural_Task", "Environmental_Monitoring"},
			},
		},
		{
			name: "search and rescue walker",
			record: model.InputRecord{
				"name":        "Scout",
				"description": "A legged machine with lidar and a hydraulic pump for search and rescue",
			},
			want: model.ClassifiedRecord{
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
		},
		{
			name:   "empty text falls through every level",
			record: model.InputRecord{"name": "", "description": ""},
			want: model.ClassifiedRecord{
				Domain:  "Physical",
				Kingdom: "Research",
				Phylum:  "Mobile",
				Class:   "Static",
				Order:   "Semi_Autonomous",
				Family:  "Minimal_Sensing",
				Genus:   "Electric",
				Species: []string{"Research"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := c.Classify(tt.record)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestClassifier_Domain(t *testing.T) {
	c := newTestClassifier(t)

	tests := []struct {
		description string
		want        string
	}{
		{"a simulation of a hybrid rover", "Virtual"},
		{"mixed reality telepresence", "Hybrid"},
		{"a welded steel frame", "Physical"},
		// "ar" and "vr" in the registry table do not take part.
		{"a car park attendant", "Physical"},
	}

	for _, tt := range tests {
		t.Run(tt.description, func(t *testing.T) {
			got, err := c.Classify(model.InputRecord{"description": tt.description})
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.Domain)
		})
	}
}

func TestClassifier_FirstMatchWins(t *testing.T) {
	c := newTestClassifier(t)

	// "domestic" is a Service keyword (position 2), "laboratory" a Research
	// keyword (position 5).
	got, err := c.Classify(model.InputRecord{"description": "domestic laboratory"})
	require.NoError(t, err)
	assert.Equal(t, "Service", got.Kingdom)

	got, err = c.Classify(model.InputRecord{"description": "laboratory domestic"})
	require.NoError(t, err)
	assert.Equal(t, "Service", got.Kingdom, "text order must not matter")
}

func TestClassifier_SpeciesIsAdditive(t *testing.T) {
	c := newTestClassifier(t)

	got, err := c.Classify(model.InputRecord{"description": "surgery transport"})
	require.NoError(t, err)

	assert.Equal(t, []string{"Surgery", "Transport"}, got.Species)
	assert.Equal(t, "Medical", got.Kingdom)
}

func TestClassifier_SecondaryChecks(t *testing.T) {
	c := newTestClassifier(t)

	tests := []struct {
		description string
		level       model.Level
		want        string
	}{
		{"a charity help organization", model.LevelKingdom, "Service"},
		{"an open surgery assistant", model.LevelKingdom, "Medical"},
		{"a gripper unit", model.LevelPhylum, "Manipulator"},
		{"self-balancing unit", model.LevelOrder, "Autonomous"},
		{"nothing recognizable", model.LevelKingdom, "Research"},
	}

	for _, tt := range tests {
		t.Run(tt.description, func(t *testing.T) {
			got, err := c.Classify(model.InputRecord{"description": tt.description})
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.Label(tt.level))
		})
	}
}

func TestClassifier_SpeciesFallbackUsesKingdom(t *testing.T) {
	c := newTestClassifier(t)

	tests := []struct {
		description string
		kingdom     string
		species     []string
	}{
		{"works in a hospital", "Medical", []string{"Surgery"}},
		{"a factory floor unit", "Industrial", []string{"Assembly"}},
		{"a household helper", "Service", []string{"Companionship"}},
		{"orbiting the planet", "Space", []string{"Research"}},
	}

	for _, tt := range tests {
		t.Run(tt.description, func(t *testing.T) {
			got, err := c.Classify(model.InputRecord{"description": tt.description})
			require.NoError(t, err)
			assert.Equal(t, tt.kingdom, got.Kingdom)
			assert.Equal(t, tt.species, got.Species)
		})
	}
}

func TestClassifier_ExtraFields(t *testing.T) {
	c := newTestClassifier(t)

	got, err := c.Classify(model.InputRecord{
		"name":         "Atlas",
		"description":  "",
		"manufacturer": "Built for underwater welding",
		"year":         2019,
		"url":          "https://example.org/underwater",
		"tags":         []any{"aerial"},
	})
	require.NoError(t, err)

	assert.Equal(t, "Marine", got.Kingdom)
	assert.Equal(t, "Swimming", got.Class)
	assert.Equal(t, "https://example.org/underwater", got.URL)
}

func TestClassifier_URLIsNotMatched(t *testing.T) {
	c := newTestClassifier(t)

	got, err := c.Classify(model.InputRecord{
		"name": "Plain",
		"url":  "https://virtual-hospital.example.org",
	})
	require.NoError(t, err)
	assert.Equal(t, "Physical", got.Domain)
	assert.Equal(t, "Research", got.Kingdom)
}

func TestClassifier_MissingFields(t *testing.T) {
	c := newTestClassifier(t)

	got, err := c.Classify(model.InputRecord{})
	require.NoError(t, err)
	assert.Equal(t, UnknownName, got.Name)
	assert.Empty(t, got.Description)
	assert.Equal(t, []string{"Research"}, got.Species)

	got, err = c.Classify(model.InputRecord{"name": nil, "description": nil})
	require.NoError(t, err)
	assert.Equal(t, UnknownName, got.Name)
}

func TestClassifier_MalformedRecords(t *testing.T) {
	c := newTestClassifier(t)

	tests := []struct {
		record model.InputRecord
		name   string
		reason string
	}{
		{name: "not an object", record: nil, reason: "record is not an object"},
		{name: "numeric name", record: model.InputRecord{"name": 42}, reason: "name is not a string"},
		{name: "list description", record: model.InputRecord{"name": "x", "description": []any{"a"}}, reason: "description is not a string"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := c.Classify(tt.record)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrMalformedRecord))

			var malformed *MalformedRecordError
			require.ErrorAs(t, err, &malformed)
			assert.Equal(t, tt.reason, malformed.Reason)
			assert.Equal(t, -1, malformed.Index)
		})
	}
}

func TestClassifier_Deterministic(t *testing.T) {
	c := newTestClassifier(t)
	rec := model.InputRecord{
		"name":        "Rover",
		"description": "A wheeled rover with camera and gps",
		"b":           "swarm",
		"a":           "soft",
		"c":           "modular",
	}

	first, err := c.Classify(rec)
	require.NoError(t, err)
	for i := 0; i < 20; i++ {
		again, err := c.Classify(rec)
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

func TestClassifier_Totality(t *testing.T) {
	c := newTestClassifier(t)

	inputs := []string{"", " ", "???", "robot", "ROBOT WITH CAPS", "ünïcödé züge", "1234567890"}
	for _, in := range inputs {
		got, err := c.Classify(model.InputRecord{"name": in, "description": in})
		require.NoError(t, err)
		for _, level := range model.Levels() {
			assert.NotEmpty(t, got.Labels(level), "input %q level %s", in, level)
		}
	}
}

func TestNormalize(t *testing.T) {
	rec := model.InputRecord{
		"name":        "Name",
		"description": "Desc",
		"url":         "URL",
		"zeta":        "Zeta",
		"alpha":       "Alpha",
		"count":       3,
	}

	assert.Equal(t, "name desc alpha zeta", normalize(rec, "Name", "Desc"))
	assert.Equal(t, "alpha zeta", normalize(rec, "", ""))
}

type stubTaxonomy map[model.Level][]model.Category

func (s stubTaxonomy) Categories(level model.Level) []model.Category {
	return s[level]
}

func TestClassifier_UsesInjectedTaxonomy(t *testing.T) {
	tax := stubTaxonomy{
		model.LevelKingdom: {
			{Name: "Alpha", Keywords: []string{"shared"}},
			{Name: "Beta", Keywords: []string{"shared", "beta"}},
		},
		model.LevelSpecies: {
			{Name: "One", Keywords: []string{"shared"}},
			{Name: "Two", Keywords: []string{"beta"}},
		},
	}
	c := New(tax)

	got, err := c.Classify(model.InputRecord{"description": "shared beta"})
	require.NoError(t, err)
	assert.Equal(t, "Alpha", got.Kingdom)
	assert.Equal(t, []string{"One", "Two"}, got.Species)
	assert.Equal(t, "Mobile", got.Phylum, "empty table falls back to the level default")
}
