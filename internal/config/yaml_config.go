package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/lisamayiya/capaciti-talent-showcase/internal/models"
)

// YAMLConfig represents the structure of the config.yaml file.
// Labels and lists that are easier to manage in YAML than env vars.
type YAMLConfig struct {
	Cohorts  []CohortConfig `yaml:"cohorts"`
	Workflow WorkflowConfig `yaml:"workflow"`
}

// CohortConfig defines a cohort offered in the gallery filter before any
// project has been published for it.
type CohortConfig struct {
	Name   string `yaml:"name"`
	Active bool   `yaml:"active"`
}

// WorkflowConfig defines the review workflow labels.
type WorkflowConfig struct {
	SubmissionCohort string `yaml:"submission_cohort"` // Cohort given to projects published from submissions
}

// LoadYAMLConfig loads the YAML configuration file.
// Path is determined by CONFIG_FILE env var, defaulting to "config.yaml".
// Returns nil without error if the config file doesn't exist.
func LoadYAMLConfig() (*YAMLConfig, error) {
	return loadYAMLConfig(getEnv("CONFIG_FILE", "config.yaml"))
}

func loadYAMLConfig(path string) (*YAMLConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			// Config file is optional
			return nil, nil
		}
		return nil, err
	}

	var cfg YAMLConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	// Set defaults
	if cfg.Workflow.SubmissionCohort == "" {
		cfg.Workflow.SubmissionCohort = models.SubmissionCohort
	}

	return &cfg, nil
}

// GetSubmissionCohort returns the cohort label for published submissions.
func (c *YAMLConfig) GetSubmissionCohort() string {
	if c == nil || c.Workflow.SubmissionCohort == "" {
		return models.SubmissionCohort
	}
	return c.Workflow.SubmissionCohort
}

// GetActiveCohorts returns the names of the cohorts marked active.
func (c *YAMLConfig) GetActiveCohorts() []string {
	if c == nil {
		return nil
	}
	var names []string
	for _, cohort := range c.Cohorts {
		if cohort.Active && cohort.Name != "" {
			names = append(names, cohort.Name)
		}
	}
	return names
}
