package config

import (
	"fmt"
	"os"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

// FeedRecord is one entry of a request feed: {id, subject_name,
// object_name, op_key, arg, comment}. ID is minted via uuid.New if a YAML
// document omits it.
type FeedRecord struct {
	ID      string `yaml:"id"`
	Subject string `yaml:"subject"`
	Object  string `yaml:"object"`
	OpKey   string `yaml:"op"`
	Arg     string `yaml:"arg"`
	Comment string `yaml:"comment"`
}

// ResultRecord is the result-sink record paired with a FeedRecord: the
// original request fields plus the engine's decision.
type ResultRecord struct {
	ID      string `yaml:"id"`
	Subject string `yaml:"subject"`
	Object  string `yaml:"object"`
	OpKey   string `yaml:"op"`
	Arg     string `yaml:"arg"`
	Comment string `yaml:"comment"`
	Allowed bool   `yaml:"allowed"`
	Access  bool   `yaml:"access"`
	Min     bool   `yaml:"min"`
	Error   bool   `yaml:"error"`
}

// LoadFeedYAML reads an ordered request feed from a YAML document: a
// top-level list of FeedRecord entries. A record with an empty ID is
// assigned a fresh UUID, so feed authors may omit it for throwaway runs.
func LoadFeedYAML(path string) ([]FeedRecord, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{Code: ErrCodeNotFound, Path: path, Message: err.Error()}
	}
	var records []FeedRecord
	if err := yaml.Unmarshal(data, &records); err != nil {
		return nil, &LoadError{Code: ErrCodeLoadFailed, Path: path, Message: fmt.Sprintf("parsing feed: %v", err)}
	}
	for i := range records {
		if records[i].ID == "" {
			records[i].ID = uuid.NewString()
		}
	}
	return records, nil
}

// WriteResultsYAML serializes a slice of ResultRecord as a YAML document,
// the result-sink form the run command writes to stdout.
func WriteResultsYAML(results []ResultRecord) ([]byte, error) {
	out, err := yaml.Marshal(results)
	if err != nil {
		return nil, &LoadError{Code: ErrCodeLoadFailed, Message: fmt.Sprintf("encoding results: %v", err)}
	}
	return out, nil
}
