package config

import (
	"encoding/json"
	"fmt"
	"os"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	"cuelang.org/go/cue/load"
	"gopkg.in/yaml.v3"
)

// rawEntityDoc is the generic shape YAML and CUE both decode into before
// their Integrity/MinIntegrity/AccessCtrl sub-documents are re-encoded as
// json.RawMessage for EntitySpec — YAML has no concept of "raw JSON", so
// the any fields here are bridged through decodeRaw.
type rawEntityDoc struct {
	Name         string `yaml:"name" json:"name"`
	Integrity    any    `yaml:"integrity" json:"integrity"`
	MinIntegrity any    `yaml:"min_integrity" json:"min_integrity"`
	AccessCtrl   any    `yaml:"acl" json:"acl"`
	TestFun      string `yaml:"test_fun" json:"test_fun"`
	ProvFun      string `yaml:"prov_fun" json:"prov_fun"`
	RecvFun      string `yaml:"recv_fun" json:"recv_fun"`
	Data         string `yaml:"data" json:"data"`
}

// decodeRaw re-encodes v (a tree of map[string]any/[]any/string/bool/nil
// produced by a YAML or CUE decode) as JSON bytes. nil becomes an absent
// json.RawMessage, matching an optional field's zero value.
func decodeRaw(v any) (json.RawMessage, error) {
	if v == nil {
		return nil, nil
	}
	b, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	return json.RawMessage(b), nil
}

func (d rawEntityDoc) toEntitySpec() (EntitySpec, error) {
	integrity, err := decodeRaw(d.Integrity)
	if err != nil {
		return EntitySpec{}, &LoadError{Code: ErrCodeBadIntegrity, Path: d.Name, Message: err.Error()}
	}
	minIntegrity, err := decodeRaw(d.MinIntegrity)
	if err != nil {
		return EntitySpec{}, &LoadError{Code: ErrCodeBadMinIntegrity, Path: d.Name, Message: err.Error()}
	}
	acl, err := decodeRaw(d.AccessCtrl)
	if err != nil {
		return EntitySpec{}, &LoadError{Code: ErrCodeBadACL, Path: d.Name, Message: err.Error()}
	}
	return EntitySpec{
		Name:         d.Name,
		Integrity:    integrity,
		MinIntegrity: minIntegrity,
		AccessCtrl:   acl,
		TestFun:      d.TestFun,
		ProvFun:      d.ProvFun,
		RecvFun:      d.RecvFun,
		Data:         d.Data,
	}, nil
}

// LoadEntitiesYAML reads entity documents from a YAML file: a top-level
// list, each element shaped like EntitySpec but with integrity/ACL fields
// as plain YAML values rather than raw JSON.
func LoadEntitiesYAML(path string) ([]EntitySpec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{Code: ErrCodeNotFound, Path: path, Message: err.Error()}
	}
	var docs []rawEntityDoc
	if err := yaml.Unmarshal(data, &docs); err != nil {
		return nil, &LoadError{Code: ErrCodeLoadFailed, Path: path, Message: fmt.Sprintf("parsing entities: %v", err)}
	}
	specs := make([]EntitySpec, 0, len(docs))
	for _, d := range docs {
		spec, err := d.toEntitySpec()
		if err != nil {
			return nil, err
		}
		specs = append(specs, spec)
	}
	return specs, nil
}

// LoadEntitiesCUE reads entity documents from the CUE package rooted at
// dir, under a top-level "entity" field keyed by entity name (each value
// matching EntitySpec's shape). It builds a cue.Instance, looks up the
// "entity" field by path, and iterates its fields.
func LoadEntitiesCUE(dir string) ([]EntitySpec, error) {
	ctx := cuecontext.New()
	cfg := &load.Config{Dir: dir}
	instances := load.Instances([]string{"."}, cfg)
	if len(instances) == 0 {
		return nil, &LoadError{Code: ErrCodeLoadFailed, Path: dir, Message: "no CUE instances loaded"}
	}
	inst := instances[0]
	if inst.Err != nil {
		return nil, &LoadError{Code: ErrCodeLoadFailed, Path: dir, Message: fmt.Sprintf("loading CUE files: %v", inst.Err)}
	}
	value := ctx.BuildInstance(inst)
	if err := value.Err(); err != nil {
		return nil, &LoadError{Code: ErrCodeBuildFailed, Path: dir, Message: fmt.Sprintf("building CUE value: %v", err)}
	}
	entities := value.LookupPath(cue.ParsePath("entity"))
	if !entities.Exists() {
		return nil, &LoadError{Code: ErrCodeNoFiles, Path: dir, Message: `no top-level "entity" field`}
	}
	iter, err := entities.Fields()
	if err != nil {
		return nil, &LoadError{Code: ErrCodeLoadFailed, Path: dir, Message: fmt.Sprintf("iterating entities: %v", err)}
	}
	var specs []EntitySpec
	for iter.Next() {
		b, err := iter.Value().MarshalJSON()
		if err != nil {
			return nil, &LoadError{Code: ErrCodeLoadFailed, Path: dir, Message: fmt.Sprintf("entity %q: %v", iter.Label(), err)}
		}
		var raw rawEntityDoc
		if err := json.Unmarshal(b, &raw); err != nil {
			return nil, &LoadError{Code: ErrCodeLoadFailed, Path: dir, Message: fmt.Sprintf("entity %q: %v", iter.Label(), err)}
		}
		if raw.Name == "" {
			raw.Name = iter.Label()
		}
		spec, err := raw.toEntitySpec()
		if err != nil {
			return nil, err
		}
		specs = append(specs, spec)
	}
	return specs, nil
}
