package config

import (
	"encoding/json"

	"github.com/roach88/sofi/internal/access"
	"github.com/roach88/sofi/internal/sofi"
)

// EntitySpec is the document shape for one entity, shared by the YAML and
// CUE loaders. Integrity, MinIntegrity, and AccessCtrl carry their
// serialized JSON forms (decoded from YAML/CUE into json.RawMessage via an
// intermediate any-tree, see decodeRaw); TestFun/ProvFun/RecvFun name one
// of ParseIntegrityFunc's three functions.
type EntitySpec struct {
	Name         string          `yaml:"name" json:"name"`
	Integrity    json.RawMessage `yaml:"integrity" json:"integrity"`
	MinIntegrity json.RawMessage `yaml:"min_integrity" json:"min_integrity"`
	AccessCtrl   json.RawMessage `yaml:"acl" json:"acl"`
	TestFun      string          `yaml:"test_fun" json:"test_fun"`
	ProvFun      string          `yaml:"prov_fun" json:"prov_fun"`
	RecvFun      string          `yaml:"recv_fun" json:"recv_fun"`
	Data         string          `yaml:"data" json:"data"`
}

// ToEntity builds a *sofi.Entity from the spec. known is the set of
// operation keys recognized by the caller's operation table, used to
// validate AccessCtrl; pass nil to skip that check (e.g. when ACL is
// absent). The caller is responsible for attaching a domain payload
// (e.g. via Entity.SetPayload) — ToEntity only builds the SOFI-visible
// fields.
func (s EntitySpec) ToEntity(known map[access.OpKey]bool) (*sofi.Entity, error) {
	integrity, err := ParseIntegrity(s.Integrity)
	if err != nil {
		return nil, err
	}
	var minIntegrity access.Controller = access.Deny{}
	if len(s.MinIntegrity) > 0 {
		minIntegrity, err = ParseMinIntegrity(s.MinIntegrity)
		if err != nil {
			return nil, err
		}
	}
	var accessCtrl access.Controller = access.Deny{}
	if len(s.AccessCtrl) > 0 {
		accessCtrl, err = ParseACL(s.AccessCtrl, known)
		if err != nil {
			return nil, err
		}
	}
	opts := []sofi.EntityOption{
		sofi.WithMinIntegrity(minIntegrity),
		sofi.WithAccessCtrl(accessCtrl),
	}
	if s.TestFun != "" {
		f, err := ParseIntegrityFunc(s.TestFun)
		if err != nil {
			return nil, err
		}
		opts = append(opts, sofi.WithTestFun(f))
	}
	if s.ProvFun != "" {
		f, err := ParseIntegrityFunc(s.ProvFun)
		if err != nil {
			return nil, err
		}
		opts = append(opts, sofi.WithProvFun(f))
	}
	if s.RecvFun != "" {
		f, err := ParseIntegrityFunc(s.RecvFun)
		if err != nil {
			return nil, err
		}
		opts = append(opts, sofi.WithRecvFun(f))
	}
	return sofi.NewEntity(integrity, opts...), nil
}
