package config

import (
	"encoding/json"
	"fmt"

	"github.com/roach88/sofi/internal/access"
	"github.com/roach88/sofi/internal/lattice"
)

// ParseIntegrity decodes a serialized integrity: either the JSON string
// "universe" or a JSON array of element strings, producing a Set[string]
// integrity (the demonstration's lattice variant).
func ParseIntegrity(raw json.RawMessage) (lattice.Integrity, error) {
	var token string
	if err := json.Unmarshal(raw, &token); err == nil {
		if token != "universe" {
			return nil, &LoadError{Code: ErrCodeBadIntegrity, Message: fmt.Sprintf("unrecognized integrity token %q", token)}
		}
		return lattice.Universe[string](), nil
	}
	var elems []string
	if err := json.Unmarshal(raw, &elems); err != nil {
		return nil, &LoadError{Code: ErrCodeBadIntegrity, Message: fmt.Sprintf("not a string or array: %v", err)}
	}
	return lattice.NewSet(elems...), nil
}

// ParseMinIntegrity decodes a minimum-integrity controller: a JSON array
// of integrities, each in ParseIntegrity's format. An empty array denies
// every operation, matching access.List's zero value semantics.
func ParseMinIntegrity(raw json.RawMessage) (access.List, error) {
	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		return access.List{}, &LoadError{Code: ErrCodeBadMinIntegrity, Message: fmt.Sprintf("not an array: %v", err)}
	}
	floors := make([]lattice.Integrity, 0, len(items))
	for _, item := range items {
		i, err := ParseIntegrity(item)
		if err != nil {
			return access.List{}, err
		}
		floors = append(floors, i)
	}
	return access.List{Floors: floors}, nil
}

// ParseACL decodes a per-op ACL: a JSON object mapping operation keys (or
// "" for the default) to arrays of integrities in ParseMinIntegrity's
// format. known, if non-nil, is the set of operation keys the caller
// recognizes; a key outside it is rejected with *access.UnknownOpError — caught
// here at load time rather than left for the core engine, which never
// validates keys.
func ParseACL(raw json.RawMessage, known map[access.OpKey]bool) (access.Controller, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return nil, &LoadError{Code: ErrCodeBadACL, Message: fmt.Sprintf("not an object: %v", err)}
	}
	perOp := access.PerOp{ByKey: make(map[access.OpKey]access.Controller, len(fields))}
	for key, value := range fields {
		list, err := ParseMinIntegrity(value)
		if err != nil {
			return nil, err
		}
		if key == "" {
			perOp.Default = list
			continue
		}
		opKey := access.OpKey(key)
		if known != nil && !known[opKey] {
			return nil, &access.UnknownOpError{Key: opKey}
		}
		perOp.ByKey[opKey] = list
	}
	return perOp, nil
}

// FormatIntegrity is ParseIntegrity's inverse: it encodes i in the same
// serialized form, for an agent that needs to persist an entity's
// integrity as text (internal/agent's SQLite implementation).
func FormatIntegrity(i lattice.Integrity) (json.RawMessage, error) {
	set, ok := i.(lattice.Set[string])
	if !ok {
		return nil, &LoadError{Code: ErrCodeBadIntegrity, Message: fmt.Sprintf("cannot format %T as a serialized integrity", i)}
	}
	if set.IsUniverse() {
		return json.Marshal("universe")
	}
	return json.Marshal(set.Elements())
}

// floorsOf extracts the list of integrities a Controller tests against,
// for the three non-PerOp shapes it can serialize: Deny or nil (no
// floors), Single (one floor), and List (its floors). ParseMinIntegrity
// reads each of them back as a List. A PerOp's Default and ByKey entries
// must each be one of these three in turn.
func floorsOf(c access.Controller) ([]lattice.Integrity, error) {
	switch ctrl := c.(type) {
	case nil, access.Deny:
		return nil, nil
	case access.Single:
		return []lattice.Integrity{ctrl.Floor}, nil
	case access.List:
		return ctrl.Floors, nil
	default:
		return nil, &LoadError{Code: ErrCodeBadMinIntegrity, Message: fmt.Sprintf("cannot format %T as a serialized floor list", c)}
	}
}

// FormatMinIntegrity is ParseMinIntegrity's inverse.
func FormatMinIntegrity(c access.Controller) (json.RawMessage, error) {
	floors, err := floorsOf(c)
	if err != nil {
		return nil, err
	}
	items := make([]json.RawMessage, len(floors))
	for idx, f := range floors {
		raw, err := FormatIntegrity(f)
		if err != nil {
			return nil, err
		}
		items[idx] = raw
	}
	return json.Marshal(items)
}

// FormatACL is ParseACL's inverse. A Controller that is not a PerOp is
// treated as an all-keys default, matching how ParseACL would read back
// a document with only the "" field set.
func FormatACL(c access.Controller) (json.RawMessage, error) {
	perOp, ok := c.(access.PerOp)
	if !ok {
		floors, err := FormatMinIntegrity(c)
		if err != nil {
			return nil, err
		}
		return json.Marshal(map[string]json.RawMessage{"": floors})
	}
	fields := make(map[string]json.RawMessage, len(perOp.ByKey)+1)
	if perOp.Default != nil {
		raw, err := FormatMinIntegrity(perOp.Default)
		if err != nil {
			return nil, err
		}
		fields[""] = raw
	}
	for key, sub := range perOp.ByKey {
		raw, err := FormatMinIntegrity(sub)
		if err != nil {
			return nil, err
		}
		fields[string(key)] = raw
	}
	return json.Marshal(fields)
}
