// Package config loads SOFI entities, access controllers, and request
// feeds from CUE or YAML documents, and defines their serialized forms:
// an integrity is either the token "universe" or a JSON array of element
// strings; a minimum-integrity controller is a JSON array of integrities;
// a per-op ACL is a mapping from operation key to array of integrities,
// with an optional default entry under the empty key "".
package config
