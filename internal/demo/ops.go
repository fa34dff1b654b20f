package demo

import (
	"encoding/json"

	"github.com/roach88/sofi/internal/access"
	"github.com/roach88/sofi/internal/config"
	"github.com/roach88/sofi/internal/sofi"
)

// The twelve operation keys of the original SOFI++ demonstration.
const (
	NoOp            sofi.OpKey = "no-op"
	Read            sofi.OpKey = "read"
	Write           sofi.OpKey = "write"
	ReadAppend      sofi.OpKey = "read-append"
	WriteAppend     sofi.OpKey = "write-append"
	WriteArg        sofi.OpKey = "write-arg"
	AppendArg       sofi.OpKey = "append-arg"
	Swap            sofi.OpKey = "swap"
	SetIntegrity    sofi.OpKey = "set-integrity"
	SetMinIntegrity sofi.OpKey = "set-min-integrity"
	Clone           sofi.OpKey = "clone"
	Destroy         sofi.OpKey = "destroy"
)

// Keys lists the operation keys in declaration order, for building the
// known-operation set a config loader validates per-op ACLs against.
var Keys = []sofi.OpKey{
	NoOp, Read, Write, ReadAppend, WriteAppend, WriteArg, AppendArg,
	Swap, SetIntegrity, SetMinIntegrity, Clone, Destroy,
}

// KnownOps returns Keys as a membership set, ready for
// config.ParseACL's known parameter.
func KnownOps() map[access.OpKey]bool {
	m := make(map[access.OpKey]bool, len(Keys))
	for _, k := range Keys {
		m[k] = true
	}
	return m
}

type template struct {
	isRead, isWrite bool
	name            string
}

var templates = map[sofi.OpKey]template{
	NoOp:            {false, false, "no-op"},
	Read:            {true, false, "read"},
	Write:           {false, true, "write"},
	ReadAppend:      {true, false, "read-append"},
	WriteAppend:     {false, true, "write-append"},
	WriteArg:        {false, true, "write-arg"},
	AppendArg:       {false, true, "append-arg"},
	Swap:            {true, true, "swap"},
	SetIntegrity:    {false, true, "set-integrity"},
	SetMinIntegrity: {false, true, "set-min-integrity"},
	Clone:           {false, false, "clone"},
	Destroy:         {false, false, "destroy"},
}

// Bind constructs the sofi.Operation for key, with arg captured in its
// ExecuteFunc closure for the operations that need one (write-arg,
// append-arg, set-integrity, set-min-integrity, clone). It returns
// *access.UnknownOpError for a key outside the twelve this package
// defines.
func Bind(key sofi.OpKey, arg string) (sofi.Operation, error) {
	t, ok := templates[key]
	if !ok {
		return sofi.Operation{}, &access.UnknownOpError{Key: key}
	}
	return sofi.NewOperation(key, t.isRead, t.isWrite, t.name, execFuncs[key](arg)), nil
}

var execFuncs = map[sofi.OpKey]func(arg string) sofi.ExecuteFunc{
	NoOp: func(string) sofi.ExecuteFunc { return nil },

	Read: func(string) sofi.ExecuteFunc {
		return func(subj, obj *sofi.Entity, _ *sofi.Verdict) {
			Payload(subj).Data = Payload(obj).Data
		}
	},
	Write: func(string) sofi.ExecuteFunc {
		return func(subj, obj *sofi.Entity, _ *sofi.Verdict) {
			Payload(obj).Data = Payload(subj).Data
		}
	},
	ReadAppend: func(string) sofi.ExecuteFunc {
		return func(subj, obj *sofi.Entity, _ *sofi.Verdict) {
			Payload(subj).Data += Payload(obj).Data
		}
	},
	WriteAppend: func(string) sofi.ExecuteFunc {
		return func(subj, obj *sofi.Entity, _ *sofi.Verdict) {
			Payload(obj).Data += Payload(subj).Data
		}
	},
	WriteArg: func(arg string) sofi.ExecuteFunc {
		return func(_, obj *sofi.Entity, _ *sofi.Verdict) {
			Payload(obj).Data = arg
		}
	},
	AppendArg: func(arg string) sofi.ExecuteFunc {
		return func(_, obj *sofi.Entity, _ *sofi.Verdict) {
			Payload(obj).Data += arg
		}
	},
	Swap: func(string) sofi.ExecuteFunc {
		return func(subj, obj *sofi.Entity, _ *sofi.Verdict) {
			sd, od := Payload(subj), Payload(obj)
			sd.Data, od.Data = od.Data, sd.Data
		}
	},
	SetIntegrity: func(arg string) sofi.ExecuteFunc {
		return func(_, obj *sofi.Entity, v *sofi.Verdict) {
			i, err := config.ParseIntegrity(json.RawMessage(arg))
			if err != nil {
				v.Err = err
				return
			}
			obj.SetIntegrity(i)
		}
	},
	SetMinIntegrity: func(arg string) sofi.ExecuteFunc {
		return func(_, obj *sofi.Entity, v *sofi.Verdict) {
			list, err := config.ParseMinIntegrity(json.RawMessage(arg))
			if err != nil {
				v.Err = err
				return
			}
			obj.SetMinIntegrity(list)
		}
	},
	Clone: func(arg string) sofi.ExecuteFunc {
		return func(_, obj *sofi.Entity, v *sofi.Verdict) {
			cloned := obj.Clone()
			cloned.SetPayload(&Data{Name: arg, Data: Payload(obj).Data})
			v.Clone = true
			v.ClonedName = arg
			v.ClonedEntity = cloned
		}
	},
	Destroy: func(string) sofi.ExecuteFunc {
		return func(_, _ *sofi.Entity, v *sofi.Verdict) {
			v.Destroy = true
		}
	},
}
