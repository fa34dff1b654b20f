package cli

import (
	"fmt"

	"github.com/roach88/sofi/internal/agent"
	"github.com/roach88/sofi/internal/config"
	"github.com/roach88/sofi/internal/demo"
	"github.com/roach88/sofi/internal/sofi"
)

// driveFeed imports subject/object, performs one operation, and exports
// the outcome for every record in feed, in order. A failed import or an
// unrecognized op key is recorded as an error result rather than aborting
// the whole feed, but a failed export (the agent store itself is broken)
// is fatal.
func driveFeed(ag agent.Agent, eng *sofi.Engine, feed []config.FeedRecord) ([]config.ResultRecord, error) {
	results := make([]config.ResultRecord, 0, len(feed))
	for _, rec := range feed {
		result := config.ResultRecord{
			ID: rec.ID, Subject: rec.Subject, Object: rec.Object,
			OpKey: rec.OpKey, Arg: rec.Arg, Comment: rec.Comment,
		}

		subj, res, err := ag.Import(rec.Subject)
		if !res.OK() {
			result.Error = true
			results = append(results, result)
			continue
		}
		obj, res, err := ag.Import(rec.Object)
		if !res.OK() {
			result.Error = true
			results = append(results, result)
			continue
		}

		op, err := demo.Bind(sofi.OpKey(rec.OpKey), rec.Arg)
		if err != nil {
			result.Error = true
			results = append(results, result)
			continue
		}

		v := eng.Operation(subj, obj, op, true)
		result.Allowed = v.Allowed()
		result.Access = v.AccessTest()
		result.Min = v.MinTest()
		result.Error = v.Err != nil

		if res, err := ag.Export(rec.Subject, subj); !res.OK() {
			return results, fmt.Errorf("drive feed %s: export subject %q: %w", rec.ID, rec.Subject, err)
		}
		if v.Destroy {
			if res, err := ag.Delete(rec.Object); !res.OK() {
				return results, fmt.Errorf("drive feed %s: delete object %q: %w", rec.ID, rec.Object, err)
			}
		} else {
			if res, err := ag.Export(rec.Object, obj); !res.OK() {
				return results, fmt.Errorf("drive feed %s: export object %q: %w", rec.ID, rec.Object, err)
			}
		}
		if v.Clone && v.ClonedEntity != nil {
			if res, err := ag.Export(v.ClonedName, v.ClonedEntity); !res.OK() {
				return results, fmt.Errorf("drive feed %s: export clone %q: %w", rec.ID, v.ClonedName, err)
			}
		}

		results = append(results, result)
	}
	return results, nil
}
