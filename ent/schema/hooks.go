package schema

import (
	"context"
	"fmt"

	"entgo.io/ent"
)

// rejectUpdateDelete returns a hook that fails any update or delete mutation
// against an append-only table. The equivalent database policy exists in the
// migrations; this hook makes the invariant hold for every ent code path too.
func rejectUpdateDelete(table string) ent.Hook {
	return func(next ent.Mutator) ent.Mutator {
		return ent.MutateFunc(func(ctx context.Context, m ent.Mutation) (ent.Value, error) {
			if m.Op().Is(ent.OpUpdate | ent.OpUpdateOne | ent.OpDelete | ent.OpDeleteOne) {
				return nil, fmt.Errorf("%s is append-only: %s not permitted", table, m.Op())
			}
			return next.Mutate(ctx, m)
		})
	}
}
