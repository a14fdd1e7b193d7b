package game

import "sort"

// Target selects which player(s) a primitive effect applies to, relative to
// the acting player on the context.
type Target string

const (
	TargetSelf     Target = "self"
	TargetOpponent Target = "opponent"
	TargetAlly     Target = "ally"
	TargetAll      Target = "all"
)

// resolveTargets maps a target selector to concrete player ids. Opponent and
// ally both resolve to the first player, in ascending id order, whose id
// differs from the acting player: deterministic and order-dependent, never
// random. A nil slice means the target could not be resolved.
func resolveTargets(ctx Context, target Target) []string {
	ids := sortedPlayerIDs(ctx.State.Players)

	switch target {
	case TargetSelf:
		if _, ok := ctx.State.Players[ctx.PlayerID]; !ok {
			return nil
		}
		return []string{ctx.PlayerID}
	case TargetOpponent, TargetAlly:
		for _, id := range ids {
			if id != ctx.PlayerID {
				return []string{id}
			}
		}
		return nil
	case TargetAll:
		if len(ids) == 0 {
			return nil
		}
		return ids
	default:
		return nil
	}
}

func sortedPlayerIDs(players map[string]Player) []string {
	ids := make([]string, 0, len(players))
	for id := range players {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
