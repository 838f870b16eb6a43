package sync

import (
	"github.com/vitalisapp/vitalis/vitalis/database/models"
	"github.com/vitalisapp/vitalis/vitalis/player"
	"github.com/vitalisapp/vitalis/vitalis/progression"
)

func aggregateToModel(userID string, agg player.RemoteAggregate) *models.PlayerState {
	return &models.PlayerState{
		UserID:          userID,
		XP:              agg.XP,
		Coins:           agg.Coins,
		Vitality:        agg.Vitality,
		RankIndex:       agg.Rank.Index,
		RankTier:        string(agg.Rank.Tier),
		RankDivision:    agg.Rank.Division,
		AttrStr:         agg.Attributes.Str,
		AttrInt:         agg.Attributes.Int,
		AttrCre:         agg.Attributes.Cre,
		AttrSoc:         agg.Attributes.Soc,
		Aspect:          string(agg.Aspect),
		BoostMultiplier: agg.Boost.Multiplier,
		BoostExpiresAt:  agg.Boost.ExpiresAt,
		Version:         agg.Version,
		UpdatedAt:       agg.UpdatedAt,
	}
}

func aggregateFromModel(m *models.PlayerState) player.RemoteAggregate {
	return player.RemoteAggregate{
		XP:       m.XP,
		Coins:    m.Coins,
		Vitality: m.Vitality,
		Rank: progression.Rank{
			Index:    m.RankIndex,
			Tier:     progression.RankTier(m.RankTier),
			Division: m.RankDivision,
		},
		Attributes: progression.Attributes{
			Str: m.AttrStr,
			Int: m.AttrInt,
			Cre: m.AttrCre,
			Soc: m.AttrSoc,
		},
		Aspect: progression.Aspect(m.Aspect),
		Boost: progression.Boost{
			Multiplier: m.BoostMultiplier,
			ExpiresAt:  m.BoostExpiresAt,
		},
		Version:   m.Version,
		UpdatedAt: m.UpdatedAt,
	}
}

func eventToModel(userID string, e player.Event) *models.ActionEvent {
	return &models.ActionEvent{
		UserID:     userID,
		OccurredAt: e.Timestamp,
		Kind:       string(e.Kind),
		XPDelta:    e.XPDelta,
		CoinDelta:  e.CoinDelta,
		Tags:       append([]string(nil), e.Tags...),
		Category:   e.Category,
	}
}

func eventsFromModels(rows []*models.ActionEvent) []player.Event {
	events := make([]player.Event, 0, len(rows))
	for _, r := range rows {
		events = append(events, player.Event{
			Timestamp: r.OccurredAt,
			Kind:      progression.ActionKind(r.Kind),
			XPDelta:   r.XPDelta,
			CoinDelta: r.CoinDelta,
			Tags:      append([]string(nil), r.Tags...),
			Category:  r.Category,
		})
	}
	return events
}
