package holdem

import (
	"encoding/json"

	"github.com/weedbox/holdem/card"
)

// SeatState is the public view of one seat. HoleCards is nil when the
// cards are not visible in this snapshot.
type SeatState struct {
	Seat       int         `json:"seat"`
	Name       string      `json:"name"`
	Chips      int64       `json:"chips"`
	CurrentBet int64       `json:"current_bet"`
	TotalBet   int64       `json:"total_bet"`
	Folded     bool        `json:"folded"`
	AllIn      bool        `json:"all_in"`
	SittingOut bool        `json:"sitting_out"`
	Positions  []string    `json:"positions"`
	HoleCards  []card.Card `json:"hole_cards"`
}

type Snapshot struct {
	TableID            string      `json:"table_id"`
	HandID             string      `json:"hand_id"`
	HandCount          int         `json:"hand_count"`
	Street             string      `json:"street"`
	Seats              []SeatState `json:"seats"`
	CommunityCards     []card.Card `json:"community_cards"`
	Pot                int64       `json:"pot"`
	CurrentBet         int64       `json:"current_bet"`
	SmallBlind         int64       `json:"small_blind"`
	BigBlind           int64       `json:"big_blind"`
	ActingSeat         int         `json:"acting_seat"` // UnsetValue when nobody is acting
	DealerSeat         int         `json:"dealer_seat"`
	WinnerText         string      `json:"winner_text"`
	WaitingForNextHand bool        `json:"waiting_for_next_hand"`
	UpdateSerial       int64       `json:"update_serial"`
	UpdateAt           int64       `json:"update_at"`
}

/*
NewSnapshot 由桌次狀態建立快照
  - actingSeat 的手牌可見
  - revealAll 為 true (攤牌) 或五張公牌都已發出時，所有未棄牌玩家的手牌可見
*/
func NewSnapshot(t *Table, actingSeat int, revealAll bool) *Snapshot {
	s := &Snapshot{
		TableID:            t.ID,
		HandID:             t.HandID,
		HandCount:          t.HandCount,
		Street:             t.Street,
		Seats:              make([]SeatState, 0, len(t.Players)),
		CommunityCards:     append([]card.Card{}, t.CommunityCards...),
		Pot:                t.Pot,
		CurrentBet:         t.CurrentBet,
		SmallBlind:         t.SmallBlind,
		BigBlind:           t.BigBlind,
		ActingSeat:         actingSeat,
		DealerSeat:         t.DealerSeat,
		WinnerText:         t.WinnerText,
		WaitingForNextHand: t.WaitingNext,
		UpdateSerial:       t.UpdateSerial,
		UpdateAt:           t.UpdateAt,
	}

	if len(t.CommunityCards) >= BoardSize {
		revealAll = true
	}

	for _, p := range t.Players {
		ss := SeatState{
			Seat:       p.Seat,
			Name:       p.Name,
			Chips:      p.Stack,
			CurrentBet: p.CurrentBet,
			TotalBet:   p.TotalBet,
			Folded:     p.Folded,
			AllIn:      p.IsAllIn(),
			SittingOut: p.SittingOut,
			Positions:  append([]string{}, p.Positions...),
		}

		visible := p.Seat == actingSeat || (revealAll && !p.Folded)
		if visible && len(p.HoleCards) > 0 {
			ss.HoleCards = append([]card.Card{}, p.HoleCards...)
		}

		s.Seats = append(s.Seats, ss)
	}

	return s
}

func (s *Snapshot) GetSeat(seat int) *SeatState {
	if seat < 0 || seat >= len(s.Seats) {
		return nil
	}
	return &s.Seats[seat]
}

func (s *Snapshot) AmountToCall(seat int) int64 {
	ss := s.GetSeat(seat)
	if ss == nil || s.CurrentBet <= ss.CurrentBet {
		return 0
	}
	return s.CurrentBet - ss.CurrentBet
}

// AllowedActions lists the actions that make sense for seat right now.
func (s *Snapshot) AllowedActions(seat int) []WagerAction {
	ss := s.GetSeat(seat)
	if ss == nil || ss.Folded || ss.AllIn || ss.Chips == 0 {
		return []WagerAction{}
	}

	toCall := s.AmountToCall(seat)
	actions := []WagerAction{WagerAction_Fold}
	if toCall == 0 {
		actions = append(actions, WagerAction_Check)
	} else {
		actions = append(actions, WagerAction_Call)
	}

	if ss.Chips > toCall {
		actions = append(actions, WagerAction_Raise)
	}

	return append(actions, WagerAction_AllIn)
}

func (s *Snapshot) GetJSON() (string, error) {
	encoded, err := json.Marshal(s)
	if err != nil {
		return "", err
	}
	return string(encoded), nil
}
