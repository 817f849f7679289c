package open_game_manager

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/weedbox/holdem"
)

func Test_InitOpenGameManager(t *testing.T) {
	options := OpenGameOption{
		Timeout: 1,
	}

	m := NewOpenGameManager(options)

	assert.Equal(t, options.Timeout, m.GetState().Timeout)
	assert.Equal(t, 0, m.GetState().HandCount)
	assert.Equal(t, 0, len(m.GetState().Participants))
	assert.ErrorIs(t, m.Setup(1, map[string]int{}), ErrNoParticipants)
	assert.ErrorIs(t, m.Ready("player 1"), ErrParticipantNotFound)
}

func Test_AllParticipantsReady(t *testing.T) {
	opened := make(chan OpenGameState, 1)
	m := NewOpenGameManager(OpenGameOption{
		Timeout: 10,
		OnOpenGameReady: func(state OpenGameState) {
			opened <- state
		},
	})
	defer m.Stop()

	participants := map[string]int{
		"Jeffrey": 0,
		"Chuck":   1,
		"Fred":    2,
	}
	assert.Nil(t, m.Setup(5, participants))
	assert.False(t, m.GetState().IsOpened)

	for id := range participants {
		assert.Nil(t, m.Ready(id))
	}

	select {
	case state := <-opened:
		assert.Equal(t, 5, state.HandCount)
		assert.True(t, state.IsOpened)
		for id, seat := range participants {
			assert.Equal(t, seat, state.Participants[id].Seat)
			assert.True(t, state.Participants[id].IsReady)
		}
	case <-time.After(3 * time.Second):
		t.Fatal("next hand was not opened")
	}
}

func Test_TimeoutAutoReady(t *testing.T) {
	opened := make(chan OpenGameState, 1)
	m := NewOpenGameManager(OpenGameOption{
		Timeout: 1,
		OnOpenGameReady: func(state OpenGameState) {
			opened <- state
		},
	})
	defer m.Stop()

	assert.Nil(t, m.Setup(1, map[string]int{
		"Jeffrey": 0,
		"Chuck":   1,
	}))
	assert.Nil(t, m.Ready("Jeffrey"))

	select {
	case state := <-opened:
		assert.True(t, state.Participants["Chuck"].IsReady)
	case <-time.After(5 * time.Second):
		t.Fatal("pending participant was not auto readied")
	}
}

func Test_GateBetweenHands(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	provider := holdem.NewChannelActionProvider()
	go func() {
		for {
			select {
			case req := <-provider.Requests():
				token := holdem.Check()
				if req.Snapshot.AmountToCall(req.Seat) > 0 {
					token = holdem.Call()
				}
				_ = provider.Respond(ctx, req.ID, token)
			case <-ctx.Done():
				return
			}
		}
	}()

	m := NewOpenGameManager(OpenGameOption{
		Timeout: 5,
		OnOpenGameReady: func(state OpenGameState) {
			provider.NextHand()
		},
	})
	defer m.Stop()

	settings := holdem.NewDefaultTableSettings("Jeffrey", "Chuck", "Fred")
	settings.MaxHands = 3

	var engine holdem.HandEngine
	sink := holdem.SinkFuncs{
		AwaitNextHand: func() {
			table := engine.GetTable()
			participants := make(map[string]int)
			for _, p := range table.FundedPlayers() {
				participants[p.Name] = p.Seat
			}
			assert.Nil(t, m.Setup(table.HandCount, participants))

			go func() {
				for id := range participants {
					_ = m.Ready(id)
				}
			}()
		},
	}

	engine, err := holdem.NewHandEngine(settings, provider, holdem.WithSink(sink))
	assert.Nil(t, err)

	assert.Nil(t, engine.Run(ctx))
	assert.Equal(t, 3, engine.GetTable().HandCount)
	assert.Equal(t, int64(3000), engine.GetTable().TotalChips())
}
