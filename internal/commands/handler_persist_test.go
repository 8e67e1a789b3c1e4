package commands

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/pixil98/go-dungeon/internal/game"
	"github.com/pixil98/go-dungeon/internal/scores"
	"github.com/pixil98/go-testutil"
)

type fakeGateway struct {
	saves   int
	loads   int
	entries []scores.Entry
	err     error
}

func (g *fakeGateway) Save(ctx context.Context, s *game.State) error {
	g.saves++
	return g.err
}

func (g *fakeGateway) Load(ctx context.Context, s *game.State) error {
	g.loads++
	return g.err
}

func (g *fakeGateway) Scores(ctx context.Context) ([]scores.Entry, error) {
	return g.entries, g.err
}

func TestPersistHandlers(t *testing.T) {
	now := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	tests := map[string]struct {
		gw       *fakeGateway
		exec     func(p *PersistHandlers) HandlerFunc
		expOut   string
		expErr   string
		expSaves int
		expLoads int
	}{
		"save": {
			gw:       &fakeGateway{},
			exec:     func(p *PersistHandlers) HandlerFunc { return p.Save },
			expOut:   "Игра сохранена.\n",
			expSaves: 1,
		},
		"save failure": {
			gw:       &fakeGateway{err: errors.New("disk full")},
			exec:     func(p *PersistHandlers) HandlerFunc { return p.Save },
			expErr:   "disk full",
			expSaves: 1,
		},
		"load": {
			gw:       &fakeGateway{},
			exec:     func(p *PersistHandlers) HandlerFunc { return p.Load },
			expOut:   "Игра загружена.\n",
			expLoads: 1,
		},
		"load failure": {
			gw:       &fakeGateway{err: errors.New("save not found")},
			exec:     func(p *PersistHandlers) HandlerFunc { return p.Load },
			expErr:   "save not found",
			expLoads: 1,
		},
		"no scores": {
			gw:     &fakeGateway{},
			exec:   func(p *PersistHandlers) HandlerFunc { return p.Scores },
			expOut: "Пока нет результатов.\n",
		},
		"scores": {
			gw: &fakeGateway{entries: []scores.Entry{
				{Player: "Герой", Score: 12, RecordedAt: now},
				{Player: "Герой", Score: 3, RecordedAt: now},
			}},
			exec:   func(p *PersistHandlers) HandlerFunc { return p.Scores },
			expOut: "Таблица лидеров:\n1. Герой: 12\n2. Герой: 3\n",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			cmdCtx, out := newTestContext(t)
			h := tt.exec(NewPersistHandlers(tt.gw))

			err := h(context.Background(), cmdCtx)
			if tt.expErr != "" {
				testutil.AssertErrorContains(t, err, tt.expErr)
				var userErr *UserError
				testutil.AssertEqual(t, "user error", errors.As(err, &userErr), false)
			} else if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			testutil.AssertEqual(t, "output", out.String(), tt.expOut)
			testutil.AssertEqual(t, "saves", tt.gw.saves, tt.expSaves)
			testutil.AssertEqual(t, "loads", tt.gw.loads, tt.expLoads)
		})
	}
}
