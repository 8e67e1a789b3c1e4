package persist

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/pixil98/go-dungeon/internal/game"
	"github.com/pixil98/go-dungeon/internal/scores"
	"github.com/pixil98/go-dungeon/internal/storage"
	"github.com/pixil98/go-testutil"
)

// recordingBoard is an in-memory ScoreBoard.
type recordingBoard struct {
	entries   []scores.Entry
	recordErr error
}

func (b *recordingBoard) Record(_ context.Context, player string, score int) error {
	if b.recordErr != nil {
		return b.recordErr
	}
	b.entries = append(b.entries, scores.Entry{Player: player, Score: score})
	return nil
}

func (b *recordingBoard) Top(_ context.Context, limit int) ([]scores.Entry, error) {
	if limit < len(b.entries) {
		return b.entries[:limit], nil
	}
	return b.entries, nil
}

func newTestState(t *testing.T) *game.State {
	t.Helper()
	w, err := game.NewWorld(map[string]*game.RoomSpec{
		"square": {
			Name:  "Площадь",
			Exits: map[string]string{"north": "forest"},
		},
		"forest": {
			Name:    "Лес",
			Exits:   map[string]string{"south": "square"},
			Items:   []game.ItemSpec{{Name: "Малое зелье", Kind: game.ItemKindPotion, Value: 5}},
			Monster: &game.MonsterSpec{Name: "Волк", Level: 1, HP: 8},
		},
	})
	if err != nil {
		t.Fatalf("failed to create world: %v", err)
	}
	st, err := game.NewState(w, "square", game.NewPlayer(game.PlayerSpec{Name: "Герой", HP: 20, Attack: 5}))
	if err != nil {
		t.Fatalf("failed to create state: %v", err)
	}
	return st
}

func newTestStore(t *testing.T, board ScoreBoard) (*Store, string) {
	t.Helper()
	dir := t.TempDir()
	saves, err := storage.NewFileStore[*Snapshot](dir)
	if err != nil {
		t.Fatalf("failed to create save store: %v", err)
	}
	clock := func() time.Time { return time.Date(2026, time.October, 15, 9, 0, 0, 0, time.UTC) }
	return NewStore(saves, board, WithClock(clock)), dir
}

func TestStore_SaveLoadRoundTrip(t *testing.T) {
	ctx := context.Background()
	board := &recordingBoard{}
	store, dir := newTestStore(t, board)

	st := newTestState(t)
	if _, err := st.Move("north"); err != nil {
		t.Fatalf("move: %v", err)
	}
	if _, err := st.Take("малое зелье"); err != nil {
		t.Fatalf("take: %v", err)
	}
	st.Current.Monster.HP = 3
	st.Player.HP = 17
	st.Score = 4

	if err := store.Save(ctx, st); err != nil {
		t.Fatalf("save: %v", err)
	}
	testutil.AssertEqual(t, "recorded scores", len(board.entries), 1)
	testutil.AssertEqual(t, "recorded score", board.entries[0].Score, 4)

	// Play on, then load back.
	if _, err := st.Move("south"); err != nil {
		t.Fatalf("move: %v", err)
	}
	st.Player.HP = 1
	st.Player.Inventory = game.NewInventory()
	st.World.Room("forest").ClearMonster()
	st.Score = 9

	if err := store.Load(ctx, st); err != nil {
		t.Fatalf("load: %v", err)
	}

	testutil.AssertEqual(t, "current room", st.Current.Id, "forest")
	testutil.AssertEqual(t, "player hp", st.Player.HP, 17)
	testutil.AssertEqual(t, "player attack", st.Player.Attack, 5)
	testutil.AssertEqual(t, "inventory", st.Player.Inventory.Len(), 1)
	testutil.AssertEqual(t, "score", st.Score, 4)
	testutil.AssertEqual(t, "room items", st.Current.Items.Len(), 0)
	if st.Current.LiveMonster() == nil {
		t.Fatal("expected monster restored")
	}
	testutil.AssertEqual(t, "monster hp", st.Current.Monster.HP, 3)

	// A fresh store over the same directory sees the save too.
	saves, err := storage.NewFileStore[*Snapshot](dir)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	if saves.Get(DefaultSlot) == nil {
		t.Error("expected save on disk")
	}
}

func TestStore_Load_NoSave(t *testing.T) {
	store, _ := newTestStore(t, &recordingBoard{})
	st := newTestState(t)

	err := store.Load(context.Background(), st)
	if !errors.Is(err, ErrNoSave) {
		t.Errorf("error = %v, expected %v", err, ErrNoSave)
	}
	testutil.AssertEqual(t, "current room", st.Current.Id, "square")
}

func TestStore_Save_ScoreFailure(t *testing.T) {
	store, _ := newTestStore(t, &recordingBoard{recordErr: errors.New("disk full")})

	err := store.Save(context.Background(), newTestState(t))
	testutil.AssertErrorContains(t, err, "recording score: disk full")
}

func TestStore_Scores(t *testing.T) {
	board := &recordingBoard{entries: []scores.Entry{
		{Player: "Рыцарь", Score: 9},
		{Player: "Герой", Score: 4},
	}}
	store, _ := newTestStore(t, board)

	entries, err := store.Scores(context.Background())
	if err != nil {
		t.Fatalf("scores: %v", err)
	}
	testutil.AssertEqual(t, "count", len(entries), 2)
	testutil.AssertEqual(t, "first", entries[0].Player, "Рыцарь")
}

func TestStore_WithSQLiteScores(t *testing.T) {
	board, err := scores.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("open scores: %v", err)
	}
	t.Cleanup(func() { _ = board.Close() })

	store, _ := newTestStore(t, board)
	st := newTestState(t)
	st.Score = 2

	if err := store.Save(context.Background(), st); err != nil {
		t.Fatalf("save: %v", err)
	}

	entries, err := store.Scores(context.Background())
	if err != nil {
		t.Fatalf("scores: %v", err)
	}
	testutil.AssertEqual(t, "count", len(entries), 1)
	testutil.AssertEqual(t, "player", entries[0].Player, "Герой")
	testutil.AssertEqual(t, "score", entries[0].Score, 2)
}
