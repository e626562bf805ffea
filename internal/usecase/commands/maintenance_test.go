//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"nightpass/internal/domain/cart"
	"nightpass/internal/domain/identity"
	"nightpass/internal/pkg/clock"
	"nightpass/internal/pkg/config"
	"nightpass/internal/usecase/commands"
	"nightpass/tests/common/builder"

	"github.com/stretchr/testify/require"
)

func TestSweepPastCartLines(t *testing.T) {
	store := newFakeStore()
	clk := clock.NewMockClock(testNow)

	cmds, err := commands.NewMaintenanceCommands(&fakeUoW{store: store}, clk, config.NewTestConfig())
	require.NoError(t, err)

	owner, err := identity.NewAnonymous("sess-sweep")
	require.NoError(t, err)

	tk := builder.NewTicketBuilder().MustBuild()
	stale, err := cart.NewLine(tk.ID(), tk.ClubID(), builder.Date(2025, time.June, 27), 1)
	require.NoError(t, err)
	current, err := cart.NewLine(tk.ID(), tk.ClubID(), builder.Date(2025, time.July, 4), 1)
	require.NoError(t, err)
	store.SeedLine(owner, stale)
	store.SeedLine(owner, current)

	removed, err := cmds.SweepPastCartLines(context.Background())
	require.NoError(t, err)
	require.EqualValues(t, 1, removed)

	remaining := store.LinesFor(owner)
	require.Len(t, remaining, 1)
	require.True(t, remaining[0].Date().Equal(builder.Date(2025, time.July, 4)))
}

func TestSweepKeepsTodayLines(t *testing.T) {
	store := newFakeStore()
	clk := clock.NewMockClock(testNow)

	cmds, err := commands.NewMaintenanceCommands(&fakeUoW{store: store}, clk, config.NewTestConfig())
	require.NoError(t, err)

	owner, err := identity.NewAnonymous("sess-sweep-today")
	require.NoError(t, err)

	tk := builder.NewTicketBuilder().MustBuild()
	today, err := cart.NewLine(tk.ID(), tk.ClubID(), builder.Date(2025, time.July, 1), 1)
	require.NoError(t, err)
	store.SeedLine(owner, today)

	removed, err := cmds.SweepPastCartLines(context.Background())
	require.NoError(t, err)
	require.Zero(t, removed)
	require.Len(t, store.LinesFor(owner), 1)
}
