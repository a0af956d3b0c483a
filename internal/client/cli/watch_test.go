package cli

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/countrybook/internal/client/session"
)

func startWatch(t *testing.T, env *testEnv, args ...string) <-chan error {
	t.Helper()
	done := make(chan error, 1)
	go func() {
		done <- env.cli.Run(context.Background(), "watch", args)
	}()
	return done
}

func waitDone(t *testing.T, done <-chan error) {
	t.Helper()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(3 * time.Second):
		t.Fatal("watch did not stop")
	}
}

func waitOutput(t *testing.T, env *testEnv, substr string, count int) {
	t.Helper()
	require.Eventually(t, func() bool {
		return strings.Count(env.io.Output(), substr) >= count
	}, 3*time.Second, 5*time.Millisecond, "waiting for %q x%d in:\n%s", substr, count, env.io.Output())
}

func TestCli_Watch_DebouncedQuery(t *testing.T) {
	env := newTestEnv(t, nil)
	done := startWatch(t, env, "--sort", "name-asc")

	waitOutput(t, env, "=== Countries (4) ===", 1)

	env.io.lines <- "i"
	env.io.lines <- "in"
	env.io.lines <- "ind"
	waitOutput(t, env, "=== Countries (2) ===", 1)

	// до каталога дошел только последний ввод
	for _, call := range env.catalog.FetchByNameCalls() {
		assert.Equal(t, "ind", call.Name)
	}

	env.io.lines <- ":clear"
	waitOutput(t, env, "=== Countries (4) ===", 2)

	env.io.lines <- ":quit"
	waitDone(t, done)
}

func TestCli_Watch_Commands(t *testing.T) {
	env := newTestEnv(t, nil)
	done := startWatch(t, env)
	waitOutput(t, env, "=== Countries (4) ===", 1)

	env.io.lines <- ":region Asia"
	waitOutput(t, env, "=== Countries (2) ===", 1)

	env.io.lines <- ":lang Hindi"
	waitOutput(t, env, "=== Countries (1) ===", 1)

	env.io.lines <- ":sort bogus"
	waitOutput(t, env, `Unknown sort "bogus"`, 1)

	env.io.lines <- ":region"
	env.io.lines <- ":lang"
	waitOutput(t, env, "=== Countries (4) ===", 2)

	env.io.lines <- ":fav"
	waitOutput(t, env, "=== Countries (0) ===", 1)

	env.io.lines <- ":nope"
	waitOutput(t, env, "Unknown command :nope", 1)

	close(env.io.lines)
	waitDone(t, done)
}

func TestCli_Watch_FavoriteRefreshes(t *testing.T) {
	env := newTestEnv(t, nil)
	env.register(t, "alice")

	done := startWatch(t, env, "--favorites")
	waitOutput(t, env, "=== Countries (0) ===", 1)

	env.io.lines <- ":star FRA"
	waitOutput(t, env, "★ Added FRA to favorites", 1)
	waitOutput(t, env, "=== Countries (1) ===", 1)

	env.io.lines <- ":quit"
	waitDone(t, done)
}

func TestCli_Watch_SessionExpires(t *testing.T) {
	env := newTestEnv(t, nil,
		session.WithTimeout(300*time.Millisecond),
		session.WithPollInterval(20*time.Millisecond),
	)
	env.register(t, "alice")

	done := startWatch(t, env)
	waitOutput(t, env, "Session ended.", 1)
	assert.Equal(t, session.StateAnonymous, env.cli.sessions.State())

	env.io.lines <- ":quit"
	waitDone(t, done)
}
