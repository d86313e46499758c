package referral_test

import (
	"casino/internal/referral"
	"casino/pkg/domain"
	"casino/pkg/serrors"
	"casino/pkg/storage/postgres"
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

func startPostgres(t *testing.T) *postgres.PgSQL {
	t.Helper()
	ctx := context.Background()

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "postgres:17",
			ExposedPorts: []string{"5432"},
			Env: map[string]string{
				"POSTGRES_USER":     "postgres",
				"POSTGRES_PASSWORD": "postgres",
				"POSTGRES_DB":       "casino",
			},
			WaitingFor: wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(time.Minute),
		},
		Started: true,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = container.Terminate(ctx) })

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "5432")
	require.NoError(t, err)

	pg, err := postgres.New(ctx, postgres.Options{
		URI:                fmt.Sprintf("postgres://postgres:postgres@%s:%d/casino?sslmode=disable", host, port.Int()),
		ConnectTimeout:     10 * time.Second,
		MaxOpenConnections: 10,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = pg.Close() })
	require.NoError(t, pg.Migrate(ctx))

	return pg
}

func TestReferral_Link_CrossingLinksNeverCycle(t *testing.T) {
	pg := startPostgres(t)
	s := referral.New(pg, referral.Options{MaxTreeDepth: 5})
	ctx := context.Background()

	createUser := func(name string) *domain.User {
		u, err := pg.CreateUser(ctx, domain.User{
			Username:     name,
			Email:        name + "@example.com",
			PasswordHash: "hash",
			ReferralCode: "C" + name,
		})
		require.NoError(t, err)

		return u
	}

	for i := range 20 {
		a := createUser(fmt.Sprintf("a%02d", i))
		b := createUser(fmt.Sprintf("b%02d", i))

		// a takes b's code while b takes a's code
		var (
			wg         sync.WaitGroup
			errA, errB error
		)
		start := make(chan struct{})
		wg.Add(2)
		go func() {
			defer wg.Done()
			<-start
			_, errA = s.Link(ctx, a.ID, b.ReferralCode)
		}()
		go func() {
			defer wg.Done()
			<-start
			_, errB = s.Link(ctx, b.ID, a.ReferralCode)
		}()
		close(start)
		wg.Wait()

		require.True(t, (errA == nil) != (errB == nil), "exactly one link must win: a=%v b=%v", errA, errB)
		lost := errA
		if lost == nil {
			lost = errB
		}
		require.ErrorIs(t, lost, serrors.ErrBadRequest)

		storedA, err := pg.UserByID(ctx, a.ID)
		require.NoError(t, err)
		storedB, err := pg.UserByID(ctx, b.ID)
		require.NoError(t, err)
		require.False(t, storedA.ReferrerID != nil && storedB.ReferrerID != nil, "pair %d forms a cycle", i)
	}
}
