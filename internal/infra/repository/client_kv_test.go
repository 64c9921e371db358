package repository

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/BruksfildServices01/manicure-agenda/internal/domain/appointment"
	"github.com/BruksfildServices01/manicure-agenda/internal/kvstore"
	"github.com/BruksfildServices01/manicure-agenda/internal/models"
	"github.com/BruksfildServices01/manicure-agenda/internal/session"
)

func newClientRepo(t *testing.T) (*ClientKVRepository, *session.Manager, kvstore.Store) {
	t.Helper()
	store := kvstore.NewMemoryStore()
	sess := session.NewManager(store)
	return NewClientKVRepository(store, sess), sess, store
}

func client(id, date, hm string) models.Client {
	return models.Client{ID: id, Name: "Cliente " + id, Type: models.ServiceAvulso, NextDate: date, NextTime: hm}
}

func TestClientRepository_NoSession(t *testing.T) {
	ctx := context.Background()
	repo, _, store := newClientRepo(t)

	list, err := repo.List(ctx)
	require.NoError(t, err)
	assert.NotNil(t, list)
	assert.Empty(t, list)

	require.NoError(t, repo.SaveAll(ctx, []models.Client{client("1", "2024-06-11", "09:00")}))
	require.NoError(t, repo.Add(ctx, client("2", "2024-06-11", "10:00")))

	_, ok, err := store.Get(ctx, kvstore.KeyClients)
	require.NoError(t, err)
	assert.False(t, ok, "nothing persisted without a session")
}

func TestClientRepository_AddAppendsInOrder(t *testing.T) {
	ctx := context.Background()
	repo, sess, _ := newClientRepo(t)
	require.NoError(t, sess.SetCurrent(ctx, "m1"))

	list, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)

	a := client("a", "2024-06-12", "09:00")
	b := client("b", "2024-06-11", "09:00")
	c := client("c", "2024-06-10", "09:00")
	require.NoError(t, repo.Add(ctx, a))
	require.NoError(t, repo.Add(ctx, b))
	require.NoError(t, repo.Add(ctx, c))

	list, err = repo.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []models.Client{a, b, c}, list)
}

func TestClientRepository_ListsArePerProfile(t *testing.T) {
	ctx := context.Background()
	repo, sess, _ := newClientRepo(t)

	require.NoError(t, sess.SetCurrent(ctx, "m1"))
	require.NoError(t, repo.Add(ctx, client("a", "2024-06-12", "09:00")))

	require.NoError(t, sess.SetCurrent(ctx, "m2"))
	list, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)
	require.NoError(t, repo.Add(ctx, client("b", "2024-06-12", "09:00")))

	require.NoError(t, sess.SetCurrent(ctx, "m1"))
	list, err = repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "a", list[0].ID)
}

func TestClientRepository_SaveAllIsIdempotent(t *testing.T) {
	ctx := context.Background()
	repo, sess, store := newClientRepo(t)
	require.NoError(t, sess.SetCurrent(ctx, "m1"))

	l := []models.Client{client("a", "2024-06-12", "09:00"), client("b", "2024-06-13", "09:00")}

	require.NoError(t, repo.SaveAll(ctx, l))
	once, _, err := store.Get(ctx, kvstore.KeyClients)
	require.NoError(t, err)

	require.NoError(t, repo.SaveAll(ctx, l))
	twice, _, err := store.Get(ctx, kvstore.KeyClients)
	require.NoError(t, err)

	assert.Equal(t, once, twice)
}

func TestClientRepository_ClearCurrentEmptiesList(t *testing.T) {
	ctx := context.Background()
	repo, sess, _ := newClientRepo(t)
	require.NoError(t, sess.SetCurrent(ctx, "m1"))
	require.NoError(t, repo.Add(ctx, client("a", "2024-06-12", "09:00")))

	require.NoError(t, sess.ClearCurrent(ctx))

	list, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestClientRepository_UpdateAndDelete(t *testing.T) {
	ctx := context.Background()
	repo, sess, _ := newClientRepo(t)
	require.NoError(t, sess.SetCurrent(ctx, "m1"))
	require.NoError(t, repo.SaveAll(ctx, []models.Client{
		client("a", "2024-06-12", "09:00"),
		client("b", "2024-06-13", "09:00"),
	}))

	updated, err := repo.Update(ctx, "b", func(c *models.Client) error {
		c.NextTime = "11:30"
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, "11:30", updated.NextTime)

	_, err = repo.Update(ctx, "zzz", func(c *models.Client) error { return nil })
	assert.ErrorIs(t, err, domain.ErrClientNotFound)

	// fn com erro não grava nada
	boom := errors.New("recusado")
	_, err = repo.Update(ctx, "a", func(c *models.Client) error {
		c.NextDate = "2030-01-01"
		return boom
	})
	assert.ErrorIs(t, err, boom)

	list, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, "2024-06-12", list[0].NextDate)
	assert.Equal(t, "11:30", list[1].NextTime)

	require.NoError(t, repo.Delete(ctx, "a"))
	assert.ErrorIs(t, repo.Delete(ctx, "a"), domain.ErrClientNotFound)

	list, err = repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "b", list[0].ID)
}

func TestClientRepository_OptionalFieldsLayout(t *testing.T) {
	ctx := context.Background()
	repo, sess, store := newClientRepo(t)
	require.NoError(t, sess.SetCurrent(ctx, "m1"))

	pending := client("a", "2024-06-12", "09:00")
	done := client("b", "2024-06-13", "10:00")
	done.Attended = models.Some(true)
	done.Value = models.Some(45.5)

	require.NoError(t, repo.SaveAll(ctx, []models.Client{pending, done}))

	raw, _, err := store.Get(ctx, kvstore.KeyClients)
	require.NoError(t, err)
	assert.JSONEq(t, `{"m1":[
		{"id":"a","name":"Cliente a","type":"avulso","nextDate":"2024-06-12","nextTime":"09:00"},
		{"id":"b","name":"Cliente b","type":"avulso","nextDate":"2024-06-13","nextTime":"10:00","attended":true,"value":45.5}
	]}`, raw)

	list, err := repo.List(ctx)
	require.NoError(t, err)
	assert.False(t, list[0].Attended.IsSet())
	assert.True(t, list[1].IsAttended())
	assert.Equal(t, 45.5, list[1].Value.OrElse(0))
}

func TestClientRepository_ConcurrentAddsAreNotLost(t *testing.T) {
	ctx := context.Background()
	repo, sess, _ := newClientRepo(t)
	require.NoError(t, sess.SetCurrent(ctx, "m1"))

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_ = repo.Add(ctx, client(string(rune('a'+i)), "2024-06-12", "09:00"))
		}(i)
	}
	wg.Wait()

	list, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 20)
}

func TestClientRepository_UpdateWithSeesSiblings(t *testing.T) {
	ctx := context.Background()
	repo, sess, _ := newClientRepo(t)
	require.NoError(t, sess.SetCurrent(ctx, "m1"))
	require.NoError(t, repo.SaveAll(ctx, []models.Client{
		client("a", "2024-06-12", "09:00"),
		client("b", "2024-06-13", "09:00"),
		client("c", "2024-06-14", "09:00"),
	}))

	var seen []string
	updated, err := repo.UpdateWith(ctx, "b", func(c *models.Client, others []models.Client) error {
		for _, o := range others {
			seen = append(seen, o.ID)
		}
		c.NextTime = "10:00"
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "c"}, seen)
	assert.Equal(t, "10:00", updated.NextTime)

	// os irmãos são cópias: alterar não afeta o documento
	_, err = repo.UpdateWith(ctx, "a", func(c *models.Client, others []models.Client) error {
		others[0].NextTime = "23:00"
		return nil
	})
	require.NoError(t, err)

	list, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, "10:00", list[1].NextTime)

	_, err = repo.UpdateWith(ctx, "zzz", func(*models.Client, []models.Client) error { return nil })
	assert.ErrorIs(t, err, domain.ErrClientNotFound)
}

func TestClientRepository_ConcurrentUpdateWithKeepsSlotsUnique(t *testing.T) {
	ctx := context.Background()
	repo, sess, _ := newClientRepo(t)
	require.NoError(t, sess.SetCurrent(ctx, "m1"))

	var seed []models.Client
	for i := 0; i < 10; i++ {
		seed = append(seed, client(string(rune('a'+i)), "2024-06-12", "0"+string(rune('0'+i))+":00"))
	}
	require.NoError(t, repo.SaveAll(ctx, seed))

	// todos disputam 15:00; só um pode ficar com o horário
	var wg sync.WaitGroup
	for _, c := range seed {
		wg.Add(1)
		go func(id string) {
			defer wg.Done()
			_, _ = repo.UpdateWith(ctx, id, func(cl *models.Client, others []models.Client) error {
				for _, o := range others {
					if o.NextDate == "2024-06-12" && o.NextTime == "15:00" {
						return errors.New("taken")
					}
				}
				cl.NextTime = "15:00"
				return nil
			})
		}(c.ID)
	}
	wg.Wait()

	list, err := repo.List(ctx)
	require.NoError(t, err)
	n := 0
	for _, c := range list {
		if c.NextTime == "15:00" {
			n++
		}
	}
	assert.Equal(t, 1, n)
}
